package list

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pinax-network/pacprune"
	"github.com/pinax-network/pacprune/internal/cmd/output"
)

// NewDuplicatesCommand creates the list duplicates subcommand.
func NewDuplicatesCommand(app AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "duplicates",
		Short: "List packages installed both imperatively and declaratively",
		Long: `List the duplicate pairs the reconcile would act on, without removing
anything. JSON and YAML output include the full report: counts, the
removal plan, and declared names that matched nothing.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pruner, err := app.Pruner()
			if err != nil {
				return err
			}

			report, err := pruner.Plan(cmd.Context())
			if err != nil {
				return err
			}

			format := output.DetectFormat(app.OutputFormat())
			if format == output.FormatJSON || format == output.FormatYAML {
				return output.NewFormatter(format).Format(os.Stdout, report)
			}
			return output.NewFormatter(format).Format(os.Stdout, duplicatesData(report))
		},
	}
}

// duplicatesData renders the duplicate pairs as rows for the text and
// table formatters.
func duplicatesData(report *pacprune.Report) output.Data {
	rows := make([][]string, 0, len(report.Duplicates))
	for _, d := range report.Duplicates {
		rows = append(rows, []string{d.Imperative, d.Declarative})
	}
	return output.Data{
		Headers: []string{"Imperative", "Declarative"},
		Rows:    rows,
	}
}
