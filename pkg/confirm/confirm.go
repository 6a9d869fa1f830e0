// Package confirm obtains user approval before destructive actions.
package confirm

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Confirmer answers a yes-or-no question. Implementations decide how
// the answer is obtained.
type Confirmer interface {
	Confirm(prompt string) (bool, error)
}

// Auto approves every prompt without asking. It backs the --yes flag.
type Auto struct{}

// Confirm always answers yes.
func (Auto) Confirm(string) (bool, error) { return true, nil }

// Terminal asks the question on an interactive stream. Anything but an
// explicit yes counts as no, including an empty answer and end of
// input.
type Terminal struct {
	In  io.Reader
	Out io.Writer
}

// NewTerminal returns a Terminal prompting on the given streams.
func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{In: in, Out: out}
}

// Confirm prints the prompt and reads one line of input.
func (t *Terminal) Confirm(prompt string) (bool, error) {
	if _, err := fmt.Fprintf(t.Out, "%s (y/N): ", prompt); err != nil {
		return false, err
	}

	response, err := bufio.NewReader(t.In).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}

	switch strings.ToLower(strings.TrimSpace(response)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
