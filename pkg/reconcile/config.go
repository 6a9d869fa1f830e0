package reconcile

import (
	"github.com/BurntSushi/toml"

	"github.com/pinax-network/pacprune/internal/embedded"
	"github.com/pinax-network/pacprune/pkg/errors"
)

// Mapping holds declarative-to-imperative package name overrides for the
// names that diverge between nixpkgs and the Arch repositories.
type Mapping map[string]string

// DefaultProtected is the package whose removal is guarded by default:
// the AUR helper itself.
const DefaultProtected = "yay"

// Config carries the reconciliation settings. Treat a Config as
// immutable: build one with DefaultConfig and pass it along unchanged.
type Config struct {
	// Mapping translates declarative names before membership probing.
	Mapping Mapping

	// Protected is excluded from removal plans unless explicitly
	// included, in which case it is removed last.
	Protected string
}

// DefaultConfig returns the built-in configuration: the name mapping
// compiled into the binary and yay protection.
func DefaultConfig() (Config, error) {
	mapping, err := loadEmbeddedMapping()
	if err != nil {
		return Config{}, err
	}
	return Config{Mapping: mapping, Protected: DefaultProtected}, nil
}

// mappingFile mirrors the embedded TOML layout.
type mappingFile struct {
	Packages map[string]string `toml:"packages"`
}

func loadEmbeddedMapping() (Mapping, error) {
	data, err := embedded.FS.ReadFile("mapping.toml")
	if err != nil {
		return nil, errors.WrapIO("read", "mapping.toml", err)
	}

	var file mappingFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, errors.WrapParse("mapping.toml", "", err)
	}
	return Mapping(file.Packages), nil
}
