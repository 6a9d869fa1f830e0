// Package embedded bundles the data files compiled into the pacprune binary.
package embedded

import (
	"embed"
)

// FS embeds the default declarative-to-imperative name mapping at build time.
//
//go:embed mapping.toml
var FS embed.FS
