package homemanager

import (
	"regexp"
	"strings"
)

// storeHash matches the 32 character nix-base32 hash component that
// prefixes store object names.
var storeHash = regexp.MustCompile(`^[0-9a-df-np-sv-z]{32}-`)

// Normalize reduces a raw `home-manager packages` entry to a bare package
// name. Entries may be plain derivation names (`ripgrep-14.1.0`), full
// store paths (`/nix/store/<hash>-ripgrep-14.1.0`) or `.drv` file names;
// path prefixes, store hashes, derivation suffixes and the trailing
// version are all stripped. ok is false when nothing usable remains.
func Normalize(raw string) (name string, ok bool) {
	name = strings.TrimSpace(raw)
	if name == "" {
		return "", false
	}

	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	name = storeHash.ReplaceAllString(name, "")
	name = strings.TrimSuffix(name, ".drv")
	name = trimVersion(name)

	if name == "" {
		return "", false
	}
	return name, true
}

// trimVersion cuts the name at the first dash immediately followed by a
// digit, the nix name/version split rule. Everything from that dash on is
// version text, which may itself contain dashes.
func trimVersion(name string) string {
	for i := 0; i+1 < len(name); i++ {
		if name[i] == '-' && name[i+1] >= '0' && name[i+1] <= '9' {
			return name[:i]
		}
	}
	return name
}
