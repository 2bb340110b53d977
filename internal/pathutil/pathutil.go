// Package pathutil canonicalizes filesystem paths for cache keys and rule
// matching. Normalization expands a leading home-directory marker and
// collapses redundant segments; it never resolves symlinks, so a symlinked
// directory keeps its own identity.
package pathutil

import (
	"path/filepath"
	"strings"

	"github.com/cleansweep/cleansweep/internal/platform"
)

// Normalize canonicalizes a path against the current user's home directory.
func Normalize(path string) string {
	return NormalizeWithHome(path, platform.HomeDir())
}

// NormalizeWithHome canonicalizes a path against an explicit home directory.
// Malformed input is passed through collapsed as far as possible; there is
// no failure mode.
func NormalizeWithHome(path, home string) string {
	if path == "" {
		return ""
	}

	expanded := ExpandHome(path, home)
	return filepath.Clean(expanded)
}

// ExpandHome replaces a leading "~" with the given home directory. A tilde
// anywhere else in the path is left alone.
func ExpandHome(path, home string) string {
	if path == "~" {
		return home
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:])
	}
	return path
}
