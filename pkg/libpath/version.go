// pkg/libpath/version.go
package libpath

import (
	"strings"

	"golang.org/x/mod/semver"
)

// CanonicalVersion returns the semantic version form of a library version
// suffix (e.g., "16.37.0" -> "v16.37.0", "3" -> "v3.0.0"). Suffixes that are
// not semantic versions, like "3.19.4.0", are returned unchanged.
func CanonicalVersion(v string) string {
	if v == "" {
		return ""
	}

	sv := v
	if !strings.HasPrefix(sv, "v") {
		sv = "v" + sv
	}
	if c := semver.Canonical(sv); c != "" {
		return c
	}
	return v
}
