// Package layers derives architectural layer numbers from filesystem paths.
//
// A workspace organizes its crates into numbered layer directories such as
// 01-transport, 02-runtime, or 99-tests. The number encodes the crate's
// position in the permitted-dependency order: higher-numbered layers may
// depend on lower-numbered layers, never the reverse.
//
// Paths without a numeric-prefixed segment (fixture trees, the workspace
// root itself) are unlayered and excluded from the dependency rule.
package layers

import (
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// FixtureMarker names the directory that opts a subtree out of the layering
// system regardless of how its parents are named.
const FixtureMarker = "testdata"

var layerSegment = regexp.MustCompile(`^(\d+)-`)

// Classify derives the layer number from path, e.g. 1 for
// "crates/01-transport/foo". The first matching segment from the root wins;
// later segments are not consulted, so a conflicting deeper prefix cannot
// override the layer. The path does not need to exist.
//
// The second return value is false when no segment carries a numeric
// prefix. That is not an error: it means the path is outside the layering
// system entirely.
func Classify(path string) (int, bool) {
	for _, seg := range segments(path) {
		m := layerSegment.FindStringSubmatch(seg)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			// Digit runs long enough to overflow int are not layers.
			return 0, false
		}
		return n, true
	}
	return 0, false
}

// IsFixture reports whether path contains a FixtureMarker segment.
func IsFixture(path string) bool {
	for _, seg := range segments(path) {
		if seg == FixtureMarker {
			return true
		}
	}
	return false
}

func segments(path string) []string {
	return strings.Split(filepath.ToSlash(path), "/")
}
