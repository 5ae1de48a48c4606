// Package workspace discovers crate manifests under a workspace root and
// resolves the relative path literals they declare.
//
// Discovery is a pure function of the root and an exclusion predicate, so
// tests can point it at any directory tree. Resolution is pure string
// manipulation: the target of a path dependency does not need to exist for
// the layer check to classify it.
package workspace

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/layerlint/layerlint/pkg/errors"
	"github.com/layerlint/layerlint/pkg/manifest"
)

// buildOutputDir is the Cargo build output directory, never part of the
// source tree. Manifests below it are copies of already-discovered crates.
const buildOutputDir = "target"

// ExcludeFunc decides whether a directory (given relative to the discovery
// root) is skipped entirely, including everything below it.
type ExcludeFunc func(rel string) bool

// DefaultExclude skips build output directories.
func DefaultExclude(rel string) bool {
	for _, seg := range strings.Split(filepath.ToSlash(rel), "/") {
		if seg == buildOutputDir {
			return true
		}
	}
	return false
}

// Discover walks root and returns the absolute path of every Cargo.toml
// found, excluding subtrees for which exclude returns true. A nil exclude
// falls back to DefaultExclude.
//
// Results are sorted so downstream processing (and therefore the final
// report) does not depend on filesystem iteration order.
func Discover(root string, exclude ExcludeFunc) ([]string, error) {
	if exclude == nil {
		exclude = DefaultExclude
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidRoot, err, "resolve root %s", root)
	}
	if info, err := os.Stat(absRoot); err != nil || !info.IsDir() {
		return nil, errors.New(errors.ErrCodeInvalidRoot, "workspace root %s is not a directory", root)
	}

	var manifests []string
	err = filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, relErr := filepath.Rel(absRoot, path)
		if relErr != nil {
			return relErr
		}
		if d.IsDir() {
			if rel != "." && exclude(rel) {
				return fs.SkipDir
			}
			return nil
		}
		if d.Name() == manifest.Filename {
			manifests = append(manifests, path)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidRoot, err, "walk workspace %s", root)
	}

	sort.Strings(manifests)
	return manifests, nil
}

// Resolve computes the canonical location of a path dependency declared in
// the manifest at manifestPath. The literal resolves relative to the
// manifest's own directory, exactly as Cargo does, and `.`/`..` segments
// are eliminated. No filesystem access happens.
func Resolve(manifestPath, pathLiteral string) string {
	return filepath.Join(filepath.Dir(manifestPath), filepath.FromSlash(pathLiteral))
}
