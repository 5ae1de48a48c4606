// Package manifest extracts the two facts layerlint needs from a Cargo.toml:
// the declared package name and the set of path dependencies.
//
// Everything else in the manifest is deliberately ignored. Version, git, and
// registry dependencies carry no local path and cannot cross a layer
// boundary inside the workspace, so they are never extracted.
package manifest

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/BurntSushi/toml"

	"github.com/layerlint/layerlint/pkg/errors"
)

// Filename is the manifest file name discovered in a workspace.
const Filename = "Cargo.toml"

// PathDep is one dependency declared with an explicit local path, e.g.
//
//	foo = { path = "../foo" }
type PathDep struct {
	Name string // dependency key as written in the manifest
	Path string // relative path literal, unresolved
}

// Manifest holds the extracted facts for one crate.
type Manifest struct {
	Name     string    // declared [package] name, or the directory name if absent
	Path     string    // path to the Cargo.toml this came from
	PathDeps []PathDep // deduplicated, sorted by (Name, Path)
}

// Dir returns the directory containing the manifest. Path dependencies
// resolve relative to this directory.
func (m *Manifest) Dir() string {
	return filepath.Dir(m.Path)
}

// cargoFile mirrors the subset of Cargo.toml that layerlint reads.
// Dependency tables decode as map[string]any so that string versions
// ("1.0"), inline tables, and sub-tables all land without a schema fight.
type cargoFile struct {
	Package struct {
		Name string `toml:"name"`
	} `toml:"package"`
	Dependencies      map[string]any `toml:"dependencies"`
	DevDependencies   map[string]any `toml:"dev-dependencies"`
	BuildDependencies map[string]any `toml:"build-dependencies"`
	Workspace         struct {
		Dependencies map[string]any `toml:"dependencies"`
	} `toml:"workspace"`
	Target map[string]targetTables `toml:"target"`
}

// targetTables holds the per-platform dependency tables under [target.'cfg'].
type targetTables struct {
	Dependencies      map[string]any `toml:"dependencies"`
	DevDependencies   map[string]any `toml:"dev-dependencies"`
	BuildDependencies map[string]any `toml:"build-dependencies"`
}

// Parse reads the manifest at path and extracts the crate name and its path
// dependencies. All dependency tables are scanned: [dependencies],
// [dev-dependencies], [build-dependencies], the per-target variants, and
// [workspace.dependencies].
//
// A manifest without a [package] section (a workspace virtual manifest)
// falls back to the containing directory's name.
//
// Read failures return ErrCodeManifestRead and malformed TOML returns
// ErrCodeManifestParse; both are fatal for a validation run.
func Parse(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeManifestRead, err, "read manifest %s", path)
	}

	var cargo cargoFile
	if err := toml.Unmarshal(data, &cargo); err != nil {
		return nil, errors.Wrap(errors.ErrCodeManifestParse, err, "parse manifest %s", path)
	}

	name := cargo.Package.Name
	if name == "" {
		name = filepath.Base(filepath.Dir(path))
	}

	return &Manifest{
		Name:     name,
		Path:     path,
		PathDeps: extractPathDeps(cargo),
	}, nil
}

func extractPathDeps(cargo cargoFile) []PathDep {
	seen := make(map[PathDep]struct{})

	tables := []map[string]any{
		cargo.Dependencies,
		cargo.DevDependencies,
		cargo.BuildDependencies,
		cargo.Workspace.Dependencies,
	}
	for _, target := range cargo.Target {
		tables = append(tables,
			target.Dependencies,
			target.DevDependencies,
			target.BuildDependencies,
		)
	}

	for _, table := range tables {
		for name, spec := range table {
			if p, ok := depPath(spec); ok {
				seen[PathDep{Name: name, Path: p}] = struct{}{}
			}
		}
	}

	deps := make([]PathDep, 0, len(seen))
	for d := range seen {
		deps = append(deps, d)
	}
	// Extraction order is map order; sort so output is reproducible.
	sort.Slice(deps, func(i, j int) bool {
		if deps[i].Name != deps[j].Name {
			return deps[i].Name < deps[j].Name
		}
		return deps[i].Path < deps[j].Path
	})
	return deps
}

// depPath returns the path literal from a dependency spec, if the spec is a
// table carrying a "path" key. Plain version strings and git/registry
// tables report false.
func depPath(spec any) (string, bool) {
	table, ok := spec.(map[string]any)
	if !ok {
		return "", false
	}
	p, ok := table["path"].(string)
	if !ok || p == "" {
		return "", false
	}
	return p, true
}
