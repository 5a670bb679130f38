// Package workspace resolves which manifests a sort run covers.
//
// A cargo workspace names its members as glob patterns under
// [workspace] members, with exclude patterns filtering them back out.
// Resolution reads the root manifest with the same lossless parser the
// engine uses; a manifest without a workspace table covers only
// itself.
package workspace

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/toml-fmt/toml-sort/ir"
	"github.com/toml-fmt/toml-sort/parse"
)

const ManifestName = "Cargo.toml"

var ErrNoManifest = errors.New("no manifest found")

// Find walks from dir upward to the nearest Cargo.toml.
func Find(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	for {
		p := filepath.Join(dir, ManifestName)
		if fi, err := os.Stat(p); err == nil && !fi.IsDir() {
			return p, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%w: searched upward from %s", ErrNoManifest, dir)
		}
		dir = parent
	}
}

// Manifests expands the workspace rooted at the given manifest into
// the list of member manifests, root first.  Member patterns are
// globs relative to the root directory; exclude patterns drop matches
// again.
func Manifests(rootManifest string) ([]string, error) {
	d, err := os.ReadFile(rootManifest)
	if err != nil {
		return nil, err
	}
	doc, err := parse.Parse(d)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", rootManifest, err)
	}
	ws := doc.Root.GetTable("workspace")
	if ws == nil {
		return []string{rootManifest}, nil
	}
	members := stringArray(ws, "members")
	exclude := stringArray(ws, "exclude")
	rootDir := filepath.Dir(rootManifest)

	out := []string{rootManifest}
	seen := map[string]bool{rootManifest: true}
	for _, pat := range members {
		matches, err := filepath.Glob(filepath.Join(rootDir, pat))
		if err != nil {
			return nil, fmt.Errorf("bad members pattern %q: %w", pat, err)
		}
		for _, m := range matches {
			if excluded(rootDir, m, exclude) {
				continue
			}
			mf := filepath.Join(m, ManifestName)
			if seen[mf] {
				continue
			}
			if fi, err := os.Stat(mf); err != nil || fi.IsDir() {
				continue
			}
			seen[mf] = true
			out = append(out, mf)
		}
	}
	return out, nil
}

func excluded(rootDir, path string, exclude []string) bool {
	rel, err := filepath.Rel(rootDir, path)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)
	for _, ex := range exclude {
		if rel == ex {
			return true
		}
		if ok, err := filepath.Match(ex, rel); err == nil && ok {
			return true
		}
	}
	return false
}

func stringArray(t *ir.Table, key string) []string {
	it := t.Get(key)
	if it == nil || it.Kind != ir.ValueItem || !it.Value.IsStringArray() {
		return nil
	}
	arr, _ := it.Value.AsArray()
	res := make([]string, 0, len(arr.Values))
	for _, el := range arr.Values {
		res = append(res, el.Str)
	}
	return res
}
