// Package discover resolves the mixed file/directory/glob arguments the
// command line accepts into concrete file lists.
package discover

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Files resolves args plus an optional root directory into files carrying
// ext (e.g. ".tex"). Each arg may be a file, a directory (walked
// recursively) or a glob pattern; root, when non-empty, is walked
// recursively too. Results keep first-seen order and are de-duplicated by
// absolute path. Unwalkable subtrees are skipped rather than failing the
// whole discovery.
func Files(args []string, root, ext string) []string {
	seen := make(map[string]struct{})
	var out []string
	add := func(p string) {
		if !strings.EqualFold(filepath.Ext(p), ext) {
			return
		}
		abs, err := filepath.Abs(p)
		if err != nil {
			abs = p
		}
		if _, dup := seen[abs]; dup {
			return
		}
		seen[abs] = struct{}{}
		out = append(out, p)
	}

	for _, a := range args {
		switch info, err := os.Stat(a); {
		case err == nil && info.IsDir():
			walk(a, add)
		case err == nil:
			add(a)
		default:
			// Not a path on disk: treat as a glob pattern.
			matches, _ := filepath.Glob(a)
			for _, m := range matches {
				add(m)
			}
		}
	}
	if root != "" {
		if info, err := os.Stat(root); err == nil && info.IsDir() {
			walk(root, add)
		}
	}
	return out
}

func walk(dir string, add func(string)) {
	_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() {
			add(path)
		}
		return nil
	})
}
