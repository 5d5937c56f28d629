package discover

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func touch(t *testing.T, path string) string {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestFiles(t *testing.T) {
	dir := t.TempDir()
	a := touch(t, filepath.Join(dir, "a.tex"))
	b := touch(t, filepath.Join(dir, "sub", "b.tex"))
	touch(t, filepath.Join(dir, "sub", "notes.txt"))
	upper := touch(t, filepath.Join(dir, "c.TEX"))

	t.Run("explicit file", func(t *testing.T) {
		if got := Files([]string{a}, "", ".tex"); !reflect.DeepEqual(got, []string{a}) {
			t.Fatalf("got %v", got)
		}
	})
	t.Run("wrong extension filtered", func(t *testing.T) {
		if got := Files([]string{filepath.Join(dir, "sub", "notes.txt")}, "", ".tex"); got != nil {
			t.Fatalf("got %v", got)
		}
	})
	t.Run("extension match is case-insensitive", func(t *testing.T) {
		if got := Files([]string{upper}, "", ".tex"); !reflect.DeepEqual(got, []string{upper}) {
			t.Fatalf("got %v", got)
		}
	})
	t.Run("directory walks recursively", func(t *testing.T) {
		got := Files([]string{dir}, "", ".tex")
		if len(got) != 3 {
			t.Fatalf("got %v, want a, b and c.TEX", got)
		}
	})
	t.Run("root dir", func(t *testing.T) {
		got := Files(nil, filepath.Join(dir, "sub"), ".tex")
		if !reflect.DeepEqual(got, []string{b}) {
			t.Fatalf("got %v", got)
		}
	})
	t.Run("glob pattern", func(t *testing.T) {
		got := Files([]string{filepath.Join(dir, "*.tex")}, "", ".tex")
		if !reflect.DeepEqual(got, []string{a}) {
			t.Fatalf("got %v", got)
		}
	})
	t.Run("dedup keeps first-seen order", func(t *testing.T) {
		got := Files([]string{b, a, b}, dir, ".tex")
		if len(got) != 3 || got[0] != b || got[1] != a {
			t.Fatalf("got %v", got)
		}
	})
	t.Run("missing args give nothing", func(t *testing.T) {
		if got := Files([]string{filepath.Join(dir, "ghost.tex")}, filepath.Join(dir, "ghostdir"), ".tex"); got != nil {
			t.Fatalf("got %v", got)
		}
	})
}
