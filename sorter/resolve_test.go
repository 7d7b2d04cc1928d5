package sorter

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/dendrascience/sortdir/fsutil"
)

func TestResolve(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file.txt")
	os.WriteFile(file, []byte("x"), 0644)

	t.Run("absolute dir", func(t *testing.T) {
		got, err := Resolve(dir)
		if err != nil || got != dir {
			t.Errorf("Resolve(%q) = %q, %v", dir, got, err)
		}
	})

	t.Run("empty uses working directory", func(t *testing.T) {
		t.Chdir(dir)
		want, _ := os.Getwd()
		got, err := Resolve("")
		if err != nil || got != want {
			t.Errorf("Resolve(\"\") = %q, %v; want %q", got, err, want)
		}
	})

	t.Run("relative", func(t *testing.T) {
		os.Mkdir(filepath.Join(dir, "sub"), 0755)
		t.Chdir(dir)
		wd, _ := os.Getwd()
		got, err := Resolve("sub")
		if err != nil || got != filepath.Join(wd, "sub") {
			t.Errorf("Resolve(sub) = %q, %v", got, err)
		}
	})

	t.Run("missing", func(t *testing.T) {
		_, err := Resolve(filepath.Join(dir, "missing"))
		var pnf *PathNotFoundError
		if !errors.As(err, &pnf) {
			t.Fatalf("Expected *PathNotFoundError, got %v", err)
		}
		if !errors.Is(err, fs.ErrNotExist) {
			t.Error("PathNotFoundError should match fs.ErrNotExist")
		}
	})

	t.Run("file", func(t *testing.T) {
		_, err := Resolve(file)
		if !errors.Is(err, fsutil.ErrExpectedDirectory) {
			t.Errorf("Expected ErrExpectedDirectory, got %v", err)
		}
	})
}
