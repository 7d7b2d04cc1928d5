package sorter

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/dendrascience/sortdir/fsutil"
)

// Resolve turns an optional path argument into an absolute, existing
// directory. An empty arg means the current working directory; a relative
// arg is resolved against it.
func Resolve(arg string) (string, error) {
	var (
		path string
		err  error
	)
	if arg == "" {
		path, err = os.Getwd()
	} else {
		path, err = filepath.Abs(arg)
	}
	if err != nil {
		return "", fmt.Errorf("resolve %q: %w", arg, err)
	}

	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", &PathNotFoundError{Path: path}
	}
	if err != nil {
		return "", err
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%s: %w", path, fsutil.ErrExpectedDirectory)
	}
	return path, nil
}
