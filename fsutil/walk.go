package fsutil

import (
	"iter"
	"os"
	"path/filepath"
)

// Walk returns a lazy depth-first sequence of every non-directory entry under
// root. Each directory's entries are visited in the order os.ReadDir lists
// them, and subdirectories are descended into as soon as they are encountered.
// Directory paths themselves are never yielded. Symlinks are yielded as files
// and never followed.
//
// A listing failure is yielded once as ("", err) and ends the sequence.
func Walk(root string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		walkDir(root, yield)
	}
}

// walkDir reports whether the walk should continue.
func walkDir(dir string, yield func(string, error) bool) bool {
	entries, err := os.ReadDir(dir)
	if err != nil {
		yield("", err)
		return false
	}
	for _, e := range entries {
		path := filepath.Join(dir, e.Name())
		if e.IsDir() {
			if !walkDir(path, yield) {
				return false
			}
			continue
		}
		if !yield(path, nil) {
			return false
		}
	}
	return true
}

// CollectFiles materializes Walk(root) into a slice.
// root must be an existing directory.
func CollectFiles(root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, ErrExpectedDirectory
	}
	var files []string
	for path, err := range Walk(root) {
		if err != nil {
			return nil, err
		}
		files = append(files, path)
	}
	return files, nil
}
