package sorter

import (
	"errors"
	"fmt"
	"io/fs"
)

// Sentinel errors for package sorter.
var (
	ErrLocked            = errors.New("another sortdir run holds the lock for this directory")
	ErrDestinationExists = errors.New("destination file already exists")
)

// PathNotFoundError reports a target directory that does not exist.
// It matches fs.ErrNotExist with errors.Is.
type PathNotFoundError struct {
	Path string
}

func (e *PathNotFoundError) Error() string {
	return fmt.Sprintf("path not found: %s", e.Path)
}

func (e *PathNotFoundError) Unwrap() error {
	return fs.ErrNotExist
}
