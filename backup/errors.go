package backup

import "errors"

// Sentinel errors for package backup.
var (
	ErrIncomplete = errors.New("archive is missing entries")
	ErrNotZip     = errors.New("file path extension is not '.zip'")
)
