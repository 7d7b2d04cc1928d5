// Package fsutil contains the filesystem building blocks used by sortdir.
//
// Key Components:
//
// Directory Walking:
//   - Walk yields every non-directory path under a root as a lazy iter.Seq2
//   - Depth-first order; subdirectories are entered as soon as they are listed
//   - CollectFiles materializes the sequence once for a sort run
//
// Hashing:
//   - SHA-256 helpers for files, readers and strings
//
// Errors:
//   - Sentinel errors (ErrExpectedFile, ErrExpectedDirectory) usable with errors.Is
package fsutil
