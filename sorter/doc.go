// Package sorter moves the files of a directory tree into category folders.
//
// A run resolves the target, takes an exclusive lock on it, snapshots it
// with the backup package, walks every file depth-first, classifies each one
// and renames it into the matching folder directly under the target root.
// Finally every top-level directory that is not a category folder is removed.
//
// Nothing is moved before the backup reports success. After that point any
// filesystem error aborts the run and the tree may be partially sorted; the
// archive is the only recovery path.
package sorter
