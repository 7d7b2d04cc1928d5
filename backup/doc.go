// Package backup produces and inspects the safety snapshot that sortdir
// takes before it moves anything.
//
// A snapshot is a single zip archive named <basename>.bak.zip holding the
// whole target tree under its base name. CompressDirectoryToDest writes it
// atomically with overwrite semantics; Verify reads one back entry by entry
// so an operator can trust it before a manual restore.
package backup
