// Package main provides the sortdir command-line interface.
//
// sortdir sorts the files of a directory tree into Documents, Pictures,
// Videos, Audio, Applications and Miscellaneous folders based on the content
// type inferred from each file name. The tree is archived to
// ~/<name>.bak.zip before anything moves, and top-level directories that are
// not category folders are removed afterwards.
//
// The binary supports these subcommands:
//   - sort: Sort a directory (also the default action)
//   - count: Count files per category without changing anything
//   - seed: Generate a random test tree
//   - verify: Verify a backup archive
//   - config: Create or show the configuration file
package main
