// Package cmd provides the command-line interface implementation for sortdir.
//
// It uses the Cobra library for command structure and Fang for styling.
// Each command lives in its own file with a constructor returning a
// *cobra.Command:
//   - root: sorts PATH when no subcommand is given, and groups the others
//   - sort: backup, sort and cleanup of one directory
//   - count: per-category file counts without touching anything
//   - seed: random test tree generation
//   - verify: backup archive verification
//   - config: sample creation and effective configuration display
//
// Configuration comes from internal/config with flags layered on top, and
// log records go to stderr through internal/logging. Tables and summaries
// go to stdout.
package cmd
