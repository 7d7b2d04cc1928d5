// Package logging builds the slog loggers used by sortdir commands.
//
// New selects a console or JSON handler at a parsed level and routes output
// to stdout, stderr, files or a caller supplied writer. The console handler
// prints one line per record with the component name in front of the
// message. NewNop returns a logger for tests and for library callers that do
// not pass one.
package logging
