// Package config loads sortdir settings from TOML.
//
// Load starts from Default, decodes the file if one exists, expands "~" in
// path values, lower-cases enumerations and validates the result. Command
// line flags are applied on top by the caller. CreateSample writes the
// embedded sample file used by "sortdir config init".
package config
