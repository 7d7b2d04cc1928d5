// Package version provides version information and build metadata for sortdir.
//
// Version Information Sources:
//   - Compile-time variables (Version, Commit, Date) set via -ldflags
//   - Runtime build info from debug.ReadBuildInfo()
//   - Fallback defaults for development builds
//
// GetFullVersion is what "sortdir --version" prints.
//
// Build Integration:
//
//	go build -ldflags "-X github.com/dendrascience/sortdir/version.Version=v1.0.0 -X github.com/dendrascience/sortdir/version.Commit=abc123"
package version
