// Package version holds build metadata set with -ldflags.
package version

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// String formats the build metadata for --version output.
func String() string {
	return "folio " + Version + " (" + Commit + ") built " + Date
}
