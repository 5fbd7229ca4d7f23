// Package buildinfo exposes the identifiers stamped in at build time
// via -ldflags. A plain `go build` leaves them at their dev defaults.
package buildinfo

var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Short returns the most specific identifier available, for window
// titles and version output.
func Short() string {
	switch {
	case Version != "" && Version != "dev":
		return Version
	case Commit != "" && Commit != "unknown":
		return Commit
	}
	return "dev"
}
