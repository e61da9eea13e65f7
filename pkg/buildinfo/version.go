// Package buildinfo carries version information stamped in at build time.
//
//	go build -ldflags "-X github.com/matzehuels/gitwrapped/pkg/buildinfo.Version=v1.0.0 \
//	    -X github.com/matzehuels/gitwrapped/pkg/buildinfo.Commit=$(git rev-parse HEAD) \
//	    -X github.com/matzehuels/gitwrapped/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
package buildinfo

import "fmt"

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Template returns the cobra version template.
func Template() string {
	return fmt.Sprintf("{{.Name}} version %s\ncommit: %s\nbuilt: %s\n", Version, Commit, Date)
}

// UserAgent identifies gitwrapped to the GitHub API, which rejects
// requests without one.
func UserAgent() string {
	return "gitwrapped/" + Version
}
