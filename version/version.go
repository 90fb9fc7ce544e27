package version

import "fmt"

// If you want to include these values as defaults at compile time, you can use ldflags:
// -X github.com/southernlabs-io/go-heap/version.BuildTime=$(date -u '+%Y-%m-%dT%H:%M:%SZ')
// -X github.com/southernlabs-io/go-heap/version.Commit=$(git rev-parse --short HEAD)
// -X github.com/southernlabs-io/go-heap/version.SemVer=$(git describe --tags --always --dirty)
var (
	// BuildTime is a string timestamp of the binary build time.
	BuildTime = "unset"
	// Commit is a last commit hash when the binary was built.
	Commit = "unset"
	// SemVer is a semantic version of current build.
	SemVer = "v0.1.0+dirty"
)

var Full = fmt.Sprintf("%s+%s.%s", SemVer, Commit, BuildTime)
