// Package buildinfo carries release metadata injected at link time, e.g.
//
//	go build -ldflags "-X github.com/paycycle-dev/paycycle/internal/buildinfo.Version=v0.3.0"
package buildinfo

var (
	// Version is the release tag.
	Version = "dev"
	// Commit is the git revision the binary was built from.
	Commit = "none"
	// Date is the build timestamp.
	Date = "unknown"
)
