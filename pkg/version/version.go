// Package version reports the build of the expander binary.
package version

import (
	"fmt"
	"runtime"
	"strings"
)

// Set with -ldflags at build time, e.g.
//
//	go build -ldflags "-X 'expander/pkg/version.Version=1.2.3' -X 'expander/pkg/version.Commit=abcdefg'"
var (
	Version   = "dev"
	Commit    = "none"
	BuildTime = "unknown"
)

// shortCommitLen matches the abbreviation git uses by default.
const shortCommitLen = 7

// Info describes one build.
type Info struct {
	Version   string
	GitCommit string
	BuildTime string
	GoVersion string
	Platform  string // GOOS/GOARCH
}

// Get returns the build info of the running binary.
func Get() Info {
	return Info{
		Version:   Version,
		GitCommit: Commit,
		BuildTime: BuildTime,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// Short returns the version with the abbreviated commit appended as build
// metadata ("1.2.3+abcdefg"), or the bare version when no commit was set.
func (i Info) Short() string {
	commit := strings.TrimSpace(i.GitCommit)
	if commit == "" || commit == "none" {
		return i.Version
	}
	if len(commit) > shortCommitLen {
		commit = commit[:shortCommitLen]
	}
	return i.Version + "+" + commit
}

func (i Info) String() string {
	return fmt.Sprintf("expander %s (commit %s, built %s, %s %s)",
		i.Version, i.GitCommit, i.BuildTime, i.GoVersion, i.Platform)
}
