package main

import (
	"fmt"
	"runtime"

	"github.com/phuslu/log"
)

// Set with -ldflags "-X main.version=... -X main.buildDate=... -X main.gitCommit=...".
var (
	version   = "dev"
	buildDate = "unknown"
	gitCommit = "unknown"
)

type BuildInfo struct {
	Version, BuildDate, GitCommit, GoVersion, Platform string
}

func GetBuildInfo() BuildInfo {
	return BuildInfo{
		Version:   version,
		BuildDate: buildDate,
		GitCommit: gitCommit,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// Log writes the build info as one structured startup line.
func (b BuildInfo) Log(logger *log.Logger) {
	logger.Info().
		Str("version", b.Version).
		Str("commit", b.GitCommit).
		Str("built", b.BuildDate).
		Str("go", b.GoVersion).
		Str("platform", b.Platform).
		Msg("starting restaurant chatbot")
}
