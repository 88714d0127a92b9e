// Package version reports the build version of the service
package version

import (
	"runtime"
	"runtime/debug"
)

// ServiceName is the name the API reports in meta endpoints and client info
const ServiceName = "complaints-api"

// BuildInfo holds version information about the service build
type BuildInfo struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
	Go      string `json:"go"`
}

// Set via -ldflags "-X 'complaints/internal/core/version.version=v0.1.0'
// -X 'complaints/internal/core/version.commit=abcd' -X 'complaints/internal/core/version.date=2026-10-01'"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var readBuildInfo = debug.ReadBuildInfo

// Info returns the build information, the commit falls back to the vcs stamp of the binary
func Info() BuildInfo {
	c := commit
	if c == "none" {
		if bi, ok := readBuildInfo(); ok && bi != nil {
			for _, s := range bi.Settings {
				if s.Key == "vcs.revision" && s.Value != "" {
					c = s.Value
				}
			}
		}
	}
	return BuildInfo{
		Service: ServiceName,
		Version: version,
		Commit:  c,
		Date:    date,
		Go:      runtime.Version(),
	}
}
