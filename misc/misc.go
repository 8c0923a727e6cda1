// Package misc provides build identity helpers shared by every layer of the
// program: application name, version and VCS revision. Kept dependency free
// so both cmd binaries and library packages can use it.
package misc

import (
	"runtime/debug"
)

// Overwritten at build time:
//
//	go build -ldflags "-X stylegen/misc.appVersion=1.2.3 -X stylegen/misc.appGitHash=abcdef"
var (
	appName    = "stylegen"
	appVersion = ""
	appGitHash = ""
)

// GetAppName returns the short program name used for logger naming,
// temporary file prefixes and report manifests.
func GetAppName() string {
	return appName
}

// GetVersion returns the program version, falling back to module build
// metadata when the linker did not set one.
func GetVersion() string {
	if appVersion != "" {
		return appVersion
	}
	if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		return bi.Main.Version
	}
	return "development"
}

// GetGitHash returns the VCS revision recorded in build metadata, abbreviated
// to 12 characters the way git does it.
func GetGitHash() string {
	if appGitHash != "" {
		return appGitHash
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" {
				if len(s.Value) > 12 {
					return s.Value[:12]
				}
				return s.Value
			}
		}
	}
	return "unknown"
}
