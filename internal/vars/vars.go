// Package vars holds build information set with -ldflags.
package vars

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Build information.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = ""
	URL       = "https://github.com/woozymasta/simpak"
)

// Info is the build information in one value.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildTime string `json:"build_time,omitempty"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
	URL       string `json:"url"`
}

// Get returns the build information, falling back to the module build info
// when the binary was built without -ldflags.
func Get() Info {
	info := Info{
		Version:   Version,
		Commit:    Commit,
		BuildTime: BuildTime,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
		URL:       URL,
	}

	if bi, ok := debug.ReadBuildInfo(); ok {
		if info.Version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
			info.Version = bi.Main.Version
		}
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs.revision":
				if info.Commit == "unknown" {
					info.Commit = s.Value
				}
			case "vcs.time":
				if info.BuildTime == "" {
					info.BuildTime = s.Value
				}
			}
		}
	}

	return info
}

// Print writes the build information to stdout.
func Print() {
	info := Get()
	fmt.Printf("version:    %s\n", info.Version)
	fmt.Printf("commit:     %s\n", info.Commit)
	if info.BuildTime != "" {
		fmt.Printf("build time: %s\n", info.BuildTime)
	}
	fmt.Printf("go:         %s\n", info.GoVersion)
	fmt.Printf("platform:   %s\n", info.Platform)
	fmt.Printf("url:        %s\n", info.URL)
}
