// SPDX-License-Identifier: MIT
//
// Package build exposes metadata stamped into the binary via -ldflags:
// application name, version, Git commit and build time. A binary built
// without the flags reports development placeholders instead of
// failing, since the library is usable without any stamping.
package build

import "fmt"

type Info struct {
	Name    string
	Version string
	Commit  string
	Time    string
}

// Populated by -ldflags at compile time, e.g.
//
//	-ldflags "-X github.com/LIONant-depot/xbits/pkg/build.version=v1.2.0"
var (
	name    string
	version string
	commit  string
	buildAt string
)

// GetInfo returns the build metadata, substituting development
// placeholders for anything the linker did not stamp.
func GetInfo() Info {
	info := Info{
		Name:    name,
		Version: version,
		Commit:  commit,
		Time:    buildAt,
	}
	if info.Name == "" {
		info.Name = "xbits"
	}
	if info.Version == "" {
		info.Version = "dev"
	}
	if info.Commit == "" {
		info.Commit = "none"
	}
	if info.Time == "" {
		info.Time = "unknown"
	}
	return info
}

// Summary renders the metadata as a single version line.
func (i Info) Summary() string {
	return fmt.Sprintf("%s %s (commit %s, built %s)", i.Name, i.Version, i.Commit, i.Time)
}
