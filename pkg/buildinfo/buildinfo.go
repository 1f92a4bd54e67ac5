// Package buildinfo contains build information.
//
// The version can be pinned during compilation by passing
//
//	-ldflags "-X src.mdkit.dev/pkg/buildinfo.VCSOverride=20220401235958-123456789012"
//
// to "go build", for builds that don't have access to VCS information.
package buildinfo

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"runtime/debug"
	"strings"
	"time"

	"src.mdkit.dev/pkg/must"
	"src.mdkit.dev/pkg/prog"
)

// VersionBase is the version of the next release.
const VersionBase = "0.3.0"

// VCSOverride, if not empty, is used instead of VCS information from the Go
// toolchain. It should have the form "TIMESTAMP-REVISION".
var VCSOverride string

// Type contains all the build information fields.
type Type struct {
	Version   string `json:"version"`
	GoVersion string `json:"goversion"`
}

// Value contains all the build information.
var Value = Type{
	Version:   devVersion(VersionBase, VCSOverride, debug.ReadBuildInfo),
	GoVersion: runtime.Version(),
}

func devVersion(next, vcsOverride string, readBuildInfo func() (*debug.BuildInfo, bool)) string {
	if vcsOverride != "" {
		return next + "-dev.0." + vcsOverride
	}
	fallback := next + "-dev.unknown"
	bi, ok := readBuildInfo()
	if !ok {
		return fallback
	}
	// If the main module has a real version, as with "go install
	// src.mdkit.dev/cmd/mdkit@version", use it.
	if v := bi.Main.Version; v != "" && v != "(devel)" {
		return strings.TrimPrefix(v, "v")
	}
	var revision, timestamp string
	modified := false
	for _, setting := range bi.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
		case "vcs.time":
			timestamp = setting.Value
		case "vcs.modified":
			modified = setting.Value == "true"
		}
	}
	if revision == "" {
		return fallback
	}
	t, err := time.Parse(time.RFC3339Nano, timestamp)
	if err != nil {
		return fallback
	}
	// Same format as pseudo-versions of Go modules.
	v := fmt.Sprintf("%s-dev.0.%s-%s",
		next, t.UTC().Format("20060102150405"), revision[:min(12, len(revision))])
	if modified {
		v += "-dirty"
	}
	return v
}

// Program is the buildinfo subprogram. It handles -version and -buildinfo.
type Program struct {
	version, buildinfo bool
	json               *bool
}

func (p *Program) RegisterFlags(fs *prog.FlagSet) {
	fs.BoolVar(&p.version, "version", false, "show version and quit")
	fs.BoolVar(&p.buildinfo, "buildinfo", false, "show build info and quit")
	p.json = fs.JSON()
}

func (p *Program) Run(fds [3]*os.File, _ []string) error {
	switch {
	case p.buildinfo:
		if *p.json {
			fmt.Fprintln(fds[1], mustToJSON(Value))
		} else {
			fmt.Fprintln(fds[1], "Version:", Value.Version)
			fmt.Fprintln(fds[1], "Go version:", Value.GoVersion)
		}
	case p.version:
		if *p.json {
			fmt.Fprintln(fds[1], mustToJSON(Value.Version))
		} else {
			fmt.Fprintln(fds[1], Value.Version)
		}
	default:
		return prog.NextProgram()
	}
	return nil
}

func mustToJSON(v any) string {
	return string(must.OK1(json.Marshal(v)))
}
