package version

import (
	"fmt"
	"runtime/debug"
	"strings"
	"time"

	"github.com/kbukum/golinq/linq"
)

// Set at build time using -ldflags.
var (
	Version   = "dev"
	GitCommit = ""
	BuildTime = ""
)

// readBuildInfo is replaced in tests.
var readBuildInfo = debug.ReadBuildInfo

// Module is a dependency compiled into the binary.
type Module struct {
	Path    string `json:"path"`
	Version string `json:"version"`
}

// Info describes the running build.
type Info struct {
	Version   string    `json:"version"`
	GitCommit string    `json:"git_commit,omitempty"`
	BuildTime string    `json:"build_time,omitempty"`
	BuildDate time.Time `json:"-"`
	GoVersion string    `json:"go_version,omitempty"`
	Modified  bool      `json:"modified"`
	Modules   []Module  `json:"modules,omitempty"`
}

// Get returns the build information, preferring ldflags values over the
// embedded VCS settings. Modules are sorted by path.
func Get() Info {
	info := Info{
		Version:   Version,
		GitCommit: GitCommit,
		BuildTime: BuildTime,
	}

	if bi, ok := readBuildInfo(); ok && bi != nil {
		info.GoVersion = bi.GoVersion
		for _, setting := range bi.Settings {
			switch setting.Key {
			case "vcs.revision":
				if info.GitCommit == "" {
					info.GitCommit = setting.Value
				}
			case "vcs.modified":
				info.Modified = setting.Value == "true"
			case "vcs.time":
				if info.BuildTime == "" {
					info.BuildTime = setting.Value
				}
			}
		}
		info.Modules = modules(bi.Deps)
	}

	if len(info.GitCommit) > 7 {
		info.GitCommit = info.GitCommit[:7]
	}
	if t, err := time.Parse(time.RFC3339, info.BuildTime); err == nil {
		info.BuildDate = t.UTC()
	}
	return info
}

func modules(deps []*debug.Module) []Module {
	present := linq.From(&deps).Where(func(m *debug.Module) bool { return m != nil })
	resolved := linq.Select(present, func(m *debug.Module) Module {
		if m.Replace != nil {
			m = m.Replace
		}
		return Module{Path: m.Path, Version: m.Version}
	})
	return linq.OrderByAscending(resolved, func(m Module) string { return m.Path }).ToSlice()
}

// IsRelease reports whether the binary was built from a tagged, clean tree.
func (i Info) IsRelease() bool {
	return i.Version != "dev" && !i.Modified && !strings.Contains(i.Version, "dirty")
}

// Short returns the version with the abbreviated commit, e.g. "1.2.0-abc1234".
func (i Info) Short() string {
	if i.GitCommit == "" {
		return i.Version
	}
	s := i.Version + "-" + i.GitCommit
	if i.Modified {
		s += "-dirty"
	}
	return s
}

// String returns Short followed by the build date and Go version when known.
func (i Info) String() string {
	var sb strings.Builder
	sb.WriteString(i.Short())
	if !i.BuildDate.IsZero() {
		fmt.Fprintf(&sb, " (built %s)", i.BuildDate.Format(time.RFC3339))
	}
	if i.GoVersion != "" {
		sb.WriteString(" " + i.GoVersion)
	}
	return sb.String()
}
