package version

import (
	"runtime/debug"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func stubBuild(t *testing.T, version, commit, buildTime string, bi *debug.BuildInfo) {
	t.Helper()
	origVersion, origCommit, origBuildTime, origRead := Version, GitCommit, BuildTime, readBuildInfo
	t.Cleanup(func() {
		Version, GitCommit, BuildTime, readBuildInfo = origVersion, origCommit, origBuildTime, origRead
	})
	Version, GitCommit, BuildTime = version, commit, buildTime
	readBuildInfo = func() (*debug.BuildInfo, bool) { return bi, bi != nil }
}

func TestGet_Defaults(t *testing.T) {
	stubBuild(t, "dev", "", "", nil)

	info := Get()
	if info.Version != "dev" || info.IsRelease() {
		t.Errorf("unexpected info %+v", info)
	}
	if info.Short() != "dev" || info.String() != "dev" {
		t.Errorf("Short = %q, String = %q", info.Short(), info.String())
	}
}

func TestGet_LdflagsWin(t *testing.T) {
	stubBuild(t, "1.2.0", "0123456789abcdef", "2024-01-15T10:30:00Z", &debug.BuildInfo{
		GoVersion: "go1.24.0",
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "fffffffffffffff"},
			{Key: "vcs.time", Value: "2020-01-01T00:00:00Z"},
		},
	})

	info := Get()
	if info.GitCommit != "0123456" {
		t.Errorf("GitCommit = %q", info.GitCommit)
	}
	want := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	if !info.BuildDate.Equal(want) {
		t.Errorf("BuildDate = %v", info.BuildDate)
	}
	if !info.IsRelease() {
		t.Error("expected a release build")
	}
	if got := info.String(); got != "1.2.0-0123456 (built 2024-01-15T10:30:00Z) go1.24.0" {
		t.Errorf("String = %q", got)
	}
}

func TestGet_FromVCSSettings(t *testing.T) {
	stubBuild(t, "dev", "", "", &debug.BuildInfo{
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "abcdef0123456"},
			{Key: "vcs.modified", Value: "true"},
			{Key: "vcs.time", Value: "2025-03-01T08:00:00Z"},
		},
	})

	info := Get()
	if info.Short() != "dev-abcdef0-dirty" {
		t.Errorf("Short = %q", info.Short())
	}
	if info.BuildTime != "2025-03-01T08:00:00Z" {
		t.Errorf("BuildTime = %q", info.BuildTime)
	}
}

func TestGet_ModulesSortedAndReplaced(t *testing.T) {
	stubBuild(t, "1.0.0", "", "", &debug.BuildInfo{
		Deps: []*debug.Module{
			{Path: "github.com/spf13/viper", Version: "v1.21.0"},
			nil,
			{Path: "github.com/emirpasic/gods", Version: "v1.18.1"},
			{Path: "github.com/rs/zerolog", Version: "v1.33.0", Replace: &debug.Module{Path: "github.com/rs/zerolog", Version: "v1.34.0"}},
		},
	})

	want := []Module{
		{Path: "github.com/emirpasic/gods", Version: "v1.18.1"},
		{Path: "github.com/rs/zerolog", Version: "v1.34.0"},
		{Path: "github.com/spf13/viper", Version: "v1.21.0"},
	}
	if diff := cmp.Diff(want, Get().Modules); diff != "" {
		t.Errorf("modules mismatch (-want +got):\n%s", diff)
	}
}
