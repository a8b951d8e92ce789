package version

import (
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withBuildVars(t *testing.T, v, b, c string, bi *debug.BuildInfo) {
	t.Helper()
	origV, origB, origC, origRead := Version, BuildTime, Commit, readBuildInfo
	t.Cleanup(func() {
		Version, BuildTime, Commit, readBuildInfo = origV, origB, origC, origRead
	})

	Version, BuildTime, Commit = v, b, c
	readBuildInfo = func() (*debug.BuildInfo, bool) {
		return bi, bi != nil
	}
}

func TestGet_LinkerValues(t *testing.T) {
	withBuildVars(t, "1.2.3", "2025-12-22T00:00:00Z", "deadbeef", &debug.BuildInfo{
		Main:     debug.Module{Version: "v9.9.9"},
		Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "cafebabe"}},
	})

	info := Get()
	require.Equal(t, "1.2.3", info.Version)
	require.Equal(t, "2025-12-22T00:00:00Z", info.BuildTime)
	require.Equal(t, "deadbeef", info.Commit)
	require.NotEmpty(t, info.GoVersion)
	require.NotEmpty(t, info.OS)
	require.NotEmpty(t, info.Arch)

	assert.Equal(t, "1.2.3", Short())
	assert.Contains(t, Full(), "themebundle 1.2.3 (commit: deadbeef, built: 2025-12-22T00:00:00Z")
}

func TestGet_BuildInfoFallback(t *testing.T) {
	withBuildVars(t, "dev", "unknown", "unknown", &debug.BuildInfo{
		Main: debug.Module{Version: "v0.4.0"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "cafebabe"},
			{Key: "vcs.time", Value: "2026-01-02T03:04:05Z"},
		},
	})

	info := Get()
	assert.Equal(t, "v0.4.0", info.Version)
	assert.Equal(t, "cafebabe", info.Commit)
	assert.Equal(t, "2026-01-02T03:04:05Z", info.BuildTime)
}

func TestGet_DevelBuild(t *testing.T) {
	withBuildVars(t, "dev", "unknown", "unknown", &debug.BuildInfo{
		Main: debug.Module{Version: "(devel)"},
	})
	assert.Equal(t, "dev", Get().Version)

	withBuildVars(t, "dev", "unknown", "unknown", nil)
	assert.Equal(t, "dev", Short())
}
