package version

import (
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFillFromBuildInfo(t *testing.T) {
	info := Info{Version: "0.0.0", Branch: unknown, Revision: unknown, BuiltAt: unknown, GoVersion: unknown}
	fill(&info, &debug.BuildInfo{
		GoVersion: "go1.24.1",
		Main:      debug.Module{Version: "v1.2.3"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "0123456789abcdef"},
			{Key: "vcs.time", Value: "2024-06-12T14:05:09Z"},
			{Key: "vcs.modified", Value: "true"},
		},
	})

	assert.Equal(t, "v1.2.3", info.Version)
	assert.Equal(t, "0123456", info.Revision)
	assert.Equal(t, "2024-06-12T14:05:09Z", info.BuiltAt)
	assert.Equal(t, "go1.24.1", info.GoVersion)
	assert.True(t, info.Modified)
	assert.Contains(t, info.String(), "Revision: 0123456 (dirty)")
}

func TestFillKeepsInjectedValues(t *testing.T) {
	info := Info{Version: "v9.9.9", Branch: "main", Revision: "abc", BuiltAt: "yesterday", GoVersion: "go1.23"}
	fill(&info, &debug.BuildInfo{
		GoVersion: "go1.24.1",
		Main:      debug.Module{Version: "(devel)"},
		Settings:  []debug.BuildSetting{{Key: "vcs.revision", Value: "0123456789"}},
	})

	assert.Equal(t, "v9.9.9", info.Version)
	assert.Equal(t, "abc", info.Revision)
	assert.Equal(t, "go1.23", info.GoVersion)
}

func TestJSON(t *testing.T) {
	out, err := Info{Version: "v1.0.0"}.JSON()
	require.NoError(t, err)
	assert.Contains(t, out, `"version": "v1.0.0"`)
	assert.NotContains(t, out, "modified")
}
