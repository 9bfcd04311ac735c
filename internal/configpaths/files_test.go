package configpaths_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openomen/omenctl/internal/configpaths"
)

func TestConfigCandidatePathsSameBasesEverywhere(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix path layout")
	}
	cfgHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", cfgHome)

	jsonPaths, yamlPaths, tomlPaths := configpaths.ConfigCandidatePaths("")

	wd, err := os.Getwd()
	require.NoError(t, err)
	dirs := []string{wd, filepath.Join(cfgHome, "omenctl"), "/etc/omenctl"}

	// A basename valid in one location must be valid in all of them.
	for _, base := range []string{"omenctl", "config", "paint"} {
		for _, dir := range dirs {
			assert.Contains(t, jsonPaths, filepath.Join(dir, base+".json"), "base %q in %s", base, dir)
			assert.Contains(t, yamlPaths, filepath.Join(dir, base+".yaml"), "base %q in %s", base, dir)
			assert.Contains(t, yamlPaths, filepath.Join(dir, base+".yml"), "base %q in %s", base, dir)
			assert.Contains(t, tomlPaths, filepath.Join(dir, base+".toml"), "base %q in %s", base, dir)
		}
	}
}

func TestConfigCandidatePathsUserPathFirst(t *testing.T) {
	jsonPaths, yamlPaths, tomlPaths := configpaths.ConfigCandidatePaths("/tmp/custom.toml")
	require.NotEmpty(t, tomlPaths)
	assert.Equal(t, "/tmp/custom.toml", tomlPaths[0])
	for _, p := range append(jsonPaths, yamlPaths...) {
		assert.NotEqual(t, "/tmp/custom.toml", p)
	}
}
