package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arc-language/linkbridge/pkg/directive"
	"github.com/arc-language/linkbridge/pkg/libpath"
)

func TestDefaultConfig(t *testing.T) {
	t.Setenv(SystemRootEnv, "")

	cfg := DefaultConfig()
	assert.Equal(t, libpath.DefaultSystemRoot, cfg.SystemRoot)
	assert.Equal(t, directive.CargoMarkers.Search, cfg.Markers.Search)
	assert.Equal(t, directive.CargoMarkers.Link, cfg.Markers.Link)
	assert.False(t, cfg.FrameworkSearch)
	assert.False(t, cfg.Debug)
}

func TestDefaultConfigEnvOverride(t *testing.T) {
	t.Setenv(SystemRootEnv, "/opt/sysroot/usr/lib")
	assert.Equal(t, "/opt/sysroot/usr/lib", DefaultConfig().SystemRoot)
}

func TestLoadConfigMissingFile(t *testing.T) {
	t.Setenv(SystemRootEnv, "")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigPartial(t *testing.T) {
	t.Setenv(SystemRootEnv, "")

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("system_root: /usr/lib64/\nframework_search: true\n"), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "/usr/lib64/", cfg.SystemRoot)
	assert.True(t, cfg.FrameworkSearch)
	assert.Equal(t, directive.CargoMarkers.Link, cfg.Markers.Link)
}

func TestLoadConfigInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("system_root: [unterminated\n"), 0644))

	_, err := LoadConfig(path)
	assert.ErrorContains(t, err, "parsing config")
}

func TestLoadConfigEmptyMarker(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("markers:\n  search: search\n  link: \"\"\n"), 0644))

	_, err := LoadConfig(path)
	assert.ErrorContains(t, err, "markers need both")
}

func TestSaveAndLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := &Config{
		SystemRoot:      "/usr/lib/",
		Markers:         Markers{Search: "search", Link: "link"},
		FrameworkSearch: true,
		Debug:           true,
	}
	require.NoError(t, SaveConfig(cfg, path))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestEmitterConfig(t *testing.T) {
	cfg := &Config{SystemRoot: "/usr/lib/", Markers: Markers{Search: "search", Link: "link"}, FrameworkSearch: true}
	ec := cfg.EmitterConfig(nil)
	assert.Equal(t, directive.PlainMarkers, ec.Markers)
	assert.Equal(t, "/usr/lib/", ec.SystemRoot)
	assert.True(t, ec.FrameworkSearch)
}
