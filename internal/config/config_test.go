package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("ONBOARDING_CONFIG", filepath.Join(home, "config.toml"))
	return home
}

func TestLoadDefaults(t *testing.T) {
	home := isolate(t)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, filepath.Join(home, ".local", "share", "onboarding", "catalog.db"), cfg.Catalog.Path)
	require.Equal(t, "default", cfg.Catalog.Deck)
	require.Empty(t, cfg.Slides.File)
	require.Equal(t, "auto", cfg.UI.GlamourStyle)
	require.True(t, cfg.UI.Mouse)
	require.True(t, cfg.UI.DebounceNavigation)
	require.Equal(t, 60, cfg.UI.AnimationFPS)
	require.InDelta(t, 7.0, cfg.UI.SpringFrequency, 1e-9)
	require.InDelta(t, 0.9, cfg.UI.SpringDamping, 1e-9)
	require.Equal(t, "info", cfg.Log.Level)
}

func TestLoadFileAndEnvOverrides(t *testing.T) {
	home := isolate(t)
	data := `
[catalog]
deck = "team"

[slides]
file = "/tmp/deck.yaml"

[ui]
glamour_style = "dark"
animation_fps = 30
`
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.toml"), []byte(data), 0o600))
	t.Setenv("ONBOARDING_UI_MOUSE", "false")
	t.Setenv("ONBOARDING_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "team", cfg.Catalog.Deck)
	require.Equal(t, "/tmp/deck.yaml", cfg.Slides.File)
	require.Equal(t, "dark", cfg.UI.GlamourStyle)
	require.Equal(t, 30, cfg.UI.AnimationFPS)
	require.False(t, cfg.UI.Mouse)
	require.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadRejectsBrokenFile(t *testing.T) {
	home := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.toml"), []byte("[ui\n"), 0o600))

	_, err := Load()
	require.ErrorContains(t, err, "read config")
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	home := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.toml"), []byte("[ui]\nglamour_style = \"neon\"\n"), 0o600))

	_, err := Load()
	require.ErrorContains(t, err, "glamour_style")
}

func TestValidate(t *testing.T) {
	valid := Config{UI: UIConfig{GlamourStyle: "Light", AnimationFPS: 60, SpringFrequency: 5, SpringDamping: 1}}
	require.NoError(t, valid.Validate())

	for name, mutate := range map[string]func(*Config){
		"fps":       func(c *Config) { c.UI.AnimationFPS = 0 },
		"frequency": func(c *Config) { c.UI.SpringFrequency = -1 },
		"damping":   func(c *Config) { c.UI.SpringDamping = 0 },
		"style":     func(c *Config) { c.UI.GlamourStyle = "" },
	} {
		c := valid
		mutate(&c)
		require.Error(t, c.Validate(), name)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	require.NoError(t, err)
	cfg.Catalog.Deck = "saved"
	cfg.UI.DebounceNavigation = false
	require.NoError(t, SaveTo(Path(), cfg))

	loaded, err := Load()
	require.NoError(t, err)
	require.Equal(t, cfg, loaded)
}

func TestLoadFromExplicitPath(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "custom.toml")
	cfg, err := Load()
	require.NoError(t, err)
	cfg.Catalog.Deck = "team"
	require.NoError(t, SaveTo(path, cfg))

	fromDefault, err := Load()
	require.NoError(t, err)
	require.Equal(t, "default", fromDefault.Catalog.Deck)

	fromPath, err := LoadFrom(path)
	require.NoError(t, err)
	require.Equal(t, "team", fromPath.Catalog.Deck)
}
