package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Catalog CatalogConfig `mapstructure:"catalog"`
	Slides  SlidesConfig  `mapstructure:"slides"`
	Assets  AssetsConfig  `mapstructure:"assets"`
	UI      UIConfig      `mapstructure:"ui"`
	Log     LogConfig     `mapstructure:"log"`
}

// CatalogConfig holds the sqlite slide catalog settings.
type CatalogConfig struct {
	Path string `mapstructure:"path"`
	Deck string `mapstructure:"deck"`
}

// SlidesConfig points at a deck file that replaces the catalog deck.
type SlidesConfig struct {
	File string `mapstructure:"file"`
}

// AssetsConfig holds the image directory.
type AssetsConfig struct {
	Dir string `mapstructure:"dir"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	GlamourStyle       string  `mapstructure:"glamour_style"`
	Mouse              bool    `mapstructure:"mouse"`
	DebounceNavigation bool    `mapstructure:"debounce_navigation"`
	AnimationFPS       int     `mapstructure:"animation_fps"`
	SpringFrequency    float64 `mapstructure:"spring_frequency"`
	SpringDamping      float64 `mapstructure:"spring_damping"`
}

// LogConfig holds logger settings. An empty path disables logging.
type LogConfig struct {
	Path  string `mapstructure:"path"`
	Level string `mapstructure:"level"`
}

var glamourStyles = []string{"auto", "dark", "light", "notty", "ascii", "dracula", "pink", "tokyo-night"}

func dataDir() string {
	return filepath.Join(os.Getenv("HOME"), ".local", "share", "onboarding")
}

func configPath() string {
	if p := os.Getenv("ONBOARDING_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "onboarding", "config.toml")
}

// Path is the config file Load reads: $ONBOARDING_CONFIG or
// ~/.config/onboarding/config.toml.
func Path() string {
	return configPath()
}

// Load reads configuration from file and env. Env var overrides use prefix ONBOARDING_.
func Load() (Config, error) {
	return LoadFrom("")
}

// LoadFrom is Load with an explicit config file; an empty path uses Path().
func LoadFrom(path string) (Config, error) {
	if path == "" {
		path = configPath()
	}
	v := viper.New()

	// default values
	v.SetDefault("catalog.path", filepath.Join(dataDir(), "catalog.db"))
	v.SetDefault("catalog.deck", "default")
	v.SetDefault("slides.file", "")
	v.SetDefault("assets.dir", filepath.Join(dataDir(), "assets"))
	v.SetDefault("ui.glamour_style", "auto")
	v.SetDefault("ui.mouse", true)
	v.SetDefault("ui.debounce_navigation", true)
	v.SetDefault("ui.animation_fps", 60)
	v.SetDefault("ui.spring_frequency", 7.0)
	v.SetDefault("ui.spring_damping", 0.9)
	v.SetDefault("log.path", filepath.Join(dataDir(), "onboarding.log"))
	v.SetDefault("log.level", "info")

	v.SetConfigType("toml")
	v.SetConfigFile(path)

	v.SetEnvPrefix("ONBOARDING")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// a missing config file is fine; a broken one is not
	if err := v.ReadInConfig(); err != nil {
		if _, statErr := os.Stat(path); statErr == nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate rejects settings the UI cannot work with.
func (c Config) Validate() error {
	if c.UI.AnimationFPS <= 0 {
		return fmt.Errorf("ui.animation_fps must be positive, got %d", c.UI.AnimationFPS)
	}
	if c.UI.SpringFrequency <= 0 {
		return fmt.Errorf("ui.spring_frequency must be positive, got %g", c.UI.SpringFrequency)
	}
	if c.UI.SpringDamping <= 0 {
		return fmt.Errorf("ui.spring_damping must be positive, got %g", c.UI.SpringDamping)
	}
	style := strings.ToLower(strings.TrimSpace(c.UI.GlamourStyle))
	for _, s := range glamourStyles {
		if s == style {
			return nil
		}
	}
	return fmt.Errorf("ui.glamour_style %q is not one of %s", c.UI.GlamourStyle, strings.Join(glamourStyles, ", "))
}

// SaveTo writes cfg to path as TOML, creating the directory if needed.
func SaveTo(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("catalog.path", cfg.Catalog.Path)
	v.Set("catalog.deck", cfg.Catalog.Deck)
	v.Set("slides.file", cfg.Slides.File)
	v.Set("assets.dir", cfg.Assets.Dir)
	v.Set("ui.glamour_style", cfg.UI.GlamourStyle)
	v.Set("ui.mouse", cfg.UI.Mouse)
	v.Set("ui.debounce_navigation", cfg.UI.DebounceNavigation)
	v.Set("ui.animation_fps", cfg.UI.AnimationFPS)
	v.Set("ui.spring_frequency", cfg.UI.SpringFrequency)
	v.Set("ui.spring_damping", cfg.UI.SpringDamping)
	v.Set("log.path", cfg.Log.Path)
	v.Set("log.level", cfg.Log.Level)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
