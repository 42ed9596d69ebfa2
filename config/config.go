package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// EnvPrefix prefixes environment overrides. A double underscore separates
// nested keys: FOLIO_MOTION__REDUCED=true sets motion.reduced.
const EnvPrefix = "FOLIO_"

// Config is the top-level configuration, corresponding to folio.yaml.
type Config struct {
	Window     WindowConfig `yaml:"window" koanf:"window"`
	Motion     MotionConfig `yaml:"motion" koanf:"motion"`
	ThemeFile  string       `yaml:"theme_file" koanf:"theme_file"`
	ContentDir string       `yaml:"content_dir" koanf:"content_dir"`
	Watch      bool         `yaml:"watch" koanf:"watch"`
	Debug      bool         `yaml:"debug" koanf:"debug"`
}

type WindowConfig struct {
	Title      string `yaml:"title" koanf:"title"`
	Width      int    `yaml:"width" koanf:"width"`
	Height     int    `yaml:"height" koanf:"height"`
	Fullscreen bool   `yaml:"fullscreen" koanf:"fullscreen"`
}

// MotionConfig controls the particle background.
type MotionConfig struct {
	// Reduced keeps the particle background from ever starting.
	Reduced bool `yaml:"reduced" koanf:"reduced"`
	// PauseHidden stops the animation while the window is unfocused.
	PauseHidden bool `yaml:"pause_hidden" koanf:"pause_hidden"`
	// Seed fixes the random source; 0 seeds from the clock.
	Seed uint64 `yaml:"seed" koanf:"seed"`
}

func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "folio",
			Width:  1280,
			Height: 720,
		},
		Motion: MotionConfig{
			PauseHidden: true,
		},
		ContentDir: "content",
		Watch:      true,
	}
}

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (FOLIO_*). A missing file yields the
// defaults.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	cfg := DefaultConfig()

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("config: stat %s: %w", path, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("config: env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	return cfg, nil
}

func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}

// ErrExists is returned by WriteDefault when path is already a file.
var ErrExists = errors.New("config: file already exists")

// WriteDefault saves DefaultConfig to path, creating its directory. An
// existing file is kept unless overwrite is set.
func WriteDefault(path string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w: %s", ErrExists, path)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: create dir: %w", err)
	}
	return DefaultConfig().Save(path)
}

// Validate checks that the configuration contains usable values.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("config: window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Window.Title == "" {
		return fmt.Errorf("config: window title is required")
	}
	return nil
}
