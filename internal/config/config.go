package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/adrg/xdg"
	"github.com/tizzywhizzy/bioterm/internal/rain"
	"github.com/tizzywhizzy/bioterm/internal/theme"
	"gopkg.in/yaml.v3"
)

const (
	DefaultWordDelay     = 0.28
	DefaultCharDelay     = 0.02
	DefaultFrameInterval = 0.03
	DefaultMinSpeed      = 0.05
	DefaultMaxSpeed      = 0.4
	DefaultDensity       = rain.DefaultDensity
	DefaultMaxSlack      = 8
	DefaultTheme         = "matrix"
	DefaultCharset       = rain.DefaultCharset

	// RelPath is the config file location relative to the XDG config dirs.
	RelPath = "bioterm/config.yaml"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid value")

type Config struct {
	Repeat   bool         `yaml:"repeat"`
	Autoplay bool         `yaml:"autoplay"`
	Lines    []string     `yaml:"lines,omitempty"`
	Theme    string       `yaml:"theme"`
	Seed     int64        `yaml:"seed,omitempty"`
	Timing   TimingConfig `yaml:"timing"`
	Rain     RainConfig   `yaml:"rain"`
}

// TimingConfig holds overlay and frame pacing, in seconds.
type TimingConfig struct {
	WordDelay     float64 `yaml:"word_delay"`
	CharDelay     float64 `yaml:"char_delay"`
	FrameInterval float64 `yaml:"frame_interval"`
}

type RainConfig struct {
	MinSpeed float64 `yaml:"min_speed"`
	MaxSpeed float64 `yaml:"max_speed"`
	Density  float64 `yaml:"density"`
	MaxSlack int     `yaml:"max_slack"`
	Charset  string  `yaml:"charset"`
}

func DefaultConfig() *Config {
	return &Config{
		Theme: DefaultTheme,
		Timing: TimingConfig{
			WordDelay:     DefaultWordDelay,
			CharDelay:     DefaultCharDelay,
			FrameInterval: DefaultFrameInterval,
		},
		Rain: RainConfig{
			MinSpeed: DefaultMinSpeed,
			MaxSpeed: DefaultMaxSpeed,
			Density:  DefaultDensity,
			MaxSlack: DefaultMaxSlack,
			Charset:  DefaultCharset,
		},
	}
}

// Load reads a YAML file over the defaults and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// DefaultPath returns the user config file path, creating its directory.
func DefaultPath() (string, error) {
	return xdg.ConfigFile(RelPath)
}

// Find looks for an existing config file in the XDG config directories.
func Find() (string, bool) {
	path, err := xdg.SearchConfigFile(RelPath)
	if err != nil {
		return "", false
	}
	return path, true
}

func (c *Config) Validate() error {
	switch {
	case c.Timing.WordDelay < 0:
		return fmt.Errorf("%w: word_delay %v < 0", ErrInvalid, c.Timing.WordDelay)
	case c.Timing.CharDelay < 0:
		return fmt.Errorf("%w: char_delay %v < 0", ErrInvalid, c.Timing.CharDelay)
	case c.Timing.FrameInterval <= 0:
		return fmt.Errorf("%w: frame_interval %v must be positive", ErrInvalid, c.Timing.FrameInterval)
	case c.Rain.MinSpeed <= 0:
		return fmt.Errorf("%w: min_speed %v must be positive", ErrInvalid, c.Rain.MinSpeed)
	case c.Rain.MaxSpeed < c.Rain.MinSpeed:
		return fmt.Errorf("%w: max_speed %v below min_speed %v", ErrInvalid, c.Rain.MaxSpeed, c.Rain.MinSpeed)
	case c.Rain.Density <= 0 || c.Rain.Density > 1:
		return fmt.Errorf("%w: density %v outside (0, 1]", ErrInvalid, c.Rain.Density)
	case c.Rain.MaxSlack < 0:
		return fmt.Errorf("%w: max_slack %d < 0", ErrInvalid, c.Rain.MaxSlack)
	}
	if _, ok := theme.Get(c.Theme); !ok {
		return fmt.Errorf("%w: unknown theme %q (available: %v)", ErrInvalid, c.Theme, theme.Names())
	}
	return nil
}

func (c *Config) WordDelay() time.Duration     { return seconds(c.Timing.WordDelay) }
func (c *Config) CharDelay() time.Duration     { return seconds(c.Timing.CharDelay) }
func (c *Config) FrameInterval() time.Duration { return seconds(c.Timing.FrameInterval) }

// RainParams converts the rain section into column sampling parameters.
func (c *Config) RainParams() rain.Params {
	return rain.Params{
		MinSpeed: seconds(c.Rain.MinSpeed),
		MaxSpeed: seconds(c.Rain.MaxSpeed),
		MaxSlack: c.Rain.MaxSlack,
		Charset:  rain.ResolveCharset(c.Rain.Charset),
	}
}

// ThemeOrDefault returns the configured theme, falling back to the default.
func (c *Config) ThemeOrDefault() theme.Theme {
	th, _ := theme.Get(c.Theme)
	return th
}

func seconds(s float64) time.Duration {
	return time.Duration(math.Round(s * float64(time.Second)))
}
