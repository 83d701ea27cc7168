// Package config loads slayerdex configuration from defaults, the YAML config
// file, a .env file, and SLAYERDEX_* environment variables, in increasing order
// of precedence. CLI flags are applied on top by the cli package.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/rshade/slayerdex/internal/api"
	"github.com/rshade/slayerdex/internal/character"
	"github.com/rshade/slayerdex/internal/loader"
	"github.com/rshade/slayerdex/internal/logging"
)

// Output formats accepted by non-interactive commands.
const (
	FormatTable = "table"
	FormatJSON  = "json"
)

// configFileName is the file looked up inside the config directory.
const configFileName = "config.yaml"

// Config is the full slayerdex configuration.
type Config struct {
	API     APIConfig     `yaml:"api"`
	Theme   ThemeConfig   `yaml:"theme"`
	Logging LoggingConfig `yaml:"logging"`
	Output  OutputConfig  `yaml:"output"`
}

// APIConfig configures the character API client.
type APIConfig struct {
	BaseURL   string        `yaml:"base_url"`
	ListLimit int           `yaml:"list_limit"`
	Timeout   time.Duration `yaml:"timeout"`
}

// LoggingConfig configures zerolog output.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file,omitempty"`
}

// OutputConfig configures non-interactive rendering.
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format"`
	Plain         bool   `yaml:"plain"`
}

// Palette is the colour set of one theme. Values are lipgloss colour strings.
type Palette struct {
	Primary         string `yaml:"primary"`
	Surface         string `yaml:"surface"`
	Text            string `yaml:"text"`
	ChipBackground  string `yaml:"chip_background"`
	ChipLabel       string `yaml:"chip_label"`
	ChipValue       string `yaml:"chip_value"`
	QuoteBackground string `yaml:"quote_background"`
	Backdrop        string `yaml:"backdrop"`
}

// ThemeConfig holds the palette of each theme.
type ThemeConfig struct {
	Human Palette `yaml:"human"`
	Demon Palette `yaml:"demon"`
}

// Palette returns the palette for theme. Unknown themes get the human palette.
func (t ThemeConfig) Palette(theme character.Theme) Palette {
	if theme == character.ThemeDemon {
		return t.Demon
	}
	return t.Human
}

// DefaultThemeConfig returns the built-in palettes.
func DefaultThemeConfig() ThemeConfig {
	return ThemeConfig{
		Human: Palette{
			Primary:         "#d32f2f",
			Surface:         "#fafafa",
			Text:            "#212121",
			ChipBackground:  "#eeeeee",
			ChipLabel:       "#757575",
			ChipValue:       "#212121",
			QuoteBackground: "#37474f",
			Backdrop:        "#1b3a4b",
		},
		Demon: Palette{
			Primary:         "#b71c1c",
			Surface:         "#fafafa",
			Text:            "#212121",
			ChipBackground:  "#f3e5f5",
			ChipLabel:       "#6a1b9a",
			ChipValue:       "#311b92",
			QuoteBackground: "#4a0e1c",
			Backdrop:        "#2b0a0f",
		},
	}
}

// New returns the built-in defaults.
func New() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:   api.DefaultBaseURL,
			ListLimit: loader.DefaultListLimit,
			Timeout:   api.DefaultTimeout,
		},
		Theme: DefaultThemeConfig(),
		Logging: LoggingConfig{
			Level:  "info",
			Format: logging.FormatConsole,
		},
		Output: OutputConfig{
			DefaultFormat: FormatTable,
		},
	}
}

// Load builds the effective configuration: defaults, then the YAML file at
// path (a missing file is fine), then .env and SLAYERDEX_* variables.
func Load(path string) (*Config, error) {
	cfg := New()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if mergeErr := ShallowMergeYAML(cfg, path); mergeErr != nil {
				return nil, mergeErr
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("checking config file %s: %w", path, err)
		}
	}

	if err := LoadDotEnv(""); err != nil {
		return nil, err
	}
	if err := ApplyEnv(cfg, os.LookupEnv); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for values the client cannot use.
func (c *Config) Validate() error {
	u, err := url.Parse(c.API.BaseURL)
	if err != nil {
		return fmt.Errorf("api.base_url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("api.base_url must be an http(s) URL, got %q", c.API.BaseURL)
	}
	if c.API.ListLimit <= 0 {
		return fmt.Errorf("api.list_limit must be > 0, got %d", c.API.ListLimit)
	}
	if c.API.Timeout <= 0 {
		return fmt.Errorf("api.timeout must be > 0, got %s", c.API.Timeout)
	}
	switch c.Output.DefaultFormat {
	case FormatTable, FormatJSON:
	default:
		return fmt.Errorf("output.default_format must be %q or %q, got %q",
			FormatTable, FormatJSON, c.Output.DefaultFormat)
	}
	switch c.Logging.Format {
	case logging.FormatConsole, logging.FormatJSON:
	default:
		return fmt.Errorf("logging.format must be %q or %q, got %q",
			logging.FormatConsole, logging.FormatJSON, c.Logging.Format)
	}
	return nil
}

// Marshal renders the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshalling config: %w", err)
	}
	return data, nil
}

// WriteDefault writes the default configuration to path. It refuses to
// overwrite an existing file unless force is set.
func WriteDefault(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config file %s already exists (use --force to overwrite)", path)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := New().Marshal()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
