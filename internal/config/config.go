package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/username/agenda/pkg/dateutil"
)

// Config represents application configuration
type Config struct {
	Output     string         `mapstructure:"output"`
	Year       int            `mapstructure:"year"`
	Locale     string         `mapstructure:"locale"`      // empty = LC_ALL / LC_TIME / LANG
	EventsFile string         `mapstructure:"events_file"` // optional user events YAML
	Progress   bool           `mapstructure:"progress"`
	Render     RenderConfig   `mapstructure:"render"`
	Holidays   HolidaysConfig `mapstructure:"holidays"`
	Log        LogConfig      `mapstructure:"log"`
}

// RenderConfig represents the look of the generated pages
type RenderConfig struct {
	LineWidth float64 `mapstructure:"line_width"`
	LineColor float64 `mapstructure:"line_color"` // gray level 0-255
	FontsDir  string  `mapstructure:"fonts_dir"`
}

// HolidaysConfig represents holiday sources configuration
type HolidaysConfig struct {
	SchoolZone         string `mapstructure:"school_zone"` // A, B, C or Corse
	BankZone           string `mapstructure:"bank_zone"`   // Métropole, Alsace-Moselle, ...
	SchoolAPIURL       string `mapstructure:"school_api_url"`
	SchoolFallbackFile string `mapstructure:"school_fallback_file"`
	CacheDir           string `mapstructure:"cache_dir"`
	CacheTTL           string `mapstructure:"cache_ttl"`
}

// LogConfig represents logging configuration
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// flagKeys maps command line flags to configuration keys
var flagKeys = map[string]string{
	"output":        "output",
	"year":          "year",
	"locale":        "locale",
	"events":        "events_file",
	"linewidth":     "render.line_width",
	"linecolor":     "render.line_color",
	"fonts-dir":     "render.fonts_dir",
	"school-zone":   "holidays.school_zone",
	"bank-holidays": "holidays.bank_zone",
	"log-file":      "log.file",
	"log-level":     "log.level",
}

// Load loads configuration from defaults, an optional file, AGENDA_* environment
// variables and the flags explicitly set on the command line, in increasing priority.
func Load(configPath string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	// Set config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("agenda")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/agenda")
	}

	// Read environment variables
	v.SetEnvPrefix("AGENDA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file, only an explicit one is mandatory
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			flag := flags.Lookup(name)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
			}
		}
		if flag := flags.Lookup("no-progress"); flag != nil && flag.Changed {
			v.Set("progress", false)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate config
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("output", "")
	v.SetDefault("year", dateutil.Today().Year())
	v.SetDefault("locale", "")
	v.SetDefault("events_file", "")
	v.SetDefault("progress", true)

	v.SetDefault("render.line_width", 0.1)
	v.SetDefault("render.line_color", 200.0)
	v.SetDefault("render.fonts_dir", "")

	v.SetDefault("holidays.school_zone", "")
	v.SetDefault("holidays.bank_zone", "")
	v.SetDefault("holidays.school_api_url", "")
	v.SetDefault("holidays.school_fallback_file", "")
	v.SetDefault("holidays.cache_dir", defaultCacheDir())
	v.SetDefault("holidays.cache_ttl", "720h")

	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")
}

// defaultCacheDir returns the per-user cache directory, empty if there is none
func defaultCacheDir() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "agenda")
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Year < 1 || c.Year > 9999 {
		return fmt.Errorf("year must be between 1 and 9999, got %d", c.Year)
	}
	if c.Render.LineWidth <= 0 {
		return fmt.Errorf("render.line_width must be positive, got %g", c.Render.LineWidth)
	}
	if c.Render.LineColor < 0 || c.Render.LineColor > 255 {
		return fmt.Errorf("render.line_color must be between 0 and 255, got %g", c.Render.LineColor)
	}
	if c.Holidays.CacheTTL != "" {
		if _, err := time.ParseDuration(c.Holidays.CacheTTL); err != nil {
			return fmt.Errorf("holidays.cache_ttl is not a duration: %w", err)
		}
	}
	return nil
}

// OutputPath returns the output file path, agenda-<year>.pdf by default
func (c *Config) OutputPath() string {
	if c.Output != "" {
		return c.Output
	}
	return fmt.Sprintf("agenda-%04d.pdf", c.Year)
}

// GetCacheTTL returns cache TTL duration
func (c *HolidaysConfig) GetCacheTTL() time.Duration {
	if c.CacheTTL == "" {
		return 30 * 24 * time.Hour
	}
	duration, err := time.ParseDuration(c.CacheTTL)
	if err != nil {
		return 30 * 24 * time.Hour
	}
	return duration
}

// Enabled reports whether any holiday source was requested
func (c *HolidaysConfig) Enabled() bool {
	return c.SchoolZone != "" || c.BankZone != ""
}
