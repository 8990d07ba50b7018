// Package config provides configuration loading and validation for the CLI
// and the HTTP server.
package config

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/jonathan/resume-pdf/internal/types"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g.
// RESUME_PDF_SERVER_PORT or RESUME_PDF_RENDER_TEMPLATE.
const EnvPrefix = "RESUME_PDF"

// Config holds all application configuration. Values are resolved in order
// of precedence: environment, config file, defaults.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Render    RenderConfig    `mapstructure:"render"`
	Preview   PreviewConfig   `mapstructure:"preview"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Verbose   bool            `mapstructure:"verbose"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string        `mapstructure:"host"`
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`
	MaxBodyBytes int64         `mapstructure:"max_body_bytes"`
	CORSOrigin   string        `mapstructure:"cors_origin"`
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// RenderConfig holds the default render options and output settings
type RenderConfig struct {
	Template    string  `mapstructure:"template"`
	FontSize    float64 `mapstructure:"font_size"`
	LineHeight  float64 `mapstructure:"line_height"`
	Margin      float64 `mapstructure:"margin"`
	Font        string  `mapstructure:"font"`
	ColorScheme string  `mapstructure:"color_scheme"`
	MaxPages    int     `mapstructure:"max_pages"` // 0 disables the page budget warning
	OutputDir   string  `mapstructure:"output_dir"`
}

// Options converts the render defaults into render options.
func (r RenderConfig) Options() types.Options {
	return types.Options{
		Template:    r.Template,
		FontSize:    r.FontSize,
		LineHeight:  r.LineHeight,
		Margin:      r.Margin,
		Font:        r.Font,
		ColorScheme: r.ColorScheme,
	}
}

// PreviewConfig holds browser preview configuration
type PreviewConfig struct {
	BrowserPath string        `mapstructure:"browser_path"` // empty means auto-detect
	Timeout     time.Duration `mapstructure:"timeout"`
}

// RateLimitConfig holds HTTP rate limiting configuration
type RateLimitConfig struct {
	Enabled           bool `mapstructure:"enabled"`
	RequestsPerMinute int  `mapstructure:"requests_per_minute"`
	Burst             int  `mapstructure:"burst"`
	RenderPerMinute   int  `mapstructure:"render_per_minute"`
	RenderBurst       int  `mapstructure:"render_burst"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("verbose", false)

	v.SetDefault("server.host", "")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 15*time.Second)
	v.SetDefault("server.write_timeout", 30*time.Second)
	v.SetDefault("server.idle_timeout", 60*time.Second)
	v.SetDefault("server.max_body_bytes", 1<<20)
	v.SetDefault("server.cors_origin", "*")

	v.SetDefault("render.template", "modern")
	v.SetDefault("render.font_size", 11.0)
	v.SetDefault("render.line_height", 5.5)
	v.SetDefault("render.margin", 15.0)
	v.SetDefault("render.font", "helvetica")
	v.SetDefault("render.color_scheme", "")
	v.SetDefault("render.max_pages", 2)
	v.SetDefault("render.output_dir", ".")

	v.SetDefault("preview.browser_path", "")
	v.SetDefault("preview.timeout", 5*time.Minute)

	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.requests_per_minute", 120)
	v.SetDefault("rate_limit.burst", 20)
	v.SetDefault("rate_limit.render_per_minute", 30)
	v.SetDefault("rate_limit.render_burst", 5)
}

// LoadConfig loads configuration from defaults, an optional config file and
// the environment. An explicit path must exist; with an empty path
// "resume-pdf.{yaml,json,toml}" is looked up in the working directory and
// $HOME/.resume-pdf, and its absence is not an error.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	} else {
		v.SetConfigName("resume-pdf")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.resume-pdf")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if used := v.ConfigFileUsed(); used != "" && cfg.Verbose {
		log.Printf("[config] Loaded %s", used)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("config error: 'server.port' must be between 1 and 65535")
	}
	if c.Server.ReadTimeout <= 0 || c.Server.WriteTimeout <= 0 || c.Server.IdleTimeout <= 0 {
		return fmt.Errorf("config error: server timeouts must be positive")
	}
	if c.Server.MaxBodyBytes <= 0 {
		return fmt.Errorf("config error: 'server.max_body_bytes' must be positive")
	}

	opts := c.Render.Options()
	if err := opts.Validate(); err != nil {
		return fmt.Errorf("config error: invalid render defaults: %w", err)
	}
	if c.Render.MaxPages < 0 {
		return fmt.Errorf("config error: 'render.max_pages' must be non-negative")
	}

	if c.Preview.Timeout <= 0 {
		return fmt.Errorf("config error: 'preview.timeout' must be positive")
	}

	if c.RateLimit.Enabled {
		if c.RateLimit.RequestsPerMinute <= 0 || c.RateLimit.RenderPerMinute <= 0 {
			return fmt.Errorf("config error: rate limits must be positive when rate limiting is enabled")
		}
		if c.RateLimit.Burst <= 0 || c.RateLimit.RenderBurst <= 0 {
			return fmt.Errorf("config error: rate limit bursts must be positive when rate limiting is enabled")
		}
	}

	return nil
}

// MergeOptions returns overrides with every zero-valued field filled from
// defaults. Request or flag values always win over configured defaults.
func MergeOptions(defaults, overrides types.Options) types.Options {
	result := overrides

	if result.Template == "" {
		result.Template = defaults.Template
	}
	if result.FontSize == 0 {
		result.FontSize = defaults.FontSize
	}
	if result.LineHeight == 0 {
		result.LineHeight = defaults.LineHeight
	}
	if result.Margin == 0 {
		result.Margin = defaults.Margin
	}
	if result.Font == "" {
		result.Font = defaults.Font
	}
	if result.ColorScheme == "" {
		result.ColorScheme = defaults.ColorScheme
	}

	// Bool fields: cannot distinguish unset from false, so overrides win
	return result
}
