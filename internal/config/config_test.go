package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jonathan/resume-pdf/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "modern", cfg.Render.Template)
	assert.Equal(t, 11.0, cfg.Render.FontSize)
	assert.Equal(t, 2, cfg.Render.MaxPages)
	assert.Equal(t, 5*time.Minute, cfg.Preview.Timeout)
	assert.True(t, cfg.RateLimit.Enabled)
	assert.Equal(t, 30, cfg.RateLimit.RenderPerMinute)
}

func TestLoadConfig_YAMLFile(t *testing.T) {
	path := writeConfig(t, "config.yaml", `
server:
  port: 9090
  write_timeout: 45s
render:
  template: classic
  color_scheme: green
  max_pages: 1
rate_limit:
  enabled: false
verbose: true
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 45*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, "classic", cfg.Render.Template)
	assert.Equal(t, "green", cfg.Render.ColorScheme)
	assert.Equal(t, 1, cfg.Render.MaxPages)
	assert.False(t, cfg.RateLimit.Enabled)
	assert.True(t, cfg.Verbose)
	// untouched keys keep their defaults
	assert.Equal(t, 5.5, cfg.Render.LineHeight)
}

func TestLoadConfig_JSONFile(t *testing.T) {
	path := writeConfig(t, "config.json", `{"render": {"template": "legal", "font_size": 10}}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "legal", cfg.Render.Template)
	assert.Equal(t, 10.0, cfg.Render.FontSize)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("RESUME_PDF_SERVER_PORT", "7070")
	t.Setenv("RESUME_PDF_RENDER_TEMPLATE", "executive")
	path := writeConfig(t, "config.yaml", "render:\n  template: classic\n")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "executive", cfg.Render.Template)
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	path := writeConfig(t, "config.yaml", "render:\n  font_size: 99\n")

	cfg, err := LoadConfig(path)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "invalid render defaults")
}

func validConfig() Config {
	return Config{
		Server:    ServerConfig{Port: 8080, ReadTimeout: time.Second, WriteTimeout: time.Second, IdleTimeout: time.Second, MaxBodyBytes: 1024},
		Render:    RenderConfig{Template: "modern", FontSize: 11, LineHeight: 5.5, Margin: 15, MaxPages: 2},
		Preview:   PreviewConfig{Timeout: time.Minute},
		RateLimit: RateLimitConfig{Enabled: true, RequestsPerMinute: 60, Burst: 10, RenderPerMinute: 10, RenderBurst: 2},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"bad port", func(c *Config) { c.Server.Port = 70000 }, "server.port"},
		{"zero timeout", func(c *Config) { c.Server.ReadTimeout = 0 }, "timeouts"},
		{"negative max pages", func(c *Config) { c.Render.MaxPages = -1 }, "max_pages"},
		{"margin out of range", func(c *Config) { c.Render.Margin = 100 }, "render defaults"},
		{"zero preview timeout", func(c *Config) { c.Preview.Timeout = 0 }, "preview.timeout"},
		{"zero rate", func(c *Config) { c.RateLimit.RenderPerMinute = 0 }, "rate limits"},
		{"rate limiting disabled", func(c *Config) {
			c.RateLimit = RateLimitConfig{}
		}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestMergeOptions(t *testing.T) {
	defaults := types.Options{Template: "classic", FontSize: 11, LineHeight: 5.5, Margin: 15, Font: "times", ColorScheme: "gray"}
	overrides := types.Options{Template: "creative", FontSize: 9, IncludePhoto: true}

	result := MergeOptions(defaults, overrides)

	assert.Equal(t, "creative", result.Template)
	assert.Equal(t, 9.0, result.FontSize)
	assert.Equal(t, 5.5, result.LineHeight)
	assert.Equal(t, 15.0, result.Margin)
	assert.Equal(t, "times", result.Font)
	assert.Equal(t, "gray", result.ColorScheme)
	assert.True(t, result.IncludePhoto)
}

func TestServerConfig_Addr(t *testing.T) {
	assert.Equal(t, ":8080", ServerConfig{Port: 8080}.Addr())
	assert.Equal(t, "127.0.0.1:9000", ServerConfig{Host: "127.0.0.1", Port: 9000}.Addr())
}
