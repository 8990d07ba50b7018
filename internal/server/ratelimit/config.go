package ratelimit

import (
	"net/http"
	"time"

	"github.com/jonathan/resume-pdf/internal/config"
)

// RenderPath is the PDF generation endpoint, the only expensive route.
const RenderPath = "/v1/resumes/pdf"

// EndpointConfig overrides the default limit for one route.
type EndpointConfig struct {
	Path   string        // exact path, or a prefix when it ends with "/"
	Method string        // HTTP method (GET, POST, etc.)
	Limit  int           // requests per Window; zero or less means unlimited
	Window time.Duration // refill window
	Burst  int           // bucket size, defaults to Limit when zero
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	DefaultBurst    int
	CleanupInterval time.Duration
	IdleTimeout     time.Duration // limiters unused for this long are dropped
	Whitelist       map[string]bool
	Blacklist       map[string]bool
	EndpointConfigs []EndpointConfig
}

// FromConfig builds the limiter configuration from the application config.
func FromConfig(rl config.RateLimitConfig) *Config {
	if !rl.Enabled {
		return &Config{Enabled: false}
	}
	return &Config{
		Enabled:         true,
		DefaultLimit:    rl.RequestsPerMinute,
		DefaultWindow:   time.Minute,
		DefaultBurst:    rl.Burst,
		CleanupInterval: 5 * time.Minute,
		IdleTimeout:     time.Hour,
		Whitelist:       make(map[string]bool),
		Blacklist:       make(map[string]bool),
		EndpointConfigs: DefaultEndpointConfigs(rl.RenderPerMinute, rl.RenderBurst),
	}
}

// DefaultEndpointConfigs returns the per-route overrides. Reads and
// validation share the default limit; rendering gets its own, stricter one.
func DefaultEndpointConfigs(renderPerMinute, renderBurst int) []EndpointConfig {
	return []EndpointConfig{
		{Path: RenderPath, Method: http.MethodPost, Limit: renderPerMinute, Window: time.Minute, Burst: renderBurst},
	}
}
