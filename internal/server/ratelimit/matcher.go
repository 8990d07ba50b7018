package ratelimit

import (
	"net/http"
	"strings"
)

// unlimited lists routes that are never throttled: probes and scrapes.
var unlimited = map[string]bool{
	"/health":  true,
	"/metrics": true,
}

// MatchEndpoint returns the configuration that applies to path and method,
// or nil when the default limit applies. Exact paths win over prefixes.
func MatchEndpoint(path string, method string, configs []EndpointConfig) *EndpointConfig {
	if method == http.MethodGet && unlimited[path] {
		return &EndpointConfig{Path: path, Method: method}
	}

	for i := range configs {
		cfg := &configs[i]
		if cfg.Path == path && cfg.Method == method {
			return cfg
		}
	}

	for i := range configs {
		cfg := &configs[i]
		if cfg.Method == method && strings.HasSuffix(cfg.Path, "/") && strings.HasPrefix(path, cfg.Path) {
			return cfg
		}
	}

	return nil
}
