package ratelimit

import (
	"net/http"
	"strings"
)

// unlimited is returned for health checks and CORS preflight requests.
var unlimited = EndpointConfig{Path: "unlimited"}

// MatchEndpoint matches a request path and method to an endpoint configuration.
// Returns nil when nothing matches. A configured path ending in "/" matches
// every path below it.
func MatchEndpoint(path string, method string, configs []EndpointConfig) *EndpointConfig {
	if method == http.MethodOptions || (path == "/health" && method == http.MethodGet) {
		e := unlimited
		return &e
	}

	for i := range configs {
		config := &configs[i]
		if config.Path == path && config.Method == method {
			return config
		}
	}

	for i := range configs {
		config := &configs[i]
		if config.Method == method && strings.HasSuffix(config.Path, "/") && strings.HasPrefix(path, config.Path) {
			return config
		}
	}

	return nil
}
