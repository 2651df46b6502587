package httpclient

import (
	"fmt"
	"net/http"
	"time"

	"movie-browser/pkg/utils"

	"go.uber.org/zap"
)

const defaultTimeout = 15 * time.Second

// NewClient builds the shared outbound HTTP client. When cfg.CacheSize is
// positive, GET responses are kept for the freshness window each caller
// attaches with WithFreshness.
func NewClient(cfg utils.HTTPConfig, log *zap.Logger) (*http.Client, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	base := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   10,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ResponseHeaderTimeout: timeout,
	}

	var transport http.RoundTripper = base
	if cfg.CacheSize > 0 {
		cached, err := NewCacheTransport(base, cfg.CacheSize, log)
		if err != nil {
			return nil, fmt.Errorf("create fetch cache: %w", err)
		}
		transport = cached
	}

	return &http.Client{
		Transport: transport,
		Timeout:   timeout,
	}, nil
}
