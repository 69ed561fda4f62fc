package util

import (
	"net/http"
	"net/url"
	"time"

	"github.com/vivekminipuri/AI-fake-news-detector/internal/model"
)

// NewHTTPClient builds the outbound client shared by the evidence
// sources: per-deployment proxy settings plus a stamped User-Agent.
func NewHTTPClient(cfg model.HTTPConfig, timeout time.Duration) *http.Client {
	transport := &http.Transport{
		Proxy: newProxyFunc(cfg.HTTPProxy, cfg.HTTPSProxy),
	}

	return &http.Client{
		Timeout:   timeout,
		Transport: &userAgentTransport{base: transport, userAgent: cfg.UserAgent},
	}
}

// newProxyFunc creates a proxy function based on configuration.
// If no proxy URLs are provided, falls back to environment variables.
func newProxyFunc(httpProxy, httpsProxy string) func(*http.Request) (*url.URL, error) {
	if httpProxy == "" && httpsProxy == "" {
		return http.ProxyFromEnvironment
	}

	return func(req *http.Request) (*url.URL, error) {
		if req.URL.Scheme == "https" && httpsProxy != "" {
			return url.Parse(httpsProxy)
		}
		if httpProxy != "" {
			return url.Parse(httpProxy)
		}
		return http.ProxyFromEnvironment(req)
	}
}

type userAgentTransport struct {
	base      http.RoundTripper
	userAgent string
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.userAgent != "" && req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", t.userAgent)
	}
	return t.base.RoundTrip(req)
}
