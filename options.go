package client

// This file defines functional options that configure the Client during
// construction. Keeping them in a standalone file avoids cluttering
// client.go and makes it easy to discover all available knobs at a glance.

import (
	"fmt"
	"net/http"
	"time"
)

// Option configures a Client during construction in New.
//
// Options are applied in order, so WithHTTPTimeout and WithDebugLogging must
// follow WithHTTPClient to affect the injected client.
type Option func(*Client) error

// WithHTTPClient uses a copy of hc as the transport. The caller's client is
// never modified by later options.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return fmt.Errorf("nil http client")
		}
		cp := *hc
		c.http = &cp
		return nil
	}
}

// WithHTTPTimeout sets the underlying http.Client Timeout used by the SDK.
//
// Prefer per-request context deadlines where possible; this timeout bounds
// the whole request including reading the response. A timeout surfaces as a
// network error. The value must be greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.http.Timeout = d
		return nil
	}
}

// WithMaxBodySize rejects successful responses larger than n bytes with a
// network error. Error responses are classified by status regardless of
// size. By default the body is read in full.
func WithMaxBodySize(n int64) Option {
	return func(c *Client) error {
		if n <= 0 {
			return fmt.Errorf("max body size must be > 0")
		}
		c.maxBodySize = n
		return nil
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) error {
		if ua == "" {
			return fmt.Errorf("user agent cannot be empty")
		}
		c.userAgent = ua
		return nil
	}
}

// WithDebugLogging wraps the client's transport so each request/response is
// logged when enabled is true. The API key is redacted from dumps.
// Do not enable this option in production environments.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		if !enabled {
			return nil
		}
		if _, ok := c.http.Transport.(*debugTransport); ok {
			return nil
		}
		transport := c.http.Transport
		if transport == nil {
			transport = http.DefaultTransport
		}
		c.http.Transport = &debugTransport{base: transport}
		return nil
	}
}
