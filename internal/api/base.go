package api

import (
	"net/http"
)

// HTTPClient is the transport capability the API layer needs: execute one
// request and return the response. *http.Client satisfies it.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Headers are applied to every prompt request.
type Headers struct {
	APIKey    string
	UserAgent string
}

func (h Headers) apply(req *http.Request) {
	req.Header.Set("X-API-Key", h.APIKey)
	req.Header.Set("Content-Type", "application/json")
	if h.UserAgent != "" {
		req.Header.Set("User-Agent", h.UserAgent)
	}
}
