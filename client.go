// Package client is the Go SDK for the Prompty prompt service.
//
// A Client fetches the active prompt configured for a named agent:
//
//	c, err := client.New("https://prompty.example.com", "project-123", "pk_...")
//	if err != nil {
//		return err
//	}
//	text, ok, err := c.GetPrompt(ctx, "customer-support-agent")
//
// Failures are *Error values of exactly one kind; branch with errors.Is
// against ErrAuthentication, ErrNotFound, ErrServer, ErrUnexpected or
// ErrNetwork.
package client

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/kaenova/prompty/client/internal/api"
	"github.com/kaenova/prompty/client/internal/types"
)

// Version is reported in the default User-Agent.
const Version = "0.1.0"

const defaultUserAgent = "prompty-go-client/" + Version

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

// Client is safe for concurrent use. Its configuration is fixed by New.
type Client struct {
	baseURL     string
	projectID   string // kept for callers; the service resolves the project from the API key
	apiKey      string
	userAgent   string
	maxBodySize int64 // 0 reads successful responses in full
	http        *http.Client
}

// New constructs a Client for the service at baseURL. Trailing slashes on
// baseURL are dropped. No request is made and the key is not checked until
// the first call.
//
// The default transport has no timeout; bound calls with the context or
// WithHTTPTimeout.
func New(baseURL, projectID, apiKey string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimRight(baseURL, "/")
	if baseURL == "" {
		return nil, fmt.Errorf("baseURL cannot be empty")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("apiKey cannot be empty")
	}

	c := &Client{
		baseURL:   baseURL,
		projectID: projectID,
		apiKey:    apiKey,
		userAgent: defaultUserAgent,
		http:      &http.Client{},
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// BaseURL returns the normalized service URL.
func (c *Client) BaseURL() string { return c.baseURL }

// ProjectID returns the project identifier given to New.
func (c *Client) ProjectID() string { return c.projectID }

// --------------------------------------------------------------------
// Prompt operations - delegated to internal/api
// --------------------------------------------------------------------

// GetPrompt returns the active prompt text for agentName.
//
// ok is false when the service answered successfully but carried no
// prompt_text; that is not an error.
func (c *Client) GetPrompt(ctx context.Context, agentName string) (text string, ok bool, err error) {
	details, err := c.fetch(ctx, opGetPrompt, agentName)
	if err != nil || details == nil || !details.Has(types.FieldPromptText) {
		return "", false, err
	}
	return details.PromptText, true, nil
}

// GetPromptDetails returns the full active prompt record for agentName, or
// nil when the service answered successfully with an empty record.
func (c *Client) GetPromptDetails(ctx context.Context, agentName string) (*PromptDetails, error) {
	return c.fetch(ctx, opGetPromptDetails, agentName)
}

func (c *Client) fetch(ctx context.Context, op, agentName string) (*types.PromptDetails, error) {
	start := time.Now()
	details, err := api.GetPrompt(ctx, c.http, c.baseURL, c.headers(), agentName, c.maxBodySize)
	observeRequest(op, err, time.Since(start))
	return details, err
}

// headers builds the per-request header set from the immutable config.
func (c *Client) headers() api.Headers {
	return api.Headers{APIKey: c.apiKey, UserAgent: c.userAgent}
}
