package client

import (
	"testing"
)

func TestNew(t *testing.T) {
	c, err := New("http://example.com/", "project-123", "pk_test")
	if err != nil || c == nil {
		t.Fatalf("expected client, err=%v", err)
	}
	if c.BaseURL() != "http://example.com" {
		t.Fatalf("BaseURL = %q", c.BaseURL())
	}
	if c.ProjectID() != "project-123" {
		t.Fatalf("ProjectID = %q", c.ProjectID())
	}
	if c.http.Timeout != 0 {
		t.Fatalf("default timeout = %v, want none", c.http.Timeout)
	}
	if c.maxBodySize != 0 {
		t.Fatalf("default max body size = %d, want unlimited", c.maxBodySize)
	}
	if c.userAgent != defaultUserAgent {
		t.Fatalf("default user agent = %q", c.userAgent)
	}
}

func TestNew_TrimsAllTrailingSlashes(t *testing.T) {
	c, err := New("http://example.com///", "", "pk_test")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.BaseURL() != "http://example.com" {
		t.Fatalf("BaseURL = %q", c.BaseURL())
	}
}

func TestNew_RejectsEmptyArguments(t *testing.T) {
	if _, err := New("", "p", "k"); err == nil {
		t.Fatal("expected error for empty baseURL")
	}
	if _, err := New("/", "p", "k"); err == nil {
		t.Fatal("expected error for baseURL of only slashes")
	}
	if _, err := New("http://example.com", "p", ""); err == nil {
		t.Fatal("expected error for empty apiKey")
	}
}

func TestNew_OptionErrorPropagates(t *testing.T) {
	if _, err := New("http://example.com", "p", "k", WithHTTPClient(nil)); err == nil {
		t.Fatal("expected option error")
	}
}

func TestNew_ProjectIDMayBeEmpty(t *testing.T) {
	c, err := New("http://example.com", "", "k")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.ProjectID() != "" {
		t.Fatalf("ProjectID = %q", c.ProjectID())
	}
}

func TestHeaders(t *testing.T) {
	c, err := New("http://example.com", "p", "pk_test", WithUserAgent("custom/1"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	h := c.headers()
	if h.APIKey != "pk_test" || h.UserAgent != "custom/1" {
		t.Fatalf("unexpected headers %+v", h)
	}
}
