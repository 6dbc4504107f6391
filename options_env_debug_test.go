package client

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf).Level(zerolog.DebugLevel)
	t.Cleanup(func() { log.Logger = prev })
	return &buf
}

func TestNew_AutoEnableDebugViaEnv(t *testing.T) {
	t.Setenv("PROMPTY_DEBUG", "true")
	c, err := New("http://example.com", "p", "k")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, ok := c.http.Transport.(*debugTransport); !ok {
		t.Fatalf("expected debugTransport to be installed when PROMPTY_DEBUG=true")
	}
}

func TestNew_AutoEnableDebugViaGenericEnv(t *testing.T) {
	t.Setenv("PROMPTY_DEBUG", "")
	t.Setenv("DEBUG", "true")
	c, err := New("http://example.com", "p", "k")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, ok := c.http.Transport.(*debugTransport); !ok {
		t.Fatalf("expected debugTransport to be installed when DEBUG=true")
	}
}

func TestDebugTransport_RedactsAPIKey(t *testing.T) {
	buf := captureLogs(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-API-Key") != "pk_secret" {
			t.Errorf("server must still receive the real key")
		}
		_, _ = w.Write([]byte(`{"prompt_text":"hello"}`))
	}))
	defer srv.Close()

	c, err := New(srv.URL, "p", "pk_secret", WithDebugLogging(true))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	text, ok, err := c.GetPrompt(context.Background(), "agent")
	if err != nil || !ok || text != "hello" {
		t.Fatalf("GetPrompt: %q %v %v", text, ok, err)
	}

	out := buf.String()
	if strings.Contains(out, "pk_secret") {
		t.Fatalf("API key leaked into debug log: %s", out)
	}
	if !strings.Contains(out, "REDACTED") || !strings.Contains(out, "HTTP response") {
		t.Fatalf("expected request and response dumps, got: %s", out)
	}
}

func TestDebugTransport_ErrorPath(t *testing.T) {
	buf := captureLogs(t)
	rt := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		return nil, context.DeadlineExceeded
	})
	c, err := New("http://example.com", "p", "k", WithHTTPClient(&http.Client{Transport: rt}), WithDebugLogging(true))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	req, _ := http.NewRequestWithContext(context.Background(), http.MethodGet, "http://example.com", http.NoBody)
	if _, err := c.http.Do(req); err == nil {
		t.Fatalf("expected error from underlying transport")
	}
	if !strings.Contains(buf.String(), "HTTP request failed") {
		t.Fatalf("expected failure to be logged, got: %s", buf.String())
	}
}

func TestDebugTransport_LogsBoundedBody(t *testing.T) {
	buf := captureLogs(t)
	text := strings.Repeat("y", 3*debugBodyLimit)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"prompt_text":"` + text + `"}`))
	}))
	defer srv.Close()

	c, err := New(srv.URL, "p", "k", WithDebugLogging(true))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got, ok, err := c.GetPrompt(context.Background(), "agent")
	if err != nil || !ok || got != text {
		t.Fatalf("caller must still read the whole body: ok=%v len=%d err=%v", ok, len(got), err)
	}

	out := buf.String()
	if !strings.Contains(out, `"body_truncated":true`) {
		t.Fatalf("expected truncated body flag, got: %s", out)
	}
	if strings.Contains(out, strings.Repeat("y", debugBodyLimit)) {
		t.Fatalf("logged more than %d body bytes", debugBodyLimit)
	}
}
