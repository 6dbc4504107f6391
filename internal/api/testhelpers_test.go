package api

import (
	"fmt"
	"io"
	"net/http"
	"strings"
)

// errRT is an http.RoundTripper that always returns an error (simulates network failure).
type errRT struct{}

func (e *errRT) RoundTrip(*http.Request) (*http.Response, error) { return nil, fmt.Errorf("boom") }

// failingBody returns an error on the first Read.
type failingBody struct{}

func (failingBody) Read([]byte) (int, error) { return 0, fmt.Errorf("connection reset") }
func (failingBody) Close() error             { return nil }

// bodyRT answers every request with the given status and body.
type bodyRT struct {
	status int
	body   io.ReadCloser
}

func (b *bodyRT) RoundTrip(*http.Request) (*http.Response, error) {
	body := b.body
	if body == nil {
		body = io.NopCloser(strings.NewReader(""))
	}
	return &http.Response{StatusCode: b.status, Body: body, Header: make(http.Header)}, nil
}

var testHeaders = Headers{APIKey: "pk_test", UserAgent: "prompty-test"}

func nopBody(s string) io.ReadCloser { return io.NopCloser(strings.NewReader(s)) }
