package client

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httputil"
	"os"

	"github.com/rs/zerolog/log"
)

const redacted = "REDACTED"

// debugBodyLimit caps how much of a response body is logged.
const debugBodyLimit = 4 << 10

// debugTransport logs every request and response through the global zerolog
// logger at debug level, and transport failures at error level.
//
// Enable with WithDebugLogging(true), or without code changes by setting
// PROMPTY_DEBUG=true or DEBUG=true. At most debugBodyLimit bytes of a response
// body (prompt text) are logged; the X-API-Key header is replaced before
// dumping.
type debugTransport struct{ base http.RoundTripper }

func (dt *debugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if reqDump, err := httputil.DumpRequestOut(redactRequest(req), false); err == nil {
		log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Str("request_dump", string(reqDump)).Msg("HTTP request")
	}

	resp, err := dt.base.RoundTrip(req)
	if err != nil {
		log.Error().Err(err).Str("method", req.Method).Str("url", req.URL.String()).Msg("HTTP request failed")
		return nil, err
	}

	if respDump, err := httputil.DumpResponse(resp, false); err == nil {
		prefix, truncated := peekBody(resp)
		log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Int("status_code", resp.StatusCode).
			Str("response_dump", string(respDump)).Str("response_body", string(prefix)).Bool("body_truncated", truncated).
			Msg("HTTP response")
	}
	return resp, nil
}

// peekBody reads up to debugBodyLimit bytes of resp.Body and puts them back
// in front of the rest, so the caller still sees the whole body and any read
// error.
func peekBody(resp *http.Response) (prefix []byte, truncated bool) {
	if resp.Body == nil || resp.Body == http.NoBody {
		return nil, false
	}
	buf, err := io.ReadAll(io.LimitReader(resp.Body, debugBodyLimit+1))
	rest := io.Reader(resp.Body)
	if err != nil {
		rest = errReader{err}
	}
	resp.Body = replayBody{Reader: io.MultiReader(bytes.NewReader(buf), rest), Closer: resp.Body}
	if len(buf) > debugBodyLimit {
		return buf[:debugBodyLimit], true
	}
	return buf, false
}

type replayBody struct {
	io.Reader
	io.Closer
}

type errReader struct{ err error }

func (r errReader) Read([]byte) (int, error) { return 0, r.err }

// redactRequest returns a copy of req safe to log.
func redactRequest(req *http.Request) *http.Request {
	cloned := req.Clone(req.Context())
	if cloned.Header.Get("X-API-Key") != "" {
		cloned.Header.Set("X-API-Key", redacted)
	}
	return cloned
}

// debugLoggingRequested checks if HTTP debug logging should be enabled:
// PROMPTY_DEBUG=true or DEBUG=true (case-sensitive).
func debugLoggingRequested() bool {
	return os.Getenv("PROMPTY_DEBUG") == "true" || os.Getenv("DEBUG") == "true"
}
