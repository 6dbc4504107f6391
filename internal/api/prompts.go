package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	apierrors "github.com/kaenova/prompty/client/internal/errors"
	"github.com/kaenova/prompty/client/internal/types"
)

// PromptPath is the single endpoint the client consumes.
const PromptPath = "/api/prompt"

// errorBodySize bounds how much of a non-200 body is kept. The status alone
// decides the outcome; the prefix only details a 404.
const errorBodySize = 64 << 10

// PromptURL returns {baseURL}/api/prompt?agent_name={agentName}.
func PromptURL(baseURL, agentName string) string {
	q := url.Values{}
	q.Set("agent_name", agentName)
	return baseURL + PromptPath + "?" + q.Encode()
}

// GetPrompt fetches the active prompt record for agentName.
//
// maxBody caps the size of a 200 body; zero or less reads it in full. A nil
// record with a nil error means the service answered 200 with no fields
// (empty body, null or {}). Any failure is an *apierrors.Error.
func GetPrompt(ctx context.Context, httpClient HTTPClient, baseURL string, h Headers, agentName string, maxBody int64) (*types.PromptDetails, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, PromptURL(baseURL, agentName), nil)
	if err != nil {
		return nil, apierrors.NewNetworkError(err)
	}
	h.apply(httpReq)

	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, apierrors.NewNetworkError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, classifyResponse(resp)
	}

	body, err := readBody(resp.Body, maxBody)
	if err != nil {
		return nil, apierrors.NewNetworkError(err)
	}
	return decodePrompt(body)
}

// classifyResponse maps a non-200 response to its error. Read failures and
// oversized bodies never change the kind; a 404 whose body could not be read
// completely gets the generic detail.
func classifyResponse(resp *http.Response) *apierrors.Error {
	body, err := io.ReadAll(io.LimitReader(resp.Body, errorBodySize+1))
	if err == nil && len(body) <= errorBodySize {
		return apierrors.ClassifyHTTPError(resp.StatusCode, body)
	}
	if len(body) > errorBodySize {
		body = body[:errorBodySize]
	}
	e := apierrors.ClassifyHTTPError(resp.StatusCode, nil)
	e.Body = string(body)
	return e
}

func readBody(r io.Reader, maxBody int64) ([]byte, error) {
	if maxBody <= 0 {
		body, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("read body: %w", err)
		}
		return body, nil
	}
	body, err := io.ReadAll(io.LimitReader(r, maxBody+1))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if int64(len(body)) > maxBody {
		return nil, fmt.Errorf("response body exceeds %d bytes", maxBody)
	}
	return body, nil
}

func decodePrompt(body []byte) (*types.PromptDetails, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, nil
	}
	var details types.PromptDetails
	if err := json.Unmarshal(body, &details); err != nil {
		return nil, apierrors.NewNetworkError(fmt.Errorf("decode response: %w", err))
	}
	if details.Empty() {
		return nil, nil
	}
	return &details, nil
}
