package models

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/flightdesk/types"
)

const maxResponseBody = 10 * 1024 * 1024

// doJSONRequest POSTs body and returns the response body of a 200 reply.
// Every failure wraps types.ErrUpstreamProvider.
func doJSONRequest(ctx context.Context, client *http.Client, endpoint string, body []byte, headers map[string]string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %w", types.ErrUpstreamProvider, err)
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := client.Do(req)
	if err != nil {
		if uerr, ok := err.(*url.Error); ok {
			err = uerr.Err
		}
		return nil, fmt.Errorf("%w: http request: %w", types.ErrUpstreamProvider, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %w", types.ErrUpstreamProvider, err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, mapHTTPError(resp.StatusCode, respBody)
	}
	return respBody, nil
}

// mapHTTPError classifies a non-200 provider reply.
func mapHTTPError(statusCode int, body []byte) error {
	detail := fmt.Sprintf("API error %d: %s", statusCode, truncate(string(body), 512))

	switch {
	case statusCode == http.StatusTooManyRequests:
		return fmt.Errorf("%w: rate limited: %s", types.ErrUpstreamProvider, detail)
	case statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden:
		return fmt.Errorf("%w: authentication failed: %s", types.ErrUpstreamProvider, detail)
	case statusCode >= 500:
		return fmt.Errorf("%w: server error: %s", types.ErrUpstreamProvider, detail)
	default:
		return fmt.Errorf("%w: %s", types.ErrUpstreamProvider, detail)
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
