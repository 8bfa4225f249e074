// Package aviation is a client for the aviation data provider's read-only
// /flights and /airports resources.
package aviation

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/flightdesk/config"
	"github.com/flightdesk/logger"
	"github.com/flightdesk/types"
)

const maxResponseBody = 4 * 1024 * 1024

// Client queries the provider. Every call is bounded by the configured
// timeout, including time spent waiting on the rate limiter.
type Client struct {
	baseURL    string
	accessKey  string
	timeout    time.Duration
	httpClient *http.Client
	limiter    *rate.Limiter
	log        *logger.Logger
}

func NewClient(cfg config.Aviation) *Client {
	limit := rate.Inf
	if cfg.RateLimit > 0 {
		limit = rate.Limit(cfg.RateLimit)
	}
	burst := cfg.Burst
	if burst < 1 {
		burst = 1
	}
	return &Client{
		baseURL:   cfg.BaseURL,
		accessKey: cfg.APIKey,
		timeout:   cfg.Timeout,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		limiter: rate.NewLimiter(limit, burst),
		log:     logger.NewLogger("AviationClient", uuid.NewString()),
	}
}

// Flights lists flights matching q.
func (c *Client) Flights(ctx context.Context, q FlightQuery) ([]Flight, error) {
	params := url.Values{}
	if q.FlightIATA != "" {
		params.Set("flight_iata", q.FlightIATA)
	}
	if q.DepartureIATA != "" {
		params.Set("dep_iata", q.DepartureIATA)
	}
	if q.ArrivalIATA != "" {
		params.Set("arr_iata", q.ArrivalIATA)
	}

	var env Envelope[Flight]
	if err := c.getJSON(ctx, "/flights", params, &env); err != nil {
		return nil, err
	}
	if env.Error != nil {
		return nil, fmt.Errorf("%w: %s", types.ErrUpstreamTool, env.Error)
	}
	return env.Data, nil
}

// Airports runs a free-text airport search.
func (c *Client) Airports(ctx context.Context, search string) ([]Airport, error) {
	params := url.Values{}
	params.Set("search", search)

	var env Envelope[Airport]
	if err := c.getJSON(ctx, "/airports", params, &env); err != nil {
		return nil, err
	}
	if env.Error != nil {
		return nil, fmt.Errorf("%w: %s", types.ErrUpstreamTool, env.Error)
	}
	return env.Data, nil
}

func (c *Client) getJSON(ctx context.Context, path string, params url.Values, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%w: rate limit wait: %w", types.ErrUpstreamTool, err)
	}

	params.Set("access_key", c.accessKey)
	endpoint := c.baseURL + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("%w: create request: %v", types.ErrUpstreamTool, err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		// the error embeds the URL, which carries the access key
		return fmt.Errorf("%w: GET %s: %w", types.ErrUpstreamTool, path, redact(err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return fmt.Errorf("%w: read response: %w", types.ErrUpstreamTool, err)
	}
	c.log.Debug("aviation request", "path", path, "status", resp.StatusCode, "duration", time.Since(start))

	if err := json.Unmarshal(body, out); err != nil {
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("%w: unexpected status %s", types.ErrUpstreamTool, resp.Status)
		}
		return fmt.Errorf("%w: decode response: %v", types.ErrUpstreamTool, err)
	}
	if resp.StatusCode != http.StatusOK && !hasAPIError(out) {
		return fmt.Errorf("%w: unexpected status %s", types.ErrUpstreamTool, resp.Status)
	}
	return nil
}

func hasAPIError(out any) bool {
	switch env := out.(type) {
	case *Envelope[Flight]:
		return env.Error != nil
	case *Envelope[Airport]:
		return env.Error != nil
	}
	return false
}

// redact strips the request URL from transport errors.
func redact(err error) error {
	if uerr, ok := err.(*url.Error); ok {
		return uerr.Err
	}
	return err
}
