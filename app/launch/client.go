package launch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/lysyi3m/apogee-rss/app/metrics"
)

const DefaultUpcomingURL = "https://ll.thespacedevs.com/2.2.0/launch/upcoming/?mode=detailed"

type Client struct {
	httpClient *http.Client
	url        string
	userAgent  string
	timeout    time.Duration
}

func NewClient(httpClient *http.Client, url, userAgent string, timeout time.Duration) *Client {
	return &Client{
		httpClient: httpClient,
		url:        url,
		userAgent:  userAgent,
		timeout:    timeout,
	}
}

// FetchUpcoming performs a single GET of the upcoming-launches endpoint and
// returns the raw body. Retrying is up to the caller.
func (c *Client) FetchUpcoming(ctx context.Context) ([]byte, error) {
	start := time.Now()
	data, err := c.fetch(ctx)
	metrics.UpstreamFetchDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.UpstreamFetchesTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	metrics.UpstreamFetchesTotal.WithLabelValues("success").Inc()
	slog.Debug("Fetched upcoming launches", "url", c.url, "bytes", len(data), "duration", time.Since(start))
	return data, nil
}

func (c *Client) fetch(ctx context.Context) ([]byte, error) {
	timeoutCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(timeoutCtx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch launches: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return data, nil
}
