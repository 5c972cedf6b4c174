// Package usgs fetches the USGS earthquake GeoJSON summary feed.
package usgs

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/seismoview/quake-globe/internal/domain"
	"github.com/seismoview/quake-globe/internal/observability"
)

// maxFeedBytes bounds the response read. The monthly all-magnitude feed is
// a few tens of MB at its largest; anything past this is a broken upstream.
const maxFeedBytes = 64 << 20

// Client fetches and extracts quake snapshots from a GeoJSON summary feed.
type Client struct {
	feedURL    string
	httpClient *http.Client
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewClient creates a feed client with a bounded request timeout.
func NewClient(feedURL string, timeout time.Duration, metrics *observability.Metrics, logger *slog.Logger) *Client {
	return &Client{
		feedURL: feedURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		metrics: metrics,
		logger:  logger,
	}
}

// Fetch issues one GET against the feed and extracts a snapshot. Transport
// errors, timeouts, and non-2xx statuses wrap domain.ErrFetch; a body that
// is not the expected GeoJSON wraps domain.ErrParse. Per-event field
// problems never error — extraction defaults or skips them.
func (c *Client) Fetch(ctx context.Context) (*domain.Snapshot, error) {
	start := time.Now()

	body, err := c.get(ctx)
	if err != nil {
		c.metrics.FeedFetches.WithLabelValues("quakes", "error").Inc()
		return nil, err
	}

	snapshot, err := domain.ExtractSnapshot(body)
	if err != nil {
		c.metrics.FeedFetches.WithLabelValues("quakes", "error").Inc()
		return nil, fmt.Errorf("%w: %w", domain.ErrParse, err)
	}

	c.metrics.FeedFetches.WithLabelValues("quakes", "success").Inc()
	c.metrics.FetchDuration.WithLabelValues("quakes").Observe(time.Since(start).Seconds())
	c.logger.Info("quake feed fetched", "events", len(snapshot.Events), "bytes", len(body))
	return snapshot, nil
}

func (c *Client) get(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %w", domain.ErrFetch, err)
	}
	req.Header.Set("Accept", "application/geo+json, application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: status %d from %s", domain.ErrFetch, resp.StatusCode, c.feedURL)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxFeedBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %w", domain.ErrFetch, err)
	}
	return body, nil
}
