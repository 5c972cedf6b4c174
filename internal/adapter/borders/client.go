// Package borders fetches and flattens the country-borders GeoJSON overlay.
//
// Border data is decorative: every failure here is non-fatal by policy, and
// callers render without the overlay when Fetch errors.
package borders

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/seismoview/quake-globe/internal/domain"
	"github.com/seismoview/quake-globe/internal/geo"
	"github.com/seismoview/quake-globe/internal/observability"
)

const maxBordersBytes = 64 << 20

// Client fetches country border rings from a GeoJSON FeatureCollection URL.
type Client struct {
	bordersURL string
	httpClient *http.Client
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewClient creates a borders client with a bounded request timeout.
func NewClient(bordersURL string, timeout time.Duration, metrics *observability.Metrics, logger *slog.Logger) *Client {
	return &Client{
		bordersURL: bordersURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		metrics: metrics,
		logger:  logger,
	}
}

// Fetch retrieves the borders document and parses it into rings. Transport
// and status failures wrap domain.ErrFetch, an unparseable document wraps
// domain.ErrParse; malformed individual rings are skipped, never fatal.
func (c *Client) Fetch(ctx context.Context) ([]geo.Ring, error) {
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.bordersURL, nil)
	if err != nil {
		c.metrics.FeedFetches.WithLabelValues("borders", "error").Inc()
		return nil, fmt.Errorf("%w: create request: %w", domain.ErrFetch, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.FeedFetches.WithLabelValues("borders", "error").Inc()
		return nil, fmt.Errorf("%w: %w", domain.ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.metrics.FeedFetches.WithLabelValues("borders", "error").Inc()
		return nil, fmt.Errorf("%w: status %d from %s", domain.ErrFetch, resp.StatusCode, c.bordersURL)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBordersBytes))
	if err != nil {
		c.metrics.FeedFetches.WithLabelValues("borders", "error").Inc()
		return nil, fmt.Errorf("%w: read body: %w", domain.ErrFetch, err)
	}

	rings, err := ParseRings(body)
	if err != nil {
		c.metrics.FeedFetches.WithLabelValues("borders", "error").Inc()
		return nil, err
	}

	c.metrics.FeedFetches.WithLabelValues("borders", "success").Inc()
	c.metrics.FetchDuration.WithLabelValues("borders").Observe(time.Since(start).Seconds())
	c.logger.Info("borders fetched", "rings", len(rings))
	return rings, nil
}
