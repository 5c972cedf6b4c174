// Package pipeline owns the snapshot lifecycle: fetch the quake feed,
// optionally load borders and republish events, and hand immutable
// snapshots to whoever renders them.
package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/seismoview/quake-globe/internal/domain"
	"github.com/seismoview/quake-globe/internal/figure"
	"github.com/seismoview/quake-globe/internal/geo"
	"github.com/seismoview/quake-globe/internal/observability"
)

// QuakeFetcher retrieves a fresh snapshot from the primary feed.
type QuakeFetcher interface {
	Fetch(ctx context.Context) (*domain.Snapshot, error)
}

// BorderFetcher retrieves the country border rings. Optional.
type BorderFetcher interface {
	Fetch(ctx context.Context) ([]geo.Ring, error)
}

// Publisher republishes a snapshot's events to a sink. Optional.
type Publisher interface {
	PublishSnapshot(ctx context.Context, snapshot *domain.Snapshot) error
}

// Pipeline fetches the feed once (or on a configured interval), keeps the
// current snapshot behind an atomic pointer, and never mutates a snapshot
// after storing it. Renderers read whichever snapshot is current; a failed
// refresh keeps the previous one.
type Pipeline struct {
	quakes    QuakeFetcher
	borderSrc BorderFetcher
	publisher Publisher
	logger    *slog.Logger
	metrics   *observability.Metrics
	clock     clockwork.Clock

	refreshInterval time.Duration

	snapshot atomic.Pointer[domain.Snapshot]
	borders  atomic.Pointer[figure.BorderSet]
}

// New creates a Pipeline. borderSrc and publisher may be nil to disable the
// overlay and the sink respectively.
func New(quakes QuakeFetcher, borderSrc BorderFetcher, publisher Publisher, refreshInterval time.Duration, clock clockwork.Clock, logger *slog.Logger, metrics *observability.Metrics) *Pipeline {
	return &Pipeline{
		quakes:          quakes,
		borderSrc:       borderSrc,
		publisher:       publisher,
		refreshInterval: refreshInterval,
		clock:           clock,
		logger:          logger,
		metrics:         metrics,
	}
}

// Snapshot returns the current snapshot, or nil before the first fetch
// attempt completes.
func (p *Pipeline) Snapshot() *domain.Snapshot {
	return p.snapshot.Load()
}

// Borders returns the border overlay, empty when borders are disabled or
// their fetch failed.
func (p *Pipeline) Borders() figure.BorderSet {
	if b := p.borders.Load(); b != nil {
		return *b
	}
	return figure.BorderSet{}
}

// CheckReadiness returns nil once a snapshot exists — including the empty
// degraded snapshot stored when the primary feed is unreachable, since the
// service can still render.
func (p *Pipeline) CheckReadiness(_ context.Context) error {
	if p.snapshot.Load() == nil {
		return errors.New("no snapshot available yet")
	}
	return nil
}

// Run loads borders once, performs the initial fetch, and then either
// returns (fetch-once mode) or refetches on the configured interval until
// the context is cancelled. Each scheduled fetch is a single attempt; there
// is no retry inside an interval.
func (p *Pipeline) Run(ctx context.Context) error {
	p.loadBorders(ctx)
	p.refresh(ctx)

	if p.refreshInterval == 0 {
		p.logger.Info("fetch-once mode, snapshot frozen for process lifetime")
		return nil
	}

	p.logger.Info("periodic refresh enabled", "interval", p.refreshInterval)
	ticker := p.clock.NewTicker(p.refreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("pipeline stopping", "reason", ctx.Err())
			return nil
		case <-ticker.Chan():
			p.refresh(ctx)
		}
	}
}

// loadBorders fetches the overlay once. All failures degrade to a bare
// globe.
func (p *Pipeline) loadBorders(ctx context.Context) {
	if p.borderSrc == nil {
		return
	}
	rings, err := p.borderSrc.Fetch(ctx)
	if err != nil {
		p.logger.Warn("borders unavailable, rendering without overlay", "error", err)
		return
	}
	set := figure.BuildBorders(rings)
	p.borders.Store(&set)
	p.metrics.BorderRings.Set(float64(len(rings)))
}

// refresh performs one fetch attempt. Success replaces the snapshot and
// republishes it; failure keeps the previous snapshot, or stores an empty
// degraded one if this was the first attempt.
func (p *Pipeline) refresh(ctx context.Context) {
	snapshot, err := p.quakes.Fetch(ctx)
	if err != nil {
		p.logger.Error("quake feed fetch failed", "error", err)
		if p.snapshot.Load() == nil {
			p.logger.Warn("no snapshot yet, serving an empty globe")
			p.snapshot.Store(domain.EmptySnapshot())
			p.metrics.SnapshotEvents.Set(0)
		}
		return
	}

	p.snapshot.Store(snapshot)
	p.metrics.SnapshotEvents.Set(float64(len(snapshot.Events)))
	p.logger.Info("snapshot updated", "events", len(snapshot.Events), "fetched_at", snapshot.FetchedAt)

	p.publish(ctx, snapshot)
}

func (p *Pipeline) publish(ctx context.Context, snapshot *domain.Snapshot) {
	if p.publisher == nil {
		return
	}
	if err := p.publisher.PublishSnapshot(ctx, snapshot); err != nil {
		p.logger.Error("sink publish failed", "error", err, "events", len(snapshot.Events))
		return
	}
	p.metrics.EventsPublished.Add(float64(len(snapshot.Events)))
}
