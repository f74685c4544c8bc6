// Package poller refreshes the season snapshot on an interval.
package poller

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"f1-data-service/internal/logging"
	"f1-data-service/internal/metrics"
)

const defaultInterval = time.Hour

// Refresher rebuilds one season collection from the feed.
type Refresher interface {
	Refresh(ctx context.Context, season string) error
}

// Poller refreshes the driver and schedule snapshots until stopped. A cycle
// succeeds only when every refresher succeeds.
type Poller struct {
	refreshers []Refresher
	season     string
	logger     *slog.Logger
	metrics    *metrics.Recorder
	interval   time.Duration

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the poller loop.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
}

// IsReady reports whether the poller has had a recent success and is not failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < 3
}

// New constructs a Poller with sane defaults.
func New(season string, refreshers []Refresher, logger *slog.Logger, recorder *metrics.Recorder, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Poller{
		refreshers: refreshers,
		season:     season,
		logger:     logger,
		metrics:    recorder,
		interval:   interval,
		done:       make(chan struct{}),
	}
}

// Start begins polling until the context is cancelled or Stop is called.
func (p *Poller) Start(ctx context.Context) {
	p.startMu.Lock()
	if p.started {
		p.startMu.Unlock()
		return
	}
	p.started = true
	p.startMu.Unlock()

	p.ticker = time.NewTicker(p.interval)

	go func() {
		logging.Info(p.logger, "poller started",
			slog.String(logging.FieldSeason, p.season),
			slog.Int64(logging.FieldDurationMS, p.interval.Milliseconds()),
		)
		// Initial refresh to warm data on boot.
		p.refreshOnce(ctx)

		for {
			select {
			case <-ctx.Done():
				p.stopTicker()
				logging.Info(p.logger, "poller stopped")
				return
			case <-p.done:
				p.stopTicker()
				logging.Info(p.logger, "poller stopped")
				return
			case <-p.ticker.C:
				p.refreshOnce(ctx)
			}
		}
	}()
}

// Stop halts the polling loop.
func (p *Poller) Stop(ctx context.Context) error {
	_ = ctx
	p.stopOnce.Do(func() {
		close(p.done)
		p.stopTicker()
	})
	return nil
}

func (p *Poller) refreshOnce(ctx context.Context) {
	start := time.Now()
	p.recordAttempt(start)

	var firstErr error
	for _, r := range p.refreshers {
		if err := r.Refresh(ctx, p.season); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	p.metrics.RecordPollerCycle(time.Since(start), firstErr)

	if firstErr != nil {
		logging.Error(p.logger, "poller refresh failed", firstErr,
			slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()),
		)
		p.recordFailure(firstErr, start)
		return
	}

	p.recordSuccess(start)
	logging.Info(p.logger, "poller refreshed season snapshot",
		slog.String(logging.FieldSeason, p.season),
		slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()),
	)
}

func (p *Poller) stopTicker() {
	if p.ticker != nil {
		p.ticker.Stop()
	}
}

func (p *Poller) recordAttempt(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.LastAttempt = at
}

func (p *Poller) recordSuccess(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures = 0
	p.status.LastError = ""
	p.status.LastSuccess = at
}

func (p *Poller) recordFailure(err error, at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures++
	if err != nil {
		p.status.LastError = err.Error()
	}
	p.status.LastAttempt = at
}

// Status returns a snapshot of the poller's recent health.
func (p *Poller) Status() Status {
	p.statusMu.RLock()
	defer p.statusMu.RUnlock()
	return p.status
}
