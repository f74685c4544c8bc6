package metrics

import (
	"sync"
	"time"
)

type callStats struct {
	calls           int
	errors          int
	lastCallLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about feed calls,
// enrichment outcomes, and asset probes. It is intentionally simple so it can
// be swapped for a real backend later.
type Recorder struct {
	mu               sync.Mutex
	feeds            map[string]*callStats
	enrichments      map[string]*callStats
	probes           map[int]int
	cascadeExhausted int
	otel             *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		feeds:       make(map[string]*callStats),
		enrichments: make(map[string]*callStats),
		probes:      make(map[int]int),
		otel:        otel,
	}
}

// RecordFeedAttempt increments counters for a feed call and stores the last
// observed latency.
func (r *Recorder) RecordFeedAttempt(endpoint string, duration time.Duration, err error) {
	if r == nil {
		return
	}
	stats := r.ensure(r.feeds, endpoint)
	r.record(stats, duration, err)
	if r.otel != nil {
		r.otel.recordFeedAttempt(endpoint, duration, err)
	}
}

// RecordEnrichment tracks one enrichment operation (driver details, circuit
// image, team logo) and whether it degraded to defaults.
func (r *Recorder) RecordEnrichment(kind string, duration time.Duration, err error) {
	if r == nil {
		return
	}
	stats := r.ensure(r.enrichments, kind)
	r.record(stats, duration, err)
	if r.otel != nil {
		r.otel.recordEnrichment(kind, duration, err)
	}
}

// RecordProbe counts one image-existence probe at the given cascade tier.
func (r *Recorder) RecordProbe(tier int, ok bool) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.probes[tier]++
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordProbe(tier, ok)
	}
}

// RecordCascadeExhausted counts a cascade that failed every tier.
func (r *Recorder) RecordCascadeExhausted() {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.cascadeExhausted++
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordCascadeExhausted()
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// RecordPollerCycle tracks poller cycles and errors.
func (r *Recorder) RecordPollerCycle(duration time.Duration, err error) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordPoller(duration, err)
}

// Snapshot is a copy of the stats recorded under one name.
type Snapshot struct {
	Calls           int
	Errors          int
	LastCallLatency time.Duration
}

// FeedSnapshot returns the current stats for a feed endpoint.
func (r *Recorder) FeedSnapshot(endpoint string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	return r.snapshot(r.feeds, endpoint)
}

// EnrichmentSnapshot returns the current stats for an enrichment kind.
func (r *Recorder) EnrichmentSnapshot(kind string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	return r.snapshot(r.enrichments, kind)
}

// ProbeAttempts returns how many probes were issued at the given tier.
func (r *Recorder) ProbeAttempts(tier int) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.probes[tier]
}

// CascadesExhausted returns how many cascades failed every tier.
func (r *Recorder) CascadesExhausted() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cascadeExhausted
}

func (r *Recorder) record(stats *callStats, duration time.Duration, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
}

func (r *Recorder) ensure(m map[string]*callStats, name string) *callStats {
	r.mu.Lock()
	defer r.mu.Unlock()
	stats, ok := m[name]
	if !ok {
		stats = &callStats{}
		m[name] = stats
	}
	return stats
}

func (r *Recorder) snapshot(m map[string]*callStats, name string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if stats, ok := m[name]; ok && stats != nil {
		return Snapshot{
			Calls:           stats.calls,
			Errors:          stats.errors,
			LastCallLatency: stats.lastCallLatency,
		}
	}
	return Snapshot{}
}
