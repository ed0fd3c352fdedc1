package metrics

import (
	"sync"
	"time"
)

type providerStats struct {
	calls           int
	errors          int
	rateLimitHits   int
	lastRetryAfter  time.Duration
	lastCallLatency time.Duration
}

type loaderStats struct {
	cycles      int
	failures    int
	lastLatency time.Duration
}

// Recorder captures in-memory counters for provider calls, loader cycles and
// queries, and mirrors them to OpenTelemetry instruments when configured.
type Recorder struct {
	mu        sync.Mutex
	stats     map[string]*providerStats
	loader    loaderStats
	queries   map[string]int
	snapshots map[string]int
	otel      *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats:     make(map[string]*providerStats),
		queries:   make(map[string]int),
		snapshots: make(map[string]int),
		otel:      otel,
	}
}

// RecordProviderAttempt increments counters for a provider call and stores the last observed latency.
func (r *Recorder) RecordProviderAttempt(provider string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.updateStats(provider, func(s *providerStats) {
		s.calls++
		s.lastCallLatency = duration
		if err != nil {
			s.errors++
		}
	})
	if r.otel != nil {
		r.otel.recordProviderAttempt(provider, duration, err)
	}
}

// RecordRateLimit tracks that a provider response hit a rate limit and stores the last Retry-After.
func (r *Recorder) RecordRateLimit(provider string, retryAfter time.Duration) {
	if r == nil {
		return
	}

	r.updateStats(provider, func(s *providerStats) {
		s.rateLimitHits++
		if retryAfter > 0 {
			s.lastRetryAfter = retryAfter
		}
	})
	if r.otel != nil {
		r.otel.recordRateLimit(provider, retryAfter)
	}
}

// RecordLoaderCycle tracks one board load attempt.
func (r *Recorder) RecordLoaderCycle(duration time.Duration, err error) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.loader.cycles++
	r.loader.lastLatency = duration
	if err != nil {
		r.loader.failures++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordLoader(duration, err)
	}
}

// RecordQuery counts a player query by sort mode (raw, diff, perc).
func (r *Recorder) RecordQuery(mode string) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.queries[mode]++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordQuery(mode)
	}
}

// RecordSnapshotWrite tracks snapshot persistence per backend.
func (r *Recorder) RecordSnapshotWrite(backend string, err error) {
	if r == nil {
		return
	}
	if err == nil {
		r.mu.Lock()
		r.snapshots[backend]++
		r.mu.Unlock()
	}
	if r.otel != nil {
		r.otel.recordSnapshotWrite(backend, err)
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// ProviderCalls returns the total attempts recorded for a provider.
func (r *Recorder) ProviderCalls(provider string) int {
	return r.Snapshot(provider).Calls
}

// ProviderErrors returns the total failed attempts recorded for a provider.
func (r *Recorder) ProviderErrors(provider string) int {
	return r.Snapshot(provider).Errors
}

// RateLimitHits returns the number of rate limit events seen for a provider.
func (r *Recorder) RateLimitHits(provider string) int {
	return r.Snapshot(provider).RateLimitHits
}

// LastRetryAfter returns the most recent Retry-After recorded for a provider.
func (r *Recorder) LastRetryAfter(provider string) time.Duration {
	return r.Snapshot(provider).LastRetryAfter
}

// Queries returns how many queries used the given sort mode.
func (r *Recorder) Queries(mode string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.queries[mode]
}

// SnapshotWrites returns successful snapshot writes for a backend.
func (r *Recorder) SnapshotWrites(backend string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshots[backend]
}

// LoaderCycles returns total and failed loader cycles.
func (r *Recorder) LoaderCycles() (total, failed int) {
	if r == nil {
		return 0, 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loader.cycles, r.loader.failures
}

// Snapshot is a copy of the current stats for one provider.
type Snapshot struct {
	Calls           int
	Errors          int
	RateLimitHits   int
	LastRetryAfter  time.Duration
	LastCallLatency time.Duration
}

func (r *Recorder) Snapshot(provider string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[provider]
	if !ok {
		return Snapshot{}
	}
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		RateLimitHits:   stats.rateLimitHits,
		LastRetryAfter:  stats.lastRetryAfter,
		LastCallLatency: stats.lastCallLatency,
	}
}

func (r *Recorder) updateStats(provider string, fn func(*providerStats)) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[provider]
	if !ok {
		stats = &providerStats{}
		r.stats[provider] = stats
	}
	fn(stats)
}
