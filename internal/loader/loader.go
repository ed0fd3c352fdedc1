// Package loader builds boards from a data provider and swaps them into the
// store, once at startup and optionally on an interval.
package loader

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/preston-bernstein/nba-props-service/internal/board"
	"github.com/preston-bernstein/nba-props-service/internal/domain/games"
	"github.com/preston-bernstein/nba-props-service/internal/logging"
	"github.com/preston-bernstein/nba-props-service/internal/metrics"
	"github.com/preston-bernstein/nba-props-service/internal/providers"
	"github.com/preston-bernstein/nba-props-service/internal/snapshots"
)

// maxFailures is how many consecutive failed loads flip readiness off.
const maxFailures = 3

// ErrNoProvider is returned by Load when the loader has nothing to fetch from.
var ErrNoProvider = errors.New("loader has no provider")

// BoardStore is where loaded boards are published.
type BoardStore interface {
	Board() (*board.Board, bool)
	SetBoard(b *board.Board)
}

// Config tunes a Loader.
type Config struct {
	// Interval between reloads; 0 loads once.
	Interval time.Duration
	// Source is stamped on every board this loader builds.
	Source string
	// SnapshotBackend labels snapshot write metrics.
	SnapshotBackend string
}

// Loader fetches the schedule and players, builds a board and publishes it.
type Loader struct {
	provider providers.DataProvider
	store    BoardStore
	snaps    snapshots.Store
	logger   *slog.Logger
	metrics  *metrics.Recorder
	cfg      Config
	now      func() time.Time

	loadMu   sync.Mutex
	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the loader.
type Status struct {
	ConsecutiveFailures int       `json:"consecutiveFailures"`
	LastError           string    `json:"lastError,omitempty"`
	LastAttempt         time.Time `json:"lastAttempt"`
	LastSuccess         time.Time `json:"lastSuccess"`
	// Restored is the id of a snapshot board served after a cold start failure.
	Restored string `json:"restored,omitempty"`
}

// IsReady reports whether a board is being served and loads are not failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() && s.Restored == "" {
		return false
	}
	return s.ConsecutiveFailures < maxFailures
}

// New constructs a Loader. snaps may be nil to disable snapshots.
func New(provider providers.DataProvider, store BoardStore, snaps snapshots.Store, logger *slog.Logger, recorder *metrics.Recorder, cfg Config) *Loader {
	if cfg.Interval < 0 {
		cfg.Interval = 0
	}
	if cfg.Source == "" {
		cfg.Source = "provider"
	}
	return &Loader{
		provider: provider,
		store:    store,
		snaps:    snaps,
		logger:   logger,
		metrics:  recorder,
		cfg:      cfg,
		now:      time.Now,
		done:     make(chan struct{}),
	}
}

// Start runs the initial load in the background and, when an interval is
// configured, keeps reloading until the context is cancelled or Stop is called.
func (l *Loader) Start(ctx context.Context) {
	l.startMu.Lock()
	if l.started {
		l.startMu.Unlock()
		return
	}
	l.started = true
	if l.cfg.Interval > 0 {
		l.ticker = time.NewTicker(l.cfg.Interval)
	}
	l.startMu.Unlock()

	go func() {
		logging.Info(l.logger, "loader started", slog.Int64(logging.FieldDurationMS, l.cfg.Interval.Milliseconds()))
		_ = l.Load(ctx)
		if l.ticker == nil {
			return
		}

		for {
			select {
			case <-ctx.Done():
				l.stopTicker()
				logging.Info(l.logger, "loader stopped")
				return
			case <-l.done:
				l.stopTicker()
				logging.Info(l.logger, "loader stopped")
				return
			case <-l.ticker.C:
				logging.Debug(l.logger, "scheduled reload")
				_ = l.Load(ctx)
			}
		}
	}()
}

// Stop halts the reload loop.
func (l *Loader) Stop(ctx context.Context) error {
	_ = ctx
	l.stopOnce.Do(func() {
		close(l.done)
		l.stopTicker()
	})
	return nil
}

// Reload loads synchronously and returns the board now being served.
func (l *Loader) Reload(ctx context.Context) (*board.Board, error) {
	if err := l.Load(ctx); err != nil {
		return nil, err
	}
	b, _ := l.store.Board()
	return b, nil
}

// Load runs one load cycle. On failure the current board stays in place; if
// there is none yet, the latest snapshot is restored when available.
func (l *Loader) Load(ctx context.Context) error {
	l.loadMu.Lock()
	defer l.loadMu.Unlock()

	start := time.Now()
	l.recordAttempt(start)
	b, err := l.fetchBoard(ctx)
	if l.metrics != nil {
		l.metrics.RecordLoaderCycle(time.Since(start), err)
	}
	if err != nil {
		logging.Error(l.logger, "board load failed", err, slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()))
		l.recordFailure(err, start)
		if _, ok := l.store.Board(); !ok {
			l.restoreSnapshot(ctx)
		}
		return err
	}

	l.store.SetBoard(b)
	l.saveSnapshot(ctx, b)
	l.recordSuccess(start)
	logging.Info(l.logger, "board loaded",
		logging.FieldBoardID, b.ID,
		logging.FieldCount, len(b.Players),
		"games", len(b.Games),
		logging.FieldSource, b.Source,
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)
	return nil
}

// fetchBoard loads the schedule before the players. A missing schedule only
// costs the next-game column; missing players fail the cycle.
func (l *Loader) fetchBoard(ctx context.Context) (*board.Board, error) {
	if l.provider == nil {
		return nil, ErrNoProvider
	}
	schedule, err := l.provider.FetchSchedule(ctx)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		logging.Warn(l.logger, "schedule load failed, continuing without games", err)
		schedule = []games.Game{}
	}
	players, err := l.provider.FetchPlayers(ctx)
	if err != nil {
		return nil, fmt.Errorf("load players: %w", err)
	}
	return board.New(players, schedule, l.now(), l.cfg.Source), nil
}

func (l *Loader) saveSnapshot(ctx context.Context, b *board.Board) {
	if l.snaps == nil {
		return
	}
	err := l.snaps.Save(ctx, snapshots.FromBoard(b))
	if l.metrics != nil {
		l.metrics.RecordSnapshotWrite(l.cfg.SnapshotBackend, err)
	}
	if err != nil {
		logging.Warn(l.logger, "snapshot save failed", err,
			logging.FieldBoardID, b.ID,
			logging.FieldBackend, l.cfg.SnapshotBackend,
		)
	}
}

func (l *Loader) restoreSnapshot(ctx context.Context) {
	if l.snaps == nil {
		return
	}
	snap, err := l.snaps.Latest(ctx)
	if err != nil {
		if !errors.Is(err, snapshots.ErrNotFound) {
			logging.Warn(l.logger, "snapshot restore failed", err, logging.FieldBackend, l.cfg.SnapshotBackend)
		}
		return
	}
	b := snap.Board(l.now())
	l.store.SetBoard(b)

	l.statusMu.Lock()
	l.status.Restored = b.ID
	l.statusMu.Unlock()

	logging.Info(l.logger, "board restored from snapshot",
		logging.FieldBoardID, b.ID,
		logging.FieldDate, snap.Date,
		logging.FieldCount, len(b.Players),
	)
}

func (l *Loader) stopTicker() {
	if l.ticker != nil {
		l.ticker.Stop()
	}
}

func (l *Loader) recordAttempt(at time.Time) {
	l.statusMu.Lock()
	defer l.statusMu.Unlock()
	l.status.LastAttempt = at
}

func (l *Loader) recordSuccess(at time.Time) {
	l.statusMu.Lock()
	defer l.statusMu.Unlock()
	l.status.ConsecutiveFailures = 0
	l.status.LastError = ""
	l.status.LastSuccess = at
	l.status.Restored = ""
}

func (l *Loader) recordFailure(err error, at time.Time) {
	l.statusMu.Lock()
	defer l.statusMu.Unlock()
	l.status.ConsecutiveFailures++
	if err != nil {
		l.status.LastError = err.Error()
	}
	l.status.LastAttempt = at
}

// Status returns a snapshot of the loader's recent health.
func (l *Loader) Status() Status {
	l.statusMu.RLock()
	defer l.statusMu.RUnlock()
	return l.status
}
