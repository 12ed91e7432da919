package usage

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/coder/quartz"
	"github.com/rs/zerolog"
)

// DefaultBackupInterval is the minimum time between two automatic flushes.
const DefaultBackupInterval = 5 * time.Minute

var (
	// ErrSnapshotNotFound is returned by a Store when nothing has been persisted yet.
	ErrSnapshotNotFound = errors.New("usage snapshot not found")
	// ErrSnapshotDirMissing is returned by a Store that refuses to create the
	// snapshot directory.
	ErrSnapshotDirMissing = errors.New("usage snapshot directory does not exist")
)

// Store persists serialized tracker snapshots.
type Store interface {
	Load() ([]byte, error)
	Save(data []byte) error
}

// Flush and load outcomes reported to the Recorder.
const (
	ResultOK       = "ok"
	ResultForced   = "forced"
	ResultSkipped  = "skipped"
	ResultError    = "error"
	ResultRestored = "restored"
	ResultEmpty    = "empty"
)

// Recorder observes tracker activity, typically to export metrics.
type Recorder interface {
	RecordIncrement(metric Metric)
	RecordFlush(result string)
	RecordLoad(result string)
}

type noopRecorder struct{}

func (noopRecorder) RecordIncrement(Metric) {}
func (noopRecorder) RecordFlush(string)     {}
func (noopRecorder) RecordLoad(string)      {}

// Option configures a Tracker.
type Option func(*Tracker)

// WithClock overrides the wall clock.
func WithClock(clock quartz.Clock) Option {
	return func(t *Tracker) {
		if clock != nil {
			t.clock = clock
		}
	}
}

// WithBackupInterval sets the initial backup interval. A persisted snapshot
// with a positive interval takes precedence once loaded.
func WithBackupInterval(interval time.Duration) Option {
	return func(t *Tracker) {
		if interval > 0 {
			t.backupInterval = interval
		}
	}
}

// WithLogger sets the logger used to report swallowed persistence errors.
func WithLogger(log zerolog.Logger) Option {
	return func(t *Tracker) {
		t.log = log.With().Str("component", "usage-tracker").Logger()
	}
}

// WithRecorder attaches a Recorder.
func WithRecorder(recorder Recorder) Option {
	return func(t *Tracker) {
		if recorder != nil {
			t.recorder = recorder
		}
	}
}

// Tracker counts API calls per operation and per UTC day and periodically
// writes its full state through a Store.
//
// A single mutex guards every history, the last flush time and the flush
// itself, so a flush blocks concurrent increments until the write returns.
// Persistence errors are logged and never returned from Increment.
type Tracker struct {
	mu       sync.Mutex
	loadOnce sync.Once

	store    Store
	clock    quartz.Clock
	log      zerolog.Logger
	recorder Recorder

	backupInterval time.Duration
	lastSavedAt    time.Time
	histories      map[Metric]*History
}

// NewTracker builds a tracker persisting through store. A nil store keeps
// the tracker in memory only. State is loaded lazily on first use, or
// eagerly with Open.
func NewTracker(store Store, opts ...Option) *Tracker {
	t := &Tracker{
		store:          store,
		clock:          quartz.NewReal(),
		log:            zerolog.Nop(),
		recorder:       noopRecorder{},
		backupInterval: DefaultBackupInterval,
		histories:      emptyHistories(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func emptyHistories() map[Metric]*History {
	histories := make(map[Metric]*History, len(Metrics))
	for _, m := range Metrics {
		histories[m] = NewHistory()
	}
	return histories
}

// Open loads the persisted snapshot if it has not been loaded yet. It never
// fails: an absent, unreadable or malformed snapshot leaves the tracker empty.
func (t *Tracker) Open() {
	t.loadOnce.Do(t.load)
}

func (t *Tracker) load() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.store == nil {
		return
	}

	data, err := t.store.Load()
	if err != nil {
		if errors.Is(err, ErrSnapshotNotFound) {
			t.log.Info().Msg("no usage snapshot found, starting with empty statistics")
			t.recorder.RecordLoad(ResultEmpty)
			return
		}
		t.log.Warn().Err(err).Msg("read usage snapshot, starting with empty statistics")
		t.recorder.RecordLoad(ResultError)
		return
	}
	if len(bytes.TrimSpace(data)) == 0 {
		t.recorder.RecordLoad(ResultEmpty)
		return
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		t.log.Warn().Err(err).Msg("decode usage snapshot, starting with empty statistics")
		t.recorder.RecordLoad(ResultError)
		return
	}

	t.histories = snap.Histories
	t.lastSavedAt = snap.LastSavedAt
	if snap.BackupInterval > 0 {
		t.backupInterval = snap.BackupInterval
	}
	t.log.Info().
		Time("last_saved_at", t.lastSavedAt).
		Dur("backup_interval", t.backupInterval).
		Msg("usage statistics restored")
	t.recorder.RecordLoad(ResultRestored)
}

// Increment records one call of the operation tracked by m and flushes the
// state when the backup interval has elapsed. Unknown metrics are ignored.
func (t *Tracker) Increment(m Metric) {
	if !m.Valid() {
		t.log.Warn().Str("metric", string(m)).Msg("ignoring unknown usage metric")
		return
	}
	t.Open()

	t.mu.Lock()
	defer t.mu.Unlock()

	h := t.histories[m]
	if h == nil {
		h = NewHistory()
		t.histories[m] = h
	}
	now := t.clock.Now()
	h.Increment(now)
	t.recorder.RecordIncrement(m)
	t.manageBackup(now)
}

func (t *Tracker) IncrementGetAllWellBoreIDPerDay() { t.Increment(MetricGetAllWellBoreIDPerDay) }

func (t *Tracker) IncrementGetAllWellBoreMetaInfoPerDay() {
	t.Increment(MetricGetAllWellBoreMetaInfoPerDay)
}

func (t *Tracker) IncrementGetWellBoreByIDPerDay() { t.Increment(MetricGetWellBoreByIDPerDay) }

func (t *Tracker) IncrementGetAllWellBorePerDay() { t.Increment(MetricGetAllWellBorePerDay) }

func (t *Tracker) IncrementPostWellBorePerDay() { t.Increment(MetricPostWellBorePerDay) }

func (t *Tracker) IncrementPutWellBoreByIDPerDay() { t.Increment(MetricPutWellBoreByIDPerDay) }

func (t *Tracker) IncrementDeleteWellBoreByIDPerDay() { t.Increment(MetricDeleteWellBoreByIDPerDay) }

// manageBackup must be called with t.mu held.
func (t *Tracker) manageBackup(now time.Time) {
	if !now.After(t.lastSavedAt.Add(t.backupInterval)) {
		return
	}
	// Recorded before the write so a failing disk is retried only after a
	// full interval.
	t.lastSavedAt = now
	if err := t.persist(ResultOK); err != nil {
		t.log.Warn().Err(err).Msg("usage snapshot not written")
	}
}

// persist must be called with t.mu held. success is the result reported
// to the recorder when the write goes through.
func (t *Tracker) persist(success string) error {
	if t.store == nil {
		return nil
	}
	data, err := json.Marshal(Snapshot{
		LastSavedAt:    t.lastSavedAt,
		BackupInterval: t.backupInterval,
		Histories:      t.histories,
	})
	if err != nil {
		t.recorder.RecordFlush(ResultError)
		return fmt.Errorf("encode usage snapshot: %w", err)
	}
	if err := t.store.Save(data); err != nil {
		if errors.Is(err, ErrSnapshotDirMissing) {
			t.recorder.RecordFlush(ResultSkipped)
		} else {
			t.recorder.RecordFlush(ResultError)
		}
		return fmt.Errorf("write usage snapshot: %w", err)
	}
	t.recorder.RecordFlush(success)
	return nil
}

// Flush writes the current state immediately, regardless of the backup
// interval. It is meant for graceful shutdown.
func (t *Tracker) Flush() error {
	t.Open()

	t.mu.Lock()
	defer t.mu.Unlock()

	t.lastSavedAt = t.clock.Now()
	return t.persist(ResultForced)
}

// Snapshot returns a deep copy of the current state.
func (t *Tracker) Snapshot() Snapshot {
	t.Open()

	t.mu.Lock()
	defer t.mu.Unlock()

	histories := make(map[Metric]*History, len(Metrics))
	for _, m := range Metrics {
		histories[m] = t.histories[m].Clone()
	}
	return Snapshot{
		LastSavedAt:    t.lastSavedAt,
		BackupInterval: t.backupInterval,
		Histories:      histories,
	}
}

// Trim drops, in every history, the buckets older than the last keepDays
// days. keepDays <= 0 is a no-op. It returns the number of dropped buckets.
func (t *Tracker) Trim(keepDays int) int {
	if keepDays <= 0 {
		return 0
	}
	t.Open()

	t.mu.Lock()
	defer t.mu.Unlock()

	today := t.clock.Now()
	dropped := 0
	for _, h := range t.histories {
		if h != nil {
			dropped += h.Trim(today, keepDays)
		}
	}
	if dropped > 0 {
		t.log.Info().Int("dropped_buckets", dropped).Int("keep_days", keepDays).Msg("usage history trimmed")
	}
	return dropped
}
