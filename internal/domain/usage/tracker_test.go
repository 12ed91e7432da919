package usage_test

import (
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/coder/quartz"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/norce-drilling/wellbore-api/internal/domain/usage"
	"github.com/norce-drilling/wellbore-api/internal/infrastructure/usagestore"
)

// memoryStore is a Store that counts writes.
type memoryStore struct {
	mu      sync.Mutex
	data    []byte
	loadErr error
	saveErr error
	loads   int
	saves   int
}

func (s *memoryStore) Load() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loads++
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	if s.data == nil {
		return nil, usage.ErrSnapshotNotFound
	}
	return s.data, nil
}

func (s *memoryStore) Save(data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saves++
	if s.saveErr != nil {
		return s.saveErr
	}
	s.data = append([]byte(nil), data...)
	return nil
}

func (s *memoryStore) saveCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}

type countingRecorder struct {
	mu         sync.Mutex
	increments map[usage.Metric]int
	flushes    map[string]int
	loads      map[string]int
}

func newCountingRecorder() *countingRecorder {
	return &countingRecorder{
		increments: map[usage.Metric]int{},
		flushes:    map[string]int{},
		loads:      map[string]int{},
	}
}

func (r *countingRecorder) RecordIncrement(m usage.Metric) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.increments[m]++
}

func (r *countingRecorder) RecordFlush(result string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.flushes[result]++
}

func (r *countingRecorder) RecordLoad(result string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.loads[result]++
}

var start = time.Date(2026, 10, 17, 9, 30, 0, 0, time.UTC)

func newMockClock(t *testing.T) *quartz.Mock {
	t.Helper()
	clock := quartz.NewMock(t)
	clock.Set(start)
	return clock
}

func assertEmpty(t *testing.T, snap usage.Snapshot, except ...usage.Metric) {
	t.Helper()
	skip := map[usage.Metric]bool{}
	for _, m := range except {
		skip[m] = true
	}
	for _, m := range usage.Metrics {
		if skip[m] {
			continue
		}
		assert.Empty(t, snap.History(m).Data, "metric %s", m)
	}
}

func TestTracker_ThreePostsSameDay(t *testing.T) {
	clock := newMockClock(t)
	tracker := usage.NewTracker(&memoryStore{}, usage.WithClock(clock))

	for i := 0; i < 3; i++ {
		tracker.IncrementPostWellBorePerDay()
		clock.Advance(time.Second)
	}

	snap := tracker.Snapshot()
	post := snap.History(usage.MetricPostWellBorePerDay)
	require.Len(t, post.Data, 1)
	assert.Equal(t, uint64(3), post.Data[0].Count)
	assert.Equal(t, usage.Day(start), post.Data[0].Date)
	assertEmpty(t, snap, usage.MetricPostWellBorePerDay)
}

func TestTracker_EachNamedIncrementHitsOneMetric(t *testing.T) {
	tests := []struct {
		metric usage.Metric
		call   func(*usage.Tracker)
	}{
		{usage.MetricGetAllWellBoreIDPerDay, (*usage.Tracker).IncrementGetAllWellBoreIDPerDay},
		{usage.MetricGetAllWellBoreMetaInfoPerDay, (*usage.Tracker).IncrementGetAllWellBoreMetaInfoPerDay},
		{usage.MetricGetWellBoreByIDPerDay, (*usage.Tracker).IncrementGetWellBoreByIDPerDay},
		{usage.MetricGetAllWellBorePerDay, (*usage.Tracker).IncrementGetAllWellBorePerDay},
		{usage.MetricPostWellBorePerDay, (*usage.Tracker).IncrementPostWellBorePerDay},
		{usage.MetricPutWellBoreByIDPerDay, (*usage.Tracker).IncrementPutWellBoreByIDPerDay},
		{usage.MetricDeleteWellBoreByIDPerDay, (*usage.Tracker).IncrementDeleteWellBoreByIDPerDay},
	}

	for _, tt := range tests {
		t.Run(string(tt.metric), func(t *testing.T) {
			tracker := usage.NewTracker(nil, usage.WithClock(newMockClock(t)))
			tt.call(tracker)

			snap := tracker.Snapshot()
			assert.Equal(t, uint64(1), snap.History(tt.metric).Total())
			assertEmpty(t, snap, tt.metric)
		})
	}
}

func TestTracker_DayRollover(t *testing.T) {
	clock := newMockClock(t)
	tracker := usage.NewTracker(nil, usage.WithClock(clock))

	tracker.IncrementGetWellBoreByIDPerDay()
	clock.Advance(24 * time.Hour)
	tracker.IncrementGetWellBoreByIDPerDay()

	h := tracker.Snapshot().History(usage.MetricGetWellBoreByIDPerDay)
	require.Len(t, h.Data, 2)
	assert.True(t, h.Data[0].Date.Before(h.Data[1].Date))
	assert.Equal(t, uint64(1), h.Data[0].Count)
	assert.Equal(t, uint64(1), h.Data[1].Count)
}

func TestTracker_OneWritePerBackupInterval(t *testing.T) {
	clock := newMockClock(t)
	store := &memoryStore{}
	recorder := newCountingRecorder()
	tracker := usage.NewTracker(store,
		usage.WithClock(clock),
		usage.WithBackupInterval(5*time.Minute),
		usage.WithRecorder(recorder),
	)

	// The first increment flushes because nothing was ever saved.
	tracker.IncrementGetAllWellBorePerDay()
	assert.Equal(t, 1, store.saveCount())

	clock.Advance(time.Minute)
	tracker.IncrementGetAllWellBorePerDay()
	clock.Advance(time.Minute)
	tracker.IncrementGetAllWellBorePerDay()
	assert.Equal(t, 1, store.saveCount())

	// Exactly at the boundary nothing happens: the interval must be exceeded.
	clock.Advance(3 * time.Minute)
	tracker.IncrementGetAllWellBorePerDay()
	assert.Equal(t, 1, store.saveCount())

	clock.Advance(time.Second)
	tracker.IncrementGetAllWellBorePerDay()
	assert.Equal(t, 2, store.saveCount())
	assert.Equal(t, 2, recorder.flushes[usage.ResultOK])
	assert.Equal(t, 5, recorder.increments[usage.MetricGetAllWellBorePerDay])

	snap := tracker.Snapshot()
	assert.Equal(t, start.Add(5*time.Minute+time.Second), snap.LastSavedAt)
}

func TestTracker_FailedWriteWaitsFullInterval(t *testing.T) {
	clock := newMockClock(t)
	store := &memoryStore{saveErr: errors.New("disk full")}
	recorder := newCountingRecorder()
	tracker := usage.NewTracker(store, usage.WithClock(clock), usage.WithRecorder(recorder))

	tracker.IncrementPutWellBoreByIDPerDay()
	assert.Equal(t, 1, store.saveCount())

	// A failed write still moves lastSavedAt, so no retry storm.
	clock.Advance(time.Minute)
	tracker.IncrementPutWellBoreByIDPerDay()
	assert.Equal(t, 1, store.saveCount())

	clock.Advance(5 * time.Minute)
	tracker.IncrementPutWellBoreByIDPerDay()
	assert.Equal(t, 2, store.saveCount())
	assert.Equal(t, 2, recorder.flushes[usage.ResultError])

	// In-memory state is unaffected by the failures.
	assert.Equal(t, uint64(3), tracker.Snapshot().History(usage.MetricPutWellBoreByIDPerDay).Total())
}

func TestTracker_MissingDirectorySkipsWrite(t *testing.T) {
	fs := afero.NewMemMapFs()
	store := usagestore.NewFileStore(fs, "/data/home/history.json")
	recorder := newCountingRecorder()
	tracker := usage.NewTracker(store, usage.WithClock(newMockClock(t)), usage.WithRecorder(recorder))

	tracker.IncrementDeleteWellBoreByIDPerDay()

	exists, err := afero.Exists(fs, "/data/home/history.json")
	require.NoError(t, err)
	assert.False(t, exists)
	assert.Equal(t, 1, recorder.flushes[usage.ResultSkipped])
	assert.Equal(t, start, tracker.Snapshot().LastSavedAt)
}

func TestTracker_RoundTrip(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/home", 0o755))
	store := usagestore.NewFileStore(fs, "/home/history.json")
	clock := newMockClock(t)

	original := usage.NewTracker(store, usage.WithClock(clock), usage.WithBackupInterval(time.Hour))
	original.IncrementGetAllWellBoreIDPerDay()
	original.IncrementGetAllWellBoreIDPerDay()
	clock.Advance(48 * time.Hour)
	original.IncrementGetAllWellBoreIDPerDay()
	original.IncrementPostWellBorePerDay()
	clock.Advance(24 * time.Hour)
	original.IncrementDeleteWellBoreByIDPerDay()
	require.NoError(t, original.Flush())

	reloaded := usage.NewTracker(store, usage.WithClock(clock))
	reloaded.Open()

	want := original.Snapshot()
	got := reloaded.Snapshot()
	for _, m := range usage.Metrics {
		assert.Equal(t, want.History(m).Data, got.History(m).Data, "metric %s", m)
	}
	assert.True(t, want.LastSavedAt.Equal(got.LastSavedAt))
	assert.Equal(t, time.Hour, got.BackupInterval)
}

func TestTracker_CorruptSnapshotStartsFresh(t *testing.T) {
	tests := []struct {
		name  string
		store usage.Store
	}{
		{"malformed json", &memoryStore{data: []byte(`{"lastSavedAt": "2026-10-`)}},
		{"wrong types", &memoryStore{data: []byte(`{"postWellBorePerDay": {"data": "nope"}}`)}},
		{"bad date", &memoryStore{data: []byte(`{"postWellBorePerDay": {"data": [{"date": "tuesday", "count": 1}]}}`)}},
		{"out of order days", &memoryStore{data: []byte(`{"postWellBorePerDay": {"data": [
			{"date": "2026-10-17", "count": 1}, {"date": "2026-10-16", "count": 1}]}}`)}},
		{"unreadable", &memoryStore{loadErr: errors.New("permission denied")}},
		{"empty file", &memoryStore{data: []byte("   ")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tracker := usage.NewTracker(tt.store, usage.WithClock(newMockClock(t)))
			require.NotPanics(t, tracker.Open)

			snap := tracker.Snapshot()
			assertEmpty(t, snap)
			assert.True(t, snap.LastSavedAt.IsZero())
			assert.Equal(t, usage.DefaultBackupInterval, snap.BackupInterval)
		})
	}
}

func TestTracker_RestoresPersistedState(t *testing.T) {
	store := &memoryStore{data: []byte(`{
		"lastSavedAt": "2026-10-17T09:00:00Z",
		"backupInterval": "10m0s",
		"getAllWellBorePerDay": {"data": [{"date": "2026-10-16", "count": 4}, {"date": "2026-10-17", "count": 2}]}
	}`)}
	clock := newMockClock(t)
	recorder := newCountingRecorder()
	tracker := usage.NewTracker(store, usage.WithClock(clock), usage.WithRecorder(recorder))

	tracker.IncrementGetAllWellBorePerDay()

	snap := tracker.Snapshot()
	h := snap.History(usage.MetricGetAllWellBorePerDay)
	require.Len(t, h.Data, 2)
	assert.Equal(t, uint64(3), h.Data[1].Count)
	assert.Equal(t, 10*time.Minute, snap.BackupInterval)
	assert.Equal(t, 1, recorder.loads[usage.ResultRestored])

	// 09:30 is past 09:00 + 10m, so the increment flushed.
	assert.Equal(t, 1, store.saveCount())
	assert.Equal(t, 1, store.loads, "snapshot is loaded once")
}

func TestTracker_ConcurrentIncrements(t *testing.T) {
	const n = 1000
	store := &memoryStore{}
	tracker := usage.NewTracker(store, usage.WithClock(newMockClock(t)))

	var g errgroup.Group
	g.SetLimit(32)
	for i := 0; i < n; i++ {
		g.Go(func() error {
			tracker.IncrementGetWellBoreByIDPerDay()
			return nil
		})
	}
	require.NoError(t, g.Wait())

	h := tracker.Snapshot().History(usage.MetricGetWellBoreByIDPerDay)
	require.Len(t, h.Data, 1)
	assert.Equal(t, uint64(n), h.Data[0].Count)
	assert.Equal(t, 1, store.saveCount())
}

func TestTracker_SnapshotIsDeepCopy(t *testing.T) {
	tracker := usage.NewTracker(nil, usage.WithClock(newMockClock(t)))
	tracker.IncrementPostWellBorePerDay()

	snap := tracker.Snapshot()
	snap.History(usage.MetricPostWellBorePerDay).Data[0].Count = 99
	tracker.IncrementPostWellBorePerDay()

	assert.Equal(t, uint64(2), tracker.Snapshot().History(usage.MetricPostWellBorePerDay).Data[0].Count)
}

func TestTracker_UnknownMetricIgnored(t *testing.T) {
	store := &memoryStore{}
	tracker := usage.NewTracker(store, usage.WithClock(newMockClock(t)))

	tracker.Increment(usage.Metric("patchWellBorePerDay"))

	assertEmpty(t, tracker.Snapshot())
	assert.Equal(t, 0, store.saveCount())
}

func TestTracker_Trim(t *testing.T) {
	clock := newMockClock(t)
	tracker := usage.NewTracker(nil, usage.WithClock(clock))

	for i := 0; i < 10; i++ {
		tracker.IncrementGetAllWellBoreIDPerDay()
		tracker.IncrementPostWellBorePerDay()
		clock.Advance(24 * time.Hour)
	}

	assert.Equal(t, 0, tracker.Trim(0))
	// today is day 11, which has no bucket yet; keep days 9..11
	assert.Equal(t, 16, tracker.Trim(3))

	snap := tracker.Snapshot()
	assert.Len(t, snap.History(usage.MetricGetAllWellBoreIDPerDay).Data, 2)
	assert.Len(t, snap.History(usage.MetricPostWellBorePerDay).Data, 2)
}

func TestTracker_FlushWritesImmediately(t *testing.T) {
	clock := newMockClock(t)
	store := &memoryStore{}
	tracker := usage.NewTracker(store, usage.WithClock(clock))

	tracker.IncrementPostWellBorePerDay()
	clock.Advance(time.Second)
	tracker.IncrementPostWellBorePerDay()
	require.Equal(t, 1, store.saveCount())

	require.NoError(t, tracker.Flush())
	assert.Equal(t, 2, store.saveCount())

	var snap usage.Snapshot
	require.NoError(t, json.Unmarshal(store.data, &snap))
	assert.Equal(t, uint64(2), snap.History(usage.MetricPostWellBorePerDay).Total())
	assert.True(t, snap.LastSavedAt.Equal(start.Add(time.Second)))

	store.saveErr = errors.New("read-only filesystem")
	assert.Error(t, tracker.Flush())
}
