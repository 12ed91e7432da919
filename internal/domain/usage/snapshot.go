package usage

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Metric names one tracked API operation.
type Metric string

const (
	MetricGetAllWellBoreIDPerDay       Metric = "getAllWellBoreIdPerDay"
	MetricGetAllWellBoreMetaInfoPerDay Metric = "getAllWellBoreMetaInfoPerDay"
	MetricGetWellBoreByIDPerDay        Metric = "getWellBoreByIdPerDay"
	MetricGetAllWellBorePerDay         Metric = "getAllWellBorePerDay"
	MetricPostWellBorePerDay           Metric = "postWellBorePerDay"
	MetricPutWellBoreByIDPerDay        Metric = "putWellBoreByIdPerDay"
	MetricDeleteWellBoreByIDPerDay     Metric = "deleteWellBoreByIdPerDay"
)

// Metrics lists every tracked metric in API order.
var Metrics = []Metric{
	MetricGetAllWellBoreIDPerDay,
	MetricGetAllWellBoreMetaInfoPerDay,
	MetricGetWellBoreByIDPerDay,
	MetricGetAllWellBorePerDay,
	MetricPostWellBorePerDay,
	MetricPutWellBoreByIDPerDay,
	MetricDeleteWellBoreByIDPerDay,
}

// Valid reports whether m is one of the tracked metrics.
func (m Metric) Valid() bool {
	for _, known := range Metrics {
		if m == known {
			return true
		}
	}
	return false
}

// Duration is a time.Duration encoded as a Go duration string in JSON.
type Duration time.Duration

// MarshalJSON implements json.Marshaler.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

// UnmarshalJSON accepts a duration string ("5m0s") or integer nanoseconds.
func (d *Duration) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		return nil
	}
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		parsed, err := time.ParseDuration(s)
		if err != nil {
			return fmt.Errorf("parse backup interval: %w", err)
		}
		*d = Duration(parsed)
		return nil
	}
	var ns int64
	if err := json.Unmarshal(data, &ns); err != nil {
		return fmt.Errorf("parse backup interval: %w", err)
	}
	*d = Duration(ns)
	return nil
}

// Snapshot is the full state of a tracker at a point in time. It is also
// the persisted document layout.
type Snapshot struct {
	LastSavedAt    time.Time
	BackupInterval time.Duration
	Histories      map[Metric]*History
}

type snapshotDocument struct {
	LastSavedAt                  time.Time `json:"lastSavedAt"`
	BackupInterval               Duration  `json:"backupInterval"`
	GetAllWellBoreIDPerDay       *History  `json:"getAllWellBoreIdPerDay"`
	GetAllWellBoreMetaInfoPerDay *History  `json:"getAllWellBoreMetaInfoPerDay"`
	GetWellBoreByIDPerDay        *History  `json:"getWellBoreByIdPerDay"`
	GetAllWellBorePerDay         *History  `json:"getAllWellBorePerDay"`
	PostWellBorePerDay           *History  `json:"postWellBorePerDay"`
	PutWellBoreByIDPerDay        *History  `json:"putWellBoreByIdPerDay"`
	DeleteWellBoreByIDPerDay     *History  `json:"deleteWellBoreByIdPerDay"`
}

func (d *snapshotDocument) fields() map[Metric]**History {
	return map[Metric]**History{
		MetricGetAllWellBoreIDPerDay:       &d.GetAllWellBoreIDPerDay,
		MetricGetAllWellBoreMetaInfoPerDay: &d.GetAllWellBoreMetaInfoPerDay,
		MetricGetWellBoreByIDPerDay:        &d.GetWellBoreByIDPerDay,
		MetricGetAllWellBorePerDay:         &d.GetAllWellBorePerDay,
		MetricPostWellBorePerDay:           &d.PostWellBorePerDay,
		MetricPutWellBoreByIDPerDay:        &d.PutWellBoreByIDPerDay,
		MetricDeleteWellBoreByIDPerDay:     &d.DeleteWellBoreByIDPerDay,
	}
}

// History returns the history for m, never nil.
func (s Snapshot) History(m Metric) *History {
	if h, ok := s.Histories[m]; ok && h != nil {
		return h
	}
	return NewHistory()
}

// MarshalJSON encodes the snapshot as the persisted document.
func (s Snapshot) MarshalJSON() ([]byte, error) {
	doc := snapshotDocument{
		LastSavedAt:    s.LastSavedAt.UTC(),
		BackupInterval: Duration(s.BackupInterval),
	}
	for m, field := range doc.fields() {
		*field = s.History(m)
	}
	return json.Marshal(doc)
}

// UnmarshalJSON decodes a persisted document. Histories with unordered or
// duplicate days are rejected.
func (s *Snapshot) UnmarshalJSON(data []byte) error {
	var doc snapshotDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	histories := make(map[Metric]*History, len(Metrics))
	for m, field := range doc.fields() {
		h := *field
		if h == nil {
			h = NewHistory()
		}
		if h.Data == nil {
			h.Data = []DayBucket{}
		}
		if err := h.validate(); err != nil {
			return fmt.Errorf("%s: %w", m, err)
		}
		histories[m] = h
	}
	s.LastSavedAt = doc.LastSavedAt
	s.BackupInterval = time.Duration(doc.BackupInterval)
	s.Histories = histories
	return nil
}
