package usage

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const dayLayout = "2006-01-02"

// Day truncates t to its UTC calendar day.
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DayBucket counts the events recorded on one UTC calendar day.
type DayBucket struct {
	Date  time.Time `json:"date"`
	Count uint64    `json:"count"`
}

type dayBucketJSON struct {
	Date  string `json:"date"`
	Count uint64 `json:"count"`
}

// MarshalJSON encodes the date as YYYY-MM-DD.
func (b DayBucket) MarshalJSON() ([]byte, error) {
	return json.Marshal(dayBucketJSON{Date: b.Date.UTC().Format(dayLayout), Count: b.Count})
}

// UnmarshalJSON accepts YYYY-MM-DD or an RFC 3339 timestamp.
func (b *DayBucket) UnmarshalJSON(data []byte) error {
	var raw dayBucketJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	date, err := parseDay(raw.Date)
	if err != nil {
		return err
	}
	b.Date = date
	b.Count = raw.Count
	return nil
}

func parseDay(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if t, err := time.Parse(dayLayout, raw); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse bucket date %q: %w", raw, err)
	}
	return Day(t), nil
}

// History is a date-bucketed event counter for a single metric.
// It is not safe for concurrent use.
type History struct {
	Data []DayBucket `json:"data"`
}

// NewHistory returns an empty history.
func NewHistory() *History {
	return &History{Data: []DayBucket{}}
}

// Increment records one event on the UTC day of now.
//
// If the last bucket is dated after today (the wall clock moved backwards)
// the event is added to the last bucket instead of inserting out of order.
func (h *History) Increment(now time.Time) {
	today := Day(now)
	n := len(h.Data)
	if n == 0 || h.Data[n-1].Date.Before(today) {
		h.Data = append(h.Data, DayBucket{Date: today, Count: 1})
		return
	}
	h.Data[n-1].Count++
}

// Total sums the counts of all buckets.
func (h *History) Total() uint64 {
	var total uint64
	for _, b := range h.Data {
		total += b.Count
	}
	return total
}

// Trim drops buckets older than the last keepDays days ending at today.
// keepDays <= 0 keeps everything. It returns the number of dropped buckets.
func (h *History) Trim(today time.Time, keepDays int) int {
	if keepDays <= 0 || len(h.Data) == 0 {
		return 0
	}
	cutoff := Day(today).AddDate(0, 0, -(keepDays - 1))
	i := 0
	for i < len(h.Data) && h.Data[i].Date.Before(cutoff) {
		i++
	}
	if i == 0 {
		return 0
	}
	h.Data = append([]DayBucket{}, h.Data[i:]...)
	return i
}

// Clone returns a deep copy.
func (h *History) Clone() *History {
	if h == nil {
		return NewHistory()
	}
	data := make([]DayBucket, len(h.Data))
	copy(data, h.Data)
	return &History{Data: data}
}

func (h *History) validate() error {
	for i, b := range h.Data {
		if !b.Date.Equal(Day(b.Date)) {
			return fmt.Errorf("bucket %d: date %s is not a calendar day", i, b.Date)
		}
		if i > 0 && !h.Data[i-1].Date.Before(b.Date) {
			return fmt.Errorf("bucket %d: date %s is not after %s", i, b.Date.Format(dayLayout), h.Data[i-1].Date.Format(dayLayout))
		}
	}
	return nil
}
