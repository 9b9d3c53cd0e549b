// Package memory provides in-memory store implementations.
package memory

import (
	"sync"
	"sync/atomic"

	"github.com/Pavesi99/EndpointTracker/adapters/clock"
	"github.com/Pavesi99/EndpointTracker/domain/tracking"
	"github.com/Pavesi99/EndpointTracker/ports"
)

// UsageStore is the in-memory implementation of ports.Tracker.
//
// Records are immutable tracking.Record values held behind pointers in a
// sync.Map; a hit replaces the whole record via a compare-and-swap loop, so
// hits on unrelated keys never serialize against each other and readers
// always observe a complete record. The global request counter is a plain
// atomic add.
type UsageStore struct {
	records sync.Map // string -> *tracking.Record
	total   atomic.Int64

	clock    ports.Clock
	hit      ports.HitFunc
	fallback bool
}

// UsageStoreConfig configures the usage store. Zero values select defaults:
// real UTC clock, tracking.Touch as the hit strategy, and fallback records
// for hits on unregistered keys.
type UsageStoreConfig struct {
	Clock ports.Clock
	Hit   ports.HitFunc

	// DisallowUnregistered suppresses the implicit record created when a hit
	// arrives for a key that was never registered. The global counter still
	// counts such hits.
	DisallowUnregistered bool
}

// NewUsageStore creates a new in-memory usage store.
func NewUsageStore(cfg UsageStoreConfig) *UsageStore {
	if cfg.Clock == nil {
		cfg.Clock = clock.Real{}
	}
	if cfg.Hit == nil {
		cfg.Hit = tracking.Touch
	}

	return &UsageStore{
		clock:    cfg.Clock,
		hit:      cfg.Hit,
		fallback: !cfg.DisallowUnregistered,
	}
}

// Register inserts a zero-hit record for key unless one already exists.
// Registration is idempotent: a key that already has a record keeps its
// counters and timestamps untouched, so a route-table reload never resets
// accumulated stats. Blank keys are ignored.
func (s *UsageStore) Register(key, displayName, method string) {
	key = tracking.NormalizeKey(key)
	if key == "" {
		return
	}

	rec := tracking.NewRecord(key, displayName, method, s.clock.Now())
	s.records.LoadOrStore(key, &rec)
}

// RecordHit counts one request for key. The global counter advances
// unconditionally; the per-key record is then upserted atomically. Blank
// keys are ignored entirely.
func (s *UsageStore) RecordHit(key string) {
	key = tracking.NormalizeKey(key)
	if key == "" {
		return
	}

	s.total.Add(1)
	now := s.clock.Now()

	for {
		v, ok := s.records.Load(key)
		if !ok {
			if !s.fallback {
				return
			}
			rec := s.hit(key, nil, now)
			if _, raced := s.records.LoadOrStore(key, &rec); !raced {
				return
			}
			// Another writer created the record first; retry as an update.
			continue
		}

		prev := v.(*tracking.Record)
		next := s.hit(key, prev, now)
		if s.records.CompareAndSwap(key, v, &next) {
			return
		}
	}
}

// ListAll returns a snapshot of every record, ordered by hit count
// descending, ties broken by key ascending.
func (s *UsageStore) ListAll() []tracking.Record {
	return tracking.SortByHits(s.snapshot())
}

// ListUnused returns the snapshot subset that was never hit, by key.
func (s *UsageStore) ListUnused() []tracking.Record {
	return tracking.Unused(s.snapshot())
}

// Summarize aggregates one snapshot into totals plus the ordered list.
// The counter is read independently of the record snapshot, so under
// concurrent writers it may sit slightly ahead of or behind the list.
func (s *UsageStore) Summarize() tracking.Summary {
	return tracking.Summarize(s.snapshot(), s.total.Load())
}

// Reset clears all records and zeroes the global counter. A hit racing a
// reset may land on either side of the clear; reset is an administrative
// operation and is not expected to run under steady-state traffic.
func (s *UsageStore) Reset() {
	s.records.Range(func(key, _ any) bool {
		s.records.Delete(key)
		return true
	})
	s.total.Store(0)
}

// TotalRequests returns the current global request count.
func (s *UsageStore) TotalRequests() int64 {
	return s.total.Load()
}

// Len returns the number of tracked endpoints (for testing).
func (s *UsageStore) Len() int {
	n := 0
	s.records.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

// snapshot copies every stored record into a fresh slice.
func (s *UsageStore) snapshot() []tracking.Record {
	out := make([]tracking.Record, 0)
	s.records.Range(func(_, v any) bool {
		out = append(out, *v.(*tracking.Record))
		return true
	})
	return out
}

// Ensure interface compliance.
var _ ports.Tracker = (*UsageStore)(nil)
