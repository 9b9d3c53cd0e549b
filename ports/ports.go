// Package ports defines interfaces (contracts) between layers.
// These interfaces enable dependency injection and testability.
// Implementations live in adapters/.
package ports

import (
	"time"

	"github.com/Pavesi99/EndpointTracker/domain/tracking"
)

// -----------------------------------------------------------------------------
// Infrastructure Ports
// -----------------------------------------------------------------------------

// Clock abstracts time for testability.
type Clock interface {
	Now() time.Time
}

// IDGenerator generates unique identifiers.
type IDGenerator interface {
	New() string
}

// -----------------------------------------------------------------------------
// Tracking Ports
// -----------------------------------------------------------------------------

// HitFunc computes the record resulting from one hit. prev is nil when no
// record exists for the key. Implementations must be pure: the store's
// compare-and-swap loop may invoke the function more than once per hit, so
// any counting outside the returned record would double-count.
type HitFunc func(key string, prev *tracking.Record, now time.Time) tracking.Record

// Tracker records and reports endpoint usage. Implementations must be safe
// for concurrent use; none of the methods block or return errors, because
// tracking is a best-effort signal that must never disturb the request path.
type Tracker interface {
	// Register inserts a zero-hit record for key unless one already exists.
	// Re-registration never resets accumulated stats. Blank keys are ignored.
	Register(key, displayName, method string)

	// RecordHit counts one request for key: the global counter always
	// advances, and the per-key record is atomically upserted. Blank keys
	// are ignored entirely.
	RecordHit(key string)

	// ListAll returns a snapshot of every record, ordered by hit count
	// descending then key ascending.
	ListAll() []tracking.Record

	// ListUnused returns the snapshot subset with zero hits, by key.
	ListUnused() []tracking.Record

	// Summarize aggregates one snapshot into totals plus the ordered list.
	Summarize() tracking.Summary

	// Reset clears every record and zeroes the global counter.
	Reset()
}
