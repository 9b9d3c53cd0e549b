// Package tracking provides endpoint usage types and update functions.
// All functions are pure - no side effects.
package tracking

import (
	"strings"
	"time"
)

// MethodAny is the method component of a route key when the route accepts
// any HTTP method.
const MethodAny = "ANY"

// Record represents usage of a single endpoint (immutable value type).
// A record is never mutated in place; every hit produces a replacement.
type Record struct {
	Key            string
	DisplayName    string
	Method         string
	HitCount       int64
	LastAccessedAt time.Time // zero until the first hit
	RegisteredAt   time.Time
}

// Used returns true if the endpoint has been hit at least once.
func (r Record) Used() bool {
	return r.HitCount > 0
}

// NormalizeKey trims surrounding whitespace from a route key.
// An empty result means the key is invalid and the operation is a no-op.
func NormalizeKey(key string) string {
	return strings.TrimSpace(key)
}

// RouteKey builds the canonical key for a route: "METHOD /pattern".
// Routes without a method restriction use MethodAny.
func RouteKey(method, pattern string) string {
	m := strings.ToUpper(strings.TrimSpace(method))
	if m == "" {
		m = MethodAny
	}
	return m + " " + strings.TrimSpace(pattern)
}

// NewRecord creates a registered-but-unused record.
// This is a PURE function.
func NewRecord(key, displayName, method string, now time.Time) Record {
	return Record{
		Key:          key,
		DisplayName:  displayName,
		Method:       method,
		RegisteredAt: now,
	}
}

// Touch produces the record resulting from one hit at time now.
// A nil prev means the key was never registered; the fallback record starts
// at one hit with RegisteredAt set to the hit time.
//
// This is a PURE function. The store's compare-and-swap loop may invoke it
// more than once per logical hit, so it must never count anything outside
// the returned record.
func Touch(key string, prev *Record, now time.Time) Record {
	if prev == nil {
		return Record{
			Key:            key,
			HitCount:       1,
			LastAccessedAt: now,
			RegisteredAt:   now,
		}
	}

	next := *prev
	next.HitCount++
	// A racing caller may carry an older clock reading; the visible
	// last-access time never moves backwards.
	if now.After(next.LastAccessedAt) {
		next.LastAccessedAt = now
	}
	return next
}
