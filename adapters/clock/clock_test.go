package clock_test

import (
	"testing"
	"time"

	"github.com/Pavesi99/EndpointTracker/adapters/clock"
)

func TestReal_Now(t *testing.T) {
	c := clock.Real{}

	before := time.Now().UTC().Add(-time.Second)
	got := c.Now()
	after := time.Now().UTC().Add(time.Second)

	if got.Before(before) || got.After(after) {
		t.Errorf("Now() = %v, outside [%v, %v]", got, before, after)
	}
	if got.Location() != time.UTC {
		t.Errorf("Now() location = %v, want UTC", got.Location())
	}
}

func TestFake_SetAndAdvance(t *testing.T) {
	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	f := clock.NewFake(start)

	if !f.Now().Equal(start) {
		t.Errorf("Now() = %v, want %v", f.Now(), start)
	}

	moved := f.Advance(90 * time.Second)
	if !moved.Equal(start.Add(90 * time.Second)) {
		t.Errorf("Advance returned %v, want %v", moved, start.Add(90*time.Second))
	}
	if !f.Now().Equal(moved) {
		t.Errorf("Now() after advance = %v, want %v", f.Now(), moved)
	}

	reset := start.Add(-time.Hour)
	f.Set(reset)
	if !f.Now().Equal(reset) {
		t.Errorf("Now() after set = %v, want %v", f.Now(), reset)
	}
}
