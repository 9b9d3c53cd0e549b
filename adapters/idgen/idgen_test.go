package idgen_test

import (
	"testing"

	"github.com/Pavesi99/EndpointTracker/adapters/idgen"
)

func TestUUID_New(t *testing.T) {
	g := idgen.UUID{}

	a := g.New()
	b := g.New()

	if len(a) != 36 {
		t.Errorf("uuid length = %d, want 36", len(a))
	}
	if a == b {
		t.Error("consecutive UUIDs are equal")
	}
}

func TestSequential_New(t *testing.T) {
	g := idgen.NewSequential("inst-")

	if got := g.New(); got != "inst-1" {
		t.Errorf("first id = %q, want inst-1", got)
	}
	if got := g.New(); got != "inst-2" {
		t.Errorf("second id = %q, want inst-2", got)
	}
}
