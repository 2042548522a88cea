package utils

import (
	"testing"

	"github.com/google/uuid"
)

func TestUUIDGenerator_GeneratesV7(t *testing.T) {
	g := NewUUIDGenerator()

	first, err := uuid.Parse(g.Generate())
	if err != nil {
		t.Fatalf("expected a valid uuid, got error: %v", err)
	}
	if first.Version() != 7 {
		t.Errorf("expected version 7, got %d", first.Version())
	}

	if g.Generate() == first.String() {
		t.Error("expected distinct ids")
	}
}
