package estimate

import (
	"math/rand/v2"
	"regexp"
	"testing"
	"time"
)

func TestNewProjectNumber(t *testing.T) {
	pattern := regexp.MustCompile(`^CE-20261015-[1-9][0-9]{3}$`)
	now := time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC)
	r := rand.New(rand.NewPCG(1, 2))

	for i := 0; i < 200; i++ {
		got := NewProjectNumber(now, r)
		if !pattern.MatchString(got) {
			t.Fatalf("NewProjectNumber() = %q, want CE-YYYYMMDD-NNNN", got)
		}
	}
}

func TestDefaultState_ProjectNumberEmpty(t *testing.T) {
	if got := DefaultState().ProjectNumber; got != "" {
		t.Fatalf("projectNumber = %q, want empty", got)
	}
}
