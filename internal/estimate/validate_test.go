package estimate

import (
	"errors"
	"strings"
	"testing"
)

func TestValidate_DefaultState(t *testing.T) {
	if err := Validate(DefaultState()); err != nil {
		t.Fatalf("Validate(DefaultState()) error = %v", err)
	}
}

func TestValidate_Rejects(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*EstimationState)
		field  string
	}{
		{"zero cavities", func(s *EstimationState) { s.Cavities = 0 }, "cavities"},
		{"negative cooling", func(s *EstimationState) { s.CoolingTimeManual = -1 }, "coolingTimeManual"},
		{"efficiency above 100", func(s *EstimationState) { s.Efficiency = 120 }, "efficiency"},
		{"regrind above 100", func(s *EstimationState) { s.RegrindPercentage = 101 }, "regrindPercentage"},
		{"unknown runner", func(s *EstimationState) { s.RunnerType = "warm" }, "runnerType"},
		{"negative layer dosage", func(s *EstimationState) { s.Masterbatch1.Dosage = -5 }, "masterbatch1.dosage"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := DefaultState()
			tc.mutate(&s)

			err := Validate(s)
			if !errors.Is(err, ErrInvalidState) {
				t.Fatalf("Validate() error = %v, want ErrInvalidState", err)
			}
			if !strings.Contains(err.Error(), tc.field) {
				t.Fatalf("Validate() error = %q, want field %q named", err, tc.field)
			}
		})
	}
}
