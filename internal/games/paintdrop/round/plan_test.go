package round

import (
	"testing"
	"time"
)

func TestPlannedDrops(t *testing.T) {
	tests := []struct {
		level    int
		expected int
	}{
		{1, 10},
		{2, 20},
		{3, 30},
		{4, 40},
		{5, 50},
		{6, 75},
		{7, 100},
		{8, 150},
		{9, 150},
		{50, 150},
		{0, 10},
	}

	for _, tc := range tests {
		if got := PlannedDrops(tc.level); got != tc.expected {
			t.Errorf("PlannedDrops(%d) = %d, expected %d", tc.level, got, tc.expected)
		}
	}
}

func TestCadence(t *testing.T) {
	tests := []struct {
		name     string
		level    int
		planned  int
		expected time.Duration
	}{
		{"level 1", 1, 10, time.Duration(float64(time.Second) / 1.1)},
		{"level 2", 2, 20, time.Duration(float64(time.Second) / 2.1)},
		{"level 8 just above min", 8, 150, time.Duration(float64(time.Second) / (8 + 8.0/150))},
		{"level 9 clamps to min", 9, 150, DefaultMinCadence},
		{"level 50 clamps to min", 50, 150, DefaultMinCadence},
		{"level 0 clamps to max", 0, 10, DefaultMaxCadence},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Cadence(tc.level, tc.planned, DefaultMinCadence, DefaultMaxCadence)
			if !approx(got, tc.expected) {
				t.Errorf("Cadence(%d, %d) = %v, expected %v", tc.level, tc.planned, got, tc.expected)
			}
		})
	}
}

func TestCadenceAlwaysInBand(t *testing.T) {
	for level := -5; level <= 500; level++ {
		for _, planned := range []int{0, 1, 10, 150, 100000} {
			got := Cadence(level, planned, DefaultMinCadence, DefaultMaxCadence)
			if got < DefaultMinCadence || got > DefaultMaxCadence {
				t.Fatalf("Cadence(%d, %d) = %v outside [%v, %v]",
					level, planned, got, DefaultMinCadence, DefaultMaxCadence)
			}
		}
	}
}
