package realtime

import (
	"testing"
	"time"
)

func TestBackoff_ExponentialWithCap(t *testing.T) {
	b := backoff{base: 1 * time.Second, max: 30 * time.Second}

	tests := []struct {
		attempt int
		want    time.Duration
	}{
		{0, 1 * time.Second},
		{1, 2 * time.Second},
		{2, 4 * time.Second},
		{3, 8 * time.Second},
		{4, 16 * time.Second},
		{5, 30 * time.Second}, // 32s capped
		{6, 30 * time.Second},
		{10, 30 * time.Second},
	}

	for _, tt := range tests {
		got := b.delay(tt.attempt)
		if got != tt.want {
			t.Errorf("delay(%d) = %v, want %v", tt.attempt, got, tt.want)
		}
	}
}

func TestBackoff_RestartsFromBase(t *testing.T) {
	b := backoff{base: 1 * time.Second, max: 30 * time.Second}

	// The delay is a pure function of the attempt index, so a counter reset
	// on successful open restarts the sequence.
	b.delay(4)
	if got := b.delay(0); got != 1*time.Second {
		t.Errorf("delay(0) after earlier attempts = %v, want 1s", got)
	}
}

func TestBackoff_MaxBelowBase(t *testing.T) {
	b := backoff{base: 10 * time.Second, max: 5 * time.Second}

	if got := b.delay(0); got != 5*time.Second {
		t.Errorf("delay(0) = %v, want capped 5s", got)
	}
}
