package domain

import (
	"errors"
	"math"
	"testing"
	"time"
)

func TestDayKeyRoundTrip(t *testing.T) {
	at := time.Date(2026, 3, 2, 18, 45, 0, 0, time.UTC)

	key := DayKey(at)
	if key != "2026-03-02" {
		t.Errorf("DayKey() = %q, want %q", key, "2026-03-02")
	}

	parsed, err := ParseDayKey(key)
	if err != nil {
		t.Fatalf("ParseDayKey() error = %v", err)
	}
	if parsed.Year() != 2026 || parsed.Month() != 3 || parsed.Day() != 2 {
		t.Errorf("ParseDayKey() = %v, want 2026-03-02", parsed)
	}
}

func TestValidateAmounts(t *testing.T) {
	tests := []struct {
		name     string
		target   float64
		consumed float64
		wantErr  error
	}{
		{"valid", 100, 50, nil},
		{"zero consumed", 100, 0, nil},
		{"zero target", 0, 50, ErrInvalidTarget},
		{"negative target", -10, 50, ErrInvalidTarget},
		{"nan target", math.NaN(), 50, ErrInvalidTarget},
		{"inf target", math.Inf(1), 50, ErrInvalidTarget},
		{"negative consumed", 100, -1, ErrInvalidConsumed},
		{"nan consumed", 100, math.NaN(), ErrInvalidConsumed},
		{"inf consumed", 100, math.Inf(-1), ErrInvalidConsumed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAmounts(tt.target, tt.consumed)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateAmounts() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestDailyStatus(t *testing.T) {
	day := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)

	status, err := NewDailyStatus(day, 100, 60)
	if err != nil {
		t.Fatalf("NewDailyStatus() error = %v", err)
	}

	if got := status.Remaining(); got != 40 {
		t.Errorf("Remaining() = %v, want 40", got)
	}
	if status.TargetHit() {
		t.Errorf("TargetHit() = true, want false")
	}
	if got := status.ProgressPercent(); got != 60 {
		t.Errorf("ProgressPercent() = %v, want 60", got)
	}
}

func TestDailyStatusOverTarget(t *testing.T) {
	day := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)

	status, err := NewDailyStatus(day, 100, 130)
	if err != nil {
		t.Fatalf("NewDailyStatus() error = %v", err)
	}

	if got := status.Remaining(); got != 0 {
		t.Errorf("Remaining() = %v, want 0", got)
	}
	if !status.TargetHit() {
		t.Errorf("TargetHit() = false, want true")
	}
	// Progress is reported uncapped.
	if got := status.ProgressPercent(); got != 130 {
		t.Errorf("ProgressPercent() = %v, want 130", got)
	}
}
