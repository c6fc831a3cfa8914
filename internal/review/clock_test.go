package review

import (
	"testing"
	"time"
)

func TestDayKey(t *testing.T) {
	tests := []struct {
		name string
		t    time.Time
		want string
	}{
		{"plain UTC", time.Date(2026, 3, 15, 9, 30, 0, 0, time.UTC), "2026-03-15"},
		{"just before midnight", time.Date(2026, 3, 15, 23, 59, 59, 0, time.UTC), "2026-03-15"},
		{"midnight starts the next day", time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC), "2026-03-16"},
		{"eastern offset normalizes to UTC", time.Date(2026, 3, 15, 23, 0, 0, 0, time.FixedZone("UTC+5", 5*3600)), "2026-03-15"},
		{"western offset crosses the boundary", time.Date(2026, 3, 15, 20, 0, 0, 0, time.FixedZone("UTC-8", -8*3600)), "2026-03-16"},
	}

	for _, tt := range tests {
		if got := DayKey(tt.t); got != tt.want {
			t.Errorf("%s: DayKey(%v) = %q, want %q", tt.name, tt.t, got, tt.want)
		}
	}
}

func TestDaysSince(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		then time.Time
		want int
	}{
		{"same moment", now, 0},
		{"a few hours ago", now.Add(-6 * time.Hour), 0},
		{"just under a day", now.Add(-23 * time.Hour), 0},
		{"exactly one day", now.Add(-24 * time.Hour), 1},
		{"a day and a half", now.Add(-36 * time.Hour), 1},
		{"two days", now.Add(-48 * time.Hour), 2},
		{"future timestamp clamps to zero", now.Add(12 * time.Hour), 0},
	}

	for _, tt := range tests {
		if got := DaysSince(now, tt.then); got != tt.want {
			t.Errorf("%s: DaysSince = %d, want %d", tt.name, got, tt.want)
		}
	}
}
