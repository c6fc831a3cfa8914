package review

import (
	"math"
	"testing"
	"time"
)

var sm2Now = time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)

func TestNextScheduleIntervals(t *testing.T) {
	tests := []struct {
		name     string
		quality  int
		easiness float64
		interval int
		reps     int
		want     int
	}{
		{"first successful repetition", 5, 2.5, 1, 0, 1},
		{"second successful repetition", 5, 2.5, 1, 1, 6},
		{"third grows by easiness", 5, 2.5, 6, 2, 15},
		{"mature interval", 4, 2.0, 30, 7, 60},
		{"failure restarts regardless of reps", 2, 2.5, 30, 7, 1},
		{"quality zero restarts", 0, 1.8, 15, 4, 1},
		{"borderline pass keeps growing", 3, 2.5, 6, 2, 15},
		{"rounding up", 5, 2.5, 5, 3, 13},
	}

	for _, tt := range tests {
		got := NextSchedule(tt.quality, tt.easiness, tt.interval, tt.reps, sm2Now)
		if got.IntervalDays != tt.want {
			t.Errorf("%s: interval = %d, want %d", tt.name, got.IntervalDays, tt.want)
		}
		wantDue := sm2Now.AddDate(0, 0, tt.want)
		if !got.DueAt.Equal(wantDue) {
			t.Errorf("%s: due = %v, want %v", tt.name, got.DueAt, wantDue)
		}
	}
}

func TestNextScheduleEasiness(t *testing.T) {
	// Perfect recall raises easiness by 0.1.
	got := NextSchedule(5, 2.5, 1, 0, sm2Now)
	if math.Abs(got.Easiness-2.6) > 1e-9 {
		t.Errorf("quality 5: easiness = %f, want 2.6", got.Easiness)
	}

	// Quality 4 leaves easiness untouched.
	got = NextSchedule(4, 2.5, 1, 0, sm2Now)
	if math.Abs(got.Easiness-2.5) > 1e-9 {
		t.Errorf("quality 4: easiness = %f, want 2.5", got.Easiness)
	}

	// Quality 3 drops by 0.14.
	got = NextSchedule(3, 2.5, 1, 0, sm2Now)
	if math.Abs(got.Easiness-2.36) > 1e-9 {
		t.Errorf("quality 3: easiness = %f, want 2.36", got.Easiness)
	}

	// Quality 0 drops by 0.8.
	got = NextSchedule(0, 2.5, 1, 0, sm2Now)
	if math.Abs(got.Easiness-1.7) > 1e-9 {
		t.Errorf("quality 0: easiness = %f, want 1.7", got.Easiness)
	}

	// Easiness never drops below the floor.
	got = NextSchedule(0, 1.35, 1, 0, sm2Now)
	if got.Easiness != MinEasiness {
		t.Errorf("floored: easiness = %f, want %f", got.Easiness, MinEasiness)
	}

	// Repeated failures stay at the floor.
	ef := 2.5
	for i := 0; i < 20; i++ {
		ef = NextSchedule(0, ef, 1, 0, sm2Now).Easiness
	}
	if ef != MinEasiness {
		t.Errorf("after repeated failures: easiness = %f, want %f", ef, MinEasiness)
	}
}

func TestNextScheduleClampsQuality(t *testing.T) {
	low := NextSchedule(-3, 2.5, 6, 2, sm2Now)
	zero := NextSchedule(0, 2.5, 6, 2, sm2Now)
	if low.Easiness != zero.Easiness || low.IntervalDays != zero.IntervalDays {
		t.Errorf("quality -3 should behave like 0: got %+v vs %+v", low, zero)
	}

	high := NextSchedule(9, 2.5, 6, 2, sm2Now)
	five := NextSchedule(5, 2.5, 6, 2, sm2Now)
	if high.Easiness != five.Easiness || high.IntervalDays != five.IntervalDays {
		t.Errorf("quality 9 should behave like 5: got %+v vs %+v", high, five)
	}
}

func TestNextScheduleIntervalFloor(t *testing.T) {
	// A degenerate stored interval never schedules in the past.
	got := NextSchedule(3, MinEasiness, 0, 5, sm2Now)
	if got.IntervalDays < 1 {
		t.Errorf("interval = %d, want >= 1", got.IntervalDays)
	}
}
