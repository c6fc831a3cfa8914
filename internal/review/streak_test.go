package review

import "testing"

func TestNextStreak(t *testing.T) {
	tests := []struct {
		name         string
		current      int
		hadYesterday bool
		want         int
	}{
		{"continues after active yesterday", 5, true, 6},
		{"first ever day", 0, false, 1},
		{"restarts after a gap", 12, false, 1},
		{"one continues to two", 1, true, 2},
		{"zero with yesterday active", 0, true, 1},
	}

	for _, tt := range tests {
		if got := NextStreak(tt.current, tt.hadYesterday); got != tt.want {
			t.Errorf("%s: NextStreak(%d, %v) = %d, want %d",
				tt.name, tt.current, tt.hadYesterday, got, tt.want)
		}
	}
}

func TestShouldResetStreak(t *testing.T) {
	tests := []struct {
		name         string
		daysSince    int
		hadYesterday bool
		want         bool
	}{
		{"same day", 0, false, false},
		{"one day keeps the grace", 1, false, false},
		{"two days without yesterday lapses", 2, false, true},
		{"two days with yesterday survives", 2, true, false},
		{"three days always lapses", 3, false, true},
		{"three days lapses even with yesterday flag", 3, true, true},
		{"long dormancy", 30, false, true},
	}

	for _, tt := range tests {
		if got := ShouldResetStreak(tt.daysSince, tt.hadYesterday); got != tt.want {
			t.Errorf("%s: ShouldResetStreak(%d, %v) = %v, want %v",
				tt.name, tt.daysSince, tt.hadYesterday, got, tt.want)
		}
	}
}
