package review

import "testing"

func TestTranslateQuality(t *testing.T) {
	tests := []struct {
		name     string
		correct  bool
		spent    int
		expected int
		want     int
	}{
		{"incorrect always zero", false, 5, 30, 0},
		{"incorrect slow still zero", false, 500, 30, 0},
		{"instant answer", true, 0, 30, 5},
		{"at half expected", true, 15, 30, 5},
		{"just over half", true, 16, 30, 4},
		{"at three quarters", true, 22, 30, 4},
		{"just over three quarters", true, 23, 30, 3},
		{"at expected", true, 30, 30, 3},
		{"far over expected", true, 300, 30, 3},
		{"negative time clamps to zero", true, -10, 30, 5},
		{"custom expected window", true, 30, 60, 5},
		{"zero expected falls back to default", true, 15, 0, 5},
	}

	for _, tt := range tests {
		got := TranslateQuality(tt.correct, tt.spent, tt.expected)
		if got != tt.want {
			t.Errorf("%s: TranslateQuality(%v, %d, %d) = %d, want %d",
				tt.name, tt.correct, tt.spent, tt.expected, got, tt.want)
		}
	}
}
