package review

import (
	"testing"

	"github.com/studyforge/backend/internal/models"
)

func TestComputeXP(t *testing.T) {
	tests := []struct {
		name       string
		correct    bool
		difficulty models.Difficulty
		fast       bool
		streak     int
		want       int
	}{
		{"incorrect earns nothing", false, models.DifficultyHard, true, 30, 0},
		{"easy base", true, models.DifficultyEasy, false, 0, 10},
		{"medium base", true, models.DifficultyMedium, false, 0, 20},
		{"hard base", true, models.DifficultyHard, false, 0, 35},
		{"unknown difficulty falls back to medium", true, models.Difficulty("weird"), false, 0, 20},
		{"fast easy", true, models.DifficultyEasy, true, 0, 15},
		{"fast hard floors the half bonus", true, models.DifficultyHard, true, 0, 52},
		{"streak bonus", true, models.DifficultyMedium, false, 5, 30},
		{"streak bonus caps at 50", true, models.DifficultyMedium, false, 100, 70},
		{"cap boundary", true, models.DifficultyEasy, false, 25, 60},
		{"fast hard with streak", true, models.DifficultyHard, true, 10, 72},
	}

	for _, tt := range tests {
		got := ComputeXP(tt.correct, tt.difficulty, tt.fast, tt.streak)
		if got != tt.want {
			t.Errorf("%s: ComputeXP(%v, %q, %v, %d) = %d, want %d",
				tt.name, tt.correct, tt.difficulty, tt.fast, tt.streak, got, tt.want)
		}
	}
}

func TestLevelFromXP(t *testing.T) {
	tests := []struct {
		xp   int64
		want int
	}{
		{0, 1},
		{99, 1},
		{100, 2},
		{399, 2},
		{400, 3},
		{899, 3},
		{900, 4},
		{2500, 6},
		{-50, 1},
	}

	for _, tt := range tests {
		got := LevelFromXP(tt.xp)
		if got != tt.want {
			t.Errorf("LevelFromXP(%d) = %d, want %d", tt.xp, got, tt.want)
		}
	}
}

func TestXPForLevel(t *testing.T) {
	tests := []struct {
		level int
		want  int64
	}{
		{1, 0},
		{2, 100},
		{3, 400},
		{4, 900},
		{10, 8100},
		{0, 0},
	}

	for _, tt := range tests {
		got := XPForLevel(tt.level)
		if got != tt.want {
			t.Errorf("XPForLevel(%d) = %d, want %d", tt.level, got, tt.want)
		}
	}
}

func TestLevelRoundTrip(t *testing.T) {
	// The XP threshold for a level maps back to exactly that level.
	for level := 1; level <= 20; level++ {
		xp := XPForLevel(level)
		if got := LevelFromXP(xp); got != level {
			t.Errorf("LevelFromXP(XPForLevel(%d)) = %d", level, got)
		}
		if level > 1 {
			if got := LevelFromXP(xp - 1); got != level-1 {
				t.Errorf("LevelFromXP(%d) = %d, want %d", xp-1, got, level-1)
			}
		}
	}
}
