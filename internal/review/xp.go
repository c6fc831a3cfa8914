package review

import (
	"math"

	"github.com/studyforge/backend/internal/models"
)

// maxStreakBonus caps the per-answer streak bonus.
const maxStreakBonus = 50

// BaseXP returns the XP value of a correct answer at the given difficulty.
func BaseXP(difficulty models.Difficulty) int {
	switch difficulty {
	case models.DifficultyEasy:
		return 10
	case models.DifficultyHard:
		return 35
	default:
		return 20
	}
}

// ComputeXP returns the XP reward for one attempt. Incorrect answers earn
// nothing. Fast answers add 50% of base (floored); an active streak adds
// min(streak*2, 50).
func ComputeXP(correct bool, difficulty models.Difficulty, fastAnswer bool, streak int) int {
	if !correct {
		return 0
	}

	xp := BaseXP(difficulty)
	if fastAnswer {
		xp += xp / 2
	}
	if streak > 0 {
		bonus := streak * 2
		if bonus > maxStreakBonus {
			bonus = maxStreakBonus
		}
		xp += bonus
	}
	return xp
}

// LevelFromXP derives the level from cumulative XP: floor(sqrt(xp/100)) + 1.
// Monotonically non-decreasing; level 1 at 0 XP, level 2 at 100 XP.
func LevelFromXP(xp int64) int {
	if xp < 0 {
		xp = 0
	}
	return int(math.Floor(math.Sqrt(float64(xp)/100))) + 1
}

// XPForLevel returns the cumulative XP at which the given level starts.
// Used for progress-bar math only.
func XPForLevel(level int) int64 {
	if level <= 1 {
		return 0
	}
	n := int64(level - 1)
	return n * n * 100
}
