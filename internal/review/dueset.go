package review

import (
	"time"

	"github.com/studyforge/backend/internal/models"
)

// ResolveDue filters challenges down to the set the user should review now.
// A challenge is due when the user has never attempted it, or when it is
// unmastered and its next review date has arrived. Mastered and future-dated
// challenges are excluded.
func ResolveDue(challenges []models.Challenge, progress map[int64]*models.ChallengeProgress, now time.Time) []models.DueChallenge {
	due := []models.DueChallenge{}
	for _, ch := range challenges {
		p, ok := progress[ch.ID]
		if !ok {
			due = append(due, models.DueChallenge{Challenge: ch})
			continue
		}
		if p.Mastered {
			continue
		}
		if !p.NextReviewDate.After(now) {
			due = append(due, models.DueChallenge{Challenge: ch, Progress: p})
		}
	}
	return due
}

// IsMastered reports whether an attempt pushes a challenge into mastery:
// a correct answer with at least 3 repetitions and a 30-day interval.
// Mastery is sticky; callers never unset it once earned.
func IsMastered(correct bool, repetitionCount, intervalDays int) bool {
	return correct && repetitionCount >= 3 && intervalDays >= 30
}
