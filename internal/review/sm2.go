package review

import (
	"math"
	"time"
)

const (
	// MinEasiness is the SM-2 floor: the easiness factor never drops below it.
	MinEasiness = 1.3

	// InitialEasiness and InitialInterval are the defaults for a progress
	// record that has never been scheduled.
	InitialEasiness = 2.5
	InitialInterval = 1
)

// Schedule is the forward-looking review state computed for one attempt.
type Schedule struct {
	Easiness     float64
	IntervalDays int
	DueAt        time.Time
}

// NextSchedule applies the SM-2 update for a single quality signal.
//
// quality >= 3 advances the review cycle: interval 1 on the first repetition,
// 6 on the second, then round(interval * easiness). quality < 3 restarts the
// cycle at interval 1 regardless of repetitions. The easiness factor moves by
// the standard SM-2 delta and is floored at MinEasiness.
//
// The repetition counter is owned by the caller; this function only reads it.
func NextSchedule(quality int, easiness float64, intervalDays, repetitions int, now time.Time) Schedule {
	if quality < 0 {
		quality = 0
	}
	if quality > 5 {
		quality = 5
	}

	newInterval := InitialInterval
	if quality >= 3 {
		switch repetitions {
		case 0:
			newInterval = 1
		case 1:
			newInterval = 6
		default:
			newInterval = int(math.Round(float64(intervalDays) * easiness))
		}
	}
	if newInterval < 1 {
		newInterval = 1
	}

	q := float64(quality)
	newEasiness := easiness + (0.1 - (5-q)*(0.08+(5-q)*0.02))
	if newEasiness < MinEasiness {
		newEasiness = MinEasiness
	}

	return Schedule{
		Easiness:     newEasiness,
		IntervalDays: newInterval,
		DueAt:        now.AddDate(0, 0, newInterval),
	}
}
