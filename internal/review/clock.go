package review

import "time"

// Clock supplies the current time. All day-boundary decisions in the engine
// go through a Clock plus DayKey so tests can pin wall-clock time.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now().UTC() }

// NewClock returns the real UTC clock.
func NewClock() Clock { return realClock{} }

// DayKey returns the canonical calendar-day key (YYYY-MM-DD, UTC) for t.
// Every component that needs a day boundary uses this one function.
func DayKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// DaysSince returns the number of whole 24-hour periods elapsed between
// then and now. Negative elapsed time counts as zero days.
func DaysSince(now, then time.Time) int {
	elapsed := now.Sub(then)
	if elapsed < 0 {
		return 0
	}
	return int(elapsed.Hours() / 24)
}
