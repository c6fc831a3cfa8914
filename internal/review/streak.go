package review

// NextStreak returns the user's new streak length when today's first
// challenge completion comes in. A streak continues only when yesterday was
// also active; otherwise it restarts at 1.
func NextStreak(current int, hadYesterdayActivity bool) int {
	if hadYesterdayActivity {
		return current + 1
	}
	return 1
}

// ShouldResetStreak reports whether a dormant streak has lapsed. Checked on
// login: more than two days without activity always lapses; exactly two days
// lapses unless yesterday had activity (the one-day grace period).
func ShouldResetStreak(daysSinceLastActivity int, hadYesterdayActivity bool) bool {
	if daysSinceLastActivity > 2 {
		return true
	}
	return daysSinceLastActivity == 2 && !hadYesterdayActivity
}
