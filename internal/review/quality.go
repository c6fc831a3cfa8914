package review

// DefaultExpectedSeconds is the assumed answer time when a challenge has no
// explicit expectation attached.
const DefaultExpectedSeconds = 30

// TranslateQuality converts an attempt outcome into the 0-5 quality signal
// consumed by the scheduler. An incorrect answer is a total failure (0)
// regardless of time spent; a correct answer grades on speed relative to the
// expected time.
func TranslateQuality(correct bool, timeSpentSeconds, expectedSeconds int) int {
	if !correct {
		return 0
	}
	if timeSpentSeconds < 0 {
		timeSpentSeconds = 0
	}
	if expectedSeconds <= 0 {
		expectedSeconds = DefaultExpectedSeconds
	}

	spent := float64(timeSpentSeconds)
	expected := float64(expectedSeconds)

	switch {
	case spent <= expected*0.5:
		return 5
	case spent <= expected*0.75:
		return 4
	default:
		// At or slower than expected is still a pass, just the minimum one.
		return 3
	}
}
