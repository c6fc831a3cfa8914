package review

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/studyforge/backend/internal/models"
)

const (
	defaultHistoryLimit     = 50
	defaultLeaderboardLimit = 20
	maxLeaderboardLimit     = 100
)

type Service struct {
	store             *Store
	clock             Clock
	expectedSeconds   int
	fastAnswerSeconds int
}

func NewService(store *Store, clock Clock) *Service {
	expectedSeconds := DefaultExpectedSeconds
	if v := os.Getenv("REVIEW_EXPECTED_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			expectedSeconds = n
		}
	}

	// Answers faster than this earn the speed bonus.
	fastAnswerSeconds := 20
	if v := os.Getenv("REVIEW_FAST_ANSWER_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			fastAnswerSeconds = n
		}
	}

	log.Printf("[review] expected=%ds fastAnswer=%ds", expectedSeconds, fastAnswerSeconds)

	return &Service{
		store:             store,
		clock:             clock,
		expectedSeconds:   expectedSeconds,
		fastAnswerSeconds: fastAnswerSeconds,
	}
}

// ── Answer Submission ───────────────────────────────────

// SubmitAnswer runs the full grading pipeline for one attempt: grade the
// answer, translate it to a recall quality, reschedule the challenge,
// award XP, roll up today's progress, and advance the streak.
func (s *Service) SubmitAnswer(userID, challengeID int64, req models.SubmitAnswerRequest) (*models.SubmitAnswerResponse, error) {
	challenge, err := s.store.GetChallenge(challengeID, userID)
	if err != nil {
		return nil, err
	}
	if challenge == nil {
		return nil, nil
	}

	now := s.clock.Now()
	timeSpent := req.TimeSpentSeconds
	if timeSpent < 0 {
		timeSpent = 0
	}

	key := ParseAnswerKey(challenge.Type, challenge.CorrectAnswer)
	correct := key.Matches(req.Answer)
	quality := TranslateQuality(correct, timeSpent, s.expectedSeconds)

	result, err := s.store.RecordAttempt(userID, challengeID, req.Answer, correct, timeSpent, now,
		func(p *models.ChallengeProgress, firstAttempt bool) bool {
			if !firstAttempt {
				p.RepetitionCount++
			}
			sched := NextSchedule(quality, p.EasinessFactor, p.IntervalDays, p.RepetitionCount, now)
			p.EasinessFactor = sched.Easiness
			p.IntervalDays = sched.IntervalDays
			p.NextReviewDate = sched.DueAt
			return IsMastered(correct, p.RepetitionCount, sched.IntervalDays)
		})
	if err != nil {
		return nil, fmt.Errorf("record attempt: %w", err)
	}
	progress := result.Progress

	user, err := s.store.GetUser(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user %d not found", userID)
	}

	// XP: awarded for correct answers only, against the streak held before
	// this attempt.
	fastAnswer := timeSpent < s.fastAnswerSeconds
	xpAwarded := ComputeXP(correct, challenge.Difficulty, fastAnswer, user.Streak)
	totalXP := user.XP
	level := user.Level
	if xpAwarded > 0 {
		totalXP, err = s.store.AddXP(userID, xpAwarded)
		if err != nil {
			return nil, err
		}
		level = LevelFromXP(totalXP)
		if level > user.Level {
			if err := s.store.SetLevel(userID, level); err != nil {
				log.Printf("WARN: [review] set level for user %d: %v", userID, err)
			}
		}
		if err := s.store.LogXPEvent(userID, "challenge_completed", xpAwarded, map[string]interface{}{
			"challenge_id": challengeID,
			"difficulty":   challenge.Difficulty,
			"quality":      quality,
			"fast_answer":  fastAnswer,
		}); err != nil {
			log.Printf("WARN: [review] log xp event for user %d: %v", userID, err)
		}
	}

	correctDelta := 0
	if correct {
		correctDelta = 1
	}
	day := DayKey(now)
	if err := s.store.AddDailyProgress(userID, day, 1, correctDelta, xpAwarded); err != nil {
		log.Printf("WARN: [review] daily progress for user %d: %v", userID, err)
	}

	streak := user.Streak
	newStreak, err := s.UpdateStreak(userID, user.Streak)
	if err != nil {
		log.Printf("WARN: [review] update streak for user %d: %v", userID, err)
	} else {
		streak = newStreak
	}

	correctAnswer := challenge.CorrectAnswer
	if key.Kind == KeyLetter {
		correctAnswer = key.OptionForLetter(challenge.Options)
	}

	return &models.SubmitAnswerResponse{
		Correct:        correct,
		CorrectAnswer:  correctAnswer,
		Explanation:    challenge.Explanation,
		Quality:        quality,
		XPAwarded:      xpAwarded,
		NextReviewDate: progress.NextReviewDate,
		Mastered:       progress.Mastered,
		Streak:         streak,
		Level:          level,
		TotalXP:        totalXP,
	}, nil
}

// ── Streaks ─────────────────────────────────────────────

// UpdateStreak credits today toward the user's streak, at most once per day.
// The streak_active latch on the daily row decides the winner under
// concurrent submissions; losers return the current streak unchanged.
func (s *Service) UpdateStreak(userID int64, currentStreak int) (int, error) {
	now := s.clock.Now()
	today := DayKey(now)

	won, err := s.store.MarkStreakActive(userID, today)
	if err != nil {
		return currentStreak, err
	}
	if !won {
		return currentStreak, nil
	}

	yesterday := DayKey(now.AddDate(0, 0, -1))
	hadYesterday := false
	if d, err := s.store.GetDailyProgress(userID, yesterday); err != nil {
		log.Printf("WARN: [review] yesterday progress for user %d: %v", userID, err)
	} else if d != nil {
		hadYesterday = d.StreakActive
	}

	newStreak := NextStreak(currentStreak, hadYesterday)
	if err := s.store.UpdateUserStreak(userID, newStreak, now); err != nil {
		return currentStreak, err
	}
	return newStreak, nil
}

// ValidateStreak lapses a dormant streak. Called on login rather than by a
// scheduler, so a streak can appear alive until the user next shows up.
func (s *Service) ValidateStreak(userID int64) error {
	user, err := s.store.GetUser(userID)
	if err != nil {
		return err
	}
	if user == nil || user.Streak == 0 || user.LastActivity == nil {
		return nil
	}

	now := s.clock.Now()
	daysSince := DaysSince(now, *user.LastActivity)

	yesterday := DayKey(now.AddDate(0, 0, -1))
	hadYesterday := false
	if d, err := s.store.GetDailyProgress(userID, yesterday); err == nil && d != nil {
		hadYesterday = d.StreakActive
	}

	if ShouldResetStreak(daysSince, hadYesterday) {
		log.Printf("[review] streak lapsed for user %d after %d days", userID, daysSince)
		return s.store.ResetStreak(userID)
	}
	return nil
}

// ── Due Set ─────────────────────────────────────────────

func (s *Service) DueChallenges(userID int64, noteID *int64) (*models.DueListResponse, error) {
	challenges, err := s.store.GetUserChallenges(userID, noteID)
	if err != nil {
		return nil, err
	}
	progress, err := s.store.GetProgressMap(userID)
	if err != nil {
		return nil, err
	}

	due := ResolveDue(challenges, progress, s.clock.Now())
	return &models.DueListResponse{Challenges: due, Total: len(due)}, nil
}

// ── History, Stats, Daily, Leaderboard ──────────────────

func (s *Service) History(userID int64, limit int) (*models.HistoryResponse, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	entries, err := s.store.GetHistory(userID, limit)
	if err != nil {
		return nil, err
	}
	return &models.HistoryResponse{Entries: entries, Total: len(entries)}, nil
}

func (s *Service) Stats(userID int64) (*models.StatsResponse, error) {
	return s.store.GetStats(userID, DayKey(s.clock.Now()))
}

// TodayProgress returns today's aggregate, zeroed when the user has not
// reviewed yet today.
func (s *Service) TodayProgress(userID int64) (*models.DailyProgress, error) {
	today := DayKey(s.clock.Now())
	d, err := s.store.GetDailyProgress(userID, today)
	if err != nil {
		return nil, err
	}
	if d == nil {
		d = &models.DailyProgress{UserID: userID, Date: today}
	}
	return d, nil
}

func (s *Service) Leaderboard(limit int) (*models.LeaderboardResponse, error) {
	if limit <= 0 {
		limit = defaultLeaderboardLimit
	}
	if limit > maxLeaderboardLimit {
		limit = maxLeaderboardLimit
	}
	entries, err := s.store.GetLeaderboard(limit)
	if err != nil {
		return nil, err
	}
	return &models.LeaderboardResponse{Entries: entries}, nil
}
