package models

import "time"

// ChallengeProgress is the per-(challenge, user) mastery and scheduling record.
// Attempts are append-only; the latest attempt is the last element.
type ChallengeProgress struct {
	ID              int64              `json:"id"`
	ChallengeID     int64              `json:"challenge_id"`
	UserID          int64              `json:"user_id"`
	Attempts        []ChallengeAttempt `json:"attempts"`
	Mastered        bool               `json:"mastered"`
	NextReviewDate  time.Time          `json:"next_review_date"`
	RepetitionCount int                `json:"repetition_count"`
	EasinessFactor  float64            `json:"easiness_factor"`
	IntervalDays    int                `json:"interval_days"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}

type ChallengeAttempt struct {
	ID               int64     `json:"id"`
	AnsweredAt       time.Time `json:"answered_at"`
	UserAnswer       string    `json:"user_answer"`
	Correct          bool      `json:"correct"`
	TimeSpentSeconds int       `json:"time_spent_seconds"`
}

// DailyProgress is the per-(user, calendar day) activity aggregate. The
// streak_active flag records whether this day has already been credited
// toward the streak counter.
type DailyProgress struct {
	ID                  int64     `json:"id"`
	UserID              int64     `json:"user_id"`
	Date                string    `json:"date"` // YYYY-MM-DD
	ChallengesCompleted int       `json:"challenges_completed"`
	CorrectAnswers      int       `json:"correct_answers"`
	XPEarned            int       `json:"xp_earned"`
	StreakActive        bool      `json:"streak_active"`
	CreatedAt           time.Time `json:"created_at"`
}

// ── Request/Response Types ────────────────────────────────

type SubmitAnswerRequest struct {
	Answer           string `json:"answer"`
	TimeSpentSeconds int    `json:"time_spent_seconds"`
}

type SubmitAnswerResponse struct {
	Correct        bool      `json:"correct"`
	CorrectAnswer  string    `json:"correct_answer"`
	Explanation    string    `json:"explanation,omitempty"`
	Quality        int       `json:"quality"`
	XPAwarded      int       `json:"xp_awarded"`
	NextReviewDate time.Time `json:"next_review_date"`
	Mastered       bool      `json:"mastered"`
	Streak         int       `json:"streak"`
	Level          int       `json:"level"`
	TotalXP        int64     `json:"total_xp"`
}

// DueChallenge pairs a due challenge with its progress record, if any.
type DueChallenge struct {
	Challenge Challenge          `json:"challenge"`
	Progress  *ChallengeProgress `json:"progress,omitempty"`
}

type DueListResponse struct {
	Challenges []DueChallenge `json:"challenges"`
	Total      int            `json:"total"`
}

// HistoryEntry is a previously attempted challenge with its progress.
type HistoryEntry struct {
	Challenge Challenge         `json:"challenge"`
	Progress  ChallengeProgress `json:"progress"`
}

type HistoryResponse struct {
	Entries []HistoryEntry `json:"entries"`
	Total   int            `json:"total"`
}

type StatsResponse struct {
	TotalCompleted int `json:"total_completed"`
	CompletedToday int `json:"completed_today"`
	AverageScore   int `json:"average_score"`
	TotalAttempts  int `json:"total_attempts"`
}

type LeaderboardEntry struct {
	Rank        int    `json:"rank"`
	UserID      int64  `json:"user_id"`
	DisplayName string `json:"display_name"`
	XP          int64  `json:"xp"`
	Level       int    `json:"level"`
	Streak      int    `json:"streak"`
}

type LeaderboardResponse struct {
	Entries []LeaderboardEntry `json:"entries"`
}
