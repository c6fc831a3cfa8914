package review

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/studyforge/backend/internal/models"
)

type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// ── Challenges ──────────────────────────────────────────

func (s *Store) GetChallenge(challengeID, userID int64) (*models.Challenge, error) {
	var c models.Challenge
	var options pq.StringArray
	err := s.db.QueryRow(
		`SELECT id, note_id, user_id, type, question, options, correct_answer,
		        explanation, difficulty, created_at
		 FROM challenges WHERE id = $1 AND user_id = $2`,
		challengeID, userID,
	).Scan(&c.ID, &c.NoteID, &c.UserID, &c.Type, &c.Question, &options,
		&c.CorrectAnswer, &c.Explanation, &c.Difficulty, &c.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get challenge: %w", err)
	}
	c.Options = options
	return &c, nil
}

// GetUserChallenges returns the user's challenges, optionally scoped to one
// note, newest first.
func (s *Store) GetUserChallenges(userID int64, noteID *int64) ([]models.Challenge, error) {
	query := `SELECT id, note_id, user_id, type, question, options, correct_answer,
	                 explanation, difficulty, created_at
	          FROM challenges WHERE user_id = $1`
	args := []interface{}{userID}
	if noteID != nil {
		query += ` AND note_id = $2`
		args = append(args, *noteID)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("get user challenges: %w", err)
	}
	defer rows.Close()

	challenges := []models.Challenge{}
	for rows.Next() {
		var c models.Challenge
		var options pq.StringArray
		if err := rows.Scan(&c.ID, &c.NoteID, &c.UserID, &c.Type, &c.Question, &options,
			&c.CorrectAnswer, &c.Explanation, &c.Difficulty, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan challenge: %w", err)
		}
		c.Options = options
		challenges = append(challenges, c)
	}
	return challenges, rows.Err()
}

// ── Progress ────────────────────────────────────────────

// GetProgressMap loads the user's progress rows keyed by challenge ID, for
// due-set resolution. Attempt lists are not populated here.
func (s *Store) GetProgressMap(userID int64) (map[int64]*models.ChallengeProgress, error) {
	rows, err := s.db.Query(
		`SELECT id, challenge_id, user_id, mastered, next_review_date,
		        repetition_count, easiness_factor, interval_days, created_at, updated_at
		 FROM challenge_progress WHERE user_id = $1`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("get progress map: %w", err)
	}
	defer rows.Close()

	progress := make(map[int64]*models.ChallengeProgress)
	for rows.Next() {
		var p models.ChallengeProgress
		if err := rows.Scan(&p.ID, &p.ChallengeID, &p.UserID, &p.Mastered, &p.NextReviewDate,
			&p.RepetitionCount, &p.EasinessFactor, &p.IntervalDays, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan progress: %w", err)
		}
		p.Attempts = []models.ChallengeAttempt{}
		progress[p.ChallengeID] = &p
	}
	return progress, rows.Err()
}

// AttemptResult carries the state written by RecordAttempt back to the
// service so the response can be built without a second read.
type AttemptResult struct {
	Progress     models.ChallengeProgress
	FirstAttempt bool
}

// RecordAttempt applies one graded attempt inside a transaction. The progress
// row is locked with SELECT ... FOR UPDATE so concurrent submissions for the
// same (user, challenge) pair serialize instead of clobbering each other.
// The schedule callback receives the locked row's current state (or a fresh
// record with defaults when no row exists yet), mutates its scheduling
// fields, and returns whether this attempt earns mastery. Mastery is sticky:
// an already-mastered row never loses the flag.
func (s *Store) RecordAttempt(userID, challengeID int64, userAnswer string, correct bool,
	timeSpent int, answeredAt time.Time,
	schedule func(p *models.ChallengeProgress, firstAttempt bool) bool) (*AttemptResult, error) {

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("begin attempt tx: %w", err)
	}
	defer tx.Rollback()

	var p models.ChallengeProgress
	first := false
	err = tx.QueryRow(
		`SELECT id, challenge_id, user_id, mastered, next_review_date,
		        repetition_count, easiness_factor, interval_days
		 FROM challenge_progress
		 WHERE challenge_id = $1 AND user_id = $2
		 FOR UPDATE`,
		challengeID, userID,
	).Scan(&p.ID, &p.ChallengeID, &p.UserID, &p.Mastered, &p.NextReviewDate,
		&p.RepetitionCount, &p.EasinessFactor, &p.IntervalDays)
	if err == sql.ErrNoRows {
		first = true
		p = models.ChallengeProgress{
			ChallengeID:    challengeID,
			UserID:         userID,
			EasinessFactor: InitialEasiness,
			IntervalDays:   InitialInterval,
		}
	} else if err != nil {
		return nil, fmt.Errorf("lock progress: %w", err)
	}

	if schedule(&p, first) {
		p.Mastered = true
	}

	if first {
		err = tx.QueryRow(
			`INSERT INTO challenge_progress
			    (challenge_id, user_id, mastered, next_review_date,
			     repetition_count, easiness_factor, interval_days)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)
			 RETURNING id, created_at, updated_at`,
			p.ChallengeID, p.UserID, p.Mastered, p.NextReviewDate,
			p.RepetitionCount, p.EasinessFactor, p.IntervalDays,
		).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("insert progress: %w", err)
		}
	} else {
		_, err = tx.Exec(
			`UPDATE challenge_progress SET
			    mastered = $2, next_review_date = $3, repetition_count = $4,
			    easiness_factor = $5, interval_days = $6, updated_at = NOW()
			 WHERE id = $1`,
			p.ID, p.Mastered, p.NextReviewDate, p.RepetitionCount,
			p.EasinessFactor, p.IntervalDays,
		)
		if err != nil {
			return nil, fmt.Errorf("update progress: %w", err)
		}
	}

	_, err = tx.Exec(
		`INSERT INTO challenge_attempts (progress_id, answered_at, user_answer, correct, time_spent_seconds)
		 VALUES ($1, $2, $3, $4, $5)`,
		p.ID, answeredAt, userAnswer, correct, timeSpent,
	)
	if err != nil {
		return nil, fmt.Errorf("insert attempt: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit attempt tx: %w", err)
	}
	return &AttemptResult{Progress: p, FirstAttempt: first}, nil
}

func (s *Store) GetAttempts(progressID int64) ([]models.ChallengeAttempt, error) {
	rows, err := s.db.Query(
		`SELECT id, answered_at, user_answer, correct, time_spent_seconds
		 FROM challenge_attempts WHERE progress_id = $1 ORDER BY answered_at`,
		progressID,
	)
	if err != nil {
		return nil, fmt.Errorf("get attempts: %w", err)
	}
	defer rows.Close()

	attempts := []models.ChallengeAttempt{}
	for rows.Next() {
		var a models.ChallengeAttempt
		if err := rows.Scan(&a.ID, &a.AnsweredAt, &a.UserAnswer, &a.Correct, &a.TimeSpentSeconds); err != nil {
			return nil, fmt.Errorf("scan attempt: %w", err)
		}
		attempts = append(attempts, a)
	}
	return attempts, rows.Err()
}

// ── XP ──────────────────────────────────────────────────

// AddXP increments the user's XP atomically and returns the new total, so
// concurrent awards never lose an increment to a read-modify-write race.
func (s *Store) AddXP(userID int64, amount int) (int64, error) {
	var total int64
	err := s.db.QueryRow(
		`UPDATE users SET xp = xp + $2, updated_at = NOW()
		 WHERE id = $1
		 RETURNING xp`,
		userID, amount,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("add xp: %w", err)
	}
	return total, nil
}

// SetLevel raises the stored level. Levels only go up; a stale concurrent
// writer with a lower value is a no-op.
func (s *Store) SetLevel(userID int64, level int) error {
	_, err := s.db.Exec(
		`UPDATE users SET level = $2, updated_at = NOW() WHERE id = $1 AND level < $2`,
		userID, level,
	)
	return err
}

func (s *Store) LogXPEvent(userID int64, eventType string, xpAmount int, metadata map[string]interface{}) error {
	var metaJSON *string
	if metadata != nil {
		b, err := json.Marshal(metadata)
		if err == nil {
			s := string(b)
			metaJSON = &s
		}
	}
	_, err := s.db.Exec(
		`INSERT INTO xp_events (user_id, event_type, xp_amount, metadata)
		 VALUES ($1, $2, $3, $4)`,
		userID, eventType, xpAmount, metaJSON,
	)
	return err
}

// ── Daily Progress ──────────────────────────────────────

// AddDailyProgress accumulates the day's counters with an upsert, so two
// concurrent submissions both land instead of the second overwriting the
// first.
func (s *Store) AddDailyProgress(userID int64, day string, completedDelta, correctDelta, xpDelta int) error {
	_, err := s.db.Exec(
		`INSERT INTO daily_progress (user_id, date, challenges_completed, correct_answers, xp_earned)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (user_id, date) DO UPDATE SET
		    challenges_completed = daily_progress.challenges_completed + EXCLUDED.challenges_completed,
		    correct_answers = daily_progress.correct_answers + EXCLUDED.correct_answers,
		    xp_earned = daily_progress.xp_earned + EXCLUDED.xp_earned`,
		userID, day, completedDelta, correctDelta, xpDelta,
	)
	if err != nil {
		return fmt.Errorf("upsert daily progress: %w", err)
	}
	return nil
}

func (s *Store) GetDailyProgress(userID int64, day string) (*models.DailyProgress, error) {
	var d models.DailyProgress
	var date time.Time
	err := s.db.QueryRow(
		`SELECT id, user_id, date, challenges_completed, correct_answers, xp_earned, streak_active, created_at
		 FROM daily_progress WHERE user_id = $1 AND date = $2`,
		userID, day,
	).Scan(&d.ID, &d.UserID, &date, &d.ChallengesCompleted, &d.CorrectAnswers,
		&d.XPEarned, &d.StreakActive, &d.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get daily progress: %w", err)
	}
	d.Date = date.Format("2006-01-02")
	return &d, nil
}

// MarkStreakActive flips the day's streak_active flag and reports whether
// this call won the flip. The conditional WHERE makes the flag a
// once-per-day latch: only the first qualifying submission credits the
// streak.
func (s *Store) MarkStreakActive(userID int64, day string) (bool, error) {
	result, err := s.db.Exec(
		`UPDATE daily_progress SET streak_active = TRUE
		 WHERE user_id = $1 AND date = $2 AND streak_active = FALSE
		   AND challenges_completed > 0`,
		userID, day,
	)
	if err != nil {
		return false, fmt.Errorf("mark streak active: %w", err)
	}
	rows, _ := result.RowsAffected()
	return rows > 0, nil
}

// ── Users / Streaks ─────────────────────────────────────

func (s *Store) GetUser(userID int64) (*models.User, error) {
	var u models.User
	err := s.db.QueryRow(
		`SELECT id, email, name, xp, level, streak, last_activity, created_at, updated_at
		 FROM users WHERE id = $1`,
		userID,
	).Scan(&u.ID, &u.Email, &u.Name, &u.XP, &u.Level, &u.Streak, &u.LastActivity,
		&u.CreatedAt, &u.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

func (s *Store) UpdateUserStreak(userID int64, streak int, lastActivity time.Time) error {
	_, err := s.db.Exec(
		`UPDATE users SET streak = $2, last_activity = $3, updated_at = NOW()
		 WHERE id = $1`,
		userID, streak, lastActivity,
	)
	return err
}

func (s *Store) ResetStreak(userID int64) error {
	_, err := s.db.Exec(
		`UPDATE users SET streak = 0, updated_at = NOW() WHERE id = $1`,
		userID,
	)
	return err
}

// ── Leaderboard ─────────────────────────────────────────

func (s *Store) GetLeaderboard(limit int) ([]models.LeaderboardEntry, error) {
	rows, err := s.db.Query(
		`SELECT id, name, xp, level, streak,
		        ROW_NUMBER() OVER (ORDER BY xp DESC, id ASC) as rank
		 FROM users
		 ORDER BY xp DESC, id ASC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("get leaderboard: %w", err)
	}
	defer rows.Close()

	entries := []models.LeaderboardEntry{}
	for rows.Next() {
		var e models.LeaderboardEntry
		var fullName string
		if err := rows.Scan(&e.UserID, &fullName, &e.XP, &e.Level, &e.Streak, &e.Rank); err != nil {
			return nil, fmt.Errorf("scan leaderboard entry: %w", err)
		}
		e.DisplayName = (models.User{Name: fullName}).DisplayName()
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// ── History & Stats ─────────────────────────────────────

// GetHistory returns the user's attempted challenges with their progress
// records, most recently reviewed first.
func (s *Store) GetHistory(userID int64, limit int) ([]models.HistoryEntry, error) {
	rows, err := s.db.Query(
		`SELECT c.id, c.note_id, c.user_id, c.type, c.question, c.options,
		        c.correct_answer, c.explanation, c.difficulty, c.created_at,
		        p.id, p.challenge_id, p.user_id, p.mastered, p.next_review_date,
		        p.repetition_count, p.easiness_factor, p.interval_days,
		        p.created_at, p.updated_at
		 FROM challenge_progress p
		 JOIN challenges c ON c.id = p.challenge_id
		 WHERE p.user_id = $1
		 ORDER BY p.updated_at DESC
		 LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("get history: %w", err)
	}
	defer rows.Close()

	entries := []models.HistoryEntry{}
	for rows.Next() {
		var e models.HistoryEntry
		var options pq.StringArray
		if err := rows.Scan(&e.Challenge.ID, &e.Challenge.NoteID, &e.Challenge.UserID,
			&e.Challenge.Type, &e.Challenge.Question, &options,
			&e.Challenge.CorrectAnswer, &e.Challenge.Explanation, &e.Challenge.Difficulty,
			&e.Challenge.CreatedAt,
			&e.Progress.ID, &e.Progress.ChallengeID, &e.Progress.UserID,
			&e.Progress.Mastered, &e.Progress.NextReviewDate,
			&e.Progress.RepetitionCount, &e.Progress.EasinessFactor, &e.Progress.IntervalDays,
			&e.Progress.CreatedAt, &e.Progress.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan history entry: %w", err)
		}
		e.Challenge.Options = options
		e.Progress.Attempts = []models.ChallengeAttempt{}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *Store) GetStats(userID int64, day string) (*models.StatsResponse, error) {
	var stats models.StatsResponse
	err := s.db.QueryRow(
		`SELECT COUNT(*) FROM challenge_progress WHERE user_id = $1`,
		userID,
	).Scan(&stats.TotalCompleted)
	if err != nil {
		return nil, fmt.Errorf("get progress stats: %w", err)
	}

	var accuracy float64
	err = s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(AVG(CASE WHEN a.correct THEN 100.0 ELSE 0.0 END), 0)
		 FROM challenge_attempts a
		 JOIN challenge_progress p ON p.id = a.progress_id
		 WHERE p.user_id = $1`,
		userID,
	).Scan(&stats.TotalAttempts, &accuracy)
	if err != nil {
		return nil, fmt.Errorf("get attempt stats: %w", err)
	}
	stats.AverageScore = int(accuracy)

	err = s.db.QueryRow(
		`SELECT challenges_completed
		 FROM daily_progress WHERE user_id = $1 AND date = $2`,
		userID, day,
	).Scan(&stats.CompletedToday)
	if err == sql.ErrNoRows {
		stats.CompletedToday = 0
	} else if err != nil {
		return nil, fmt.Errorf("get today stats: %w", err)
	}

	return &stats, nil
}
