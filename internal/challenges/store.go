package challenges

import (
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"github.com/studyforge/backend/internal/models"
)

type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// SaveDrafts persists generated drafts against a note in one transaction.
// All drafts land or none do, so a failed generation never leaves a note
// with half a challenge set.
func (s *Store) SaveDrafts(noteID, userID int64, drafts []models.ChallengeDraft) ([]models.Challenge, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("begin save tx: %w", err)
	}
	defer tx.Rollback()

	saved := make([]models.Challenge, 0, len(drafts))
	for _, d := range drafts {
		options := d.Options
		if options == nil {
			options = []string{}
		}

		var c models.Challenge
		var scanned pq.StringArray
		err := tx.QueryRow(
			`INSERT INTO challenges (note_id, user_id, type, question, options, correct_answer, explanation, difficulty)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			 RETURNING id, note_id, user_id, type, question, options, correct_answer,
			           COALESCE(explanation, ''), difficulty, created_at`,
			noteID, userID, d.Type, d.Question, pq.Array(options), d.CorrectAnswer,
			d.Explanation, d.Difficulty,
		).Scan(&c.ID, &c.NoteID, &c.UserID, &c.Type, &c.Question, &scanned,
			&c.CorrectAnswer, &c.Explanation, &c.Difficulty, &c.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("insert challenge: %w", err)
		}
		c.Options = scanned
		saved = append(saved, c)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit save tx: %w", err)
	}
	return saved, nil
}

func (s *Store) ListByNote(noteID, userID int64) ([]models.Challenge, error) {
	rows, err := s.db.Query(
		`SELECT id, note_id, user_id, type, question, options, correct_answer,
		        COALESCE(explanation, ''), difficulty, created_at
		 FROM challenges WHERE note_id = $1 AND user_id = $2
		 ORDER BY created_at DESC, id DESC`,
		noteID, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list challenges: %w", err)
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
