package notes

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

func (s *Store) CreateNote(userID int64, req models.CreateNoteRequest) (*models.Note, error) {
	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}

	var n models.Note
	var scanned pq.StringArray
	err := s.db.QueryRow(
		`INSERT INTO notes (user_id, title, content, file_url, file_type, file_name, subject, tags)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id, user_id, title, COALESCE(content, ''), COALESCE(file_url, ''),
		           file_type, COALESCE(file_name, ''), COALESCE(subject, ''), tags,
		           created_at, updated_at`,
		userID, req.Title, req.Content, req.FileURL, req.FileType, req.FileName,
		req.Subject, pq.Array(tags),
	).Scan(&n.ID, &n.UserID, &n.Title, &n.Content, &n.FileURL,
		&n.FileType, &n.FileName, &n.Subject, &scanned, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("create note: %w", err)
	}
	n.Tags = scanned
	return &n, nil
}

func (s *Store) GetNote(noteID, userID int64) (*models.Note, error) {
	var n models.Note
	var tags pq.StringArray
	err := s.db.QueryRow(
		`SELECT id, user_id, title, COALESCE(content, ''), COALESCE(file_url, ''),
		        file_type, COALESCE(file_name, ''), COALESCE(subject, ''), tags,
		        created_at, updated_at
		 FROM notes WHERE id = $1 AND user_id = $2`,
		noteID, userID,
	).Scan(&n.ID, &n.UserID, &n.Title, &n.Content, &n.FileURL,
		&n.FileType, &n.FileName, &n.Subject, &tags, &n.CreatedAt, &n.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get note: %w", err)
	}
	n.Tags = tags
	return &n, nil
}

func (s *Store) ListNotes(userID int64) ([]models.Note, error) {
	rows, err := s.db.Query(
		`SELECT id, user_id, title, COALESCE(content, ''), COALESCE(file_url, ''),
		        file_type, COALESCE(file_name, ''), COALESCE(subject, ''), tags,
		        created_at, updated_at
		 FROM notes WHERE user_id = $1
		 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	defer rows.Close()

	notes := []models.Note{}
	for rows.Next() {
		var n models.Note
		var tags pq.StringArray
		if err := rows.Scan(&n.ID, &n.UserID, &n.Title, &n.Content, &n.FileURL,
			&n.FileType, &n.FileName, &n.Subject, &tags, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan note: %w", err)
		}
		n.Tags = tags
		notes = append(notes, n)
	}
	return notes, rows.Err()
}

// UpdateNote applies the non-nil fields of req. Returns the updated note, or
// nil when the note does not exist or belongs to another user.
func (s *Store) UpdateNote(noteID, userID int64, req models.UpdateNoteRequest) (*models.Note, error) {
	current, err := s.GetNote(noteID, userID)
	if err != nil || current == nil {
		return nil, err
	}

	if req.Title != nil {
		current.Title = *req.Title
	}
	if req.Content != nil {
		current.Content = *req.Content
	}
	if req.Subject != nil {
		current.Subject = *req.Subject
	}
	if req.Tags != nil {
		current.Tags = *req.Tags
	}
	if current.Tags == nil {
		current.Tags = []string{}
	}

	_, err = s.db.Exec(
		`UPDATE notes SET title = $3, content = $4, subject = $5, tags = $6, updated_at = NOW()
		 WHERE id = $1 AND user_id = $2`,
		noteID, userID, current.Title, current.Content, current.Subject, pq.Array(current.Tags),
	)
	if err != nil {
		return nil, fmt.Errorf("update note: %w", err)
	}
	return s.GetNote(noteID, userID)
}

// DeleteNote removes the note and, via cascade, its challenges and progress.
func (s *Store) DeleteNote(noteID, userID int64) (bool, error) {
	result, err := s.db.Exec(
		`DELETE FROM notes WHERE id = $1 AND user_id = $2`,
		noteID, userID,
	)
	if err != nil {
		return false, fmt.Errorf("delete note: %w", err)
	}
	rows, _ := result.RowsAffected()
	return rows > 0, nil
}
