package challenges

import (
	"context"
	"fmt"
	"log"

	"github.com/studyforge/backend/internal/generator"
	"github.com/studyforge/backend/internal/models"
	"github.com/studyforge/backend/internal/notes"
)

const (
	defaultGenerateCount = 5
	maxGenerateCount     = 20
)

type Service struct {
	store     *Store
	notes     *notes.Store
	generator *generator.Generator
}

func NewService(store *Store, noteStore *notes.Store, gen *generator.Generator) *Service {
	return &Service{store: store, notes: noteStore, generator: gen}
}

// GenerateForNote produces and persists challenges for one note. When the
// model is unavailable or returns garbage, generic fallback challenges are
// saved instead and the response says so.
func (s *Service) GenerateForNote(ctx context.Context, userID, noteID int64, req models.GenerateChallengesRequest) (*models.GenerateChallengesResponse, error) {
	note, err := s.notes.GetNote(noteID, userID)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, nil
	}

	count := req.Count
	if count <= 0 {
		count = defaultGenerateCount
	}
	if count > maxGenerateCount {
		count = maxGenerateCount
	}

	fallback := false
	drafts, _, err := s.generator.GenerateChallenges(ctx, note, req.Difficulty, count)
	if err != nil {
		log.Printf("WARN: [challenges] generation failed for note %d: %v — using fallback", noteID, err)
		drafts = generator.FallbackDrafts(note)
		fallback = true
	}
	if len(drafts) > count {
		drafts = drafts[:count]
	}

	saved, err := s.store.SaveDrafts(noteID, userID, drafts)
	if err != nil {
		return nil, fmt.Errorf("save challenges: %w", err)
	}

	log.Printf("[challenges] saved %d challenges for note %d (fallback=%v)", len(saved), noteID, fallback)
	return &models.GenerateChallengesResponse{
		NoteID:     noteID,
		Challenges: saved,
		Generated:  len(saved),
		Fallback:   fallback,
	}, nil
}

// ListForNote returns a note's challenges, or nil when the note does not
// belong to the user.
func (s *Service) ListForNote(userID, noteID int64) (*models.ChallengeListResponse, error) {
	note, err := s.notes.GetNote(noteID, userID)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, nil
	}

	list, err := s.store.ListByNote(noteID, userID)
	if err != nil {
		return nil, err
	}
	return &models.ChallengeListResponse{Challenges: list, Total: len(list)}, nil
}
