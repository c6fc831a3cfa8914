package models

import "time"

type ChallengeType string

const (
	TypeMultipleChoice ChallengeType = "multiple-choice"
	TypeTrueFalse      ChallengeType = "true-false"
	TypeShortAnswer    ChallengeType = "short-answer"
	TypeFillBlank      ChallengeType = "fill-blank"
)

var ValidChallengeTypes = map[ChallengeType]bool{
	TypeMultipleChoice: true,
	TypeTrueFalse:      true,
	TypeShortAnswer:    true,
	TypeFillBlank:      true,
}

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

var ValidDifficulties = map[Difficulty]bool{
	DifficultyEasy:   true,
	DifficultyMedium: true,
	DifficultyHard:   true,
}

type Challenge struct {
	ID            int64         `json:"id"`
	NoteID        int64         `json:"note_id"`
	UserID        int64         `json:"user_id"`
	Type          ChallengeType `json:"type"`
	Question      string        `json:"question"`
	Options       []string      `json:"options,omitempty"`
	CorrectAnswer string        `json:"correct_answer"`
	Explanation   string        `json:"explanation,omitempty"`
	Difficulty    Difficulty    `json:"difficulty"`
	CreatedAt     time.Time     `json:"created_at"`
}

// ChallengeDraft is what the generation collaborator returns: a challenge
// without identity or ownership, to be persisted against a note.
type ChallengeDraft struct {
	Type          ChallengeType `json:"type"`
	Question      string        `json:"question"`
	Options       []string      `json:"options,omitempty"`
	CorrectAnswer string        `json:"correct_answer"`
	Explanation   string        `json:"explanation,omitempty"`
	Difficulty    Difficulty    `json:"difficulty"`
}

type GenerateChallengesRequest struct {
	Difficulty Difficulty `json:"difficulty,omitempty"`
	Count      int        `json:"count,omitempty"`
}

type GenerateChallengesResponse struct {
	NoteID     int64       `json:"note_id"`
	Challenges []Challenge `json:"challenges"`
	Generated  int         `json:"generated"`
	Fallback   bool        `json:"fallback"`
}

type ChallengeListResponse struct {
	Challenges []Challenge `json:"challenges"`
	Total      int         `json:"total"`
}
