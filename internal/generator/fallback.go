package generator

import (
	"fmt"

	"github.com/studyforge/backend/internal/models"
)

// FallbackDrafts returns generic challenges for a note when generation
// fails. They keep the study loop usable while the model is unavailable;
// callers flag the response so the client can tell the user.
func FallbackDrafts(note *models.Note) []models.ChallengeDraft {
	topic := note.Title
	if note.Subject != "" {
		topic = note.Subject
	}

	return []models.ChallengeDraft{
		{
			Type:     models.TypeMultipleChoice,
			Question: fmt.Sprintf("What is the main topic discussed in %q?", note.Title),
			Options: []string{
				fmt.Sprintf("A. The core material of %s", topic),
				"B. An unrelated subject",
				"C. Only background context",
				"D. None of the above",
			},
			CorrectAnswer: "A",
			Explanation:   "This is a sample question generated while the AI service is unavailable.",
			Difficulty:    models.DifficultyMedium,
		},
		{
			Type:          models.TypeShortAnswer,
			Question:      fmt.Sprintf("Summarize the key points of %q.", note.Title),
			CorrectAnswer: "Key points include the main ideas covered in the note.",
			Explanation:   "This is a sample question. Please review your uploaded content.",
			Difficulty:    models.DifficultyMedium,
		},
	}
}
