package generator

import (
	"strings"
	"testing"

	"github.com/studyforge/backend/internal/models"
)

func TestSystemPrompt(t *testing.T) {
	p := SystemPrompt()
	for _, want := range []string{"multiple-choice", "true-false", "short-answer", "fill-blank", "JSON"} {
		if !strings.Contains(p, want) {
			t.Errorf("system prompt missing %q", want)
		}
	}
}

func TestBuildUserPrompt(t *testing.T) {
	note := &models.Note{
		Title:   "The Water Cycle",
		Content: "Evaporation, condensation, precipitation...",
		Subject: "Earth Science",
		Tags:    []string{"hydrology", "weather"},
	}

	p := BuildUserPrompt(note, models.DifficultyHard, 5)

	for _, want := range []string{
		"Create 5 study challenges",
		"Target difficulty: hard",
		"Subject: Earth Science",
		"hydrology, weather",
		"The Water Cycle",
		"Evaporation, condensation, precipitation",
	} {
		if !strings.Contains(p, want) {
			t.Errorf("user prompt missing %q", want)
		}
	}
}

func TestBuildUserPromptNoDifficulty(t *testing.T) {
	note := &models.Note{Title: "T", Content: "C"}
	p := BuildUserPrompt(note, "", 3)
	if strings.Contains(p, "Target difficulty") {
		t.Error("prompt should not pin a difficulty when none requested")
	}
	if !strings.Contains(p, "Mix the difficulties") {
		t.Error("prompt should ask for mixed difficulties")
	}
}

func TestBuildUserPromptTruncatesContent(t *testing.T) {
	note := &models.Note{
		Title:   "Long",
		Content: strings.Repeat("x", maxNoteChars+5000),
	}
	p := BuildUserPrompt(note, models.DifficultyEasy, 3)
	if len(p) > maxNoteChars+1000 {
		t.Errorf("prompt length %d, expected note content truncated to %d", len(p), maxNoteChars)
	}
}

func TestBuildUserPromptFileOnlyNote(t *testing.T) {
	note := &models.Note{
		Title:    "Lecture 4",
		FileType: models.FileTypePDF,
		FileName: "lecture4.pdf",
	}
	p := BuildUserPrompt(note, "", 3)
	if !strings.Contains(p, "lecture4.pdf") {
		t.Error("file-only note should reference the uploaded file")
	}
}

func TestFallbackDrafts(t *testing.T) {
	note := &models.Note{Title: "Cell Biology", Subject: "Biology"}
	drafts := FallbackDrafts(note)

	if len(drafts) == 0 {
		t.Fatal("fallback must produce at least one draft")
	}
	for i, d := range drafts {
		if !models.ValidChallengeTypes[d.Type] {
			t.Errorf("draft %d: invalid type %q", i, d.Type)
		}
		if d.Question == "" || d.CorrectAnswer == "" {
			t.Errorf("draft %d: incomplete", i)
		}
		if !models.ValidDifficulties[d.Difficulty] {
			t.Errorf("draft %d: invalid difficulty %q", i, d.Difficulty)
		}
	}
	if !strings.Contains(drafts[0].Question, "Cell Biology") {
		t.Error("fallback should reference the note title")
	}
}
