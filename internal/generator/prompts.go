package generator

import (
	"fmt"
	"strings"

	"github.com/studyforge/backend/internal/models"
)

// maxNoteChars caps how much note content goes into the prompt.
const maxNoteChars = 12000

func SystemPrompt() string {
	return `You are a study-challenge author. Given a student's notes, you write quiz challenges that test genuine understanding of the material, not trivia about its phrasing.

Rules:
- Every challenge must be answerable from the provided notes alone.
- Questions must cover different parts of the material; never ask the same thing twice in different words.
- Multiple-choice challenges have exactly 4 options labeled "A. ...", "B. ...", "C. ...", "D. ...", with exactly one correct option. The correct_answer field is the bare letter (e.g. "B").
- True-false challenges have correct_answer "True" or "False".
- Short-answer and fill-blank challenges have the expected answer as correct_answer, kept short.
- Every challenge includes a one or two sentence explanation of the correct answer.

Respond with JSON only, no prose and no code fences:
{"challenges":[{"type":"multiple-choice|true-false|short-answer|fill-blank","question":"...","options":["A. ...","B. ...","C. ...","D. ..."],"correct_answer":"...","explanation":"...","difficulty":"easy|medium|hard"}]}`
}

func BuildUserPrompt(note *models.Note, difficulty models.Difficulty, count int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Create %d study challenges from the notes below.\n", count)
	if difficulty != "" {
		fmt.Fprintf(&b, "Target difficulty: %s.\n", difficulty)
	} else {
		b.WriteString("Mix the difficulties: some easy, some medium, some hard.\n")
	}
	b.WriteString("Mix the challenge types where the material allows it.\n\n")

	if note.Subject != "" {
		fmt.Fprintf(&b, "Subject: %s\n", note.Subject)
	}
	if len(note.Tags) > 0 {
		fmt.Fprintf(&b, "Tags: %s\n", strings.Join(note.Tags, ", "))
	}
	fmt.Fprintf(&b, "Title: %s\n\n", note.Title)

	content := note.Content
	if content == "" && note.FileName != "" {
		// Uploaded files carry no extracted text yet; the model works from
		// the title and metadata.
		content = fmt.Sprintf("(content of uploaded %s file %q)", note.FileType, note.FileName)
	}
	if len(content) > maxNoteChars {
		content = content[:maxNoteChars]
	}
	fmt.Fprintf(&b, "Notes:\n%s\n", content)

	return b.String()
}
