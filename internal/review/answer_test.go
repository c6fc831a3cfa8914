package review

import (
	"testing"

	"github.com/studyforge/backend/internal/models"
)

func TestParseAnswerKey(t *testing.T) {
	tests := []struct {
		name          string
		challengeType models.ChallengeType
		correct       string
		wantKind      AnswerKeyKind
	}{
		{"mc single letter", models.TypeMultipleChoice, "B", KeyLetter},
		{"mc letter with period", models.TypeMultipleChoice, "B.", KeyLetter},
		{"mc full option text", models.TypeMultipleChoice, "B. Paris", KeyText},
		{"mc padded letter", models.TypeMultipleChoice, "  C  ", KeyLetter},
		{"true-false never letter keyed", models.TypeTrueFalse, "T", KeyText},
		{"short answer is text", models.TypeShortAnswer, "Au", KeyText},
		{"fill blank is text", models.TypeFillBlank, "it", KeyText},
	}

	for _, tt := range tests {
		got := ParseAnswerKey(tt.challengeType, tt.correct)
		if got.Kind != tt.wantKind {
			t.Errorf("%s: ParseAnswerKey(%q, %q).Kind = %v, want %v",
				tt.name, tt.challengeType, tt.correct, got.Kind, tt.wantKind)
		}
	}
}

func TestAnswerKeyMatchesLetter(t *testing.T) {
	key := ParseAnswerKey(models.TypeMultipleChoice, "B")

	tests := []struct {
		answer string
		want   bool
	}{
		{"B", true},
		{"b", true},
		{"B. Paris", true},
		{"b. paris", true},
		{"A. London", false},
		{"C", false},
		{"", false},
		{"  B. Paris", true},
	}

	for _, tt := range tests {
		if got := key.Matches(tt.answer); got != tt.want {
			t.Errorf("letter key Matches(%q) = %v, want %v", tt.answer, got, tt.want)
		}
	}

	// A key stored with a trailing period still matches by letter.
	dotted := ParseAnswerKey(models.TypeMultipleChoice, "B.")
	if !dotted.Matches("B. Paris") {
		t.Error(`key "B." should match "B. Paris"`)
	}
	if dotted.Matches("C. Rome") {
		t.Error(`key "B." should not match "C. Rome"`)
	}
}

func TestAnswerKeyMatchesText(t *testing.T) {
	key := ParseAnswerKey(models.TypeShortAnswer, "Photosynthesis")

	tests := []struct {
		answer string
		want   bool
	}{
		{"Photosynthesis", true},
		{"photosynthesis", true},
		{"  PHOTOSYNTHESIS  ", true},
		{"Photosynthesis!", false},
		{"Photo", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := key.Matches(tt.answer); got != tt.want {
			t.Errorf("text key Matches(%q) = %v, want %v", tt.answer, got, tt.want)
		}
	}
}

func TestAnswerKeyMatchesTrueFalse(t *testing.T) {
	key := ParseAnswerKey(models.TypeTrueFalse, "True")
	if !key.Matches("true") {
		t.Error("true-false should match case-insensitively")
	}
	if key.Matches("false") {
		t.Error("true-false should reject the wrong answer")
	}
	// Two-character answers on non-MC types still compare as full text.
	if !key.Matches(" TRUE ") {
		t.Error("true-false should trim whitespace")
	}
}

func TestOptionForLetter(t *testing.T) {
	options := []string{"A. London", "B. Paris", "C. Rome"}

	key := ParseAnswerKey(models.TypeMultipleChoice, "B")
	if got := key.OptionForLetter(options); got != "B. Paris" {
		t.Errorf("OptionForLetter = %q, want %q", got, "B. Paris")
	}

	key = ParseAnswerKey(models.TypeMultipleChoice, "b")
	if got := key.OptionForLetter(options); got != "B. Paris" {
		t.Errorf("lowercase OptionForLetter = %q, want %q", got, "B. Paris")
	}

	// Out-of-range letter falls back to the raw key.
	key = ParseAnswerKey(models.TypeMultipleChoice, "Z")
	if got := key.OptionForLetter(options); got != "Z" {
		t.Errorf("out-of-range OptionForLetter = %q, want %q", got, "Z")
	}

	// Text keys pass through unchanged.
	key = ParseAnswerKey(models.TypeShortAnswer, "Paris")
	if got := key.OptionForLetter(options); got != "Paris" {
		t.Errorf("text OptionForLetter = %q, want %q", got, "Paris")
	}
}
