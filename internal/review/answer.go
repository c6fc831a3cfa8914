package review

import (
	"strings"

	"github.com/studyforge/backend/internal/models"
)

// AnswerKeyKind distinguishes the two stored formats for a multiple-choice
// correct answer: a bare option letter ("B") or the full option text.
type AnswerKeyKind int

const (
	KeyText AnswerKeyKind = iota
	KeyLetter
)

// AnswerKey is the parsed form of a challenge's correct answer. Parsing once
// at grading time keeps the letter-vs-text convention in a single place
// instead of re-inferring it from string length at every comparison.
type AnswerKey struct {
	Kind  AnswerKeyKind
	Value string
}

// ParseAnswerKey classifies a stored correct answer for the given challenge
// type. Only multiple-choice answers use the letter-key convention: a stored
// value of at most two characters is treated as an option letter.
func ParseAnswerKey(challengeType models.ChallengeType, correctAnswer string) AnswerKey {
	trimmed := strings.TrimSpace(correctAnswer)
	if challengeType == models.TypeMultipleChoice && len(trimmed) <= 2 {
		return AnswerKey{Kind: KeyLetter, Value: trimmed}
	}
	return AnswerKey{Kind: KeyText, Value: trimmed}
}

// Matches reports whether the user's answer is correct. Letter keys compare
// case-insensitively against the first character of the selected option
// ("B" matches "B. Paris"); text keys compare the trimmed answer in full,
// case-insensitively.
func (k AnswerKey) Matches(userAnswer string) bool {
	answer := strings.TrimSpace(userAnswer)
	if answer == "" {
		return false
	}

	if k.Kind == KeyLetter {
		selected := string([]rune(answer)[0])
		letter := string([]rune(k.Value)[0])
		return strings.EqualFold(selected, letter)
	}
	return strings.EqualFold(answer, k.Value)
}

// OptionForLetter resolves a letter key back to its full option text, for
// display in results ("B" → "B. Paris"). Falls back to the raw key when the
// index is out of range.
func (k AnswerKey) OptionForLetter(options []string) string {
	if k.Kind != KeyLetter || len(k.Value) == 0 {
		return k.Value
	}
	idx := int(strings.ToUpper(k.Value)[0]) - 'A'
	if idx >= 0 && idx < len(options) {
		return options[idx]
	}
	return k.Value
}
