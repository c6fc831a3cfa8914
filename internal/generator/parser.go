package generator

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/studyforge/backend/internal/models"
)

type challengeEnvelope struct {
	Challenges []models.ChallengeDraft `json:"challenges"`
}

type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", strings.Join(e.Errors, "; "))
}

// ParseResponse decodes the model's JSON output into challenge drafts and
// structurally validates every draft. Drafts come back trimmed, with a
// default difficulty of medium where the model left it out.
func ParseResponse(responseBody string) ([]models.ChallengeDraft, error) {
	cleaned := stripCodeFences(responseBody)

	var envelope challengeEnvelope
	if err := json.Unmarshal([]byte(cleaned), &envelope); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w", err)
	}

	if err := validateDrafts(envelope.Challenges); err != nil {
		return nil, err
	}

	for i := range envelope.Challenges {
		normalizeDraft(&envelope.Challenges[i])
	}
	return envelope.Challenges, nil
}

func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```json") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimSpace(s)
	} else if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSpace(s)
	}
	if strings.HasSuffix(s, "```") {
		s = strings.TrimSuffix(s, "```")
		s = strings.TrimSpace(s)
	}
	return s
}

func validateDrafts(drafts []models.ChallengeDraft) error {
	var errs []string

	if len(drafts) == 0 {
		return &ValidationError{Errors: []string{"no challenges in response"}}
	}

	for i, d := range drafts {
		n := i + 1

		if !models.ValidChallengeTypes[d.Type] {
			errs = append(errs, fmt.Sprintf("challenge %d: invalid type %q", n, d.Type))
			continue
		}
		if strings.TrimSpace(d.Question) == "" {
			errs = append(errs, fmt.Sprintf("challenge %d: empty question", n))
		}
		if strings.TrimSpace(d.CorrectAnswer) == "" {
			errs = append(errs, fmt.Sprintf("challenge %d: empty correct_answer", n))
		}
		if d.Difficulty != "" && !models.ValidDifficulties[d.Difficulty] {
			errs = append(errs, fmt.Sprintf("challenge %d: invalid difficulty %q", n, d.Difficulty))
		}

		switch d.Type {
		case models.TypeMultipleChoice:
			if len(d.Options) < 2 || len(d.Options) > 6 {
				errs = append(errs, fmt.Sprintf("challenge %d: expected 2-6 options, got %d", n, len(d.Options)))
			} else if !answerResolvable(d) {
				errs = append(errs, fmt.Sprintf("challenge %d: correct_answer %q matches no option", n, d.CorrectAnswer))
			}
		case models.TypeTrueFalse:
			answer := strings.ToLower(strings.TrimSpace(d.CorrectAnswer))
			if answer != "true" && answer != "false" {
				errs = append(errs, fmt.Sprintf("challenge %d: true-false answer must be 'True' or 'False', got %q", n, d.CorrectAnswer))
			}
		default:
			if len(d.Options) > 0 {
				log.Printf("WARNING: challenge %d (%s) has options; they will be ignored", n, d.Type)
			}
		}

		if d.Explanation == "" {
			log.Printf("WARNING: challenge %d has no explanation", n)
		}
	}

	checkQuestionDiversity(drafts)

	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}

// answerResolvable reports whether a multiple-choice correct answer can be
// matched against the options: either a letter key within range, or the
// full text of one option.
func answerResolvable(d models.ChallengeDraft) bool {
	answer := strings.TrimSpace(d.CorrectAnswer)
	if answer == "" {
		return false
	}

	if len(answer) <= 2 {
		idx := int(strings.ToUpper(answer)[0]) - 'A'
		return idx >= 0 && idx < len(d.Options)
	}
	for _, opt := range d.Options {
		if strings.EqualFold(strings.TrimSpace(opt), answer) {
			return true
		}
	}
	return false
}

func normalizeDraft(d *models.ChallengeDraft) {
	d.Question = strings.TrimSpace(d.Question)
	d.CorrectAnswer = strings.TrimSpace(d.CorrectAnswer)
	if d.Difficulty == "" {
		d.Difficulty = models.DifficultyMedium
	}
	if d.Type != models.TypeMultipleChoice {
		d.Options = nil
	}
}

// checkQuestionDiversity warns if any two questions share >60% keyword
// overlap, a sign the model repeated itself.
func checkQuestionDiversity(drafts []models.ChallengeDraft) {
	if len(drafts) < 2 {
		return
	}

	tokenSets := make([]map[string]bool, len(drafts))
	for i, d := range drafts {
		tokenSets[i] = tokenize(d.Question)
	}

	for i := 0; i < len(drafts); i++ {
		for j := i + 1; j < len(drafts); j++ {
			overlap := jaccardSimilarity(tokenSets[i], tokenSets[j])
			if overlap > 0.60 {
				log.Printf("WARNING: challenges %d and %d have %.0f%% keyword overlap", i+1, j+1, overlap*100)
			}
		}
	}
}

func tokenize(s string) map[string]bool {
	tokens := make(map[string]bool)
	for _, word := range strings.Fields(strings.ToLower(s)) {
		// Skip very short words (articles, prepositions)
		if len(word) > 3 {
			tokens[word] = true
		}
	}
	return tokens
}

func jaccardSimilarity(a, b map[string]bool) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0
	}

	intersection := 0
	for k := range a {
		if b[k] {
			intersection++
		}
	}

	union := len(a) + len(b) - intersection
	if union == 0 {
		return 0
	}

	return float64(intersection) / float64(union)
}
