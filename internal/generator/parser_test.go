package generator

import (
	"strings"
	"testing"

	"github.com/studyforge/backend/internal/models"
)

const validResponse = `{"challenges":[
{"type":"multiple-choice","question":"What drives the water cycle?","options":["A. Solar energy","B. Wind patterns","C. Ocean salinity","D. Tectonic activity"],"correct_answer":"A","explanation":"Evaporation is powered by the sun.","difficulty":"easy"},
{"type":"true-false","question":"Condensation releases heat.","correct_answer":"True","explanation":"Phase changes to liquid release latent heat.","difficulty":"medium"},
{"type":"short-answer","question":"Name the process by which plants release water vapor.","correct_answer":"Transpiration","explanation":"Plants release vapor through stomata.","difficulty":"hard"}
]}`

func TestParseResponseValid(t *testing.T) {
	drafts, err := ParseResponse(validResponse)
	if err != nil {
		t.Fatalf("ParseResponse failed: %v", err)
	}
	if len(drafts) != 3 {
		t.Fatalf("got %d drafts, want 3", len(drafts))
	}

	if drafts[0].Type != models.TypeMultipleChoice {
		t.Errorf("draft 0 type = %q, want multiple-choice", drafts[0].Type)
	}
	if len(drafts[0].Options) != 4 {
		t.Errorf("draft 0 has %d options, want 4", len(drafts[0].Options))
	}
	if drafts[0].CorrectAnswer != "A" {
		t.Errorf("draft 0 correct_answer = %q, want A", drafts[0].CorrectAnswer)
	}
	if drafts[2].Difficulty != models.DifficultyHard {
		t.Errorf("draft 2 difficulty = %q, want hard", drafts[2].Difficulty)
	}
}

func TestParseResponseStripsCodeFences(t *testing.T) {
	fenced := "```json\n" + validResponse + "\n```"
	drafts, err := ParseResponse(fenced)
	if err != nil {
		t.Fatalf("ParseResponse with fences failed: %v", err)
	}
	if len(drafts) != 3 {
		t.Errorf("got %d drafts, want 3", len(drafts))
	}

	bare := "```\n" + validResponse + "\n```"
	if _, err := ParseResponse(bare); err != nil {
		t.Fatalf("ParseResponse with bare fences failed: %v", err)
	}
}

func TestParseResponseInvalidJSON(t *testing.T) {
	_, err := ParseResponse("Here are your challenges: 1. What is...")
	if err == nil {
		t.Fatal("expected error for non-JSON response")
	}
	if !strings.Contains(err.Error(), "parse JSON") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestParseResponseEmpty(t *testing.T) {
	_, err := ParseResponse(`{"challenges":[]}`)
	if err == nil {
		t.Fatal("expected error for empty challenge list")
	}
}

func TestParseResponseValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{
			"invalid type",
			`{"challenges":[{"type":"essay","question":"Q","correct_answer":"A","difficulty":"easy"}]}`,
			"invalid type",
		},
		{
			"empty question",
			`{"challenges":[{"type":"short-answer","question":"  ","correct_answer":"A","difficulty":"easy"}]}`,
			"empty question",
		},
		{
			"empty correct answer",
			`{"challenges":[{"type":"short-answer","question":"Q","correct_answer":"","difficulty":"easy"}]}`,
			"empty correct_answer",
		},
		{
			"invalid difficulty",
			`{"challenges":[{"type":"short-answer","question":"Q","correct_answer":"A","difficulty":"brutal"}]}`,
			"invalid difficulty",
		},
		{
			"mc too few options",
			`{"challenges":[{"type":"multiple-choice","question":"Q","options":["A. only"],"correct_answer":"A","difficulty":"easy"}]}`,
			"expected 2-6 options",
		},
		{
			"mc letter out of range",
			`{"challenges":[{"type":"multiple-choice","question":"Q","options":["A. x","B. y"],"correct_answer":"E","difficulty":"easy"}]}`,
			"matches no option",
		},
		{
			"true-false bad answer",
			`{"challenges":[{"type":"true-false","question":"Q","correct_answer":"Maybe","difficulty":"easy"}]}`,
			"'True' or 'False'",
		},
	}

	for _, tt := range tests {
		_, err := ParseResponse(tt.body)
		if err == nil {
			t.Errorf("%s: expected error", tt.name)
			continue
		}
		if !strings.Contains(err.Error(), tt.wantErr) {
			t.Errorf("%s: error %q does not mention %q", tt.name, err.Error(), tt.wantErr)
		}
	}
}

func TestParseResponseFullTextAnswer(t *testing.T) {
	// A correct answer given as full option text is resolvable too.
	body := `{"challenges":[{"type":"multiple-choice","question":"Capital of France?","options":["A. London","B. Paris"],"correct_answer":"B. Paris","explanation":"x","difficulty":"easy"}]}`
	drafts, err := ParseResponse(body)
	if err != nil {
		t.Fatalf("ParseResponse failed: %v", err)
	}
	if drafts[0].CorrectAnswer != "B. Paris" {
		t.Errorf("correct_answer = %q", drafts[0].CorrectAnswer)
	}
}

func TestParseResponseNormalization(t *testing.T) {
	body := `{"challenges":[{"type":"short-answer","question":"  Q?  ","options":["stray"],"correct_answer":" ans ","explanation":"x"}]}`
	drafts, err := ParseResponse(body)
	if err != nil {
		t.Fatalf("ParseResponse failed: %v", err)
	}

	d := drafts[0]
	if d.Question != "Q?" {
		t.Errorf("question not trimmed: %q", d.Question)
	}
	if d.CorrectAnswer != "ans" {
		t.Errorf("answer not trimmed: %q", d.CorrectAnswer)
	}
	if d.Difficulty != models.DifficultyMedium {
		t.Errorf("missing difficulty should default to medium, got %q", d.Difficulty)
	}
	if d.Options != nil {
		t.Errorf("non-MC options should be dropped, got %v", d.Options)
	}
}

func TestMockClientOutputParses(t *testing.T) {
	drafts, err := ParseResponse(buildMockJSON())
	if err != nil {
		t.Fatalf("mock output failed to parse: %v", err)
	}
	if len(drafts) != 4 {
		t.Errorf("mock output has %d drafts, want 4", len(drafts))
	}

	types := map[models.ChallengeType]bool{}
	for _, d := range drafts {
		types[d.Type] = true
	}
	if len(types) != 4 {
		t.Errorf("mock output should cover all four challenge types, got %v", types)
	}
}

func TestJaccardSimilarity(t *testing.T) {
	a := tokenize("photosynthesis converts light energy into chemical energy")
	b := tokenize("photosynthesis converts light energy into chemical energy")
	if got := jaccardSimilarity(a, b); got != 1.0 {
		t.Errorf("identical sets = %f, want 1.0", got)
	}

	c := tokenize("mitochondria produce cellular respiration output")
	if got := jaccardSimilarity(a, c); got > 0.2 {
		t.Errorf("disjoint sets = %f, want near 0", got)
	}

	if got := jaccardSimilarity(map[string]bool{}, map[string]bool{}); got != 0 {
		t.Errorf("empty sets = %f, want 0", got)
	}
}
