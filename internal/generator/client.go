package generator

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/anthropics/anthropic-sdk-go/packages/param"
	"github.com/studyforge/backend/internal/models"
)

// LLMClient is the interface both generator implementations satisfy.
type LLMClient interface {
	Generate(ctx context.Context, systemPrompt string, userPrompt string) (*LLMResponse, error)
}

// LLMResponse holds the raw response content and token usage.
type LLMResponse struct {
	Content      string
	PromptTokens int
	OutputTokens int
}

// Generator wraps an LLMClient and turns note content into challenge drafts.
type Generator struct {
	llm   LLMClient
	model string
}

func NewGenerator() *Generator {
	var llm LLMClient
	model := "mock"

	if os.Getenv("USE_CLI_GENERATOR") == "true" {
		cliPath := os.Getenv("CLAUDE_CLI_PATH")
		if cliPath == "" {
			cliPath = "claude"
		}
		llm = NewCLIClient(cliPath)
		model = "claude-cli"
		log.Println("Generator using Claude CLI (local plan)")
	} else if os.Getenv("MOCK_GENERATOR") == "true" || os.Getenv("ANTHROPIC_API_KEY") == "" {
		llm = NewMockClient()
		log.Println("Generator using mock data")
	} else {
		model = os.Getenv("ANTHROPIC_MODEL")
		if model == "" {
			model = "claude-opus-4-5-20251101"
		}
		llm = NewAPIClient(model)
		log.Println("Generator using Anthropic API:", model)
	}

	return &Generator{llm: llm, model: model}
}

func (g *Generator) ModelName() string {
	return g.model
}

// GenerateChallenges produces challenge drafts from a note's content.
func (g *Generator) GenerateChallenges(ctx context.Context, note *models.Note, difficulty models.Difficulty, count int) ([]models.ChallengeDraft, *LLMResponse, error) {
	systemPrompt := SystemPrompt()
	userPrompt := BuildUserPrompt(note, difficulty, count)

	resp, err := g.llm.Generate(ctx, systemPrompt, userPrompt)
	if err != nil {
		return nil, nil, fmt.Errorf("generate challenges: %w", err)
	}

	drafts, err := ParseResponse(resp.Content)
	if err != nil {
		return nil, resp, fmt.Errorf("parse challenge response: %w", err)
	}

	return drafts, resp, nil
}

// ── APIClient — Anthropic SDK (Production) ─────────────────

type APIClient struct {
	client *anthropic.Client
	model  string
}

func NewAPIClient(model string) *APIClient {
	client := anthropic.NewClient(
		option.WithAPIKey(os.Getenv("ANTHROPIC_API_KEY")),
	)
	return &APIClient{client: &client, model: model}
}

func (c *APIClient) Generate(ctx context.Context, systemPrompt string, userPrompt string) (*LLMResponse, error) {
	params := anthropic.MessageNewParams{
		Model:       anthropic.Model(c.model),
		MaxTokens:   4096,
		Temperature: param.NewOpt(0.7),
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(userPrompt)),
		},
	}

	message, err := c.callWithRetry(ctx, params)
	if err != nil {
		return nil, err
	}

	var responseText string
	for _, block := range message.Content {
		if block.Type == "text" {
			responseText = block.Text
			break
		}
	}

	if responseText == "" {
		return nil, fmt.Errorf("no text content in API response")
	}

	return &LLMResponse{
		Content:      responseText,
		PromptTokens: int(message.Usage.InputTokens),
		OutputTokens: int(message.Usage.OutputTokens),
	}, nil
}

func (c *APIClient) callWithRetry(ctx context.Context, params anthropic.MessageNewParams) (*anthropic.Message, error) {
	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		if attempt > 0 {
			sleepDuration := time.Duration(1<<uint(attempt)) * time.Second
			log.Printf("Retrying Anthropic API call in %v (attempt %d)", sleepDuration, attempt+1)
			time.Sleep(sleepDuration)
		}

		message, err := c.client.Messages.New(ctx, params)
		if err == nil {
			return message, nil
		}
		lastErr = err
		log.Printf("Anthropic API attempt %d failed: %v", attempt+1, err)
	}
	return nil, fmt.Errorf("anthropic API failed after retries: %w", lastErr)
}

// ── MockClient — Local Development ─────────────────────────

type MockClient struct{}

func NewMockClient() *MockClient {
	return &MockClient{}
}

func (m *MockClient) Generate(ctx context.Context, systemPrompt string, userPrompt string) (*LLMResponse, error) {
	return &LLMResponse{
		Content:      buildMockJSON(),
		PromptTokens: 800,
		OutputTokens: 1200,
	}, nil
}

func buildMockJSON() string {
	return `{"challenges":[
{"type":"multiple-choice","question":"[Mock] Which statement best captures the central idea of this note?","options":["A. The first supporting detail","B. The central idea of the material","C. A tangential example","D. A counterargument raised in passing"],"correct_answer":"B","explanation":"[Mock] The central idea is what the note develops throughout.","difficulty":"medium"},
{"type":"true-false","question":"[Mock] The note presents evidence for its main claim.","correct_answer":"True","explanation":"[Mock] Sample true-false question for local development.","difficulty":"easy"},
{"type":"short-answer","question":"[Mock] Summarize the key argument of this note in one sentence.","correct_answer":"The key argument ties the main claim to its supporting evidence.","explanation":"[Mock] Sample short-answer question for local development.","difficulty":"medium"},
{"type":"fill-blank","question":"[Mock] The note's conclusion depends on the strength of its ____.","correct_answer":"evidence","explanation":"[Mock] Sample fill-in-the-blank question for local development.","difficulty":"hard"}
]}`
}
