package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/rs/zerolog/log"
	"github.com/sofatesting/Sofa-Driving-Test/config"
	"github.com/sofatesting/Sofa-Driving-Test/internal/model"
	"google.golang.org/api/option"
)

// QuestionDraftService drafts candidate bank questions with Gemini. An
// authoring aid for administrators; drafts are reviewed by a human before
// they go anywhere near the live bank file.
type QuestionDraftService interface {
	DraftQuestions(ctx context.Context, topic string, count int) ([]model.Question, error)
}

type questionDraftService struct {
	client *genai.GenerativeModel
	cfg    *config.Config
}

func NewQuestionDraftService(cfg *config.Config) (QuestionDraftService, error) {
	if cfg.GeminiApiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set. QuestionDraftService will be non-functional.")
		return &questionDraftService{cfg: cfg, client: nil}, nil
	}
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.GeminiApiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	model := client.GenerativeModel("gemini-1.5-flash")
	return &questionDraftService{client: model, cfg: cfg}, nil
}

func (s *questionDraftService) DraftQuestions(ctx context.Context, topic string, count int) ([]model.Question, error) {
	if s.client == nil {
		return nil, fmt.Errorf("gemini client not initialized")
	}

	var prompt strings.Builder
	prompt.WriteString("You are drafting multiple-choice questions for a SOFA (Status of Forces Agreement) driver's license written exam covering Japanese traffic law and on-base driving rules.\n")
	fmt.Fprintf(&prompt, "Draft %d questions about: %s\n\n", count, topic)
	prompt.WriteString("Each question must have 3 or 4 choices with exactly one correct choice.\n")
	prompt.WriteString("Respond with ONLY a JSON array, no prose and no code fences, in this exact shape:\n")
	prompt.WriteString(`[{"question": "...", "answers": [{"text": "...", "correct": true}, {"text": "...", "correct": false}]}]`)

	resp, err := s.client.GenerateContent(ctx, genai.Text(prompt.String()))
	if err != nil {
		log.Error().Err(err).Str("topic", topic).Msg("Gemini API error while drafting questions")
		return nil, fmt.Errorf("gemini API error: %w", err)
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("gemini returned no content")
	}

	raw := ""
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			raw += string(txt)
		}
	}

	questions, err := parseDraftedQuestions(raw)
	if err != nil {
		log.Warn().Err(err).Str("rawResponse", raw).Msg("Failed to parse drafted questions from Gemini response")
		return nil, err
	}
	return questions, nil
}

// parseDraftedQuestions parses the model output, tolerating code fences the
// model sometimes adds despite instructions, and drops drafts without
// exactly one correct choice.
func parseDraftedQuestions(raw string) ([]model.Question, error) {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")
	raw = strings.TrimSpace(raw)

	var drafted []model.Question
	if err := json.Unmarshal([]byte(raw), &drafted); err != nil {
		return nil, fmt.Errorf("could not parse drafted questions: %w", err)
	}

	var valid []model.Question
	for _, q := range drafted {
		correct := 0
		for _, c := range q.Choices {
			if c.Correct {
				correct++
			}
		}
		if q.Prompt == "" || len(q.Choices) < 2 || correct != 1 {
			log.Warn().Str("prompt", q.Prompt).Int("correctChoices", correct).Msg("Discarding malformed drafted question")
			continue
		}
		valid = append(valid, q)
	}
	if len(valid) == 0 {
		return nil, fmt.Errorf("no usable questions in drafted output")
	}
	return valid, nil
}
