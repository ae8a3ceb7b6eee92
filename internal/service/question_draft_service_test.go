package service

import (
	"testing"
)

func TestParseDraftedQuestions(t *testing.T) {
	raw := `[
		{"question": "Which side of the road?", "answers": [{"text": "Left", "correct": true}, {"text": "Right", "correct": false}]},
		{"question": "Speed limit?", "answers": [{"text": "60", "correct": true}, {"text": "100", "correct": false}]}
	]`

	questions, err := parseDraftedQuestions(raw)
	if err != nil {
		t.Fatalf("parseDraftedQuestions: %v", err)
	}
	if len(questions) != 2 {
		t.Fatalf("got %d questions, want 2", len(questions))
	}
}

func TestParseDraftedQuestionsToleratesCodeFences(t *testing.T) {
	raw := "```json\n[{\"question\": \"Q\", \"answers\": [{\"text\": \"a\", \"correct\": true}, {\"text\": \"b\", \"correct\": false}]}]\n```"

	questions, err := parseDraftedQuestions(raw)
	if err != nil {
		t.Fatalf("parseDraftedQuestions: %v", err)
	}
	if len(questions) != 1 {
		t.Fatalf("got %d questions, want 1", len(questions))
	}
}

func TestParseDraftedQuestionsDropsMalformed(t *testing.T) {
	raw := `[
		{"question": "Good", "answers": [{"text": "a", "correct": true}, {"text": "b", "correct": false}]},
		{"question": "Two correct", "answers": [{"text": "a", "correct": true}, {"text": "b", "correct": true}]},
		{"question": "", "answers": [{"text": "a", "correct": true}, {"text": "b", "correct": false}]},
		{"question": "One choice", "answers": [{"text": "a", "correct": true}]}
	]`

	questions, err := parseDraftedQuestions(raw)
	if err != nil {
		t.Fatalf("parseDraftedQuestions: %v", err)
	}
	if len(questions) != 1 || questions[0].Prompt != "Good" {
		t.Fatalf("got %+v, want only the well-formed question", questions)
	}
}

func TestParseDraftedQuestionsAllBad(t *testing.T) {
	if _, err := parseDraftedQuestions(`[]`); err == nil {
		t.Fatal("expected error for empty draft output")
	}
	if _, err := parseDraftedQuestions(`not json`); err == nil {
		t.Fatal("expected error for non-JSON output")
	}
}
