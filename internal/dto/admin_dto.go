package dto

import "time"

// ExamResultSummaryDTO is one persisted exam outcome in admin listings.
type ExamResultSummaryDTO struct {
	ID                uint      `json:"id"`
	Name              string    `json:"name,omitempty"`
	Email             string    `json:"email"`
	ScorePct          int       `json:"score_pct"`
	Passed            bool      `json:"passed"`
	QuestionsTotal    int       `json:"questions_total"`
	QuestionsAnswered int       `json:"questions_answered"`
	CompletedAt       time.Time `json:"completed_at"`
}

// DraftQuestionsRequest asks the authoring aid for candidate questions.
type DraftQuestionsRequest struct {
	Topic string `json:"topic" binding:"required"`
	Count int    `json:"count" binding:"required,min=1,max=20"`
}

// DraftedQuestionDTO is a candidate question for human review. Unlike the
// examinee-facing views, the answer key is included.
type DraftedQuestionDTO struct {
	Prompt  string             `json:"prompt"`
	Choices []DraftedChoiceDTO `json:"choices"`
}

type DraftedChoiceDTO struct {
	Text    string `json:"text"`
	Correct bool   `json:"correct"`
}
