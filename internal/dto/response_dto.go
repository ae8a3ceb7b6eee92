package dto

import "time"

// QuestionViewDTO is the current question as shown to the examinee: choice
// texts only, in their dealt order.
type QuestionViewDTO struct {
	Index   int      `json:"index"`
	Total   int      `json:"total"`
	Prompt  string   `json:"prompt"`
	Choices []string `json:"choices"`
}

// ExamResultDTO is the outcome of a finished exam run.
type ExamResultDTO struct {
	FinalScorePct     int       `json:"final_score_pct"`
	Passed            bool      `json:"passed"`
	QuestionsTotal    int       `json:"questions_total"`
	QuestionsAnswered int       `json:"questions_answered"`
	CompletedAt       time.Time `json:"completed_at"`
	Message           string    `json:"message"`
}

// SessionStateResponse is the observable session state. Question is set
// while on the quiz screen, Result once the run has finished.
type SessionStateResponse struct {
	SessionID        string           `json:"session_id"`
	Screen           string           `json:"screen"`
	RemainingSeconds int              `json:"remaining_seconds"`
	Question         *QuestionViewDTO `json:"question,omitempty"`
	Result           *ExamResultDTO   `json:"result,omitempty"`
}

// CertificateResponse carries the rendered certificate and the prepared
// results email draft link.
type CertificateResponse struct {
	Name            string `json:"name"`
	FinalScorePct   int    `json:"final_score_pct"`
	CompletionDate  string `json:"completion_date"`
	CertificateHTML string `json:"certificate_html"`
	MailtoLink      string `json:"mailto_link"`
}

type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}
