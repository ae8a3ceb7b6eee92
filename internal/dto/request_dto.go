package dto

// StartExamRequest begins a new exam session. The email is the throttle
// identifier; acknowledgement confirms the study guide is closed.
type StartExamRequest struct {
	Email             string `json:"email" binding:"required"`
	RulesAcknowledged bool   `json:"rules_acknowledged"`
}

// AnswerRequest selects a choice by its displayed position. Pointer so that
// position 0 survives required-field binding.
type AnswerRequest struct {
	Choice *int `json:"choice" binding:"required"`
}

// CertificateRequest supplies the display name printed on the certificate.
type CertificateRequest struct {
	Name string `json:"name" binding:"required"`
}
