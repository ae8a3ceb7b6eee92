package service

import "errors"

var (
	// ErrInvalidIdentifier means the supplied email does not look like an
	// email address. This is a shape check, not verification.
	ErrInvalidIdentifier = errors.New("invalid identifier")

	// ErrRateLimited means the identifier already used its allowed starts
	// inside the rolling window.
	ErrRateLimited = errors.New("rate limited")

	// ErrRulesNotAcknowledged means the examinee did not confirm closing
	// the study guide before starting.
	ErrRulesNotAcknowledged = errors.New("rules not acknowledged")

	ErrSessionNotFound   = errors.New("session not found")
	ErrInvalidTransition = errors.New("action not valid for current screen")
	ErrChoiceOutOfRange  = errors.New("choice out of range")
	ErrNameRequired      = errors.New("name required")
	ErrNotPassed         = errors.New("passing score not reached")
)
