package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sofatesting/Sofa-Driving-Test/config"
	"github.com/sofatesting/Sofa-Driving-Test/internal/repository"
)

// ThrottleService gates exam starts: at most MaxDailyAttempts accepted
// starts per identifier inside a rolling window. Purely advisory; the store
// lives with the service and a determined examinee could reach it through a
// fresh deployment, so this is a speed bump rather than enforcement.
type ThrottleService interface {
	// CheckAndRecord validates the identifier, counts recent attempts and
	// either records this start and allows it, or denies without touching
	// the store. Returns the normalized identifier on success.
	CheckAndRecord(identifier string, now time.Time) (string, error)
}

type throttleService struct {
	attempts    repository.AttemptRepository
	window      time.Duration
	maxAttempts int
}

func NewThrottleService(attempts repository.AttemptRepository, cfg *config.Config) ThrottleService {
	return &throttleService{
		attempts:    attempts,
		window:      time.Duration(cfg.Exam.AttemptWindowHours) * time.Hour,
		maxAttempts: cfg.Exam.MaxDailyAttempts,
	}
}

func (s *throttleService) CheckAndRecord(identifier string, now time.Time) (string, error) {
	email := NormalizeIdentifier(identifier)
	if !strings.Contains(email, "@") {
		return "", ErrInvalidIdentifier
	}

	count, err := s.attempts.CountSince(email, now.Add(-s.window))
	if err != nil {
		return "", fmt.Errorf("error counting recent attempts: %w", err)
	}
	if count >= int64(s.maxAttempts) {
		log.Warn().Str("email", email).Int64("recentAttempts", count).Msg("Exam start denied by attempt throttle")
		return "", ErrRateLimited
	}

	if err := s.attempts.Record(email, now); err != nil {
		return "", fmt.Errorf("error recording attempt: %w", err)
	}
	return email, nil
}

// NormalizeIdentifier trims and lower-cases an email so the same address
// always maps to the same attempt log entry.
func NormalizeIdentifier(identifier string) string {
	return strings.ToLower(strings.TrimSpace(identifier))
}
