package repository

import (
	"sync"
	"time"

	"github.com/sofatesting/Sofa-Driving-Test/internal/model"
	"gorm.io/gorm"
)

// AttemptRepository is the keyed attempt-timestamp store behind the throttle.
type AttemptRepository interface {
	CountSince(email string, since time.Time) (int64, error)
	Record(email string, at time.Time) error
}

type attemptRepository struct {
	db *gorm.DB
}

// NewAttemptRepository returns the Postgres-backed store, or the in-memory
// fallback when the service runs without a database.
func NewAttemptRepository(db *gorm.DB) AttemptRepository {
	if db == nil {
		return NewMemoryAttemptRepository()
	}
	return &attemptRepository{db: db}
}

func (r *attemptRepository) CountSince(email string, since time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&model.ExamAttempt{}).
		Where("email = ? AND started_at > ?", email, since).
		Count(&count).Error
	return count, err
}

func (r *attemptRepository) Record(email string, at time.Time) error {
	return r.db.Create(&model.ExamAttempt{Email: email, StartedAt: at}).Error
}

// MemoryAttemptRepository keeps attempt timestamps in a process-local map.
// Used when no database is configured, and by tests.
type MemoryAttemptRepository struct {
	mu       sync.Mutex
	attempts map[string][]time.Time
}

func NewMemoryAttemptRepository() *MemoryAttemptRepository {
	return &MemoryAttemptRepository{attempts: make(map[string][]time.Time)}
}

func (r *MemoryAttemptRepository) CountSince(email string, since time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for _, t := range r.attempts[email] {
		if t.After(since) {
			count++
		}
	}
	return count, nil
}

func (r *MemoryAttemptRepository) Record(email string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.attempts[email] = append(r.attempts[email], at)
	return nil
}
