package model

import (
	"time"

	"gorm.io/gorm"
)

// ExamResult is the persisted outcome of a completed exam session.
type ExamResult struct {
	ID                uint           `gorm:"primarykey" json:"id"`
	Name              string         `json:"name"`
	Email             string         `json:"email" gorm:"not null;index"`
	ScorePct          int            `json:"score_pct" gorm:"not null"`
	Passed            bool           `json:"passed" gorm:"not null"`
	QuestionsTotal    int            `json:"questions_total"`
	QuestionsAnswered int            `json:"questions_answered"`
	CompletedAt       time.Time      `json:"completed_at" gorm:"not null"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`
}
