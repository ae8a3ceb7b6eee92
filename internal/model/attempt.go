package model

import (
	"time"

	"gorm.io/gorm"
)

// ExamAttempt records one accepted exam start for an email address. The
// throttle counts rows inside its rolling window; old rows are kept, they
// simply fall out of the windowed count.
type ExamAttempt struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	Email     string         `json:"email" gorm:"not null;index"`
	StartedAt time.Time      `json:"started_at" gorm:"not null;index"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
