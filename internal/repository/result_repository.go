package repository

import (
	"sync"

	"github.com/sofatesting/Sofa-Driving-Test/internal/model"
	"gorm.io/gorm"
)

// ResultRepository persists completed exam outcomes.
type ResultRepository interface {
	Create(result *model.ExamResult) error
	FindAll() ([]model.ExamResult, error)
	FindAllByEmail(email string) ([]model.ExamResult, error)
}

type resultRepository struct {
	db *gorm.DB
}

func NewResultRepository(db *gorm.DB) ResultRepository {
	if db == nil {
		return NewMemoryResultRepository()
	}
	return &resultRepository{db: db}
}

func (r *resultRepository) Create(result *model.ExamResult) error {
	return r.db.Create(result).Error
}

func (r *resultRepository) FindAll() ([]model.ExamResult, error) {
	var results []model.ExamResult
	err := r.db.Order("completed_at DESC").Find(&results).Error
	return results, err
}

func (r *resultRepository) FindAllByEmail(email string) ([]model.ExamResult, error) {
	var results []model.ExamResult
	err := r.db.Where("email = ?", email).Order("completed_at DESC").Find(&results).Error
	return results, err
}

// MemoryResultRepository is the database-less fallback.
type MemoryResultRepository struct {
	mu      sync.Mutex
	results []model.ExamResult
	nextID  uint
}

func NewMemoryResultRepository() *MemoryResultRepository {
	return &MemoryResultRepository{nextID: 1}
}

func (r *MemoryResultRepository) Create(result *model.ExamResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	result.ID = r.nextID
	r.nextID++
	r.results = append(r.results, *result)
	return nil
}

func (r *MemoryResultRepository) FindAll() ([]model.ExamResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.ExamResult, len(r.results))
	copy(out, r.results)
	return out, nil
}

func (r *MemoryResultRepository) FindAllByEmail(email string) ([]model.ExamResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.ExamResult
	for _, res := range r.results {
		if res.Email == email {
			out = append(out, res)
		}
	}
	return out, nil
}
