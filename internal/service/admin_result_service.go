package service

import (
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"github.com/sofatesting/Sofa-Driving-Test/internal/dto"
	"github.com/sofatesting/Sofa-Driving-Test/internal/repository"
)

// AdminResultService exposes persisted exam outcomes to administrators.
type AdminResultService interface {
	ListResults() ([]dto.ExamResultSummaryDTO, error)
	ListResultsByEmail(email string) ([]dto.ExamResultSummaryDTO, error)
}

type adminResultService struct {
	results repository.ResultRepository
}

func NewAdminResultService(results repository.ResultRepository) AdminResultService {
	return &adminResultService{results: results}
}

func (s *adminResultService) ListResults() ([]dto.ExamResultSummaryDTO, error) {
	records, err := s.results.FindAll()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list exam results from repository")
		return nil, fmt.Errorf("error fetching results: %w", err)
	}

	var dtos []dto.ExamResultSummaryDTO
	if err := copier.Copy(&dtos, &records); err != nil {
		return nil, fmt.Errorf("error preparing results response: %w", err)
	}
	return dtos, nil
}

func (s *adminResultService) ListResultsByEmail(email string) ([]dto.ExamResultSummaryDTO, error) {
	records, err := s.results.FindAllByEmail(NormalizeIdentifier(email))
	if err != nil {
		log.Error().Err(err).Str("email", email).Msg("Failed to list exam results for email")
		return nil, fmt.Errorf("error fetching results: %w", err)
	}

	var dtos []dto.ExamResultSummaryDTO
	if err := copier.Copy(&dtos, &records); err != nil {
		return nil, fmt.Errorf("error preparing results response: %w", err)
	}
	return dtos, nil
}
