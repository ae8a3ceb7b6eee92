package service

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/sofatesting/Sofa-Driving-Test/config"
	"github.com/sofatesting/Sofa-Driving-Test/internal/dto"
	"github.com/sofatesting/Sofa-Driving-Test/internal/model"
	"github.com/sofatesting/Sofa-Driving-Test/internal/repository"
)

// ExamService owns the live sessions and drives them: the throttle gate on
// start, answer and tick sequencing, certificate issuance through the
// renderer and notifier, and result persistence on completion.
type ExamService interface {
	StartExam(req dto.StartExamRequest) (*dto.SessionStateResponse, error)
	GetState(sessionID string) (*dto.SessionStateResponse, error)
	SubmitAnswer(sessionID string, req dto.AnswerRequest) (*dto.SessionStateResponse, error)
	GetResult(sessionID string) (*dto.ExamResultDTO, error)
	IssueCertificate(sessionID string, req dto.CertificateRequest) (*dto.CertificateResponse, error)
	Restart(sessionID string) (*dto.SessionStateResponse, error)
}

type examService struct {
	mu       sync.RWMutex
	sessions map[string]*ExamSession

	bank     []model.Question
	cfg      *config.Config
	throttle ThrottleService
	results  repository.ResultRepository
	renderer CertificateRenderer
	notifier Notifier

	clock        func() time.Time
	tickInterval time.Duration
}

func NewExamService(
	cfg *config.Config,
	bank []model.Question,
	throttle ThrottleService,
	results repository.ResultRepository,
	renderer CertificateRenderer,
	notifier Notifier,
) ExamService {
	return &examService{
		sessions:     make(map[string]*ExamSession),
		bank:         bank,
		cfg:          cfg,
		throttle:     throttle,
		results:      results,
		renderer:     renderer,
		notifier:     notifier,
		clock:        time.Now,
		tickInterval: time.Second,
	}
}

func (s *examService) StartExam(req dto.StartExamRequest) (*dto.SessionStateResponse, error) {
	if !req.RulesAcknowledged {
		return nil, ErrRulesNotAcknowledged
	}

	email, err := s.throttle.CheckAndRecord(req.Email, s.clock())
	if err != nil {
		return nil, err
	}

	sess := NewExamSession(uuid.NewString(), email, s.bank, SessionConfig{
		TimeLimitSeconds: s.cfg.Exam.TimeLimitSeconds,
		PassingScorePct:  s.cfg.Exam.PassingScorePct,
		TickInterval:     s.tickInterval,
		Listener:         s.onScreenChange,
	})
	if err := sess.Begin(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	log.Info().Str("sessionID", sess.ID).Str("email", email).Int("questions", len(s.bank)).Msg("Exam session started")
	return s.stateResponse(sess), nil
}

func (s *examService) GetState(sessionID string) (*dto.SessionStateResponse, error) {
	sess, err := s.get(sessionID)
	if err != nil {
		return nil, err
	}
	return s.stateResponse(sess), nil
}

func (s *examService) SubmitAnswer(sessionID string, req dto.AnswerRequest) (*dto.SessionStateResponse, error) {
	sess, err := s.get(sessionID)
	if err != nil {
		return nil, err
	}
	if req.Choice == nil {
		return nil, ErrChoiceOutOfRange
	}
	if err := sess.Answer(*req.Choice); err != nil {
		return nil, err
	}
	return s.stateResponse(sess), nil
}

func (s *examService) GetResult(sessionID string) (*dto.ExamResultDTO, error) {
	sess, err := s.get(sessionID)
	if err != nil {
		return nil, err
	}
	payload, err := sess.Result()
	if err != nil {
		return nil, err
	}
	result := s.resultDTO(*payload)
	return &result, nil
}

func (s *examService) IssueCertificate(sessionID string, req dto.CertificateRequest) (*dto.CertificateResponse, error) {
	sess, err := s.get(sessionID)
	if err != nil {
		return nil, err
	}

	payload, err := sess.GenerateCertificate(req.Name)
	if err != nil {
		return nil, err
	}

	html, err := s.renderer.Render(*payload)
	if err != nil {
		return nil, fmt.Errorf("error rendering certificate: %w", err)
	}
	if err := s.notifier.Notify(*payload); err != nil {
		log.Error().Err(err).Str("sessionID", sessionID).Msg("Failed to dispatch result notification")
	}

	return &dto.CertificateResponse{
		Name:            payload.Name,
		FinalScorePct:   payload.FinalScorePct,
		CompletionDate:  payload.CompletionDate.Format("January 2, 2006"),
		CertificateHTML: html,
		MailtoLink:      s.notifier.ComposeResultLink(*payload),
	}, nil
}

func (s *examService) Restart(sessionID string) (*dto.SessionStateResponse, error) {
	sess, err := s.get(sessionID)
	if err != nil {
		return nil, err
	}
	sess.Restart()
	return s.stateResponse(sess), nil
}

func (s *examService) get(sessionID string) (*ExamSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

// onScreenChange is installed on every session. Reaching the result screen
// persists the outcome; everything else is just logged.
func (s *examService) onScreenChange(screen Screen, payload *ResultPayload) {
	if screen != ScreenResult || payload == nil {
		log.Debug().Str("screen", string(screen)).Msg("Session screen changed")
		return
	}

	record := &model.ExamResult{
		Name:              payload.Name,
		Email:             payload.Email,
		ScorePct:          payload.FinalScorePct,
		Passed:            payload.Passed,
		QuestionsTotal:    payload.QuestionsTotal,
		QuestionsAnswered: payload.QuestionsAnswered,
		CompletedAt:       payload.CompletionDate,
	}
	if err := s.results.Create(record); err != nil {
		log.Error().Err(err).Str("email", payload.Email).Msg("Failed to persist exam result")
		return
	}
	log.Info().Str("email", payload.Email).Int("scorePct", payload.FinalScorePct).Bool("passed", payload.Passed).Msg("Exam completed")
}

func (s *examService) stateResponse(sess *ExamSession) *dto.SessionStateResponse {
	snap := sess.Snapshot()

	resp := &dto.SessionStateResponse{
		SessionID:        snap.ID,
		Screen:           string(snap.Screen),
		RemainingSeconds: snap.RemainingSeconds,
	}
	if snap.Question != nil {
		resp.Question = &dto.QuestionViewDTO{
			Index:   snap.Question.Index,
			Total:   snap.Question.Total,
			Prompt:  snap.Question.Prompt,
			Choices: snap.Question.Choices,
		}
	}
	if snap.Screen == ScreenResult || snap.Screen == ScreenCertificate {
		result := s.resultDTO(ResultPayload{
			Name:              snap.Name,
			Email:             snap.Email,
			FinalScorePct:     snap.FinalScorePct,
			Passed:            snap.Passed,
			CompletionDate:    snap.CompletedAt,
			QuestionsTotal:    snap.QuestionsTotal,
			QuestionsAnswered: snap.QuestionsAnswered,
		})
		resp.Result = &result
	}
	return resp
}

func (s *examService) resultDTO(payload ResultPayload) dto.ExamResultDTO {
	message := fmt.Sprintf("You did not pass. A score of %d%% is required.", s.cfg.Exam.PassingScorePct)
	if payload.Passed {
		message = "Congratulations! You passed."
	}
	return dto.ExamResultDTO{
		FinalScorePct:     payload.FinalScorePct,
		Passed:            payload.Passed,
		QuestionsTotal:    payload.QuestionsTotal,
		QuestionsAnswered: payload.QuestionsAnswered,
		CompletedAt:       payload.CompletionDate,
		Message:           message,
	}
}
