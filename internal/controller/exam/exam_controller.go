package exam

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/sofatesting/Sofa-Driving-Test/internal/dto"
	"github.com/sofatesting/Sofa-Driving-Test/internal/service"
)

type ExamController struct {
	examService service.ExamService
}

func NewExamController(examService service.ExamService) *ExamController {
	return &ExamController{examService: examService}
}

// StartExam godoc
// @Summary Start a new exam session
// @Description Validates the examinee's email and rules acknowledgement, applies the daily attempt throttle, and opens a timed exam session.
// @Tags Exam
// @Accept json
// @Produce json
// @Param start_data body dto.StartExamRequest true "Examinee email and rules acknowledgement"
// @Success 201 {object} dto.SessionStateResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid email or rules not acknowledged"
// @Failure 429 {object} dto.ErrorResponse "Attempt limit reached for this email"
// @Router /sessions [post]
func (c *ExamController) StartExam(ctx *gin.Context) {
	var req dto.StartExamRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	state, err := c.examService.StartExam(req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, state)
}

// GetState godoc
// @Summary Get the current session state
// @Tags Exam
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} dto.SessionStateResponse
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /sessions/{session_id} [get]
func (c *ExamController) GetState(ctx *gin.Context) {
	state, err := c.examService.GetState(ctx.Param("session_id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, state)
}

// SubmitAnswer godoc
// @Summary Answer the current question
// @Description Records the choice at the displayed position and advances the session. Answering the last question ends the quiz.
// @Tags Exam
// @Accept json
// @Produce json
// @Param session_id path string true "Session ID"
// @Param answer_data body dto.AnswerRequest true "Displayed position of the selected choice"
// @Success 200 {object} dto.SessionStateResponse
// @Failure 400 {object} dto.ErrorResponse "Bad choice or session not accepting answers"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /sessions/{session_id}/answers [post]
func (c *ExamController) SubmitAnswer(ctx *gin.Context) {
	var req dto.AnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	state, err := c.examService.SubmitAnswer(ctx.Param("session_id"), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, state)
}

// GetResult godoc
// @Summary Get the final result of a finished session
// @Tags Exam
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} dto.ExamResultDTO
// @Failure 400 {object} dto.ErrorResponse "Session has not finished"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /sessions/{session_id}/result [get]
func (c *ExamController) GetResult(ctx *gin.Context) {
	result, err := c.examService.GetResult(ctx.Param("session_id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// IssueCertificate godoc
// @Summary Generate the completion certificate
// @Description Only available to passed sessions and with a non-empty display name. Returns the rendered certificate and the results email draft link.
// @Tags Exam
// @Accept json
// @Produce json
// @Param session_id path string true "Session ID"
// @Param certificate_data body dto.CertificateRequest true "Display name for the certificate"
// @Success 200 {object} dto.CertificateResponse
// @Failure 400 {object} dto.ErrorResponse "Missing name or session not on the result screen"
// @Failure 403 {object} dto.ErrorResponse "Passing score not reached"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /sessions/{session_id}/certificate [post]
func (c *ExamController) IssueCertificate(ctx *gin.Context) {
	var req dto.CertificateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	cert, err := c.examService.IssueCertificate(ctx.Param("session_id"), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, cert)
}

// Restart godoc
// @Summary Reset a session back to the start screen
// @Description Clears all session state and cancels the timer. Starting a new run goes through the attempt throttle again.
// @Tags Exam
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} dto.SessionStateResponse
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /sessions/{session_id}/restart [post]
func (c *ExamController) Restart(ctx *gin.Context) {
	state, err := c.examService.Restart(ctx.Param("session_id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, state)
}

// respondError maps service errors onto HTTP statuses.
func respondError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
	case errors.Is(err, service.ErrRateLimited):
		ctx.JSON(http.StatusTooManyRequests, dto.ErrorResponse{Message: "You have reached the attempt limit for this email in the last 24 hours. Please try again later."})
	case errors.Is(err, service.ErrNotPassed):
		ctx.JSON(http.StatusForbidden, dto.ErrorResponse{Message: err.Error()})
	case errors.Is(err, service.ErrInvalidIdentifier),
		errors.Is(err, service.ErrRulesNotAcknowledged),
		errors.Is(err, service.ErrNameRequired),
		errors.Is(err, service.ErrChoiceOutOfRange),
		errors.Is(err, service.ErrInvalidTransition):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
	default:
		log.Error().Err(err).Msg("Unhandled exam service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Internal server error", Details: []string{err.Error()}})
	}
}
