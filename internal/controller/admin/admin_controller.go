package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/sofatesting/Sofa-Driving-Test/internal/dto"
	"github.com/sofatesting/Sofa-Driving-Test/internal/service"
)

type AdminController struct {
	resultService service.AdminResultService
	draftService  service.QuestionDraftService
}

func NewAdminController(resultService service.AdminResultService, draftService service.QuestionDraftService) *AdminController {
	return &AdminController{resultService: resultService, draftService: draftService}
}

// ListResults godoc
// @Summary (Admin) List persisted exam results
// @Description All completed exam outcomes, newest first. Filter by email with the 'email' query parameter.
// @Tags Admin
// @Produce json
// @Param email query string false "Filter results by examinee email"
// @Success 200 {array} dto.ExamResultSummaryDTO
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/results [get]
func (c *AdminController) ListResults(ctx *gin.Context) {
	var (
		results []dto.ExamResultSummaryDTO
		err     error
	)
	if email := ctx.Query("email"); email != "" {
		results, err = c.resultService.ListResultsByEmail(email)
	} else {
		results, err = c.resultService.ListResults()
	}
	if err != nil {
		log.Error().Err(err).Msg("Admin ListResults: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve results", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, results)
}

// DraftQuestions godoc
// @Summary (Admin) Draft candidate bank questions with Gemini
// @Description Authoring aid: drafts multiple-choice questions on a topic for human review. Requires GEMINI_API_KEY to be configured.
// @Tags Admin
// @Accept json
// @Produce json
// @Param draft_data body dto.DraftQuestionsRequest true "Topic and number of questions to draft"
// @Success 200 {array} dto.DraftedQuestionDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse "Drafting backend unavailable or returned unusable output"
// @Router /admin/questions/draft [post]
func (c *AdminController) DraftQuestions(ctx *gin.Context) {
	var req dto.DraftQuestionsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	questions, err := c.draftService.DraftQuestions(ctx.Request.Context(), req.Topic, req.Count)
	if err != nil {
		log.Error().Err(err).Str("topic", req.Topic).Msg("Admin DraftQuestions: Service error")
		ctx.JSON(http.StatusBadGateway, dto.ErrorResponse{Message: "Failed to draft questions", Details: []string{err.Error()}})
		return
	}

	drafts := make([]dto.DraftedQuestionDTO, 0, len(questions))
	for _, q := range questions {
		draft := dto.DraftedQuestionDTO{Prompt: q.Prompt}
		for _, choice := range q.Choices {
			draft.Choices = append(draft.Choices, dto.DraftedChoiceDTO{Text: choice.Text, Correct: choice.Correct})
		}
		drafts = append(drafts, draft)
	}
	ctx.JSON(http.StatusOK, drafts)
}
