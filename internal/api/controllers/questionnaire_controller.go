package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"soulprint/internal/models/request_models"
	"soulprint/internal/services"
	"soulprint/pkg/utils"
)

type QuestionnaireController struct {
	questionnaireService services.QuestionnaireServiceInterface
}

func NewQuestionnaireController(questionnaireService services.QuestionnaireServiceInterface) *QuestionnaireController {
	return &QuestionnaireController{questionnaireService: questionnaireService}
}

// StartSession godoc
// @Summary Start a questionnaire session
// @Description Opens a session at the first section. Without respondent_id a new respondent is created.
// @Tags Questionnaire
// @Accept json
// @Produce json
// @Param request body request_models.StartSessionRequest false "Respondent"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /questionnaire/sessions [post]
func (q *QuestionnaireController) StartSession(c *gin.Context) {
	var req request_models.StartSessionRequest
	if c.Request.ContentLength > 0 && !bindJSON(c, &req) {
		return
	}

	respondentID := uuid.Nil
	if req.RespondentID != "" {
		respondentID = uuid.MustParse(req.RespondentID)
	}

	session, err := q.questionnaireService.StartSession(c.Request.Context(), respondentID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, session, "Questionnaire session started")
}

// GetSession godoc
// @Summary Get a questionnaire session
// @Tags Questionnaire
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /questionnaire/sessions/{id} [get]
func (q *QuestionnaireController) GetSession(c *gin.Context) {
	id, ok := uuidParam(c, "id", "session ID")
	if !ok {
		return
	}
	session, err := q.questionnaireService.GetSession(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, session, "Questionnaire session fetched successfully")
}

// RecordAnswers merges answers into the draft. Answers for any section are
// accepted, not only the current one.
func (q *QuestionnaireController) RecordAnswers(c *gin.Context) {
	id, ok := uuidParam(c, "id", "session ID")
	if !ok {
		return
	}
	var req request_models.RecordAnswersRequest
	if !bindJSON(c, &req) {
		return
	}
	session, err := q.questionnaireService.RecordAnswers(c.Request.Context(), id, req.Answers)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, session, "Answers recorded")
}

func (q *QuestionnaireController) Next(c *gin.Context) {
	id, ok := uuidParam(c, "id", "session ID")
	if !ok {
		return
	}
	session, err := q.questionnaireService.Next(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, session, "Moved to next section")
}

func (q *QuestionnaireController) Back(c *gin.Context) {
	id, ok := uuidParam(c, "id", "session ID")
	if !ok {
		return
	}
	session, err := q.questionnaireService.Back(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, session, "Moved to previous section")
}

// Submit godoc
// @Summary Submit the questionnaire
// @Description Freezes the answers and computes the trait vector. Only allowed from the last section.
// @Tags Questionnaire
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /questionnaire/sessions/{id}/submit [post]
func (q *QuestionnaireController) Submit(c *gin.Context) {
	id, ok := uuidParam(c, "id", "session ID")
	if !ok {
		return
	}
	traits, err := q.questionnaireService.Submit(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, traits, "Questionnaire submitted")
}
