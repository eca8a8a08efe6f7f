package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"soulprint/internal/models/request_models"
	"soulprint/internal/services"
	"soulprint/pkg/utils"
)

type FeedbackController struct {
	feedbackService services.FeedbackServiceInterface
}

func NewFeedbackController(feedbackService services.FeedbackServiceInterface) *FeedbackController {
	return &FeedbackController{feedbackService: feedbackService}
}

// AddFeedback godoc
// @Summary Rate a match
// @Description Add a rating and comment for one matched destination
// @Tags Feedback
// @Accept json
// @Produce json
// @Param id path string true "Respondent ID"
// @Param destinationId path string true "Destination ID"
// @Param request body request_models.AddFeedbackRequest true "Feedback payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /respondents/{id}/matches/{destinationId}/feedback [post]
func (f *FeedbackController) AddFeedback(c *gin.Context) {
	respondentID, ok := uuidParam(c, "id", "respondent ID")
	if !ok {
		return
	}
	var req request_models.AddFeedbackRequest
	if !bindJSON(c, &req) {
		return
	}

	fb, err := f.feedbackService.AddFeedback(c.Request.Context(), respondentID, c.Param("destinationId"), req.Rating, req.Comment)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, fb, "Feedback added successfully")
}

// ListFeedback godoc
// @Summary List feedback
// @Description Paginated match feedback, optionally for one respondent or destination, with totals over the filter
// @Tags Feedback
// @Param respondent_id query string false "Respondent ID"
// @Param destination_id query string false "Destination ID"
// @Param max_rating query int false "Only ratings at or below this value" minimum(1) maximum(5)
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(10) minimum(1) maximum(100)
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/feedback [get]
func (f *FeedbackController) ListFeedback(c *gin.Context) {
	var filter request_models.FeedbackFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid filter")
		return
	}
	page, pageSize, ok := pageParams(c, "10")
	if !ok {
		return
	}

	out, err := f.feedbackService.GetFeedback(c.Request.Context(), filter, page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, out, "Feedback fetched successfully")
}
