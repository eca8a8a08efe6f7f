package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"soulprint/internal/models/request_models"
	"soulprint/internal/services"
	"soulprint/pkg/utils"
)

type NarrativeController struct {
	narrativeService services.NarrativeServiceInterface
}

func NewNarrativeController(narrativeService services.NarrativeServiceInterface) *NarrativeController {
	return &NarrativeController{narrativeService: narrativeService}
}

// GetPayload godoc
// @Summary Narrative payload
// @Description The structured profile sent to the narrative model, with its documented field names.
// @Tags Narrative
// @Produce json
// @Param id path string true "Respondent ID"
// @Param matches_limit query int false "Top matches to include (default 3)"
// @Success 200 {object} utils.APIResponse
// @Router /respondents/{id}/narrative/payload [get]
func (n *NarrativeController) GetPayload(c *gin.Context) {
	id, ok := uuidParam(c, "id", "respondent ID")
	if !ok {
		return
	}

	var req request_models.NarrativeRequest
	if s := c.Query("matches_limit"); s != "" {
		limit, err := strconv.Atoi(s)
		if err != nil || limit < 0 || limit > 10 {
			utils.RespondError(c, http.StatusBadRequest, "matches_limit must be between 0 and 10")
			return
		}
		req.MatchesLimit = limit
	}

	payload, err := n.narrativeService.Payload(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, payload, "Narrative payload built successfully")
}

// Generate godoc
// @Summary Generate an AI narrative
// @Tags Narrative
// @Accept json
// @Produce json
// @Param id path string true "Respondent ID"
// @Param request body request_models.NarrativeRequest false "Trip context"
// @Success 200 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Failure 503 {object} utils.APIResponse
// @Router /respondents/{id}/narrative [post]
func (n *NarrativeController) Generate(c *gin.Context) {
	id, ok := uuidParam(c, "id", "respondent ID")
	if !ok {
		return
	}
	var req request_models.NarrativeRequest
	if c.Request.ContentLength > 0 && !bindJSON(c, &req) {
		return
	}
	out, err := n.narrativeService.Generate(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, out, "Narrative generated successfully")
}
