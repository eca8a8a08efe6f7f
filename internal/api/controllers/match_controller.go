package controllers

import (
	"github.com/gin-gonic/gin"

	"soulprint/internal/models/request_models"
	"soulprint/internal/services"
	"soulprint/pkg/utils"
)

type MatchController struct {
	traitService services.TraitServiceInterface
	matchService services.MatchServiceInterface
}

func NewMatchController(traitService services.TraitServiceInterface, matchService services.MatchServiceInterface) *MatchController {
	return &MatchController{traitService: traitService, matchService: matchService}
}

// GetTraits godoc
// @Summary Get a respondent's trait vector
// @Tags Respondents
// @Produce json
// @Param id path string true "Respondent ID"
// @Success 200 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /respondents/{id}/traits [get]
func (m *MatchController) GetTraits(c *gin.Context) {
	id, ok := uuidParam(c, "id", "respondent ID")
	if !ok {
		return
	}
	traits, err := m.traitService.GetTraits(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, traits, "Traits fetched successfully")
}

// GenerateMatches godoc
// @Summary Generate destination matches
// @Description Scores the active catalog, optionally narrowed by region and tier, and replaces earlier matches.
// @Tags Respondents
// @Accept json
// @Produce json
// @Param id path string true "Respondent ID"
// @Param request body request_models.GenerateMatchesRequest false "Catalog filters"
// @Success 200 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /respondents/{id}/matches [post]
func (m *MatchController) GenerateMatches(c *gin.Context) {
	id, ok := uuidParam(c, "id", "respondent ID")
	if !ok {
		return
	}
	var req request_models.GenerateMatchesRequest
	if c.Request.ContentLength > 0 && !bindJSON(c, &req) {
		return
	}
	matches, err := m.matchService.GenerateMatches(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, matches, "Matches generated successfully")
}

func (m *MatchController) ListMatches(c *gin.Context) {
	id, ok := uuidParam(c, "id", "respondent ID")
	if !ok {
		return
	}
	matches, err := m.matchService.ListMatches(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, matches, "Matches fetched successfully")
}

func (m *MatchController) CompareMatches(c *gin.Context) {
	id, ok := uuidParam(c, "id", "respondent ID")
	if !ok {
		return
	}
	var req request_models.CompareRequest
	if !bindJSON(c, &req) {
		return
	}
	cmp, err := m.matchService.CompareMatches(c.Request.Context(), id, req.DestinationIDs)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, cmp, "Comparison built successfully")
}

// Recompute is admin only.
func (m *MatchController) Recompute(c *gin.Context) {
	id, ok := uuidParam(c, "id", "respondent ID")
	if !ok {
		return
	}
	out, err := m.matchService.Recompute(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, out, "Respondent recomputed")
}
