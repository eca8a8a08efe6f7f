package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"soulprint/internal/matching"
	"soulprint/internal/models/request_models"
	"soulprint/internal/services"
	"soulprint/pkg/utils"
)

type DestinationController struct {
	destinationService services.DestinationServiceInterface
}

func NewDestinationController(destinationService services.DestinationServiceInterface) *DestinationController {
	return &DestinationController{destinationService: destinationService}
}

// ListDestinations godoc
// @Summary List catalog destinations
// @Tags Destinations
// @Produce json
// @Param region query string false "Region"
// @Param tier query string false "Tier"
// @Param active_only query bool false "Only active destinations"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(20)
// @Success 200 {object} utils.APIResponse
// @Router /destinations [get]
func (d *DestinationController) ListDestinations(c *gin.Context) {
	var filter request_models.DestinationFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid filter")
		return
	}
	page, pageSize, ok := pageParams(c, "20")
	if !ok {
		return
	}

	out, err := d.destinationService.ListDestinations(c.Request.Context(), filter, page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, out, "Destinations fetched successfully")
}

func (d *DestinationController) GetDestination(c *gin.Context) {
	out, err := d.destinationService.GetDestination(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, out, "Destination fetched successfully")
}

// SimilarDestinations returns the nearest active destinations by profile
// vector.
func (d *DestinationController) SimilarDestinations(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "5"))
	if err != nil || limit < 1 || limit > 50 {
		utils.RespondError(c, http.StatusBadRequest, "limit must be between 1 and 50")
		return
	}
	out, err := d.destinationService.SimilarDestinations(c.Request.Context(), c.Param("id"), limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, out, "Similar destinations fetched successfully")
}

func (d *DestinationController) CreateDestination(c *gin.Context) {
	var req matching.DestinationProfile
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	out, err := d.destinationService.CreateDestination(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, out, "Destination created successfully")
}

func (d *DestinationController) UpdateDestination(c *gin.Context) {
	var req matching.DestinationProfile
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	out, err := d.destinationService.UpdateDestination(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, out, "Destination updated successfully")
}

func (d *DestinationController) DeleteDestination(c *gin.Context) {
	if err := d.destinationService.DeleteDestination(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Destination deleted successfully")
}
