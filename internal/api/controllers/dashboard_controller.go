package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"soulprint/internal/models/response_models"
	"soulprint/internal/services"
	"soulprint/pkg/utils"
)

type DashboardController struct {
	dashboardService services.DashboardService
}

func NewDashboardController(dashboardService services.DashboardService) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
	}
}

// GetOverview godoc
// @Summary Get overview report
// @Description Questionnaire KPIs, session and submission series, most matched destinations and fit bands
// @Tags Dashboard
// @Produce json
// @Param start     query string false "RFC3339 start (e.g. 2026-10-01T00:00:00Z)"
// @Param end       query string false "RFC3339 end (e.g. 2026-10-19T23:59:59Z)"
// @Param last_days query int    false "Lookback in days, exclusive with start/end (default 30)"
// @Param interval  query string false "Bucket size: day | week | month (default: day)"
// @Param tz        query string false "IANA timezone for bucketing (default: UTC)"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/overview [get]
func (p *DashboardController) GetOverview(c *gin.Context) {
	tr, err := overviewRange(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	report, err := p.dashboardService.BuildDashboard(c.Request.Context(), tr)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, report, "Overview fetched successfully")
}

// overviewRange reads the reporting window from the query. Zero start or end
// are left for the service to default.
func overviewRange(c *gin.Context) (response_models.TimeRange, error) {
	tr := response_models.TimeRange{
		Interval: c.DefaultQuery("interval", "day"),
		Timezone: c.DefaultQuery("tz", "UTC"),
	}

	switch tr.Interval {
	case "day", "week", "month":
	default:
		return tr, errors.New("interval must be one of: day, week, month")
	}
	if _, err := time.LoadLocation(tr.Timezone); err != nil {
		return tr, errors.New("tz must be an IANA timezone name")
	}

	startStr, endStr := c.Query("start"), c.Query("end")
	if lastDays := c.Query("last_days"); lastDays != "" {
		if startStr != "" || endStr != "" {
			return tr, errors.New("provide either last_days or start/end (not both)")
		}
		d, err := strconv.Atoi(lastDays)
		if err != nil || d <= 0 {
			return tr, errors.New("last_days must be a positive integer")
		}
		tr.End = time.Now().UTC()
		tr.Start = tr.End.AddDate(0, 0, -d)
		return tr, nil
	}

	var err error
	if startStr != "" {
		if tr.Start, err = time.Parse(time.RFC3339, startStr); err != nil {
			return tr, errors.New("start must be RFC3339 (e.g. 2026-10-01T00:00:00Z)")
		}
	}
	if endStr != "" {
		if tr.End, err = time.Parse(time.RFC3339, endStr); err != nil {
			return tr, errors.New("end must be RFC3339 (e.g. 2026-10-19T23:59:59Z)")
		}
	}
	if !tr.Start.IsZero() && !tr.End.IsZero() && tr.End.Before(tr.Start) {
		return tr, errors.New("end must not be before start")
	}
	return tr, nil
}
