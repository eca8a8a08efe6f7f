package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"soulprint/internal/matching"
	"soulprint/internal/questionnaire"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	return c.GetString("trace_id")
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondCreated(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusCreated, APIResponse{
		Status:  "success",
		Code:    http.StatusCreated,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

// HandleServiceError maps service sentinels to HTTP responses. Anything
// unrecognised is logged by the caller's service and answered with 500.
func HandleServiceError(c *gin.Context, err error) {
	code, message := http.StatusInternalServerError, "Internal server error"

	switch {
	case errors.Is(err, ErrSessionNotFound):
		code, message = http.StatusNotFound, "Questionnaire session not found"
	case errors.Is(err, ErrRespondentNotFound):
		code, message = http.StatusNotFound, "Respondent not found"
	case errors.Is(err, ErrDestinationNotFound):
		code, message = http.StatusNotFound, "Destination not found"
	case errors.Is(err, ErrMatchNotFound):
		code, message = http.StatusNotFound, "Match not found"
	case errors.Is(err, ErrTraitsNotComputed):
		code, message = http.StatusConflict, "Complete your questionnaire first"
	case errors.Is(err, ErrDestinationExists):
		code, message = http.StatusConflict, "Destination already exists"
	case errors.Is(err, questionnaire.ErrSessionSubmitted):
		code, message = http.StatusConflict, "Questionnaire already submitted"
	case errors.Is(err, questionnaire.ErrNoNextSection):
		code, message = http.StatusConflict, "Already at the last section"
	case errors.Is(err, questionnaire.ErrNoPreviousSection):
		code, message = http.StatusConflict, "Already at the first section"
	case errors.Is(err, questionnaire.ErrNotAtLastSection):
		code, message = http.StatusConflict, "Finish every section before submitting"
	case errors.Is(err, matching.ErrComparisonTooFew):
		code, message = http.StatusBadRequest, "Pick at least two destinations to compare"
	case errors.Is(err, ErrInvalidInput):
		code, message = http.StatusBadRequest, err.Error()
	case errors.Is(err, ErrInvalidPage):
		code, message = http.StatusBadRequest, "Page must be greater than 0"
	case errors.Is(err, ErrInvalidPageSize):
		code, message = http.StatusBadRequest, "Page size must be between 1 and 100"
	case errors.Is(err, ErrNarrativeUnavailable):
		code, message = http.StatusServiceUnavailable, "Narrative generation is not available"
	case errors.Is(err, ErrUnexpectedBehaviorOfAI):
		code, message = http.StatusBadGateway, "Narrative service returned an unexpected answer"
	}

	RespondError(c, code, message)
}
