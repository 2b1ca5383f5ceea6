// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finai/backend/internal/application/usecase/alert"
	domainerror "github.com/finai/backend/internal/domain/error"
	"github.com/finai/backend/internal/integration/entrypoint/dto"
)

// AlertController handles alert endpoints.
type AlertController struct {
	listUseCase     *alert.ListAlertsUseCase
	markReadUseCase *alert.MarkAlertReadUseCase
}

// NewAlertController creates a new alert controller instance.
func NewAlertController(
	listUseCase *alert.ListAlertsUseCase,
	markReadUseCase *alert.MarkAlertReadUseCase,
) *AlertController {
	return &AlertController{
		listUseCase:     listUseCase,
		markReadUseCase: markReadUseCase,
	}
}

// List handles GET /api/alerts/:user_id requests.
func (c *AlertController) List(ctx *gin.Context) {
	userID, ok := pathUUID(ctx, "user_id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid user ID format",
			Code:  string(domainerror.ErrCodeInvalidAlertID),
		})
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), alert.ListAlertsInput{
		UserID: userID,
		Status: ctx.Query("status"),
		Limit:  queryLimit(ctx),
	})
	if err != nil {
		c.handleAlertError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAlertListResponse(output.Alerts))
}

// MarkRead handles PUT /api/alerts/:user_id/:alert_id requests.
func (c *AlertController) MarkRead(ctx *gin.Context) {
	userID, ok := pathUUID(ctx, "user_id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid user ID format",
			Code:  string(domainerror.ErrCodeInvalidAlertID),
		})
		return
	}
	alertID, ok := pathUUID(ctx, "alert_id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid alert ID format",
			Code:  string(domainerror.ErrCodeInvalidAlertID),
		})
		return
	}

	if _, err := c.markReadUseCase.Execute(ctx.Request.Context(), alert.MarkAlertReadInput{
		UserID:  userID,
		AlertID: alertID,
	}); err != nil {
		c.handleAlertError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Alert marked as read"})
}

// handleAlertError handles alert errors and returns appropriate HTTP responses.
func (c *AlertController) handleAlertError(ctx *gin.Context, err error) {
	var alertErr *domainerror.AlertError
	if errors.As(err, &alertErr) {
		response := dto.ErrorResponse{
			Error: alertErr.Message,
			Code:  string(alertErr.Code),
		}
		status := c.getStatusCodeForAlertError(alertErr.Code)
		if status == http.StatusInternalServerError {
			response.Details = err.Error()
		}
		ctx.JSON(status, response)
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error:   "An internal error occurred",
		Details: err.Error(),
	})
}

// getStatusCodeForAlertError maps alert error codes to HTTP status codes.
func (c *AlertController) getStatusCodeForAlertError(code domainerror.AlertErrorCode) int {
	switch code {
	case domainerror.ErrCodeAlertNotFound, domainerror.ErrCodeAlertUserNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidAlertID, domainerror.ErrCodeInvalidAlertStatus:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
