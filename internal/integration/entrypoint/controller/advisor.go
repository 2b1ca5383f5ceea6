// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finai/backend/internal/application/usecase/advisor"
	domainerror "github.com/finai/backend/internal/domain/error"
	"github.com/finai/backend/internal/integration/entrypoint/dto"
)

// AdvisorController handles chat and advice endpoints.
type AdvisorController struct {
	chatUseCase    *advisor.ChatUseCase
	historyUseCase *advisor.GetHistoryUseCase
	adviceUseCase  *advisor.GetAdviceUseCase
}

// NewAdvisorController creates a new advisor controller instance.
func NewAdvisorController(
	chatUseCase *advisor.ChatUseCase,
	historyUseCase *advisor.GetHistoryUseCase,
	adviceUseCase *advisor.GetAdviceUseCase,
) *AdvisorController {
	return &AdvisorController{
		chatUseCase:    chatUseCase,
		historyUseCase: historyUseCase,
		adviceUseCase:  adviceUseCase,
	}
}

// Chat handles POST /api/chat/:user_id requests.
func (c *AdvisorController) Chat(ctx *gin.Context) {
	userID, ok := pathUUID(ctx, "user_id")
	if !ok {
		c.invalidUserID(ctx)
		return
	}

	var req dto.ChatRequest
	if err := ctx.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Code:    string(domainerror.ErrCodeAdvisorInvalidRequest),
			Details: err.Error(),
		})
		return
	}

	output, err := c.chatUseCase.Execute(ctx.Request.Context(), advisor.ChatInput{
		UserID:  userID,
		Message: req.Message,
	})
	if err != nil {
		c.handleAdvisorError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ChatResponse{Response: output.Response})
}

// History handles GET /api/chat/:user_id requests.
func (c *AdvisorController) History(ctx *gin.Context) {
	userID, ok := pathUUID(ctx, "user_id")
	if !ok {
		c.invalidUserID(ctx)
		return
	}

	output, err := c.historyUseCase.Execute(ctx.Request.Context(), advisor.GetHistoryInput{
		UserID: userID,
		Limit:  queryLimit(ctx),
	})
	if err != nil {
		c.handleAdvisorError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToChatHistoryResponse(output.Messages))
}

// Advice handles POST /api/advice/:user_id requests. The body is optional.
func (c *AdvisorController) Advice(ctx *gin.Context) {
	userID, ok := pathUUID(ctx, "user_id")
	if !ok {
		c.invalidUserID(ctx)
		return
	}

	var req dto.AdviceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Code:    string(domainerror.ErrCodeAdvisorInvalidRequest),
			Details: err.Error(),
		})
		return
	}

	result, err := c.adviceUseCase.Execute(ctx.Request.Context(), advisor.GetAdviceInput{
		UserID:        userID,
		EmergencyFund: req.EmergencyFund,
	})
	if err != nil {
		c.handleAdvisorError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAdviceResponse(result))
}

func (c *AdvisorController) invalidUserID(ctx *gin.Context) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: "Invalid user ID format",
		Code:  string(domainerror.ErrCodeAdvisorInvalidRequest),
	})
}

// handleAdvisorError handles advisor errors and returns appropriate HTTP responses.
func (c *AdvisorController) handleAdvisorError(ctx *gin.Context, err error) {
	var advisorErr *domainerror.AdvisorError
	if errors.As(err, &advisorErr) {
		response := dto.ErrorResponse{
			Error: advisorErr.Message,
			Code:  string(advisorErr.Code),
		}
		status := c.getStatusCodeForAdvisorError(advisorErr.Code)
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

// getStatusCodeForAdvisorError maps advisor error codes to HTTP status codes.
func (c *AdvisorController) getStatusCodeForAdvisorError(code domainerror.AdvisorErrorCode) int {
	switch code {
	case domainerror.ErrCodeAdvisorUserNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeAdvisorInvalidRequest:
		return http.StatusBadRequest
	case domainerror.ErrCodeRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
