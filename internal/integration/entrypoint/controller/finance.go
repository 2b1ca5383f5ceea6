// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finai/backend/internal/application/usecase/finance"
	domainerror "github.com/finai/backend/internal/domain/error"
	"github.com/finai/backend/internal/integration/entrypoint/dto"
)

// FinanceController handles finance snapshot endpoints.
type FinanceController struct {
	listUseCase *finance.ListFinancesUseCase
}

// NewFinanceController creates a new finance controller instance.
func NewFinanceController(listUseCase *finance.ListFinancesUseCase) *FinanceController {
	return &FinanceController{listUseCase: listUseCase}
}

// List handles GET /api/finances/:user_id requests.
func (c *FinanceController) List(ctx *gin.Context) {
	userID, ok := pathUUID(ctx, "user_id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid user ID format",
			Code:  string(domainerror.ErrCodeInvalidUserID),
		})
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), finance.ListFinancesInput{
		UserID: userID,
		Limit:  queryLimit(ctx),
	})
	if err != nil {
		var userErr *domainerror.UserError
		if errors.As(err, &userErr) && userErr.Code == domainerror.ErrCodeUserNotFound {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
				Error: userErr.Message,
				Code:  string(userErr.Code),
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "Failed to retrieve finance history",
			Details: err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToFinanceHistoryResponse(output))
}
