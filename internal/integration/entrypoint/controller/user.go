// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finai/backend/internal/application/usecase/user"
	domainerror "github.com/finai/backend/internal/domain/error"
	"github.com/finai/backend/internal/integration/entrypoint/dto"
)

// UserController handles user profile endpoints.
type UserController struct {
	createUseCase *user.CreateUserUseCase
	getUseCase    *user.GetUserUseCase
	updateUseCase *user.UpdateUserUseCase
}

// NewUserController creates a new user controller instance.
func NewUserController(
	createUseCase *user.CreateUserUseCase,
	getUseCase *user.GetUserUseCase,
	updateUseCase *user.UpdateUserUseCase,
) *UserController {
	return &UserController{
		createUseCase: createUseCase,
		getUseCase:    getUseCase,
		updateUseCase: updateUseCase,
	}
}

// Create handles POST /api/users and POST /api/save_user requests.
func (c *UserController) Create(ctx *gin.Context) {
	var req dto.UserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Code:    string(domainerror.ErrCodeInvalidUserBody),
			Details: err.Error(),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), req.ToCreateInput())
	if err != nil {
		c.handleUserError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.CreateUserResponse{
		Message: "User saved successfully!",
		UserID:  output.User.ID.String(),
		Name:    output.User.Name,
	})
}

// Get handles GET /api/users/:id requests.
func (c *UserController) Get(ctx *gin.Context) {
	userID, ok := pathUUID(ctx, "id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid user ID format",
			Code:  string(domainerror.ErrCodeInvalidUserID),
		})
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), user.GetUserInput{UserID: userID})
	if err != nil {
		c.handleUserError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserResponse(output.User))
}

// Update handles PUT /api/users/:id requests.
func (c *UserController) Update(ctx *gin.Context) {
	userID, ok := pathUUID(ctx, "id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid user ID format",
			Code:  string(domainerror.ErrCodeInvalidUserID),
		})
		return
	}

	var req dto.UserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Code:    string(domainerror.ErrCodeInvalidUserBody),
			Details: err.Error(),
		})
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), req.ToUpdateInput(userID))
	if err != nil {
		c.handleUserError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.UpdateUserResponse{
		Message: "User updated successfully",
		User:    dto.ToUserResponse(output.User),
	})
}

// handleUserError handles user errors and returns appropriate HTTP responses.
func (c *UserController) handleUserError(ctx *gin.Context, err error) {
	var userErr *domainerror.UserError
	if errors.As(err, &userErr) {
		response := dto.ErrorResponse{
			Error: userErr.Message,
			Code:  string(userErr.Code),
		}
		status := c.getStatusCodeForUserError(userErr.Code)
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

// getStatusCodeForUserError maps user error codes to HTTP status codes.
func (c *UserController) getStatusCodeForUserError(code domainerror.UserErrorCode) int {
	switch code {
	case domainerror.ErrCodeUserNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidUserID, domainerror.ErrCodeInvalidUserBody:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
