// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// pathUUID parses a UUID path parameter.
func pathUUID(ctx *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param(name))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// queryLimit reads ?limit=, treating missing or non-numeric values as 0.
func queryLimit(ctx *gin.Context) int {
	limit, err := strconv.Atoi(ctx.Query("limit"))
	if err != nil || limit < 0 {
		return 0
	}
	return limit
}
