// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthChecks reports the state of each dependency. Nil checks count as unavailable.
type HealthChecks struct {
	Database func() bool
	Cache    func() bool
	Advisor  func() bool
}

// HealthController handles health check endpoints.
type HealthController struct {
	checks HealthChecks
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	Cache     string `json:"cache"`
	Advisor   string `json:"advisor"`
	Timestamp string `json:"timestamp"`
}

// NewHealthController creates a new health controller instance.
func NewHealthController(checks HealthChecks) *HealthController {
	return &HealthController{checks: checks}
}

// Check handles GET /health requests.
// The API itself is "ok" whenever it can answer; dependencies are reported individually.
func (h *HealthController) Check(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "ok",
		Database:  state(h.checks.Database, "connected", "disconnected"),
		Cache:     state(h.checks.Cache, "redis", "memory"),
		Advisor:   state(h.checks.Advisor, "configured", "fallback"),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func state(check func() bool, up, down string) string {
	if check != nil && check() {
		return up
	}
	return down
}
