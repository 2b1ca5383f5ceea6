// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/finai/backend/internal/integration/entrypoint/controller"
	"github.com/finai/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine             *gin.Engine
	healthController   *controller.HealthController
	userController     *controller.UserController
	alertController    *controller.AlertController
	advisorController  *controller.AdvisorController
	financeController  *controller.FinanceController
	advisorRateLimiter *middleware.RateLimiter
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	userController *controller.UserController,
	alertController *controller.AlertController,
	advisorController *controller.AdvisorController,
	financeController *controller.FinanceController,
	advisorRateLimiter *middleware.RateLimiter,
) *Router {
	return &Router{
		healthController:   healthController,
		userController:     userController,
		alertController:    alertController,
		advisorController:  advisorController,
		financeController:  financeController,
		advisorRateLimiter: advisorRateLimiter,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	switch environment {
	case "production":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	}

	// Logger and recovery
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

func (r *Router) setupAPIRoutes() {
	api := r.engine.Group("/api")

	if r.userController != nil {
		api.POST("/users", r.userController.Create)
		api.POST("/save_user", r.userController.Create)
		api.GET("/users/:id", r.userController.Get)
		api.PUT("/users/:id", r.userController.Update)
	}

	if r.alertController != nil {
		api.GET("/alerts/:user_id", r.alertController.List)
		api.PUT("/alerts/:user_id/:alert_id", r.alertController.MarkRead)
	}

	if r.financeController != nil {
		api.GET("/finances/:user_id", r.financeController.List)
	}

	if r.advisorController != nil {
		// Reading history is free; the two routes below call the inference provider.
		api.GET("/chat/:user_id", r.advisorController.History)

		limited := api.Group("")
		if r.advisorRateLimiter != nil {
			limited.Use(r.advisorRateLimiter.Middleware())
		}
		limited.POST("/chat/:user_id", r.advisorController.Chat)
		limited.POST("/advice/:user_id", r.advisorController.Advice)
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
