// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/planner/internal/integration/entrypoint/controller"
	"github.com/finance-tracker/planner/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	authController        *controller.AuthController
	userController        *controller.UserController
	categoryController    *controller.CategoryController
	transactionController *controller.TransactionController
	budgetController      *controller.BudgetController
	goalController        *controller.GoalController
	insightController     *controller.InsightController
	loginRateLimiter      *middleware.RateLimiter
	authMiddleware        *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	userController *controller.UserController,
	categoryController *controller.CategoryController,
	transactionController *controller.TransactionController,
	budgetController *controller.BudgetController,
	goalController *controller.GoalController,
	insightController *controller.InsightController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:      healthController,
		authController:        authController,
		userController:        userController,
		categoryController:    categoryController,
		transactionController: transactionController,
		budgetController:      budgetController,
		goalController:        goalController,
		insightController:     insightController,
		loginRateLimiter:      loginRateLimiter,
		authMiddleware:        authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	// Setup routes
	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")

	// Auth routes (only setup if auth controller is available)
	if r.authController != nil && r.loginRateLimiter != nil && r.authMiddleware != nil {
		auth := v1.Group("/auth")
		{
			auth.POST("/register", r.authController.Register)
			auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
			auth.POST("/refresh", r.authController.RefreshToken)
			auth.POST("/forgot-password", r.loginRateLimiter.Middleware(), r.authController.ForgotPassword)
			auth.POST("/reset-password", r.authController.ResetPassword)
			auth.POST("/verify-email", r.authController.VerifyEmail)
		}

		authenticated := v1.Group("/auth")
		authenticated.Use(r.authMiddleware.Authenticate())
		{
			authenticated.POST("/logout", r.authController.Logout)
			authenticated.POST("/resend-verification", r.authController.ResendVerification)
		}
	}

	// Everything below requires authentication
	if r.authMiddleware == nil {
		return
	}
	protected := v1.Group("")
	protected.Use(r.authMiddleware.Authenticate())

	if r.userController != nil {
		users := protected.Group("/users")
		{
			users.GET("/me", r.userController.Me)
			users.DELETE("/me", r.userController.DeleteAccount)
			users.DELETE("/me/data", r.userController.ResetData)
		}
	}

	if r.categoryController != nil {
		categories := protected.Group("/categories")
		{
			categories.GET("", r.categoryController.List)
			categories.GET("/parent-options", r.categoryController.ParentOptions)
			categories.POST("", r.categoryController.Create)
			categories.PUT("/:id", r.categoryController.Update)
			categories.DELETE("/:id", r.categoryController.Delete)
		}
	}

	if r.transactionController != nil {
		transactions := protected.Group("/transactions")
		{
			transactions.GET("", r.transactionController.List)
			transactions.POST("", r.transactionController.Create)
		}
	}

	if r.budgetController != nil {
		budgets := protected.Group("/budgets")
		{
			budgets.GET("", r.budgetController.List)
			budgets.PUT("", r.budgetController.Save)
			budgets.PUT("/income", r.budgetController.SetIncome)
			budgets.POST("/recalculate", r.budgetController.Recalculate)
		}
	}

	if r.goalController != nil {
		goals := protected.Group("/goals")
		{
			goals.GET("", r.goalController.List)
			goals.POST("", r.goalController.Create)
			goals.GET("/:id", r.goalController.Get)
			goals.PUT("/:id", r.goalController.Update)
			goals.DELETE("/:id", r.goalController.Delete)
			goals.POST("/:id/contribute", r.goalController.Contribute)
		}
	}

	if r.insightController != nil {
		insights := protected.Group("/insights")
		{
			insights.GET("/comparison", r.insightController.Comparison)
			insights.GET("/breakdown", r.insightController.Breakdown)
			insights.GET("/budget-vs-actual", r.insightController.BudgetVsActual)
			insights.GET("/allocation", r.insightController.Allocation)
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
