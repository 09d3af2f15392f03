// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/reports-api/internal/integration/entrypoint/controller"
	"github.com/finance-tracker/reports-api/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	authController        *controller.AuthController
	userController        *controller.UserController
	transactionController *controller.TransactionController
	goalController        *controller.GoalController
	reportController      *controller.ReportController
	loginRateLimiter      *middleware.RateLimiter
	authMiddleware        *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	userController *controller.UserController,
	transactionController *controller.TransactionController,
	goalController *controller.GoalController,
	reportController *controller.ReportController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:      healthController,
		authController:        authController,
		userController:        userController,
		transactionController: transactionController,
		goalController:        goalController,
		reportController:      reportController,
		loginRateLimiter:      loginRateLimiter,
		authMiddleware:        authMiddleware,
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

	r.engine = gin.Default()

	r.engine.GET("/health", r.healthController.Check)

	v1 := r.engine.Group("/api/v1")
	v1.GET("/health", r.healthController.Check)
	r.setupAuthRoutes(v1)
	r.setupProtectedRoutes(v1)

	return r.engine
}

func (r *Router) setupAuthRoutes(v1 *gin.RouterGroup) {
	auth := v1.Group("/auth")
	{
		auth.POST("/register", r.authController.Register)
		auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
		auth.POST("/refresh", r.authController.RefreshToken)
		auth.POST("/logout", r.authController.Logout)
	}
}

func (r *Router) setupProtectedRoutes(v1 *gin.RouterGroup) {
	protected := v1.Group("")
	protected.Use(r.authMiddleware.Authenticate())

	users := protected.Group("/users")
	{
		users.GET("/me", r.userController.Me)
	}

	transactions := protected.Group("/transactions")
	{
		transactions.GET("", r.transactionController.List)
		transactions.GET("/month/:month/:year", r.transactionController.ListByPeriod)
		transactions.GET("/:id", r.transactionController.Get)
		transactions.POST("", r.transactionController.Create)
		transactions.PATCH("/:id", r.transactionController.Update)
		transactions.DELETE("/:id", r.transactionController.Delete)
	}

	goals := protected.Group("/goals")
	{
		goals.GET("", r.goalController.List)
		goals.GET("/period/:month/:year", r.goalController.GetByPeriod)
		goals.GET("/:id", r.goalController.Get)
		goals.POST("", r.goalController.Create)
		goals.PATCH("/:id", r.goalController.Update)
		goals.DELETE("/:id", r.goalController.Delete)
	}

	reports := protected.Group("/reports")
	{
		reports.GET("/monthly", r.reportController.Monthly)
		reports.GET("/yearly", r.reportController.Yearly)
		reports.POST("/monthly/email", r.reportController.Email)
		reports.GET("/monthly/insights", r.reportController.Insights)
	}
}
