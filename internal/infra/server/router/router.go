// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/expense-segmentation/backend/internal/integration/entrypoint/controller"
	"github.com/expense-segmentation/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine             *gin.Engine
	healthController   *controller.HealthController
	authController     *controller.AuthController
	categoryController *controller.CategoryController
	expenseController  *controller.ExpenseController
	segmentController  *controller.SegmentController
	loginRateLimiter   *middleware.RateLimiter
	authMiddleware     *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	categoryController *controller.CategoryController,
	expenseController *controller.ExpenseController,
	segmentController *controller.SegmentController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:   healthController,
		authController:     authController,
		categoryController: categoryController,
		expenseController:  expenseController,
		segmentController:  segmentController,
		loginRateLimiter:   loginRateLimiter,
		authMiddleware:     authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	r.engine = gin.Default()

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
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/register", r.authController.Register)
			auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
		}

		categories := v1.Group("/categories")
		categories.Use(r.authMiddleware.Authenticate())
		{
			categories.GET("", r.categoryController.List)
			categories.POST("", r.categoryController.Create)
			categories.DELETE("/:id", r.categoryController.Deactivate)
		}

		expenses := v1.Group("/expenses")
		expenses.Use(r.authMiddleware.Authenticate())
		{
			expenses.POST("", r.expenseController.Create)
			expenses.GET("", r.expenseController.List)
			expenses.GET("/:id", r.expenseController.Get)

			expenses.GET("/:id/segments", r.segmentController.List)
			expenses.POST("/:id/segments", r.segmentController.Create)
			expenses.POST("/:id/segments/batch", r.segmentController.CreateBatch)
			expenses.PUT("/:id/segments", r.segmentController.Replace)
			expenses.PATCH("/:id/segments/:segmentId", r.segmentController.Update)
			expenses.DELETE("/:id/segments/:segmentId", r.segmentController.Delete)
		}
	}
}
