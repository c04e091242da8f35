// Package dependency provides dependency injection for the application.
package dependency

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/expense-segmentation/backend/config"
	"github.com/expense-segmentation/backend/internal/application/usecase/auth"
	"github.com/expense-segmentation/backend/internal/application/usecase/category"
	"github.com/expense-segmentation/backend/internal/application/usecase/expense"
	"github.com/expense-segmentation/backend/internal/application/usecase/segment"
	"github.com/expense-segmentation/backend/internal/infra/server/router"
	"github.com/expense-segmentation/backend/internal/integration/adapters"
	"github.com/expense-segmentation/backend/internal/integration/cache"
	"github.com/expense-segmentation/backend/internal/integration/entrypoint/controller"
	"github.com/expense-segmentation/backend/internal/integration/entrypoint/middleware"
	"github.com/expense-segmentation/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Injector {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	categoryRepo := persistence.NewCategoryRepository(db)
	expenseRepo := persistence.NewExpenseRepository(db)
	segmentRepo := persistence.NewSegmentRepository(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)
	authorizer := adapters.NewExpenseAuthorizer()
	categoryRegistry := cache.NewCategoryRegistry(redisClient, categoryRepo, cfg.Redis.RegistryTTL)

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)

	// Create category use cases
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
	createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo, authorizer)
	deactivateCategoryUseCase := category.NewDeactivateCategoryUseCase(categoryRepo, authorizer)

	// Create expense use cases
	createExpenseUseCase := expense.NewCreateExpenseUseCase(expenseRepo)
	getExpenseUseCase := expense.NewGetExpenseUseCase(expenseRepo, authorizer)
	listExpensesUseCase := expense.NewListExpensesUseCase(expenseRepo)

	// Create segment use cases
	listSegmentsUseCase := segment.NewListSegmentsUseCase(expenseRepo, segmentRepo, authorizer)
	createSegmentUseCase := segment.NewCreateSegmentUseCase(expenseRepo, segmentRepo, categoryRegistry, authorizer)
	createSegmentsUseCase := segment.NewCreateSegmentsUseCase(expenseRepo, segmentRepo, categoryRegistry, authorizer)
	replaceSegmentsUseCase := segment.NewReplaceSegmentsUseCase(expenseRepo, segmentRepo, categoryRegistry, authorizer)
	updateSegmentUseCase := segment.NewUpdateSegmentUseCase(expenseRepo, segmentRepo, categoryRegistry, authorizer)
	deleteSegmentUseCase := segment.NewDeleteSegmentUseCase(expenseRepo, segmentRepo, authorizer)

	// Create controllers
	healthController := controller.NewHealthController()
	authController := controller.NewAuthController(registerUseCase, loginUseCase)
	categoryController := controller.NewCategoryController(
		listCategoriesUseCase,
		createCategoryUseCase,
		deactivateCategoryUseCase,
	)
	expenseController := controller.NewExpenseController(
		createExpenseUseCase,
		getExpenseUseCase,
		listExpensesUseCase,
	)
	segmentController := controller.NewSegmentController(
		listSegmentsUseCase,
		createSegmentUseCase,
		createSegmentsUseCase,
		replaceSegmentsUseCase,
		updateSegmentUseCase,
		deleteSegmentUseCase,
	)

	// Create middleware
	loginRateLimiter := middleware.NewRateLimiter()
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	appRouter := router.NewRouter(
		healthController,
		authController,
		categoryController,
		expenseController,
		segmentController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: appRouter,
	}
}
