// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/raghusami/personal-finance-tracker/internal/integration/entrypoint/controller"
	"github.com/raghusami/personal-finance-tracker/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                  *gin.Engine
	healthController        *controller.HealthController
	authController          *controller.AuthController
	userController          *controller.UserController
	incomeController        *controller.IncomeController
	expenseController       *controller.ExpenseController
	savingController        *controller.SavingController
	savingPaymentController *controller.SavingPaymentController
	investmentController    *controller.InvestmentController
	budgetPeriodController  *controller.BudgetPeriodController
	goalController          *controller.GoalController
	loginRateLimiter        *middleware.RateLimiter
	authMiddleware          *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	userController *controller.UserController,
	incomeController *controller.IncomeController,
	expenseController *controller.ExpenseController,
	savingController *controller.SavingController,
	savingPaymentController *controller.SavingPaymentController,
	investmentController *controller.InvestmentController,
	budgetPeriodController *controller.BudgetPeriodController,
	goalController *controller.GoalController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:        healthController,
		authController:          authController,
		userController:          userController,
		incomeController:        incomeController,
		expenseController:       expenseController,
		savingController:        savingController,
		savingPaymentController: savingPaymentController,
		investmentController:    investmentController,
		budgetPeriodController:  budgetPeriodController,
		goalController:          goalController,
		loginRateLimiter:        loginRateLimiter,
		authMiddleware:          authMiddleware,
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
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		// Auth routes (only setup if auth controller is available)
		if r.authController != nil && r.loginRateLimiter != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/register", r.authController.Register)
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
				auth.POST("/refresh", r.authController.RefreshToken)
				auth.POST("/logout", r.authController.Logout)
				auth.POST("/forgot-password", r.authController.ForgotPassword)
				auth.POST("/reset-password", r.authController.ResetPassword)
			}
		}

		// User profile routes (require authentication).
		if r.userController != nil && r.authMiddleware != nil {
			users := v1.Group("/users")
			users.Use(r.authMiddleware.Authenticate())
			{
				users.GET("/:id", r.userController.Get)
				users.PUT("/:id", r.userController.Update)
			}
		}

		// Income routes keep the legacy verb-suffixed paths the original
		// web client was built against (require authentication).
		if r.incomeController != nil && r.authMiddleware != nil {
			incomes := v1.Group("/IncomeRecords")
			incomes.Use(r.authMiddleware.Authenticate())
			{
				incomes.GET("/IncomeGetAll", r.incomeController.List)
				incomes.GET("/IncomeGetById/:id", r.incomeController.Get)
				incomes.POST("/IncomeCreate", r.incomeController.Create)
				incomes.PUT("/IncomeUpdate/:id", r.incomeController.Update)
				incomes.DELETE("/IncomeDelete/:id", r.incomeController.Delete)
			}
		}

		// Expense routes (require authentication)
		if r.expenseController != nil && r.authMiddleware != nil {
			expenses := v1.Group("/expenses")
			expenses.Use(r.authMiddleware.Authenticate())
			{
				expenses.GET("", r.expenseController.List)
				expenses.POST("", r.expenseController.Create)
				expenses.GET("/:id", r.expenseController.Get)
				expenses.PUT("/:id", r.expenseController.Update)
				expenses.DELETE("/:id", r.expenseController.Delete)
			}
		}

		// Saving routes (require authentication)
		if r.savingController != nil && r.authMiddleware != nil {
			savings := v1.Group("/savings")
			savings.Use(r.authMiddleware.Authenticate())
			{
				savings.GET("", r.savingController.List)
				savings.POST("", r.savingController.Create)
				savings.GET("/:id", r.savingController.Get)
				savings.PUT("/:id", r.savingController.Update)
				savings.DELETE("/:id", r.savingController.Delete)
			}
		}

		// Saving payment routes (require authentication)
		if r.savingPaymentController != nil && r.authMiddleware != nil {
			payments := v1.Group("/saving-payments")
			payments.Use(r.authMiddleware.Authenticate())
			{
				payments.GET("", r.savingPaymentController.List)
				payments.POST("", r.savingPaymentController.Create)
				payments.GET("/:id", r.savingPaymentController.Get)
				payments.PUT("/:id", r.savingPaymentController.Update)
				payments.DELETE("/:id", r.savingPaymentController.Delete)
			}
		}

		// Investment routes (require authentication)
		if r.investmentController != nil && r.authMiddleware != nil {
			investments := v1.Group("/investments")
			investments.Use(r.authMiddleware.Authenticate())
			{
				investments.GET("", r.investmentController.List)
				investments.POST("", r.investmentController.Create)
				investments.GET("/:id", r.investmentController.Get)
				investments.PUT("/:id", r.investmentController.Update)
				investments.DELETE("/:id", r.investmentController.Delete)
			}
		}

		// Budget period routes (require authentication)
		if r.budgetPeriodController != nil && r.authMiddleware != nil {
			budgets := v1.Group("/budgets")
			budgets.Use(r.authMiddleware.Authenticate())
			{
				budgets.GET("", r.budgetPeriodController.List)
				budgets.POST("", r.budgetPeriodController.Create)
				budgets.GET("/:id", r.budgetPeriodController.Get)
				budgets.PUT("/:id", r.budgetPeriodController.Update)
				budgets.DELETE("/:id", r.budgetPeriodController.Delete)
			}
		}

		// Goal routes (require authentication)
		if r.goalController != nil && r.authMiddleware != nil {
			goals := v1.Group("/goals")
			goals.Use(r.authMiddleware.Authenticate())
			{
				goals.GET("", r.goalController.List)
				goals.POST("", r.goalController.Create)
				goals.GET("/:id", r.goalController.Get)
				goals.PUT("/:id", r.goalController.Update)
				goals.DELETE("/:id", r.goalController.Delete)
			}
		}
	}
}
