// Package dependency provides dependency injection for the application.
package dependency

import (
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/raghusami/personal-finance-tracker/config"
	"github.com/raghusami/personal-finance-tracker/internal/application/adapter"
	"github.com/raghusami/personal-finance-tracker/internal/application/usecase/auth"
	"github.com/raghusami/personal-finance-tracker/internal/application/usecase/budgetperiod"
	"github.com/raghusami/personal-finance-tracker/internal/application/usecase/expense"
	"github.com/raghusami/personal-finance-tracker/internal/application/usecase/goal"
	"github.com/raghusami/personal-finance-tracker/internal/application/usecase/income"
	"github.com/raghusami/personal-finance-tracker/internal/application/usecase/investment"
	"github.com/raghusami/personal-finance-tracker/internal/application/usecase/saving"
	"github.com/raghusami/personal-finance-tracker/internal/application/usecase/savingpayment"
	"github.com/raghusami/personal-finance-tracker/internal/application/usecase/user"
	"github.com/raghusami/personal-finance-tracker/internal/infra/server/router"
	"github.com/raghusami/personal-finance-tracker/internal/integration/adapters"
	"github.com/raghusami/personal-finance-tracker/internal/integration/email"
	"github.com/raghusami/personal-finance-tracker/internal/integration/email/templates"
	"github.com/raghusami/personal-finance-tracker/internal/integration/entrypoint/controller"
	"github.com/raghusami/personal-finance-tracker/internal/integration/entrypoint/middleware"
	"github.com/raghusami/personal-finance-tracker/internal/integration/events"
	"github.com/raghusami/personal-finance-tracker/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config      *config.Config
	DB          *gorm.DB
	Redis       *redis.Client
	Router      *router.Router
	EmailWorker *email.Worker
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Injector {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	emailQueueRepo := persistence.NewEmailQueueRepository(db)
	incomeRepo := persistence.NewIncomeRepository(db)
	expenseRepo := persistence.NewExpenseRepository(db)
	savingRepo := persistence.NewSavingRepository(db)
	savingPaymentRepo := persistence.NewSavingPaymentRepository(db)
	investmentRepo := persistence.NewInvestmentRepository(db)
	budgetPeriodRepo := persistence.NewBudgetPeriodRepository(db)
	goalRepo := persistence.NewGoalRepository(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, tokenRepo)
	resetTokenService := adapters.NewPasswordResetTokenService(tokenRepo)
	emailService := email.NewService(emailQueueRepo, cfg.Email.AppBaseURL)
	eventPublisher := events.NewRedisPublisher(redisClient)

	// Create email worker (sends queued emails in the background)
	emailWorker := newEmailWorker(cfg, emailQueueRepo)

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)
	forgotPasswordUseCase := auth.NewForgotPasswordUseCase(userRepo, resetTokenService, emailService, cfg.Email.AppBaseURL)
	resetPasswordUseCase := auth.NewResetPasswordUseCase(userRepo, passwordService, resetTokenService)

	// Create user profile use cases
	getUserUseCase := user.NewGetUserUseCase(userRepo)
	updateUserUseCase := user.NewUpdateUserUseCase(userRepo, eventPublisher)

	// Create income use cases
	listIncomesUseCase := income.NewListIncomesUseCase(incomeRepo)
	createIncomeUseCase := income.NewCreateIncomeUseCase(incomeRepo, eventPublisher)
	getIncomeUseCase := income.NewGetIncomeUseCase(incomeRepo)
	updateIncomeUseCase := income.NewUpdateIncomeUseCase(incomeRepo, eventPublisher)
	deleteIncomeUseCase := income.NewDeleteIncomeUseCase(incomeRepo, eventPublisher)

	// Create expense use cases
	listExpensesUseCase := expense.NewListExpensesUseCase(expenseRepo)
	createExpenseUseCase := expense.NewCreateExpenseUseCase(expenseRepo, eventPublisher)
	getExpenseUseCase := expense.NewGetExpenseUseCase(expenseRepo)
	updateExpenseUseCase := expense.NewUpdateExpenseUseCase(expenseRepo, eventPublisher)
	deleteExpenseUseCase := expense.NewDeleteExpenseUseCase(expenseRepo, eventPublisher)

	// Create saving use cases
	listSavingsUseCase := saving.NewListSavingsUseCase(savingRepo)
	createSavingUseCase := saving.NewCreateSavingUseCase(savingRepo, eventPublisher)
	getSavingUseCase := saving.NewGetSavingUseCase(savingRepo)
	updateSavingUseCase := saving.NewUpdateSavingUseCase(savingRepo, eventPublisher)
	deleteSavingUseCase := saving.NewDeleteSavingUseCase(savingRepo, eventPublisher)

	// Create saving payment use cases
	listSavingPaymentsUseCase := savingpayment.NewListSavingPaymentsUseCase(savingPaymentRepo)
	createSavingPaymentUseCase := savingpayment.NewCreateSavingPaymentUseCase(savingPaymentRepo, savingRepo, eventPublisher)
	getSavingPaymentUseCase := savingpayment.NewGetSavingPaymentUseCase(savingPaymentRepo)
	updateSavingPaymentUseCase := savingpayment.NewUpdateSavingPaymentUseCase(savingPaymentRepo, eventPublisher)
	deleteSavingPaymentUseCase := savingpayment.NewDeleteSavingPaymentUseCase(savingPaymentRepo, eventPublisher)

	// Create investment use cases
	listInvestmentsUseCase := investment.NewListInvestmentsUseCase(investmentRepo)
	createInvestmentUseCase := investment.NewCreateInvestmentUseCase(investmentRepo, eventPublisher)
	getInvestmentUseCase := investment.NewGetInvestmentUseCase(investmentRepo)
	updateInvestmentUseCase := investment.NewUpdateInvestmentUseCase(investmentRepo, eventPublisher)
	deleteInvestmentUseCase := investment.NewDeleteInvestmentUseCase(investmentRepo, eventPublisher)

	// Create budget period use cases
	listBudgetPeriodsUseCase := budgetperiod.NewListBudgetPeriodsUseCase(budgetPeriodRepo)
	createBudgetPeriodUseCase := budgetperiod.NewCreateBudgetPeriodUseCase(budgetPeriodRepo, eventPublisher)
	getBudgetPeriodUseCase := budgetperiod.NewGetBudgetPeriodUseCase(budgetPeriodRepo)
	updateBudgetPeriodUseCase := budgetperiod.NewUpdateBudgetPeriodUseCase(budgetPeriodRepo, eventPublisher)
	deleteBudgetPeriodUseCase := budgetperiod.NewDeleteBudgetPeriodUseCase(budgetPeriodRepo, eventPublisher)

	// Create goal use cases
	listGoalsUseCase := goal.NewListGoalsUseCase(goalRepo)
	createGoalUseCase := goal.NewCreateGoalUseCase(goalRepo, eventPublisher)
	getGoalUseCase := goal.NewGetGoalUseCase(goalRepo)
	updateGoalUseCase := goal.NewUpdateGoalUseCase(goalRepo, eventPublisher)
	deleteGoalUseCase := goal.NewDeleteGoalUseCase(goalRepo, eventPublisher)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		refreshTokenUseCase,
		logoutUseCase,
		forgotPasswordUseCase,
		resetPasswordUseCase,
	)

	userController := controller.NewUserController(
		getUserUseCase,
		updateUserUseCase,
	)

	incomeController := controller.NewIncomeController(
		listIncomesUseCase,
		createIncomeUseCase,
		getIncomeUseCase,
		updateIncomeUseCase,
		deleteIncomeUseCase,
	)

	expenseController := controller.NewExpenseController(
		listExpensesUseCase,
		createExpenseUseCase,
		getExpenseUseCase,
		updateExpenseUseCase,
		deleteExpenseUseCase,
	)

	savingController := controller.NewSavingController(
		listSavingsUseCase,
		createSavingUseCase,
		getSavingUseCase,
		updateSavingUseCase,
		deleteSavingUseCase,
	)

	savingPaymentController := controller.NewSavingPaymentController(
		listSavingPaymentsUseCase,
		createSavingPaymentUseCase,
		getSavingPaymentUseCase,
		updateSavingPaymentUseCase,
		deleteSavingPaymentUseCase,
	)

	investmentController := controller.NewInvestmentController(
		listInvestmentsUseCase,
		createInvestmentUseCase,
		getInvestmentUseCase,
		updateInvestmentUseCase,
		deleteInvestmentUseCase,
	)

	budgetPeriodController := controller.NewBudgetPeriodController(
		listBudgetPeriodsUseCase,
		createBudgetPeriodUseCase,
		getBudgetPeriodUseCase,
		updateBudgetPeriodUseCase,
		deleteBudgetPeriodUseCase,
	)

	goalController := controller.NewGoalController(
		listGoalsUseCase,
		createGoalUseCase,
		getGoalUseCase,
		updateGoalUseCase,
		deleteGoalUseCase,
	)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		userController,
		incomeController,
		expenseController,
		savingController,
		savingPaymentController,
		investmentController,
		budgetPeriodController,
		goalController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config:      cfg,
		DB:          db,
		Redis:       redisClient,
		Router:      r,
		EmailWorker: emailWorker,
	}
}

// newEmailWorker assembles the background email worker. Returns nil when the
// worker is disabled or the templates cannot be loaded; the API itself keeps
// running either way.
func newEmailWorker(cfg *config.Config, queue adapter.EmailQueueRepository) *email.Worker {
	if !cfg.Email.WorkerEnabled {
		return nil
	}

	renderer, err := templates.NewRenderer()
	if err != nil {
		slog.Error("Failed to load email templates, email worker disabled", "error", err)
		return nil
	}

	var sender adapter.EmailSender
	if cfg.Email.ResendAPIKey != "" {
		sender = email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
	} else {
		slog.Warn("RESEND_API_KEY not set, using mock email sender")
		sender = email.NewMockEmailSender()
	}

	return email.NewWorker(queue, sender, renderer, email.WorkerConfig{
		PollInterval: cfg.Email.PollInterval,
		BatchSize:    cfg.Email.BatchSize,
	})
}
