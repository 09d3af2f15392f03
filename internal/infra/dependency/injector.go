// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/finance-tracker/reports-api/config"
	"github.com/finance-tracker/reports-api/internal/application/adapter"
	"github.com/finance-tracker/reports-api/internal/application/usecase/auth"
	"github.com/finance-tracker/reports-api/internal/application/usecase/goal"
	"github.com/finance-tracker/reports-api/internal/application/usecase/report"
	"github.com/finance-tracker/reports-api/internal/application/usecase/transaction"
	"github.com/finance-tracker/reports-api/internal/infra/db"
	"github.com/finance-tracker/reports-api/internal/infra/server/router"
	"github.com/finance-tracker/reports-api/internal/integration/adapters"
	"github.com/finance-tracker/reports-api/internal/integration/cache"
	"github.com/finance-tracker/reports-api/internal/integration/email"
	"github.com/finance-tracker/reports-api/internal/integration/email/templates"
	"github.com/finance-tracker/reports-api/internal/integration/entrypoint/controller"
	"github.com/finance-tracker/reports-api/internal/integration/entrypoint/middleware"
	"github.com/finance-tracker/reports-api/internal/integration/messaging"
	"github.com/finance-tracker/reports-api/internal/integration/persistence"
)

// Infra holds the connections opened by main. Redis and Events are nil
// when the corresponding feature is disabled.
type Infra struct {
	Database *db.Database
	Redis    *redis.Client
	Events   *messaging.Client
	// Sender overrides the email sender chosen from configuration.
	Sender adapter.EmailSender
	// Clock overrides time.Now for report defaults.
	Clock report.Clock
}

// Injector holds all application dependencies.
type Injector struct {
	Config      *config.Config
	Router      *router.Router
	EmailWorker *email.Worker
	Tokens      *adapters.TokenService
	RateLimiter *middleware.RateLimiter
	// Invalidator drops cached reports for the user named by a ledger event.
	// Nil when caching is disabled.
	Invalidator *cache.Invalidator
	EmailQueue  adapter.EmailQueueRepository
}

// NewInjector wires repositories, services, use cases and controllers.
func NewInjector(cfg *config.Config, infra Infra) (*Injector, error) {
	gormDB := infra.Database.DB()

	// Repositories
	userRepo := persistence.NewUserRepository(gormDB)
	refreshTokens := persistence.NewRefreshTokenStore(gormDB)
	transactionRepo := persistence.NewTransactionRepository(gormDB)
	goalRepo := persistence.NewGoalRepository(gormDB)
	emailQueueRepo := persistence.NewEmailQueueRepository(gormDB)

	// Services
	passwords := adapters.NewBcryptHasher(adapters.DefaultBcryptCost)
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, adapters.TokenDurations{
		Access:  cfg.JWT.AccessTokenExpiry,
		Refresh: cfg.JWT.RefreshTokenExpiry,
	}, refreshTokens)
	emailService := email.NewService(emailQueueRepo, cfg.Email.AppBaseURL)
	insightService := adapters.NewGeminiService(cfg.Gemini.APIKey, cfg.Gemini.Model)

	var (
		reportCache adapter.ReportCache
		invalidator *cache.Invalidator
	)
	if infra.Redis != nil {
		reportCache = cache.NewReportCache(infra.Redis, cfg.Redis.ReportTTL)
		invalidator = cache.NewInvalidator(reportCache)
	}

	// With a broker, invalidation happens when the event is consumed.
	var publisher adapter.EventPublisher
	switch {
	case infra.Events != nil:
		publisher = infra.Events
	case invalidator != nil:
		publisher = invalidator
	}

	// Auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwords, tokenService, emailService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwords, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(userRepo, tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)
	getProfileUseCase := auth.NewGetProfileUseCase(userRepo)

	// Transaction use cases
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	getTransactionUseCase := transaction.NewGetTransactionUseCase(transactionRepo)
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, publisher)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo, publisher)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo, publisher)

	// Goal use cases
	listGoalsUseCase := goal.NewListGoalsUseCase(goalRepo)
	getGoalUseCase := goal.NewGetGoalUseCase(goalRepo)
	getGoalByPeriodUseCase := goal.NewGetGoalByPeriodUseCase(goalRepo)
	createGoalUseCase := goal.NewCreateGoalUseCase(goalRepo, publisher)
	updateGoalUseCase := goal.NewUpdateGoalUseCase(goalRepo, publisher)
	deleteGoalUseCase := goal.NewDeleteGoalUseCase(goalRepo, publisher)

	// Report use cases
	monthlyReportUseCase := report.NewGetMonthlyReportUseCase(transactionRepo, goalRepo, reportCache, infra.Clock)
	yearlyReportUseCase := report.NewGetYearlyReportUseCase(transactionRepo, goalRepo, reportCache, infra.Clock)
	emailReportUseCase := report.NewEmailMonthlyReportUseCase(monthlyReportUseCase, userRepo, emailService)
	insightsUseCase := report.NewGetInsightsUseCase(monthlyReportUseCase, insightService)

	// Controllers
	var cacheCheck controller.HealthCheck
	if infra.Redis != nil {
		cacheCheck = func(ctx context.Context) error {
			return infra.Redis.Ping(ctx).Err()
		}
	}
	healthController := controller.NewHealthController(infra.Database.HealthCheck, cacheCheck)
	authController := controller.NewAuthController(registerUseCase, loginUseCase, refreshTokenUseCase, logoutUseCase)
	userController := controller.NewUserController(getProfileUseCase)
	transactionController := controller.NewTransactionController(
		listTransactionsUseCase,
		getTransactionUseCase,
		createTransactionUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
	)
	goalController := controller.NewGoalController(
		listGoalsUseCase,
		getGoalUseCase,
		getGoalByPeriodUseCase,
		createGoalUseCase,
		updateGoalUseCase,
		deleteGoalUseCase,
	)
	reportController := controller.NewReportController(
		monthlyReportUseCase,
		yearlyReportUseCase,
		emailReportUseCase,
		insightsUseCase,
	)

	// Middleware
	loginRateLimiter := middleware.NewRateLimiter(cfg.Server.LoginAttempts, cfg.Server.LoginWindow)
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	r := router.NewRouter(
		healthController,
		authController,
		userController,
		transactionController,
		goalController,
		reportController,
		loginRateLimiter,
		authMiddleware,
	)

	// Email delivery
	renderer, err := templates.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to load email templates: %w", err)
	}
	sender := infra.Sender
	if sender == nil {
		if cfg.Email.ResendAPIKey != "" {
			resendClient, err := email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail, cfg.Email.ResendBaseURL)
			if err != nil {
				return nil, err
			}
			sender = resendClient
		} else {
			slog.Warn("RESEND_API_KEY not set, emails will only be logged")
			sender = email.NewLogSender()
		}
	}
	worker := email.NewWorker(emailQueueRepo, sender, renderer, email.WorkerConfig{
		PollInterval:  cfg.Email.PollInterval,
		BatchSize:     cfg.Email.BatchSize,
		RetentionDays: email.DefaultWorkerConfig().RetentionDays,
	})

	return &Injector{
		Config:      cfg,
		Router:      r,
		EmailWorker: worker,
		Tokens:      tokenService,
		RateLimiter: loginRateLimiter,
		Invalidator: invalidator,
		EmailQueue:  emailQueueRepo,
	}, nil
}
