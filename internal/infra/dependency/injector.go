// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/finance-tracker/planner/config"
	"github.com/finance-tracker/planner/internal/application/adapter"
	"github.com/finance-tracker/planner/internal/application/session"
	"github.com/finance-tracker/planner/internal/application/usecase/auth"
	"github.com/finance-tracker/planner/internal/application/usecase/budget"
	"github.com/finance-tracker/planner/internal/application/usecase/category"
	"github.com/finance-tracker/planner/internal/application/usecase/data"
	"github.com/finance-tracker/planner/internal/application/usecase/goal"
	"github.com/finance-tracker/planner/internal/application/usecase/insight"
	"github.com/finance-tracker/planner/internal/application/usecase/transaction"
	"github.com/finance-tracker/planner/internal/domain/service"
	"github.com/finance-tracker/planner/internal/domain/valueobject"
	"github.com/finance-tracker/planner/internal/infra/cache"
	"github.com/finance-tracker/planner/internal/infra/server/router"
	"github.com/finance-tracker/planner/internal/integration/adapters"
	"github.com/finance-tracker/planner/internal/integration/email"
	"github.com/finance-tracker/planner/internal/integration/email/templates"
	"github.com/finance-tracker/planner/internal/integration/entrypoint/controller"
	"github.com/finance-tracker/planner/internal/integration/entrypoint/middleware"
	"github.com/finance-tracker/planner/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config      *config.Config
	DB          *gorm.DB
	Workspace   *session.Workspace
	Router      *router.Router
	EmailWorker *email.Worker
	RateLimiter *middleware.RateLimiter
}

// Options overrides the infrastructure picked from the configuration.
// Zero values select the defaults.
type Options struct {
	Redis       *redis.Client       // Enables the dataset cache when set
	EmailSender adapter.EmailSender // Defaults to Resend, or a logging sender without an API key
	Clock       adapter.Clock       // Defaults to the system clock
	DBProbe     controller.Probe    // Defaults to pinging db
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, opts Options) (*Injector, error) {
	clock := opts.Clock
	if clock == nil {
		clock = adapter.SystemClock{}
	}

	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	emailQueueRepo := persistence.NewEmailQueueRepository(db)

	store := persistence.NewAppDataStore(db, cfg.Store.Key)
	if opts.Redis != nil {
		store = persistence.NewCachedAppDataStore(store, opts.Redis, cfg.Store.Key, cfg.Redis.CacheTTL)
	}
	workspace := session.NewWorkspace(store, clock)

	// Create adapters/services
	passwordService := adapters.NewPasswordService(cfg.JWT.BcryptCost)
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, tokenRepo, clock)
	resetTokenService := adapters.NewPasswordResetTokenService(tokenRepo, clock)
	verificationTokenService := adapters.NewVerificationTokenService(tokenRepo, clock)
	emailService := email.NewService(emailQueueRepo)

	sender := opts.EmailSender
	if sender == nil {
		if cfg.Email.ResendAPIKey != "" {
			resendClient := email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
			if cfg.Email.ResendBaseURL != "" {
				if err := resendClient.SetBaseURL(cfg.Email.ResendBaseURL); err != nil {
					return nil, err
				}
			}
			sender = resendClient
		} else {
			slog.Warn("RESEND_API_KEY not set, emails will only be logged")
			sender = email.NewLogSender()
		}
	}
	renderer, err := templates.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to load email templates: %w", err)
	}
	emailWorker := email.NewWorker(emailQueueRepo, sender, renderer, email.WorkerConfig{
		PollInterval:    cfg.Email.PollInterval,
		BatchSize:       cfg.Email.BatchSize,
		RetentionDays:   cfg.Email.RetentionDays,
		CleanupInterval: cfg.Email.CleanupInterval,
	})

	policy := valueobject.DefaultAllocationPolicy()
	allocator := service.NewGoalAllocator(policy)
	identity := auth.Deps{
		Users:        userRepo,
		Passwords:    passwordService,
		Tokens:       tokenService,
		ResetTokens:  resetTokenService,
		VerifyTokens: verificationTokenService,
		Emails:       emailService,
		Clock:        clock,
		AppBaseURL:   cfg.Email.AppBaseURL,
	}

	// Create controllers
	var cacheProbe controller.Probe
	if opts.Redis != nil {
		cacheProbe = cache.Ping(opts.Redis)
	}
	dbProbe := opts.DBProbe
	if dbProbe == nil {
		dbProbe = func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		}
	}
	healthController := controller.NewHealthController(dbProbe, cacheProbe)

	authController := controller.NewAuthController(controller.AuthUseCases{
		Register:           auth.NewRegisterUserUseCase(identity),
		Login:              auth.NewLoginUserUseCase(identity),
		Refresh:            auth.NewRefreshTokenUseCase(identity),
		Logout:             auth.NewLogoutUserUseCase(identity),
		ForgotPassword:     auth.NewForgotPasswordUseCase(identity),
		ResetPassword:      auth.NewResetPasswordUseCase(identity),
		VerifyEmail:        auth.NewVerifyEmailUseCase(identity),
		ResendVerification: auth.NewResendVerificationUseCase(identity),
	})

	userController := controller.NewUserController(
		auth.NewGetCurrentUserUseCase(identity),
		auth.NewDeleteAccountUseCase(identity, workspace),
		data.NewResetDataUseCase(workspace),
	)

	categoryController := controller.NewCategoryController(
		category.NewListCategoriesUseCase(workspace),
		category.NewListParentOptionsUseCase(workspace),
		category.NewSaveCategoryUseCase(workspace),
		category.NewDeleteCategoryUseCase(workspace),
	)

	transactionController := controller.NewTransactionController(
		transaction.NewListTransactionsUseCase(workspace),
		transaction.NewCreateTransactionUseCase(workspace),
	)

	budgetController := controller.NewBudgetController(
		budget.NewListBudgetsUseCase(workspace),
		budget.NewSaveBudgetUseCase(workspace, policy),
		budget.NewSetMonthlyIncomeUseCase(workspace),
		budget.NewRecalculateBudgetsUseCase(workspace),
	)

	goalController := controller.NewGoalController(
		goal.NewListGoalsUseCase(workspace, allocator),
		goal.NewGetGoalUseCase(workspace),
		goal.NewSaveGoalUseCase(workspace, allocator),
		goal.NewDeleteGoalUseCase(workspace),
		goal.NewContributeToGoalUseCase(workspace),
	)

	insightController := controller.NewInsightController(
		insight.NewGetMonthComparisonUseCase(workspace),
		insight.NewGetCategoryBreakdownUseCase(workspace),
		insight.NewGetBudgetVsActualUseCase(workspace, policy),
		insight.NewGetAllocationSummaryUseCase(workspace, policy),
	)

	// Create middleware
	loginRateLimiter := middleware.NewRateLimiterWithConfig(cfg.RateLimit.MaxAttempts, cfg.RateLimit.Window, cfg.RateLimit.Enabled)
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		userController,
		categoryController,
		transactionController,
		budgetController,
		goalController,
		insightController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config:      cfg,
		DB:          db,
		Workspace:   workspace,
		Router:      r,
		EmailWorker: emailWorker,
		RateLimiter: loginRateLimiter,
	}, nil
}
