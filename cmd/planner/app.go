package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/finance-tracker/planner/config"
	"github.com/finance-tracker/planner/internal/application/adapter"
	"github.com/finance-tracker/planner/internal/application/session"
	"github.com/finance-tracker/planner/internal/application/usecase/budget"
	"github.com/finance-tracker/planner/internal/application/usecase/category"
	"github.com/finance-tracker/planner/internal/application/usecase/data"
	"github.com/finance-tracker/planner/internal/application/usecase/goal"
	"github.com/finance-tracker/planner/internal/application/usecase/insight"
	"github.com/finance-tracker/planner/internal/application/usecase/transaction"
	"github.com/finance-tracker/planner/internal/domain/service"
	"github.com/finance-tracker/planner/internal/domain/valueobject"
	"github.com/finance-tracker/planner/internal/infra/cache"
	"github.com/finance-tracker/planner/internal/infra/db"
	"github.com/finance-tracker/planner/internal/integration/persistence"
	"github.com/finance-tracker/planner/internal/integration/persistence/model"
)

// cliState carries the configuration shared by all commands of one run.
type cliState struct {
	v       *viper.Viper
	cfgFile string
	clock   adapter.Clock // Defaults to the system clock
}

// app holds the use cases the commands drive.
type app struct {
	owner string

	listBudgets    *budget.ListBudgetsUseCase
	saveBudget     *budget.SaveBudgetUseCase
	setIncome      *budget.SetMonthlyIncomeUseCase
	recalculate    *budget.RecalculateBudgetsUseCase
	createTx       *transaction.CreateTransactionUseCase
	listTx         *transaction.ListTransactionsUseCase
	listCategories *category.ListCategoriesUseCase
	saveCategory   *category.SaveCategoryUseCase
	deleteCategory *category.DeleteCategoryUseCase
	listGoals      *goal.ListGoalsUseCase
	saveGoal       *goal.SaveGoalUseCase
	deleteGoal     *goal.DeleteGoalUseCase
	contribute     *goal.ContributeToGoalUseCase
	comparison     *insight.GetMonthComparisonUseCase
	breakdown      *insight.GetCategoryBreakdownUseCase
	budgetVsActual *insight.GetBudgetVsActualUseCase
	allocation     *insight.GetAllocationSummaryUseCase
	resetData      *data.ResetDataUseCase
}

// withApp opens the dataset, runs fn and closes the database again.
func (s *cliState) withApp(cmd *cobra.Command, fn func(ctx context.Context, a *app) error) error {
	database, err := db.NewSQLiteConnection(&config.DatabaseConfig{
		Driver:     db.DriverSQLite,
		SQLitePath: s.v.GetString("db"),
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Warn("Failed to close database", "error", err)
		}
	}()

	if err := database.AutoMigrate(&model.AppDataModel{}); err != nil {
		return err
	}

	store := persistence.NewAppDataStore(database.DB(), s.v.GetString("store.key"))
	if redisURL := s.v.GetString("redis.url"); redisURL != "" {
		client, err := cache.NewRedisClient(&config.RedisConfig{Enabled: true, URL: redisURL})
		if err != nil {
			return fmt.Errorf("failed to connect to redis: %w", err)
		}
		defer client.Close()
		store = persistence.NewCachedAppDataStore(store, client, s.v.GetString("store.key"), s.v.GetDuration("redis.ttl"))
	}

	clock := s.clock
	if clock == nil {
		clock = adapter.SystemClock{}
	}

	return fn(cmd.Context(), newApp(session.NewWorkspace(store, clock), s.v.GetString("owner")))
}

func newApp(ws *session.Workspace, owner string) *app {
	policy := valueobject.DefaultAllocationPolicy()
	allocator := service.NewGoalAllocator(policy)

	return &app{
		owner:          owner,
		listBudgets:    budget.NewListBudgetsUseCase(ws),
		saveBudget:     budget.NewSaveBudgetUseCase(ws, policy),
		setIncome:      budget.NewSetMonthlyIncomeUseCase(ws),
		recalculate:    budget.NewRecalculateBudgetsUseCase(ws),
		createTx:       transaction.NewCreateTransactionUseCase(ws),
		listTx:         transaction.NewListTransactionsUseCase(ws),
		listCategories: category.NewListCategoriesUseCase(ws),
		saveCategory:   category.NewSaveCategoryUseCase(ws),
		deleteCategory: category.NewDeleteCategoryUseCase(ws),
		listGoals:      goal.NewListGoalsUseCase(ws, allocator),
		saveGoal:       goal.NewSaveGoalUseCase(ws, allocator),
		deleteGoal:     goal.NewDeleteGoalUseCase(ws),
		contribute:     goal.NewContributeToGoalUseCase(ws),
		comparison:     insight.NewGetMonthComparisonUseCase(ws),
		breakdown:      insight.NewGetCategoryBreakdownUseCase(ws),
		budgetVsActual: insight.NewGetBudgetVsActualUseCase(ws, policy),
		allocation:     insight.NewGetAllocationSummaryUseCase(ws, policy),
		resetData:      data.NewResetDataUseCase(ws),
	}
}
