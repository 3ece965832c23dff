package transaction

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-tracker/planner/internal/application/session"
	"github.com/finance-tracker/planner/internal/application/session/sessiontest"
	"github.com/finance-tracker/planner/internal/domain/entity"
	domainerror "github.com/finance-tracker/planner/internal/domain/error"
)

const owner = "owner-1"

var now = time.Date(2024, time.May, 15, 9, 30, 0, 0, time.UTC)

func pct(p float64) *float64 {
	return &p
}

// seed stores income 2000 with Groceries at 20% and Housing at 30% for May 2024.
func seed(t *testing.T) (*sessiontest.MemoryStore, *session.Workspace) {
	t.Helper()
	store := sessiontest.NewMemoryStore()
	ws := session.NewWorkspace(store, sessiontest.FixedClock{Time: now})

	income := decimal.NewFromInt(2000)
	data := entity.NewDefaultAppData()
	data.MonthlyIncome = &income
	data.Budgets = []*entity.Budget{
		entity.NewBudget("groceries", decimal.NewFromInt(400), pct(20), "2024-05"),
		entity.NewBudget("housing", decimal.NewFromInt(600), pct(30), "2024-05"),
	}
	require.True(t, ws.Recompute(data))
	store.Put(owner, data)

	return store, ws
}

func TestCreateTransaction_UpdatesBudgetSpent(t *testing.T) {
	store, ws := seed(t)
	uc := NewCreateTransactionUseCase(ws)

	out, err := uc.Execute(context.Background(), CreateTransactionInput{
		OwnerID:     owner,
		Type:        entity.TransactionTypeExpense,
		Amount:      decimal.NewFromInt(50),
		Category:    "groceries",
		Description: "  Weekly shop ",
	})
	require.NoError(t, err)

	assert.Equal(t, "Weekly shop", out.Transaction.Description)
	assert.Equal(t, now, out.Transaction.Date)

	data := store.Get(owner)
	require.Len(t, data.Transactions, 1)
	assert.Equal(t, "50.00", data.FindBudget("groceries", "2024-05").Spent.StringFixed(2))

	savings := data.FindBudget("savings", "2024-05")
	require.NotNil(t, savings)
	assert.Equal(t, "1000.00", savings.Limit.StringFixed(2))
	assert.True(t, savings.Spent.IsZero())
}

func TestCreateTransaction_BudgetRequired(t *testing.T) {
	store, ws := seed(t)
	uc := NewCreateTransactionUseCase(ws)

	_, err := uc.Execute(context.Background(), CreateTransactionInput{
		OwnerID:  owner,
		Type:     entity.TransactionTypeExpense,
		Amount:   decimal.NewFromInt(10),
		Category: "transport",
	})

	require.ErrorIs(t, err, domainerror.ErrBudgetRequired)
	var txnErr *domainerror.TransactionError
	require.ErrorAs(t, err, &txnErr)
	assert.Equal(t, domainerror.ErrCodeBudgetRequired, txnErr.Code)

	assert.Empty(t, store.Get(owner).Transactions)
	assert.Zero(t, store.SaveCount)
}

func TestCreateTransaction_SavingsNeedsNoBudget(t *testing.T) {
	store, ws := seed(t)
	uc := NewCreateTransactionUseCase(ws)

	_, err := uc.Execute(context.Background(), CreateTransactionInput{
		OwnerID:  owner,
		Type:     entity.TransactionTypeExpense,
		Amount:   decimal.RequireFromString("120.25"),
		Category: "savings",
	})
	require.NoError(t, err)

	savings := store.Get(owner).FindBudget("savings", "2024-05")
	assert.Equal(t, "120.25", savings.Spent.StringFixed(2))
}

func TestCreateTransaction_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		input    CreateTransactionInput
		sentinel error
	}{
		{
			name:     "zero amount",
			input:    CreateTransactionInput{Type: entity.TransactionTypeExpense, Amount: decimal.Zero, Category: "groceries"},
			sentinel: domainerror.ErrInvalidAmount,
		},
		{
			name:     "negative amount",
			input:    CreateTransactionInput{Type: entity.TransactionTypeExpense, Amount: decimal.NewFromInt(-3), Category: "groceries"},
			sentinel: domainerror.ErrInvalidAmount,
		},
		{
			name:     "rounds to zero",
			input:    CreateTransactionInput{Type: entity.TransactionTypeExpense, Amount: decimal.RequireFromString("0.004"), Category: "groceries"},
			sentinel: domainerror.ErrInvalidAmount,
		},
		{
			name:     "unknown type",
			input:    CreateTransactionInput{Type: "transfer", Amount: decimal.NewFromInt(3), Category: "groceries"},
			sentinel: domainerror.ErrInvalidTransactionType,
		},
		{
			name:     "unknown category",
			input:    CreateTransactionInput{Type: entity.TransactionTypeExpense, Amount: decimal.NewFromInt(3), Category: "yachts"},
			sentinel: domainerror.ErrCategoryNotFound,
		},
		{
			name:     "expense on income source",
			input:    CreateTransactionInput{Type: entity.TransactionTypeExpense, Amount: decimal.NewFromInt(3), Category: "salary"},
			sentinel: domainerror.ErrInvalidCategory,
		},
		{
			name:     "income on expense category",
			input:    CreateTransactionInput{Type: entity.TransactionTypeIncome, Amount: decimal.NewFromInt(3), Category: "groceries"},
			sentinel: domainerror.ErrInvalidCategory,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, ws := seed(t)
			uc := NewCreateTransactionUseCase(ws)

			tt.input.OwnerID = owner
			_, err := uc.Execute(context.Background(), tt.input)

			assert.ErrorIs(t, err, tt.sentinel)
			assert.Zero(t, store.SaveCount)
		})
	}
}

func TestCreateTransaction_KeepsNewestFirst(t *testing.T) {
	store, ws := seed(t)
	uc := NewCreateTransactionUseCase(ws)

	for _, day := range []int{3, 20, 11} {
		_, err := uc.Execute(context.Background(), CreateTransactionInput{
			OwnerID:  owner,
			Type:     entity.TransactionTypeExpense,
			Amount:   decimal.NewFromInt(int64(day)),
			Category: "groceries",
			Date:     time.Date(2024, time.May, day, 8, 0, 0, 0, time.UTC),
		})
		require.NoError(t, err)
	}

	data := store.Get(owner)
	require.Len(t, data.Transactions, 3)
	assert.Equal(t, 20, data.Transactions[0].Date.Day())
	assert.Equal(t, 11, data.Transactions[1].Date.Day())
	assert.Equal(t, 3, data.Transactions[2].Date.Day())
	assert.Equal(t, "34.00", data.FindBudget("groceries", "2024-05").Spent.StringFixed(2))
}
