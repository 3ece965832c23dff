package budget

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-tracker/planner/internal/domain/entity"
	domainerror "github.com/finance-tracker/planner/internal/domain/error"
)

func TestSetMonthlyIncome_LogsIncomeTransaction(t *testing.T) {
	f := newFixture()

	out, err := f.setIncome.Execute(context.Background(), SetMonthlyIncomeInput{
		OwnerID:        owner,
		Amount:         decimal.RequireFromString("2500.499"),
		SourceCategory: "salary",
	})
	require.NoError(t, err)

	assert.Equal(t, "2500.50", out.MonthlyIncome.StringFixed(2))
	assert.Equal(t, entity.TransactionTypeIncome, out.Transaction.Type)
	assert.Equal(t, "salary", out.Transaction.Category)
	assert.Equal(t, now, out.Transaction.Date)

	data := f.stored(t)
	require.Len(t, data.Transactions, 1)
	assert.Equal(t, incomeDescription, data.Transactions[0].Description)

	// The savings row takes everything while nothing else is allocated
	assertLimit(t, data, "savings", "2500.50")
}

func TestSetMonthlyIncome_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		amount   string
		source   string
		sentinel error
	}{
		{name: "zero amount", amount: "0", sentinel: domainerror.ErrInvalidAmount},
		{name: "negative amount", amount: "-10", sentinel: domainerror.ErrInvalidAmount},
		{name: "rounds to zero", amount: "0.004", sentinel: domainerror.ErrInvalidAmount},
		{name: "expense category", amount: "100", source: "groceries", sentinel: domainerror.ErrInvalidCategory},
		{name: "unknown category", amount: "100", source: "lottery", sentinel: domainerror.ErrInvalidCategory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()

			_, err := f.setIncome.Execute(context.Background(), SetMonthlyIncomeInput{
				OwnerID:        owner,
				Amount:         decimal.RequireFromString(tt.amount),
				SourceCategory: tt.source,
			})

			assert.ErrorIs(t, err, tt.sentinel)
			assert.Zero(t, f.store.SaveCount)
		})
	}
}
