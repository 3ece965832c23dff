package budget

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
	"github.com/finance-tracker/planner/internal/domain/valueobject"
)

const owner = "owner-1"

var now = time.Date(2024, time.May, 15, 9, 30, 0, 0, time.UTC)

type fixture struct {
	store      *sessiontest.MemoryStore
	workspace  *session.Workspace
	saveBudget *SaveBudgetUseCase
	setIncome  *SetMonthlyIncomeUseCase
	list       *ListBudgetsUseCase
	recalc     *RecalculateBudgetsUseCase
}

func newFixture() *fixture {
	store := sessiontest.NewMemoryStore()
	ws := session.NewWorkspace(store, sessiontest.FixedClock{Time: now})
	return &fixture{
		store:      store,
		workspace:  ws,
		saveBudget: NewSaveBudgetUseCase(ws, valueobject.DefaultAllocationPolicy()),
		setIncome:  NewSetMonthlyIncomeUseCase(ws),
		list:       NewListBudgetsUseCase(ws),
		recalc:     NewRecalculateBudgetsUseCase(ws),
	}
}

func (f *fixture) income(t *testing.T, amount string) *SetMonthlyIncomeOutput {
	t.Helper()
	out, err := f.setIncome.Execute(context.Background(), SetMonthlyIncomeInput{
		OwnerID: owner,
		Amount:  decimal.RequireFromString(amount),
	})
	require.NoError(t, err)
	return out
}

func (f *fixture) percentBudget(t *testing.T, category string, p float64) *SaveBudgetOutput {
	t.Helper()
	out, err := f.saveBudget.Execute(context.Background(), SaveBudgetInput{
		OwnerID:    owner,
		Category:   category,
		Percentage: &p,
	})
	require.NoError(t, err)
	return out
}

func (f *fixture) stored(t *testing.T) *entity.AppData {
	t.Helper()
	data := f.store.Get(owner)
	require.NotNil(t, data)
	return data
}

func assertLimit(t *testing.T, data *entity.AppData, category, want string) {
	t.Helper()
	b := data.FindBudget(category, "2024-05")
	require.NotNil(t, b, "budget for %s", category)
	assert.Equal(t, decimal.RequireFromString(want).StringFixed(2), b.Limit.StringFixed(2), category)
}
