package model

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-tracker/planner/internal/domain/entity"
	domainerror "github.com/finance-tracker/planner/internal/domain/error"
)

func TestEncodeAppData_WritesNumbersAndUTCDates(t *testing.T) {
	income := decimal.RequireFromString("3000.50")
	percentage := 25.0
	date := time.Date(2024, 5, 3, 14, 0, 0, 0, time.FixedZone("BRT", -3*3600))

	data := entity.NewDefaultAppData()
	data.MonthlyIncome = &income
	data.Transactions = []*entity.Transaction{{
		ID:       "t1",
		Type:     entity.TransactionTypeExpense,
		Amount:   decimal.RequireFromString("42.10"),
		Category: "groceries",
		Date:     date,
	}}
	data.Budgets = []*entity.Budget{{
		ID: "b1", Category: "groceries", Limit: decimal.RequireFromString("750.13"),
		Percentage: &percentage, Spent: decimal.Zero, Month: "2024-05",
	}}

	payload, err := EncodeAppData(data)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(payload, &raw))
	assert.Equal(t, 3000.5, raw["monthlyIncome"])

	tx := raw["transactions"].([]any)[0].(map[string]any)
	assert.Equal(t, 42.1, tx["amount"])
	assert.Equal(t, "2024-05-03T17:00:00.000Z", tx["date"])

	budget := raw["budgets"].([]any)[0].(map[string]any)
	assert.Equal(t, 750.13, budget["limit"])
	assert.Equal(t, 25.0, budget["percentage"])
	assert.Equal(t, "2024-05", budget["month"])
}

func TestAppDataDocument_RoundTripKeepsValues(t *testing.T) {
	income := decimal.RequireFromString("2000")
	target := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	allocation := 12.5

	data := entity.NewDefaultAppData()
	data.MonthlyIncome = &income
	data.SavingGoals = []*entity.SavingGoal{{
		ID: "g1", Name: "Bike", TargetAmount: decimal.RequireFromString("1200"),
		SavedAmount: decimal.RequireFromString("300.01"), TargetDate: &target,
		PercentageAllocation: &allocation,
	}}

	payload, err := EncodeAppData(data)
	require.NoError(t, err)
	decoded, err := DecodeAppData(payload)
	require.NoError(t, err)

	require.NotNil(t, decoded.MonthlyIncome)
	assert.True(t, income.Equal(*decoded.MonthlyIncome))
	require.Len(t, decoded.SavingGoals, 1)
	goal := decoded.SavingGoals[0]
	assert.True(t, goal.SavedAmount.Equal(decimal.RequireFromString("300.01")))
	assert.Equal(t, target, *goal.TargetDate)
	assert.Equal(t, 12.5, goal.Allocation())
	assert.Len(t, decoded.Categories, len(entity.DefaultCategories()))
}

func TestDecodeAppData_BackfillsLegacyDocuments(t *testing.T) {
	payload := []byte(`{
		"monthlyIncome": null,
		"transactions": [{"id": "t1", "type": "expense", "amount": "12.5", "category": "dining", "date": "2024-04-02"}],
		"budgets": [{"id": "", "category": "dining", "limit": 100}],
		"categories": [
			{"id": "dining", "label": "Dining Out", "icon": "utensils", "isDefault": true},
			{"id": "pets", "label": "Pets", "icon": "not-an-icon", "isDefault": false},
			{"id": "savings", "label": "Savings", "icon": "piggy-bank", "parentId": "dining", "isDefault": true, "isDeletable": true}
		]
	}`)

	data, err := DecodeAppData(payload)
	require.NoError(t, err)

	assert.Nil(t, data.MonthlyIncome)
	require.Len(t, data.Transactions, 1)
	assert.Equal(t, time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC), data.Transactions[0].Date)
	assert.True(t, data.Transactions[0].Amount.Equal(decimal.RequireFromString("12.5")))

	require.Len(t, data.Budgets, 1)
	assert.NotEmpty(t, data.Budgets[0].ID)
	assert.True(t, data.Budgets[0].Spent.IsZero())
	assert.Empty(t, data.Budgets[0].Month)

	byID := map[string]*entity.Category{}
	for _, c := range data.Categories {
		byID[c.ID] = c
	}
	assert.False(t, byID["dining"].IsDeletable)
	assert.True(t, byID["pets"].IsDeletable)
	assert.Equal(t, entity.ResolveIcon("not-an-icon"), byID["pets"].Icon)

	require.Contains(t, byID, entity.SavingsCategoryID)
	assert.Nil(t, byID[entity.SavingsCategoryID].ParentID)
	assert.False(t, byID[entity.SavingsCategoryID].IsDeletable)

	require.Contains(t, byID, entity.IncomeCategoryID)
	assert.True(t, byID[entity.IncomeCategoryID].IsIncomeSource)

	assert.Empty(t, data.SavingGoals)
}

func TestDecodeAppData_EmptyCategoriesUseDefaults(t *testing.T) {
	data, err := DecodeAppData([]byte(`{"monthlyIncome": 1500}`))
	require.NoError(t, err)

	assert.True(t, data.Income().Equal(decimal.NewFromInt(1500)))
	assert.Len(t, data.Categories, len(entity.DefaultCategories()))
	assert.NotNil(t, data.Transactions)
	assert.NotNil(t, data.Budgets)
}

func TestDecodeAppData_InvalidPayload(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{name: "not json", payload: "{broken"},
		{name: "wrong type", payload: `{"transactions": "nope"}`},
		{name: "bad date", payload: `{"transactions": [{"id": "t1", "date": "yesterday"}]}`},
		{name: "bad amount", payload: `{"budgets": [{"id": "b1", "limit": "lots"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := DecodeAppData([]byte(tt.payload))

			assert.Nil(t, data)
			assert.True(t, errors.Is(err, domainerror.ErrStorage))

			var storageErr *domainerror.StorageError
			require.True(t, errors.As(err, &storageErr))
			assert.Equal(t, domainerror.ErrCodeDecodeFailed, storageErr.Code)
		})
	}
}
