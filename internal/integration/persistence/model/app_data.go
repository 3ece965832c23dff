// Package model defines database models for persistence layer.
package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/planner/internal/domain/entity"
	domainerror "github.com/finance-tracker/planner/internal/domain/error"
)

// AppDataModel represents the app_data table in the database. Each row holds
// the whole serialized dataset of one owner under a store key.
type AppDataModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	StoreKey  string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_app_data_key_owner"`
	OwnerID   string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_app_data_key_owner"`
	Payload   string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the AppDataModel.
func (AppDataModel) TableName() string {
	return "app_data"
}

// documentTimeLayout writes dates as ISO-8601 UTC with millisecond precision.
const documentTimeLayout = "2006-01-02T15:04:05.000Z07:00"

// Money is a decimal amount written as a plain JSON number.
type Money struct {
	decimal.Decimal
}

// MarshalJSON implements json.Marshaler.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.Decimal.String()), nil
}

// UnmarshalJSON accepts both JSON numbers and numeric strings.
func (m *Money) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		m.Decimal = decimal.Zero
		return nil
	}
	return m.Decimal.UnmarshalJSON(data)
}

// Timestamp is a UTC instant written as an ISO-8601 string.
type Timestamp struct {
	time.Time
}

// MarshalJSON implements json.Marshaler.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Time.UTC().Format(documentTimeLayout))
}

// UnmarshalJSON accepts RFC 3339 timestamps and bare YYYY-MM-DD dates.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02"} {
		if parsed, err := time.Parse(layout, raw); err == nil {
			t.Time = parsed.UTC()
			return nil
		}
	}
	return fmt.Errorf("invalid timestamp %q", raw)
}

// AppDataDocument is the persisted JSON shape of an owner's dataset.
type AppDataDocument struct {
	MonthlyIncome *Money                `json:"monthlyIncome"`
	Transactions  []TransactionDocument `json:"transactions"`
	Budgets       []BudgetDocument      `json:"budgets"`
	Categories    []CategoryDocument    `json:"categories"`
	SavingGoals   []SavingGoalDocument  `json:"savingGoals"`
}

// TransactionDocument is the persisted shape of a transaction.
type TransactionDocument struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Amount      Money     `json:"amount"`
	Category    string    `json:"category"`
	Date        Timestamp `json:"date"`
	Description string    `json:"description,omitempty"`
	Receipt     string    `json:"receipt,omitempty"`
}

// BudgetDocument is the persisted shape of a budget. Fields added over time are
// optional so older documents keep decoding.
type BudgetDocument struct {
	ID         string   `json:"id"`
	Category   string   `json:"category"`
	Limit      Money    `json:"limit"`
	Percentage *float64 `json:"percentage,omitempty"`
	Spent      *Money   `json:"spent,omitempty"`
	Month      string   `json:"month,omitempty"`
}

// CategoryDocument is the persisted shape of a category.
type CategoryDocument struct {
	ID             string  `json:"id"`
	Label          string  `json:"label"`
	Icon           string  `json:"icon"`
	ParentID       *string `json:"parentId,omitempty"`
	IsDefault      bool    `json:"isDefault"`
	IsDeletable    *bool   `json:"isDeletable,omitempty"`
	IsIncomeSource bool    `json:"isIncomeSource,omitempty"`
}

// SavingGoalDocument is the persisted shape of a saving goal.
type SavingGoalDocument struct {
	ID                   string     `json:"id"`
	Name                 string     `json:"name"`
	TargetAmount         Money      `json:"targetAmount"`
	SavedAmount          Money      `json:"savedAmount"`
	TargetDate           *Timestamp `json:"targetDate,omitempty"`
	PercentageAllocation *float64   `json:"percentageAllocation,omitempty"`
	Description          string     `json:"description,omitempty"`
}

// EncodeAppData serializes the dataset into its JSON document.
func EncodeAppData(data *entity.AppData) ([]byte, error) {
	doc := AppDataDocument{
		Transactions: make([]TransactionDocument, 0, len(data.Transactions)),
		Budgets:      make([]BudgetDocument, 0, len(data.Budgets)),
		Categories:   make([]CategoryDocument, 0, len(data.Categories)),
		SavingGoals:  make([]SavingGoalDocument, 0, len(data.SavingGoals)),
	}
	if data.MonthlyIncome != nil {
		doc.MonthlyIncome = &Money{*data.MonthlyIncome}
	}
	for _, t := range data.Transactions {
		doc.Transactions = append(doc.Transactions, TransactionDocument{
			ID:          t.ID,
			Type:        string(t.Type),
			Amount:      Money{t.Amount},
			Category:    t.Category,
			Date:        Timestamp{t.Date},
			Description: t.Description,
			Receipt:     t.ReceiptRef,
		})
	}
	for _, b := range data.Budgets {
		spent := Money{b.Spent}
		doc.Budgets = append(doc.Budgets, BudgetDocument{
			ID:         b.ID,
			Category:   b.Category,
			Limit:      Money{b.Limit},
			Percentage: b.Percentage,
			Spent:      &spent,
			Month:      b.Month,
		})
	}
	for _, c := range data.Categories {
		deletable := c.IsDeletable
		doc.Categories = append(doc.Categories, CategoryDocument{
			ID:             c.ID,
			Label:          c.Label,
			Icon:           string(c.Icon),
			ParentID:       c.ParentID,
			IsDefault:      c.IsDefault,
			IsDeletable:    &deletable,
			IsIncomeSource: c.IsIncomeSource,
		})
	}
	for _, g := range data.SavingGoals {
		goalDoc := SavingGoalDocument{
			ID:                   g.ID,
			Name:                 g.Name,
			TargetAmount:         Money{g.TargetAmount},
			SavedAmount:          Money{g.SavedAmount},
			PercentageAllocation: g.PercentageAllocation,
			Description:          g.Description,
		}
		if g.TargetDate != nil {
			goalDoc.TargetDate = &Timestamp{*g.TargetDate}
		}
		doc.SavingGoals = append(doc.SavingGoals, goalDoc)
	}

	payload, err := json.Marshal(doc)
	if err != nil {
		return nil, domainerror.NewStorageError(domainerror.ErrCodeEncodeFailed, "failed to encode app data", err)
	}
	return payload, nil
}

// DecodeAppData parses a stored document. Missing collections fall back to their
// defaults, the protected categories are restored when absent and budgets written
// before the spent and month fields existed are backfilled.
func DecodeAppData(payload []byte) (*entity.AppData, error) {
	var doc AppDataDocument
	if err := json.Unmarshal(payload, &doc); err != nil {
		return nil, domainerror.NewStorageError(domainerror.ErrCodeDecodeFailed, "failed to decode app data", err)
	}

	data := &entity.AppData{
		Transactions: make([]*entity.Transaction, 0, len(doc.Transactions)),
		Budgets:      make([]*entity.Budget, 0, len(doc.Budgets)),
		SavingGoals:  make([]*entity.SavingGoal, 0, len(doc.SavingGoals)),
	}
	if doc.MonthlyIncome != nil {
		income := doc.MonthlyIncome.Decimal
		data.MonthlyIncome = &income
	}

	for _, t := range doc.Transactions {
		txType := entity.TransactionType(strings.ToLower(t.Type))
		if !txType.IsValid() {
			txType = entity.TransactionTypeExpense
		}
		data.Transactions = append(data.Transactions, &entity.Transaction{
			ID:          orNewID(t.ID),
			Type:        txType,
			Amount:      t.Amount.Decimal.Abs(),
			Category:    t.Category,
			Date:        t.Date.Time.UTC(),
			Description: t.Description,
			ReceiptRef:  t.Receipt,
		})
	}

	for _, b := range doc.Budgets {
		spent := decimal.Zero
		if b.Spent != nil {
			spent = b.Spent.Decimal
		}
		data.Budgets = append(data.Budgets, &entity.Budget{
			ID:         orNewID(b.ID),
			Category:   b.Category,
			Limit:      b.Limit.Decimal,
			Percentage: b.Percentage,
			Spent:      spent,
			Month:      b.Month,
		})
	}

	data.Categories = mergeDefaultCategories(doc.Categories)

	for _, g := range doc.SavingGoals {
		goal := &entity.SavingGoal{
			ID:                   orNewID(g.ID),
			Name:                 g.Name,
			TargetAmount:         g.TargetAmount.Decimal,
			SavedAmount:          g.SavedAmount.Decimal,
			PercentageAllocation: g.PercentageAllocation,
			Description:          g.Description,
		}
		if g.TargetDate != nil {
			targetDate := g.TargetDate.Time.UTC()
			goal.TargetDate = &targetDate
		}
		data.SavingGoals = append(data.SavingGoals, goal)
	}

	return data, nil
}

// mergeDefaultCategories restores the default set for documents without categories
// and re-adds a missing protected category with its default attributes.
func mergeDefaultCategories(docs []CategoryDocument) []*entity.Category {
	defaults := entity.DefaultCategories()
	if len(docs) == 0 {
		return defaults
	}

	categories := make([]*entity.Category, 0, len(docs)+2)
	seen := make(map[string]bool, len(docs))
	for _, c := range docs {
		if c.ID == "" || seen[c.ID] {
			continue
		}
		seen[c.ID] = true

		deletable := !c.IsDefault
		if c.IsDeletable != nil {
			deletable = *c.IsDeletable
		}
		category := &entity.Category{
			ID:             c.ID,
			Label:          c.Label,
			Icon:           entity.ResolveIcon(c.Icon),
			ParentID:       c.ParentID,
			IsDefault:      c.IsDefault,
			IsDeletable:    deletable,
			IsIncomeSource: c.IsIncomeSource,
		}
		if category.IsProtected() {
			category.ParentID = nil
			category.IsDefault = true
			category.IsDeletable = false
		}
		categories = append(categories, category)
	}

	for _, d := range defaults {
		if d.IsProtected() && !seen[d.ID] {
			categories = append(categories, d)
		}
	}
	return categories
}

func orNewID(id string) string {
	if id == "" {
		return uuid.NewString()
	}
	return id
}
