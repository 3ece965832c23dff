package entity

import "github.com/shopspring/decimal"

// AppData is the aggregate root holding all financial state of one owner.
// It is treated as immutable: mutations operate on a Clone and replace the whole aggregate.
type AppData struct {
	MonthlyIncome *decimal.Decimal // nil means income is not configured yet
	Transactions  []*Transaction
	Budgets       []*Budget
	Categories    []*Category
	SavingGoals   []*SavingGoal
}

// NewDefaultAppData returns the dataset used on first load and after a reset.
func NewDefaultAppData() *AppData {
	return &AppData{
		MonthlyIncome: nil,
		Transactions:  []*Transaction{},
		Budgets:       []*Budget{},
		Categories:    DefaultCategories(),
		SavingGoals:   []*SavingGoal{},
	}
}

// HasIncome reports whether a monthly income has been configured.
func (d *AppData) HasIncome() bool {
	return d.MonthlyIncome != nil
}

// Income returns the monthly income, or zero when it is not configured.
func (d *AppData) Income() decimal.Decimal {
	if d.MonthlyIncome == nil {
		return decimal.Zero
	}
	return *d.MonthlyIncome
}

// FindCategory returns the category with the given ID, or nil.
func (d *AppData) FindCategory(id string) *Category {
	for _, c := range d.Categories {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// FindBudget returns the budget for the given category and month, or nil.
func (d *AppData) FindBudget(category, month string) *Budget {
	for _, b := range d.Budgets {
		if b.Category == category && b.EffectiveMonth(month) == month {
			return b
		}
	}
	return nil
}

// FindGoal returns the saving goal with the given ID, or nil.
func (d *AppData) FindGoal(id string) *SavingGoal {
	for _, g := range d.SavingGoals {
		if g.ID == id {
			return g
		}
	}
	return nil
}

// CategoryLabel resolves a category label, falling back to the raw ID.
func (d *AppData) CategoryLabel(id string) string {
	if c := d.FindCategory(id); c != nil && c.Label != "" {
		return c.Label
	}
	return id
}

// Clone returns a deep copy of the aggregate.
func (d *AppData) Clone() *AppData {
	clone := &AppData{
		Transactions: make([]*Transaction, len(d.Transactions)),
		Budgets:      make([]*Budget, len(d.Budgets)),
		Categories:   make([]*Category, len(d.Categories)),
		SavingGoals:  make([]*SavingGoal, len(d.SavingGoals)),
	}
	if d.MonthlyIncome != nil {
		income := *d.MonthlyIncome
		clone.MonthlyIncome = &income
	}
	for i, t := range d.Transactions {
		clone.Transactions[i] = t.Clone()
	}
	for i, b := range d.Budgets {
		clone.Budgets[i] = b.Clone()
	}
	for i, c := range d.Categories {
		clone.Categories[i] = c.Clone()
	}
	for i, g := range d.SavingGoals {
		clone.SavingGoals[i] = g.Clone()
	}
	return clone
}
