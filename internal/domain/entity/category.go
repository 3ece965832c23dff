// Package entity defines the core business entities for the domain layer.
package entity

import (
	"strings"

	"github.com/google/uuid"
)

// Protected category identifiers. Both always exist and can never be deleted.
const (
	IncomeCategoryID  = "income"
	SavingsCategoryID = "savings"
)

// Category represents a spending or income category. Categories form a tree through ParentID.
type Category struct {
	ID             string
	Label          string
	Icon           Icon
	ParentID       *string
	IsDefault      bool
	IsDeletable    bool
	IsIncomeSource bool
}

// NewCategory creates a new user-defined Category with a generated ID.
func NewCategory(label string, icon Icon, parentID *string, isIncomeSource bool) *Category {
	return &Category{
		ID:             uuid.NewString(),
		Label:          strings.TrimSpace(label),
		Icon:           ResolveIcon(string(icon)),
		ParentID:       parentID,
		IsDefault:      false,
		IsDeletable:    true,
		IsIncomeSource: isIncomeSource,
	}
}

// IsProtected reports whether the category is one of the reserved categories.
func (c *Category) IsProtected() bool {
	return c.ID == IncomeCategoryID || c.ID == SavingsCategoryID
}

// HasParent reports whether the category is nested under another category.
func (c *Category) HasParent() bool {
	return c.ParentID != nil && *c.ParentID != ""
}

// AcceptsIncome reports whether the category can be used as a monthly income source.
func (c *Category) AcceptsIncome() bool {
	return c.ID == IncomeCategoryID || c.IsIncomeSource
}

// Clone returns a deep copy of the category.
func (c *Category) Clone() *Category {
	clone := *c
	if c.ParentID != nil {
		parentID := *c.ParentID
		clone.ParentID = &parentID
	}
	return &clone
}

// DefaultCategories returns the categories seeded on first load.
func DefaultCategories() []*Category {
	income := IncomeCategoryID
	return []*Category{
		{ID: IncomeCategoryID, Label: "Income", Icon: IconWallet, IsDefault: true, IsDeletable: false, IsIncomeSource: true},
		{ID: SavingsCategoryID, Label: "Savings", Icon: IconPiggyBank, IsDefault: true, IsDeletable: false},
		{ID: "salary", Label: "Salary", Icon: IconBriefcase, ParentID: &income, IsDefault: true, IsDeletable: true, IsIncomeSource: true},
		{ID: "freelance", Label: "Freelance", Icon: IconLaptop, ParentID: &income, IsDefault: true, IsDeletable: true, IsIncomeSource: true},
		{ID: "housing", Label: "Housing", Icon: IconHome, IsDefault: true, IsDeletable: true},
		{ID: "groceries", Label: "Groceries", Icon: IconCart, IsDefault: true, IsDeletable: true},
		{ID: "transport", Label: "Transport", Icon: IconCar, IsDefault: true, IsDeletable: true},
		{ID: "bills", Label: "Bills & Utilities", Icon: IconReceipt, IsDefault: true, IsDeletable: true},
		{ID: "dining", Label: "Dining Out", Icon: IconUtensils, IsDefault: true, IsDeletable: true},
		{ID: "entertainment", Label: "Entertainment", Icon: IconFilm, IsDefault: true, IsDeletable: true},
		{ID: "health", Label: "Health", Icon: IconHeart, IsDefault: true, IsDeletable: true},
		{ID: "shopping", Label: "Shopping", Icon: IconBag, IsDefault: true, IsDeletable: true},
	}
}
