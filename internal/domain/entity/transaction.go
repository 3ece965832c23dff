// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction (expense or income).
type TransactionType string

const (
	TransactionTypeExpense TransactionType = "expense"
	TransactionTypeIncome  TransactionType = "income"
)

// IsValid reports whether the transaction type is one of the known types.
func (t TransactionType) IsValid() bool {
	return t == TransactionTypeExpense || t == TransactionTypeIncome
}

// Transaction represents a logged income or expense. Transactions are never mutated after creation.
type Transaction struct {
	ID          string
	Type        TransactionType
	Amount      decimal.Decimal // Always positive; Type carries the direction
	Category    string
	Date        time.Time
	Description string
	ReceiptRef  string // Opaque reference to an attached receipt
}

// NewTransaction creates a new Transaction entity with a generated ID.
func NewTransaction(
	transactionType TransactionType,
	amount decimal.Decimal,
	category string,
	date time.Time,
	description string,
	receiptRef string,
) *Transaction {
	return &Transaction{
		ID:          uuid.NewString(),
		Type:        transactionType,
		Amount:      amount.Round(2),
		Category:    category,
		Date:        date.UTC(),
		Description: description,
		ReceiptRef:  receiptRef,
	}
}

// Month returns the month key of the transaction date.
func (t *Transaction) Month() string {
	return MonthKey(t.Date)
}

// IsExpense reports whether the transaction is an expense.
func (t *Transaction) IsExpense() bool {
	return t.Type == TransactionTypeExpense
}

// Clone returns a copy of the transaction.
func (t *Transaction) Clone() *Transaction {
	clone := *t
	return &clone
}
