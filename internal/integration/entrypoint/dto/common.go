// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error      string   `json:"error"`
	Code       string   `json:"code,omitempty"`
	Details    string   `json:"details,omitempty"`
	MaxAllowed *float64 `json:"max_allowed,omitempty"`
}

// MessageResponse represents a generic message response.
type MessageResponse struct {
	Message string `json:"message"`
}

// FormatMoney renders an amount with two decimals.
func FormatMoney(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}

// FormatOptionalMoney renders an optional amount, keeping nil as nil.
func FormatOptionalMoney(amount *decimal.Decimal) *string {
	if amount == nil {
		return nil
	}
	formatted := FormatMoney(*amount)
	return &formatted
}

// FormatDate renders a calendar date as YYYY-MM-DD.
func FormatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.UTC().Format("2006-01-02")
	return &formatted
}

// ParseDate accepts RFC 3339 timestamps and bare YYYY-MM-DD dates.
func ParseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.UTC(), nil
	}
	return time.ParseInLocation("2006-01-02", value, time.UTC)
}
