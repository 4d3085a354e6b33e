package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the calendar date format used for Expense.Date on the wire and in storage.
const DateLayout = "2006-01-02"

// SplitType selects how an expense amount is divided among SplitWith.
type SplitType string

const (
	// SplitEqual divides the amount evenly among SplitWith.
	SplitEqual SplitType = "equal"
	// SplitCustom uses the explicit per-member Shares.
	SplitCustom SplitType = "custom"
)

// Valid reports whether t is a known split type.
func (t SplitType) Valid() bool {
	return t == SplitEqual || t == SplitCustom
}

// Expense represents an amount paid by one member on behalf of several.
type Expense struct {
	// ID is the unique identifier for the expense (UUID format).
	ID string

	// GroupID is the group this expense belongs to.
	GroupID string

	// Description is what the money was spent on (e.g., "Groceries").
	Description string

	// Amount is the total paid. Must be positive.
	Amount decimal.Decimal

	// PaidBy is the ID of the member who paid.
	PaidBy string

	// SplitType selects how Amount is divided.
	SplitType SplitType

	// SplitWith is the set of member IDs who benefited from the expense.
	// The payer is included only if they owe a share themselves.
	SplitWith []string

	// Shares maps member ID to the exact amount owed. Required for
	// SplitCustom, where its keys must equal SplitWith and its values
	// must sum to Amount. Ignored for SplitEqual.
	Shares map[string]decimal.Decimal

	// Date is the calendar date of the expense (UTC midnight).
	Date time.Time

	// Category is an optional label (e.g., "Food", "Transport").
	Category string

	// CreatedAt is the Unix timestamp when the expense was recorded.
	CreatedAt int64
}
