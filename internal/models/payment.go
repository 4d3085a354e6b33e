package models

import "github.com/shopspring/decimal"

// Payment represents a recorded transfer between group members to clear debts.
type Payment struct {
	// ID is the unique identifier for the payment (UUID format).
	ID string

	// GroupID is the group this payment belongs to.
	GroupID string

	// FromMemberID is the member who paid (debtor settling up).
	FromMemberID string

	// ToMemberID is the member who received payment (creditor being paid).
	ToMemberID string

	// Amount is the payment amount.
	Amount decimal.Decimal

	// CreatedAt is the Unix timestamp when the payment was recorded.
	CreatedAt int64

	// Note is an optional description for the payment.
	Note string
}
