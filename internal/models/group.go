package models

// Group represents a set of members who share expenses.
type Group struct {
	// ID is the unique identifier for the group (UUID format).
	ID string

	// Name is the display name of the group (e.g., "Roommates", "Ski Trip").
	Name string

	// Description is an optional free-form note about the group.
	Description string

	// CreatedAt is the Unix timestamp when the group was created.
	CreatedAt int64
}

// Member represents one participant of a group.
// Identity is ID; only Name and Email may change after creation.
type Member struct {
	// ID is the unique identifier for the member (UUID format).
	ID string

	// GroupID is the group this member belongs to.
	GroupID string

	// Name is the display name of the member.
	Name string

	// Email is optional.
	Email string

	// CreatedAt is the Unix timestamp when the member was added.
	CreatedAt int64
}

// Ledger is a consistent snapshot of a group's members, expenses and
// recorded payments, read at a single point in time.
type Ledger struct {
	Group    *Group
	Members  []Member
	Expenses []Expense
	Payments []Payment
}
