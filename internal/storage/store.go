// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/splitledger/internal/models"
)

var (
	// ErrNotFound is returned (wrapped) when a group, member, expense or payment does not exist.
	ErrNotFound = errors.New("not found")

	// ErrMemberInUse is returned when removing a member that an expense or payment still references.
	ErrMemberInUse = errors.New("member is referenced by expenses or payments")
)

// Store defines the interface for ledger storage operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer.
type Store interface {
	// CreateGroup persists a new group together with its initial members.
	// IDs and CreatedAt are populated by the store when empty.
	CreateGroup(ctx context.Context, group *models.Group, members []models.Member) error

	// GetGroup retrieves a group by its ID.
	GetGroup(ctx context.Context, groupID string) (*models.Group, error)

	// ListGroups retrieves all groups, newest first.
	ListGroups(ctx context.Context) ([]*models.Group, error)

	// UpdateGroup changes a group's name and description.
	UpdateGroup(ctx context.Context, group *models.Group) error

	// DeleteGroup removes a group and everything that belongs to it.
	DeleteGroup(ctx context.Context, groupID string) error

	// AddMember adds a member to an existing group.
	AddMember(ctx context.Context, member *models.Member) error

	// UpdateMember changes a member's name and email. Identity never changes.
	UpdateMember(ctx context.Context, member *models.Member) error

	// RemoveMember deletes a member that no expense or payment references.
	// Returns ErrMemberInUse otherwise.
	RemoveMember(ctx context.Context, groupID, memberID string) error

	// ListMembers retrieves the members of a group in the order they were added.
	ListMembers(ctx context.Context, groupID string) ([]models.Member, error)

	// CreateExpense persists a new expense with its split.
	CreateExpense(ctx context.Context, expense *models.Expense) error

	// GetExpense retrieves an expense by its ID.
	GetExpense(ctx context.Context, expenseID string) (*models.Expense, error)

	// ListExpenses retrieves a group's expenses, most recent date first.
	ListExpenses(ctx context.Context, groupID string) ([]models.Expense, error)

	// UpdateExpense replaces an existing expense and its split.
	UpdateExpense(ctx context.Context, expense *models.Expense) error

	// DeleteExpense removes an expense by its ID.
	DeleteExpense(ctx context.Context, expenseID string) error

	// RecordPayment persists a transfer between two members of a group.
	RecordPayment(ctx context.Context, payment *models.Payment) error

	// ListPayments retrieves a group's recorded payments, newest first.
	ListPayments(ctx context.Context, groupID string) ([]models.Payment, error)

	// DeletePayment removes a recorded payment by its ID.
	DeletePayment(ctx context.Context, paymentID string) error

	// GetLedger reads the group, its members, expenses and payments in one
	// transaction so the result is a consistent snapshot.
	GetLedger(ctx context.Context, groupID string) (*models.Ledger, error)

	// Close releases any resources held by the store.
	Close() error
}
