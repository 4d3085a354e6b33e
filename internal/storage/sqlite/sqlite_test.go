package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/storage"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err, "failed to create store")
	t.Cleanup(func() { store.Close() })
	return store
}

// seedGroup creates a group with the named members and returns them in order.
func seedGroup(t *testing.T, store *SQLiteStore, names ...string) (*models.Group, []models.Member) {
	t.Helper()
	group := &models.Group{Name: "Flat 4B", Description: "rent and groceries"}
	members := make([]models.Member, len(names))
	for i, name := range names {
		members[i] = models.Member{Name: name}
	}
	require.NoError(t, store.CreateGroup(context.Background(), group, members))
	return group, members
}

func date(s string) time.Time {
	d, err := time.Parse(models.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestSQLiteStore_Groups(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	t.Run("CreateGroup generates IDs for group and members", func(t *testing.T) {
		group, members := seedGroup(t, store, "Alice", "Bob")

		assert.NotEmpty(t, group.ID)
		assert.NotZero(t, group.CreatedAt)
		for _, m := range members {
			assert.NotEmpty(t, m.ID)
			assert.Equal(t, group.ID, m.GroupID)
		}
	})

	t.Run("GetGroup round trip", func(t *testing.T) {
		group, _ := seedGroup(t, store, "Carol")

		got, err := store.GetGroup(ctx, group.ID)
		require.NoError(t, err)
		assert.Equal(t, group.Name, got.Name)
		assert.Equal(t, group.Description, got.Description)
		assert.Equal(t, group.CreatedAt, got.CreatedAt)
	})

	t.Run("GetGroup returns ErrNotFound", func(t *testing.T) {
		_, err := store.GetGroup(ctx, "nonexistent-id")
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("UpdateGroup changes name", func(t *testing.T) {
		group, _ := seedGroup(t, store, "Dan")
		group.Name = "Renamed"
		require.NoError(t, store.UpdateGroup(ctx, group))

		got, err := store.GetGroup(ctx, group.ID)
		require.NoError(t, err)
		assert.Equal(t, "Renamed", got.Name)

		err = store.UpdateGroup(ctx, &models.Group{ID: "nonexistent-id", Name: "x"})
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("ListGroups includes created groups", func(t *testing.T) {
		groups, err := store.ListGroups(ctx)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, len(groups), 3)
	})

	t.Run("DeleteGroup cascades", func(t *testing.T) {
		group, members := seedGroup(t, store, "Eve", "Frank")
		require.NoError(t, store.CreateExpense(ctx, &models.Expense{
			GroupID: group.ID, Description: "Taxi", Amount: decimal.NewFromInt(20),
			PaidBy: members[0].ID, SplitType: models.SplitEqual,
			SplitWith: []string{members[0].ID, members[1].ID}, Date: date("2024-05-01"),
		}))

		require.NoError(t, store.DeleteGroup(ctx, group.ID))

		_, err := store.GetLedger(ctx, group.ID)
		assert.ErrorIs(t, err, storage.ErrNotFound)
		assert.ErrorIs(t, store.DeleteGroup(ctx, group.ID), storage.ErrNotFound)
	})
}

func TestSQLiteStore_Members(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	group, members := seedGroup(t, store, "Alice", "Bob")

	t.Run("AddMember appends in order", func(t *testing.T) {
		carol := &models.Member{GroupID: group.ID, Name: "Carol", Email: "carol@example.com"}
		require.NoError(t, store.AddMember(ctx, carol))

		got, err := store.ListMembers(ctx, group.ID)
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, "Carol", got[2].Name)
		assert.Equal(t, "carol@example.com", got[2].Email)
	})

	t.Run("AddMember to unknown group", func(t *testing.T) {
		err := store.AddMember(ctx, &models.Member{GroupID: "nonexistent-id", Name: "Ghost"})
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("UpdateMember keeps identity", func(t *testing.T) {
		m := members[1]
		m.Name = "Robert"
		m.Email = "bob@example.com"
		require.NoError(t, store.UpdateMember(ctx, &m))

		got, err := store.ListMembers(ctx, group.ID)
		require.NoError(t, err)
		assert.Equal(t, members[1].ID, got[1].ID)
		assert.Equal(t, "Robert", got[1].Name)
	})

	t.Run("RemoveMember refuses referenced member", func(t *testing.T) {
		require.NoError(t, store.CreateExpense(ctx, &models.Expense{
			GroupID: group.ID, Description: "Lunch", Amount: decimal.NewFromInt(12),
			PaidBy: members[0].ID, SplitType: models.SplitEqual,
			SplitWith: []string{members[1].ID}, Date: date("2024-05-02"),
		}))

		err := store.RemoveMember(ctx, group.ID, members[1].ID)
		assert.ErrorIs(t, err, storage.ErrMemberInUse)
	})

	t.Run("RemoveMember deletes unreferenced member", func(t *testing.T) {
		dan := &models.Member{GroupID: group.ID, Name: "Dan"}
		require.NoError(t, store.AddMember(ctx, dan))
		require.NoError(t, store.RemoveMember(ctx, group.ID, dan.ID))

		assert.ErrorIs(t, store.RemoveMember(ctx, group.ID, dan.ID), storage.ErrNotFound)
	})
}

func TestSQLiteStore_Expenses(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	group, members := seedGroup(t, store, "Alice", "Bob", "Charlie")
	a, b, c := members[0].ID, members[1].ID, members[2].ID

	t.Run("custom split round trip keeps shares and order", func(t *testing.T) {
		expense := &models.Expense{
			GroupID:     group.ID,
			Description: "Concert tickets",
			Amount:      decimal.RequireFromString("120.50"),
			PaidBy:      b,
			SplitType:   models.SplitCustom,
			SplitWith:   []string{c, a},
			Shares: map[string]decimal.Decimal{
				c: decimal.RequireFromString("80.25"),
				a: decimal.RequireFromString("40.25"),
			},
			Date:     date("2024-06-10"),
			Category: "Entertainment",
		}
		require.NoError(t, store.CreateExpense(ctx, expense))
		require.NotEmpty(t, expense.ID)

		got, err := store.GetExpense(ctx, expense.ID)
		require.NoError(t, err)
		assert.Equal(t, expense.Description, got.Description)
		assert.True(t, expense.Amount.Equal(got.Amount), "amount %s", got.Amount)
		assert.Equal(t, b, got.PaidBy)
		assert.Equal(t, models.SplitCustom, got.SplitType)
		assert.Equal(t, []string{c, a}, got.SplitWith)
		assert.True(t, got.Shares[c].Equal(decimal.RequireFromString("80.25")))
		assert.True(t, got.Shares[a].Equal(decimal.RequireFromString("40.25")))
		assert.True(t, expense.Date.Equal(got.Date))
		assert.Equal(t, "Entertainment", got.Category)
	})

	t.Run("equal split has no shares", func(t *testing.T) {
		expense := &models.Expense{
			GroupID: group.ID, Description: "Pizza", Amount: decimal.NewFromInt(30),
			PaidBy: a, SplitType: models.SplitEqual, SplitWith: []string{a, b, c},
			Date: date("2024-06-12"),
		}
		require.NoError(t, store.CreateExpense(ctx, expense))

		got, err := store.GetExpense(ctx, expense.ID)
		require.NoError(t, err)
		assert.Nil(t, got.Shares)
		assert.Len(t, got.SplitWith, 3)
	})

	t.Run("ListExpenses orders by date descending", func(t *testing.T) {
		got, err := store.ListExpenses(ctx, group.ID)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "Pizza", got[0].Description)
		assert.Equal(t, "Concert tickets", got[1].Description)
		assert.Len(t, got[1].Shares, 2)
	})

	t.Run("UpdateExpense replaces split", func(t *testing.T) {
		list, err := store.ListExpenses(ctx, group.ID)
		require.NoError(t, err)
		pizza := list[0]

		pizza.Amount = decimal.NewFromInt(40)
		pizza.SplitWith = []string{b, c}
		require.NoError(t, store.UpdateExpense(ctx, &pizza))

		got, err := store.GetExpense(ctx, pizza.ID)
		require.NoError(t, err)
		assert.True(t, got.Amount.Equal(decimal.NewFromInt(40)))
		assert.Equal(t, []string{b, c}, got.SplitWith)

		missing := pizza
		missing.ID = "nonexistent-id"
		assert.ErrorIs(t, store.UpdateExpense(ctx, &missing), storage.ErrNotFound)
	})

	t.Run("DeleteExpense", func(t *testing.T) {
		expense := &models.Expense{
			GroupID: group.ID, Description: "Coffee", Amount: decimal.RequireFromString("4.5"),
			PaidBy: c, SplitType: models.SplitEqual, SplitWith: []string{c}, Date: date("2024-06-01"),
		}
		require.NoError(t, store.CreateExpense(ctx, expense))
		require.NoError(t, store.DeleteExpense(ctx, expense.ID))

		_, err := store.GetExpense(ctx, expense.ID)
		assert.ErrorIs(t, err, storage.ErrNotFound)
		assert.ErrorIs(t, store.DeleteExpense(ctx, expense.ID), storage.ErrNotFound)
	})

	t.Run("expense referencing unknown member is rejected", func(t *testing.T) {
		err := store.CreateExpense(ctx, &models.Expense{
			GroupID: group.ID, Description: "Bad", Amount: decimal.NewFromInt(1),
			PaidBy: "ghost", SplitType: models.SplitEqual, SplitWith: []string{a}, Date: date("2024-06-01"),
		})
		assert.Error(t, err)
	})
}

func TestSQLiteStore_PaymentsAndLedger(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	group, members := seedGroup(t, store, "Alice", "Bob")
	a, b := members[0].ID, members[1].ID

	require.NoError(t, store.CreateExpense(ctx, &models.Expense{
		GroupID: group.ID, Description: "Groceries", Amount: decimal.NewFromInt(60),
		PaidBy: a, SplitType: models.SplitEqual, SplitWith: []string{a, b}, Date: date("2024-07-01"),
	}))

	payment := &models.Payment{
		GroupID: group.ID, FromMemberID: b, ToMemberID: a,
		Amount: decimal.RequireFromString("12.34"), Note: "venmo",
	}
	require.NoError(t, store.RecordPayment(ctx, payment))
	assert.NotEmpty(t, payment.ID)

	t.Run("ListPayments", func(t *testing.T) {
		got, err := store.ListPayments(ctx, group.ID)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "venmo", got[0].Note)
		assert.True(t, got[0].Amount.Equal(decimal.RequireFromString("12.34")))
	})

	t.Run("GetLedger returns full snapshot", func(t *testing.T) {
		ledger, err := store.GetLedger(ctx, group.ID)
		require.NoError(t, err)
		assert.Equal(t, group.ID, ledger.Group.ID)
		assert.Len(t, ledger.Members, 2)
		require.Len(t, ledger.Expenses, 1)
		assert.Equal(t, []string{a, b}, ledger.Expenses[0].SplitWith)
		assert.Len(t, ledger.Payments, 1)
	})

	t.Run("payment pins its members", func(t *testing.T) {
		assert.ErrorIs(t, store.RemoveMember(ctx, group.ID, b), storage.ErrMemberInUse)
	})

	t.Run("DeletePayment", func(t *testing.T) {
		require.NoError(t, store.DeletePayment(ctx, payment.ID))
		assert.ErrorIs(t, store.DeletePayment(ctx, payment.ID), storage.ErrNotFound)
	})
}

func TestNew_ReopensMigratedDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "ledger.db")

	first, err := New(path)
	require.NoError(t, err)
	group, _ := seedGroup(t, first, "Alice")
	require.NoError(t, first.Close())

	second, err := New(path)
	require.NoError(t, err)
	defer second.Close()

	got, err := second.GetGroup(context.Background(), group.ID)
	require.NoError(t, err)
	assert.Equal(t, group.Name, got.Name)
}
