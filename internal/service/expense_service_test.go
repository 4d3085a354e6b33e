package service

import (
	"context"
	"testing"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"

	"github.com/mmynk/splitledger/internal/calculator"
	pb "github.com/mmynk/splitledger/pkg/proto"
)

func TestCreateExpense(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()
	group, ids := env.createGroup(t, "Alice", "Bob", "Charlie")
	a, b, c := ids["Alice"], ids["Bob"], ids["Charlie"]

	t.Run("defaults to an equal split dated today", func(t *testing.T) {
		expense := env.addExpense(t, group.Id, a, "45.60", a, b)

		assert.NotEmpty(t, expense.Id)
		assert.Equal(t, group.Id, expense.GroupId)
		assert.Equal(t, "equal", expense.SplitType)
		assert.Equal(t, "2024-03-15", expense.Date)
		assert.Equal(t, []string{a, b}, expense.SplitWith)
		assertDecimal(t, "45.60", expense.Amount, "amount")
	})

	t.Run("custom split with exact shares", func(t *testing.T) {
		resp, err := env.expenses.CreateExpense(ctx, connect.NewRequest(&pb.CreateExpenseRequest{
			GroupId: group.Id,
			Expense: &pb.ExpenseInput{
				Description: "Cabin",
				Amount:      "100",
				PaidBy:      b,
				SplitType:   "custom",
				SplitWith:   []string{a, b, c},
				Shares:      map[string]string{a: "50", b: "25", c: "25"},
				Date:        "2024-02-01",
				Category:    "Lodging",
			},
		}))
		require.NoError(t, err)

		got, err := env.expenses.GetExpense(ctx, connect.NewRequest(&pb.GetExpenseRequest{ExpenseId: resp.Msg.Expense.Id}))
		require.NoError(t, err)
		assert.Equal(t, "custom", got.Msg.Expense.SplitType)
		assert.Equal(t, "2024-02-01", got.Msg.Expense.Date)
		assert.Equal(t, "Lodging", got.Msg.Expense.Category)
		require.Len(t, got.Msg.Expense.Shares, 3)
		assertDecimal(t, "50", got.Msg.Expense.Shares[a], "alice share")
	})

	t.Run("equal split ignores shares", func(t *testing.T) {
		resp, err := env.expenses.CreateExpense(ctx, connect.NewRequest(&pb.CreateExpenseRequest{
			GroupId: group.Id,
			Expense: &pb.ExpenseInput{
				Amount:    "30",
				PaidBy:    a,
				SplitWith: []string{a, b},
				Shares:    map[string]string{a: "20", b: "10"},
			},
		}))
		require.NoError(t, err)
		assert.Equal(t, "equal", resp.Msg.Expense.SplitType)
		assert.Empty(t, resp.Msg.Expense.Shares)

		got, err := env.expenses.GetExpense(ctx, connect.NewRequest(&pb.GetExpenseRequest{ExpenseId: resp.Msg.Expense.Id}))
		require.NoError(t, err)
		assert.True(t, proto.Equal(resp.Msg.Expense, got.Msg.Expense), "stored %v, returned %v", got.Msg.Expense, resp.Msg.Expense)
	})

	t.Run("malformed amount", func(t *testing.T) {
		_, err := env.expenses.CreateExpense(ctx, connect.NewRequest(&pb.CreateExpenseRequest{
			GroupId: group.Id,
			Expense: &pb.ExpenseInput{Amount: "ten", PaidBy: a, SplitWith: []string{a}},
		}))
		assertCode(t, connect.CodeInvalidArgument, err)
		assert.Empty(t, FaultsFromError(err))
	})

	t.Run("expense required", func(t *testing.T) {
		_, err := env.expenses.CreateExpense(ctx, connect.NewRequest(&pb.CreateExpenseRequest{GroupId: group.Id}))
		assertCode(t, connect.CodeInvalidArgument, err)
	})

	invalid := []struct {
		name     string
		input    *pb.ExpenseInput
		wantCode string
	}{
		{
			name:     "unknown payer",
			input:    &pb.ExpenseInput{Amount: "10", PaidBy: "ghost", SplitWith: []string{a}},
			wantCode: calculator.CodeUnknownMember,
		},
		{
			name:     "unknown split member",
			input:    &pb.ExpenseInput{Amount: "10", PaidBy: a, SplitWith: []string{a, "ghost"}},
			wantCode: calculator.CodeUnknownMember,
		},
		{
			name:     "empty split is not defaulted",
			input:    &pb.ExpenseInput{Amount: "10", PaidBy: a},
			wantCode: calculator.CodeDegenerateSplit,
		},
		{
			name:     "zero amount",
			input:    &pb.ExpenseInput{Amount: "0", PaidBy: a, SplitWith: []string{a}},
			wantCode: calculator.CodeDegenerateSplit,
		},
		{
			name:     "repeated split member",
			input:    &pb.ExpenseInput{Amount: "10", PaidBy: a, SplitWith: []string{b, b}},
			wantCode: calculator.CodeDegenerateSplit,
		},
		{
			name:     "custom split without shares",
			input:    &pb.ExpenseInput{Amount: "10", PaidBy: a, SplitType: "custom", SplitWith: []string{a, b}},
			wantCode: calculator.CodeMissingShares,
		},
		{
			name: "shares do not sum to amount",
			input: &pb.ExpenseInput{
				Amount: "10", PaidBy: a, SplitType: "custom", SplitWith: []string{a, b},
				Shares: map[string]string{a: "3", b: "3"},
			},
			wantCode: calculator.CodeMissingShares,
		},
		{
			name:     "unknown split type",
			input:    &pb.ExpenseInput{Amount: "10", PaidBy: a, SplitType: "percentage", SplitWith: []string{a}},
			wantCode: calculator.CodeInvalidSplitType,
		},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.expenses.CreateExpense(ctx, connect.NewRequest(&pb.CreateExpenseRequest{
				GroupId: group.Id,
				Expense: tt.input,
			}))
			assertCode(t, connect.CodeInvalidArgument, err)

			faults := FaultsFromError(err)
			require.NotEmpty(t, faults)
			assert.Equal(t, tt.wantCode, faults[0].Code)
		})
	}

	t.Run("malformed date", func(t *testing.T) {
		_, err := env.expenses.CreateExpense(ctx, connect.NewRequest(&pb.CreateExpenseRequest{
			GroupId: group.Id,
			Expense: &pb.ExpenseInput{Amount: "10", PaidBy: a, SplitWith: []string{a}, Date: "15/03/2024"},
		}))
		assertCode(t, connect.CodeInvalidArgument, err)
	})

	t.Run("missing group", func(t *testing.T) {
		_, err := env.expenses.CreateExpense(ctx, connect.NewRequest(&pb.CreateExpenseRequest{
			GroupId: "missing",
			Expense: &pb.ExpenseInput{Amount: "10", PaidBy: a, SplitWith: []string{a}},
		}))
		assertCode(t, connect.CodeNotFound, err)
	})

	t.Run("member of another group", func(t *testing.T) {
		_, other := env.createGroup(t, "Dana")
		_, err := env.expenses.CreateExpense(ctx, connect.NewRequest(&pb.CreateExpenseRequest{
			GroupId: group.Id,
			Expense: &pb.ExpenseInput{Amount: "10", PaidBy: other["Dana"], SplitWith: []string{a}},
		}))
		assertCode(t, connect.CodeInvalidArgument, err)
	})
}

func TestListExpenses(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()
	group, ids := env.createGroup(t, "Alice", "Bob")

	resp, err := env.expenses.ListExpenses(ctx, connect.NewRequest(&pb.ListExpensesRequest{GroupId: group.Id}))
	require.NoError(t, err)
	assert.Empty(t, resp.Msg.Expenses)

	env.addExpense(t, group.Id, ids["Alice"], "10", ids["Bob"])
	env.addExpense(t, group.Id, ids["Bob"], "20", ids["Alice"])

	resp, err = env.expenses.ListExpenses(ctx, connect.NewRequest(&pb.ListExpensesRequest{GroupId: group.Id}))
	require.NoError(t, err)
	assert.Len(t, resp.Msg.Expenses, 2)

	_, err = env.expenses.ListExpenses(ctx, connect.NewRequest(&pb.ListExpensesRequest{GroupId: "missing"}))
	assertCode(t, connect.CodeNotFound, err)
}

func TestUpdateExpense(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()
	group, ids := env.createGroup(t, "Alice", "Bob")
	a, b := ids["Alice"], ids["Bob"]

	created, err := env.expenses.CreateExpense(ctx, connect.NewRequest(&pb.CreateExpenseRequest{
		GroupId: group.Id,
		Expense: &pb.ExpenseInput{
			Description: "Dinner", Amount: "40", PaidBy: a, SplitWith: []string{a, b}, Date: "2024-01-10",
		},
	}))
	require.NoError(t, err)
	id := created.Msg.Expense.Id

	updated, err := env.expenses.UpdateExpense(ctx, connect.NewRequest(&pb.UpdateExpenseRequest{
		ExpenseId: id,
		Expense: &pb.ExpenseInput{
			Description: "Dinner and drinks", Amount: "60", PaidBy: b, SplitWith: []string{a, b},
		},
	}))
	require.NoError(t, err)
	assert.Equal(t, id, updated.Msg.Expense.Id)
	assert.Equal(t, group.Id, updated.Msg.Expense.GroupId)
	assert.Equal(t, "2024-01-10", updated.Msg.Expense.Date, "an omitted date keeps the stored one")
	assert.Equal(t, created.Msg.Expense.CreatedAt, updated.Msg.Expense.CreatedAt)

	got, err := env.expenses.GetExpense(ctx, connect.NewRequest(&pb.GetExpenseRequest{ExpenseId: id}))
	require.NoError(t, err)
	assert.Equal(t, "Dinner and drinks", got.Msg.Expense.Description)
	assert.Equal(t, b, got.Msg.Expense.PaidBy)
	assertDecimal(t, "60", got.Msg.Expense.Amount, "amount")

	t.Run("invalid update is rejected and nothing changes", func(t *testing.T) {
		_, err := env.expenses.UpdateExpense(ctx, connect.NewRequest(&pb.UpdateExpenseRequest{
			ExpenseId: id,
			Expense:   &pb.ExpenseInput{Amount: "60", PaidBy: "ghost", SplitWith: []string{a}},
		}))
		assertCode(t, connect.CodeInvalidArgument, err)

		got, err := env.expenses.GetExpense(ctx, connect.NewRequest(&pb.GetExpenseRequest{ExpenseId: id}))
		require.NoError(t, err)
		assert.Equal(t, b, got.Msg.Expense.PaidBy)
	})

	t.Run("missing expense", func(t *testing.T) {
		_, err := env.expenses.UpdateExpense(ctx, connect.NewRequest(&pb.UpdateExpenseRequest{
			ExpenseId: "missing",
			Expense:   &pb.ExpenseInput{Amount: "1", PaidBy: a, SplitWith: []string{a}},
		}))
		assertCode(t, connect.CodeNotFound, err)
	})
}

func TestDeleteExpense(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()
	group, ids := env.createGroup(t, "Alice", "Bob")
	expense := env.addExpense(t, group.Id, ids["Alice"], "30", ids["Alice"], ids["Bob"])

	_, err := env.expenses.DeleteExpense(ctx, connect.NewRequest(&pb.DeleteExpenseRequest{ExpenseId: expense.Id}))
	require.NoError(t, err)

	_, err = env.expenses.GetExpense(ctx, connect.NewRequest(&pb.GetExpenseRequest{ExpenseId: expense.Id}))
	assertCode(t, connect.CodeNotFound, err)

	_, err = env.expenses.DeleteExpense(ctx, connect.NewRequest(&pb.DeleteExpenseRequest{ExpenseId: expense.Id}))
	assertCode(t, connect.CodeNotFound, err)

	// With the expense gone, balances settle back to zero.
	balances, err := env.groups.GetGroupBalances(ctx, connect.NewRequest(&pb.GetGroupBalancesRequest{GroupId: group.Id}))
	require.NoError(t, err)
	assert.Empty(t, balances.Msg.Settlements)
}
