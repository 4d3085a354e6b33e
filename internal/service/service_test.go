package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/splitledger/internal/storage/sqlite"
	pb "github.com/mmynk/splitledger/pkg/proto"
	"github.com/mmynk/splitledger/pkg/proto/protoconnect"
)

type testEnv struct {
	groups   protoconnect.GroupServiceClient
	expenses protoconnect.ExpenseServiceClient
	store    *sqlite.SQLiteStore
}

// setupTestServer serves both services over a fresh SQLite database.
func setupTestServer(t *testing.T) *testEnv {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err, "failed to create store")

	expenseSvc := NewExpenseService(store, nil)
	expenseSvc.now = func() time.Time { return time.Date(2024, 3, 15, 18, 30, 0, 0, time.UTC) }

	groupPath, groupHandler := protoconnect.NewGroupServiceHandler(NewGroupService(store, nil))
	expensePath, expenseHandler := protoconnect.NewExpenseServiceHandler(expenseSvc)

	mux := http.NewServeMux()
	mux.Handle(groupPath, groupHandler)
	mux.Handle(expensePath, expenseHandler)

	server := httptest.NewServer(mux)
	t.Cleanup(func() {
		server.Close()
		store.Close()
	})

	return &testEnv{
		groups:   protoconnect.NewGroupServiceClient(http.DefaultClient, server.URL),
		expenses: protoconnect.NewExpenseServiceClient(http.DefaultClient, server.URL),
		store:    store,
	}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// assertDecimal compares a decimal string from the wire by value, so "12.5"
// matches "12.50".
func assertDecimal(t *testing.T, want, got string, what string) {
	t.Helper()
	d, err := decimal.NewFromString(got)
	if assert.NoErrorf(t, err, "%s = %q is not a decimal", what, got) {
		assert.Truef(t, dec(want).Equal(d), "%s = %s, want %s", what, got, want)
	}
}

func assertCode(t *testing.T, want connect.Code, err error) {
	t.Helper()
	require.Error(t, err)
	assert.Equal(t, want, connect.CodeOf(err), "unexpected error: %v", err)
}

// createGroup creates a group with the named members and returns the group
// plus a name -> member ID lookup.
func (e *testEnv) createGroup(t *testing.T, names ...string) (*pb.Group, map[string]string) {
	t.Helper()
	inputs := make([]*pb.MemberInput, len(names))
	for i, n := range names {
		inputs[i] = &pb.MemberInput{Name: n}
	}
	resp, err := e.groups.CreateGroup(context.Background(), connect.NewRequest(&pb.CreateGroupRequest{
		Name:    "Ski Trip",
		Members: inputs,
	}))
	require.NoError(t, err)

	ids := make(map[string]string, len(names))
	for _, m := range resp.Msg.Group.Members {
		ids[m.Name] = m.Id
	}
	return resp.Msg.Group, ids
}

func (e *testEnv) addExpense(t *testing.T, groupID, paidBy, amount string, splitWith ...string) *pb.Expense {
	t.Helper()
	resp, err := e.expenses.CreateExpense(context.Background(), connect.NewRequest(&pb.CreateExpenseRequest{
		GroupId: groupID,
		Expense: &pb.ExpenseInput{
			Description: "shared cost",
			Amount:      amount,
			PaidBy:      paidBy,
			SplitWith:   splitWith,
		},
	}))
	require.NoError(t, err)
	return resp.Msg.Expense
}
