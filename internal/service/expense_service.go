package service

import (
	"context"
	"log/slog"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/splitledger/internal/calculator"
	"github.com/mmynk/splitledger/internal/metrics"
	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/storage"
	pb "github.com/mmynk/splitledger/pkg/proto"
	"github.com/mmynk/splitledger/pkg/proto/protoconnect"
)

// ExpenseService implements the Connect ExpenseService
type ExpenseService struct {
	protoconnect.UnimplementedExpenseServiceHandler
	store   storage.Store
	metrics *metrics.Metrics
	now     func() time.Time
}

// NewExpenseService creates a new ExpenseService with the given storage backend.
// m may be nil.
func NewExpenseService(store storage.Store, m *metrics.Metrics) *ExpenseService {
	return &ExpenseService{store: store, metrics: m, now: time.Now}
}

// CreateExpense validates an expense against the group's members and stores it.
func (s *ExpenseService) CreateExpense(ctx context.Context, req *connect.Request[pb.CreateExpenseRequest]) (*connect.Response[pb.CreateExpenseResponse], error) {
	slog.Info("CreateExpense request received",
		"group_id", req.Msg.GroupId,
		"amount", req.Msg.GetExpense().GetAmount(),
		"paid_by", req.Msg.GetExpense().GetPaidBy(),
		"split_with", len(req.Msg.GetExpense().GetSplitWith()),
	)

	expense, err := expenseFromInput(req.Msg.GetExpense(), s.now())
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}
	expense.GroupID = req.Msg.GroupId

	if err := s.validate(ctx, &expense); err != nil {
		return nil, err
	}

	// Save to storage (generates ID and CreatedAt)
	if err := s.store.CreateExpense(ctx, &expense); err != nil {
		slog.Error("CreateExpense failed", "error", err)
		return nil, storageError(err)
	}

	slog.Info("Expense created", "expense_id", expense.ID, "group_id", expense.GroupID)

	return connect.NewResponse(&pb.CreateExpenseResponse{
		Expense: toPBExpense(&expense),
	}), nil
}

// GetExpense retrieves an expense by ID.
func (s *ExpenseService) GetExpense(ctx context.Context, req *connect.Request[pb.GetExpenseRequest]) (*connect.Response[pb.GetExpenseResponse], error) {
	slog.Info("GetExpense request received", "expense_id", req.Msg.ExpenseId)

	expense, err := s.store.GetExpense(ctx, req.Msg.ExpenseId)
	if err != nil {
		slog.Error("GetExpense failed", "expense_id", req.Msg.ExpenseId, "error", err)
		return nil, storageError(err)
	}

	return connect.NewResponse(&pb.GetExpenseResponse{
		Expense: toPBExpense(expense),
	}), nil
}

// ListExpenses lists a group's expenses, most recent date first.
func (s *ExpenseService) ListExpenses(ctx context.Context, req *connect.Request[pb.ListExpensesRequest]) (*connect.Response[pb.ListExpensesResponse], error) {
	slog.Info("ListExpenses request received", "group_id", req.Msg.GroupId)

	if _, err := s.store.GetGroup(ctx, req.Msg.GroupId); err != nil {
		return nil, storageError(err)
	}

	expenses, err := s.store.ListExpenses(ctx, req.Msg.GroupId)
	if err != nil {
		slog.Error("ListExpenses failed", "group_id", req.Msg.GroupId, "error", err)
		return nil, storageError(err)
	}

	pbExpenses := make([]*pb.Expense, len(expenses))
	for i := range expenses {
		pbExpenses[i] = toPBExpense(&expenses[i])
	}

	slog.Info("ListExpenses successful", "group_id", req.Msg.GroupId, "count", len(expenses))

	return connect.NewResponse(&pb.ListExpensesResponse{
		Expenses: pbExpenses,
	}), nil
}

// UpdateExpense replaces an expense's fields. Its group and creation time
// never change.
func (s *ExpenseService) UpdateExpense(ctx context.Context, req *connect.Request[pb.UpdateExpenseRequest]) (*connect.Response[pb.UpdateExpenseResponse], error) {
	slog.Info("UpdateExpense request received", "expense_id", req.Msg.ExpenseId)

	existing, err := s.store.GetExpense(ctx, req.Msg.ExpenseId)
	if err != nil {
		slog.Error("UpdateExpense failed - expense not found", "expense_id", req.Msg.ExpenseId, "error", err)
		return nil, storageError(err)
	}

	expense, err := expenseFromInput(req.Msg.GetExpense(), s.now())
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}
	expense.ID = existing.ID
	expense.GroupID = existing.GroupID
	expense.CreatedAt = existing.CreatedAt
	if req.Msg.GetExpense().GetDate() == "" {
		expense.Date = existing.Date
	}

	if err := s.validate(ctx, &expense); err != nil {
		return nil, err
	}

	if err := s.store.UpdateExpense(ctx, &expense); err != nil {
		slog.Error("UpdateExpense failed", "expense_id", expense.ID, "error", err)
		return nil, storageError(err)
	}

	slog.Info("Expense updated", "expense_id", expense.ID)

	return connect.NewResponse(&pb.UpdateExpenseResponse{
		Expense: toPBExpense(&expense),
	}), nil
}

// DeleteExpense removes an expense.
func (s *ExpenseService) DeleteExpense(ctx context.Context, req *connect.Request[pb.DeleteExpenseRequest]) (*connect.Response[pb.DeleteExpenseResponse], error) {
	slog.Info("DeleteExpense request received", "expense_id", req.Msg.ExpenseId)

	if err := s.store.DeleteExpense(ctx, req.Msg.ExpenseId); err != nil {
		slog.Error("DeleteExpense failed", "expense_id", req.Msg.ExpenseId, "error", err)
		return nil, storageError(err)
	}

	slog.Info("Expense deleted", "expense_id", req.Msg.ExpenseId)

	return connect.NewResponse(&pb.DeleteExpenseResponse{}), nil
}

// validate checks the expense against the group's current members, so that
// no stored expense can later fault balance computation.
func (s *ExpenseService) validate(ctx context.Context, expense *models.Expense) error {
	members, err := s.store.ListMembers(ctx, expense.GroupID)
	if err != nil {
		slog.Error("Expense validation failed - could not list members", "group_id", expense.GroupID, "error", err)
		return storageError(err)
	}

	if err := calculator.ValidateExpense(members, *expense); err != nil {
		s.metrics.ObserveFaults(err)
		slog.Warn("Expense rejected", "group_id", expense.GroupID, "error", err)
		return faultError(connect.CodeInvalidArgument, err)
	}
	return nil
}
