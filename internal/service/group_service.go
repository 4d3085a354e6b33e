package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"connectrpc.com/connect"
	"github.com/shopspring/decimal"

	"github.com/mmynk/splitledger/internal/calculator"
	"github.com/mmynk/splitledger/internal/metrics"
	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/storage"
	pb "github.com/mmynk/splitledger/pkg/proto"
	"github.com/mmynk/splitledger/pkg/proto/protoconnect"
)

// GroupService implements the Connect GroupService
type GroupService struct {
	protoconnect.UnimplementedGroupServiceHandler
	store   storage.Store
	metrics *metrics.Metrics
}

// NewGroupService creates a new GroupService with the given storage backend.
// m may be nil.
func NewGroupService(store storage.Store, m *metrics.Metrics) *GroupService {
	return &GroupService{store: store, metrics: m}
}

// CreateGroup creates a new group with its initial members.
func (s *GroupService) CreateGroup(ctx context.Context, req *connect.Request[pb.CreateGroupRequest]) (*connect.Response[pb.CreateGroupResponse], error) {
	slog.Info("CreateGroup request received",
		"name", req.Msg.Name,
		"members_count", len(req.Msg.Members),
	)

	name := strings.TrimSpace(req.Msg.Name)
	if name == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("name required"))
	}

	members := make([]models.Member, len(req.Msg.Members))
	for i, m := range req.Msg.Members {
		if m == nil || strings.TrimSpace(m.Name) == "" {
			return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("member %d: name required", i))
		}
		members[i] = models.Member{Name: strings.TrimSpace(m.Name), Email: m.Email}
	}

	group := &models.Group{
		Name:        name,
		Description: req.Msg.Description,
	}

	// Save to storage (generates IDs and CreatedAt)
	if err := s.store.CreateGroup(ctx, group, members); err != nil {
		slog.Error("CreateGroup failed", "error", err)
		return nil, storageError(err)
	}

	slog.Info("Group created", "group_id", group.ID)

	return connect.NewResponse(&pb.CreateGroupResponse{
		Group: toPBGroup(group, members),
	}), nil
}

// GetGroup retrieves a group by ID.
func (s *GroupService) GetGroup(ctx context.Context, req *connect.Request[pb.GetGroupRequest]) (*connect.Response[pb.GetGroupResponse], error) {
	slog.Info("GetGroup request received", "group_id", req.Msg.GroupId)

	group, members, err := s.loadGroup(ctx, req.Msg.GroupId)
	if err != nil {
		slog.Error("GetGroup failed", "group_id", req.Msg.GroupId, "error", err)
		return nil, storageError(err)
	}

	slog.Info("GetGroup successful", "group_id", group.ID, "name", group.Name)

	return connect.NewResponse(&pb.GetGroupResponse{
		Group: toPBGroup(group, members),
	}), nil
}

// ListGroups retrieves all groups.
func (s *GroupService) ListGroups(ctx context.Context, req *connect.Request[pb.ListGroupsRequest]) (*connect.Response[pb.ListGroupsResponse], error) {
	slog.Info("ListGroups request received")

	groups, err := s.store.ListGroups(ctx)
	if err != nil {
		slog.Error("ListGroups failed", "error", err)
		return nil, storageError(err)
	}

	pbGroups := make([]*pb.Group, len(groups))
	for i, group := range groups {
		members, err := s.store.ListMembers(ctx, group.ID)
		if err != nil {
			slog.Error("ListGroups failed - could not list members", "group_id", group.ID, "error", err)
			return nil, storageError(err)
		}
		pbGroups[i] = toPBGroup(group, members)
	}

	slog.Info("ListGroups successful", "count", len(groups))

	return connect.NewResponse(&pb.ListGroupsResponse{
		Groups: pbGroups,
	}), nil
}

// UpdateGroup renames an existing group.
func (s *GroupService) UpdateGroup(ctx context.Context, req *connect.Request[pb.UpdateGroupRequest]) (*connect.Response[pb.UpdateGroupResponse], error) {
	slog.Info("UpdateGroup request received",
		"group_id", req.Msg.GroupId,
		"name", req.Msg.Name,
	)

	name := strings.TrimSpace(req.Msg.Name)
	if name == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("name required"))
	}

	group := &models.Group{
		ID:          req.Msg.GroupId,
		Name:        name,
		Description: req.Msg.Description,
	}

	if err := s.store.UpdateGroup(ctx, group); err != nil {
		slog.Error("UpdateGroup failed", "error", err)
		return nil, storageError(err)
	}

	// Fetch updated group to get CreatedAt and members
	updated, members, err := s.loadGroup(ctx, group.ID)
	if err != nil {
		slog.Error("Failed to fetch updated group", "error", err)
		return nil, storageError(err)
	}

	slog.Info("Group updated", "group_id", group.ID)

	return connect.NewResponse(&pb.UpdateGroupResponse{
		Group: toPBGroup(updated, members),
	}), nil
}

// DeleteGroup removes a group and everything recorded in it.
func (s *GroupService) DeleteGroup(ctx context.Context, req *connect.Request[pb.DeleteGroupRequest]) (*connect.Response[pb.DeleteGroupResponse], error) {
	slog.Info("DeleteGroup request received", "group_id", req.Msg.GroupId)

	if err := s.store.DeleteGroup(ctx, req.Msg.GroupId); err != nil {
		slog.Error("DeleteGroup failed", "error", err)
		return nil, storageError(err)
	}

	slog.Info("Group deleted", "group_id", req.Msg.GroupId)

	return connect.NewResponse(&pb.DeleteGroupResponse{}), nil
}

// AddMember adds a member to a group.
func (s *GroupService) AddMember(ctx context.Context, req *connect.Request[pb.AddMemberRequest]) (*connect.Response[pb.AddMemberResponse], error) {
	slog.Info("AddMember request received", "group_id", req.Msg.GroupId, "name", req.Msg.Name)

	name := strings.TrimSpace(req.Msg.Name)
	if name == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("name required"))
	}

	member := &models.Member{
		GroupID: req.Msg.GroupId,
		Name:    name,
		Email:   req.Msg.Email,
	}
	if err := s.store.AddMember(ctx, member); err != nil {
		slog.Error("AddMember failed", "group_id", req.Msg.GroupId, "error", err)
		return nil, storageError(err)
	}

	slog.Info("Member added", "group_id", member.GroupID, "member_id", member.ID)

	return connect.NewResponse(&pb.AddMemberResponse{
		Member: toPBMember(*member),
	}), nil
}

// UpdateMember changes a member's display name and email.
func (s *GroupService) UpdateMember(ctx context.Context, req *connect.Request[pb.UpdateMemberRequest]) (*connect.Response[pb.UpdateMemberResponse], error) {
	slog.Info("UpdateMember request received", "group_id", req.Msg.GroupId, "member_id", req.Msg.MemberId)

	name := strings.TrimSpace(req.Msg.Name)
	if name == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("name required"))
	}

	member := &models.Member{
		ID:      req.Msg.MemberId,
		GroupID: req.Msg.GroupId,
		Name:    name,
		Email:   req.Msg.Email,
	}
	if err := s.store.UpdateMember(ctx, member); err != nil {
		slog.Error("UpdateMember failed", "member_id", req.Msg.MemberId, "error", err)
		return nil, storageError(err)
	}

	members, err := s.store.ListMembers(ctx, req.Msg.GroupId)
	if err != nil {
		return nil, storageError(err)
	}
	for _, m := range members {
		if m.ID == member.ID {
			member.CreatedAt = m.CreatedAt
		}
	}

	return connect.NewResponse(&pb.UpdateMemberResponse{
		Member: toPBMember(*member),
	}), nil
}

// RemoveMember deletes a member that no expense or payment references.
func (s *GroupService) RemoveMember(ctx context.Context, req *connect.Request[pb.RemoveMemberRequest]) (*connect.Response[pb.RemoveMemberResponse], error) {
	slog.Info("RemoveMember request received", "group_id", req.Msg.GroupId, "member_id", req.Msg.MemberId)

	if err := s.store.RemoveMember(ctx, req.Msg.GroupId, req.Msg.MemberId); err != nil {
		slog.Error("RemoveMember failed", "member_id", req.Msg.MemberId, "error", err)
		return nil, storageError(err)
	}

	slog.Info("Member removed", "group_id", req.Msg.GroupId, "member_id", req.Msg.MemberId)

	return connect.NewResponse(&pb.RemoveMemberResponse{}), nil
}

// GetGroupBalances derives every member's balance from the group's expenses,
// folds in recorded payments, and plans the transfers that settle the rest.
// A snapshot with validation faults yields no balances at all.
func (s *GroupService) GetGroupBalances(ctx context.Context, req *connect.Request[pb.GetGroupBalancesRequest]) (*connect.Response[pb.GetGroupBalancesResponse], error) {
	groupID := req.Msg.GroupId
	slog.Info("GetGroupBalances request received", "group_id", groupID)

	if groupID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("group_id required"))
	}

	ledger, err := s.store.GetLedger(ctx, groupID)
	if err != nil {
		slog.Error("GetGroupBalances failed - could not load ledger", "group_id", groupID, "error", err)
		return nil, storageError(err)
	}

	balances, err := calculator.ComputeBalances(ledger.Members, ledger.Expenses)
	if err != nil {
		s.metrics.ObserveFaults(err)
		slog.Warn("GetGroupBalances rejected - invalid expenses",
			"group_id", groupID,
			"faults", len(calculator.Faults(err)),
			"error", err,
		)
		return nil, faultError(connect.CodeFailedPrecondition, err)
	}

	balances, err = calculator.ApplySettlements(balances, paymentsAsSettlements(ledger.Payments))
	if err != nil {
		s.metrics.ObserveFaults(err)
		slog.Warn("GetGroupBalances rejected - invalid payments", "group_id", groupID, "error", err)
		return nil, faultError(connect.CodeFailedPrecondition, err)
	}

	plan := calculator.PlanSettlements(balances)
	s.metrics.ObservePlan(len(plan))

	total := decimal.Zero
	for _, e := range ledger.Expenses {
		total = total.Add(e.Amount)
	}

	slog.Info("GetGroupBalances successful",
		"group_id", groupID,
		"expenses_count", len(ledger.Expenses),
		"payments_count", len(ledger.Payments),
		"members_count", len(balances),
		"settlements_count", len(plan),
	)

	return connect.NewResponse(&pb.GetGroupBalancesResponse{
		Balances:    toPBBalances(balances),
		Settlements: toPBSettlements(plan, memberNames(ledger.Members)),
		TotalSpent:  formatMoney(total),
	}), nil
}

// RecordPayment records a transfer between two members of the group.
func (s *GroupService) RecordPayment(ctx context.Context, req *connect.Request[pb.RecordPaymentRequest]) (*connect.Response[pb.RecordPaymentResponse], error) {
	slog.Info("RecordPayment request received",
		"group_id", req.Msg.GroupId,
		"from", req.Msg.From,
		"to", req.Msg.To,
		"amount", req.Msg.Amount,
	)

	amount, err := parseMoney("amount", req.Msg.Amount)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	members, err := s.store.ListMembers(ctx, req.Msg.GroupId)
	if err != nil {
		slog.Error("RecordPayment failed - could not list members", "group_id", req.Msg.GroupId, "error", err)
		return nil, storageError(err)
	}
	if err := validatePayment(memberNames(members), req.Msg.From, req.Msg.To, amount); err != nil {
		slog.Error("RecordPayment validation failed", "error", err)
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	payment := &models.Payment{
		GroupID:      req.Msg.GroupId,
		FromMemberID: req.Msg.From,
		ToMemberID:   req.Msg.To,
		Amount:       amount,
		Note:         req.Msg.Note,
	}
	if err := s.store.RecordPayment(ctx, payment); err != nil {
		slog.Error("RecordPayment failed", "error", err)
		return nil, storageError(err)
	}

	slog.Info("Payment recorded", "payment_id", payment.ID, "group_id", payment.GroupID)

	return connect.NewResponse(&pb.RecordPaymentResponse{
		Payment: toPBPayment(payment),
	}), nil
}

// validatePayment checks that a payment moves a positive amount between two
// different members of the group.
func validatePayment(members map[string]string, from, to string, amount decimal.Decimal) error {
	if _, ok := members[from]; !ok {
		return fmt.Errorf("from '%s' is not a member of the group", from)
	}
	if _, ok := members[to]; !ok {
		return fmt.Errorf("to '%s' is not a member of the group", to)
	}
	if from == to {
		return fmt.Errorf("a member cannot pay themselves")
	}
	if !amount.IsPositive() {
		return fmt.Errorf("amount must be positive")
	}
	return nil
}

// ListPayments lists a group's recorded payments, newest first.
func (s *GroupService) ListPayments(ctx context.Context, req *connect.Request[pb.ListPaymentsRequest]) (*connect.Response[pb.ListPaymentsResponse], error) {
	slog.Info("ListPayments request received", "group_id", req.Msg.GroupId)

	if _, err := s.store.GetGroup(ctx, req.Msg.GroupId); err != nil {
		return nil, storageError(err)
	}

	payments, err := s.store.ListPayments(ctx, req.Msg.GroupId)
	if err != nil {
		slog.Error("ListPayments failed", "group_id", req.Msg.GroupId, "error", err)
		return nil, storageError(err)
	}

	pbPayments := make([]*pb.Payment, len(payments))
	for i := range payments {
		pbPayments[i] = toPBPayment(&payments[i])
	}

	return connect.NewResponse(&pb.ListPaymentsResponse{
		Payments: pbPayments,
	}), nil
}

// DeletePayment removes a recorded payment.
func (s *GroupService) DeletePayment(ctx context.Context, req *connect.Request[pb.DeletePaymentRequest]) (*connect.Response[pb.DeletePaymentResponse], error) {
	slog.Info("DeletePayment request received", "payment_id", req.Msg.PaymentId)

	if err := s.store.DeletePayment(ctx, req.Msg.PaymentId); err != nil {
		slog.Error("DeletePayment failed", "payment_id", req.Msg.PaymentId, "error", err)
		return nil, storageError(err)
	}

	slog.Info("Payment deleted", "payment_id", req.Msg.PaymentId)

	return connect.NewResponse(&pb.DeletePaymentResponse{}), nil
}

func (s *GroupService) loadGroup(ctx context.Context, groupID string) (*models.Group, []models.Member, error) {
	group, err := s.store.GetGroup(ctx, groupID)
	if err != nil {
		return nil, nil, err
	}
	members, err := s.store.ListMembers(ctx, groupID)
	if err != nil {
		return nil, nil, err
	}
	return group, members, nil
}
