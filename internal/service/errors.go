package service

import (
	"errors"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/splitledger/internal/calculator"
	"github.com/mmynk/splitledger/internal/storage"
	pb "github.com/mmynk/splitledger/pkg/proto"
)

// storageError maps a store error onto a Connect code.
func storageError(err error) *connect.Error {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, storage.ErrMemberInUse):
		return connect.NewError(connect.CodeFailedPrecondition, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}

// faultError wraps validation faults with the given code and attaches one
// error detail per fault so clients can point at the offending expense.
func faultError(code connect.Code, err error) *connect.Error {
	connectErr := connect.NewError(code, err)
	for _, f := range calculator.Faults(err) {
		detail, derr := faultDetail(f)
		if derr != nil {
			slog.Warn("Failed to encode fault detail", "code", f.Code, "error", derr)
			continue
		}
		connectErr.AddDetail(detail)
	}
	return connectErr
}

func faultDetail(f *calculator.ValidationFault) (*connect.ErrorDetail, error) {
	return connect.NewErrorDetail(&pb.ValidationFault{
		Code:      f.Code,
		ExpenseId: f.ExpenseID,
		MemberId:  f.MemberID,
		Message:   f.Message,
	})
}

// FaultsFromError decodes the fault details attached to a Connect error.
func FaultsFromError(err error) []*calculator.ValidationFault {
	var connectErr *connect.Error
	if !errors.As(err, &connectErr) {
		return nil
	}

	var faults []*calculator.ValidationFault
	for _, d := range connectErr.Details() {
		msg, derr := d.Value()
		if derr != nil {
			continue
		}
		f, ok := msg.(*pb.ValidationFault)
		if !ok {
			continue
		}
		faults = append(faults, &calculator.ValidationFault{
			Code:      f.GetCode(),
			ExpenseID: f.GetExpenseId(),
			MemberID:  f.GetMemberId(),
			Message:   f.GetMessage(),
		})
	}
	return faults
}
