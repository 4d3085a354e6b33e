package calculator

import (
	"errors"
	"fmt"
)

// Fault codes reported by ValidationFault.
const (
	CodeUnknownMember    = "UNKNOWN_MEMBER"
	CodeDuplicateMember  = "DUPLICATE_MEMBER"
	CodeDegenerateSplit  = "DEGENERATE_SPLIT"
	CodeMissingShares    = "MISSING_SHARES"
	CodeInvalidSplitType = "INVALID_SPLIT_TYPE"

	// CodeInvalidSettlement is raised when replaying transfers, never by
	// expense validation.
	CodeInvalidSettlement = "INVALID_SETTLEMENT"
)

// ValidationFault is an input-integrity fault found in a group snapshot.
// Faults are reported, never corrected: a snapshot with any fault yields no balances.
type ValidationFault struct {
	Code      string
	ExpenseID string // empty for member-list faults
	MemberID  string // offending member, when there is one
	Message   string
}

func (f *ValidationFault) Error() string {
	switch {
	case f.ExpenseID != "" && f.MemberID != "":
		return fmt.Sprintf("expense %s: %s: %s", f.ExpenseID, f.Message, f.MemberID)
	case f.ExpenseID != "":
		return fmt.Sprintf("expense %s: %s", f.ExpenseID, f.Message)
	case f.MemberID != "":
		return fmt.Sprintf("%s: %s", f.Message, f.MemberID)
	default:
		return f.Message
	}
}

// Is matches faults by Code, so errors.Is(err, ErrUnknownMember) works for
// any referential fault regardless of which expense raised it.
func (f *ValidationFault) Is(target error) bool {
	if t, ok := target.(*ValidationFault); ok {
		return f.Code == t.Code
	}
	return false
}

var (
	// ErrUnknownMember - an expense names a member that is not in the group
	ErrUnknownMember = &ValidationFault{Code: CodeUnknownMember, Message: "unknown member"}

	// ErrDuplicateMember - a member id appears more than once in the member list
	ErrDuplicateMember = &ValidationFault{Code: CodeDuplicateMember, Message: "duplicate member"}

	// ErrDegenerateSplit - empty split set, repeated split member, or non-positive amount
	ErrDegenerateSplit = &ValidationFault{Code: CodeDegenerateSplit, Message: "degenerate split"}

	// ErrMissingShares - custom split without a valid per-member share mapping
	ErrMissingShares = &ValidationFault{Code: CodeMissingShares, Message: "missing split shares"}

	// ErrInvalidSplitType - split type is neither equal nor custom
	ErrInvalidSplitType = &ValidationFault{Code: CodeInvalidSplitType, Message: "invalid split type"}

	// ErrInvalidSettlement - a transfer to oneself or with a non-positive amount
	ErrInvalidSettlement = &ValidationFault{Code: CodeInvalidSettlement, Message: "invalid settlement"}
)

func fault(code, expenseID, memberID, msg string) *ValidationFault {
	return &ValidationFault{Code: code, ExpenseID: expenseID, MemberID: memberID, Message: msg}
}

// Faults flattens err, which may be a single fault or several joined with
// errors.Join, into the faults it carries. Non-fault errors are skipped.
func Faults(err error) []*ValidationFault {
	if err == nil {
		return nil
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var faults []*ValidationFault
		for _, e := range joined.Unwrap() {
			faults = append(faults, Faults(e)...)
		}
		return faults
	}
	var f *ValidationFault
	if errors.As(err, &f) {
		return []*ValidationFault{f}
	}
	return nil
}
