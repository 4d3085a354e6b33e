package calculator

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mmynk/splitledger/internal/models"
)

// memberIndex maps member ID to its position in the member list.
type memberIndex map[string]int

// indexMembers builds the lookup used by validation and aggregation.
// A repeated ID is a fault; the first occurrence wins in the index.
func indexMembers(members []models.Member) (memberIndex, []error) {
	index := make(memberIndex, len(members))
	var errs []error
	for i, m := range members {
		if _, exists := index[m.ID]; exists {
			errs = append(errs, fault(CodeDuplicateMember, "", m.ID, "duplicate member"))
			continue
		}
		index[m.ID] = i
	}
	return index, errs
}

// ValidateExpense checks a single expense against the group's member list.
// It returns nil when the expense can be folded into balances, or every
// fault found joined with errors.Join.
func ValidateExpense(members []models.Member, expense models.Expense) error {
	index, errs := indexMembers(members)
	errs = append(errs, validateExpense(index, expense)...)
	return errors.Join(errs...)
}

func validateExpense(index memberIndex, e models.Expense) []error {
	var errs []error

	if !e.Amount.IsPositive() {
		errs = append(errs, fault(CodeDegenerateSplit, e.ID, "", "amount must be positive"))
	}
	if !e.SplitType.Valid() {
		errs = append(errs, fault(CodeInvalidSplitType, e.ID, "",
			fmt.Sprintf("invalid split type %q", e.SplitType)))
	}
	if _, ok := index[e.PaidBy]; !ok {
		errs = append(errs, fault(CodeUnknownMember, e.ID, e.PaidBy, "unknown payer"))
	}
	if len(e.SplitWith) == 0 {
		errs = append(errs, fault(CodeDegenerateSplit, e.ID, "", "split set is empty"))
	}

	seen := make(map[string]bool, len(e.SplitWith))
	for _, id := range e.SplitWith {
		if seen[id] {
			errs = append(errs, fault(CodeDegenerateSplit, e.ID, id, "member split more than once"))
			continue
		}
		seen[id] = true
		if _, ok := index[id]; !ok {
			errs = append(errs, fault(CodeUnknownMember, e.ID, id, "unknown split member"))
		}
	}

	if e.SplitType == models.SplitCustom {
		errs = append(errs, validateShares(e, seen)...)
	}
	return errs
}

// validateShares enforces the custom split schema: one non-negative share per
// split member, no extra keys, and an exact sum equal to the expense amount.
func validateShares(e models.Expense, splitSet map[string]bool) []error {
	if len(e.Shares) == 0 {
		return []error{fault(CodeMissingShares, e.ID, "", "custom split requires per-member shares")}
	}

	var errs []error
	sum := decimal.Zero
	for id := range splitSet {
		share, ok := e.Shares[id]
		if !ok {
			errs = append(errs, fault(CodeMissingShares, e.ID, id, "no share for split member"))
			continue
		}
		if share.IsNegative() {
			errs = append(errs, fault(CodeMissingShares, e.ID, id, "share is negative"))
		}
		sum = sum.Add(share)
	}
	for id := range e.Shares {
		if !splitSet[id] {
			errs = append(errs, fault(CodeMissingShares, e.ID, id, "share for member outside split"))
		}
	}
	if len(errs) == 0 && !sum.Equal(e.Amount) {
		errs = append(errs, fault(CodeMissingShares, e.ID, "",
			fmt.Sprintf("shares sum to %s, want %s", sum.String(), e.Amount.String())))
	}
	return errs
}
