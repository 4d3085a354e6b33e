package calculator

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/mmynk/splitledger/internal/models"
)

// Balance is the derived position of one member in a group.
type Balance struct {
	MemberID string
	Name     string
	Paid     decimal.Decimal // Total amount paid across all expenses
	Owed     decimal.Decimal // Total amount of the shares this member benefited from
	Net      decimal.Decimal // Paid - Owed. Positive = is owed money, negative = owes money
}

// ComputeBalances folds a group's members and expenses into one Balance per
// member, in member-list order.
//
// Algorithm:
// - Validate every expense first; any fault aborts with no balances
// - For each expense: payer gets +amount paid, each split member +share owed
// - equal split: share = amount / len(splitWith); custom split: share = Shares[id]
// - net = paid - owed, computed once all expenses are folded
//
// Decimal addition is exact, so the result does not depend on expense order.
func ComputeBalances(members []models.Member, expenses []models.Expense) ([]Balance, error) {
	index, errs := indexMembers(members)
	for _, e := range expenses {
		errs = append(errs, validateExpense(index, e)...)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	balances := make([]Balance, len(members))
	for i, m := range members {
		balances[i] = Balance{
			MemberID: m.ID,
			Name:     m.Name,
			Paid:     decimal.Zero,
			Owed:     decimal.Zero,
		}
	}

	for _, e := range expenses {
		payer := &balances[index[e.PaidBy]]
		payer.Paid = payer.Paid.Add(e.Amount)

		for _, id := range e.SplitWith {
			b := &balances[index[id]]
			b.Owed = b.Owed.Add(shareOf(e, id))
		}
	}

	for i := range balances {
		balances[i].Net = balances[i].Paid.Sub(balances[i].Owed)
	}
	return balances, nil
}

// shareOf returns what member id owes for a validated expense.
func shareOf(e models.Expense, id string) decimal.Decimal {
	if e.SplitType == models.SplitCustom {
		return e.Shares[id]
	}
	return e.Amount.Div(decimal.NewFromInt(int64(len(e.SplitWith))))
}
