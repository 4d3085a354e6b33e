package calculator

import (
	"cmp"
	"errors"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// CurrencyPlaces is the number of decimal places settlement amounts are rounded to.
const CurrencyPlaces = 2

// epsilon is the largest balance that still counts as settled (one cent).
var epsilon = decimal.New(1, -CurrencyPlaces)

// Settlement is a planned transfer: From pays To the given Amount.
type Settlement struct {
	From   string // Member who owes
	To     string // Member who is owed
	Amount decimal.Decimal
}

// position is an unsettled member's net in whole cents.
type position struct {
	memberID string
	cents    int64
}

// PlanSettlements produces the transfers that bring every balance to zero.
//
// Greedy matching: creditors sorted by largest credit first, debtors by
// largest debt first, walked with two cursors. Each step moves
// min(credit, debt) and exhausts at least one side, so the plan never has
// more than creditors+debtors-1 transfers. A group whose members are all
// within one cent of zero is already settled and gets an empty plan.
//
// The walk runs on whole cents (see toCents), so every emitted amount is
// exactly what was taken off both sides and rounding never piles up on a
// creditor with many transfers.
//
// The returned slice is never nil.
func PlanSettlements(balances []Balance) []Settlement {
	var creditors, debtors []position
	for _, p := range toCents(balances) {
		if p.cents > 0 {
			creditors = append(creditors, p)
		} else {
			debtors = append(debtors, p)
		}
	}

	// Ties are broken by member ID so the plan is deterministic.
	slices.SortFunc(creditors, func(a, b position) int {
		if c := cmp.Compare(b.cents, a.cents); c != 0 {
			return c
		}
		return strings.Compare(a.memberID, b.memberID)
	})
	slices.SortFunc(debtors, func(a, b position) int {
		if c := cmp.Compare(a.cents, b.cents); c != 0 {
			return c
		}
		return strings.Compare(a.memberID, b.memberID)
	})

	settlements := []Settlement{}
	i, j := 0, 0
	for i < len(creditors) && j < len(debtors) {
		creditor := &creditors[i]
		debtor := &debtors[j]

		amount := min(creditor.cents, -debtor.cents)
		settlements = append(settlements, Settlement{
			From:   debtor.memberID,
			To:     creditor.memberID,
			Amount: decimal.New(amount, -CurrencyPlaces),
		})

		creditor.cents -= amount
		debtor.cents += amount

		if creditor.cents == 0 {
			i++
		}
		if debtor.cents == 0 {
			j++
		}
	}

	return settlements
}

// toCents rounds every net to whole cents and returns the non-zero ones.
// It returns nil when no member is more than one cent from zero.
//
// Each net becomes either its floor or its ceiling in cents. The ceilings go
// to the largest fractional remainders, ties by member ID, and there are
// exactly as many as it takes for the positions to sum to zero. Since the
// nets of a group sum to zero that choice always exists; for other input the
// positions get as close to zero as floors and ceilings allow.
//
// Every position is within one cent of the exact net, so once the walk has
// zeroed them each member is left less than a cent from settled.
func toCents(balances []Balance) []position {
	if !slices.ContainsFunc(balances, func(b Balance) bool {
		return b.Net.Abs().GreaterThan(epsilon)
	}) {
		return nil
	}

	type remainder struct {
		idx  int
		frac decimal.Decimal
	}

	scale := decimal.New(1, CurrencyPlaces)
	positions := make([]position, len(balances))
	var (
		fracs []remainder
		sum   int64
	)
	for i, b := range balances {
		exact := b.Net.Mul(scale)
		floor := exact.Floor()
		if frac := exact.Sub(floor); frac.IsPositive() {
			fracs = append(fracs, remainder{idx: i, frac: frac})
		}
		positions[i] = position{memberID: b.MemberID, cents: floor.IntPart()}
		sum += positions[i].cents
	}

	slices.SortFunc(fracs, func(a, b remainder) int {
		if c := b.frac.Cmp(a.frac); c != 0 {
			return c
		}
		return strings.Compare(positions[a.idx].memberID, positions[b.idx].memberID)
	})
	ceilings := min(max(-sum, 0), int64(len(fracs)))
	for _, r := range fracs[:ceilings] {
		positions[r.idx].cents++
	}

	return slices.DeleteFunc(positions, func(p position) bool { return p.cents == 0 })
}

// ApplySettlements replays transfers against balances and returns the
// resulting balances; the input is not modified. The payer's Paid and the
// receiver's Owed grow by each amount, so Net moves toward zero for both.
//
// It is used both to check a plan and to fold recorded payments into a
// group's balances before planning what is still outstanding.
func ApplySettlements(balances []Balance, settlements []Settlement) ([]Balance, error) {
	index := make(map[string]int, len(balances))
	for i, b := range balances {
		index[b.MemberID] = i
	}

	var errs []error
	for _, s := range settlements {
		if _, ok := index[s.From]; !ok {
			errs = append(errs, fault(CodeUnknownMember, "", s.From, "settlement from unknown member"))
		}
		if _, ok := index[s.To]; !ok {
			errs = append(errs, fault(CodeUnknownMember, "", s.To, "settlement to unknown member"))
		}
		if s.From == s.To {
			errs = append(errs, fault(CodeInvalidSettlement, "", s.From, "settlement with self"))
		}
		if !s.Amount.IsPositive() {
			errs = append(errs, fault(CodeInvalidSettlement, "", s.From, "settlement amount must be positive"))
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	out := make([]Balance, len(balances))
	copy(out, balances)
	for _, s := range settlements {
		from := &out[index[s.From]]
		to := &out[index[s.To]]
		from.Paid = from.Paid.Add(s.Amount)
		to.Owed = to.Owed.Add(s.Amount)
	}
	for i := range out {
		out[i].Net = out[i].Paid.Sub(out[i].Owed)
	}
	return out, nil
}
