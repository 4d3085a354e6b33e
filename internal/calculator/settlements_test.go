package calculator

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/splitledger/internal/models"
)

func balance(id, net string) Balance {
	n := dec(net)
	b := Balance{MemberID: id, Name: id, Paid: decimal.Zero, Owed: decimal.Zero, Net: n}
	if n.IsPositive() {
		b.Paid = n
	} else {
		b.Owed = n.Neg()
	}
	return b
}

// assertSettled checks every net is within a cent of zero.
func assertSettled(t *testing.T, balances []Balance) {
	t.Helper()
	for _, b := range balances {
		assert.Truef(t, b.Net.Abs().LessThanOrEqual(epsilon),
			"member %s left with net %s after settling", b.MemberID, b.Net.String())
	}
}

func TestPlanSettlements_ThreeWaySplit(t *testing.T) {
	balances, err := ComputeBalances(abc, []models.Expense{equalExpense("e1", "a", "90", "a", "b", "c")})
	require.NoError(t, err)

	plan := PlanSettlements(balances)
	require.Len(t, plan, 2)

	assert.Equal(t, "b", plan[0].From)
	assert.Equal(t, "a", plan[0].To)
	assert.Equal(t, "30.00", plan[0].Amount.StringFixed(CurrencyPlaces))

	assert.Equal(t, "c", plan[1].From)
	assert.Equal(t, "a", plan[1].To)
	assert.Equal(t, "30.00", plan[1].Amount.StringFixed(CurrencyPlaces))
}

func TestPlanSettlements(t *testing.T) {
	tests := []struct {
		name     string
		balances []Balance
		want     []string // "from->to:amount"
	}{
		{
			name:     "empty input",
			balances: nil,
			want:     []string{},
		},
		{
			name:     "everyone already settled",
			balances: []Balance{balance("a", "0"), balance("b", "0.01"), balance("c", "-0.01")},
			want:     []string{},
		},
		{
			name:     "one debtor one creditor",
			balances: []Balance{balance("a", "25"), balance("b", "-25")},
			want:     []string{"b->a:25"},
		},
		{
			name:     "largest debt goes to largest credit first",
			balances: []Balance{balance("a", "10"), balance("b", "50"), balance("c", "-40"), balance("d", "-20")},
			want:     []string{"c->b:40", "d->b:10", "d->a:10"},
		},
		{
			name:     "one debtor pays several creditors",
			balances: []Balance{balance("a", "15"), balance("b", "5"), balance("c", "-20")},
			want:     []string{"c->a:15", "c->b:5"},
		},
		{
			name:     "ties broken by member id",
			balances: []Balance{balance("z", "-5"), balance("y", "10"), balance("x", "-5")},
			want:     []string{"x->y:5", "z->y:5"},
		},
		{
			name:     "amount rounded to cents",
			balances: []Balance{balance("a", "66.666666"), balance("b", "-33.333333"), balance("c", "-33.333333")},
			want:     []string{"b->a:33.33", "c->a:33.33"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := PlanSettlements(tt.balances)
			require.NotNil(t, plan)

			got := make([]string, len(plan))
			for i, s := range plan {
				got[i] = fmt.Sprintf("%s->%s:%s", s.From, s.To, s.Amount.String())
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPlanSettlements_CancellingExpenses(t *testing.T) {
	balances, err := ComputeBalances(abc[:2], []models.Expense{
		equalExpense("e1", "a", "50", "b"),
		equalExpense("e2", "b", "50", "a"),
	})
	require.NoError(t, err)
	assert.Empty(t, PlanSettlements(balances))
}

func TestPlanSettlements_Thirds(t *testing.T) {
	balances, err := ComputeBalances(abc, []models.Expense{equalExpense("e1", "a", "100", "a", "b", "c")})
	require.NoError(t, err)

	plan := PlanSettlements(balances)
	require.Len(t, plan, 2)
	assert.Equal(t, "c->a:33.34", fmt.Sprintf("%s->%s:%s", plan[0].From, plan[0].To, plan[0].Amount))
	assert.Equal(t, "b->a:33.33", fmt.Sprintf("%s->%s:%s", plan[1].From, plan[1].To, plan[1].Amount))

	settled, err := ApplySettlements(balances, plan)
	require.NoError(t, err)
	assertSettled(t, settled)
	assert.Empty(t, PlanSettlements(settled))
}

func TestPlanSettlements_SevenWaySplit(t *testing.T) {
	var members []models.Member
	var ids []string
	for _, id := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		members = append(members, member(id, id))
		ids = append(ids, id)
	}
	balances, err := ComputeBalances(members, []models.Expense{equalExpense("e1", "a", "100", ids...)})
	require.NoError(t, err)

	plan := PlanSettlements(balances)
	got := make([]string, len(plan))
	total := decimal.Zero
	for i, s := range plan {
		got[i] = fmt.Sprintf("%s->%s:%s", s.From, s.To, s.Amount.String())
		total = total.Add(s.Amount)
	}
	assert.Equal(t, []string{
		"d->a:14.29", "e->a:14.29", "f->a:14.29", "g->a:14.29",
		"b->a:14.28", "c->a:14.28",
	}, got)
	assertDecimal(t, "85.72", total, "collected by a")

	settled, err := ApplySettlements(balances, plan)
	require.NoError(t, err)
	assertSettled(t, settled)
	assert.Empty(t, PlanSettlements(settled))
}

func TestPlanSettlements_SubCentShares(t *testing.T) {
	// Every non-payer owes 0.00625, under a cent each, but together they
	// owe the payer more than four cents.
	var members []models.Member
	var ids []string
	for i := range 8 {
		id := fmt.Sprintf("m%d", i)
		members = append(members, member(id, id))
		ids = append(ids, id)
	}
	balances, err := ComputeBalances(members, []models.Expense{equalExpense("e1", "m0", "0.05", ids...)})
	require.NoError(t, err)

	plan := PlanSettlements(balances)
	require.Len(t, plan, 5)
	for _, s := range plan {
		assert.Equal(t, "m0", s.To)
		assertDecimal(t, "0.01", s.Amount, s.From+" pays")
	}

	settled, err := ApplySettlements(balances, plan)
	require.NoError(t, err)
	assertSettled(t, settled)
	assert.Empty(t, PlanSettlements(settled))
}

func TestToCents(t *testing.T) {
	tests := []struct {
		name     string
		balances []Balance
		want     []position
	}{
		{
			name:     "settled group",
			balances: []Balance{balance("a", "0.01"), balance("b", "-0.004"), balance("c", "-0.006")},
			want:     nil,
		},
		{
			name:     "exact cents kept",
			balances: []Balance{balance("a", "12.34"), balance("b", "-12.34"), balance("c", "0")},
			want:     []position{{"a", 1234}, {"b", -1234}},
		},
		{
			name:     "largest remainder takes the extra cent",
			balances: []Balance{balance("a", "10.004"), balance("b", "-5.003"), balance("c", "-5.001")},
			want:     []position{{"a", 1000}, {"b", -500}, {"c", -500}},
		},
		{
			name:     "equal remainders go by member id",
			balances: []Balance{balance("b", "0.015"), balance("a", "0.015"), balance("c", "-0.03")},
			want:     []position{{"b", 1}, {"a", 2}, {"c", -3}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := toCents(tt.balances)
			assert.Equal(t, tt.want, got)

			var sum int64
			for _, p := range got {
				sum += p.cents
			}
			assert.Zero(t, sum)
		})
	}
}

func TestApplySettlements(t *testing.T) {
	balances := []Balance{balance("a", "60"), balance("b", "-30"), balance("c", "-30")}
	plan := []Settlement{{From: "b", To: "a", Amount: dec("30")}}

	got, err := ApplySettlements(balances, plan)
	require.NoError(t, err)

	assertDecimal(t, "30", got[0].Net, "a net")
	assertDecimal(t, "30", got[0].Owed, "a owed")
	assertDecimal(t, "0", got[1].Net, "b net")
	assertDecimal(t, "30", got[1].Paid, "b paid")
	assertDecimal(t, "-30", got[2].Net, "c net")

	// input untouched
	assertDecimal(t, "-30", balances[1].Net, "input b net")
}

func TestApplySettlements_Faults(t *testing.T) {
	balances := []Balance{balance("a", "10"), balance("b", "-10")}

	tests := []struct {
		name    string
		s       Settlement
		wantErr error
	}{
		{"unknown payer", Settlement{From: "x", To: "a", Amount: dec("1")}, ErrUnknownMember},
		{"unknown receiver", Settlement{From: "b", To: "x", Amount: dec("1")}, ErrUnknownMember},
		{"self transfer", Settlement{From: "a", To: "a", Amount: dec("1")}, ErrInvalidSettlement},
		{"zero amount", Settlement{From: "b", To: "a", Amount: decimal.Zero}, ErrInvalidSettlement},
		{"negative amount", Settlement{From: "b", To: "a", Amount: dec("-5")}, ErrInvalidSettlement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ApplySettlements(balances, []Settlement{tt.s})
			assert.Nil(t, got)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.NotErrorIs(t, err, ErrDegenerateSplit)
		})
	}
}

// centAmounts are equal-split totals that rarely divide evenly, so shares
// and nets carry fractions of a cent.
var centAmounts = []string{"100", "10", "0.05", "33.33", "0.10", "7.77"}

// randomGroup builds a valid snapshot mixing whole-unit custom splits with
// equal splits whose shares do not come out in whole cents.
func randomGroup(rng *rand.Rand) ([]models.Member, []models.Expense) {
	n := 1 + rng.IntN(8)
	members := make([]models.Member, n)
	for i := range members {
		members[i] = member(fmt.Sprintf("m%02d", i), fmt.Sprintf("Member %d", i))
	}

	expenses := make([]models.Expense, rng.IntN(25))
	for i := range expenses {
		perm := rng.Perm(n)
		split := perm[:1+rng.IntN(n)]
		payer := members[rng.IntN(n)].ID
		id := fmt.Sprintf("e%02d", i)

		if kind := rng.IntN(3); kind < 2 {
			ids := make([]string, len(split))
			for k, idx := range split {
				ids[k] = members[idx].ID
			}
			amount := decimal.NewFromInt(int64(1 + rng.IntN(200)))
			if kind == 1 {
				amount = dec(centAmounts[rng.IntN(len(centAmounts))])
			}
			expenses[i] = models.Expense{
				ID: id, Amount: amount, PaidBy: payer,
				SplitType: models.SplitEqual, SplitWith: ids,
			}
			continue
		}

		shares := make(map[string]string, len(split))
		total := 0
		for _, idx := range split {
			share := rng.IntN(120)
			total += share
			shares[members[idx].ID] = fmt.Sprint(share)
		}
		if total == 0 {
			shares[members[split[0]].ID] = "1"
			total = 1
		}
		expenses[i] = customExpense(id, payer, fmt.Sprint(total), shares)
	}
	return members, expenses
}

func TestSettlementProperties(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 1024))

	for iter := range 300 {
		members, expenses := randomGroup(rng)

		balances, err := ComputeBalances(members, expenses)
		require.NoError(t, err, "iteration %d", iter)

		sum := decimal.Zero
		for _, b := range balances {
			sum = sum.Add(b.Net)
		}
		require.Truef(t, sum.Abs().LessThanOrEqual(epsilon), "iteration %d: nets sum to %s", iter, sum)

		creditors, debtors := 0, 0
		for _, p := range toCents(balances) {
			if p.cents > 0 {
				creditors++
			} else {
				debtors++
			}
		}

		plan := PlanSettlements(balances)
		for _, s := range plan {
			assert.True(t, s.Amount.IsPositive(), "iteration %d: non-positive transfer", iter)
			assert.NotEqual(t, s.From, s.To)
		}
		if creditors+debtors > 0 {
			assert.LessOrEqual(t, len(plan), creditors+debtors-1, "iteration %d", iter)
		} else {
			assert.Empty(t, plan)
		}

		settled, err := ApplySettlements(balances, plan)
		require.NoError(t, err)
		assertSettled(t, settled)
		assert.Empty(t, PlanSettlements(settled), "iteration %d: planner is not idempotent", iter)
	}
}
