package calculator

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/splitledger/internal/models"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal, what string) {
	t.Helper()
	assert.Truef(t, dec(want).Equal(got), "%s = %s, want %s", what, got.String(), want)
}

func member(id, name string) models.Member {
	return models.Member{ID: id, Name: name}
}

func equalExpense(id, paidBy, amount string, splitWith ...string) models.Expense {
	return models.Expense{
		ID:        id,
		Amount:    dec(amount),
		PaidBy:    paidBy,
		SplitType: models.SplitEqual,
		SplitWith: splitWith,
	}
}

func customExpense(id, paidBy, amount string, shares map[string]string) models.Expense {
	e := models.Expense{
		ID:        id,
		Amount:    dec(amount),
		PaidBy:    paidBy,
		SplitType: models.SplitCustom,
		Shares:    make(map[string]decimal.Decimal, len(shares)),
	}
	for memberID, share := range shares {
		e.SplitWith = append(e.SplitWith, memberID)
		e.Shares[memberID] = dec(share)
	}
	return e
}

var abc = []models.Member{member("a", "Alice"), member("b", "Bob"), member("c", "Charlie")}

func TestComputeBalances(t *testing.T) {
	type want struct{ paid, owed, net string }

	tests := []struct {
		name     string
		members  []models.Member
		expenses []models.Expense
		want     map[string]want
	}{
		{
			name:     "no expenses",
			members:  abc,
			expenses: nil,
			want: map[string]want{
				"a": {"0", "0", "0"},
				"b": {"0", "0", "0"},
				"c": {"0", "0", "0"},
			},
		},
		{
			name:     "three-way equal split",
			members:  abc,
			expenses: []models.Expense{equalExpense("e1", "a", "90", "a", "b", "c")},
			want: map[string]want{
				"a": {"90", "30", "60"},
				"b": {"0", "30", "-30"},
				"c": {"0", "30", "-30"},
			},
		},
		{
			name:    "expenses that cancel out",
			members: abc[:2],
			expenses: []models.Expense{
				equalExpense("e1", "a", "50", "b"),
				equalExpense("e2", "b", "50", "a"),
			},
			want: map[string]want{
				"a": {"50", "50", "0"},
				"b": {"50", "50", "0"},
			},
		},
		{
			name:    "single member pays for themselves",
			members: abc[:1],
			expenses: []models.Expense{
				equalExpense("e1", "a", "12.50", "a"),
				equalExpense("e2", "a", "7.25", "a"),
			},
			want: map[string]want{
				"a": {"19.75", "19.75", "0"},
			},
		},
		{
			name:    "payer outside the split",
			members: abc,
			expenses: []models.Expense{
				equalExpense("e1", "c", "40", "a", "b"),
			},
			want: map[string]want{
				"a": {"0", "20", "-20"},
				"b": {"0", "20", "-20"},
				"c": {"40", "0", "40"},
			},
		},
		{
			name:    "custom split uses explicit shares",
			members: abc,
			expenses: []models.Expense{
				customExpense("e1", "b", "100", map[string]string{"a": "50", "b": "30", "c": "20"}),
			},
			want: map[string]want{
				"a": {"0", "50", "-50"},
				"b": {"100", "30", "70"},
				"c": {"0", "20", "-20"},
			},
		},
		{
			name:    "custom share of zero is allowed",
			members: abc,
			expenses: []models.Expense{
				customExpense("e1", "a", "10", map[string]string{"a": "0", "b": "10"}),
			},
			want: map[string]want{
				"a": {"10", "0", "10"},
				"b": {"0", "10", "-10"},
				"c": {"0", "0", "0"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			balances, err := ComputeBalances(tt.members, tt.expenses)
			require.NoError(t, err)
			require.Len(t, balances, len(tt.members))

			for i, b := range balances {
				assert.Equal(t, tt.members[i].ID, b.MemberID, "balances keep member order")
				assert.Equal(t, tt.members[i].Name, b.Name)

				w, ok := tt.want[b.MemberID]
				require.True(t, ok, "unexpected member %s", b.MemberID)
				assertDecimal(t, w.paid, b.Paid, b.MemberID+" paid")
				assertDecimal(t, w.owed, b.Owed, b.MemberID+" owed")
				assertDecimal(t, w.net, b.Net, b.MemberID+" net")
			}
		})
	}
}

func TestComputeBalances_Faults(t *testing.T) {
	tests := []struct {
		name     string
		members  []models.Member
		expenses []models.Expense
		wantErr  error
	}{
		{
			name:     "split member not in group",
			members:  abc,
			expenses: []models.Expense{equalExpense("e1", "a", "30", "a", "zed")},
			wantErr:  ErrUnknownMember,
		},
		{
			name:     "payer not in group",
			members:  abc,
			expenses: []models.Expense{equalExpense("e1", "zed", "30", "a", "b")},
			wantErr:  ErrUnknownMember,
		},
		{
			name:     "empty split set",
			members:  abc,
			expenses: []models.Expense{equalExpense("e1", "a", "30")},
			wantErr:  ErrDegenerateSplit,
		},
		{
			name:     "member split twice",
			members:  abc,
			expenses: []models.Expense{equalExpense("e1", "a", "30", "b", "b")},
			wantErr:  ErrDegenerateSplit,
		},
		{
			name:     "zero amount",
			members:  abc,
			expenses: []models.Expense{equalExpense("e1", "a", "0", "a", "b")},
			wantErr:  ErrDegenerateSplit,
		},
		{
			name:     "negative amount",
			members:  abc,
			expenses: []models.Expense{equalExpense("e1", "a", "-5", "a", "b")},
			wantErr:  ErrDegenerateSplit,
		},
		{
			name:    "custom split without shares",
			members: abc,
			expenses: []models.Expense{{
				ID: "e1", Amount: dec("30"), PaidBy: "a",
				SplitType: models.SplitCustom, SplitWith: []string{"a", "b"},
			}},
			wantErr: ErrMissingShares,
		},
		{
			name:    "custom shares do not sum to amount",
			members: abc,
			expenses: []models.Expense{
				customExpense("e1", "a", "30", map[string]string{"a": "10", "b": "10"}),
			},
			wantErr: ErrMissingShares,
		},
		{
			name:    "custom share for member outside split",
			members: abc,
			expenses: []models.Expense{{
				ID: "e1", Amount: dec("30"), PaidBy: "a",
				SplitType: models.SplitCustom, SplitWith: []string{"a"},
				Shares: map[string]decimal.Decimal{"a": dec("15"), "b": dec("15")},
			}},
			wantErr: ErrMissingShares,
		},
		{
			name:    "custom negative share",
			members: abc,
			expenses: []models.Expense{
				customExpense("e1", "a", "30", map[string]string{"a": "40", "b": "-10"}),
			},
			wantErr: ErrMissingShares,
		},
		{
			name:    "unknown split type",
			members: abc,
			expenses: []models.Expense{{
				ID: "e1", Amount: dec("30"), PaidBy: "a",
				SplitType: "percentage", SplitWith: []string{"a"},
			}},
			wantErr: ErrInvalidSplitType,
		},
		{
			name:     "duplicate member id",
			members:  []models.Member{member("a", "Alice"), member("a", "Alicia")},
			expenses: nil,
			wantErr:  ErrDuplicateMember,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			balances, err := ComputeBalances(tt.members, tt.expenses)
			require.Error(t, err)
			assert.Nil(t, balances, "no balances are produced for a faulty snapshot")
			assert.ErrorIs(t, err, tt.wantErr)

			var vf *ValidationFault
			require.True(t, errors.As(err, &vf))
			assert.Equal(t, tt.wantErr.(*ValidationFault).Code, vf.Code)
		})
	}
}

func TestComputeBalances_ReportsEveryFault(t *testing.T) {
	expenses := []models.Expense{
		equalExpense("e1", "a", "30", "a", "ghost"),
		equalExpense("e2", "b", "0", "b"),
		equalExpense("e3", "c", "15", "a", "c"),
	}

	_, err := ComputeBalances(abc, expenses)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownMember)
	assert.ErrorIs(t, err, ErrDegenerateSplit)
	assert.Contains(t, err.Error(), "expense e1")
	assert.Contains(t, err.Error(), "expense e2")
	assert.NotContains(t, err.Error(), "expense e3")

	faults := Faults(err)
	require.Len(t, faults, 2)
	assert.Equal(t, CodeUnknownMember, faults[0].Code)
	assert.Equal(t, "ghost", faults[0].MemberID)
	assert.Equal(t, CodeDegenerateSplit, faults[1].Code)
	assert.Equal(t, "e2", faults[1].ExpenseID)
}

func TestFaults(t *testing.T) {
	assert.Nil(t, Faults(nil))
	assert.Nil(t, Faults(errors.New("boom")))

	single := fault(CodeMissingShares, "e1", "", "missing split shares")
	assert.Equal(t, []*ValidationFault{single}, Faults(single))

	nested := errors.Join(errors.Join(single, errors.New("skip")), ErrDuplicateMember)
	assert.Equal(t, []*ValidationFault{single, ErrDuplicateMember}, Faults(nested))
}

func TestComputeBalances_OrderIndependent(t *testing.T) {
	expenses := []models.Expense{
		equalExpense("e1", "a", "100", "a", "b", "c"),
		equalExpense("e2", "b", "45.10", "a", "b"),
		customExpense("e3", "c", "60", map[string]string{"a": "25.5", "c": "34.5"}),
		equalExpense("e4", "a", "7", "c"),
	}

	want, err := ComputeBalances(abc, expenses)
	require.NoError(t, err)

	rng := rand.New(rand.NewPCG(7, 11))
	for range 20 {
		shuffled := append([]models.Expense(nil), expenses...)
		rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

		got, err := ComputeBalances(abc, shuffled)
		require.NoError(t, err)
		for i := range want {
			assert.True(t, want[i].Paid.Equal(got[i].Paid))
			assert.True(t, want[i].Owed.Equal(got[i].Owed))
			assert.True(t, want[i].Net.Equal(got[i].Net))
		}
	}
}

func TestComputeBalances_DoesNotModifyInput(t *testing.T) {
	expenses := []models.Expense{equalExpense("e1", "a", "90", "c", "b", "a")}

	_, err := ComputeBalances(abc, expenses)
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "b", "a"}, expenses[0].SplitWith)
	assert.Equal(t, "Alice", abc[0].Name)
}

func TestValidateExpense(t *testing.T) {
	assert.NoError(t, ValidateExpense(abc, equalExpense("e1", "a", "10", "a", "b")))
	assert.NoError(t, ValidateExpense(abc,
		customExpense("e2", "a", "10", map[string]string{"a": "2.50", "c": "7.50"})))

	err := ValidateExpense(abc, equalExpense("e3", "a", "10", "d"))
	assert.ErrorIs(t, err, ErrUnknownMember)
}
