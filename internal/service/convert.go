package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mmynk/splitledger/internal/calculator"
	"github.com/mmynk/splitledger/internal/models"
	pb "github.com/mmynk/splitledger/pkg/proto"
)

func toPBMember(m models.Member) *pb.Member {
	return &pb.Member{
		Id:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		CreatedAt: m.CreatedAt,
	}
}

func toPBGroup(g *models.Group, members []models.Member) *pb.Group {
	pbMembers := make([]*pb.Member, len(members))
	for i, m := range members {
		pbMembers[i] = toPBMember(m)
	}
	return &pb.Group{
		Id:          g.ID,
		Name:        g.Name,
		Description: g.Description,
		Members:     pbMembers,
		CreatedAt:   g.CreatedAt,
	}
}

func toPBExpense(e *models.Expense) *pb.Expense {
	var shares map[string]string
	if len(e.Shares) > 0 {
		shares = make(map[string]string, len(e.Shares))
		for id, share := range e.Shares {
			shares[id] = share.String()
		}
	}
	return &pb.Expense{
		Id:          e.ID,
		GroupId:     e.GroupID,
		Description: e.Description,
		Amount:      e.Amount.String(),
		PaidBy:      e.PaidBy,
		SplitType:   string(e.SplitType),
		SplitWith:   e.SplitWith,
		Shares:      shares,
		Date:        e.Date.Format(models.DateLayout),
		Category:    e.Category,
		CreatedAt:   e.CreatedAt,
	}
}

func toPBPayment(p *models.Payment) *pb.Payment {
	return &pb.Payment{
		Id:        p.ID,
		GroupId:   p.GroupID,
		From:      p.FromMemberID,
		To:        p.ToMemberID,
		Amount:    p.Amount.String(),
		Note:      p.Note,
		CreatedAt: p.CreatedAt,
	}
}

// formatMoney renders a derived amount rounded to cents, e.g. "33.33".
func formatMoney(d decimal.Decimal) string {
	return d.StringFixed(calculator.CurrencyPlaces)
}

// parseMoney reads an amount sent as a decimal string.
func parseMoney(field, s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid %s %q: want a decimal such as 12.50", field, s)
	}
	return d, nil
}

func toPBBalances(balances []calculator.Balance) []*pb.MemberBalance {
	out := make([]*pb.MemberBalance, len(balances))
	for i, b := range balances {
		out[i] = &pb.MemberBalance{
			MemberId: b.MemberID,
			Name:     b.Name,
			Paid:     formatMoney(b.Paid),
			Owed:     formatMoney(b.Owed),
			Net:      formatMoney(b.Net),
		}
	}
	return out
}

func toPBSettlements(settlements []calculator.Settlement, names map[string]string) []*pb.Settlement {
	out := make([]*pb.Settlement, len(settlements))
	for i, s := range settlements {
		out[i] = &pb.Settlement{
			From:     s.From,
			FromName: names[s.From],
			To:       s.To,
			ToName:   names[s.To],
			Amount:   formatMoney(s.Amount),
		}
	}
	return out
}

// paymentsAsSettlements lets recorded payments be replayed against balances.
func paymentsAsSettlements(payments []models.Payment) []calculator.Settlement {
	out := make([]calculator.Settlement, len(payments))
	for i, p := range payments {
		out[i] = calculator.Settlement{From: p.FromMemberID, To: p.ToMemberID, Amount: p.Amount}
	}
	return out
}

// expenseFromInput builds the expense fields from a request, applying the
// split type and date defaults. SplitWith is taken as given. Shares are
// only read for custom splits; an equal split never carries any.
func expenseFromInput(in *pb.ExpenseInput, today time.Time) (models.Expense, error) {
	if in == nil {
		return models.Expense{}, fmt.Errorf("expense required")
	}

	amount, err := parseMoney("amount", in.GetAmount())
	if err != nil {
		return models.Expense{}, err
	}

	splitType := models.SplitType(in.GetSplitType())
	if splitType == "" {
		splitType = models.SplitEqual
	}

	date := today.UTC().Truncate(24 * time.Hour)
	if in.GetDate() != "" {
		parsed, err := time.Parse(models.DateLayout, in.GetDate())
		if err != nil {
			return models.Expense{}, fmt.Errorf("invalid date %q: want YYYY-MM-DD", in.GetDate())
		}
		date = parsed
	}

	var shares map[string]decimal.Decimal
	if splitType == models.SplitCustom && len(in.GetShares()) > 0 {
		shares = make(map[string]decimal.Decimal, len(in.GetShares()))
		for id, s := range in.GetShares() {
			share, err := parseMoney("share for "+id, s)
			if err != nil {
				return models.Expense{}, err
			}
			shares[id] = share
		}
	}

	return models.Expense{
		Description: in.GetDescription(),
		Amount:      amount,
		PaidBy:      in.GetPaidBy(),
		SplitType:   splitType,
		SplitWith:   append([]string(nil), in.GetSplitWith()...),
		Shares:      shares,
		Date:        date,
		Category:    in.GetCategory(),
	}, nil
}

func memberNames(members []models.Member) map[string]string {
	names := make(map[string]string, len(members))
	for _, m := range members {
		names[m.ID] = m.Name
	}
	return names
}
