package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/storage"
)

const expenseColumns = "id, group_id, description, amount, paid_by, split_type, date, category, created_at"

// CreateExpense persists a new expense and its split members.
func (s *SQLiteStore) CreateExpense(ctx context.Context, expense *models.Expense) error {
	if expense.ID == "" {
		expense.ID = newID()
	}
	if expense.CreatedAt == 0 {
		expense.CreatedAt = now()
	}

	return s.inTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO expenses ("+expenseColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)",
			expense.ID, expense.GroupID, expense.Description, expense.Amount.String(),
			expense.PaidBy, string(expense.SplitType), expense.Date.Format(models.DateLayout),
			expense.Category, expense.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert expense: %w", err)
		}
		return insertSplits(ctx, tx, expense)
	})
}

func insertSplits(ctx context.Context, tx *sql.Tx, expense *models.Expense) error {
	for i, memberID := range expense.SplitWith {
		var share any
		if expense.SplitType == models.SplitCustom {
			if v, ok := expense.Shares[memberID]; ok {
				share = v.String()
			}
		}
		_, err := tx.ExecContext(ctx,
			"INSERT INTO expense_splits (expense_id, member_id, position, share) VALUES (?, ?, ?, ?)",
			expense.ID, memberID, i, share,
		)
		if err != nil {
			return fmt.Errorf("failed to insert expense split: %w", err)
		}
	}
	return nil
}

// GetExpense retrieves an expense by ID, including its split.
func (s *SQLiteStore) GetExpense(ctx context.Context, expenseID string) (*models.Expense, error) {
	var expense *models.Expense
	err := s.inTx(ctx, func(tx *sql.Tx) error {
		row := tx.QueryRowContext(ctx,
			"SELECT "+expenseColumns+" FROM expenses WHERE id = ?",
			expenseID,
		)
		e, err := scanExpense(row)
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("expense %s: %w", expenseID, storage.ErrNotFound)
		}
		if err != nil {
			return fmt.Errorf("failed to get expense: %w", err)
		}

		rows, err := tx.QueryContext(ctx,
			"SELECT expense_id, member_id, share FROM expense_splits WHERE expense_id = ? ORDER BY position",
			expenseID,
		)
		if err != nil {
			return fmt.Errorf("failed to get expense splits: %w", err)
		}
		byID := map[string]*models.Expense{e.ID: &e}
		if err := scanSplits(rows, byID); err != nil {
			return err
		}
		expense = &e
		return nil
	})
	if err != nil {
		return nil, err
	}
	return expense, nil
}

// ListExpenses retrieves a group's expenses, most recent date first.
func (s *SQLiteStore) ListExpenses(ctx context.Context, groupID string) ([]models.Expense, error) {
	var expenses []models.Expense
	err := s.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := getGroup(ctx, tx, groupID); err != nil {
			return err
		}
		var err error
		expenses, err = listExpenses(ctx, tx, groupID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return expenses, nil
}

func listExpenses(ctx context.Context, q querier, groupID string) ([]models.Expense, error) {
	rows, err := q.QueryContext(ctx,
		"SELECT "+expenseColumns+" FROM expenses WHERE group_id = ? ORDER BY date DESC, created_at DESC, id",
		groupID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []models.Expense
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expenses: %w", err)
	}
	rows.Close()

	if len(expenses) == 0 {
		return expenses, nil
	}

	// Splits are fetched in one query after the expense rows are closed;
	// the store runs on a single connection.
	byID := make(map[string]*models.Expense, len(expenses))
	for i := range expenses {
		byID[expenses[i].ID] = &expenses[i]
	}
	splitRows, err := q.QueryContext(ctx,
		`SELECT s.expense_id, s.member_id, s.share
		 FROM expense_splits s JOIN expenses e ON e.id = s.expense_id
		 WHERE e.group_id = ? ORDER BY s.expense_id, s.position`,
		groupID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list expense splits: %w", err)
	}
	if err := scanSplits(splitRows, byID); err != nil {
		return nil, err
	}
	return expenses, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanExpense(row rowScanner) (models.Expense, error) {
	var (
		e         models.Expense
		splitType string
		date      string
	)
	if err := row.Scan(&e.ID, &e.GroupID, &e.Description, &e.Amount, &e.PaidBy,
		&splitType, &date, &e.Category, &e.CreatedAt); err != nil {
		return e, err
	}
	e.SplitType = models.SplitType(splitType)

	d, err := time.Parse(models.DateLayout, date)
	if err != nil {
		return e, fmt.Errorf("invalid stored date %q: %w", date, err)
	}
	e.Date = d
	return e, nil
}

// scanSplits appends split members (and custom shares) to their expenses and closes rows.
func scanSplits(rows *sql.Rows, byID map[string]*models.Expense) error {
	defer rows.Close()
	for rows.Next() {
		var (
			expenseID, memberID string
			share               decimal.NullDecimal
		)
		if err := rows.Scan(&expenseID, &memberID, &share); err != nil {
			return fmt.Errorf("failed to scan expense split: %w", err)
		}
		e, ok := byID[expenseID]
		if !ok {
			continue
		}
		e.SplitWith = append(e.SplitWith, memberID)
		if share.Valid {
			if e.Shares == nil {
				e.Shares = make(map[string]decimal.Decimal)
			}
			e.Shares[memberID] = share.Decimal
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate expense splits: %w", err)
	}
	return nil
}

// UpdateExpense replaces an existing expense and its split.
func (s *SQLiteStore) UpdateExpense(ctx context.Context, expense *models.Expense) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			`UPDATE expenses
			 SET description = ?, amount = ?, paid_by = ?, split_type = ?, date = ?, category = ?
			 WHERE id = ?`,
			expense.Description, expense.Amount.String(), expense.PaidBy, string(expense.SplitType),
			expense.Date.Format(models.DateLayout), expense.Category, expense.ID,
		)
		if err != nil {
			return fmt.Errorf("failed to update expense: %w", err)
		}
		if err := checkAffected(res, "expense", expense.ID); err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, "DELETE FROM expense_splits WHERE expense_id = ?", expense.ID); err != nil {
			return fmt.Errorf("failed to clear expense splits: %w", err)
		}
		return insertSplits(ctx, tx, expense)
	})
}

// DeleteExpense removes an expense; its splits cascade.
func (s *SQLiteStore) DeleteExpense(ctx context.Context, expenseID string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM expenses WHERE id = ?", expenseID)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	return checkAffected(res, "expense", expenseID)
}
