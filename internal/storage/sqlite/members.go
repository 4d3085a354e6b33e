package sqlite

import (
	"context"
	"fmt"

	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/storage"
)

// AddMember adds a member to an existing group.
func (s *SQLiteStore) AddMember(ctx context.Context, member *models.Member) error {
	if _, err := getGroup(ctx, s.db, member.GroupID); err != nil {
		return err
	}
	return insertMember(ctx, s.db, member)
}

func insertMember(ctx context.Context, q querier, member *models.Member) error {
	if member.ID == "" {
		member.ID = newID()
	}
	if member.CreatedAt == 0 {
		member.CreatedAt = now()
	}

	_, err := q.ExecContext(ctx,
		"INSERT INTO members (id, group_id, name, email, created_at) VALUES (?, ?, ?, ?, ?)",
		member.ID, member.GroupID, member.Name, member.Email, member.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert member: %w", err)
	}
	return nil
}

// UpdateMember changes a member's name and email.
func (s *SQLiteStore) UpdateMember(ctx context.Context, member *models.Member) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE members SET name = ?, email = ? WHERE id = ? AND group_id = ?",
		member.Name, member.Email, member.ID, member.GroupID,
	)
	if err != nil {
		return fmt.Errorf("failed to update member: %w", err)
	}
	return checkAffected(res, "member", member.ID)
}

// RemoveMember deletes a member unless an expense or payment references it.
func (s *SQLiteStore) RemoveMember(ctx context.Context, groupID, memberID string) error {
	var refs int
	err := s.db.QueryRowContext(ctx,
		`SELECT
			(SELECT COUNT(*) FROM expenses WHERE paid_by = ?) +
			(SELECT COUNT(*) FROM expense_splits WHERE member_id = ?) +
			(SELECT COUNT(*) FROM payments WHERE from_member_id = ? OR to_member_id = ?)`,
		memberID, memberID, memberID, memberID,
	).Scan(&refs)
	if err != nil {
		return fmt.Errorf("failed to count member references: %w", err)
	}
	if refs > 0 {
		return fmt.Errorf("member %s: %w", memberID, storage.ErrMemberInUse)
	}

	res, err := s.db.ExecContext(ctx,
		"DELETE FROM members WHERE id = ? AND group_id = ?",
		memberID, groupID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete member: %w", err)
	}
	return checkAffected(res, "member", memberID)
}

// ListMembers retrieves the members of a group in the order they were added.
func (s *SQLiteStore) ListMembers(ctx context.Context, groupID string) ([]models.Member, error) {
	if _, err := getGroup(ctx, s.db, groupID); err != nil {
		return nil, err
	}
	return listMembers(ctx, s.db, groupID)
}

func listMembers(ctx context.Context, q querier, groupID string) ([]models.Member, error) {
	rows, err := q.QueryContext(ctx,
		`SELECT id, group_id, name, email, created_at
		 FROM members WHERE group_id = ? ORDER BY created_at, rowid`,
		groupID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	defer rows.Close()

	var members []models.Member
	for rows.Next() {
		var m models.Member
		if err := rows.Scan(&m.ID, &m.GroupID, &m.Name, &m.Email, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate members: %w", err)
	}
	return members, nil
}
