package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/budgetly/internal/debt"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

const selectDebtColumns = `
	id, owner_id, name, total_amount, monthly_interest_rate, minimum_payment,
	due_day, priority_strategy, status, notes, created_at, updated_at
`

func scanDebt(s scanner) (*debt.Debt, error) {
	var d debt.Debt

	var strategyStr, statusStr string

	var notes sql.NullString

	if err := s.Scan(
		&d.ID, &d.OwnerID, &d.Name, &d.TotalAmount, &d.MonthlyInterestRate, &d.MinimumPayment,
		&d.DueDay, &strategyStr, &statusStr, &notes, &d.CreatedAt, &d.UpdatedAt,
	); err != nil {
		return nil, err
	}

	d.Strategy = debt.Strategy(strategyStr)
	d.Status = debt.Status(statusStr)
	d.Notes = notes.String

	return &d, nil
}

func (s *Store) CreateDebt(ctx context.Context, d *debt.Debt) error {
	query := `
		INSERT INTO debts (owner_id, name, total_amount, monthly_interest_rate, minimum_payment,
			due_day, priority_strategy, status, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		d.OwnerID,
		d.Name,
		d.TotalAmount,
		d.MonthlyInterestRate,
		d.MinimumPayment,
		d.DueDay,
		d.Strategy,
		d.Status,
		sql.NullString{String: d.Notes, Valid: d.Notes != ""},
	).Scan(&d.ID, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating debt: %w", err)
	}

	return nil
}

func (s *Store) GetDebt(ctx context.Context, ownerID, id uuid.UUID) (*debt.Debt, error) {
	query := `SELECT ` + selectDebtColumns + ` FROM debts WHERE id = $1 AND owner_id = $2`

	d, err := scanDebt(s.db.QueryRowContext(ctx, query, id, ownerID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, debt.ErrNotFound
		}

		return nil, fmt.Errorf("getting debt: %w", err)
	}

	return d, nil
}

func (s *Store) ListDebts(ctx context.Context, filter debt.ListFilter) ([]*debt.Debt, error) {
	query := `SELECT ` + selectDebtColumns + ` FROM debts WHERE owner_id = $1`

	args := []any{filter.OwnerID}

	argIdx := 2

	if filter.Status != nil {
		query += fmt.Sprintf(" AND status = $%d", argIdx)

		args = append(args, *filter.Status)
		argIdx++
	}

	switch filter.OrderBy {
	case debt.OrderLargestDebt:
		query += " ORDER BY total_amount DESC, created_at DESC"
	default:
		query += " ORDER BY created_at DESC"
	}

	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argIdx)

		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing debts: %w", err)
	}
	defer rows.Close()

	var debts []*debt.Debt

	for rows.Next() {
		d, err := scanDebt(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning debt: %w", err)
		}

		debts = append(debts, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating debts: %w", err)
	}

	return debts, nil
}

func (s *Store) UpdateDebt(ctx context.Context, d *debt.Debt) error {
	query := `
		UPDATE debts
		SET name = $1, total_amount = $2, monthly_interest_rate = $3, minimum_payment = $4,
			due_day = $5, priority_strategy = $6, status = $7, notes = $8, updated_at = NOW()
		WHERE id = $9 AND owner_id = $10
	`

	res, err := s.db.ExecContext(ctx, query,
		d.Name,
		d.TotalAmount,
		d.MonthlyInterestRate,
		d.MinimumPayment,
		d.DueDay,
		d.Strategy,
		d.Status,
		sql.NullString{String: d.Notes, Valid: d.Notes != ""},
		d.ID,
		d.OwnerID,
	)
	if err != nil {
		return fmt.Errorf("updating debt: %w", err)
	}

	return requireAffected(res)
}

func (s *Store) DeleteDebt(ctx context.Context, ownerID, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM debts WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return fmt.Errorf("deleting debt: %w", err)
	}

	return requireAffected(res)
}

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading affected rows: %w", err)
	}

	if n == 0 {
		return debt.ErrNotFound
	}

	return nil
}
