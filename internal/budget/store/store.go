package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/budgetly/internal/budget"
	"github.com/MrJamesThe3rd/budgetly/internal/period"
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

const selectItemColumns = `id, owner_id, month, year, category, planned_amount, created_at, updated_at`

func scanItem(s scanner) (*budget.Item, error) {
	var item budget.Item

	var month int

	if err := s.Scan(
		&item.ID, &item.OwnerID, &month, &item.Year, &item.Category,
		&item.PlannedAmount, &item.CreatedAt, &item.UpdatedAt,
	); err != nil {
		return nil, err
	}

	item.Month = time.Month(month)

	return &item, nil
}

// ListItems returns the period's items in insertion order.
func (s *Store) ListItems(ctx context.Context, ownerID uuid.UUID, p period.Period) ([]*budget.Item, error) {
	query := `SELECT ` + selectItemColumns + `
		FROM budget_items
		WHERE owner_id = $1 AND month = $2 AND year = $3
		ORDER BY created_at ASC, id ASC`

	rows, err := s.db.QueryContext(ctx, query, ownerID, int(p.Month), p.Year)
	if err != nil {
		return nil, fmt.Errorf("listing budget items: %w", err)
	}
	defer rows.Close()

	var items []*budget.Item

	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning budget item: %w", err)
		}

		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating budget items: %w", err)
	}

	return items, nil
}

func (s *Store) GetItem(ctx context.Context, ownerID, id uuid.UUID) (*budget.Item, error) {
	query := `SELECT ` + selectItemColumns + ` FROM budget_items WHERE id = $1 AND owner_id = $2`

	item, err := scanItem(s.db.QueryRowContext(ctx, query, id, ownerID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, budget.ErrNotFound
		}

		return nil, fmt.Errorf("getting budget item: %w", err)
	}

	return item, nil
}

func (s *Store) CreateItem(ctx context.Context, item *budget.Item) error {
	query := `
		INSERT INTO budget_items (owner_id, month, year, category, planned_amount, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		item.OwnerID,
		int(item.Month),
		item.Year,
		item.Category,
		item.PlannedAmount,
	).Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating budget item: %w", err)
	}

	return nil
}

func (s *Store) UpdatePlannedAmount(ctx context.Context, ownerID, id uuid.UUID, amount decimal.Decimal) (*budget.Item, error) {
	query := `
		UPDATE budget_items
		SET planned_amount = $1, updated_at = NOW()
		WHERE id = $2 AND owner_id = $3
		RETURNING ` + selectItemColumns

	item, err := scanItem(s.db.QueryRowContext(ctx, query, amount, id, ownerID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, budget.ErrNotFound
		}

		return nil, fmt.Errorf("updating budget item: %w", err)
	}

	return item, nil
}

func (s *Store) DeleteItem(ctx context.Context, ownerID, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM budget_items WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return fmt.Errorf("deleting budget item: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading affected rows: %w", err)
	}

	if n == 0 {
		return budget.ErrNotFound
	}

	return nil
}
