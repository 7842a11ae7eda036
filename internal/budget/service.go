package budget

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/budgetly/internal/period"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=budget
type Repository interface {
	ListItems(ctx context.Context, ownerID uuid.UUID, p period.Period) ([]*Item, error)
	GetItem(ctx context.Context, ownerID, id uuid.UUID) (*Item, error)
	CreateItem(ctx context.Context, item *Item) error
	UpdatePlannedAmount(ctx context.Context, ownerID, id uuid.UUID, amount decimal.Decimal) (*Item, error)
	DeleteItem(ctx context.Context, ownerID, id uuid.UUID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, ownerID uuid.UUID, p period.Period) ([]*Item, error) {
	return s.repo.ListItems(ctx, ownerID, p)
}

func (s *Service) Get(ctx context.Context, ownerID, id uuid.UUID) (*Item, error) {
	return s.repo.GetItem(ctx, ownerID, id)
}

// Create adds a budget line. The caller is responsible for category uniqueness.
func (s *Service) Create(ctx context.Context, ownerID uuid.UUID, p period.Period, category Category, amount decimal.Decimal) (*Item, error) {
	if strings.TrimSpace(category.Name) == "" {
		return nil, fmt.Errorf("%w: category is required", ErrInvalid)
	}

	item := &Item{
		OwnerID:       ownerID,
		Month:         p.Month,
		Year:          p.Year,
		Category:      category.Label(),
		PlannedAmount: amount,
	}

	if err := s.repo.CreateItem(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

func (s *Service) UpdatePlannedAmount(ctx context.Context, ownerID, id uuid.UUID, amount decimal.Decimal) (*Item, error) {
	return s.repo.UpdatePlannedAmount(ctx, ownerID, id, amount)
}

func (s *Service) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	return s.repo.DeleteItem(ctx, ownerID, id)
}
