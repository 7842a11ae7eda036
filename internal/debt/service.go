package debt

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=debt
type Repository interface {
	CreateDebt(ctx context.Context, d *Debt) error
	GetDebt(ctx context.Context, ownerID, id uuid.UUID) (*Debt, error)
	UpdateDebt(ctx context.Context, d *Debt) error
	DeleteDebt(ctx context.Context, ownerID, id uuid.UUID) error
	ListDebts(ctx context.Context, filter ListFilter) ([]*Debt, error)
}

type Service struct {
	repo     Repository
	validate *validator.Validate
}

func NewService(repo Repository) *Service {
	return &Service{
		repo:     repo,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Order selects the sort order of a debt listing.
type Order string

const (
	OrderNewest      Order = "newest"
	OrderLargestDebt Order = "largest"
)

type ListFilter struct {
	OwnerID uuid.UUID
	Status  *Status
	OrderBy Order
	Limit   int
}

type Params struct {
	OwnerID             uuid.UUID       `validate:"required"`
	Name                string          `validate:"required,max=120"`
	TotalAmount         decimal.Decimal `validate:"-"`
	MonthlyInterestRate decimal.Decimal `validate:"-"`
	MinimumPayment      decimal.Decimal `validate:"-"`
	DueDay              int             `validate:"min=1,max=31"`
	Strategy            Strategy        `validate:"omitempty,oneof=avalanche snowball custom"`
	Status              Status          `validate:"omitempty,oneof=active negotiated paid"`
	Notes               string
}

func (s *Service) check(p *Params) error {
	p.Name = strings.TrimSpace(p.Name)

	if p.Strategy == "" {
		p.Strategy = StrategyAvalanche
	}

	if p.Status == "" {
		p.Status = StatusActive
	}

	if err := s.validate.Struct(p); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	if p.TotalAmount.IsNegative() || p.MinimumPayment.IsNegative() || p.MonthlyInterestRate.IsNegative() {
		return fmt.Errorf("%w: amounts must not be negative", ErrInvalid)
	}

	return nil
}

func (s *Service) Create(ctx context.Context, params Params) (*Debt, error) {
	if err := s.check(&params); err != nil {
		return nil, err
	}

	d := &Debt{OwnerID: params.OwnerID}
	apply(d, params)

	if err := s.repo.CreateDebt(ctx, d); err != nil {
		return nil, err
	}

	return d, nil
}

// Update replaces the editable fields of an existing debt.
func (s *Service) Update(ctx context.Context, id uuid.UUID, params Params) (*Debt, error) {
	if err := s.check(&params); err != nil {
		return nil, err
	}

	d, err := s.repo.GetDebt(ctx, params.OwnerID, id)
	if err != nil {
		return nil, err
	}

	apply(d, params)

	if err := s.repo.UpdateDebt(ctx, d); err != nil {
		return nil, err
	}

	return d, nil
}

func apply(d *Debt, p Params) {
	d.Name = p.Name
	d.TotalAmount = p.TotalAmount
	d.MonthlyInterestRate = p.MonthlyInterestRate
	d.MinimumPayment = p.MinimumPayment
	d.DueDay = p.DueDay
	d.Strategy = p.Strategy
	d.Status = p.Status
	d.Notes = p.Notes
}

func (s *Service) Get(ctx context.Context, ownerID, id uuid.UUID) (*Debt, error) {
	return s.repo.GetDebt(ctx, ownerID, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Debt, error) {
	return s.repo.ListDebts(ctx, filter)
}

func (s *Service) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	return s.repo.DeleteDebt(ctx, ownerID, id)
}

// DebtName satisfies transaction.DebtNamer.
func (s *Service) DebtName(ctx context.Context, ownerID, id uuid.UUID) (string, error) {
	d, err := s.repo.GetDebt(ctx, ownerID, id)
	if err != nil {
		return "", err
	}

	return d.Name, nil
}
