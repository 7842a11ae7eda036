package transaction

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=transaction
type Repository interface {
	CreateTransaction(ctx context.Context, tx *Transaction) error
	GetTransaction(ctx context.Context, ownerID, id uuid.UUID) (*Transaction, error)
	UpdateTransaction(ctx context.Context, tx *Transaction) error
	DeleteTransaction(ctx context.Context, ownerID, id uuid.UUID) error
	ListTransactions(ctx context.Context, filter ListFilter) ([]*Transaction, error)
}

// DebtNamer resolves the display name of a debt, used to label debt payments.
type DebtNamer interface {
	DebtName(ctx context.Context, ownerID, id uuid.UUID) (string, error)
}

type Service struct {
	repo     Repository
	debts    DebtNamer
	validate *validator.Validate
}

func NewService(repo Repository, debts DebtNamer) *Service {
	return &Service{
		repo:     repo,
		debts:    debts,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

type CreateParams struct {
	OwnerID       uuid.UUID       `validate:"required"`
	Date          time.Time       `validate:"required"`
	Description   string          `validate:"required"`
	Category      Category        `validate:"required,oneof=income fixed_expense variable_expense debt_payment"`
	Subcategory   string          `validate:"max=120"`
	Amount        decimal.Decimal `validate:"-"`
	AccountSource string          `validate:"max=120"`
	DebtID        *uuid.UUID
}

// ListFilter narrows a transaction listing. StartDate is inclusive and EndDate exclusive.
type ListFilter struct {
	OwnerID   uuid.UUID
	Category  *Category
	DebtID    *uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
	Limit     int
}

func (s *Service) check(p *CreateParams) error {
	p.Description = strings.TrimSpace(p.Description)
	p.Subcategory = strings.TrimSpace(p.Subcategory)
	p.AccountSource = strings.TrimSpace(p.AccountSource)

	if err := s.validate.Struct(p); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return nil
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Transaction, error) {
	if err := s.check(&params); err != nil {
		return nil, err
	}

	tx := &Transaction{
		OwnerID:       params.OwnerID,
		Date:          params.Date,
		Description:   params.Description,
		Category:      params.Category,
		Subcategory:   params.Subcategory,
		Amount:        params.Amount,
		AccountSource: params.AccountSource,
		DebtID:        params.DebtID,
	}

	if err := s.labelDebtPayment(ctx, tx); err != nil {
		return nil, err
	}

	if err := s.repo.CreateTransaction(ctx, tx); err != nil {
		return nil, err
	}

	return tx, nil
}

func (s *Service) Get(ctx context.Context, ownerID, id uuid.UUID) (*Transaction, error) {
	return s.repo.GetTransaction(ctx, ownerID, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Transaction, error) {
	return s.repo.ListTransactions(ctx, filter)
}

// Update applies the same field rules as Create before saving tx.
func (s *Service) Update(ctx context.Context, tx *Transaction) error {
	params := CreateParams{
		OwnerID:       tx.OwnerID,
		Date:          tx.Date,
		Description:   tx.Description,
		Category:      tx.Category,
		Subcategory:   tx.Subcategory,
		Amount:        tx.Amount,
		AccountSource: tx.AccountSource,
		DebtID:        tx.DebtID,
	}

	if err := s.check(&params); err != nil {
		return err
	}

	tx.Description = params.Description
	tx.Subcategory = params.Subcategory
	tx.AccountSource = params.AccountSource

	if err := s.labelDebtPayment(ctx, tx); err != nil {
		return err
	}

	return s.repo.UpdateTransaction(ctx, tx)
}

func (s *Service) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	return s.repo.DeleteTransaction(ctx, ownerID, id)
}

// labelDebtPayment uses the debt name as subcategory for debt payments that have none.
func (s *Service) labelDebtPayment(ctx context.Context, tx *Transaction) error {
	if tx.Category != CategoryDebtPayment || tx.DebtID == nil || tx.Subcategory != "" || s.debts == nil {
		return nil
	}

	name, err := s.debts.DebtName(ctx, tx.OwnerID, *tx.DebtID)
	if err != nil {
		return fmt.Errorf("resolving debt name: %w", err)
	}

	tx.Subcategory = name

	return nil
}
