package transaction_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/budgetly/internal/transaction"
)

func TestService_Create(t *testing.T) {
	owner := uuid.New()
	debtID := uuid.New()

	type args struct {
		params transaction.CreateParams
	}

	type testCase struct {
		name      string
		args      args
		setupMock func(m *transaction.MockRepository, d *transaction.MockDebtNamer)
		wantSub   string
		wantErr   error
	}

	tests := []testCase{
		{
			name: "Success",
			args: args{
				params: transaction.CreateParams{
					OwnerID:     owner,
					Date:        time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC),
					Description: "Aluguel",
					Category:    transaction.CategoryFixedExpense,
					Subcategory: "Moradia",
					Amount:      decimal.NewFromInt(-1200),
				},
			},
			setupMock: func(m *transaction.MockRepository, _ *transaction.MockDebtNamer) {
				m.EXPECT().
					CreateTransaction(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, tx *transaction.Transaction) error {
						tx.ID = uuid.New()
						tx.CreatedAt = time.Now()
						return nil
					})
			},
			wantSub: "Moradia",
		},
		{
			name: "DebtPaymentTakesDebtName",
			args: args{
				params: transaction.CreateParams{
					OwnerID:     owner,
					Date:        time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC),
					Description: "Parcela",
					Category:    transaction.CategoryDebtPayment,
					Amount:      decimal.NewFromInt(-300),
					DebtID:      &debtID,
				},
			},
			setupMock: func(m *transaction.MockRepository, d *transaction.MockDebtNamer) {
				d.EXPECT().DebtName(gomock.Any(), owner, debtID).Return("Cartão", nil)
				m.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantSub: "Cartão",
		},
		{
			name: "InvalidCategory",
			args: args{
				params: transaction.CreateParams{
					OwnerID:     owner,
					Date:        time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC),
					Description: "Something",
					Category:    transaction.Category("gift"),
				},
			},
			wantErr: transaction.ErrInvalid,
		},
		{
			name: "MissingDescription",
			args: args{
				params: transaction.CreateParams{
					OwnerID:     owner,
					Date:        time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC),
					Description: "   ",
					Category:    transaction.CategoryIncome,
				},
			},
			wantErr: transaction.ErrInvalid,
		},
		{
			name: "RepoError",
			args: args{
				params: transaction.CreateParams{
					OwnerID:     owner,
					Date:        time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC),
					Description: "Salário",
					Category:    transaction.CategoryIncome,
					Amount:      decimal.NewFromInt(5000),
				},
			},
			setupMock: func(m *transaction.MockRepository, _ *transaction.MockDebtNamer) {
				m.EXPECT().
					CreateTransaction(gomock.Any(), gomock.Any()).
					Return(errors.New("db error"))
			},
			wantErr: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := transaction.NewMockRepository(ctrl)
			debts := transaction.NewMockDebtNamer(ctrl)

			if tt.setupMock != nil {
				tt.setupMock(repo, debts)
			}

			svc := transaction.NewService(repo, debts)
			got, err := svc.Create(context.Background(), tt.args.params)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.Nil(t, got)

				if errors.Is(tt.wantErr, transaction.ErrInvalid) {
					assert.ErrorIs(t, err, transaction.ErrInvalid)
				}

				return
			}

			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, tt.wantSub, got.Subcategory)
			assert.Equal(t, owner, got.OwnerID)
		})
	}
}

func TestService_List(t *testing.T) {
	owner := uuid.New()
	filter := transaction.ListFilter{OwnerID: owner}

	type testCase struct {
		name      string
		setupMock func(m *transaction.MockRepository)
		wantLen   int
		wantErr   bool
	}

	tests := []testCase{
		{
			name: "Success",
			setupMock: func(m *transaction.MockRepository) {
				m.EXPECT().
					ListTransactions(gomock.Any(), filter).
					Return([]*transaction.Transaction{
						{ID: uuid.New()},
						{ID: uuid.New()},
					}, nil)
			},
			wantLen: 2,
		},
		{
			name: "Error",
			setupMock: func(m *transaction.MockRepository) {
				m.EXPECT().
					ListTransactions(gomock.Any(), filter).
					Return(nil, errors.New("list error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := transaction.NewMockRepository(ctrl)
			tt.setupMock(repo)

			svc := transaction.NewService(repo, nil)
			got, err := svc.List(context.Background(), filter)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Len(t, got, tt.wantLen)
		})
	}
}

func TestService_Update_RejectsUnknownCategory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := transaction.NewMockRepository(ctrl)
	svc := transaction.NewService(repo, nil)

	err := svc.Update(context.Background(), &transaction.Transaction{
		ID:          uuid.New(),
		Description: "x",
		Category:    transaction.Category("bogus"),
	})
	assert.ErrorIs(t, err, transaction.ErrInvalid)
}

func TestService_Update_AppliesCreateRules(t *testing.T) {
	valid := func() *transaction.Transaction {
		return &transaction.Transaction{
			ID:          uuid.New(),
			OwnerID:     uuid.New(),
			Date:        time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC),
			Description: "Mercado",
			Category:    transaction.CategoryVariableExpense,
			Amount:      decimal.NewFromInt(-100),
		}
	}

	tests := []struct {
		name   string
		mutate func(tx *transaction.Transaction)
	}{
		{name: "MissingOwner", mutate: func(tx *transaction.Transaction) { tx.OwnerID = uuid.Nil }},
		{name: "MissingDate", mutate: func(tx *transaction.Transaction) { tx.Date = time.Time{} }},
		{name: "BlankDescription", mutate: func(tx *transaction.Transaction) { tx.Description = "   " }},
		{name: "LongSubcategory", mutate: func(tx *transaction.Transaction) { tx.Subcategory = strings.Repeat("a", 121) }},
		{name: "LongAccountSource", mutate: func(tx *transaction.Transaction) { tx.AccountSource = strings.Repeat("b", 121) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := transaction.NewMockRepository(ctrl)
			svc := transaction.NewService(repo, nil)

			tx := valid()
			tt.mutate(tx)

			assert.ErrorIs(t, svc.Update(context.Background(), tx), transaction.ErrInvalid)
		})
	}
}

func TestService_Update_TrimsFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := transaction.NewMockRepository(ctrl)
	svc := transaction.NewService(repo, nil)

	tx := &transaction.Transaction{
		ID:          uuid.New(),
		OwnerID:     uuid.New(),
		Date:        time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC),
		Description: "  Mercado ",
		Category:    transaction.CategoryVariableExpense,
		Subcategory: " Alimentação ",
	}

	repo.EXPECT().UpdateTransaction(gomock.Any(), tx).Return(nil)

	require.NoError(t, svc.Update(context.Background(), tx))
	assert.Equal(t, "Mercado", tx.Description)
	assert.Equal(t, "Alimentação", tx.Subcategory)
}

func TestService_Update_KeepsExplicitSubcategory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := transaction.NewMockRepository(ctrl)
	debts := transaction.NewMockDebtNamer(ctrl)
	svc := transaction.NewService(repo, debts)

	debtID := uuid.New()
	tx := &transaction.Transaction{
		ID:          uuid.New(),
		OwnerID:     uuid.New(),
		Date:        time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC),
		Description: "Parcela",
		Category:    transaction.CategoryDebtPayment,
		Subcategory: "Financiamento",
		DebtID:      &debtID,
	}

	repo.EXPECT().UpdateTransaction(gomock.Any(), tx).Return(nil)

	require.NoError(t, svc.Update(context.Background(), tx))
	assert.Equal(t, "Financiamento", tx.Subcategory)
}

func TestCategory_IsBudgeted(t *testing.T) {
	assert.True(t, transaction.CategoryFixedExpense.IsBudgeted())
	assert.True(t, transaction.CategoryVariableExpense.IsBudgeted())
	assert.False(t, transaction.CategoryIncome.IsBudgeted())
	assert.False(t, transaction.CategoryDebtPayment.IsBudgeted())
}
