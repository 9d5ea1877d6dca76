package budget_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"budgetscope/internal/budget"
	"budgetscope/internal/period"
)

func TestService_Report(t *testing.T) {
	owner := uuid.New()
	food := uuid.New()

	type testCase struct {
		name          string
		budget        *budget.Budget
		spent         int64
		wantSpent     int64
		wantRemaining int64
		wantPct       float64
	}

	tests := []testCase{
		{
			// Food budget of 100 with 50+30 spent in June 2024.
			name:          "PartiallySpent",
			budget:        &budget.Budget{OwnerID: owner, CategoryID: food, Amount: 10000, Month: 6, Year: 2024},
			spent:         8000,
			wantSpent:     8000,
			wantRemaining: 2000,
			wantPct:       80.0,
		},
		{
			name:          "NoMatchingTransactions",
			budget:        &budget.Budget{OwnerID: owner, CategoryID: food, Amount: 10000, Month: 6, Year: 2024},
			spent:         0,
			wantSpent:     0,
			wantRemaining: 10000,
			wantPct:       0,
		},
		{
			// Zero cap never divides by zero.
			name:          "ZeroCap",
			budget:        &budget.Budget{OwnerID: owner, CategoryID: food, Amount: 0, Month: 6, Year: 2024},
			spent:         8000,
			wantSpent:     8000,
			wantRemaining: -8000,
			wantPct:       0,
		},
		{
			// Overspend is representable, not an error.
			name:          "Overspent",
			budget:        &budget.Budget{OwnerID: owner, CategoryID: food, Amount: 5000, Month: 6, Year: 2024},
			spent:         7500,
			wantSpent:     7500,
			wantRemaining: -2500,
			wantPct:       150.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := budget.NewMockRepository(ctrl)
			ledger := budget.NewMockLedger(ctrl)
			svc := budget.NewService(repo, ledger)

			ledger.EXPECT().
				SumExpenses(gomock.Any(), owner, food, period.Period{Month: 6, Year: 2024}).
				Return(tt.spent, nil)

			r, err := svc.Report(context.Background(), tt.budget)
			require.NoError(t, err)

			assert.Equal(t, tt.wantSpent, r.SpentAmount)
			assert.Equal(t, tt.wantRemaining, r.RemainingAmount)
			assert.InDelta(t, tt.wantPct, r.PercentageUsed, 0.0001)

			// Identity: remaining == cap - spent.
			assert.Equal(t, tt.budget.Amount-r.SpentAmount, r.RemainingAmount)
		})
	}
}

func TestService_Report_LedgerError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := budget.NewMockRepository(ctrl)
	ledger := budget.NewMockLedger(ctrl)
	svc := budget.NewService(repo, ledger)

	ledger.EXPECT().
		SumExpenses(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(int64(0), errors.New("db error"))

	_, err := svc.Report(context.Background(), &budget.Budget{Month: 6, Year: 2024})
	assert.Error(t, err)
}

func TestService_Create(t *testing.T) {
	owner := uuid.New()
	cat := uuid.New()

	type testCase struct {
		name      string
		params    budget.CreateParams
		setupMock func(m *budget.MockRepository)
		wantErr   error
	}

	tests := []testCase{
		{
			name:   "Success",
			params: budget.CreateParams{OwnerID: owner, CategoryID: cat, Amount: 10000, Month: 6, Year: 2024},
			setupMock: func(m *budget.MockRepository) {
				m.EXPECT().
					CreateBudget(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, b *budget.Budget) error {
						b.ID = uuid.New()
						return nil
					})
			},
		},
		{
			name:    "MonthOutOfRange",
			params:  budget.CreateParams{OwnerID: owner, CategoryID: cat, Amount: 10000, Month: 13, Year: 2024},
			wantErr: errors.New("month 13 out of range"),
		},
		{
			name:    "NegativeAmount",
			params:  budget.CreateParams{OwnerID: owner, CategoryID: cat, Amount: -1, Month: 6, Year: 2024},
			wantErr: errors.New("amount must not be negative"),
		},
		{
			name:   "Duplicate",
			params: budget.CreateParams{OwnerID: owner, CategoryID: cat, Amount: 10000, Month: 6, Year: 2024},
			setupMock: func(m *budget.MockRepository) {
				m.EXPECT().
					CreateBudget(gomock.Any(), gomock.Any()).
					Return(budget.ErrDuplicate)
			},
			wantErr: budget.ErrDuplicate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := budget.NewMockRepository(ctrl)
			ledger := budget.NewMockLedger(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := budget.NewService(repo, ledger)
			got, err := svc.Create(context.Background(), tt.params)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, got.ID)
		})
	}
}

func TestService_ListReports(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	owner := uuid.New()
	food := uuid.New()
	rent := uuid.New()

	repo := budget.NewMockRepository(ctrl)
	ledger := budget.NewMockLedger(ctrl)
	svc := budget.NewService(repo, ledger)

	month, year := 6, 2024
	filter := budget.ListFilter{Month: &month, Year: &year}
	p := period.Period{Month: 6, Year: 2024}

	repo.EXPECT().
		ListBudgets(gomock.Any(), owner, filter).
		Return([]*budget.Budget{
			{OwnerID: owner, CategoryID: food, Amount: 10000, Month: 6, Year: 2024},
			{OwnerID: owner, CategoryID: rent, Amount: 80000, Month: 6, Year: 2024},
		}, nil)

	ledger.EXPECT().SumExpenses(gomock.Any(), owner, food, p).Return(int64(8000), nil)
	ledger.EXPECT().SumExpenses(gomock.Any(), owner, rent, p).Return(int64(0), nil)

	reports, err := svc.ListReports(context.Background(), owner, filter)
	require.NoError(t, err)
	require.Len(t, reports, 2)

	assert.Equal(t, int64(8000), reports[0].SpentAmount)
	assert.InDelta(t, 80.0, reports[0].PercentageUsed, 0.0001)
	assert.Equal(t, int64(80000), reports[1].RemainingAmount)
	assert.Zero(t, reports[1].PercentageUsed)
}
