package dashboard_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"budgetscope/internal/budget"
	"budgetscope/internal/dashboard"
	"budgetscope/internal/period"
	"budgetscope/internal/summary"
	"budgetscope/internal/transaction"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestService_Overview(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	owner := uuid.New()
	now := time.Date(2024, 6, 17, 9, 30, 0, 0, time.UTC)
	p := period.Period{Month: 6, Year: 2024}

	summaries := dashboard.NewMockSummarizer(ctrl)
	ledger := dashboard.NewMockLedger(ctrl)
	budgets := dashboard.NewMockBudgetReporter(ctrl)
	svc := dashboard.NewService(summaries, ledger, budgets, fixedClock(now))

	sum := &summary.Summary{
		Period:           p,
		TotalIncome:      100000,
		TotalExpense:     8000,
		RemainingBalance: 92000,
	}

	recent := []*transaction.Transaction{
		{ID: uuid.New(), Date: time.Date(2024, 6, 20, 0, 0, 0, 0, time.UTC)},
		{ID: uuid.New(), Date: time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC)},
	}

	reports := []*budget.Report{
		{
			Budget:          &budget.Budget{Amount: 10000, Month: 6, Year: 2024},
			SpentAmount:     8000,
			RemainingAmount: 2000,
			PercentageUsed:  80,
		},
	}

	summaries.EXPECT().Summarize(gomock.Any(), owner, &p).Return(sum, nil)
	ledger.EXPECT().Recent(gomock.Any(), owner, 5).Return(recent, nil)
	budgets.EXPECT().
		ListReports(gomock.Any(), owner, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, filter budget.ListFilter) ([]*budget.Report, error) {
			require.NotNil(t, filter.Month)
			require.NotNil(t, filter.Year)
			assert.Equal(t, 6, *filter.Month)
			assert.Equal(t, 2024, *filter.Year)
			return reports, nil
		})

	got, err := svc.Overview(context.Background(), owner)
	require.NoError(t, err)

	assert.Equal(t, sum, got.Summary)
	assert.Equal(t, recent, got.RecentTransactions)
	assert.Equal(t, reports, got.Budgets)
}

func TestService_Overview_Errors(t *testing.T) {
	owner := uuid.New()
	now := fixedClock(time.Date(2024, 6, 17, 0, 0, 0, 0, time.UTC))

	t.Run("SummaryError", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		summaries := dashboard.NewMockSummarizer(ctrl)
		ledger := dashboard.NewMockLedger(ctrl)
		budgets := dashboard.NewMockBudgetReporter(ctrl)
		svc := dashboard.NewService(summaries, ledger, budgets, now)

		summaries.EXPECT().
			Summarize(gomock.Any(), owner, gomock.Any()).
			Return(nil, errors.New("db error"))

		_, err := svc.Overview(context.Background(), owner)
		assert.Error(t, err)
	})

	t.Run("RecentError", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		summaries := dashboard.NewMockSummarizer(ctrl)
		ledger := dashboard.NewMockLedger(ctrl)
		budgets := dashboard.NewMockBudgetReporter(ctrl)
		svc := dashboard.NewService(summaries, ledger, budgets, now)

		summaries.EXPECT().
			Summarize(gomock.Any(), owner, gomock.Any()).
			Return(&summary.Summary{}, nil)
		ledger.EXPECT().
			Recent(gomock.Any(), owner, 5).
			Return(nil, errors.New("db error"))

		_, err := svc.Overview(context.Background(), owner)
		assert.Error(t, err)
	})

	t.Run("BudgetsError", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		summaries := dashboard.NewMockSummarizer(ctrl)
		ledger := dashboard.NewMockLedger(ctrl)
		budgets := dashboard.NewMockBudgetReporter(ctrl)
		svc := dashboard.NewService(summaries, ledger, budgets, now)

		summaries.EXPECT().
			Summarize(gomock.Any(), owner, gomock.Any()).
			Return(&summary.Summary{}, nil)
		ledger.EXPECT().
			Recent(gomock.Any(), owner, 5).
			Return(nil, nil)
		budgets.EXPECT().
			ListReports(gomock.Any(), owner, gomock.Any()).
			Return(nil, errors.New("db error"))

		_, err := svc.Overview(context.Background(), owner)
		assert.Error(t, err)
	})
}
