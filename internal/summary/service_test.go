package summary_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"budgetscope/internal/period"
	"budgetscope/internal/summary"
	"budgetscope/internal/transaction"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestService_Summarize(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	owner := uuid.New()
	ledger := summary.NewMockLedger(ctrl)
	svc := summary.NewService(ledger, time.Now)

	p := period.Period{Month: 6, Year: 2024}

	ledger.EXPECT().SumByType(gomock.Any(), owner, transaction.TypeIncome, p).Return(int64(100000), nil)
	ledger.EXPECT().SumByType(gomock.Any(), owner, transaction.TypeExpense, p).Return(int64(8000), nil)

	got, err := svc.Summarize(context.Background(), owner, &p)
	require.NoError(t, err)

	assert.Equal(t, p, got.Period)
	assert.Equal(t, int64(100000), got.TotalIncome)
	assert.Equal(t, int64(8000), got.TotalExpense)
	assert.Equal(t, int64(92000), got.RemainingBalance)

	// Identity: balance == income - expense.
	assert.Equal(t, got.TotalIncome-got.TotalExpense, got.RemainingBalance)
}

func TestService_Summarize_DefaultsToCurrentMonth(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	owner := uuid.New()
	ledger := summary.NewMockLedger(ctrl)
	svc := summary.NewService(ledger, fixedClock(time.Date(2024, 6, 17, 10, 0, 0, 0, time.UTC)))

	p := period.Period{Month: 6, Year: 2024}

	ledger.EXPECT().SumByType(gomock.Any(), owner, transaction.TypeIncome, p).Return(int64(0), nil)
	ledger.EXPECT().SumByType(gomock.Any(), owner, transaction.TypeExpense, p).Return(int64(0), nil)

	got, err := svc.Summarize(context.Background(), owner, nil)
	require.NoError(t, err)

	assert.Equal(t, p, got.Period)
	assert.Zero(t, got.TotalIncome)
	assert.Zero(t, got.TotalExpense)
	assert.Zero(t, got.RemainingBalance)
}

func TestService_Summarize_InvalidPeriod(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ledger := summary.NewMockLedger(ctrl)
	svc := summary.NewService(ledger, time.Now)

	p := period.Period{Month: 13, Year: 2024}
	_, err := svc.Summarize(context.Background(), uuid.New(), &p)
	assert.Error(t, err)
}

func TestService_Summarize_LedgerError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	owner := uuid.New()
	ledger := summary.NewMockLedger(ctrl)
	svc := summary.NewService(ledger, time.Now)

	p := period.Period{Month: 6, Year: 2024}

	ledger.EXPECT().
		SumByType(gomock.Any(), owner, transaction.TypeIncome, p).
		Return(int64(0), errors.New("db error"))

	_, err := svc.Summarize(context.Background(), owner, &p)
	assert.Error(t, err)
}
