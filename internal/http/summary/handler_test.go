package summary_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"budgetscope/internal/http/owner"
	handler "budgetscope/internal/http/summary"
	"budgetscope/internal/period"
	"budgetscope/internal/summary"
	"budgetscope/internal/transaction"
)

func newServer(t *testing.T, ledger *summary.MockLedger, now time.Time) http.Handler {
	t.Helper()

	svc := summary.NewService(ledger, func() time.Time { return now })

	r := chi.NewRouter()
	r.Use(owner.Require)
	r.Route("/summary", handler.NewHandler(svc).Routes)

	return r
}

func TestGet_ExplicitPeriod(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ownerID := uuid.New()
	ledger := summary.NewMockLedger(ctrl)

	p := period.Period{Month: 3, Year: 2025}
	ledger.EXPECT().SumByType(gomock.Any(), ownerID, transaction.TypeIncome, p).Return(int64(250000), nil)
	ledger.EXPECT().SumByType(gomock.Any(), ownerID, transaction.TypeExpense, p).Return(int64(100050), nil)

	srv := newServer(t, ledger, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC))

	req := httptest.NewRequest(http.MethodGet, "/summary?month=3&year=2025", nil)
	req.Header.Set(owner.Header, ownerID.String())

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"month": 3,
		"year": 2025,
		"total_income": "2500.00",
		"total_expense": "1000.50",
		"remaining_balance": "1499.50"
	}`, rec.Body.String())
}

// A lone month or year query param behaves like no period at all: the
// summary covers the current month.
func TestGet_PartialPeriodDefaultsToCurrentMonth(t *testing.T) {
	for _, query := range []string{"?month=3", "?year=2025", ""} {
		t.Run("/summary"+query, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			ownerID := uuid.New()
			ledger := summary.NewMockLedger(ctrl)

			current := period.Period{Month: 6, Year: 2025}
			ledger.EXPECT().SumByType(gomock.Any(), ownerID, transaction.TypeIncome, current).Return(int64(50000), nil)
			ledger.EXPECT().SumByType(gomock.Any(), ownerID, transaction.TypeExpense, current).Return(int64(20000), nil)

			srv := newServer(t, ledger, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC))

			req := httptest.NewRequest(http.MethodGet, "/summary"+query, nil)
			req.Header.Set(owner.Header, ownerID.String())

			rec := httptest.NewRecorder()
			srv.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.JSONEq(t, `{
				"month": 6,
				"year": 2025,
				"total_income": "500.00",
				"total_expense": "200.00",
				"remaining_balance": "300.00"
			}`, rec.Body.String())
		})
	}
}

func TestGet_InvalidPeriod(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{name: "non-numeric month", query: "?month=abc&year=2025"},
		{name: "non-numeric year", query: "?month=3&year=abc"},
		{name: "out of range month", query: "?month=13&year=2025"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			ledger := summary.NewMockLedger(ctrl)
			srv := newServer(t, ledger, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC))

			req := httptest.NewRequest(http.MethodGet, "/summary"+tt.query, nil)
			req.Header.Set(owner.Header, uuid.NewString())

			rec := httptest.NewRecorder()
			srv.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}
