package importcsv_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"budgetscope/internal/categorize"
	handler "budgetscope/internal/http/importcsv"
	"budgetscope/internal/http/owner"
	"budgetscope/internal/importer"
	"budgetscope/internal/transaction"
)

func newServer(t *testing.T, repo *transaction.MockRepository) http.Handler {
	t.Helper()

	h := handler.NewHandler(importer.NewService(), transaction.NewService(repo), categorize.NewService(nil))

	r := chi.NewRouter()
	r.Use(owner.Require)
	r.Route("/import", h.Routes)

	return r
}

func TestConfirmImport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ownerID := uuid.New()
	repo := transaction.NewMockRepository(ctrl)
	itx := transaction.NewMockImportTx(ctrl)

	date := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	repo.EXPECT().BeginImport(gomock.Any(), ownerID, date, date).Return(itx, nil)
	itx.EXPECT().CreateTransactions(gomock.Any(), gomock.Any()).Return(nil)
	itx.EXPECT().Commit().Return(nil)
	itx.EXPECT().Rollback().Return(nil)

	srv := newServer(t, repo)

	body := `{"params": [
		{"amount": "12.50", "type": "expense", "description": "COFFEE SHOP", "date": "2024-06-01"}
	]}`

	req := httptest.NewRequest(http.MethodPost, "/import/confirm", strings.NewReader(body))
	req.Header.Set(owner.Header, ownerID.String())

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestConfirmImport_InvalidParams(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			name: "unknown type",
			body: `{"params": [{"amount": "12.50", "type": "transfer", "description": "WIRE", "date": "2024-06-01"}]}`,
		},
		{
			name: "empty type",
			body: `{"params": [{"amount": "12.50", "description": "WIRE", "date": "2024-06-01"}]}`,
		},
		{
			name: "bad amount",
			body: `{"params": [{"amount": "abc", "type": "expense", "description": "WIRE", "date": "2024-06-01"}]}`,
		},
		{
			name: "bad date",
			body: `{"params": [{"amount": "12.50", "type": "expense", "description": "WIRE", "date": "01/06/2024"}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			// No repository calls: validation rejects the batch first.
			repo := transaction.NewMockRepository(ctrl)
			srv := newServer(t, repo)

			req := httptest.NewRequest(http.MethodPost, "/import/confirm", strings.NewReader(tt.body))
			req.Header.Set(owner.Header, uuid.NewString())

			rec := httptest.NewRecorder()
			srv.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}
