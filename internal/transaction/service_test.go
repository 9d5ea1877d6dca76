package transaction_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"budgetscope/internal/transaction"
)

func TestService_Create(t *testing.T) {
	owner := uuid.New()

	type testCase struct {
		name      string
		params    transaction.CreateParams
		setupMock func(m *transaction.MockRepository)
		wantErr   bool
	}

	tests := []testCase{
		{
			name: "Success",
			params: transaction.CreateParams{
				OwnerID:     owner,
				Amount:      5000,
				Type:        transaction.TypeExpense,
				Description: "Groceries",
				Date:        time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC),
			},
			setupMock: func(m *transaction.MockRepository) {
				m.EXPECT().
					CreateTransaction(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, tx *transaction.Transaction) error {
						tx.ID = uuid.New()
						tx.CreatedAt = time.Now()
						return nil
					})
			},
		},
		{
			// An income transaction against an expense category is accepted:
			// type/category consistency is not enforced.
			name: "TypeCategoryMismatchAllowed",
			params: transaction.CreateParams{
				OwnerID:    owner,
				Amount:     1000,
				Type:       transaction.TypeIncome,
				CategoryID: new(uuid.New()),
				Date:       time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC),
			},
			setupMock: func(m *transaction.MockRepository) {
				m.EXPECT().
					CreateTransaction(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, tx *transaction.Transaction) error {
						tx.ID = uuid.New()
						return nil
					})
			},
		},
		{
			name: "InvalidType",
			params: transaction.CreateParams{
				OwnerID: owner,
				Amount:  500,
				Type:    "transfer",
			},
			wantErr: true,
		},
		{
			name: "RepoError",
			params: transaction.CreateParams{
				OwnerID: owner,
				Amount:  500,
				Type:    transaction.TypeExpense,
			},
			setupMock: func(m *transaction.MockRepository) {
				m.EXPECT().
					CreateTransaction(gomock.Any(), gomock.Any()).
					Return(errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := transaction.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := transaction.NewService(repo)
			got, err := svc.Create(context.Background(), tt.params)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)

				return
			}

			assert.NoError(t, err)
			assert.NotNil(t, got)
			assert.NotEmpty(t, got.ID)
		})
	}
}

func TestService_List(t *testing.T) {
	owner := uuid.New()

	type testCase struct {
		name      string
		filter    transaction.ListFilter
		setupMock func(m *transaction.MockRepository)
		wantLen   int
		wantErr   bool
	}

	tests := []testCase{
		{
			name:   "Success",
			filter: transaction.ListFilter{},
			setupMock: func(m *transaction.MockRepository) {
				m.EXPECT().
					ListTransactions(gomock.Any(), owner, transaction.ListFilter{}).
					Return([]*transaction.Transaction{
						{ID: uuid.New()},
						{ID: uuid.New()},
					}, nil)
			},
			wantLen: 2,
		},
		{
			name:   "Error",
			filter: transaction.ListFilter{},
			setupMock: func(m *transaction.MockRepository) {
				m.EXPECT().
					ListTransactions(gomock.Any(), owner, transaction.ListFilter{}).
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
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := transaction.NewService(repo)
			got, err := svc.List(context.Background(), owner, tt.filter)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Len(t, got, tt.wantLen)
		})
	}
}

func TestService_Recent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	owner := uuid.New()
	repo := transaction.NewMockRepository(ctrl)
	svc := transaction.NewService(repo)

	repo.EXPECT().
		ListTransactions(gomock.Any(), owner, transaction.ListFilter{Limit: 5}).
		Return([]*transaction.Transaction{{ID: uuid.New()}}, nil)

	got, err := svc.Recent(context.Background(), owner, 5)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestService_Recent_NewestFiveFirst(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	owner := uuid.New()
	repo := transaction.NewMockRepository(ctrl)
	svc := transaction.NewService(repo)

	day := func(d int) time.Time {
		return time.Date(2024, 6, d, 0, 0, 0, 0, time.UTC)
	}

	// Seven transactions on distinct dates, deliberately out of order.
	var txs []*transaction.Transaction
	for _, d := range []int{3, 7, 1, 5, 6, 2, 4} {
		txs = append(txs, &transaction.Transaction{
			ID:        uuid.New(),
			Date:      day(d),
			CreatedAt: day(d),
		})
	}

	repo.EXPECT().
		ListTransactions(gomock.Any(), owner, transaction.ListFilter{Limit: 5}).
		Return(txs, nil)

	got, err := svc.Recent(context.Background(), owner, 5)
	require.NoError(t, err)

	require.Len(t, got, 5)
	for i, want := range []int{7, 6, 5, 4, 3} {
		assert.Equal(t, day(want), got[i].Date)
	}
}

func TestService_Recent_SameDateOrdersByCreation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	owner := uuid.New()
	repo := transaction.NewMockRepository(ctrl)
	svc := transaction.NewService(repo)

	date := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	earlier := &transaction.Transaction{
		ID:        uuid.New(),
		Date:      date,
		CreatedAt: date.Add(9 * time.Hour),
	}
	later := &transaction.Transaction{
		ID:        uuid.New(),
		Date:      date,
		CreatedAt: date.Add(17 * time.Hour),
	}

	repo.EXPECT().
		ListTransactions(gomock.Any(), owner, transaction.ListFilter{Limit: 5}).
		Return([]*transaction.Transaction{earlier, later}, nil)

	got, err := svc.Recent(context.Background(), owner, 5)
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.Equal(t, later.ID, got[0].ID)
	assert.Equal(t, earlier.ID, got[1].ID)
}

func TestService_ImportBatch_NoConflicts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	owner := uuid.New()
	repo := transaction.NewMockRepository(ctrl)
	itx := transaction.NewMockImportTx(ctrl)
	svc := transaction.NewService(repo)

	date := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	params := []transaction.CreateParams{
		{
			Amount:      1000,
			Type:        transaction.TypeExpense,
			Description: "COFFEE SHOP",
			Date:        date,
		},
	}

	repo.EXPECT().BeginImport(gomock.Any(), owner, date, date).Return(itx, nil)
	itx.EXPECT().FindDuplicates(gomock.Any(), params).Return(nil, nil)
	itx.EXPECT().CreateTransactions(gomock.Any(), gomock.Any()).Return(nil)
	itx.EXPECT().Commit().Return(nil)
	itx.EXPECT().Rollback().Return(nil)

	result, err := svc.ImportBatch(context.Background(), owner, params)
	require.NoError(t, err)
	assert.Len(t, result.Imported, 1)
	assert.Equal(t, owner, result.Imported[0].OwnerID)
	assert.Empty(t, result.Conflicts)
	assert.Empty(t, result.New)
}

func TestService_ImportBatch_WithConflicts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	owner := uuid.New()
	repo := transaction.NewMockRepository(ctrl)
	itx := transaction.NewMockImportTx(ctrl)
	svc := transaction.NewService(repo)

	date := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	params := []transaction.CreateParams{
		{
			Amount:      1000,
			Type:        transaction.TypeExpense,
			Description: "COFFEE SHOP",
			Date:        date,
		},
		{
			Amount:      2000,
			Type:        transaction.TypeExpense,
			Description: "LUNCH PLACE",
			Date:        date,
		},
	}

	existing := &transaction.Transaction{
		ID:          uuid.New(),
		OwnerID:     owner,
		Amount:      1000,
		Type:        transaction.TypeExpense,
		Description: "COFFEE SHOP",
		Date:        date,
	}

	repo.EXPECT().BeginImport(gomock.Any(), owner, date, date).Return(itx, nil)
	itx.EXPECT().FindDuplicates(gomock.Any(), params).Return([]*transaction.Transaction{existing}, nil)
	itx.EXPECT().Rollback().Return(nil)

	result, err := svc.ImportBatch(context.Background(), owner, params)
	require.NoError(t, err)
	assert.Empty(t, result.Imported)
	assert.Len(t, result.New, 1)
	assert.Len(t, result.Conflicts, 1)
	assert.Equal(t, params[0], result.Conflicts[0].Incoming)
	assert.Equal(t, existing, result.Conflicts[0].Existing)
}

func TestService_ImportBatch_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := transaction.NewMockRepository(ctrl)
	svc := transaction.NewService(repo)

	result, err := svc.ImportBatch(context.Background(), uuid.New(), []transaction.CreateParams{})
	require.NoError(t, err)
	assert.Empty(t, result.Imported)
	assert.Empty(t, result.Conflicts)
	assert.Empty(t, result.New)
}

func TestService_CreateBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	owner := uuid.New()
	repo := transaction.NewMockRepository(ctrl)
	itx := transaction.NewMockImportTx(ctrl)
	svc := transaction.NewService(repo)

	date := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	params := []transaction.CreateParams{
		{
			Amount:      1000,
			Type:        transaction.TypeExpense,
			Description: "COFFEE SHOP",
			Date:        date,
		},
	}

	repo.EXPECT().BeginImport(gomock.Any(), owner, date, date).Return(itx, nil)
	itx.EXPECT().CreateTransactions(gomock.Any(), gomock.Any()).Return(nil)
	itx.EXPECT().Commit().Return(nil)
	itx.EXPECT().Rollback().Return(nil)

	txs, err := svc.CreateBatch(context.Background(), owner, params)
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, int64(1000), txs[0].Amount)
	assert.Equal(t, owner, txs[0].OwnerID)
	assert.Equal(t, transaction.TypeExpense, txs[0].Type)
}
