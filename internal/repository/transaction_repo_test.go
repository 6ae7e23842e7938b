package repository

import (
	"context"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"budget_tracker/internal/model"
)

var txColumns = []string{"id", "user_id", "amount", "category", "transaction_date", "note", "created_at", "updated_at"}

func TestTransactionRepository_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	now := time.Now()
	mock.ExpectQuery(`INSERT INTO transactions`).
		WithArgs(7, pgxmock.AnyArg(), "Food", pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(42), now, now))

	repo := NewTransactionRepository(mock)
	tx := &model.Transaction{
		UserID:    7,
		Amount:    decimal.NewFromFloat(25.5),
		Category:  "Food",
		Date:      time.Date(2025, 2, 4, 0, 0, 0, 0, time.UTC),
		CreatedAt: now,
		UpdatedAt: now,
	}
	err = repo.Create(context.Background(), tx)

	require.NoError(t, err)
	assert.Equal(t, int64(42), tx.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepository_FindByUser(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	now := time.Now()
	date := time.Date(2025, 2, 4, 0, 0, 0, 0, time.UTC)
	rows := pgxmock.NewRows(txColumns).
		AddRow(int64(1), 7, decimal.NewFromFloat(25.5), "Food", date, nil, now, now).
		AddRow(int64(2), 7, decimal.NewFromInt(-100), "Salary", date, nil, now, now)
	mock.ExpectQuery(`SELECT id, user_id, amount, category, transaction_date, note, created_at, updated_at`).
		WithArgs(7).
		WillReturnRows(rows)

	repo := NewTransactionRepository(mock)
	txns, err := repo.FindByUser(context.Background(), 7, model.UserTransactionFilters{})

	require.NoError(t, err)
	require.Len(t, txns, 2)
	assert.True(t, txns[0].Amount.Equal(decimal.NewFromFloat(25.5)))
	assert.True(t, txns[1].Amount.Equal(decimal.NewFromInt(-100)))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepository_FindByUser_WithFilters(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	category := "Food"
	kind := model.TransactionKindExpense
	from := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`AND category = \$2 AND amount > 0 AND transaction_date >= \$3`).
		WithArgs(7, category, from).
		WillReturnRows(pgxmock.NewRows(txColumns))

	repo := NewTransactionRepository(mock)
	_, err = repo.FindByUser(context.Background(), 7, model.UserTransactionFilters{
		Category:  &category,
		Kind:      &kind,
		StartDate: &from,
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepository_Delete_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(`DELETE FROM transactions`).
		WithArgs(int64(99)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	repo := NewTransactionRepository(mock)
	err = repo.Delete(context.Background(), 99)

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepository_GetAggregatedStats(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(`SELECT`).
		WillReturnRows(pgxmock.NewRows([]string{"total_expenses", "total_income", "net_spend"}).
			AddRow(decimal.NewFromInt(130), decimal.NewFromInt(100), decimal.NewFromInt(30)))
	mock.ExpectQuery(`GROUP BY category`).
		WillReturnRows(pgxmock.NewRows([]string{"category", "sum"}).
			AddRow("Food", decimal.NewFromInt(130)).
			AddRow("Salary", decimal.NewFromInt(-100)))

	repo := NewTransactionRepository(mock)
	stats, err := repo.GetAggregatedStats(context.Background(), model.AdminTransactionFilters{})

	require.NoError(t, err)
	assert.True(t, stats.TotalExpenses.Equal(decimal.NewFromInt(130)))
	assert.True(t, stats.TotalIncome.Equal(decimal.NewFromInt(100)))
	assert.True(t, stats.NetSpend.Equal(decimal.NewFromInt(30)))
	assert.True(t, stats.ByCategory["Salary"].Equal(decimal.NewFromInt(-100)))
	assert.NoError(t, mock.ExpectationsWereMet())
}
