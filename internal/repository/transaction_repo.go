package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"budget_tracker/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// TransactionRepository defines operations for transaction data
type TransactionRepository interface {
	Create(ctx context.Context, transaction *model.Transaction) error
	FindByID(ctx context.Context, id int64) (*model.Transaction, error)
	FindByUser(ctx context.Context, userID int, filters model.UserTransactionFilters) ([]model.Transaction, error)
	Update(ctx context.Context, transaction *model.Transaction) error
	Delete(ctx context.Context, id int64) error
	FindAll(ctx context.Context, filters model.AdminTransactionFilters) ([]model.Transaction, error)
	GetAggregatedStats(ctx context.Context, filters model.AdminTransactionFilters) (*model.AggregatedStats, error)
}

type transactionRepository struct {
	db DB
}

// NewTransactionRepository creates a new TransactionRepository
func NewTransactionRepository(db DB) TransactionRepository {
	return &transactionRepository{db: db}
}

// Create inserts a new transaction into the database
func (r *transactionRepository) Create(ctx context.Context, t *model.Transaction) error {
	sql := `INSERT INTO transactions (user_id, amount, category, transaction_date, note, created_at, updated_at)
            VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(ctx, sql, t.UserID, t.Amount, t.Category, t.Date, t.Note, t.CreatedAt, t.UpdatedAt).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// FindByID retrieves a transaction by its ID
func (r *transactionRepository) FindByID(ctx context.Context, id int64) (*model.Transaction, error) {
	t := &model.Transaction{}
	sql := `SELECT id, user_id, amount, category, transaction_date, note, created_at, updated_at
            FROM transactions WHERE id = $1`
	err := r.db.QueryRow(ctx, sql, id).Scan(
		&t.ID, &t.UserID, &t.Amount, &t.Category, &t.Date, &t.Note,
		&t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("failed to find transaction by ID: %w", err)
	}
	return t, nil
}

// FindByUser retrieves transactions for a specific user with optional filters
func (r *transactionRepository) FindByUser(ctx context.Context, userID int, filters model.UserTransactionFilters) ([]model.Transaction, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT id, user_id, amount, category, transaction_date, note, created_at, updated_at
                               FROM transactions WHERE user_id = $1`)
	args := []interface{}{userID}
	argCount := 2 // Start after user_id

	if filters.Category != nil && *filters.Category != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND category = $%d", argCount))
		args = append(args, *filters.Category)
		argCount++
	}
	if filters.Kind != nil && *filters.Kind != "" {
		switch *filters.Kind {
		case model.TransactionKindExpense:
			queryBuilder.WriteString(" AND amount > 0")
		case model.TransactionKindIncome:
			queryBuilder.WriteString(" AND amount < 0")
		}
	}
	if filters.StartDate != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND transaction_date >= $%d", argCount))
		args = append(args, *filters.StartDate)
		argCount++
	}
	if filters.EndDate != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND transaction_date <= $%d", argCount))
		args = append(args, *filters.EndDate)
	}

	queryBuilder.WriteString(" ORDER BY transaction_date DESC, created_at DESC")

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions by user: %w", err)
	}
	defer rows.Close()

	return scanTransactions(rows)
}

// Update modifies an existing transaction
func (r *transactionRepository) Update(ctx context.Context, t *model.Transaction) error {
	sql := `UPDATE transactions
            SET amount = $1, category = $2, transaction_date = $3, note = $4, updated_at = NOW()
            WHERE id = $5 AND user_id = $6 RETURNING updated_at` // ensure user_id matches for ownership
	err := r.db.QueryRow(ctx, sql, t.Amount, t.Category, t.Date, t.Note, t.ID, t.UserID).Scan(&t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("transaction not found or not owned by user for update")
		}
		return fmt.Errorf("failed to update transaction: %w", err)
	}
	return nil
}

// Delete removes a transaction from the database
func (r *transactionRepository) Delete(ctx context.Context, id int64) error {
	sql := `DELETE FROM transactions WHERE id = $1`
	cmdTag, err := r.db.Exec(ctx, sql, id)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("transaction not found for deletion")
	}
	return nil
}

// FindAll retrieves all transactions with optional filters for admin
func (r *transactionRepository) FindAll(ctx context.Context, filters model.AdminTransactionFilters) ([]model.Transaction, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT id, user_id, amount, category, transaction_date, note, created_at, updated_at
                               FROM transactions`)

	conditions, args := adminConditions(filters)
	if len(conditions) > 0 {
		queryBuilder.WriteString(" WHERE ")
		queryBuilder.WriteString(strings.Join(conditions, " AND "))
	}
	queryBuilder.WriteString(" ORDER BY transaction_date DESC, created_at DESC")

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query all transactions: %w", err)
	}
	defer rows.Close()

	return scanTransactions(rows)
}

// GetAggregatedStats calculates cross-user totals under the signed amount
// convention: positive amounts are expenses, negative amounts income.
func (r *transactionRepository) GetAggregatedStats(ctx context.Context, filters model.AdminTransactionFilters) (*model.AggregatedStats, error) {
	stats := &model.AggregatedStats{
		ByCategory: make(map[string]decimal.Decimal),
	}

	conditions, args := adminConditions(filters)
	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	sumQuery := fmt.Sprintf(`
        SELECT
            COALESCE(SUM(CASE WHEN amount > 0 THEN amount ELSE 0 END), 0) as total_expenses,
            COALESCE(SUM(CASE WHEN amount < 0 THEN -amount ELSE 0 END), 0) as total_income,
            COALESCE(SUM(amount), 0) as net_spend
        FROM transactions%s`, whereClause)

	err := r.db.QueryRow(ctx, sumQuery, args...).Scan(&stats.TotalExpenses, &stats.TotalIncome, &stats.NetSpend)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("failed to get aggregated totals: %w", err)
	}

	categoryQuery := fmt.Sprintf(`SELECT category, COALESCE(SUM(amount), 0) FROM transactions%s GROUP BY category`, whereClause)
	rows, err := r.db.Query(ctx, categoryQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get totals by category: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var category string
		var sum decimal.Decimal
		if err := rows.Scan(&category, &sum); err != nil {
			return nil, fmt.Errorf("failed to scan totals by category: %w", err)
		}
		stats.ByCategory[category] = sum
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating totals by category: %w", err)
	}

	return stats, nil
}

func adminConditions(filters model.AdminTransactionFilters) ([]string, []interface{}) {
	args := []interface{}{}
	argCount := 1
	var conditions []string

	if filters.UserID != nil {
		conditions = append(conditions, fmt.Sprintf("user_id = $%d", argCount))
		args = append(args, *filters.UserID)
		argCount++
	}
	if filters.Category != nil && *filters.Category != "" {
		conditions = append(conditions, fmt.Sprintf("category = $%d", argCount))
		args = append(args, *filters.Category)
		argCount++
	}
	if filters.Kind != nil && *filters.Kind != "" {
		switch *filters.Kind {
		case model.TransactionKindExpense:
			conditions = append(conditions, "amount > 0")
		case model.TransactionKindIncome:
			conditions = append(conditions, "amount < 0")
		}
	}
	if filters.StartDate != nil {
		conditions = append(conditions, fmt.Sprintf("transaction_date >= $%d", argCount))
		args = append(args, *filters.StartDate)
		argCount++
	}
	if filters.EndDate != nil {
		conditions = append(conditions, fmt.Sprintf("transaction_date <= $%d", argCount))
		args = append(args, *filters.EndDate)
	}
	return conditions, args
}

func scanTransactions(rows pgx.Rows) ([]model.Transaction, error) {
	var transactions []model.Transaction
	for rows.Next() {
		var t model.Transaction
		if err := rows.Scan(
			&t.ID, &t.UserID, &t.Amount, &t.Category, &t.Date, &t.Note,
			&t.CreatedAt, &t.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		transactions = append(transactions, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}
	return transactions, nil
}
