package repository

import (
	"context"
	"errors"
	"fmt"

	"budget_tracker/internal/model"

	"github.com/jackc/pgx/v5"
)

// BudgetRepository defines operations for budget settings. Each user owns at
// most one budget row.
type BudgetRepository interface {
	Create(ctx context.Context, budget *model.Budget) error
	Update(ctx context.Context, budget *model.Budget) error
	FindByUserID(ctx context.Context, userID int) (*model.Budget, error)
}

type budgetRepository struct {
	db DB
}

// NewBudgetRepository creates a new BudgetRepository
func NewBudgetRepository(db DB) BudgetRepository {
	return &budgetRepository{db: db}
}

// Create inserts a new budget for a user
func (r *budgetRepository) Create(ctx context.Context, b *model.Budget) error {
	sql := `INSERT INTO budgets (user_id, daily_target, monthly_target, currency, month_start_day, bank_balance, created_at, updated_at)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(ctx, sql, b.UserID, b.DailyTarget, b.MonthlyTarget, b.Currency, b.MonthStartDay, b.BankBalance, b.CreatedAt, b.UpdatedAt).
		Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create budget: %w", err)
	}
	return nil
}

// Update replaces the targets and settings of an existing budget
func (r *budgetRepository) Update(ctx context.Context, b *model.Budget) error {
	sql := `UPDATE budgets
            SET daily_target = $1, monthly_target = $2, currency = $3, month_start_day = $4, bank_balance = $5, updated_at = NOW()
            WHERE id = $6 AND user_id = $7 RETURNING updated_at` // ensure user_id matches for ownership
	err := r.db.QueryRow(ctx, sql, b.DailyTarget, b.MonthlyTarget, b.Currency, b.MonthStartDay, b.BankBalance, b.ID, b.UserID).Scan(&b.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("budget not found or not owned by user for update")
		}
		return fmt.Errorf("failed to update budget: %w", err)
	}
	return nil
}

// FindByUserID retrieves a user's budget, or nil when none has been created yet
func (r *budgetRepository) FindByUserID(ctx context.Context, userID int) (*model.Budget, error) {
	b := &model.Budget{}
	sql := `SELECT id, user_id, daily_target, monthly_target, currency, month_start_day, bank_balance, created_at, updated_at
            FROM budgets WHERE user_id = $1`
	err := r.db.QueryRow(ctx, sql, userID).Scan(
		&b.ID, &b.UserID, &b.DailyTarget, &b.MonthlyTarget, &b.Currency,
		&b.MonthStartDay, &b.BankBalance, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("failed to find budget by user ID: %w", err)
	}
	return b, nil
}
