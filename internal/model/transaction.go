package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents a single dated entry against the user's budget.
// Amounts are signed: positive is money out (expense), negative is money
// in (income). Date carries calendar-day precision only.
type Transaction struct {
	ID        int64           `json:"id"`
	UserID    int             `json:"user_id"`
	Amount    decimal.Decimal `json:"amount"`
	Category  string          `json:"category"`
	Date      time.Time       `json:"date"`
	Note      *string         `json:"note,omitempty"` // Pointer for optional field
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

const (
	TransactionKindExpense = "expense"
	TransactionKindIncome  = "income"
)

// CreateTransactionRequest is used for creating a new transaction.
// Date is a YYYY-MM-DD string; the handler parses it.
type CreateTransactionRequest struct {
	Amount   decimal.Decimal `json:"amount"`
	Category string          `json:"category" binding:"required"`
	Date     string          `json:"date" binding:"required"`
	Note     *string         `json:"note"`
}

type UpdateTransactionRequest struct {
	Amount   *decimal.Decimal `json:"amount,omitempty"` // Pointers to allow partial updates
	Category *string          `json:"category,omitempty"`
	Date     *string          `json:"date,omitempty"`
	Note     *string          `json:"note,omitempty"`
}

// UserTransactionFilters contains filter parameters for user transaction queries.
// Kind filters by amount sign: "expense" keeps positive amounts, "income" negative.
type UserTransactionFilters struct {
	Category  *string
	Kind      *string
	StartDate *time.Time
	EndDate   *time.Time
}

// AdminTransactionFilters contains filter parameters for admin transaction queries
type AdminTransactionFilters struct {
	UserID    *int
	Category  *string
	Kind      *string
	StartDate *time.Time
	EndDate   *time.Time
}

// AggregatedStats represents cross-user totals for admin, under the signed
// amount convention (expenses positive, income negative).
type AggregatedStats struct {
	TotalExpenses decimal.Decimal            `json:"total_expenses"`
	TotalIncome   decimal.Decimal            `json:"total_income"`
	NetSpend      decimal.Decimal            `json:"net_spend"`
	ByCategory    map[string]decimal.Decimal `json:"by_category"`
}
