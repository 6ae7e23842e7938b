package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Budget holds a user's spending targets and period settings. One per user.
type Budget struct {
	ID            int64           `json:"id"`
	UserID        int             `json:"user_id"`
	DailyTarget   decimal.Decimal `json:"daily_target"`
	MonthlyTarget decimal.Decimal `json:"monthly_target"`
	Currency      string          `json:"currency"` // opaque code, never computed on
	MonthStartDay int             `json:"month_start_day"`
	BankBalance   decimal.Decimal `json:"bank_balance"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// BudgetRequest is used for creating or replacing the user's budget
type BudgetRequest struct {
	DailyTarget   decimal.Decimal `json:"daily_target"`
	MonthlyTarget decimal.Decimal `json:"monthly_target"`
	Currency      string          `json:"currency" binding:"required"`
	MonthStartDay int             `json:"month_start_day" binding:"required,min=1,max=31"`
	BankBalance   decimal.Decimal `json:"bank_balance"`
}

// StatsSnapshot is the stats endpoint payload: the derived BudgetStats plus
// the running balance and the echoed currency code.
type StatsSnapshot struct {
	Stats          BudgetStats     `json:"stats"`
	RunningBalance decimal.Decimal `json:"running_balance"`
	Currency       string          `json:"currency"`
	AsOf           string          `json:"as_of"` // YYYY-MM-DD reference date
}

// BudgetStats is the derived snapshot for a single reference date.
// It is recomputed on every request and never persisted.
type BudgetStats struct {
	SpentToday          decimal.Decimal `json:"spent_today"`
	SpentMonthToDate    decimal.Decimal `json:"spent_month_to_date"`
	DailyRemaining      decimal.Decimal `json:"daily_remaining"`
	MonthlyRemaining    decimal.Decimal `json:"monthly_remaining"`
	ProjectedMonthEnd   decimal.Decimal `json:"projected_month_end"`
	Streak              int             `json:"streak"`
	IsOverDailyBudget   bool            `json:"is_over_daily_budget"`
	IsOverMonthlyBudget bool            `json:"is_over_monthly_budget"`
	IsOnTrackMonthly    bool            `json:"is_on_track_monthly"`
}
