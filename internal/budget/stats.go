package budget

import (
	"time"

	"github.com/shopspring/decimal"

	"budget_tracker/internal/model"
)

// ProjectedMonthEnd extrapolates month-to-date spend linearly across the full
// budget month: (spent / elapsed) * total. Zero elapsed days yields zero
// rather than dividing by zero.
func ProjectedMonthEnd(spent decimal.Decimal, elapsed, total int) decimal.Decimal {
	if elapsed == 0 {
		return decimal.Zero
	}
	return spent.Div(decimal.NewFromInt(int64(elapsed))).Mul(decimal.NewFromInt(int64(total)))
}

// OnTrack reports whether month-to-date spend is at or below the proportional
// share of the monthly target for the elapsed part of the budget month:
// spent <= monthlyTarget * elapsed / total.
func OnTrack(spent, monthlyTarget decimal.Decimal, elapsed, total int) bool {
	if total == 0 {
		return spent.Sign() <= 0
	}
	expected := monthlyTarget.Mul(decimal.NewFromInt(int64(elapsed))).Div(decimal.NewFromInt(int64(total)))
	return spent.LessThanOrEqual(expected)
}

// CalculateStats composes the full statistics snapshot for one reference
// date. The caller is responsible for capturing "now" exactly once and for
// ensuring a budget exists; given that, the computation is total and
// idempotent.
func CalculateStats(txns []model.Transaction, b *model.Budget, today time.Time) model.BudgetStats {
	spentToday := SpentToday(txns, today)
	spentMonthToDate := SpentMonthToDate(txns, today, b.MonthStartDay)
	elapsed, total := ElapsedDays(today, b.MonthStartDay)

	return model.BudgetStats{
		SpentToday:          spentToday,
		SpentMonthToDate:    spentMonthToDate,
		DailyRemaining:      floorZero(b.DailyTarget.Sub(spentToday)),
		MonthlyRemaining:    floorZero(b.MonthlyTarget.Sub(spentMonthToDate)),
		ProjectedMonthEnd:   ProjectedMonthEnd(spentMonthToDate, elapsed, total),
		Streak:              Streak(txns, b.DailyTarget, today),
		IsOverDailyBudget:   spentToday.GreaterThan(b.DailyTarget),
		IsOverMonthlyBudget: spentMonthToDate.GreaterThan(b.MonthlyTarget),
		IsOnTrackMonthly:    OnTrack(spentMonthToDate, b.MonthlyTarget, elapsed, total),
	}
}

func floorZero(d decimal.Decimal) decimal.Decimal {
	if d.Sign() < 0 {
		return decimal.Zero
	}
	return d
}
