package budget

import (
	"time"

	"github.com/shopspring/decimal"

	"budget_tracker/internal/model"
)

// SpentToday sums the amounts of every transaction dated on the reference
// day. Income (negative amounts) reduces the total, so a day with only
// income nets below zero.
func SpentToday(txns []model.Transaction, today time.Time) decimal.Decimal {
	key := today.Format(dayKey)
	sum := decimal.Zero
	for _, t := range txns {
		if t.Date.Format(dayKey) == key {
			sum = sum.Add(t.Amount)
		}
	}
	return sum
}

// SpentMonthToDate sums transaction amounts over [budget month start, today],
// both inclusive, using the same net convention as SpentToday.
func SpentMonthToDate(txns []model.Transaction, today time.Time, monthStartDay int) decimal.Decimal {
	start, _ := MonthBoundary(today, monthStartDay)
	startKey := start.Format(dayKey)
	todayKey := today.Format(dayKey)

	sum := decimal.Zero
	for _, t := range txns {
		key := t.Date.Format(dayKey)
		if key >= startKey && key <= todayKey {
			sum = sum.Add(t.Amount)
		}
	}
	return sum
}

// RunningBalance applies the whole transaction history to the user's bank
// balance: expenses (positive amounts) draw it down, income restores it.
func RunningBalance(txns []model.Transaction, bankBalance decimal.Decimal) decimal.Decimal {
	balance := bankBalance
	for _, t := range txns {
		balance = balance.Sub(t.Amount)
	}
	return balance
}
