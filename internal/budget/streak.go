package budget

import (
	"time"

	"github.com/shopspring/decimal"

	"budget_tracker/internal/model"
)

// Streak counts consecutive days, walking backward from today, whose net
// spend stays at or under dailyTarget. A day with no transactions nets zero
// and qualifies against any positive target. The walk ends at the first
// violating day, or once it passes the earliest transaction on record, so a
// sparse history cannot send it arbitrarily far into the past. An empty
// history yields zero.
func Streak(txns []model.Transaction, dailyTarget decimal.Decimal, today time.Time) int {
	if len(txns) == 0 {
		return 0
	}

	perDay := make(map[string]decimal.Decimal, len(txns))
	earliest := ""
	for _, t := range txns {
		key := t.Date.Format(dayKey)
		perDay[key] = perDay[key].Add(t.Amount)
		if earliest == "" || key < earliest {
			earliest = key
		}
	}

	streak := 0
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	for {
		key := day.Format(dayKey)
		if key < earliest {
			break
		}
		if perDay[key].GreaterThan(dailyTarget) {
			break
		}
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}
