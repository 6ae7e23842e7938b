package budget

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"budget_tracker/internal/model"
)

func TestStreak_ConsecutiveDaysUnderTarget(t *testing.T) {
	txns := []model.Transaction{
		tx(t, "2025-02-04", 20, "Food"),
		tx(t, "2025-02-03", 15, "Food"),
		tx(t, "2025-02-02", 10, "Food"),
	}

	streak := Streak(txns, decimal.NewFromInt(50), day(t, "2025-02-04"))
	assert.Equal(t, 3, streak)
}

func TestStreak_BreaksOnFirstViolatingDay(t *testing.T) {
	txns := []model.Transaction{
		tx(t, "2025-02-04", 20, "Food"),
		tx(t, "2025-02-03", 60, "Food"),
		tx(t, "2025-02-02", 5, "Food"),
	}

	streak := Streak(txns, decimal.NewFromInt(50), day(t, "2025-02-04"))
	assert.Equal(t, 1, streak)
}

func TestStreak_TodayOverTarget(t *testing.T) {
	txns := []model.Transaction{
		tx(t, "2025-02-04", 60, "Food"),
	}

	streak := Streak(txns, decimal.NewFromInt(50), day(t, "2025-02-04"))
	assert.Equal(t, 0, streak)
}

func TestStreak_EmptyHistory(t *testing.T) {
	streak := Streak(nil, decimal.NewFromInt(50), day(t, "2025-02-04"))
	assert.Equal(t, 0, streak)
}

// Days without transactions net zero and keep the streak alive.
func TestStreak_GapDaysQualify(t *testing.T) {
	txns := []model.Transaction{
		tx(t, "2025-02-01", 10, "Food"),
	}

	streak := Streak(txns, decimal.NewFromInt(50), day(t, "2025-02-04"))
	assert.Equal(t, 4, streak)
}

// The walk never runs past the first recorded transaction, so an
// all-qualifying history terminates at its own start.
func TestStreak_StopsAtEarliestTransaction(t *testing.T) {
	txns := []model.Transaction{
		tx(t, "2025-02-04", 20, "Food"),
		tx(t, "2025-01-20", 5, "Food"),
	}

	// 2025-01-20 through 2025-02-04 inclusive.
	streak := Streak(txns, decimal.NewFromInt(50), day(t, "2025-02-04"))
	assert.Equal(t, 16, streak)
}

// The per-day sums are netted: a violating gross spend can be offset by
// income on the same day, and an income-only day always qualifies.
func TestStreak_NetAmounts(t *testing.T) {
	txns := []model.Transaction{
		tx(t, "2025-02-04", 80, "Food"),
		tx(t, "2025-02-04", -40, "Refund"),
		tx(t, "2025-02-03", -200, "Salary"),
	}

	streak := Streak(txns, decimal.NewFromInt(50), day(t, "2025-02-04"))
	assert.Equal(t, 2, streak)
}
