package budget

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"budget_tracker/internal/model"
)

func tx(t *testing.T, date string, amount float64, category string) model.Transaction {
	t.Helper()
	return model.Transaction{
		Amount:   decimal.NewFromFloat(amount),
		Category: category,
		Date:     day(t, date),
	}
}

func TestSpentToday(t *testing.T) {
	txns := []model.Transaction{
		tx(t, "2025-02-04", 25.5, "Food"),
		tx(t, "2025-02-04", 15.0, "Transport"),
		tx(t, "2025-02-03", 10.0, "Food"),
	}

	spent := SpentToday(txns, day(t, "2025-02-04"))
	assert.True(t, spent.Equal(decimal.NewFromFloat(40.5)), "got %s", spent)

	spent = SpentToday(txns, day(t, "2025-02-05"))
	assert.True(t, spent.IsZero(), "got %s", spent)
}

func TestSpentToday_Empty(t *testing.T) {
	spent := SpentToday(nil, day(t, "2025-02-04"))
	assert.True(t, spent.IsZero())
}

func TestSpentToday_IncomeNetsBelowExpenses(t *testing.T) {
	txns := []model.Transaction{
		tx(t, "2025-02-04", 30, "Food"),
		tx(t, "2025-02-04", -100, "Salary"),
	}

	spent := SpentToday(txns, day(t, "2025-02-04"))
	assert.True(t, spent.Equal(decimal.NewFromInt(-70)), "got %s", spent)
}

func TestSpentMonthToDate_CalendarMonth(t *testing.T) {
	txns := []model.Transaction{
		tx(t, "2025-02-04", 25.5, "Food"),
		tx(t, "2025-02-04", 15.0, "Transport"),
		tx(t, "2025-02-03", 10.0, "Food"),
		tx(t, "2025-02-02", 5.0, "Food"),
		tx(t, "2025-01-31", 99.0, "Food"), // previous period, excluded
	}

	spent := SpentMonthToDate(txns, day(t, "2025-02-04"), 1)
	assert.True(t, spent.Equal(decimal.NewFromFloat(55.5)), "got %s", spent)
}

func TestSpentMonthToDate_CustomStart(t *testing.T) {
	txns := []model.Transaction{
		tx(t, "2025-02-10", 10, "Food"),
		tx(t, "2025-02-15", 20, "Food"),
		tx(t, "2025-02-09", 40, "Food"), // day before period start, excluded
	}

	spent := SpentMonthToDate(txns, day(t, "2025-02-15"), 10)
	assert.True(t, spent.Equal(decimal.NewFromInt(30)), "got %s", spent)
}

func TestSpentMonthToDate_ExcludesFutureDays(t *testing.T) {
	txns := []model.Transaction{
		tx(t, "2025-02-10", 10, "Food"),
		tx(t, "2025-02-20", 50, "Food"), // after the reference date
	}

	spent := SpentMonthToDate(txns, day(t, "2025-02-15"), 1)
	assert.True(t, spent.Equal(decimal.NewFromInt(10)), "got %s", spent)
}

func TestRunningBalance(t *testing.T) {
	txns := []model.Transaction{
		tx(t, "2025-02-04", 25.5, "Food"),
		tx(t, "2025-02-05", -100, "Salary"),
	}

	balance := RunningBalance(txns, decimal.NewFromInt(500))
	assert.True(t, balance.Equal(decimal.NewFromFloat(574.5)), "got %s", balance)

	balance = RunningBalance(nil, decimal.NewFromInt(500))
	assert.True(t, balance.Equal(decimal.NewFromInt(500)))
}
