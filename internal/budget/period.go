// Package budget implements the budget-period analytics: period boundary
// resolution, spend aggregation, streak counting and projection math.
// Everything here is pure. Callers pass the transaction history, the budget
// settings and a reference date; no function reads a clock or touches storage.
package budget

import "time"

// dayKey is the calendar-day format used for all date comparisons.
// Keys compare correctly as plain strings.
const dayKey = "2006-01-02"

// MonthBoundary returns the first and last calendar day of the budget month
// containing ref. With monthStartDay == 1 the budget month is the calendar
// month; otherwise it runs from monthStartDay through the day before
// monthStartDay of the following month. A start day that does not exist in a
// given month (31 in February) rolls forward into the next month via
// time.Date normalization.
func MonthBoundary(ref time.Time, monthStartDay int) (start, end time.Time) {
	year, month, day := ref.Date()
	loc := ref.Location()

	if monthStartDay == 1 {
		start = time.Date(year, month, 1, 0, 0, 0, 0, loc)
		end = time.Date(year, month+1, 0, 0, 0, 0, 0, loc) // day 0 = last day of month
		return start, end
	}

	if day >= monthStartDay {
		start = time.Date(year, month, monthStartDay, 0, 0, 0, 0, loc)
		end = time.Date(year, month+1, monthStartDay-1, 0, 0, 0, 0, loc)
	} else {
		start = time.Date(year, month-1, monthStartDay, 0, 0, 0, 0, loc)
		end = time.Date(year, month, monthStartDay-1, 0, 0, 0, 0, loc)
	}
	return start, end
}

// ElapsedDays returns how many days of the budget month containing today have
// passed (counting today itself) and how long the full budget month is. Both
// are at least 1 for any date inside the resolved period.
func ElapsedDays(today time.Time, monthStartDay int) (elapsed, total int) {
	start, end := MonthBoundary(today, monthStartDay)
	elapsed = daysBetween(start, today) + 1
	total = daysBetween(start, end) + 1
	return elapsed, total
}

// daysBetween counts whole calendar days from a to b. Both are normalized to
// UTC midnight first so DST transitions cannot skew the count.
func daysBetween(a, b time.Time) int {
	a = time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	b = time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}
