// Package warranty implements calendar-month warranty arithmetic.
package warranty

import "time"

// ExpirationDate returns the purchase date advanced by the given number of
// calendar months. The day of month is preserved when it exists in the
// target month and clamped to the month's last day otherwise, so
// Jan 31 + 1 month is Feb 28 (Feb 29 in a leap year), never Mar 3.
func ExpirationDate(purchase time.Time, months int) time.Time {
	year, month, day := purchase.Date()

	total := int(month) - 1 + months
	targetYear := year + total/12
	targetMonth := time.Month(total%12 + 1)

	if last := lastDayOfMonth(targetYear, targetMonth); day > last {
		day = last
	}

	return time.Date(targetYear, targetMonth, day, 0, 0, 0, 0, purchase.Location())
}

func lastDayOfMonth(year int, month time.Month) int {
	// Day zero of the next month normalizes to the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
