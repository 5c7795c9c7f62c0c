package reltime

import "time"

// Before returns t minus p, months first and clamped to the target month's
// last valid day, then days. Months-first-then-clamp matches the behavior
// of calendar libraries' "checked_sub_months": subtracting one month from
// March 31st lands on the last day of February, never rolling over into
// March.
func Before(t time.Time, p Period) time.Time {
	return subtractMonths(t, p.Months).AddDate(0, 0, -p.Days)
}

// After mirrors Before for the rare case a caller needs to project forward
// (e.g. validating that a computed cutoff still precedes now).
func After(t time.Time, p Period) time.Time {
	return subtractMonths(t, -p.Months).AddDate(0, 0, p.Days)
}

func subtractMonths(t time.Time, months int) time.Time {
	if months == 0 {
		return t
	}

	year, month, day := t.Date()
	monthIndex := int(month) - 1 - months

	targetYear := year + floorDiv(monthIndex, 12)
	targetMonth := time.Month(floorMod(monthIndex, 12) + 1)

	if last := lastDayOfMonth(targetYear, targetMonth); day > last {
		day = last
	}

	return time.Date(targetYear, targetMonth, day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func lastDayOfMonth(year int, month time.Month) int {
	firstOfNext := time.Date(year, month+1, 1, 0, 0, 0, 0, time.UTC)
	return firstOfNext.AddDate(0, 0, -1).Day()
}

// floorDiv and floorMod give Euclidean-style division for negative
// dividends, where Go's built-in / and % truncate toward zero instead.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	return a - floorDiv(a, b)*b
}
