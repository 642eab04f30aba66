package forecasting

import "time"

// NextTimestamps continues the cadence of timestamps for periods steps.
// Month-on-month inputs advance by calendar months (keeping month ends on
// month ends), a single observation advances daily, and anything else
// advances by the last observed spacing.
func NextTimestamps(timestamps []time.Time, periods int) []time.Time {
	if len(timestamps) == 0 || periods < 1 {
		return nil
	}

	last := timestamps[len(timestamps)-1]
	next := make([]time.Time, periods)

	switch {
	case len(timestamps) == 1:
		for i := range next {
			next[i] = last.AddDate(0, 0, i+1)
		}
	case isMonthly(timestamps):
		monthEnd := isMonthEnd(last)
		for i := range next {
			next[i] = addMonths(last, i+1, monthEnd)
		}
	default:
		step := last.Sub(timestamps[len(timestamps)-2])
		for i := range next {
			next[i] = last.Add(time.Duration(i+1) * step)
		}
	}
	return next
}

func isMonthly(timestamps []time.Time) bool {
	for i := 1; i < len(timestamps); i++ {
		prev, cur := timestamps[i-1], timestamps[i]
		if monthIndex(cur)-monthIndex(prev) != 1 {
			return false
		}
		if prev.Day() != cur.Day() && !(isMonthEnd(prev) && isMonthEnd(cur)) {
			return false
		}
	}
	return true
}

func monthIndex(t time.Time) int {
	return t.Year()*12 + int(t.Month())
}

func isMonthEnd(t time.Time) bool {
	return t.AddDate(0, 0, 1).Month() != t.Month()
}

func addMonths(t time.Time, months int, monthEnd bool) time.Time {
	if !monthEnd {
		return t.AddDate(0, months, 0)
	}
	// first day of the month after the target, minus one day
	firstAfter := time.Date(t.Year(), t.Month()+time.Month(months)+1, 1,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	return firstAfter.AddDate(0, 0, -1)
}
