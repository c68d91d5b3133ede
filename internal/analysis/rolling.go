package analysis

import (
	"sort"

	"bilancio/internal/core"
)

// DefaultWindow is the trailing window length in months.
const DefaultWindow = 3

// RollingExpenseAverage computes the trailing mean of monthly expense totals
// over the given window. Income transactions contribute nothing; expenses are
// grouped by month with the same discipline as Summarize. The series windows
// over the months actually present in the data: a month with no expenses
// between two active months is not zero-filled here, so callers that consider
// such gaps significant must fill them before calling (see the package note).
//
// The result has max(0, months-window+1) points, one per month once a full
// window of history exists, in chronological order. Fewer than window months
// of expense data yields an empty series, which is a valid terminal result
// and not an error. A window below 1 is rejected with a ConfigError.
func RollingExpenseAverage(txs []core.Transaction, window int) ([]core.RollingPoint, error) {
	if window <= 0 {
		return nil, &ConfigError{Param: "window", Value: window}
	}

	totals := make(map[core.MonthKey]int64)
	for _, tx := range txs {
		if tx.IsExpense() {
			totals[tx.Date.Key()] += tx.Value.Abs().Cents
		}
	}

	months := make([]core.MonthKey, 0, len(totals))
	for key := range totals {
		months = append(months, key)
	}
	sort.Slice(months, func(i, j int) bool {
		return months[i].Before(months[j])
	})

	out := make([]core.RollingPoint, 0)
	if len(months) < window {
		return out, nil
	}

	// Fixed-size sliding accumulator over the chronological monthly series.
	var sum int64
	for i, key := range months {
		sum += totals[key]
		if i >= window {
			sum -= totals[months[i-window]]
		}
		if i >= window-1 {
			out = append(out, core.RollingPoint{
				Month:          key,
				AverageExpense: core.MeanCents(sum, window),
			})
		}
	}
	return out, nil
}
