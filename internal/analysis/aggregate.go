package analysis

import (
	"sort"

	"bilancio/internal/core"
)

// Summarize groups transactions by (year, month) and computes per-month
// income, expense, net and category totals. Output is ordered ascending by
// month; only months with at least one transaction appear. Zero-value
// transactions contribute to neither income nor expenses, which leaves net
// income unaffected since net equals the raw sum of the month's values.
func Summarize(txs []core.Transaction) []core.MonthlySummary {
	groups := make(map[core.MonthKey]*core.MonthlySummary)
	for _, tx := range txs {
		key := tx.Date.Key()
		g, ok := groups[key]
		if !ok {
			g = &core.MonthlySummary{
				Month:      key,
				ByCategory: make(map[string]core.Money),
			}
			groups[key] = g
		}
		switch {
		case tx.IsIncome():
			g.TotalIncome = g.TotalIncome.Add(tx.Value)
		case tx.IsExpense():
			spent := tx.Value.Abs()
			g.TotalExpenses = g.TotalExpenses.Add(spent)
			g.ByCategory[tx.Category] = g.ByCategory[tx.Category].Add(spent)
		}
	}

	out := make([]core.MonthlySummary, 0, len(groups))
	for _, g := range groups {
		g.NetIncome = g.TotalIncome.Sub(g.TotalExpenses)
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Month.Before(out[j].Month)
	})
	return out
}
