package analysis

import (
	"bilancio/internal/core"
)

// ComputeMetrics derives global metrics from the full transaction list and
// its monthly summaries. The balance is the raw sum over all transaction
// values rather than a re-sum of monthly nets, though the two agree exactly
// in cents arithmetic. Returns ErrEmptyDataset when zero months exist.
//
// Best/worst month ties break toward the chronologically earliest month,
// relying on monthly being in chronological order as Summarize produces it.
func ComputeMetrics(txs []core.Transaction, monthly []core.MonthlySummary) (core.FinancialMetrics, error) {
	if len(monthly) == 0 {
		return core.FinancialMetrics{}, ErrEmptyDataset
	}

	var balance core.Money
	for _, tx := range txs {
		balance = balance.Add(tx.Value)
	}

	var netSum int64
	best := core.MonthNet{Month: monthly[0].Month, NetIncome: monthly[0].NetIncome}
	worst := best
	for _, m := range monthly {
		netSum += m.NetIncome.Cents
		if m.NetIncome.Cents > best.NetIncome.Cents {
			best = core.MonthNet{Month: m.Month, NetIncome: m.NetIncome}
		}
		if m.NetIncome.Cents < worst.NetIncome.Cents {
			worst = core.MonthNet{Month: m.Month, NetIncome: m.NetIncome}
		}
	}

	return core.FinancialMetrics{
		CurrentBalance:        balance,
		AverageMonthlySavings: core.MeanCents(netSum, len(monthly)),
		BestMonth:             best,
		WorstMonth:            worst,
	}, nil
}
