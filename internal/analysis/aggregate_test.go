package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bilancio/internal/core"
)

func tx(date core.Date, category string, cents int64) core.Transaction {
	return core.Transaction{Date: date, Category: category, Value: core.Money{Cents: cents}}
}

func TestSummarize(t *testing.T) {
	txs := []core.Transaction{
		tx(core.NewDate(2026, 1, 15), "Groceries", -12050),
		tx(core.NewDate(2026, 1, 30), "Salary", 300000),
		tx(core.NewDate(2026, 2, 5), "Dining", -450),
	}

	monthly := Summarize(txs)
	require.Len(t, monthly, 2)

	jan := monthly[0]
	assert.Equal(t, core.MonthKey{Year: 2026, Month: 1}, jan.Month)
	assert.Equal(t, int64(300000), jan.TotalIncome.Cents)
	assert.Equal(t, int64(12050), jan.TotalExpenses.Cents)
	assert.Equal(t, int64(287950), jan.NetIncome.Cents)
	assert.Equal(t, map[string]core.Money{"Groceries": {Cents: 12050}}, jan.ByCategory)

	feb := monthly[1]
	assert.Equal(t, core.MonthKey{Year: 2026, Month: 2}, feb.Month)
	assert.Equal(t, int64(0), feb.TotalIncome.Cents)
	assert.Equal(t, int64(450), feb.TotalExpenses.Cents)
	assert.Equal(t, int64(-450), feb.NetIncome.Cents)
}

func TestSummarizeOrdersAcrossYears(t *testing.T) {
	txs := []core.Transaction{
		tx(core.NewDate(2026, 1, 1), "A", -100),
		tx(core.NewDate(2025, 12, 1), "A", -100),
		tx(core.NewDate(2025, 3, 1), "A", -100),
	}
	monthly := Summarize(txs)
	require.Len(t, monthly, 3)
	assert.Equal(t, core.MonthKey{Year: 2025, Month: 3}, monthly[0].Month)
	assert.Equal(t, core.MonthKey{Year: 2025, Month: 12}, monthly[1].Month)
	assert.Equal(t, core.MonthKey{Year: 2026, Month: 1}, monthly[2].Month)
}

func TestSummarizeZeroValueTransactions(t *testing.T) {
	txs := []core.Transaction{
		tx(core.NewDate(2026, 1, 1), "Fees", 0),
		tx(core.NewDate(2026, 1, 2), "Salary", 1000),
	}
	monthly := Summarize(txs)
	require.Len(t, monthly, 1)
	assert.Equal(t, int64(1000), monthly[0].TotalIncome.Cents)
	assert.Equal(t, int64(0), monthly[0].TotalExpenses.Cents)
	assert.Equal(t, int64(1000), monthly[0].NetIncome.Cents)
	// Zero-value row is not an expense, so no category entry appears.
	assert.Empty(t, monthly[0].ByCategory)
}

func TestSummarizeCategoryBreakdownIsCaseSensitive(t *testing.T) {
	txs := []core.Transaction{
		tx(core.NewDate(2026, 1, 1), "groceries", -100),
		tx(core.NewDate(2026, 1, 2), "Groceries", -200),
		tx(core.NewDate(2026, 1, 3), "Salary", 5000),
	}
	monthly := Summarize(txs)
	require.Len(t, monthly, 1)
	assert.Equal(t, map[string]core.Money{
		"groceries": {Cents: 100},
		"Groceries": {Cents: 200},
	}, monthly[0].ByCategory)
	// Income categories never appear in the breakdown.
	assert.NotContains(t, monthly[0].ByCategory, "Salary")
}

func TestSummarizeEmptyInput(t *testing.T) {
	assert.Empty(t, Summarize(nil))
}
