package analysis

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bilancio/internal/core"
)

// Cross-component properties over a deterministic pseudo-random dataset.

func randomTransactions(t *testing.T, n int) []core.Transaction {
	t.Helper()
	rng := rand.New(rand.NewSource(42))
	categories := []string{"Groceries", "Dining", "Transport", "Rent", "Salary"}
	txs := make([]core.Transaction, n)
	for i := range txs {
		txs[i] = core.Transaction{
			Date:     core.NewDate(2025+rng.Intn(2), 1+rng.Intn(12), 1+rng.Intn(28)),
			Category: categories[rng.Intn(len(categories))],
			Value:    core.Money{Cents: int64(rng.Intn(400001) - 200000)},
		}
	}
	return txs
}

func TestBalanceAdditivity(t *testing.T) {
	txs := randomTransactions(t, 500)
	monthly := Summarize(txs)
	metrics, err := ComputeMetrics(txs, monthly)
	require.NoError(t, err)

	var netSum int64
	for _, m := range monthly {
		netSum += m.NetIncome.Cents
	}
	assert.Equal(t, netSum, metrics.CurrentBalance.Cents)
}

func TestPartitionAndCategoryConservation(t *testing.T) {
	txs := randomTransactions(t, 500)
	for _, m := range Summarize(txs) {
		assert.GreaterOrEqual(t, m.TotalIncome.Cents, int64(0))
		assert.GreaterOrEqual(t, m.TotalExpenses.Cents, int64(0))
		assert.Equal(t, m.TotalIncome.Cents-m.TotalExpenses.Cents, m.NetIncome.Cents)

		var categorySum int64
		for _, amount := range m.ByCategory {
			assert.Greater(t, amount.Cents, int64(0))
			categorySum += amount.Cents
		}
		assert.Equal(t, m.TotalExpenses.Cents, categorySum)
	}
}

func TestMonotonicChronology(t *testing.T) {
	txs := randomTransactions(t, 500)

	monthly := Summarize(txs)
	for i := 1; i < len(monthly); i++ {
		assert.True(t, monthly[i-1].Month.Before(monthly[i].Month))
	}

	points, err := RollingExpenseAverage(txs, DefaultWindow)
	require.NoError(t, err)
	for i := 1; i < len(points); i++ {
		assert.True(t, points[i-1].Month.Before(points[i].Month))
	}
}

func TestPipelineIdempotence(t *testing.T) {
	txs := randomTransactions(t, 300)

	first := Summarize(txs)
	second := Summarize(txs)
	assert.Equal(t, first, second)

	m1, err1 := ComputeMetrics(txs, first)
	m2, err2 := ComputeMetrics(txs, second)
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, m1, m2)

	r1, err1 := RollingExpenseAverage(txs, DefaultWindow)
	r2, err2 := RollingExpenseAverage(txs, DefaultWindow)
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, r1, r2)
}
