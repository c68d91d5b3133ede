package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bilancio/internal/core"
)

var header = []string{"date", "description", "category", "value"}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		rows     [][]string
		expected []core.Transaction
		currency string
	}{
		{
			name: "parses rows in input order without re-sorting",
			rows: [][]string{
				header,
				{"2026-02-05", "Coffee Shop", "Dining", "-4.50"},
				{"2026-01-15", "Grocery Store", "Groceries", "-120.50"},
				{"2026-01-30", "Monthly Salary", "Salary", "3000.00"},
			},
			expected: []core.Transaction{
				{Date: core.NewDate(2026, 2, 5), Description: "Coffee Shop", Category: "Dining", Value: core.Money{Cents: -450}},
				{Date: core.NewDate(2026, 1, 15), Description: "Grocery Store", Category: "Groceries", Value: core.Money{Cents: -12050}},
				{Date: core.NewDate(2026, 1, 30), Description: "Monthly Salary", Category: "Salary", Value: core.Money{Cents: 300000}},
			},
		},
		{
			name: "accepts empty description and category",
			rows: [][]string{
				header,
				{"2026-01-01", "", "", "10"},
			},
			expected: []core.Transaction{
				{Date: core.NewDate(2026, 1, 1), Value: core.Money{Cents: 1000}},
			},
		},
		{
			name: "detects a single currency symbol",
			rows: [][]string{
				header,
				{"2026-01-15", "Grocery Store", "Groceries", "-$120.50"},
				{"2026-01-30", "Monthly Salary", "Salary", "$3000.00"},
			},
			expected: []core.Transaction{
				{Date: core.NewDate(2026, 1, 15), Description: "Grocery Store", Category: "Groceries", Value: core.Money{Cents: -12050}},
				{Date: core.NewDate(2026, 1, 30), Description: "Monthly Salary", Category: "Salary", Value: core.Money{Cents: 300000}},
			},
			currency: "$",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txs, currency, err := Validate(tt.rows)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, txs)
			assert.Equal(t, tt.currency, currency)
		})
	}
}

func TestValidateDateFormatPriority(t *testing.T) {
	// 03/04/2026 parses as MM/DD before DD/MM: March 4th.
	txs, _, err := Validate([][]string{
		header,
		{"03/04/2026", "x", "y", "1"},
		{"25/12/2026", "x", "y", "1"}, // only valid as DD/MM
	})
	require.NoError(t, err)
	assert.Equal(t, core.NewDate(2026, 3, 4), txs[0].Date)
	assert.Equal(t, core.NewDate(2026, 12, 25), txs[1].Date)
}

func TestValidateRejections(t *testing.T) {
	t.Run("wrong column count", func(t *testing.T) {
		_, _, err := Validate([][]string{
			header,
			{"2026-01-01", "desc", "cat", "1.00", "extra"},
		})
		var schemaErr *SchemaError
		require.ErrorAs(t, err, &schemaErr)
		assert.Equal(t, 1, schemaErr.Row)
		assert.Equal(t, 5, schemaErr.Found)
	})

	t.Run("header only", func(t *testing.T) {
		_, _, err := Validate([][]string{header})
		assert.ErrorIs(t, err, ErrEmptyFile)
	})

	t.Run("no rows at all", func(t *testing.T) {
		_, _, err := Validate(nil)
		assert.ErrorIs(t, err, ErrEmptyFile)
	})

	t.Run("non-numeric value reports row index", func(t *testing.T) {
		_, _, err := Validate([][]string{
			header,
			{"2026-01-01", "a", "c", "1.00"},
			{"2026-01-02", "b", "c", "2.00"},
			{"2026-01-03", "c", "c", "not-a-number"},
		})
		var valueErr *ValueError
		require.ErrorAs(t, err, &valueErr)
		assert.Equal(t, 3, valueErr.Row)
	})

	t.Run("invalid date reports row index", func(t *testing.T) {
		_, _, err := Validate([][]string{
			header,
			{"2026-01-01", "a", "c", "1.00"},
			{"not-a-date", "b", "c", "2.00"},
		})
		var dateErr *DateError
		require.ErrorAs(t, err, &dateErr)
		assert.Equal(t, 2, dateErr.Row)
	})

	t.Run("all values checked before any date", func(t *testing.T) {
		// Row 1 has a bad date, row 2 a bad value; the value error wins.
		_, _, err := Validate([][]string{
			header,
			{"not-a-date", "a", "c", "1.00"},
			{"2026-01-02", "b", "c", "bad"},
		})
		var valueErr *ValueError
		require.ErrorAs(t, err, &valueErr)
		assert.Equal(t, 2, valueErr.Row)
	})

	t.Run("mixed currency symbols", func(t *testing.T) {
		_, _, err := Validate([][]string{
			header,
			{"2026-01-01", "a", "c", "$1.00"},
			{"2026-01-02", "b", "c", "€2.00"},
		})
		var currencyErr *CurrencyError
		require.ErrorAs(t, err, &currencyErr)
		assert.Equal(t, 2, currencyErr.Row)
		assert.Equal(t, "$", currencyErr.First)
		assert.Equal(t, "€", currencyErr.Second)
	})
}
