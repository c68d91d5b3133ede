package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bilancio/internal/core"
)

func TestSubcategory(t *testing.T) {
	tests := []struct {
		category    string
		description string
		expected    string
	}{
		{"Groceries", "Local Supermarket", SubGroceries},
		{"Food", "Restaurant downtown", SubOtherFood},
		{"Dining", "FOOD STORE!", SubGroceries}, // punctuation and case ignored
		{"Transportation", "Metro card refill", SubPublicTransport},
		{"Transport", "Gas station", SubPrivateTransport},
		{"Hobbies", "Music subscription", "Streaming"},
		{"Subscriptions", "Gym membership", "Fitness"},
		{"Entertainment", "Game Pass", "Gaming"},
		{"Subscriptions", "Something else", SubOtherSubs},
		{"Rent", "Monthly rent", "Rent"}, // unclassified categories map to themselves
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, Subcategory(tt.category, tt.description), "%s / %s", tt.category, tt.description)
	}
}

func TestSubcategoryBreakdown(t *testing.T) {
	txs := []core.Transaction{
		{Date: core.NewDate(2026, 1, 1), Description: "Supermarket", Category: "Food", Value: core.Money{Cents: -6000}},
		{Date: core.NewDate(2026, 1, 2), Description: "Restaurant", Category: "Food", Value: core.Money{Cents: -3000}},
		{Date: core.NewDate(2026, 1, 3), Description: "Grocery run", Category: "Food", Value: core.Money{Cents: -1000}},
		{Date: core.NewDate(2026, 1, 4), Description: "Salary", Category: "Salary", Value: core.Money{Cents: 500000}},
		{Date: core.NewDate(2026, 1, 5), Description: "Bus ticket", Category: "Transport", Value: core.Money{Cents: -250}},
	}

	shares := SubcategoryBreakdown(txs, "food")
	require.Len(t, shares, 2)

	assert.Equal(t, SubGroceries, shares[0].Subcategory)
	assert.Equal(t, int64(7000), shares[0].Amount.Cents)
	assert.InDelta(t, 70.0, shares[0].Percentage, 0.0001)

	assert.Equal(t, SubOtherFood, shares[1].Subcategory)
	assert.Equal(t, int64(3000), shares[1].Amount.Cents)
	assert.InDelta(t, 30.0, shares[1].Percentage, 0.0001)
}

func TestSubcategoryBreakdownNoMatches(t *testing.T) {
	txs := []core.Transaction{
		{Date: core.NewDate(2026, 1, 1), Description: "Salary", Category: "Salary", Value: core.Money{Cents: 500000}},
	}
	assert.Empty(t, SubcategoryBreakdown(txs, "food"))
}
