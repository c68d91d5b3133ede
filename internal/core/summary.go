package core

type (
	// MonthlySummary aggregates one month of transactions. TotalIncome and
	// TotalExpenses are non-negative; NetIncome = TotalIncome - TotalExpenses,
	// which equals the raw sum of the month's values. ByCategory maps each
	// category with expense activity to its absolute spend; categories with no
	// expense activity in the month are absent.
	MonthlySummary struct {
		Month         MonthKey
		TotalIncome   Money
		TotalExpenses Money
		NetIncome     Money
		ByCategory    map[string]Money
	}

	// MonthNet pairs a month with its net income, used for best/worst month.
	MonthNet struct {
		Month     MonthKey
		NetIncome Money
	}

	// FinancialMetrics holds global derived metrics. Undefined when the
	// dataset contains zero months; callers must not construct it in that case.
	FinancialMetrics struct {
		CurrentBalance        Money
		AverageMonthlySavings Money
		BestMonth             MonthNet
		WorstMonth            MonthNet
	}

	// RollingPoint is one point of the trailing expense-average series.
	RollingPoint struct {
		Month          MonthKey
		AverageExpense Money
	}

	// SubcategoryShare is one subcategory's slice of a category's spend.
	// Percentage is of the category total, 0-100.
	SubcategoryShare struct {
		Subcategory string
		Amount      Money
		Percentage  float64
	}
)
