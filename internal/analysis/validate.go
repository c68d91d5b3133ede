// Package analysis implements the transaction analytics pipeline: validation
// of raw tabular rows into typed transactions, monthly aggregation, global
// financial metrics and the trailing expense-average series.
//
// Every function here is pure: no I/O, no shared state, and identical inputs
// always produce identical outputs. Months absent from the input are never
// synthesized anywhere in the package; a caller that needs a continuous
// timeline (for charting or before windowing) is responsible for zero-filling
// gaps itself.
package analysis

import (
	"time"

	"bilancio/internal/core"
)

// columnCount is the fixed input schema: date, description, category, value.
const columnCount = 4

// Column positions within a row.
const (
	colDate = iota
	colDescription
	colCategory
	colValue
)

// dateFormats are tried in order; the first successful parse wins. Ambiguous
// two-digit day/month strings are therefore resolved as MM/DD before DD/MM,
// never cross-validated.
var dateFormats = []string{
	"2006-01-02", // ISO
	"01/02/2006", // MM/DD/YYYY
	"02/01/2006", // DD/MM/YYYY
}

// Validate checks raw rows against the fixed 4-column schema and returns the
// fully parsed transaction list in input order, plus the currency symbol
// detected in the value column ("" when values carry none).
//
// The first row is always treated as a header and discarded without
// inspection. Checks run in order and short-circuit on the first failure:
// column count, non-empty body, numeric values (with consistent currency
// symbol), then valid dates. Any single failing row rejects the whole input;
// there is no partial acceptance.
func Validate(rows [][]string) ([]core.Transaction, string, error) {
	var body [][]string
	if len(rows) > 0 {
		body = rows[1:]
	}

	for i, row := range body {
		if len(row) != columnCount {
			return nil, "", &SchemaError{Row: i + 1, Found: len(row)}
		}
	}

	if len(body) == 0 {
		return nil, "", ErrEmptyFile
	}

	// Pass over every value field before touching dates, so a file with both
	// defects reports the value problem.
	currency := ""
	values := make([]core.Money, len(body))
	for i, row := range body {
		symbol, raw := core.SplitCurrencySymbol(row[colValue])
		if symbol != "" {
			if currency == "" {
				currency = symbol
			} else if currency != symbol {
				return nil, "", &CurrencyError{Row: i + 1, First: currency, Second: symbol}
			}
		}
		cents, err := core.ParseSignedCents(raw)
		if err != nil {
			return nil, "", &ValueError{Row: i + 1, Value: row[colValue]}
		}
		values[i] = core.Money{Cents: cents}
	}

	txs := make([]core.Transaction, len(body))
	for i, row := range body {
		date, ok := parseDate(row[colDate])
		if !ok {
			return nil, "", &DateError{Row: i + 1, Value: row[colDate]}
		}
		txs[i] = core.Transaction{
			Date:        date,
			Description: row[colDescription],
			Category:    row[colCategory],
			Value:       values[i],
		}
	}

	return txs, currency, nil
}

func parseDate(s string) (core.Date, bool) {
	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return core.Date{Time: t}, true
		}
	}
	return core.Date{}, false
}
