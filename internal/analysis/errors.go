package analysis

import (
	"errors"
	"fmt"
)

// Validation rejects whole files: any single failing row invalidates the
// batch, and the error carries the 1-based data row index where available so
// the caller can point the user at the offending line.

// ErrEmptyFile reports an input with no data rows beyond the header.
var ErrEmptyFile = errors.New("file contains no data rows beyond the header")

// ErrEmptyDataset signals that zero months exist, so global metrics are
// undefined. This is a state, not a user error: callers should render an
// explicit insufficient-data message instead of a zero balance.
var ErrEmptyDataset = errors.New("no monthly summaries: metrics are undefined")

// SchemaError reports a row with the wrong number of columns.
type SchemaError struct {
	Row   int // 1-based data row index
	Found int
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("wrong column count in row %d: expected %d columns, found %d", e.Row, columnCount, e.Found)
}

// ValueError reports a value field that does not parse as a numeric decimal.
type ValueError struct {
	Row   int
	Value string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("non-numeric value %q in row %d", e.Value, e.Row)
}

// DateError reports a date field that does not parse under any supported
// format.
type DateError struct {
	Row   int
	Value string
}

func (e *DateError) Error() string {
	return fmt.Sprintf("invalid date %q in row %d", e.Value, e.Row)
}

// CurrencyError reports a file mixing more than one currency symbol.
type CurrencyError struct {
	Row    int
	First  string
	Second string
}

func (e *CurrencyError) Error() string {
	return fmt.Sprintf("multiple currencies detected: row %d uses %q after %q", e.Row, e.Second, e.First)
}

// ConfigError reports an invalid calculator parameter.
type ConfigError struct {
	Param string
	Value int
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s: %d (must be a positive integer)", e.Param, e.Value)
}
