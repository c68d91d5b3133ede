package core

import (
	"errors"
	"fmt"
	"time"
)

type (
	// Date is a calendar date. The time-of-day portion is always midnight UTC.
	Date struct {
		time.Time
	}

	// Money is a signed monetary amount in cents. Negative cents are expenses,
	// positive cents are income.
	Money struct {
		Cents int64
	}

	// Transaction is one validated input record. Immutable once built by the
	// validator; downstream components read it and never write it back.
	Transaction struct {
		Date        Date
		Description string
		Category    string
		Value       Money
	}

	// MonthKey identifies a (year, month) grouping unit. Ordering is
	// chronological: first by year, then by month.
	MonthKey struct {
		Year  int
		Month int // 1-12
	}
)

var (
	ErrInvalidDate   = errors.New("invalid date")
	ErrInvalidAmount = errors.New("invalid amount")
)

// NewDate creates a Date from year, month, day.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

func (d Date) Validate() error {
	if d.IsZero() {
		return ErrInvalidDate
	}
	return nil
}

// Day returns the day of the month.
func (d Date) Day() int {
	return d.Time.Day()
}

// Month returns the month as an int (1-12).
func (d Date) Month() int {
	return int(d.Time.Month())
}

// Year returns the year.
func (d Date) Year() int {
	return d.Time.Year()
}

// Key returns the month the date falls in.
func (d Date) Key() MonthKey {
	return MonthKey{Year: d.Year(), Month: d.Month()}
}

// Before reports whether k is chronologically before other.
func (k MonthKey) Before(other MonthKey) bool {
	if k.Year != other.Year {
		return k.Year < other.Year
	}
	return k.Month < other.Month
}

// Compare returns -1, 0 or 1 comparing k against other chronologically.
func (k MonthKey) Compare(other MonthKey) int {
	switch {
	case k.Before(other):
		return -1
	case other.Before(k):
		return 1
	default:
		return 0
	}
}

// String renders the key as "2006-01".
func (k MonthKey) String() string {
	return fmt.Sprintf("%04d-%02d", k.Year, k.Month)
}

// Label renders the key as "January 2006" for display.
func (k MonthKey) Label() string {
	return time.Date(k.Year, time.Month(k.Month), 1, 0, 0, 0, 0, time.UTC).Format("January 2006")
}

func (t Transaction) Validate() error {
	if err := t.Date.Validate(); err != nil {
		return err
	}
	return nil
}

// IsExpense reports whether the transaction value is strictly negative.
// Zero-value transactions are neither expense nor income.
func (t Transaction) IsExpense() bool {
	return t.Value.Cents < 0
}

// IsIncome reports whether the transaction value is strictly positive.
func (t Transaction) IsIncome() bool {
	return t.Value.Cents > 0
}
