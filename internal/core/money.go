// Package core provides money parsing and handling utilities.
//
// This file contains functions for parsing signed monetary amounts from
// strings and converting between cents and unit representations.
package core

import (
	"strconv"
	"strings"
	"unicode"
)

// CurrencySymbols lists the currency symbols the parser recognizes and strips.
var CurrencySymbols = []string{"$", "€", "£"}

// ParseSignedCents converts a signed decimal string to cents with proper
// rounding.
//
// It accepts both dot (12.34) and comma (12,34) decimal separators, an
// optional leading + or -, and performs half-up rounding on the third decimal
// place. Zero is a valid amount.
//
// Examples:
//
//	ParseSignedCents("12.34")   -> 1234, nil
//	ParseSignedCents("-12,34")  -> -1234, nil
//	ParseSignedCents("12.345")  -> 1234, nil (rounds down)
//	ParseSignedCents("12.346")  -> 1235, nil (rounds up)
//	ParseSignedCents("0")       -> 0, nil
func ParseSignedCents(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidAmount
	}
	neg := false
	switch {
	case strings.HasPrefix(s, "-"):
		neg = true
		s = s[1:]
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	}
	if s == "" {
		return 0, ErrInvalidAmount
	}
	// Normalize decimal comma to dot
	s = strings.ReplaceAll(s, ",", ".")
	parts := strings.Split(s, ".")
	if len(parts) > 2 {
		return 0, ErrInvalidAmount
	}
	intPart := parts[0]
	fracPart := ""
	if len(parts) == 2 {
		fracPart = parts[1]
	}
	if intPart == "" {
		intPart = "0"
	}
	if intPart == "0" && fracPart == "" && len(parts) == 2 {
		return 0, ErrInvalidAmount
	}
	for _, r := range intPart {
		if !unicode.IsDigit(r) {
			return 0, ErrInvalidAmount
		}
	}
	for _, r := range fracPart {
		if !unicode.IsDigit(r) {
			return 0, ErrInvalidAmount
		}
	}
	iv, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	// Prevent overflow when multiplying by 100
	const maxSafeInt64 = (1<<63 - 1) / 100
	if iv > maxSafeInt64 {
		return 0, ErrInvalidAmount
	}
	// Take first two fractional digits; then half-up rounding on third
	var fracCents int64
	if len(fracPart) > 0 {
		d1 := int64(fracPart[0] - '0')
		fracCents = d1 * 10
		if len(fracPart) > 1 {
			d2 := int64(fracPart[1] - '0')
			fracCents += d2
			if len(fracPart) > 2 && fracPart[2] >= '5' {
				fracCents++
			}
		}
	}
	cents := iv*100 + fracCents
	if neg {
		cents = -cents
	}
	return cents, nil
}

// SplitCurrencySymbol strips a single leading currency symbol from s and
// returns the symbol and the remainder. A sign before the symbol ("-$5") or
// after it ("$-5") is preserved in the remainder. When no known symbol is
// present the symbol is empty and the input is returned unchanged.
func SplitCurrencySymbol(s string) (symbol, rest string) {
	trimmed := strings.TrimSpace(s)
	sign := ""
	switch {
	case strings.HasPrefix(trimmed, "-"):
		sign = "-"
		trimmed = strings.TrimSpace(trimmed[1:])
	case strings.HasPrefix(trimmed, "+"):
		sign = "+"
		trimmed = strings.TrimSpace(trimmed[1:])
	}
	for _, sym := range CurrencySymbols {
		if strings.HasPrefix(trimmed, sym) {
			rest := strings.TrimSpace(strings.TrimPrefix(trimmed, sym))
			return sym, sign + rest
		}
	}
	return "", s
}

// Units returns the amount in currency units as a float64 for display
// purposes. Use cents for calculations to avoid floating-point drift.
func (m Money) Units() float64 {
	return float64(m.Cents) / 100.0
}

// Abs returns the absolute amount.
func (m Money) Abs() Money {
	if m.Cents < 0 {
		return Money{Cents: -m.Cents}
	}
	return m
}

// Add returns m + other.
func (m Money) Add(other Money) Money {
	return Money{Cents: m.Cents + other.Cents}
}

// Sub returns m - other.
func (m Money) Sub(other Money) Money {
	return Money{Cents: m.Cents - other.Cents}
}

// MeanCents returns the mean of totalCents over n, rounded half away from
// zero to whole cents. n must be positive.
func MeanCents(totalCents int64, n int) Money {
	half := int64(n) / 2
	if totalCents < 0 {
		return Money{Cents: (totalCents - half) / int64(n)}
	}
	return Money{Cents: (totalCents + half) / int64(n)}
}
