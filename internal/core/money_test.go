package core

import "testing"

func TestParseSignedCents(t *testing.T) {
	cases := []struct {
		in  string
		out int64
		ok  bool
	}{
		{"1", 100, true},
		{"1.0", 100, true},
		{"1.23", 123, true},
		{"1,23", 123, true},
		{"0.01", 1, true},
		{"0", 0, true},
		{"-120.50", -12050, true},
		{"-4,50", -450, true},
		{"+3000", 300000, true},
		{"1.005", 101, true}, // half-up rounding
		{"-1.005", -101, true},
		{" 2.50 ", 250, true},
		{"abc", 0, false},
		{"1.2.3", 0, false},
		{"", 0, false},
		{"-", 0, false},
		{".", 0, false},
	}
	for _, tc := range cases {
		got, err := ParseSignedCents(tc.in)
		if tc.ok {
			if err != nil || got != tc.out {
				t.Fatalf("%q expected %d, got %d (err=%v)", tc.in, tc.out, got, err)
			}
		} else {
			if err == nil {
				t.Fatalf("%q expected error", tc.in)
			}
		}
	}
}

func TestSplitCurrencySymbol(t *testing.T) {
	cases := []struct {
		in, symbol, rest string
	}{
		{"$3000.00", "$", "3000.00"},
		{"-$120.50", "$", "-120.50"},
		{"$-120.50", "$", "-120.50"},
		{"€12,34", "€", "12,34"},
		{"£5", "£", "5"},
		{"3000.00", "", "3000.00"},
		{"-120.50", "", "-120.50"},
	}
	for _, tc := range cases {
		symbol, rest := SplitCurrencySymbol(tc.in)
		if symbol != tc.symbol || rest != tc.rest {
			t.Fatalf("%q expected (%q, %q), got (%q, %q)", tc.in, tc.symbol, tc.rest, symbol, rest)
		}
	}
}

func TestMeanCents(t *testing.T) {
	cases := []struct {
		total int64
		n     int
		out   int64
	}{
		{300, 3, 100},
		{5, 2, 3},   // 2.5 rounds away from zero
		{-5, 2, -3}, // symmetric for negatives
		{287950, 2, 143975},
	}
	for i, tc := range cases {
		if got := MeanCents(tc.total, tc.n); got.Cents != tc.out {
			t.Fatalf("case %d: mean(%d, %d) expected %d, got %d", i, tc.total, tc.n, tc.out, got.Cents)
		}
	}
}

func TestMoneyHelpers(t *testing.T) {
	if got := (Money{Cents: -12050}).Abs(); got.Cents != 12050 {
		t.Fatalf("abs expected 12050, got %d", got.Cents)
	}
	if got := (Money{Cents: 100}).Add(Money{Cents: -30}); got.Cents != 70 {
		t.Fatalf("add expected 70, got %d", got.Cents)
	}
	if got := (Money{Cents: 100}).Sub(Money{Cents: 30}); got.Cents != 70 {
		t.Fatalf("sub expected 70, got %d", got.Cents)
	}
	if got := (Money{Cents: 12345}).Units(); got != 123.45 {
		t.Fatalf("units expected 123.45, got %v", got)
	}
}
