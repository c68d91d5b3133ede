package google

import (
	"testing"
)

func TestToStrings(t *testing.T) {
	in := []interface{}{" 2026-01-05 ", "Salary", "Income", 3000.0}
	got := toStrings(in)
	want := []string{"2026-01-05", "Salary", "Income", "3000"}
	if len(got) != len(want) {
		t.Fatalf("length: got %d want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("column %d: got %q want %q", i, got[i], want[i])
		}
	}
}

func TestIsBlankRow(t *testing.T) {
	cases := []struct {
		name string
		cols []string
		want bool
	}{
		{"empty", nil, true},
		{"all empty strings", []string{"", "", "", ""}, true},
		{"one populated", []string{"", "Coffee", "", ""}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := isBlankRow(tc.cols); got != tc.want {
				t.Fatalf("got %v want %v", got, tc.want)
			}
		})
	}
}
