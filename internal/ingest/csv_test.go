package ingest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadRows(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected [][]string
		wantErr  bool
	}{
		{
			name: "header and data rows",
			input: "date,description,category,value\n" +
				"2026-01-15,Grocery Store,Groceries,-120.50\n" +
				"2026-01-30,Monthly Salary,Salary,3000.00\n",
			expected: [][]string{
				{"date", "description", "category", "value"},
				{"2026-01-15", "Grocery Store", "Groceries", "-120.50"},
				{"2026-01-30", "Monthly Salary", "Salary", "3000.00"},
			},
		},
		{
			name:  "quoted fields with commas",
			input: "date,description,category,value\n2026-01-15,\"Dinner, out\",Dining,-45.00\n",
			expected: [][]string{
				{"date", "description", "category", "value"},
				{"2026-01-15", "Dinner, out", "Dining", "-45.00"},
			},
		},
		{
			name:  "ragged rows pass through for the validator",
			input: "date,description,category,value\n2026-01-15,desc,cat,-1.00,extra\n",
			expected: [][]string{
				{"date", "description", "category", "value"},
				{"2026-01-15", "desc", "cat", "-1.00", "extra"},
			},
		},
		{
			name:     "empty input",
			input:    "",
			expected: nil,
		},
		{
			name:    "malformed quoting",
			input:   "date,description,category,value\n\"unterminated,cat,-1.00\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, err := ReadRows(strings.NewReader(tt.input))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, rows)
		})
	}
}
