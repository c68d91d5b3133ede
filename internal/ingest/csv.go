package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
)

// ReadRows reads all CSV records from r, header included. Records may vary in
// width; schema enforcement happens downstream so the validator can report
// the offending row instead of a bare csv error.
func ReadRows(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	var rows [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv record: %w", err)
		}
		rows = append(rows, record)
	}
	return rows, nil
}
