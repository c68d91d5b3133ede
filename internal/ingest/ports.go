package ingest

import "context"

// RowSource provides raw tabular rows for validation. Implementations hand
// back every row including the header; width and content checks belong to the
// validator, not the source.
type RowSource interface {
	ReadRows(ctx context.Context) ([][]string, error)
}
