package storage

import "errors"

// ErrNotFound reports a dataset ID with no stored record.
var ErrNotFound = errors.New("dataset not found")
