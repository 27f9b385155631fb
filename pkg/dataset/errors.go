package dataset

import "errors"

// Table construction and lookup errors.
var (
	ErrNoData            = errors.New("no data loaded")
	ErrEmptyTable        = errors.New("table has no columns")
	ErrColumnNotFound    = errors.New("column not found")
	ErrDuplicateColumn   = errors.New("duplicate column name")
	ErrLengthMismatch    = errors.New("column lengths differ")
	ErrTypeMismatch      = errors.New("value kind does not match column dtype")
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrFileNotFound      = errors.New("file not found")
)
