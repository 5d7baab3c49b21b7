package skumaster

import (
	"errors"
	"fmt"
)

var (
	// ErrUnreadableSource is returned when the source is absent or cannot be
	// decoded with any candidate encoding.
	ErrUnreadableSource = errors.New("SKU master source is unreadable")

	// ErrMissingColumn is returned when the product code column is not present.
	ErrMissingColumn = errors.New("SKU master is missing a required column")

	// ErrEmptySource is returned when the source has a header but no rows.
	ErrEmptySource = errors.New("SKU master source has no rows")
)

// LoadError describes a failed table load. The previous table stays in place.
type LoadError struct {
	Op     string
	Source string
	Err    error
}

// Error implements the error interface.
func (e *LoadError) Error() string {
	return fmt.Sprintf("skumaster: %s (%s) failed: %v", e.Op, e.Source, e.Err)
}

// Unwrap returns the underlying error for error unwrapping.
func (e *LoadError) Unwrap() error {
	return e.Err
}
