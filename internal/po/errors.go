package po

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedFormat is returned when no reader accepts the input.
	ErrUnsupportedFormat = errors.New("unsupported purchase order file format")

	// ErrNoSheets is returned when a workbook was read but holds no sheets.
	ErrNoSheets = errors.New("workbook contains no sheets")

	// ErrCorruptWorkbook is returned when a reader accepted the format but failed to decode it.
	ErrCorruptWorkbook = errors.New("workbook is corrupt or unreadable")
)

// ReadError records the failure of one format reader.
type ReadError struct {
	Reader string
	Err    error
}

// Error implements the error interface.
func (e *ReadError) Error() string {
	return fmt.Sprintf("po: %s reader failed: %v", e.Reader, e.Err)
}

// Unwrap returns the underlying error for error unwrapping.
func (e *ReadError) Unwrap() error {
	return e.Err
}
