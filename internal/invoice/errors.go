package invoice

import (
	"errors"
	"fmt"
	"strings"
)

// Common invoice errors
var (
	// ErrValidationFailed is returned when a draft violates one or more
	// required-field rules. The concrete error is a ValidationErrors.
	ErrValidationFailed = errors.New("invoice validation failed")

	// ErrRenderFailed is returned when the workbook cannot be produced.
	ErrRenderFailed = errors.New("invoice rendering failed")

	// ErrInvalidInvoiceNumber is returned when an invoice number does not follow
	// the INV{CODE}{YYMMDD}-{SEQ} pattern.
	ErrInvalidInvoiceNumber = errors.New("invalid invoice number")
)

// ValidationError is one violated rule.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a new ValidationError.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// ValidationErrors collects every rule a draft violates.
type ValidationErrors []*ValidationError

// Error implements the error interface.
func (v ValidationErrors) Error() string {
	msgs := make([]string, len(v))
	for i, e := range v {
		msgs[i] = e.Message
	}
	return fmt.Sprintf("%s: %s", ErrValidationFailed, strings.Join(msgs, "; "))
}

// Is matches ErrValidationFailed.
func (v ValidationErrors) Is(target error) bool {
	return target == ErrValidationFailed
}

// Messages returns the rule messages in order.
func (v ValidationErrors) Messages() []string {
	msgs := make([]string, len(v))
	for i, e := range v {
		msgs[i] = e.Message
	}
	return msgs
}

// GenerationError wraps failures while producing an invoice file.
type GenerationError struct {
	// Op is the operation that failed (e.g., "Render", "Save").
	Op string

	// InvoiceNo is the invoice being generated, if known.
	InvoiceNo string

	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *GenerationError) Error() string {
	if e.InvoiceNo != "" {
		return fmt.Sprintf("invoice: %s failed (%s): %v", e.Op, e.InvoiceNo, e.Err)
	}
	return fmt.Sprintf("invoice: %s failed: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for error unwrapping.
func (e *GenerationError) Unwrap() error {
	return e.Err
}
