package invoice

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/bonhokoo-eng/ci-generator/pkg/models"
)

// DefaultCustomerCode is used when a draft has no receiver code.
const DefaultCustomerCode = "XX"

// NumberPrefix returns "INV{CODE}{YYMMDD}-" for a customer and date.
func NumberPrefix(customerCode string, date time.Time) string {
	return fmt.Sprintf("INV%s%s-", strings.ToUpper(strings.TrimSpace(customerCode)), date.Format("060102"))
}

// FormatNumber builds an invoice number. The sequence is not zero-padded.
func FormatNumber(customerCode string, date time.Time, sequence int) string {
	return NumberPrefix(customerCode, date) + strconv.Itoa(sequence)
}

// NextSequence returns one more than the highest sequence already used for
// the customer and date, or 1 when there is none. Entries whose suffix is not
// a number are ignored.
func NextSequence(customerCode string, date time.Time, history []models.HistoryEntry) int {
	prefix := NumberPrefix(customerCode, date)
	highest := 0
	for _, h := range history {
		if !strings.HasPrefix(h.InvoiceNo, prefix) {
			continue
		}
		suffix := h.InvoiceNo[strings.LastIndex(h.InvoiceNo, "-")+1:]
		n, err := strconv.Atoi(suffix)
		if err != nil {
			continue
		}
		if n > highest {
			highest = n
		}
	}
	return highest + 1
}

// ParseNumber splits an invoice number into its prefix and sequence.
func ParseNumber(invoiceNo string) (prefix string, sequence int, err error) {
	i := strings.LastIndex(invoiceNo, "-")
	if !strings.HasPrefix(invoiceNo, "INV") || i < 0 {
		return "", 0, fmt.Errorf("%w: %q", ErrInvalidInvoiceNumber, invoiceNo)
	}
	sequence, err = strconv.Atoi(invoiceNo[i+1:])
	if err != nil {
		return "", 0, fmt.Errorf("%w: %q: %w", ErrInvalidInvoiceNumber, invoiceNo, err)
	}
	return invoiceNo[:i+1], sequence, nil
}
