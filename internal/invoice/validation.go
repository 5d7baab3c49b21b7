package invoice

import (
	"fmt"
	"strings"

	"github.com/bonhokoo-eng/ci-generator/pkg/models"
)

// SupportedCurrencies are the currencies an invoice may be issued in.
var SupportedCurrencies = []string{"KRW", "USD", "EUR"}

// Validate checks the required fields of a draft and returns every violated
// rule, or nil when the draft can be generated.
func Validate(d *models.InvoiceData) error {
	var errs ValidationErrors
	add := func(field, format string, args ...any) {
		errs = append(errs, NewValidationError(field, fmt.Sprintf(format, args...)))
	}

	if strings.TrimSpace(d.InvoiceNo) == "" {
		add("invoice_no", "Invoice No. is required")
	}
	if d.InvoiceDate.IsZero() {
		add("invoice_date", "Invoice Date is required")
	}
	if strings.TrimSpace(d.StaffEmail) == "" {
		add("staff_email", "Staff email is required")
	}

	if d.Receiver == nil {
		add("receiver", "Receiver info is required")
	} else {
		if strings.TrimSpace(d.Receiver.CompanyName) == "" {
			add("receiver.company_name", "Receiver company name is required")
		}
		if strings.TrimSpace(d.Receiver.Address) == "" {
			add("receiver.address", "Receiver address is required")
		}
	}

	if !isSupportedCurrency(d.Currency) {
		add("currency", "Currency must be %s", strings.Join(SupportedCurrencies, ", "))
	}

	if len(d.Items) == 0 {
		add("items", "At least one item is required")
	}
	for i, item := range d.Items {
		n := i + 1
		if strings.TrimSpace(item.SKUID) == "" {
			add(fmt.Sprintf("items[%d].sku_id", i), "Item %d: SKU ID is required", n)
		}
		if strings.TrimSpace(item.Description) == "" {
			add(fmt.Sprintf("items[%d].description", i), "Item %d: Description is required", n)
		}
		if item.Qty <= 0 {
			add(fmt.Sprintf("items[%d].qty", i), "Item %d: Quantity must be > 0", n)
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func isSupportedCurrency(c string) bool {
	for _, s := range SupportedCurrencies {
		if c == s {
			return true
		}
	}
	return false
}
