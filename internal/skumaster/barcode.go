package skumaster

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// numericPattern accepts plain decimal and scientific notation, which is what
// spreadsheet and CSV tools produce when they coerce a barcode to a number.
var numericPattern = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

// NormalizeBarcode turns a raw barcode cell into its canonical text form.
// Numeric values lose their fractional part and exponent ("8809891185139.0"
// and "8.809891185139E+12" both become "8809891185139"); non-positive numbers
// become empty; anything else is returned trimmed. The function is idempotent.
func NormalizeBarcode(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	if !numericPattern.MatchString(s) {
		return s
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return s
	}
	if !d.IsPositive() {
		return ""
	}
	return d.Truncate(0).String()
}
