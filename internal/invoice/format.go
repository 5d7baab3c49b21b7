package invoice

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var numberPrinter = message.NewPrinter(language.English)

// FormatAmount renders a money figure for the invoice: two decimals for USD,
// a truncated integer for every other currency, with thousands separators.
func FormatAmount(currency string, d decimal.Decimal) string {
	if currency == "USD" {
		return numberPrinter.Sprintf("%.2f", d.Round(2).InexactFloat64())
	}
	return numberPrinter.Sprintf("%d", d.Truncate(0).IntPart())
}

// FormatMoney prefixes FormatAmount with the currency code.
func FormatMoney(currency string, d decimal.Decimal) string {
	return currency + " " + FormatAmount(currency, d)
}

// FormatQty renders an integer quantity with thousands separators.
func FormatQty(n int) string {
	return numberPrinter.Sprintf("%d", n)
}

func currencySymbol(currency string) string {
	switch currency {
	case "KRW":
		return "₩"
	case "USD":
		return "$"
	case "EUR":
		return "€"
	default:
		return currency + " "
	}
}
