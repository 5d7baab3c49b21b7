package invoice

import (
	"github.com/shopspring/decimal"

	"github.com/bonhokoo-eng/ci-generator/pkg/models"
)

// Totals are the derived figures of an invoice. They are never stored.
type Totals struct {
	Subtotal      decimal.Decimal
	TaxAmount     decimal.Decimal
	DeclaredTotal decimal.Decimal

	// TransactionTotal is the actual payment amount. It is only meaningful
	// when HasFOC is true; otherwise it is zero.
	TransactionTotal decimal.Decimal
	HasFOC           bool

	TotalQty    int
	TotalOutbox decimal.Decimal
}

// LineTotal is qty × unit price, or zero for a free-of-charge line.
func LineTotal(item models.LineItem) decimal.Decimal {
	if item.IsFOC {
		return decimal.Zero
	}
	return decimal.NewFromFloat(item.UnitPrice).Mul(decimal.NewFromInt(int64(item.Qty)))
}

// ComputeTotals sums the payable lines. FOC lines contribute nothing to the
// subtotal whatever unit price they carry; that price is for customs display
// only. transactionOverride is surfaced only when at least one line is FOC.
func ComputeTotals(items []models.LineItem, taxRate, transactionOverride float64) Totals {
	t := Totals{
		Subtotal:    decimal.Zero,
		TotalOutbox: decimal.Zero,
	}
	for _, item := range items {
		t.Subtotal = t.Subtotal.Add(LineTotal(item))
		t.TotalQty += item.Qty
		t.TotalOutbox = t.TotalOutbox.Add(decimal.NewFromFloat(item.QtyOutbox))
		if item.IsFOC {
			t.HasFOC = true
		}
	}

	t.TaxAmount = t.Subtotal.Mul(decimal.NewFromFloat(taxRate))
	t.DeclaredTotal = t.Subtotal.Add(t.TaxAmount)
	t.TransactionTotal = decimal.Zero
	if t.HasFOC {
		t.TransactionTotal = decimal.NewFromFloat(transactionOverride)
	}
	return t
}

// TotalsOf computes the totals of d.
func TotalsOf(d *models.InvoiceData) Totals {
	return ComputeTotals(d.Items, d.TaxRate, d.TotalTransaction)
}
