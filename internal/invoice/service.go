// Package invoice assembles commercial invoices: line import from parsed
// purchase orders, totals, invoice numbering, required-field validation and
// rendering to an xlsx workbook.
//
// Totals use decimal arithmetic. Free-of-charge (FOC) lines are declared for
// customs with whatever unit price the operator entered, but they never count
// towards the payable subtotal. When an invoice has FOC lines, the actual
// payment is carried separately as the transaction total.
//
// Invoice numbers have the form INV{CUSTOMER_CODE}{YYMMDD}-{SEQ}. The
// sequence restarts at 1 for each customer and day and is derived from the
// invoice history rather than stored.
package invoice

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/bonhokoo-eng/ci-generator/internal/logger"
	"github.com/bonhokoo-eng/ci-generator/pkg/models"
	"github.com/bonhokoo-eng/ci-generator/pkg/services"
)

// Generator produces invoice files and records them in the history.
type Generator struct {
	renderer  *Renderer
	history   services.InvoiceHistory
	outputDir string
	now       func() time.Time
	log       zerolog.Logger
}

// NewGenerator creates a Generator writing into outputDir.
func NewGenerator(renderer *Renderer, history services.InvoiceHistory, outputDir string) *Generator {
	return &Generator{
		renderer:  renderer,
		history:   history,
		outputDir: outputDir,
		now:       time.Now,
		log:       logger.WithComponent("invoice-generator"),
	}
}

// Result describes a generated invoice.
type Result struct {
	InvoiceNo string
	Path      string
	Totals    Totals
	History   models.HistoryEntry
}

// CustomerCode returns the receiver's code, upper-cased, or DefaultCustomerCode.
func CustomerCode(d *models.InvoiceData) string {
	if d.Receiver != nil {
		if code := strings.ToUpper(strings.TrimSpace(d.Receiver.CustomerCode)); code != "" {
			return code
		}
	}
	return DefaultCustomerCode
}

// AssignNumber fills in the invoice date and number when they are missing and
// returns the invoice number.
func (g *Generator) AssignNumber(d *models.InvoiceData) string {
	if d.InvoiceDate.IsZero() {
		d.InvoiceDate = g.now()
	}
	if d.InvoiceNo == "" {
		code := CustomerCode(d)
		seq := NextSequence(code, d.InvoiceDate, g.history.AllHistory())
		d.InvoiceNo = FormatNumber(code, d.InvoiceDate, seq)
	}
	return d.InvoiceNo
}

// Generate numbers, validates and renders d into {invoice_no}.xlsx, then
// appends a history entry. Nothing is written when validation fails.
func (g *Generator) Generate(d *models.InvoiceData) (*Result, error) {
	const op = "Generate"

	// Assign the invoice number and validate the draft
	invoiceNo := g.AssignNumber(d)
	if err := Validate(d); err != nil {
		g.log.Warn().Str("invoice_no", invoiceNo).Err(err).Msg("Invoice draft rejected")
		return nil, err
	}

	// Render the workbook
	if err := os.MkdirAll(g.outputDir, 0o755); err != nil {
		return nil, &GenerationError{Op: op, InvoiceNo: invoiceNo, Err: fmt.Errorf("create output dir: %w", err)}
	}
	path := filepath.Join(g.outputDir, invoiceNo+".xlsx")
	if err := g.renderer.Save(path, d); err != nil {
		return nil, err
	}

	// Record history
	totals := TotalsOf(d)
	entry, err := g.history.AppendHistory(models.HistoryEntry{
		InvoiceNo:    invoiceNo,
		CustomerCode: CustomerCode(d),
		Date:         d.InvoiceDate.Format("2006-01-02"),
		Total:        totals.DeclaredTotal.InexactFloat64(),
		Currency:     d.Currency,
		ItemCount:    len(d.Items),
	})
	if err != nil {
		return nil, &GenerationError{Op: op, InvoiceNo: invoiceNo, Err: fmt.Errorf("record history for %s: %w", path, err)}
	}

	g.log.Info().
		Str("invoice_no", invoiceNo).
		Str("path", path).
		Msg("Generated commercial invoice")

	return &Result{InvoiceNo: invoiceNo, Path: path, Totals: totals, History: entry}, nil
}
