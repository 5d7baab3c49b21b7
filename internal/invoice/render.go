package invoice

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"

	"github.com/bonhokoo-eng/ci-generator/internal/config"
	"github.com/bonhokoo-eng/ci-generator/internal/logger"
	"github.com/bonhokoo-eng/ci-generator/pkg/models"
)

// SheetName is the name of the single worksheet of a rendered invoice.
const SheetName = "Commercial Invoice"

// FOCNotice is printed under the remarks when any line is free of charge.
const FOCNotice = "No commercial value but for customs purpose only."

const focSuffix = " - FOC"

var columnWidths = map[string]float64{
	"A": 3, "B": 14, "C": 14, "D": 35, "E": 13, "F": 8, "G": 10, "H": 12, "I": 12,
}

var (
	shippingHeaders = []string{"SHIPPING TERMS", "LOADING PORT", "DESTINATION PORT", "SHIPPING METHOD", "REASON OF EXPORT", "CURRENCY"}
	itemHeaders     = []string{"SKU ID", "BARCODE", "DESCRIPTION OF GOODS", "HS CODE", "QTY\n(EA)", "QTY\n(OUTBOX)", "UNIT PRICE", "TOTAL"}
	itemColumns     = []string{"B", "C", "D", "E", "F", "G", "H", "I"}
)

// Renderer lays out a validated invoice as a workbook.
type Renderer struct {
	profile *config.Profile
	log     zerolog.Logger
}

// NewRenderer creates a Renderer. A nil profile uses config.DefaultProfile.
func NewRenderer(profile *config.Profile) *Renderer {
	if profile == nil {
		profile = config.DefaultProfile()
	}
	return &Renderer{
		profile: profile,
		log:     logger.WithComponent("invoice-renderer"),
	}
}

// Render validates d and builds the workbook. Nothing is rendered when
// validation fails; the error is a ValidationErrors listing every problem.
func (r *Renderer) Render(d *models.InvoiceData) (*excelize.File, error) {
	const op = "Render"

	if err := Validate(d); err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		f.Close()
		return nil, &GenerationError{Op: op, InvoiceNo: d.InvoiceNo, Err: fmt.Errorf("%w: %w", ErrRenderFailed, err)}
	}

	w, err := newSheetWriter(f, SheetName)
	if err != nil {
		f.Close()
		return nil, &GenerationError{Op: op, InvoiceNo: d.InvoiceNo, Err: fmt.Errorf("%w: %w", ErrRenderFailed, err)}
	}

	totals := TotalsOf(d)
	r.layout(w, d, totals)
	if w.err != nil {
		f.Close()
		return nil, &GenerationError{Op: op, InvoiceNo: d.InvoiceNo, Err: fmt.Errorf("%w: %w", ErrRenderFailed, w.err)}
	}

	r.log.Info().
		Str("invoice_no", d.InvoiceNo).
		Int("items", len(d.Items)).
		Str("currency", d.Currency).
		Str("declared_total", totals.DeclaredTotal.String()).
		Bool("has_foc", totals.HasFOC).
		Msg("Rendered commercial invoice")

	return f, nil
}

// WriteTo renders d and writes the xlsx bytes to out.
func (r *Renderer) WriteTo(out io.Writer, d *models.InvoiceData) error {
	f, err := r.Render(d)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.WriteTo(out); err != nil {
		return &GenerationError{Op: "WriteTo", InvoiceNo: d.InvoiceNo, Err: err}
	}
	return nil
}

// Save renders d into the file at path.
func (r *Renderer) Save(path string, d *models.InvoiceData) error {
	f, err := r.Render(d)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return &GenerationError{Op: "Save", InvoiceNo: d.InvoiceNo, Err: err}
	}
	return nil
}

func (r *Renderer) layout(w *sheetWriter, d *models.InvoiceData, totals Totals) {
	for col, width := range columnWidths {
		w.colWidth(col, width)
	}

	w.merge("D1", "G2")
	w.set("D", 1, "COMMERCIAL INVOICE", w.styles.title)

	row := r.senderBlock(w, d, 4)
	row = r.receiverBlock(w, d, row)
	if !d.IsDomestic && d.Shipping != nil {
		row = r.shippingBlock(w, d, row)
	}
	row = r.itemTable(w, d, totals, row)

	remarksStart := row + 2
	r.remarksBlock(w, d, totals, remarksStart)
	r.summaryBlock(w, d, totals, remarksStart)
}

func (r *Renderer) senderBlock(w *sheetWriter, d *models.InvoiceData, row int) int {
	sender := r.profile.International
	if d.IsDomestic {
		sender = r.profile.Domestic
	}

	w.set("B", row, "SENDER", w.styles.label)
	w.set("B", row+1, sender.CompanyName, w.styles.value)
	w.set("B", row+2, sender.Address, w.styles.value)
	w.set("B", row+3, d.StaffEmail, w.styles.value)
	if d.StaffPhone != "" {
		w.set("B", row+4, d.StaffPhone, w.styles.value)
	}

	w.set("G", row, "DATE OF INVOICE", w.styles.label)
	w.set("H", row, d.InvoiceDate.Format("2006-01-02"), w.styles.value)
	w.set("G", row+1, "INVOICE NO.", w.styles.label)
	w.set("H", row+1, d.InvoiceNo, w.styles.value)
	if d.OrderNo != "" {
		w.set("G", row+2, "RELATED ORDER NO. / DATE", w.styles.label)
		w.set("H", row+2, d.OrderNo, w.styles.value)
	}
	return row + 6
}

func (r *Renderer) receiverBlock(w *sheetWriter, d *models.InvoiceData, row int) int {
	w.set("B", row, "RECEIVER", w.styles.label)
	row++

	lines := []string{d.Receiver.CompanyName, d.Receiver.Address}
	for _, optional := range []string{d.Receiver.Email, d.Receiver.Phone} {
		if optional != "" {
			lines = append(lines, optional)
		}
	}
	for _, line := range lines {
		w.set("B", row, line, w.styles.value)
		row++
	}
	return row + 2
}

func (r *Renderer) shippingBlock(w *sheetWriter, d *models.InvoiceData, row int) int {
	cols := itemColumns[:len(shippingHeaders)]
	for i, h := range shippingHeaders {
		w.set(cols[i], row, h, w.styles.header)
	}
	w.rowHeight(row, 25)
	row++

	values := []string{
		d.Shipping.Terms,
		orDefault(d.Shipping.LoadingPort, "KOREA"),
		d.Shipping.DestinationPort,
		d.Shipping.ShippingMethod,
		orDefault(d.Shipping.ReasonOfExport, "SALE"),
		d.Currency,
	}
	for i, v := range values {
		w.set(cols[i], row, v, w.styles.centered)
	}
	return row + 2
}

func (r *Renderer) itemTable(w *sheetWriter, d *models.InvoiceData, totals Totals, row int) int {
	for i, h := range itemHeaders {
		w.set(itemColumns[i], row, h, w.styles.header)
	}
	w.rowHeight(row, 28)
	row++

	for _, item := range d.Items {
		desc := item.Description
		if item.IsFOC && !strings.Contains(desc, strings.TrimSpace(focSuffix)) {
			desc += focSuffix
		}
		outbox := ""
		if item.QtyOutbox != 0 {
			outbox = fmt.Sprintf("%.1f", item.QtyOutbox)
		}

		w.set("B", row, item.SKUID, w.styles.cell)
		w.set("C", row, item.Barcode, w.styles.cell)
		w.set("D", row, desc, w.styles.wrapped)
		w.set("E", row, item.HSCode, w.styles.cell)
		w.set("F", row, FormatQty(item.Qty), w.styles.right)
		w.set("G", row, outbox, w.styles.right)
		w.set("H", row, FormatMoney(d.Currency, decimalOf(item.UnitPrice)), w.styles.right)
		w.set("I", row, FormatMoney(d.Currency, LineTotal(item)), w.styles.right)
		row++
	}

	w.set("B", row, "TOTAL", w.styles.labelCell)
	for _, col := range []string{"C", "D", "E", "H"} {
		w.set(col, row, "", w.styles.cell)
	}
	w.set("F", row, FormatQty(totals.TotalQty), w.styles.labelRight)
	w.set("G", row, totals.TotalOutbox.StringFixed(1), w.styles.labelRight)
	w.set("I", row, currencySymbol(d.Currency)+FormatAmount(d.Currency, totals.Subtotal), w.styles.highlight)
	return row
}

func (r *Renderer) remarksBlock(w *sheetWriter, d *models.InvoiceData, totals Totals, row int) {
	w.set("B", row, "REMARKS", w.styles.label)
	row++

	for _, line := range r.remarkLines(d.IsDomestic) {
		w.set("B", row, line, w.styles.small)
		row++
	}
	if totals.HasFOC {
		row++
		w.set("B", row, FOCNotice, w.styles.small)
		row++
	}
	if d.CustomRemarks != "" {
		row++
		w.set("B", row, d.CustomRemarks, w.styles.small)
		row++
	}
	row++
	w.set("B", row, "AUTHORIZED SIGNATURE", w.styles.label)
}

func (r *Renderer) remarkLines(domestic bool) []string {
	bank := r.profile.Bank
	if domestic {
		if len(r.profile.DomesticRemarks) > 0 {
			return r.profile.DomesticRemarks
		}
		return []string{
			"1. 본 견적은 작성일로부터 1개월간 유효합니다.",
			"2. 결제조건: 출고 전 100%",
			"3. 입금계좌:",
			"   은행: " + bank.BankName,
			"   계좌번호: " + bank.AccountNumber,
			"   예금주: " + bank.AccountHolder,
		}
	}
	if len(r.profile.Remarks) > 0 {
		return r.profile.Remarks
	}
	return []string{
		"1. This invoice is valid for one month from the date of creation.",
		"2. Payment terms: T/T 100% before shipment.",
		"3. Bank Details:",
		"   Account Holder Name: " + bank.AccountHolder,
		"   Bank Account Number: " + bank.AccountNumber,
		"   Name of the Bank: " + bank.BankName,
		"   Bank Address: " + bank.BankAddress,
		"   SWIFT CODE : " + bank.SwiftCode,
		"   Company Address: " + bank.CompanyAddress,
	}
}

func (r *Renderer) summaryBlock(w *sheetWriter, d *models.InvoiceData, totals Totals, row int) {
	type line struct {
		label     string
		amount    string
		highlight bool
	}
	lines := []line{
		{"SUBTOTAL", FormatAmount(d.Currency, totals.Subtotal), false},
		{"TAX", FormatAmount(d.Currency, totals.TaxAmount), false},
		{"TOTAL (Declaration)", FormatAmount(d.Currency, totals.DeclaredTotal), true},
	}
	if totals.HasFOC {
		lines = append(lines, line{"TOTAL (Transaction)", FormatAmount(d.Currency, totals.TransactionTotal), true})
	}

	for _, l := range lines {
		labelStyle, valueStyle, amountStyle := w.styles.labelCell, w.styles.cell, w.styles.right
		if l.highlight {
			labelStyle, valueStyle, amountStyle = w.styles.labelHighlight, w.styles.valueHighlight, w.styles.highlight
		}
		w.set("G", row, l.label, labelStyle)
		w.set("H", row, d.Currency, valueStyle)
		w.set("I", row, l.amount, amountStyle)
		row++
	}
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
