package po

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/bonhokoo-eng/ci-generator/internal/logger"
	"github.com/bonhokoo-eng/ci-generator/internal/skumaster"
	"github.com/bonhokoo-eng/ci-generator/pkg/models"
	"github.com/bonhokoo-eng/ci-generator/pkg/services"
)

// unmatchedPreview is how many unmatched SKUs are listed before "(+N more)".
const unmatchedPreview = 5

// UnregisteredPrefix starts the description of unmatched rows without a name.
const UnregisteredPrefix = "[UNREGISTERED]"

// Extractor turns PO rows into line items, joining each SKU against the catalog.
type Extractor struct {
	catalog services.ProductCatalog
	log     zerolog.Logger
}

// NewExtractor creates an Extractor. A nil catalog matches nothing.
func NewExtractor(catalog services.ProductCatalog) *Extractor {
	return &Extractor{
		catalog: catalog,
		log:     logger.WithComponent("po-extractor"),
	}
}

// Extract reads the rows below headerRow. SKU and quantity columns are
// mandatory; without them no items are produced and a warning names the
// missing field. Rows with a blank SKU or a quantity that is not a positive
// number are skipped silently.
func (e *Extractor) Extract(sheet RawSheet, headerRow int, mapping ColumnMapping, opts Options) ([]models.ParsedLineItem, []Message) {
	var msgs messageLog

	skuCol, ok := mapping.Lookup(FieldSKU)
	if !ok {
		msgs.warnf("SKU column not found")
		return nil, msgs
	}
	qtyCol, ok := mapping.Lookup(FieldQty)
	if !ok {
		msgs.warnf("quantity (QTY) column not found")
		return nil, msgs
	}
	currency := inferredCurrency(mapping)
	reportMapping(&msgs, mapping, skuCol, qtyCol, currency, opts)

	acc := NewRowAccessor(mapping)
	var (
		items     []models.ParsedLineItem
		unmatched []string
		seen      = make(map[string]bool)
	)

	for i := headerRow + 1; i < len(sheet.Rows); i++ {
		row := sheet.Rows[i]

		sku := acc.Text(row, FieldSKU)
		if sku == "" {
			continue
		}
		qty, _ := acc.Get(row, FieldQty).Int()
		if qty <= 0 {
			e.log.Debug().Int("row", i+1).Str("sku", sku).Msg("Skipping row without positive quantity")
			continue
		}

		item := e.buildItem(acc, row, sku, qty, currency, opts)
		if !item.Matched() && !seen[sku] {
			seen[sku] = true
			unmatched = append(unmatched, sku)
		}
		items = append(items, item)
	}

	msgs.infof("parsed %d items", len(items))
	if len(unmatched) > 0 {
		msgs.warnf("SKUs not in SKU master: %s", summarizeSKUs(unmatched))
	}

	e.log.Info().
		Str("sheet", sheet.Name).
		Int("items", len(items)).
		Int("unmatched", len(unmatched)).
		Msg("Extracted purchase order rows")

	return items, msgs
}

func (e *Extractor) buildItem(acc RowAccessor, row []Cell, sku string, qty int, inferred string, opts Options) models.ParsedLineItem {
	nameEN := acc.Text(row, FieldDescriptionEN)
	nameKR := acc.Text(row, FieldDescriptionKR)
	poDescription := nameEN
	if poDescription == "" {
		poDescription = nameKR
	}

	item := models.ParsedLineItem{
		SKUID:   sku,
		Barcode: skumaster.NormalizeBarcode(acc.Text(row, FieldBarcode)),
		Qty:     qty,
		Source:  models.SourceUnmatched,
	}
	if opts.IncludeHSCode {
		item.HSCode = acc.Text(row, FieldHSCode)
	}
	if opts.IncludeNameKR {
		item.NameKR = nameKR
	}

	if opts.IncludePrice {
		item.UnitPrice, _ = acc.Get(row, FieldUnitPrice).Float()
		item.Amount, _ = acc.Get(row, FieldAmount).Float()
		item.Currency = strings.ToUpper(acc.Text(row, FieldCurrency))
		if item.Currency == "" {
			item.Currency = inferred
		}
	}

	var rec models.ProductRecord
	matched := false
	if e.catalog != nil {
		rec, matched = e.catalog.GetBySKU(sku)
	}

	if !matched {
		item.Description = poDescription
		if item.Description == "" {
			item.Description = fmt.Sprintf("%s %s", UnregisteredPrefix, sku)
		}
		return item
	}

	item.Source = models.SourceMatched
	item.Description = rec.Description
	if item.Description == "" {
		item.Description = poDescription
	}
	if rec.Barcode != "" {
		item.Barcode = rec.Barcode
	}
	if item.HSCode == "" {
		item.HSCode = rec.HSCode
	}
	item.Manufacturer = rec.Manufacturer
	item.Status = rec.Status
	return item
}

// inferredCurrency reads a currency from the amount column name, then the
// price column name.
func inferredCurrency(m ColumnMapping) string {
	for _, f := range []Field{FieldAmount, FieldUnitPrice} {
		if col, ok := m.Lookup(f); ok {
			if code, ok := InferCurrency(col.Name); ok {
				return code
			}
		}
	}
	return ""
}

func reportMapping(msgs *messageLog, m ColumnMapping, sku, qty Column, currency string, opts Options) {
	msgs.infof("SKU column: %s", sku.Name)
	msgs.infof("QTY column: %s", qty.Name)
	if c, ok := m.Lookup(FieldDescriptionEN); ok {
		msgs.infof("Name (EN) column: %s", c.Name)
	}
	if c, ok := m.Lookup(FieldDescriptionKR); ok {
		msgs.infof("Name (KR) column: %s", c.Name)
	}
	if opts.IncludePrice {
		if c, ok := m.Lookup(FieldUnitPrice); ok {
			msgs.infof("Price column: %s", c.Name)
		}
		if c, ok := m.Lookup(FieldAmount); ok {
			msgs.infof("Amount column: %s", c.Name)
		}
	}
	if c, ok := m.Lookup(FieldCurrency); ok {
		msgs.infof("Currency column: %s", c.Name)
	} else if currency != "" {
		msgs.infof("Detected currency: %s", currency)
	}
	if c, ok := m.Lookup(FieldHSCode); ok && opts.IncludeHSCode {
		msgs.infof("HS CODE column: %s", c.Name)
	}
}

func summarizeSKUs(skus []string) string {
	if len(skus) <= unmatchedPreview {
		return strings.Join(skus, ", ")
	}
	return fmt.Sprintf("%s (+%d more)", strings.Join(skus[:unmatchedPreview], ", "), len(skus)-unmatchedPreview)
}
