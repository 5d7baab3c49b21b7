package invoice

import "github.com/bonhokoo-eng/ci-generator/pkg/models"

// FromParsed converts parsed PO rows into invoice lines. With allFOC every
// line is free of charge at a zero price; otherwise each line is priced at
// defaultPrice, which may be zero for the operator to fill in later.
func FromParsed(items []models.ParsedLineItem, defaultPrice float64, allFOC bool) []models.LineItem {
	lines := make([]models.LineItem, 0, len(items))
	for _, p := range items {
		line := models.LineItem{
			SKUID:       p.SKUID,
			Barcode:     p.Barcode,
			Description: p.Description,
			HSCode:      p.HSCode,
			Qty:         p.Qty,
			UnitPrice:   defaultPrice,
			IsFOC:       allFOC,
		}
		if allFOC {
			line.UnitPrice = 0
		}
		lines = append(lines, line)
	}
	return lines
}
