package models

// ProductRecord is one entry of the SKU master table.
type ProductRecord struct {
	SKUID        string `json:"sku_id"`       // variant_code, unique
	Barcode      string `json:"barcode"`      // normalized at load time
	Description  string `json:"description"`  // variant_full_name
	ProductName  string `json:"product_name"` // full product name
	VariantName  string `json:"variant_name"` // short name
	Manufacturer string `json:"manufacturer"`
	Status       string `json:"status"` // variant_status, free text
	HSCode       string `json:"hs_code,omitempty"`
}

// LineSource tells whether a parsed PO row joined the SKU master.
type LineSource string

const (
	SourceMatched   LineSource = "matched"
	SourceUnmatched LineSource = "unmatched"
)

// ParsedLineItem is one usable row extracted from a purchase order.
type ParsedLineItem struct {
	SKUID        string     `json:"sku_id"`
	Barcode      string     `json:"barcode"`
	Description  string     `json:"description"`
	NameKR       string     `json:"name_kr,omitempty"`
	HSCode       string     `json:"hs_code"`
	Qty          int        `json:"qty"`
	UnitPrice    float64    `json:"unit_price"`
	Amount       float64    `json:"amount"`
	Currency     string     `json:"currency,omitempty"` // empty when unknown
	Source       LineSource `json:"source"`
	Manufacturer string     `json:"manufacturer"`
	Status       string     `json:"status"`
}

// Matched reports whether the row was found in the SKU master.
func (p ParsedLineItem) Matched() bool {
	return p.Source == SourceMatched
}
