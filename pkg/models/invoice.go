package models

import "time"

// LineItem is one row of the commercial invoice item table. It is either entered
// manually or converted from a ParsedLineItem.
type LineItem struct {
	SKUID       string  `json:"sku_id"`
	Barcode     string  `json:"barcode"`
	Description string  `json:"description"`
	HSCode      string  `json:"hs_code"`
	Qty         int     `json:"qty"`
	QtyOutbox   float64 `json:"qty_outbox"` // secondary packing quantity, QTY(OUTBOX)
	UnitPrice   float64 `json:"unit_price"` // on FOC lines this is display-only
	IsFOC       bool    `json:"is_foc"`
	Note        string  `json:"note,omitempty"`
}

// Receiver is the customer block of an invoice and the persisted receiver record.
type Receiver struct {
	CustomerCode string `json:"customer_code"` // short code such as "SK", "OT"
	CompanyName  string `json:"company_name"`
	Address      string `json:"address"`
	Country      string `json:"country,omitempty"`
	Email        string `json:"email,omitempty"`
	Phone        string `json:"phone,omitempty"`
	BusinessNo   string `json:"business_no,omitempty"`
	Currency     string `json:"currency,omitempty"`
	TradeTerms   string `json:"trade_terms,omitempty"`
}

// ShippingTerms is only rendered on international invoices.
type ShippingTerms struct {
	Terms           string `json:"terms"` // FOB, CIF, EXW, DAP
	LoadingPort     string `json:"loading_port"`
	DestinationPort string `json:"destination_port"`
	ShippingMethod  string `json:"shipping_method"`  // BY AIR, BY SEA
	ReasonOfExport  string `json:"reason_of_export"` // SALE, SAMPLE, FOC
}

// InvoiceData is everything the renderer needs for one commercial invoice.
type InvoiceData struct {
	InvoiceDate time.Time `json:"invoice_date"`
	InvoiceNo   string    `json:"invoice_no"`
	OrderNo     string    `json:"order_no,omitempty"`

	StaffEmail string `json:"staff_email"`
	StaffPhone string `json:"staff_phone,omitempty"`
	IsDomestic bool   `json:"is_domestic"`

	Receiver *Receiver      `json:"receiver,omitempty"`
	Shipping *ShippingTerms `json:"shipping,omitempty"`

	Currency string     `json:"currency"`
	Items    []LineItem `json:"items"`

	TaxRate          float64 `json:"tax_rate"`          // fraction, 0.1 == 10%
	TotalTransaction float64 `json:"total_transaction"` // actual payment, shown only when FOC lines exist

	CustomRemarks string `json:"custom_remarks,omitempty"`
}

// HasFOC reports whether any line is free of charge.
func (d *InvoiceData) HasFOC() bool {
	for _, item := range d.Items {
		if item.IsFOC {
			return true
		}
	}
	return false
}
