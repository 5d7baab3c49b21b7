package models

import "time"

// Staff is a sender-side contact printed on the invoice.
type Staff struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

// HistoryEntry records one generated invoice. Entries are append-only and feed
// invoice number sequencing.
type HistoryEntry struct {
	ID           string    `json:"id"`
	InvoiceNo    string    `json:"invoice_no"`
	CustomerCode string    `json:"customer_code"`
	Date         string    `json:"date"` // YYYY-MM-DD
	Total        float64   `json:"total"`
	Currency     string    `json:"currency"`
	ItemCount    int       `json:"item_count"`
	CreatedAt    time.Time `json:"created_at"`
}
