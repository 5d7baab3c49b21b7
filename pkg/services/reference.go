package services

import "github.com/bonhokoo-eng/ci-generator/pkg/models"

// InvoiceHistory is the append-only log of generated invoices used to derive
// invoice number sequences.
type InvoiceHistory interface {
	// AllHistory returns every stored entry, oldest first.
	AllHistory() []models.HistoryEntry

	// AppendHistory stores entry, assigning its ID and creation time, and
	// returns the stored copy.
	AppendHistory(entry models.HistoryEntry) (models.HistoryEntry, error)
}

// ReceiverDirectory looks up saved receivers by customer code.
type ReceiverDirectory interface {
	GetReceiver(customerCode string) (models.Receiver, bool)
}

// StaffDirectory looks up sender-side staff by name or email.
type StaffDirectory interface {
	FindStaff(nameOrEmail string) (models.Staff, bool)
}
