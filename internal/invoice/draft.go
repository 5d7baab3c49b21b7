package invoice

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/bonhokoo-eng/ci-generator/pkg/models"
	"github.com/bonhokoo-eng/ci-generator/pkg/services"
)

// Draft is the on-disk form of an invoice being prepared. Dates are written
// as YYYY-MM-DD and receiver or staff details may be given by reference.
type Draft struct {
	models.InvoiceData

	// InvoiceDate shadows the embedded field so drafts can use plain dates.
	InvoiceDate string `json:"invoice_date,omitempty"`

	// CustomerCode selects a saved receiver when Receiver is not given inline.
	CustomerCode string `json:"customer_code,omitempty"`

	// Staff selects a saved staff member by name or email when StaffEmail is empty.
	Staff string `json:"staff,omitempty"`

	// PO imports line items from a purchase order file.
	PO *POImport `json:"po,omitempty"`
}

// POImport describes how to turn a purchase order into invoice lines.
type POImport struct {
	File          string  `json:"file"`
	Sheet         string  `json:"sheet,omitempty"`
	DefaultPrice  float64 `json:"default_price,omitempty"`
	AllFOC        bool    `json:"all_foc,omitempty"`
	IncludeNameKR bool    `json:"include_name_kr,omitempty"`
}

// LoadDraft reads a draft JSON file.
func LoadDraft(path string) (*Draft, error) {
	const op = "LoadDraft"

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to read draft %s: %w", op, path, err)
	}
	var d Draft
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("%s: failed to parse draft %s: %w", op, path, err)
	}
	return &d, nil
}

// Resolve produces InvoiceData from the draft, looking up receiver and staff
// references in the given directories. Either directory may be nil.
func (d *Draft) Resolve(receivers services.ReceiverDirectory, staff services.StaffDirectory) (*models.InvoiceData, error) {
	const op = "Resolve"

	data := d.InvoiceData
	if d.InvoiceDate != "" {
		date, err := parseDate(d.InvoiceDate)
		if err != nil {
			return nil, fmt.Errorf("%s: invalid invoice_date %q: %w", op, d.InvoiceDate, err)
		}
		data.InvoiceDate = date
	}

	if data.Receiver == nil && d.CustomerCode != "" && receivers != nil {
		if r, ok := receivers.GetReceiver(d.CustomerCode); ok {
			data.Receiver = &r
		}
	}
	if data.Receiver != nil && data.Currency == "" {
		data.Currency = data.Receiver.Currency
	}
	if data.Currency == "" {
		data.Currency = "KRW"
	}

	if data.StaffEmail == "" && d.Staff != "" && staff != nil {
		if s, ok := staff.FindStaff(d.Staff); ok {
			data.StaffEmail = s.Email
			if data.StaffPhone == "" {
				data.StaffPhone = s.Phone
			}
		}
	}
	return &data, nil
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
