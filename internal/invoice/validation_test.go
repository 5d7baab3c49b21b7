package invoice

import (
	"errors"
	"testing"
	"time"

	"github.com/bonhokoo-eng/ci-generator/pkg/models"
)

func validDraft() *models.InvoiceData {
	return &models.InvoiceData{
		InvoiceDate: time.Date(2025, 11, 4, 0, 0, 0, 0, time.UTC),
		InvoiceNo:   "INVOT251104-1",
		OrderNo:     "PO25001509",
		StaffEmail:  "sales@example.com",
		Receiver: &models.Receiver{
			CustomerCode: "OT",
			CompanyName:  "Orien Trade OU",
			Address:      "Puiestee 2, Tartu 50303, Estonia",
			Email:        "buyer@example.com",
		},
		Shipping: &models.ShippingTerms{Terms: "FOB", DestinationPort: "ESTONIA", ShippingMethod: "BY AIR"},
		Currency: "KRW",
		Items: []models.LineItem{
			{SKUID: "BIO-S023027889", Barcode: "8809891185139", Description: "Collagen Gel Toner Pads", HSCode: "3307.90-9000", Qty: 4000, QtyOutbox: 40, UnitPrice: 10, IsFOC: true},
			{SKUID: "BIO-001", Description: "Toner Pads", Qty: 10, UnitPrice: 1000},
		},
		TotalTransaction: 30000,
	}
}

func TestValidateAcceptsCompleteDraft(t *testing.T) {
	if err := Validate(validDraft()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateReportsEveryViolation(t *testing.T) {
	d := &models.InvoiceData{
		Receiver: &models.Receiver{},
		Currency: "JPY",
		Items: []models.LineItem{
			{SKUID: "A", Description: "ok", Qty: 1},
			{Qty: 0},
		},
	}

	err := Validate(d)
	if !errors.Is(err, ErrValidationFailed) {
		t.Fatalf("err = %v, want ErrValidationFailed", err)
	}
	var verrs ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("err is %T, want ValidationErrors", err)
	}

	want := []string{
		"invoice_no",
		"invoice_date",
		"staff_email",
		"receiver.company_name",
		"receiver.address",
		"currency",
		"items[1].sku_id",
		"items[1].description",
		"items[1].qty",
	}
	if len(verrs) != len(want) {
		t.Fatalf("got %d violations %v, want %d", len(verrs), verrs.Messages(), len(want))
	}
	for i, field := range want {
		if verrs[i].Field != field {
			t.Errorf("violation %d field = %q, want %q", i, verrs[i].Field, field)
		}
	}
}

func TestValidateMissingReceiverAndItems(t *testing.T) {
	d := validDraft()
	d.Receiver = nil
	d.Items = nil

	var verrs ValidationErrors
	if !errors.As(Validate(d), &verrs) {
		t.Fatal("expected ValidationErrors")
	}
	if len(verrs) != 2 || verrs[0].Field != "receiver" || verrs[1].Field != "items" {
		t.Errorf("violations = %v", verrs.Messages())
	}
}

func TestFromParsed(t *testing.T) {
	parsed := []models.ParsedLineItem{
		{SKUID: "BIO-001", Barcode: "123", Description: "Toner Pads", HSCode: "3307.90", Qty: 100, UnitPrice: 7.5, Source: models.SourceMatched},
		{SKUID: "NEW-1", Description: "[UNREGISTERED] NEW-1", Qty: 2, Source: models.SourceUnmatched},
	}

	lines := FromParsed(parsed, 1200, false)
	if len(lines) != 2 {
		t.Fatalf("got %d lines", len(lines))
	}
	want := models.LineItem{SKUID: "BIO-001", Barcode: "123", Description: "Toner Pads", HSCode: "3307.90", Qty: 100, UnitPrice: 1200}
	if lines[0] != want {
		t.Errorf("line = %+v, want %+v", lines[0], want)
	}

	for _, l := range FromParsed(parsed, 1200, true) {
		if !l.IsFOC || l.UnitPrice != 0 {
			t.Errorf("all-FOC line = %+v", l)
		}
	}
}
