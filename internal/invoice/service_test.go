package invoice

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bonhokoo-eng/ci-generator/pkg/models"
)

type memoryHistory struct {
	entries []models.HistoryEntry
	err     error
}

func (m *memoryHistory) AllHistory() []models.HistoryEntry { return m.entries }

func (m *memoryHistory) AppendHistory(e models.HistoryEntry) (models.HistoryEntry, error) {
	if m.err != nil {
		return models.HistoryEntry{}, m.err
	}
	e.ID = "id-" + e.InvoiceNo
	m.entries = append(m.entries, e)
	return e, nil
}

func TestGenerateNumbersAndRecords(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "generated")
	hist := &memoryHistory{entries: []models.HistoryEntry{{InvoiceNo: "INVOT251104-1"}, {InvoiceNo: "INVOT251104-2"}}}
	gen := NewGenerator(NewRenderer(nil), hist, dir)

	d := validDraft()
	d.InvoiceNo = ""

	res, err := gen.Generate(d)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if res.InvoiceNo != "INVOT251104-3" {
		t.Errorf("invoice no = %q", res.InvoiceNo)
	}
	if res.Path != filepath.Join(dir, "INVOT251104-3.xlsx") {
		t.Errorf("path = %q", res.Path)
	}
	if _, err := os.Stat(res.Path); err != nil {
		t.Errorf("output not written: %v", err)
	}

	last := hist.entries[len(hist.entries)-1]
	if last.InvoiceNo != "INVOT251104-3" || last.CustomerCode != "OT" || last.Date != "2025-11-04" {
		t.Errorf("history entry = %+v", last)
	}
	if last.Total != 10000 || last.ItemCount != 2 || last.Currency != "KRW" {
		t.Errorf("history totals = %+v", last)
	}
}

func TestGenerateDefaultsCustomerCodeAndDate(t *testing.T) {
	gen := NewGenerator(NewRenderer(nil), &memoryHistory{}, t.TempDir())
	gen.now = func() time.Time { return time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC) }

	d := validDraft()
	d.InvoiceNo = ""
	d.InvoiceDate = time.Time{}
	d.Receiver.CustomerCode = ""

	if got := gen.AssignNumber(d); got != "INVXX250101-1" {
		t.Errorf("AssignNumber = %q", got)
	}
}

func TestGenerateRejectsInvalidDraft(t *testing.T) {
	dir := t.TempDir()
	hist := &memoryHistory{}
	gen := NewGenerator(NewRenderer(nil), hist, dir)

	d := validDraft()
	d.Items = nil

	if _, err := gen.Generate(d); !errors.Is(err, ErrValidationFailed) {
		t.Fatalf("err = %v", err)
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 || len(hist.entries) != 0 {
		t.Errorf("nothing should be written on validation failure")
	}
}

func TestGenerateReportsHistoryFailure(t *testing.T) {
	gen := NewGenerator(NewRenderer(nil), &memoryHistory{err: errors.New("disk full")}, t.TempDir())

	_, err := gen.Generate(validDraft())
	var genErr *GenerationError
	if !errors.As(err, &genErr) || genErr.InvoiceNo != "INVOT251104-1" {
		t.Errorf("err = %v", err)
	}
}

func TestDraftResolve(t *testing.T) {
	path := filepath.Join(t.TempDir(), "draft.json")
	draft := `{
  "invoice_date": "2025-11-04",
  "customer_code": "ot",
  "staff": "Kim",
  "items": [{"sku_id": "BIO-001", "description": "Toner Pads", "qty": 10, "unit_price": 1000}],
  "po": {"file": "po.xlsx", "all_foc": true}
}`
	if err := os.WriteFile(path, []byte(draft), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	d, err := LoadDraft(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if d.PO == nil || !d.PO.AllFOC || d.PO.File != "po.xlsx" {
		t.Errorf("po = %+v", d.PO)
	}

	data, err := d.Resolve(fakeReceivers{}, fakeStaff{})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if data.InvoiceDate.Format("2006-01-02") != "2025-11-04" {
		t.Errorf("date = %v", data.InvoiceDate)
	}
	if data.Receiver == nil || data.Receiver.CompanyName != "Orien Trade OU" {
		t.Errorf("receiver = %+v", data.Receiver)
	}
	if data.Currency != "USD" {
		t.Errorf("currency = %q, want receiver default USD", data.Currency)
	}
	if data.StaffEmail != "kim@example.com" || data.StaffPhone != "+82-10-0000-0000" {
		t.Errorf("staff = %q %q", data.StaffEmail, data.StaffPhone)
	}

	bad := &Draft{InvoiceDate: "04/11/2025"}
	if _, err := bad.Resolve(nil, nil); err == nil {
		t.Errorf("expected date error")
	}
}

type fakeReceivers struct{}

func (fakeReceivers) GetReceiver(code string) (models.Receiver, bool) {
	if code != "ot" && code != "OT" {
		return models.Receiver{}, false
	}
	return models.Receiver{CustomerCode: "OT", CompanyName: "Orien Trade OU", Address: "Tartu", Currency: "USD"}, true
}

type fakeStaff struct{}

func (fakeStaff) FindStaff(q string) (models.Staff, bool) {
	if q != "Kim" {
		return models.Staff{}, false
	}
	return models.Staff{Name: "Kim", Email: "kim@example.com", Phone: "+82-10-0000-0000"}, true
}
