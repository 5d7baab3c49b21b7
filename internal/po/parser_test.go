package po

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/bonhokoo-eng/ci-generator/pkg/models"
)

// workbook builds an xlsx file in memory; each sheet is a list of rows.
func workbook(t *testing.T, sheets map[string][][]interface{}, order ...string) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	for i, name := range order {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", name); err != nil {
				t.Fatalf("rename sheet: %v", err)
			}
		} else if _, err := f.NewSheet(name); err != nil {
			t.Fatalf("new sheet: %v", err)
		}
		for r, row := range sheets[name] {
			cell, _ := excelize.CoordinatesToCellName(1, r+1)
			row := row
			if err := f.SetSheetRow(name, cell, &row); err != nil {
				t.Fatalf("set row: %v", err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	return buf.Bytes()
}

func TestParseEndToEnd(t *testing.T) {
	catalog := fakeCatalog{
		"BIO-001": {SKUID: "BIO-001", Barcode: "123", Description: "Toner Pads", HSCode: "3307.90"},
	}
	data := workbook(t, map[string][][]interface{}{
		"PO": {
			{"PURCHASE ORDER"},
			{"SKU ID", "ORDER QTY"},
			{"BIO-001", 100},
		},
	}, "PO")

	res := NewParser(catalog).ParseBytes(data, DefaultOptions())
	if res.HasFatal() {
		t.Fatalf("unexpected fatal: %v", res.Messages)
	}
	if res.HeaderRow != 1 || res.Sheet != "PO" {
		t.Errorf("header row = %d sheet = %q", res.HeaderRow, res.Sheet)
	}
	if len(res.Items) != 1 {
		t.Fatalf("got %d items", len(res.Items))
	}

	want := models.ParsedLineItem{
		SKUID:       "BIO-001",
		Barcode:     "123",
		Description: "Toner Pads",
		HSCode:      "3307.90",
		Qty:         100,
		Source:      models.SourceMatched,
	}
	if res.Items[0] != want {
		t.Errorf("item = %+v\nwant   %+v", res.Items[0], want)
	}
	if !hasMessage(res.Messages, SeverityInfo, "header row detected: row 2") {
		t.Errorf("missing header message: %v", res.Messages)
	}
}

func TestParseScansSheets(t *testing.T) {
	data := workbook(t, map[string][][]interface{}{
		"Cover":  {{"Order summary"}, {"Total", 3}},
		"Detail": {{"Item Code", "Quantity", "Amount (KRW)"}, {"A-1", 3, 30000}},
	}, "Cover", "Detail")

	p := NewParser(nil)

	res := p.ParseBytes(data, DefaultOptions())
	if res.Sheet != "Detail" || len(res.Items) != 1 {
		t.Fatalf("sheet = %q items = %d, messages %v", res.Sheet, len(res.Items), res.Messages)
	}
	if res.Items[0].Currency != "KRW" || res.Items[0].Amount != 30000 {
		t.Errorf("item = %+v", res.Items[0])
	}

	opts := DefaultOptions()
	opts.Sheet = "Cover"
	res = p.ParseBytes(data, opts)
	if res.Sheet != "Cover" || len(res.Items) != 0 {
		t.Errorf("explicit sheet ignored: %q", res.Sheet)
	}
	if len(res.Warnings()) == 0 {
		t.Errorf("expected a missing-column warning on the cover sheet")
	}

	opts.Sheet = "Missing"
	res = p.ParseBytes(data, opts)
	if res.Sheet != "Detail" {
		t.Errorf("unknown sheet should fall back to scan, got %q", res.Sheet)
	}
}

func TestParseCSVFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "po.csv")
	csv := "SKU_ID,QTY,BARCODE\nBIO-009,12,8809891185139.0\n"
	if err := os.WriteFile(path, []byte(csv), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	res := NewParser(fakeCatalog{}).ParseFile(path, DefaultOptions())
	if len(res.Items) != 1 {
		t.Fatalf("items = %d, messages %v", len(res.Items), res.Messages)
	}
	if res.Items[0].Barcode != "8809891185139" {
		t.Errorf("barcode = %q", res.Items[0].Barcode)
	}
}

func TestParseUnreadableInput(t *testing.T) {
	p := NewParser(nil)

	res := p.ParseBytes([]byte{0x00, 0x01, 0x02, 0x03}, DefaultOptions())
	if !res.HasFatal() || len(res.Items) != 0 {
		t.Errorf("binary garbage: %+v", res)
	}

	res = p.ParseFile(filepath.Join(t.TempDir(), "missing.xlsx"), DefaultOptions())
	if !res.HasFatal() {
		t.Errorf("missing file should be fatal")
	}
}

func TestParseLegacyWorkbook(t *testing.T) {
	catalog := fakeCatalog{
		"BIO-001": {SKUID: "BIO-001", Barcode: "123", Description: "Toner Pads", HSCode: "3307.90"},
	}
	path := filepath.Join("testdata", "po.xls")

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open fixture: %v", err)
	}
	defer f.Close()
	wb, err := ReadWorkbook(f, DefaultReaders(""))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if wb.Format != "xls" || len(wb.Sheets) != 1 {
		t.Fatalf("format = %q sheets = %d", wb.Format, len(wb.Sheets))
	}
	// Row 4 is not stored in the file and reads as an empty row.
	if rows := wb.Sheets[0].Rows; len(rows) != 5 || rows[3] != nil {
		t.Errorf("rows = %v", rows)
	}

	res := NewParser(catalog).ParseFile(path, DefaultOptions())
	if res.HasFatal() {
		t.Fatalf("unexpected fatal: %v", res.Messages)
	}
	if res.Sheet != "Order" || res.HeaderRow != 1 {
		t.Errorf("sheet = %q header row = %d", res.Sheet, res.HeaderRow)
	}
	if len(res.Items) != 2 {
		t.Fatalf("got %d items: %+v", len(res.Items), res.Items)
	}

	matched := res.Items[0]
	if matched.SKUID != "BIO-001" || !matched.Matched() || matched.Qty != 120 {
		t.Errorf("matched item = %+v", matched)
	}
	if matched.UnitPrice != 4.5 || matched.Amount != 540 || matched.Currency != "USD" {
		t.Errorf("matched pricing = %v %v %q", matched.UnitPrice, matched.Amount, matched.Currency)
	}

	unmatched := res.Items[1]
	if unmatched.SKUID != "NEW-777" || unmatched.Matched() || unmatched.Description != "Sample Mist" || unmatched.Qty != 6 {
		t.Errorf("unmatched item = %+v", unmatched)
	}
}

func TestParseLegacyWorkbookWithCharset(t *testing.T) {
	// BIFF5 files store 8-bit strings in the writer's code page.
	p := NewParser(nil, WithReaders(DefaultReaders("cp949")...))
	res := p.ParseFile(filepath.Join("testdata", "po_biff5.xls"), DefaultOptions())
	if res.HasFatal() {
		t.Fatalf("unexpected fatal: %v", res.Messages)
	}
	if res.Sheet != "주문서" {
		t.Errorf("sheet = %q", res.Sheet)
	}
	if len(res.Items) != 1 {
		t.Fatalf("got %d items: %+v", len(res.Items), res.Items)
	}
	if got := res.Items[0]; got.SKUID != "BIO-001" || got.Description != "토너 패드" || got.Qty != 24 {
		t.Errorf("item = %+v", got)
	}
}

func TestDefaultReadersShareEncoding(t *testing.T) {
	for _, r := range DefaultReaders("cp949") {
		switch r := r.(type) {
		case XLSReader:
			if r.Charset != "cp949" {
				t.Errorf("xls charset = %q", r.Charset)
			}
		case CSVReader:
			if r.Encoding != "cp949" {
				t.Errorf("csv encoding = %q", r.Encoding)
			}
		}
	}
}

func TestReadWorkbookCorruptLegacyWorkbook(t *testing.T) {
	junk := append(append([]byte{}, oleSignature...), bytes.Repeat([]byte{0x5A}, 40)...)

	_, err := ReadWorkbook(bytes.NewReader(junk), DefaultReaders(""))
	if !errors.Is(err, ErrCorruptWorkbook) {
		t.Errorf("err = %v, want ErrCorruptWorkbook", err)
	}

	res := NewParser(nil).ParseBytes(junk, DefaultOptions())
	if !res.HasFatal() || len(res.Items) != 0 {
		t.Errorf("corrupt legacy workbook: %+v", res)
	}
}

func TestReadWorkbookFallsThroughReaders(t *testing.T) {
	_, err := ReadWorkbook(bytes.NewReader([]byte{0x00, 0xff}), DefaultReaders(""))
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("err = %v, want ErrUnsupportedFormat", err)
	}

	// A zip signature with no archive behind it is claimed by the xlsx reader but cannot be decoded.
	truncated := append(append([]byte{}, zipSignature...), []byte("not really a workbook")...)
	_, err = ReadWorkbook(bytes.NewReader(truncated), DefaultReaders(""))
	if !errors.Is(err, ErrCorruptWorkbook) {
		t.Errorf("err = %v, want ErrCorruptWorkbook", err)
	}

	data := workbook(t, map[string][][]interface{}{"S": {{"SKU", "QTY"}}}, "S")
	src := bytes.NewReader(data)
	if _, err := src.Seek(0, io.SeekEnd); err != nil {
		t.Fatalf("seek: %v", err)
	}
	wb, err := ReadWorkbook(src, DefaultReaders(""))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if wb.Format != "xlsx" {
		t.Errorf("format = %q", wb.Format)
	}
}
