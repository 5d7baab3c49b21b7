package skumaster

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/text/encoding/korean"
)

const masterCSV = `variant_code,barcode,variant_name,product_name,variant_full_name,manufacturer,variant_status,hs_code
BIO-001,8809891185139.0,Pad 60ea,Toner Pad,Toner Pads 60ea,Biodance,판매중,3307.90
BIO-002,8809891185146,Mask 4ea,Collagen Mask,Collagen Mask 4ea,Biodance,판매불가,3304.99
,8809891185153,Orphan,Orphan Product,Orphan,Biodance,판매중,
KLR-010,,Serum,Vitamin Serum,Vitamin Serum 30ml,Klairs,판매중,
`

type fakeRows struct {
	rows [][]string
	err  error
}

func (f fakeRows) Rows(context.Context) ([][]string, error) { return f.rows, f.err }

func loadedTable(t *testing.T) *Table {
	t.Helper()
	table := NewTable()
	if err := table.LoadBytes([]byte(masterCSV), ""); err != nil {
		t.Fatalf("load: %v", err)
	}
	return table
}

func TestLoadBytesIndexesRecords(t *testing.T) {
	table := loadedTable(t)

	if !table.IsLoaded() || table.Len() != 4 {
		t.Fatalf("loaded=%v len=%d, want 4 records", table.IsLoaded(), table.Len())
	}
	rec, ok := table.GetBySKU("BIO-001")
	if !ok {
		t.Fatalf("BIO-001 not found")
	}
	if rec.Barcode != "8809891185139" || rec.Description != "Toner Pads 60ea" || rec.HSCode != "3307.90" {
		t.Errorf("unexpected record: %+v", rec)
	}
	if src, at := table.Source(); src != SourceUpload || at.IsZero() {
		t.Errorf("source = %q at %v", src, at)
	}
}

func TestGetByBarcodeNormalizesQuery(t *testing.T) {
	table := loadedTable(t)

	for _, q := range []string{"8809891185139", "8809891185139.0", " 8.809891185139E+12 "} {
		rec, ok := table.GetByBarcode(q)
		if !ok || rec.SKUID != "BIO-001" {
			t.Errorf("GetByBarcode(%q) = %+v, %v", q, rec, ok)
		}
	}
	if _, ok := table.GetByBarcode("0000"); ok {
		t.Errorf("expected miss")
	}
	if _, ok := table.GetBySKU(""); ok {
		t.Errorf("empty sku must not match")
	}
}

func TestSearch(t *testing.T) {
	table := loadedTable(t)

	tests := []struct {
		name  string
		query string
		limit int
		want  []string
	}{
		{"sku code", "bio-00", 10, []string{"BIO-001", "BIO-002"}},
		{"limit", "bio", 1, []string{"BIO-001"}},
		{"barcode", "85146", 10, []string{"BIO-002"}},
		{"short name", "SERUM", 10, []string{"KLR-010"}},
		{"product name", "collagen", 10, []string{"BIO-002"}},
		{"empty sku excluded", "orphan", 10, nil},
		{"blank query", "   ", 10, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := table.Search(tt.query, tt.limit)
			if len(got) != len(tt.want) {
				t.Fatalf("Search(%q) returned %d records, want %d", tt.query, len(got), len(tt.want))
			}
			for i, rec := range got {
				if rec.SKUID != tt.want[i] {
					t.Errorf("result[%d] = %s, want %s", i, rec.SKUID, tt.want[i])
				}
			}
		})
	}
}

func TestActiveProducts(t *testing.T) {
	table := loadedTable(t)

	got := table.ActiveProducts(10)
	if len(got) != 2 || got[0].SKUID != "BIO-001" || got[1].SKUID != "KLR-010" {
		t.Errorf("ActiveProducts = %+v", got)
	}
	if got := table.ActiveProducts(1); len(got) != 1 {
		t.Errorf("limit not honoured: %d", len(got))
	}
}

func TestLoadFileLegacyEncoding(t *testing.T) {
	encoded, err := korean.EUCKR.NewEncoder().Bytes([]byte(masterCSV))
	if err != nil {
		t.Fatalf("encode fixture: %v", err)
	}
	path := filepath.Join(t.TempDir(), "sku_master.csv")
	if err := os.WriteFile(path, encoded, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	table := NewTable()
	if err := table.LoadFile(path, ""); err != nil {
		t.Fatalf("load: %v", err)
	}
	rec, _ := table.GetBySKU("BIO-002")
	if rec.Status != UnsellableStatus {
		t.Errorf("status = %q, want %q", rec.Status, UnsellableStatus)
	}
	if src, _ := table.Source(); src != SourceLocal {
		t.Errorf("source = %q", src)
	}
}

func TestFailedLoadKeepsPreviousTable(t *testing.T) {
	table := loadedTable(t)

	err := table.LoadFile(filepath.Join(t.TempDir(), "missing.csv"), "")
	if !errors.Is(err, ErrUnreadableSource) {
		t.Errorf("missing file error = %v", err)
	}
	var loadErr *LoadError
	if !errors.As(err, &loadErr) || loadErr.Op != "LoadFile" {
		t.Errorf("expected *LoadError, got %T", err)
	}

	err = table.LoadBytes([]byte("barcode,variant_name\n123,foo\n"), "")
	if !errors.Is(err, ErrMissingColumn) {
		t.Errorf("missing column error = %v", err)
	}

	err = table.LoadBytes([]byte{0xff, 0xfe, 0xfd, 0x00, 0x81}, "")
	if !IsUnreadable(err) {
		t.Errorf("garbage bytes error = %v", err)
	}

	if table.Len() != 4 {
		t.Errorf("table changed after failed loads: len=%d", table.Len())
	}
	if src, _ := table.Source(); src != SourceUpload {
		t.Errorf("source changed to %q", src)
	}
}

func TestLoadRemote(t *testing.T) {
	table := NewTable()
	src := fakeRows{rows: [][]string{
		{"variant_code", "barcode", "variant_full_name"},
		{"BIO-001", "123.0", "Toner Pads"},
	}}
	if err := table.LoadRemote(context.Background(), src); err != nil {
		t.Fatalf("load: %v", err)
	}
	rec, ok := table.GetByBarcode("123")
	if !ok || rec.Description != "Toner Pads" {
		t.Errorf("record = %+v, %v", rec, ok)
	}

	err := table.LoadRemote(context.Background(), fakeRows{err: errors.New("quota exceeded")})
	if !errors.Is(err, ErrUnreadableSource) {
		t.Errorf("remote error = %v", err)
	}
	if src, _ := table.Source(); src != SourceSheet {
		t.Errorf("source = %q", src)
	}
}
