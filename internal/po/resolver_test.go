package po

import "testing"

func sheetOf(rows ...[]string) RawSheet {
	s := RawSheet{Name: "Sheet1"}
	for _, r := range rows {
		s.Rows = append(s.Rows, NewRow(r))
	}
	return s
}

func TestFindHeaderRow(t *testing.T) {
	sku := DefaultCandidates()[FieldSKU]

	sheet := sheetOf(
		[]string{"PURCHASE ORDER"},
		[]string{"Buyer: ACME", "", "Date: 2025-01-01"},
		[]string{"No", " sku id ", "ORDER QTY"},
		[]string{"1", "BIO-001", "100"},
	)
	if row, found := FindHeaderRow(sheet, sku); !found || row != 2 {
		t.Errorf("FindHeaderRow = %d, %v; want 2, true", row, found)
	}

	// Substrings do not count when locating the header.
	noHeader := sheetOf([]string{"SKU LIST 2025"}, []string{"A", "B"})
	if row, found := FindHeaderRow(noHeader, sku); found || row != 0 {
		t.Errorf("FindHeaderRow fallback = %d, %v; want 0, false", row, found)
	}
}

func TestResolveColumnsPrefersExactMatch(t *testing.T) {
	header := []string{"SKU ID", "TOTAL QTY"}
	candidates := Candidates{
		FieldSKU: {"SKU ID"},
		FieldQty: {"QTY", "TOTAL QTY"},
	}

	m := ResolveColumns(header, candidates)
	if c, ok := m.Lookup(FieldQty); !ok || c.Name != "TOTAL QTY" || c.Index != 1 {
		t.Errorf("qty resolved to %+v, %v", c, ok)
	}
	if c, ok := m.Lookup(FieldSKU); !ok || c.Index != 0 {
		t.Errorf("sku resolved to %+v, %v", c, ok)
	}
}

func TestResolveColumnsPartialFallback(t *testing.T) {
	header := []string{"Item Code (Buyer)", "Qty (Outbox)", "Qty (EA)", "Amount (USD)", "Memo"}
	m := ResolveColumns(header, DefaultCandidates())

	tests := []struct {
		field Field
		want  string
	}{
		{FieldSKU, "Item Code (Buyer)"},
		{FieldQty, "Qty (Outbox)"},
		{FieldAmount, "Amount (USD)"},
	}
	for _, tt := range tests {
		c, ok := m.Lookup(tt.field)
		if !ok || c.Name != tt.want {
			t.Errorf("%s resolved to %q (%v), want %q", tt.field, c.Name, ok, tt.want)
		}
	}
	for _, f := range []Field{FieldBarcode, FieldCurrency, FieldHSCode} {
		if _, ok := m.Lookup(f); ok {
			t.Errorf("%s should be unresolved", f)
		}
	}
}

func TestResolveColumnsDuplicateHeaderFirstWins(t *testing.T) {
	m := ResolveColumns([]string{"SKU", "QTY", "QTY"}, DefaultCandidates())
	if c, _ := m.Lookup(FieldQty); c.Index != 1 {
		t.Errorf("qty index = %d, want 1", c.Index)
	}
}

func TestInferCurrency(t *testing.T) {
	tests := []struct {
		name string
		want string
		ok   bool
	}{
		{"AMOUNT(KRW)", "KRW", true},
		{"공급가(원)", "KRW", true},
		{"Price ₩", "KRW", true},
		{"Supply Price (USD)", "USD", true},
		{"Unit $", "USD", true},
		{"amount eur", "EUR", true},
		{"Total €", "EUR", true},
		{"Price JPY", "JPY", true},
		{"¥", "JPY", true},
		{"AMOUNT", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := InferCurrency(tt.name)
		if got != tt.want || ok != tt.ok {
			t.Errorf("InferCurrency(%q) = %q, %v; want %q, %v", tt.name, got, ok, tt.want, tt.ok)
		}
	}
}

func TestRowAccessorDistinguishesAbsentFromBlank(t *testing.T) {
	acc := NewRowAccessor(ColumnMapping{FieldSKU: {Name: "SKU", Index: 0}, FieldQty: {Name: "QTY", Index: 1}})
	row := NewRow([]string{"BIO-001", "nan"})

	if v := acc.Get(row, FieldQty); v.Presence != CellBlank {
		t.Errorf("qty presence = %v, want CellBlank", v.Presence)
	}
	if v := acc.Get(row, FieldBarcode); v.Presence != ColumnAbsent {
		t.Errorf("barcode presence = %v, want ColumnAbsent", v.Presence)
	}
	if s, ok := acc.Get(row, FieldSKU).Text(); !ok || s != "BIO-001" {
		t.Errorf("sku = %q, %v", s, ok)
	}
	if n, ok := acc.Get(NewRow([]string{"X", "12.9"}), FieldQty).Int(); !ok || n != 12 {
		t.Errorf("qty int = %d, %v; want 12", n, ok)
	}
}

func TestValueIntBounds(t *testing.T) {
	acc := NewRowAccessor(ColumnMapping{FieldQty: {Name: "QTY", Index: 0}})
	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{"2147483648", 2147483648, true},
		{"-3000000000", -3000000000, true},
		{"1e19", 0, false},
		{"-1e19", 0, false},
		{"inf", 0, false},
	}
	for _, tt := range tests {
		got, ok := acc.Get(NewRow([]string{tt.in}), FieldQty).Int()
		if got != tt.want || ok != tt.ok {
			t.Errorf("Int(%q) = %d, %v; want %d, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}
