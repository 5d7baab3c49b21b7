package po

import "strings"

// Column is a resolved header column.
type Column struct {
	Name  string
	Index int
}

// ColumnMapping maps fields to the columns found for them. A field that is
// absent from the map is unresolved.
type ColumnMapping map[Field]Column

// Lookup returns the column resolved for f.
func (m ColumnMapping) Lookup(f Field) (Column, bool) {
	c, ok := m[f]
	return c, ok
}

func normalizeHeader(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// FindHeaderRow returns the index of the first row holding a cell that equals
// one of the SKU candidates, ignoring case and surrounding space. When no row
// qualifies it returns 0 and false; callers treat the first row as the header.
func FindHeaderRow(sheet RawSheet, skuCandidates []string) (int, bool) {
	want := make(map[string]bool, len(skuCandidates))
	for _, c := range skuCandidates {
		want[normalizeHeader(c)] = true
	}
	for i, row := range sheet.Rows {
		for _, cell := range row {
			if cell.Blank() {
				continue
			}
			if want[normalizeHeader(cell.Raw)] {
				return i, true
			}
		}
	}
	return 0, false
}

// HeaderNames returns the header row's column names, blank cells as "".
func HeaderNames(sheet RawSheet, headerRow int) []string {
	if headerRow < 0 || headerRow >= len(sheet.Rows) {
		return nil
	}
	row := sheet.Rows[headerRow]
	names := make([]string, len(row))
	for i, cell := range row {
		names[i] = strings.TrimSpace(cell.Text())
	}
	return names
}

// ResolveColumns matches every field against the header in two passes: an
// exact match over the candidates in priority order, then a substring match
// over the candidates in priority order. The first column wins when a header
// name repeats. Fields with no hit are left out of the mapping.
func ResolveColumns(header []string, candidates Candidates) ColumnMapping {
	mapping := make(ColumnMapping)
	for field, list := range candidates {
		if col, ok := resolveColumn(header, list); ok {
			mapping[field] = col
		}
	}
	return mapping
}

func resolveColumn(header []string, candidates []string) (Column, bool) {
	normalized := make([]string, len(header))
	for i, h := range header {
		normalized[i] = normalizeHeader(h)
	}

	for _, c := range candidates {
		want := normalizeHeader(c)
		for i, h := range normalized {
			if h != "" && h == want {
				return Column{Name: header[i], Index: i}, true
			}
		}
	}

	for _, c := range candidates {
		want := normalizeHeader(c)
		if want == "" {
			continue
		}
		for i, h := range normalized {
			if strings.Contains(h, want) {
				return Column{Name: header[i], Index: i}, true
			}
		}
	}
	return Column{}, false
}

// currencyTokens is checked in order; the first hit wins.
var currencyTokens = []struct {
	code    string
	markers []string
}{
	{"KRW", []string{"KRW", "₩", "원"}},
	{"USD", []string{"USD", "$"}},
	{"EUR", []string{"EUR", "€"}},
	{"JPY", []string{"JPY", "¥"}},
}

// InferCurrency derives a currency code from a column name such as
// "AMOUNT(KRW)" or "Supply Price ($)".
func InferCurrency(columnName string) (string, bool) {
	name := normalizeHeader(columnName)
	if name == "" {
		return "", false
	}
	for _, t := range currencyTokens {
		for _, m := range t.markers {
			if strings.Contains(name, m) {
				return t.code, true
			}
		}
	}
	return "", false
}

// hasSKUHeader reports whether the sheet looks like a PO: a detected header
// row, or a first row with a cell containing a SKU candidate.
func hasSKUHeader(sheet RawSheet, skuCandidates []string) bool {
	if _, found := FindHeaderRow(sheet, skuCandidates); found {
		return true
	}
	if len(sheet.Rows) == 0 {
		return false
	}
	for _, cell := range sheet.Rows[0] {
		if cell.Blank() {
			continue
		}
		text := normalizeHeader(cell.Raw)
		for _, c := range skuCandidates {
			if strings.Contains(text, normalizeHeader(c)) {
				return true
			}
		}
	}
	return false
}
