package po

import (
	"math"
	"strconv"
	"strings"
)

// CellKind classifies a raw spreadsheet cell.
type CellKind int

const (
	// KindBlank covers empty cells and the missing-value marker.
	KindBlank CellKind = iota
	KindText
	KindNumber
)

// Cell is one raw value as read from a sheet. The original text is always
// kept so identifiers with leading zeros survive numeric classification.
type Cell struct {
	Kind CellKind
	Raw  string
	num  float64
}

// NewCell classifies a raw cell string.
func NewCell(raw string) Cell {
	s := strings.TrimSpace(raw)
	if s == "" || strings.EqualFold(s, "nan") {
		return Cell{Kind: KindBlank, Raw: s}
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsInf(f, 0) && !math.IsNaN(f) {
		return Cell{Kind: KindNumber, Raw: s, num: f}
	}
	return Cell{Kind: KindText, Raw: s}
}

// Blank reports whether the cell holds no usable value.
func (c Cell) Blank() bool {
	return c.Kind == KindBlank
}

// Text returns the trimmed cell text, empty for blank cells.
func (c Cell) Text() string {
	if c.Kind == KindBlank {
		return ""
	}
	return c.Raw
}

// Number returns the numeric value of the cell. Text and blank cells report false.
func (c Cell) Number() (float64, bool) {
	if c.Kind != KindNumber {
		return 0, false
	}
	return c.num, true
}

// NewRow classifies a row of raw strings.
func NewRow(raw []string) []Cell {
	row := make([]Cell, len(raw))
	for i, s := range raw {
		row[i] = NewCell(s)
	}
	return row
}

// RawSheet is an ordered grid of cells with no header assumed.
type RawSheet struct {
	Name string
	Rows [][]Cell
}

// Workbook is the set of sheets read from one file, in file order.
type Workbook struct {
	Format string
	Sheets []RawSheet
}

// Sheet returns the sheet with the given name.
func (w *Workbook) Sheet(name string) (RawSheet, bool) {
	for _, s := range w.Sheets {
		if s.Name == name {
			return s, true
		}
	}
	return RawSheet{}, false
}

// SheetNames lists the sheet names in file order.
func (w *Workbook) SheetNames() []string {
	names := make([]string, len(w.Sheets))
	for i, s := range w.Sheets {
		names[i] = s.Name
	}
	return names
}
