package po

import (
	"math"
	"strings"
)

// Presence distinguishes a missing column from a blank cell.
type Presence int

const (
	// ColumnAbsent means the field has no resolved column.
	ColumnAbsent Presence = iota
	// CellBlank means the column exists but the cell is empty or the missing marker.
	CellBlank
	// CellPresent means the cell holds a value.
	CellPresent
)

// Value is a cell fetched through a RowAccessor.
type Value struct {
	Cell     Cell
	Presence Presence
}

// Present reports whether the value holds data.
func (v Value) Present() bool { return v.Presence == CellPresent }

// Text returns the trimmed text and whether a value is present.
func (v Value) Text() (string, bool) {
	if !v.Present() {
		return "", false
	}
	return v.Cell.Text(), true
}

// Float parses the value as a number. Non-numeric text reports false.
func (v Value) Float() (float64, bool) {
	if !v.Present() {
		return 0, false
	}
	return v.Cell.Number()
}

// Int truncates the numeric value toward zero.
func (v Value) Int() (int, bool) {
	f, ok := v.Float()
	// float64(math.MaxInt) rounds up to 2^63, which int cannot hold.
	if !ok || f >= float64(math.MaxInt) || f < float64(math.MinInt) {
		return 0, false
	}
	return int(math.Trunc(f)), true
}

// RowAccessor resolves field names to column positions once per sheet.
type RowAccessor struct {
	index map[Field]int
}

// NewRowAccessor builds an accessor from a column mapping.
func NewRowAccessor(m ColumnMapping) RowAccessor {
	index := make(map[Field]int, len(m))
	for f, c := range m {
		index[f] = c.Index
	}
	return RowAccessor{index: index}
}

// Has reports whether the field has a resolved column.
func (a RowAccessor) Has(f Field) bool {
	_, ok := a.index[f]
	return ok
}

// Get returns the cell for f in row.
func (a RowAccessor) Get(row []Cell, f Field) Value {
	i, ok := a.index[f]
	if !ok {
		return Value{Presence: ColumnAbsent}
	}
	if i >= len(row) || row[i].Blank() {
		return Value{Presence: CellBlank}
	}
	return Value{Cell: row[i], Presence: CellPresent}
}

// Text is shorthand for Get(row, f).Text with the blank and absent cases collapsed to "".
func (a RowAccessor) Text(row []Cell, f Field) string {
	s, _ := a.Get(row, f).Text()
	return strings.TrimSpace(s)
}
