package invoice

import (
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const (
	grayFill   = "E0E0E0"
	yellowFill = "FFFF00"
)

type styles struct {
	title          int
	label          int
	value          int
	small          int
	header         int
	cell           int
	centered       int
	wrapped        int
	right          int
	labelCell      int
	labelRight     int
	labelHighlight int
	valueHighlight int
	highlight      int
}

// sheetWriter writes cells to one sheet and keeps the first error, so layout
// code can stay linear.
type sheetWriter struct {
	f      *excelize.File
	sheet  string
	styles styles
	err    error
}

func newSheetWriter(f *excelize.File, sheet string) (*sheetWriter, error) {
	w := &sheetWriter{f: f, sheet: sheet}

	thin := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}
	fill := func(color string) excelize.Fill {
		return excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1}
	}
	bold9 := &excelize.Font{Bold: true, Size: 9}
	plain9 := &excelize.Font{Size: 9}
	center := &excelize.Alignment{Horizontal: "center", Vertical: "center"}
	right := &excelize.Alignment{Horizontal: "right"}

	defs := []struct {
		dst   *int
		style *excelize.Style
	}{
		{&w.styles.title, &excelize.Style{Font: &excelize.Font{Bold: true, Size: 18}, Alignment: center}},
		{&w.styles.label, &excelize.Style{Font: bold9}},
		{&w.styles.value, &excelize.Style{Font: plain9}},
		{&w.styles.small, &excelize.Style{Font: &excelize.Font{Size: 8}}},
		{&w.styles.header, &excelize.Style{
			Font:      bold9,
			Fill:      fill(grayFill),
			Border:    thin,
			Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
		}},
		{&w.styles.cell, &excelize.Style{Font: plain9, Border: thin}},
		{&w.styles.centered, &excelize.Style{Font: plain9, Border: thin, Alignment: center}},
		{&w.styles.wrapped, &excelize.Style{Font: plain9, Border: thin, Alignment: &excelize.Alignment{WrapText: true}}},
		{&w.styles.right, &excelize.Style{Font: plain9, Border: thin, Alignment: right}},
		{&w.styles.labelCell, &excelize.Style{Font: bold9, Border: thin}},
		{&w.styles.labelRight, &excelize.Style{Font: bold9, Border: thin, Alignment: right}},
		{&w.styles.labelHighlight, &excelize.Style{Font: bold9, Border: thin, Fill: fill(yellowFill)}},
		{&w.styles.valueHighlight, &excelize.Style{Font: plain9, Border: thin, Fill: fill(yellowFill)}},
		{&w.styles.highlight, &excelize.Style{Font: bold9, Border: thin, Fill: fill(yellowFill), Alignment: right}},
	}
	for _, d := range defs {
		id, err := f.NewStyle(d.style)
		if err != nil {
			return nil, err
		}
		*d.dst = id
	}
	return w, nil
}

func (w *sheetWriter) set(col string, row int, value any, style int) {
	if w.err != nil {
		return
	}
	cell := col + strconv.Itoa(row)
	if w.err = w.f.SetCellValue(w.sheet, cell, value); w.err != nil {
		return
	}
	w.err = w.f.SetCellStyle(w.sheet, cell, cell, style)
}

func (w *sheetWriter) merge(from, to string) {
	if w.err == nil {
		w.err = w.f.MergeCell(w.sheet, from, to)
	}
}

func (w *sheetWriter) colWidth(col string, width float64) {
	if w.err == nil {
		w.err = w.f.SetColWidth(w.sheet, col, col, width)
	}
}

func (w *sheetWriter) rowHeight(row int, height float64) {
	if w.err == nil {
		w.err = w.f.SetRowHeight(w.sheet, row, height)
	}
}

func decimalOf(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f)
}
