package po

import (
	"io"

	"github.com/xuri/excelize/v2"
)

var zipSignature = []byte{'P', 'K', 0x03, 0x04}

// XLSXReader reads Office Open XML workbooks.
type XLSXReader struct{}

// Name implements FormatReader.
func (XLSXReader) Name() string { return "xlsx" }

// Read implements FormatReader.
func (XLSXReader) Read(src io.ReadSeeker) ReadResult {
	ok, err := hasPrefix(src, zipSignature)
	if err != nil {
		return failed(err)
	}
	if !ok {
		return rejected("not a zip-based workbook")
	}

	f, err := excelize.OpenReader(src)
	if err != nil {
		return failed(err)
	}
	defer f.Close()

	wb := &Workbook{}
	for _, name := range f.GetSheetList() {
		// Raw values keep barcodes and quantities free of display formatting.
		rows, err := f.GetRows(name, excelize.Options{RawCellValue: true})
		if err != nil {
			return failed(err)
		}
		sheet := RawSheet{Name: name, Rows: make([][]Cell, len(rows))}
		for i, row := range rows {
			sheet.Rows[i] = NewRow(row)
		}
		wb.Sheets = append(wb.Sheets, sheet)
	}
	return accepted(wb)
}
