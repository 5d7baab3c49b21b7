package po

import (
	"bytes"
	"encoding/csv"
	"io"
	"strings"

	"github.com/bonhokoo-eng/ci-generator/internal/textenc"
)

// CSVReader reads delimited text as a single-sheet workbook.
type CSVReader struct {
	// Encoding is tried before the default encodings.
	Encoding string
}

// Name implements FormatReader.
func (CSVReader) Name() string { return "csv" }

// Read implements FormatReader. Input containing NUL bytes is treated as
// binary and rejected.
func (r CSVReader) Read(src io.ReadSeeker) ReadResult {
	data, err := io.ReadAll(src)
	if err != nil {
		return failed(err)
	}
	if len(data) == 0 || bytes.IndexByte(data, 0) >= 0 {
		return rejected("not delimited text")
	}

	text, _, err := textenc.Decode(data, r.Encoding)
	if err != nil {
		return rejected(err.Error())
	}

	cr := csv.NewReader(strings.NewReader(text))
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	records, err := cr.ReadAll()
	if err != nil {
		return failed(err)
	}

	sheet := RawSheet{Name: "Sheet1", Rows: make([][]Cell, len(records))}
	for i, rec := range records {
		sheet.Rows[i] = NewRow(rec)
	}
	return accepted(&Workbook{Sheets: []RawSheet{sheet}})
}
