package po

import (
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/extrame/xls"

	"github.com/bonhokoo-eng/ci-generator/internal/textenc"
)

var oleSignature = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}

// XLSReader reads legacy BIFF workbooks.
type XLSReader struct {
	// Charset decodes the 8-bit strings of BIFF5 files. BIFF8 strings are
	// unicode and ignore it.
	Charset string
}

// Name implements FormatReader.
func (XLSReader) Name() string { return "xls" }

// Read implements FormatReader. The decoder panics on some malformed files,
// which is reported as a corrupt workbook.
func (r XLSReader) Read(src io.ReadSeeker) (res ReadResult) {
	ok, err := hasPrefix(src, oleSignature)
	if err != nil {
		return failed(err)
	}
	if !ok {
		return rejected("not a legacy binary workbook")
	}

	defer func() {
		if p := recover(); p != nil {
			res = failed(fmt.Errorf("decoder panic: %v", p))
		}
	}()

	charset := r.Charset
	if charset == "" {
		charset = "utf-8"
	}
	book, err := xls.OpenReader(src, charset)
	if err != nil {
		return failed(err)
	}
	if book == nil {
		return failed(errors.New("no workbook stream"))
	}

	text := func(s string) string { return s }
	if book.Is5ver {
		text = func(s string) string { return decodeLegacy(s, r.Charset) }
	}

	wb := &Workbook{}
	for i := 0; i < book.NumSheets(); i++ {
		ws := book.GetSheet(i)
		if ws == nil {
			continue
		}
		sheet := RawSheet{Name: text(ws.Name)}
		for j := 0; j <= int(ws.MaxRow); j++ {
			row := sheetRow(ws, j)
			if row == nil {
				sheet.Rows = append(sheet.Rows, nil)
				continue
			}
			raw := make([]string, row.LastCol())
			for c := row.FirstCol(); c < row.LastCol(); c++ {
				raw[c] = text(row.Col(c))
			}
			sheet.Rows = append(sheet.Rows, NewRow(raw))
		}
		wb.Sheets = append(wb.Sheets, sheet)
	}
	return accepted(wb)
}

// sheetRow returns nil for rows the file does not store. The decoder
// dereferences a missing row instead of reporting it.
func sheetRow(ws *xls.WorkSheet, j int) (row *xls.Row) {
	defer func() {
		if recover() != nil {
			row = nil
		}
	}()
	return ws.Row(j)
}

// decodeLegacy converts a BIFF5 byte string to UTF-8. Text that is already
// valid UTF-8 or cannot be decoded is returned unchanged.
func decodeLegacy(s, charset string) string {
	if utf8.ValidString(s) {
		return s
	}
	decoded, _, err := textenc.Decode([]byte(s), charset)
	if err != nil {
		return s
	}
	return decoded
}
