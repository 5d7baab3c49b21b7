package po

import (
	"bytes"
	"errors"
	"fmt"
	"io"
)

// ReadResult is the outcome of one reader attempt. Rejected means the input
// is not this reader's format and the next reader should be tried; Err with
// Rejected false means the format matched but the content could not be read.
type ReadResult struct {
	Workbook *Workbook
	Rejected bool
	Err      error
}

func accepted(wb *Workbook) ReadResult { return ReadResult{Workbook: wb} }

func rejected(reason string) ReadResult {
	return ReadResult{Rejected: true, Err: errors.New(reason)}
}

func failed(err error) ReadResult {
	return ReadResult{Err: fmt.Errorf("%w: %w", ErrCorruptWorkbook, err)}
}

// FormatReader reads one spreadsheet format into raw sheets.
type FormatReader interface {
	Name() string
	Read(src io.ReadSeeker) ReadResult
}

// DefaultReaders returns the readers in the order they are attempted:
// zip-based workbooks, legacy binary workbooks, then delimited text.
// encoding is the preferred charset for text that is not unicode.
func DefaultReaders(encoding string) []FormatReader {
	return []FormatReader{
		XLSXReader{},
		XLSReader{Charset: encoding},
		CSVReader{Encoding: encoding},
	}
}

// ReadWorkbook tries each reader in order, rewinding src before every attempt.
// The first reader that does not reject the input decides the outcome.
func ReadWorkbook(src io.ReadSeeker, readers []FormatReader) (*Workbook, error) {
	const op = "ReadWorkbook"

	var rejections []error
	for _, r := range readers {
		if _, err := src.Seek(0, io.SeekStart); err != nil {
			return nil, fmt.Errorf("%s: rewind input: %w", op, err)
		}

		res := r.Read(src)
		if res.Rejected {
			rejections = append(rejections, &ReadError{Reader: r.Name(), Err: res.Err})
			continue
		}
		if res.Err != nil {
			return nil, fmt.Errorf("%s: %w", op, &ReadError{Reader: r.Name(), Err: res.Err})
		}
		if res.Workbook == nil || len(res.Workbook.Sheets) == 0 {
			return nil, fmt.Errorf("%s: %w", op, &ReadError{Reader: r.Name(), Err: ErrNoSheets})
		}
		res.Workbook.Format = r.Name()
		return res.Workbook, nil
	}
	return nil, fmt.Errorf("%s: %w: %w", op, ErrUnsupportedFormat, errors.Join(rejections...))
}

// hasPrefix peeks at the first bytes of src without consuming them.
func hasPrefix(src io.ReadSeeker, signature []byte) (bool, error) {
	head := make([]byte, len(signature))
	n, err := io.ReadFull(src, head)
	if _, seekErr := src.Seek(0, io.SeekStart); seekErr != nil {
		return false, seekErr
	}
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return false, err
	}
	return bytes.Equal(head[:n], signature), nil
}
