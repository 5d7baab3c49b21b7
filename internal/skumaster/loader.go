package skumaster

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/bonhokoo-eng/ci-generator/internal/textenc"
	"github.com/bonhokoo-eng/ci-generator/pkg/models"
	"github.com/bonhokoo-eng/ci-generator/pkg/services"
)

// Master column names as exported by the product database.
const (
	colSKU          = "variant_code"
	colBarcode      = "barcode"
	colVariantName  = "variant_name"
	colProductName  = "product_name"
	colDescription  = "variant_full_name"
	colManufacturer = "manufacturer"
	colStatus       = "variant_status"
	colHSCode       = "hs_code"
)

// LoadFile replaces the table from a local CSV file. encoding is tried first
// when set, then UTF-8 and CP949.
func (t *Table) LoadFile(path, encoding string) error {
	const op = "LoadFile"

	data, err := os.ReadFile(path)
	if err != nil {
		return &LoadError{Op: op, Source: path, Err: fmt.Errorf("%w: %w", ErrUnreadableSource, err)}
	}
	return t.loadCSV(op, path, data, encoding, SourceLocal)
}

// LoadBytes replaces the table from an uploaded CSV buffer.
func (t *Table) LoadBytes(data []byte, encoding string) error {
	const op = "LoadBytes"
	return t.loadCSV(op, "upload", data, encoding, SourceUpload)
}

// LoadRemote replaces the table from a remote spreadsheet snapshot.
func (t *Table) LoadRemote(ctx context.Context, src services.RowSource) error {
	const op = "LoadRemote"

	rows, err := src.Rows(ctx)
	if err != nil {
		return &LoadError{Op: op, Source: string(SourceSheet), Err: fmt.Errorf("%w: %w", ErrUnreadableSource, err)}
	}
	records, err := recordsFromRows(rows)
	if err != nil {
		return &LoadError{Op: op, Source: string(SourceSheet), Err: err}
	}
	t.Replace(records, SourceSheet)
	return nil
}

func (t *Table) loadCSV(op, name string, data []byte, encoding string, source Source) error {
	if len(data) == 0 {
		return &LoadError{Op: op, Source: name, Err: ErrUnreadableSource}
	}

	text, used, err := textenc.Decode(data, encoding)
	if err != nil {
		return &LoadError{Op: op, Source: name, Err: fmt.Errorf("%w: %w", ErrUnreadableSource, err)}
	}

	r := csv.NewReader(strings.NewReader(text))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	rows, err := r.ReadAll()
	if err != nil {
		return &LoadError{Op: op, Source: name, Err: fmt.Errorf("%w: %w", ErrUnreadableSource, err)}
	}

	records, err := recordsFromRows(rows)
	if err != nil {
		return &LoadError{Op: op, Source: name, Err: err}
	}

	t.log.Debug().Str("source", name).Str("encoding", used).Msg("Decoded SKU master CSV")
	t.Replace(records, source)
	return nil
}

// recordsFromRows maps a header-first table to product records. Only the
// product code column is required.
func recordsFromRows(rows [][]string) ([]models.ProductRecord, error) {
	if len(rows) == 0 {
		return nil, ErrEmptySource
	}

	index := make(map[string]int)
	for i, name := range rows[0] {
		key := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		if _, dup := index[key]; !dup {
			index[key] = i
		}
	}
	if _, ok := index[colSKU]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, colSKU)
	}

	get := func(row []string, col string) string {
		i, ok := index[col]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	records := make([]models.ProductRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if isBlankRow(row) {
			continue
		}
		records = append(records, models.ProductRecord{
			SKUID:        get(row, colSKU),
			Barcode:      NormalizeBarcode(get(row, colBarcode)),
			Description:  get(row, colDescription),
			ProductName:  get(row, colProductName),
			VariantName:  get(row, colVariantName),
			Manufacturer: get(row, colManufacturer),
			Status:       get(row, colStatus),
			HSCode:       get(row, colHSCode),
		})
	}
	if len(records) == 0 {
		return nil, ErrEmptySource
	}
	return records, nil
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// IsUnreadable reports whether err means the source could not be read at all.
func IsUnreadable(err error) bool {
	return errors.Is(err, ErrUnreadableSource)
}
