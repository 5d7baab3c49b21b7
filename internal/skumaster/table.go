// Package skumaster holds the in-memory SKU master table used to enrich and
// check purchase order rows.
//
// The table is loaded from exactly one source at a time: a local CSV file, an
// uploaded CSV byte buffer, or a remote spreadsheet snapshot. A load builds a
// complete new snapshot and swaps it in atomically; a failed load leaves the
// previous snapshot untouched, so readers never observe a partial table.
package skumaster

import (
	"strings"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/bonhokoo-eng/ci-generator/internal/logger"
	"github.com/bonhokoo-eng/ci-generator/pkg/models"
)

// Source tags where the current table came from.
type Source string

const (
	SourceNone   Source = ""
	SourceLocal  Source = "local"
	SourceUpload Source = "upload"
	SourceSheet  Source = "gsheet"
)

// UnsellableStatus marks variants excluded from ActiveProducts.
const UnsellableStatus = "판매불가"

// snapshot is immutable once published.
type snapshot struct {
	records   []models.ProductRecord
	bySKU     map[string]int
	byBarcode map[string]int
	source    Source
	loadedAt  time.Time
}

func newSnapshot(records []models.ProductRecord, source Source, loadedAt time.Time) *snapshot {
	s := &snapshot{
		records:   records,
		bySKU:     make(map[string]int, len(records)),
		byBarcode: make(map[string]int, len(records)),
		source:    source,
		loadedAt:  loadedAt,
	}
	// First occurrence wins for duplicate keys, matching table order.
	for i, r := range records {
		if r.SKUID != "" {
			if _, ok := s.bySKU[r.SKUID]; !ok {
				s.bySKU[r.SKUID] = i
			}
		}
		if r.Barcode != "" {
			if _, ok := s.byBarcode[r.Barcode]; !ok {
				s.byBarcode[r.Barcode] = i
			}
		}
	}
	return s
}

// Table is the SKU lookup table. The zero value is not usable; call NewTable.
type Table struct {
	current atomic.Pointer[snapshot]
	now     func() time.Time
	log     zerolog.Logger
}

// NewTable returns an empty table.
func NewTable() *Table {
	t := &Table{
		now: time.Now,
		log: logger.WithComponent("skumaster"),
	}
	t.current.Store(newSnapshot(nil, SourceNone, time.Time{}))
	return t
}

// Replace publishes records as the new table contents.
func (t *Table) Replace(records []models.ProductRecord, source Source) {
	t.current.Store(newSnapshot(records, source, t.now()))
	t.log.Info().
		Str("source", string(source)).
		Int("records", len(records)).
		Msg("SKU master table replaced")
}

// IsLoaded reports whether the table holds at least one record.
func (t *Table) IsLoaded() bool {
	return len(t.current.Load().records) > 0
}

// Len returns the number of records.
func (t *Table) Len() int {
	return len(t.current.Load().records)
}

// Source reports the origin of the current table and when it was loaded.
func (t *Table) Source() (Source, time.Time) {
	s := t.current.Load()
	return s.source, s.loadedAt
}

// Search returns up to limit records whose SKU code, barcode, short name or
// product name contains query, case-insensitively, in table order. Records
// with an empty SKU code are never returned.
func (t *Table) Search(query string, limit int) []models.ProductRecord {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" || limit <= 0 {
		return nil
	}

	s := t.current.Load()
	var results []models.ProductRecord
	for _, r := range s.records {
		if r.SKUID == "" {
			continue
		}
		if strings.Contains(strings.ToLower(r.SKUID), q) ||
			strings.Contains(strings.ToLower(r.Barcode), q) ||
			strings.Contains(strings.ToLower(r.VariantName), q) ||
			strings.Contains(strings.ToLower(r.ProductName), q) {
			results = append(results, r)
			if len(results) == limit {
				break
			}
		}
	}
	return results
}

// GetBySKU looks up a record by exact SKU code.
func (t *Table) GetBySKU(skuID string) (models.ProductRecord, bool) {
	s := t.current.Load()
	i, ok := s.bySKU[skuID]
	if !ok || skuID == "" {
		return models.ProductRecord{}, false
	}
	return s.records[i], true
}

// GetByBarcode looks up a record by barcode. The argument is normalized the
// same way barcodes are at load time, so "8809891185139.0" finds "8809891185139".
func (t *Table) GetByBarcode(barcode string) (models.ProductRecord, bool) {
	key := NormalizeBarcode(barcode)
	if key == "" {
		return models.ProductRecord{}, false
	}
	s := t.current.Load()
	i, ok := s.byBarcode[key]
	if !ok {
		return models.ProductRecord{}, false
	}
	return s.records[i], true
}

// ActiveProducts lists up to limit records with a SKU code whose status is not unsellable.
func (t *Table) ActiveProducts(limit int) []models.ProductRecord {
	s := t.current.Load()
	var results []models.ProductRecord
	for _, r := range s.records {
		if len(results) >= limit {
			break
		}
		if r.SKUID == "" || r.Status == UnsellableStatus {
			continue
		}
		results = append(results, r)
	}
	return results
}
