// Package po reads purchase order spreadsheets whose layout is not known in
// advance and turns them into invoice-ready line items.
//
// Parsing runs in four steps:
//   - the file is read by the first format reader that accepts it (xlsx, xls, csv)
//   - a sheet is chosen: the requested one, else the first that looks like a PO
//   - the header row is located and columns are matched against candidate names
//   - rows are extracted and joined against the SKU master
//
// Parse never returns an error. Every failure, from an unreadable file to a
// missing mandatory column, is reported as a Message in the Result so callers
// can always show a diagnostic.
package po

import (
	"bytes"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/bonhokoo-eng/ci-generator/internal/logger"
	"github.com/bonhokoo-eng/ci-generator/pkg/models"
	"github.com/bonhokoo-eng/ci-generator/pkg/services"
)

// Options controls which optional values are carried into the items.
type Options struct {
	// IncludePrice keeps unit price, amount and currency. When false they are zero and empty.
	IncludePrice bool
	// IncludeHSCode reads the PO's HS code column. The SKU master HS code is used either way.
	IncludeHSCode bool
	// IncludeNameKR copies the Korean name column into NameKR.
	IncludeNameKR bool
	// Sheet selects a sheet by name. Empty means scan for the first PO-like sheet.
	Sheet string
}

// DefaultOptions returns the options used when the caller has no preference.
func DefaultOptions() Options {
	return Options{
		IncludePrice:  true,
		IncludeHSCode: true,
	}
}

// Result is the outcome of parsing one PO file.
type Result struct {
	Items     []models.ParsedLineItem `json:"items"`
	Messages  []Message               `json:"messages"`
	Mapping   ColumnMapping           `json:"-"`
	HeaderRow int                     `json:"header_row"`
	Sheet     string                  `json:"sheet"`
}

// HasFatal reports whether parsing failed outright.
func (r Result) HasFatal() bool {
	for _, m := range r.Messages {
		if m.Severity == SeverityFatal {
			return true
		}
	}
	return false
}

// Warnings returns the warning-level messages.
func (r Result) Warnings() []Message {
	var out []Message
	for _, m := range r.Messages {
		if m.Severity == SeverityWarning {
			out = append(out, m)
		}
	}
	return out
}

// Parser reads PO files.
type Parser struct {
	readers    []FormatReader
	candidates Candidates
	extractor  *Extractor
	log        zerolog.Logger
}

// ParserOption customizes a Parser.
type ParserOption func(*Parser)

// WithReaders replaces the ordered format readers.
func WithReaders(readers ...FormatReader) ParserOption {
	return func(p *Parser) { p.readers = readers }
}

// WithCandidates replaces the header candidate lists.
func WithCandidates(c Candidates) ParserOption {
	return func(p *Parser) { p.candidates = c }
}

// NewParser creates a Parser that joins rows against catalog.
func NewParser(catalog services.ProductCatalog, opts ...ParserOption) *Parser {
	p := &Parser{
		readers:    DefaultReaders(""),
		candidates: DefaultCandidates(),
		extractor:  NewExtractor(catalog),
		log:        logger.WithComponent("po-parser"),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ParseFile parses the PO at path.
func (p *Parser) ParseFile(path string, opts Options) Result {
	f, err := os.Open(path)
	if err != nil {
		var msgs messageLog
		msgs.fatalf("cannot open %s: %v", path, err)
		return Result{Messages: msgs}
	}
	defer f.Close()
	return p.Parse(f, opts)
}

// ParseBytes parses an uploaded PO held in memory.
func (p *Parser) ParseBytes(data []byte, opts Options) Result {
	return p.Parse(bytes.NewReader(data), opts)
}

// Parse parses a PO from any seekable stream.
func (p *Parser) Parse(src io.ReadSeeker, opts Options) Result {
	var msgs messageLog

	// Read the workbook with the first reader that accepts it
	wb, err := ReadWorkbook(src, p.readers)
	if err != nil {
		p.log.Error().Err(err).Msg("Failed to read purchase order")
		msgs.fatalf("parse error: %v", err)
		return Result{Messages: msgs}
	}

	// Locate the sheet and its header row
	sheet := p.selectSheet(wb, opts, &msgs)
	headerRow, found := FindHeaderRow(sheet, p.candidates[FieldSKU])
	msgs.infof("header row detected: row %d", headerRow+1)
	if !found {
		p.log.Debug().Str("sheet", sheet.Name).Msg("No SKU header found, using first row")
	}

	// Resolve columns
	mapping := ResolveColumns(HeaderNames(sheet, headerRow), p.candidates)

	p.log.Info().
		Str("format", wb.Format).
		Str("sheet", sheet.Name).
		Int("header_row", headerRow+1).
		Int("resolved_columns", len(mapping)).
		Msg("Resolved purchase order layout")

	// Extract line items
	items, extracted := p.extractor.Extract(sheet, headerRow, mapping, opts)
	msgs = append(msgs, extracted...)

	return Result{
		Items:     items,
		Messages:  msgs,
		Mapping:   mapping,
		HeaderRow: headerRow,
		Sheet:     sheet.Name,
	}
}

// selectSheet returns the requested sheet when it exists, otherwise the first
// sheet carrying a SKU header, otherwise the first sheet.
func (p *Parser) selectSheet(wb *Workbook, opts Options, msgs *messageLog) RawSheet {
	if opts.Sheet != "" {
		if s, ok := wb.Sheet(opts.Sheet); ok {
			return s
		}
		msgs.warnf("sheet %q not found, scanning all sheets", opts.Sheet)
	}

	first := wb.Sheets[0]
	if hasSKUHeader(first, p.candidates[FieldSKU]) {
		return first
	}
	for _, s := range wb.Sheets[1:] {
		if hasSKUHeader(s, p.candidates[FieldSKU]) {
			msgs.infof("using sheet %q", s.Name)
			return s
		}
	}
	return first
}
