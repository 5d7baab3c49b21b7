package sheets

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/bonhokoo-eng/ci-generator/internal/logger"
)

// RangeReader is the part of Service a snapshot needs.
type RangeReader interface {
	ReadRange(ctx context.Context, rangeSpec string) ([][]interface{}, error)
}

// Snapshot serves the whole content of one worksheet as string rows and keeps
// the last fetch for ttl, so repeated lookups do not hit the API.
type Snapshot struct {
	reader    RangeReader
	worksheet string
	ttl       time.Duration
	now       func() time.Time
	log       zerolog.Logger

	mu        sync.Mutex
	rows      [][]string
	fetchedAt time.Time
}

// NewSnapshot creates a cached worksheet snapshot. A ttl of zero disables caching.
func NewSnapshot(reader RangeReader, worksheet string, ttl time.Duration) *Snapshot {
	return &Snapshot{
		reader:    reader,
		worksheet: worksheet,
		ttl:       ttl,
		now:       time.Now,
		log:       logger.WithComponent("sheets-snapshot"),
	}
}

// Rows returns the worksheet rows, header first.
func (s *Snapshot) Rows(ctx context.Context) ([][]string, error) {
	const op = "Snapshot.Rows"

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.rows != nil && s.ttl > 0 && s.now().Sub(s.fetchedAt) < s.ttl {
		s.log.Debug().
			Str("worksheet", s.worksheet).
			Time("fetched_at", s.fetchedAt).
			Msg("Serving cached worksheet snapshot")
		return s.rows, nil
	}

	values, err := s.reader.ReadRange(ctx, quoteSheetName(s.worksheet))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows := make([][]string, len(values))
	for i, row := range values {
		rows[i] = make([]string, len(row))
		for j, v := range row {
			rows[i][j] = cellString(v)
		}
	}

	s.rows = rows
	s.fetchedAt = s.now()

	s.log.Info().
		Str("worksheet", s.worksheet).
		Int("rows", len(rows)).
		Msg("Fetched worksheet snapshot")

	return rows, nil
}

// Invalidate drops the cached rows so the next Rows call refetches.
func (s *Snapshot) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows = nil
}

// quoteSheetName builds an A1 range covering the whole worksheet.
func quoteSheetName(name string) string {
	return "'" + strings.ReplaceAll(name, "'", "''") + "'"
}

func cellString(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprintf("%v", t)
	}
}
