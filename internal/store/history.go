package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/bonhokoo-eng/ci-generator/internal/invoice"
	"github.com/bonhokoo-eng/ci-generator/pkg/models"
)

// AllHistory returns every stored history entry, oldest first.
func (s *Store) AllHistory() []models.HistoryEntry {
	return load[models.HistoryEntry](s, HistoryFile)
}

// History returns the most recent limit entries, oldest first.
func (s *Store) History(limit int) []models.HistoryEntry {
	all := s.AllHistory()
	if limit <= 0 {
		return nil
	}
	if len(all) > limit {
		all = all[len(all)-limit:]
	}
	return all
}

// AppendHistory adds an entry, assigning an ID and creation time, and trims
// the log to the newest MaxHistory entries.
func (s *Store) AppendHistory(e models.HistoryEntry) (models.HistoryEntry, error) {
	const op = "AppendHistory"

	if e.InvoiceNo == "" {
		return models.HistoryEntry{}, fmt.Errorf("%s: invoice_no: %w", op, ErrMissingKey)
	}
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = s.now()
	}

	all := append(s.AllHistory(), e)
	if len(all) > MaxHistory {
		all = all[len(all)-MaxHistory:]
	}
	if err := save(s, HistoryFile, all); err != nil {
		return models.HistoryEntry{}, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info().Str("invoice_no", e.InvoiceNo).Str("id", e.ID).Msg("Recorded invoice history")
	return e, nil
}

// NextSequence returns the next invoice sequence for a customer and date.
func (s *Store) NextSequence(customerCode string, date time.Time) int {
	return invoice.NextSequence(customerCode, date, s.AllHistory())
}
