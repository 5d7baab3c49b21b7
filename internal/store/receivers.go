package store

import (
	"fmt"
	"strings"

	"github.com/bonhokoo-eng/ci-generator/pkg/models"
)

// Receivers returns all saved receivers in insertion order.
func (s *Store) Receivers() []models.Receiver {
	return load[models.Receiver](s, ReceiversFile)
}

// GetReceiver finds a receiver by customer code, ignoring case.
func (s *Store) GetReceiver(customerCode string) (models.Receiver, bool) {
	code := strings.ToUpper(strings.TrimSpace(customerCode))
	for _, r := range s.Receivers() {
		if strings.ToUpper(r.CustomerCode) == code {
			return r, true
		}
	}
	return models.Receiver{}, false
}

// SaveReceiver inserts or replaces the receiver with the same customer code.
// The code is stored upper-cased.
func (s *Store) SaveReceiver(r models.Receiver) error {
	const op = "SaveReceiver"

	r.CustomerCode = strings.ToUpper(strings.TrimSpace(r.CustomerCode))
	if r.CustomerCode == "" {
		return fmt.Errorf("%s: customer_code: %w", op, ErrMissingKey)
	}

	receivers := s.Receivers()
	replaced := false
	for i, existing := range receivers {
		if strings.ToUpper(existing.CustomerCode) == r.CustomerCode {
			receivers[i] = r
			replaced = true
			break
		}
	}
	if !replaced {
		receivers = append(receivers, r)
	}

	if err := save(s, ReceiversFile, receivers); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info().Str("customer_code", r.CustomerCode).Bool("updated", replaced).Msg("Saved receiver")
	return nil
}

// DeleteReceiver removes the receiver with the given code and reports whether
// one existed.
func (s *Store) DeleteReceiver(customerCode string) (bool, error) {
	code := strings.ToUpper(strings.TrimSpace(customerCode))
	receivers := s.Receivers()
	kept := receivers[:0]
	for _, r := range receivers {
		if strings.ToUpper(r.CustomerCode) != code {
			kept = append(kept, r)
		}
	}
	if len(kept) == len(receivers) {
		return false, nil
	}
	if err := save(s, ReceiversFile, kept); err != nil {
		return false, fmt.Errorf("DeleteReceiver: %w", err)
	}
	return true, nil
}
