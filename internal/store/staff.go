package store

import (
	"fmt"
	"strings"

	"github.com/bonhokoo-eng/ci-generator/pkg/models"
)

// StaffList returns all saved staff.
func (s *Store) StaffList() []models.Staff {
	return load[models.Staff](s, StaffFile)
}

// StaffByName finds staff by exact name.
func (s *Store) StaffByName(name string) (models.Staff, bool) {
	for _, st := range s.StaffList() {
		if st.Name == name {
			return st, true
		}
	}
	return models.Staff{}, false
}

// StaffByEmail finds staff by email, ignoring case.
func (s *Store) StaffByEmail(email string) (models.Staff, bool) {
	for _, st := range s.StaffList() {
		if strings.EqualFold(st.Email, strings.TrimSpace(email)) {
			return st, true
		}
	}
	return models.Staff{}, false
}

// FindStaff looks up by email when the query contains "@", otherwise by name.
func (s *Store) FindStaff(nameOrEmail string) (models.Staff, bool) {
	if strings.Contains(nameOrEmail, "@") {
		return s.StaffByEmail(nameOrEmail)
	}
	return s.StaffByName(nameOrEmail)
}

// SaveStaff inserts or replaces the staff member with the same email.
func (s *Store) SaveStaff(st models.Staff) error {
	const op = "SaveStaff"

	st.Email = strings.TrimSpace(st.Email)
	if st.Email == "" {
		return fmt.Errorf("%s: email: %w", op, ErrMissingKey)
	}

	list := s.StaffList()
	replaced := false
	for i, existing := range list {
		if strings.EqualFold(existing.Email, st.Email) {
			list[i] = st
			replaced = true
			break
		}
	}
	if !replaced {
		list = append(list, st)
	}

	if err := save(s, StaffFile, list); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// DeleteStaff removes the staff member with the given email.
func (s *Store) DeleteStaff(email string) (bool, error) {
	list := s.StaffList()
	kept := list[:0]
	for _, st := range list {
		if !strings.EqualFold(st.Email, strings.TrimSpace(email)) {
			kept = append(kept, st)
		}
	}
	if len(kept) == len(list) {
		return false, nil
	}
	if err := save(s, StaffFile, kept); err != nil {
		return false, fmt.Errorf("DeleteStaff: %w", err)
	}
	return true, nil
}
