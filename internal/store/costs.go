package store

import (
	"strings"

	"github.com/bmsprints/bmsprints/internal/models"
)

// AddRecurring appends a monthly-cadence cost and persists the list.
func (s *Store) AddRecurring(name string, amount float64) (models.RecurringCost, error) {
	if strings.TrimSpace(name) == "" {
		return models.RecurringCost{}, ErrNameRequired
	}
	c := models.NewRecurringCost(name, amount)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recurring = append(s.recurring, c)
	return c, s.db.SaveRecurring(s.recurring)
}

// RemoveRecurring drops the recurring cost with the given id.
func (s *Store) RemoveRecurring(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.recurring[:0]
	for _, c := range s.recurring {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	s.recurring = kept
	return s.db.SaveRecurring(s.recurring)
}

// AddOneTime appends a session-only cost. One-time costs never reach
// storage; they exist to adjust whichever report is generated next.
func (s *Store) AddOneTime(name string, amount float64) (models.OneTimeCost, error) {
	if strings.TrimSpace(name) == "" {
		return models.OneTimeCost{}, ErrNameRequired
	}
	c := models.NewOneTimeCost(name, amount)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.oneTime = append(s.oneTime, c)
	return c, nil
}

// RemoveOneTime drops the one-time cost with the given id.
func (s *Store) RemoveOneTime(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.oneTime[:0]
	for _, c := range s.oneTime {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	s.oneTime = kept
}
