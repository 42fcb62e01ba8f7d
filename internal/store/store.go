// Package store holds the shop's in-memory state behind one explicit
// object: the service catalog, the order ledger, the persisted recurring
// costs and the session-only one-time costs. Handlers receive the store
// as a dependency; there are no package-level record lists.
package store

import (
	"errors"
	"sync"

	"github.com/bmsprints/bmsprints/internal/models"
	"github.com/bmsprints/bmsprints/internal/storage"
)

var (
	// ErrNameRequired rejects a mutation whose required name is blank.
	ErrNameRequired = errors.New("name is required")
	// ErrNoService is returned when an order references an unknown service.
	ErrNoService = errors.New("no service selected")
	// ErrIndexOutOfRange is returned for index-addressed mutations that
	// miss the list.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrUnknownField rejects an edit to a field the catalog doesn't have.
	ErrUnknownField = errors.New("unknown field")
)

// Store is the single shared state object. Each mutation updates the
// in-memory list and writes it through to storage before returning; a
// mutation either fully applies or not at all.
type Store struct {
	mu sync.Mutex
	db *storage.DB

	services  []models.Service
	orders    []models.Order
	recurring []models.RecurringCost
	oneTime   []models.OneTimeCost
}

// New loads all persisted lists from db. One-time costs always start
// empty; they live only for the process lifetime.
func New(db *storage.DB) *Store {
	s := &Store{db: db, oneTime: []models.OneTimeCost{}}
	s.services, s.orders, s.recurring = db.LoadAll()
	return s
}

// Services returns a copy of the catalog.
func (s *Store) Services() []models.Service {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Service(nil), s.services...)
}

// ServiceByID looks a service up by id.
func (s *Store) ServiceByID(id int64) (models.Service, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, svc := range s.services {
		if svc.ID == id {
			return svc, true
		}
	}
	return models.Service{}, false
}

// Orders returns a copy of the ledger, newest first.
func (s *Store) Orders() []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Order(nil), s.orders...)
}

// Recurring returns a copy of the persisted recurring costs.
func (s *Store) Recurring() []models.RecurringCost {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.RecurringCost(nil), s.recurring...)
}

// OneTime returns a copy of the session's one-time costs.
func (s *Store) OneTime() []models.OneTimeCost {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.OneTimeCost(nil), s.oneTime...)
}
