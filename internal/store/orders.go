package store

import "github.com/bmsprints/bmsprints/internal/models"

// AddOrder records a new order against the service with the given id,
// snapshotting its name and price. The order is prepended so the newest
// entry is always first. An unknown service id aborts the mutation.
func (s *Store) AddOrder(customer string, serviceID int64, qty int) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var svc *models.Service
	for i := range s.services {
		if s.services[i].ID == serviceID {
			svc = &s.services[i]
			break
		}
	}
	if svc == nil {
		return models.Order{}, ErrNoService
	}
	o := models.NewOrder(customer, *svc, qty)
	s.orders = append([]models.Order{o}, s.orders...)
	return o, s.db.SaveOrders(s.orders)
}

// TogglePaid flips the paid flag of the order at index.
func (s *Store) TogglePaid(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.orders) {
		return ErrIndexOutOfRange
	}
	s.orders[index].Paid = !s.orders[index].Paid
	return s.db.SaveOrders(s.orders)
}

// DeleteOrder removes the order at index.
func (s *Store) DeleteOrder(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.orders) {
		return ErrIndexOutOfRange
	}
	s.orders = append(s.orders[:index], s.orders[index+1:]...)
	return s.db.SaveOrders(s.orders)
}
