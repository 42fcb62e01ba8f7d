package store

import (
	"strings"

	"github.com/spf13/cast"

	"github.com/bmsprints/bmsprints/internal/models"
)

// defaultServices is the fixed seed catalog for a fresh shop.
func defaultServices() []models.Service {
	return []models.Service{
		{ID: 1, Name: "A4 B/W Printing", Price: 50, Qty: models.UnlimitedQty, Unit: "per page", Img: "printing.jpg", Desc: "Black & white A4 printing"},
		{ID: 2, Name: "A4 Colour Printing", Price: 150, Qty: models.UnlimitedQty, Unit: "per page", Img: "printing.jpg", Desc: "Full color A4 printing"},
		{ID: 3, Name: "Photocopy (B/W)", Price: 20, Qty: models.UnlimitedQty, Unit: "per page", Img: "printing.jpg", Desc: "Photocopy per page"},
		{ID: 4, Name: "Lamination", Price: 200, Qty: models.UnlimitedQty, Unit: "per item", Img: "lamination.jpg", Desc: "Lamination service"},
	}
}

// SeedDefaults populates the catalog with the four default services when
// it is empty. Once the catalog is non-empty this is a no-op.
func (s *Store) SeedDefaults() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.services) > 0 {
		return nil
	}
	s.services = defaultServices()
	return s.db.SaveServices(s.services)
}

// ResetCatalog discards every service and reseeds the defaults.
func (s *Store) ResetCatalog() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.services = defaultServices()
	return s.db.SaveServices(s.services)
}

// AddService appends a new catalog entry and persists the catalog.
// An empty name aborts the mutation.
func (s *Store) AddService(name string, price float64, unit, img string) (models.Service, error) {
	if strings.TrimSpace(name) == "" {
		return models.Service{}, ErrNameRequired
	}
	svc := models.NewService(name, price, unit, img)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.services = append(s.services, svc)
	return svc, s.db.SaveServices(s.services)
}

// EditServiceField writes one field of the catalog entry at index and
// persists immediately. Numeric fields coerce through cast, so invalid
// input becomes 0 rather than an error.
func (s *Store) EditServiceField(index int, field, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.services) {
		return ErrIndexOutOfRange
	}
	svc := &s.services[index]
	switch field {
	case "name":
		svc.Name = value
	case "price":
		svc.Price = cast.ToFloat64(value)
		if svc.Price < 0 {
			svc.Price = 0
		}
	case "qty":
		svc.Qty = cast.ToInt(value)
	case "unit":
		svc.Unit = value
	case "img":
		svc.Img = value
	default:
		return ErrUnknownField
	}
	return s.db.SaveServices(s.services)
}

// DeleteService removes the catalog entry at index. Historical orders
// keep their snapshot fields; nothing else is touched.
func (s *Store) DeleteService(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.services) {
		return ErrIndexOutOfRange
	}
	s.services = append(s.services[:index], s.services[index+1:]...)
	return s.db.SaveServices(s.services)
}

// SaveCatalog re-persists the current catalog. Every catalog mutation
// already writes through, so this exists only to keep the explicit save
// action from the original workflow; it never changes state.
func (s *Store) SaveCatalog() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.SaveServices(s.services)
}
