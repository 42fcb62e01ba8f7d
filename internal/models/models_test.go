package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestNewService_Defaults(t *testing.T) {
	s := NewService("  Lamination ", 200, " per item ", "")
	if s.Name != "Lamination" {
		t.Errorf("Name = %q, want trimmed", s.Name)
	}
	if s.Qty != UnlimitedQty {
		t.Errorf("Qty = %d, want unlimited sentinel %d", s.Qty, UnlimitedQty)
	}
	if s.Unit != "per item" {
		t.Errorf("Unit = %q", s.Unit)
	}
	if s.Desc != "" {
		t.Errorf("Desc = %q, want empty", s.Desc)
	}
	if s.ID == 0 {
		t.Error("ID not generated")
	}
}

func TestNewService_NegativePriceClamps(t *testing.T) {
	s := NewService("X", -5, "", "")
	if s.Price != 0 {
		t.Errorf("Price = %f, want 0", s.Price)
	}
}

func TestService_ImageFallback(t *testing.T) {
	if got := (Service{}).Image(); got != FallbackImage {
		t.Errorf("Image() = %q, want %q", got, FallbackImage)
	}
	if got := (Service{Img: "lamination.jpg"}).Image(); got != "lamination.jpg" {
		t.Errorf("Image() = %q", got)
	}
}

func TestNewOrder_Snapshot(t *testing.T) {
	svc := Service{ID: 7, Name: "A4 B/W Printing", Price: 50}
	o := NewOrder("", svc, 0)
	if o.Customer != DefaultCustomer {
		t.Errorf("Customer = %q, want %q", o.Customer, DefaultCustomer)
	}
	if o.Qty != 1 {
		t.Errorf("Qty = %d, want clamp to 1", o.Qty)
	}
	if o.ServiceID != 7 || o.ServiceName != "A4 B/W Printing" || o.Price != 50 {
		t.Errorf("snapshot fields = %d %q %f", o.ServiceID, o.ServiceName, o.Price)
	}
	if o.Paid {
		t.Error("new order must start unpaid")
	}
	if time.Since(o.CreatedAt) > time.Minute {
		t.Errorf("CreatedAt = %v, want recent", o.CreatedAt)
	}
}

func TestOrder_Total(t *testing.T) {
	tests := []struct {
		name  string
		price float64
		qty   int
		want  float64
	}{
		{"single page", 50, 1, 50},
		{"many pages", 150, 12, 1800},
		{"zero price", 0, 4, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := Order{Price: tt.price, Qty: tt.qty}
			if got := o.Total(); got != tt.want {
				t.Errorf("Total() = %f, want %f", got, tt.want)
			}
		})
	}
}

func TestNewID_Unique(t *testing.T) {
	seen := make(map[int64]bool)
	for i := 0; i < 1000; i++ {
		id := NewID()
		if seen[id] {
			t.Fatalf("duplicate id %d", id)
		}
		seen[id] = true
	}
}

func TestOrder_JSONFieldNames(t *testing.T) {
	// The storage interchange format fixes these names; a rename breaks
	// every persisted ledger.
	o := Order{ID: 1, Customer: "c", ServiceID: 2, ServiceName: "s"}
	b, err := json.Marshal(o)
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"id", "createdAt", "customer", "serviceId", "serviceName", "price", "qty", "paid"} {
		if _, ok := m[key]; !ok {
			t.Errorf("missing field %q in %s", key, b)
		}
	}
}
