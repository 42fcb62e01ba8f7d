package models

import (
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
)

const (
	// UnlimitedQty is the stock sentinel for services that are not
	// quantity-tracked; print jobs are effectively unbounded.
	UnlimitedQty = 9999

	// FallbackImage is shown for services without an image of their own.
	FallbackImage = "printing.jpg"

	// DefaultCustomer is used when an order is placed without a name.
	DefaultCustomer = "Walk-in"
)

var node *snowflake.Node

func init() {
	n, err := snowflake.NewNode(1)
	if err != nil {
		panic("models: snowflake node: " + err.Error())
	}
	node = n
}

// NewID returns a time-ordered unique identifier. IDs are unique within
// any list at insertion time and sort by creation order.
func NewID() int64 { return node.Generate().Int64() }

// Service is a catalog entry. Field names are fixed by the storage
// interchange format; changing one requires a new storage key.
type Service struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Qty   int     `json:"qty"`
	Unit  string  `json:"unit"`
	Img   string  `json:"img"`
	Desc  string  `json:"desc"`
}

// NewService builds a catalog entry with the documented coercions:
// negative price clamps to 0, stock fixed at the unlimited sentinel.
func NewService(name string, price float64, unit, img string) Service {
	if price < 0 {
		price = 0
	}
	return Service{
		ID:    NewID(),
		Name:  strings.TrimSpace(name),
		Price: price,
		Qty:   UnlimitedQty,
		Unit:  strings.TrimSpace(unit),
		Img:   strings.TrimSpace(img),
	}
}

// Image returns the service image, falling back to the shared default.
func (s Service) Image() string {
	if s.Img == "" {
		return FallbackImage
	}
	return s.Img
}

// Order is one ledger entry. ServiceName and Price are snapshots of the
// catalog entry at order time, so later catalog edits never change
// historical rows.
type Order struct {
	ID          int64     `json:"id"`
	CreatedAt   time.Time `json:"createdAt"`
	Customer    string    `json:"customer"`
	ServiceID   int64     `json:"serviceId"`
	ServiceName string    `json:"serviceName"`
	Price       float64   `json:"price"`
	Qty         int       `json:"qty"`
	Paid        bool      `json:"paid"`
}

// NewOrder snapshots the given service into a fresh unpaid order.
// Quantity clamps to a minimum of 1; a blank customer becomes Walk-in.
func NewOrder(customer string, svc Service, qty int) Order {
	customer = strings.TrimSpace(customer)
	if customer == "" {
		customer = DefaultCustomer
	}
	if qty < 1 {
		qty = 1
	}
	return Order{
		ID:          NewID(),
		CreatedAt:   time.Now(),
		Customer:    customer,
		ServiceID:   svc.ID,
		ServiceName: svc.Name,
		Price:       svc.Price,
		Qty:         qty,
	}
}

// Total is always derived from the snapshot fields, never stored and
// never re-read from the live catalog.
func (o Order) Total() float64 { return o.Price * float64(o.Qty) }

// RecurringCost is a persisted monthly-cadence cost.
type RecurringCost struct {
	ID     int64   `json:"id"`
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

func NewRecurringCost(name string, amount float64) RecurringCost {
	return RecurringCost{ID: NewID(), Name: strings.TrimSpace(name), Amount: amount}
}

// OneTimeCost is a session-scoped scratch adjustment for the next report
// run. It is never persisted and resets on process start.
type OneTimeCost struct {
	ID     int64   `json:"id"`
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

func NewOneTimeCost(name string, amount float64) OneTimeCost {
	return OneTimeCost{ID: NewID(), Name: strings.TrimSpace(name), Amount: amount}
}

// ReportSummary is the ephemeral result of one report run.
type ReportSummary struct {
	TotalOrders        int     `json:"totalOrders"`
	PaidOrders         int     `json:"paidOrders"`
	Revenue            float64 `json:"revenue"`
	RecurringForPeriod float64 `json:"recurringForPeriod"`
	OneTimeTotal       float64 `json:"oneTimeTotal"`
	TotalCosts         float64 `json:"totalCosts"`
	Profit             float64 `json:"profit"`
	Days               int     `json:"days"`
}
