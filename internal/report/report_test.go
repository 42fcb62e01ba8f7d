package report

import (
	"testing"
	"time"

	"github.com/bmsprints/bmsprints/internal/models"
)

// fakeSource is a fixed ledger snapshot.
type fakeSource struct {
	orders    []models.Order
	recurring []models.RecurringCost
	oneTime   []models.OneTimeCost
}

func (f *fakeSource) Orders() []models.Order            { return f.orders }
func (f *fakeSource) Recurring() []models.RecurringCost { return f.recurring }
func (f *fakeSource) OneTime() []models.OneTimeCost     { return f.oneTime }

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func TestGenerate_RevenueExcludesUnpaid(t *testing.T) {
	src := &fakeSource{orders: []models.Order{
		{ID: 1, CreatedAt: date(2025, 3, 1), Price: 100, Qty: 2, Paid: true},
		{ID: 2, CreatedAt: date(2025, 3, 2), Price: 50, Qty: 1, Paid: false},
	}}
	res := NewEngine(src).Generate(nil, nil)
	if res.Summary.TotalOrders != 2 {
		t.Errorf("TotalOrders = %d, want 2", res.Summary.TotalOrders)
	}
	if res.Summary.PaidOrders != 1 {
		t.Errorf("PaidOrders = %d, want 1", res.Summary.PaidOrders)
	}
	if res.Summary.Revenue != 200 {
		t.Errorf("Revenue = %f, want 200 (unpaid orders contribute nothing)", res.Summary.Revenue)
	}
}

func TestGenerate_ProRatesRecurring(t *testing.T) {
	src := &fakeSource{recurring: []models.RecurringCost{{ID: 1, Name: "Rent", Amount: 300}}}
	e := NewEngine(src)

	from := date(2025, 3, 1)
	to := date(2025, 3, 10)
	res := e.Generate(&from, &to)
	if res.Summary.Days != 10 {
		t.Fatalf("Days = %d, want inclusive span 10", res.Summary.Days)
	}
	if res.Summary.RecurringForPeriod != 100 {
		t.Errorf("RecurringForPeriod = %f, want 100 (300/30*10)", res.Summary.RecurringForPeriod)
	}

	// No explicit range: 30-day default yields the full monthly amount.
	res = e.Generate(nil, nil)
	if res.Summary.Days != 30 {
		t.Fatalf("default Days = %d, want 30", res.Summary.Days)
	}
	if res.Summary.RecurringForPeriod != 300 {
		t.Errorf("default RecurringForPeriod = %f, want 300", res.Summary.RecurringForPeriod)
	}
}

func TestGenerate_DateFilterInclusive(t *testing.T) {
	src := &fakeSource{orders: []models.Order{
		{ID: 1, CreatedAt: time.Date(2025, 3, 1, 0, 30, 0, 0, time.UTC), Paid: true, Price: 10, Qty: 1},
		{ID: 2, CreatedAt: time.Date(2025, 3, 5, 23, 0, 0, 0, time.UTC), Paid: true, Price: 20, Qty: 1},
		{ID: 3, CreatedAt: time.Date(2025, 3, 6, 0, 30, 0, 0, time.UTC), Paid: true, Price: 40, Qty: 1},
	}}
	from := date(2025, 3, 1)
	to := date(2025, 3, 5)
	res := NewEngine(src).Generate(&from, &to)
	if res.Summary.TotalOrders != 2 {
		t.Fatalf("TotalOrders = %d, want 2 (bounds inclusive, day 6 excluded)", res.Summary.TotalOrders)
	}
	if res.Summary.Revenue != 30 {
		t.Errorf("Revenue = %f, want 30", res.Summary.Revenue)
	}
	if len(res.Orders) != 2 {
		t.Errorf("retained %d order rows, want 2", len(res.Orders))
	}
}

func TestGenerate_OpenEndedBounds(t *testing.T) {
	src := &fakeSource{orders: []models.Order{
		{ID: 1, CreatedAt: date(2025, 2, 1)},
		{ID: 2, CreatedAt: date(2025, 3, 1)},
	}}
	e := NewEngine(src)

	from := date(2025, 2, 15)
	res := e.Generate(&from, nil)
	if res.Summary.TotalOrders != 1 {
		t.Errorf("from-only TotalOrders = %d, want 1", res.Summary.TotalOrders)
	}
	if res.Summary.Days != 30 {
		t.Errorf("one-sided range must default Days to 30, got %d", res.Summary.Days)
	}

	to := date(2025, 2, 15)
	res = e.Generate(nil, &to)
	if res.Summary.TotalOrders != 1 {
		t.Errorf("to-only TotalOrders = %d, want 1", res.Summary.TotalOrders)
	}
}

func TestGenerate_ProfitArithmetic(t *testing.T) {
	src := &fakeSource{
		orders:    []models.Order{{ID: 1, CreatedAt: date(2025, 3, 3), Price: 500, Qty: 2, Paid: true}},
		recurring: []models.RecurringCost{{ID: 2, Name: "Rent", Amount: 300}},
		oneTime:   []models.OneTimeCost{{ID: 3, Name: "Toner", Amount: 150}},
	}
	res := NewEngine(src).Generate(nil, nil)
	if res.Summary.OneTimeTotal != 150 {
		t.Errorf("OneTimeTotal = %f", res.Summary.OneTimeTotal)
	}
	if res.Summary.TotalCosts != 450 {
		t.Errorf("TotalCosts = %f, want 450", res.Summary.TotalCosts)
	}
	if res.Summary.Profit != 550 {
		t.Errorf("Profit = %f, want 1000-450", res.Summary.Profit)
	}
}

func TestLast(t *testing.T) {
	e := NewEngine(&fakeSource{})
	if _, err := e.Last(); err != ErrNoReport {
		t.Fatalf("Last before Generate: err = %v, want ErrNoReport", err)
	}
	e.Generate(nil, nil)
	res, err := e.Last()
	if err != nil {
		t.Fatalf("Last after Generate: %v", err)
	}
	if res.GeneratedAt.IsZero() {
		t.Error("GeneratedAt not stamped")
	}
}

func TestDaySpan(t *testing.T) {
	tests := []struct {
		name   string
		lo, hi time.Time
		want   int
	}{
		{"same day", time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), 1},
		{"ten days", time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), 10},
		{"reversed clamps", time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := daySpan(tt.lo, tt.hi); got != tt.want {
				t.Errorf("daySpan = %d, want %d", got, tt.want)
			}
		})
	}
}
