// Package report derives the profit rollup from the order and cost
// ledgers. The engine reads the store, never mutates it, and retains the
// last generated result so it can be exported afterwards.
package report

import (
	"errors"
	"math"
	"sync"
	"time"

	"github.com/bmsprints/bmsprints/internal/models"
)

// ErrNoReport is returned when export is requested before any report has
// been generated.
var ErrNoReport = errors.New("generate report first")

// defaultDays is the assumed period length when no explicit date range is
// given; it also anchors the daily rate for pro-rating monthly costs.
const defaultDays = 30

// Result is one report run: the summary plus the filtered order rows it
// was computed from, kept for export.
type Result struct {
	Summary     models.ReportSummary
	Orders      []models.Order
	GeneratedAt time.Time
}

// Source is the read-only view of the ledgers the engine needs.
// *store.Store satisfies it.
type Source interface {
	Orders() []models.Order
	Recurring() []models.RecurringCost
	OneTime() []models.OneTimeCost
}

// Engine computes reports over a ledger source.
type Engine struct {
	mu   sync.Mutex
	st   Source
	last *Result
}

func NewEngine(st Source) *Engine { return &Engine{st: st} }

// Generate filters the ledger to [from, to] (inclusive, start-of-day to
// end-of-day, missing bound unbounded) and computes the rollup:
// revenue counts paid orders only, recurring costs pro-rate from a 30-day
// month to the period length, one-time costs apply as-is.
func (e *Engine) Generate(from, to *time.Time) Result {
	var lo, hi time.Time
	if from != nil {
		lo = startOfDay(*from)
	}
	if to != nil {
		hi = startOfDay(*to).Add(24*time.Hour - time.Second)
	}

	var filtered []models.Order
	for _, o := range e.st.Orders() {
		if from != nil && o.CreatedAt.Before(lo) {
			continue
		}
		if to != nil && o.CreatedAt.After(hi) {
			continue
		}
		filtered = append(filtered, o)
	}

	sum := models.ReportSummary{TotalOrders: len(filtered)}
	for _, o := range filtered {
		if o.Paid {
			sum.PaidOrders++
			sum.Revenue += o.Total()
		}
	}

	sum.Days = defaultDays
	if from != nil && to != nil {
		sum.Days = daySpan(lo, startOfDay(*to))
	}

	var recurringSum float64
	for _, c := range e.st.Recurring() {
		recurringSum += c.Amount
	}
	// Daily rate from a 30-day month, scaled to the period length.
	sum.RecurringForPeriod = recurringSum / defaultDays * float64(sum.Days)

	for _, c := range e.st.OneTime() {
		sum.OneTimeTotal += c.Amount
	}
	sum.TotalCosts = sum.RecurringForPeriod + sum.OneTimeTotal
	sum.Profit = sum.Revenue - sum.TotalCosts

	res := Result{Summary: sum, Orders: filtered, GeneratedAt: time.Now()}
	e.mu.Lock()
	e.last = &res
	e.mu.Unlock()
	return res
}

// Last returns the most recently generated result, or ErrNoReport when
// nothing has been generated yet.
func (e *Engine) Last() (Result, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.last == nil {
		return Result{}, ErrNoReport
	}
	return *e.last, nil
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// daySpan is the inclusive calendar-day count from lo to hi, both taken
// at start of day. Same day counts as 1; a reversed range clamps to 1.
// Rounding absorbs DST-shortened or -lengthened days.
func daySpan(lo, hi time.Time) int {
	days := int(math.Round(hi.Sub(lo).Hours()/24)) + 1
	if days < 1 {
		return 1
	}
	return days
}
