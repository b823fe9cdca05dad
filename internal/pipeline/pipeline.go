// Package pipeline composes ledger filtering, balance-curve derivation, and
// KPI/budget aggregation into the two-stage flow every surface uses.
//
// Stage one (DeriveCurve) applies the search and cost-center filters to the
// base set and rebuilds the full balance curve. Stage two (SliceForDisplay)
// applies the date range as a pure display slice. The date range must never
// feed back into curve derivation: slicing the transaction set before
// reconstruction would detach today's point from the anchored balance.
package pipeline

import (
	"time"

	"fluxo/internal/cashflow"
	"fluxo/internal/model"

	"github.com/shopspring/decimal"
)

// Filters holds the active UI filter state.
type Filters struct {
	Search   string
	CenterID string // empty means all cost centers
	From     time.Time
	To       time.Time
}

// BaseSet applies the search and cost-center filters, the scoping that the
// balance curve and all aggregates share. The date range is not applied here.
func BaseSet(txs []model.Transaction, centers []model.CostCenter, f Filters) []model.Transaction {
	filtered := txs
	if f.Search != "" {
		filtered = FilterBySearch(filtered, centers, f.Search)
	}
	if f.CenterID != "" {
		filtered = FilterByCostCenter(filtered, f.CenterID)
	}
	return filtered
}

// DeriveCurve rebuilds the daily balance curve from the filtered base set,
// anchored to the supplied current balance at today.
func DeriveCurve(txs []model.Transaction, centers []model.CostCenter, f Filters,
	balance decimal.Decimal, now time.Time, pastDays, futureDays int) []model.CashFlowPoint {
	return cashflow.Rebuild(BaseSet(txs, centers, f), balance, now, pastDays, futureDays)
}

// SliceForDisplay trims an already-derived curve to the display date range.
// It never recomputes balances.
func SliceForDisplay(points []model.CashFlowPoint, from, to time.Time) []model.CashFlowPoint {
	lo := 0
	hi := len(points)
	for lo < hi && !from.IsZero() && points[lo].Date.Before(model.Day(from)) {
		lo++
	}
	for hi > lo && !to.IsZero() && points[hi-1].Date.After(model.Day(to)) {
		hi--
	}
	return points[lo:hi]
}
