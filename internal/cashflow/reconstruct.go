// Package cashflow derives the daily running-balance series and simulates
// hypothetical installment expenses against it. The "current balance" is an
// externally supplied figure, so the series is anchored to it at today and
// extrapolated in both directions rather than summed from an arbitrary start.
package cashflow

import (
	"time"

	"fluxo/internal/model"

	"github.com/shopspring/decimal"
)

type dayFlow struct {
	revenue  decimal.Decimal
	expenses decimal.Decimal
}

func dailyFlows(txs []model.Transaction) map[string]dayFlow {
	flows := make(map[string]dayFlow)
	for _, tx := range txs {
		f := flows[model.DayKey(tx.Date)]
		if tx.Type == model.TxRevenue {
			f.revenue = f.revenue.Add(tx.Amount)
		} else {
			f.expenses = f.expenses.Add(tx.Amount)
		}
		flows[model.DayKey(tx.Date)] = f
	}
	return flows
}

// Rebuild derives one CashFlowPoint per day across
// [now-pastDays, now+futureDays], anchored so that today's point carries
// exactly currentBalance (the balance as of end of today).
//
// Two passes: walk backward from today undoing each day's net effect to
// recover the balance at the window start, then walk forward applying each
// day's aggregated flows. Days with no transactions leave the balance
// unchanged.
func Rebuild(txs []model.Transaction, currentBalance decimal.Decimal, now time.Time, pastDays, futureDays int) []model.CashFlowPoint {
	today := model.Day(now)
	flows := dailyFlows(txs)

	// Backward: undo today through the first window day to get the balance
	// as of the end of the day before the window.
	balance := currentBalance
	for i := 0; i <= pastDays; i++ {
		f := flows[model.DayKey(today.AddDate(0, 0, -i))]
		balance = balance.Sub(f.revenue).Add(f.expenses)
	}

	// Forward: apply each day's net from the reconstructed start.
	points := make([]model.CashFlowPoint, 0, pastDays+futureDays+1)
	for offset := -pastDays; offset <= futureDays; offset++ {
		day := today.AddDate(0, 0, offset)
		f := flows[model.DayKey(day)]
		balance = balance.Add(f.revenue).Sub(f.expenses)
		points = append(points, model.CashFlowPoint{
			Date:     day,
			Revenue:  f.revenue,
			Expenses: f.expenses,
			Balance:  balance,
		})
	}

	return points
}

// PredictedBalance reports the balance 30 days after today, when the series
// reaches that far.
func PredictedBalance(points []model.CashFlowPoint, now time.Time) (decimal.Decimal, bool) {
	today := model.Day(now)
	for i, p := range points {
		if p.Date.Equal(today) {
			if i+30 < len(points) {
				return points[i+30].Balance, true
			}
			return decimal.Decimal{}, false
		}
	}
	return decimal.Decimal{}, false
}
