package cashflow

import (
	"fmt"
	"time"

	"fluxo/internal/model"

	"github.com/shopspring/decimal"
)

// Simulate answers "what happens to the balance curve if we commit to this
// expense?". It returns an adjusted copy of the baseline series and the
// verdict; the baseline itself is never modified, so clearing a simulation
// is simply rendering the baseline again.
//
// The series is extended with zero-flow carry days at both ends so that it
// covers every installment date: backward to the first installment when the
// start date precedes the series, forward through the last one.
func Simulate(baseline []model.CashFlowPoint, exp model.SimulatedExpense) ([]model.CashFlowPoint, model.SimulationResult) {
	n := exp.Installments
	amount := exp.Amount.Div(decimal.NewFromInt(int64(n)))
	start := model.Day(exp.StartDate)
	lastDate := start.AddDate(0, n-1, 0)

	points := extendThrough(baseline, start, lastDate)

	installments := make([]model.Installment, 0, n)
	for i := 0; i < n; i++ {
		date := start.AddDate(0, i, 0)
		inst := model.Installment{Number: i + 1, Date: date, Amount: amount}

		// Each installment permanently lowers the balance from its date
		// forward; on the landing day it also shows up as an expense.
		for j := range points {
			if points[j].Date.Before(date) {
				continue
			}
			points[j].Balance = points[j].Balance.Sub(amount)
			if points[j].Date.Equal(date) {
				points[j].Expenses = points[j].Expenses.Add(amount)
				inst.BalanceAfter = points[j].Balance
			}
		}

		installments = append(installments, inst)
	}

	result := classify(points, installments)
	return points, result
}

// extendThrough copies the baseline and pads it with zero-flow days until it
// covers [start, last]: prepended days carry the balance as of the day before
// the original head, appended days carry the last balance forward.
func extendThrough(baseline []model.CashFlowPoint, start, last time.Time) []model.CashFlowPoint {
	points := make([]model.CashFlowPoint, len(baseline))
	copy(points, baseline)

	if len(points) == 0 {
		points = append(points, model.CashFlowPoint{Date: start})
	}

	if head := points[0]; start.Before(head.Date) {
		// Continuity gives the balance before the head by undoing its flows.
		balance := head.Balance.Sub(head.Revenue).Add(head.Expenses)
		var prefix []model.CashFlowPoint
		for day := start; day.Before(head.Date); day = day.AddDate(0, 0, 1) {
			prefix = append(prefix, model.CashFlowPoint{Date: day, Balance: balance})
		}
		points = append(prefix, points...)
	}

	for tail := points[len(points)-1]; tail.Date.Before(last); tail = points[len(points)-1] {
		points = append(points, model.CashFlowPoint{
			Date:    tail.Date.AddDate(0, 0, 1),
			Balance: tail.Balance,
		})
	}
	return points
}

func classify(points []model.CashFlowPoint, installments []model.Installment) model.SimulationResult {
	result := model.SimulationResult{
		Verdict:      model.VerdictSuccess,
		Installments: installments,
	}

	for i, p := range points {
		if i == 0 || p.Balance.LessThan(result.MinBalance) {
			result.MinBalance = p.Balance
			result.MinBalanceDay = p.Date
		}
		if result.FirstNegative.IsZero() && p.Balance.IsNegative() {
			result.FirstNegative = p.Date
		}
	}

	if !result.FirstNegative.IsZero() {
		result.Verdict = model.VerdictDanger
		result.Text = fmt.Sprintf("balance goes negative on %s", result.FirstNegative.Format("2006-01-02"))
	} else {
		result.Text = fmt.Sprintf("balance stays positive, minimum %s on %s",
			result.MinBalance.StringFixed(2), result.MinBalanceDay.Format("2006-01-02"))
	}

	return result
}
