package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// CashFlowPoint is one row of the derived daily balance series.
// For a contiguous series, Balance[i] = Balance[i-1] + Revenue[i] - Expenses[i].
type CashFlowPoint struct {
	Date     time.Time
	Revenue  decimal.Decimal
	Expenses decimal.Decimal
	Balance  decimal.Decimal // running balance as of end of day
}

// SimulatedExpense is a hypothetical future expense split into equal
// monthly installments.
type SimulatedExpense struct {
	Amount       decimal.Decimal // total, divided evenly across installments
	Installments int             // >= 1, validated at the boundary
	StartDate    time.Time       // first installment date
}

// Installment is the per-installment detail of a simulation.
type Installment struct {
	Number       int
	Date         time.Time
	Amount       decimal.Decimal
	BalanceAfter decimal.Decimal
}

// Verdict classifies a simulation outcome.
type Verdict string

const (
	VerdictSuccess Verdict = "success"
	VerdictDanger  Verdict = "danger"
)

// SimulationResult is the derived verdict for a simulated expense.
type SimulationResult struct {
	Verdict       Verdict
	Text          string
	Installments  []Installment
	MinBalance    decimal.Decimal
	MinBalanceDay time.Time
	FirstNegative time.Time // zero when the balance never goes negative
}

// PeriodKPIs holds the date-range-scoped revenue/expense totals.
type PeriodKPIs struct {
	TotalRevenue  decimal.Decimal
	TotalExpenses decimal.Decimal
}

// Net returns revenue minus expenses for the period.
func (k PeriodKPIs) Net() decimal.Decimal {
	return k.TotalRevenue.Sub(k.TotalExpenses)
}

// BudgetLine pairs a cost center's static budget with its actual
// expense total under the active filters.
type BudgetLine struct {
	Center      CostCenter
	Actual      decimal.Decimal
	UsedPercent float64 // Actual/Budget as a 0-1 ratio; can exceed 1 on overrun
}
