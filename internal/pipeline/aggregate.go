package pipeline

import (
	"sort"
	"time"

	"fluxo/internal/model"
)

// AggregateKPIs computes period revenue/expense totals from the base set
// after date-range scoping. Status never gates inclusion: pending entries
// count the same as paid ones.
func AggregateKPIs(txs []model.Transaction, from, to time.Time) model.PeriodKPIs {
	var kpis model.PeriodKPIs
	for _, tx := range FilterByDateRange(txs, from, to) {
		if tx.Type == model.TxRevenue {
			kpis.TotalRevenue = kpis.TotalRevenue.Add(tx.Amount)
		} else {
			kpis.TotalExpenses = kpis.TotalExpenses.Add(tx.Amount)
		}
	}
	return kpis
}

// AggregateBudgets pairs each cost center's budget with its actual expense
// total in the date-scoped base set, sorted by actual spend descending.
func AggregateBudgets(txs []model.Transaction, centers []model.CostCenter, from, to time.Time) []model.BudgetLine {
	scoped := FilterByDateRange(txs, from, to)

	lines := make([]model.BudgetLine, 0, len(centers))
	for _, c := range centers {
		line := model.BudgetLine{Center: c}
		for _, tx := range scoped {
			if tx.Type == model.TxExpense && tx.CostCenterID == c.ID {
				line.Actual = line.Actual.Add(tx.Amount)
			}
		}
		if c.Budget.IsPositive() {
			line.UsedPercent, _ = line.Actual.Div(c.Budget).Float64()
		}
		lines = append(lines, line)
	}

	sort.Slice(lines, func(i, j int) bool {
		return lines[i].Actual.GreaterThan(lines[j].Actual)
	})

	return lines
}
