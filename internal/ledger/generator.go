// Package ledger synthesizes the transaction ledger the cash-flow engine
// runs on. Generation is pure: the clock and the random source are injected,
// so a fixed seed always yields the same ledger.
package ledger

import (
	"fmt"
	"math/rand"
	"time"

	"fluxo/internal/model"

	"github.com/shopspring/decimal"
)

// Params controls ledger synthesis.
type Params struct {
	Centers  []model.CostCenter
	Projects []model.Project

	// RevenueCenterID receives all revenue; PayrollCenterID receives the
	// monthly payroll expense.
	RevenueCenterID string
	PayrollCenterID string

	PastDays   int
	FutureDays int
}

const (
	revenueChance = 0.4
	expenseChance = 0.6

	revenueMin  = 5000
	revenueSpan = 20000 // amounts drawn from [5000, 25000)
	expenseMin  = 100
	expenseSpan = 3000 // amounts drawn from [100, 3100)

	payrollDay    = 5
	payrollAmount = 150000
)

var expenseLabels = []string{
	"Combustível e transporte",
	"Material de escritório",
	"Manutenção de veículos",
	"Alimentação de equipe",
	"Serviços gráficos",
	"Hospedagem de equipe",
	"Energia e água",
}

// Generate synthesizes one ledger spanning [now-PastDays, now+FutureDays].
// Weekends carry no transactions. Each weekday independently draws one
// revenue entry (p=0.4) and one expense entry (p=0.6); the 5th of a month,
// when it is a weekday, always carries the payroll expense.
func Generate(p Params, now time.Time, rng *rand.Rand) []model.Transaction {
	today := model.Day(now)
	var txs []model.Transaction

	for offset := -p.PastDays; offset <= p.FutureDays; offset++ {
		day := today.AddDate(0, 0, offset)
		if wd := day.Weekday(); wd == time.Saturday || wd == time.Sunday {
			continue
		}

		status := model.StatusPaid
		if day.After(today) {
			status = model.StatusPending
		}
		idx := offset + p.PastDays

		if rng.Float64() < revenueChance {
			project := p.Projects[rng.Intn(len(p.Projects))]
			txs = append(txs, model.Transaction{
				ID:           fmt.Sprintf("rev-%03d", idx),
				Description:  "Doação recebida: " + project.Name,
				Date:         day,
				Amount:       decimal.NewFromInt(int64(rng.Intn(revenueSpan) + revenueMin)),
				Type:         model.TxRevenue,
				CostCenterID: p.RevenueCenterID,
				ProjectID:    project.ID,
				Status:       status,
			})
		}

		if rng.Float64() < expenseChance {
			center := p.Centers[rng.Intn(len(p.Centers))]
			txs = append(txs, model.Transaction{
				ID:           fmt.Sprintf("desp-%03d", idx),
				Description:  expenseLabels[rng.Intn(len(expenseLabels))],
				Date:         day,
				Amount:       decimal.NewFromInt(int64(rng.Intn(expenseSpan) + expenseMin)),
				Type:         model.TxExpense,
				CostCenterID: center.ID,
				Status:       status,
			})
		}

		if day.Day() == payrollDay {
			txs = append(txs, model.Transaction{
				ID:           fmt.Sprintf("folha-%03d", idx),
				Description:  "Folha de pagamento",
				Date:         day,
				Amount:       decimal.NewFromInt(payrollAmount),
				Type:         model.TxExpense,
				CostCenterID: p.PayrollCenterID,
				Status:       status,
			})
		}
	}

	return txs
}

// NewRand returns a seeded random source. A zero seed means
// non-deterministic generation.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
