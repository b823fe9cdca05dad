package ledger

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"fluxo/internal/model"

	"github.com/shopspring/decimal"
)

func testParams() Params {
	return Params{
		Centers: []model.CostCenter{
			{ID: "projetos", Name: "Projetos"},
			{ID: "rh", Name: "Recursos Humanos"},
			{ID: "administrativo", Name: "Administrativo"},
		},
		Projects: []model.Project{
			{ID: "agua-viva", Name: "Água Viva"},
			{ID: "escola-esperanca", Name: "Escola Esperança"},
		},
		RevenueCenterID: "projetos",
		PayrollCenterID: "rh",
		PastDays:        30,
		FutureDays:      90,
	}
}

// A Tuesday, so weekday-relative assertions are stable.
var testNow = time.Date(2026, 9, 1, 14, 30, 0, 0, time.UTC)

func TestGenerate_NoWeekendTransactions(t *testing.T) {
	txs := Generate(testParams(), testNow, rand.New(rand.NewSource(1)))

	for _, tx := range txs {
		wd := tx.Date.Weekday()
		if wd == time.Saturday || wd == time.Sunday {
			t.Errorf("transaction %s dated %s falls on a %s", tx.ID, tx.Date.Format("2006-01-02"), wd)
		}
	}
}

func TestGenerate_AmountRanges(t *testing.T) {
	txs := Generate(testParams(), testNow, rand.New(rand.NewSource(2)))

	for _, tx := range txs {
		if tx.Amount.IsNegative() {
			t.Fatalf("transaction %s has negative amount %s", tx.ID, tx.Amount)
		}
		switch {
		case tx.Type == model.TxRevenue:
			if tx.Amount.LessThan(decimal.NewFromInt(5000)) || tx.Amount.GreaterThanOrEqual(decimal.NewFromInt(25000)) {
				t.Errorf("revenue %s amount %s outside [5000, 25000)", tx.ID, tx.Amount)
			}
		case strings.HasPrefix(tx.ID, "folha-"):
			if !tx.Amount.Equal(decimal.NewFromInt(150000)) {
				t.Errorf("payroll %s amount %s, want 150000", tx.ID, tx.Amount)
			}
		default:
			if tx.Amount.LessThan(decimal.NewFromInt(100)) || tx.Amount.GreaterThanOrEqual(decimal.NewFromInt(3100)) {
				t.Errorf("expense %s amount %s outside [100, 3100)", tx.ID, tx.Amount)
			}
		}
	}
}

func TestGenerate_PayrollOnWeekdayFifths(t *testing.T) {
	txs := Generate(testParams(), testNow, rand.New(rand.NewSource(3)))

	payroll := map[string]model.Transaction{}
	for _, tx := range txs {
		if strings.HasPrefix(tx.ID, "folha-") {
			payroll[model.DayKey(tx.Date)] = tx
		}
	}

	// Walk the window: every weekday 5th must carry exactly one payroll entry.
	today := model.Day(testNow)
	want := 0
	for offset := -30; offset <= 90; offset++ {
		day := today.AddDate(0, 0, offset)
		if day.Day() != 5 {
			continue
		}
		if wd := day.Weekday(); wd == time.Saturday || wd == time.Sunday {
			continue
		}
		want++
		tx, ok := payroll[model.DayKey(day)]
		if !ok {
			t.Errorf("no payroll transaction on %s", day.Format("2006-01-02"))
			continue
		}
		if tx.CostCenterID != "rh" {
			t.Errorf("payroll on %s tagged to %q, want rh", day.Format("2006-01-02"), tx.CostCenterID)
		}
		if tx.Type != model.TxExpense {
			t.Errorf("payroll on %s has type %q, want expense", day.Format("2006-01-02"), tx.Type)
		}
	}
	if len(payroll) != want {
		t.Errorf("payroll entries = %d, want %d", len(payroll), want)
	}
}

func TestGenerate_StatusFollowsToday(t *testing.T) {
	txs := Generate(testParams(), testNow, rand.New(rand.NewSource(4)))
	today := model.Day(testNow)

	for _, tx := range txs {
		want := model.StatusPaid
		if tx.Date.After(today) {
			want = model.StatusPending
		}
		if tx.Status != want {
			t.Errorf("transaction %s on %s has status %q, want %q",
				tx.ID, tx.Date.Format("2006-01-02"), tx.Status, want)
		}
	}
}

func TestGenerate_RevenueAttribution(t *testing.T) {
	p := testParams()
	txs := Generate(p, testNow, rand.New(rand.NewSource(5)))

	known := map[string]bool{}
	for _, pr := range p.Projects {
		known[pr.ID] = true
	}

	for _, tx := range txs {
		if tx.Type != model.TxRevenue {
			continue
		}
		if tx.CostCenterID != p.RevenueCenterID {
			t.Errorf("revenue %s attributed to %q, want %q", tx.ID, tx.CostCenterID, p.RevenueCenterID)
		}
		if !known[tx.ProjectID] {
			t.Errorf("revenue %s linked to unknown project %q", tx.ID, tx.ProjectID)
		}
	}
}

func TestGenerate_UniqueIDs(t *testing.T) {
	txs := Generate(testParams(), testNow, rand.New(rand.NewSource(6)))

	seen := map[string]bool{}
	for _, tx := range txs {
		if seen[tx.ID] {
			t.Errorf("duplicate transaction id %s", tx.ID)
		}
		seen[tx.ID] = true
	}
}

func TestGenerate_DeterministicUnderSeed(t *testing.T) {
	a := Generate(testParams(), testNow, rand.New(rand.NewSource(42)))
	b := Generate(testParams(), testNow, rand.New(rand.NewSource(42)))

	if len(a) != len(b) {
		t.Fatalf("ledger lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].ID != b[i].ID || !a[i].Amount.Equal(b[i].Amount) || !a[i].Date.Equal(b[i].Date) {
			t.Fatalf("ledgers diverge at %d: %+v vs %+v", i, a[i], b[i])
		}
	}
}
