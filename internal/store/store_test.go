package store

import (
	"path/filepath"
	"testing"
	"time"

	"fluxo/internal/model"

	"github.com/shopspring/decimal"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "ledger.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestLoadLedger_EmptyStore(t *testing.T) {
	s := openTestStore(t)

	_, txs, ok, err := s.LoadLedger()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("empty store reported a stored ledger")
	}
	if len(txs) != 0 {
		t.Errorf("empty store returned %d transactions", len(txs))
	}
}

func TestSaveLoadLedger_RoundTrip(t *testing.T) {
	s := openTestStore(t)

	anchor := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	meta := Meta{AnchorDate: anchor, PastDays: 30, FutureDays: 90, Seed: 42}
	txs := []model.Transaction{
		{
			ID:           "rev-001",
			Description:  "Doação recebida: Água Viva",
			Date:         anchor.AddDate(0, 0, -3),
			Amount:       decimal.NewFromInt(12345),
			Type:         model.TxRevenue,
			CostCenterID: "projetos",
			ProjectID:    "agua-viva",
			Status:       model.StatusPaid,
		},
		{
			ID:           "desp-040",
			Description:  "Combustível e transporte",
			Date:         anchor.AddDate(0, 0, 10),
			Amount:       decimal.NewFromInt(780),
			Type:         model.TxExpense,
			CostCenterID: "operacoes",
			Status:       model.StatusPending,
		},
	}

	if err := s.SaveLedger(meta, txs); err != nil {
		t.Fatalf("save: %v", err)
	}

	gotMeta, gotTxs, ok, err := s.LoadLedger()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !ok {
		t.Fatal("stored ledger not found")
	}

	if !gotMeta.AnchorDate.Equal(anchor) {
		t.Errorf("anchor = %v, want %v", gotMeta.AnchorDate, anchor)
	}
	if gotMeta.PastDays != 30 || gotMeta.FutureDays != 90 || gotMeta.Seed != 42 {
		t.Errorf("meta = %+v, want 30/90/42", gotMeta)
	}

	if len(gotTxs) != len(txs) {
		t.Fatalf("loaded %d transactions, want %d", len(gotTxs), len(txs))
	}
	for i, want := range txs {
		got := gotTxs[i]
		if got.ID != want.ID || got.Description != want.Description ||
			!got.Amount.Equal(want.Amount) || got.Type != want.Type ||
			got.CostCenterID != want.CostCenterID || got.ProjectID != want.ProjectID ||
			got.Status != want.Status {
			t.Errorf("transaction %d = %+v, want %+v", i, got, want)
		}
		if model.DayKey(got.Date) != model.DayKey(want.Date) {
			t.Errorf("transaction %d date = %s, want %s", i, model.DayKey(got.Date), model.DayKey(want.Date))
		}
	}
}

func TestSaveLedger_ReplacesPrevious(t *testing.T) {
	s := openTestStore(t)

	anchor := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	first := []model.Transaction{{
		ID: "rev-001", Description: "x", Date: anchor,
		Amount: decimal.NewFromInt(1), Type: model.TxRevenue,
		CostCenterID: "projetos", Status: model.StatusPaid,
	}}
	if err := s.SaveLedger(Meta{AnchorDate: anchor, PastDays: 30, FutureDays: 90}, first); err != nil {
		t.Fatalf("first save: %v", err)
	}

	second := []model.Transaction{
		{ID: "desp-002", Description: "y", Date: anchor, Amount: decimal.NewFromInt(2),
			Type: model.TxExpense, CostCenterID: "rh", Status: model.StatusPaid},
		{ID: "desp-003", Description: "z", Date: anchor, Amount: decimal.NewFromInt(3),
			Type: model.TxExpense, CostCenterID: "rh", Status: model.StatusPaid},
	}
	if err := s.SaveLedger(Meta{AnchorDate: anchor, PastDays: 10, FutureDays: 20, Seed: 7}, second); err != nil {
		t.Fatalf("second save: %v", err)
	}

	meta, txs, ok, err := s.LoadLedger()
	if err != nil || !ok {
		t.Fatalf("load: ok=%v err=%v", ok, err)
	}
	if len(txs) != 2 {
		t.Errorf("loaded %d transactions, want 2 (old snapshot replaced)", len(txs))
	}
	if meta.Seed != 7 || meta.PastDays != 10 {
		t.Errorf("meta not replaced: %+v", meta)
	}
}
