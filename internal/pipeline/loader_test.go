package pipeline

import (
	"path/filepath"
	"testing"
	"time"

	"fluxo/internal/config"
	"fluxo/internal/model"
	"fluxo/internal/store"
)

func saveTestLedger(t *testing.T, path string) {
	t.Helper()
	st, err := store.Open(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer st.Close()

	anchor := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	meta := store.Meta{AnchorDate: anchor, PastDays: 30, FutureDays: 90, Seed: 7}
	txs := []model.Transaction{{
		ID: "rev-001", Description: "Doação recebida: Água Viva", Date: anchor,
		Amount: dec(5000), Type: model.TxRevenue,
		CostCenterID: "projetos", ProjectID: "agua-viva", Status: model.StatusPaid,
	}}
	if err := st.SaveLedger(meta, txs); err != nil {
		t.Fatalf("save ledger: %v", err)
	}
}

func TestLoad_PrefersStoredLedger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.db")
	saveTestLedger(t, path)

	result := Load(config.DefaultConfig(), LoadOptions{StorePath: path})

	if !result.FromStore {
		t.Fatal("stored ledger not used")
	}
	if len(result.Txs) != 1 || result.Txs[0].ID != "rev-001" {
		t.Errorf("loaded %d transactions, want the stored rev-001", len(result.Txs))
	}
	if result.PastDays != 30 || result.FutureDays != 90 {
		t.Errorf("window = -%d/+%d, want the stored -30/+90", result.PastDays, result.FutureDays)
	}
}

func TestLoad_SeedImpliesFresh(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.db")
	saveTestLedger(t, path)
	cfg := config.DefaultConfig()

	result := Load(cfg, LoadOptions{StorePath: path, Seed: 42})

	if result.FromStore {
		t.Fatal("explicit seed returned the stored snapshot instead of generating")
	}

	// The same seed reproduces the same ledger on a second call.
	again := Load(cfg, LoadOptions{StorePath: path, Seed: 42})
	if len(result.Txs) != len(again.Txs) {
		t.Fatalf("seeded ledgers differ in length: %d vs %d", len(result.Txs), len(again.Txs))
	}
	for i := range result.Txs {
		if result.Txs[i].ID != again.Txs[i].ID || !result.Txs[i].Amount.Equal(again.Txs[i].Amount) {
			t.Fatalf("seeded ledgers diverge at %d: %+v vs %+v", i, result.Txs[i], again.Txs[i])
		}
	}
}
