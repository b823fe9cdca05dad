package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaultsWhenMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.General.PastDays != 30 || cfg.General.FutureDays != 90 {
		t.Errorf("window = -%d/+%d, want -30/+90", cfg.General.PastDays, cfg.General.FutureDays)
	}
	if len(cfg.CostCenters) != 5 {
		t.Errorf("got %d cost centers, want 5", len(cfg.CostCenters))
	}

	// The generator's fixed attributions must exist in the defaults.
	ids := make(map[string]bool)
	for _, cc := range cfg.CostCenters {
		ids[cc.ID] = true
	}
	if !ids[ProjectsCenterID] || !ids[HRCenterID] {
		t.Errorf("defaults missing %q or %q center", ProjectsCenterID, HRCenterID)
	}
}

func TestLoadPartialConfigKeepsDefaultCenters(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	content := "[general]\npast_days = 10\nfuture_days = 20\ncurrent_balance = 1000.0\n"
	if err := os.MkdirAll(filepath.Join(dir, "fluxo"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "fluxo", "config.toml"), []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.General.PastDays != 10 || cfg.General.FutureDays != 20 {
		t.Errorf("window = -%d/+%d, want -10/+20", cfg.General.PastDays, cfg.General.FutureDays)
	}
	if len(cfg.CostCenters) != 5 {
		t.Errorf("got %d cost centers, want the 5 defaults", len(cfg.CostCenters))
	}
	if got := cfg.Balance().String(); got != "1000" {
		t.Errorf("Balance() = %s, want 1000", got)
	}
}

func TestLoadReAddsRequiredCenters(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	// A user center list replaces the defaults, but the generator's fixed
	// revenue and payroll attributions must still resolve.
	content := "[[cost_center]]\nid = \"missoes\"\nname = \"Missões\"\nbudget = 12000.0\n"
	if err := os.MkdirAll(filepath.Join(dir, "fluxo"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "fluxo", "config.toml"), []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(cfg.CostCenters) != 3 {
		t.Fatalf("got %d cost centers, want the user center plus %q and %q",
			len(cfg.CostCenters), ProjectsCenterID, HRCenterID)
	}
	if cfg.CostCenters[0].ID != "missoes" {
		t.Errorf("first center = %q, want the user-declared missoes", cfg.CostCenters[0].ID)
	}
	ids := make(map[string]bool)
	for _, cc := range cfg.CostCenters {
		ids[cc.ID] = true
	}
	if !ids[ProjectsCenterID] || !ids[HRCenterID] {
		t.Errorf("loaded centers missing %q or %q", ProjectsCenterID, HRCenterID)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.General.CurrentBalance = 99000
	seed := int64(42)
	cfg.Ledger.Seed = &seed

	if err := Save(cfg); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	if !Exists() {
		t.Fatal("Exists() = false after Save")
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if loaded.General.CurrentBalance != 99000 {
		t.Errorf("CurrentBalance = %v, want 99000", loaded.General.CurrentBalance)
	}
	if loaded.Ledger.Seed == nil || *loaded.Ledger.Seed != 42 {
		t.Errorf("Seed = %v, want 42", loaded.Ledger.Seed)
	}
	if len(loaded.Projects) != len(cfg.Projects) {
		t.Errorf("got %d projects, want %d", len(loaded.Projects), len(cfg.Projects))
	}
}
