// Package config loads and persists fluxo configuration from a TOML file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"fluxo/internal/model"

	"github.com/BurntSushi/toml"
	"github.com/shopspring/decimal"
)

// Config holds all fluxo configuration.
type Config struct {
	General     GeneralConfig      `toml:"general"`
	Ledger      LedgerConfig       `toml:"ledger"`
	Appearance  AppearanceConfig   `toml:"appearance"`
	CostCenters []CostCenterConfig `toml:"cost_center"`
	Projects    []ProjectConfig    `toml:"project"`
}

// GeneralConfig holds the cash-flow window and balance anchor.
type GeneralConfig struct {
	PastDays       int     `toml:"past_days"`
	FutureDays     int     `toml:"future_days"`
	CurrentBalance float64 `toml:"current_balance"`
}

// LedgerConfig holds ledger generation settings.
type LedgerConfig struct {
	Seed      *int64 `toml:"seed,omitempty"`
	StorePath string `toml:"store_path,omitempty"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// CostCenterConfig declares one budget bucket.
type CostCenterConfig struct {
	ID     string  `toml:"id"`
	Name   string  `toml:"name"`
	Budget float64 `toml:"budget"`
}

// ProjectConfig declares one mission project revenue can be attributed to.
type ProjectConfig struct {
	ID   string `toml:"id"`
	Name string `toml:"name"`
}

// Cost center IDs the generator depends on for revenue and payroll
// attribution. Load re-adds them when a user config omits them, so every
// generated transaction always references a declared center.
const (
	ProjectsCenterID = "projetos"
	HRCenterID       = "rh"
)

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			PastDays:       30,
			FutureDays:     90,
			CurrentBalance: 254300,
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
		CostCenters: []CostCenterConfig{
			{ID: ProjectsCenterID, Name: "Projetos", Budget: 350000},
			{ID: HRCenterID, Name: "Recursos Humanos", Budget: 480000},
			{ID: "administrativo", Name: "Administrativo", Budget: 60000},
			{ID: "operacoes", Name: "Operações de Campo", Budget: 95000},
			{ID: "eventos", Name: "Eventos e Mobilização", Budget: 40000},
		},
		Projects: []ProjectConfig{
			{ID: "agua-viva", Name: "Água Viva"},
			{ID: "escola-esperanca", Name: "Escola Esperança"},
			{ID: "saude-comunitaria", Name: "Saúde Comunitária"},
			{ID: "casa-de-apoio", Name: "Casa de Apoio"},
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "fluxo")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "fluxo")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(Path())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	// User-declared cost centers and projects replace the defaults wholesale.
	user := Config{General: cfg.General, Appearance: cfg.Appearance}
	if err := toml.Unmarshal(data, &user); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	if len(user.CostCenters) == 0 {
		user.CostCenters = cfg.CostCenters
	}
	if len(user.Projects) == 0 {
		user.Projects = cfg.Projects
	}
	user.CostCenters = ensureRequiredCenters(user.CostCenters, cfg.CostCenters)
	return user, nil
}

// ensureRequiredCenters appends the default revenue/payroll centers when a
// user-declared center list omits them, keeping every generated
// transaction's cost-center reference valid.
func ensureRequiredCenters(centers, defaults []CostCenterConfig) []CostCenterConfig {
	have := make(map[string]bool, len(centers))
	for _, c := range centers {
		have[c.ID] = true
	}
	for _, d := range defaults {
		if (d.ID == ProjectsCenterID || d.ID == HRCenterID) && !have[d.ID] {
			centers = append(centers, d)
		}
	}
	return centers
}

// Save writes the config to disk.
func Save(cfg Config) error {
	if err := os.MkdirAll(Dir(), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(Path(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}

// ModelCostCenters converts the configured cost centers to domain types.
func (c Config) ModelCostCenters() []model.CostCenter {
	centers := make([]model.CostCenter, 0, len(c.CostCenters))
	for _, cc := range c.CostCenters {
		centers = append(centers, model.CostCenter{
			ID:     cc.ID,
			Name:   cc.Name,
			Budget: decimal.NewFromFloat(cc.Budget),
		})
	}
	return centers
}

// ModelProjects converts the configured projects to domain types.
func (c Config) ModelProjects() []model.Project {
	projects := make([]model.Project, 0, len(c.Projects))
	for _, p := range c.Projects {
		projects = append(projects, model.Project{ID: p.ID, Name: p.Name})
	}
	return projects
}

// Balance returns the configured current balance as a decimal.
func (c Config) Balance() decimal.Decimal {
	return decimal.NewFromFloat(c.General.CurrentBalance)
}
