package cmd

import (
	"fmt"

	"fluxo/internal/cli"
	"fluxo/internal/config"
	"fluxo/internal/store"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Window:          %dd past, %dd future\n", cfg.General.PastDays, cfg.General.FutureDays)
	fmt.Printf("    Current balance: %s\n", cli.FormatBRL(cfg.Balance()))
	fmt.Println()

	fmt.Println("  [Ledger]")
	if cfg.Ledger.Seed != nil {
		fmt.Printf("    Seed:  %d (deterministic)\n", *cfg.Ledger.Seed)
	} else {
		fmt.Println("    Seed:  random")
	}
	if cfg.Ledger.StorePath != "" {
		fmt.Printf("    Store: %s\n", cfg.Ledger.StorePath)
	} else {
		fmt.Printf("    Store: %s\n", store.DefaultPath())
	}
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	rows := make([][]string, 0, len(cfg.CostCenters))
	for _, cc := range cfg.CostCenters {
		rows = append(rows, []string{cc.ID, cc.Name, fmt.Sprintf("%.2f", cc.Budget)})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Centros de Custo",
		Headers: []string{"ID", "Nome", "Orçamento"},
		Rows:    rows,
	}))

	projRows := make([][]string, 0, len(cfg.Projects))
	for _, p := range cfg.Projects {
		projRows = append(projRows, []string{p.ID, p.Name})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Projetos",
		Headers: []string{"ID", "Nome"},
		Rows:    projRows,
	}))

	return nil
}
