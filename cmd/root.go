// Package cmd implements the fluxo CLI commands.
package cmd

import (
	"fmt"
	"os"
	"time"

	"fluxo/internal/config"
	"fluxo/internal/model"
	"fluxo/internal/pipeline"
	"fluxo/internal/store"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var (
	flagSearch  string
	flagCenter  string
	flagFrom    string
	flagTo      string
	flagBalance float64
	flagSeed    int64
	flagFresh   bool
	flagStore   string
	flagQuiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "fluxo",
	Short: "Mission cash-flow planning CLI",
	Long:  "Plan your organization's cash flow: daily balance projections, budget tracking, and installment expense simulations.",
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.RunE = runSummary
	rootCmd.PersistentFlags().StringVarP(&flagSearch, "search", "s", "", "Filter by description or cost center name (substring match)")
	rootCmd.PersistentFlags().StringVarP(&flagCenter, "center", "c", "", "Filter to a cost center id")
	rootCmd.PersistentFlags().StringVar(&flagFrom, "from", "", "Display range start (YYYY-MM-DD)")
	rootCmd.PersistentFlags().StringVar(&flagTo, "to", "", "Display range end (YYYY-MM-DD)")
	rootCmd.PersistentFlags().Float64VarP(&flagBalance, "balance", "b", 0, "Current balance override (defaults to config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Ledger generation seed (nonzero generates fresh, skipping the store)")
	rootCmd.PersistentFlags().BoolVar(&flagFresh, "fresh", false, "Skip the stored ledger, generate a new one")
	rootCmd.PersistentFlags().StringVar(&flagStore, "store", "", "Ledger database path")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
}

// ledgerData bundles the loaded ledger with its config and window anchor.
type ledgerData struct {
	cfg     config.Config
	txs     []model.Transaction
	centers []model.CostCenter

	// anchor is the "today" the ledger window is relative to: the stored
	// anchor for a persisted ledger, the current day for a fresh one.
	anchor     time.Time
	pastDays   int
	futureDays int
}

func storePath(cfg config.Config) string {
	if flagStore != "" {
		return flagStore
	}
	if cfg.Ledger.StorePath != "" {
		return cfg.Ledger.StorePath
	}
	return store.DefaultPath()
}

// loadLedger is the shared data loading path used by all commands. It
// prefers the stored ledger so consecutive commands see the same
// transaction set, and falls back to fresh generation.
func loadLedger() (*ledgerData, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	result := pipeline.Load(cfg, pipeline.LoadOptions{
		StorePath: storePath(cfg),
		Fresh:     flagFresh,
		Seed:      flagSeed,
	})

	if !flagQuiet {
		if result.FromStore {
			fmt.Fprintf(os.Stderr, "  Loaded %d transactions from store (anchor %s)\n",
				len(result.Txs), result.Anchor.Format("2006-01-02"))
		} else {
			fmt.Fprintf(os.Stderr, "  Generated %d transactions\n", len(result.Txs))
		}
	}

	return &ledgerData{
		cfg:        cfg,
		txs:        result.Txs,
		centers:    result.Centers,
		anchor:     result.Anchor,
		pastDays:   result.PastDays,
		futureDays: result.FutureDays,
	}, nil
}

// activeFilters parses the filter flags into pipeline state.
func activeFilters() (pipeline.Filters, error) {
	f := pipeline.Filters{Search: flagSearch, CenterID: flagCenter}

	var err error
	if flagFrom != "" {
		if f.From, err = time.Parse("2006-01-02", flagFrom); err != nil {
			return f, fmt.Errorf("invalid --from date %q: %w", flagFrom, err)
		}
	}
	if flagTo != "" {
		if f.To, err = time.Parse("2006-01-02", flagTo); err != nil {
			return f, fmt.Errorf("invalid --to date %q: %w", flagTo, err)
		}
	}
	return f, nil
}

// currentBalance resolves the balance anchor: flag override, then config.
func currentBalance(cfg config.Config) decimal.Decimal {
	if rootCmd.PersistentFlags().Changed("balance") {
		return decimal.NewFromFloat(flagBalance)
	}
	return cfg.Balance()
}
