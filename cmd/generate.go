package cmd

import (
	"fmt"

	"fluxo/internal/model"
	"fluxo/internal/store"

	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a new ledger and save it to the store",
	Long: "Synthesizes a fresh transaction ledger for the configured window and persists it, " +
		"so subsequent commands and the TUI all work against the same snapshot.",
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(_ *cobra.Command, _ []string) error {
	flagFresh = true
	data, err := loadLedger()
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 && data.cfg.Ledger.Seed != nil {
		seed = *data.cfg.Ledger.Seed
	}

	path := storePath(data.cfg)
	st, err := store.Open(path)
	if err != nil {
		return fmt.Errorf("opening ledger store: %w", err)
	}
	defer st.Close()

	meta := store.Meta{
		AnchorDate: model.Day(data.anchor),
		PastDays:   data.pastDays,
		FutureDays: data.futureDays,
		Seed:       seed,
	}
	if err := st.SaveLedger(meta, data.txs); err != nil {
		return fmt.Errorf("saving ledger: %w", err)
	}

	fmt.Printf("  Saved %d transactions to %s\n", len(data.txs), path)
	fmt.Printf("  Window: %s to %s (anchor %s)\n",
		meta.AnchorDate.AddDate(0, 0, -meta.PastDays).Format("2006-01-02"),
		meta.AnchorDate.AddDate(0, 0, meta.FutureDays).Format("2006-01-02"),
		meta.AnchorDate.Format("2006-01-02"))
	return nil
}
