package pipeline

import (
	"time"

	"fluxo/internal/config"
	"fluxo/internal/ledger"
	"fluxo/internal/model"
	"fluxo/internal/store"
)

// LoadOptions controls where the ledger comes from.
type LoadOptions struct {
	StorePath string
	Fresh     bool  // skip the stored ledger
	Seed      int64 // overrides the configured seed when nonzero; implies Fresh
}

// LoadResult holds the loaded ledger and the window it was generated for.
type LoadResult struct {
	Txs        []model.Transaction
	Centers    []model.CostCenter
	Anchor     time.Time // the "today" the window and statuses are relative to
	PastDays   int
	FutureDays int
	FromStore  bool
}

// Load is the shared ledger loading path for the CLI and the TUI. It prefers
// the stored snapshot so consecutive invocations see the same transaction
// set, and falls back to fresh generation when there is none (or when the
// store is unreadable; the ledger is synthetic, so regeneration is always a
// safe recovery). An explicit seed asks for a specific ledger, so it always
// generates rather than returning whatever snapshot happens to be stored.
func Load(cfg config.Config, opts LoadOptions) *LoadResult {
	result := &LoadResult{
		Centers:    cfg.ModelCostCenters(),
		Anchor:     model.Day(time.Now()),
		PastDays:   cfg.General.PastDays,
		FutureDays: cfg.General.FutureDays,
	}

	if !opts.Fresh && opts.Seed == 0 {
		if st, err := store.Open(opts.StorePath); err == nil {
			meta, txs, ok, err := st.LoadLedger()
			_ = st.Close()
			if err == nil && ok {
				result.Txs = txs
				result.Anchor = meta.AnchorDate
				result.PastDays = meta.PastDays
				result.FutureDays = meta.FutureDays
				result.FromStore = true
				return result
			}
		}
	}

	seed := opts.Seed
	if seed == 0 && cfg.Ledger.Seed != nil {
		seed = *cfg.Ledger.Seed
	}

	result.Txs = ledger.Generate(ledger.Params{
		Centers:         result.Centers,
		Projects:        cfg.ModelProjects(),
		RevenueCenterID: config.ProjectsCenterID,
		PayrollCenterID: config.HRCenterID,
		PastDays:        cfg.General.PastDays,
		FutureDays:      cfg.General.FutureDays,
	}, result.Anchor, ledger.NewRand(seed))

	return result
}
