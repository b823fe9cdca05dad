package cmd

import (
	"errors"
	"fmt"
	"time"

	"fluxo/internal/cashflow"
	"fluxo/internal/cli"
	"fluxo/internal/model"
	"fluxo/internal/pipeline"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var (
	flagSimAmount       float64
	flagSimInstallments int
	flagSimStart        string
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Simulate an installment expense against the balance curve",
	Long: "Re-projects the cash-flow curve under a hypothetical expense split into equal monthly installments, " +
		"and reports the first date the balance would go negative.",
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().Float64VarP(&flagSimAmount, "amount", "a", 0, "Total expense amount")
	simulateCmd.Flags().IntVarP(&flagSimInstallments, "installments", "i", 1, "Number of monthly installments")
	simulateCmd.Flags().StringVar(&flagSimStart, "start", "", "First installment date (YYYY-MM-DD, default today)")
	rootCmd.AddCommand(simulateCmd)
}

// parseSimulatedExpense validates the simulation flags at the boundary; the
// overlay itself assumes well-formed input.
func parseSimulatedExpense(anchor time.Time) (model.SimulatedExpense, error) {
	if flagSimAmount <= 0 {
		return model.SimulatedExpense{}, errors.New("--amount must be positive")
	}
	if flagSimInstallments < 1 {
		return model.SimulatedExpense{}, errors.New("--installments must be at least 1")
	}

	start := anchor
	if flagSimStart != "" {
		var err error
		if start, err = time.Parse("2006-01-02", flagSimStart); err != nil {
			return model.SimulatedExpense{}, fmt.Errorf("invalid --start date %q: %w", flagSimStart, err)
		}
	}

	return model.SimulatedExpense{
		Amount:       decimal.NewFromFloat(flagSimAmount),
		Installments: flagSimInstallments,
		StartDate:    start,
	}, nil
}

func runSimulate(_ *cobra.Command, _ []string) error {
	data, err := loadLedger()
	if err != nil {
		return err
	}
	filters, err := activeFilters()
	if err != nil {
		return err
	}
	exp, err := parseSimulatedExpense(data.anchor)
	if err != nil {
		return err
	}

	baseline := pipeline.DeriveCurve(data.txs, data.centers, filters,
		currentBalance(data.cfg), data.anchor, data.pastDays, data.futureDays)
	adjusted, result := cashflow.Simulate(baseline, exp)

	fmt.Println()
	fmt.Println(cli.RenderTitle("SIMULAÇÃO DE DESPESA"))
	fmt.Println()

	perInstallment := exp.Amount.Div(decimal.NewFromInt(int64(exp.Installments)))
	fmt.Printf("  %s em %dx de %s, primeira parcela em %s\n\n",
		cli.FormatBRL(exp.Amount), exp.Installments,
		cli.FormatBRL(perInstallment), cli.FormatDate(model.Day(exp.StartDate)))

	if result.Verdict == model.VerdictDanger {
		fmt.Printf("  %s\n\n", cli.DangerStyle.Render(
			fmt.Sprintf("✗ Inviável: o saldo fica negativo em %s", cli.FormatDate(result.FirstNegative))))
	} else {
		fmt.Printf("  %s\n\n", cli.SuccessStyle.Render(
			fmt.Sprintf("✓ Viável: menor saldo %s em %s",
				cli.FormatBRL(result.MinBalance), cli.FormatDate(result.MinBalanceDay))))
	}

	rows := make([][]string, 0, len(result.Installments))
	for _, inst := range result.Installments {
		rows = append(rows, []string{
			fmt.Sprintf("%d/%d", inst.Number, exp.Installments),
			cli.FormatDate(inst.Date),
			cli.FormatBRL(inst.Amount),
			cli.FormatBRL(inst.BalanceAfter),
		})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Parcelas",
		Headers: []string{"Parcela", "Data", "Valor", "Saldo após"},
		Rows:    rows,
	}))

	if predicted, ok := cashflow.PredictedBalance(adjusted, data.anchor); ok {
		basePredicted, baseOK := cashflow.PredictedBalance(baseline, data.anchor)
		if baseOK {
			fmt.Printf("  Saldo previsto (30d): %s (antes da simulação: %s)\n\n",
				cli.FormatBRL(predicted), cli.FormatBRL(basePredicted))
		} else {
			fmt.Printf("  Saldo previsto (30d): %s\n\n", cli.FormatBRL(predicted))
		}
	}

	return nil
}
