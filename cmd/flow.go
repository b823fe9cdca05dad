package cmd

import (
	"fmt"

	"fluxo/internal/cli"
	"fluxo/internal/pipeline"

	"github.com/spf13/cobra"
)

var flowCmd = &cobra.Command{
	Use:   "flow",
	Short: "Daily cash-flow table with running balance",
	RunE:  runFlow,
}

func init() {
	rootCmd.AddCommand(flowCmd)
}

func runFlow(_ *cobra.Command, _ []string) error {
	data, err := loadLedger()
	if err != nil {
		return err
	}
	filters, err := activeFilters()
	if err != nil {
		return err
	}

	points := pipeline.DeriveCurve(data.txs, data.centers, filters,
		currentBalance(data.cfg), data.anchor, data.pastDays, data.futureDays)
	display := pipeline.SliceForDisplay(points, filters.From, filters.To)

	if len(display) == 0 {
		fmt.Println("\n  No days in the selected range.")
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("FLUXO DIÁRIO  %s a %s",
		cli.FormatShortDate(display[0].Date),
		cli.FormatShortDate(display[len(display)-1].Date))))
	fmt.Println()

	values := make([]float64, len(display))
	for i, p := range display {
		values[i], _ = p.Balance.Float64()
	}
	fmt.Printf("  Saldo  %s\n\n", cli.RenderSparkline(values))

	rows := make([][]string, 0, len(display))
	for _, p := range display {
		marker := ""
		if p.Date.Equal(data.anchor) {
			marker = "hoje"
		}
		rows = append(rows, []string{
			cli.FormatDate(p.Date),
			cli.FormatDayOfWeek(int(p.Date.Weekday())),
			cli.FormatBRL(p.Revenue),
			cli.FormatBRL(p.Expenses),
			cli.FormatBRL(p.Balance),
			marker,
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Data", "Dia", "Receitas", "Despesas", "Saldo", ""},
		Rows:    rows,
	}))

	return nil
}
