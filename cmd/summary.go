package cmd

import (
	"fmt"

	"fluxo/internal/cashflow"
	"fluxo/internal/cli"
	"fluxo/internal/pipeline"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Cash position, period KPIs, and budget overview",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, _ []string) error {
	data, err := loadLedger()
	if err != nil {
		return err
	}
	filters, err := activeFilters()
	if err != nil {
		return err
	}

	balance := currentBalance(data.cfg)
	base := pipeline.BaseSet(data.txs, data.centers, filters)
	points := pipeline.DeriveCurve(data.txs, data.centers, filters, balance,
		data.anchor, data.pastDays, data.futureDays)
	kpis := pipeline.AggregateKPIs(base, filters.From, filters.To)

	fmt.Println()
	fmt.Println(cli.RenderTitle("FLUXO DE CAIXA"))
	fmt.Println()

	rows := [][]string{
		{"Saldo atual", cli.FormatBRL(balance)},
		{"---"},
		{"Receitas no período", cli.FormatBRL(kpis.TotalRevenue)},
		{"Despesas no período", cli.FormatBRL(kpis.TotalExpenses)},
		{"Resultado", cli.FormatSignedBRL(kpis.Net())},
	}

	if predicted, ok := cashflow.PredictedBalance(points, data.anchor); ok {
		rows = append(rows, []string{"---"})
		rows = append(rows, []string{"Saldo previsto (30d)", cli.FormatBRL(predicted)})
	}

	// Lowest point of the projected curve tells whether trouble is ahead
	// even before any simulation.
	if len(points) > 0 {
		min := points[0]
		for _, p := range points[1:] {
			if p.Balance.LessThan(min.Balance) {
				min = p
			}
		}
		rows = append(rows, []string{"Menor saldo projetado",
			fmt.Sprintf("%s (%s)", cli.FormatBRL(min.Balance), cli.FormatDate(min.Date))})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Indicador", "Valor"},
		Rows:    rows,
	}))

	// Compact budget view; `fluxo budget` has the full chart.
	budgets := pipeline.AggregateBudgets(base, data.centers, filters.From, filters.To)
	budgetRows := make([][]string, 0, len(budgets))
	for _, line := range budgets {
		budgetRows = append(budgetRows, []string{
			line.Center.Name,
			cli.FormatBRL(line.Actual),
			cli.FormatBRL(line.Center.Budget),
			cli.FormatPercent(line.UsedPercent),
		})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Orçamento por Centro de Custo",
		Headers: []string{"Centro", "Realizado", "Orçamento", "Uso"},
		Rows:    budgetRows,
	}))

	return nil
}
