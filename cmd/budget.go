package cmd

import (
	"fmt"

	"fluxo/internal/cli"
	"fluxo/internal/pipeline"

	"github.com/spf13/cobra"
)

var budgetCmd = &cobra.Command{
	Use:   "budget",
	Short: "Budget vs. actual per cost center",
	RunE:  runBudget,
}

func init() {
	rootCmd.AddCommand(budgetCmd)
}

func runBudget(_ *cobra.Command, _ []string) error {
	data, err := loadLedger()
	if err != nil {
		return err
	}
	filters, err := activeFilters()
	if err != nil {
		return err
	}

	base := pipeline.BaseSet(data.txs, data.centers, filters)
	budgets := pipeline.AggregateBudgets(base, data.centers, filters.From, filters.To)

	fmt.Println()
	fmt.Println(cli.RenderTitle("ORÇAMENTO POR CENTRO DE CUSTO"))
	fmt.Println()

	// Bars scale against the largest budget so centers are comparable.
	maxBudget := 0.0
	for _, line := range budgets {
		if b, _ := line.Center.Budget.Float64(); b > maxBudget {
			maxBudget = b
		}
	}

	nameW := 0
	for _, line := range budgets {
		if len([]rune(line.Center.Name)) > nameW {
			nameW = len([]rune(line.Center.Name))
		}
	}

	for _, line := range budgets {
		actual, _ := line.Actual.Float64()
		bar := cli.RenderHorizontalBar(actual, maxBudget, 30)
		fmt.Printf("  %-*s  %-30s  %s de %s (%s)\n",
			nameW, line.Center.Name, bar,
			cli.FormatBRL(line.Actual), cli.FormatBRL(line.Center.Budget),
			cli.FormatPercent(line.UsedPercent))
	}
	fmt.Println()

	overruns := 0
	for _, line := range budgets {
		if line.Actual.GreaterThan(line.Center.Budget) {
			overruns++
			fmt.Printf("  %s\n", cli.DangerStyle.Render(
				fmt.Sprintf("%s estourou o orçamento em %s",
					line.Center.Name, cli.FormatBRL(line.Actual.Sub(line.Center.Budget)))))
		}
	}
	if overruns > 0 {
		fmt.Println()
	}

	return nil
}
