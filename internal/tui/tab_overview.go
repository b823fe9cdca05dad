package tui

import (
	"fmt"
	"strings"

	"fluxo/internal/cli"
	"fluxo/internal/tui/components"
	"fluxo/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderOverviewTab(cw int) string {
	t := theme.Active
	var b strings.Builder

	// Row 1: Metric cards
	predicted := "—"
	if a.hasPred {
		predicted = cli.FormatBRL(a.predicted)
	}

	cards := []components.Metric{
		{Label: "Saldo atual", Value: cli.FormatBRL(a.cfg.Balance()), Note: "hoje"},
		{Label: "Receitas", Value: cli.FormatBRL(a.kpis.TotalRevenue), Note: "janela completa"},
		{Label: "Despesas", Value: cli.FormatBRL(a.kpis.TotalExpenses), Note: "janela completa"},
		{Label: "Previsto +30d", Value: predicted, Note: "projeção"},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	// Row 2: Balance curve across the whole window
	if len(a.baseline) > 0 {
		vals := make([]float64, len(a.baseline))
		for i, p := range a.baseline {
			vals[i], _ = p.Balance.Float64()
		}
		first := a.baseline[0].Date
		last := a.baseline[len(a.baseline)-1].Date
		b.WriteString(components.ContentCard(
			fmt.Sprintf("Saldo projetado (%s a %s)", cli.FormatShortDate(first), cli.FormatShortDate(last)),
			components.BalanceStrip(vals, components.CardInnerWidth(cw)),
			cw,
		))
		b.WriteString("\n")
	}

	// Row 3: Top budget lines
	if len(a.budgets) > 0 {
		top := a.budgets
		if len(top) > 3 {
			top = top[:3]
		}

		labelW := 0
		for _, line := range top {
			if w := lipgloss.Width(line.Center.Name); w > labelW {
				labelW = w
			}
		}

		barW := components.CardInnerWidth(cw) - labelW - 30
		if barW < 10 {
			barW = 10
		}

		var rows []string
		for _, line := range top {
			pct := line.UsedPercent
			detail := cli.FormatBRL(line.Actual) + " / " + cli.FormatBRL(line.Center.Budget)
			rows = append(rows, components.BudgetBar(line.Center.Name, pct, detail, labelW, barW))
		}
		b.WriteString(components.ContentCard("Orçamento por centro de custo", strings.Join(rows, "\n"), cw))
		b.WriteString("\n")
	}

	// Footnote
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	b.WriteString(dimStyle.Render(fmt.Sprintf(
		" %d lançamentos · janela -%dd/+%dd", len(a.txs), a.pastDays, a.futureDays)))

	return b.String()
}
