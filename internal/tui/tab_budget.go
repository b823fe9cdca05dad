package tui

import (
	"strings"

	"fluxo/internal/cli"
	"fluxo/internal/tui/components"
	"fluxo/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderBudgetTab(cw int) string {
	t := theme.Active

	if len(a.budgets) == 0 {
		return lipgloss.NewStyle().Foreground(t.TextMuted).Render("\n  Nenhum centro de custo configurado.")
	}

	labelW := 0
	for _, line := range a.budgets {
		if w := lipgloss.Width(line.Center.Name); w > labelW {
			labelW = w
		}
	}

	innerW := components.CardInnerWidth(cw)
	barW := innerW - labelW - 42
	if barW < 10 {
		barW = 10
	}

	warnStyle := lipgloss.NewStyle().Foreground(t.Red).Bold(true)

	var rows []string
	for _, line := range a.budgets {
		pct := line.UsedPercent
		detail := cli.FormatBRL(line.Actual) + " / " + cli.FormatBRL(line.Center.Budget)
		rows = append(rows, components.BudgetBar(line.Center.Name, pct, detail, labelW, barW))
		if pct > 1 {
			over := line.Actual.Sub(line.Center.Budget)
			rows = append(rows, strings.Repeat(" ", labelW+1)+
				warnStyle.Render("estouro de "+cli.FormatBRL(over)))
		}
	}

	return components.ContentCard("Orçado vs. Realizado", strings.Join(rows, "\n"), cw)
}
