package tui

import (
	"fmt"
	"strings"

	"fluxo/internal/cashflow"
	"fluxo/internal/cli"
	"fluxo/internal/model"
	"fluxo/internal/tui/components"
	"fluxo/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderSimTab(cw int) string {
	t := theme.Active

	if a.simActive && a.simForm != nil {
		return components.ContentCard("Nova simulação de gasto", a.simForm.View(), cw)
	}

	if a.simResult == nil {
		hintStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
		keyStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
		return "\n  " + hintStyle.Render("Simule um gasto parcelado sobre a projeção de saldo.") +
			"\n\n  " + keyStyle.Render("[n]") + hintStyle.Render(" nova simulação")
	}

	res := a.simResult
	var b strings.Builder

	// Verdict card
	verdictStyle := lipgloss.NewStyle().Foreground(t.Green).Bold(true)
	verdict := "✓ Viável"
	if res.Verdict == model.VerdictDanger {
		verdictStyle = lipgloss.NewStyle().Foreground(t.Red).Bold(true)
		verdict = "✗ Inviável"
	}
	textStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	header := fmt.Sprintf("%s de %s em %dx",
		verdict, cli.FormatBRL(a.simExp.Amount), a.simExp.Installments)

	var lines []string
	lines = append(lines, verdictStyle.Render(header))
	lines = append(lines, textStyle.Render(res.Text))
	lines = append(lines, "")
	lines = append(lines, dimStyle.Render(fmt.Sprintf("Menor saldo: %s em %s",
		cli.FormatBRL(res.MinBalance), cli.FormatDate(res.MinBalanceDay))))
	if !res.FirstNegative.IsZero() {
		lines = append(lines, dimStyle.Render(
			"Primeiro dia negativo: "+cli.FormatDate(res.FirstNegative)))
	}
	if before, ok := cashflow.PredictedBalance(a.baseline, a.anchor); ok {
		if after, ok := cashflow.PredictedBalance(a.simPoints, a.anchor); ok {
			lines = append(lines, dimStyle.Render(fmt.Sprintf(
				"Previsto +30d: %s → %s", cli.FormatBRL(before), cli.FormatBRL(after))))
		}
	}
	b.WriteString(components.ContentCard("Resultado", strings.Join(lines, "\n"), cw))
	b.WriteString("\n")

	// Installment schedule
	headerStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	negStyle := lipgloss.NewStyle().Foreground(t.Red)

	var tb strings.Builder
	tb.WriteString(headerStyle.Render(fmt.Sprintf("%-4s %-12s %14s %16s", "#", "Data", "Valor", "Saldo após")))
	for _, ins := range res.Installments {
		bs := rowStyle
		if ins.BalanceAfter.IsNegative() {
			bs = negStyle
		}
		tb.WriteString("\n")
		tb.WriteString(rowStyle.Render(fmt.Sprintf("%-4d %-12s %14s ",
			ins.Number, cli.FormatDate(ins.Date), cli.FormatBRL(ins.Amount))))
		tb.WriteString(bs.Render(fmt.Sprintf("%16s", cli.FormatBRL(ins.BalanceAfter))))
	}
	b.WriteString(components.ContentCard("Parcelas", tb.String(), cw))
	b.WriteString("\n")

	// Simulated balance curve
	if len(a.simPoints) > 0 {
		vals := make([]float64, len(a.simPoints))
		for i, p := range a.simPoints {
			vals[i], _ = p.Balance.Float64()
		}
		b.WriteString(components.ContentCard("Saldo com a simulação",
			components.BalanceStrip(vals, components.CardInnerWidth(cw)), cw))
		b.WriteString("\n")
	}

	keyStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	b.WriteString(" " + keyStyle.Render("[n]") + dimStyle.Render(" nova  ") +
		keyStyle.Render("[c]") + dimStyle.Render(" limpar"))

	return b.String()
}
