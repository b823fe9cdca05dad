package tui

import (
	"fmt"
	"strings"

	"fluxo/internal/cli"
	"fluxo/internal/model"
	"fluxo/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderFlowTab(cw, contentH int) string {
	t := theme.Active

	if len(a.baseline) == 0 {
		return lipgloss.NewStyle().Foreground(t.TextMuted).Render("\n  Sem lançamentos na janela.")
	}

	headerStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Bold(true)
	dateStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	revStyle := lipgloss.NewStyle().Foreground(t.Green)
	expStyle := lipgloss.NewStyle().Foreground(t.Red)
	balStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
	negStyle := lipgloss.NewStyle().Foreground(t.Red).Bold(true)
	todayStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)

	// Rows available after header and hint lines.
	visible := contentH - 3
	if visible < 3 {
		visible = 3
	}

	offset := a.flowOffset
	if offset > len(a.baseline)-visible {
		offset = len(a.baseline) - visible
	}
	if offset < 0 {
		offset = 0
	}
	end := offset + visible
	if end > len(a.baseline) {
		end = len(a.baseline)
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf(
		" %-12s %-5s %14s %14s %16s", "Data", "Dia", "Receitas", "Despesas", "Saldo")))
	b.WriteString("\n")

	for _, p := range a.baseline[offset:end] {
		isToday := p.Date.Equal(model.Day(a.anchor))

		date := cli.FormatDate(p.Date)
		day := cli.FormatDayOfWeek(int(p.Date.Weekday()))

		rev := ""
		if !p.Revenue.IsZero() {
			rev = "+" + cli.FormatBRL(p.Revenue)
		}
		exp := ""
		if !p.Expenses.IsZero() {
			exp = "-" + cli.FormatBRL(p.Expenses)
		}

		bs := balStyle
		if p.Balance.IsNegative() {
			bs = negStyle
		}

		ds := dateStyle
		marker := "  "
		if isToday {
			ds = todayStyle
			marker = todayStyle.Render("◂ hoje")
		}

		fmt.Fprintf(&b, " %s %s %s %s %s %s\n",
			ds.Render(fmt.Sprintf("%-12s", date)),
			dimStyle.Render(padRight(day, 5)),
			revStyle.Render(fmt.Sprintf("%14s", rev)),
			expStyle.Render(fmt.Sprintf("%14s", exp)),
			bs.Render(fmt.Sprintf("%16s", cli.FormatBRL(p.Balance))),
			marker)
	}

	b.WriteString(dimStyle.Render(fmt.Sprintf(
		" %d-%d de %d dias · [j/k] rolar [g/G] início/fim", offset+1, end, len(a.baseline))))

	return b.String()
}

// padRight pads by display width; day names carry accented runes ("Sáb").
func padRight(s string, w int) string {
	pad := w - lipgloss.Width(s)
	if pad < 0 {
		pad = 0
	}
	return s + strings.Repeat(" ", pad)
}
