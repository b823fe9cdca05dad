package components

import (
	"fmt"

	"fluxo/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar.
func RenderStatusBar(width int, anchor string, fromStore bool) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Width(width)

	left := " [?]ajuda  [q]sair"
	right := ""
	if anchor != "" {
		source := "gerado"
		if fromStore {
			source = "salvo"
		}
		right = fmt.Sprintf("Hoje: %s · ledger %s ", anchor, source)
	}

	// Pad middle
	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	bar := left
	for i := 0; i < padding; i++ {
		bar += " "
	}
	bar += right

	return style.Render(bar)
}
