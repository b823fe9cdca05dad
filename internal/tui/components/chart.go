package components

import (
	"strings"

	"fluxo/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// BalanceStrip renders a sparkline of the balance curve where days with a
// negative balance are drawn in red regardless of height.
func BalanceStrip(values []float64, width int) string {
	if len(values) == 0 {
		return ""
	}
	t := theme.Active

	// Downsample to the available width by picking evenly spaced days.
	sampled := values
	negative := make([]bool, len(values))
	if len(values) > width && width > 0 {
		sampled = make([]float64, width)
		negative = make([]bool, width)
		for i := range sampled {
			sampled[i] = values[i*len(values)/width]
		}
	}
	for i, v := range sampled {
		negative[i] = v < 0
	}

	blocks := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}
	lo, hi := sampled[0], sampled[0]
	for _, v := range sampled[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	span := hi - lo
	if span == 0 {
		span = 1
	}

	okStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface)
	dangerStyle := lipgloss.NewStyle().Foreground(t.Red).Background(t.Surface)

	var b strings.Builder
	for i, v := range sampled {
		idx := int((v - lo) / span * float64(len(blocks)-1))
		if idx >= len(blocks) {
			idx = len(blocks) - 1
		}
		if idx < 0 {
			idx = 0
		}
		ch := string(blocks[idx])
		if negative[i] {
			b.WriteString(dangerStyle.Render(ch))
		} else {
			b.WriteString(okStyle.Render(ch))
		}
	}
	return b.String()
}
