// Package tui provides the interactive Bubble Tea dashboard for fluxo.
package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"fluxo/internal/cashflow"
	"fluxo/internal/config"
	"fluxo/internal/model"
	"fluxo/internal/pipeline"
	"fluxo/internal/tui/components"
	"fluxo/internal/tui/theme"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

// Options configures where the dashboard loads its ledger from.
type Options struct {
	StorePath string
	Fresh     bool
	Seed      int64
}

// DataLoadedMsg is sent when the ledger load finishes.
type DataLoadedMsg struct {
	Cfg    config.Config
	Result *pipeline.LoadResult
}

// simValues backs the simulation form inputs.
type simValues struct {
	amount       string
	installments string
	start        string
}

// App is the root Bubble Tea model.
type App struct {
	opts Options

	// Data
	cfg        config.Config
	txs        []model.Transaction
	centers    []model.CostCenter
	anchor     time.Time
	pastDays   int
	futureDays int
	fromStore  bool
	loaded     bool

	// Derived for the current ledger
	baseline  []model.CashFlowPoint
	kpis      model.PeriodKPIs
	budgets   []model.BudgetLine
	predicted decimal.Decimal
	hasPred   bool

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool

	// Flow tab scroll
	flowOffset int

	// Simulation tab state
	simForm   *huh.Form
	simVals   simValues
	simActive bool
	simExp    model.SimulatedExpense
	simPoints []model.CashFlowPoint
	simResult *model.SimulationResult

	spinner spinner.Model
}

const (
	minTerminalWidth = 70
	maxContentWidth  = 140
	minContentHeight = 5
)

// NewApp creates a new TUI app model.
func NewApp(opts Options) App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent).Background(theme.Active.Surface)

	return App{
		opts:    opts,
		spinner: sp,
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.Batch(
		loadDataCmd(a.opts),
		a.spinner.Tick,
	)
}

// loadDataCmd loads the ledger off the UI goroutine.
func loadDataCmd(opts Options) tea.Cmd {
	return func() tea.Msg {
		cfg, err := config.Load()
		if err != nil {
			cfg = config.DefaultConfig()
		}
		result := pipeline.Load(cfg, pipeline.LoadOptions{
			StorePath: opts.StorePath,
			Fresh:     opts.Fresh,
			Seed:      opts.Seed,
		})
		return DataLoadedMsg{Cfg: cfg, Result: result}
	}
}

func (a *App) recompute() {
	a.baseline = pipeline.DeriveCurve(a.txs, a.centers, pipeline.Filters{},
		a.cfg.Balance(), a.anchor, a.pastDays, a.futureDays)
	a.kpis = pipeline.AggregateKPIs(a.txs, time.Time{}, time.Time{})
	a.budgets = pipeline.AggregateBudgets(a.txs, a.centers, time.Time{}, time.Time{})
	a.predicted, a.hasPred = cashflow.PredictedBalance(a.baseline, a.anchor)

	// Start the flow tab scrolled to just above today.
	for i, p := range a.baseline {
		if p.Date.Equal(model.Day(a.anchor)) {
			a.flowOffset = i - 2
			if a.flowOffset < 0 {
				a.flowOffset = 0
			}
			break
		}
	}

	// A new ledger invalidates any overlay derived from the old baseline.
	a.simPoints = nil
	a.simResult = nil
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.simForm != nil {
			a.simForm = a.simForm.WithWidth(a.contentWidth())
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		// Global: quit
		if key == "ctrl+c" {
			return a, tea.Quit
		}

		if !a.loaded {
			return a, nil
		}

		// The simulation form intercepts all keys while active
		if a.simActive && a.simForm != nil {
			if key == "esc" {
				a.simActive = false
				a.simForm = nil
				return a, nil
			}
			return a.updateSimForm(msg)
		}

		// Help toggle
		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}

		// Dismiss help
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		// Flow tab scroll
		if a.activeTab == 1 {
			switch key {
			case "j", "down":
				a.flowOffset++
				return a, nil
			case "k", "up":
				if a.flowOffset > 0 {
					a.flowOffset--
				}
				return a, nil
			case "g":
				a.flowOffset = 0
				return a, nil
			case "G":
				a.flowOffset = len(a.baseline) // clamped at render time
				return a, nil
			}
		}

		// Simulation tab actions
		if a.activeTab == 3 {
			switch key {
			case "n", "enter":
				a.simVals = simValues{}
				a.simForm = newSimForm(&a.simVals)
				if a.width > 0 {
					a.simForm = a.simForm.WithWidth(a.contentWidth())
				}
				a.simActive = true
				return a, a.simForm.Init()
			case "c":
				a.simPoints = nil
				a.simResult = nil
				return a, nil
			}
		}

		if key == "q" {
			return a, tea.Quit
		}

		// Tab navigation
		switch key {
		case "left":
			a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
			return a, nil
		case "right":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
			return a, nil
		}
		if len([]rune(key)) == 1 {
			if idx := components.TabIdxByKey([]rune(key)[0]); idx >= 0 {
				a.activeTab = idx
			}
		}
		return a, nil

	case DataLoadedMsg:
		a.cfg = msg.Cfg
		a.txs = msg.Result.Txs
		a.centers = msg.Result.Centers
		a.anchor = msg.Result.Anchor
		a.pastDays = msg.Result.PastDays
		a.futureDays = msg.Result.FutureDays
		a.fromStore = msg.Result.FromStore
		a.loaded = true
		a.recompute()
		return a, nil

	case spinner.TickMsg:
		if !a.loaded {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	// Forward unhandled messages to the simulation form (cursor blinks, etc.)
	if a.simActive && a.simForm != nil {
		return a.updateSimForm(msg)
	}

	return a, nil
}

func (a App) updateSimForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.simForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.simForm = f
	}

	if a.simForm.State == huh.StateCompleted {
		a.runSimulation()
		a.simActive = false
		a.simForm = nil
		return a, nil
	}

	if a.simForm.State == huh.StateAborted {
		a.simActive = false
		a.simForm = nil
		return a, nil
	}

	return a, cmd
}

// runSimulation parses the completed form and overlays the expense on the
// baseline curve. The form validators guarantee the values parse.
func (a *App) runSimulation() {
	amount, err := decimal.NewFromString(strings.TrimSpace(a.simVals.amount))
	if err != nil || !amount.IsPositive() {
		return
	}
	n, err := strconv.Atoi(strings.TrimSpace(a.simVals.installments))
	if err != nil || n < 1 {
		return
	}

	start := a.anchor
	if s := strings.TrimSpace(a.simVals.start); s != "" {
		parsed, err := time.Parse("2006-01-02", s)
		if err != nil {
			return
		}
		start = parsed
	}

	a.simExp = model.SimulatedExpense{
		Amount:       amount,
		Installments: n,
		StartDate:    start,
	}
	points, result := cashflow.Simulate(a.baseline, a.simExp)
	a.simPoints = points
	a.simResult = &result
}

func newSimForm(v *simValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Valor total (R$)").
				Placeholder("12000").
				Value(&v.amount).
				Validate(func(s string) error {
					d, err := decimal.NewFromString(strings.TrimSpace(s))
					if err != nil {
						return fmt.Errorf("valor inválido")
					}
					if !d.IsPositive() {
						return fmt.Errorf("o valor deve ser positivo")
					}
					return nil
				}),
			huh.NewInput().
				Title("Parcelas").
				Placeholder("1").
				Value(&v.installments).
				Validate(func(s string) error {
					n, err := strconv.Atoi(strings.TrimSpace(s))
					if err != nil || n < 1 {
						return fmt.Errorf("informe um inteiro >= 1")
					}
					return nil
				}),
			huh.NewInput().
				Title("Primeira parcela (AAAA-MM-DD)").
				Placeholder("vazio = hoje").
				Value(&v.start).
				Validate(func(s string) error {
					s = strings.TrimSpace(s)
					if s == "" {
						return nil
					}
					if _, err := time.Parse("2006-01-02", s); err != nil {
						return fmt.Errorf("data inválida, use AAAA-MM-DD")
					}
					return nil
				}),
		),
	).WithTheme(huh.ThemeBase16())
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if !a.loaded {
		return a.viewLoading()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}

	msg := fmt.Sprintf(
		"\n  Terminal muito estreito (%d colunas)\n\n  fluxo precisa de pelo menos %d colunas.\n",
		a.width,
		minTerminalWidth,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewLoading() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderBright).
		Background(t.Surface).
		Padding(2, 4)

	logoStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	subtitleStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(logoStyle.Render("◈ fluxo"))
	b.WriteString(subtitleStyle.Render(" · Fluxo de Caixa"))
	b.WriteString("\n\n")
	b.WriteString(a.spinner.View())
	b.WriteString(subtitleStyle.Render(" Carregando lançamentos..."))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderBright).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Blue).
		Background(t.Surface).
		Bold(true)

	descStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Atalhos"))
	b.WriteString("\n\n")

	bindings := []struct{ key, desc string }{
		{"r f o s", "Ir para aba"},
		{"← →", "Aba anterior / seguinte"},
		{"j k", "Rolar fluxo diário"},
		{"g G", "Início / fim do fluxo"},
		{"n", "Nova simulação"},
		{"c", "Limpar simulação"},
		{"?", "Mostrar / esconder ajuda"},
		{"q", "Sair"},
	}
	for _, bind := range bindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-8s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Pressione qualquer tecla para fechar"))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	header := components.RenderTabBar(a.activeTab, w) + "\n"

	statusBar := components.RenderStatusBar(w, a.anchor.Format("02/01/2006"), a.fromStore)

	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := h - headerH - statusH
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	var content string
	switch a.activeTab {
	case 0:
		content = a.renderOverviewTab(cw)
	case 1:
		content = a.renderFlowTab(cw, contentH)
	case 2:
		content = a.renderBudgetTab(cw)
	case 3:
		content = a.renderSimTab(cw)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = fillLinesWithBackground(content, cw, t.Background)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)

	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// ─── Helpers ────────────────────────────────────────────────────

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	padding := strings.Repeat("\n", h-len(lines))
	return s + padding
}

// fillLinesWithBackground pads each line to width w with background color so
// gaps between cards and empty lines render with the app background.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")

	var result strings.Builder
	for i, line := range lines {
		placed := lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg))
		result.WriteString(placed)
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}
