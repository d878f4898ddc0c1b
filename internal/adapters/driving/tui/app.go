package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/kalk-cli/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/kalk-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/kalk-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/kalk-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/kalk-cli/internal/adapters/driving/tui/views/calculator"
	"github.com/custodia-labs/kalk-cli/internal/adapters/driving/tui/views/history"
)

// chromeHeight is the number of rows used by the tab bar and status bar.
const chromeHeight = 3

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	keymap *keymap.KeyMap
	help   help.Model

	// statusBar is shared with both views.
	statusBar *status.Bar

	calculatorView *calculator.View
	historyView    *history.View

	// activeTab tracks which tab receives keys.
	activeTab messages.Tab

	// showHelp overlays the full key reference.
	showHelp bool

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has received its first window size.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	bar := status.NewBar(s)

	return &App{
		ports:          ports,
		ctx:            context.Background(),
		styles:         s,
		keymap:         keymap.DefaultKeyMap(),
		help:           help.New(),
		statusBar:      bar,
		calculatorView: calculator.NewView(s, ports.Calculator, ports.Clipboard, bar),
		historyView:    history.NewView(s, ports.History, ports.Settings, ports.Clipboard, bar),
		activeTab:      messages.TabCalculator,
	}, nil
}

// WithContext sets the context for the app and its views.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.calculatorView.WithContext(ctx)
	a.historyView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("kalk"),
		a.calculatorView.Init(),
		a.historyView.Init(),
	)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case messages.CalculationCompleted:
		a.calculatorView, cmd = a.calculatorView.Update(msg)
		if msg.Err == nil {
			return a, tea.Batch(cmd, a.historyView.Reload())
		}
		return a, cmd

	case messages.HistoryLoaded, messages.HistoryDeleted:
		a.historyView, cmd = a.historyView.Update(msg)
		return a, cmd

	case messages.ExpressionRecalled:
		a.activeTab = messages.TabCalculator
		return a, a.calculatorView.Recall(msg.Expression)

	case messages.TabChanged:
		return a, a.switchTab(msg.Tab)

	case messages.SettingsChanged:
		a.statusBar.SetMessage("Settings reloaded")
		return a, a.historyView.Reload()

	case messages.StatusChanged:
		if msg.IsError {
			a.statusBar.SetError(msg.Message)
		} else {
			a.statusBar.SetMessage(msg.Message)
		}
		return a, nil

	case messages.Quit:
		return a, tea.Quit
	}

	// Cursor blink and other component messages belong to the input.
	a.calculatorView, cmd = a.calculatorView.Update(msg)
	return a, cmd
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, a.keymap.ForceQuit) {
		return a, tea.Quit
	}

	if a.showHelp {
		if key.Matches(msg, a.keymap.Help, a.keymap.Back, a.keymap.Quit) {
			a.showHelp = false
		}
		return a, nil
	}

	switch {
	case key.Matches(msg, a.keymap.Help):
		a.showHelp = true
		return a, nil

	case key.Matches(msg, a.keymap.PrevTab):
		return a, a.switchTab(a.activeTab.Prev())

	case key.Matches(msg, a.keymap.NextTab):
		return a, a.switchTab(a.activeTab.Next())

	case key.Matches(msg, a.keymap.Quit):
		if a.activeTab == messages.TabHistory || a.calculatorView.Input() == "" {
			return a, tea.Quit
		}

	case key.Matches(msg, a.keymap.Back):
		if a.activeTab == messages.TabHistory {
			return a, a.switchTab(messages.TabCalculator)
		}
	}

	var cmd tea.Cmd
	switch a.activeTab {
	case messages.TabCalculator:
		a.calculatorView, cmd = a.calculatorView.Update(msg)
	case messages.TabHistory:
		a.historyView, cmd = a.historyView.Update(msg)
	}
	return a, cmd
}

func (a *App) switchTab(tab messages.Tab) tea.Cmd {
	a.activeTab = tab
	if tab == messages.TabHistory {
		return a.historyView.Reload()
	}
	return nil
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	var content string
	switch {
	case a.showHelp:
		content = a.viewHelp()
	case a.activeTab == messages.TabHistory:
		content = a.historyView.View()
	default:
		content = a.calculatorView.View()
	}

	a.statusBar.SetHints(a.hints())

	return lipgloss.JoinVertical(lipgloss.Left,
		a.viewTabs(),
		content,
		a.statusBar.View(),
	)
}

func (a *App) viewTabs() string {
	parts := []string{a.styles.AppTitle.Render("kalk")}
	for _, tab := range messages.AllTabs() {
		style := a.styles.Tab
		if tab == a.activeTab {
			style = a.styles.ActiveTab
		}
		parts = append(parts, style.Render(tab.String()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...) + "\n"
}

func (a *App) viewHelp() string {
	var b strings.Builder
	b.WriteString(a.styles.Title.Render("Keys"))
	b.WriteString("\n\n")
	b.WriteString(a.help.FullHelpView(a.keymap.FullHelp()))
	b.WriteString("\n\n")
	b.WriteString(a.styles.Muted.Render("? or esc to close"))
	return a.styles.FocusedBorder.Render(b.String())
}

func (a *App) hints() []key.Binding {
	if a.showHelp {
		return []key.Binding{a.keymap.Back}
	}
	if a.activeTab == messages.TabHistory {
		return a.historyView.Hints()
	}
	return a.calculatorView.Hints()
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// ActiveTab returns the tab receiving keys.
func (a *App) ActiveTab() messages.Tab {
	return a.activeTab
}

// ShowingHelp reports whether the help overlay is open.
func (a *App) ShowingHelp() bool {
	return a.showHelp
}

// StatusBar returns the shared status bar.
func (a *App) StatusBar() *status.Bar {
	return a.statusBar
}

// CalculatorView returns the Calculator tab.
func (a *App) CalculatorView() *calculator.View {
	return a.calculatorView
}

// HistoryView returns the History tab.
func (a *App) HistoryView() *history.View {
	return a.historyView
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions and sizes both views.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.help.Width = width
	a.statusBar.SetWidth(width)

	contentHeight := height - chromeHeight
	a.calculatorView.SetDimensions(width, contentHeight)
	a.historyView.SetDimensions(width, contentHeight)
}
