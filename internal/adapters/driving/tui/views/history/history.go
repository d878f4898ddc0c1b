// Package history provides the calculation history view.
package history

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/kalk-cli/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/kalk-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/kalk-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/kalk-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/kalk-cli/internal/core/domain"
	"github.com/custodia-labs/kalk-cli/internal/core/ports/driven"
	"github.com/custodia-labs/kalk-cli/internal/core/ports/driving"
)

// noSelection marks that no entry is highlighted yet.
const noSelection = -1

// View is the History tab.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	history   driving.HistoryService
	settings  driving.SettingsService
	clipboard driven.Clipboard
	bar       *status.Bar
	ctx       context.Context

	calculations []domain.Calculation
	selected     int
	width        int
	height       int
}

// NewView creates a new history view. settings may be nil.
func NewView(
	s *styles.Styles,
	history driving.HistoryService,
	settings driving.SettingsService,
	clipboard driven.Clipboard,
	bar *status.Bar,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if bar == nil {
		bar = status.NewBar(s)
	}

	return &View{
		styles:    s,
		keymap:    keymap.DefaultKeyMap(),
		history:   history,
		settings:  settings,
		clipboard: clipboard,
		bar:       bar,
		ctx:       context.Background(),
		selected:  noSelection,
		width:     80,
		height:    24,
	}
}

// WithContext sets the context used for service calls.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init loads the history.
func (v *View) Init() tea.Cmd {
	return v.Reload()
}

// Reload returns a command that fetches all stored calculations.
func (v *View) Reload() tea.Cmd {
	if v.history == nil {
		return nil
	}
	ctx := v.ctx
	history := v.history
	return func() tea.Msg {
		calcs, err := history.List(ctx, 0)
		return messages.HistoryLoaded{Calculations: calcs, Err: err}
	}
}

// Update handles messages for the history view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case messages.HistoryLoaded:
		if msg.Err != nil {
			v.bar.SetError("Error: " + msg.Err.Error())
			return v, nil
		}
		v.calculations = msg.Calculations
		v.clampSelection()
		return v, nil

	case messages.HistoryDeleted:
		if msg.Err != nil {
			v.bar.SetError("Error: " + msg.Err.Error())
			return v, nil
		}
		v.bar.SetMessage("Deleted")
		return v, v.Reload()

	case tea.KeyMsg:
		return v.handleKey(msg)
	}

	return v, nil
}

func (v *View) handleKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keymap.Up):
		v.prev()
	case key.Matches(msg, v.keymap.Down):
		v.next()
	case key.Matches(msg, v.keymap.Top):
		if len(v.calculations) > 0 {
			v.selected = 0
		}
	case key.Matches(msg, v.keymap.Bottom):
		if len(v.calculations) > 0 {
			v.selected = len(v.calculations) - 1
		}
	case key.Matches(msg, v.keymap.Yank):
		v.yank()
	case key.Matches(msg, v.keymap.Recall):
		if c, ok := v.Selected(); ok {
			expr := c.Expression
			return v, func() tea.Msg { return messages.ExpressionRecalled{Expression: expr} }
		}
	case key.Matches(msg, v.keymap.Delete):
		return v, v.deleteSelected()
	}
	return v, nil
}

// next moves down, wrapping to the top. With nothing selected it starts
// at the newest entry.
func (v *View) next() {
	if len(v.calculations) == 0 {
		return
	}
	if v.selected == noSelection || v.selected >= len(v.calculations)-1 {
		v.selected = 0
		return
	}
	v.selected++
}

// prev moves up, wrapping to the bottom. With nothing selected it starts
// at the oldest entry.
func (v *View) prev() {
	if len(v.calculations) == 0 {
		return
	}
	if v.selected <= 0 {
		v.selected = len(v.calculations) - 1
		return
	}
	v.selected--
}

func (v *View) clampSelection() {
	switch {
	case len(v.calculations) == 0:
		v.selected = noSelection
	case v.selected >= len(v.calculations):
		v.selected = len(v.calculations) - 1
	}
}

func (v *View) yank() {
	c, ok := v.Selected()
	if !ok || c.Display == "" {
		v.bar.SetMessage("Nothing to yank")
		return
	}
	if v.clipboard == nil || v.clipboard.Write(c.Display) != nil {
		v.bar.SetError("Yank failed")
		return
	}
	v.bar.SetMessage("Yanked: " + c.Display)
}

func (v *View) deleteSelected() tea.Cmd {
	c, ok := v.Selected()
	if !ok || v.history == nil {
		return nil
	}
	ctx := v.ctx
	history := v.history
	id := c.ID
	return func() tea.Msg {
		return messages.HistoryDeleted{ID: id, Err: history.Delete(ctx, id)}
	}
}

// View renders the history list, newest first.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Subtitle.Render(v.title()))
	b.WriteString("\n\n")

	if len(v.calculations) == 0 {
		b.WriteString(v.styles.Muted.Render("No calculations yet"))
		return v.styles.FocusedBorder.Width(v.boxWidth()).Render(b.String())
	}

	start, end := v.visibleRange()
	for i := start; i < end; i++ {
		c := v.calculations[i]
		line := v.styles.Muted.Render(c.Expression) + " = " + v.styles.Normal.Render(c.Display)
		if i == v.selected {
			line = " > " + v.styles.Selected.Render(c.Expression+" = "+c.Display)
		} else {
			line = "   " + line
		}
		b.WriteString(line)
		if i < end-1 {
			b.WriteString("\n")
		}
	}

	return v.styles.FocusedBorder.Width(v.boxWidth()).Render(b.String())
}

func (v *View) title() string {
	if v.settings != nil {
		if s, err := v.settings.Get(); err == nil {
			return fmt.Sprintf("%d of %d kept", len(v.calculations), s.History.Limit)
		}
	}
	return fmt.Sprintf("%d calculations", len(v.calculations))
}

// visibleRange keeps the selection on screen.
func (v *View) visibleRange() (int, int) {
	rows := v.height - 4
	if rows < 1 {
		rows = 1
	}
	if len(v.calculations) <= rows {
		return 0, len(v.calculations)
	}

	start := 0
	if v.selected >= rows {
		start = v.selected - rows + 1
	}
	return start, min(start+rows, len(v.calculations))
}

func (v *View) boxWidth() int {
	if v.width < 20 {
		return 20
	}
	return v.width - 2
}

// SetDimensions sets the view dimensions. height is the space available
// for the list box.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
}

// Selected returns the highlighted calculation.
func (v *View) Selected() (domain.Calculation, bool) {
	if v.selected < 0 || v.selected >= len(v.calculations) {
		return domain.Calculation{}, false
	}
	return v.calculations[v.selected], true
}

// SelectedIndex returns the highlighted index, or -1.
func (v *View) SelectedIndex() int {
	return v.selected
}

// Calculations returns the loaded calculations.
func (v *View) Calculations() []domain.Calculation {
	return v.calculations
}

// Hints returns the keybindings to show in the status bar.
func (v *View) Hints() []key.Binding {
	return v.keymap.HistoryHelp()
}
