// Package calculator provides the expression input and result view.
package calculator

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/kalk-cli/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/kalk-cli/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/kalk-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/kalk-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/kalk-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/kalk-cli/internal/core/calc"
	"github.com/custodia-labs/kalk-cli/internal/core/domain"
	"github.com/custodia-labs/kalk-cli/internal/core/ports/driven"
	"github.com/custodia-labs/kalk-cli/internal/core/ports/driving"
)

// Focus identifies which box receives keys.
type Focus int

const (
	// FocusInput is the expression input.
	FocusInput Focus = iota
	// FocusResult is the result box.
	FocusResult
)

// View is the Calculator tab.
type View struct {
	styles     *styles.Styles
	keymap     *keymap.KeyMap
	calculator driving.CalculatorService
	clipboard  driven.Clipboard
	bar        *status.Bar
	ctx        context.Context

	input  *input.ExpressionInput
	result string
	focus  Focus
	width  int
	height int
}

// NewView creates a new calculator view. Status messages are written to bar.
func NewView(
	s *styles.Styles,
	calculator driving.CalculatorService,
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
		styles:     s,
		keymap:     keymap.DefaultKeyMap(),
		calculator: calculator,
		clipboard:  clipboard,
		bar:        bar,
		ctx:        context.Background(),
		input:      input.NewExpressionInput(s),
		focus:      FocusInput,
		width:      80,
		height:     24,
	}
}

// WithContext sets the context used for evaluations.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init starts the input cursor.
func (v *View) Init() tea.Cmd {
	return v.input.Init()
}

// Update handles messages for the calculator view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return v.handleKey(msg)

	case messages.CalculationCompleted:
		v.handleCalculation(msg)
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

func (v *View) handleKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	if msg.Paste {
		v.insertText(string(msg.Runes))
		return v, nil
	}

	switch {
	case key.Matches(msg, v.keymap.Evaluate):
		return v, v.evaluate()

	case key.Matches(msg, v.keymap.Backspace):
		if v.input.Backspace() {
			v.bar.Clear()
		}
		return v, nil

	case key.Matches(msg, v.keymap.Clear):
		v.input.Reset()
		v.result = ""
		v.bar.SetMessage("Cleared")
		return v, nil

	case key.Matches(msg, v.keymap.Up):
		return v, v.setFocus(FocusInput)

	case key.Matches(msg, v.keymap.Down):
		return v, v.setFocus(FocusResult)

	case key.Matches(msg, v.keymap.Yank):
		v.yank()
		return v, nil

	case key.Matches(msg, v.keymap.Paste):
		v.paste()
		return v, nil
	}

	if msg.Type == tea.KeySpace || msg.Type == tea.KeyRunes {
		if v.focus != FocusInput {
			return v, nil
		}
		for _, r := range msg.Runes {
			v.insertRune(r)
		}
	}
	return v, nil
}

func (v *View) insertRune(r rune) {
	if !v.input.Insert(r) {
		v.bar.SetError(fmt.Sprintf("Invalid input: '%c'", r))
		return
	}
	if r != ' ' {
		v.bar.Clear()
	}
}

// insertText handles bracketed paste from the terminal.
func (v *View) insertText(text string) {
	if v.focus != FocusInput {
		return
	}
	filtered := calc.FilterInput(text)
	v.input.Append(filtered)
	v.bar.SetMessage("Pasted: " + filtered)
}

func (v *View) evaluate() tea.Cmd {
	expr := v.input.Value()
	if expr == "" {
		v.bar.SetMessage("Nothing to evaluate")
		return nil
	}
	if v.calculator == nil {
		v.bar.SetError("Error: calculator unavailable")
		return nil
	}

	ctx := v.ctx
	calculator := v.calculator
	return func() tea.Msg {
		c, err := calculator.Evaluate(ctx, expr)
		return messages.CalculationCompleted{Expression: expr, Calculation: c, Err: err}
	}
}

func (v *View) handleCalculation(msg messages.CalculationCompleted) {
	if msg.Err != nil {
		v.result = ""
		v.bar.SetError("Error: " + domain.UserMessage(msg.Err))
		return
	}

	v.result = msg.Calculation.Display
	// Keep anything typed while the evaluation was running.
	if v.input.Value() == msg.Expression {
		v.input.Reset()
	}
	v.bar.SetMessage("Calculated")
}

func (v *View) setFocus(f Focus) tea.Cmd {
	v.focus = f
	if f == FocusInput {
		return v.input.Focus()
	}
	v.input.Blur()
	return nil
}

func (v *View) yank() {
	text := v.input.Value()
	if v.focus == FocusResult {
		text = v.result
	}

	if text == "" {
		v.bar.SetMessage("Nothing to yank")
		return
	}
	if v.clipboard == nil || v.clipboard.Write(text) != nil {
		v.bar.SetError("Yank failed")
		return
	}
	v.bar.SetMessage("Yanked: " + text)
}

func (v *View) paste() {
	if v.focus != FocusInput {
		return
	}
	if v.clipboard == nil {
		v.bar.SetMessage("Nothing to paste")
		return
	}

	text, err := v.clipboard.Read()
	if err != nil || text == "" {
		v.bar.SetMessage("Nothing to paste")
		return
	}
	v.insertText(text)
}

// Recall replaces the input with expr and focuses it.
func (v *View) Recall(expr string) tea.Cmd {
	v.input.SetValue(expr)
	v.bar.SetMessage("Recalled: " + expr)
	return v.setFocus(FocusInput)
}

// View renders the input and result boxes.
func (v *View) View() string {
	inputView := v.input.View()

	resultBorder := v.styles.Border
	if v.focus == FocusResult {
		resultBorder = v.styles.FocusedBorder
	}
	resultText := v.styles.Muted.Render("=")
	if v.result != "" {
		resultText = v.styles.Result.Render(v.result)
	}
	resultView := resultBorder.Width(v.boxWidth()).Render(resultText)

	return lipgloss.JoinVertical(lipgloss.Left, inputView, resultView)
}

func (v *View) boxWidth() int {
	if v.width < 20 {
		return 20
	}
	return v.width - 2
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.input.SetWidth(v.boxWidth())
}

// Input returns the current expression text.
func (v *View) Input() string {
	return v.input.Value()
}

// Result returns the last displayed result.
func (v *View) Result() string {
	return v.result
}

// Focus returns which box has focus.
func (v *View) Focus() Focus {
	return v.focus
}

// Hints returns the keybindings to show in the status bar.
func (v *View) Hints() []key.Binding {
	return v.keymap.CalculatorHelp()
}

// Reset clears input, result and focus.
func (v *View) Reset() {
	v.input.Reset()
	v.result = ""
	v.setFocus(FocusInput)
}
