// Package input provides text input components for the TUI.
package input

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/kalk-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/kalk-cli/internal/core/calc"
)

// ExpressionInput wraps a bubbles textinput and only admits calculator
// characters. Editing always happens at the end of the line.
type ExpressionInput struct {
	textinput textinput.Model
	styles    *styles.Styles
	width     int
}

// NewExpressionInput creates a new expression input component.
func NewExpressionInput(s *styles.Styles) *ExpressionInput {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "1'000 * (2 + 3)"
	ti.CharLimit = 512
	ti.Width = 50
	ti.Focus()

	return &ExpressionInput{
		textinput: ti,
		styles:    s,
		width:     50,
	}
}

// Init starts the cursor blinking.
func (e *ExpressionInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update forwards non-key messages such as cursor blinks. Keys go through
// Insert, Backspace and Clear instead.
func (e *ExpressionInput) Update(msg tea.Msg) (*ExpressionInput, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok {
		return e, nil
	}
	var cmd tea.Cmd
	e.textinput, cmd = e.textinput.Update(msg)
	return e, cmd
}

// Insert appends r after mapping it through calc.MapKey. A space is only
// accepted after a non-space character. Reports whether r was accepted.
func (e *ExpressionInput) Insert(r rune) bool {
	value := e.Value()
	if r == ' ' {
		if value == "" || strings.HasSuffix(value, " ") {
			return true
		}
		e.set(value + " ")
		return true
	}

	mapped, ok := calc.MapKey(r)
	if !ok {
		return false
	}
	e.set(value + string(mapped))
	return true
}

// Append adds already-filtered text.
func (e *ExpressionInput) Append(text string) {
	e.set(e.Value() + text)
}

// Backspace removes the last character. Reports whether anything changed.
func (e *ExpressionInput) Backspace() bool {
	value := []rune(e.Value())
	if len(value) == 0 {
		return false
	}
	e.set(string(value[:len(value)-1]))
	return true
}

// View renders the input with a focus-dependent border.
func (e *ExpressionInput) View() string {
	border := e.styles.Border
	if e.Focused() {
		border = e.styles.FocusedBorder
	}
	return border.Width(e.width).Render(e.textinput.View())
}

// Value returns the current input value.
func (e *ExpressionInput) Value() string {
	return e.textinput.Value()
}

// SetValue replaces the input value.
func (e *ExpressionInput) SetValue(value string) {
	e.set(value)
}

func (e *ExpressionInput) set(value string) {
	e.textinput.SetValue(value)
	e.textinput.CursorEnd()
}

// Focus sets focus on the input.
func (e *ExpressionInput) Focus() tea.Cmd {
	return e.textinput.Focus()
}

// Blur removes focus from the input.
func (e *ExpressionInput) Blur() {
	e.textinput.Blur()
}

// Focused returns whether the input is focused.
func (e *ExpressionInput) Focused() bool {
	return e.textinput.Focused()
}

// SetWidth sets the outer width of the input box.
func (e *ExpressionInput) SetWidth(width int) {
	e.width = width
	// Account for border and padding
	inner := width - 4
	if inner < 10 {
		inner = 10
	}
	e.textinput.Width = inner
}

// Width returns the current width.
func (e *ExpressionInput) Width() int {
	return e.width
}

// Reset clears the input.
func (e *ExpressionInput) Reset() {
	e.textinput.Reset()
}
