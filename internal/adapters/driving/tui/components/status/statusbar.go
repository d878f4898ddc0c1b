// Package status provides status bar components for the TUI.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/kalk-cli/internal/adapters/driving/tui/styles"
)

// Bar displays the latest status message and keybinding hints.
type Bar struct {
	styles  *styles.Styles
	message string
	isError bool
	hints   []key.Binding
	width   int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &Bar{
		styles: s,
		width:  80,
	}
}

// View renders the status bar.
func (s *Bar) View() string {
	left := s.renderLeft()
	right := s.renderRight()

	padding := s.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if padding < 1 {
		padding = 1
	}

	return s.styles.StatusBar.Width(s.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

func (s *Bar) renderLeft() string {
	switch {
	case s.message == "":
		return s.styles.Muted.Render("Ready")
	case s.isError:
		return s.styles.Error.Render(s.message)
	default:
		return s.styles.Normal.Render(s.message)
	}
}

func (s *Bar) renderRight() string {
	hints := make([]string, 0, len(s.hints))
	for _, b := range s.hints {
		h := b.Help()
		hints = append(hints, fmt.Sprintf("%s: %s", h.Key, h.Desc))
	}
	return s.styles.Muted.Render(strings.Join(hints, " | "))
}

// SetMessage sets an informational message.
func (s *Bar) SetMessage(message string) {
	s.message = message
	s.isError = false
}

// SetError sets an error message.
func (s *Bar) SetError(message string) {
	s.message = message
	s.isError = true
}

// Message returns the current message.
func (s *Bar) Message() string {
	return s.message
}

// IsError reports whether the current message is an error.
func (s *Bar) IsError() bool {
	return s.isError
}

// SetHints sets the keybindings shown on the right.
func (s *Bar) SetHints(hints []key.Binding) {
	s.hints = hints
}

// SetWidth sets the status bar width.
func (s *Bar) SetWidth(width int) {
	s.width = width
}

// Width returns the current width.
func (s *Bar) Width() int {
	return s.width
}

// Clear removes the message.
func (s *Bar) Clear() {
	s.message = ""
	s.isError = false
}
