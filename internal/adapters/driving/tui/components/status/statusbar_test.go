package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/kalk-cli/internal/adapters/driving/tui/keymap"
)

func TestNewBar(t *testing.T) {
	bar := NewBar(nil)

	require.NotNil(t, bar)
	assert.Equal(t, 80, bar.Width())
	assert.Empty(t, bar.Message())
}

func TestBar_View_Ready(t *testing.T) {
	bar := NewBar(nil)

	assert.Contains(t, bar.View(), "Ready")
}

func TestBar_SetMessageAndError(t *testing.T) {
	bar := NewBar(nil)

	bar.SetError("Error: Division by zero")
	assert.True(t, bar.IsError())
	assert.Contains(t, bar.View(), "Error: Division by zero")

	bar.SetMessage("Calculated")
	assert.False(t, bar.IsError())
	assert.Equal(t, "Calculated", bar.Message())
	assert.Contains(t, bar.View(), "Calculated")

	bar.Clear()
	assert.Empty(t, bar.Message())
	assert.False(t, bar.IsError())
}

func TestBar_Hints(t *testing.T) {
	bar := NewBar(nil)
	bar.SetWidth(120)
	bar.SetHints(keymap.DefaultKeyMap().CalculatorHelp())

	view := bar.View()

	assert.Contains(t, view, "calculate")
	assert.Contains(t, view, "yank")
}

func TestBar_NarrowWidthStillRenders(t *testing.T) {
	bar := NewBar(nil)
	bar.SetWidth(10)
	bar.SetMessage("Pasted: 1+2")

	assert.Contains(t, bar.View(), "Pasted")
}
