package clipboard

import (
	"fmt"
	"sync"

	"github.com/atotto/clipboard"

	"github.com/custodia-labs/kalk-cli/internal/core/domain"
	"github.com/custodia-labs/kalk-cli/internal/core/ports/driven"
)

var (
	_ driven.Clipboard = (*System)(nil)
	_ driven.Clipboard = (*Memory)(nil)
)

// System accesses the operating system clipboard.
type System struct{}

// NewSystem returns the system clipboard adapter.
func NewSystem() *System {
	return &System{}
}

// Available reports whether a clipboard utility was found.
func (s *System) Available() bool {
	return !clipboard.Unsupported
}

// Write copies text to the clipboard.
func (s *System) Write(text string) error {
	if !s.Available() {
		return domain.ErrClipboardUnavailable
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrClipboardUnavailable, err)
	}
	return nil
}

// Read returns the clipboard contents.
func (s *System) Read() (string, error) {
	if !s.Available() {
		return "", domain.ErrClipboardUnavailable
	}
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrClipboardUnavailable, err)
	}
	return text, nil
}

// Memory is an in-process clipboard.
type Memory struct {
	mu   sync.Mutex
	text string
}

// NewMemory returns an empty in-process clipboard.
func NewMemory() *Memory {
	return &Memory{}
}

// Write stores text.
func (m *Memory) Write(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text = text
	return nil
}

// Read returns the stored text.
func (m *Memory) Read() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text, nil
}

// New returns the system clipboard when one is available and an
// in-process clipboard otherwise.
func New() driven.Clipboard {
	if sys := NewSystem(); sys.Available() {
		return sys
	}
	return NewMemory()
}
