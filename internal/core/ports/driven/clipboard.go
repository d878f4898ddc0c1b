package driven

// Clipboard reads and writes the system clipboard.
type Clipboard interface {
	// Write replaces the clipboard contents with text.
	Write(text string) error

	// Read returns the current clipboard contents.
	Read() (string, error)
}
