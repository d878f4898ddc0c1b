// Package clipboard adapts the system clipboard to the driven.Clipboard port.
//
// System uses github.com/atotto/clipboard, which shells out to pbcopy,
// xclip, xsel, wl-copy or the Windows API depending on the platform.
// Memory is a process-local clipboard used in tests and on hosts without
// a clipboard utility.
package clipboard
