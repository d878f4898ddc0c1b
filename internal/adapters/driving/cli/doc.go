// Package cli provides the cobra command tree for kalk.
//
// Services are injected by main through SetServices, SetTUIConfig and
// SetMCPConfig before Execute runs. Running kalk without a subcommand
// starts the terminal UI.
package cli
