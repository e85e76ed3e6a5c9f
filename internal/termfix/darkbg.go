// ABOUTME: Pins lipgloss to a dark background before anything renders a style
// ABOUTME: Must be imported (with _) by the command before the screen enters raw mode

package termfix

import "github.com/charmbracelet/lipgloss"

func init() {
	// Adaptive colours make lipgloss query the terminal background with
	// OSC 11 the first time a style renders. In raw mode the reply would
	// arrive on stdin as stray bytes, and the query itself would be
	// interleaved with queued screen output. Setting the answer up front
	// makes the sync.Once that issues the query a no-op.
	lipgloss.SetHasDarkBackground(true)
}
