// ABOUTME: Windows stub for ProcessTerminal resize handling.
// ABOUTME: Windows has no SIGWINCH; resize callbacks are stored but never fired.

//go:build windows

package terminal

// startResizeListener is a no-op on Windows.
// TODO: poll console buffer size via ReadConsoleInput WINDOW_BUFFER_SIZE_EVENT records.
func (t *ProcessTerminal) startResizeListener() {}
