// ABOUTME: RestoreOnPanic and RecoverGoroutine put the terminal back in cooked mode after a panic.
// ABOUTME: Both flush a show-cursor command through the Screen before restoring the mode.

package terminal

import (
	"fmt"
	"os"
	"runtime/debug"
)

// RestoreOnPanic should be deferred at the top of main (or any
// goroutine that owns the terminal). On panic it shows the cursor,
// restores cooked mode, prints the panic value and stack trace, then
// exits with code 1.
func RestoreOnPanic(s *Screen) {
	r := recover()
	if r == nil {
		return
	}

	restoreAfterPanic(s)
	fmt.Fprintf(os.Stderr, "\npanic: %v\n\n%s\n", r, debug.Stack())
	os.Exit(1)
}

// RecoverGoroutine should be deferred at the top of background goroutines
// that run while the terminal is in raw mode. Unlike RestoreOnPanic it
// does not exit, leaving shutdown to the owner of the terminal.
func RecoverGoroutine(s *Screen) {
	r := recover()
	if r == nil {
		return
	}

	restoreAfterPanic(s)
	fmt.Fprintf(os.Stderr, "\ngoroutine panic: %v\n\n%s\n", r, debug.Stack())
}

// restoreAfterPanic is best-effort; errors have nowhere to go.
func restoreAfterPanic(s *Screen) {
	_ = s.ShowCursor()
	_ = s.Execute()
	_ = s.Terminate()
}
