// ABOUTME: Package-level facade functions dispatching to the process-wide Screen on stdin/stdout.
// ABOUTME: Callers that need no injection use these instead of constructing a Screen.

package terminal

import "sync"

var (
	stdOnce sync.Once
	std     *Screen
)

// Default returns the process-wide Screen backed by a ProcessTerminal.
func Default() *Screen {
	stdOnce.Do(func() {
		std = NewScreen(NewProcessTerminal())
	})
	return std
}

// Initialize enables raw mode, clears the screen and homes the cursor.
func Initialize() error { return Default().Initialize() }

// Terminate restores cooked mode.
func Terminate() error { return Default().Terminate() }

// MoveCursor queues a cursor move.
func MoveCursor(p Position) error { return Default().MoveCursor(p) }

// ClearScreen queues a full-screen clear.
func ClearScreen() error { return Default().ClearScreen() }

// ClearLine queues a clear of the cursor row.
func ClearLine() error { return Default().ClearLine() }

// HideCursor queues hiding the cursor.
func HideCursor() error { return Default().HideCursor() }

// ShowCursor queues showing the cursor.
func ShowCursor() error { return Default().ShowCursor() }

// Print queues text at the cursor.
func Print(text string) error { return Default().Print(text) }

// CurrentSize queries the size of the process terminal.
func CurrentSize() (Size, error) { return Default().Size() }

// Execute flushes everything queued on the default Screen.
func Execute() error { return Default().Execute() }

// Enter initializes the default Screen and returns its guard.
func Enter() (*Session, error) { return Default().Enter() }

// Run calls fn between Enter and Close on the default Screen.
func Run(fn func(*Screen) error) error { return Default().Run(fn) }
