// ABOUTME: ProcessTerminal implements Terminal on OS files using golang.org/x/term.
// ABOUTME: Raw mode is toggled on the input fd; size is read from the output fd.

package terminal

import (
	"os"
	"sync"

	"golang.org/x/term"
)

// ProcessTerminal is a real terminal backed by an input and an output
// file, stdin and stdout by default.
type ProcessTerminal struct {
	in  *os.File
	out *os.File

	mu         sync.Mutex
	oldState   *term.State
	resizeFn   func(width, height int)
	listenOnce sync.Once
}

// NewProcessTerminal returns a ProcessTerminal on os.Stdin and os.Stdout.
func NewProcessTerminal() *ProcessTerminal {
	return NewProcessTerminalFiles(os.Stdin, os.Stdout)
}

// NewProcessTerminalFiles returns a ProcessTerminal reading mode state
// from in and writing to out. Both may be the same tty.
func NewProcessTerminalFiles(in, out *os.File) *ProcessTerminal {
	return &ProcessTerminal{in: in, out: out}
}

// EnterRawMode switches the input to raw mode, saving the previous state.
// Entering twice keeps the state saved by the first call.
func (t *ProcessTerminal) EnterRawMode() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.oldState != nil {
		return nil
	}
	state, err := term.MakeRaw(int(t.in.Fd()))
	if err != nil {
		return &IOError{Op: OpEnableRawMode, Err: err}
	}
	t.oldState = state
	return nil
}

// ExitRawMode restores the state saved by EnterRawMode.
func (t *ProcessTerminal) ExitRawMode() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.oldState == nil {
		return nil
	}
	if err := term.Restore(int(t.in.Fd()), t.oldState); err != nil {
		return &IOError{Op: OpDisableRawMode, Err: err}
	}
	t.oldState = nil
	return nil
}

// IsRawMode reports whether a saved state is waiting to be restored.
func (t *ProcessTerminal) IsRawMode() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.oldState != nil
}

// Size returns the current dimensions of the output terminal.
func (t *ProcessTerminal) Size() (width, height int, err error) {
	w, h, err := term.GetSize(int(t.out.Fd()))
	if err != nil {
		return 0, 0, &IOError{Op: OpQuerySize, Err: err}
	}
	return w, h, nil
}

// Write sends bytes to the output file.
func (t *ProcessTerminal) Write(p []byte) (int, error) {
	n, err := t.out.Write(p)
	if err != nil {
		return n, &IOError{Op: OpWrite, Err: err}
	}
	return n, nil
}

// OnResize registers a callback invoked when the terminal is resized.
// Only the latest callback is kept.
func (t *ProcessTerminal) OnResize(fn func(width, height int)) {
	t.mu.Lock()
	t.resizeFn = fn
	t.mu.Unlock()

	t.listenOnce.Do(t.startResizeListener)
}
