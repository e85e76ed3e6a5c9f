// ABOUTME: VirtualTerminal implements Terminal for tests without a real TTY.
// ABOUTME: Captures output, counts writes and raw-mode transitions, and injects failures.

package terminal

import (
	"bytes"
	"sync"
)

// VirtualTerminal is a fake Terminal for unit tests. Errors set with the
// Fail* methods are returned by the matching operation until cleared
// with a nil argument.
type VirtualTerminal struct {
	mu         sync.Mutex
	buf        bytes.Buffer
	width      int
	height     int
	rawMode    bool
	resizeFn   func(width, height int)
	enterCount int
	exitCount  int
	writeCount int

	enterErr error
	exitErr  error
	sizeErr  error
	writeErr error
	writeMax int
}

// NewVirtualTerminal returns a VirtualTerminal with the given dimensions.
func NewVirtualTerminal(width, height int) *VirtualTerminal {
	return &VirtualTerminal{
		width:    width,
		height:   height,
		writeMax: -1,
	}
}

// EnterRawMode records a raw-mode entry.
func (v *VirtualTerminal) EnterRawMode() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.enterErr != nil {
		return v.enterErr
	}
	v.rawMode = true
	v.enterCount++
	return nil
}

// ExitRawMode records a raw-mode exit.
func (v *VirtualTerminal) ExitRawMode() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.exitErr != nil {
		return v.exitErr
	}
	v.rawMode = false
	v.exitCount++
	return nil
}

// Size returns the configured terminal dimensions.
func (v *VirtualTerminal) Size() (width, height int, err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.sizeErr != nil {
		return 0, 0, v.sizeErr
	}
	return v.width, v.height, nil
}

// Write appends data to the internal buffer. With a write limit set it
// accepts at most that many bytes per call.
func (v *VirtualTerminal) Write(p []byte) (int, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.writeCount++
	if v.writeErr != nil {
		return 0, v.writeErr
	}
	if v.writeMax >= 0 && len(p) > v.writeMax {
		p = p[:v.writeMax]
	}
	return v.buf.Write(p)
}

// OnResize stores the resize callback.
func (v *VirtualTerminal) OnResize(fn func(width, height int)) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.resizeFn = fn
}

// --- Test helpers (not part of Terminal interface) ---

// Output returns everything written so far.
func (v *VirtualTerminal) Output() string {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.buf.String()
}

// Reset clears the output buffer and the write counter.
func (v *VirtualTerminal) Reset() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.buf.Reset()
	v.writeCount = 0
}

// IsRawMode reports whether raw mode is currently active.
func (v *VirtualTerminal) IsRawMode() bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.rawMode
}

// EnterCount returns how many times EnterRawMode succeeded.
func (v *VirtualTerminal) EnterCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.enterCount
}

// ExitCount returns how many times ExitRawMode succeeded.
func (v *VirtualTerminal) ExitCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.exitCount
}

// WriteCount returns how many times Write was called.
func (v *VirtualTerminal) WriteCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.writeCount
}

// FailEnterRawMode makes EnterRawMode return err.
func (v *VirtualTerminal) FailEnterRawMode(err error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.enterErr = err
}

// FailExitRawMode makes ExitRawMode return err.
func (v *VirtualTerminal) FailExitRawMode(err error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.exitErr = err
}

// FailSize makes Size return err.
func (v *VirtualTerminal) FailSize(err error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.sizeErr = err
}

// FailWrite makes Write return err without accepting any bytes.
func (v *VirtualTerminal) FailWrite(err error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.writeErr = err
}

// LimitWrite caps the bytes accepted per Write call; n < 0 removes the cap.
func (v *VirtualTerminal) LimitWrite(n int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.writeMax = n
}

// SetSize updates the terminal dimensions and, if a resize callback
// is registered, invokes it with the new size.
func (v *VirtualTerminal) SetSize(width, height int) {
	v.mu.Lock()
	v.width = width
	v.height = height
	fn := v.resizeFn
	v.mu.Unlock()

	if fn != nil {
		fn(width, height)
	}
}
