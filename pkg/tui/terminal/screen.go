// ABOUTME: Screen queues cursor, clear, visibility and text commands and writes them on Execute.
// ABOUTME: Batching every update into one flush avoids visible tearing.

package terminal

import (
	"io"
	"sync"
)

// Screen is the terminal facade. Every queuing method appends to an
// in-memory buffer; nothing reaches the device until Execute. Size is
// the only call that talks to the device synchronously.
//
// Screen assumes a single logical writer. The mutex only keeps queue
// order equal to call order.
type Screen struct {
	dev Terminal

	mu  sync.Mutex
	buf []byte
}

// NewScreen returns a Screen writing to dev.
func NewScreen(dev Terminal) *Screen {
	return &Screen{
		dev: dev,
		buf: make([]byte, 0, 4096),
	}
}

// Initialize enables raw mode, then queues a full clear and a move to (0,0).
// Queuing cannot fail, so once raw mode is on Initialize succeeds.
func (s *Screen) Initialize() error {
	if err := s.dev.EnterRawMode(); err != nil {
		return wrapIO(OpEnableRawMode, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.buf = append(s.buf, seqClearAll...)
	s.buf = appendMoveTo(s.buf, Position{})
	return nil
}

// Terminate restores the terminal mode saved by Initialize.
// Queued output is left untouched.
func (s *Screen) Terminate() error {
	return wrapIO(OpDisableRawMode, s.dev.ExitRawMode())
}

// MoveCursor queues a cursor move to p.
func (s *Screen) MoveCursor(p Position) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.buf = appendMoveTo(s.buf, p)
	return nil
}

// ClearScreen queues a clear of the whole visible screen.
func (s *Screen) ClearScreen() error {
	return s.queue(seqClearAll)
}

// ClearLine queues a clear of the row under the cursor.
func (s *Screen) ClearLine() error {
	return s.queue(seqClearLine)
}

// HideCursor queues a command making the cursor invisible.
func (s *Screen) HideCursor() error {
	return s.queue(seqHideCursor)
}

// ShowCursor queues a command making the cursor visible.
func (s *Screen) ShowCursor() error {
	return s.queue(seqShowCursor)
}

// Print queues text for output at the current cursor position.
func (s *Screen) Print(text string) error {
	return s.queue(text)
}

// Size queries the device for its current dimensions.
func (s *Screen) Size() (Size, error) {
	w, h, err := s.dev.Size()
	if err != nil {
		return Size{}, wrapIO(OpQuerySize, err)
	}
	return sizeOf(w, h), nil
}

// Execute writes every queued byte to the device in call order and
// empties the queue. On failure the bytes the device did not accept
// stay queued.
func (s *Screen) Execute() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.buf) == 0 {
		return nil
	}

	n, err := s.dev.Write(s.buf)
	n = min(max(n, 0), len(s.buf))
	short := n < len(s.buf)
	s.buf = s.buf[:copy(s.buf, s.buf[n:])]

	if err == nil && short {
		err = io.ErrShortWrite
	}
	return wrapIO(OpFlush, err)
}

// Pending returns the number of queued bytes not yet written.
func (s *Screen) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.buf)
}

// OnResize registers fn to receive the new size whenever the device
// reports a resize.
func (s *Screen) OnResize(fn func(Size)) {
	s.dev.OnResize(func(width, height int) {
		fn(sizeOf(width, height))
	})
}

func (s *Screen) queue(seq string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.buf = append(s.buf, seq...)
	return nil
}
