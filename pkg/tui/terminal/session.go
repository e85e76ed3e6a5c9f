// ABOUTME: Session is a scoped raw-mode guard: Close always restores cooked mode, exactly once.
// ABOUTME: Run wraps Enter/Close around a function so no return or panic path leaks raw mode.

package terminal

import (
	"errors"
	"sync"
)

// Session is returned by Enter. Closing it shows the cursor, flushes
// pending output and then restores the terminal mode, even when the
// flush fails. Close is idempotent and safe for concurrent use.
type Session struct {
	screen *Screen

	once sync.Once
	err  error
}

// Enter initializes s and returns the guard that undoes it.
// Defer Close immediately after a successful Enter.
func (s *Screen) Enter() (*Session, error) {
	if err := s.Initialize(); err != nil {
		return nil, err
	}
	return &Session{screen: s}, nil
}

// Close releases the session. Later calls return the first result.
func (g *Session) Close() error {
	g.once.Do(func() {
		showErr := g.screen.ShowCursor()
		flushErr := g.screen.Execute()
		g.err = errors.Join(showErr, flushErr, g.screen.Terminate())
	})
	return g.err
}

// Run enters raw mode, calls fn and closes the session on every exit
// path. A panic in fn is re-raised after the terminal is restored.
func (s *Screen) Run(fn func(*Screen) error) (err error) {
	sess, err := s.Enter()
	if err != nil {
		return err
	}
	defer func() {
		if r := recover(); r != nil {
			_ = sess.Close()
			panic(r)
		}
		err = errors.Join(err, sess.Close())
	}()
	return fn(s)
}
