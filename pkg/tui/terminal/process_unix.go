// ABOUTME: SIGWINCH listener feeding ProcessTerminal resize callbacks on unix.
// ABOUTME: Zero-sized reports, seen on ptys without a window size, are dropped.

//go:build unix

package terminal

import (
	"os"
	"os/signal"
	"syscall"
)

func (t *ProcessTerminal) startResizeListener() {
	winch := make(chan os.Signal, 1)
	signal.Notify(winch, syscall.SIGWINCH)

	go func() {
		for range winch {
			fn := t.resizeCallback()
			if fn == nil {
				continue
			}
			w, h, err := t.Size()
			if err != nil || w == 0 || h == 0 {
				continue
			}
			fn(w, h)
		}
	}()
}

func (t *ProcessTerminal) resizeCallback() func(width, height int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.resizeFn
}
