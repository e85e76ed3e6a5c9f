// ABOUTME: Tests for the Session guard and Run: raw mode is restored once on every exit path
// ABOUTME: Covers normal return, error return, panics, flush failures and failed entry

package terminal

import (
	"errors"
	"strings"
	"syscall"
	"testing"
)

func TestSession_CloseRestoresAndFlushes(t *testing.T) {
	t.Parallel()
	s, vt := newTestScreen(80, 24)

	sess, err := s.Enter()
	if err != nil {
		t.Fatalf("Enter() unexpected error: %v", err)
	}
	_ = s.HideCursor()
	_ = s.Print("bye")

	if err := sess.Close(); err != nil {
		t.Fatalf("Close() unexpected error: %v", err)
	}
	if vt.IsRawMode() {
		t.Error("expected cooked mode after Close")
	}
	if !strings.HasSuffix(vt.Output(), "bye\x1b[?25h") {
		t.Errorf("Output() = %q, want pending text then show-cursor", vt.Output())
	}
}

func TestSession_CloseIdempotent(t *testing.T) {
	t.Parallel()
	s, vt := newTestScreen(80, 24)

	sess, err := s.Enter()
	if err != nil {
		t.Fatal(err)
	}
	for range 3 {
		if err := sess.Close(); err != nil {
			t.Fatalf("Close() unexpected error: %v", err)
		}
	}
	if vt.ExitCount() != 1 {
		t.Errorf("ExitCount() = %d, want 1", vt.ExitCount())
	}
}

func TestSession_CloseTerminatesWhenFlushFails(t *testing.T) {
	t.Parallel()
	s, vt := newTestScreen(80, 24)

	sess, err := s.Enter()
	if err != nil {
		t.Fatal(err)
	}
	vt.FailWrite(syscall.EPIPE)

	err = sess.Close()
	if !errors.Is(err, syscall.EPIPE) {
		t.Errorf("Close() error = %v, want EPIPE", err)
	}
	if vt.IsRawMode() {
		t.Error("raw mode leaked after failed flush")
	}
}

func TestSession_EnterFailure(t *testing.T) {
	t.Parallel()
	s, vt := newTestScreen(80, 24)
	vt.FailEnterRawMode(syscall.ENOTTY)

	sess, err := s.Enter()
	if err == nil || sess != nil {
		t.Fatalf("Enter() = (%v, %v), want (nil, error)", sess, err)
	}
}

func TestRun(t *testing.T) {
	t.Parallel()

	errBoom := errors.New("boom")
	tests := []struct {
		name    string
		fn      func(*Screen) error
		wantErr error
	}{
		{name: "success", fn: func(s *Screen) error { return s.Print("ok") }},
		{name: "error return", fn: func(*Screen) error { return errBoom }, wantErr: errBoom},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s, vt := newTestScreen(80, 24)

			err := s.Run(func(s *Screen) error {
				if !vt.IsRawMode() {
					t.Error("fn called outside raw mode")
				}
				return tt.fn(s)
			})

			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Run() error = %v, want %v", err, tt.wantErr)
			}
			if vt.IsRawMode() {
				t.Error("raw mode leaked after Run")
			}
			if vt.EnterCount() != 1 || vt.ExitCount() != 1 {
				t.Errorf("transitions = (%d, %d), want (1, 1)", vt.EnterCount(), vt.ExitCount())
			}
		})
	}
}

func TestRun_PanicRestoresThenRepanics(t *testing.T) {
	t.Parallel()
	s, vt := newTestScreen(80, 24)

	defer func() {
		r := recover()
		if r != "kaboom" {
			t.Errorf("recovered %v, want kaboom", r)
		}
		if vt.IsRawMode() {
			t.Error("raw mode leaked after panic")
		}
	}()

	_ = s.Run(func(*Screen) error {
		panic("kaboom")
	})
	t.Fatal("Run returned instead of panicking")
}

func TestRun_EnterFailureSkipsFn(t *testing.T) {
	t.Parallel()
	s, vt := newTestScreen(80, 24)
	vt.FailEnterRawMode(syscall.ENOTTY)

	called := false
	err := s.Run(func(*Screen) error {
		called = true
		return nil
	})

	if called {
		t.Error("fn called although Enter failed")
	}
	var ioErr *IOError
	if !errors.As(err, &ioErr) || ioErr.Op != OpEnableRawMode {
		t.Errorf("Run() error = %v, want IOError %q", err, OpEnableRawMode)
	}
}
