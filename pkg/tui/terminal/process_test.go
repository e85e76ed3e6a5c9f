// ABOUTME: Tests for ProcessTerminal attached to non-terminal files
// ABOUTME: Size and raw mode must fail with IOError; writes pass straight through

//go:build unix

package terminal

import (
	"errors"
	"os"
	"path/filepath"
	"syscall"
	"testing"
)

func tempFile(t *testing.T) *os.File {
	t.Helper()
	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = f.Close() })
	return f
}

func TestProcessTerminal_NotATerminal(t *testing.T) {
	t.Parallel()
	f := tempFile(t)
	pt := NewProcessTerminalFiles(f, f)

	_, _, err := pt.Size()
	var ioErr *IOError
	if !errors.As(err, &ioErr) || ioErr.Op != OpQuerySize {
		t.Fatalf("Size() error = %v, want IOError %q", err, OpQuerySize)
	}
	if !errors.Is(err, syscall.ENOTTY) {
		t.Errorf("Size() error = %v, want ENOTTY cause", err)
	}

	err = pt.EnterRawMode()
	if !errors.As(err, &ioErr) || ioErr.Op != OpEnableRawMode {
		t.Fatalf("EnterRawMode() error = %v, want IOError %q", err, OpEnableRawMode)
	}
	if pt.IsRawMode() {
		t.Error("IsRawMode() = true after failed EnterRawMode")
	}
}

func TestProcessTerminal_ExitWithoutEnter(t *testing.T) {
	t.Parallel()
	f := tempFile(t)
	pt := NewProcessTerminalFiles(f, f)

	if err := pt.ExitRawMode(); err != nil {
		t.Errorf("ExitRawMode() without EnterRawMode = %v, want nil", err)
	}
}

func TestProcessTerminal_ScreenFlushesToFile(t *testing.T) {
	t.Parallel()
	f := tempFile(t)
	s := NewScreen(NewProcessTerminalFiles(f, f))

	_ = s.MoveCursor(Position{X: 1, Y: 1})
	_ = s.Print("hi")
	if err := s.Execute(); err != nil {
		t.Fatalf("Execute() unexpected error: %v", err)
	}

	got, err := os.ReadFile(f.Name())
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "\x1b[2;2Hhi" {
		t.Errorf("file content = %q, want %q", got, "\x1b[2;2Hhi")
	}

	_, err = s.Size()
	if !errors.Is(err, syscall.ENOTTY) {
		t.Errorf("Screen.Size() error = %v, want ENOTTY", err)
	}
}

func TestProcessTerminal_WriteToClosedFile(t *testing.T) {
	t.Parallel()
	f := tempFile(t)
	_ = f.Close()
	pt := NewProcessTerminalFiles(f, f)

	_, err := pt.Write([]byte("x"))
	var ioErr *IOError
	if !errors.As(err, &ioErr) || ioErr.Op != OpWrite {
		t.Fatalf("Write() error = %v, want IOError %q", err, OpWrite)
	}
}
