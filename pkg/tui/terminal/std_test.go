// ABOUTME: Tests for the package-level default Screen
// ABOUTME: Only identity is checked; the default device is the real stdin/stdout

package terminal

import "testing"

func TestDefault_IsSingleton(t *testing.T) {
	t.Parallel()

	a, b := Default(), Default()
	if a == nil || a != b {
		t.Fatalf("Default() returned %p and %p, want the same non-nil Screen", a, b)
	}
	if _, ok := a.dev.(*ProcessTerminal); !ok {
		t.Errorf("default device is %T, want *ProcessTerminal", a.dev)
	}
}

func TestDefault_QueueWithoutFlush(t *testing.T) {
	// Not parallel: mutates the shared default queue.
	before := Default().Pending()

	if err := Print("x"); err != nil {
		t.Fatal(err)
	}
	if got := Default().Pending(); got != before+1 {
		t.Errorf("Pending() = %d, want %d", got, before+1)
	}

	// Drop the byte so nothing reaches the test runner's stdout.
	Default().mu.Lock()
	Default().buf = Default().buf[:before]
	Default().mu.Unlock()
}
