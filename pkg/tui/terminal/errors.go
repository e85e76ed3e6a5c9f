// ABOUTME: IOError is the single failure kind surfaced by the terminal facade.
// ABOUTME: It names the failed operation and unwraps to the underlying OS error.

package terminal

import "errors"

// Operation names carried by IOError.Op.
const (
	OpEnableRawMode  = "enable raw mode"
	OpDisableRawMode = "disable raw mode"
	OpWrite          = "write"
	OpFlush          = "flush"
	OpQuerySize      = "query size"
)

// IOError reports a failed terminal operation. Err is the error returned
// by the operating system or device, unchanged; use errors.Is on the
// IOError to classify it (for example against syscall.ENOTTY).
type IOError struct {
	Op  string
	Err error
}

func (e *IOError) Error() string {
	return "terminal: " + e.Op + ": " + e.Err.Error()
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// wrapIO tags err with op unless it already is an IOError.
func wrapIO(op string, err error) error {
	if err == nil {
		return nil
	}
	var ioErr *IOError
	if errors.As(err, &ioErr) {
		return err
	}
	return &IOError{Op: op, Err: err}
}
