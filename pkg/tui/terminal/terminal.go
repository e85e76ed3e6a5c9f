// ABOUTME: Defines the Terminal device interface for raw mode, size queries, and output.
// ABOUTME: Screen queues commands against a Terminal; implementations target real or virtual TTYs.

package terminal

// Terminal abstracts the device behind a Screen: raw mode,
// size queries, output writing, and resize notifications.
type Terminal interface {
	EnterRawMode() error
	ExitRawMode() error
	Size() (width, height int, err error)
	Write(p []byte) (n int, err error)
	OnResize(fn func(width, height int))
}
