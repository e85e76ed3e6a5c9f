// ABOUTME: Size and Position value types addressed in character cells.
// ABOUTME: Both use uint16 fields, the coordinate width of the cursor protocol.

package terminal

import "math"

// Size is a snapshot of the terminal extent in character cells.
// It is re-queried on demand and never cached.
type Size struct {
	Height uint16
	Width  uint16
}

// Position is a zero-based cursor coordinate: X is the column, Y the row.
type Position struct {
	X uint16
	Y uint16
}

// clampCells converts a cell count reported by the OS into the uint16 range.
func clampCells(n int) uint16 {
	if n < 0 {
		return 0
	}
	if n > math.MaxUint16 {
		return math.MaxUint16
	}
	return uint16(n)
}

func sizeOf(width, height int) Size {
	return Size{Height: clampCells(height), Width: clampCells(width)}
}
