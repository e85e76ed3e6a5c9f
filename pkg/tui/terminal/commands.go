// ABOUTME: ANSI control sequences queued by Screen; appended to the queue, never written directly
// ABOUTME: Cursor coordinates are zero-based on input and one-based on the wire

package terminal

import "strconv"

const (
	seqClearAll   = "\x1b[2J"
	seqClearLine  = "\x1b[2K"
	seqHideCursor = "\x1b[?25l"
	seqShowCursor = "\x1b[?25h"
)

// appendMoveTo appends a CUP sequence (CSI row;col H) for p.
func appendMoveTo(b []byte, p Position) []byte {
	b = append(b, "\x1b["...)
	b = strconv.AppendUint(b, uint64(p.Y)+1, 10)
	b = append(b, ';')
	b = strconv.AppendUint(b, uint64(p.X)+1, 10)
	return append(b, 'H')
}
