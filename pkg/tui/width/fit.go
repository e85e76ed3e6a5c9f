// ABOUTME: Fit text into a fixed number of cells: Truncate, PadRight and CenterOffset
// ABOUTME: Escape sequences are kept and never counted; wide clusters are never split

package width

import "strings"

// Truncate returns the longest prefix of s that fits in cols cells.
// Escape sequences are kept wherever they occur, so a trailing reset
// survives the cut.
func Truncate(s string, cols int) string {
	if cols <= 0 {
		return ""
	}
	if isPlainASCII(s) {
		if len(s) <= cols {
			return s
		}
		return s[:cols]
	}

	var b strings.Builder
	used, full := 0, false
	forEachCluster(s, func(text string, w int) {
		switch {
		case w < 0:
			b.WriteString(text)
		case !full && used+w <= cols:
			b.WriteString(text)
			used += w
		default:
			full = true
		}
	})
	return b.String()
}

// PadRight truncates s to cols cells and fills the remainder with spaces.
func PadRight(s string, cols int) string {
	s = Truncate(s, cols)
	if gap := cols - VisibleWidth(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

// CenterOffset returns the column at which text of width w starts when
// centred in cols cells. It is zero when the text does not fit.
func CenterOffset(w, cols int) int {
	if w >= cols {
		return 0
	}
	return (cols - w) / 2
}
