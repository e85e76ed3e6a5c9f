// ABOUTME: VisibleWidth computes the cell width of text with grapheme-aware segmentation
// ABOUTME: ANSI escape sequences count as zero cells; pure ASCII takes a fast path

package width

import (
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// VisibleWidth returns the number of terminal cells s occupies. Escape
// sequences are skipped and grapheme clusters (emoji, East Asian wide
// characters) count with their display width.
func VisibleWidth(s string) int {
	if isPlainASCII(s) {
		return len(s)
	}
	w := 0
	forEachCluster(s, func(_ string, cw int) {
		w += max(cw, 0)
	})
	return w
}

// isPlainASCII reports whether s holds only printable ASCII (0x20-0x7E).
func isPlainASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if b := s[i]; b < 0x20 || b > 0x7E {
			return false
		}
	}
	return true
}

// forEachCluster walks s one grapheme cluster or escape sequence at a time.
// Escape sequences are reported with width -1.
func forEachCluster(s string, fn func(text string, width int)) {
	state := -1
	for i := 0; i < len(s); {
		if s[i] == '\x1b' {
			end := skipANSISequence(s, i)
			fn(s[i:end], -1)
			i = end
			state = -1
			continue
		}
		cluster, rest, _, newState := uniseg.FirstGraphemeClusterInString(s[i:], state)
		fn(cluster, graphemeWidth(cluster))
		i += len(s[i:]) - len(rest)
		state = newState
	}
}

// graphemeWidth returns the display width of a single grapheme cluster,
// taken from its first rune.
func graphemeWidth(cluster string) int {
	if cluster == "" {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(cluster)
	return runewidth.RuneWidth(r)
}
