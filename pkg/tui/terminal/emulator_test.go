// ABOUTME: Minimal ANSI screen emulator used to read back what Screen output does to a display
// ABOUTME: Understands CUP, ED 2, EL 2, DECTCEM and printable text; enough for facade assertions

package terminal

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// emulator applies escape output to a width x height grid of runes.
type emulator struct {
	width, height int
	screen        [][]rune
	row, col      int
	cursorHidden  bool
}

func newEmulator(width, height int) *emulator {
	screen := make([][]rune, height)
	for i := range screen {
		screen[i] = []rune(strings.Repeat(" ", width))
	}
	return &emulator{width: width, height: height, screen: screen}
}

// feed processes s as if it were written to the display.
func (e *emulator) feed(s string) {
	for i := 0; i < len(s); {
		if s[i] == '\x1b' && i+1 < len(s) && s[i+1] == '[' {
			i = e.csi(s, i+2)
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		i += size
		switch r {
		case '\r':
			e.col = 0
		case '\n':
			if e.row < e.height-1 {
				e.row++
			}
		default:
			e.put(r)
		}
	}
}

// csi parses one control sequence starting after "ESC [" and returns
// the index following its final byte.
func (e *emulator) csi(s string, i int) int {
	start := i
	for i < len(s) && (s[i] < 0x40 || s[i] > 0x7e) {
		i++
	}
	if i >= len(s) {
		return i
	}
	params, final := s[start:i], s[i]

	switch final {
	case 'H':
		p := strings.SplitN(params, ";", 2)
		row, col := atoiDefault(p[0], 1), 1
		if len(p) == 2 {
			col = atoiDefault(p[1], 1)
		}
		e.row = min(max(row-1, 0), e.height-1)
		e.col = min(max(col-1, 0), e.width-1)
	case 'J':
		if params == "2" {
			for r := range e.screen {
				e.clearRow(r)
			}
		}
	case 'K':
		if params == "2" {
			e.clearRow(e.row)
		}
	case 'h', 'l':
		if params == "?25" {
			e.cursorHidden = final == 'l'
		}
	}
	return i + 1
}

func (e *emulator) put(r rune) {
	if e.col >= e.width {
		return
	}
	e.screen[e.row][e.col] = r
	e.col++
}

func (e *emulator) clearRow(r int) {
	for c := range e.screen[r] {
		e.screen[r][c] = ' '
	}
}

func (e *emulator) cellAt(x, y int) rune {
	return e.screen[y][x]
}

func (e *emulator) line(y int) string {
	return strings.TrimRight(string(e.screen[y]), " ")
}

func (e *emulator) blank() bool {
	for y := range e.screen {
		if e.line(y) != "" {
			return false
		}
	}
	return true
}

func atoiDefault(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil || n == 0 {
		return def
	}
	return n
}
