// ABOUTME: Draws the startup screen through the terminal facade: tilde rows, banner, status line
// ABOUTME: Every byte of a frame is queued first and flushed with a single Execute

package splash

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mauromedda/hecto-go/pkg/tui/terminal"
	"github.com/mauromedda/hecto-go/pkg/tui/width"
)

// Screen is the subset of *terminal.Screen a frame needs.
type Screen interface {
	Size() (terminal.Size, error)
	MoveCursor(terminal.Position) error
	ClearLine() error
	HideCursor() error
	ShowCursor() error
	Print(text string) error
	Execute() error
}

// View is the content of one frame.
type View struct {
	Welcome    string
	Status     string
	ShowStatus bool
}

var (
	bannerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "4", Dark: "12"})
	tildeStyle  = lipgloss.NewStyle().Faint(true)
	statusStyle = lipgloss.NewStyle().Reverse(true)
)

// Draw renders v over the whole screen. The cursor is hidden while rows are
// redrawn and parked at the origin afterwards.
func Draw(s Screen, v View) error {
	size, err := s.Size()
	if err != nil {
		return fmt.Errorf("splash: %w", err)
	}

	if err := s.HideCursor(); err != nil {
		return fmt.Errorf("splash: %w", err)
	}
	for y, line := range Lines(size, v) {
		if err := drawRow(s, uint16(y), line); err != nil {
			return fmt.Errorf("splash: row %d: %w", y, err)
		}
	}
	if err := s.MoveCursor(terminal.Position{}); err != nil {
		return fmt.Errorf("splash: %w", err)
	}
	if err := s.ShowCursor(); err != nil {
		return fmt.Errorf("splash: %w", err)
	}
	if err := s.Execute(); err != nil {
		return fmt.Errorf("splash: %w", err)
	}
	return nil
}

func drawRow(s Screen, y uint16, line string) error {
	if err := s.MoveCursor(terminal.Position{X: 0, Y: y}); err != nil {
		return err
	}
	if err := s.ClearLine(); err != nil {
		return err
	}
	return s.Print(line)
}

// Lines returns the styled text of every row for a screen of the given
// size. No line is wider than size.Width.
func Lines(size terminal.Size, v View) []string {
	cols, rows := int(size.Width), int(size.Height)
	if cols == 0 || rows == 0 {
		return nil
	}

	body := rows
	if v.ShowStatus && rows > 1 {
		body--
	}

	lines := make([]string, 0, rows)
	for y := range body {
		if y == rows/3 && v.Welcome != "" {
			lines = append(lines, bannerLine(v.Welcome, cols))
			continue
		}
		lines = append(lines, tildeStyle.Render("~"))
	}
	if body < rows {
		lines = append(lines, statusLine(v.Status, size))
	}
	return lines
}

func bannerLine(welcome string, cols int) string {
	if cols < 2 {
		return "~"
	}
	text := width.Truncate(singleLine(welcome), cols-1)
	pad := max(width.CenterOffset(width.VisibleWidth(text), cols)-1, 0)
	return "~" + strings.Repeat(" ", pad) + bannerStyle.Render(text)
}

func statusLine(status string, size terminal.Size) string {
	text := fmt.Sprintf(" %s | %dx%d", singleLine(status), size.Width, size.Height)
	return statusStyle.Render(width.PadRight(text, int(size.Width)))
}

// singleLine reduces user-supplied text to printable content for one row:
// escape sequences are stripped, everything after the first line break is
// dropped, tabs become spaces and other control characters are removed.
func singleLine(s string) string {
	s = width.StripANSI(s)
	if i := strings.IndexAny(s, "\r\n"); i >= 0 {
		s = s[:i]
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\t':
			return ' '
		case r < 0x20, r >= 0x7f && r < 0xa0:
			return -1
		}
		return r
	}, s)
}
