package stencil

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Render returns the buffer as styled text, one line per row. Runs of cells
// sharing a style are rendered together through r; a nil renderer uses
// lipgloss's default, which strips styling when stdout is not a terminal.
// Trailing unstyled blanks are dropped from each row.
func (b *Buffer) Render(r *lipgloss.Renderer) string {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}

	var sb strings.Builder
	var run strings.Builder
	for y := 0; y < b.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		end := b.width
		for end > 0 {
			c := b.Get(end-1, y)
			if c.Rune != ' ' || c.Style != (Style{}) {
				break
			}
			end--
		}

		var cur Style
		run.Reset()
		for x := 0; x < end; x++ {
			c := b.Get(x, y)
			if c.Rune == 0 {
				continue
			}
			if c.Style != cur && run.Len() > 0 {
				sb.WriteString(lipglossStyle(r, cur).Render(run.String()))
				run.Reset()
			}
			cur = c.Style
			run.WriteRune(c.Rune)
		}
		if run.Len() > 0 {
			sb.WriteString(lipglossStyle(r, cur).Render(run.String()))
		}
	}
	return sb.String()
}

// String renders the buffer without styling.
func (b *Buffer) String() string {
	lines := make([]string, b.height)
	for y := range lines {
		lines[y] = b.GetLine(y)
	}
	return strings.Join(lines, "\n")
}

func lipglossStyle(r *lipgloss.Renderer, s Style) lipgloss.Style {
	ls := r.NewStyle().
		Foreground(lipglossColor(s.FG)).
		Background(lipglossColor(s.BG))
	if s.Attr.Has(AttrBold) {
		ls = ls.Bold(true)
	}
	if s.Attr.Has(AttrDim) {
		ls = ls.Faint(true)
	}
	if s.Attr.Has(AttrItalic) {
		ls = ls.Italic(true)
	}
	if s.Attr.Has(AttrUnderline) {
		ls = ls.Underline(true)
	}
	if s.Attr.Has(AttrBlink) {
		ls = ls.Blink(true)
	}
	if s.Attr.Has(AttrInverse) {
		ls = ls.Reverse(true)
	}
	if s.Attr.Has(AttrStrikethrough) {
		ls = ls.Strikethrough(true)
	}
	return ls
}

func lipglossColor(c Color) lipgloss.TerminalColor {
	switch c.Mode {
	case Color16, Color256:
		return lipgloss.Color(strconv.Itoa(int(c.Index)))
	case ColorRGB:
		return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
	}
	return lipgloss.NoColor{}
}
