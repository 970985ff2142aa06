package stencil

import (
	"bytes"
	"io"
	"os"
	"strconv"

	"github.com/mattn/go-runewidth"
	"golang.org/x/sys/unix"
)

// Screen writes a Buffer to a terminal. It keeps a copy of what was last
// written and only emits the cells that changed since.
type Screen struct {
	front  *Buffer // what the terminal shows
	back   *Buffer // what the next flush shows
	writer io.Writer

	width  int
	height int

	lastStyle Style
	buf       bytes.Buffer
}

// NewScreen creates a screen writing to w, sized from the terminal on fd.
// Pass nil to use os.Stdout. Sizes fall back to 80x24 when fd is not a
// terminal.
func NewScreen(w io.Writer, fd int) *Screen {
	if w == nil {
		w = os.Stdout
	}
	width, height, err := TerminalSize(fd)
	if err != nil {
		width, height = 80, 24
	}
	s := &Screen{writer: w, back: NewBuffer(0, 0)}
	s.Resize(width, height)
	return s
}

// TerminalSize returns the dimensions of the terminal on fd.
func TerminalSize(fd int) (int, int, error) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, err
	}
	return int(ws.Col), int(ws.Row), nil
}

// Width returns the screen width.
func (s *Screen) Width() int { return s.width }

// Height returns the screen height.
func (s *Screen) Height() int { return s.height }

// Buffer returns the back buffer for drawing.
func (s *Screen) Buffer() *Buffer { return s.back }

// Resize changes the screen size. The next Flush writes every cell.
func (s *Screen) Resize(width, height int) {
	s.width, s.height = width, height
	s.back.Resize(width, height)
	s.front = NewBuffer(width, height)
	// nothing matches an invalid rune, so every cell is written
	s.front.Fill(Cell{Rune: -1})
}

// Flush writes the cells of the back buffer that differ from the front
// buffer, positioning the cursor for each run of changes.
func (s *Screen) Flush() error {
	s.buf.Reset()
	cursorX, cursorY := -1, -1
	changed := false

	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			cell := s.back.Get(x, y)
			if cell == s.front.Get(x, y) {
				continue
			}
			s.front.cells[y*s.width+x] = cell
			// second half of a wide rune
			if cell.Rune == 0 {
				continue
			}
			changed = true
			if cursorX != x || cursorY != y {
				s.buf.WriteString("\x1b[")
				s.buf.WriteString(strconv.Itoa(y + 1))
				s.buf.WriteByte(';')
				s.buf.WriteString(strconv.Itoa(x + 1))
				s.buf.WriteByte('H')
			}
			s.writeCell(cell)
			cursorX, cursorY = x+max(runewidth.RuneWidth(cell.Rune), 1), y
		}
	}

	if !changed {
		return nil
	}
	s.buf.WriteString("\x1b[0m")
	s.lastStyle = Style{}
	_, err := s.writer.Write(s.buf.Bytes())
	return err
}

// FlushFull clears the terminal and writes every row of the back buffer.
func (s *Screen) FlushFull() error {
	s.buf.Reset()
	s.buf.WriteString("\x1b[2J\x1b[H\x1b[0m")
	s.lastStyle = Style{}
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			cell := s.back.Get(x, y)
			s.front.cells[y*s.width+x] = cell
			if cell.Rune != 0 {
				s.writeCell(cell)
			}
		}
		if y < s.height-1 {
			s.buf.WriteString("\r\n")
		}
	}
	s.buf.WriteString("\x1b[0m")
	s.lastStyle = Style{}
	_, err := s.writer.Write(s.buf.Bytes())
	return err
}

func (s *Screen) writeCell(cell Cell) {
	if cell.Style != s.lastStyle {
		s.writeStyle(cell.Style)
		s.lastStyle = cell.Style
	}
	s.buf.WriteRune(cell.Rune)
}

// writeStyle resets attributes and writes the SGR sequence for style.
func (s *Screen) writeStyle(style Style) {
	s.buf.WriteString("\x1b[0")
	for _, a := range sgrAttrs {
		if style.Attr.Has(a.attr) {
			s.buf.WriteString(a.code)
		}
	}
	s.writeColor(style.FG, true)
	s.writeColor(style.BG, false)
	s.buf.WriteByte('m')
}

var sgrAttrs = []struct {
	attr Attribute
	code string
}{
	{AttrBold, ";1"},
	{AttrDim, ";2"},
	{AttrItalic, ";3"},
	{AttrUnderline, ";4"},
	{AttrBlink, ";5"},
	{AttrInverse, ";7"},
	{AttrStrikethrough, ";9"},
}

func (s *Screen) writeColor(c Color, fg bool) {
	switch c.Mode {
	case Color16:
		base := 30
		if !fg {
			base = 40
		}
		idx := int(c.Index)
		if idx >= 8 {
			// bright range
			base += 60
			idx -= 8
		}
		s.buf.WriteByte(';')
		s.buf.WriteString(strconv.Itoa(base + idx))
	case Color256:
		if fg {
			s.buf.WriteString(";38;5;")
		} else {
			s.buf.WriteString(";48;5;")
		}
		s.buf.WriteString(strconv.Itoa(int(c.Index)))
	case ColorRGB:
		if fg {
			s.buf.WriteString(";38;2;")
		} else {
			s.buf.WriteString(";48;2;")
		}
		s.buf.WriteString(strconv.Itoa(int(c.R)))
		s.buf.WriteByte(';')
		s.buf.WriteString(strconv.Itoa(int(c.G)))
		s.buf.WriteByte(';')
		s.buf.WriteString(strconv.Itoa(int(c.B)))
	}
}
