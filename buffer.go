package stencil

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Buffer is a 2D grid of cells representing a drawable surface.
type Buffer struct {
	cells  []Cell
	width  int
	height int
}

// NewBuffer creates a new buffer with the given dimensions.
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{}
	b.Resize(width, height)
	return b
}

// Width returns the buffer width.
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the buffer height.
func (b *Buffer) Height() int {
	return b.height
}

// InBounds returns true if the given coordinates are within the buffer.
func (b *Buffer) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Get returns the cell at the given coordinates.
// Returns an empty cell if out of bounds.
func (b *Buffer) Get(x, y int) Cell {
	if !b.InBounds(x, y) {
		return EmptyCell()
	}
	return b.cells[y*b.width+x]
}

// Set sets the cell at the given coordinates.
// Does nothing if out of bounds.
// When drawing border characters, automatically merges with existing borders.
func (b *Buffer) Set(x, y int, c Cell) {
	if !b.InBounds(x, y) {
		return
	}
	idx := y*b.width + x
	if merged, ok := mergeBorders(b.cells[idx].Rune, c.Rune); ok {
		c.Rune = merged
	}
	b.cells[idx] = c
}

// Fill fills the entire buffer with the given cell.
func (b *Buffer) Fill(c Cell) {
	for i := range b.cells {
		b.cells[i] = c
	}
}

// Clear clears the buffer to empty cells with default style.
func (b *Buffer) Clear() {
	b.Fill(EmptyCell())
}

// FillRect fills a rectangular region with the given cell.
func (b *Buffer) FillRect(r Rect, c Cell) {
	for dy := 0; dy < r.H; dy++ {
		for dx := 0; dx < r.W; dx++ {
			b.Set(r.X+dx, r.Y+dy, c)
		}
	}
}

// WriteString writes s at (x, y), stopping after maxWidth columns.
// Double-width runes occupy two cells; the second is a zero placeholder.
// Returns the number of columns written.
func (b *Buffer) WriteString(x, y int, s string, style Style, maxWidth int) int {
	written := 0
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if rw == 0 {
			continue
		}
		if written+rw > maxWidth || !b.InBounds(x, y) {
			break
		}
		b.Set(x, y, NewCell(r, style))
		if rw == 2 {
			b.Set(x+1, y, NewCell(0, style))
		}
		x += rw
		written += rw
	}
	return written
}

// HLine draws a horizontal line of the given rune.
func (b *Buffer) HLine(x, y, length int, r rune, style Style) {
	for i := 0; i < length; i++ {
		b.Set(x+i, y, NewCell(r, style))
	}
}

// Box drawing characters for borders.
const (
	BoxHorizontal         = '─'
	BoxVertical           = '│'
	BoxTopLeft            = '┌'
	BoxTopRight           = '┐'
	BoxBottomLeft         = '└'
	BoxBottomRight        = '┘'
	BoxRoundedTopLeft     = '╭'
	BoxRoundedTopRight    = '╮'
	BoxRoundedBottomLeft  = '╰'
	BoxRoundedBottomRight = '╯'
)

// Box junction characters for merged borders
const (
	BoxTeeDown  = '┬'
	BoxTeeUp    = '┴'
	BoxTeeRight = '├'
	BoxTeeLeft  = '┤'
	BoxCross    = '┼'
)

// borderEdges maps border runes to the edges they connect.
// Bits: 1=top, 2=right, 4=bottom, 8=left
var borderEdges = map[rune]uint8{
	BoxHorizontal:         0b1010,
	BoxVertical:           0b0101,
	BoxTopLeft:            0b0110,
	BoxTopRight:           0b1100,
	BoxBottomLeft:         0b0011,
	BoxBottomRight:        0b1001,
	BoxTeeDown:            0b1110,
	BoxTeeUp:              0b1011,
	BoxTeeRight:           0b0111,
	BoxTeeLeft:            0b1101,
	BoxCross:              0b1111,
	BoxRoundedTopLeft:     0b0110,
	BoxRoundedTopRight:    0b1100,
	BoxRoundedBottomLeft:  0b0011,
	BoxRoundedBottomRight: 0b1001,
}

var edgesToBorder = map[uint8]rune{
	0b1010: BoxHorizontal,
	0b0101: BoxVertical,
	0b0110: BoxTopLeft,
	0b1100: BoxTopRight,
	0b0011: BoxBottomLeft,
	0b1001: BoxBottomRight,
	0b1110: BoxTeeDown,
	0b1011: BoxTeeUp,
	0b0111: BoxTeeRight,
	0b1101: BoxTeeLeft,
	0b1111: BoxCross,
}

// mergeBorders combines two border characters into one.
// Returns the merged rune and true if both were border chars, otherwise false.
func mergeBorders(existing, next rune) (rune, bool) {
	a, ok1 := borderEdges[existing]
	b, ok2 := borderEdges[next]
	if !ok1 || !ok2 || a|b == b {
		return next, false
	}
	if r, ok := edgesToBorder[a|b]; ok {
		return r, true
	}
	return next, false
}

// BorderStyle defines the characters used for drawing borders.
type BorderStyle struct {
	Horizontal  rune
	Vertical    rune
	TopLeft     rune
	TopRight    rune
	BottomLeft  rune
	BottomRight rune
}

// Standard border styles.
var (
	BorderSingle = BorderStyle{
		Horizontal:  BoxHorizontal,
		Vertical:    BoxVertical,
		TopLeft:     BoxTopLeft,
		TopRight:    BoxTopRight,
		BottomLeft:  BoxBottomLeft,
		BottomRight: BoxBottomRight,
	}
	BorderRounded = BorderStyle{
		Horizontal:  BoxHorizontal,
		Vertical:    BoxVertical,
		TopLeft:     BoxRoundedTopLeft,
		TopRight:    BoxRoundedTopRight,
		BottomLeft:  BoxRoundedBottomLeft,
		BottomRight: BoxRoundedBottomRight,
	}
)

// DrawBorder draws a border around r.
func (b *Buffer) DrawBorder(r Rect, border BorderStyle, style Style) {
	if r.W < 2 || r.H < 2 {
		return
	}
	right, bottom := r.X+r.W-1, r.Y+r.H-1

	b.Set(r.X, r.Y, NewCell(border.TopLeft, style))
	b.Set(right, r.Y, NewCell(border.TopRight, style))
	b.Set(r.X, bottom, NewCell(border.BottomLeft, style))
	b.Set(right, bottom, NewCell(border.BottomRight, style))

	for i := 1; i < r.W-1; i++ {
		b.Set(r.X+i, r.Y, NewCell(border.Horizontal, style))
		b.Set(r.X+i, bottom, NewCell(border.Horizontal, style))
	}
	for i := 1; i < r.H-1; i++ {
		b.Set(r.X, r.Y+i, NewCell(border.Vertical, style))
		b.Set(right, r.Y+i, NewCell(border.Vertical, style))
	}
}

// GetLine returns the content of a single line as a string (trimmed).
func (b *Buffer) GetLine(y int) string {
	if y < 0 || y >= b.height {
		return ""
	}
	var sb strings.Builder
	for x := 0; x < b.width; x++ {
		r := b.Get(x, y).Rune
		if r == 0 {
			continue
		}
		sb.WriteRune(r)
	}
	return strings.TrimRight(sb.String(), " ")
}

// StringTrimmed returns the buffer contents with trailing spaces removed per
// line and trailing empty lines dropped.
func (b *Buffer) StringTrimmed() string {
	lines := make([]string, b.height)
	for y := range lines {
		lines[y] = b.GetLine(y)
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}

// Resize resizes the buffer to new dimensions.
// Existing content is preserved where it fits.
func (b *Buffer) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	if width == b.width && height == b.height && b.cells != nil {
		return
	}

	cells := make([]Cell, width*height)
	empty := EmptyCell()
	for i := range cells {
		cells[i] = empty
	}
	for y := 0; y < min(height, b.height); y++ {
		for x := 0; x < min(width, b.width); x++ {
			cells[y*width+x] = b.cells[y*b.width+x]
		}
	}

	b.cells = cells
	b.width = width
	b.height = height
}
