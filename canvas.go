package stencil

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Canvas is a terminal Surface drawing into a cell Buffer. It keeps a small
// input queue that widgets consume while they draw: a pending click is taken
// by the widget whose rect contains it, typed runes go to the focused field.
type Canvas struct {
	buf        *Buffer
	theme      Theme
	labelWidth int

	click   *point
	typed   []rune
	erase   int
	focus   Rect
	focused bool
}

type point struct{ x, y int }

// NewCanvas creates a canvas over a new width×height buffer.
func NewCanvas(width, height int, cfg Config) *Canvas {
	return NewBufferCanvas(NewBuffer(width, height), cfg)
}

// NewBufferCanvas creates a canvas drawing into b, such as a Screen's back
// buffer.
func NewBufferCanvas(b *Buffer, cfg Config) *Canvas {
	return &Canvas{buf: b, theme: ThemeDark, labelWidth: cfg.LabelWidth}
}

// Buffer returns the buffer the canvas draws into.
func (c *Canvas) Buffer() *Buffer { return c.buf }

// SetTheme replaces the widget styles.
func (c *Canvas) SetTheme(t Theme) { c.theme = t }

// Resize resizes the underlying buffer.
func (c *Canvas) Resize(width, height int) { c.buf.Resize(width, height) }

// Click queues a click at (x, y), replacing any click not yet consumed. A
// click outside the focused field blurs it.
func (c *Canvas) Click(x, y int) {
	c.click = &point{x, y}
	c.focused = c.focused && c.focus.Contains(x, y)
}

// Type queues runes for the focused field.
func (c *Canvas) Type(r ...rune) {
	c.typed = append(c.typed, r...)
}

// Backspace queues a deletion for the focused field.
func (c *Canvas) Backspace() {
	if len(c.typed) > 0 {
		c.typed = c.typed[:len(c.typed)-1]
		return
	}
	c.erase++
}

// Blur drops keyboard focus.
func (c *Canvas) Blur() {
	c.focused = false
}

// DropInput discards input that no widget consumed this frame.
func (c *Canvas) DropInput() {
	c.click = nil
	c.typed = c.typed[:0]
	c.erase = 0
}

// clicked consumes the pending click if it falls inside r.
func (c *Canvas) clicked(r Rect) bool {
	if c.click == nil || !r.Contains(c.click.x, c.click.y) {
		return false
	}
	c.click = nil
	return true
}

// edit applies queued keystrokes to value when r is the focused field.
func (c *Canvas) edit(r Rect, value string) string {
	if c.clicked(r) {
		c.focus, c.focused = r, true
	}
	if !c.focused || c.focus != r {
		return value
	}
	runes := []rune(value)
	runes = runes[:max(len(runes)-c.erase, 0)]
	runes = append(runes, c.typed...)
	c.typed = c.typed[:0]
	c.erase = 0
	return string(runes)
}

func (c *Canvas) isFocused(r Rect) bool {
	return c.focused && c.focus == r
}

func (c *Canvas) Measure(kind ControlKind, content string, _ Style, maxWidth int) (int, int) {
	return measureText(kind, content, maxWidth, c.labelWidth)
}

func (c *Canvas) Clear() { c.buf.Clear() }

func (c *Canvas) Panel(r Rect, border *BorderStyle, title string, style Style) {
	if style.BG != (Color{}) {
		c.buf.FillRect(r, NewCell(' ', style))
	}
	if border == nil {
		return
	}
	bs := style
	if bs == (Style{}) {
		bs = c.theme.Border
	}
	c.buf.DrawBorder(r, *border, bs)
	if title != "" && r.W > 4 {
		c.buf.WriteString(r.X+2, r.Y, " "+title+" ", c.theme.Accent, r.W-4)
	}
}

func (c *Canvas) Label(r Rect, text string, style Style) {
	if style == (Style{}) {
		style = c.theme.Base
	}
	for i, line := range strings.Split(text, "\n") {
		if i >= r.H {
			break
		}
		c.buf.WriteString(r.X, r.Y+i, line, style, r.W)
	}
}

func (c *Canvas) Box(r Rect, text string, style Style) {
	if style == (Style{}) {
		style = c.theme.Border
	}
	if r.H < 2 {
		// a one-row box is a rule
		c.buf.HLine(r.X, r.Y, r.W, BoxHorizontal, style)
		return
	}
	c.buf.DrawBorder(r, BorderSingle, style)
	if text != "" {
		inner := r.Inset(1)
		pad := max((inner.W-runewidth.StringWidth(text))/2, 0)
		c.buf.WriteString(inner.X+pad, inner.Y+(inner.H-1)/2, text, c.theme.Base, inner.W-pad)
	}
}

func (c *Canvas) HelpBox(r Rect, message string, kind MessageKind) {
	style := c.theme.Accent
	switch kind {
	case MessageWarning:
		style = c.theme.Warning
	case MessageError:
		style = c.theme.Error
	}
	c.buf.WriteString(r.X, r.Y, helpIcons[kind], style.Bold(), r.W)
	for i, line := range wrapText(message, max(r.W-2, 1)) {
		if i >= r.H {
			break
		}
		c.buf.WriteString(r.X+2, r.Y+i, line, c.theme.Base, r.W-2)
	}
}

func (c *Canvas) Button(r Rect, text string, style Style) bool {
	pressed := c.clicked(r)
	if style == (Style{}) {
		style = c.theme.Accent
	}
	if pressed {
		style = style.Inverse()
	}
	c.buf.WriteString(r.X, r.Y, "[ "+text+" ]", style, r.W)
	return pressed
}

func (c *Canvas) Toggle(r Rect, label string, value bool, style Style) bool {
	if c.clicked(r) {
		value = !value
	}
	mark := "[ ] "
	if value {
		mark = "[x] "
	}
	c.buf.WriteString(r.X, r.Y, mark+label, c.pick(style), r.W)
	return value
}

func (c *Canvas) Foldout(r Rect, label string, open bool, style Style) bool {
	if c.clicked(r) {
		open = !open
	}
	arrow := "▸ "
	if open {
		arrow = "▾ "
	}
	c.buf.WriteString(r.X, r.Y, arrow+label, c.pick(style).Bold(), r.W)
	return open
}

// field draws a label column followed by the value area and returns the
// value area's rect.
func (c *Canvas) field(r Rect, label string) Rect {
	lw := min(c.labelWidth, r.W)
	c.buf.WriteString(r.X, r.Y, label, c.theme.Muted, lw-1)
	return Rect{X: r.X + lw, Y: r.Y, W: r.W - lw, H: r.H}
}

func (c *Canvas) drawValue(r Rect, text string) {
	style := c.theme.Base
	if c.isFocused(r) {
		style = c.theme.Focus
		text += "_"
	}
	c.buf.WriteString(r.X, r.Y, text, style, r.W)
}

func (c *Canvas) TextField(r Rect, label, value string, _ Style) string {
	vr := c.field(r, label)
	value = c.edit(vr, value)
	c.drawValue(vr, value)
	return value
}

func (c *Canvas) TextArea(r Rect, value string, _ Style) string {
	value = c.edit(r, value)
	style := c.theme.Base
	if c.isFocused(r) {
		style = c.theme.Focus
	}
	for i, line := range wrapText(value, max(r.W, 1)) {
		if i >= r.H {
			break
		}
		c.buf.WriteString(r.X, r.Y+i, line, style, r.W)
	}
	return value
}

func (c *Canvas) IntField(r Rect, label string, value int, _ Style) int {
	vr := c.field(r, label)
	text := c.edit(vr, strconv.Itoa(value))
	if n, err := strconv.Atoi(text); err == nil {
		value = n
	} else if text == "" || text == "-" {
		value = 0
	}
	c.drawValue(vr, text)
	return value
}

func (c *Canvas) FloatField(r Rect, label string, value float64, _ Style) float64 {
	vr := c.field(r, label)
	text := c.edit(vr, strconv.FormatFloat(value, 'g', -1, 64))
	if f, err := strconv.ParseFloat(text, 64); err == nil {
		value = f
	}
	c.drawValue(vr, text)
	return value
}

func (c *Canvas) Slider(r Rect, label string, value, lo, hi float64, _ Style) float64 {
	vr := c.field(r, label)
	readout := fmt.Sprintf(" %.2f", value)
	track := Rect{X: vr.X, Y: vr.Y, W: max(vr.W-len(readout), 1), H: 1}

	if c.click != nil && track.Contains(c.click.x, c.click.y) && hi > lo {
		frac := float64(c.click.x-track.X) / float64(max(track.W-1, 1))
		value = lo + frac*(hi-lo)
		c.click = nil
		readout = fmt.Sprintf(" %.2f", value)
	}

	knob := 0
	if hi > lo {
		frac := math.Max(0, math.Min(1, (value-lo)/(hi-lo)))
		knob = int(math.Round(frac * float64(track.W-1)))
	}
	c.buf.HLine(track.X, track.Y, track.W, '━', c.theme.Muted)
	c.buf.Set(track.X+knob, track.Y, NewCell('●', c.theme.Accent))
	c.buf.WriteString(track.X+track.W, track.Y, readout, c.theme.Base, vr.W-track.W)
	return value
}

func (c *Canvas) Popup(r Rect, label string, selected int, options []string, _ Style) int {
	vr := c.field(r, label)
	if len(options) == 0 {
		c.buf.WriteString(vr.X, vr.Y, "< >", c.theme.Muted, vr.W)
		return selected
	}
	if c.clicked(vr) {
		selected = (selected + 1) % len(options)
	}
	if selected < 0 || selected >= len(options) {
		selected = 0
	}
	c.buf.WriteString(vr.X, vr.Y, "< "+options[selected]+" >", c.theme.Accent, vr.W)
	return selected
}

func (c *Canvas) Mask(r Rect, label string, value int, names []string, style Style) int {
	vr := c.field(r, label)
	for i, name := range names {
		if i >= vr.H {
			break
		}
		row := Rect{X: vr.X, Y: vr.Y + i, W: vr.W, H: 1}
		if c.clicked(row) {
			value ^= 1 << i
		}
		mark := "[ ] "
		if value&(1<<i) != 0 {
			mark = "[x] "
		}
		c.buf.WriteString(row.X, row.Y, mark+name, c.pick(style), row.W)
	}
	return value
}

func (c *Canvas) pick(style Style) Style {
	if style == (Style{}) {
		return c.theme.Base
	}
	return style
}
