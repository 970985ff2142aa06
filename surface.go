package stencil

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// MessageKind selects the icon and style of a help box.
type MessageKind uint8

const (
	MessageInfo MessageKind = iota
	MessageWarning
	MessageError
)

// Surface is the host rendering collaborator. The engine only calls the draw
// methods in Draw passes, with rects it computed; input widgets return the
// edited value.
type Surface interface {
	// Measure returns the natural size of a control, given the width its
	// block offers.
	Measure(kind ControlKind, content string, style Style, maxWidth int) (w, h int)
	Clear()

	Panel(r Rect, border *BorderStyle, title string, style Style)
	Label(r Rect, text string, style Style)
	Box(r Rect, text string, style Style)
	HelpBox(r Rect, message string, kind MessageKind)
	Button(r Rect, text string, style Style) bool
	Toggle(r Rect, label string, value bool, style Style) bool
	Foldout(r Rect, label string, open bool, style Style) bool
	TextField(r Rect, label, value string, style Style) string
	TextArea(r Rect, value string, style Style) string
	IntField(r Rect, label string, value int, style Style) int
	FloatField(r Rect, label string, value float64, style Style) float64
	Slider(r Rect, label string, value, lo, hi float64, style Style) float64
	Popup(r Rect, label string, selected int, options []string, style Style) int
	// Mask edits value as a set of bit flags, bit i named by names[i].
	Mask(r Rect, label string, value int, names []string, style Style) int
}

// ScrollSurface is implemented by surfaces that can clip and scroll a region.
type ScrollSurface interface {
	Surface
	BeginScroll(r Rect, offset int) int
	EndScroll()
}

// headless measures text and draws nothing. It stands in when a GUI has no
// surface.
type headless struct {
	labelWidth int
}

func (h headless) Measure(kind ControlKind, content string, _ Style, maxWidth int) (int, int) {
	return measureText(kind, content, maxWidth, h.labelWidth)
}

func (headless) Clear()                                           {}
func (headless) Panel(Rect, *BorderStyle, string, Style)          {}
func (headless) Label(Rect, string, Style)                        {}
func (headless) Box(Rect, string, Style)                          {}
func (headless) HelpBox(Rect, string, MessageKind)                {}
func (headless) Button(Rect, string, Style) bool                  { return false }
func (headless) Toggle(_ Rect, _ string, v bool, _ Style) bool    { return v }
func (headless) Foldout(_ Rect, _ string, v bool, _ Style) bool   { return v }
func (headless) TextField(_ Rect, _, v string, _ Style) string    { return v }
func (headless) TextArea(_ Rect, v string, _ Style) string        { return v }
func (headless) IntField(_ Rect, _ string, v int, _ Style) int    { return v }
func (headless) FloatField(_ Rect, _ string, v float64, _ Style) float64 {
	return v
}
func (headless) Slider(_ Rect, _ string, v, _, _ float64, _ Style) float64 { return v }
func (headless) Popup(_ Rect, _ string, sel int, _ []string, _ Style) int  { return sel }
func (headless) Mask(_ Rect, _ string, v int, _ []string, _ Style) int     { return v }

// helpIcons prefix help box text.
var helpIcons = [...]string{
	MessageInfo:    "i ",
	MessageWarning: "! ",
	MessageError:   "x ",
}

// measureText is the terminal measurement shared by the canvas and the
// headless surface.
func measureText(kind ControlKind, content string, maxWidth, labelWidth int) (w, h int) {
	switch kind {
	case KindHelpBox:
		lines := wrapText(content, max(maxWidth-2, 1))
		return maxLineWidth(lines) + 2, len(lines)
	case KindTextArea:
		lines := wrapText(content, max(maxWidth, 1))
		return maxLineWidth(lines), max(len(lines), 1)
	case KindButton:
		return runewidth.StringWidth(content) + 4, 1
	case KindToggle, KindFoldout:
		return runewidth.StringWidth(content) + 4, 1
	case KindTextField, KindIntField, KindFloatField, KindSlider, KindPopup:
		return labelWidth + 12, 1
	case KindMask:
		// content holds one bit name per line
		lines := strings.Split(content, "\n")
		return labelWidth + maxLineWidth(lines) + 4, len(lines)
	case KindPrefix:
		return labelWidth, 1
	case KindBox:
		if content == "" {
			return 0, 1
		}
		return runewidth.StringWidth(content) + 2, 3
	}
	lines := strings.Split(content, "\n")
	return maxLineWidth(lines), len(lines)
}

func maxLineWidth(lines []string) int {
	w := 0
	for _, l := range lines {
		w = max(w, runewidth.StringWidth(l))
	}
	return w
}

// wrapText breaks s into lines no wider than width columns, splitting on
// spaces where possible and hard-breaking longer words.
func wrapText(s string, width int) []string {
	var lines []string
	for _, para := range strings.Split(s, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		line, lineW := "", 0
		for _, word := range words {
			ww := runewidth.StringWidth(word)
			for ww > width {
				if lineW > 0 {
					lines = append(lines, line)
					line, lineW = "", 0
				}
				head := runewidth.Truncate(word, width, "")
				if head == "" {
					break
				}
				lines = append(lines, head)
				word = word[len(head):]
				ww = runewidth.StringWidth(word)
			}
			switch {
			case ww == 0:
			case lineW == 0:
				line, lineW = word, ww
			case lineW+1+ww <= width:
				line += " " + word
				lineW += 1 + ww
			default:
				lines = append(lines, line)
				line, lineW = word, ww
			}
		}
		if lineW > 0 {
			lines = append(lines, line)
		}
	}
	return lines
}
