package stencil

import (
	"fmt"
	"strings"
)

// Widgets are built on requestControl: the call records or consumes a slot,
// and the surface draws only when the slot resolved in a Draw pass. Input
// widgets hand back the value they were given when they cannot draw.

// Label draws a line (or lines) of text.
func (g *GUI) Label(text string, opts ...Options) {
	g.StyledLabel(text, Style{}, opts...)
}

// StyledLabel draws text with an explicit style.
func (g *GUI) StyledLabel(text string, style Style, opts ...Options) {
	if ok, r := g.requestControl(KindLabel, text, style, merged(Options{}, opts)); ok {
		g.surf().Label(r, text, style)
	}
}

// Prefix draws a label in the label column. An empty label emits nothing.
func (g *GUI) Prefix(label string) {
	if label == "" {
		return
	}
	if ok, r := g.requestControl(KindPrefix, label, Style{}, W(g.cfg.LabelWidth)); ok {
		g.surf().Label(r, label, Style{})
	}
}

// Box draws a framed box holding text.
func (g *GUI) Box(text string, style Style, opts ...Options) {
	if ok, r := g.requestControl(KindBox, text, style, merged(Options{}, opts)); ok {
		g.surf().Box(r, text, style)
	}
}

// Splitter draws a horizontal rule of the given thickness (default 1).
func (g *GUI) Splitter(thickness ...int) {
	h := 1
	if len(thickness) > 0 && thickness[0] > 0 {
		h = thickness[0]
	}
	g.Box("", Style{}, Expand().H(h))
}

// HelpBox draws a wrapped message with an icon.
func (g *GUI) HelpBox(message string, kind MessageKind) {
	if ok, r := g.requestControl(KindHelpBox, message, Style{}, Options{}); ok {
		g.surf().HelpBox(r, message, kind)
	}
}

// Button reports whether the button was pressed this pass.
func (g *GUI) Button(text string, opts ...Options) bool {
	if ok, r := g.requestControl(KindButton, text, Style{}, merged(Options{}, opts)); ok {
		return g.surf().Button(r, text, Style{})
	}
	return false
}

// Toggle draws a checkbox.
func (g *GUI) Toggle(label string, value bool, opts ...Options) bool {
	if ok, r := g.requestControl(KindToggle, label, Style{}, merged(Options{}, opts)); ok {
		return g.surf().Toggle(r, label, value, Style{})
	}
	return value
}

// Foldout draws a disclosure header and returns whether it is open. Callers
// usually emit the folded content only when it is; that changes the call
// sequence, which the next Draw pass detects as drift.
func (g *GUI) Foldout(label string, open bool, opts ...Options) bool {
	if ok, r := g.requestControl(KindFoldout, label, Style{}, merged(Options{}, opts)); ok {
		return g.surf().Foldout(r, label, open, Style{})
	}
	return open
}

// Text draws a labelled single-line text field.
func (g *GUI) Text(label, value string, opts ...Options) string {
	if ok, r := g.requestControl(KindTextField, label, Style{}, merged(Options{}, opts)); ok {
		return g.surf().TextField(r, label, value, Style{})
	}
	return value
}

// TextArea draws a multi-line text field. Without an explicit height it is
// Config.TextAreaHeight rows tall.
func (g *GUI) TextArea(value string, opts ...Options) string {
	o := merged(Options{}, opts)
	if o.Height == 0 {
		o.Height = g.cfg.TextAreaHeight
	}
	if ok, r := g.requestControl(KindTextArea, value, Style{}, o); ok {
		return g.surf().TextArea(r, value, Style{})
	}
	return value
}

// Int draws a labelled integer field.
func (g *GUI) Int(label string, value int, opts ...Options) int {
	if ok, r := g.requestControl(KindIntField, label, Style{}, merged(Options{}, opts)); ok {
		return g.surf().IntField(r, label, value, Style{})
	}
	return value
}

// Float draws a labelled float field.
func (g *GUI) Float(label string, value float64, opts ...Options) float64 {
	if ok, r := g.requestControl(KindFloatField, label, Style{}, merged(Options{}, opts)); ok {
		return g.surf().FloatField(r, label, value, Style{})
	}
	return value
}

// Slider draws a labelled slider between lo and hi.
func (g *GUI) Slider(label string, value, lo, hi float64, opts ...Options) float64 {
	if ok, r := g.requestControl(KindSlider, label, Style{}, merged(Options{}, opts)); ok {
		return g.surf().Slider(r, label, value, lo, hi, Style{})
	}
	return value
}

// Popup draws a labelled selector over options and returns the selected index.
func (g *GUI) Popup(label string, selected int, options []string, opts ...Options) int {
	if ok, r := g.requestControl(KindPopup, label, Style{}, merged(Options{}, opts)); ok {
		return g.surf().Popup(r, label, selected, options, Style{})
	}
	return selected
}

// Mask draws a labelled set of toggles, one per name, and returns value with
// the bits the user flipped. Bit i belongs to names[i].
func (g *GUI) Mask(label string, value int, names []string, opts ...Options) int {
	if ok, r := g.requestControl(KindMask, strings.Join(names, "\n"), Style{}, merged(Options{}, opts)); ok {
		return g.surf().Mask(r, label, value, names, Style{})
	}
	return value
}

// Space reserves n cells along the enclosing block's axis.
func (g *GUI) Space(n int) {
	var o Options
	if top := g.stack.top(); top != nil && top.Orientation == Horizontal {
		o.Width = n
	} else {
		o.Height = n
	}
	g.requestControl(KindSpace, "", Style{}, o)
}

// FlexibleSpace takes an even share of the leftover axis length.
func (g *GUI) FlexibleSpace() {
	g.requestControl(KindFlexibleSpace, "", Style{}, Options{})
}

// BeginScrollView opens a scrolled vertical region. It needs a surface that
// implements ScrollSurface and returns ErrUnsupported otherwise. offset holds
// the scroll position across frames and must not be nil.
func (g *GUI) BeginScrollView(offset *int, opts ...Options) (*Block, error) {
	if offset == nil {
		return nil, usage("begin scroll view", "nil offset")
	}
	ss, ok := g.surf().(ScrollSurface)
	if !ok {
		return nil, fmt.Errorf("begin scroll view: %w", ErrUnsupported)
	}
	b := g.BeginVertical(BlockSpec{Options: merged(Options{}, opts)})
	if b != nil && g.phase == PhaseDraw {
		*offset = ss.BeginScroll(b.Rect, *offset)
	}
	return b, nil
}

// EndScrollView closes a region opened by BeginScrollView.
func (g *GUI) EndScrollView() error {
	ss, ok := g.surf().(ScrollSurface)
	if !ok {
		return fmt.Errorf("end scroll view: %w", ErrUnsupported)
	}
	if g.phase == PhaseDraw && !g.pendingReset {
		ss.EndScroll()
	}
	g.EndVertical()
	return nil
}
