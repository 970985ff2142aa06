package stencil

import "fmt"

// ControlKind tags the widget a control slot was recorded for.
type ControlKind uint8

const (
	KindLabel ControlKind = iota
	KindPrefix
	KindBox
	KindHelpBox
	KindButton
	KindToggle
	KindFoldout
	KindTextField
	KindTextArea
	KindIntField
	KindFloatField
	KindSlider
	KindPopup
	KindSpace
	KindFlexibleSpace
	KindMask
)

var kindNames = [...]string{
	KindLabel:         "label",
	KindPrefix:        "prefix",
	KindBox:           "box",
	KindHelpBox:       "help-box",
	KindButton:        "button",
	KindToggle:        "toggle",
	KindFoldout:       "foldout",
	KindTextField:     "text-field",
	KindTextArea:      "text-area",
	KindIntField:      "int-field",
	KindFloatField:    "float-field",
	KindSlider:        "slider",
	KindPopup:         "popup",
	KindSpace:         "space",
	KindFlexibleSpace: "flexible-space",
	KindMask:          "mask",
}

func (k ControlKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", k)
}

// Control is a leaf widget record. Rect is valid once a Layout pass has
// completed.
type Control struct {
	Kind    ControlKind
	Content string
	Style   Style
	Opts    Options
	Rect    Rect

	// natural size, from options or the surface's measurement
	w, h int
}

// Size returns the natural size computed in the last Layout pass.
func (c *Control) Size() (w, h int) { return c.w, c.h }

// expands reports whether the control takes a share of leftover space along
// the axis of a block with orientation o.
func (c *Control) expands(o Orientation) bool {
	if c.Kind == KindFlexibleSpace {
		return true
	}
	if o == Horizontal {
		return c.Opts.ExpandWidth
	}
	return c.Opts.ExpandHeight
}

// measure sets the natural size. Explicit options win over the surface.
func (c *Control) measure(s Surface, maxWidth int) {
	w, h := c.Opts.Width, c.Opts.Height
	switch c.Kind {
	case KindSpace, KindFlexibleSpace:
	default:
		if w == 0 || h == 0 {
			avail := maxWidth
			if w > 0 {
				avail = w
			}
			mw, mh := s.Measure(c.Kind, c.Content, c.Style, avail)
			if w == 0 {
				w = mw
			}
			if h == 0 {
				h = mh
			}
		}
	}
	c.w, c.h = w, h
}

// requestControl aligns a widget call with the control cache. It reports
// whether the widget may draw, and where.
func (g *GUI) requestControl(kind ControlKind, content string, style Style, opts Options) (bool, Rect) {
	g.mustBeInPass("control " + kind.String())

	if g.pendingReset {
		return false, PlaceholderRect
	}

	parent := g.stack.top()
	if parent == nil {
		panic(usage("control "+kind.String(), "no open block"))
	}

	if g.recording {
		c := &Control{Kind: kind, Content: content, Style: style, Opts: opts}
		c.measure(g.surf(), parent.childAvail())
		g.cache.appendControl(c)
		parent.addControl(c)
		parent.next++
		return false, PlaceholderRect
	}

	c := g.cache.nextControlSlot(kind)
	if c == nil {
		g.drift(fmt.Sprintf("control %d: %s does not match the cached sequence", g.cache.nextControl, kind))
		return false, PlaceholderRect
	}

	if g.phase == PhaseLayout {
		// re-layout keeps the record and refreshes what it measures
		c.Content, c.Style, c.Opts = content, style, opts
		c.measure(g.surf(), parent.childAvail())
		parent.next++
		return false, PlaceholderRect
	}
	return true, c.Rect
}

// LastRect returns the rect of the last control consumed in this pass. While
// no geometry is cached, or the cursor ran past the cache, it returns the
// placeholder rect.
func (g *GUI) LastRect() (Rect, error) {
	if g.recording || g.cache.empty() {
		return PlaceholderRect, nil
	}
	idx := g.cache.nextControl
	if idx == 0 {
		return PlaceholderRect, ErrNoControl
	}
	if idx-1 >= g.cache.Controls() {
		return PlaceholderRect, nil
	}
	return g.cache.controls[idx-1].Rect, nil
}
