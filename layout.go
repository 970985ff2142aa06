package stencil

// Two traversals, run only in Layout passes:
//
// aggregate (bottom→up): runs as each block's scope closes, innermost first.
// Children are already sized; the block sums them along its axis and takes
// the maximum across it.
//
// place (top→down): runs once from the root after it closes. Each block takes
// the rect it was given, hands leftover axis length to expanding children and
// walks its children in call order advancing an offset.

// axis splits a (w, h) pair into (main, cross) for orientation o.
func axis(o Orientation, w, h int) (main, cross int) {
	if o == Horizontal {
		return w, h
	}
	return h, w
}

// unaxis is the inverse of axis.
func unaxis(o Orientation, main, cross int) (w, h int) {
	if o == Horizontal {
		return main, cross
	}
	return cross, main
}

func (b *Block) gaps() int {
	if n := len(b.children); n > 1 {
		return b.spacing * (n - 1)
	}
	return 0
}

// aggregate computes the block's natural size from its children.
func (b *Block) aggregate() {
	var main, cross int
	for _, c := range b.children {
		w, h := c.size()
		m, x := axis(b.Orientation, w, h)
		if c.control != nil && c.control.Kind == KindFlexibleSpace {
			m = 0
		}
		main += m
		cross = max(cross, x)
	}
	main += b.gaps()

	w, h := unaxis(b.Orientation, main, cross)
	if b.Border != nil {
		w += 2
		h += 2
	}
	if b.Opts.Width > 0 {
		w = b.Opts.Width
	}
	if b.Opts.Height > 0 {
		h = b.Opts.Height
	}
	b.w, b.h, b.sized = w, h, true
}

// place assigns r to the block and lays out its children inside it.
func (b *Block) place(r Rect) {
	b.Rect = r
	inner := r
	if b.Border != nil {
		inner = r.Inset(1)
	}
	availMain, availCross := axis(b.Orientation, inner.W, inner.H)

	fixed, expanders := b.gaps(), 0
	for _, c := range b.children {
		if c.expands(b.Orientation) {
			expanders++
			continue
		}
		w, h := c.size()
		m, _ := axis(b.Orientation, w, h)
		fixed += m
	}

	var share, extra int
	if expanders > 0 {
		leftover := max(availMain-fixed, 0)
		share, extra = leftover/expanders, leftover%expanders
	}

	offset, crossOrigin := axis(b.Orientation, inner.X, inner.Y)
	for i, c := range b.children {
		w, h := c.size()
		m, _ := axis(b.Orientation, w, h)
		if c.expands(b.Orientation) {
			m = share
			if extra > 0 {
				m++
				extra--
			}
		}

		// children stretch across the axis unless they carry an explicit size
		x := availCross
		o := c.opts()
		if _, explicit := axis(b.Orientation, o.Width, o.Height); explicit > 0 {
			x = explicit
		}

		cw, ch := unaxis(b.Orientation, m, x)
		cx, cy := unaxis(b.Orientation, offset, crossOrigin)
		c.assign(Rect{X: cx, Y: cy, W: cw, H: ch})

		offset += m
		if i < len(b.children)-1 {
			offset += b.spacing
		}
	}
}

// layoutRoot places the root into the pass's start rect. A zero start height
// leaves the root at its aggregated height.
//
// Controls are measured before their final width is known. When a control
// placed narrower than it was measured wraps to a different height, the
// blocks are aggregated again, innermost first, and the root placed again.
// Widths do not depend on heights, so one refinement settles.
func (g *GUI) layoutRoot() {
	root := g.cache.root
	root.place(g.rootRect())
	if g.remeasure() {
		for i := len(g.cache.blocks) - 1; i >= 0; i-- {
			g.cache.blocks[i].aggregate()
		}
		root.place(g.rootRect())
	}
	g.width, g.height = root.Rect.W, root.Rect.H
}

func (g *GUI) rootRect() Rect {
	r := g.start
	if r.W == 0 {
		r.W = g.cache.root.w
	}
	if r.H == 0 {
		r.H = g.cache.root.h
	}
	return r
}

// remeasure refreshes the height of every control without an explicit
// height at the width it was placed with. It reports whether any changed.
func (g *GUI) remeasure() bool {
	s := g.surf()
	changed := false
	for _, c := range g.cache.controls {
		if c.Opts.Height > 0 || c.Rect.W <= 0 || c.Kind == KindSpace || c.Kind == KindFlexibleSpace {
			continue
		}
		if _, h := s.Measure(c.Kind, c.Content, c.Style, c.Rect.W); h != c.h {
			c.h = h
			changed = true
		}
	}
	return changed
}
