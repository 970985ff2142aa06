package stencil

import "fmt"

// Orientation is the stacking axis of a block.
type Orientation uint8

const (
	Vertical Orientation = iota
	Horizontal
)

func (o Orientation) String() string {
	if o == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// BlockSpec describes a container at the call site.
type BlockSpec struct {
	Style   Style
	Border  *BorderStyle // nil = no border; a border insets children by one cell
	Title   string       // drawn into the top border
	Options Options

	// Key, when set, must match the key cached at this block slot on later
	// passes. Without keys a reorder is indistinguishable from an insert
	// followed by a delete.
	Key string
}

// Plain is a block with no decoration.
var Plain = BlockSpec{}

// Boxed is a block framed with a rounded border.
var Boxed = BlockSpec{Border: &BorderRounded}

// Block is a container record. Its children are the controls and blocks
// opened inside it, in call order.
type Block struct {
	Orientation Orientation
	Style       Style
	Border      *BorderStyle
	Title       string
	Opts        Options
	Key         string
	Rect        Rect

	parent   *Block
	children []child
	spacing  int
	avail    int // width offered by the parent when the block opened
	next     int // children visited by the pass in progress

	// aggregated size; valid when sized
	w, h  int
	sized bool

	release func(*Block)
}

// child is one entry of a block's child list; exactly one field is set.
type child struct {
	control *Control
	block   *Block
}

func (c child) size() (w, h int) {
	if c.control != nil {
		return c.control.w, c.control.h
	}
	return c.block.w, c.block.h
}

func (c child) opts() Options {
	if c.control != nil {
		return c.control.Opts
	}
	return c.block.Opts
}

func (c child) expands(o Orientation) bool {
	if c.control != nil {
		return c.control.expands(o)
	}
	if o == Horizontal {
		return c.block.Opts.ExpandWidth
	}
	return c.block.Opts.ExpandHeight
}

func (c child) rect() Rect {
	if c.control != nil {
		return c.control.Rect
	}
	return c.block.Rect
}

func (c child) assign(r Rect) {
	if c.control != nil {
		c.control.Rect = r
		return
	}
	c.block.place(r)
}

// End closes the block's scope. It is safe to call on the nil block returned
// while a reset is pending.
func (b *Block) End() {
	if b == nil {
		return
	}
	b.release(b)
}

// Size returns the aggregated size. ok is false until the block has been
// sized by a Layout pass.
func (b *Block) Size() (w, h int, ok bool) {
	return b.w, b.h, b.sized
}

// Parent returns the enclosing block, or nil for the root.
func (b *Block) Parent() *Block { return b.parent }

// Len returns the number of children.
func (b *Block) Len() int { return len(b.children) }

func (b *Block) addControl(c *Control) {
	b.children = append(b.children, child{control: c})
}

func (b *Block) addBlock(c *Block) {
	c.parent = b
	b.children = append(b.children, child{block: c})
}

func (b *Block) apply(spec BlockSpec) {
	b.Style = spec.Style
	b.Border = spec.Border
	b.Title = spec.Title
	b.Opts = spec.Options
}

// innerAvail is the width inside the block's border.
func (b *Block) innerAvail() int {
	if b.Border != nil {
		return max(b.avail-2, 0)
	}
	return b.avail
}

// childAvail is the width the next child measures against. A horizontal
// block takes off the siblings already visited in this pass.
func (b *Block) childAvail() int {
	avail := b.innerAvail()
	if b.Orientation != Horizontal {
		return avail
	}
	for _, c := range b.children[:min(b.next, len(b.children))] {
		w, _ := c.size()
		if c.control != nil && c.control.Kind == KindFlexibleSpace {
			w = 0
		}
		avail -= w + b.spacing
	}
	return max(avail, 0)
}

func (g *GUI) spacingFor(o Orientation) int {
	if o == Horizontal {
		return g.cfg.HorizontalSpacing
	}
	return g.cfg.VerticalSpacing
}

// beginBlock aligns a container call with the block cache and pushes the
// resolved block. It returns nil while a reset is pending or on drift.
func (g *GUI) beginBlock(o Orientation, spec BlockSpec) *Block {
	g.mustBeInPass("begin " + o.String())

	if g.pendingReset {
		return nil
	}
	parent := g.stack.top()

	var b *Block
	if g.recording {
		b = &Block{Orientation: o, Key: spec.Key, release: g.endBlock}
		b.apply(spec)
		g.cache.appendBlock(b)
		if parent != nil {
			parent.addBlock(b)
		}
	} else {
		b = g.cache.nextBlockSlot(o, spec.Key)
		if b == nil {
			g.drift(fmt.Sprintf("block %d: %s %q does not match the cached sequence", g.cache.nextBlock, o, spec.Key))
			return nil
		}
		b.apply(spec)
	}

	b.spacing = g.spacingFor(o)
	switch {
	case b.Opts.Width > 0:
		b.avail = b.Opts.Width
	case parent != nil:
		b.avail = parent.childAvail()
	default:
		b.avail = g.start.W
	}
	b.next = 0
	if parent != nil {
		parent.next++
	}

	if g.phase == PhaseLayout {
		b.sized = false
	} else if b.Border != nil || b.Style != (Style{}) {
		g.surf().Panel(b.Rect, b.Border, b.Title, b.Style)
	}

	g.stack.push(b)
	return b
}

// endBlock is every block's release callback. In a Layout pass it finalizes
// the block's bottom-up size.
func (g *GUI) endBlock(b *Block) {
	g.mustBeInPass("end block")
	if g.pendingReset {
		return
	}
	top := g.stack.top()
	switch {
	case top == nil:
		panic(usage("end block", "no open block"))
	case top != b:
		panic(&UsageError{Op: "end block", Depth: g.stack.depth() - 1, Reason: "block closed out of order"})
	case g.stack.depth() == 1 && !g.closing:
		panic(usage("end block", "unbalanced end would close the root scope"))
	}
	g.stack.pop()
	if g.phase == PhaseLayout {
		b.aggregate()
	}
}

// endBlockOf closes the innermost block, which must have orientation o.
func (g *GUI) endBlockOf(o Orientation) {
	g.mustBeInPass("end " + o.String())
	if g.pendingReset {
		return
	}
	top := g.stack.top()
	if top != nil && top.Orientation != o {
		panic(&UsageError{Op: "end " + o.String(), Depth: g.stack.depth() - 1, Reason: "innermost block is " + top.Orientation.String()})
	}
	g.endBlock(top)
}

// BeginVertical opens a vertical block. The result is nil while a reset is
// pending; its End method is nil-safe.
func (g *GUI) BeginVertical(spec BlockSpec) *Block {
	return g.beginBlock(Vertical, spec)
}

// BeginHorizontal opens a horizontal block.
func (g *GUI) BeginHorizontal(spec BlockSpec) *Block {
	return g.beginBlock(Horizontal, spec)
}

// EndVertical closes the innermost block, which must be vertical.
func (g *GUI) EndVertical() { g.endBlockOf(Vertical) }

// EndHorizontal closes the innermost block, which must be horizontal.
func (g *GUI) EndHorizontal() { g.endBlockOf(Horizontal) }

// Vertical runs fn inside a vertical block. fn is skipped when the block
// could not open.
func (g *GUI) Vertical(spec BlockSpec, fn func()) {
	b := g.BeginVertical(spec)
	if b == nil {
		return
	}
	fn()
	b.End()
}

// Horizontal runs fn inside a horizontal block.
func (g *GUI) Horizontal(spec BlockSpec, fn func()) {
	b := g.BeginHorizontal(spec)
	if b == nil {
		return
	}
	fn()
	b.End()
}

// Indent runs fn in a vertical block shifted right by n columns, or by the
// horizontal spacing when that is wider.
func (g *GUI) Indent(n int, fn func()) {
	g.Horizontal(BlockSpec{}, func() {
		g.Space(max(n-g.cfg.HorizontalSpacing, 0))
		g.Vertical(BlockSpec{Options: Expand()}, fn)
	})
}
