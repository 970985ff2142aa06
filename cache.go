package stencil

// FrameCache holds the controls and blocks recorded by the last completed
// pass, in call order. Slot position is the only identity a record has.
type FrameCache struct {
	root     *Block
	controls []*Control
	blocks   []*Block // pre-order of creation, root first

	// cursors into the cached sequences for the pass in progress
	nextControl int
	nextBlock   int
}

// Controls returns the number of cached controls.
func (c *FrameCache) Controls() int { return len(c.controls) }

// Blocks returns the number of cached blocks.
func (c *FrameCache) Blocks() int { return len(c.blocks) }

// Root returns the root block, or nil when nothing is cached.
func (c *FrameCache) Root() *Block { return c.root }

// Control returns the cached control at slot i.
func (c *FrameCache) Control(i int) *Control { return c.controls[i] }

// Block returns the cached block at slot i.
func (c *FrameCache) Block(i int) *Block { return c.blocks[i] }

func (c *FrameCache) empty() bool { return len(c.blocks) == 0 }

// reset drops every record. Slot identities do not survive it.
func (c *FrameCache) reset() {
	c.root = nil
	clear(c.controls)
	clear(c.blocks)
	c.controls = c.controls[:0]
	c.blocks = c.blocks[:0]
	c.rewind()
}

func (c *FrameCache) rewind() {
	c.nextControl = 0
	c.nextBlock = 0
}

// consistent reports whether the pass visited exactly the cached slots.
func (c *FrameCache) consistent() bool {
	return c.nextControl == len(c.controls) && c.nextBlock == len(c.blocks)
}

func (c *FrameCache) appendControl(ctl *Control) {
	c.controls = append(c.controls, ctl)
}

func (c *FrameCache) appendBlock(b *Block) {
	if c.root == nil {
		c.root = b
	}
	c.blocks = append(c.blocks, b)
}

// nextControlSlot consumes the control at the cursor. It returns nil when the
// cursor has run past the cached sequence or the slot holds another kind.
func (c *FrameCache) nextControlSlot(kind ControlKind) *Control {
	if c.nextControl >= len(c.controls) {
		return nil
	}
	ctl := c.controls[c.nextControl]
	if ctl.Kind != kind {
		return nil
	}
	c.nextControl++
	return ctl
}

// nextBlockSlot consumes the block at the cursor, with the same rules as
// nextControlSlot. A block opened with a key must match the cached key.
func (c *FrameCache) nextBlockSlot(o Orientation, key string) *Block {
	if c.nextBlock >= len(c.blocks) {
		return nil
	}
	b := c.blocks[c.nextBlock]
	if b.Orientation != o || b.Key != key {
		return nil
	}
	c.nextBlock++
	return b
}
