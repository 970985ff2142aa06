package stencil

import "fmt"

// GUI owns one panel's frame cache and runs its passes. The caller issues
// the same declarative call sequence every pass; the GUI decides call by call
// whether cached geometry can be reused.
//
// A GUI is not safe for concurrent use. Separate panels need separate GUIs.
type GUI struct {
	cfg      Config
	surface  Surface
	tracer   Tracer
	relayout RelayoutFunc

	cache FrameCache
	stack blockStack

	phase         Phase // phase of the pass in progress, or of the next one
	pendingReset  bool
	pendingLayout bool

	inPass    bool
	recording bool // layout pass with an empty cache: records new slots
	closing   bool // End is closing the root scope
	closed    bool
	pass      uint64
	lastPass  Phase

	start         Rect // start rect of the pass in progress
	laidOut       Rect // start rect of the last layout pass
	width, height int
}

// Option configures a GUI.
type Option func(*GUI)

// WithConfig replaces the default configuration.
func WithConfig(cfg Config) Option {
	return func(g *GUI) { g.cfg = cfg }
}

// WithSurface sets the host rendering surface.
func WithSurface(s Surface) Option {
	return func(g *GUI) { g.surface = s }
}

// WithTracer installs an event hook.
func WithTracer(t Tracer) Option {
	return func(g *GUI) { g.tracer = t }
}

// WithRelayout overrides the policy chosen by Config.Relayout.
func WithRelayout(f RelayoutFunc) Option {
	return func(g *GUI) { g.relayout = f }
}

// New creates a GUI in the Layout phase with an empty cache.
func New(opts ...Option) *GUI {
	g := &GUI{cfg: DefaultConfig(), phase: PhaseLayout}
	for _, opt := range opts {
		opt(g)
	}
	if g.relayout == nil {
		g.relayout = relayoutPolicies[g.cfg.Relayout]
	}
	if g.relayout == nil {
		g.relayout = WidthChanged
	}
	if g.cfg.MaxPassesPerFrame < 2 {
		g.cfg.MaxPassesPerFrame = DefaultConfig().MaxPassesPerFrame
	}
	return g
}

// Phase returns the phase of the pass in progress, or of the next pass.
func (g *GUI) Phase() Phase { return g.phase }

// Cache exposes the frame cache for inspection.
func (g *GUI) Cache() *FrameCache { return &g.cache }

// Config returns the GUI's configuration.
func (g *GUI) Config() Config { return g.cfg }

// Width returns the root width from the last Layout pass.
func (g *GUI) Width() int { return g.width }

// Height returns the root height from the last Layout pass.
func (g *GUI) Height() int { return g.height }

// Depth returns the current block nesting depth, the root included.
func (g *GUI) Depth() int { return g.stack.depth() }

// RequestReset drops the cache at the end of the current pass, or at the
// start of the next one when no pass is running.
func (g *GUI) RequestReset() {
	g.pendingReset = true
}

// RequestLayout recomputes geometry at the next pass boundary while keeping
// the cached records.
func (g *GUI) RequestLayout() {
	g.pendingLayout = true
}

// Notify delivers a host lifecycle signal.
func (g *GUI) Notify(s Signal) {
	switch s {
	case SignalResize, SignalModeChange:
		g.RequestLayout()
	}
}

// Begin starts a pass with the given start rect and opens the root vertical
// block. Every Begin must be paired with End.
func (g *GUI) Begin(start Rect) *GUI {
	if g.closed {
		panic(usage("begin", "gui is closed"))
	}
	if g.inPass {
		panic(usage("begin", "pass already in progress"))
	}

	// requests made between passes take effect now
	if g.pendingReset {
		g.reset("reset requested between passes")
	} else if g.pendingLayout && g.phase == PhaseDraw {
		g.phase = PhaseLayout
		g.emit(EventRelayout, "layout requested between passes")
	}

	g.pass++
	g.inPass = true
	g.start = start
	g.lastPass = g.phase
	if g.phase == PhaseLayout {
		g.laidOut = start
		g.pendingLayout = false
		g.pendingReset = false
		g.recording = g.cache.empty()
	}
	g.cache.rewind()
	g.emit(EventPassBegin, "")

	g.beginBlock(Vertical, BlockSpec{})
	return g
}

// End closes the root block and decides the next pass's phase. It returns a
// *UsageError when blocks opened in the pass were left unclosed; the pass is
// then abandoned and the cache dropped.
func (g *GUI) End() error {
	if !g.inPass {
		return usage("end", "no pass in progress")
	}

	if !g.pendingReset {
		if d := g.stack.depth(); d != 1 {
			err := &UsageError{Op: "end", Depth: d - 1, Reason: "unclosed blocks at root close"}
			g.abort(err)
			return err
		}
		g.closing = true
		g.stack.top().End()
		g.closing = false
	}

	g.stack.clear()
	g.inPass = false
	g.finish()
	return nil
}

// finish runs the pass finalization for the phase that just completed.
func (g *GUI) finish() {
	visited := Event{Controls: g.cache.nextControl, Blocks: g.cache.nextBlock}
	if g.recording {
		visited.Controls, visited.Blocks = g.cache.Controls(), g.cache.Blocks()
	}
	g.emitEvent(EventPassEnd, visited, "")

	switch g.phase {
	case PhaseLayout:
		switch {
		case g.pendingReset:
			g.reset("reset requested during layout")
		case !g.recording && !g.cache.consistent():
			g.reset(g.countMismatch())
		default:
			g.layoutRoot()
			g.recording = false
			g.phase = PhaseDraw
			g.emitEvent(EventLayoutDone, Event{Controls: g.cache.Controls(), Blocks: g.cache.Blocks()}, "")
		}

	case PhaseDraw:
		switch {
		case g.pendingReset:
			g.reset("reset pending at end of draw")
		case !g.cache.consistent():
			g.reset(g.countMismatch())
		case g.pendingLayout:
			g.phase = PhaseLayout
			g.emit(EventRelayout, "layout requested")
		case g.relayout(g.laidOut, g.start):
			g.phase = PhaseLayout
			g.emit(EventRelayout, "start rect changed")
		}
	}
}

func (g *GUI) countMismatch() string {
	return fmt.Sprintf("visited %d controls and %d blocks, cached %d and %d",
		g.cache.nextControl, g.cache.nextBlock, g.cache.Controls(), g.cache.Blocks())
}

// reset drops the cache and schedules a Layout pass.
func (g *GUI) reset(reason string) {
	g.emitEvent(EventReset, Event{Controls: g.cache.Controls(), Blocks: g.cache.Blocks()}, reason)
	g.cache.reset()
	g.pendingReset = false
	g.pendingLayout = false
	g.recording = false
	g.phase = PhaseLayout
}

// drift marks the pass as misaligned with the cache. Everything after it in
// the pass is non-drawable and the cache is dropped when the pass ends.
func (g *GUI) drift(reason string) {
	g.emit(EventDrift, reason)
	g.pendingReset = true
}

// abort abandons the pass in progress after a usage error.
func (g *GUI) abort(err *UsageError) {
	g.emit(EventUsageError, err.Error())
	g.stack.clear()
	g.inPass = false
	g.closing = false
	g.reset("usage error")
}

func (g *GUI) mustBeInPass(op string) {
	if !g.inPass {
		panic(usage(op, "no pass in progress"))
	}
}

// Run executes one pass: Begin, fn, End. A usage error raised inside fn
// abandons the pass and is returned.
func (g *GUI) Run(start Rect, fn func(*GUI)) (err error) {
	g.Begin(start)
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		ue, ok := r.(*UsageError)
		if !ok {
			panic(r)
		}
		if g.inPass {
			g.abort(ue)
		}
		err = ue
	}()
	fn(g)
	return g.End()
}

// Frame runs passes until one Draw pass completes without drift, clearing
// the surface before each pass. Normally that is one pass, or two when the
// GUI was in the Layout phase.
func (g *GUI) Frame(start Rect, fn func(*GUI)) error {
	for range g.cfg.MaxPassesPerFrame {
		g.surf().Clear()
		if err := g.Run(start, fn); err != nil {
			return err
		}
		if g.lastPass == PhaseDraw && g.phase == PhaseDraw {
			return nil
		}
	}
	return ErrFrameUnstable
}

// Close drops the cache and detaches the surface. The GUI can't be used
// afterwards.
func (g *GUI) Close() error {
	if g.closed {
		return nil
	}
	if g.inPass {
		g.stack.clear()
		g.inPass = false
	}
	g.cache.reset()
	g.surface = nil
	g.closed = true
	return nil
}

func (g *GUI) surf() Surface {
	if g.surface == nil {
		return headless{labelWidth: g.cfg.LabelWidth}
	}
	return g.surface
}

func (g *GUI) emit(kind EventKind, reason string) {
	g.emitEvent(kind, Event{Controls: g.cache.nextControl, Blocks: g.cache.nextBlock}, reason)
}

func (g *GUI) emitEvent(kind EventKind, e Event, reason string) {
	if g.tracer == nil {
		return
	}
	e.Kind = kind
	e.Pass = g.pass
	e.Phase = g.phase
	e.Reason = reason
	g.tracer(e)
}
