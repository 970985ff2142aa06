package stencil

import "testing"

func TestLayoutScenario(t *testing.T) {
	cfg := DefaultConfig()
	cfg.VerticalSpacing = 1
	cfg.HorizontalSpacing = 2
	g, _, _ := newTestGUI(WithConfig(cfg))

	err := g.Frame(Rect{W: 200}, func(g *GUI) {
		g.Label("A", H(20))
		g.Horizontal(Plain, func() {
			g.Label("B", W(30))
			g.Label("C", Expand())
		})
		g.Label("D", H(15))
	})
	if err != nil {
		t.Fatal(err)
	}

	c := g.Cache()
	a, b, cc, d := c.Control(0), c.Control(1), c.Control(2), c.Control(3)
	nested := c.Block(1)

	nestedH := max(b.Rect.H, cc.Rect.H)
	if want := 20 + nestedH + 15 + 2*cfg.VerticalSpacing; g.Height() != want {
		t.Errorf("expected root height %d, got %d", want, g.Height())
	}
	if c.Root().Rect.H != g.Height() {
		t.Errorf("expected root rect height %d, got %d", g.Height(), c.Root().Rect.H)
	}
	if nested.Rect.W != 200 {
		t.Errorf("expected nested block width 200, got %d", nested.Rect.W)
	}
	if want := 200 - 30 - cfg.HorizontalSpacing; cc.Rect.W != want {
		t.Errorf("expected C width %d, got %d", want, cc.Rect.W)
	}
	if cc.Rect.X != 30+cfg.HorizontalSpacing {
		t.Errorf("expected C at x=%d, got %d", 30+cfg.HorizontalSpacing, cc.Rect.X)
	}
	if a.Rect != (Rect{W: 200, H: 20}) {
		t.Errorf("unexpected rect for A: %+v", a.Rect)
	}
	if want := 20 + cfg.VerticalSpacing + nestedH + cfg.VerticalSpacing; d.Rect.Y != want {
		t.Errorf("expected D at y=%d, got %d", want, d.Rect.Y)
	}
	if d.Rect.H != 15 {
		t.Errorf("expected D height 15, got %d", d.Rect.H)
	}
}

func TestLayoutExpandPartition(t *testing.T) {
	tests := []struct {
		name  string
		width int
		fixed []int
		flex  int
		want  []int // widths of the flexible spaces
	}{
		{"remainder of one", 20, nil, 2, []int{10, 9}},
		{"remainder to first", 100, nil, 3, []int{33, 33, 32}},
		{"after fixed", 50, []int{10, 5}, 1, []int{33}},
		{"no room", 10, []int{12}, 2, []int{0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, _, _ := newTestGUI()
			err := g.Frame(Rect{W: tt.width}, func(g *GUI) {
				g.Horizontal(Plain, func() {
					for _, w := range tt.fixed {
						g.Label("x", W(w))
					}
					for range tt.flex {
						g.FlexibleSpace()
					}
				})
			})
			if err != nil {
				t.Fatal(err)
			}

			for i, want := range tt.want {
				got := g.Cache().Control(len(tt.fixed) + i).Rect.W
				if got != want {
					t.Errorf("flexible space %d: expected width %d, got %d", i, want, got)
				}
			}
		})
	}
}

func TestLayoutVerticalExpand(t *testing.T) {
	g, _, _ := newTestGUI()
	err := g.Frame(Rect{W: 10, H: 12}, func(g *GUI) {
		g.Label("top")
		g.Vertical(BlockSpec{Options: ExpandH()}, func() {
			g.Label("body")
		})
		g.Label("bottom")
	})
	if err != nil {
		t.Fatal(err)
	}

	body := g.Cache().Block(1)
	if body.Rect.H != 10 {
		t.Errorf("expected the expanding block to take 10 rows, got %d", body.Rect.H)
	}
	if got := g.Cache().Control(2).Rect.Y; got != 11 {
		t.Errorf("expected bottom label on the last row, got %d", got)
	}
}

func TestLayoutConsistency(t *testing.T) {
	g, _, _ := newTestGUI()
	err := g.Frame(Rect{W: 50}, func(g *GUI) {
		g.Label("one", H(3))
		g.Label("two")
		g.Vertical(Plain, func() {
			g.Label("three", H(2))
			g.Label("four")
		})
		g.Horizontal(Plain, func() {
			g.Label("five", H(4))
			g.Label("six")
		})
	})
	if err != nil {
		t.Fatal(err)
	}

	var check func(b *Block)
	check = func(b *Block) {
		sum := 0
		for i, c := range b.children {
			r := c.rect()
			if r.X < b.Rect.X || r.Y < b.Rect.Y ||
				r.X+r.W > b.Rect.X+b.Rect.W || r.Y+r.H > b.Rect.Y+b.Rect.H {
				t.Errorf("child %d rect %+v escapes parent %+v", i, r, b.Rect)
			}
			main, _ := axis(b.Orientation, r.W, r.H)
			sum += main
			if c.block != nil {
				check(c.block)
			}
		}
		sum += b.gaps()
		main, _ := axis(b.Orientation, b.Rect.W, b.Rect.H)
		if b.Orientation == Vertical && sum != main {
			t.Errorf("vertical block %+v: children span %d rows, block has %d", b.Rect, sum, main)
		}
		if w, h, ok := b.Size(); !ok || (b.Orientation == Vertical && h != b.Rect.H) {
			t.Errorf("expected aggregated size to match placed height, got %dx%d ok=%v", w, h, ok)
		}
	}
	check(g.Cache().Root())

	if want := 3 + 1 + 3 + 4; g.Height() != want {
		t.Errorf("expected root height %d, got %d", want, g.Height())
	}
}

func TestLayoutBorder(t *testing.T) {
	g, _, _ := newTestGUI()
	err := g.Frame(Rect{W: 30}, func(g *GUI) {
		g.Horizontal(Plain, func() {
			g.Vertical(Boxed, func() {
				g.Label("hello")
			})
		})
	})
	if err != nil {
		t.Fatal(err)
	}

	box := g.Cache().Block(2)
	if box.Rect != (Rect{W: 7, H: 3}) {
		t.Errorf("expected a 7x3 box, got %+v", box.Rect)
	}
	if r := g.Cache().Control(0).Rect; r != (Rect{X: 1, Y: 1, W: 5, H: 1}) {
		t.Errorf("expected label inset by the border, got %+v", r)
	}
}

func TestLayoutEmptyBlock(t *testing.T) {
	g, _, _ := newTestGUI()
	err := g.Frame(Rect{W: 30}, func(g *GUI) {
		g.Horizontal(Plain, func() {
			g.Vertical(Plain, func() {})
			g.Vertical(Boxed, func() {})
		})
	})
	if err != nil {
		t.Fatal(err)
	}

	if w, h, _ := g.Cache().Block(2).Size(); w != 0 || h != 0 {
		t.Errorf("expected an empty block to be 0x0, got %dx%d", w, h)
	}
	if w, h, _ := g.Cache().Block(3).Size(); w != 2 || h != 2 {
		t.Errorf("expected an empty bordered block to be 2x2, got %dx%d", w, h)
	}
}

func TestLayoutExplicitSize(t *testing.T) {
	g, _, _ := newTestGUI()
	err := g.Frame(Rect{W: 40}, func(g *GUI) {
		g.Vertical(BlockSpec{Options: W(12).H(5)}, func() {
			g.Label("a very long label indeed")
		})
		g.Label("narrow", W(6))
	})
	if err != nil {
		t.Fatal(err)
	}

	if r := g.Cache().Block(1).Rect; r.W != 12 || r.H != 5 {
		t.Errorf("expected a 12x5 block, got %dx%d", r.W, r.H)
	}
	if r := g.Cache().Control(0).Rect; r.W != 12 {
		t.Errorf("expected the child clipped to the block width 12, got %d", r.W)
	}
	if r := g.Cache().Control(1).Rect; r.W != 6 {
		t.Errorf("expected an explicit width to stop the stretch, got %d", r.W)
	}
}

func TestIndent(t *testing.T) {
	for _, spacing := range []int{0, 1, 2} {
		cfg := DefaultConfig()
		cfg.HorizontalSpacing = spacing
		g, _, _ := newTestGUI(WithConfig(cfg))
		err := g.Frame(Rect{W: 20}, func(g *GUI) {
			g.Indent(4, func() { g.Label("x") })
		})
		if err != nil {
			t.Fatal(err)
		}
		var label *Control
		for i := range g.Cache().Controls() {
			if c := g.Cache().Control(i); c.Kind == KindLabel {
				label = c
			}
		}
		if label.Rect.X != 4 || label.Rect.W != 16 {
			t.Errorf("spacing %d: expected label at x=4 w=16, got %+v", spacing, label.Rect)
		}
	}
}

func TestSpaceFollowsAxis(t *testing.T) {
	g, _, _ := newTestGUI()
	err := g.Frame(Rect{W: 20}, func(g *GUI) {
		g.Space(3)
		g.Horizontal(Plain, func() {
			g.Space(5)
			g.Label("x")
		})
	})
	if err != nil {
		t.Fatal(err)
	}

	if w, h := g.Cache().Control(0).Size(); w != 0 || h != 3 {
		t.Errorf("expected vertical space 0x3, got %dx%d", w, h)
	}
	if w, h := g.Cache().Control(1).Size(); w != 5 || h != 0 {
		t.Errorf("expected horizontal space 5x0, got %dx%d", w, h)
	}
	if x := g.Cache().Control(2).Rect.X; x != 6 {
		t.Errorf("expected label after space and gap at x=6, got %d", x)
	}
}

func TestLayoutWrapInIndent(t *testing.T) {
	g := New()
	fn := func(g *GUI) {
		g.Indent(10, func() {
			g.HelpBox("aaaa bbbb cccc dddd eeee", MessageInfo)
		})
	}
	if err := g.Frame(Rect{W: 20}, fn); err != nil {
		t.Fatal(err)
	}

	help := findControl(t, g, KindHelpBox, "aaaa bbbb cccc dddd eeee")
	if help.Rect != (Rect{X: 10, W: 10, H: 5}) {
		t.Errorf("expected the help box wrapped at the indented width, got %+v", help.Rect)
	}
	if g.Height() != 5 {
		t.Errorf("expected root height 5, got %d", g.Height())
	}
}

func TestLayoutWrapAfterPlacement(t *testing.T) {
	g := New()
	fn := func(g *GUI) {
		g.Horizontal(Plain, func() {
			g.Vertical(BlockSpec{Options: Expand()}, func() {
				g.HelpBox("aaaa bbbb cccc dddd eeee", MessageInfo)
			})
			g.Label("x", W(10))
		})
		g.Label("below")
	}
	if err := g.Frame(Rect{W: 20}, fn); err != nil {
		t.Fatal(err)
	}

	// measured against 20 columns, placed into 9
	check := func(when string) {
		help := findControl(t, g, KindHelpBox, "aaaa bbbb cccc dddd eeee")
		if help.Rect.W != 9 || help.Rect.H != 5 {
			t.Errorf("%s: expected a 9x5 help box, got %+v", when, help.Rect)
		}
		if y := findControl(t, g, KindLabel, "below").Rect.Y; y != 5 {
			t.Errorf("%s: expected the next row at y=5, got %d", when, y)
		}
	}
	check("first layout")

	g.RequestLayout()
	if err := g.Frame(Rect{W: 20}, fn); err != nil {
		t.Fatal(err)
	}
	check("relayout")
}
