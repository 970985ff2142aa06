package stencil_test

import (
	"fmt"

	"github.com/kungfusheep/stencil"
)

// Frame runs the layout pass and the draw pass. Widgets are plain calls in
// the order they appear on screen.
func ExampleGUI_Frame() {
	c := stencil.NewCanvas(20, 3, stencil.DefaultConfig())
	g := stencil.New(stencil.WithSurface(c))

	g.Frame(stencil.Rect{W: 20}, func(g *stencil.GUI) {
		g.Label("hello")
		g.Horizontal(stencil.Plain, func() {
			g.Button("ok")
			g.Button("cancel")
		})
	})
	fmt.Println(c.Buffer().String())
	// Output:
	// hello
	// [ ok ] [ cancel ]
}

// Inspect draws an editor for each exported field. Tags adjust the widgets.
func ExampleInspect() {
	type settings struct {
		Name  string
		Muted bool   `inspect:"label=Mute all"`
		Token string `inspect:"hide"`
	}
	s := &settings{Name: "ann"}

	c := stencil.NewCanvas(30, 2, stencil.DefaultConfig())
	g := stencil.New(stencil.WithSurface(c))
	g.Frame(stencil.Rect{W: 30}, func(g *stencil.GUI) {
		stencil.Inspect(g, s)
	})
	fmt.Println(c.Buffer().String())
	// Output:
	// Name            ann
	// [ ] Mute all
}

func ExampleParseConfig() {
	cfg, err := stencil.ParseConfig([]byte("label_width = 20\n"))
	if err != nil {
		panic(err)
	}
	fmt.Println(cfg.LabelWidth, cfg.HorizontalSpacing)
	// Output: 20 1
}
