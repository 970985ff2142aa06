// stencil-inspect edits a sample struct with the reflection inspector.
//
//	stencil-inspect [-config stencil.toml] [-print] [-frames n] [-trace]
//
// With -print, or when stdout is not a terminal, it draws one frame and
// exits. -frames redraws n times, levelling the player up between frames; on
// a terminal only the changed cells are written after the first frame. Set STENCIL_DEBUG=/path/to/file to log engine events.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/kungfusheep/stencil"

	"golang.org/x/term"
)

var (
	configPath = flag.String("config", "stencil.toml", "TOML config file")
	printOnce  = flag.Bool("print", false, "draw one frame to stdout and exit")
	trace      = flag.Bool("trace", false, "log engine events to stderr")
	frames     = flag.Int("frames", 1, "frames to draw with -print")
)

type Stats struct {
	Strength  int `inspect:"slider=0:20"`
	Dexterity int `inspect:"slider=0:20"`
	Luck      float64
}

type Player struct {
	Name      string
	Class     string  `inspect:"popup=warrior|mage|rogue"`
	Health    float64 `inspect:"slider=0:100,help=Drops to zero and the run ends."`
	Level     int
	Alive     bool
	Notes     string `inspect:"multiline"`
	Inventory []string
	Stats     Stats
	Home      *Stats
	secret    string
}

func main() {
	flag.Parse()

	cfg, err := stencil.LoadConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	opts := []stencil.Option{stencil.WithConfig(cfg)}
	tracer, closeTrace := stencil.DebugTracerFromEnv()
	defer closeTrace()
	if *trace {
		tracer = stencil.LogTracer(log.New(os.Stderr, "", log.Ltime))
	}
	if tracer != nil {
		opts = append(opts, stencil.WithTracer(tracer))
	}

	player := &Player{
		Name:      "Ada",
		Class:     "mage",
		Health:    72,
		Level:     3,
		Alive:     true,
		Inventory: []string{"lantern", "rope"},
		Stats:     Stats{Strength: 8, Dexterity: 14, Luck: 0.5},
	}
	resets := 0
	draw := func(g *stencil.GUI) {
		g.Vertical(stencil.BlockSpec{Border: &stencil.BorderRounded, Title: "Player", Options: stencil.ExpandH()}, func() {
			if err := stencil.Inspect(g, player); err != nil {
				g.HelpBox(err.Error(), stencil.MessageError)
			}
			g.FlexibleSpace()
			g.Splitter()
			g.Horizontal(stencil.Plain, func() {
				if g.Button("Reset") {
					*player = Player{Name: player.Name}
					resets++
				}
				g.FlexibleSpace()
				g.StyledLabel(fmt.Sprintf("resets: %d", resets), stencil.Style{FG: stencil.BrightBlack})
			})
		})
	}

	fd := int(os.Stdout.Fd())
	if *printOnce || !term.IsTerminal(fd) {
		levelUp := func() { player.Level++ }
		if err := printFrames(fd, cfg, draw, opts, *frames, levelUp); err != nil {
			log.Fatal(err)
		}
		return
	}

	if err := stencil.NewModel(draw, opts...).Run(); err != nil {
		log.Fatal(err)
	}
}

// printFrames draws n frames, calling tick between them. A terminal gets
// them through a Screen, anything else gets the last frame as plain text.
func printFrames(fd int, cfg stencil.Config, draw func(*stencil.GUI), opts []stencil.Option, n int, tick func()) error {
	var (
		canvas *stencil.Canvas
		screen *stencil.Screen
		start  stencil.Rect
	)
	if term.IsTerminal(fd) {
		screen = stencil.NewScreen(os.Stdout, fd)
		canvas = stencil.NewBufferCanvas(screen.Buffer(), cfg)
		start = stencil.Rect{W: screen.Width(), H: screen.Height()}
	} else {
		canvas = stencil.NewCanvas(80, 60, cfg)
		start = stencil.Rect{W: 80}
	}

	g := stencil.New(append(opts, stencil.WithSurface(canvas))...)
	defer g.Close()
	for i := range max(n, 1) {
		if i > 0 {
			tick()
			time.Sleep(250 * time.Millisecond)
		}
		if err := g.Frame(start, draw); err != nil {
			return err
		}
		if screen == nil {
			continue
		}
		flush := screen.Flush
		if i == 0 {
			flush = screen.FlushFull
		}
		if err := flush(); err != nil {
			return err
		}
	}

	if screen == nil {
		_, err := fmt.Println(canvas.Buffer().StringTrimmed())
		return err
	}
	_, err := fmt.Println()
	return err
}
