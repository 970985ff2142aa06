package stencil

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Model hosts a GUI inside a bubbletea program. Messages feed the canvas
// input queue and View runs a frame of the draw function.
type Model struct {
	gui      *GUI
	canvas   *Canvas
	draw     func(*GUI)
	renderer *lipgloss.Renderer
	err      error
}

// NewModel creates a model drawing with fn. The canvas starts at 80x24 and
// follows the window size once the program reports it.
func NewModel(fn func(*GUI), opts ...Option) *Model {
	g := New(opts...)
	c := NewCanvas(80, 24, g.Config())
	g.surface = c
	return &Model{gui: g, canvas: c, draw: fn}
}

// GUI returns the model's GUI.
func (m *Model) GUI() *GUI { return m.gui }

// Canvas returns the model's drawing surface.
func (m *Model) Canvas() *Canvas { return m.canvas }

// SetRenderer sets the lipgloss renderer used by View.
func (m *Model) SetRenderer(r *lipgloss.Renderer) { m.renderer = r }

// Err returns the error that stopped the last frame, if any.
func (m *Model) Err() error { return m.err }

// Run starts a full-screen program with mouse support and blocks until it
// exits.
func (m *Model) Run() error {
	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
	if cerr := m.gui.Close(); err == nil {
		err = cerr
	}
	return err
}

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.canvas.Resize(msg.Width, msg.Height)
		m.gui.Notify(SignalResize)

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.canvas.Click(msg.X, msg.Y)
		}

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			return m, tea.Quit
		case tea.KeyEsc:
			if !m.canvas.focused {
				return m, tea.Quit
			}
			m.canvas.Blur()
		case tea.KeyEnter, tea.KeyTab:
			m.canvas.Blur()
		case tea.KeyBackspace:
			m.canvas.Backspace()
		case tea.KeySpace:
			m.canvas.Type(' ')
		case tea.KeyRunes:
			m.canvas.Type(msg.Runes...)
		}
	}
	return m, nil
}

func (m *Model) View() string {
	b := m.canvas.Buffer()
	m.err = m.gui.Frame(Rect{W: b.Width(), H: b.Height()}, m.draw)
	m.canvas.DropInput()
	if m.err != nil {
		return m.err.Error()
	}
	return b.Render(m.renderer)
}
