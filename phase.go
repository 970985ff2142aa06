package stencil

// Phase is the kind of pass the GUI runs next.
type Phase uint8

const (
	// PhaseLayout recomputes all geometry. Widgets do not draw.
	PhaseLayout Phase = iota
	// PhaseDraw replays cached geometry and draws through the surface.
	PhaseDraw
)

func (p Phase) String() string {
	switch p {
	case PhaseLayout:
		return "layout"
	case PhaseDraw:
		return "draw"
	}
	return "unknown"
}

// Signal is a host lifecycle notification.
type Signal uint8

const (
	// SignalResize reports that the host viewport changed size.
	SignalResize Signal = iota + 1
	// SignalModeChange reports a host mode transition that invalidates
	// measurements (theme switch, run/edit mode and similar).
	SignalModeChange
)

// RelayoutFunc decides at the end of a clean Draw pass whether the start
// rect moved far enough from the one last laid out to need a new layout.
type RelayoutFunc func(laidOut, current Rect) bool

// WidthChanged re-lays out when the available width differs.
func WidthChanged(laidOut, current Rect) bool {
	return laidOut.W != current.W
}

// GeometryChanged re-lays out when the origin or width differs.
func GeometryChanged(laidOut, current Rect) bool {
	return laidOut.X != current.X || laidOut.Y != current.Y || laidOut.W != current.W
}

// relayoutPolicies names the policies selectable from config.
var relayoutPolicies = map[string]RelayoutFunc{
	"width":    WidthChanged,
	"geometry": GeometryChanged,
}
