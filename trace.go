package stencil

import (
	"fmt"
	"log"
	"os"
)

// EventKind identifies an engine event.
type EventKind uint8

const (
	EventPassBegin EventKind = iota
	EventPassEnd
	EventLayoutDone
	EventDrift
	EventReset
	EventRelayout
	EventUsageError
)

var eventNames = [...]string{
	EventPassBegin:  "pass-begin",
	EventPassEnd:    "pass-end",
	EventLayoutDone: "layout-done",
	EventDrift:      "drift",
	EventReset:      "reset",
	EventRelayout:   "relayout",
	EventUsageError: "usage-error",
}

func (k EventKind) String() string {
	if int(k) < len(eventNames) {
		return eventNames[k]
	}
	return fmt.Sprintf("event(%d)", k)
}

// Event describes something the engine did during a pass.
type Event struct {
	Kind     EventKind
	Pass     uint64
	Phase    Phase
	Controls int // controls visited (or cached, for layout-done and reset)
	Blocks   int
	Reason   string
}

// Tracer receives engine events. It runs synchronously inside the pass.
type Tracer func(Event)

// LogTracer writes each event as one line to l.
func LogTracer(l *log.Logger) Tracer {
	return func(e Event) {
		if e.Reason != "" {
			l.Printf("pass=%d phase=%s %s controls=%d blocks=%d reason=%q",
				e.Pass, e.Phase, e.Kind, e.Controls, e.Blocks, e.Reason)
			return
		}
		l.Printf("pass=%d phase=%s %s controls=%d blocks=%d",
			e.Pass, e.Phase, e.Kind, e.Controls, e.Blocks)
	}
}

// DebugEnv names the file that DebugTracerFromEnv appends to.
const DebugEnv = "STENCIL_DEBUG"

// DebugTracerFromEnv returns a tracer appending to the file named by
// STENCIL_DEBUG, or nil when the variable is unset or the file can't open.
// The returned close func is always safe to call.
func DebugTracerFromEnv() (Tracer, func() error) {
	path := os.Getenv(DebugEnv)
	if path == "" {
		return nil, func() error { return nil }
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, func() error { return nil }
	}
	return LogTracer(log.New(f, "stencil ", log.Lmicroseconds)), f.Close
}
