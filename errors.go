package stencil

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupported is returned when the surface cannot provide a widget.
	ErrUnsupported = fmt.Errorf("stencil: surface operation: %w", errors.ErrUnsupported)

	// ErrNoControl is returned by LastRect before any control was requested.
	ErrNoControl = errors.New("stencil: no previous control in this pass")

	// ErrFrameUnstable is returned by Frame when no clean Draw pass happened
	// within the configured pass limit.
	ErrFrameUnstable = errors.New("stencil: frame did not settle")

	// ErrNotStruct is returned by Inspect for anything but a non-nil pointer
	// to a struct.
	ErrNotStruct = errors.New("stencil: inspect needs a non-nil pointer to a struct")
)

// UsageError reports a broken begin/end protocol. The pass that raised it is
// abandoned and the cache is dropped.
type UsageError struct {
	Op     string
	Depth  int
	Reason string
}

func (e *UsageError) Error() string {
	if e.Depth != 0 {
		return fmt.Sprintf("stencil: %s: %s (depth %d)", e.Op, e.Reason, e.Depth)
	}
	return fmt.Sprintf("stencil: %s: %s", e.Op, e.Reason)
}

func usage(op, reason string) *UsageError {
	return &UsageError{Op: op, Reason: reason}
}
