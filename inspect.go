package stencil

import (
	"fmt"
	"reflect"
)

// DefaultRegistry is the registry used by Inspect.
var DefaultRegistry = NewRegistry()

// Inspect emits an editor for every exported field of the struct ptr points
// to, writing edits back through the pointer. Fields are drawn by
// DefaultRegistry; `inspect` struct tags adjust labels and widgets.
func Inspect(g *GUI, ptr any) error {
	return DefaultRegistry.Inspect(g, ptr)
}

// Inspect is like the package-level Inspect but draws with r.
func (r *Registry) Inspect(g *GUI, ptr any) error {
	v := reflect.ValueOf(ptr)
	if v.Kind() != reflect.Pointer || v.IsNil() || v.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("%w, got %T", ErrNotStruct, ptr)
	}
	v = v.Elem()
	r.fields(g, Member{ID: v.Type().String(), Name: v.Type().Name(), Type: v.Type()}, v)
	return nil
}
