package stencil

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// Member is a value being inspected: a struct field, a slice element or the
// inspected value itself.
type Member struct {
	// ID is stable across frames: the owning type followed by the field and
	// index path, e.g. "main.Player/Inventory/2".
	ID   string
	Name string
	Type reflect.Type
	Tag  Tag
}

func (m Member) label() string {
	if m.Tag.Label != "" {
		return m.Tag.Label
	}
	return m.Name
}

func (m Member) child(name string, t reflect.Type, tag Tag) Member {
	return Member{ID: m.ID + "/" + name, Name: name, Type: t, Tag: tag}
}

// Tag holds the options parsed from an `inspect:"..."` struct tag.
type Tag struct {
	Label     string
	Help      string
	Hide      bool
	ReadOnly  bool
	Multiline bool
	Slider    bool
	Min, Max  float64
	Popup     []string
	Mask      []string
}

// ParseTag parses a comma separated inspect tag:
//
//	label=Name  hide  readonly  multiline  slider=min:max  popup=a|b|c
//	mask=a|b|c  help=text
//
// help takes the rest of the tag, commas included, so it goes last.
func ParseTag(s string) (Tag, error) {
	var t Tag
	for s != "" {
		item, rest, _ := strings.Cut(s, ",")
		key, val, hasVal := strings.Cut(strings.TrimSpace(item), "=")
		switch key {
		case "":
		case "hide":
			t.Hide = true
		case "readonly":
			t.ReadOnly = true
		case "multiline":
			t.Multiline = true
		case "label":
			t.Label = val
		case "help":
			_, t.Help, _ = strings.Cut(s, "=")
			return t, nil
		case "slider":
			lo, hi, ok := strings.Cut(val, ":")
			if !ok {
				return t, fmt.Errorf("slider %q: want min:max", val)
			}
			var err error
			if t.Min, err = strconv.ParseFloat(lo, 64); err != nil {
				return t, fmt.Errorf("slider min: %w", err)
			}
			if t.Max, err = strconv.ParseFloat(hi, 64); err != nil {
				return t, fmt.Errorf("slider max: %w", err)
			}
			if t.Max <= t.Min {
				return t, fmt.Errorf("slider %q: max must exceed min", val)
			}
			t.Slider = true
		case "popup":
			if !hasVal || val == "" {
				return t, fmt.Errorf("popup needs options")
			}
			t.Popup = strings.Split(val, "|")
		case "mask":
			if !hasVal || val == "" {
				return t, fmt.Errorf("mask needs bit names")
			}
			t.Mask = strings.Split(val, "|")
			if len(t.Mask) > 31 {
				return t, fmt.Errorf("mask has %d bits, at most 31 fit", len(t.Mask))
			}
		default:
			return t, fmt.Errorf("unknown inspect option %q", key)
		}
		s = rest
	}
	return t, nil
}

// Drawer emits the widgets for one member. v is settable.
type Drawer interface {
	Draw(g *GUI, r *Registry, m Member, v reflect.Value)
}

// DrawerFunc adapts a function to Drawer.
type DrawerFunc func(g *GUI, r *Registry, m Member, v reflect.Value)

func (f DrawerFunc) Draw(g *GUI, r *Registry, m Member, v reflect.Value) { f(g, r, m, v) }

// Matcher returns the drawer for a member, or nil when it does not apply.
type Matcher func(m Member) Drawer

type cachedDrawer struct {
	typ    reflect.Type
	drawer Drawer
}

// Registry resolves members to drawers. Matchers are consulted in order and
// the first match wins; resolutions are memoized by member ID until the type
// seen under that ID changes or ClearCache is called.
//
// A Registry also remembers which foldouts are open. Like a GUI it is not
// safe for concurrent use.
type Registry struct {
	matchers []Matcher
	fallback Drawer
	cache    map[string]cachedDrawer
	open     map[string]bool
}

// NewRegistry creates a registry with the built-in matchers. Matchers added
// with Register are consulted before them.
func NewRegistry() *Registry {
	return &Registry{
		fallback: DrawerFunc(drawStruct),
		cache:    make(map[string]cachedDrawer),
		open:     make(map[string]bool),
	}
}

// Register adds a matcher after previously registered ones and before the
// built-ins. It drops memoized resolutions.
func (r *Registry) Register(m Matcher) {
	r.matchers = append(r.matchers, m)
	r.ClearCache()
}

// ClearCache drops every memoized resolution.
func (r *Registry) ClearCache() {
	clear(r.cache)
}

// Cached returns the number of memoized resolutions.
func (r *Registry) Cached() int { return len(r.cache) }

// Drawer returns the drawer for m.
func (r *Registry) Drawer(m Member) Drawer {
	if c, ok := r.cache[m.ID]; ok && c.typ == m.Type {
		return c.drawer
	}
	d := r.resolve(m)
	r.cache[m.ID] = cachedDrawer{typ: m.Type, drawer: d}
	return d
}

func (r *Registry) resolve(m Member) Drawer {
	for _, match := range r.matchers {
		if d := match(m); d != nil {
			return d
		}
	}
	for _, match := range builtinMatchers {
		if d := match(m); d != nil {
			return d
		}
	}
	return r.fallback
}

// Open reports whether the foldout for the member with the given ID is open.
func (r *Registry) Open(id string) bool { return r.open[id] }

// SetOpen opens or closes the foldout for the member with the given ID.
func (r *Registry) SetOpen(id string, open bool) { r.open[id] = open }

// draw emits m with its resolved drawer, followed by its help text.
func (r *Registry) draw(g *GUI, m Member, v reflect.Value) {
	if m.Tag.Hide {
		return
	}
	r.Drawer(m).Draw(g, r, m, v)
	if m.Tag.Help != "" {
		g.HelpBox(m.Tag.Help, MessageInfo)
	}
}

// foldout draws a foldout header for m and reports whether it is open.
func (r *Registry) foldout(g *GUI, m Member, label string) bool {
	open := g.Foldout(label, r.open[m.ID])
	r.open[m.ID] = open
	return open
}

// builtinMatchers is assigned in init: the drawers recurse into the
// registry, which would make a static initializer a cycle.
var builtinMatchers []Matcher

func init() {
	builtinMatchers = []Matcher{
		matchReadOnly,
		matchMask,
		matchSlider,
		matchPopup,
		matchKind,
	}
}

func isInt(k reflect.Kind) bool {
	return k >= reflect.Int && k <= reflect.Int64
}

func isUint(k reflect.Kind) bool {
	return k >= reflect.Uint && k <= reflect.Uintptr
}

func isFloat(k reflect.Kind) bool {
	return k == reflect.Float32 || k == reflect.Float64
}

func matchReadOnly(m Member) Drawer {
	if !m.Tag.ReadOnly {
		return nil
	}
	return DrawerFunc(drawReadOnly)
}

func matchMask(m Member) Drawer {
	k := m.Type.Kind()
	if len(m.Tag.Mask) == 0 || !(isInt(k) || isUint(k)) {
		return nil
	}
	return DrawerFunc(drawMask)
}

func matchSlider(m Member) Drawer {
	k := m.Type.Kind()
	if !m.Tag.Slider || !(isInt(k) || isUint(k) || isFloat(k)) {
		return nil
	}
	return DrawerFunc(drawSlider)
}

func matchPopup(m Member) Drawer {
	k := m.Type.Kind()
	if len(m.Tag.Popup) == 0 || !(isInt(k) || k == reflect.String) {
		return nil
	}
	return DrawerFunc(drawPopup)
}

func matchKind(m Member) Drawer {
	switch k := m.Type.Kind(); {
	case k == reflect.Bool:
		return DrawerFunc(drawBool)
	case k == reflect.String && m.Tag.Multiline:
		return DrawerFunc(drawTextArea)
	case k == reflect.String:
		return DrawerFunc(drawString)
	case isInt(k), isUint(k):
		return DrawerFunc(drawInt)
	case isFloat(k):
		return DrawerFunc(drawFloat)
	case k == reflect.Slice:
		return DrawerFunc(drawSlice)
	case k == reflect.Pointer:
		return DrawerFunc(drawPointer)
	case k == reflect.Struct:
		return nil
	}
	return DrawerFunc(drawReadOnly)
}

func drawBool(g *GUI, _ *Registry, m Member, v reflect.Value) {
	v.SetBool(g.Toggle(m.label(), v.Bool()))
}

func drawString(g *GUI, _ *Registry, m Member, v reflect.Value) {
	v.SetString(g.Text(m.label(), v.String(), Expand()))
}

func drawTextArea(g *GUI, _ *Registry, m Member, v reflect.Value) {
	g.Label(m.label())
	v.SetString(g.TextArea(v.String(), Expand()))
}

func drawInt(g *GUI, _ *Registry, m Member, v reflect.Value) {
	if isUint(v.Kind()) {
		n := g.Int(m.label(), int(v.Uint()), Expand())
		if n >= 0 && !v.OverflowUint(uint64(n)) {
			v.SetUint(uint64(n))
		}
		return
	}
	n := int64(g.Int(m.label(), int(v.Int()), Expand()))
	if !v.OverflowInt(n) {
		v.SetInt(n)
	}
}

func drawFloat(g *GUI, _ *Registry, m Member, v reflect.Value) {
	v.SetFloat(g.Float(m.label(), v.Float(), Expand()))
}

func drawSlider(g *GUI, _ *Registry, m Member, v reflect.Value) {
	lo, hi := m.Tag.Min, m.Tag.Max
	switch k := v.Kind(); {
	case isFloat(k):
		v.SetFloat(g.Slider(m.label(), v.Float(), lo, hi, Expand()))
	case isInt(k):
		f := g.Slider(m.label(), float64(v.Int()), lo, hi, Expand())
		v.SetInt(int64(math.Round(f)))
	default:
		f := g.Slider(m.label(), float64(v.Uint()), lo, hi, Expand())
		v.SetUint(uint64(max(math.Round(f), 0)))
	}
}

// drawPopup ignores a selection outside the options.
func drawPopup(g *GUI, _ *Registry, m Member, v reflect.Value) {
	opts := m.Tag.Popup
	if v.Kind() == reflect.String {
		cur := max(indexOf(opts, v.String()), 0)
		if sel := g.Popup(m.label(), cur, opts, Expand()); sel >= 0 && sel < len(opts) {
			v.SetString(opts[sel])
		}
		return
	}
	if sel := g.Popup(m.label(), int(v.Int()), opts, Expand()); sel >= 0 && sel < len(opts) {
		v.SetInt(int64(sel))
	}
}

// drawMask edits the low bits of an integer, one toggle per name. Bits past
// the names are kept.
func drawMask(g *GUI, _ *Registry, m Member, v reflect.Value) {
	var cur int64
	if isUint(v.Kind()) {
		cur = int64(v.Uint())
	} else {
		cur = v.Int()
	}
	bits := int64(1)<<len(m.Tag.Mask) - 1
	got := int64(g.Mask(m.label(), int(cur&bits), m.Tag.Mask, Expand())) & bits
	next := cur&^bits | got
	if next == cur {
		return
	}
	if isUint(v.Kind()) {
		if !v.OverflowUint(uint64(next)) {
			v.SetUint(uint64(next))
		}
		return
	}
	if !v.OverflowInt(next) {
		v.SetInt(next)
	}
}

func indexOf(opts []string, s string) int {
	for i, o := range opts {
		if o == s {
			return i
		}
	}
	return -1
}

func drawReadOnly(g *GUI, _ *Registry, m Member, v reflect.Value) {
	g.Label(fmt.Sprintf("%s: %v", m.label(), v.Interface()))
}

func drawPointer(g *GUI, r *Registry, m Member, v reflect.Value) {
	if v.IsNil() {
		g.Label(m.label() + ": nil")
		return
	}
	r.draw(g, Member{ID: m.ID + "/*", Name: m.Name, Type: m.Type.Elem(), Tag: m.Tag}, v.Elem())
}

// drawStruct draws the fields of a struct under a foldout.
func drawStruct(g *GUI, r *Registry, m Member, v reflect.Value) {
	if r.foldout(g, m, m.label()) {
		g.Indent(2, func() { r.fields(g, m, v) })
	}
}

// fields draws every exported field of the struct v.
func (r *Registry) fields(g *GUI, m Member, v reflect.Value) {
	t := v.Type()
	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		tag, err := ParseTag(f.Tag.Get("inspect"))
		if err != nil {
			g.HelpBox(f.Name+": "+err.Error(), MessageError)
			continue
		}
		r.draw(g, m.child(f.Name, f.Type, tag), v.Field(i))
	}
}

// drawSlice draws the elements under a foldout with buttons to grow and
// shrink the slice.
func drawSlice(g *GUI, r *Registry, m Member, v reflect.Value) {
	if !r.foldout(g, m, fmt.Sprintf("%s [%d]", m.label(), v.Len())) {
		return
	}
	et := m.Type.Elem()
	g.Indent(2, func() {
		for i := range v.Len() {
			name := strconv.Itoa(i)
			r.draw(g, m.child(name, et, Tag{Label: "[" + name + "]"}), v.Index(i))
		}
		g.Horizontal(BlockSpec{}, func() {
			if g.Button("+") {
				v.Set(reflect.Append(v, reflect.Zero(et)))
			}
			if g.Button("-") && v.Len() > 0 {
				v.SetLen(v.Len() - 1)
			}
		})
	})
}
