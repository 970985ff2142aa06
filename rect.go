package stencil

// Rect is a rectangle in terminal cells.
type Rect struct {
	X, Y, W, H int
}

// PlaceholderRect is returned for widgets that cannot draw this pass.
var PlaceholderRect = Rect{}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Inset shrinks r by n cells on every side. Sizes clamp at zero.
func (r Rect) Inset(n int) Rect {
	r.X += n
	r.Y += n
	r.W = max(r.W-2*n, 0)
	r.H = max(r.H-2*n, 0)
	return r
}

// Options constrains the size of a control or block.
// A zero Width or Height means the size comes from content.
type Options struct {
	Width, Height int
	ExpandWidth   bool
	ExpandHeight  bool
}

// W returns options with an explicit width.
func W(n int) Options { return Options{Width: n} }

// H returns options with an explicit height.
func H(n int) Options { return Options{Height: n} }

// Expand returns options that take a share of the leftover width.
func Expand() Options { return Options{ExpandWidth: true} }

// ExpandH returns options that take a share of the leftover height.
func ExpandH() Options { return Options{ExpandHeight: true} }

func (o Options) W(n int) Options {
	o.Width = n
	return o
}

func (o Options) H(n int) Options {
	o.Height = n
	return o
}

func (o Options) Expand() Options {
	o.ExpandWidth = true
	return o
}

func (o Options) ExpandH() Options {
	o.ExpandHeight = true
	return o
}

// merged folds an optional trailing options argument into o.
func merged(o Options, extra []Options) Options {
	for _, e := range extra {
		if e.Width > 0 {
			o.Width = e.Width
		}
		if e.Height > 0 {
			o.Height = e.Height
		}
		o.ExpandWidth = o.ExpandWidth || e.ExpandWidth
		o.ExpandHeight = o.ExpandHeight || e.ExpandHeight
	}
	return o
}
