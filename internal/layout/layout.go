package layout

// Layout holds the computed geometry of a node. The same struct carries
// both the unrounded result of the layout pass and the final result of the
// rounding pass.
type Layout struct {
	// Order is the paint order among siblings, assigned by the parent
	// container algorithm. It plays no part in the layout math.
	Order uint32

	// Location is the border box's top-left corner relative to the parent's
	// border box.
	Location Point[float64]

	// RootLocation is Location accumulated up to the layout root.
	RootLocation Point[float64]

	// Size is the border box size.
	Size Size[float64]

	// ContentSize is the size of the content, which may exceed Size when
	// children overflow.
	ContentSize Size[float64]

	// ScrollbarSize is the space reserved for scrollbars.
	ScrollbarSize Size[float64]

	Border  Edges[float64]
	Padding Edges[float64]
	Margin  Edges[float64]
}

// BorderBox returns the border box relative to the parent.
func (l Layout) BorderBox() Rect {
	return Rect{X: l.Location.X, Y: l.Location.Y, Width: l.Size.Width, Height: l.Size.Height}
}

// AbsoluteRect returns the border box in root coordinates.
func (l Layout) AbsoluteRect() Rect {
	return Rect{X: l.RootLocation.X, Y: l.RootLocation.Y, Width: l.Size.Width, Height: l.Size.Height}
}

// ContentRect returns the content box relative to the node's own border
// box: the border box minus border and padding.
func (l Layout) ContentRect() Rect {
	r := Rect{Width: l.Size.Width, Height: l.Size.Height}
	return r.Inset(AddEdges(l.Border, l.Padding))
}

// ContentBoxWidth returns the width of the content box.
func (l Layout) ContentBoxWidth() float64 {
	return l.Size.Width - HorizontalSum(l.Padding) - HorizontalSum(l.Border)
}

// ContentBoxHeight returns the height of the content box.
func (l Layout) ContentBoxHeight() float64 {
	return l.Size.Height - VerticalSum(l.Padding) - VerticalSum(l.Border)
}

// Rect represents a rectangle. X and Y are the top-left corner; Width and
// Height are dimensions.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height float64) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Right returns the x-coordinate of the right edge (exclusive).
func (r Rect) Right() float64 {
	return r.X + r.Width
}

// Bottom returns the y-coordinate of the bottom edge (exclusive).
func (r Rect) Bottom() float64 {
	return r.Y + r.Height
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains returns true if the point (x, y) is inside the rectangle.
// Points on the left and top edges are inside; points on the right and bottom edges are outside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Inset returns a new Rect inset by the given Edges.
// Positive values shrink the rectangle; negative values expand it.
func (r Rect) Inset(e Edges[float64]) Rect {
	return Rect{
		X:      r.X + e.Left,
		Y:      r.Y + e.Top,
		Width:  r.Width - e.Left - e.Right,
		Height: r.Height - e.Top - e.Bottom,
	}
}

// Translate returns a new Rect moved by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, Width: r.Width, Height: r.Height}
}

// Union returns the smallest rectangle that contains both rectangles.
// If either rectangle is empty, returns the other rectangle.
func (r Rect) Union(other Rect) Rect {
	if r.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return r
	}

	x := min(r.X, other.X)
	y := min(r.Y, other.Y)
	right := max(r.Right(), other.Right())
	bottom := max(r.Bottom(), other.Bottom())

	return Rect{X: x, Y: y, Width: right - x, Height: bottom - y}
}
