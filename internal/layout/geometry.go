package layout

import "golang.org/x/exp/constraints"

// Size represents a width/height pair.
type Size[T any] struct {
	Width, Height T
}

// Point represents an (X, Y) coordinate.
type Point[T any] struct {
	X, Y T
}

// Edges represents values for four sides of a box.
type Edges[T any] struct {
	Top, Right, Bottom, Left T
}

// Line holds a pair of values for the start and end of one axis.
type Line[T any] struct {
	Start, End T
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll[T any](v T) Edges[T] {
	return Edges[T]{Top: v, Right: v, Bottom: v, Left: v}
}

// EdgeSymmetric creates Edges with vertical (top/bottom) and horizontal (left/right) values.
func EdgeSymmetric[T any](v, h T) Edges[T] {
	return Edges[T]{Top: v, Right: h, Bottom: v, Left: h}
}

// EdgeTRBL creates Edges following CSS order: Top, Right, Bottom, Left.
func EdgeTRBL[T any](t, r, b, l T) Edges[T] {
	return Edges[T]{Top: t, Right: r, Bottom: b, Left: l}
}

// Main returns the component along the main axis of dir.
func (s Size[T]) Main(dir Direction) T {
	if dir.IsRow() {
		return s.Width
	}
	return s.Height
}

// Cross returns the component along the cross axis of dir.
func (s Size[T]) Cross(dir Direction) T {
	if dir.IsRow() {
		return s.Height
	}
	return s.Width
}

// SetMain sets the main-axis component.
func (s *Size[T]) SetMain(dir Direction, v T) {
	if dir.IsRow() {
		s.Width = v
	} else {
		s.Height = v
	}
}

// SetCross sets the cross-axis component.
func (s *Size[T]) SetCross(dir Direction, v T) {
	if dir.IsRow() {
		s.Height = v
	} else {
		s.Width = v
	}
}

// WithMain returns a copy of s with the main-axis component replaced.
func (s Size[T]) WithMain(dir Direction, v T) Size[T] {
	s.SetMain(dir, v)
	return s
}

// WithCross returns a copy of s with the cross-axis component replaced.
func (s Size[T]) WithCross(dir Direction, v T) Size[T] {
	s.SetCross(dir, v)
	return s
}

// Get returns the component along an absolute axis.
func (s Size[T]) Get(axis AbsoluteAxis) T {
	if axis == Horizontal {
		return s.Width
	}
	return s.Height
}

// MainStart returns the edge at the start of the main axis.
func (e Edges[T]) MainStart(dir Direction) T {
	if dir.IsRow() {
		return e.Left
	}
	return e.Top
}

// MainEnd returns the edge at the end of the main axis.
func (e Edges[T]) MainEnd(dir Direction) T {
	if dir.IsRow() {
		return e.Right
	}
	return e.Bottom
}

// CrossStart returns the edge at the start of the cross axis.
func (e Edges[T]) CrossStart(dir Direction) T {
	if dir.IsRow() {
		return e.Top
	}
	return e.Left
}

// CrossEnd returns the edge at the end of the cross axis.
func (e Edges[T]) CrossEnd(dir Direction) T {
	if dir.IsRow() {
		return e.Bottom
	}
	return e.Right
}

// MapEdges applies fn to every side.
func MapEdges[T, U any](e Edges[T], fn func(T) U) Edges[U] {
	return Edges[U]{Top: fn(e.Top), Right: fn(e.Right), Bottom: fn(e.Bottom), Left: fn(e.Left)}
}

// MapSize applies fn to both components.
func MapSize[T, U any](s Size[T], fn func(T) U) Size[U] {
	return Size[U]{Width: fn(s.Width), Height: fn(s.Height)}
}

// HorizontalSum returns Left + Right.
func HorizontalSum[T constraints.Integer | constraints.Float](e Edges[T]) T {
	return e.Left + e.Right
}

// VerticalSum returns Top + Bottom.
func VerticalSum[T constraints.Integer | constraints.Float](e Edges[T]) T {
	return e.Top + e.Bottom
}

// SumAxes returns the horizontal and vertical sums as a Size.
func SumAxes[T constraints.Integer | constraints.Float](e Edges[T]) Size[T] {
	return Size[T]{Width: HorizontalSum(e), Height: VerticalSum(e)}
}

// MainAxisSum returns the sum of the two main-axis edges.
func MainAxisSum[T constraints.Integer | constraints.Float](e Edges[T], dir Direction) T {
	return e.MainStart(dir) + e.MainEnd(dir)
}

// CrossAxisSum returns the sum of the two cross-axis edges.
func CrossAxisSum[T constraints.Integer | constraints.Float](e Edges[T], dir Direction) T {
	return e.CrossStart(dir) + e.CrossEnd(dir)
}

// AddEdges adds two sets of edges side by side.
func AddEdges[T constraints.Integer | constraints.Float](a, b Edges[T]) Edges[T] {
	return Edges[T]{Top: a.Top + b.Top, Right: a.Right + b.Right, Bottom: a.Bottom + b.Bottom, Left: a.Left + b.Left}
}

// AddSize adds two sizes component-wise.
func AddSize[T constraints.Integer | constraints.Float](a, b Size[T]) Size[T] {
	return Size[T]{Width: a.Width + b.Width, Height: a.Height + b.Height}
}

// SubSize subtracts b from a component-wise.
func SubSize[T constraints.Integer | constraints.Float](a, b Size[T]) Size[T] {
	return Size[T]{Width: a.Width - b.Width, Height: a.Height - b.Height}
}

// MaxSize returns the component-wise maximum.
func MaxSize[T constraints.Integer | constraints.Float](a, b Size[T]) Size[T] {
	return Size[T]{Width: max(a.Width, b.Width), Height: max(a.Height, b.Height)}
}

// AbsoluteAxis is a physical axis.
type AbsoluteAxis uint8

const (
	Horizontal AbsoluteAxis = iota
	Vertical
)

// String returns a human-readable axis name.
func (a AbsoluteAxis) String() string {
	if a == Horizontal {
		return "horizontal"
	}
	return "vertical"
}
