// layout.go re-exports layout types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package boxlayout

import (
	"github.com/grindlemire/go-boxlayout/internal/layout"
	"github.com/grindlemire/go-boxlayout/internal/text"
)

// NodeID identifies a node in a Tree.
type NodeID = layout.NodeID

// Style holds the layout properties for a node.
type Style = layout.Style

// DefaultStyle returns a Style with CSS initial values.
func DefaultStyle() Style {
	return layout.DefaultStyle()
}

// Display selects the layout algorithm for a node's children.
type Display = layout.Display

const (
	DisplayFlex  = layout.DisplayFlex
	DisplayGrid  = layout.DisplayGrid
	DisplayBlock = layout.DisplayBlock
	DisplayNone  = layout.DisplayNone
)

// BoxSizing specifies which box the size styles apply to.
type BoxSizing = layout.BoxSizing

const (
	BorderBox  = layout.BorderBox
	ContentBox = layout.ContentBox
)

// Position specifies whether a node participates in flow layout.
type Position = layout.Position

const (
	Relative = layout.Relative
	Absolute = layout.Absolute
)

// Overflow specifies how content larger than the box is handled.
type Overflow = layout.Overflow

const (
	OverflowVisible = layout.OverflowVisible
	OverflowClip    = layout.OverflowClip
	OverflowHidden  = layout.OverflowHidden
	OverflowScroll  = layout.OverflowScroll
)

// Direction specifies the main axis for laying out children.
type Direction = layout.Direction

const (
	Row           = layout.Row
	Column        = layout.Column
	RowReverse    = layout.RowReverse
	ColumnReverse = layout.ColumnReverse
)

// FlexWrap controls whether children may wrap onto multiple lines.
type FlexWrap = layout.FlexWrap

const (
	NoWrap      = layout.NoWrap
	Wrap        = layout.Wrap
	WrapReverse = layout.WrapReverse
)

// Justify specifies how free space is distributed along an axis.
type Justify = layout.Justify

const (
	JustifyFlexStart    = layout.JustifyFlexStart
	JustifyFlexEnd      = layout.JustifyFlexEnd
	JustifyStart        = layout.JustifyStart
	JustifyEnd          = layout.JustifyEnd
	JustifyCenter       = layout.JustifyCenter
	JustifyStretch      = layout.JustifyStretch
	JustifySpaceBetween = layout.JustifySpaceBetween
	JustifySpaceAround  = layout.JustifySpaceAround
	JustifySpaceEvenly  = layout.JustifySpaceEvenly
)

// Align specifies how children are aligned along the cross axis.
type Align = layout.Align

const (
	AlignStart     = layout.AlignStart
	AlignEnd       = layout.AlignEnd
	AlignCenter    = layout.AlignCenter
	AlignStretch   = layout.AlignStretch
	AlignFlexStart = layout.AlignFlexStart
	AlignFlexEnd   = layout.AlignFlexEnd
	AlignBaseline  = layout.AlignBaseline
)

// AlignPtr returns a pointer to a, for setting Style.AlignSelf.
func AlignPtr(a Align) *Align {
	return layout.AlignPtr(a)
}

// Value represents a length that can be fixed, percentage, calc or auto.
type Value = layout.Value

// Unit specifies how a Value is interpreted.
type Unit = layout.Unit

const (
	UnitAuto    = layout.UnitAuto
	UnitFixed   = layout.UnitFixed
	UnitPercent = layout.UnitPercent
	UnitCalc    = layout.UnitCalc
)

// CalcFunc resolves a host calc expression against a basis.
type CalcFunc = layout.CalcFunc

// Fixed creates a Value with an absolute length.
func Fixed(n float64) Value {
	return layout.Fixed(n)
}

// Percent creates a Value representing a percentage (0-100) of a reference
// size.
func Percent(p float64) Value {
	return layout.Percent(p)
}

// Auto creates a Value computed by the algorithm.
func Auto() Value {
	return layout.Auto()
}

// Calc creates a Value resolved by the tree's CalcFunc.
func Calc(id uint64) Value {
	return layout.Calc(id)
}

// Opt is an optional float64.
type Opt = layout.Opt

// None is the absent Opt.
var None = layout.None

// Some returns a present Opt holding v.
func Some(v float64) Opt {
	return layout.Some(v)
}

// Size represents a width/height pair.
type Size[T any] = layout.Size[T]

// Point represents an (X, Y) coordinate.
type Point[T any] = layout.Point[T]

// Edges represents values for four sides of a box.
type Edges[T any] = layout.Edges[T]

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll[T any](v T) Edges[T] {
	return layout.EdgeAll(v)
}

// EdgeSymmetric creates Edges with vertical (top/bottom) and horizontal (left/right) values.
func EdgeSymmetric[T any](v, h T) Edges[T] {
	return layout.EdgeSymmetric(v, h)
}

// EdgeTRBL creates Edges following CSS order: Top, Right, Bottom, Left.
func EdgeTRBL[T any](t, r, b, l T) Edges[T] {
	return layout.EdgeTRBL(t, r, b, l)
}

// AvailableSpace is the size budget offered to a node along one axis.
type AvailableSpace = layout.AvailableSpace

// Definite returns a definite amount of available space.
func Definite(v float64) AvailableSpace {
	return layout.Definite(v)
}

// MinContent returns min-content available space.
func MinContent() AvailableSpace {
	return layout.MinContent()
}

// MaxContent returns max-content available space.
func MaxContent() AvailableSpace {
	return layout.MaxContent()
}

// DefiniteSize returns definite available space on both axes.
func DefiniteSize(w, h float64) Size[AvailableSpace] {
	return layout.DefiniteSize(w, h)
}

// MaxContentSize returns max-content available space on both axes.
func MaxContentSize() Size[AvailableSpace] {
	return layout.MaxContentSize()
}

// LayoutResult holds the computed geometry of a node.
type LayoutResult = layout.Layout

// Rect represents a rectangle with position and dimensions.
type Rect = layout.Rect

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height float64) Rect {
	return layout.NewRect(x, y, width, height)
}

// MeasureFunc measures leaf content for a single node. known and avail
// describe the content box.
type MeasureFunc = layout.MeasureFunc

// InvariantError reports a broken engine or tree contract.
type InvariantError = layout.InvariantError

// LayoutInput is the request passed to container algorithms.
type LayoutInput = layout.LayoutInput

// LayoutOutput is the result of a container algorithm.
type LayoutOutput = layout.LayoutOutput

// LayoutTree is the tree view handed to container algorithms.
type LayoutTree = layout.LayoutTree

// WrapFlags controls how text content is broken into rows.
type WrapFlags = text.WrapFlags

const (
	AllowNewLine = text.AllowNewLine
	BreakWords   = text.BreakWords
)
