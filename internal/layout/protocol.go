package layout

// RunMode discriminates layout requests.
type RunMode uint8

const (
	// PerformLayout produces final geometry and places children.
	PerformLayout RunMode = iota
	// ComputeSize produces only the outer size.
	ComputeSize
	// PerformHiddenLayout zeroes the geometry of a non-participating subtree.
	PerformHiddenLayout
)

// String returns the mode name.
func (m RunMode) String() string {
	switch m {
	case PerformLayout:
		return "PerformLayout"
	case ComputeSize:
		return "ComputeSize"
	case PerformHiddenLayout:
		return "PerformHiddenLayout"
	default:
		return "RunMode(?)"
	}
}

// SizingMode governs whether box sizing constraints are applied.
type SizingMode uint8

const (
	// ContentSize ignores min/max/aspect-ratio styles and only honours a
	// definite size.
	ContentSize SizingMode = iota
	// InherentSize applies every size style.
	InherentSize
)

// RequestedAxis names the axis the caller needs.
type RequestedAxis uint8

const (
	RequestHorizontal RequestedAxis = iota
	RequestVertical
	RequestBoth
)

// requestAxis converts a physical axis into a request for it.
func requestAxis(a AbsoluteAxis) RequestedAxis {
	if a == Horizontal {
		return RequestHorizontal
	}
	return RequestVertical
}

// LayoutInput is the request passed to every recursive layout call.
type LayoutInput struct {
	RunMode    RunMode
	SizingMode SizingMode
	Axis       RequestedAxis
	// KnownDimensions are authoritative when present.
	KnownDimensions Size[Opt]
	ParentSize      Size[Opt]
	AvailableSpace  Size[AvailableSpace]
	// VerticalMarginsAreCollapsible reports whether the top and bottom
	// margins may collapse with the parent's. Always false for flexbox.
	VerticalMarginsAreCollapsible Line[bool]
}

// HiddenLayoutInput is the request used for hidden subtrees.
var HiddenLayoutInput = LayoutInput{
	RunMode:        PerformHiddenLayout,
	SizingMode:     InherentSize,
	Axis:           RequestBoth,
	AvailableSpace: MaxContentSize(),
}

// LayoutOutput is the response of a layout call.
type LayoutOutput struct {
	// Size is the outer (border box) size.
	Size Size[float64]
	// ContentSize is the size of the content, which may overflow Size.
	ContentSize    Size[float64]
	FirstBaselines Point[Opt]
	TopMargin      CollapsibleMarginSet
	BottomMargin   CollapsibleMarginSet
	// MarginsCanCollapseThrough is set for empty blocks whose top and
	// bottom margins collapse together.
	MarginsCanCollapseThrough bool
}

// HiddenLayoutOutput is the zero-sized result of a hidden node.
var HiddenLayoutOutput = LayoutOutput{}

// LayoutOutputFromSizes builds an output with no baseline and no margins.
func LayoutOutputFromSizes(size, content Size[float64]) LayoutOutput {
	return LayoutOutput{Size: size, ContentSize: content}
}

// LayoutOutputFromOuterSize builds an output whose content size is zero.
func LayoutOutputFromOuterSize(size Size[float64]) LayoutOutput {
	return LayoutOutputFromSizes(size, Size[float64]{})
}

// CollapsibleMarginSet tracks the largest positive and most negative margins
// in a chain of adjoining collapsible margins.
type CollapsibleMarginSet struct {
	Positive float64
	Negative float64
}

// MarginFrom returns the set containing a single margin.
func MarginFrom(m float64) CollapsibleMarginSet {
	if m >= 0 {
		return CollapsibleMarginSet{Positive: m}
	}
	return CollapsibleMarginSet{Negative: m}
}

// CollapseWithMargin adds one margin to the chain.
func (c CollapsibleMarginSet) CollapseWithMargin(m float64) CollapsibleMarginSet {
	if m >= 0 {
		c.Positive = max(c.Positive, m)
	} else {
		c.Negative = min(c.Negative, m)
	}
	return c
}

// CollapseWithSet merges another chain into this one.
func (c CollapsibleMarginSet) CollapseWithSet(o CollapsibleMarginSet) CollapsibleMarginSet {
	c.Positive = max(c.Positive, o.Positive)
	c.Negative = min(c.Negative, o.Negative)
	return c
}

// Resolve returns the used margin of the collapsed chain.
func (c CollapsibleMarginSet) Resolve() float64 {
	return c.Positive + c.Negative
}
