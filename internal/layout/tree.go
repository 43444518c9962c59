package layout

import "iter"

// NodeID identifies a node within a host tree. Its meaning is owned by the
// host; the engine only passes it back through the contracts below.
type NodeID uint64

// TraversePartialTree gives access to a node's direct children.
type TraversePartialTree interface {
	// ChildIDs returns a lazy, single-pass sequence of the node's children in
	// a stable order. Call it again to restart.
	ChildIDs(id NodeID) iter.Seq[NodeID]
	ChildCount(id NodeID) int
	ChildAt(id NodeID, index int) NodeID
}

// TraverseTree is a TraversePartialTree that allows recursing through the
// whole subtree from a single call, as the rounding and printing passes do.
type TraverseTree interface {
	TraversePartialTree
}

// LayoutPartialTree is the core access a layout algorithm needs for a node
// and its direct children.
type LayoutPartialTree interface {
	TraversePartialTree
	CoreContainerStyle(id NodeID) *Style
	SetUnroundedLayout(id NodeID, l Layout)
	// Calc resolves a host calc expression against basis.
	Calc(id uint64, basis float64) float64
}

// FlexboxPartialTree exposes the styles the flexbox algorithm reads.
type FlexboxPartialTree interface {
	LayoutPartialTree
	FlexboxContainerStyle(id NodeID) *Style
	FlexboxChildStyle(id NodeID) *Style
}

// CacheTree gives access to each node's measurement cache.
type CacheTree interface {
	CacheGet(id NodeID, known Size[Opt], avail Size[AvailableSpace], mode RunMode) (LayoutOutput, bool)
	CacheStore(id NodeID, known Size[Opt], avail Size[AvailableSpace], mode RunMode, out LayoutOutput)
	// CacheClear drops every entry and reports whether anything was stored.
	CacheClear(id NodeID) bool
}

// MeasureTree measures leaf content. known and avail describe the content
// box; the returned size is the content size.
type MeasureTree interface {
	MeasureLeaf(id NodeID, known Size[Opt], avail Size[AvailableSpace]) Size[float64]
}

// MeasureFunc measures leaf content for a single node.
type MeasureFunc func(known Size[Opt], avail Size[AvailableSpace]) Size[float64]

// ContainerTree is an optional extension for container kinds without a
// built-in algorithm (grid, block). ComputeContainerLayout reports false
// when the host has no algorithm for display, in which case the dispatcher
// falls back to flexbox.
type ContainerTree interface {
	ComputeContainerLayout(id NodeID, display Display, in LayoutInput) (LayoutOutput, bool)
}

// RoundTree reads unrounded layout and stores final layout.
type RoundTree interface {
	TraverseTree
	UnroundedLayout(id NodeID) Layout
	SetFinalLayout(id NodeID, l Layout)
}

// PrintableTree is the diagnostics contract used by the debug printer.
type PrintableTree interface {
	TraverseTree
	DebugLabel(id NodeID) string
	FinalLayout(id NodeID) Layout
}

// LayoutTree is everything the recursive dispatcher needs.
type LayoutTree interface {
	FlexboxPartialTree
	CacheTree
	MeasureTree
}
