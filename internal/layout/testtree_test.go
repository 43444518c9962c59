package layout

import (
	"iter"
	"slices"
)

// testNode is the per-node storage of testTree.
type testNode struct {
	style     Style
	children  []NodeID
	unrounded Layout
	final     Layout
	cache     Cache
	measure   MeasureFunc
	label     string
}

// testTree is a minimal host tree implementing every capability contract.
// It counts leaf measurements so tests can observe cache hits.
type testTree struct {
	nodes        []*testNode
	calc         CalcFunc
	measureCalls int
}

func newTestTree() *testTree {
	return &testTree{}
}

// node creates a detached node with the given style.
func (t *testTree) node(style Style) NodeID {
	t.nodes = append(t.nodes, &testNode{style: style, label: "NODE"})
	return NodeID(len(t.nodes) - 1)
}

// leaf creates a node whose content measures w x h.
func (t *testTree) leaf(style Style, w, h float64) NodeID {
	id := t.node(style)
	t.nodes[id].measure = fixedMeasure(w, h)
	t.nodes[id].label = "LEAF"
	return id
}

func (t *testTree) addChild(parent NodeID, children ...NodeID) {
	t.nodes[parent].children = append(t.nodes[parent].children, children...)
}

func (t *testTree) style(id NodeID) *Style  { return &t.nodes[id].style }
func (t *testTree) layout(id NodeID) Layout { return t.nodes[id].final }

// calculate runs both passes with definite available space.
func (t *testTree) calculate(root NodeID, w, h float64) {
	ComputeRootLayout(t, root, DefiniteSize(w, h))
	RoundLayout(t, root)
}

// clearCaches drops every node's cache, the way a host does after a style
// change.
func (t *testTree) clearCaches() {
	for _, n := range t.nodes {
		n.cache.Clear()
	}
}

func (t *testTree) ChildIDs(id NodeID) iter.Seq[NodeID] {
	return slices.Values(t.nodes[id].children)
}
func (t *testTree) ChildCount(id NodeID) int            { return len(t.nodes[id].children) }
func (t *testTree) ChildAt(id NodeID, i int) NodeID     { return t.nodes[id].children[i] }
func (t *testTree) CoreContainerStyle(id NodeID) *Style { return &t.nodes[id].style }
func (t *testTree) FlexboxContainerStyle(id NodeID) *Style {
	return &t.nodes[id].style
}
func (t *testTree) FlexboxChildStyle(id NodeID) *Style     { return &t.nodes[id].style }
func (t *testTree) SetUnroundedLayout(id NodeID, l Layout) { t.nodes[id].unrounded = l }
func (t *testTree) UnroundedLayout(id NodeID) Layout       { return t.nodes[id].unrounded }
func (t *testTree) SetFinalLayout(id NodeID, l Layout)     { t.nodes[id].final = l }
func (t *testTree) FinalLayout(id NodeID) Layout           { return t.nodes[id].final }
func (t *testTree) DebugLabel(id NodeID) string            { return t.nodes[id].label }

func (t *testTree) Calc(id uint64, basis float64) float64 {
	if t.calc == nil {
		return 0
	}
	return t.calc(id, basis)
}

func (t *testTree) CacheGet(id NodeID, known Size[Opt], avail Size[AvailableSpace], mode RunMode) (LayoutOutput, bool) {
	return t.nodes[id].cache.Get(known, avail, mode)
}

func (t *testTree) CacheStore(id NodeID, known Size[Opt], avail Size[AvailableSpace], mode RunMode, out LayoutOutput) {
	t.nodes[id].cache.Store(known, avail, mode, out)
}

func (t *testTree) CacheClear(id NodeID) bool { return t.nodes[id].cache.Clear() }

func (t *testTree) MeasureLeaf(id NodeID, known Size[Opt], avail Size[AvailableSpace]) Size[float64] {
	t.measureCalls++
	if m := t.nodes[id].measure; m != nil {
		return m(known, avail)
	}
	return Size[float64]{}
}

// fixedMeasure returns content of a fixed size, honouring known dimensions.
func fixedMeasure(w, h float64) MeasureFunc {
	return func(known Size[Opt], _ Size[AvailableSpace]) Size[float64] {
		return Size[float64]{Width: known.Width.Or(w), Height: known.Height.Or(h)}
	}
}

// imageMeasure returns an intrinsic w x h, scaling to keep the aspect ratio
// when one dimension is known.
func imageMeasure(w, h float64) MeasureFunc {
	return func(known Size[Opt], _ Size[AvailableSpace]) Size[float64] {
		switch {
		case known.Width.Valid && known.Height.Valid:
			return Size[float64]{Width: known.Width.Value, Height: known.Height.Value}
		case known.Width.Valid:
			return Size[float64]{Width: known.Width.Value, Height: known.Width.Value * h / w}
		case known.Height.Valid:
			return Size[float64]{Width: known.Height.Value * w / h, Height: known.Height.Value}
		}
		return Size[float64]{Width: w, Height: h}
	}
}
