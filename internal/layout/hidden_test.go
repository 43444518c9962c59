package layout

import "testing"

func TestHidden_ZeroesSubtree(t *testing.T) {
	tree := newTestTree()
	root := tree.node(DefaultStyle())
	tree.style(root).Width = Fixed(100)
	tree.style(root).Height = Fixed(50)

	visible := tree.node(DefaultStyle())
	tree.style(visible).Width = Fixed(30)

	hidden := tree.node(DefaultStyle())
	tree.style(hidden).Width = Fixed(30)
	tree.style(hidden).Padding = EdgeAll(Fixed(2))
	grandchild := tree.leaf(DefaultStyle(), 10, 10)
	tree.addChild(hidden, grandchild)
	tree.addChild(root, hidden, visible)

	tree.calculate(root, 100, 50)
	if tree.layout(grandchild).Size.Width == 0 {
		t.Fatal("grandchild has no size before hiding")
	}
	if tree.nodes[grandchild].cache.IsEmpty() {
		t.Fatal("grandchild cache is empty before hiding")
	}

	tree.style(hidden).Display = DisplayNone
	tree.clearCaches()
	tree.calculate(root, 100, 50)

	for name, id := range map[string]NodeID{"hidden": hidden, "grandchild": grandchild} {
		l := tree.layout(id)
		if l.Size != (Size[float64]{}) || l.Location != (Point[float64]{}) || l.Padding != (Edges[float64]{}) {
			t.Errorf("%s layout = %+v, want zero geometry", name, l)
		}
	}
	if !tree.nodes[grandchild].cache.IsEmpty() {
		t.Error("grandchild cache survived hidden layout")
	}

	// The hidden sibling takes no space.
	if got := tree.layout(visible).Location.X; got != 0 {
		t.Errorf("visible.X = %g, want 0", got)
	}
}

func TestHidden_KeepsPaintOrder(t *testing.T) {
	tree := newTestTree()
	root, kids := row(tree, 100, 10, 10, 10)
	tree.style(kids[0]).Display = DisplayNone

	tree.calculate(root, 100, 10)

	if got := tree.layout(kids[0]).Order; got != 0 {
		t.Errorf("hidden Order = %d, want 0", got)
	}
	if got := tree.layout(kids[1]).Order; got != 1 {
		t.Errorf("visible Order = %d, want 1", got)
	}
}

func TestHidden_Root(t *testing.T) {
	tree := newTestTree()
	root := tree.node(DefaultStyle())
	tree.style(root).Width = Fixed(100)
	tree.style(root).Display = DisplayNone
	child := tree.leaf(DefaultStyle(), 5, 5)
	tree.addChild(root, child)

	tree.calculate(root, 100, 100)

	if got := tree.layout(root); got != (Layout{}) {
		t.Errorf("root layout = %+v, want zero", got)
	}
	if got := tree.layout(child); got != (Layout{}) {
		t.Errorf("child layout = %+v, want zero", got)
	}
	if tree.measureCalls != 0 {
		t.Errorf("hidden leaf measured %d times, want 0", tree.measureCalls)
	}
}

func TestHidden_CacheNeverStores(t *testing.T) {
	tree := newTestTree()
	id := tree.leaf(DefaultStyle(), 5, 5)

	out := ComputeChildLayout(tree, id, HiddenLayoutInput)
	if out.Size != (Size[float64]{}) {
		t.Errorf("hidden output size = %+v, want zero", out.Size)
	}
	if !tree.nodes[id].cache.IsEmpty() {
		t.Error("hidden layout populated the cache")
	}
}
