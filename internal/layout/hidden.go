package layout

// ComputeHiddenLayout zeroes the geometry of id and every descendant and
// clears their caches, so no geometry from an earlier visible layout
// survives.
func ComputeHiddenLayout(tree LayoutTree, id NodeID) LayoutOutput {
	tree.CacheClear(id)
	tree.SetUnroundedLayout(id, Layout{})
	for child := range tree.ChildIDs(id) {
		ComputeChildLayout(tree, child, HiddenLayoutInput)
	}
	return HiddenLayoutOutput
}
