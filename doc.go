// Package boxlayout computes CSS flexbox layout for trees of boxes.
//
// The engine in internal/layout is host-agnostic: it drives any tree that
// implements its small capability interfaces. This package re-exports the
// engine's types and provides Tree, an arena-backed host tree with
// per-node caches, text and image measurement, and dirty tracking.
//
// A typical use builds nodes, computes, and reads results:
//
//	tree := boxlayout.New()
//	a := tree.NewLeaf(style)
//	root, _ := tree.NewWithChildren(rootStyle, a)
//	_ = tree.ComputeLayout(root, boxlayout.DefiniteSize(800, 600))
//	l, _ := tree.Layout(a)
package boxlayout
