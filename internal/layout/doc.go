// Package layout implements a pure-Go box-model layout engine.
//
// The engine computes position, size, content size, margins, borders, padding
// and baselines for an abstract tree of styled nodes following the CSS flexbox
// algorithm. It never stores nodes itself: hosts expose their tree through small
// capability interfaces ([TraversePartialTree], [LayoutPartialTree],
// [FlexboxPartialTree], [CacheTree], [MeasureTree], [RoundTree], [PrintableTree])
// and the engine reads styles and writes layouts through them.
//
// Layout is computed in two separate passes. [ComputeRootLayout] recursively
// produces continuous (unrounded) geometry, memoizing intermediate results in
// each node's [Cache]. [RoundLayout] then walks the tree again and snaps the
// result to whole pixels in root space, so that adjacent boxes never open or
// close a gap purely because of rounding. [NoRoundLayout] copies the unrounded
// result unchanged for hosts that render at sub-pixel precision.
//
// Interfaces are used instead of generic type parameters, so every style or
// cache access costs one dynamic call. Child iteration uses [iter.Seq] and does
// not allocate when the host yields directly from its own child slice.
//
// A computation mutates per-node state (caches and layouts) and is not safe to
// run concurrently on the same tree. Independent trees share nothing and may be
// laid out in parallel.
package layout
