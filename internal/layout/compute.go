package layout

// ComputeRootLayout lays out the tree rooted at root within available and
// writes the root's unrounded layout. Follow it with RoundLayout or
// NoRoundLayout to produce final layout.
//
// An auto-sized root is stretched to the definite available width minus its
// margins, the way a block box fills its containing block; its height comes
// from its content.
func ComputeRootLayout(tree LayoutTree, root NodeID, available Size[AvailableSpace]) {
	parentSize := spaceIntoOptSize(available)
	style := tree.CoreContainerStyle(root)
	calc := tree.Calc

	known := NoSize
	if style.Display != DisplayNone {
		margin := resolveEdgesOrZero(style.Margin, parentSize.Width, calc)
		padding := resolveEdgesOrZero(style.Padding, parentSize.Width, calc)
		border := resolveEdgesOrZero(style.Border, parentSize.Width, calc)
		pbSum := SumAxes(AddEdges(padding, border))
		adj := style.boxSizingAdjustment(pbSum)

		minSize := maybeAddSize(applyAspectRatio(resolveSize(style.MinSize(), parentSize, calc), style.AspectRatio), adj)
		maxSize := maybeAddSize(applyAspectRatio(resolveSize(style.MaxSize(), parentSize, calc), style.AspectRatio), adj)
		clamped := maybeClampSize(maybeAddSize(applyAspectRatio(resolveSize(style.Size(), parentSize, calc), style.AspectRatio), adj), minSize, maxSize)
		fromAvail := maybeClampSize(Size[Opt]{Width: available.Width.IntoOption().Sub(HorizontalSum(margin))}, minSize, maxSize)

		known = maybeMaxSize(orSize(orSize(minMaxDefiniteSize(minSize, maxSize), clamped), fromAvail), pbSum)
	}

	out := ComputeChildLayout(tree, root, LayoutInput{
		RunMode:         PerformLayout,
		SizingMode:      InherentSize,
		Axis:            RequestBoth,
		KnownDimensions: known,
		ParentSize:      parentSize,
		AvailableSpace:  available,
	})

	if style.Display == DisplayNone {
		return
	}
	padding := resolveEdgesOrZero(style.Padding, parentSize.Width, calc)
	border := resolveEdgesOrZero(style.Border, parentSize.Width, calc)
	margin := resolveEdgesOrZero(style.Margin, parentSize.Width, calc)
	tree.SetUnroundedLayout(root, Layout{
		Size:          out.Size,
		ContentSize:   out.ContentSize,
		ScrollbarSize: style.ScrollbarGutter(),
		Padding:       padding,
		Border:        border,
		Margin:        margin,
	})
}

// minMaxDefiniteSize returns the size fixed by min and max alone: when both
// are set and max <= min, the size is min.
func minMaxDefiniteSize(minSize, maxSize Size[Opt]) Size[Opt] {
	pick := func(lo, hi Opt) Opt {
		if lo.Valid && hi.Valid && hi.Value <= lo.Value {
			return lo
		}
		return None
	}
	return Size[Opt]{Width: pick(minSize.Width, maxSize.Width), Height: pick(minSize.Height, maxSize.Height)}
}

// ComputeChildLayout is the recursive entry point used by every algorithm to
// lay out or measure a child. Hidden requests zero the whole subtree without
// touching the cache; other requests go through the node's cache.
func ComputeChildLayout(tree LayoutTree, id NodeID, in LayoutInput) LayoutOutput {
	switch in.RunMode {
	case PerformHiddenLayout:
		return ComputeHiddenLayout(tree, id)
	case PerformLayout, ComputeSize:
		return ComputeCachedLayout(tree, id, in, dispatch)
	default:
		invariant("ComputeChildLayout", "unknown run mode %d", in.RunMode)
		return LayoutOutput{}
	}
}

// ComputeCachedLayout answers in from the node's cache, or computes it with
// compute and stores the result. Extension algorithms use it to get the same
// caching as the built-in ones.
func ComputeCachedLayout(tree LayoutTree, id NodeID, in LayoutInput, compute func(LayoutTree, NodeID, LayoutInput) LayoutOutput) LayoutOutput {
	if out, ok := tree.CacheGet(id, in.KnownDimensions, in.AvailableSpace, in.RunMode); ok {
		return out
	}
	out := compute(tree, id, in)
	tree.CacheStore(id, in.KnownDimensions, in.AvailableSpace, in.RunMode, out)
	return out
}

func dispatch(tree LayoutTree, id NodeID, in LayoutInput) LayoutOutput {
	style := tree.CoreContainerStyle(id)
	if style.Display == DisplayNone {
		return ComputeHiddenLayout(tree, id)
	}

	if tree.ChildCount(id) == 0 {
		return ComputeLeafLayout(in, style, tree.Calc, func(known Size[Opt], avail Size[AvailableSpace]) Size[float64] {
			return tree.MeasureLeaf(id, known, avail)
		})
	}

	switch style.Display {
	case DisplayFlex:
		return ComputeFlexboxLayout(tree, id, in)
	case DisplayGrid, DisplayBlock:
		if ext, ok := tree.(ContainerTree); ok {
			if out, ok := ext.ComputeContainerLayout(id, style.Display, in); ok {
				return out
			}
		}
		return ComputeFlexboxLayout(tree, id, in)
	default:
		invariant("dispatch", "unknown display %d", style.Display)
		return LayoutOutput{}
	}
}

// PerformChildLayout performs full layout of a child whose position has been
// decided by the parent.
func PerformChildLayout(tree LayoutTree, id NodeID, known Size[Opt], parentSize Size[Opt], avail Size[AvailableSpace], sizing SizingMode, collapsible Line[bool]) LayoutOutput {
	return ComputeChildLayout(tree, id, LayoutInput{
		RunMode:                       PerformLayout,
		SizingMode:                    sizing,
		Axis:                          RequestBoth,
		KnownDimensions:               known,
		ParentSize:                    parentSize,
		AvailableSpace:                avail,
		VerticalMarginsAreCollapsible: collapsible,
	})
}

// MeasureChildSize measures a child along one axis.
func MeasureChildSize(tree LayoutTree, id NodeID, known Size[Opt], parentSize Size[Opt], avail Size[AvailableSpace], sizing SizingMode, axis AbsoluteAxis, collapsible Line[bool]) float64 {
	out := ComputeChildLayout(tree, id, LayoutInput{
		RunMode:                       ComputeSize,
		SizingMode:                    sizing,
		Axis:                          requestAxis(axis),
		KnownDimensions:               known,
		ParentSize:                    parentSize,
		AvailableSpace:                avail,
		VerticalMarginsAreCollapsible: collapsible,
	})
	return out.Size.Get(axis)
}
