package layout

// layoutAbsoluteChildren places absolutely positioned children against the
// container's padding box and returns their content size contribution.
func layoutAbsoluteChildren(tree LayoutTree, id NodeID, c *flexConstants) Size[float64] {
	dir := c.dir
	insetRef := SubSize(SubSize(c.containerSize, SumAxes(c.border)), c.scrollbarGutter)
	ref := Size[Opt]{Width: Some(insetRef.Width), Height: Some(insetRef.Height)}
	ranks := childRanks(tree, id)

	var content Size[float64]
	i := 0
	for child := range tree.ChildIDs(id) {
		rank := ranks[i]
		i++
		cs := tree.FlexboxChildStyle(child)
		if cs.Display == DisplayNone || cs.Position != Absolute {
			continue
		}

		ar := cs.AspectRatio
		alignSelf := cs.AlignSelfOr(c.alignItems)
		margin := resolveEdgesToOption(cs.Margin, ref.Width, c.calc)
		padding := resolveEdgesOrZero(cs.Padding, ref.Width, c.calc)
		border := resolveEdgesOrZero(cs.Border, ref.Width, c.calc)
		pbSum := AddSize(SumAxes(padding), SumAxes(border))
		adj := cs.boxSizingAdjustment(pbSum)
		inset := resolveInset(cs.Inset, ref, c.calc)

		styleSize := maybeAddSize(applyAspectRatio(resolveSize(cs.Size(), ref, c.calc), ar), adj)
		minSize := orSize(maybeAddSize(applyAspectRatio(resolveSize(cs.MinSize(), ref, c.calc), ar), adj), SomeSize(pbSum))
		minSize = maybeMaxSize(minSize, pbSum)
		maxSize := maybeAddSize(applyAspectRatio(resolveSize(cs.MaxSize(), ref, c.calc), ar), adj)
		known := maybeClampSize(styleSize, minSize, maxSize)

		// Both insets on an axis stretch the box between them.
		if !known.Width.Valid && inset.Left.Valid && inset.Right.Valid {
			w := maybeSub(maybeSub(insetRef.Width, margin.Left), margin.Right) - inset.Left.Value - inset.Right.Value
			known.Width = Some(max(w, 0))
			known = maybeClampSize(applyAspectRatio(known, ar), minSize, maxSize)
		}
		if !known.Height.Valid && inset.Top.Valid && inset.Bottom.Valid {
			h := maybeSub(maybeSub(insetRef.Height, margin.Top), margin.Bottom) - inset.Top.Value - inset.Bottom.Value
			known.Height = Some(max(h, 0))
			known = maybeClampSize(applyAspectRatio(known, ar), minSize, maxSize)
		}

		out := PerformChildLayout(tree, child, known, c.nodeInnerSize,
			Size[AvailableSpace]{
				Width:  Definite(maybeClamp(c.containerSize.Width, minSize.Width, maxSize.Width)),
				Height: Definite(maybeClamp(c.containerSize.Height, minSize.Height, maxSize.Height)),
			},
			InherentSize, Line[bool]{})
		final := clampSize(unwrapSizeOr(known, out.Size), minSize, maxSize)

		resolved := resolveAutoMargins(margin, c.containerSize, final)

		startMain, endMain := inset.Top, inset.Bottom
		startCross, endCross := inset.Left, inset.Right
		if c.isRow {
			startMain, endMain = inset.Left, inset.Right
			startCross, endCross = inset.Top, inset.Bottom
		}

		var offsetMain float64
		switch {
		case startMain.Valid:
			offsetMain = startMain.Value + c.border.MainStart(dir) + resolved.MainStart(dir)
		case endMain.Valid:
			offsetMain = c.containerSize.Main(dir) - c.border.MainEnd(dir) - c.scrollbarGutter.Main(dir) -
				final.Main(dir) - endMain.Value - resolved.MainEnd(dir)
		default:
			offsetMain = absoluteMainOffset(c, final, resolved)
		}

		var offsetCross float64
		switch {
		case startCross.Valid:
			offsetCross = startCross.Value + c.border.CrossStart(dir) + resolved.CrossStart(dir)
		case endCross.Valid:
			offsetCross = c.containerSize.Cross(dir) - c.border.CrossEnd(dir) - c.scrollbarGutter.Cross(dir) -
				final.Cross(dir) - endCross.Value - resolved.CrossEnd(dir)
		default:
			offsetCross = absoluteCrossOffset(c, alignSelf, final, resolved)
		}

		loc := Point[float64]{X: offsetCross, Y: offsetMain}
		if c.isRow {
			loc = Point[float64]{X: offsetMain, Y: offsetCross}
		}
		tree.SetUnroundedLayout(child, Layout{
			Order:         rank,
			Location:      loc,
			Size:          final,
			ContentSize:   out.ContentSize,
			ScrollbarSize: scrollbarSize(cs.Overflow, cs.ScrollbarWidth),
			Padding:       padding,
			Border:        border,
			Margin:        resolved,
		})
		content = MaxSize(content, contentContribution(loc, final, out.ContentSize, cs.Overflow))
	}
	return content
}

// resolveAutoMargins splits the free space of the container between the
// auto margins of an absolutely positioned box.
func resolveAutoMargins(margin Edges[Opt], container, size Size[float64]) Edges[float64] {
	fixed := MapEdges(margin, func(o Opt) float64 { return o.Or(0) })
	free := MaxSize(SubSize(SubSize(container, size), SumAxes(fixed)), Size[float64]{})

	share := func(free float64, a, b Opt) float64 {
		n := 0
		if !a.Valid {
			n++
		}
		if !b.Valid {
			n++
		}
		if n == 0 {
			return 0
		}
		return free / float64(n)
	}
	w := share(free.Width, margin.Left, margin.Right)
	h := share(free.Height, margin.Top, margin.Bottom)
	return Edges[float64]{
		Top:    margin.Top.Or(h),
		Right:  margin.Right.Or(w),
		Bottom: margin.Bottom.Or(h),
		Left:   margin.Left.Or(w),
	}
}

func absoluteMainOffset(c *flexConstants, size Size[float64], margin Edges[float64]) float64 {
	dir := c.dir
	start := c.contentBoxInset.MainStart(dir) + margin.MainStart(dir)
	end := c.containerSize.Main(dir) - c.contentBoxInset.MainEnd(dir) - size.Main(dir) - margin.MainEnd(dir)
	reverse := dir.IsReverse()

	switch c.justifyContent {
	case JustifyStart, JustifySpaceBetween:
		return start
	case JustifyEnd:
		return end
	case JustifyFlexEnd:
		if reverse {
			return start
		}
		return end
	case JustifyCenter, JustifySpaceAround, JustifySpaceEvenly:
		return (c.containerSize.Main(dir) + c.contentBoxInset.MainStart(dir) - c.contentBoxInset.MainEnd(dir) -
			size.Main(dir) + margin.MainStart(dir) - margin.MainEnd(dir)) / 2
	default:
		// FlexStart and Stretch.
		if reverse {
			return end
		}
		return start
	}
}

// absoluteCrossOffset aligns an absolutely positioned box on the cross axis.
// Stretch does not apply to such boxes and behaves like FlexStart.
func absoluteCrossOffset(c *flexConstants, align Align, size Size[float64], margin Edges[float64]) float64 {
	dir := c.dir
	start := c.contentBoxInset.CrossStart(dir) + margin.CrossStart(dir)
	end := c.containerSize.Cross(dir) - c.contentBoxInset.CrossEnd(dir) - size.Cross(dir) - margin.CrossEnd(dir)

	switch align {
	case AlignStart:
		return start
	case AlignEnd:
		return end
	case AlignCenter:
		return (c.containerSize.Cross(dir) + c.contentBoxInset.CrossStart(dir) - c.contentBoxInset.CrossEnd(dir) -
			size.Cross(dir) + margin.CrossStart(dir) - margin.CrossEnd(dir)) / 2
	case AlignFlexEnd:
		if c.isWrapReverse {
			return start
		}
		return end
	default:
		if c.isWrapReverse {
			return end
		}
		return start
	}
}
