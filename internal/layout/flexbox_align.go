package layout

func determineHypotheticalCrossSize(tree LayoutTree, line *flexLine, c *flexConstants, avail Size[AvailableSpace]) {
	dir := c.dir
	for i := range line.items {
		it := &line.items[i]
		pbCross := CrossAxisSum(it.padding, dir) + CrossAxisSum(it.border, dir)
		lo, hi := it.minSize.Cross(dir), it.maxSize.Cross(dir)

		cross := it.size.Cross(dir).MaybeClamp(lo, hi).MaybeMax(Some(pbCross))
		var inner float64
		if cross.Valid {
			inner = cross.Value
		} else {
			crossAvail := avail.Cross(dir).MaybeClamp(lo, hi).MaybeMax(Some(pbCross))
			known := Size[Opt]{}.WithMain(dir, Some(it.targetSize.Main(dir))).WithCross(dir, cross)
			childAvail := Size[AvailableSpace]{}.
				WithMain(dir, Definite(c.containerSize.Main(dir))).
				WithCross(dir, crossAvail)
			measured := MeasureChildSize(tree, it.node, known, c.nodeInnerSize, childAvail, ContentSize, crossAxis(dir), Line[bool]{})
			inner = max(maybeClamp(measured, lo, hi), pbCross)
		}

		it.hypotheticalInnerSize.SetCross(dir, inner)
		it.hypotheticalOuterSize.SetCross(dir, inner+CrossAxisSum(it.margin, dir))
	}
}

func crossAxis(dir Direction) AbsoluteAxis {
	if dir.IsRow() {
		return Vertical
	}
	return Horizontal
}

// calculateChildBaselines lays out baseline-aligned items of row lines to
// find their first baselines. Lines with fewer than two such items skip it.
func calculateChildBaselines(tree LayoutTree, known Size[Opt], avail Size[AvailableSpace], lines []flexLine, c *flexConstants) {
	if !c.isRow {
		return
	}
	for li := range lines {
		line := &lines[li]
		count := 0
		for i := range line.items {
			if line.items[i].alignSelf == AlignBaseline {
				count++
			}
		}
		if count <= 1 {
			continue
		}

		for i := range line.items {
			it := &line.items[i]
			if it.alignSelf != AlignBaseline {
				continue
			}
			out := PerformChildLayout(tree, it.node,
				Size[Opt]{Width: Some(it.targetSize.Width), Height: Some(it.hypotheticalInnerSize.Height)},
				c.nodeInnerSize,
				Size[AvailableSpace]{Width: Definite(c.containerSize.Width), Height: avail.Height.MaybeSet(known.Height)},
				ContentSize,
				Line[bool]{},
			)
			it.baseline = out.FirstBaselines.Y.Or(out.Size.Height) + it.margin.Top
		}
	}
}

func calculateCrossSize(lines []flexLine, known Size[Opt], c *flexConstants) {
	dir := c.dir
	inset := CrossAxisSum(c.contentBoxInset, dir)
	lo, hi := c.minSize.Cross(dir), c.maxSize.Cross(dir)

	if !c.isWrap && known.Cross(dir).Valid {
		// A single line in a definite container fills it.
		lines[0].crossSize = max(known.Cross(dir).MaybeClamp(lo, hi).Sub(inset).Or(0), 0)
		return
	}

	for li := range lines {
		line := &lines[li]
		maxBaseline := 0.0
		for i := range line.items {
			maxBaseline = max(maxBaseline, line.items[i].baseline)
		}
		size := 0.0
		for i := range line.items {
			it := &line.items[i]
			outer := it.hypotheticalOuterSize.Cross(dir)
			if it.alignSelf == AlignBaseline && !it.crossAutoMargins(dir) {
				outer += maxBaseline - it.baseline
			}
			size = max(size, outer)
		}
		line.crossSize = size
	}

	if !c.isWrap {
		lines[0].crossSize = maybeClamp(lines[0].crossSize, lo.Sub(inset), hi.Sub(inset))
	}
}

func handleAlignContentStretch(lines []flexLine, known Size[Opt], c *flexConstants) {
	if c.alignContent != JustifyStretch || len(lines) == 0 {
		return
	}
	dir := c.dir
	inset := CrossAxisSum(c.contentBoxInset, dir)
	lo, hi := c.minSize.Cross(dir), c.maxSize.Cross(dir)
	minInner := max(known.Cross(dir).OrElse(lo).MaybeClamp(lo, hi).Sub(inset).Or(0), 0)

	total := sumAxisGaps(c.gap.Cross(dir), len(lines))
	for i := range lines {
		total += lines[i].crossSize
	}
	if total < minInner {
		extra := (minInner - total) / float64(len(lines))
		for i := range lines {
			lines[i].crossSize += extra
		}
	}
}

func determineUsedCrossSize(lines []flexLine, c *flexConstants) {
	dir := c.dir
	for li := range lines {
		line := &lines[li]
		for i := range line.items {
			it := &line.items[i]
			cross := it.hypotheticalInnerSize.Cross(dir)
			if it.alignSelf == AlignStretch && !it.crossAutoMargins(dir) && it.autoCrossSize {
				cross = maybeClamp(line.crossSize-CrossAxisSum(it.margin, dir), it.minSize.Cross(dir), it.maxSizeNoAspect.Cross(dir))
			}
			it.targetSize.SetCross(dir, cross)
			it.outerTargetSize.SetCross(dir, cross+CrossAxisSum(it.margin, dir))
		}
	}
}

// distributeRemainingFreeSpace resolves main-axis auto margins, or applies
// JustifyContent when there are none.
func distributeRemainingFreeSpace(lines []flexLine, c *flexConstants) {
	dir := c.dir
	for li := range lines {
		line := &lines[li]
		n := len(line.items)
		used := sumAxisGaps(c.gap.Main(dir), n)
		autoMargins := 0
		for i := range line.items {
			it := &line.items[i]
			used += it.outerTargetSize.Main(dir)
			if it.marginIsAuto.MainStart(dir) {
				autoMargins++
			}
			if it.marginIsAuto.MainEnd(dir) {
				autoMargins++
			}
		}
		free := c.innerContainerSize.Main(dir) - used

		if free > 0 && autoMargins > 0 {
			m := free / float64(autoMargins)
			for i := range line.items {
				it := &line.items[i]
				if it.marginIsAuto.MainStart(dir) {
					if c.isRow {
						it.margin.Left = m
					} else {
						it.margin.Top = m
					}
				}
				if it.marginIsAuto.MainEnd(dir) {
					if c.isRow {
						it.margin.Right = m
					} else {
						it.margin.Bottom = m
					}
				}
			}
			continue
		}

		reverse := dir.IsReverse()
		mode := alignmentFallback(free, n, c.justifyContent)
		gap := c.gap.Main(dir)
		for i := range n {
			idx := i
			if reverse {
				idx = n - 1 - i
			}
			line.items[idx].offsetMain = alignmentOffset(free, n, gap, mode, reverse, i == 0)
		}
	}
}

// alignmentFallback replaces distributed alignments that cannot apply: a
// single item or no positive free space.
func alignmentFallback(free float64, n int, mode Justify) Justify {
	safe := false
	if n <= 1 || free <= 0 {
		switch mode {
		case JustifyStretch, JustifySpaceBetween:
			mode, safe = JustifyFlexStart, true
		case JustifySpaceAround, JustifySpaceEvenly:
			mode, safe = JustifyCenter, true
		}
	}
	if free <= 0 && safe {
		mode = JustifyStart
	}
	return mode
}

// alignmentOffset returns the space before an item (or line) for mode. The
// first item gets the leading space; later items get gap plus their share.
func alignmentOffset(free float64, n int, gap float64, mode Justify, reversed, first bool) float64 {
	if first {
		switch mode {
		case JustifyFlexStart:
			if reversed {
				return free
			}
			return 0
		case JustifyFlexEnd:
			if reversed {
				return 0
			}
			return free
		case JustifyEnd:
			return free
		case JustifyCenter:
			return free / 2
		case JustifySpaceAround:
			if free >= 0 {
				return free / float64(n) / 2
			}
			return free / 2
		case JustifySpaceEvenly:
			if free >= 0 {
				return free / float64(n+1)
			}
			return free / 2
		default:
			return 0
		}
	}

	free = max(free, 0)
	switch mode {
	case JustifySpaceBetween:
		return gap + free/float64(n-1)
	case JustifySpaceAround:
		return gap + free/float64(n)
	case JustifySpaceEvenly:
		return gap + free/float64(n+1)
	default:
		return gap
	}
}

// resolveCrossAxisAutoMargins gives cross-axis auto margins the line's free
// space, or aligns the item per its AlignSelf.
func resolveCrossAxisAutoMargins(lines []flexLine, c *flexConstants) {
	dir := c.dir
	for li := range lines {
		line := &lines[li]
		maxBaseline := 0.0
		for i := range line.items {
			maxBaseline = max(maxBaseline, line.items[i].baseline)
		}

		for i := range line.items {
			it := &line.items[i]
			free := line.crossSize - it.outerTargetSize.Cross(dir)
			start, end := it.marginIsAuto.CrossStart(dir), it.marginIsAuto.CrossEnd(dir)
			switch {
			case start && end:
				if c.isRow {
					it.margin.Top, it.margin.Bottom = free/2, free/2
				} else {
					it.margin.Left, it.margin.Right = free/2, free/2
				}
			case start:
				if c.isRow {
					it.margin.Top = free
				} else {
					it.margin.Left = free
				}
			case end:
				if c.isRow {
					it.margin.Bottom = free
				} else {
					it.margin.Right = free
				}
			default:
				it.offsetCross = alignItem(it, free, maxBaseline, c)
			}
		}
	}
}

func alignItem(it *flexItem, free, maxBaseline float64, c *flexConstants) float64 {
	switch it.alignSelf {
	case AlignStart:
		return 0
	case AlignEnd:
		return free
	case AlignCenter:
		return free / 2
	case AlignFlexEnd:
		if c.isWrapReverse {
			return 0
		}
		return free
	case AlignBaseline:
		if c.isRow {
			return maxBaseline - it.baseline
		}
	}
	// FlexStart, Stretch and column Baseline.
	if c.isWrapReverse {
		return free
	}
	return 0
}

// determineContainerCrossSize sets the container's cross size and returns
// the summed line cross size.
func determineContainerCrossSize(lines []flexLine, known Size[Opt], c *flexConstants) float64 {
	dir := c.dir
	total := 0.0
	for i := range lines {
		total += lines[i].crossSize
	}
	gaps := sumAxisGaps(c.gap.Cross(dir), len(lines))
	inset := CrossAxisSum(c.contentBoxInset, dir)

	outer := known.Cross(dir).Or(total + gaps + inset)
	outer = maybeClamp(outer, c.minSize.Cross(dir), c.maxSize.Cross(dir))
	outer = max(outer, inset-c.scrollbarGutter.Cross(dir))

	c.containerSize.SetCross(dir, outer)
	c.innerContainerSize.SetCross(dir, max(outer-inset, 0))
	return total
}

func alignFlexLines(lines []flexLine, c *flexConstants, totalCross float64) {
	n := len(lines)
	gap := c.gap.Cross(c.dir)
	free := c.innerContainerSize.Cross(c.dir) - totalCross - sumAxisGaps(gap, n)
	mode := alignmentFallback(free, n, c.alignContent)

	for i := range n {
		idx := i
		if c.isWrapReverse {
			idx = n - 1 - i
		}
		lines[idx].offsetCross = alignmentOffset(free, n, gap, mode, c.isWrapReverse, i == 0)
	}
}

// finalLayoutPass places every in-flow item and returns the content size.
func finalLayoutPass(tree LayoutTree, lines []flexLine, c *flexConstants) Size[float64] {
	offsetCross := c.contentBoxInset.CrossStart(c.dir)
	var content Size[float64]

	n := len(lines)
	for i := range n {
		idx := i
		if c.isWrapReverse {
			idx = n - 1 - i
		}
		layoutLine(tree, &lines[idx], &offsetCross, &content, c)
	}

	content.Width += c.contentBoxInset.Right - c.border.Right - c.scrollbarGutter.Width
	content.Height += c.contentBoxInset.Bottom - c.border.Bottom - c.scrollbarGutter.Height
	return content
}

func layoutLine(tree LayoutTree, line *flexLine, offsetCross *float64, content *Size[float64], c *flexConstants) {
	offsetMain := c.contentBoxInset.MainStart(c.dir)
	n := len(line.items)
	for i := range n {
		idx := i
		if c.dir.IsReverse() {
			idx = n - 1 - i
		}
		layoutItem(tree, &line.items[idx], &offsetMain, *offsetCross, line.offsetCross, content, c)
	}
	*offsetCross += line.offsetCross + line.crossSize
}

func layoutItem(tree LayoutTree, it *flexItem, offsetMain *float64, offsetCross, lineOffsetCross float64, content *Size[float64], c *flexConstants) {
	dir := c.dir
	out := PerformChildLayout(tree, it.node,
		SomeSize(it.targetSize),
		c.nodeInnerSize,
		Size[AvailableSpace]{Width: Definite(c.containerSize.Width), Height: Definite(c.containerSize.Height)},
		ContentSize,
		Line[bool]{},
	)

	main := *offsetMain + it.offsetMain + it.margin.MainStart(dir) +
		it.inset.MainStart(dir).OrElse(negate(it.inset.MainEnd(dir))).Or(0)
	cross := offsetCross + it.offsetCross + lineOffsetCross + it.margin.CrossStart(dir) +
		it.inset.CrossStart(dir).OrElse(negate(it.inset.CrossEnd(dir))).Or(0)

	innerBaseline := out.FirstBaselines.Y.Or(out.Size.Height)
	if c.isRow {
		it.baseline = offsetCross + it.offsetCross + it.margin.CrossStart(dir) + innerBaseline
	} else {
		it.baseline = *offsetMain + it.offsetMain + it.margin.MainStart(dir) + innerBaseline
	}

	loc := Point[float64]{X: cross, Y: main}
	if c.isRow {
		loc = Point[float64]{X: main, Y: cross}
	}

	tree.SetUnroundedLayout(it.node, Layout{
		Order:         it.order,
		Location:      loc,
		Size:          out.Size,
		ContentSize:   out.ContentSize,
		ScrollbarSize: scrollbarSize(it.overflow, it.scrollbarWidth),
		Padding:       it.padding,
		Border:        it.border,
		Margin:        it.margin,
	})

	*offsetMain += it.offsetMain + MainAxisSum(it.margin, dir) + out.Size.Main(dir)
	*content = MaxSize(*content, contentContribution(loc, out.Size, out.ContentSize, it.overflow))
}

func negate(o Opt) Opt {
	if o.Valid {
		o.Value = -o.Value
	}
	return o
}

func scrollbarSize(overflow Point[Overflow], width float64) Size[float64] {
	var s Size[float64]
	if overflow.Y == OverflowScroll {
		s.Width = width
	}
	if overflow.X == OverflowScroll {
		s.Height = width
	}
	return s
}

// contentContribution is how far a child extends the parent's content
// area. Visible overflow lets the child's own content count.
func contentContribution(loc Point[float64], size, content Size[float64], overflow Point[Overflow]) Size[float64] {
	extent := size
	if overflow.X == OverflowVisible {
		extent.Width = max(size.Width, content.Width)
	}
	if overflow.Y == OverflowVisible {
		extent.Height = max(size.Height, content.Height)
	}
	if extent.Width <= 0 || extent.Height <= 0 {
		return Size[float64]{}
	}
	return Size[float64]{Width: loc.X + extent.Width, Height: loc.Y + extent.Height}
}

// layoutHiddenChildren zeroes display:none children, keeping their paint
// order.
func layoutHiddenChildren(tree LayoutTree, id NodeID) {
	ranks := childRanks(tree, id)
	i := 0
	for child := range tree.ChildIDs(id) {
		rank := ranks[i]
		i++
		if tree.FlexboxChildStyle(child).Display != DisplayNone {
			continue
		}
		ComputeChildLayout(tree, child, HiddenLayoutInput)
		tree.SetUnroundedLayout(child, Layout{Order: rank})
	}
}
