package layout

import "math"

// collectFlexLines splits items into lines. The returned lines share
// storage with items.
func collectFlexLines(c *flexConstants, avail Size[AvailableSpace], items []flexItem) []flexLine {
	if !c.isWrap {
		return []flexLine{{items: items}}
	}

	mainSpace := avail.Main(c.dir)
	if hi := c.maxSize.Main(c.dir); hi.Valid {
		v := mainSpace.IntoOption().Or(hi.Value)
		mainSpace = Definite(maybeMax(v, c.minSize.Main(c.dir)))
	}

	switch mainSpace.Kind() {
	case SpaceMaxContent:
		// Nothing forces a break under a max-content constraint.
		return []flexLine{{items: items}}
	case SpaceMinContent:
		// Take every break opportunity.
		lines := make([]flexLine, 0, len(items))
		for i := range items {
			lines = append(lines, flexLine{items: items[i : i+1]})
		}
		return lines
	}

	limit := mainSpace.Value()
	gap := c.gap.Main(c.dir)
	var lines []flexLine
	for len(items) > 0 {
		lineLength := 0.0
		end := len(items)
		for i := range items {
			if i > 0 {
				lineLength += gap
			}
			lineLength += items[i].hypotheticalOuterSize.Main(c.dir)
			if lineLength > limit && i != 0 {
				end = i
				break
			}
		}
		lines = append(lines, flexLine{items: items[:end]})
		items = items[end:]
	}
	return lines
}

// determineContainerMainSize sizes an auto main axis from the lines.
func determineContainerMainSize(tree LayoutTree, avail Size[AvailableSpace], lines []flexLine, c *flexConstants) {
	dir := c.dir
	mainInset := MainAxisSum(c.contentBoxInset, dir)

	outer := c.nodeOuterSize.Main(dir)
	if !outer.Valid {
		space := avail.Main(dir)
		switch {
		case space.Kind() == SpaceDefinite:
			size := longestLine(lines, c) + mainInset
			if len(lines) > 1 {
				size = max(size, space.Value())
			}
			outer = Some(size)
		case space.Kind() == SpaceMinContent && c.isWrap:
			outer = Some(longestLine(lines, c) + mainInset)
		default:
			outer = Some(intrinsicMainSize(tree, avail, lines, c) + mainInset)
		}
	}

	size := maybeClamp(outer.Value, c.minSize.Main(dir), c.maxSize.Main(dir))
	size = max(size, mainInset-c.scrollbarGutter.Main(dir))
	inner := max(size-mainInset, 0)
	c.containerSize.SetMain(dir, size)
	c.innerContainerSize.SetMain(dir, inner)
	c.nodeInnerSize.SetMain(dir, Some(inner))
}

// longestLine returns the largest sum of flex base sizes on one line.
func longestLine(lines []flexLine, c *flexConstants) float64 {
	dir := c.dir
	longest := 0.0
	for _, line := range lines {
		total := sumAxisGaps(c.gap.Main(dir), len(line.items))
		for i := range line.items {
			it := &line.items[i]
			pb := MainAxisSum(it.padding, dir) + MainAxisSum(it.border, dir)
			total += max(maybeMax(it.flexBasis, it.minSize.Main(dir))+MainAxisSum(it.margin, dir), pb)
		}
		longest = max(longest, total)
	}
	return longest
}

// intrinsicMainSize computes the min- or max-content main size of the
// container from each item's content contribution and flex fraction.
func intrinsicMainSize(tree LayoutTree, avail Size[AvailableSpace], lines []flexLine, c *flexConstants) float64 {
	dir := c.dir
	mainInset := MainAxisSum(c.contentBoxInset, dir)
	mainSize := 0.0

	for li := range lines {
		line := &lines[li]
		for i := range line.items {
			it := &line.items[i]
			styleMin := it.minSize.Main(dir)
			stylePref := it.size.Main(dir)
			styleMax := it.maxSize.Main(dir)
			marginSum := MainAxisSum(it.margin, dir)

			clampingBasis := Some(it.flexBasis).MaybeMax(stylePref)
			basisMin := clampingBasis.Filter(it.flexShrink == 0)
			basisMax := clampingBasis.Filter(it.flexGrow == 0)

			minMain := max(styleMin.MaybeMax(basisMin).OrElse(basisMin).Or(it.resolvedMinimumMainSize), it.resolvedMinimumMainSize)
			maxMain := styleMax.MaybeMin(basisMax).OrElse(basisMax).Or(math.Inf(1))

			var contribution float64
			switch {
			case stylePref.Valid && (maxMain <= minMain || maxMain <= stylePref.Value):
				contribution = max(min(stylePref.Value, maxMain), minMain) + marginSum
			case maxMain <= minMain:
				contribution = minMain + marginSum
			case it.isScrollContainer():
				contribution = it.flexBasis + marginSum
			default:
				crossParent := c.nodeInnerSize.Cross(dir)
				marginCross := CrossAxisSum(it.margin, dir)
				crossSpace := avail.Cross(dir).
					MapDefinite(func(v float64) float64 { return crossParent.Or(v) }).
					MaybeClamp(it.minSize.Cross(dir).Add(marginCross), it.maxSize.Cross(dir).Add(marginCross))
				childAvail := avail.WithCross(dir, crossSpace)
				known := stretchKnown(it, crossSpace, dir)

				content := MeasureChildSize(tree, it.node, known, c.nodeInnerSize, childAvail, InherentSize, dir.MainAxis(), Line[bool]{}) + marginSum
				if c.isRow {
					contribution = max(maybeClamp(content, styleMin, styleMax), mainInset)
				} else {
					contribution = max(maybeClamp(max(content, it.flexBasis), styleMin, styleMax), mainInset)
				}
			}

			diff := contribution - it.flexBasis - marginSum
			switch {
			case diff > 0:
				it.contentFlexFraction = diff / max(1, it.flexGrow)
			case diff < 0:
				it.contentFlexFraction = diff / max(1, it.flexShrink*it.innerFlexBasis)
			default:
				it.contentFlexFraction = 0
			}
		}

		lineSum := sumAxisGaps(c.gap.Main(dir), len(line.items))
		for i := range line.items {
			it := &line.items[i]
			var flex float64
			switch {
			case it.contentFlexFraction > 0:
				flex = max(1, it.flexGrow) * it.contentFlexFraction
			case it.contentFlexFraction < 0:
				flex = max(1, it.flexShrink) * it.innerFlexBasis * it.contentFlexFraction
			}
			size := it.flexBasis + flex
			marginSum := MainAxisSum(it.margin, dir)
			it.hypotheticalInnerSize.SetMain(dir, size)
			it.hypotheticalOuterSize.SetMain(dir, size+marginSum)
			lineSum += size + marginSum
		}
		mainSize = max(mainSize, lineSum)
	}
	return mainSize
}

// resolveFlexibleLengths distributes free space on a line between its items
// according to their grow or shrink factors, freezing items that hit their
// min or max size until every item is frozen.
func resolveFlexibleLengths(line *flexLine, c *flexConstants) {
	dir := c.dir
	gaps := sumAxisGaps(c.gap.Main(dir), len(line.items))
	innerMain := c.nodeInnerSize.Main(dir)

	hypoSum := gaps
	for i := range line.items {
		hypoSum += line.items[i].hypotheticalOuterSize.Main(dir)
	}
	growing := hypoSum < innerMain.Or(0)
	shrinking := hypoSum > innerMain.Or(0)
	exact := !growing && !shrinking

	// Size inflexible items.
	for i := range line.items {
		it := &line.items[i]
		target := it.hypotheticalInnerSize.Main(dir)
		it.targetSize.SetMain(dir, target)
		if exact ||
			(growing && it.flexGrow == 0) ||
			(shrinking && it.flexShrink == 0) ||
			(growing && it.flexBasis > target) ||
			(shrinking && it.flexBasis < target) {
			it.frozen = true
			it.outerTargetSize.SetMain(dir, target+MainAxisSum(it.margin, dir))
		}
	}
	if exact {
		return
	}

	usedSpace := func() float64 {
		used := gaps
		for i := range line.items {
			it := &line.items[i]
			used += MainAxisSum(it.margin, dir)
			if it.frozen {
				used += it.targetSize.Main(dir)
			} else {
				used += it.flexBasis
			}
		}
		return used
	}
	initialFree := innerMain.Sub(usedSpace()).Or(0)

	for {
		allFrozen := true
		var sumGrow, sumShrink float64
		for i := range line.items {
			it := &line.items[i]
			if !it.frozen {
				allFrozen = false
				sumGrow += it.flexGrow
				sumShrink += it.flexShrink
			}
		}
		if allFrozen {
			break
		}

		used := usedSpace()
		free := innerMain.Sub(used).Or(hypoSum - used)
		if growing && sumGrow < 1 {
			if scaled := initialFree * sumGrow; math.Abs(scaled) < math.Abs(free) {
				free = scaled
			}
		} else if shrinking && sumShrink < 1 {
			if scaled := initialFree * sumShrink; math.Abs(scaled) < math.Abs(free) {
				free = scaled
			}
		}

		if isNormal(free) {
			switch {
			case growing && sumGrow > 0:
				for i := range line.items {
					it := &line.items[i]
					if !it.frozen {
						it.targetSize.SetMain(dir, it.flexBasis+free*(it.flexGrow/sumGrow))
					}
				}
			case shrinking && sumShrink > 0:
				sumScaled := 0.0
				for i := range line.items {
					if it := &line.items[i]; !it.frozen {
						sumScaled += it.innerFlexBasis * it.flexShrink
					}
				}
				if sumScaled > 0 {
					for i := range line.items {
						it := &line.items[i]
						if !it.frozen {
							it.targetSize.SetMain(dir, it.flexBasis+free*(it.innerFlexBasis*it.flexShrink/sumScaled))
						}
					}
				}
			}
		}

		// Fix min/max violations.
		totalViolation := 0.0
		for i := range line.items {
			it := &line.items[i]
			if it.frozen {
				continue
			}
			target := it.targetSize.Main(dir)
			clamped := max(maybeClamp(target, Some(it.resolvedMinimumMainSize), it.maxSize.Main(dir)), 0)
			it.violation = clamped - target
			it.targetSize.SetMain(dir, clamped)
			it.outerTargetSize.SetMain(dir, clamped+MainAxisSum(it.margin, dir))
			totalViolation += it.violation
		}

		// Freeze over-flexed items.
		for i := range line.items {
			it := &line.items[i]
			if it.frozen {
				continue
			}
			switch {
			case totalViolation > 0:
				it.frozen = it.violation > 0
			case totalViolation < 0:
				it.frozen = it.violation < 0
			default:
				it.frozen = true
			}
		}
	}
}
