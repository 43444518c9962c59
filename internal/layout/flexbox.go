package layout

import (
	"cmp"
	"math"
	"slices"
)

// flexItem is the per-child working state of the flexbox algorithm.
type flexItem struct {
	node NodeID
	// order is the paint order: the rank in the order-modified child list.
	order uint32

	size, minSize, maxSize Size[Opt]
	// maxSizeNoAspect is the max size without aspect ratio transfer, used
	// when stretching.
	maxSizeNoAspect Size[Opt]
	inset           Edges[Opt]
	margin          Edges[float64]
	marginIsAuto    Edges[bool]
	padding, border Edges[float64]
	alignSelf       Align
	overflow        Point[Overflow]
	scrollbarWidth  float64
	autoCrossSize   bool
	flexGrow        float64
	flexShrink      float64

	flexBasis               float64
	innerFlexBasis          float64
	violation               float64
	frozen                  bool
	resolvedMinimumMainSize float64

	hypotheticalInnerSize Size[float64]
	hypotheticalOuterSize Size[float64]
	targetSize            Size[float64]
	outerTargetSize       Size[float64]
	contentFlexFraction   float64

	baseline    float64
	offsetMain  float64
	offsetCross float64
}

func (it *flexItem) isScrollContainer() bool {
	return it.overflow.X.IsScrollContainer() || it.overflow.Y.IsScrollContainer()
}

func (it *flexItem) crossAutoMargins(dir Direction) bool {
	return it.marginIsAuto.CrossStart(dir) || it.marginIsAuto.CrossEnd(dir)
}

// flexLine is a run of items sharing storage with the item slice.
type flexLine struct {
	items       []flexItem
	crossSize   float64
	offsetCross float64
}

// flexConstants are the container values fixed for one run of the algorithm.
type flexConstants struct {
	dir           Direction
	isRow         bool
	isWrap        bool
	isWrapReverse bool

	minSize, maxSize Size[Opt]
	margin, border   Edges[float64]
	contentBoxInset  Edges[float64]
	scrollbarGutter  Size[float64]
	gap              Size[float64]

	alignItems     Align
	alignContent   Justify
	justifyContent Justify

	nodeOuterSize      Size[Opt]
	nodeInnerSize      Size[Opt]
	containerSize      Size[float64]
	innerContainerSize Size[float64]

	calc CalcFunc
}

// ComputeFlexboxLayout runs the flexbox algorithm for a container.
func ComputeFlexboxLayout(tree LayoutTree, id NodeID, in LayoutInput) LayoutOutput {
	style := tree.FlexboxContainerStyle(id)
	calc := tree.Calc
	parent := in.ParentSize

	padding := resolveEdgesOrZero(style.Padding, parent.Width, calc)
	border := resolveEdgesOrZero(style.Border, parent.Width, calc)
	pbSum := AddSize(SumAxes(padding), SumAxes(border))
	adj := style.boxSizingAdjustment(pbSum)

	minSize := maybeAddSize(applyAspectRatio(resolveSize(style.MinSize(), parent, calc), style.AspectRatio), adj)
	maxSize := maybeAddSize(applyAspectRatio(resolveSize(style.MaxSize(), parent, calc), style.AspectRatio), adj)
	var clamped Size[Opt]
	if in.SizingMode == InherentSize {
		clamped = maybeClampSize(maybeAddSize(applyAspectRatio(resolveSize(style.Size(), parent, calc), style.AspectRatio), adj), minSize, maxSize)
	}

	known := orSize(in.KnownDimensions, maybeMaxSize(orSize(minMaxDefiniteSize(minSize, maxSize), clamped), pbSum))

	if in.RunMode == ComputeSize && known.Width.Valid && known.Height.Valid {
		return LayoutOutputFromOuterSize(Size[float64]{Width: known.Width.Value, Height: known.Height.Value})
	}

	in.KnownDimensions = known
	return computeFlexboxPreliminary(tree, id, in)
}

func computeFlexboxPreliminary(tree LayoutTree, id NodeID, in LayoutInput) LayoutOutput {
	known := in.KnownDimensions
	c := computeFlexConstants(tree.FlexboxContainerStyle(id), known, in.ParentSize, tree.Calc)

	items := generateFlexItems(tree, id, &c)
	avail := determineAvailableSpace(known, in.AvailableSpace, &c)
	determineFlexBaseSize(tree, &c, avail, items)

	lines := collectFlexLines(&c, avail, items)

	if inner := c.nodeInnerSize.Main(c.dir); inner.Valid {
		c.innerContainerSize.SetMain(c.dir, inner.Value)
		c.containerSize.SetMain(c.dir, inner.Value+MainAxisSum(c.contentBoxInset, c.dir))
	} else {
		determineContainerMainSize(tree, avail, lines, &c)
		c.nodeInnerSize.SetMain(c.dir, Some(c.innerContainerSize.Main(c.dir)))
		c.nodeOuterSize.SetMain(c.dir, Some(c.containerSize.Main(c.dir)))

		// Percentage gaps resolve against the now known main size.
		style := tree.FlexboxContainerStyle(id)
		gap := style.Gap.Main(c.dir).ResolveOrZero(Some(c.innerContainerSize.Main(c.dir)), c.calc)
		c.gap.SetMain(c.dir, gap)
	}

	for i := range lines {
		resolveFlexibleLengths(&lines[i], &c)
	}
	for i := range lines {
		determineHypotheticalCrossSize(tree, &lines[i], &c, avail)
	}
	calculateChildBaselines(tree, known, avail, lines, &c)
	calculateCrossSize(lines, known, &c)
	handleAlignContentStretch(lines, known, &c)
	determineUsedCrossSize(lines, &c)
	distributeRemainingFreeSpace(lines, &c)
	resolveCrossAxisAutoMargins(lines, &c)
	totalLineCross := determineContainerCrossSize(lines, known, &c)

	if in.RunMode == ComputeSize {
		return LayoutOutputFromOuterSize(c.containerSize)
	}

	alignFlexLines(lines, &c, totalLineCross)
	inflow := finalLayoutPass(tree, lines, &c)
	absolute := layoutAbsoluteChildren(tree, id, &c)

	firstBaseline := None
	if len(lines) > 0 && len(lines[0].items) > 0 {
		first := &lines[0].items[0]
		for i := range lines[0].items {
			it := &lines[0].items[i]
			if !c.isRow || it.alignSelf == AlignBaseline {
				first = it
				break
			}
		}
		offset := first.offsetMain
		if c.isRow {
			offset = first.offsetCross
		}
		firstBaseline = Some(offset + first.baseline)
	}

	layoutHiddenChildren(tree, id)

	return LayoutOutput{
		Size:           c.containerSize,
		ContentSize:    MaxSize(inflow, absolute),
		FirstBaselines: Point[Opt]{Y: firstBaseline},
	}
}

func computeFlexConstants(style *Style, known, parent Size[Opt], calc CalcFunc) flexConstants {
	margin := resolveEdgesOrZero(style.Margin, parent.Width, calc)
	padding := resolveEdgesOrZero(style.Padding, parent.Width, calc)
	border := resolveEdgesOrZero(style.Border, parent.Width, calc)
	pbSum := AddSize(SumAxes(padding), SumAxes(border))
	adj := style.boxSizingAdjustment(pbSum)

	gutter := style.ScrollbarGutter()
	inset := AddEdges(padding, border)
	inset.Right += gutter.Width
	inset.Bottom += gutter.Height

	inner := maybeSubSize(known, SumAxes(inset))
	gapRef := Size[Opt]{Width: Some(inner.Width.Or(0)), Height: Some(inner.Height.Or(0))}

	return flexConstants{
		dir:             style.Direction,
		isRow:           style.Direction.IsRow(),
		isWrap:          style.Wrap != NoWrap,
		isWrapReverse:   style.Wrap == WrapReverse,
		minSize:         maybeAddSize(applyAspectRatio(resolveSize(style.MinSize(), parent, calc), style.AspectRatio), adj),
		maxSize:         maybeAddSize(applyAspectRatio(resolveSize(style.MaxSize(), parent, calc), style.AspectRatio), adj),
		margin:          margin,
		border:          border,
		contentBoxInset: inset,
		scrollbarGutter: gutter,
		gap: Size[float64]{
			Width:  style.Gap.Width.ResolveOrZero(gapRef.Width, calc),
			Height: style.Gap.Height.ResolveOrZero(gapRef.Height, calc),
		},
		alignItems:     style.AlignItems,
		alignContent:   style.AlignContent,
		justifyContent: style.JustifyContent,
		nodeOuterSize:  known,
		nodeInnerSize:  inner,
		calc:           calc,
	}
}

// childRanks returns, for each child index, its position after a stable
// sort by the Order style. Equal Order values keep child order.
func childRanks(tree LayoutTree, id NodeID) []uint32 {
	n := tree.ChildCount(id)
	idx := make([]int, n)
	orders := make([]int, n)
	for i := range n {
		idx[i] = i
		orders[i] = tree.FlexboxChildStyle(tree.ChildAt(id, i)).Order
	}
	slices.SortStableFunc(idx, func(a, b int) int { return cmp.Compare(orders[a], orders[b]) })
	ranks := make([]uint32, n)
	for rank, i := range idx {
		ranks[i] = uint32(rank)
	}
	return ranks
}

// generateFlexItems collects the in-flow children in order-modified
// document order.
func generateFlexItems(tree LayoutTree, id NodeID, c *flexConstants) []flexItem {
	ranks := childRanks(tree, id)
	items := make([]flexItem, 0, len(ranks))
	i := 0
	for child := range tree.ChildIDs(id) {
		rank := ranks[i]
		i++
		cs := tree.FlexboxChildStyle(child)
		if cs.Position == Absolute || cs.Display == DisplayNone {
			continue
		}

		padding := resolveEdgesOrZero(cs.Padding, c.nodeInnerSize.Width, c.calc)
		border := resolveEdgesOrZero(cs.Border, c.nodeInnerSize.Width, c.calc)
		adj := cs.boxSizingAdjustment(AddSize(SumAxes(padding), SumAxes(border)))
		ar := cs.AspectRatio

		items = append(items, flexItem{
			node:            child,
			order:           rank,
			size:            maybeAddSize(applyAspectRatio(resolveSize(cs.Size(), c.nodeInnerSize, c.calc), ar), adj),
			minSize:         maybeAddSize(applyAspectRatio(resolveSize(cs.MinSize(), c.nodeInnerSize, c.calc), ar), adj),
			maxSize:         maybeAddSize(applyAspectRatio(resolveSize(cs.MaxSize(), c.nodeInnerSize, c.calc), ar), adj),
			maxSizeNoAspect: maybeAddSize(resolveSize(cs.MaxSize(), c.nodeInnerSize, c.calc), adj),
			inset:           resolveInset(cs.Inset, c.nodeInnerSize, c.calc),
			margin:          resolveEdgesOrZero(cs.Margin, c.nodeInnerSize.Width, c.calc),
			marginIsAuto:    MapEdges(cs.Margin, Value.IsAuto),
			padding:         padding,
			border:          border,
			alignSelf:       cs.AlignSelfOr(c.alignItems),
			overflow:        cs.Overflow,
			scrollbarWidth:  cs.ScrollbarWidth,
			autoCrossSize:   cs.Size().Cross(c.dir).IsAuto(),
			flexGrow:        cs.FlexGrow,
			flexShrink:      cs.FlexShrink,
		})
	}
	slices.SortStableFunc(items, func(a, b flexItem) int { return int(a.order) - int(b.order) })
	return items
}

// determineAvailableSpace returns the space available to the items, inside
// the container's content box.
func determineAvailableSpace(known Size[Opt], outer Size[AvailableSpace], c *flexConstants) Size[AvailableSpace] {
	inset := SumAxes(c.contentBoxInset)
	width := outer.Width.Sub(HorizontalSum(c.margin)).Sub(inset.Width)
	if known.Width.Valid {
		width = Definite(known.Width.Value - inset.Width)
	}
	height := outer.Height.Sub(VerticalSum(c.margin)).Sub(inset.Height)
	if known.Height.Valid {
		height = Definite(known.Height.Value - inset.Height)
	}
	return Size[AvailableSpace]{Width: width, Height: height}
}

// crossAvailable clamps the cross-axis available space by the item's own
// cross min and max sizes, outset by its margins.
func crossAvailable(it *flexItem, avail AvailableSpace, dir Direction) AvailableSpace {
	marginSum := CrossAxisSum(it.margin, dir)
	lo := it.minSize.Cross(dir).Add(marginSum)
	hi := it.maxSize.Cross(dir).Add(marginSum)
	switch avail.Kind() {
	case SpaceMinContent:
		if lo.Valid {
			return Definite(lo.Value)
		}
		return avail
	case SpaceMaxContent:
		if hi.Valid {
			return Definite(hi.Value)
		}
		return avail
	default:
		return Definite(maybeClamp(avail.Value(), lo, hi))
	}
}

// stretchKnown returns the known dimensions used when measuring an item: its
// cross size, or for stretched items the cross available space, clamped by
// the item's cross min and max.
func stretchKnown(it *flexItem, crossAvail AvailableSpace, dir Direction) Size[Opt] {
	known := it.size.WithMain(dir, None)
	if it.alignSelf == AlignStretch && !known.Cross(dir).Valid {
		known.SetCross(dir, crossAvail.IntoOption().Sub(CrossAxisSum(it.margin, dir)))
	}
	known.SetCross(dir, known.Cross(dir).MaybeClamp(it.minSize.Cross(dir), it.maxSize.Cross(dir)))
	return known
}

func determineFlexBaseSize(tree LayoutTree, c *flexConstants, avail Size[AvailableSpace], items []flexItem) {
	dir := c.dir
	for i := range items {
		it := &items[i]
		cs := tree.FlexboxChildStyle(it.node)

		parentSize := Size[Opt]{}.WithCross(dir, c.nodeInnerSize.Cross(dir))
		crossSpace := crossAvailable(it, avail.Cross(dir), dir)
		known := stretchKnown(it, crossSpace, dir)

		pb := AddSize(SumAxes(it.padding), SumAxes(it.border))
		basis := cs.FlexBasis.ResolveToOption(c.nodeInnerSize.Main(dir), c.calc).Add(cs.boxSizingAdjustment(pb).Main(dir))

		if b := basis.OrElse(it.size.Main(dir)); b.Valid {
			it.flexBasis = b.Value
		} else {
			mainSpace := MaxContent()
			if avail.Main(dir).Kind() == SpaceMinContent {
				mainSpace = MinContent()
			}
			childAvail := MaxContentSize().WithMain(dir, mainSpace).WithCross(dir, crossSpace)
			it.flexBasis = MeasureChildSize(tree, it.node, known, parentSize, childAvail, ContentSize, dir.MainAxis(), Line[bool]{})
		}

		pbMain := MainAxisSum(it.padding, dir) + MainAxisSum(it.border, dir)
		it.flexBasis = max(it.flexBasis, pbMain)
		it.innerFlexBasis = it.flexBasis - pbMain

		styleMin := it.minSize.Main(dir)
		if !styleMin.Valid && it.isScrollContainer() {
			styleMin = Some(0)
		}
		if styleMin.Valid {
			it.resolvedMinimumMainSize = styleMin.Value
		} else {
			childAvail := MinContentSize().WithCross(dir, crossSpace)
			minContent := MeasureChildSize(tree, it.node, known, parentSize, childAvail, ContentSize, dir.MainAxis(), Line[bool]{})
			minContent = maybeMin(maybeMin(minContent, it.size.Main(dir)), it.maxSize.Main(dir))
			it.resolvedMinimumMainSize = max(minContent, pb.Main(dir))
		}

		hypoMin := max(it.resolvedMinimumMainSize, pb.Main(dir))
		hypoInner := maybeClamp(it.flexBasis, Some(hypoMin), it.maxSize.Main(dir))
		it.hypotheticalInnerSize.SetMain(dir, hypoInner)
		it.hypotheticalOuterSize.SetMain(dir, hypoInner+MainAxisSum(it.margin, dir))
	}
}

func sumAxisGaps(gap float64, n int) float64 {
	if n <= 1 {
		return 0
	}
	return gap * float64(n-1)
}

func isNormal(f float64) bool {
	return f != 0 && !math.IsNaN(f) && !math.IsInf(f, 0) && math.Abs(f) >= 0x1p-1022
}
