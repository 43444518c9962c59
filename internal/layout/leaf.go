package layout

// ComputeLeafLayout sizes a node without children. measure is called with
// the content-box known dimensions and available space and returns the
// content size.
func ComputeLeafLayout(in LayoutInput, style *Style, calc CalcFunc, measure MeasureFunc) LayoutOutput {
	parentWidth := in.ParentSize.Width
	margin := resolveEdgesOrZero(style.Margin, parentWidth, calc)
	padding := resolveEdgesOrZero(style.Padding, parentWidth, calc)
	border := resolveEdgesOrZero(style.Border, parentWidth, calc)
	paddingBorder := AddEdges(padding, border)
	pbSum := SumAxes(paddingBorder)

	var styleSize, minSize, maxSize Size[Opt]
	aspect := None
	switch in.SizingMode {
	case ContentSize:
	case InherentSize:
		aspect = style.AspectRatio
		adj := style.boxSizingAdjustment(pbSum)
		styleSize = maybeAddSize(applyAspectRatio(resolveSize(style.Size(), in.ParentSize, calc), aspect), adj)
		minSize = maybeAddSize(applyAspectRatio(resolveSize(style.MinSize(), in.ParentSize, calc), aspect), adj)
		maxSize = maybeAddSize(resolveSize(style.MaxSize(), in.ParentSize, calc), adj)
	default:
		invariant("ComputeLeafLayout", "unknown sizing mode %d", in.SizingMode)
	}
	// Known dimensions are authoritative; min and max only bound what the
	// leaf derives from its style or content.
	nodeSize := orSize(in.KnownDimensions, styleSize)

	gutter := style.ScrollbarGutter()
	inset := paddingBorder
	inset.Right += gutter.Width
	inset.Bottom += gutter.Height
	insetSum := SumAxes(inset)

	if in.RunMode == ComputeSize && nodeSize.Width.Valid && nodeSize.Height.Valid {
		size := floorSize(clampSize(unwrapSizeOr(styleSize, Size[float64]{}), minSize, maxSize), pbSum)
		return LayoutOutputFromOuterSize(unwrapSizeOr(in.KnownDimensions, size))
	}

	avail := Size[AvailableSpace]{
		Width: in.AvailableSpace.Width.
			MaybeSet(in.KnownDimensions.Width).
			Sub(HorizontalSum(margin)).
			MaybeSet(styleSize.Width).
			MapDefinite(func(w float64) float64 { return maybeClamp(w, minSize.Width, maxSize.Width) }).
			MaybeSet(in.KnownDimensions.Width).
			MapDefinite(func(w float64) float64 { return w - insetSum.Width }),
		Height: in.AvailableSpace.Height.
			MaybeSet(in.KnownDimensions.Height).
			Sub(VerticalSum(margin)).
			MaybeSet(styleSize.Height).
			MapDefinite(func(h float64) float64 { return maybeClamp(h, minSize.Height, maxSize.Height) }).
			MaybeSet(in.KnownDimensions.Height).
			MapDefinite(func(h float64) float64 { return h - insetSum.Height }),
	}

	measured := measure(maybeSubSize(nodeSize, insetSum), avail)

	size := floorSize(clampSize(unwrapSizeOr(styleSize, AddSize(measured, insetSum)), minSize, maxSize), pbSum)
	size = unwrapSizeOr(in.KnownDimensions, size)
	if aspect.Valid && !in.KnownDimensions.Height.Valid {
		size.Height = max(size.Height, size.Width/aspect.Value)
	}

	return LayoutOutput{
		Size:         size,
		ContentSize:  AddSize(measured, SumAxes(padding)),
		TopMargin:    MarginFrom(margin.Top),
		BottomMargin: MarginFrom(margin.Bottom),
	}
}
