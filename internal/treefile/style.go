package treefile

import (
	"fmt"
	"slices"
	"strings"

	"github.com/grindlemire/go-boxlayout"
)

var (
	displays = map[string]boxlayout.Display{
		"flex":  boxlayout.DisplayFlex,
		"grid":  boxlayout.DisplayGrid,
		"block": boxlayout.DisplayBlock,
		"none":  boxlayout.DisplayNone,
	}
	boxSizings = map[string]boxlayout.BoxSizing{
		"border-box":  boxlayout.BorderBox,
		"content-box": boxlayout.ContentBox,
	}
	positions = map[string]boxlayout.Position{
		"relative": boxlayout.Relative,
		"absolute": boxlayout.Absolute,
	}
	overflows = map[string]boxlayout.Overflow{
		"visible": boxlayout.OverflowVisible,
		"clip":    boxlayout.OverflowClip,
		"hidden":  boxlayout.OverflowHidden,
		"scroll":  boxlayout.OverflowScroll,
	}
	directions = map[string]boxlayout.Direction{
		"row":            boxlayout.Row,
		"column":         boxlayout.Column,
		"row-reverse":    boxlayout.RowReverse,
		"column-reverse": boxlayout.ColumnReverse,
	}
	wraps = map[string]boxlayout.FlexWrap{
		"nowrap":       boxlayout.NoWrap,
		"wrap":         boxlayout.Wrap,
		"wrap-reverse": boxlayout.WrapReverse,
	}
	justifies = map[string]boxlayout.Justify{
		"flex-start":    boxlayout.JustifyFlexStart,
		"flex-end":      boxlayout.JustifyFlexEnd,
		"start":         boxlayout.JustifyStart,
		"end":           boxlayout.JustifyEnd,
		"center":        boxlayout.JustifyCenter,
		"stretch":       boxlayout.JustifyStretch,
		"space-between": boxlayout.JustifySpaceBetween,
		"space-around":  boxlayout.JustifySpaceAround,
		"space-evenly":  boxlayout.JustifySpaceEvenly,
	}
	aligns = map[string]boxlayout.Align{
		"start":      boxlayout.AlignStart,
		"end":        boxlayout.AlignEnd,
		"center":     boxlayout.AlignCenter,
		"stretch":    boxlayout.AlignStretch,
		"flex-start": boxlayout.AlignFlexStart,
		"flex-end":   boxlayout.AlignFlexEnd,
		"baseline":   boxlayout.AlignBaseline,
	}
)

// keyword sets *dst from m when s is non-empty.
func keyword[T any](dst *T, m map[string]T, field, s string) error {
	if s == "" {
		return nil
	}
	v, ok := m[s]
	if !ok {
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		return fmt.Errorf("unknown %s %q (want one of %s)", field, s, strings.Join(keys, ", "))
	}
	*dst = v
	return nil
}

func setLength(dst *boxlayout.Value, l *Length) {
	if l != nil {
		*dst = boxlayout.Value(*l)
	}
}

// Style converts the style description to a boxlayout.Style, starting from
// boxlayout.DefaultStyle.
func (s *StyleSpec) Style() (boxlayout.Style, error) {
	st := boxlayout.DefaultStyle()

	var alignSelf boxlayout.Align
	var overflowX, overflowY string
	if s.Overflow != nil {
		overflowX, overflowY = s.Overflow.X, s.Overflow.Y
	}
	for _, err := range []error{
		keyword(&st.Display, displays, "display", s.Display),
		keyword(&st.BoxSizing, boxSizings, "box_sizing", s.BoxSizing),
		keyword(&st.Position, positions, "position", s.Position),
		keyword(&st.Overflow.X, overflows, "overflow", overflowX),
		keyword(&st.Overflow.Y, overflows, "overflow", overflowY),
		keyword(&st.Direction, directions, "direction", s.Direction),
		keyword(&st.Wrap, wraps, "wrap", s.Wrap),
		keyword(&st.JustifyContent, justifies, "justify_content", s.JustifyContent),
		keyword(&st.AlignItems, aligns, "align_items", s.AlignItems),
		keyword(&st.AlignContent, justifies, "align_content", s.AlignContent),
		keyword(&alignSelf, aligns, "align_self", s.AlignSelf),
	} {
		if err != nil {
			return boxlayout.Style{}, err
		}
	}
	if s.AlignSelf != "" {
		st.AlignSelf = boxlayout.AlignPtr(alignSelf)
	}

	if s.Scrollbar != nil {
		st.ScrollbarWidth = *s.Scrollbar
	}
	if s.Inset != nil {
		st.Inset = s.Inset.edges(boxlayout.Auto())
	}

	setLength(&st.Width, s.Width)
	setLength(&st.Height, s.Height)
	setLength(&st.MinWidth, s.MinWidth)
	setLength(&st.MinHeight, s.MinHeight)
	setLength(&st.MaxWidth, s.MaxWidth)
	setLength(&st.MaxHeight, s.MaxHeight)
	setLength(&st.FlexBasis, s.FlexBasis)
	if s.AspectRatio != nil {
		if *s.AspectRatio <= 0 {
			return boxlayout.Style{}, fmt.Errorf("aspect_ratio must be positive, got %g", *s.AspectRatio)
		}
		st.AspectRatio = boxlayout.Some(*s.AspectRatio)
	}

	if s.Margin != nil {
		st.Margin = s.Margin.edges(boxlayout.Fixed(0))
	}
	if s.Padding != nil {
		st.Padding = s.Padding.edges(boxlayout.Fixed(0))
	}
	if s.Border != nil {
		st.Border = s.Border.edges(boxlayout.Fixed(0))
	}
	if s.Gap != nil {
		setLength(&st.Gap.Width, s.Gap.Column)
		setLength(&st.Gap.Height, s.Gap.Row)
	}

	if s.FlexGrow != nil {
		st.FlexGrow = *s.FlexGrow
	}
	if s.FlexShrink != nil {
		st.FlexShrink = *s.FlexShrink
	}
	st.Order = s.Order
	return st, nil
}
