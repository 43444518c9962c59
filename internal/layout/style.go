package layout

// Display selects the layout algorithm for a node's children.
type Display uint8

const (
	DisplayFlex  Display = iota // Flexbox container
	DisplayGrid                 // Grid container (extension point)
	DisplayBlock                // Block container (extension point)
	DisplayNone                 // Hidden along with its subtree
)

// String returns the CSS keyword.
func (d Display) String() string {
	switch d {
	case DisplayGrid:
		return "grid"
	case DisplayBlock:
		return "block"
	case DisplayNone:
		return "none"
	default:
		return "flex"
	}
}

// BoxSizing specifies which box the size styles apply to.
type BoxSizing uint8

const (
	BorderBox  BoxSizing = iota // Sizes include padding and border
	ContentBox                  // Sizes exclude padding and border
)

// Position specifies whether a node participates in flow layout.
type Position uint8

const (
	Relative Position = iota // Placed by the parent's algorithm
	Absolute                 // Placed against the parent's padding box via Inset
)

// Overflow specifies how content larger than the box is handled.
type Overflow uint8

const (
	OverflowVisible Overflow = iota
	OverflowClip
	OverflowHidden
	OverflowScroll
)

// IsScrollContainer reports whether the overflow mode makes the box a scroll
// container. Scroll containers have an automatic minimum size of zero.
func (o Overflow) IsScrollContainer() bool {
	return o == OverflowHidden || o == OverflowScroll
}

// Direction specifies the main axis for laying out children.
type Direction uint8

const (
	Row           Direction = iota // Children laid out left-to-right
	Column                         // Children laid out top-to-bottom
	RowReverse                     // Children laid out right-to-left
	ColumnReverse                  // Children laid out bottom-to-top
)

// IsRow reports whether the main axis is horizontal.
func (d Direction) IsRow() bool {
	return d == Row || d == RowReverse
}

// IsColumn reports whether the main axis is vertical.
func (d Direction) IsColumn() bool {
	return d == Column || d == ColumnReverse
}

// IsReverse reports whether items flow from the end of the main axis.
func (d Direction) IsReverse() bool {
	return d == RowReverse || d == ColumnReverse
}

// MainAxis returns the physical axis along which items flow.
func (d Direction) MainAxis() AbsoluteAxis {
	if d.IsRow() {
		return Horizontal
	}
	return Vertical
}

// FlexWrap specifies whether items may wrap onto multiple lines.
type FlexWrap uint8

const (
	NoWrap      FlexWrap = iota // Single line
	Wrap                        // Lines stack toward the cross end
	WrapReverse                 // Lines stack toward the cross start
)

// Justify specifies how free space is distributed along an axis. It is used
// for both JustifyContent (main axis) and AlignContent (between lines).
type Justify uint8

const (
	JustifyFlexStart    Justify = iota // Pack at flex start (respects reverse directions)
	JustifyFlexEnd                     // Pack at flex end
	JustifyStart                       // Pack at the physical start
	JustifyEnd                         // Pack at the physical end
	JustifyCenter                      // Center items
	JustifyStretch                     // Stretch lines (AlignContent only)
	JustifySpaceBetween                // Even space between, none at edges
	JustifySpaceAround                 // Even space around each item
	JustifySpaceEvenly                 // Equal space between and at edges
)

// Align specifies how items are positioned on the cross axis.
type Align uint8

const (
	AlignStart     Align = iota // Align to start of cross axis
	AlignEnd                    // Align to end of cross axis
	AlignCenter                 // Center on cross axis
	AlignStretch                // Stretch to fill cross axis
	AlignFlexStart              // Align to flex start (respects WrapReverse)
	AlignFlexEnd                // Align to flex end
	AlignBaseline               // Align first baselines
)

// Style contains all layout properties for a node. Start from DefaultStyle:
// the zero Value is auto, so a zero Style has auto margins.
type Style struct {
	Display   Display
	BoxSizing BoxSizing
	Position  Position
	Overflow  Point[Overflow]
	// ScrollbarWidth is reserved on the opposite axis of each scrolling axis.
	ScrollbarWidth float64
	Inset          Edges[Value]

	// Sizing
	Width       Value
	Height      Value
	MinWidth    Value
	MinHeight   Value
	MaxWidth    Value
	MaxHeight   Value
	AspectRatio Opt // width / height

	// Spacing
	Margin  Edges[Value]
	Padding Edges[Value]
	Border  Edges[Value]

	// Flex container properties
	Direction      Direction
	Wrap           FlexWrap
	JustifyContent Justify
	AlignItems     Align
	AlignContent   Justify
	Gap            Size[Value] // Width is the gap between columns, Height between rows

	// Flex item properties
	FlexBasis  Value
	FlexGrow   float64 // How much to grow relative to siblings
	FlexShrink float64 // How much to shrink relative to siblings (default 1)
	AlignSelf  *Align  // Override parent's AlignItems (nil = inherit)
	Order      int     // Placement order among siblings; ties keep child order
}

// DefaultStyle returns a Style with CSS initial values.
func DefaultStyle() Style {
	return Style{
		Width:        Auto(),
		Height:       Auto(),
		MinWidth:     Auto(),
		MinHeight:    Auto(),
		MaxWidth:     Auto(), // No maximum
		MaxHeight:    Auto(), // No maximum
		FlexBasis:    Auto(),
		Inset:        EdgeAll(Auto()),
		Margin:       EdgeAll(Fixed(0)),
		Padding:      EdgeAll(Fixed(0)),
		Border:       EdgeAll(Fixed(0)),
		Gap:          Size[Value]{Width: Fixed(0), Height: Fixed(0)},
		Direction:    Row,
		AlignItems:   AlignStretch,
		AlignContent: JustifyStretch,
		FlexShrink:   1.0,
	}
}

// Size returns the preferred size.
func (s *Style) Size() Size[Value] {
	return Size[Value]{Width: s.Width, Height: s.Height}
}

// MinSize returns the minimum size.
func (s *Style) MinSize() Size[Value] {
	return Size[Value]{Width: s.MinWidth, Height: s.MinHeight}
}

// MaxSize returns the maximum size.
func (s *Style) MaxSize() Size[Value] {
	return Size[Value]{Width: s.MaxWidth, Height: s.MaxHeight}
}

// IsWrapReverse reports whether lines stack toward the cross start.
func (s *Style) IsWrapReverse() bool {
	return s.Wrap == WrapReverse
}

// ScrollbarGutter returns the space reserved for scrollbars: a scrolling X
// axis reserves height at the bottom, a scrolling Y axis reserves width on
// the right.
func (s *Style) ScrollbarGutter() Size[float64] {
	var g Size[float64]
	if s.Overflow.Y == OverflowScroll {
		g.Width = s.ScrollbarWidth
	}
	if s.Overflow.X == OverflowScroll {
		g.Height = s.ScrollbarWidth
	}
	return g
}

// AlignSelfOr returns AlignSelf when set, else the parent's AlignItems.
func (s *Style) AlignSelfOr(parent Align) Align {
	if s.AlignSelf != nil {
		return *s.AlignSelf
	}
	return parent
}

// AlignPtr returns a pointer to a, for setting AlignSelf.
func AlignPtr(a Align) *Align {
	return &a
}

// boxSizingAdjustment is added to content-box sizes so every size style can
// be compared in border-box terms.
func (s *Style) boxSizingAdjustment(paddingBorder Size[float64]) Size[float64] {
	if s.BoxSizing == ContentBox {
		return paddingBorder
	}
	return Size[float64]{}
}
