package layout

import "testing"

func TestCalculate_EmptyChildren(t *testing.T) {
	tree := newTestTree()
	node := tree.node(DefaultStyle())
	tree.style(node).Width = Fixed(100)
	tree.style(node).Height = Fixed(100)

	tree.calculate(node, 200, 200)

	if got := tree.layout(node).Size; got != (Size[float64]{Width: 100, Height: 100}) {
		t.Errorf("Layout.Size = %+v, want 100x100", got)
	}
}

func TestCalculate_MinMax(t *testing.T) {
	type tc struct {
		// configure sets up two children of a 100x50 row.
		configure func(a, b *Style)
		expected  [2]float64
	}

	tests := map[string]tc{
		"min width raises a small item": {
			configure: func(a, b *Style) {
				a.Width = Fixed(30)
				a.MinWidth = Fixed(40)
				b.Width = Fixed(10)
			},
			expected: [2]float64{40, 10},
		},
		"max width caps growth": {
			configure: func(a, b *Style) {
				a.Width = Fixed(0)
				a.FlexGrow = 1
				a.MaxWidth = Fixed(60)
				b.Width = Fixed(0)
			},
			expected: [2]float64{60, 0},
		},
		"capped item frees space for its sibling": {
			configure: func(a, b *Style) {
				a.Width = Fixed(0)
				a.FlexGrow = 1
				a.MaxWidth = Fixed(30)
				b.Width = Fixed(0)
				b.FlexGrow = 1
			},
			expected: [2]float64{30, 70},
		},
		"min width stops shrinking": {
			configure: func(a, b *Style) {
				a.Width = Fixed(80)
				a.MinWidth = Fixed(60)
				b.Width = Fixed(80)
			},
			expected: [2]float64{60, 40},
		},
		"min wins over max": {
			configure: func(a, b *Style) {
				a.Width = Fixed(50)
				a.MinWidth = Fixed(60)
				a.MaxWidth = Fixed(40)
				b.Width = Fixed(10)
			},
			expected: [2]float64{60, 10},
		},
		"percent max width": {
			configure: func(a, b *Style) {
				a.Width = Fixed(90)
				a.MaxWidth = Percent(25)
				b.Width = Fixed(10)
			},
			expected: [2]float64{25, 10},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			tree := newTestTree()
			parent, kids := row(tree, 100, 50, 0, 0)
			tt.configure(tree.style(kids[0]), tree.style(kids[1]))

			tree.calculate(parent, 200, 200)

			for i, k := range kids {
				if got := tree.layout(k).Size.Width; got != tt.expected[i] {
					t.Errorf("child%d width = %g, want %g", i+1, got, tt.expected[i])
				}
			}
		})
	}
}

func TestCalculate_MinHeight_Column(t *testing.T) {
	tree := newTestTree()
	parent := tree.node(DefaultStyle())
	tree.style(parent).Width = Fixed(50)
	tree.style(parent).Height = Fixed(100)
	tree.style(parent).Direction = Column

	child := tree.node(DefaultStyle())
	tree.style(child).Height = Fixed(20)
	tree.style(child).MinHeight = Fixed(40)
	tree.addChild(parent, child)

	tree.calculate(parent, 200, 200)

	if got := tree.layout(child).Size.Height; got != 40 {
		t.Errorf("child height = %g, want 40", got)
	}
}

func TestCalculate_CrossMax(t *testing.T) {
	type tc struct {
		configure func(s *Style)
		expected  float64
	}

	tests := map[string]tc{
		"stretch stops at max height": {
			configure: func(s *Style) { s.MaxHeight = Fixed(20) },
			expected:  20,
		},
		"fixed height above max height": {
			configure: func(s *Style) {
				s.Height = Fixed(80)
				s.MaxHeight = Fixed(30)
			},
			expected: 30,
		},
		"stretch below min height": {
			configure: func(s *Style) { s.MinHeight = Fixed(70) },
			expected:  70,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			tree := newTestTree()
			parent, kids := row(tree, 100, 50, 40)
			tt.configure(tree.style(kids[0]))

			tree.calculate(parent, 200, 200)

			if got := tree.layout(kids[0]).Size.Height; got != tt.expected {
				t.Errorf("child height = %g, want %g", got, tt.expected)
			}
		})
	}
}

func TestCalculate_RootMinMax(t *testing.T) {
	type tc struct {
		configure func(s *Style)
		expected  Size[float64]
	}

	tests := map[string]tc{
		"max width caps the stretched root": {
			configure: func(s *Style) { s.MaxWidth = Fixed(60) },
			expected:  Size[float64]{Width: 60, Height: 0},
		},
		"min height lifts an empty root": {
			configure: func(s *Style) { s.MinHeight = Fixed(30) },
			expected:  Size[float64]{Width: 100, Height: 30},
		},
		"padding floors a tiny root": {
			configure: func(s *Style) {
				s.Width = Fixed(4)
				s.Padding = EdgeAll(Fixed(5))
			},
			expected: Size[float64]{Width: 10, Height: 10},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			tree := newTestTree()
			root := tree.node(DefaultStyle())
			tt.configure(tree.style(root))

			tree.calculate(root, 100, 100)

			if got := tree.layout(root).Size; got != tt.expected {
				t.Errorf("root size = %+v, want %+v", got, tt.expected)
			}
		})
	}
}

func TestComputeLeafLayout_KnownDimensionsWin(t *testing.T) {
	type tc struct {
		configure func(s *Style)
		known     Size[Opt]
		expected  Size[float64]
	}

	tests := map[string]tc{
		"max width does not shrink a known width": {
			configure: func(s *Style) { s.MaxWidth = Fixed(30) },
			known:     Size[Opt]{Width: Some(50), Height: Some(20)},
			expected:  Size[float64]{Width: 50, Height: 20},
		},
		"min height does not grow a known height": {
			configure: func(s *Style) { s.MinHeight = Fixed(40) },
			known:     Size[Opt]{Width: Some(50), Height: Some(20)},
			expected:  Size[float64]{Width: 50, Height: 20},
		},
		"padding does not floor a known width": {
			configure: func(s *Style) { s.Padding = EdgeAll(Fixed(10)) },
			known:     Size[Opt]{Width: Some(5), Height: Some(20)},
			expected:  Size[float64]{Width: 5, Height: 20},
		},
		"unknown width is still clamped": {
			configure: func(s *Style) { s.MaxWidth = Fixed(30) },
			known:     Size[Opt]{Height: Some(20)},
			expected:  Size[float64]{Width: 30, Height: 20},
		},
	}

	measure := func(known Size[Opt], _ Size[AvailableSpace]) Size[float64] {
		return Size[float64]{Width: known.Width.Or(60), Height: known.Height.Or(10)}
	}

	for name, tt := range tests {
		for modeName, mode := range map[string]RunMode{"perform": PerformLayout, "size": ComputeSize} {
			t.Run(name+"/"+modeName, func(t *testing.T) {
				style := DefaultStyle()
				tt.configure(&style)
				out := ComputeLeafLayout(LayoutInput{
					RunMode:         mode,
					SizingMode:      InherentSize,
					Axis:            RequestBoth,
					KnownDimensions: tt.known,
					ParentSize:      Size[Opt]{Width: Some(100), Height: Some(100)},
					AvailableSpace:  DefiniteSize(100, 100),
				}, &style, nil, measure)

				if out.Size != tt.expected {
					t.Errorf("Size = %+v, want %+v", out.Size, tt.expected)
				}
			})
		}
	}
}
