package layout

import (
	"math"
	"math/rand/v2"
	"testing"
)

// row builds a w x h row container with one fixed-size child per width.
func row(tree *testTree, w, h float64, widths ...float64) (NodeID, []NodeID) {
	parent := tree.node(DefaultStyle())
	tree.style(parent).Width = Fixed(w)
	tree.style(parent).Height = Fixed(h)

	kids := make([]NodeID, len(widths))
	for i, cw := range widths {
		kids[i] = tree.node(DefaultStyle())
		tree.style(kids[i]).Width = Fixed(cw)
	}
	tree.addChild(parent, kids...)
	return parent, kids
}

func TestCalculate_FlexGrow(t *testing.T) {
	tree := newTestTree()
	parent, kids := row(tree, 100, 50, 30, 0)
	fixed, growing := kids[0], kids[1]
	tree.style(growing).FlexGrow = 1

	tree.calculate(parent, 200, 200)

	// Fixed child should stay at 30
	if got := tree.layout(fixed).Size.Width; got != 30 {
		t.Errorf("fixed width = %g, want 30", got)
	}
	// Growing child takes the remaining 70
	if got := tree.layout(growing).Size.Width; got != 70 {
		t.Errorf("growing width = %g, want 70", got)
	}
	if got := tree.layout(growing).Location.X; got != 30 {
		t.Errorf("growing.X = %g, want 30", got)
	}
}

func TestCalculate_FlexGrow_ProportionalDistribution(t *testing.T) {
	tree := newTestTree()
	parent, kids := row(tree, 100, 50, 0, 0)
	tree.style(kids[0]).FlexGrow = 1
	tree.style(kids[1]).FlexGrow = 3

	tree.calculate(parent, 200, 200)

	if got := tree.layout(kids[0]).Size.Width; got != 25 {
		t.Errorf("child1 width = %g, want 25", got)
	}
	if got := tree.layout(kids[1]).Size.Width; got != 75 {
		t.Errorf("child2 width = %g, want 75", got)
	}
}

func TestCalculate_FlexGrow_FractionalSum(t *testing.T) {
	// Grow factors summing below one only take that fraction of free space.
	tree := newTestTree()
	parent, kids := row(tree, 100, 50, 0, 0)
	tree.style(kids[0]).FlexGrow = 0.25
	tree.style(kids[1]).FlexGrow = 0.25

	tree.calculate(parent, 200, 200)

	for i, k := range kids {
		if got := tree.layout(k).Size.Width; got != 25 {
			t.Errorf("child%d width = %g, want 25", i+1, got)
		}
	}
}

func TestCalculate_FlexShrink(t *testing.T) {
	type tc struct {
		parentWidth float64
		widths      []float64
		shrink      []float64
		expected    []float64
	}

	tests := map[string]tc{
		"equal overflow split evenly": {
			parentWidth: 100,
			widths:      []float64{80, 80},
			shrink:      []float64{1, 1},
			expected:    []float64{50, 50},
		},
		"shrink weighted by base size": {
			parentWidth: 50,
			widths:      []float64{60, 40},
			shrink:      []float64{1, 1},
			expected:    []float64{30, 20},
		},
		"zero shrink keeps its size": {
			parentWidth: 100,
			widths:      []float64{80, 80},
			shrink:      []float64{0, 1},
			expected:    []float64{80, 20},
		},
		"no shrink at all overflows": {
			parentWidth: 100,
			widths:      []float64{80, 80},
			shrink:      []float64{0, 0},
			expected:    []float64{80, 80},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			tree := newTestTree()
			parent, kids := row(tree, tt.parentWidth, 50, tt.widths...)
			for i, k := range kids {
				tree.style(k).FlexShrink = tt.shrink[i]
			}

			tree.calculate(parent, 200, 200)

			for i, k := range kids {
				if got := tree.layout(k).Size.Width; got != tt.expected[i] {
					t.Errorf("child%d width = %g, want %g", i+1, got, tt.expected[i])
				}
			}
		})
	}
}

func TestCalculate_FlexBasis(t *testing.T) {
	tree := newTestTree()
	parent, kids := row(tree, 100, 50, 10, 10)
	tree.style(kids[0]).FlexBasis = Fixed(40)
	tree.style(kids[1]).FlexBasis = Percent(20)

	tree.calculate(parent, 200, 200)

	if got := tree.layout(kids[0]).Size.Width; got != 40 {
		t.Errorf("child1 width = %g, want 40", got)
	}
	if got := tree.layout(kids[1]).Size.Width; got != 20 {
		t.Errorf("child2 width = %g, want 20", got)
	}
}

func TestCalculate_WithGap(t *testing.T) {
	tree := newTestTree()
	parent, kids := row(tree, 100, 50, 20, 20, 20)
	tree.style(parent).Gap = Size[Value]{Width: Fixed(10), Height: Fixed(0)}

	tree.calculate(parent, 200, 200)

	for i, want := range []float64{0, 30, 60} {
		if got := tree.layout(kids[i]).Location.X; got != want {
			t.Errorf("child%d.X = %g, want %g", i+1, got, want)
		}
	}
}

func TestCalculate_IntrinsicSize_WithGap(t *testing.T) {
	tree := newTestTree()
	root := tree.node(DefaultStyle())
	tree.style(root).Direction = Column
	tree.style(root).AlignItems = AlignStart

	inner := tree.node(DefaultStyle())
	tree.style(inner).Gap = Size[Value]{Width: Fixed(10)}
	for range 3 {
		tree.addChild(inner, tree.leaf(DefaultStyle(), 20, 5))
	}
	tree.addChild(root, inner)

	tree.calculate(root, 200, 200)

	if got, want := tree.layout(inner).Size, (Size[float64]{Width: 80, Height: 5}); got != want {
		t.Errorf("inner size = %+v, want %+v", got, want)
	}
}

func TestCalculate_IntrinsicSize_FlexGrowFromIntrinsic(t *testing.T) {
	// Growing items start from their content size.
	tree := newTestTree()
	parent := tree.node(DefaultStyle())
	tree.style(parent).Width = Fixed(100)
	tree.style(parent).Height = Fixed(10)

	a := tree.leaf(DefaultStyle(), 10, 5)
	b := tree.leaf(DefaultStyle(), 30, 5)
	tree.style(a).FlexGrow = 1
	tree.style(b).FlexGrow = 1
	tree.addChild(parent, a, b)

	tree.calculate(parent, 200, 200)

	if got := tree.layout(a).Size.Width; got != 40 {
		t.Errorf("a width = %g, want 40", got)
	}
	if got := tree.layout(b).Size.Width; got != 60 {
		t.Errorf("b width = %g, want 60", got)
	}
}

func TestCalculate_RowReverse(t *testing.T) {
	tree := newTestTree()
	parent, kids := row(tree, 100, 50, 20, 20)
	tree.style(parent).Direction = RowReverse

	tree.calculate(parent, 200, 200)

	if got := tree.layout(kids[0]).Location.X; got != 80 {
		t.Errorf("A.X = %g, want 80", got)
	}
	if got := tree.layout(kids[1]).Location.X; got != 60 {
		t.Errorf("B.X = %g, want 60", got)
	}
}

func TestCalculate_ColumnReverse(t *testing.T) {
	tree := newTestTree()
	parent := tree.node(DefaultStyle())
	tree.style(parent).Width = Fixed(50)
	tree.style(parent).Height = Fixed(100)
	tree.style(parent).Direction = ColumnReverse

	a := tree.node(DefaultStyle())
	tree.style(a).Height = Fixed(10)
	b := tree.node(DefaultStyle())
	tree.style(b).Height = Fixed(30)
	tree.addChild(parent, a, b)

	tree.calculate(parent, 200, 200)

	if got := tree.layout(a).Location.Y; got != 90 {
		t.Errorf("a.Y = %g, want 90", got)
	}
	if got := tree.layout(b).Location.Y; got != 60 {
		t.Errorf("b.Y = %g, want 60", got)
	}
}

func TestCalculate_Order(t *testing.T) {
	tree := newTestTree()
	parent, kids := row(tree, 100, 50, 10, 20, 30)
	tree.style(kids[0]).Order = 2
	tree.style(kids[2]).Order = -1

	tree.calculate(parent, 200, 200)

	type want struct {
		x     float64
		order uint32
	}
	expected := []want{{x: 50, order: 2}, {x: 30, order: 1}, {x: 0, order: 0}}
	for i, k := range kids {
		l := tree.layout(k)
		if l.Location.X != expected[i].x {
			t.Errorf("child%d.X = %g, want %g", i+1, l.Location.X, expected[i].x)
		}
		if l.Order != expected[i].order {
			t.Errorf("child%d.Order = %d, want %d", i+1, l.Order, expected[i].order)
		}
	}
}

func TestCalculate_OrderExtremes(t *testing.T) {
	tree := newTestTree()
	parent, kids := row(tree, 100, 50, 10, 20, 30)
	tree.style(kids[0]).Order = math.MinInt
	tree.style(kids[1]).Order = math.MaxInt

	tree.calculate(parent, 200, 200)

	expected := []float64{0, 40, 10}
	for i, k := range kids {
		if got := tree.layout(k).Location.X; got != expected[i] {
			t.Errorf("child%d.X = %g, want %g", i+1, got, expected[i])
		}
	}
}

func TestCalculate_Wrap(t *testing.T) {
	tree := newTestTree()
	parent, kids := row(tree, 50, 100, 20, 20, 20)
	tree.style(parent).Wrap = Wrap
	tree.style(parent).AlignContent = JustifyFlexStart
	for _, k := range kids {
		tree.style(k).Height = Fixed(10)
	}

	tree.calculate(parent, 200, 200)

	expected := []Point[float64]{{X: 0, Y: 0}, {X: 20, Y: 0}, {X: 0, Y: 10}}
	for i, k := range kids {
		if got := tree.layout(k).Location; got != expected[i] {
			t.Errorf("child%d location = %+v, want %+v", i+1, got, expected[i])
		}
	}
}

func TestCalculate_WrapReverse(t *testing.T) {
	tree := newTestTree()
	parent, kids := row(tree, 50, 100, 20, 20, 20)
	tree.style(parent).Wrap = WrapReverse
	tree.style(parent).AlignContent = JustifyFlexStart
	for _, k := range kids {
		tree.style(k).Height = Fixed(10)
	}

	tree.calculate(parent, 200, 200)

	// Lines stack from the cross end.
	expected := []Point[float64]{{X: 0, Y: 90}, {X: 20, Y: 90}, {X: 0, Y: 80}}
	for i, k := range kids {
		if got := tree.layout(k).Location; got != expected[i] {
			t.Errorf("child%d location = %+v, want %+v", i+1, got, expected[i])
		}
	}
}

func TestCalculate_WrapThousandChildren(t *testing.T) {
	const (
		width  = 1920
		height = 100
		count  = 1000
	)

	rng := rand.New(rand.NewPCG(1, 2))
	tree := newTestTree()
	root := tree.node(DefaultStyle())
	tree.style(root).Wrap = Wrap
	tree.style(root).AlignContent = JustifyFlexStart

	widths := make([]float64, count)
	kids := make([]NodeID, count)
	for i := range count {
		widths[i] = float64(rng.IntN(91) + 10)
		kids[i] = tree.node(DefaultStyle())
		tree.style(kids[i]).Width = Fixed(widths[i])
		tree.style(kids[i]).Height = Fixed(height)
	}
	tree.addChild(root, kids...)

	tree.calculate(root, width, 1080)

	var x, y float64
	for i, k := range kids {
		if x > 0 && x+widths[i] > width {
			x = 0
			y += height
		}
		got := tree.layout(k)
		if math.IsNaN(got.Size.Width) || math.IsNaN(got.Size.Height) || got.Size.Width < 0 || got.Size.Height < 0 {
			t.Fatalf("child %d has invalid size %+v", i, got.Size)
		}
		if got.Location.X != x || got.Location.Y != y {
			t.Fatalf("child %d location = (%g, %g), want (%g, %g)", i, got.Location.X, got.Location.Y, x, y)
		}
		if got.Size.Width != widths[i] {
			t.Fatalf("child %d width = %g, want %g", i, got.Size.Width, widths[i])
		}
		x += widths[i]
	}
	// An auto-height root grows past the available height to fit every line.
	if got, want := tree.layout(root).Size.Height, y+height; got != want {
		t.Errorf("root height = %g, want %g", got, want)
	}
}
