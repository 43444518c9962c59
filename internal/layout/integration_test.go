package layout

import "testing"

// TestIntegration_Dashboard tests a typical dashboard layout:
// - Header (fixed height at top)
// - Sidebar (fixed width on left)
// - Main content (grows to fill remaining space)
// - Footer (fixed height at bottom)
func TestIntegration_Dashboard(t *testing.T) {
	tree := newTestTree()
	root := tree.node(DefaultStyle())
	tree.style(root).Width = Fixed(120)
	tree.style(root).Height = Fixed(40)
	tree.style(root).Direction = Column

	header := tree.node(DefaultStyle())
	tree.style(header).Height = Fixed(3)

	middle := tree.node(DefaultStyle())
	tree.style(middle).FlexGrow = 1

	sidebar := tree.node(DefaultStyle())
	tree.style(sidebar).Width = Fixed(20)

	main := tree.node(DefaultStyle())
	tree.style(main).FlexGrow = 1

	footer := tree.node(DefaultStyle())
	tree.style(footer).Height = Fixed(2)

	tree.addChild(middle, sidebar, main)
	tree.addChild(root, header, middle, footer)

	tree.calculate(root, 120, 40)

	type tc struct {
		node     NodeID
		expected Rect
		absolute Rect
	}

	tests := map[string]tc{
		"header":  {node: header, expected: NewRect(0, 0, 120, 3), absolute: NewRect(0, 0, 120, 3)},
		"middle":  {node: middle, expected: NewRect(0, 3, 120, 35), absolute: NewRect(0, 3, 120, 35)},
		"sidebar": {node: sidebar, expected: NewRect(0, 0, 20, 35), absolute: NewRect(0, 3, 20, 35)},
		"main":    {node: main, expected: NewRect(20, 0, 100, 35), absolute: NewRect(20, 3, 100, 35)},
		"footer":  {node: footer, expected: NewRect(0, 38, 120, 2), absolute: NewRect(0, 38, 120, 2)},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			l := tree.layout(tt.node)
			if got := l.BorderBox(); got != tt.expected {
				t.Errorf("BorderBox() = %+v, want %+v", got, tt.expected)
			}
			if got := l.AbsoluteRect(); got != tt.absolute {
				t.Errorf("AbsoluteRect() = %+v, want %+v", got, tt.absolute)
			}
		})
	}
}

func TestIntegration_NestedFlex(t *testing.T) {
	// A padded card containing a title and a body that grows.
	tree := newTestTree()
	root := tree.node(DefaultStyle())
	tree.style(root).Width = Fixed(100)
	tree.style(root).Height = Fixed(60)

	card := tree.node(DefaultStyle())
	tree.style(card).FlexGrow = 1
	tree.style(card).Direction = Column
	tree.style(card).Padding = EdgeAll(Fixed(2))
	tree.style(card).Border = EdgeAll(Fixed(1))

	title := tree.node(DefaultStyle())
	tree.style(title).Height = Fixed(5)
	body := tree.node(DefaultStyle())
	tree.style(body).FlexGrow = 1

	tree.addChild(card, title, body)
	tree.addChild(root, card)

	tree.calculate(root, 100, 60)

	if got := tree.layout(card).BorderBox(); got != NewRect(0, 0, 100, 60) {
		t.Errorf("card = %+v, want (0, 0, 100, 60)", got)
	}
	if got := tree.layout(title).BorderBox(); got != NewRect(3, 3, 94, 5) {
		t.Errorf("title = %+v, want (3, 3, 94, 5)", got)
	}
	if got := tree.layout(body).BorderBox(); got != NewRect(3, 8, 94, 49) {
		t.Errorf("body = %+v, want (3, 8, 94, 49)", got)
	}
}

func TestIntegration_FormLayout(t *testing.T) {
	tree := newTestTree()
	form := tree.node(DefaultStyle())
	tree.style(form).Width = Fixed(80)
	tree.style(form).Height = Fixed(30)
	tree.style(form).Direction = Column
	tree.style(form).Gap = Size[Value]{Width: Fixed(0), Height: Fixed(1)}

	type row struct{ node, label, input NodeID }
	var rows []row
	for range 3 {
		r := row{node: tree.node(DefaultStyle()), label: tree.node(DefaultStyle()), input: tree.node(DefaultStyle())}
		tree.style(r.node).Height = Fixed(3)
		tree.style(r.node).Gap = Size[Value]{Width: Fixed(2), Height: Fixed(0)}
		tree.style(r.label).Width = Fixed(15)
		tree.style(r.input).FlexGrow = 1
		tree.addChild(r.node, r.label, r.input)
		tree.addChild(form, r.node)
		rows = append(rows, r)
	}

	tree.calculate(form, 100, 50)

	for i, r := range rows {
		if got, want := tree.layout(r.node).Location.Y, float64(i*4); got != want {
			t.Errorf("row[%d].Y = %g, want %g", i, got, want)
		}
		if got := tree.layout(r.label).Size.Width; got != 15 {
			t.Errorf("row[%d] label.Width = %g, want 15", i, got)
		}
		if got := tree.layout(r.input).BorderBox(); got != NewRect(17, 0, 63, 3) {
			t.Errorf("row[%d] input = %+v, want (17, 0, 63, 3)", i, got)
		}
	}
}

func TestIntegration_MixedDirection(t *testing.T) {
	tree := newTestTree()
	root := tree.node(DefaultStyle())
	tree.style(root).Width = Fixed(100)
	tree.style(root).Height = Fixed(100)
	tree.style(root).Direction = Column

	row1 := tree.node(DefaultStyle())
	tree.style(row1).Height = Fixed(50)

	col1a := tree.node(DefaultStyle())
	tree.style(col1a).Width = Fixed(30)
	tree.style(col1a).Direction = Column

	col1b := tree.node(DefaultStyle())
	tree.style(col1b).FlexGrow = 1
	tree.style(col1b).Direction = Column

	row2 := tree.node(DefaultStyle())
	tree.style(row2).FlexGrow = 1

	tree.addChild(row1, col1a, col1b)
	tree.addChild(root, row1, row2)

	tree.calculate(root, 100, 100)

	expected := map[NodeID]Rect{
		row1:  NewRect(0, 0, 100, 50),
		col1a: NewRect(0, 0, 30, 50),
		col1b: NewRect(30, 0, 70, 50),
		row2:  NewRect(0, 50, 100, 50),
	}
	for id, want := range expected {
		if got := tree.layout(id).BorderBox(); got != want {
			t.Errorf("node %d = %+v, want %+v", id, got, want)
		}
	}
}

func TestIntegration_ImagesMaxContent(t *testing.T) {
	tree := newTestTree()
	root := tree.node(DefaultStyle())
	tree.style(root).Direction = Column
	tree.style(root).AlignItems = AlignCenter

	wide := tree.node(DefaultStyle())
	tree.nodes[wide].measure = imageMeasure(400, 300)
	tall := tree.node(DefaultStyle())
	tree.nodes[tall].measure = imageMeasure(300, 600)
	tree.addChild(root, wide, tall)

	ComputeRootLayout(tree, root, MaxContentSize())
	RoundLayout(tree, root)

	l := tree.layout(root)
	if got, want := l.Size, (Size[float64]{Width: 400, Height: 900}); got != want {
		t.Errorf("root size = %+v, want %+v", got, want)
	}
	if got, want := l.ContentSize, (Size[float64]{Width: 400, Height: 900}); got != want {
		t.Errorf("root content size = %+v, want %+v", got, want)
	}
	if got := tree.layout(wide).BorderBox(); got != NewRect(0, 0, 400, 300) {
		t.Errorf("wide = %+v, want (0, 0, 400, 300)", got)
	}
	if got := tree.layout(tall).BorderBox(); got != NewRect(50, 300, 300, 600) {
		t.Errorf("tall = %+v, want (50, 300, 300, 600)", got)
	}
}

func TestIntegration_ScrollContainer(t *testing.T) {
	tree := newTestTree()
	root := tree.node(DefaultStyle())
	tree.style(root).Width = Fixed(100)
	tree.style(root).Height = Fixed(50)
	tree.style(root).Direction = Column
	tree.style(root).Overflow = Point[Overflow]{X: OverflowVisible, Y: OverflowScroll}
	tree.style(root).ScrollbarWidth = 5

	for range 4 {
		child := tree.node(DefaultStyle())
		tree.style(child).Height = Fixed(20)
		tree.style(child).FlexShrink = 0
		tree.addChild(root, child)
	}

	tree.calculate(root, 100, 50)

	l := tree.layout(root)
	if got, want := l.ScrollbarSize, (Size[float64]{Width: 5, Height: 0}); got != want {
		t.Errorf("scrollbar size = %+v, want %+v", got, want)
	}
	if got := l.ContentSize.Height; got != 80 {
		t.Errorf("content height = %g, want 80", got)
	}
	// Children leave room for the vertical scrollbar.
	first := tree.nodes[root].children[0]
	if got := tree.layout(first).Size.Width; got != 95 {
		t.Errorf("child width = %g, want 95", got)
	}
}

func TestEdgeCase_ZeroDimensions(t *testing.T) {
	type tc struct {
		width, height float64
	}

	tests := map[string]tc{
		"zero width":  {width: 0, height: 50},
		"zero height": {width: 50, height: 0},
		"both zero":   {width: 0, height: 0},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			tree := newTestTree()
			node := tree.node(DefaultStyle())
			tree.style(node).Width = Fixed(tt.width)
			tree.style(node).Height = Fixed(tt.height)

			tree.calculate(node, 100, 100)

			if got, want := tree.layout(node).Size, (Size[float64]{Width: tt.width, Height: tt.height}); got != want {
				t.Errorf("Size = %+v, want %+v", got, want)
			}
		})
	}
}

func TestEdgeCase_ZeroSizeParent(t *testing.T) {
	tree := newTestTree()
	parent, kids := row(tree, 0, 0, 0)
	tree.style(kids[0]).FlexGrow = 1

	tree.calculate(parent, 100, 100)

	if got := tree.layout(kids[0]).Size; got != (Size[float64]{}) {
		t.Errorf("child size = %+v, want zero", got)
	}
}

func TestEdgeCase_OverflowNoShrink(t *testing.T) {
	tree := newTestTree()
	parent, kids := row(tree, 50, 10, 40, 40)
	for _, k := range kids {
		tree.style(k).FlexShrink = 0
	}

	tree.calculate(parent, 100, 100)

	if got := tree.layout(kids[1]).BorderBox(); got != NewRect(40, 0, 40, 10) {
		t.Errorf("second child = %+v, want (40, 0, 40, 10)", got)
	}
	if got := tree.layout(parent).ContentSize.Width; got != 80 {
		t.Errorf("parent content width = %g, want 80", got)
	}
}

func TestEdgeCase_DeepNesting(t *testing.T) {
	tree := newTestTree()
	root := tree.node(DefaultStyle())
	tree.style(root).Width = Fixed(100)
	tree.style(root).Height = Fixed(100)

	parent := root
	var nodes []NodeID
	for range 50 {
		child := tree.node(DefaultStyle())
		tree.style(child).FlexGrow = 1
		tree.style(child).Padding = Edges[Value]{Left: Fixed(1), Top: Fixed(0), Right: Fixed(0), Bottom: Fixed(0)}
		tree.addChild(parent, child)
		nodes = append(nodes, child)
		parent = child
	}

	tree.calculate(root, 100, 100)

	for i, id := range nodes {
		l := tree.layout(id)
		if got, want := l.AbsoluteRect(), NewRect(float64(i), 0, float64(100-i), 100); got != want {
			t.Fatalf("depth %d = %+v, want %+v", i, got, want)
		}
	}
}
