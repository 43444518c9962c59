package layout

import "math"

// RoundLayout converts the unrounded layout of the tree rooted at root into
// pixel-aligned final layout.
//
// Each node's root-space position is its parent's already rounded
// root-space position plus its own unrounded offset, rounded once. Sizes
// are derived from rounded edges, round(pos+size) - round(pos), so adjacent
// siblings never open a gap or overlap through rounding. Border,
// padding, margin and scrollbar sizes are rounded on their own.
//
// The pass reads only unrounded layout, so running it twice yields the same
// result.
func RoundLayout(tree RoundTree, root NodeID) {
	roundNode(tree, root, Point[float64]{})
}

func roundNode(tree RoundTree, id NodeID, parentRoot Point[float64]) {
	u := tree.UnroundedLayout(id)
	absX := parentRoot.X + u.Location.X
	absY := parentRoot.Y + u.Location.Y
	x, y := math.Round(absX), math.Round(absY)

	l := Layout{
		Order:        u.Order,
		RootLocation: Point[float64]{X: x, Y: y},
		Location:     Point[float64]{X: x - parentRoot.X, Y: y - parentRoot.Y},
		Size: Size[float64]{
			Width:  math.Round(absX+u.Size.Width) - x,
			Height: math.Round(absY+u.Size.Height) - y,
		},
		ContentSize: Size[float64]{
			Width:  math.Round(absX+u.ContentSize.Width) - x,
			Height: math.Round(absY+u.ContentSize.Height) - y,
		},
		ScrollbarSize: MapSize(u.ScrollbarSize, math.Round),
		Border:        MapEdges(u.Border, math.Round),
		Padding:       MapEdges(u.Padding, math.Round),
		Margin:        MapEdges(u.Margin, math.Round),
	}
	tree.SetFinalLayout(id, l)

	for child := range tree.ChildIDs(id) {
		roundNode(tree, child, l.RootLocation)
	}
}

// NoRoundLayout copies unrounded layout to final layout unchanged apart from
// accumulating RootLocation, for hosts that render at sub-pixel precision.
func NoRoundLayout(tree RoundTree, root NodeID) {
	copyNode(tree, root, Point[float64]{})
}

func copyNode(tree RoundTree, id NodeID, parentRoot Point[float64]) {
	l := tree.UnroundedLayout(id)
	l.RootLocation = Point[float64]{X: parentRoot.X + l.Location.X, Y: parentRoot.Y + l.Location.Y}
	tree.SetFinalLayout(id, l)
	for child := range tree.ChildIDs(id) {
		copyNode(tree, child, l.RootLocation)
	}
}
