package layout

import (
	"fmt"
	"io"
	"strings"
)

// PrintTree writes a human-readable dump of the final layout of the tree
// rooted at root. The format is for people and may change.
func PrintTree(tree PrintableTree, root NodeID, w io.Writer) error {
	var b strings.Builder
	b.WriteString("TREE\n")
	printNode(tree, root, &b, false, "")
	_, err := io.WriteString(w, b.String())
	return err
}

func printNode(tree PrintableTree, id NodeID, b *strings.Builder, hasSibling bool, prefix string) {
	l := tree.FinalLayout(id)
	fork := "└── "
	if hasSibling {
		fork = "├── "
	}
	fmt.Fprintf(b, "%s%s %s [x: %-4g y: %-4g w: %-4g h: %-4g content_w: %-4g content_h: %-4g border: %s, padding: %s] (#%d)\n",
		prefix, fork, tree.DebugLabel(id),
		l.Location.X, l.Location.Y, l.Size.Width, l.Size.Height,
		l.ContentSize.Width, l.ContentSize.Height,
		formatEdges(l.Border), formatEdges(l.Padding), id)

	childPrefix := prefix + "    "
	if hasSibling {
		childPrefix = prefix + "│   "
	}
	n := tree.ChildCount(id)
	i := 0
	for child := range tree.ChildIDs(id) {
		i++
		printNode(tree, child, b, i < n, childPrefix)
	}
}

func formatEdges(e Edges[float64]) string {
	return fmt.Sprintf("l:%g r:%g t:%g b:%g", e.Left, e.Right, e.Top, e.Bottom)
}
