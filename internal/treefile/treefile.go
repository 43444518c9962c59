// Package treefile reads YAML descriptions of styled box trees and builds
// them into a boxlayout.Tree.
//
// A file has a single root node:
//
//	root:
//	  label: page
//	  style: {width: 800, direction: column, padding: [10, 20]}
//	  children:
//	    - text: "hello world"
//	    - image: {width: 200, height: 100}
package treefile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/grindlemire/go-boxlayout"
)

// Parse decodes a tree description. Unknown keys are errors.
func Parse(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty tree file")
		}
		return nil, fmt.Errorf("failed to parse tree file: %w", err)
	}
	return &f, nil
}

// ParseFile reads and decodes the tree description at path.
func ParseFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tree file: %w", err)
	}
	f, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Entry is a built node with its path from the root, such as
// "root/children[1]".
type Entry struct {
	Path  string
	Label string
	ID    boxlayout.NodeID
}

// Built is the result of Build. Nodes are in pre-order.
type Built struct {
	Root  boxlayout.NodeID
	Nodes []Entry
}

// Build creates the nodes of f in tree.
func Build(tree *boxlayout.Tree, f *File) (*Built, error) {
	b := &Built{}
	root, err := b.build(tree, &f.Root, "root")
	if err != nil {
		return nil, err
	}
	b.Root = root
	return b, nil
}

func (b *Built) build(tree *boxlayout.Tree, n *Node, path string) (boxlayout.NodeID, error) {
	style, err := n.Style.Style()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", path, err)
	}
	if n.Text != nil && n.Image != nil {
		return 0, fmt.Errorf("%s: a node cannot have both text and image", path)
	}
	if (n.Text != nil || n.Image != nil) && len(n.Children) > 0 {
		return 0, fmt.Errorf("%s: text and image nodes cannot have children", path)
	}

	var id boxlayout.NodeID
	switch {
	case n.Text != nil:
		flags, err := parseWrap(n.Wrap)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", path, err)
		}
		id = tree.NewText(style, *n.Text, flags)
	case n.Image != nil:
		id = tree.NewLeafWithContext(style, boxlayout.ImageContext{Width: n.Image.Width, Height: n.Image.Height})
	default:
		id = tree.NewLeaf(style)
	}
	if n.Label != "" {
		if err := tree.SetLabel(id, n.Label); err != nil {
			return 0, err
		}
	}
	b.Nodes = append(b.Nodes, Entry{Path: path, Label: n.Label, ID: id})

	for i := range n.Children {
		child, err := b.build(tree, &n.Children[i], fmt.Sprintf("%s/children[%d]", path, i))
		if err != nil {
			return 0, err
		}
		if err := tree.AddChild(id, child); err != nil {
			return 0, err
		}
	}
	return id, nil
}

func parseWrap(names []string) (boxlayout.WrapFlags, error) {
	if names == nil {
		return boxlayout.AllowNewLine, nil
	}
	var flags boxlayout.WrapFlags
	for _, name := range names {
		switch name {
		case "allow-newline":
			flags |= boxlayout.AllowNewLine
		case "break-words":
			flags |= boxlayout.BreakWords
		default:
			return 0, fmt.Errorf("unknown wrap flag %q", name)
		}
	}
	return flags, nil
}

// Box is the final geometry of a built node in root coordinates.
type Box struct {
	Path   string  `yaml:"path"`
	Label  string  `yaml:"label,omitempty"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Boxes reads the final layout of every built node.
func (b *Built) Boxes(tree *boxlayout.Tree) ([]Box, error) {
	boxes := make([]Box, 0, len(b.Nodes))
	for _, e := range b.Nodes {
		l, err := tree.Layout(e.ID)
		if err != nil {
			return nil, err
		}
		r := l.AbsoluteRect()
		boxes = append(boxes, Box{Path: e.Path, Label: e.Label, X: r.X, Y: r.Y, Width: r.Width, Height: r.Height})
	}
	return boxes, nil
}

// WriteBoxes writes boxes as a YAML list.
func WriteBoxes(w io.Writer, boxes []Box) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(boxes); err != nil {
		return fmt.Errorf("failed to encode boxes: %w", err)
	}
	return enc.Close()
}
