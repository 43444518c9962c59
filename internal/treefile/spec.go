package treefile

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/grindlemire/go-boxlayout"
)

// File is a parsed tree description.
type File struct {
	Root Node `yaml:"root"`
}

// Node describes one box and its subtree. A node with Text or Image is a
// leaf measured by the tree.
type Node struct {
	Label    string     `yaml:"label"`
	Style    StyleSpec  `yaml:"style"`
	Text     *string    `yaml:"text"`
	Wrap     []string   `yaml:"wrap"` // allow-newline, break-words; absent means allow-newline
	Image    *ImageSpec `yaml:"image"`
	Children []Node     `yaml:"children"`
}

// ImageSpec is an intrinsic image size.
type ImageSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// StyleSpec mirrors boxlayout.Style. Unset fields keep their defaults.
type StyleSpec struct {
	Display   string        `yaml:"display"`
	BoxSizing string        `yaml:"box_sizing"`
	Position  string        `yaml:"position"`
	Overflow  *OverflowSpec `yaml:"overflow"`
	Scrollbar *float64      `yaml:"scrollbar_width"`
	Inset     *EdgesSpec    `yaml:"inset"`

	Width       *Length  `yaml:"width"`
	Height      *Length  `yaml:"height"`
	MinWidth    *Length  `yaml:"min_width"`
	MinHeight   *Length  `yaml:"min_height"`
	MaxWidth    *Length  `yaml:"max_width"`
	MaxHeight   *Length  `yaml:"max_height"`
	AspectRatio *float64 `yaml:"aspect_ratio"`

	Margin  *EdgesSpec `yaml:"margin"`
	Padding *EdgesSpec `yaml:"padding"`
	Border  *EdgesSpec `yaml:"border"`

	Direction      string   `yaml:"direction"`
	Wrap           string   `yaml:"wrap"`
	JustifyContent string   `yaml:"justify_content"`
	AlignItems     string   `yaml:"align_items"`
	AlignContent   string   `yaml:"align_content"`
	Gap            *GapSpec `yaml:"gap"`

	FlexBasis  *Length  `yaml:"flex_basis"`
	FlexGrow   *float64 `yaml:"flex_grow"`
	FlexShrink *float64 `yaml:"flex_shrink"`
	AlignSelf  string   `yaml:"align_self"`
	Order      int      `yaml:"order"`
}

// Length is a scalar length: a number, "12px", "50%" or "auto".
type Length boxlayout.Value

func (l *Length) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: length must be a scalar", n.Line)
	}
	v, err := parseLength(n.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", n.Line, err)
	}
	*l = Length(v)
	return nil
}

func parseLength(s string) (boxlayout.Value, error) {
	s = strings.TrimSpace(s)
	switch {
	case s == "auto":
		return boxlayout.Auto(), nil
	case strings.HasSuffix(s, "%"):
		p, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
		if err != nil {
			return boxlayout.Value{}, fmt.Errorf("invalid percentage %q", s)
		}
		return boxlayout.Percent(p), nil
	default:
		f, err := strconv.ParseFloat(strings.TrimSuffix(s, "px"), 64)
		if err != nil {
			return boxlayout.Value{}, fmt.Errorf("invalid length %q", s)
		}
		return boxlayout.Fixed(f), nil
	}
}

// EdgesSpec accepts a single length, a CSS shorthand list of one to four
// lengths, or a top/right/bottom/left mapping.
type EdgesSpec struct {
	Top, Right, Bottom, Left *Length
}

func (e *EdgesSpec) UnmarshalYAML(n *yaml.Node) error {
	switch n.Kind {
	case yaml.ScalarNode:
		var l Length
		if err := n.Decode(&l); err != nil {
			return err
		}
		*e = EdgesSpec{&l, &l, &l, &l}
	case yaml.SequenceNode:
		var ls []Length
		if err := n.Decode(&ls); err != nil {
			return err
		}
		switch len(ls) {
		case 1:
			*e = EdgesSpec{&ls[0], &ls[0], &ls[0], &ls[0]}
		case 2:
			*e = EdgesSpec{&ls[0], &ls[1], &ls[0], &ls[1]}
		case 3:
			*e = EdgesSpec{&ls[0], &ls[1], &ls[2], &ls[1]}
		case 4:
			*e = EdgesSpec{&ls[0], &ls[1], &ls[2], &ls[3]}
		default:
			return fmt.Errorf("line %d: edges take 1 to 4 lengths, got %d", n.Line, len(ls))
		}
	case yaml.MappingNode:
		for i := 0; i < len(n.Content); i += 2 {
			key := n.Content[i]
			var l Length
			if err := n.Content[i+1].Decode(&l); err != nil {
				return err
			}
			switch key.Value {
			case "top":
				e.Top = &l
			case "right":
				e.Right = &l
			case "bottom":
				e.Bottom = &l
			case "left":
				e.Left = &l
			default:
				return fmt.Errorf("line %d: unknown edge %q", key.Line, key.Value)
			}
		}
	default:
		return fmt.Errorf("line %d: invalid edges", n.Line)
	}
	return nil
}

// edges fills unset sides with def.
func (e *EdgesSpec) edges(def boxlayout.Value) boxlayout.Edges[boxlayout.Value] {
	side := func(l *Length) boxlayout.Value {
		if l == nil {
			return def
		}
		return boxlayout.Value(*l)
	}
	return boxlayout.EdgeTRBL(side(e.Top), side(e.Right), side(e.Bottom), side(e.Left))
}

// GapSpec accepts one length for both gaps or a row/column mapping.
type GapSpec struct {
	Row    *Length `yaml:"row"`
	Column *Length `yaml:"column"`
}

func (g *GapSpec) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind == yaml.ScalarNode {
		var l Length
		if err := n.Decode(&l); err != nil {
			return err
		}
		*g = GapSpec{Row: &l, Column: &l}
		return nil
	}
	type plain GapSpec
	return n.Decode((*plain)(g))
}

// OverflowSpec accepts one keyword for both axes or an x/y mapping.
type OverflowSpec struct {
	X string `yaml:"x"`
	Y string `yaml:"y"`
}

func (o *OverflowSpec) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind == yaml.ScalarNode {
		*o = OverflowSpec{X: n.Value, Y: n.Value}
		return nil
	}
	type plain OverflowSpec
	return n.Decode((*plain)(o))
}
