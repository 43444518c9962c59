// Package render draws computed layout as a PNG for inspecting trees by eye.
package render

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/grindlemire/go-boxlayout"
	"github.com/grindlemire/go-boxlayout/internal/text"
)

// Options controls the output image.
type Options struct {
	Scale      float64 // pixels per layout unit
	Background string  // #rgb or #rrggbb
	Labels     bool    // draw each node's label at its top-left
	Face       font.Face
}

// BorderColor fills the border area of every box.
var BorderColor = color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}

// palette tints boxes by depth.
var palette = []color.NRGBA{
	{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff},
	{R: 0xff, G: 0x7f, B: 0x0e, A: 0xff},
	{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff},
	{R: 0xd6, G: 0x27, B: 0x28, A: 0xff},
	{R: 0x94, G: 0x67, B: 0xbd, A: 0xff},
	{R: 0x8c, G: 0x56, B: 0x4b, A: 0xff},
}

// Renderer paints the final layout of a tree onto a gg context.
type Renderer struct {
	context *gg.Context
	tree    *boxlayout.Tree
	opts    Options
	text    *text.Measurer
}

// NewRenderer sizes a canvas to the root's border box and clears it to the
// background color.
func NewRenderer(tree *boxlayout.Tree, root boxlayout.NodeID, opts Options) (*Renderer, error) {
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	if opts.Face == nil {
		opts.Face = basicfont.Face7x13
	}
	bg, err := ParseHexColor(opts.Background)
	if err != nil {
		return nil, err
	}
	l, err := tree.Layout(root)
	if err != nil {
		return nil, err
	}

	w := max(1, int(math.Ceil(l.Size.Width*opts.Scale)))
	h := max(1, int(math.Ceil(l.Size.Height*opts.Scale)))
	dc := gg.NewContext(w, h)
	dc.SetColor(bg)
	dc.Clear()
	dc.Scale(opts.Scale, opts.Scale)
	dc.SetFontFace(opts.Face)

	return &Renderer{context: dc, tree: tree, opts: opts, text: text.NewMeasurer(opts.Face)}, nil
}

// Render paints root and its subtree. Siblings paint in layout order, each
// parent before its children.
func (r *Renderer) Render(root boxlayout.NodeID) error {
	l, err := r.tree.Layout(root)
	if err != nil {
		return err
	}
	// The canvas origin is the root's corner.
	return r.drawNode(root, -l.RootLocation.X, -l.RootLocation.Y, 0)
}

func (r *Renderer) drawNode(id boxlayout.NodeID, dx, dy float64, depth int) error {
	l, err := r.tree.Layout(id)
	if err != nil {
		return err
	}
	style, err := r.tree.Style(id)
	if err != nil {
		return err
	}
	if style.Display == boxlayout.DisplayNone {
		return nil
	}

	box := l.AbsoluteRect().Translate(dx, dy)
	c := palette[depth%len(palette)]
	dc := r.context

	dc.DrawRectangle(box.X, box.Y, box.Width, box.Height)
	dc.SetRGBA255(int(c.R), int(c.G), int(c.B), 40)
	dc.Fill()

	r.drawBorder(box, l.Border)

	content := l.ContentRect().Translate(box.X, box.Y)
	if ctx, _ := r.tree.Context(id); ctx != nil {
		if tc, ok := ctx.(boxlayout.TextContext); ok {
			r.drawText(tc, content)
		}
	}

	if r.opts.Labels {
		if label, _ := r.tree.Label(id); label != "" {
			dc.SetColor(c)
			dc.DrawString(label, box.X+2, box.Y+r.text.Ascent()+1)
		}
	}

	children, err := r.tree.Children(id)
	if err != nil {
		return err
	}
	order := make(map[boxlayout.NodeID]uint32, len(children))
	for _, child := range children {
		cl, err := r.tree.Layout(child)
		if err != nil {
			return err
		}
		order[child] = cl.Order
	}
	slices.SortStableFunc(children, func(a, b boxlayout.NodeID) int {
		return int(order[a]) - int(order[b])
	})
	for _, child := range children {
		if err := r.drawNode(child, dx, dy, depth+1); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) drawBorder(box boxlayout.Rect, b boxlayout.Edges[float64]) {
	dc := r.context
	dc.SetColor(BorderColor)
	if b.Top > 0 {
		dc.DrawRectangle(box.X, box.Y, box.Width, b.Top)
	}
	if b.Bottom > 0 {
		dc.DrawRectangle(box.X, box.Bottom()-b.Bottom, box.Width, b.Bottom)
	}
	if b.Left > 0 {
		dc.DrawRectangle(box.X, box.Y+b.Top, b.Left, box.Height-b.Top-b.Bottom)
	}
	if b.Right > 0 {
		dc.DrawRectangle(box.Right()-b.Right, box.Y+b.Top, b.Right, box.Height-b.Top-b.Bottom)
	}
	dc.Fill()
}

// drawText wraps content to the content box the same way it was measured.
func (r *Renderer) drawText(tc boxlayout.TextContext, content boxlayout.Rect) {
	dc := r.context
	dc.SetColor(color.Black)
	lh := r.text.LineHeight()
	y := content.Y + r.text.Ascent()
	for _, row := range r.text.Wrap(tc.Content, content.Width, tc.Flags) {
		dc.DrawString(row, content.X, y)
		y += lh
	}
}

// Image returns the rendered image.
func (r *Renderer) Image() image.Image {
	return r.context.Image()
}

// SavePNG writes the rendered image to filename.
func (r *Renderer) SavePNG(filename string) error {
	return r.context.SavePNG(filename)
}

// ParseHexColor parses #rgb or #rrggbb. The empty string is white.
func ParseHexColor(s string) (color.NRGBA, error) {
	if s == "" {
		return color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, nil
	}
	hex, ok := strings.CutPrefix(s, "#")
	if !ok || (len(hex) != 3 && len(hex) != 6) {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: want #rgb or #rrggbb", s)
	}
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}
