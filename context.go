package boxlayout

// TextContext marks a leaf as text. Its size comes from wrapping Content
// with the tree's font face.
type TextContext struct {
	Content string
	Flags   WrapFlags
}

// ImageContext marks a leaf as an image with an intrinsic size. When one
// dimension is known the other is scaled to keep the aspect ratio.
type ImageContext struct {
	Width  float64
	Height float64
}

func (c ImageContext) measure(known Size[Opt]) Size[float64] {
	switch {
	case known.Width.Valid && known.Height.Valid:
		return Size[float64]{Width: known.Width.Value, Height: known.Height.Value}
	case known.Width.Valid && c.Width > 0:
		return Size[float64]{Width: known.Width.Value, Height: known.Width.Value * c.Height / c.Width}
	case known.Height.Valid && c.Height > 0:
		return Size[float64]{Width: known.Height.Value * c.Width / c.Height, Height: known.Height.Value}
	}
	return Size[float64]{Width: known.Width.Or(c.Width), Height: known.Height.Or(c.Height)}
}
