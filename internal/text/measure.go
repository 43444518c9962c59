package text

import (
	"math"

	"github.com/grindlemire/go-boxlayout/internal/layout"
)

// Measure returns the size of content laid out under known dimensions and
// available space, both for the content box.
//
// A known width is the wrap width. Otherwise definite space wraps at its
// value, max-content never wraps and min-content wraps at the widest
// unbreakable run.
func (m *Measurer) Measure(content string, flags WrapFlags, known layout.Size[layout.Opt], avail layout.Size[layout.AvailableSpace]) layout.Size[float64] {
	if known.Width.Valid && known.Height.Valid {
		return layout.Size[float64]{Width: known.Width.Value, Height: known.Height.Value}
	}

	var width float64
	switch {
	case known.Width.Valid:
		width = known.Width.Value
	case avail.Width.Kind() == layout.SpaceMinContent:
		width = m.longestUnbreakable(content, flags)
	case avail.Width.Kind() == layout.SpaceMaxContent:
		width = math.Inf(1)
	default:
		width = avail.Width.Value()
	}

	rows := m.Wrap(content, width, flags)
	widest := 0.0
	for _, row := range rows {
		widest = max(widest, m.Width(row))
	}

	return layout.Size[float64]{
		Width:  known.Width.Or(widest),
		Height: known.Height.Or(float64(len(rows)) * m.LineHeight()),
	}
}

// MeasureFunc adapts Measure to a leaf measure function for content.
func (m *Measurer) MeasureFunc(content string, flags WrapFlags) layout.MeasureFunc {
	return func(known layout.Size[layout.Opt], avail layout.Size[layout.AvailableSpace]) layout.Size[float64] {
		return m.Measure(content, flags, known, avail)
	}
}
