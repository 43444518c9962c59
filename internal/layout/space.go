package layout

import (
	"math"
	"strconv"
)

// SpaceKind discriminates AvailableSpace.
type SpaceKind uint8

const (
	SpaceDefinite   SpaceKind = iota // A concrete budget
	SpaceMinContent                  // Size to the smallest size that avoids overflow
	SpaceMaxContent                  // Size to the largest useful size
)

// AvailableSpace is the size budget offered to a node along one axis.
type AvailableSpace struct {
	kind  SpaceKind
	value float64
}

// Definite returns a definite amount of available space.
func Definite(v float64) AvailableSpace {
	return AvailableSpace{kind: SpaceDefinite, value: v}
}

// MinContent returns min-content available space.
func MinContent() AvailableSpace {
	return AvailableSpace{kind: SpaceMinContent}
}

// MaxContent returns max-content available space.
func MaxContent() AvailableSpace {
	return AvailableSpace{kind: SpaceMaxContent}
}

// FromOpt returns Definite(o) when present, else MaxContent.
func FromOpt(o Opt) AvailableSpace {
	if o.Valid {
		return Definite(o.Value)
	}
	return MaxContent()
}

// Kind returns the variant.
func (a AvailableSpace) Kind() SpaceKind { return a.kind }

// Value returns the definite amount, or 0 for the content-based variants.
func (a AvailableSpace) Value() float64 {
	if a.kind == SpaceDefinite {
		return a.value
	}
	return 0
}

// IsDefinite reports whether a holds a concrete amount.
func (a AvailableSpace) IsDefinite() bool { return a.kind == SpaceDefinite }

// IntoOption returns the definite amount or None.
func (a AvailableSpace) IntoOption() Opt {
	if a.kind == SpaceDefinite {
		return Some(a.value)
	}
	return None
}

// UnwrapOr returns the definite amount or d.
func (a AvailableSpace) UnwrapOr(d float64) float64 {
	if a.kind == SpaceDefinite {
		return a.value
	}
	return d
}

// OrElse returns a if definite, else other.
func (a AvailableSpace) OrElse(other AvailableSpace) AvailableSpace {
	if a.kind == SpaceDefinite {
		return a
	}
	return other
}

// MaybeSet replaces a with Definite(o) when o is present.
func (a AvailableSpace) MaybeSet(o Opt) AvailableSpace {
	if o.Valid {
		return Definite(o.Value)
	}
	return a
}

// MapDefinite applies fn to a definite amount.
func (a AvailableSpace) MapDefinite(fn func(float64) float64) AvailableSpace {
	if a.kind == SpaceDefinite {
		return Definite(fn(a.value))
	}
	return a
}

// Sub subtracts v from a definite amount.
func (a AvailableSpace) Sub(v float64) AvailableSpace {
	return a.MapDefinite(func(x float64) float64 { return x - v })
}

// Add adds v to a definite amount.
func (a AvailableSpace) Add(v float64) AvailableSpace {
	return a.MapDefinite(func(x float64) float64 { return x + v })
}

// MaybeSub subtracts o from a definite amount when o is present.
func (a AvailableSpace) MaybeSub(o Opt) AvailableSpace {
	if !o.Valid {
		return a
	}
	return a.Sub(o.Value)
}

// MaybeMin caps a definite amount at o when o is present.
func (a AvailableSpace) MaybeMin(o Opt) AvailableSpace {
	return a.MapDefinite(func(x float64) float64 { return maybeMin(x, o) })
}

// MaybeMax floors a definite amount at o when o is present.
func (a AvailableSpace) MaybeMax(o Opt) AvailableSpace {
	return a.MapDefinite(func(x float64) float64 { return maybeMax(x, o) })
}

// MaybeClamp clamps a definite amount.
func (a AvailableSpace) MaybeClamp(lo, hi Opt) AvailableSpace {
	return a.MapDefinite(func(x float64) float64 { return maybeClamp(x, lo, hi) })
}

// ComputeFreeSpace returns the space left over once used is placed. For
// MaxContent there is unlimited room; for MinContent there is none.
func (a AvailableSpace) ComputeFreeSpace(used float64) float64 {
	switch a.kind {
	case SpaceMaxContent:
		return math.Inf(1)
	case SpaceMinContent:
		return 0
	default:
		return a.value - used
	}
}

const roughEpsilon = 1e-4

// IsRoughlyEqual reports whether a and b are the same variant and, for
// definite space, numerically equal within tolerance.
func (a AvailableSpace) IsRoughlyEqual(b AvailableSpace) bool {
	if a.kind != b.kind {
		return false
	}
	if a.kind != SpaceDefinite {
		return true
	}
	return math.Abs(a.value-b.value) < roughEpsilon
}

// String returns a compact description.
func (a AvailableSpace) String() string {
	switch a.kind {
	case SpaceMinContent:
		return "min-content"
	case SpaceMaxContent:
		return "max-content"
	default:
		return strconv.FormatFloat(a.value, 'g', -1, 64)
	}
}

// DefiniteSize returns definite available space on both axes.
func DefiniteSize(w, h float64) Size[AvailableSpace] {
	return Size[AvailableSpace]{Width: Definite(w), Height: Definite(h)}
}

// MaxContentSize returns max-content available space on both axes.
func MaxContentSize() Size[AvailableSpace] {
	return Size[AvailableSpace]{Width: MaxContent(), Height: MaxContent()}
}

// MinContentSize returns min-content available space on both axes.
func MinContentSize() Size[AvailableSpace] {
	return Size[AvailableSpace]{Width: MinContent(), Height: MinContent()}
}

func spaceFromOptSize(s Size[Opt]) Size[AvailableSpace] {
	return Size[AvailableSpace]{Width: FromOpt(s.Width), Height: FromOpt(s.Height)}
}

func spaceIntoOptSize(s Size[AvailableSpace]) Size[Opt] {
	return Size[Opt]{Width: s.Width.IntoOption(), Height: s.Height.IntoOption()}
}

func maybeSetSpace(s Size[AvailableSpace], o Size[Opt]) Size[AvailableSpace] {
	return Size[AvailableSpace]{Width: s.Width.MaybeSet(o.Width), Height: s.Height.MaybeSet(o.Height)}
}
