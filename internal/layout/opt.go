package layout

import "strconv"

// Opt is an optional float64. The zero value is absent.
//
// Known dimensions, resolved style sizes and baselines are all optional: an
// absent value means "not yet determined" rather than zero.
type Opt struct {
	Value float64
	Valid bool
}

// None is the absent Opt.
var None = Opt{}

// Some returns a present Opt holding v.
func Some(v float64) Opt {
	return Opt{Value: v, Valid: true}
}

// Get returns the value and whether it is present.
func (o Opt) Get() (float64, bool) {
	return o.Value, o.Valid
}

// Or returns the value if present, else d.
func (o Opt) Or(d float64) float64 {
	if o.Valid {
		return o.Value
	}
	return d
}

// OrElse returns o if present, else other.
func (o Opt) OrElse(other Opt) Opt {
	if o.Valid {
		return o
	}
	return other
}

// Filter returns o when keep is true, else None.
func (o Opt) Filter(keep bool) Opt {
	if keep {
		return o
	}
	return None
}

// Equal reports whether both are absent or both hold the same value.
func (o Opt) Equal(other Opt) bool {
	if o.Valid != other.Valid {
		return false
	}
	return !o.Valid || o.Value == other.Value
}

// EqualFloat reports whether o is present and equal to v.
func (o Opt) EqualFloat(v float64) bool {
	return o.Valid && o.Value == v
}

// Add adds v when present.
func (o Opt) Add(v float64) Opt {
	if o.Valid {
		o.Value += v
	}
	return o
}

// Sub subtracts v when present.
func (o Opt) Sub(v float64) Opt {
	if o.Valid {
		o.Value -= v
	}
	return o
}

// MaybeAdd adds other when both are present. An absent right-hand side
// leaves o unchanged.
func (o Opt) MaybeAdd(other Opt) Opt {
	if o.Valid && other.Valid {
		return Some(o.Value + other.Value)
	}
	return o
}

// MaybeSub subtracts other when both are present.
func (o Opt) MaybeSub(other Opt) Opt {
	if o.Valid && other.Valid {
		return Some(o.Value - other.Value)
	}
	return o
}

// MaybeMin returns the smaller value when both are present.
func (o Opt) MaybeMin(other Opt) Opt {
	if o.Valid && other.Valid {
		return Some(min(o.Value, other.Value))
	}
	return o
}

// MaybeMax returns the larger value when both are present.
func (o Opt) MaybeMax(other Opt) Opt {
	if o.Valid && other.Valid {
		return Some(max(o.Value, other.Value))
	}
	return o
}

// MaybeClamp clamps o between lo and hi, ignoring absent bounds. When lo > hi,
// lo wins.
func (o Opt) MaybeClamp(lo, hi Opt) Opt {
	if !o.Valid {
		return o
	}
	return Some(maybeClamp(o.Value, lo, hi))
}

// String formats the value or "none".
func (o Opt) String() string {
	if !o.Valid {
		return "none"
	}
	return strconv.FormatFloat(o.Value, 'g', -1, 64)
}

func maybeClamp(v float64, lo, hi Opt) float64 {
	if hi.Valid {
		v = min(v, hi.Value)
	}
	if lo.Valid {
		v = max(v, lo.Value)
	}
	return v
}

func maybeMin(v float64, o Opt) float64 {
	if o.Valid {
		return min(v, o.Value)
	}
	return v
}

func maybeMax(v float64, o Opt) float64 {
	if o.Valid {
		return max(v, o.Value)
	}
	return v
}

func maybeSub(v float64, o Opt) float64 {
	if o.Valid {
		return v - o.Value
	}
	return v
}

// NoSize is a Size with both components absent.
var NoSize = Size[Opt]{}

// SomeSize wraps a concrete size.
func SomeSize(s Size[float64]) Size[Opt] {
	return Size[Opt]{Width: Some(s.Width), Height: Some(s.Height)}
}

func orSize(a, b Size[Opt]) Size[Opt] {
	return Size[Opt]{Width: a.Width.OrElse(b.Width), Height: a.Height.OrElse(b.Height)}
}

func unwrapSizeOr(s Size[Opt], d Size[float64]) Size[float64] {
	return Size[float64]{Width: s.Width.Or(d.Width), Height: s.Height.Or(d.Height)}
}

func maybeAddSize(s Size[Opt], add Size[float64]) Size[Opt] {
	return Size[Opt]{Width: s.Width.Add(add.Width), Height: s.Height.Add(add.Height)}
}

func maybeSubSize(s Size[Opt], sub Size[float64]) Size[Opt] {
	return Size[Opt]{Width: s.Width.Sub(sub.Width), Height: s.Height.Sub(sub.Height)}
}

func maybeClampSize(s Size[Opt], lo, hi Size[Opt]) Size[Opt] {
	return Size[Opt]{Width: s.Width.MaybeClamp(lo.Width, hi.Width), Height: s.Height.MaybeClamp(lo.Height, hi.Height)}
}

func maybeMaxSize(s Size[Opt], floor Size[float64]) Size[Opt] {
	return Size[Opt]{Width: s.Width.MaybeMax(Some(floor.Width)), Height: s.Height.MaybeMax(Some(floor.Height))}
}

func clampSize(s Size[float64], lo, hi Size[Opt]) Size[float64] {
	return Size[float64]{Width: maybeClamp(s.Width, lo.Width, hi.Width), Height: maybeClamp(s.Height, lo.Height, hi.Height)}
}

func floorSize(s Size[float64], floor Size[float64]) Size[float64] {
	return Size[float64]{Width: max(s.Width, floor.Width), Height: max(s.Height, floor.Height)}
}

// applyAspectRatio fills in a missing dimension from the other one using
// ratio (width / height).
func applyAspectRatio(s Size[Opt], ratio Opt) Size[Opt] {
	if !ratio.Valid {
		return s
	}
	switch {
	case s.Width.Valid && !s.Height.Valid:
		s.Height = Some(s.Width.Value / ratio.Value)
	case s.Height.Valid && !s.Width.Valid:
		s.Width = Some(s.Height.Value * ratio.Value)
	}
	return s
}
