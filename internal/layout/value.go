package layout

import "strconv"

// Unit specifies how a Value is interpreted.
type Unit uint8

const (
	UnitAuto    Unit = iota // Determined by the algorithm (content, flex, auto margins)
	UnitFixed               // Absolute length
	UnitPercent             // Percentage of a parent-supplied reference size
	UnitCalc                // Host expression resolved through Calc(id, basis)
)

// Value represents a length that can be fixed, percentage, calc or auto.
type Value struct {
	Amount float64
	Unit   Unit
	// ID identifies the host expression for UnitCalc values.
	ID uint64
}

// CalcFunc resolves a host calc expression against a basis.
type CalcFunc func(id uint64, basis float64) float64

// Auto returns a Value that should be computed by the algorithm.
func Auto() Value {
	return Value{Unit: UnitAuto}
}

// Fixed returns a Value representing an absolute length.
func Fixed(n float64) Value {
	return Value{Amount: n, Unit: UnitFixed}
}

// Percent returns a Value representing a percentage of the reference size.
// The value is on a 0-100 scale (50.0 = 50%).
func Percent(p float64) Value {
	return Value{Amount: p, Unit: UnitPercent}
}

// Calc returns a Value whose length is computed by the host for id.
func Calc(id uint64) Value {
	return Value{Unit: UnitCalc, ID: id}
}

// IsAuto returns true if this value should be computed by the algorithm.
func (v Value) IsAuto() bool {
	return v.Unit == UnitAuto
}

// ResolveToOption resolves v against ref. Auto resolves to None, as do
// percentages and calc expressions when ref is absent.
func (v Value) ResolveToOption(ref Opt, calc CalcFunc) Opt {
	switch v.Unit {
	case UnitFixed:
		return Some(v.Amount)
	case UnitPercent:
		if !ref.Valid {
			return None
		}
		return Some(ref.Value * v.Amount / 100.0)
	case UnitCalc:
		if !ref.Valid {
			return None
		}
		if calc == nil {
			return Some(0)
		}
		return Some(calc(v.ID, ref.Value))
	default:
		return None
	}
}

// ResolveOrZero resolves v against ref, treating anything unresolvable as 0.
func (v Value) ResolveOrZero(ref Opt, calc CalcFunc) float64 {
	return v.ResolveToOption(ref, calc).Or(0)
}

// String formats the value the way it is written in tree files.
func (v Value) String() string {
	switch v.Unit {
	case UnitFixed:
		return strconv.FormatFloat(v.Amount, 'g', -1, 64)
	case UnitPercent:
		return strconv.FormatFloat(v.Amount, 'g', -1, 64) + "%"
	case UnitCalc:
		return "calc(" + strconv.FormatUint(v.ID, 10) + ")"
	default:
		return "auto"
	}
}

func resolveSize(s Size[Value], ref Size[Opt], calc CalcFunc) Size[Opt] {
	return Size[Opt]{
		Width:  s.Width.ResolveToOption(ref.Width, calc),
		Height: s.Height.ResolveToOption(ref.Height, calc),
	}
}

// resolveEdgesOrZero resolves all four sides against a single basis. CSS
// resolves percentage margins, padding and borders against the inline size
// of the containing block for every side.
func resolveEdgesOrZero(e Edges[Value], basis Opt, calc CalcFunc) Edges[float64] {
	return MapEdges(e, func(v Value) float64 { return v.ResolveOrZero(basis, calc) })
}

func resolveEdgesToOption(e Edges[Value], basis Opt, calc CalcFunc) Edges[Opt] {
	return MapEdges(e, func(v Value) Opt { return v.ResolveToOption(basis, calc) })
}

func resolveInset(e Edges[Value], ref Size[Opt], calc CalcFunc) Edges[Opt] {
	return Edges[Opt]{
		Top:    e.Top.ResolveToOption(ref.Height, calc),
		Bottom: e.Bottom.ResolveToOption(ref.Height, calc),
		Left:   e.Left.ResolveToOption(ref.Width, calc),
		Right:  e.Right.ResolveToOption(ref.Width, calc),
	}
}
