package layout

const measureSlots = 9

type cacheEntry[T any] struct {
	known   Size[Opt]
	avail   Size[AvailableSpace]
	content T
	present bool
}

// matches reports whether the entry can answer a query. Per axis the query's
// known dimension must equal the entry's known dimension or the size the
// entry produced; axes without a known dimension need roughly equal
// available space.
func (e *cacheEntry[T]) matches(known Size[Opt], avail Size[AvailableSpace], cached Size[float64]) bool {
	return (known.Width.Equal(e.known.Width) || known.Width.EqualFloat(cached.Width)) &&
		(known.Height.Equal(e.known.Height) || known.Height.EqualFloat(cached.Height)) &&
		(known.Width.Valid || e.avail.Width.IsRoughlyEqual(avail.Width)) &&
		(known.Height.Valid || e.avail.Height.IsRoughlyEqual(avail.Height))
}

// Cache memoizes layout results for one node: a single final-layout entry
// written by PerformLayout and nine size-only entries written by
// ComputeSize. The zero value is an empty cache. Storing never allocates.
type Cache struct {
	final   cacheEntry[LayoutOutput]
	measure [measureSlots]cacheEntry[Size[float64]]
}

// ComputeCacheSlot picks the measure slot for a ComputeSize request. The
// slot depends only on which dimensions are known and, for unknown ones,
// whether the available space is min-content.
//
//	0     both known
//	1, 2  width known; height max-content/definite or min-content
//	3, 4  height known; width max-content/definite or min-content
//	5..8  neither known, by (width, height) min-content flags
func ComputeCacheSlot(known Size[Opt], avail Size[AvailableSpace]) int {
	checkKind(avail.Width)
	checkKind(avail.Height)
	hasW, hasH := known.Width.Valid, known.Height.Valid

	switch {
	case hasW && hasH:
		return 0
	case hasW:
		if avail.Height.Kind() == SpaceMinContent {
			return 2
		}
		return 1
	case hasH:
		if avail.Width.Kind() == SpaceMinContent {
			return 4
		}
		return 3
	}

	minW := avail.Width.Kind() == SpaceMinContent
	minH := avail.Height.Kind() == SpaceMinContent
	switch {
	case !minW && !minH:
		return 5
	case !minW && minH:
		return 6
	case minW && !minH:
		return 7
	default:
		return 8
	}
}

func checkKind(a AvailableSpace) {
	if a.Kind() > SpaceMaxContent {
		invariant("ComputeCacheSlot", "unknown available space kind %d", a.Kind())
	}
}

// Get looks up a result. Hidden layout never hits.
func (c *Cache) Get(known Size[Opt], avail Size[AvailableSpace], mode RunMode) (LayoutOutput, bool) {
	switch mode {
	case PerformLayout:
		e := &c.final
		if e.present && e.matches(known, avail, e.content.Size) {
			return e.content, true
		}
	case ComputeSize:
		for i := range c.measure {
			e := &c.measure[i]
			if e.present && e.matches(known, avail, e.content) {
				return LayoutOutputFromOuterSize(e.content), true
			}
		}
	case PerformHiddenLayout:
	default:
		invariant("Cache.Get", "unknown run mode %d", mode)
	}
	return LayoutOutput{}, false
}

// Store records a result. PerformLayout overwrites the final entry,
// ComputeSize overwrites its slot and hidden layout is ignored.
func (c *Cache) Store(known Size[Opt], avail Size[AvailableSpace], mode RunMode, out LayoutOutput) {
	switch mode {
	case PerformLayout:
		c.final = cacheEntry[LayoutOutput]{known: known, avail: avail, content: out, present: true}
	case ComputeSize:
		slot := ComputeCacheSlot(known, avail)
		c.measure[slot] = cacheEntry[Size[float64]]{known: known, avail: avail, content: out.Size, present: true}
	case PerformHiddenLayout:
	default:
		invariant("Cache.Store", "unknown run mode %d", mode)
	}
}

// Clear drops every entry and reports whether anything was stored.
func (c *Cache) Clear() bool {
	if c.IsEmpty() {
		return false
	}
	*c = Cache{}
	return true
}

// IsEmpty reports whether no entry is stored.
func (c *Cache) IsEmpty() bool {
	if c.final.present {
		return false
	}
	for i := range c.measure {
		if c.measure[i].present {
			return false
		}
	}
	return true
}
