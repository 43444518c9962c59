package boxlayout

import (
	"fmt"
	"io"
	"iter"
	"slices"
	"time"

	"go.uber.org/zap"

	"github.com/grindlemire/go-boxlayout/internal/layout"
	"github.com/grindlemire/go-boxlayout/internal/text"
)

// node is the per-node storage of a Tree.
type node struct {
	style     Style
	children  []NodeID
	parent    NodeID
	hasParent bool

	// Computed (set by the engine)
	unrounded LayoutResult
	final     LayoutResult
	cache     layout.Cache

	context any
	measure MeasureFunc
	label   string
	live    bool
}

// Tree is an arena of styled nodes addressed by NodeID. It implements every
// capability the layout engine needs, keeps a measurement cache per node and
// measures text and image leaves itself.
//
// A Tree is not safe for concurrent use. Separate trees may be laid out
// concurrently.
type Tree struct {
	nodes []*node

	log        *zap.Logger
	rounding   bool
	measure    MeasureFunc
	calc       CalcFunc
	text       *text.Measurer
	containers map[Display]ContainerFunc
}

// New creates an empty tree.
func New(opts ...Option) *Tree {
	t := &Tree{
		log:      zap.NewNop(),
		rounding: true,
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.text == nil {
		t.text = text.NewMeasurer(nil)
	}
	return t
}

func (t *Tree) newNode(style Style, label string) NodeID {
	t.nodes = append(t.nodes, &node{style: style, label: label, live: true})
	return NodeID(len(t.nodes) - 1)
}

// get returns the live node for id.
func (t *Tree) get(id NodeID) (*node, error) {
	if uint64(id) >= uint64(len(t.nodes)) || !t.nodes[id].live {
		return nil, fmt.Errorf("%w: %d", ErrInvalidNode, id)
	}
	return t.nodes[id], nil
}

// Len returns the number of live nodes.
func (t *Tree) Len() int {
	n := 0
	for _, nd := range t.nodes {
		if nd.live {
			n++
		}
	}
	return n
}

// --- Node creation ---

// NewLeaf creates a node without children.
func (t *Tree) NewLeaf(style Style) NodeID {
	return t.newNode(style, "LEAF")
}

// NewLeafWithContext creates a leaf carrying host context. TextContext and
// ImageContext values are measured by the tree.
func (t *Tree) NewLeafWithContext(style Style, ctx any) NodeID {
	id := t.newNode(style, "LEAF")
	t.nodes[id].context = ctx
	return id
}

// NewText creates a leaf whose size comes from wrapping content.
func (t *Tree) NewText(style Style, content string, flags WrapFlags) NodeID {
	id := t.newNode(style, "TEXT")
	t.nodes[id].context = TextContext{Content: content, Flags: flags}
	return id
}

// NewWithChildren creates a node and attaches children in order.
func (t *Tree) NewWithChildren(style Style, children ...NodeID) (NodeID, error) {
	for _, c := range children {
		if _, err := t.get(c); err != nil {
			return 0, err
		}
	}
	id := t.newNode(style, "NODE")
	if err := t.SetChildren(id, children...); err != nil {
		t.nodes[id].live = false
		return 0, err
	}
	return id, nil
}

// --- Children ---

// AddChild appends child to parent, detaching it from any previous parent.
func (t *Tree) AddChild(parent, child NodeID) error {
	p, err := t.get(parent)
	if err != nil {
		return err
	}
	index := len(p.children)
	if c, err := t.get(child); err == nil && c.hasParent && c.parent == parent {
		index--
	}
	return t.InsertChildAt(parent, index, child)
}

// InsertChildAt inserts child into parent's children at index. An index
// equal to the child count appends.
func (t *Tree) InsertChildAt(parent NodeID, index int, child NodeID) error {
	p, err := t.get(parent)
	if err != nil {
		return err
	}
	if _, err := t.get(child); err != nil {
		return err
	}
	if t.isAncestorOrSelf(child, parent) {
		return fmt.Errorf("%w: adding %d to %d", ErrCycle, child, parent)
	}

	c := t.nodes[child]
	limit := len(p.children)
	if c.hasParent && c.parent == parent {
		limit-- // moving within the same parent
	}
	if index < 0 || index > limit {
		return fmt.Errorf("%w: index %d, %d children", ErrChildIndexOutOfBounds, index, limit)
	}

	t.detach(child)
	p.children = slices.Insert(p.children, index, child)
	c.parent, c.hasParent = parent, true
	t.markDirty(parent)
	return nil
}

// RemoveChild detaches child from parent.
func (t *Tree) RemoveChild(parent, child NodeID) error {
	p, err := t.get(parent)
	if err != nil {
		return err
	}
	i := slices.Index(p.children, child)
	if i < 0 {
		return fmt.Errorf("%w: %d is not a child of %d", ErrInvalidNode, child, parent)
	}
	_, err = t.RemoveChildAt(parent, i)
	return err
}

// RemoveChildAt detaches and returns the child at index.
func (t *Tree) RemoveChildAt(parent NodeID, index int) (NodeID, error) {
	p, err := t.get(parent)
	if err != nil {
		return 0, err
	}
	if index < 0 || index >= len(p.children) {
		return 0, fmt.Errorf("%w: index %d, %d children", ErrChildIndexOutOfBounds, index, len(p.children))
	}
	child := p.children[index]
	p.children = slices.Delete(p.children, index, index+1)
	t.nodes[child].hasParent = false
	t.markDirty(parent)
	return child, nil
}

// SetChildren replaces parent's children. Previous children are detached.
func (t *Tree) SetChildren(parent NodeID, children ...NodeID) error {
	p, err := t.get(parent)
	if err != nil {
		return err
	}
	for i, c := range children {
		if _, err := t.get(c); err != nil {
			return err
		}
		if t.isAncestorOrSelf(c, parent) {
			return fmt.Errorf("%w: adding %d to %d", ErrCycle, c, parent)
		}
		if slices.Contains(children[:i], c) {
			return fmt.Errorf("%w: %d listed twice", ErrInvalidNode, c)
		}
	}

	for _, old := range p.children {
		t.nodes[old].hasParent = false
	}
	p.children = nil
	for _, c := range children {
		t.detach(c)
		t.nodes[c].parent, t.nodes[c].hasParent = parent, true
	}
	p.children = slices.Clone(children)
	t.markDirty(parent)
	return nil
}

// Remove deletes id from the tree. It is detached from its parent and its
// children become roots.
func (t *Tree) Remove(id NodeID) error {
	n, err := t.get(id)
	if err != nil {
		return err
	}
	t.detach(id)
	for _, c := range n.children {
		t.nodes[c].hasParent = false
	}
	*n = node{}
	return nil
}

// Children returns a copy of id's children.
func (t *Tree) Children(id NodeID) ([]NodeID, error) {
	n, err := t.get(id)
	if err != nil {
		return nil, err
	}
	return slices.Clone(n.children), nil
}

// ChildCount returns the number of children of id, or 0 for invalid ids.
func (t *Tree) ChildCount(id NodeID) int {
	n, err := t.get(id)
	if err != nil {
		return 0
	}
	return len(n.children)
}

// Parent returns id's parent, if it has one.
func (t *Tree) Parent(id NodeID) (NodeID, bool) {
	n, err := t.get(id)
	if err != nil || !n.hasParent {
		return 0, false
	}
	return n.parent, true
}

// detach removes id from its current parent's children.
func (t *Tree) detach(id NodeID) {
	c := t.nodes[id]
	if !c.hasParent {
		return
	}
	p := t.nodes[c.parent]
	if i := slices.Index(p.children, id); i >= 0 {
		p.children = slices.Delete(p.children, i, i+1)
	}
	c.hasParent = false
	t.markDirty(c.parent)
}

// isAncestorOrSelf reports whether a is b or one of b's ancestors.
func (t *Tree) isAncestorOrSelf(a, b NodeID) bool {
	for cur := b; ; {
		if cur == a {
			return true
		}
		n := t.nodes[cur]
		if !n.hasParent {
			return false
		}
		cur = n.parent
	}
}

// --- Node state ---

// SetStyle replaces id's style and marks it dirty.
func (t *Tree) SetStyle(id NodeID, style Style) error {
	n, err := t.get(id)
	if err != nil {
		return err
	}
	n.style = style
	t.markDirty(id)
	return nil
}

// Style returns id's style.
func (t *Tree) Style(id NodeID) (Style, error) {
	n, err := t.get(id)
	if err != nil {
		return Style{}, err
	}
	return n.style, nil
}

// MarkDirty drops the cached measurements of id and every ancestor. Call it
// after changing anything a measure function depends on.
func (t *Tree) MarkDirty(id NodeID) error {
	if _, err := t.get(id); err != nil {
		return err
	}
	t.markDirty(id)
	return nil
}

func (t *Tree) markDirty(id NodeID) {
	cleared := 0
	for cur := id; ; {
		n := t.nodes[cur]
		if n.cache.Clear() {
			cleared++
		}
		if !n.hasParent {
			break
		}
		cur = n.parent
	}
	if cleared > 0 {
		t.log.Debug("marked dirty", zap.Uint64("node", uint64(id)), zap.Int("cleared", cleared))
	}
}

// Dirty reports whether id has no cached layout.
func (t *Tree) Dirty(id NodeID) (bool, error) {
	n, err := t.get(id)
	if err != nil {
		return false, err
	}
	return n.cache.IsEmpty(), nil
}

// SetMeasureFunc sets the function that measures id when it is a leaf. It
// takes precedence over any context. Pass nil to remove it.
func (t *Tree) SetMeasureFunc(id NodeID, fn MeasureFunc) error {
	n, err := t.get(id)
	if err != nil {
		return err
	}
	n.measure = fn
	t.markDirty(id)
	return nil
}

// SetContext replaces id's host context.
func (t *Tree) SetContext(id NodeID, ctx any) error {
	n, err := t.get(id)
	if err != nil {
		return err
	}
	n.context = ctx
	t.markDirty(id)
	return nil
}

// Context returns id's host context.
func (t *Tree) Context(id NodeID) (any, error) {
	n, err := t.get(id)
	if err != nil {
		return nil, err
	}
	return n.context, nil
}

// SetLabel sets the name shown for id by PrintTree.
func (t *Tree) SetLabel(id NodeID, label string) error {
	n, err := t.get(id)
	if err != nil {
		return err
	}
	n.label = label
	return nil
}

// Label returns the name shown for id by PrintTree.
func (t *Tree) Label(id NodeID) (string, error) {
	n, err := t.get(id)
	if err != nil {
		return "", err
	}
	return n.label, nil
}

// --- Layout ---

// ComputeLayout lays out the tree rooted at root within avail and stores
// every node's final layout. Results for clean subtrees are served from
// cache.
//
// A broken engine invariant is returned as an error wrapping
// *InvariantError; the layout of the tree is then unspecified.
func (t *Tree) ComputeLayout(root NodeID, avail Size[AvailableSpace]) (err error) {
	if _, err := t.get(root); err != nil {
		return err
	}

	defer func() {
		if r := recover(); r != nil {
			ie, ok := r.(*InvariantError)
			if !ok {
				panic(r)
			}
			t.log.Error("layout invariant violated", zap.Uint64("root", uint64(root)), zap.Error(ie))
			err = fmt.Errorf("compute layout: %w", ie)
		}
	}()

	start := time.Now()
	v := view{t}
	layout.ComputeRootLayout(v, root, avail)
	if t.rounding {
		layout.RoundLayout(v, root)
	} else {
		layout.NoRoundLayout(v, root)
	}

	t.log.Debug("computed layout",
		zap.Uint64("root", uint64(root)),
		zap.Stringer("width", avail.Width),
		zap.Stringer("height", avail.Height),
		zap.Bool("rounding", t.rounding),
		zap.Duration("took", time.Since(start)),
	)
	return nil
}

// Layout returns id's final layout from the last ComputeLayout.
func (t *Tree) Layout(id NodeID) (LayoutResult, error) {
	n, err := t.get(id)
	if err != nil {
		return LayoutResult{}, err
	}
	return n.final, nil
}

// UnroundedLayout returns id's layout before rounding.
func (t *Tree) UnroundedLayout(id NodeID) (LayoutResult, error) {
	n, err := t.get(id)
	if err != nil {
		return LayoutResult{}, err
	}
	return n.unrounded, nil
}

// PrintTree writes a readable dump of the final layout under root to w.
func (t *Tree) PrintTree(root NodeID, w io.Writer) error {
	if _, err := t.get(root); err != nil {
		return err
	}
	return layout.PrintTree(view{t}, root, w)
}

// view exposes a Tree to the engine. It is a separate type so the
// engine's contracts stay out of Tree's method set.
type view struct {
	t *Tree
}

func (v view) n(id NodeID) *node { return v.t.nodes[id] }

func (v view) ChildIDs(id NodeID) iter.Seq[NodeID] { return slices.Values(v.n(id).children) }
func (v view) ChildCount(id NodeID) int            { return len(v.n(id).children) }
func (v view) ChildAt(id NodeID, i int) NodeID     { return v.n(id).children[i] }

func (v view) CoreContainerStyle(id NodeID) *Style    { return &v.n(id).style }
func (v view) FlexboxContainerStyle(id NodeID) *Style { return &v.n(id).style }
func (v view) FlexboxChildStyle(id NodeID) *Style     { return &v.n(id).style }

func (v view) SetUnroundedLayout(id NodeID, l LayoutResult) { v.n(id).unrounded = l }
func (v view) UnroundedLayout(id NodeID) LayoutResult       { return v.n(id).unrounded }
func (v view) SetFinalLayout(id NodeID, l LayoutResult)     { v.n(id).final = l }
func (v view) FinalLayout(id NodeID) LayoutResult           { return v.n(id).final }
func (v view) DebugLabel(id NodeID) string                  { return v.n(id).label }

func (v view) Calc(id uint64, basis float64) float64 {
	if v.t.calc == nil {
		return 0
	}
	return v.t.calc(id, basis)
}

func (v view) CacheGet(id NodeID, known Size[Opt], avail Size[AvailableSpace], mode layout.RunMode) (LayoutOutput, bool) {
	return v.n(id).cache.Get(known, avail, mode)
}

func (v view) CacheStore(id NodeID, known Size[Opt], avail Size[AvailableSpace], mode layout.RunMode, out LayoutOutput) {
	v.n(id).cache.Store(known, avail, mode, out)
}

func (v view) CacheClear(id NodeID) bool { return v.n(id).cache.Clear() }

// MeasureLeaf measures with, in order: the node's measure function, its
// text or image context, then the tree's measure function. A leaf with none
// of these has no content.
func (v view) MeasureLeaf(id NodeID, known Size[Opt], avail Size[AvailableSpace]) Size[float64] {
	n := v.n(id)
	if n.measure != nil {
		return n.measure(known, avail)
	}
	switch ctx := n.context.(type) {
	case TextContext:
		return v.t.text.Measure(ctx.Content, ctx.Flags, known, avail)
	case ImageContext:
		return ctx.measure(known)
	}
	if v.t.measure != nil {
		return v.t.measure(known, avail)
	}
	return Size[float64]{Width: known.Width.Or(0), Height: known.Height.Or(0)}
}

func (v view) ComputeContainerLayout(id NodeID, display Display, in LayoutInput) (LayoutOutput, bool) {
	fn, ok := v.t.containers[display]
	if !ok {
		return LayoutOutput{}, false
	}
	return fn(v, id, in)
}

var (
	_ layout.LayoutTree    = view{}
	_ layout.ContainerTree = view{}
	_ layout.RoundTree     = view{}
	_ layout.PrintableTree = view{}
)
