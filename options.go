package boxlayout

import (
	"go.uber.org/zap"
	"golang.org/x/image/font"

	"github.com/grindlemire/go-boxlayout/internal/text"
)

// Option configures a Tree.
type Option func(*Tree)

// ContainerFunc lays out the children of a container whose display has no
// built-in algorithm. It reports false to fall back to flexbox.
type ContainerFunc func(tree LayoutTree, id NodeID, in LayoutInput) (LayoutOutput, bool)

// WithLogger sets the logger used for compute and dirty-tracking events.
// Default is a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(t *Tree) {
		if l != nil {
			t.log = l
		}
	}
}

// WithRounding enables or disables pixel rounding of final layout.
// Default is enabled.
func WithRounding(on bool) Option {
	return func(t *Tree) {
		t.rounding = on
	}
}

// WithMeasureFunc sets the measure function used for leaves that have no
// per-node measure function and no built-in context.
func WithMeasureFunc(fn MeasureFunc) Option {
	return func(t *Tree) {
		t.measure = fn
	}
}

// WithCalcFunc sets the resolver for Calc values. Without one, calc values
// resolve to zero.
func WithCalcFunc(fn CalcFunc) Option {
	return func(t *Tree) {
		t.calc = fn
	}
}

// WithTextFace sets the font face used to measure text nodes.
// Default is basicfont.Face7x13.
func WithTextFace(face font.Face) Option {
	return func(t *Tree) {
		t.text = text.NewMeasurer(face)
	}
}

// WithContainerLayout registers fn as the algorithm for display.
func WithContainerLayout(display Display, fn ContainerFunc) Option {
	return func(t *Tree) {
		if t.containers == nil {
			t.containers = make(map[Display]ContainerFunc)
		}
		t.containers[display] = fn
	}
}
