package text

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// WrapFlags controls how text is broken into rows.
type WrapFlags uint8

const (
	// AllowNewLine enables soft wrapping at word boundaries and honours
	// hard newlines. Without it text is a single row.
	AllowNewLine WrapFlags = 1 << iota
	// BreakWords splits words wider than the row.
	BreakWords
)

// Has reports whether every flag in f is set.
func (w WrapFlags) Has(f WrapFlags) bool {
	return w&f == f
}

// String lists the set flags.
func (w WrapFlags) String() string {
	var parts []string
	if w.Has(AllowNewLine) {
		parts = append(parts, "AllowNewLine")
	}
	if w.Has(BreakWords) {
		parts = append(parts, "BreakWords")
	}
	if len(parts) == 0 {
		return "None"
	}
	return strings.Join(parts, "|")
}

// Measurer measures strings with a font face. A Measurer is safe for
// concurrent use only if its Face is.
type Measurer struct {
	Face font.Face
}

// NewMeasurer returns a Measurer using face, or basicfont.Face7x13 when face
// is nil.
func NewMeasurer(face font.Face) *Measurer {
	if face == nil {
		face = basicfont.Face7x13
	}
	return &Measurer{Face: face}
}

// Width returns the advance width of s.
func (m *Measurer) Width(s string) float64 {
	return fixedToFloat(font.MeasureString(m.Face, s))
}

// LineHeight returns the recommended distance between baselines.
func (m *Measurer) LineHeight() float64 {
	return fixedToFloat(m.Face.Metrics().Height)
}

// Ascent returns the distance from the top of a row to its baseline.
func (m *Measurer) Ascent() float64 {
	return fixedToFloat(m.Face.Metrics().Ascent)
}

// Wrap breaks s into rows no wider than width, where words allow. Spaces
// between words collapse to one.
func (m *Measurer) Wrap(s string, width float64, flags WrapFlags) []string {
	if !flags.Has(AllowNewLine) {
		return []string{strings.Join(strings.Fields(s), " ")}
	}

	var rows []string
	for _, para := range strings.Split(s, "\n") {
		rows = append(rows, m.wrapParagraph(para, width, flags)...)
	}
	return rows
}

func (m *Measurer) wrapParagraph(para string, width float64, flags WrapFlags) []string {
	words := strings.Fields(para)
	if len(words) == 0 {
		return []string{""}
	}

	space := m.Width(" ")
	rows := make([]string, 0, 4)
	var row strings.Builder
	col := 0.0

	flush := func() {
		rows = append(rows, row.String())
		row.Reset()
		col = 0
	}

	for _, word := range words {
		w := m.Width(word)

		if flags.Has(BreakWords) && w > width {
			if row.Len() > 0 {
				flush()
			}
			pieces := m.breakWord(word, width)
			for _, p := range pieces[:len(pieces)-1] {
				rows = append(rows, p)
			}
			last := pieces[len(pieces)-1]
			row.WriteString(last)
			col = m.Width(last)
			continue
		}

		if row.Len() > 0 && col+space+w > width {
			flush()
		}
		if row.Len() > 0 {
			row.WriteByte(' ')
			col += space
		}
		row.WriteString(word)
		col += w
	}

	if row.Len() > 0 {
		flush()
	}
	return rows
}

// breakWord splits word into pieces no wider than width. Every piece holds
// at least one rune.
func (m *Measurer) breakWord(word string, width float64) []string {
	var pieces []string
	start := 0
	col := 0.0
	for i, r := range word {
		adv, ok := m.Face.GlyphAdvance(r)
		w := fixedToFloat(adv)
		if !ok {
			w = m.Width(string(r))
		}
		if i > start && col+w > width {
			pieces = append(pieces, word[start:i])
			start = i
			col = 0
		}
		col += w
	}
	return append(pieces, word[start:])
}

// longestUnbreakable returns the width of the widest run the wrapper cannot
// split: a word, or a single rune when words may break.
func (m *Measurer) longestUnbreakable(s string, flags WrapFlags) float64 {
	widest := 0.0
	for _, word := range strings.Fields(s) {
		if !flags.Has(BreakWords) {
			widest = max(widest, m.Width(word))
			continue
		}
		for len(word) > 0 {
			r, size := utf8.DecodeRuneInString(word)
			widest = max(widest, m.Width(string(r)))
			word = word[size:]
		}
	}
	return widest
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
