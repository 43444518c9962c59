package layout

import "testing"

func TestRect_RightBottom(t *testing.T) {
	type tc struct {
		rect           Rect
		expectedRight  float64
		expectedBottom float64
	}

	tests := map[string]tc{
		"origin":     {rect: NewRect(0, 0, 10, 20), expectedRight: 10, expectedBottom: 20},
		"offset":     {rect: NewRect(5, 10, 15, 25), expectedRight: 20, expectedBottom: 35},
		"fractional": {rect: NewRect(0.5, 0.25, 1, 1), expectedRight: 1.5, expectedBottom: 1.25},
		"zero size":  {rect: NewRect(5, 5, 0, 0), expectedRight: 5, expectedBottom: 5},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.rect.Right(); got != tt.expectedRight {
				t.Errorf("Right() = %g, want %g", got, tt.expectedRight)
			}
			if got := tt.rect.Bottom(); got != tt.expectedBottom {
				t.Errorf("Bottom() = %g, want %g", got, tt.expectedBottom)
			}
		})
	}
}

func TestRect_IsEmpty(t *testing.T) {
	type tc struct {
		rect     Rect
		expected bool
	}

	tests := map[string]tc{
		"normal":          {rect: NewRect(0, 0, 10, 10), expected: false},
		"zero width":      {rect: NewRect(0, 0, 0, 10), expected: true},
		"zero height":     {rect: NewRect(0, 0, 10, 0), expected: true},
		"negative width":  {rect: NewRect(0, 0, -5, 10), expected: true},
		"negative height": {rect: NewRect(0, 0, 10, -5), expected: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.rect.IsEmpty(); got != tt.expected {
				t.Errorf("IsEmpty() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestRect_Contains(t *testing.T) {
	r := NewRect(10, 10, 20, 20)

	type tc struct {
		x, y     float64
		expected bool
	}

	tests := map[string]tc{
		"inside":              {x: 15, y: 15, expected: true},
		"top-left corner":     {x: 10, y: 10, expected: true},
		"right edge excluded": {x: 30, y: 15, expected: false},
		"bottom edge":         {x: 15, y: 30, expected: false},
		"just inside":         {x: 29.5, y: 29.5, expected: true},
		"left of rect":        {x: 9, y: 15, expected: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.expected {
				t.Errorf("Contains(%g, %g) = %v, want %v", tt.x, tt.y, got, tt.expected)
			}
		})
	}
}

func TestRect_Inset(t *testing.T) {
	type tc struct {
		rect     Rect
		edges    Edges[float64]
		expected Rect
	}

	tests := map[string]tc{
		"uniform positive inset": {
			rect:     NewRect(10, 10, 100, 100),
			edges:    EdgeAll(5.0),
			expected: NewRect(15, 15, 90, 90),
		},
		"different insets": {
			rect:     NewRect(0, 0, 100, 100),
			edges:    EdgeTRBL(10.0, 20, 30, 40),
			expected: NewRect(40, 10, 40, 60),
		},
		"negative insets (expand)": {
			rect:     NewRect(10, 10, 50, 50),
			edges:    EdgeAll(-5.0),
			expected: NewRect(5, 5, 60, 60),
		},
		"inset to zero": {
			rect:     NewRect(0, 0, 10, 10),
			edges:    EdgeAll(5.0),
			expected: NewRect(5, 5, 0, 0),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.rect.Inset(tt.edges); got != tt.expected {
				t.Errorf("Inset() = %+v, want %+v", got, tt.expected)
			}
		})
	}
}

func TestRect_TranslateUnion(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	b := a.Translate(20, 5)
	if want := NewRect(20, 5, 10, 10); b != want {
		t.Errorf("Translate() = %+v, want %+v", b, want)
	}
	if got, want := a.Union(b), NewRect(0, 0, 30, 15); got != want {
		t.Errorf("Union() = %+v, want %+v", got, want)
	}
	if got := a.Union(Rect{}); got != a {
		t.Errorf("Union(empty) = %+v, want %+v", got, a)
	}
}

func TestLayout_Boxes(t *testing.T) {
	l := Layout{
		Location:     Point[float64]{X: 5, Y: 6},
		RootLocation: Point[float64]{X: 15, Y: 16},
		Size:         Size[float64]{Width: 40, Height: 30},
		Border:       EdgeAll(1.0),
		Padding:      EdgeTRBL(2.0, 3, 4, 5),
	}

	if got, want := l.BorderBox(), NewRect(5, 6, 40, 30); got != want {
		t.Errorf("BorderBox() = %+v, want %+v", got, want)
	}
	if got, want := l.AbsoluteRect(), NewRect(15, 16, 40, 30); got != want {
		t.Errorf("AbsoluteRect() = %+v, want %+v", got, want)
	}
	if got, want := l.ContentRect(), NewRect(6, 3, 30, 22); got != want {
		t.Errorf("ContentRect() = %+v, want %+v", got, want)
	}
	if got := l.ContentBoxWidth(); got != 30 {
		t.Errorf("ContentBoxWidth() = %g, want 30", got)
	}
	if got := l.ContentBoxHeight(); got != 22 {
		t.Errorf("ContentBoxHeight() = %g, want 22", got)
	}
}
