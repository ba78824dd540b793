package win

import "testing"

func TestShapeContains(t *testing.T) {
	tests := []struct {
		name  string
		shape Shape
		x, y  float64
		want  bool
	}{
		{"rect inside", NewRectangle(10, 10, 20, 20, ColorBlack), 15, 15, true},
		{"rect edge", NewRectangle(10, 10, 20, 20, ColorBlack), 30, 30, true},
		{"rect outside", NewRectangle(10, 10, 20, 20, ColorBlack), 31, 15, false},
		{"rounded center", NewRoundedRectangle(100, 100, 80, 40, 10, ColorBlack), 140, 120, true},
		{"rounded edge mid", NewRoundedRectangle(100, 100, 80, 40, 10, ColorBlack), 100, 120, true},
		{"rounded cut corner", NewRoundedRectangle(100, 100, 80, 40, 10, ColorBlack), 101, 101, false},
		{"rounded corner arc", NewRoundedRectangle(100, 100, 80, 40, 10, ColorBlack), 103, 103, true},
		{"rounded zero radius corner", NewRoundedRectangle(100, 100, 80, 40, 0, ColorBlack), 100, 100, true},
		{"line on segment", NewLine(0, 0, 100, 0, 4, ColorBlack), 50, 1.5, true},
		{"line off segment", NewLine(0, 0, 100, 0, 4, ColorBlack), 50, 3, false},
		{"line past end", NewLine(0, 0, 100, 0, 4, ColorBlack), 103, 0, false},
		{"line degenerate", NewLine(5, 5, 5, 5, 2, ColorBlack), 5, 5.5, true},
		{"box interior", NewBox(0, 0, 50, 50, 2, ColorBlack), 25, 25, true},
		{"box outside", NewBox(0, 0, 50, 50, 2, ColorBlack), 51, 25, false},
		{"circle inside", NewCircle(50, 50, 10, ColorBlack), 56, 58, true},
		{"circle outside", NewCircle(50, 50, 10, ColorBlack), 58, 58, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.shape.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestRoundedRectangleRadiusClamped(t *testing.T) {
	r := NewRoundedRectangle(0, 0, 40, 20, 100, ColorBlack)
	if got := r.radius(); got != 10 {
		t.Errorf("radius() = %v, want 10", got)
	}
	r.Radius = -3
	if got := r.radius(); got != 0 {
		t.Errorf("radius() = %v, want 0", got)
	}
}

func TestShapeBounds(t *testing.T) {
	tests := []struct {
		name  string
		shape Shape
		want  Rect
	}{
		{"rect", NewRectangle(1, 2, 3, 4, ColorBlack), Rect{1, 2, 3, 4}},
		{"circle", NewCircle(10, 10, 5, ColorBlack), Rect{5, 5, 10, 10}},
		{"line", NewLine(10, 0, 0, 10, 2, ColorBlack), Rect{-1, -1, 12, 12}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.shape.Bounds(); got != tt.want {
				t.Errorf("Bounds() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAnchorBounds(t *testing.T) {
	tests := []struct {
		name  string
		shape Shape
		ok    bool
	}{
		{"rectangle", NewRectangle(0, 0, 10, 10, ColorBlack), true},
		{"rounded", NewRoundedRectangle(0, 0, 10, 10, 2, ColorBlack), true},
		{"circle", NewCircle(0, 0, 10, ColorBlack), false},
		{"line", NewLine(0, 0, 10, 10, 1, ColorBlack), false},
		{"box", NewBox(0, 0, 10, 10, 1, ColorBlack), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := anchorBounds(tt.shape); ok != tt.ok {
				t.Errorf("anchorBounds ok = %v, want %v", ok, tt.ok)
			}
		})
	}
}
