package win

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Shape is a paintable piece of geometry with a point-containment test.
// Shapes double as hit surfaces for buttons and inputs.
type Shape interface {
	// Contains reports whether (x, y) lies inside the shape.
	Contains(x, y float64) bool
	// Bounds returns the axis-aligned bounding rectangle.
	Bounds() Rect

	paint(dst *ebiten.Image, alpha float64)
}

// Rectangle is a filled axis-aligned rectangle.
type Rectangle struct {
	X, Y, Width, Height float64
	Color               Color
}

// NewRectangle creates a filled rectangle.
func NewRectangle(x, y, width, height float64, c Color) *Rectangle {
	return &Rectangle{X: x, Y: y, Width: width, Height: height, Color: c}
}

func (r *Rectangle) Bounds() Rect { return Rect{r.X, r.Y, r.Width, r.Height} }

func (r *Rectangle) Contains(x, y float64) bool {
	return r.Bounds().Contains(x, y)
}

func (r *Rectangle) paint(dst *ebiten.Image, alpha float64) {
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height),
		r.Color.scaleAlpha(alpha), true)
}

// RoundedRectangle is a filled rectangle with circular corners.
type RoundedRectangle struct {
	X, Y, Width, Height float64
	Radius              float64
	Color               Color
}

// NewRoundedRectangle creates a filled rounded rectangle.
func NewRoundedRectangle(x, y, width, height, radius float64, c Color) *RoundedRectangle {
	return &RoundedRectangle{X: x, Y: y, Width: width, Height: height, Radius: radius, Color: c}
}

func (r *RoundedRectangle) Bounds() Rect { return Rect{r.X, r.Y, r.Width, r.Height} }

// radius returns the corner radius clamped to half the shorter side.
func (r *RoundedRectangle) radius() float64 {
	rad := r.Radius
	if half := math.Min(r.Width, r.Height) / 2; rad > half {
		rad = half
	}
	if rad < 0 {
		rad = 0
	}
	return rad
}

// Contains excludes the areas cut away by the rounded corners.
func (r *RoundedRectangle) Contains(x, y float64) bool {
	if !r.Bounds().Contains(x, y) {
		return false
	}
	rad := r.radius()
	if rad == 0 {
		return true
	}
	// Nearest corner-circle center; points outside the corner squares are
	// clamped onto the inner rectangle and always pass.
	cx := math.Max(r.X+rad, math.Min(x, r.X+r.Width-rad))
	cy := math.Max(r.Y+rad, math.Min(y, r.Y+r.Height-rad))
	dx, dy := x-cx, y-cy
	return dx*dx+dy*dy <= rad*rad
}

func (r *RoundedRectangle) paint(dst *ebiten.Image, alpha float64) {
	rad := float32(r.radius())
	x, y := float32(r.X), float32(r.Y)
	w, h := float32(r.Width), float32(r.Height)
	if rad == 0 {
		vector.DrawFilledRect(dst, x, y, w, h, r.Color.scaleAlpha(alpha), true)
		return
	}
	var p vector.Path
	p.MoveTo(x+rad, y)
	p.ArcTo(x+w, y, x+w, y+h, rad)
	p.ArcTo(x+w, y+h, x, y+h, rad)
	p.ArcTo(x, y+h, x, y, rad)
	p.ArcTo(x, y, x+w, y, rad)
	p.Close()
	fillConvexPath(dst, &p, r.Color.scaleAlpha(alpha))
}

// Line is a straight segment with a stroke thickness.
type Line struct {
	X1, Y1, X2, Y2 float64
	Thickness      float64
	Color          Color
}

// NewLine creates a line segment. A thickness below 1 is drawn as 1.
func NewLine(x1, y1, x2, y2, thickness float64, c Color) *Line {
	return &Line{X1: x1, Y1: y1, X2: x2, Y2: y2, Thickness: thickness, Color: c}
}

func (l *Line) thickness() float64 {
	return math.Max(l.Thickness, 1)
}

func (l *Line) Bounds() Rect {
	half := l.thickness() / 2
	minX, maxX := math.Min(l.X1, l.X2), math.Max(l.X1, l.X2)
	minY, maxY := math.Min(l.Y1, l.Y2), math.Max(l.Y1, l.Y2)
	return Rect{minX - half, minY - half, maxX - minX + 2*half, maxY - minY + 2*half}
}

// Contains reports whether (x, y) is within half the thickness of the segment.
func (l *Line) Contains(x, y float64) bool {
	half := l.thickness() / 2
	dx, dy := l.X2-l.X1, l.Y2-l.Y1
	lenSq := dx*dx + dy*dy
	t := 0.0
	if lenSq > 0 {
		t = ((x-l.X1)*dx + (y-l.Y1)*dy) / lenSq
		t = math.Max(0, math.Min(1, t))
	}
	px, py := l.X1+t*dx-x, l.Y1+t*dy-y
	return px*px+py*py <= half*half
}

func (l *Line) paint(dst *ebiten.Image, alpha float64) {
	vector.StrokeLine(dst, float32(l.X1), float32(l.Y1), float32(l.X2), float32(l.Y2),
		float32(l.thickness()), l.Color.scaleAlpha(alpha), true)
}

// Box is an outlined rectangle. Its hit area is the whole rectangle, not
// just the border.
type Box struct {
	X, Y, Width, Height float64
	Thickness           float64
	Color               Color
}

// NewBox creates an outlined rectangle.
func NewBox(x, y, width, height, thickness float64, c Color) *Box {
	return &Box{X: x, Y: y, Width: width, Height: height, Thickness: thickness, Color: c}
}

func (b *Box) Bounds() Rect { return Rect{b.X, b.Y, b.Width, b.Height} }

func (b *Box) Contains(x, y float64) bool {
	return b.Bounds().Contains(x, y)
}

func (b *Box) paint(dst *ebiten.Image, alpha float64) {
	vector.StrokeRect(dst, float32(b.X), float32(b.Y), float32(b.Width), float32(b.Height),
		float32(math.Max(b.Thickness, 1)), b.Color.scaleAlpha(alpha), true)
}

// Circle is a filled circle.
type Circle struct {
	X, Y, Radius float64
	Color        Color
}

// NewCircle creates a filled circle centered at (x, y).
func NewCircle(x, y, radius float64, c Color) *Circle {
	return &Circle{X: x, Y: y, Radius: radius, Color: c}
}

func (c *Circle) Bounds() Rect {
	return Rect{c.X - c.Radius, c.Y - c.Radius, 2 * c.Radius, 2 * c.Radius}
}

// Contains reports whether (x, y) lies inside or on the circle.
func (c *Circle) Contains(x, y float64) bool {
	dx := x - c.X
	dy := y - c.Y
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

func (c *Circle) paint(dst *ebiten.Image, alpha float64) {
	vector.DrawFilledCircle(dst, float32(c.X), float32(c.Y), float32(c.Radius),
		c.Color.scaleAlpha(alpha), true)
}

// --- Path filling ---

var whiteSubImage *ebiten.Image

// ensureWhiteSubImage returns the interior pixel of a 3x3 white image, the
// usual source for solid-color DrawTriangles.
func ensureWhiteSubImage() *ebiten.Image {
	if whiteSubImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(ColorWhite)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

// fillConvexPath fills a convex path with a solid color. The triangle fan
// produced by the path covers a convex region exactly once, so the default
// fill rule is enough.
func fillConvexPath(dst *ebiten.Image, p *vector.Path, c Color) {
	vs, is := p.AppendVerticesAndIndicesForFilling(nil, nil)
	a := float32(clamp01(c.A))
	r, g, b := float32(clamp01(c.R))*a, float32(clamp01(c.G))*a, float32(clamp01(c.B))*a
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = r
		vs[i].ColorG = g
		vs[i].ColorB = b
		vs[i].ColorA = a
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	dst.DrawTriangles(vs, is, ensureWhiteSubImage(), op)
}

// anchorBounds returns the box a label is anchored into for shapes that
// define a centering rule.
func anchorBounds(s Shape) (Rect, bool) {
	switch s.(type) {
	case *Rectangle, *RoundedRectangle:
		return s.Bounds(), true
	}
	return Rect{}, false
}
