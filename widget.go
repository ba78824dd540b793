package win

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// ErrUnsupportedShape is returned when a label is anchored into a shape that
// has no centering rule. Only *Rectangle and *RoundedRectangle have one.
var ErrUnsupportedShape = errors.New("win: shape does not support label anchoring")

// --- ShapeNode ---

// ShapeNode is a passive node that paints a single shape.
type ShapeNode struct {
	object
	shape Shape
}

// NewShapeNode wraps s in a node.
func NewShapeNode(s Shape) *ShapeNode {
	if s == nil {
		panic("win: cannot create shape node from nil shape")
	}
	return &ShapeNode{shape: s}
}

// Shape returns the painted shape.
func (n *ShapeNode) Shape() Shape { return n.shape }

func (n *ShapeNode) Draw(dst *ebiten.Image) { n.shape.paint(dst, 1) }

func (n *ShapeNode) setCanvas(c *Canvas) { n.rebind(c, n, LayerDefault) }

// --- Background ---

// Background fills the whole destination with a color behind every other
// node on the canvas.
type Background struct {
	object
	Color Color
}

// NewBackground creates a full-window backdrop.
func NewBackground(c Color) *Background {
	return &Background{Color: c}
}

func (b *Background) Draw(dst *ebiten.Image) {
	dst.Fill(b.Color)
}

func (b *Background) setCanvas(c *Canvas) { b.rebind(c, b, LayerBackground) }

// --- Button ---

// Button is an interactive shape that runs an action when pressed.
// Arguments for the action are captured by the closure.
type Button struct {
	object
	shape  Shape
	action func()
}

// NewButton creates a button whose hit surface is s.
func NewButton(s Shape, action func()) *Button {
	if s == nil {
		panic("win: cannot create button from nil shape")
	}
	return &Button{shape: s, action: action}
}

// Shape returns the hit surface.
func (b *Button) Shape() Shape { return b.shape }

// Contains reports whether (x, y) hits the button's shape.
func (b *Button) Contains(x, y float64) bool { return b.shape.Contains(x, y) }

// Activate runs the button's action.
func (b *Button) Activate() {
	if b.action != nil {
		b.action()
	}
}

func (b *Button) Draw(dst *ebiten.Image) { b.shape.paint(dst, 1) }

func (b *Button) setCanvas(c *Canvas) { b.rebind(c, b, LayerDefault) }

// --- TextButton ---

// TextButton is a button with a caption centered inside its shape.
type TextButton struct {
	Button
	label Label
	lines []string
}

// NewTextButton creates a button with label anchored into the bounds of s.
// The label's position, size and alignment are taken from the shape; the
// rest of its style is kept. Returns an error wrapping ErrUnsupportedShape
// unless s is a *Rectangle or *RoundedRectangle.
func NewTextButton(s Shape, label Label, action func()) (*TextButton, error) {
	bounds, ok := anchorBounds(s)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedShape, s)
	}
	label = label.withDefaults()
	label.X, label.Y = bounds.X, bounds.Y
	label.Width, label.Height = bounds.Width, bounds.Height
	label.Align = TextAlignCenter
	label.VAlign = VAlignMiddle
	tb := &TextButton{
		Button: Button{shape: s, action: action},
		label:  label,
	}
	tb.lines = layoutLines(&tb.label)
	return tb, nil
}

// MustTextButton is like NewTextButton but panics on error.
func MustTextButton(s Shape, label Label, action func()) *TextButton {
	tb, err := NewTextButton(s, label, action)
	if err != nil {
		panic(err)
	}
	return tb
}

// Text returns the caption.
func (b *TextButton) Text() string { return b.label.Content }

// SetText replaces the caption.
func (b *TextButton) SetText(s string) {
	b.label.Content = s
	b.lines = layoutLines(&b.label)
}

// Label returns the derived caption label.
func (b *TextButton) Label() Label { return b.label }

func (b *TextButton) Draw(dst *ebiten.Image) {
	b.shape.paint(dst, 1)
	drawLabel(dst, &b.label, b.lines, 1)
}

func (b *TextButton) setCanvas(c *Canvas) { b.rebind(c, b, LayerDefault) }

// --- Image ---

// Image is a passive sprite. A zero Width or Height keeps the image's
// natural size on that axis.
type Image struct {
	object
	X, Y          float64
	Width, Height float64
	img           *ebiten.Image
}

// NewImage creates a sprite node at (x, y).
func NewImage(x, y float64, img *ebiten.Image, width, height float64) *Image {
	if img == nil {
		panic("win: cannot create image node from nil image")
	}
	return &Image{X: x, Y: y, Width: width, Height: height, img: img}
}

// LoadImage decodes the image file at path and wraps it in a sprite node.
func LoadImage(x, y float64, path string, width, height float64) (*Image, error) {
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("win: load image %s: %w", path, err)
	}
	return NewImage(x, y, img, width, height), nil
}

// Size returns the drawn size.
func (n *Image) Size() (w, h float64) {
	b := n.img.Bounds()
	w, h = float64(b.Dx()), float64(b.Dy())
	if n.Width > 0 {
		w = n.Width
	}
	if n.Height > 0 {
		h = n.Height
	}
	return w, h
}

// Source returns the underlying image.
func (n *Image) Source() *ebiten.Image { return n.img }

func (n *Image) Draw(dst *ebiten.Image) {
	b := n.img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}
	w, h := n.Size()
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
	op.GeoM.Translate(n.X, n.Y)
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(n.img, &op)
}

func (n *Image) setCanvas(c *Canvas) { n.rebind(c, n, LayerDefault) }
