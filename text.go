package win

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// DefaultFontSize is used when a Label leaves FontSize at zero.
const DefaultFontSize = 12

// Label describes a run of text and the box it is laid out in.
type Label struct {
	Content string
	X, Y    float64
	// Width and Height bound the label for alignment and wrapping.
	// Zero means unbounded: alignment is then relative to X / Y.
	Width, Height float64
	Align         TextAlign
	VAlign        VerticalAlign
	FontSize      float64 // 0 = DefaultFontSize
	Color         Color   // zero = white
	// Multiline honors '\n' and, with a Width, wraps on word boundaries.
	// Single-line labels render newlines as spaces.
	Multiline bool
	Font      *text.GoTextFaceSource // nil = Go Regular
}

// withDefaults fills the zero-valued style fields.
func (l Label) withDefaults() Label {
	if l.FontSize <= 0 {
		l.FontSize = DefaultFontSize
	}
	if l.Color.isZero() {
		l.Color = ColorWhite
	}
	return l
}

// --- Fonts ---

var defaultSource *text.GoTextFaceSource

// LoadFont parses TrueType/OpenType data for use as Label.Font.
func LoadFont(data []byte) (*text.GoTextFaceSource, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("win: failed to parse font data: %w", err)
	}
	return src, nil
}

func defaultFont() *text.GoTextFaceSource {
	if defaultSource == nil {
		src, err := LoadFont(goregular.TTF)
		if err != nil {
			panic(err)
		}
		defaultSource = src
	}
	return defaultSource
}

func (l *Label) face() *text.GoTextFace {
	src := l.Font
	if src == nil {
		src = defaultFont()
	}
	return &text.GoTextFace{Source: src, Size: l.FontSize}
}

func lineSpacing(f text.Face) float64 {
	m := f.Metrics()
	return m.HAscent + m.HDescent + m.HLineGap
}

// --- Layout ---

// layoutLines splits the label content into rendered lines.
func layoutLines(l *Label) []string {
	if !l.Multiline {
		return []string{strings.ReplaceAll(l.Content, "\n", " ")}
	}
	paragraphs := strings.Split(l.Content, "\n")
	if l.Width <= 0 {
		return paragraphs
	}
	f := l.face()
	var lines []string
	for _, p := range paragraphs {
		lines = append(lines, wrapWords(p, f, l.Width)...)
	}
	return lines
}

// wrapWords breaks s into lines no wider than width. A single word wider
// than width gets a line of its own.
func wrapWords(s string, f text.Face, width float64) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return []string{""}
	}
	var lines []string
	cur := words[0]
	for _, w := range words[1:] {
		candidate := cur + " " + w
		if text.Advance(candidate, f) > width {
			lines = append(lines, cur)
			cur = w
			continue
		}
		cur = candidate
	}
	return append(lines, cur)
}

// drawLabel renders pre-laid-out lines of l with an extra alpha factor.
func drawLabel(dst *ebiten.Image, l *Label, lines []string, alpha float64) {
	if len(lines) == 0 || (len(lines) == 1 && lines[0] == "") {
		return
	}
	f := l.face()
	op := &text.DrawOptions{}
	op.LineSpacing = lineSpacing(f)

	x, y := l.X, l.Y
	switch l.Align {
	case TextAlignCenter:
		x += l.Width / 2
		op.PrimaryAlign = text.AlignCenter
	case TextAlignRight:
		x += l.Width
		op.PrimaryAlign = text.AlignEnd
	}
	switch l.VAlign {
	case VAlignMiddle:
		y += l.Height / 2
		op.SecondaryAlign = text.AlignCenter
	case VAlignBottom:
		y += l.Height
		op.SecondaryAlign = text.AlignEnd
	}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(l.Color)
	op.ColorScale.ScaleAlpha(float32(alpha))
	text.Draw(dst, strings.Join(lines, "\n"), f, op)
}

// --- Text node ---

// Text is a passive label node. Content and style may change after
// construction; changes show on the next draw.
type Text struct {
	object
	label Label
	lines []string
	dirty bool
}

// NewText creates a text node from l, filling in default style fields.
func NewText(l Label) *Text {
	return &Text{label: l.withDefaults(), dirty: true}
}

// Text returns the current content.
func (t *Text) Text() string { return t.label.Content }

// SetText replaces the content.
func (t *Text) SetText(s string) {
	if t.label.Content == s {
		return
	}
	t.label.Content = s
	t.dirty = true
}

// Label returns a copy of the label description.
func (t *Text) Label() Label { return t.label }

// SetLabel replaces content and style at once.
func (t *Text) SetLabel(l Label) {
	t.label = l.withDefaults()
	t.dirty = true
}

// Lines returns the laid-out lines of the current content.
func (t *Text) Lines() []string {
	if t.dirty {
		t.lines = layoutLines(&t.label)
		t.dirty = false
	}
	return t.lines
}

func (t *Text) Draw(dst *ebiten.Image) {
	drawLabel(dst, &t.label, t.Lines(), 1)
}

func (t *Text) setCanvas(c *Canvas) { t.rebind(c, t, LayerDefault) }
