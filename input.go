package win

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rivo/uniseg"
	"github.com/tanema/gween/ease"
)

// InputState is the focus state of an Input.
type InputState uint8

const (
	InputDisabledEmpty InputState = iota // placeholder shown, dimmed
	InputDisabledText                    // entered text shown, dimmed
	InputEnabled                         // focused and receiving keys
)

func (s InputState) String() string {
	switch s {
	case InputDisabledEmpty:
		return "disabled-empty"
	case InputDisabledText:
		return "disabled-text"
	case InputEnabled:
		return "enabled"
	}
	return fmt.Sprintf("InputState(%d)", uint8(s))
}

const (
	// DimAlpha is the opacity of a disabled input.
	DimAlpha = 0.5

	inputPadding      = 6
	inputFadeDuration = 0.15 // seconds
)

// Input is a single-line text field. At most one input per window is
// enabled at a time; key presses go to that input only.
type Input struct {
	object
	shape       Shape
	placeholder string
	value       string
	state       InputState
	label       Label
	alpha       float64
	fade        *TweenGroup

	// MaxLength caps the value in grapheme clusters. 0 means no limit.
	MaxLength int
	// OnChange is called after typing changes the value.
	OnChange func(value string)
}

// NewInput creates a disabled input showing placeholder. The label supplies
// the text style; its box is taken from the bounds of s, inset by a small
// padding, and text is vertically centered. Returns an error wrapping
// ErrUnsupportedShape unless s is a *Rectangle or *RoundedRectangle.
func NewInput(s Shape, placeholder string, label Label) (*Input, error) {
	bounds, ok := anchorBounds(s)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedShape, s)
	}
	label = label.withDefaults()
	label.X = bounds.X + inputPadding
	label.Y = bounds.Y
	label.Width = max(bounds.Width-2*inputPadding, 0)
	label.Height = bounds.Height
	label.VAlign = VAlignMiddle
	label.Multiline = false
	return &Input{
		shape:       s,
		placeholder: placeholder,
		label:       label,
		alpha:       DimAlpha,
	}, nil
}

// State returns the current focus state.
func (in *Input) State() InputState { return in.state }

// Enabled reports whether the input has focus.
func (in *Input) Enabled() bool { return in.state == InputEnabled }

// Placeholder returns the text shown while the input is disabled and empty.
func (in *Input) Placeholder() string { return in.placeholder }

// Value returns the entered text. It is never the placeholder.
func (in *Input) Value() string { return in.value }

// SetValue replaces the entered text without firing OnChange.
func (in *Input) SetValue(s string) {
	in.value = s
	if in.state != InputEnabled {
		in.state = disabledState(s)
	}
}

// Displayed returns the text that is drawn.
func (in *Input) Displayed() string {
	if in.state == InputDisabledEmpty {
		return in.placeholder
	}
	return in.value
}

// Alpha returns the current drawing opacity.
func (in *Input) Alpha() float64 { return in.alpha }

// Shape returns the hit surface.
func (in *Input) Shape() Shape { return in.shape }

// Contains reports whether (x, y) hits the input's shape.
func (in *Input) Contains(x, y float64) bool { return in.shape.Contains(x, y) }

// Activate gives the input focus. Whatever input held focus in the same
// window is deactivated first.
func (in *Input) Activate() {
	if in.state == InputEnabled {
		return
	}
	if w := in.window(); w != nil {
		w.focus(in)
	}
	in.state = InputEnabled
	in.fadeTo(1)
}

// Deactivate drops focus. An empty value reverts to the placeholder; any
// other value, whitespace included, is kept. No-op on a disabled input.
func (in *Input) Deactivate() {
	if in.state != InputEnabled {
		return
	}
	in.state = disabledState(in.value)
	if w := in.window(); w != nil && w.focused == in {
		w.focused = nil
	}
	in.fadeTo(DimAlpha)
}

// HandleKey applies one key press to an enabled input and reports whether
// the value changed. Ctrl+Backspace clears, Backspace drops the last
// grapheme cluster, printable keys append. Everything else is ignored.
func (in *Input) HandleKey(key ebiten.Key, mods KeyModifiers) bool {
	if in.state != InputEnabled {
		return false
	}
	v := in.value
	switch {
	case IsDeleteAll(key, mods):
		v = ""
	case IsDeleteOne(key, mods):
		v = dropLastGrapheme(v)
	default:
		sym := Symbol(key, mods)
		if sym == "" {
			return false
		}
		if in.MaxLength > 0 && uniseg.GraphemeClusterCount(v) >= in.MaxLength {
			return false
		}
		v += sym
	}
	if v == in.value {
		return false
	}
	in.value = v
	if in.OnChange != nil {
		in.OnChange(v)
	}
	return true
}

func (in *Input) Draw(dst *ebiten.Image) {
	in.shape.paint(dst, in.alpha)
	l := in.label
	l.Content = in.Displayed()
	drawLabel(dst, &l, layoutLines(&l), in.alpha)
}

// setCanvas keeps window focus consistent across attach, detach and moves.
// An enabled input arriving in a window takes that window's focus.
func (in *Input) setCanvas(c *Canvas) {
	if c == in.canvas {
		return
	}
	if c == nil {
		in.Deactivate()
		in.stopFade()
		in.alpha = DimAlpha
		in.rebind(nil, in, LayerDefault)
		return
	}
	if w := in.window(); w != nil && w.focused == in {
		w.focused = nil
	}
	in.rebind(c, in, LayerDefault)
	if w := in.window(); w != nil && in.state == InputEnabled {
		w.focus(in)
	}
}

// fadeTo animates the opacity toward a. Without a window there is nothing
// to advance the tween, so the value is set directly.
func (in *Input) fadeTo(a float64) {
	in.stopFade()
	w := in.window()
	if w == nil {
		in.alpha = a
		return
	}
	in.fade = TweenAlpha(in, &in.alpha, a, inputFadeDuration, ease.OutQuad)
	w.Animate(in.fade)
}

func (in *Input) stopFade() {
	if in.fade != nil {
		in.fade.Done = true
		in.fade = nil
	}
}

func disabledState(value string) InputState {
	if value == "" {
		return InputDisabledEmpty
	}
	return InputDisabledText
}

// dropLastGrapheme removes the final user-perceived character of s.
func dropLastGrapheme(s string) string {
	if s == "" {
		return s
	}
	last := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		last, _ = g.Positions()
	}
	return s[:last]
}
