package win

import "fmt"

// Switcher is a block that cycles through a fixed list of options with a
// "<" button, the current option's text and a ">" button.
type Switcher struct {
	*Block
	options  []string
	selected int

	// Wrap lets the selection cycle past either end.
	Wrap bool
	// OnChange is called with the new index after the selection changes.
	OnChange func(index int)
}

// NewSwitcher lays out a switcher inside bounds. The buttons are squares of
// the bounds' height at each end; label supplies the text style of the
// value and the button captions. Panics if options is empty.
func NewSwitcher(bounds Rect, options []string, buttonColor Color, label Label) *Switcher {
	if len(options) == 0 {
		panic("win: switcher needs at least one option")
	}
	s := &Switcher{Block: NewBlock(), options: options}

	side := min(bounds.Height, bounds.Width/3)
	prevShape := NewRectangle(bounds.X, bounds.Y, side, bounds.Height, buttonColor)
	nextShape := NewRectangle(bounds.X+bounds.Width-side, bounds.Y, side, bounds.Height, buttonColor)

	caption := label
	caption.Content = "<"
	s.Set("prev", MustTextButton(prevShape, caption, s.Prev))

	value := label
	value.Content = options[0]
	value.X, value.Y = bounds.X+side, bounds.Y
	value.Width, value.Height = bounds.Width-2*side, bounds.Height
	value.Align, value.VAlign = TextAlignCenter, VAlignMiddle
	value.Multiline = false
	s.Set("value", NewText(value))

	caption.Content = ">"
	s.Set("next", MustTextButton(nextShape, caption, s.Next))
	return s
}

// Options returns the option list.
func (s *Switcher) Options() []string { return s.options }

// Selected returns the index of the current option.
func (s *Switcher) Selected() int { return s.selected }

// Value returns the current option.
func (s *Switcher) Value() string { return s.options[s.selected] }

// Select moves to option i. Panics if i is out of range.
func (s *Switcher) Select(i int) {
	if i < 0 || i >= len(s.options) {
		panic(fmt.Sprintf("win: switcher index %d out of range [0, %d)", i, len(s.options)))
	}
	if i == s.selected {
		return
	}
	s.selected = i
	Child[*Text](s.Block, "value").SetText(s.options[i])
	if s.OnChange != nil {
		s.OnChange(i)
	}
}

// Next moves one option forward.
func (s *Switcher) Next() { s.step(1) }

// Prev moves one option back.
func (s *Switcher) Prev() { s.step(-1) }

func (s *Switcher) step(d int) {
	i := s.selected + d
	n := len(s.options)
	if i < 0 || i >= n {
		if !s.Wrap {
			return
		}
		i = (i%n + n) % n
	}
	s.Select(i)
}
