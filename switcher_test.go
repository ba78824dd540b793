package win

import "testing"

func newTestSwitcher() *Switcher {
	return NewSwitcher(Rect{X: 0, Y: 0, Width: 300, Height: 30},
		[]string{"day", "week", "month"}, ColorBlack, Label{})
}

func TestSwitcherLayout(t *testing.T) {
	s := newTestSwitcher()
	names := s.Names()
	if len(names) != 3 || names[0] != "prev" || names[1] != "value" || names[2] != "next" {
		t.Fatalf("Names = %v", names)
	}
	if got := Child[*Text](s.Block, "value").Text(); got != "day" {
		t.Errorf("value text = %q", got)
	}
	if got := Child[*TextButton](s.Block, "next").Shape().Bounds(); got != (Rect{270, 0, 30, 30}) {
		t.Errorf("next bounds = %v", got)
	}
}

func TestSwitcherButtonsInWindow(t *testing.T) {
	w := NewWindow(RunConfig{})
	s := newTestSwitcher()
	var changes []int
	s.OnChange = func(i int) { changes = append(changes, i) }
	w.Set("period", s)

	w.Press(290, 15) // next
	w.Press(290, 15) // next
	w.Press(290, 15) // clamped at the end
	if s.Selected() != 2 || s.Value() != "month" {
		t.Errorf("selected = %d %q", s.Selected(), s.Value())
	}
	if got := Child[*Text](s.Block, "value").Text(); got != "month" {
		t.Errorf("value text = %q", got)
	}
	w.Press(10, 15) // prev
	if s.Value() != "week" {
		t.Errorf("value = %q, want week", s.Value())
	}
	if len(changes) != 3 {
		t.Errorf("changes = %v, want 3 entries", changes)
	}
	w.Press(150, 15) // the value text is passive
	if s.Value() != "week" {
		t.Error("pressing the value should not change the selection")
	}
}

func TestSwitcherWrap(t *testing.T) {
	s := newTestSwitcher()
	s.Prev()
	if s.Selected() != 0 {
		t.Fatalf("no-wrap Prev moved to %d", s.Selected())
	}
	s.Wrap = true
	s.Prev()
	if s.Selected() != 2 {
		t.Errorf("wrapped Prev = %d, want 2", s.Selected())
	}
	s.Next()
	if s.Selected() != 0 {
		t.Errorf("wrapped Next = %d, want 0", s.Selected())
	}
}

func TestSwitcherSelectOutOfRangePanics(t *testing.T) {
	s := newTestSwitcher()
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	s.Select(3)
}

func TestSwitcherDetach(t *testing.T) {
	w := NewWindow(RunConfig{})
	s := newTestSwitcher()
	w.Set("period", s)
	if w.Canvas().Len() != 3 {
		t.Fatalf("canvas Len = %d, want 3", w.Canvas().Len())
	}
	w.Remove("period")
	if w.Canvas().Len() != 0 {
		t.Errorf("canvas Len = %d, want 0", w.Canvas().Len())
	}
}
