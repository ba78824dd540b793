package win

import "github.com/hajimehoshi/ebiten/v2"

// syntheticEvent represents a single injected pointer press or key press.
// Window coordinates are used, matching what a screenshot shows.
type syntheticEvent struct {
	key     bool
	x, y    float64
	keyCode ebiten.Key
	mods    KeyModifiers
}

// InjectClick queues a pointer press at the given window coordinates. The
// event is consumed on the next Update in place of real input.
func (w *Window) InjectClick(x, y float64) {
	w.injectQueue = append(w.injectQueue, syntheticEvent{x: x, y: y})
}

// InjectKey queues a key press with the given modifiers.
func (w *Window) InjectKey(key ebiten.Key, mods KeyModifiers) {
	w.injectQueue = append(w.injectQueue, syntheticEvent{key: true, keyCode: key, mods: mods})
}

// InjectText queues one key press per character of s. Characters outside
// the printable key set are skipped.
func (w *Window) InjectText(s string) {
	for _, r := range s {
		if key, mods, ok := keyForRune(r); ok {
			w.InjectKey(key, mods)
		}
	}
}

// processInjectedInput pops one event from the inject queue and dispatches
// it. Returns true if an event was consumed (real input should be skipped).
func (w *Window) processInjectedInput() bool {
	if len(w.injectQueue) == 0 {
		return false
	}
	evt := w.injectQueue[0]
	copy(w.injectQueue, w.injectQueue[1:])
	w.injectQueue = w.injectQueue[:len(w.injectQueue)-1]

	if evt.key {
		w.KeyPress(evt.keyCode, evt.mods)
	} else {
		w.Press(evt.x, evt.y)
	}
	return true
}

// keyForRune inverts Symbol for a single character.
func keyForRune(r rune) (ebiten.Key, KeyModifiers, bool) {
	s := string(r)
	for k, sym := range symbols {
		switch s {
		case sym:
			return k, 0, true
		case Symbol(k, ModShift):
			if sym != s {
				return k, ModShift, true
			}
		}
	}
	return 0, 0, false
}
