package win

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// symbols maps the printable key subset to its unshifted character.
var symbols = func() map[ebiten.Key]string {
	m := map[ebiten.Key]string{
		ebiten.KeyMinus:          "-",
		ebiten.KeyNumpadSubtract: "-",
		ebiten.KeyNumpadAdd:      "+",
		ebiten.KeySlash:          "/",
		ebiten.KeyNumpadDivide:   "/",
		ebiten.KeyBackslash:      "\\",
		ebiten.KeySpace:          " ",
	}
	for i := range 10 {
		d := string(rune('0' + i))
		m[ebiten.KeyDigit0+ebiten.Key(i)] = d
		m[ebiten.KeyNumpad0+ebiten.Key(i)] = d
	}
	for i := range 26 {
		m[ebiten.KeyA+ebiten.Key(i)] = string(rune('a' + i))
	}
	return m
}()

// Symbol returns the character typed by key under mods, or "" when the key
// is outside the printable subset or the modifier combination is not plain
// or Shift only.
func Symbol(key ebiten.Key, mods KeyModifiers) string {
	s, ok := symbols[key]
	if !ok {
		return ""
	}
	switch mods {
	case 0:
		return s
	case ModShift:
		return strings.ToUpper(s)
	default:
		return ""
	}
}

// IsDeleteOne reports whether key+mods removes the last character.
func IsDeleteOne(key ebiten.Key, mods KeyModifiers) bool {
	return key == ebiten.KeyBackspace && mods == 0
}

// IsDeleteAll reports whether key+mods clears the whole field.
func IsDeleteAll(key ebiten.Key, mods KeyModifiers) bool {
	return key == ebiten.KeyBackspace && mods == ModCtrl
}

// readModifiers reads the current keyboard modifier state.
func readModifiers() KeyModifiers {
	var mods KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		mods |= ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		mods |= ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		mods |= ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) {
		mods |= ModMeta
	}
	return mods
}

// isModifierKey reports whether key is itself a modifier. Such keys are
// never routed to inputs on their own.
func isModifierKey(key ebiten.Key) bool {
	switch key {
	case ebiten.KeyShiftLeft, ebiten.KeyShiftRight,
		ebiten.KeyControlLeft, ebiten.KeyControlRight,
		ebiten.KeyAltLeft, ebiten.KeyAltRight,
		ebiten.KeyMetaLeft, ebiten.KeyMetaRight,
		ebiten.KeyShift, ebiten.KeyControl, ebiten.KeyAlt, ebiten.KeyMeta:
		return true
	}
	return false
}
