package win

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 float64 fields simultaneously. Create one via
// the convenience constructors (TweenAlpha, TweenColor) and either call
// Update(dt) yourself or hand it to Window.Animate, which advances it once
// per tick. If the target node is detached, the group jumps to its end
// values and stops.
type TweenGroup struct {
	tweens [4]*gween.Tween
	ends   [4]float64
	count  int
	fields [4]*float64
	target Node
	Done   bool
}

// Update advances all tweens by dt seconds and writes values to the target
// fields.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}

	if g.target != nil && g.target.Canvas() == nil {
		g.Finish()
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	if allDone {
		g.Finish()
	}
}

// Finish writes the end values and marks the group done.
func (g *TweenGroup) Finish() {
	for i := 0; i < g.count; i++ {
		*g.fields[i] = g.ends[i]
	}
	g.Done = true
}

func (g *TweenGroup) add(field *float64, to float64, duration float32, fn ease.TweenFunc) {
	i := g.count
	g.tweens[i] = gween.New(float32(*field), float32(to), duration, fn)
	g.fields[i] = field
	g.ends[i] = to
	g.count++
}

// TweenAlpha creates a TweenGroup that animates *alpha to the target value
// over the specified duration using the easing function. target may be nil.
func TweenAlpha(target Node, alpha *float64, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{target: target}
	g.add(alpha, to, duration, fn)
	return g
}

// TweenColor creates a TweenGroup that animates all four components of *c
// to the target color.
func TweenColor(target Node, c *Color, to Color, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{target: target}
	g.add(&c.R, to.R, duration, fn)
	g.add(&c.G, to.G, duration, fn)
	g.add(&c.B, to.B, duration, fn)
	g.add(&c.A, to.A, duration, fn)
	return g
}
