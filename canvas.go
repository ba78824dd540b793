package win

import (
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
)

// Renderable is anything that can be bound to a Canvas and painted.
type Renderable interface {
	Draw(dst *ebiten.Image)
}

// Layer orders renderables on a canvas. Lower layers draw first (behind).
type Layer int8

const (
	LayerBackground Layer = -1 // full-window backdrops
	LayerDefault    Layer = 0  // ordinary widgets
	LayerOverlay    Layer = 1  // drawn above everything else
)

type canvasEntry struct {
	r     Renderable
	layer Layer
	seq   uint64
}

// Canvas is the ordered draw batch of a window. Every visible node binds its
// renderable here when attached and unbinds it when detached; Draw paints
// whatever is bound, back to front.
type Canvas struct {
	entries []canvasEntry
	index   map[Renderable]int // position in entries, valid while !dirty
	nextSeq uint64
	dirty   bool

	owner *Window // nil for canvases created outside a window
}

// NewCanvas creates an empty canvas.
func NewCanvas() *Canvas {
	return &Canvas{index: make(map[Renderable]int)}
}

// Bind adds r at the given layer. Binding an already bound renderable only
// updates its layer; its place among equal layers is kept.
func (c *Canvas) Bind(r Renderable, layer Layer) {
	if r == nil {
		panic("win: cannot bind nil renderable")
	}
	c.reindex()
	if i, ok := c.index[r]; ok {
		if c.entries[i].layer != layer {
			c.entries[i].layer = layer
			c.dirty = true
		}
		return
	}
	c.nextSeq++
	c.entries = append(c.entries, canvasEntry{r: r, layer: layer, seq: c.nextSeq})
	c.index[r] = len(c.entries) - 1
	if n := len(c.entries); n > 1 && c.entries[n-2].layer > layer {
		c.dirty = true
	}
}

// Unbind removes r. No-op if r is not bound.
func (c *Canvas) Unbind(r Renderable) {
	c.reindex()
	i, ok := c.index[r]
	if !ok {
		return
	}
	copy(c.entries[i:], c.entries[i+1:])
	c.entries[len(c.entries)-1] = canvasEntry{}
	c.entries = c.entries[:len(c.entries)-1]
	delete(c.index, r)
	for j := i; j < len(c.entries); j++ {
		c.index[c.entries[j].r] = j
	}
}

// Bound reports whether r is currently bound.
func (c *Canvas) Bound(r Renderable) bool {
	_, ok := c.index[r]
	return ok
}

// Len returns the number of bound renderables.
func (c *Canvas) Len() int {
	return len(c.entries)
}

// Draw paints every bound renderable ordered by layer, then bind order.
func (c *Canvas) Draw(dst *ebiten.Image) {
	c.reindex()
	for i := range c.entries {
		c.entries[i].r.Draw(dst)
	}
}

// reindex restores (layer, seq) order and the lookup index after a layer
// change or an out-of-order bind.
func (c *Canvas) reindex() {
	if !c.dirty {
		return
	}
	c.dirty = false
	slices.SortStableFunc(c.entries, func(a, b canvasEntry) int {
		if a.layer != b.layer {
			return int(a.layer) - int(b.layer)
		}
		if a.seq < b.seq {
			return -1
		}
		if a.seq > b.seq {
			return 1
		}
		return 0
	})
	for i := range c.entries {
		c.index[c.entries[i].r] = i
	}
}
