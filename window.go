package win

import (
	"errors"
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// RootName is the name of every window's root block.
const RootName = "main"

// Window owns the scene tree, its canvas, the focused input and the
// scheduler. It implements ebiten.Game; Run drives it with Ebitengine's
// loop, or an embedding game can call Update and Draw itself.
type Window struct {
	cfg     RunConfig
	root    *Block
	canvas  *Canvas
	focused *Input
	sched   *Scheduler
	tweens  []*TweenGroup
	fps     *fpsOverlay

	debug   bool
	exiting bool
	frames  uint64

	// input injection and scripted runs
	injectQueue     []syntheticEvent
	testRunner      *TestRunner
	screenshotQueue []string
	keyBuf          []ebiten.Key
}

// NewWindow creates a window with an empty root block. Zero config fields
// take their defaults.
func NewWindow(cfg RunConfig) *Window {
	cfg = cfg.withDefaults()
	w := &Window{
		cfg:    cfg,
		canvas: NewCanvas(),
		sched:  NewScheduler(),
	}
	w.canvas.owner = w
	w.root = NewBlock()
	w.root.name = RootName
	w.root.setCanvas(w.canvas)
	if cfg.ShowFPS {
		w.fps = newFPSOverlay()
		w.canvas.Bind(w.fps, LayerOverlay)
	}
	w.SetDebugMode(cfg.Debug)
	return w
}

// Config returns the effective configuration.
func (w *Window) Config() RunConfig { return w.cfg }

// Root returns the root block.
func (w *Window) Root() *Block { return w.root }

// Canvas returns the window's canvas.
func (w *Window) Canvas() *Canvas { return w.canvas }

// Scheduler returns the window's scheduler.
func (w *Window) Scheduler() *Scheduler { return w.sched }

// Focused returns the enabled input, or nil.
func (w *Window) Focused() *Input { return w.focused }

// Set attaches n under name in the root block.
func (w *Window) Set(name string, n Node) { w.root.Set(name, n) }

// Get returns the root child under name. Panics if there is none.
func (w *Window) Get(name string) Node { return w.root.Get(name) }

// Lookup returns the root child under name and whether it exists.
func (w *Window) Lookup(name string) (Node, bool) { return w.root.Lookup(name) }

// Has reports whether the root holds a child under name.
func (w *Window) Has(name string) bool { return w.root.Has(name) }

// Remove detaches the root child under name.
func (w *Window) Remove(name string) { w.root.Remove(name) }

// --- Dispatch ---

// Press handles a pointer press at window coordinates. The focused input is
// deactivated first; then the first interactive leaf in traversal order that
// contains the point is activated. At most one leaf is activated.
func (w *Window) Press(x, y float64) {
	w.Blur()
	var target Hittable
	for n := range w.root.Leaves() {
		if h, ok := n.(Hittable); ok && h.Contains(x, y) {
			target = h
			break
		}
	}
	if target != nil {
		target.Activate()
	}
}

// KeyPress routes a key to the focused input. No-op without focus.
func (w *Window) KeyPress(key ebiten.Key, mods KeyModifiers) {
	if w.focused == nil {
		return
	}
	w.focused.HandleKey(key, mods)
}

// Blur deactivates the focused input, if any.
func (w *Window) Blur() {
	if w.focused != nil {
		w.focused.Deactivate()
	}
}

// focus makes in the only enabled input.
func (w *Window) focus(in *Input) {
	if w.focused == in {
		return
	}
	prev := w.focused
	w.focused = in
	if prev != nil {
		prev.Deactivate()
	}
}

// --- Scheduling ---

// Enqueue appends a flow to the scheduler chain.
func (w *Window) Enqueue(f Flow) { w.sched.Enqueue(f) }

// Tick advances the scheduler by at most one step.
func (w *Window) Tick() bool { return w.sched.Tick() }

// Animate registers a tween advanced once per Update until done.
func (w *Window) Animate(g *TweenGroup) {
	if g == nil || g.Done {
		return
	}
	w.tweens = append(w.tweens, g)
}

func (w *Window) updateTweens(dt float32) {
	live := w.tweens[:0]
	for _, g := range w.tweens {
		g.Update(dt)
		if !g.Done {
			live = append(live, g)
		}
	}
	clear(w.tweens[len(live):])
	w.tweens = live
}

// --- ebiten.Game ---

// Update processes input, advances tweens and runs one scheduler step.
func (w *Window) Update() error {
	if w.exiting {
		return ebiten.Termination
	}
	if w.testRunner != nil {
		w.testRunner.step(w)
	}
	if !w.processInjectedInput() {
		w.processInput()
	}
	w.updateTweens(float32(1.0 / float64(w.cfg.TPS)))
	w.Tick()
	return nil
}

// processInput reads real pointer and keyboard state.
func (w *Window) processInput() {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		w.Press(float64(x), float64(y))
	}
	if w.focused == nil {
		return
	}
	mods := readModifiers()
	w.keyBuf = inpututil.AppendJustPressedKeys(w.keyBuf[:0])
	for _, k := range w.keyBuf {
		if isModifierKey(k) {
			continue
		}
		w.KeyPress(k, mods)
	}
}

// Draw paints the canvas and opens the scheduler gate.
func (w *Window) Draw(screen *ebiten.Image) {
	var t0 time.Time
	if w.debug {
		t0 = time.Now()
	}
	screen.Fill(w.cfg.Background)
	w.canvas.Draw(screen)
	w.afterDraw()
	w.flushScreenshots(screen)
	if w.debug {
		w.debugLog(debugStats{
			drawTime:    time.Since(t0),
			renderables: w.canvas.Len(),
			steps:       w.sched.Steps(),
			tweens:      len(w.tweens),
		})
	}
}

// afterDraw records a completed redraw.
func (w *Window) afterDraw() {
	w.frames++
	w.sched.Redrawn()
}

// Layout reports the configured logical size.
func (w *Window) Layout(_, _ int) (int, int) {
	return w.cfg.Width, w.cfg.Height
}

// Run opens the window and blocks until it is closed or Exit is called.
func (w *Window) Run() error {
	ebiten.SetWindowSize(w.cfg.Width, w.cfg.Height)
	ebiten.SetWindowTitle(w.cfg.Title)
	ebiten.SetTPS(w.cfg.TPS)
	defer w.Close()
	if err := ebiten.RunGame(w); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("win: run: %w", err)
	}
	return nil
}

// Exit makes the next Update end the loop.
func (w *Window) Exit() { w.exiting = true }

// Close detaches every root child and abandons pending flows.
func (w *Window) Close() {
	w.sched.Close()
	for _, name := range w.root.Names() {
		w.root.Remove(name)
	}
	w.tweens = nil
}

// SetDebugMode enables or disables debug mode. When enabled, tree depth and
// child count warnings and per-frame stats are printed to stderr.
func (w *Window) SetDebugMode(enabled bool) {
	w.debug = enabled
	globalDebug = enabled
}

// globalDebug mirrors the most recently set Window debug flag so that block
// operations (which lack a Window pointer) can check it cheaply.
var globalDebug bool
