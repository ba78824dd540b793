// Package win is a small retained-mode UI layer for [Ebitengine]: a named
// scene tree, a per-window canvas, pointer and keyboard dispatch with a
// single-focus text input, and a frame-synchronous scheduler for multi-step
// "loading" flows.
//
// # Quick start
//
//	w := win.NewWindow(win.RunConfig{Title: "Tracker", Width: 640, Height: 480})
//	w.Set("ok", win.MustTextButton(
//		win.NewRoundedRectangle(100, 100, 80, 40, 8, win.RGB(40, 120, 200)),
//		win.Label{Content: "OK"},
//		func() { fmt.Println("pressed") },
//	))
//	if err := w.Run(); err != nil {
//		log.Fatal(err)
//	}
//
// # Scene tree
//
// Every element is a [Node]. A [Block] owns named children in insertion
// order; attaching a node with [Block.Set] binds it to the block's canvas,
// and replacing or removing it unbinds the whole subtree. Insertion order is
// both draw order and hit-test priority: [Window.Press] activates the first
// [Hittable] leaf of a pre-order walk that contains the point.
//
// # Flows
//
// A [Flow] is a sequence of steps separated by yields. [Window.Enqueue]
// appends it to the window's [Scheduler], which runs at most one step per
// redraw so every intermediate state is painted:
//
//	w.Enqueue(func(yield func(win.Gate) bool) {
//		status.SetText("loading...")
//		if !yield(win.GateHold) {
//			return
//		}
//		status.SetText("done")
//	})
//
// Slow work belongs off the UI goroutine; [Await] runs it on its own
// goroutine and resumes the flow once it returns.
//
// # Debugging
//
// [Window.SetDebugMode] prints per-frame stats and tree warnings to stderr.
// [LoadTestScript] replays clicks, keys and screenshots from JSON.
//
// [Ebitengine]: https://ebitengine.org
package win
