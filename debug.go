package win

import (
	"fmt"
	"os"
	"time"
)

// debugStats holds per-frame timing and scene metrics.
// Only populated when Window.debug is true.
type debugStats struct {
	drawTime    time.Duration
	renderables int
	steps       uint64
	tweens      int
}

// debugLog prints frame stats to stderr.
func (w *Window) debugLog(stats debugStats) {
	if !w.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[win] draw: %v | renderables: %d | steps: %d | tweens: %d | focus: %s\n",
		stats.drawTime, stats.renderables, stats.steps, stats.tweens, focusName(w.focused))
}

func focusName(in *Input) string {
	if in == nil {
		return "-"
	}
	return nodePath(in)
}

// nodePath returns the slash-separated names from the root down to n.
func nodePath(n Node) string {
	path := n.Name()
	for p := n.Parent(); p != nil; p = p.Parent() {
		path = p.Name() + "/" + path
	}
	return path
}

// debugCheckTreeDepth warns on stderr if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(b *Block) {
	depth := treeDepth(b)
	if depth > debugMaxTreeDepth {
		_, _ = fmt.Fprintf(os.Stderr, "[win] warning: tree depth %d exceeds %d (block %q)\n",
			depth, debugMaxTreeDepth, nodePath(b))
	}
}

func treeDepth(b *Block) int {
	depth := 0
	for p := b; p != nil; p = p.parent {
		depth++
	}
	return depth
}

// debugCheckChildCount warns on stderr if a block has more than 1000 children.
const debugMaxChildCount = 1000

func debugCheckChildCount(b *Block) {
	if n := b.Len(); n > debugMaxChildCount {
		_, _ = fmt.Fprintf(os.Stderr, "[win] warning: block %q has %d children (threshold %d)\n",
			nodePath(b), n, debugMaxChildCount)
	}
}
