package win

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action string   `json:"action"`
	Label  string   `json:"label,omitempty"`
	X      float64  `json:"x,omitempty"`
	Y      float64  `json:"y,omitempty"`
	Key    string   `json:"key,omitempty"`
	Mods   []string `json:"mods,omitempty"`
	Text   string   `json:"text,omitempty"`
	Frames int      `json:"frames,omitempty"`

	key  ebiten.Key
	mods KeyModifiers
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

// TestRunner sequences injected input events and screenshots across frames
// for automated visual testing. Attach to a Window via SetTestRunner.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
	exit      bool
}

// LoadTestScript parses a JSON test script and returns a TestRunner ready
// to be attached to a Window via SetTestRunner. Supported actions are
// "click", "key", "text", "wait" and "screenshot".
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i := range script.Steps {
		st := &script.Steps[i]
		switch st.Action {
		case "click", "text", "wait", "screenshot":
		case "key":
			if err := st.key.UnmarshalText([]byte(st.Key)); err != nil {
				return nil, fmt.Errorf("parse test script: step %d: %w", i, err)
			}
			mods, err := parseModifiers(st.Mods)
			if err != nil {
				return nil, fmt.Errorf("parse test script: step %d: %w", i, err)
			}
			st.mods = mods
		default:
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

func parseModifiers(names []string) (KeyModifiers, error) {
	var mods KeyModifiers
	for _, n := range names {
		switch strings.ToLower(n) {
		case "shift":
			mods |= ModShift
		case "ctrl", "control":
			mods |= ModCtrl
		case "alt":
			mods |= ModAlt
		case "meta", "cmd", "super":
			mods |= ModMeta
		default:
			return 0, fmt.Errorf("unknown modifier %q", n)
		}
	}
	return mods, nil
}

// ExitWhenDone makes the runner close the window once its last step ran.
func (r *TestRunner) ExitWhenDone() *TestRunner {
	r.exit = true
	return r
}

// SetTestRunner attaches a TestRunner to the window. The runner's step
// method is called from Window.Update before input processing each frame.
func (w *Window) SetTestRunner(runner *TestRunner) {
	w.testRunner = runner
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the test runner by one frame. Called from Window.Update.
func (r *TestRunner) step(w *Window) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(w.injectQueue) > 0 {
		return
	}
	// Count down wait frames.
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.finish(w)
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "screenshot":
		w.Screenshot(st.Label)
	case "click":
		w.InjectClick(st.X, st.Y)
	case "key":
		w.InjectKey(st.key, st.mods)
	case "text":
		w.InjectText(st.Text)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	// Check if we've reached the end after executing.
	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(w.injectQueue) == 0 {
		r.finish(w)
	}
}

func (r *TestRunner) finish(w *Window) {
	r.done = true
	if r.exit {
		w.Exit()
	}
}
