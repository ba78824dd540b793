package win

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestLoadTestScript(t *testing.T) {
	data := []byte(`{
		"steps": [
			{"action": "screenshot", "label": "initial"},
			{"action": "click", "x": 100, "y": 200},
			{"action": "key", "key": "Backspace", "mods": ["ctrl"]},
			{"action": "text", "text": "Hello"},
			{"action": "wait", "frames": 3}
		]
	}`)

	runner, err := LoadTestScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runner.steps) != 5 {
		t.Fatalf("expected 5 steps, got %d", len(runner.steps))
	}
	if runner.steps[0].Action != "screenshot" || runner.steps[0].Label != "initial" {
		t.Error("step 0 mismatch")
	}
	if runner.steps[1].Action != "click" || runner.steps[1].X != 100 || runner.steps[1].Y != 200 {
		t.Error("step 1 mismatch")
	}
	if runner.steps[2].key != ebiten.KeyBackspace || runner.steps[2].mods != ModCtrl {
		t.Errorf("step 2 key = %v mods = %v", runner.steps[2].key, runner.steps[2].mods)
	}
	if runner.steps[4].Action != "wait" || runner.steps[4].Frames != 3 {
		t.Error("step 4 mismatch")
	}
}

func TestLoadTestScriptErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"invalid json", `not json`},
		{"empty", `{"steps": []}`},
		{"unknown action", `{"steps": [{"action": "drag"}]}`},
		{"unknown key", `{"steps": [{"action": "key", "key": "NoSuchKey"}]}`},
		{"unknown modifier", `{"steps": [{"action": "key", "key": "A", "mods": ["hyper"]}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadTestScript([]byte(tt.data)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestRunnerStep_Click(t *testing.T) {
	w := NewWindow(RunConfig{})
	pressed := false
	w.Set("b", NewButton(NewRectangle(0, 0, 200, 200, ColorBlack), func() { pressed = true }))

	runner, err := LoadTestScript([]byte(`{"steps": [{"action": "click", "x": 50, "y": 50}]}`))
	if err != nil {
		t.Fatal(err)
	}
	w.SetTestRunner(runner)

	runner.step(w)
	if len(w.injectQueue) != 1 {
		t.Fatalf("expected 1 queued event, got %d", len(w.injectQueue))
	}
	if runner.Done() {
		t.Error("runner should not be done while inject queue has events")
	}

	w.processInjectedInput()
	if !pressed {
		t.Error("injected click should press the button")
	}
	runner.step(w)
	if !runner.Done() {
		t.Error("runner should be done after all steps executed and queue drained")
	}
}

func TestRunnerStep_TypesIntoInput(t *testing.T) {
	w := NewWindow(RunConfig{})
	in := newTestInput(t, 0, 0, "name")
	w.Set("in", in)

	runner, err := LoadTestScript([]byte(`{"steps": [
		{"action": "click", "x": 5, "y": 5},
		{"action": "text", "text": "Ab 1"},
		{"action": "key", "key": "Backspace"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 20 && !runner.Done(); i++ {
		runner.step(w)
		w.processInjectedInput()
	}
	if !runner.Done() {
		t.Fatal("runner did not finish")
	}
	if in.Value() != "Ab " {
		t.Errorf("Value = %q, want %q", in.Value(), "Ab ")
	}
}

func TestRunnerStep_Wait(t *testing.T) {
	w := NewWindow(RunConfig{})
	runner, err := LoadTestScript([]byte(`{"steps": [{"action": "wait", "frames": 3}, {"action": "screenshot", "label": "x"}]}`))
	if err != nil {
		t.Fatal(err)
	}
	runner.step(w) // wait, frame 1
	runner.step(w) // frame 2
	runner.step(w) // frame 3
	if len(w.screenshotQueue) != 0 {
		t.Fatal("screenshot taken before wait elapsed")
	}
	runner.step(w)
	if len(w.screenshotQueue) != 1 || !runner.Done() {
		t.Errorf("queue = %v done = %v", w.screenshotQueue, runner.Done())
	}
}

func TestRunnerExitWhenDone(t *testing.T) {
	w := NewWindow(RunConfig{})
	runner, err := LoadTestScript([]byte(`{"steps": [{"action": "screenshot"}]}`))
	if err != nil {
		t.Fatal(err)
	}
	w.SetTestRunner(runner.ExitWhenDone())
	runner.step(w)
	if !w.exiting {
		t.Error("window should be exiting once the script is done")
	}
}
