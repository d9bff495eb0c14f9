package nativeshell

import (
	"errors"
	"fmt"

	"github.com/go-json-experiment/json"

	"github.com/phanxgames/nativeshell/gesture"
	"github.com/phanxgames/nativeshell/surface"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action  string  `json:"action"`
	Label   string  `json:"label,omitempty"`
	ID      int32   `json:"id,omitempty"`
	X       float32 `json:"x,omitempty"`
	Y       float32 `json:"y,omitempty"`
	FromX   float32 `json:"fromX,omitempty"`
	FromY   float32 `json:"fromY,omitempty"`
	ToX     float32 `json:"toX,omitempty"`
	ToY     float32 `json:"toY,omitempty"`
	Span    float32 `json:"span,omitempty"`
	ToSpan  float32 `json:"toSpan,omitempty"`
	Frames  int     `json:"frames,omitempty"`
	Command string  `json:"command,omitempty"`
	Window  uint64  `json:"window,omitempty"`
	Code    string  `json:"code,omitempty"`
	Gesture string  `json:"gesture,omitempty"`
	State   string  `json:"state,omitempty"`
	Density float32 `json:"density,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

// FaultInjector makes the surface driver fail on demand. surface.Headless
// implements it.
type FaultInjector interface {
	FailSwap(codes ...surface.Code)
	FailMakeCurrent(codes ...surface.Code)
}

// Screenshotter captures the next drawn frame under a label.
type Screenshotter interface {
	Screenshot(label string)
}

// TestRunner sequences injected input, lifecycle commands, driver faults
// and expectations across frames. Attach to an Engine via SetTestRunner.
//
// Supported actions: press, move, release, tap, doubletap, drag, pinch,
// wait, command, draw, configure, fail_swap, fail_make_current, screenshot
// and expect.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
	faults    FaultInjector
	shooter   Screenshotter
	failures  []error
	seen      []GestureEvent
	handles   []CallbackHandle
}

// LoadTestScript parses a JSON test script and returns a TestRunner ready
// to be attached to an Engine via SetTestRunner. Unknown fields are
// rejected.
func LoadTestScript(data []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(data, &script, json.RejectUnknownMembers(true)); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		if err := st.validate(); err != nil {
			return nil, fmt.Errorf("parse test script: step %d: %w", i, err)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

func (st *testStep) validate() error {
	switch st.Action {
	case "press", "move", "release", "tap", "doubletap", "drag", "pinch",
		"wait", "draw", "configure", "screenshot":
	case "command":
		if _, ok := ParseCommand(st.Command); !ok {
			return fmt.Errorf("unknown command %q", st.Command)
		}
	case "fail_swap", "fail_make_current":
		if _, ok := surface.ParseCode(st.Code); !ok {
			return fmt.Errorf("unknown code %q", st.Code)
		}
	case "expect":
		if _, ok := gesture.ParseType(st.Gesture); !ok {
			return fmt.Errorf("unknown gesture %q", st.Gesture)
		}
	default:
		return fmt.Errorf("unknown action %q", st.Action)
	}
	return nil
}

// SetTestRunner attaches a TestRunner to the engine. The runner's step
// method is called from Engine.Update before injected input is processed.
// Passing nil detaches the current runner.
func (e *Engine) SetTestRunner(runner *TestRunner) {
	if old := e.testRunner; old != nil {
		for _, h := range old.handles {
			h.Remove()
		}
		old.handles = nil
	}
	e.testRunner = runner
	if runner == nil {
		return
	}
	record := func(ev GestureEvent) { runner.seen = append(runner.seen, ev) }
	runner.handles = append(runner.handles,
		e.OnDoubleTap(record),
		e.OnDrag(record),
		e.OnPinch(record),
		e.OnTap(record),
	)
}

// SetFaultInjector sets the target of fail_swap and fail_make_current steps.
func (r *TestRunner) SetFaultInjector(f FaultInjector) {
	r.faults = f
}

// SetScreenshotter sets the target of screenshot steps.
func (r *TestRunner) SetScreenshotter(s Screenshotter) {
	r.shooter = s
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// Err returns every failed expectation, or nil.
func (r *TestRunner) Err() error {
	return errors.Join(r.failures...)
}

func (r *TestRunner) fail(st testStep, format string, args ...any) {
	err := fmt.Errorf(format, args...)
	if st.Label != "" {
		err = fmt.Errorf("%s: %w", st.Label, err)
	}
	r.failures = append(r.failures, err)
}

// step advances the test runner by one frame. Called from Engine.Update.
func (r *TestRunner) step(e *Engine) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(e.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "press":
		e.InjectPress(st.ID, st.X, st.Y)
	case "move":
		e.InjectMove(st.ID, st.X, st.Y)
	case "release":
		e.InjectRelease(st.ID, st.X, st.Y)
	case "tap":
		e.InjectTap(st.X, st.Y)
	case "doubletap":
		e.InjectDoubleTap(st.X, st.Y)
	case "drag":
		e.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "pinch":
		e.InjectPinch(st.X, st.Y, st.Span, st.ToSpan, st.Frames)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "command":
		cmd, _ := ParseCommand(st.Command)
		if err := e.HandleCommand(cmd, surface.Window(st.Window)); err != nil {
			r.fail(st, "%s: %w", cmd, err)
		}
	case "draw":
		e.Draw()
	case "configure":
		e.SetConfiguration(gesture.Configuration{Density: st.Density})
	case "fail_swap", "fail_make_current":
		code, _ := surface.ParseCode(st.Code)
		if r.faults == nil {
			r.fail(st, "%s: no fault injector", st.Action)
			break
		}
		if st.Action == "fail_swap" {
			r.faults.FailSwap(code)
		} else {
			r.faults.FailMakeCurrent(code)
		}
	case "screenshot":
		if r.shooter == nil {
			r.fail(st, "screenshot: no screenshotter")
			break
		}
		r.shooter.Screenshot(st.Label)
	case "expect":
		r.expect(st)
	}

	// Check if we've reached the end after executing.
	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(e.injectQueue) == 0 {
		r.done = true
	}
}

// expect checks the gestures reported by any detector since the previous
// expect step. Gesture "none" requires that nothing was reported.
func (r *TestRunner) expect(st testStep) {
	seen := r.seen
	r.seen = nil

	want, _ := gesture.ParseType(st.Gesture)
	if want == gesture.TypeNone {
		if len(seen) > 0 {
			r.fail(st, "got %d gestures, want none", len(seen))
		}
		return
	}
	for _, ev := range seen {
		if ev.Type == want && (st.State == "" || ev.State.String() == st.State) {
			return
		}
	}
	if st.State != "" {
		r.fail(st, "no %v gesture with state %s", want, st.State)
	} else {
		r.fail(st, "no %v gesture", want)
	}
}
