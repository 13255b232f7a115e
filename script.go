package lambda

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// scriptStep is a single action in an input script.
type scriptStep struct {
	Action string  `yaml:"action"`
	X      float64 `yaml:"x,omitempty"`
	Y      float64 `yaml:"y,omitempty"`
	Button string  `yaml:"button,omitempty"`
	Code   int     `yaml:"code,omitempty"`
	Text   string  `yaml:"text,omitempty"`
	Frames int     `yaml:"frames,omitempty"`
}

// script is the top-level structure of an input script.
type script struct {
	Steps []scriptStep `yaml:"steps"`
}

// ScriptRunner sequences injected input events across frames, for demos
// and automated checks. Attach it to an App via SetScript.
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a YAML (or JSON) input script:
//
//	steps:
//	  - action: click
//	    x: 20
//	    y: 30
//	    button: right   # left (default), right or middle
//	  - action: key
//	    code: 65
//	    text: a         # optional; sends a typed rune per character
//	  - action: wait
//	    frames: 10
func LoadScript(data []byte) (*ScriptRunner, error) {
	var s script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(s.Steps) == 0 {
		return nil, errors.New("parse script: no steps")
	}
	for i, st := range s.Steps {
		switch st.Action {
		case "click", "key", "wait":
		default:
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
		if _, ok := parseButton(st.Button); !ok {
			return nil, fmt.Errorf("parse script: step %d: unknown button %q", i, st.Button)
		}
	}
	return &ScriptRunner{steps: s.Steps}, nil
}

func parseButton(name string) (MouseButton, bool) {
	switch name {
	case "", "left":
		return MouseButtonLeft, true
	case "right":
		return MouseButtonRight, true
	case "middle":
		return MouseButtonMiddle, true
	}
	return 0, false
}

// SetScript attaches a runner to the app. The runner steps at the start of
// every Update. A nil runner detaches.
func (a *App) SetScript(r *ScriptRunner) {
	a.runner = r
}

// Done reports whether every step of the script has run.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame.
func (r *ScriptRunner) step(a *App) {
	if r.done {
		return
	}
	// Let queued injections drain first.
	if len(a.injectQueue) > 0 {
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
	case "click":
		b, _ := parseButton(st.Button)
		a.InjectPointer(ClickEvent{Point: Vec2{st.X, st.Y}, Button: b, Kind: PointerClick})
	case "key":
		if st.Text == "" {
			a.InjectKey(KeyEvent{Code: Key(st.Code), Kind: KeyPress})
		}
		for _, ch := range st.Text {
			a.InjectKey(KeyEvent{Code: Key(st.Code), Rune: ch, Kind: KeyTyped})
		}
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(a.injectQueue) == 0 {
		r.done = true
	}
}
