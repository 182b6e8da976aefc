// Package autopilot feeds the simulation from a tengo script. The script
// runs once per tick with an `engine` map to inspect the bird and the next
// pipe and to request a jump.
package autopilot

import (
	"fmt"
	"log"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/flappy/prefabs"
	"github.com/milk9111/flappy/sim"
)

const DefaultScript = "autopilot.tengo"

type Autopilot struct {
	name     string
	compiled *tengo.Compiled
	memory   *tengo.Map

	jump bool
	// failed stops error spam after a runtime error; Reload clears it.
	failed bool
}

// Load compiles a script from the prefabs scripts directory.
func Load(name string) (*Autopilot, error) {
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("autopilot: load %s: %w", name, err)
	}
	a, err := New(name, src)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func New(name string, src []byte) (*Autopilot, error) {
	script := tengo.NewScript(src)
	_ = script.Add("engine", map[string]any{})
	_ = script.Add("memory", map[string]any{})
	script.SetImports(stdlib.GetModuleMap("math", "fmt"))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("autopilot: compile %s: %w", name, err)
	}
	return &Autopilot{
		name:     name,
		compiled: compiled,
		memory:   &tengo.Map{Value: map[string]tengo.Object{}},
	}, nil
}

func (a *Autopilot) Name() string {
	return a.name
}

// Reload recompiles the script from disk or the embedded copy. On error the
// previous script stays active.
func (a *Autopilot) Reload() error {
	next, err := Load(a.name)
	if err != nil {
		return err
	}
	*a = *next
	return nil
}

// Reset forgets everything the script stored in memory, so a new run
// depends only on its seed and the script.
func (a *Autopilot) Reset() {
	a.memory = &tengo.Map{Value: map[string]tengo.Object{}}
	a.jump = false
}

// Poll runs the script against the state the next tick starts from.
func (a *Autopilot) Poll(s sim.Snapshot) []sim.Event {
	if a == nil || a.compiled == nil || a.failed {
		return nil
	}
	a.jump = false

	if err := a.compiled.Set("engine", a.engine(s)); err != nil {
		a.fail(s.Tick, err)
		return nil
	}
	if err := a.compiled.Set("memory", a.memory); err != nil {
		a.fail(s.Tick, err)
		return nil
	}
	if err := a.compiled.Run(); err != nil {
		a.fail(s.Tick, err)
		return nil
	}

	if a.jump {
		return []sim.Event{sim.EventJump}
	}
	return nil
}

func (a *Autopilot) fail(tick int, err error) {
	a.failed = true
	log.Printf("autopilot: %s tick=%d: %v", a.name, tick, err)
}

func (a *Autopilot) engine(s sim.Snapshot) *tengo.ImmutableMap {
	values := map[string]tengo.Object{}

	values["jump"] = &tengo.UserFunction{Name: "jump", Value: func(args ...tengo.Object) (tengo.Object, error) {
		a.jump = true
		return tengo.TrueValue, nil
	}}

	values["bird"] = &tengo.UserFunction{Name: "bird", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return birdObject(s.Bird), nil
	}}

	values["next_pipe"] = &tengo.UserFunction{Name: "next_pipe", Value: func(args ...tengo.Object) (tengo.Object, error) {
		p, ok := s.NextPipe()
		if !ok {
			return tengo.UndefinedValue, nil
		}
		return pipeObject(p), nil
	}}

	values["pipes"] = &tengo.UserFunction{Name: "pipes", Value: func(args ...tengo.Object) (tengo.Object, error) {
		out := make([]tengo.Object, 0, len(s.Pipes))
		for _, p := range s.Pipes {
			out = append(out, pipeObject(p))
		}
		return &tengo.ImmutableArray{Value: out}, nil
	}}

	values["tick"] = &tengo.UserFunction{Name: "tick", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return &tengo.Int{Value: int64(s.Tick)}, nil
	}}

	values["score"] = &tengo.UserFunction{Name: "score", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return &tengo.Int{Value: int64(s.Score)}, nil
	}}

	values["log"] = &tengo.UserFunction{Name: "log", Value: func(args ...tengo.Object) (tengo.Object, error) {
		parts := make([]string, 0, len(args))
		for _, arg := range args {
			parts = append(parts, objectAsString(arg))
		}
		log.Printf("autopilot: %s tick=%d: %s", a.name, s.Tick, strings.Join(parts, " "))
		return tengo.UndefinedValue, nil
	}}

	return &tengo.ImmutableMap{Value: values}
}

func birdObject(b sim.BirdView) tengo.Object {
	return &tengo.ImmutableMap{Value: map[string]tengo.Object{
		"x":          &tengo.Float{Value: b.X},
		"y":          &tengo.Float{Value: b.Y},
		"tilt":       &tengo.Float{Value: b.Tilt},
		"velocity_y": &tengo.Float{Value: b.VelocityY},
		"jump_tick":  &tengo.Int{Value: int64(b.JumpTick)},
		"width":      &tengo.Int{Value: int64(b.Width)},
		"height":     &tengo.Int{Value: int64(b.Height)},
	}}
}

func pipeObject(p sim.PipeView) tengo.Object {
	passed := tengo.FalseValue
	if p.Passed {
		passed = tengo.TrueValue
	}
	return &tengo.ImmutableMap{Value: map[string]tengo.Object{
		"x":          &tengo.Float{Value: p.X},
		"gap_top":    &tengo.Float{Value: p.GapTop},
		"gap_bottom": &tengo.Float{Value: p.GapBottom},
		"width":      &tengo.Int{Value: int64(p.Width)},
		"passed":     passed,
	}}
}

func objectAsString(obj tengo.Object) string {
	if obj == nil {
		return ""
	}
	switch v := obj.(type) {
	case *tengo.String:
		return v.Value
	default:
		return strings.Trim(v.String(), "\"")
	}
}
