// Package sim is the fixed-tick simulation of the bird and the pipes. It has
// no knowledge of windows, images or clocks; the driver calls Step at the
// configured tick rate and renders the Snapshot afterwards.
package sim

import (
	"fmt"
)

type State uint8

const (
	Playing State = iota
	Ended
)

func (s State) String() string {
	if s == Ended {
		return "ended"
	}
	return "playing"
}

type EndCause uint8

const (
	CauseNone EndCause = iota
	CausePipe
	CauseFloor
)

func (c EndCause) String() string {
	switch c {
	case CausePipe:
		return "pipe"
	case CauseFloor:
		return "floor"
	default:
		return "none"
	}
}

// Config is everything a Loop needs. PipeMask is the upright (bottom) pipe
// shape; the hanging one is derived from it.
type Config struct {
	Tuning   Tuning
	Random   Random
	BirdMask *Mask
	PipeMask *Mask
}

// Outcome describes what a single Step did.
type Outcome struct {
	Tick   int
	Jumped bool
	Scored bool
	Ended  bool
	Cause  EndCause
}

type Loop struct {
	tuning Tuning
	rnd    Random
	masks  PipeMasks

	bird  *Bird
	pipes []*Pipe

	tick  int
	score int
	state State
	cause EndCause
}

func NewLoop(cfg Config) (*Loop, error) {
	if err := cfg.Tuning.Validate(); err != nil {
		return nil, err
	}
	if cfg.Random == nil {
		return nil, fmt.Errorf("%w: nil random source", ErrInvalidConfig)
	}
	if cfg.BirdMask == nil || cfg.PipeMask == nil {
		return nil, fmt.Errorf("%w: missing bird or pipe mask", ErrInvalidConfig)
	}

	w := cfg.Tuning.World
	l := &Loop{
		tuning: cfg.Tuning,
		rnd:    cfg.Random,
		masks:  NewPipeMasks(cfg.PipeMask),
		bird:   NewBird(w.BirdStartX, w.BirdStartY, cfg.BirdMask, cfg.Tuning.Bird),
	}
	l.spawnPipe(w.FirstPipeX)
	return l, nil
}

func (l *Loop) spawnPipe(x float64) {
	l.pipes = append(l.pipes, NewPipe(x, l.rnd, l.masks, l.tuning.Pipe))
}

// Step runs one tick. Once the loop has ended it does nothing.
func (l *Loop) Step(events []Event) Outcome {
	if l.state == Ended {
		return Outcome{Tick: l.tick, Ended: true, Cause: l.cause}
	}
	l.tick++
	out := Outcome{Tick: l.tick}

	if hasEvent(events, EventJump) {
		l.bird.Jump()
		out.Jumped = true
	}

	l.bird.Move()

	// Every pipe moves and is tested even after a hit earlier in the slice.
	hit := false
	for _, p := range l.pipes {
		p.Move()
		if p.Collide(l.bird) {
			hit = true
		}
	}

	kept := l.pipes[:0]
	for _, p := range l.pipes {
		if !p.OffScreen() {
			kept = append(kept, p)
		}
	}
	l.pipes = kept

	for _, p := range l.pipes {
		if p.Passed {
			continue
		}
		if p.X < l.bird.X {
			p.Passed = true
			l.score++
			out.Scored = true
			l.spawnPipe(l.tuning.World.Width)
		}
		break
	}

	switch {
	case hit:
		l.end(CausePipe)
	case l.bird.Bottom() >= l.tuning.World.Floor:
		l.end(CauseFloor)
	}
	out.Ended = l.state == Ended
	out.Cause = l.cause
	return out
}

func (l *Loop) end(c EndCause) {
	l.state = Ended
	l.cause = c
}

func (l *Loop) State() State         { return l.state }
func (l *Loop) Cause() EndCause      { return l.cause }
func (l *Loop) Score() int           { return l.score }
func (l *Loop) Tick() int            { return l.tick }
func (l *Loop) Tuning() Tuning       { return l.tuning }
func (l *Loop) Bird() *Bird          { return l.bird }
func (l *Loop) PipeMasks() PipeMasks { return l.masks }

// Pipes returns the active pipes, oldest first. Callers must not keep the
// slice across Step calls.
func (l *Loop) Pipes() []*Pipe {
	return l.pipes
}

func (l *Loop) Snapshot() Snapshot {
	w, h := l.bird.Size()
	s := Snapshot{
		Tick:  l.tick,
		Score: l.score,
		State: l.state,
		Cause: l.cause,
		Bird: BirdView{
			X:         l.bird.X,
			Y:         l.bird.Y,
			VelocityY: l.bird.VelocityY,
			JumpTick:  l.bird.JumpTick,
			Tilt:      l.bird.Tilt,
			Width:     w,
			Height:    h,
		},
		Pipes: make([]PipeView, 0, len(l.pipes)),
	}
	for _, p := range l.pipes {
		s.Pipes = append(s.Pipes, PipeView{
			X:         p.X,
			GapTop:    p.GapTop,
			GapBottom: p.GapBottom,
			Passed:    p.Passed,
			Width:     p.Width(),
		})
	}
	return s
}
