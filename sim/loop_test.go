package sim

import (
	"errors"
	"reflect"
	"testing"
)

func TestNewLoopRejectsInvalidConfig(t *testing.T) {
	badGap := testConfig(1)
	badGap.Tuning.Pipe.Gap = 0
	badTick := testConfig(1)
	badTick.Tuning.World.TickRate = 0
	noRandom := testConfig(1)
	noRandom.Random = nil
	noMask := testConfig(1)
	noMask.BirdMask = nil

	cases := []struct {
		name string
		cfg  Config
		want error
	}{
		{"zero_gap", badGap, ErrInvalidTuning},
		{"zero_tick_rate", badTick, ErrInvalidTuning},
		{"nil_random", noRandom, ErrInvalidConfig},
		{"nil_mask", noMask, ErrInvalidConfig},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := NewLoop(c.cfg)
			if !errors.Is(err, c.want) {
				t.Fatalf("err = %v, want %v", err, c.want)
			}
		})
	}
}

func TestLoopFallsToFloor(t *testing.T) {
	cfg := testConfig(1)
	cfg.Tuning.World.BirdStartX = 230
	cfg.Tuning.World.BirdStartY = 50
	cfg.Tuning.World.Floor = 730
	l, err := NewLoop(cfg)
	if err != nil {
		t.Fatalf("NewLoop: %v", err)
	}

	// 1.5, 6 and 13.5 for the first three ticks, then 16 per tick until the
	// lower edge (y+48) reaches 730.
	res := l.Run(nil, 1000)
	if res.Cause != CauseFloor {
		t.Fatalf("cause = %v, want floor", res.Cause)
	}
	if res.Ticks != 42 {
		t.Fatalf("ticks = %d, want 42", res.Ticks)
	}
	if l.Bird().Y != 695 {
		t.Fatalf("final y = %v, want 695", l.Bird().Y)
	}
	if res.Score != 0 || len(l.Pipes()) != 1 || l.Pipes()[0].Passed {
		t.Fatalf("pipe state changed during fall: score=%d pipes=%d", res.Score, len(l.Pipes()))
	}
}

func TestLoopJumpOnFirstTick(t *testing.T) {
	l, err := NewLoop(testConfig(1))
	if err != nil {
		t.Fatalf("NewLoop: %v", err)
	}
	start := l.Bird().Y

	res := l.Run(Schedule{0: {EventJump}}, 1)
	if res.Ticks != 1 {
		t.Fatalf("ticks = %d, want 1", res.Ticks)
	}
	// -10.5*1 + 0.5*3*1 = -9, plus the rising lift of 2.
	if got, want := l.Bird().Y, start-11; got != want {
		t.Fatalf("y = %v, want %v", got, want)
	}
}

func TestLoopIsDeterministic(t *testing.T) {
	trace := func() []Snapshot {
		l, err := NewLoop(testConfig(42))
		if err != nil {
			t.Fatalf("NewLoop: %v", err)
		}
		src := hover(400)
		var out []Snapshot
		for l.State() == Playing && l.Tick() < 400 {
			l.Step(src.Poll(l.Snapshot()))
			out = append(out, l.Snapshot())
		}
		return out
	}

	a, b := trace(), trace()
	if len(a) == 0 {
		t.Fatalf("no ticks recorded")
	}
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("two runs with the same seed and input diverged")
	}
}

func TestLoopScoresOncePerPipe(t *testing.T) {
	cfg := testConfig(1)
	cfg.Random = fixedRandom(0)
	cfg.Tuning.Pipe.GapMin = 300
	cfg.Tuning.Pipe.GapMax = 301
	l, err := NewLoop(cfg)
	if err != nil {
		t.Fatalf("NewLoop: %v", err)
	}

	src := hover(400)
	scoredAt := []int{}
	for l.Tick() < 200 {
		out := l.Step(src.Poll(l.Snapshot()))
		if out.Ended {
			t.Fatalf("tick %d: ended by %v while flying through the gap", out.Tick, out.Cause)
		}
		if out.Scored {
			scoredAt = append(scoredAt, out.Tick)
		}
	}

	// First pipe starts at 700 and crosses x 230 on tick 95; the one spawned
	// then at 600 crosses 75 ticks later.
	if want := []int{95, 170}; !reflect.DeepEqual(scoredAt, want) {
		t.Fatalf("scored at %v, want %v", scoredAt, want)
	}
	if l.Score() != 2 {
		t.Fatalf("score = %d, want 2", l.Score())
	}

	// The first pipe left the screen on tick 161.
	pipes := l.Pipes()
	if len(pipes) != 2 {
		t.Fatalf("active pipes = %d, want 2", len(pipes))
	}
	if !pipes[0].Passed || pipes[1].Passed {
		t.Fatalf("passed flags = %v, %v, want true, false", pipes[0].Passed, pipes[1].Passed)
	}
	if pipes[0].X != 75 || pipes[1].X != 450 {
		t.Fatalf("pipe x = %v, %v, want 75, 450", pipes[0].X, pipes[1].X)
	}
}

func TestLoopEndsOnPipe(t *testing.T) {
	cfg := testConfig(1)
	cfg.Random = fixedRandom(0)
	cfg.Tuning.Pipe.GapMin = 0
	cfg.Tuning.Pipe.GapMax = 1
	l, err := NewLoop(cfg)
	if err != nil {
		t.Fatalf("NewLoop: %v", err)
	}

	// The bird hovers with its top edge in [311, 403], below the gap [0, 200). The pipe's
	// leading edge reaches the bird's trailing edge at x 297 on tick 81.
	res := l.Run(hover(400), 1000)
	if res.Cause != CausePipe {
		t.Fatalf("cause = %v, want pipe", res.Cause)
	}
	if res.Ticks != 81 {
		t.Fatalf("ticks = %d, want 81", res.Ticks)
	}

	before := l.Snapshot()
	out := l.Step([]Event{EventJump})
	if !out.Ended || out.Jumped || !reflect.DeepEqual(before, l.Snapshot()) {
		t.Fatalf("step after end changed state")
	}
}

func TestLoopMovesEveryPipeAfterHit(t *testing.T) {
	cfg := testConfig(1)
	cfg.Random = fixedRandom(0)
	cfg.Tuning.Pipe.GapMin = 0
	cfg.Tuning.Pipe.GapMax = 1
	cfg.Tuning.World.FirstPipeX = 200
	l, err := NewLoop(cfg)
	if err != nil {
		t.Fatalf("NewLoop: %v", err)
	}
	l.spawnPipe(500)

	out := l.Step(nil)
	if !out.Ended || out.Cause != CausePipe {
		t.Fatalf("outcome = %+v, want pipe hit", out)
	}
	if l.Pipes()[0].X != 195 || l.Pipes()[1].X != 495 {
		t.Fatalf("pipe x = %v, %v, want 195, 495", l.Pipes()[0].X, l.Pipes()[1].X)
	}
}

func TestLoopIgnoresUnknownEvents(t *testing.T) {
	a, err := NewLoop(testConfig(3))
	if err != nil {
		t.Fatalf("NewLoop: %v", err)
	}
	b, err := NewLoop(testConfig(3))
	if err != nil {
		t.Fatalf("NewLoop: %v", err)
	}

	for i := 0; i < 10; i++ {
		a.Step([]Event{Event(99), EventQuit})
		b.Step(nil)
	}
	if !reflect.DeepEqual(a.Snapshot(), b.Snapshot()) {
		t.Fatalf("unknown events changed the simulation")
	}
}

func TestRunStopsOnQuit(t *testing.T) {
	l, err := NewLoop(testConfig(1))
	if err != nil {
		t.Fatalf("NewLoop: %v", err)
	}
	res := l.Run(Schedule{3: {EventQuit}}, 0)
	if !res.Quit || res.Ticks != 3 {
		t.Fatalf("result = %+v, want quit after 3 ticks", res)
	}
	if l.State() != Playing {
		t.Fatalf("state = %v, want playing", l.State())
	}
}
