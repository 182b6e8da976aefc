package sim

import "testing"

func pipeTuning(gapMin, gapMax int) PipeTuning {
	t := DefaultTuning().Pipe
	t.GapMin = gapMin
	t.GapMax = gapMax
	return t
}

func TestNewPipeGap(t *testing.T) {
	cases := []struct {
		name    string
		draw    int
		wantTop float64
	}{
		{"low_end", 0, 100},
		{"middle", 150, 250},
		{"wraps", 450, 150},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := NewPipe(700, fixedRandom(c.draw), NewPipeMasks(solidMask(104, 640)), DefaultTuning().Pipe)
			if p.GapTop != c.wantTop {
				t.Fatalf("gap top = %v, want %v", p.GapTop, c.wantTop)
			}
			for i := 0; i < 10; i++ {
				if got := p.GapBottom - p.GapTop; got != 200 {
					t.Fatalf("move %d: gap = %v, want 200", i, got)
				}
				p.Move()
			}
			if p.X != 650 {
				t.Fatalf("x after 10 moves = %v, want 650", p.X)
			}
		})
	}
}

func TestNewPipeGapStaysInRange(t *testing.T) {
	rnd := NewRandom(7)
	masks := NewPipeMasks(solidMask(104, 640))
	for i := 0; i < 500; i++ {
		p := NewPipe(0, rnd, masks, DefaultTuning().Pipe)
		if p.GapTop < 100 || p.GapTop >= 500 {
			t.Fatalf("gap top %v outside [100, 500)", p.GapTop)
		}
	}
}

func TestNewPipePanicsOnInvalidInput(t *testing.T) {
	masks := NewPipeMasks(solidMask(104, 640))
	negative := DefaultTuning().Pipe
	negative.Gap = -10

	cases := []struct {
		name  string
		rnd   Random
		masks PipeMasks
		t     PipeTuning
	}{
		{"negative_gap", fixedRandom(0), masks, negative},
		{"empty_range", fixedRandom(0), masks, pipeTuning(300, 300)},
		{"nil_random", nil, masks, DefaultTuning().Pipe},
		{"no_masks", fixedRandom(0), PipeMasks{}, DefaultTuning().Pipe},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Fatalf("expected panic")
				}
			}()
			NewPipe(0, c.rnd, c.masks, c.t)
		})
	}
}

func TestPipeCollideAtSilhouetteBoundary(t *testing.T) {
	// Top obstacle covers y [0, 100), bottom obstacle starts at y 300,
	// both span x [100, 120).
	p := NewPipe(100, fixedRandom(0), NewPipeMasks(solidMask(20, 100)), pipeTuning(100, 101))
	bird := solidMask(10, 10)

	cases := []struct {
		name string
		x, y float64
		want bool
	}{
		{"top_corner_one_cell", 91, 99, true},
		{"top_shift_down", 91, 100, false},
		{"top_shift_left", 90, 99, false},
		{"bottom_corner_one_cell", 91, 291, true},
		{"bottom_shift_up", 91, 290, false},
		{"in_gap", 105, 200, false},
		{"inside_bottom", 105, 350, true},
		{"rounded_into_top", 91, 99.4, true},
		{"rounded_out_of_top", 91, 99.6, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b := NewBird(c.x, c.y, bird, DefaultTuning().Bird)
			if got := p.Collide(b); got != c.want {
				t.Fatalf("collide = %v, want %v", got, c.want)
			}
		})
	}

	b := NewBird(91, 99, bird, DefaultTuning().Bird)
	top := p.TopObstacle().Silhouette()
	if n := b.Silhouette().Mask.OverlapArea(top.Mask, top.X-91, top.Y-99); n != 1 {
		t.Fatalf("overlap area = %d, want 1", n)
	}
}

func TestPipeCollideIgnoresEmptyCornersOfLip(t *testing.T) {
	// A pipe with a wide lip at the gap end and a narrower shaft, like the
	// sprite. Cells beside the shaft are inside the bounding box but empty.
	shape := NewMask(30, 100)
	for y := 0; y < 100; y++ {
		for x := 0; x < 30; x++ {
			if y < 10 || (x >= 5 && x < 25) {
				shape.Set(x, y, true)
			}
		}
	}
	p := NewPipe(100, fixedRandom(0), NewPipeMasks(shape), pipeTuning(100, 101))
	bird := solidMask(4, 4)

	// Bottom obstacle starts at y 300; its shaft spans x [105, 125).
	beside := NewBird(100, 320, bird, DefaultTuning().Bird)
	if p.Collide(beside) {
		t.Fatalf("bird beside the shaft should not collide")
	}
	if !beside.Silhouette().BB().Intersects(p.BottomObstacle().Silhouette().BB()) {
		t.Fatalf("bounding boxes should overlap for this layout")
	}

	onLip := NewBird(100, 305, bird, DefaultTuning().Bird)
	if !p.Collide(onLip) {
		t.Fatalf("bird on the lip should collide")
	}

	// The hanging obstacle is mirrored: its lip is the bottom 10 rows, y [90, 100).
	underTopShaft := NewBird(100, 80, bird, DefaultTuning().Bird)
	if p.Collide(underTopShaft) {
		t.Fatalf("bird beside the hanging shaft should not collide")
	}
	onTopLip := NewBird(100, 92, bird, DefaultTuning().Bird)
	if !p.Collide(onTopLip) {
		t.Fatalf("bird on the hanging lip should collide")
	}
}

func TestPipeOffScreen(t *testing.T) {
	p := NewPipe(0, fixedRandom(0), NewPipeMasks(solidMask(104, 640)), DefaultTuning().Pipe)
	cases := []struct {
		x    float64
		want bool
	}{
		{0, false},
		{-104, false},
		{-105, true},
	}
	for _, c := range cases {
		p.X = c.x
		if got := p.OffScreen(); got != c.want {
			t.Fatalf("x=%v: off screen = %v, want %v", c.x, got, c.want)
		}
	}
}
