package sim

// BirdView is a read-only copy of the bird for renderers and scripts.
type BirdView struct {
	X, Y      float64
	VelocityY float64
	JumpTick  int
	Tilt      float64
	Width     int
	Height    int
}

type PipeView struct {
	X         float64
	GapTop    float64
	GapBottom float64
	Passed    bool
	Width     int
}

// Snapshot is the state after Tick completed ticks.
type Snapshot struct {
	Tick  int
	Score int
	State State
	Cause EndCause
	Bird  BirdView
	Pipes []PipeView
}

// NextPipe returns the first pipe whose trailing edge is still right of the
// bird's x. A passed pipe stays next until the bird has fully cleared it.
func (s Snapshot) NextPipe() (PipeView, bool) {
	for _, p := range s.Pipes {
		if p.X+float64(p.Width) > s.Bird.X {
			return p, true
		}
	}
	return PipeView{}, false
}
