package sim

// PipeMasks are the two obstacle shapes of a pipe. The top obstacle is the
// bottom sprite mirrored vertically.
type PipeMasks struct {
	Top    *Mask
	Bottom *Mask
}

func NewPipeMasks(bottom *Mask) PipeMasks {
	return PipeMasks{Top: bottom.FlipVertical(), Bottom: bottom}
}

func (m PipeMasks) valid() bool {
	return m.Top != nil && m.Bottom != nil
}

// Obstacle is one half of a pipe placed in the world.
type Obstacle struct {
	Mask *Mask
	X, Y float64
}

func (o Obstacle) Silhouette() Silhouette {
	return Place(o.Mask, o.X, o.Y)
}

// Pipe is a pair of obstacles scrolling left with a passable gap between
// them. GapBottom-GapTop is fixed for the pipe's lifetime.
type Pipe struct {
	X         float64
	GapTop    float64
	GapBottom float64
	Passed    bool

	masks PipeMasks
	t     PipeTuning
}

func NewPipe(x float64, rnd Random, masks PipeMasks, t PipeTuning) *Pipe {
	if rnd == nil {
		panic("sim: pipe needs a random source")
	}
	if !masks.valid() {
		panic("sim: pipe needs top and bottom masks")
	}
	if err := t.validate(); err != nil {
		panic(err)
	}
	top := float64(t.GapMin + rnd.Intn(t.GapMax-t.GapMin))
	return &Pipe{
		X:         x,
		GapTop:    top,
		GapBottom: top + t.Gap,
		masks:     masks,
		t:         t,
	}
}

func (p *Pipe) Move() {
	p.X -= p.t.Velocity
}

// TopObstacle hangs from above with its lower edge on GapTop.
func (p *Pipe) TopObstacle() Obstacle {
	return Obstacle{Mask: p.masks.Top, X: p.X, Y: p.GapTop - float64(p.masks.Top.Height())}
}

// BottomObstacle rises from below with its upper edge on GapBottom.
func (p *Pipe) BottomObstacle() Obstacle {
	return Obstacle{Mask: p.masks.Bottom, X: p.X, Y: p.GapBottom}
}

// Collide runs the exact shape test of c against both obstacles.
func (p *Pipe) Collide(c Collidable) bool {
	s := c.Silhouette()
	top := Overlaps(s, p.TopObstacle().Silhouette())
	bottom := Overlaps(s, p.BottomObstacle().Silhouette())
	return top || bottom
}

func (p *Pipe) Width() int {
	return p.masks.Bottom.Width()
}

// OffScreen reports whether the trailing edge has left the screen on the left.
func (p *Pipe) OffScreen() bool {
	return p.X+float64(p.Width()) < 0
}
