package sim

import "math"

// Bird is the player. Its height is recomputed every tick from the ticks
// elapsed since the last jump rather than integrated.
type Bird struct {
	X, Y      float64
	VelocityY float64
	JumpTick  int
	Tilt      float64
	// JumpY is Y at the moment of the last jump.
	JumpY float64

	mask *Mask
	t    BirdTuning
}

func NewBird(x, y float64, mask *Mask, t BirdTuning) *Bird {
	if mask == nil {
		panic("sim: bird needs a mask")
	}
	if err := t.validate(); err != nil {
		panic(err)
	}
	return &Bird{X: x, Y: y, JumpY: y, mask: mask, t: t}
}

func (b *Bird) Jump() {
	b.VelocityY = b.t.JumpImpulse
	b.JumpTick = 0
	b.JumpY = b.Y
}

// Move advances the bird one tick and returns the displacement applied.
func (b *Bird) Move() float64 {
	b.JumpTick++
	t := float64(b.JumpTick)

	d := b.VelocityY*t + 0.5*b.t.Accel*t*t
	if math.Abs(d) >= b.t.TerminalVelocity {
		d = math.Copysign(b.t.TerminalVelocity, d)
	}
	if d < 0 {
		d -= b.t.RiseBias
	}
	b.Y += d

	if d < 0 || b.Y < b.JumpY+b.t.TiltMargin {
		if b.Tilt < b.t.MaxRotation {
			b.Tilt = b.t.MaxRotation
		}
	} else if b.Tilt > minTilt {
		b.Tilt = math.Max(b.Tilt-b.t.RotationStep, minTilt)
	}
	return d
}

func (b *Bird) Silhouette() Silhouette {
	return Place(b.mask, b.X, b.Y)
}

// Size is the sprite size the silhouette was built from.
func (b *Bird) Size() (w, h int) {
	return b.mask.Width(), b.mask.Height()
}

// Bottom is the world Y of the bird's lower edge.
func (b *Bird) Bottom() float64 {
	return b.Y + float64(b.mask.Height())
}
