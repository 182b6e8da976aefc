package sim

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidTuning = errors.New("sim: invalid tuning")
	ErrInvalidConfig = errors.New("sim: invalid config")
)

// BirdTuning holds the constants of the jump arc and tilt.
type BirdTuning struct {
	JumpImpulse      float64 // velocity assigned on jump, negative is up
	Accel            float64
	TerminalVelocity float64 // cap on per-tick displacement magnitude
	RiseBias         float64 // extra lift subtracted while rising
	MaxRotation      float64
	RotationStep     float64
	TiltMargin       float64
}

type PipeTuning struct {
	Gap      float64
	GapMin   int
	GapMax   int
	Velocity float64
}

type WorldTuning struct {
	Width      float64
	Height     float64
	Floor      float64
	TickRate   int
	BirdStartX float64
	BirdStartY float64
	FirstPipeX float64
}

type Tuning struct {
	Bird  BirdTuning
	Pipe  PipeTuning
	World WorldTuning
}

const minTilt = -90.0

func DefaultTuning() Tuning {
	return Tuning{
		Bird: BirdTuning{
			JumpImpulse:      -10.5,
			Accel:            3,
			TerminalVelocity: 16,
			RiseBias:         2,
			MaxRotation:      25,
			RotationStep:     20,
			TiltMargin:       50,
		},
		Pipe: PipeTuning{
			Gap:      200,
			GapMin:   100,
			GapMax:   500,
			Velocity: 5,
		},
		World: WorldTuning{
			Width:      600,
			Height:     800,
			Floor:      730,
			TickRate:   30,
			BirdStartX: 230,
			BirdStartY: 350,
			FirstPipeX: 700,
		},
	}
}

// Validate reports the first constant that would make the simulation
// meaningless.
func (t Tuning) Validate() error {
	if err := t.Bird.validate(); err != nil {
		return err
	}
	if err := t.Pipe.validate(); err != nil {
		return err
	}
	w := t.World
	switch {
	case w.Width <= 0 || w.Height <= 0:
		return fmt.Errorf("%w: world size %vx%v", ErrInvalidTuning, w.Width, w.Height)
	case w.Floor <= 0:
		return fmt.Errorf("%w: floor %v", ErrInvalidTuning, w.Floor)
	case w.TickRate <= 0:
		return fmt.Errorf("%w: tick rate %d", ErrInvalidTuning, w.TickRate)
	}
	return nil
}

func (b BirdTuning) validate() error {
	switch {
	case b.TerminalVelocity <= 0:
		return fmt.Errorf("%w: terminal velocity %v", ErrInvalidTuning, b.TerminalVelocity)
	case b.RiseBias < 0:
		return fmt.Errorf("%w: rise bias %v", ErrInvalidTuning, b.RiseBias)
	case b.MaxRotation < minTilt:
		return fmt.Errorf("%w: max rotation %v", ErrInvalidTuning, b.MaxRotation)
	case b.RotationStep < 0:
		return fmt.Errorf("%w: rotation step %v", ErrInvalidTuning, b.RotationStep)
	}
	return nil
}

func (p PipeTuning) validate() error {
	switch {
	case p.Gap <= 0:
		return fmt.Errorf("%w: gap %v", ErrInvalidTuning, p.Gap)
	case p.GapMin < 0 || p.GapMax <= p.GapMin:
		return fmt.Errorf("%w: gap range [%d, %d)", ErrInvalidTuning, p.GapMin, p.GapMax)
	case p.Velocity <= 0:
		return fmt.Errorf("%w: pipe velocity %v", ErrInvalidTuning, p.Velocity)
	}
	return nil
}
