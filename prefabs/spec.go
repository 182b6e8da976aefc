package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/milk9111/flappy/sim"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

const (
	BirdFile  = "bird.yaml"
	PipeFile  = "pipe.yaml"
	WorldFile = "world.yaml"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type BirdSpec struct {
	Name             string         `yaml:"name"`
	JumpImpulse      float64        `yaml:"jump_impulse"`
	Accel            float64        `yaml:"accel"`
	TerminalVelocity float64        `yaml:"terminal_velocity"`
	RiseBias         float64        `yaml:"rise_bias"`
	MaxRotation      float64        `yaml:"max_rotation"`
	RotationStep     float64        `yaml:"rotation_step"`
	TiltMargin       float64        `yaml:"tilt_margin"`
	Sprite           BirdSpriteSpec `yaml:"sprite"`
	Animation        AnimationSpec  `yaml:"animation"`
}

type BirdSpriteSpec struct {
	Width  int        `yaml:"width"`
	Height int        `yaml:"height"`
	Body   *YAMLColor `yaml:"body"`
	Wing   *YAMLColor `yaml:"wing"`
	Beak   *YAMLColor `yaml:"beak"`
	Eye    *YAMLColor `yaml:"eye"`
}

type AnimationSpec struct {
	FrameTicks int `yaml:"frame_ticks"`
}

type PipeSpec struct {
	Name     string         `yaml:"name"`
	Gap      float64        `yaml:"gap"`
	GapMin   int            `yaml:"gap_min"`
	GapMax   int            `yaml:"gap_max"`
	Velocity float64        `yaml:"velocity"`
	Sprite   PipeSpriteSpec `yaml:"sprite"`
}

type PipeSpriteSpec struct {
	Width       int        `yaml:"width"`
	Height      int        `yaml:"height"`
	LipHeight   int        `yaml:"lip_height"`
	LipOverhang int        `yaml:"lip_overhang"`
	Body        *YAMLColor `yaml:"body"`
	Shade       *YAMLColor `yaml:"shade"`
}

type WorldSpec struct {
	Name         string     `yaml:"name"`
	Width        float64    `yaml:"width"`
	Height       float64    `yaml:"height"`
	Floor        float64    `yaml:"floor"`
	TickRate     int        `yaml:"tick_rate"`
	FirstPipeX   float64    `yaml:"first_pipe_x"`
	BirdStart    PointSpec  `yaml:"bird_start"`
	Sky          *YAMLColor `yaml:"sky"`
	Ground       *YAMLColor `yaml:"ground"`
	GroundStripe *YAMLColor `yaml:"ground_stripe"`
}

type PointSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Set is every spec the game is built from.
type Set struct {
	Bird  BirdSpec
	Pipe  PipeSpec
	World WorldSpec
}

func LoadSet() (*Set, error) {
	bird, err := LoadSpec[BirdSpec](BirdFile)
	if err != nil {
		return nil, err
	}
	pipe, err := LoadSpec[PipeSpec](PipeFile)
	if err != nil {
		return nil, err
	}
	world, err := LoadSpec[WorldSpec](WorldFile)
	if err != nil {
		return nil, err
	}

	set := &Set{Bird: bird, Pipe: pipe, World: world}
	if err := set.Tuning().Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: %w", err)
	}
	return set, nil
}

// Tuning converts the specs into simulation constants.
func (s *Set) Tuning() sim.Tuning {
	return sim.Tuning{
		Bird: sim.BirdTuning{
			JumpImpulse:      s.Bird.JumpImpulse,
			Accel:            s.Bird.Accel,
			TerminalVelocity: s.Bird.TerminalVelocity,
			RiseBias:         s.Bird.RiseBias,
			MaxRotation:      s.Bird.MaxRotation,
			RotationStep:     s.Bird.RotationStep,
			TiltMargin:       s.Bird.TiltMargin,
		},
		Pipe: sim.PipeTuning{
			Gap:      s.Pipe.Gap,
			GapMin:   s.Pipe.GapMin,
			GapMax:   s.Pipe.GapMax,
			Velocity: s.Pipe.Velocity,
		},
		World: sim.WorldTuning{
			Width:      s.World.Width,
			Height:     s.World.Height,
			Floor:      s.World.Floor,
			TickRate:   s.World.TickRate,
			BirdStartX: s.World.BirdStart.X,
			BirdStartY: s.World.BirdStart.Y,
			FirstPipeX: s.World.FirstPipeX,
		},
	}
}

type YAMLColor struct {
	color.Color
}

// Or returns the parsed colour, or fallback when the field was left out.
func (c *YAMLColor) Or(fallback color.Color) color.Color {
	if c == nil || c.Color == nil {
		return fallback
	}
	return c.Color
}

// UnmarshalYAML accepts an SVG colour name ("gold") or hex digits in the
// forms rgb, rrggbb and rrggbbaa, with or without a leading '#'.
func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("prefabs: colour must be a string, got %s", value.Tag)
	}
	raw := strings.TrimSpace(value.Value)

	if named, ok := colornames.Map[strings.ToLower(raw)]; ok {
		c.Color = named
		return nil
	}

	digits := strings.TrimPrefix(raw, "#")
	if len(digits) == 3 {
		digits = string([]byte{digits[0], digits[0], digits[1], digits[1], digits[2], digits[2]})
	}
	if len(digits) == 6 {
		digits += "ff"
	}
	if len(digits) != 8 {
		return fmt.Errorf("prefabs: invalid colour %q", raw)
	}

	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return fmt.Errorf("prefabs: invalid colour %q: %w", raw, err)
	}
	c.Color = color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}
	return nil
}
