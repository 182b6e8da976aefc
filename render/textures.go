package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/flappy/assets"
)

// Textures are the GPU copies of the generated sprites.
type Textures struct {
	Bird    [assets.BirdFrameCount]*ebiten.Image
	Pipe    *ebiten.Image
	PipeTop *ebiten.Image
	Ground  *ebiten.Image
}

func NewTextures(imgs *assets.Images) *Textures {
	t := &Textures{
		Pipe:   ebiten.NewImageFromImage(imgs.Pipe),
		Ground: ebiten.NewImageFromImage(imgs.Ground),
	}
	for i, frame := range imgs.Bird {
		t.Bird[i] = ebiten.NewImageFromImage(frame)
	}

	// The hanging pipe is the upright one drawn upside down.
	b := imgs.Pipe.Bounds()
	t.PipeTop = ebiten.NewImage(b.Dx(), b.Dy())
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(1, -1)
	op.GeoM.Translate(0, float64(b.Dy()))
	t.PipeTop.DrawImage(t.Pipe, op)
	return t
}
