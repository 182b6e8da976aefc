package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/flappy/sim"
)

const outlineThickness = 1

var (
	outlineColor = color.RGBA{R: 255, A: 255}
	boxColor     = color.RGBA{R: 255, G: 255, A: 200}
)

// debugOverlay draws the exact silhouettes the collision test uses and the
// broadphase boxes around them.
type debugOverlay struct {
	birdMask *sim.Mask
	pipe     sim.PipeMasks

	birdOutline    *ebiten.Image
	pipeOutline    *ebiten.Image
	pipeTopOutline *ebiten.Image
}

// EnableDebug turns the overlay on. Outlines are built once here.
func (r *Renderer) EnableDebug() {
	if r.debug != nil {
		return
	}
	pipe := sim.NewPipeMasks(r.imgs.PipeMask)
	r.debug = &debugOverlay{
		birdMask:       r.imgs.BirdMask,
		pipe:           pipe,
		birdOutline:    ebiten.NewImageFromImage(MaskOutline(r.imgs.BirdMask, outlineThickness, outlineColor)),
		pipeOutline:    ebiten.NewImageFromImage(MaskOutline(pipe.Bottom, outlineThickness, outlineColor)),
		pipeTopOutline: ebiten.NewImageFromImage(MaskOutline(pipe.Top, outlineThickness, outlineColor)),
	}
}

func (r *Renderer) DebugEnabled() bool {
	return r.debug != nil
}

func (d *debugOverlay) draw(screen *ebiten.Image, s sim.Snapshot) {
	bird := sim.Place(d.birdMask, s.Bird.X, s.Bird.Y)
	d.drawSilhouette(screen, bird, d.birdOutline)

	for _, p := range s.Pipes {
		top := sim.Place(d.pipe.Top, p.X, p.GapTop-float64(d.pipe.Top.Height()))
		bottom := sim.Place(d.pipe.Bottom, p.X, p.GapBottom)
		d.drawSilhouette(screen, top, d.pipeTopOutline)
		d.drawSilhouette(screen, bottom, d.pipeOutline)
	}

	msg := fmt.Sprintf("TPS: %.1f  FPS: %.1f\nTick: %d  State: %s\nY: %.1f  VelY: %.1f  JumpTick: %d  Tilt: %.0f\nPipes: %d",
		ebiten.ActualTPS(), ebiten.ActualFPS(), s.Tick, s.State, s.Bird.Y, s.Bird.VelocityY, s.Bird.JumpTick, s.Bird.Tilt, len(s.Pipes))
	ebitenutil.DebugPrintAt(screen, msg, 10, 10)
}

func (d *debugOverlay) drawSilhouette(screen *ebiten.Image, s sim.Silhouette, outline *ebiten.Image) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(s.X-outlineThickness), float64(s.Y-outlineThickness))
	screen.DrawImage(outline, op)

	bb := s.BB()
	vector.StrokeRect(screen, float32(bb.L), float32(bb.B), float32(bb.R-bb.L), float32(bb.T-bb.B), 1, boxColor, false)
}
