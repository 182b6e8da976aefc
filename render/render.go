package render

import (
	"bytes"
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/flappy/assets"
	"github.com/milk9111/flappy/prefabs"
	"github.com/milk9111/flappy/sim"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/gofont/goregular"
)

// flapCycle walks the wing frames down and back up.
var flapCycle = [...]int{0, 1, 2, 1}

// Renderer draws snapshots. It never touches simulation state.
type Renderer struct {
	tex  *Textures
	imgs *assets.Images

	sky         color.Color
	floor       float64
	scrollSpeed float64
	frameTicks  int

	fontSource *text.GoTextFaceSource
	scoreFace  *text.GoTextFace
	smallFace  *text.GoTextFace

	debug *debugOverlay
}

// New uploads imgs to the GPU and loads the score font.
func New(set *prefabs.Set, imgs *assets.Images) (*Renderer, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("render: load font: %w", err)
	}
	frameTicks := set.Bird.Animation.FrameTicks
	if frameTicks <= 0 {
		frameTicks = 5
	}
	return &Renderer{
		tex:         NewTextures(imgs),
		imgs:        imgs,
		sky:         set.World.Sky.Or(colornames.Skyblue),
		floor:       set.World.Floor,
		scrollSpeed: set.Pipe.Velocity,
		frameTicks:  frameTicks,
		fontSource:  src,
		scoreFace:   &text.GoTextFace{Source: src, Size: 56},
		smallFace:   &text.GoTextFace{Source: src, Size: 24},
	}, nil
}

// Draw renders the world as of s: sky, pipes, ground, bird and score.
func (r *Renderer) Draw(screen *ebiten.Image, s sim.Snapshot) {
	screen.Fill(r.sky)

	for _, p := range s.Pipes {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(math.Round(p.X), p.GapTop-float64(r.tex.PipeTop.Bounds().Dy()))
		screen.DrawImage(r.tex.PipeTop, op)

		op = &ebiten.DrawImageOptions{}
		op.GeoM.Translate(math.Round(p.X), p.GapBottom)
		screen.DrawImage(r.tex.Pipe, op)
	}

	r.drawGround(screen, s.Tick)
	r.drawBird(screen, s)

	if r.debug != nil {
		r.debug.draw(screen, s)
	}
}

// drawGround tiles the floor strip, scrolled at pipe speed.
func (r *Renderer) drawGround(screen *ebiten.Image, tick int) {
	tileW := r.tex.Ground.Bounds().Dx()
	offset := math.Mod(float64(tick)*r.scrollSpeed, float64(tileW))
	screenW := screen.Bounds().Dx()
	for x := -offset; x < float64(screenW); x += float64(tileW) {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(x, r.floor)
		screen.DrawImage(r.tex.Ground, op)
	}
}

func (r *Renderer) drawBird(screen *ebiten.Image, s sim.Snapshot) {
	frame := flapCycle[(s.Tick/r.frameTicks)%len(flapCycle)]
	// Diving birds hold their wings level.
	if s.Bird.Tilt <= -80 || s.State == sim.Ended {
		frame = 1
	}
	img := r.tex.Bird[frame]
	w, h := float64(img.Bounds().Dx()), float64(img.Bounds().Dy())

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-w/2, -h/2)
	op.GeoM.Rotate(-s.Bird.Tilt * math.Pi / 180)
	op.GeoM.Translate(math.Round(s.Bird.X)+w/2, math.Round(s.Bird.Y)+h/2)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, op)
}

// DrawScore prints the score centred near the top with a drop shadow.
func (r *Renderer) DrawScore(screen *ebiten.Image, score int) {
	r.drawCentered(screen, fmt.Sprintf("%d", score), r.scoreFace, 40)
}

// DrawBanner prints a headline and an optional hint line centred on screen.
func (r *Renderer) DrawBanner(screen *ebiten.Image, headline, hint string) {
	h := float64(screen.Bounds().Dy())
	r.drawCentered(screen, headline, r.scoreFace, h*0.3)
	if hint != "" {
		r.drawCentered(screen, hint, r.smallFace, h*0.3+80)
	}
}

func (r *Renderer) drawCentered(screen *ebiten.Image, str string, face *text.GoTextFace, y float64) {
	cx := float64(screen.Bounds().Dx()) / 2
	for _, pass := range []struct {
		dx, dy float64
		c      color.Color
	}{
		{3, 3, color.NRGBA{A: 160}},
		{0, 0, color.White},
	} {
		op := &text.DrawOptions{}
		op.GeoM.Translate(cx+pass.dx, y+pass.dy)
		op.ColorScale.ScaleWithColor(pass.c)
		op.PrimaryAlign = text.AlignCenter
		text.Draw(screen, str, face, op)
	}
}

// FontSource is shared with the menus so every label uses one typeface.
func (r *Renderer) FontSource() *text.GoTextFaceSource {
	return r.fontSource
}
