// Command sprites previews the generated bird and pipe sprites with their
// collision outlines, or writes them to PNG files with -out.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/flappy/assets"
	"github.com/milk9111/flappy/prefabs"
	"github.com/milk9111/flappy/render"
	"golang.org/x/image/colornames"
)

const (
	screenWidth  = 512
	screenHeight = 512
)

type previewGame struct {
	frames      []*ebiten.Image
	outline     *ebiten.Image
	pipe        *ebiten.Image
	current     int
	tick        int
	ticksPerFrm int
	showOutline bool
}

func (g *previewGame) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyO) {
		g.showOutline = !g.showOutline
	}
	g.tick++
	if g.tick >= g.ticksPerFrm {
		g.tick = 0
		g.current = (g.current + 1) % len(g.frames)
	}
	return nil
}

func (g *previewGame) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Skyblue)

	// The pipe is taller than the window; show its lip.
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(screenWidth-float64(g.pipe.Bounds().Dx())-40, screenHeight/2)
	screen.DrawImage(g.pipe, op)

	frame := g.frames[g.current]
	fw, fh := frame.Bounds().Dx(), frame.Bounds().Dy()
	scale := 3.0
	op = &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(screenWidth/2)-float64(fw)*scale, float64(screenHeight/2)-float64(fh)*scale/2)
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(frame, op)

	if g.showOutline {
		op.GeoM.Reset()
		op.GeoM.Translate(-1, -1)
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(float64(screenWidth/2)-float64(fw)*scale, float64(screenHeight/2)-float64(fh)*scale/2)
		screen.DrawImage(g.outline, op)
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("frame %d/%d  O: outline", g.current+1, len(g.frames)), 8, 8)
}

func (g *previewGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

// flapOrder plays the wing frames down and back up.
var flapOrder = []int{0, 1, 2, 1}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func export(dir string, imgs *assets.Images) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	files := map[string]image.Image{
		"pipe.png":              imgs.Pipe,
		"ground.png":            imgs.Ground,
		"bird_mask_outline.png": render.MaskOutline(imgs.BirdMask, 1, colornames.Red),
		"pipe_mask_outline.png": render.MaskOutline(imgs.PipeMask, 1, colornames.Red),
	}
	for i, frame := range imgs.Bird {
		files[fmt.Sprintf("bird_%d.png", i)] = frame
	}
	for name, img := range files {
		path := filepath.Join(dir, name)
		if err := writePNG(path, img); err != nil {
			return fmt.Errorf("sprites: write %s: %w", path, err)
		}
		log.Printf("sprites: wrote %s", path)
	}
	return nil
}

func main() {
	out := flag.String("out", "", "write the sprites as PNG files to this directory instead of opening a window")
	fps := flag.Int("fps", 0, "flap frames per second (0 uses the bird prefab)")
	flag.Parse()

	set, err := prefabs.LoadSet()
	if err != nil {
		log.Fatal(err)
	}
	imgs := assets.BuildImages(set)

	if *out != "" {
		if err := export(*out, imgs); err != nil {
			log.Fatal(err)
		}
		return
	}

	ticks := set.Bird.Animation.FrameTicks * ebiten.DefaultTPS / set.World.TickRate
	if *fps > 0 {
		ticks = ebiten.DefaultTPS / *fps
	}
	if ticks < 1 {
		ticks = 1
	}

	frames := make([]*ebiten.Image, len(flapOrder))
	for i, f := range flapOrder {
		frames[i] = ebiten.NewImageFromImage(imgs.Bird[f])
	}
	g := &previewGame{
		frames:      frames,
		outline:     ebiten.NewImageFromImage(render.MaskOutline(imgs.BirdMask, 1, colornames.Red)),
		pipe:        ebiten.NewImageFromImage(imgs.Pipe),
		ticksPerFrm: ticks,
		showOutline: true,
	}
	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("flappy sprites")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
