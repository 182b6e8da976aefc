package assets

import (
	"image"
	"image/color"
	"math"

	"github.com/milk9111/flappy/prefabs"
	"github.com/milk9111/flappy/sim"
	"golang.org/x/image/colornames"
)

// BirdFrameCount is the number of wing positions in the flap cycle.
const BirdFrameCount = 3

var wingOffsets = [BirdFrameCount]float64{-0.12, 0, 0.12}

// Images holds the CPU-side sprites and the collision masks cut from them.
type Images struct {
	Bird     [BirdFrameCount]*image.NRGBA
	Pipe     *image.NRGBA
	Ground   *image.NRGBA
	BirdMask *sim.Mask
	PipeMask *sim.Mask
}

func BuildImages(set *prefabs.Set) *Images {
	imgs := &Images{
		Pipe:   PipeImage(set.Pipe.Sprite),
		Ground: GroundImage(int(set.World.Height-set.World.Floor), set.World),
	}
	for i := range imgs.Bird {
		imgs.Bird[i] = BirdImage(set.Bird.Sprite, i)
	}
	// Wings are clipped to the body, so every frame has the same outline.
	imgs.BirdMask = sim.NewMaskFromImage(imgs.Bird[0], sim.DefaultAlphaThreshold)
	imgs.PipeMask = sim.NewMaskFromImage(imgs.Pipe, sim.DefaultAlphaThreshold)
	return imgs
}

// BirdImage draws one frame of the bird: an oval body with a beak pointing
// right, an eye and a wing whose height depends on frame.
func BirdImage(spec prefabs.BirdSpriteSpec, frame int) *image.NRGBA {
	w, h := spec.Width, spec.Height
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	body := spec.Body.Or(colornames.Gold)
	wing := spec.Wing.Or(colornames.White)
	beak := spec.Beak.Or(colornames.Darkorange)
	eye := spec.Eye.Or(colornames.Black)

	fw, fh := float64(w), float64(h)
	bodyW := fw * 0.82
	cx, cy := bodyW/2, fh/2
	rx, ry := bodyW/2-0.5, fh/2-0.5

	wingY := fh * (0.58 + wingOffsets[frame%BirdFrameCount])
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			px, py := float64(x)+0.5, float64(y)+0.5
			if inEllipse(px, py, cx, cy, rx, ry) {
				c := body
				if inEllipse(px, py, fw*0.3, wingY, fw*0.2, fh*0.16) {
					c = wing
				}
				if math.Hypot(px-fw*0.6, py-fh*0.32) < fh*0.1 {
					c = eye
				}
				img.Set(x, y, c)
				continue
			}
			// Beak: a wedge from the front of the body to the right edge.
			if px >= bodyW*0.85 && math.Abs(py-fh*0.55) < (fw-px)*0.45 {
				img.Set(x, y, beak)
			}
		}
	}
	return img
}

func inEllipse(px, py, cx, cy, rx, ry float64) bool {
	dx, dy := (px-cx)/rx, (py-cy)/ry
	return dx*dx+dy*dy <= 1
}

// PipeImage draws an upright pipe with a lip at the top that overhangs the
// shaft on both sides. The corners beside the shaft stay transparent.
func PipeImage(spec prefabs.PipeSpriteSpec) *image.NRGBA {
	w, h := spec.Width, spec.Height
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	body := spec.Body.Or(colornames.Limegreen)
	shade := spec.Shade.Or(colornames.Darkgreen)

	for y := 0; y < h; y++ {
		left, right := spec.LipOverhang, w-spec.LipOverhang
		if y < spec.LipHeight {
			left, right = 0, w
		}
		for x := left; x < right; x++ {
			c := body
			edge := x-left < 2 || right-x <= 2 || y == spec.LipHeight-1 || y < 2
			if edge || x >= left+(right-left)*2/3 {
				c = shade
			}
			img.Set(x, y, c)
		}
	}
	return img
}

// GroundImage is one tile of the scrolling floor strip.
func GroundImage(height int, world prefabs.WorldSpec) *image.NRGBA {
	const tile = 48
	if height < 1 {
		height = 1
	}
	img := image.NewNRGBA(image.Rect(0, 0, tile, height))
	ground := world.Ground.Or(colornames.Wheat)
	stripe := world.GroundStripe.Or(colornames.Yellowgreen)
	dark := darken(stripe, 0.8)

	for y := 0; y < height; y++ {
		for x := 0; x < tile; x++ {
			var c color.Color = ground
			switch {
			case y < 12 && (x+y)%24 < 12:
				c = stripe
			case y < 12:
				c = dark
			case y < 14:
				c = darken(ground, 0.7)
			}
			img.Set(x, y, c)
		}
	}
	return img
}

func darken(c color.Color, f float64) color.Color {
	r, g, b, a := c.RGBA()
	return color.NRGBA{
		R: uint8(float64(r>>8) * f),
		G: uint8(float64(g>>8) * f),
		B: uint8(float64(b>>8) * f),
		A: uint8(a >> 8),
	}
}
