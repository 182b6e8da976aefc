package render

import (
	"image"
	"image/color"

	"github.com/milk9111/flappy/sim"
)

// MaskOutline returns an image the size of m grown by thickness on every
// side, with outlineCol on empty cells within thickness of a solid one.
// Cell (0, 0) of the mask lands at (thickness, thickness).
func MaskOutline(m *sim.Mask, thickness int, outlineCol color.RGBA) *image.RGBA {
	w := m.Width() + 2*thickness
	h := m.Height() + 2*thickness
	out := image.NewRGBA(image.Rect(0, 0, w, h))

	solid := func(x, y int) bool {
		return m.At(x-thickness, y-thickness)
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if solid(x, y) {
				continue
			}
			found := false
			for yy := y - thickness; yy <= y+thickness && !found; yy++ {
				for xx := x - thickness; xx <= x+thickness; xx++ {
					if solid(xx, yy) {
						found = true
						break
					}
				}
			}
			if found {
				out.SetRGBA(x, y, outlineCol)
			}
		}
	}
	return out
}
