package sim

import (
	"image"
	"math"

	"github.com/jakecoffman/cp"
)

// Silhouette is a mask placed in world space.
type Silhouette struct {
	Mask *Mask
	X, Y int
}

// Collidable is anything that can present its exact shape at its current
// position.
type Collidable interface {
	Silhouette() Silhouette
}

// Bounds returns the world-space box around the solid cells.
func (s Silhouette) Bounds() image.Rectangle {
	if s.Mask == nil {
		return image.Rectangle{}
	}
	return s.Mask.Bounds().Add(image.Pt(s.X, s.Y))
}

// BB is the broadphase box. Y grows downward, so B is the top edge.
func (s Silhouette) BB() cp.BB {
	r := s.Bounds()
	return cp.BB{L: float64(r.Min.X), B: float64(r.Min.Y), R: float64(r.Max.X), T: float64(r.Max.Y)}
}

// Overlaps reports whether two silhouettes share a solid cell. The chipmunk
// box test only rejects pairs that cannot touch; the mask test decides.
func Overlaps(a, b Silhouette) bool {
	if a.Mask == nil || b.Mask == nil {
		return false
	}
	if a.Bounds().Empty() || b.Bounds().Empty() {
		return false
	}
	if !a.BB().Intersects(b.BB()) {
		return false
	}
	return a.Mask.Overlap(b.Mask, b.X-a.X, b.Y-a.Y)
}

// Place puts m at the world position rounded to the nearest cell.
func Place(m *Mask, x, y float64) Silhouette {
	return Silhouette{Mask: m, X: int(math.Round(x)), Y: int(math.Round(y))}
}
