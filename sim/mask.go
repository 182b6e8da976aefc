package sim

import (
	"image"
)

// DefaultAlphaThreshold matches the usual sprite mask cut-off: a pixel is
// solid when its alpha is at least half opaque.
const DefaultAlphaThreshold = 127

// Mask is a fixed size grid of solid cells.
type Mask struct {
	w, h int
	bits []uint64

	bounds      image.Rectangle
	boundsValid bool
}

func NewMask(w, h int) *Mask {
	if w < 0 || h < 0 {
		panic("sim: negative mask size")
	}
	return &Mask{w: w, h: h, bits: make([]uint64, (w*h+63)/64)}
}

// NewMaskFromImage marks every pixel whose alpha is >= threshold as solid.
func NewMaskFromImage(img image.Image, threshold uint8) *Mask {
	b := img.Bounds()
	m := NewMask(b.Dx(), b.Dy())
	for y := 0; y < m.h; y++ {
		for x := 0; x < m.w; x++ {
			_, _, _, a := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			if uint8(a>>8) >= threshold {
				m.Set(x, y, true)
			}
		}
	}
	return m
}

func (m *Mask) Width() int  { return m.w }
func (m *Mask) Height() int { return m.h }

func (m *Mask) Set(x, y int, solid bool) {
	if x < 0 || y < 0 || x >= m.w || y >= m.h {
		return
	}
	m.boundsValid = false
	i := y*m.w + x
	if solid {
		m.bits[i/64] |= 1 << (i % 64)
	} else {
		m.bits[i/64] &^= 1 << (i % 64)
	}
}

// At reports whether the cell is solid; cells outside the mask are empty.
func (m *Mask) At(x, y int) bool {
	if x < 0 || y < 0 || x >= m.w || y >= m.h {
		return false
	}
	i := y*m.w + x
	return m.bits[i/64]&(1<<(i%64)) != 0
}

func (m *Mask) Count() int {
	n := 0
	for y := 0; y < m.h; y++ {
		for x := 0; x < m.w; x++ {
			if m.At(x, y) {
				n++
			}
		}
	}
	return n
}

// FlipVertical returns a new mask mirrored top to bottom.
func (m *Mask) FlipVertical() *Mask {
	out := NewMask(m.w, m.h)
	for y := 0; y < m.h; y++ {
		for x := 0; x < m.w; x++ {
			if m.At(x, y) {
				out.Set(x, m.h-1-y, true)
			}
		}
	}
	return out
}

// Bounds is the tightest rectangle holding every solid cell, or the empty
// rectangle when the mask has none.
func (m *Mask) Bounds() image.Rectangle {
	if m.boundsValid {
		return m.bounds
	}
	r := image.Rectangle{}
	first := true
	for y := 0; y < m.h; y++ {
		for x := 0; x < m.w; x++ {
			if !m.At(x, y) {
				continue
			}
			cell := image.Rect(x, y, x+1, y+1)
			if first {
				r = cell
				first = false
				continue
			}
			r = r.Union(cell)
		}
	}
	m.bounds = r
	m.boundsValid = true
	return r
}

// Overlap reports whether other, with its origin placed at (dx, dy) in m's
// coordinates, shares at least one solid cell with m.
func (m *Mask) Overlap(other *Mask, dx, dy int) bool {
	return m.overlap(other, dx, dy, true) > 0
}

// OverlapArea counts the shared solid cells at the given offset.
func (m *Mask) OverlapArea(other *Mask, dx, dy int) int {
	return m.overlap(other, dx, dy, false)
}

func (m *Mask) overlap(other *Mask, dx, dy int, stopAtFirst bool) int {
	if m == nil || other == nil {
		return 0
	}
	x0, x1 := max(0, dx), min(m.w, dx+other.w)
	y0, y1 := max(0, dy), min(m.h, dy+other.h)
	n := 0
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if m.At(x, y) && other.At(x-dx, y-dy) {
				n++
				if stopAtFirst {
					return n
				}
			}
		}
	}
	return n
}
