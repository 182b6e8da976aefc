package sim

import (
	"image"
	"image/color"
	"testing"
)

func TestNewMaskFromImageThreshold(t *testing.T) {
	img := image.NewNRGBA(image.Rect(10, 20, 13, 21))
	img.Set(10, 20, color.NRGBA{A: 255})
	img.Set(11, 20, color.NRGBA{A: 127})
	img.Set(12, 20, color.NRGBA{A: 126})

	m := NewMaskFromImage(img, DefaultAlphaThreshold)
	if m.Width() != 3 || m.Height() != 1 {
		t.Fatalf("size = %dx%d, want 3x1", m.Width(), m.Height())
	}
	want := []bool{true, true, false}
	for x, w := range want {
		if m.At(x, 0) != w {
			t.Fatalf("cell %d solid = %v, want %v", x, m.At(x, 0), w)
		}
	}
}

func TestMaskBoundsAndFlip(t *testing.T) {
	m := NewMask(8, 6)
	if !m.Bounds().Empty() {
		t.Fatalf("empty mask bounds = %v", m.Bounds())
	}
	m.Set(2, 1, true)
	m.Set(5, 3, true)
	if got, want := m.Bounds(), image.Rect(2, 1, 6, 4); got != want {
		t.Fatalf("bounds = %v, want %v", got, want)
	}

	f := m.FlipVertical()
	if !f.At(2, 4) || !f.At(5, 2) || f.At(2, 1) {
		t.Fatalf("flip did not mirror rows")
	}
	if f.Count() != 2 {
		t.Fatalf("flipped count = %d, want 2", f.Count())
	}

	m.Set(5, 3, false)
	if got, want := m.Bounds(), image.Rect(2, 1, 3, 2); got != want {
		t.Fatalf("bounds after clear = %v, want %v", got, want)
	}
}

func TestMaskOverlapOffsets(t *testing.T) {
	a := solidMask(4, 4)
	b := solidMask(2, 2)

	cases := []struct {
		name     string
		dx, dy   int
		wantArea int
	}{
		{"inside", 1, 1, 4},
		{"corner", 3, 3, 1},
		{"negative_corner", -1, -1, 1},
		{"touching_right", 4, 0, 0},
		{"touching_above", 0, -2, 0},
		{"far", 50, 50, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := a.OverlapArea(b, c.dx, c.dy); got != c.wantArea {
				t.Fatalf("area = %d, want %d", got, c.wantArea)
			}
			if got := a.Overlap(b, c.dx, c.dy); got != (c.wantArea > 0) {
				t.Fatalf("overlap = %v, want %v", got, c.wantArea > 0)
			}
		})
	}
}

func TestOverlapsSilhouettes(t *testing.T) {
	ring := NewMask(5, 5)
	for i := 0; i < 5; i++ {
		ring.Set(i, 0, true)
		ring.Set(i, 4, true)
		ring.Set(0, i, true)
		ring.Set(4, i, true)
	}
	dot := solidMask(1, 1)

	if Overlaps(Silhouette{Mask: ring, X: 10, Y: 10}, Silhouette{Mask: dot, X: 12, Y: 12}) {
		t.Fatalf("dot in the hole of the ring should not overlap")
	}
	if !Overlaps(Silhouette{Mask: ring, X: 10, Y: 10}, Silhouette{Mask: dot, X: 14, Y: 12}) {
		t.Fatalf("dot on the ring edge should overlap")
	}
	if Overlaps(Silhouette{Mask: ring, X: 10, Y: 10}, Silhouette{Mask: nil, X: 10, Y: 10}) {
		t.Fatalf("nil mask should never overlap")
	}
}
