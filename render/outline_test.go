package render

import (
	"image/color"
	"testing"

	"github.com/milk9111/flappy/sim"
)

func TestMaskOutline(t *testing.T) {
	m := sim.NewMask(3, 3)
	m.Set(1, 1, true)
	red := color.RGBA{R: 255, A: 255}

	out := MaskOutline(m, 1, red)
	if b := out.Bounds(); b.Dx() != 5 || b.Dy() != 5 {
		t.Fatalf("outline size = %v, want 5x5", b)
	}

	cases := []struct {
		name string
		x, y int
		want bool
	}{
		{"solid_cell_left_clear", 2, 2, false},
		{"left_of_cell", 1, 2, true},
		{"diagonal", 3, 3, true},
		{"two_away", 0, 2, false},
		{"corner", 4, 4, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := out.RGBAAt(c.x, c.y) == red
			if got != c.want {
				t.Fatalf("(%d, %d) outlined = %v, want %v", c.x, c.y, got, c.want)
			}
		})
	}
}
