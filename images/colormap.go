package images

import (
	"image/color"

	"github.com/chewxy/math32"
)

// plasmaAnchors are evenly spaced samples of the plasma colormap, from
// dark blue through magenta and orange to yellow.
var plasmaAnchors = [][3]float32{
	{0.050383, 0.029803, 0.527975},
	{0.417642, 0.000564, 0.658390},
	{0.692840, 0.165141, 0.564522},
	{0.881443, 0.392529, 0.383229},
	{0.988260, 0.652325, 0.211364},
	{0.940015, 0.975158, 0.131326},
}

// PlasmaColormap maps t in [0, 1] to a plasma pseudocolor. Values
// outside the range are clamped. Colors between anchor points are
// linearly interpolated.
func PlasmaColormap(t float32) color.RGBA {
	t = math32.Max(0, math32.Min(1, t))

	scaled := t * float32(len(plasmaAnchors)-1)
	i := int(scaled)
	if i >= len(plasmaAnchors)-1 {
		i = len(plasmaAnchors) - 2
	}
	frac := scaled - float32(i)

	lo := plasmaAnchors[i]
	hi := plasmaAnchors[i+1]

	return color.RGBA{
		R: uint8(math32.Round((lo[0] + (hi[0]-lo[0])*frac) * 255)),
		G: uint8(math32.Round((lo[1] + (hi[1]-lo[1])*frac) * 255)),
		B: uint8(math32.Round((lo[2] + (hi[2]-lo[2])*frac) * 255)),
		A: 255,
	}
}
