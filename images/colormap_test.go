package images

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlasmaColormapEndpoints(t *testing.T) {
	low := PlasmaColormap(0)
	assert.Equal(t, uint8(13), low.R)
	assert.Equal(t, uint8(8), low.G)
	assert.Equal(t, uint8(135), low.B)
	assert.Equal(t, uint8(255), low.A)

	high := PlasmaColormap(1)
	assert.Equal(t, uint8(240), high.R)
	assert.Equal(t, uint8(249), high.G)
	assert.Equal(t, uint8(33), high.B)
}

func TestPlasmaColormapClamps(t *testing.T) {
	assert.Equal(t, PlasmaColormap(0), PlasmaColormap(-1), "values below 0 clamp to the low end")
	assert.Equal(t, PlasmaColormap(1), PlasmaColormap(2), "values above 1 clamp to the high end")
}

func TestPlasmaColormapInterpolates(t *testing.T) {
	// Red rises monotonically through the low half of the map.
	assert.Less(t, PlasmaColormap(0).R, PlasmaColormap(0.25).R)
	assert.Less(t, PlasmaColormap(0.25).R, PlasmaColormap(0.5).R)
}
