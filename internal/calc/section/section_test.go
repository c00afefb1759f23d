package section

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlasticModulusI(t *testing.T) {
	// 300x20 flanges, 12 mm web, 600 mm deep:
	// 300*20*580 + 12*560^2/4 = 3480000 + 940800
	got := PlasticModulusI(300, 20, 12, 600)
	assert.InDelta(t, 4_420_800, got, 0.1)
}

func TestRectangle(t *testing.T) {
	assert.InDelta(t, 200*400*400/6.0, RectangleZ(200, 400), 0.1)
	assert.InDelta(t, 200*400*400*400/12.0, RectangleI(200, 400), 0.1)
}

func TestWebShearArea(t *testing.T) {
	assert.InDelta(t, 7200, WebShearArea(12, 600), 0.1)
}
