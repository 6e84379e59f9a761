package sprite

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

var pink = color.RGBA{240, 90, 120, 255}

func alphaAt(img *image.RGBA, x, y int) uint8 {
	return img.RGBAAt(x, y).A
}

func TestDisc(t *testing.T) {
	img := Disc(56, 56/3, pink)
	assert.Equal(t, image.Rect(0, 0, 56, 56), img.Bounds())
	assert.Equal(t, pink, img.RGBAAt(28, 28))
	assert.Zero(t, alphaAt(img, 0, 0))
	assert.Zero(t, alphaAt(img, 55, 55))
	assert.Zero(t, alphaAt(img, 28, 4))
	assert.Equal(t, uint8(255), alphaAt(img, 28, 14))
}

func TestFlag(t *testing.T) {
	img := Flag(56, pink)
	// centroid of the triangle is filled, the bottom row is not
	assert.Equal(t, pink, img.RGBAAt(28, 30))
	assert.Zero(t, alphaAt(img, 28, 50))
	assert.Zero(t, alphaAt(img, 2, 2))
}

func TestFrame(t *testing.T) {
	img := Frame(12, 2)
	assert.Equal(t, uint8(255), alphaAt(img, 0, 0))
	assert.Equal(t, uint8(255), alphaAt(img, 1, 6))
	assert.Equal(t, uint8(255), alphaAt(img, 11, 11))
	assert.Zero(t, alphaAt(img, 2, 2))
	assert.Zero(t, alphaAt(img, 6, 6))
	assert.Zero(t, alphaAt(img, 9, 9))
}
