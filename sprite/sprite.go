// Package sprite rasterises the few flat shapes the board needs, so the game
// has no image assets beyond the optional icon.
package sprite

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/vector"
)

const discSegments = 48

// Disc returns a size x size image with a filled circle of radius r centred in it.
func Disc(size int, r float64, clr color.Color) *image.RGBA {
	z := vector.NewRasterizer(size, size)
	cx, cy := float64(size)/2, float64(size)/2
	for i := 0; i < discSegments; i++ {
		a := 2 * math.Pi * float64(i) / discSegments
		x, y := float32(cx+r*math.Cos(a)), float32(cy+r*math.Sin(a))
		if i == 0 {
			z.MoveTo(x, y)
		} else {
			z.LineTo(x, y)
		}
	}
	z.ClosePath()
	return fill(z, size, size, clr)
}

// Triangle returns a w x h image with the filled triangle p0, p1, p2.
func Triangle(w, h int, p0, p1, p2 [2]float32, clr color.Color) *image.RGBA {
	z := vector.NewRasterizer(w, h)
	z.MoveTo(p0[0], p0[1])
	z.LineTo(p1[0], p1[1])
	z.LineTo(p2[0], p2[1])
	z.ClosePath()
	return fill(z, w, h, clr)
}

// Flag is the beacon marker for a cell of the given size.
func Flag(size int, clr color.Color) *image.RGBA {
	s := float32(size)
	return Triangle(size, size,
		[2]float32{s / 2, s * 0.15},
		[2]float32{s * 0.15, s/2 + s*0.15},
		[2]float32{s - s*0.15, s/2 + s*0.15},
		clr)
}

// Frame is a white square ring of the given border width, used as a nine-patch
// source: corners are border x border and the centre is transparent.
func Frame(size, border int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if x < border || y < border || x >= size-border || y >= size-border {
				img.Set(x, y, color.White)
			}
		}
	}
	return img
}

func fill(z *vector.Rasterizer, w, h int, clr color.Color) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	z.Draw(dst, dst.Bounds(), image.NewUniform(clr), image.Point{})
	return dst
}
