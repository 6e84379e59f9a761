package main

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten"
)

// Nine stretches a nine-patch source over any rectangle: corners keep their
// size, edges stretch along one axis and the centre along both.
type Nine struct {
	image          *ebiten.Image
	R, G, B, alpha float64
	// positions are the source x/y cuts: 0, left/top border, right/bottom border, size
	positions [4][2]int
	target    [4][2]float64
}

func NewNine(src *ebiten.Image, border int) *Nine {
	w, h := src.Size()
	return &Nine{
		image:     src,
		R:         1, G: 1, B: 1, alpha: 1,
		positions: [4][2]int{{0, 0}, {border, border}, {w - border, h - border}, {w, h}},
	}
}

func (n *Nine) SetColor(c color.RGBA) {
	n.R, n.G, n.B, n.alpha = ColorScale(c)
}

func (n *Nine) SetRect(r image.Rectangle) {
	n.target[0] = [2]float64{float64(r.Min.X), float64(r.Min.Y)}
	n.target[1] = [2]float64{
		float64(r.Min.X + n.positions[1][0]),
		float64(r.Min.Y + n.positions[1][1])}
	n.target[2] = [2]float64{
		float64(r.Max.X - (n.positions[3][0] - n.positions[2][0])),
		float64(r.Max.Y - (n.positions[3][1] - n.positions[2][1]))}
	n.target[3] = [2]float64{float64(r.Max.X), float64(r.Max.Y)}
}

func (n *Nine) Draw(screen *ebiten.Image) {
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			src := image.Rect(
				n.positions[col][0], n.positions[row][1],
				n.positions[col+1][0], n.positions[row+1][1])
			if src.Empty() {
				continue
			}
			dw := n.target[col+1][0] - n.target[col][0]
			dh := n.target[row+1][1] - n.target[row][1]
			if dw <= 0 || dh <= 0 {
				continue
			}
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(dw/float64(src.Dx()), dh/float64(src.Dy()))
			op.GeoM.Translate(n.target[col][0], n.target[row][1])
			op.ColorM.Scale(n.R, n.G, n.B, n.alpha)
			logDrawError("frame", screen.DrawImage(n.image.SubImage(src).(*ebiten.Image), op))
		}
	}
}
