package main

import "image/color"

func Hex(u uint32) color.RGBA {
	return color.RGBA{R: uint8(u >> 16), G: uint8(u >> 8), B: uint8(u), A: 0xff}
}

// ColorScale gives the ColorM factors that tint a white source to c.
func ColorScale(c color.RGBA) (r, g, b, a float64) {
	return float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255, float64(c.A) / 255
}

var (
	ColorBackground      = Hex(0x302040)
	ColorAccent          = Hex(0x483060)
	ColorGridLines       = Hex(0x604080)
	ColorCellUnrevealed  = Hex(0x3c2850)
	ColorCellRevealed    = Hex(0x1e1428)
	ColorTextBright      = Hex(0xffb45a)
	ColorTextInstruction = Hex(0xb4dcff)
	ColorTextAccent      = Hex(0x78dca0)
	ColorMine            = Hex(0xf05a78)
	ColorFlag            = Hex(0xff963c)
	ColorCursor          = Hex(0xffff00)
	ColorButton          = Hex(0x604080)
	ColorButtonHover     = Hex(0x785096)
	ColorPortrait        = Hex(0x329632)
	ColorIconPlaceholder = Hex(0x32c832)
)

var NumberColors = map[int]color.RGBA{
	1: Hex(0x64b4ff),
	2: Hex(0x64dc64),
	3: Hex(0xff6464),
	4: Hex(0xb464dc),
	5: Hex(0xc83232),
	6: Hex(0x32c8c8),
	7: Hex(0x646464),
	8: Hex(0xc8c8c8),
}
