// Package assets turns the optional font and icon files into usable resources.
// Callers decide what to do when a file is missing; Fallback covers the font.
package assets

import (
	"image"
	"io"

	// icon format
	_ "image/png"

	"github.com/golang/freetype/truetype"
	"github.com/pkg/errors"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

const (
	dpi = 72

	SizeVerySmall = 12
	SizeSmall     = 16
	SizeMedium    = 20
	SizeLarge     = 28
	SizeTitle     = 32
)

type Fonts struct {
	VerySmall font.Face
	Small     font.Face
	Medium    font.Face
	Large     font.Face
	Title     font.Face
}

// LoadFonts parses a TrueType font and builds the faces at the game sizes.
func LoadFonts(r io.Reader) (*Fonts, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading font")
	}
	tt, err := truetype.Parse(data)
	if err != nil {
		return nil, errors.Wrap(err, "parsing font")
	}
	face := func(size float64) font.Face {
		return truetype.NewFace(tt, &truetype.Options{
			Size:    size,
			DPI:     dpi,
			Hinting: font.HintingFull,
		})
	}
	return &Fonts{
		VerySmall: face(SizeVerySmall),
		Small:     face(SizeSmall),
		Medium:    face(SizeMedium),
		Large:     face(SizeLarge),
		Title:     face(SizeTitle),
	}, nil
}

// Fallback uses the built-in 7x13 face for every size.
func Fallback() *Fonts {
	f := basicfont.Face7x13
	return &Fonts{VerySmall: f, Small: f, Medium: f, Large: f, Title: f}
}

// LoadIcon decodes an image and scales it to size x size, nearest neighbour so
// pixel art stays crisp.
func LoadIcon(r io.Reader, size int) (image.Image, error) {
	src, format, err := image.Decode(r)
	if err != nil {
		return nil, errors.Wrap(err, "decoding icon")
	}
	if size <= 0 {
		return nil, errors.Errorf("invalid icon size %d for %s icon", size, format)
	}
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return dst, nil
}
