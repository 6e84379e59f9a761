package main

import (
	"image"

	"github.com/hajimehoshi/ebiten/ebitenutil"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/zucenko/xenosweep/assets"
	"github.com/zucenko/xenosweep/layout"
	"github.com/zucenko/xenosweep/model"
)

type Config struct {
	Title    string
	FontPath string
	IconPath string
	TPS      int

	Rows, Cols, Mines int
}

func DefaultConfig() Config {
	return Config{
		Title:    "Alien Minesweeper",
		FontPath: "PressStart2P-Regular.ttf",
		IconPath: "alien_head_icon.png",
		TPS:      30,
		Rows:     model.Rows,
		Cols:     model.Cols,
		Mines:    model.NumMines,
	}
}

// LoadFonts never fails: a missing or broken font file falls back to the
// built-in face.
func LoadFonts(path string) *assets.Fonts {
	fonts, err := openFonts(path)
	if err != nil {
		log.WithError(err).Warnf("pixel font %q not found, using default font", path)
		return assets.Fallback()
	}
	return fonts
}

func openFonts(path string) (*assets.Fonts, error) {
	file, err := ebitenutil.OpenFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", path)
	}
	defer file.Close()
	return assets.LoadFonts(file)
}

// LoadIcon returns nil when the icon is unavailable; the header then draws a
// placeholder.
func LoadIcon(path string) image.Image {
	icon, err := openIcon(path, layout.HeaderHeight/2)
	if err != nil {
		log.WithError(err).Warnf("alien icon %q not found, using placeholder", path)
		return nil
	}
	return icon
}

func openIcon(path string, size int) (image.Image, error) {
	file, err := ebitenutil.OpenFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", path)
	}
	defer file.Close()
	return assets.LoadIcon(file, size)
}
