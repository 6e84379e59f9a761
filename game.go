package main

import (
	"image"
	"image/color"
	"math/rand"
	"strconv"
	"time"

	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/ebitenutil"
	"github.com/hajimehoshi/ebiten/inpututil"
	"github.com/hajimehoshi/ebiten/text"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/image/font"

	"github.com/zucenko/xenosweep/assets"
	"github.com/zucenko/xenosweep/layout"
	"github.com/zucenko/xenosweep/model"
	"github.com/zucenko/xenosweep/sprite"
)

// errQuit ends the frame loop on Escape.
var errQuit = errors.New("quit")

const frameBorder = 2

type Game struct {
	Session *model.Session
	Layout  *layout.Layout

	fonts       *assets.Fonts
	icon        *ebiten.Image
	placeholder *ebiten.Image
	mine        *ebiten.Image
	flag        *ebiten.Image
	frame       *Nine
}

func NewGame(cfg Config) (*Game, error) {
	g := &Game{
		Session: model.NewSession(cfg.Rows, cfg.Cols, cfg.Mines,
			rand.New(rand.NewSource(time.Now().UnixNano())), time.Now),
		Layout: layout.New(cfg.Rows, cfg.Cols),
		fonts:  LoadFonts(cfg.FontPath),
	}

	var err error
	if icon := LoadIcon(cfg.IconPath); icon != nil {
		ebiten.SetWindowIcon([]image.Image{icon})
		if g.icon, err = ebiten.NewImageFromImage(icon, ebiten.FilterNearest); err != nil {
			return nil, errors.Wrap(err, "icon image")
		}
	}
	if g.placeholder, err = ebiten.NewImageFromImage(sprite.Disc(40, 20, ColorIconPlaceholder), ebiten.FilterDefault); err != nil {
		return nil, errors.Wrap(err, "placeholder image")
	}
	if g.mine, err = ebiten.NewImageFromImage(sprite.Disc(layout.CellSize, layout.CellSize/3, ColorMine), ebiten.FilterDefault); err != nil {
		return nil, errors.Wrap(err, "mine image")
	}
	if g.flag, err = ebiten.NewImageFromImage(sprite.Flag(layout.CellSize, ColorFlag), ebiten.FilterDefault); err != nil {
		return nil, errors.Wrap(err, "flag image")
	}
	frame, err := ebiten.NewImageFromImage(sprite.Frame(3*frameBorder, frameBorder), ebiten.FilterNearest)
	if err != nil {
		return nil, errors.Wrap(err, "frame image")
	}
	g.frame = NewNine(frame, frameBorder)
	return g, nil
}

func (g *Game) update(screen *ebiten.Image) error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return errQuit
	}
	for _, a := range KeyActions() {
		g.Session.Apply(a)
	}
	for _, p := range JustPressed() {
		if g.Layout.OnResetButton(p.Position()) {
			g.Session.Apply(model.Reset)
		}
	}
	g.Session.Tick()

	if ebiten.IsDrawingSkipped() {
		return nil
	}
	g.draw(screen)
	return nil
}

func (g *Game) draw(screen *ebiten.Image) {
	l := g.Layout
	logDrawError("background", screen.Fill(ColorBackground))

	drawText(screen, "ALIEN MINESWEEPER", g.fonts.Title,
		20, l.Title.Min.Y+l.Title.Dy()/2-lineHeight(g.fonts.Title)/2, ColorTextBright)

	g.drawHeader(screen)
	g.drawPanel(screen)

	cursor := g.Session.Cursor
	for r, row := range g.Session.Grid.Cells {
		for c, cell := range row {
			selected := r == cursor.Row && c == cursor.Col && g.Session.State == model.PLAYING
			g.drawCell(screen, cell, selected)
		}
	}

	switch g.Session.State {
	case model.WON:
		drawTextCentered(screen, "SECTOR CLEARED!", g.fonts.Large, l.Banner, ColorTextAccent)
	case model.LOST:
		drawTextCentered(screen, "PODS DETONATED!", g.fonts.Large, l.Banner, ColorMine)
	}
}

func (g *Game) drawHeader(screen *ebiten.Image) {
	l := g.Layout
	fillRect(screen, l.Header, ColorAccent)

	x := l.MineCounter.X
	icon := g.icon
	if icon == nil {
		icon = g.placeholder
	}
	w, h := icon.Size()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x), float64(l.MineCounter.Y-h/2))
	logDrawError("mine icon", screen.DrawImage(icon, op))
	x += w + 10

	medium := g.fonts.Medium
	drawText(screen, g.Session.Counter(), medium, x, l.MineCounter.Y-lineHeight(medium)/2, ColorTextBright)
	drawTextCentered(screen, g.Session.Clock(), medium, l.Timer, ColorTextBright)

	button := ColorButton
	if l.OnResetButton(ebiten.CursorPosition()) {
		button = ColorButtonHover
	}
	fillRect(screen, l.ResetButton, button)
	g.drawFrame(screen, l.ResetButton, ColorGridLines)
	drawTextCentered(screen, "RESCAN", g.fonts.Small, center(l.ResetButton), ColorTextBright)
}

func (g *Game) drawPanel(screen *ebiten.Image) {
	l := g.Layout
	npc := g.Session.Npc
	fillRect(screen, l.Panel, ColorAccent)

	fillRect(screen, l.Portrait, ColorPortrait)
	drawText(screen, npc.Name, g.fonts.Medium, l.Portrait.Min.X+10, l.Portrait.Min.Y+10, ColorTextBright)

	fillRect(screen, l.Instructions, ColorCellUnrevealed)
	g.drawFrame(screen, l.Instructions, ColorGridLines)
	small := g.fonts.VerySmall
	drawLines(screen, model.Instructions, small, l.Instructions, ColorTextInstruction)

	face := g.fonts.Small
	maxChars := (l.Dialogue.Dx() - 20) / maxInt(1, font.MeasureString(face, "X").Ceil())
	drawLines(screen, layout.Wrap(npc.Dialogue, maxChars), face, l.Dialogue, ColorTextBright)
}

// drawLines writes lines top-down inside r, stopping before overflowing it.
func drawLines(screen *ebiten.Image, lines []string, face font.Face, r image.Rectangle, clr color.Color) {
	spacing := lineHeight(face) + 4
	y := r.Min.Y + 10
	for _, line := range lines {
		if y > r.Max.Y-spacing {
			break
		}
		drawText(screen, line, face, r.Min.X+10, y, clr)
		y += spacing
	}
}

func (g *Game) drawCell(screen *ebiten.Image, cell *model.Cell, selected bool) {
	r := g.Layout.Cell(cell.Row, cell.Col)
	switch {
	case cell.Revealed:
		fillRect(screen, r, ColorCellRevealed)
		if cell.Mine {
			drawAt(screen, g.mine, r.Min)
		} else if cell.AdjacentMines > 0 {
			clr, ok := NumberColors[cell.AdjacentMines]
			if !ok {
				clr = ColorTextBright
			}
			drawTextCentered(screen, strconv.Itoa(cell.AdjacentMines), g.fonts.Medium, center(r), clr)
		}
	default:
		fillRect(screen, r, ColorCellUnrevealed)
		if cell.Flagged {
			drawAt(screen, g.flag, r.Min)
		}
	}
	strokeRect(screen, r, 1, ColorGridLines)
	if selected {
		strokeRect(screen, r, 3, ColorCursor)
	}
}

func (g *Game) drawFrame(screen *ebiten.Image, r image.Rectangle, c color.RGBA) {
	g.frame.SetColor(c)
	g.frame.SetRect(r)
	g.frame.Draw(screen)
}

func drawAt(screen, img *ebiten.Image, p image.Point) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(p.X), float64(p.Y))
	logDrawError("sprite", screen.DrawImage(img, op))
}

// logDrawError reports a failed draw call; the frame carries on without it.
func logDrawError(what string, err error) {
	if err != nil {
		log.WithError(err).Errorf("drawing %s", what)
	}
}

func fillRect(screen *ebiten.Image, r image.Rectangle, clr color.Color) {
	ebitenutil.DrawRect(screen, float64(r.Min.X), float64(r.Min.Y), float64(r.Dx()), float64(r.Dy()), clr)
}

func strokeRect(screen *ebiten.Image, r image.Rectangle, width int, clr color.Color) {
	fillRect(screen, image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+width), clr)
	fillRect(screen, image.Rect(r.Min.X, r.Max.Y-width, r.Max.X, r.Max.Y), clr)
	fillRect(screen, image.Rect(r.Min.X, r.Min.Y, r.Min.X+width, r.Max.Y), clr)
	fillRect(screen, image.Rect(r.Max.X-width, r.Min.Y, r.Max.X, r.Max.Y), clr)
}

func center(r image.Rectangle) image.Point {
	return image.Pt(r.Min.X+r.Dx()/2, r.Min.Y+r.Dy()/2)
}

func lineHeight(face font.Face) int {
	m := face.Metrics()
	return (m.Ascent + m.Descent).Ceil()
}

// drawText draws s with its top-left corner at x, top.
func drawText(screen *ebiten.Image, s string, face font.Face, x, top int, clr color.Color) {
	text.Draw(screen, s, face, x, top+face.Metrics().Ascent.Ceil(), clr)
}

func drawTextCentered(screen *ebiten.Image, s string, face font.Face, c image.Point, clr color.Color) {
	w := font.MeasureString(face, s).Ceil()
	drawText(screen, s, face, c.X-w/2, c.Y-lineHeight(face)/2, clr)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func main() {
	cfg := DefaultConfig()
	game, err := NewGame(cfg)
	if err != nil {
		log.Fatal(err)
	}
	ebiten.SetMaxTPS(cfg.TPS)
	log.WithFields(log.Fields{
		"rows":  cfg.Rows,
		"cols":  cfg.Cols,
		"mines": cfg.Mines,
	}).Info("starting")
	err = ebiten.Run(game.update, game.Layout.ScreenWidth, game.Layout.ScreenHeight, 1, cfg.Title)
	if err != nil && errors.Cause(err) != errQuit {
		log.Fatal(err)
	}
}
