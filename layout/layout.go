// Package layout computes the fixed screen geometry: title bar, header, NPC panel
// on the left and the grid on the right.
package layout

import (
	"image"
	"strings"
	"unicode/utf8"
)

const (
	CellSize     = 56
	GridMargin   = 4
	TitleHeight  = 60
	HeaderHeight = 100

	HeaderPadding = 30
	ButtonWidth   = 140
	ButtonHeight  = HeaderHeight - 2*20

	PanelPadding      = 20
	PortraitHeight    = 160
	InstructionHeight = 120
)

type Layout struct {
	Rows, Cols                int
	ScreenWidth, ScreenHeight int
	GridWidth, GridHeight     int
	PanelWidth                int

	Title, Header, Panel image.Rectangle
	ResetButton          image.Rectangle
	Portrait             image.Rectangle
	Instructions         image.Rectangle
	Dialogue             image.Rectangle

	// MineCounter is the left edge and vertical centre of the icon + counter group.
	MineCounter image.Point
	// Timer is the centre of the timer text.
	Timer image.Point
	// Banner is the centre of the game over message.
	Banner image.Point
}

// New lays out a 16:9 screen for a rows x cols grid.
func New(rows, cols int) *Layout {
	l := &Layout{Rows: rows, Cols: cols}
	l.GridWidth = cols*(CellSize+GridMargin) + GridMargin
	l.GridHeight = rows*(CellSize+GridMargin) + GridMargin
	l.ScreenHeight = TitleHeight + HeaderHeight + l.GridHeight
	l.ScreenWidth = l.ScreenHeight * 16 / 9
	l.PanelWidth = l.ScreenWidth - l.GridWidth

	top := TitleHeight + HeaderHeight
	l.Title = image.Rect(0, 0, l.ScreenWidth, TitleHeight)
	l.Header = image.Rect(0, TitleHeight, l.ScreenWidth, top)
	l.Panel = image.Rect(0, top, l.PanelWidth, l.ScreenHeight)

	bx := l.ScreenWidth - ButtonWidth - HeaderPadding
	by := TitleHeight + (HeaderHeight-ButtonHeight)/2
	l.ResetButton = image.Rect(bx, by, bx+ButtonWidth, by+ButtonHeight)

	inner := l.PanelWidth - 2*PanelPadding
	l.Portrait = image.Rect(PanelPadding, top+PanelPadding, PanelPadding+inner, top+PanelPadding+PortraitHeight)
	iy := l.Portrait.Max.Y + PanelPadding
	l.Instructions = image.Rect(PanelPadding, iy, PanelPadding+inner, iy+InstructionHeight)
	dy := l.Instructions.Max.Y + PanelPadding
	dh := l.ScreenHeight - l.Instructions.Max.Y - PanelPadding - top
	l.Dialogue = image.Rect(PanelPadding, dy, PanelPadding+inner, dy+dh)

	l.MineCounter = image.Pt(l.PanelWidth+HeaderPadding, TitleHeight+HeaderHeight/2)
	l.Timer = image.Pt(l.PanelWidth+l.GridWidth/2, TitleHeight+HeaderHeight/2)
	l.Banner = image.Pt(l.PanelWidth+l.GridWidth/2, top+l.GridHeight/2)
	return l
}

// Cell is the screen rectangle of the cell at row, col.
func (l *Layout) Cell(row, col int) image.Rectangle {
	x := l.PanelWidth + GridMargin + col*(CellSize+GridMargin)
	y := TitleHeight + HeaderHeight + GridMargin + row*(CellSize+GridMargin)
	return image.Rect(x, y, x+CellSize, y+CellSize)
}

// OnResetButton reports whether the screen point x, y hits the reset button.
func (l *Layout) OnResetButton(x, y int) bool {
	return image.Pt(x, y).In(l.ResetButton)
}

// Wrap greedily packs the words of every line into rows of at most maxChars
// runes. A single word longer than maxChars gets a row of its own.
func Wrap(lines []string, maxChars int) []string {
	var out []string
	for _, line := range lines {
		current := ""
		for _, word := range strings.Split(line, " ") {
			if utf8.RuneCountInString(current)+utf8.RuneCountInString(word)+1 <= maxChars {
				current += word + " "
				continue
			}
			if s := strings.TrimSpace(current); s != "" {
				out = append(out, s)
			}
			current = word + " "
		}
		if s := strings.TrimSpace(current); s != "" {
			out = append(out, s)
		}
	}
	return out
}
