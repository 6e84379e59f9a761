package model

import "fmt"

const (
	Rows     = 10
	Cols     = 10
	NumMines = 15
)

type Cell struct {
	Row, Col      int
	Mine          bool
	Revealed      bool
	Flagged       bool
	AdjacentMines int
}

// Grid is indexed Cells[row][col].
type Grid struct {
	Rows, Cols int
	Mines      int
	Cells      [][]*Cell
}

type GameState int

const (
	PLAYING GameState = iota + 1
	WON
	LOST
)

func (s GameState) Name() string {
	switch s {
	case PLAYING:
		return "PLAYING"
	case WON:
		return "WON"
	case LOST:
		return "LOST"
	default:
		return fmt.Sprintf("N/A(%d)", s)
	}
}

// Outcome of a single reveal request.
type Outcome int

const (
	Revealed Outcome = iota
	Detonated
	Ignored
)

func (o Outcome) Name() string {
	switch o {
	case Revealed:
		return "REVEALED"
	case Detonated:
		return "DETONATED"
	case Ignored:
		return "IGNORED"
	default:
		return fmt.Sprintf("N/A(%d)", o)
	}
}

type Cursor struct {
	Row, Col int
}
