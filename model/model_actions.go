package model

import (
	"math/rand"

	"github.com/gammazero/deque"
)

// NewGrid places mines uniformly at random and computes adjacency counts.
func NewGrid(rows, cols, mines int, rnd *rand.Rand) *Grid {
	g := newEmptyGrid(rows, cols)
	if mines > rows*cols {
		mines = rows * cols
	}
	placed := 0
	for placed < mines {
		r, c := rnd.Intn(rows), rnd.Intn(cols)
		if !g.Cells[r][c].Mine {
			g.Cells[r][c].Mine = true
			placed++
		}
	}
	g.Mines = placed
	g.countAdjacent()
	return g
}

func newEmptyGrid(rows, cols int) *Grid {
	cells := make([][]*Cell, 0, rows)
	for r := 0; r < rows; r++ {
		row := make([]*Cell, 0, cols)
		for c := 0; c < cols; c++ {
			row = append(row, &Cell{Row: r, Col: c})
		}
		cells = append(cells, row)
	}
	return &Grid{Rows: rows, Cols: cols, Cells: cells}
}

func (g *Grid) countAdjacent() {
	for _, row := range g.Cells {
		for _, cell := range row {
			if cell.Mine {
				continue
			}
			count := 0
			g.neighbours(cell.Row, cell.Col, func(n *Cell) {
				if n.Mine {
					count++
				}
			})
			cell.AdjacentMines = count
		}
	}
}

func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.Rows && col >= 0 && col < g.Cols
}

// At returns nil outside the grid.
func (g *Grid) At(row, col int) *Cell {
	if !g.InBounds(row, col) {
		return nil
	}
	return g.Cells[row][col]
}

func (g *Grid) neighbours(row, col int, fn func(*Cell)) {
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			if n := g.At(row+dr, col+dc); n != nil {
				fn(n)
			}
		}
	}
}

// Reveal opens the cell and cascades through zero-adjacency cells.
// Invalid, revealed and flagged targets are ignored.
func (g *Grid) Reveal(row, col int) (int, Outcome) {
	cell := g.At(row, col)
	if cell == nil || cell.Revealed || cell.Flagged {
		return 0, Ignored
	}
	cell.Revealed = true
	if cell.Mine {
		return 1, Detonated
	}

	count := 1
	var queue deque.Deque[*Cell]
	queue.PushBack(cell)
	for queue.Len() != 0 {
		current := queue.PopFront()
		if current.AdjacentMines != 0 {
			continue
		}
		g.neighbours(current.Row, current.Col, func(n *Cell) {
			if n.Revealed || n.Flagged {
				return
			}
			n.Revealed = true
			count++
			queue.PushBack(n)
		})
	}
	return count, Revealed
}

// ToggleFlag flips the flag of a covered cell. ok is false when nothing changed.
func (g *Grid) ToggleFlag(row, col int) (flagged bool, ok bool) {
	cell := g.At(row, col)
	if cell == nil || cell.Revealed {
		return false, false
	}
	cell.Flagged = !cell.Flagged
	return cell.Flagged, true
}

// Cleared reports whether every non-mine cell is revealed.
func (g *Grid) Cleared() bool {
	for _, row := range g.Cells {
		for _, cell := range row {
			if !cell.Mine && !cell.Revealed {
				return false
			}
		}
	}
	return true
}

func (g *Grid) RevealMines() {
	for _, row := range g.Cells {
		for _, cell := range row {
			if cell.Mine {
				cell.Revealed = true
			}
		}
	}
}
