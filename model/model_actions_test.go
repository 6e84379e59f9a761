package model

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gridFrom builds a grid from rows of '*' (mine) and '.' (safe).
func gridFrom(t *testing.T, lines ...string) *Grid {
	t.Helper()
	require.NotEmpty(t, lines)
	g := newEmptyGrid(len(lines), len(lines[0]))
	for r, line := range lines {
		require.Len(t, line, g.Cols)
		for c, ch := range line {
			if ch == '*' {
				g.Cells[r][c].Mine = true
				g.Mines++
			}
		}
	}
	g.countAdjacent()
	return g
}

func revealedCount(g *Grid) int {
	n := 0
	for _, row := range g.Cells {
		for _, cell := range row {
			if cell.Revealed {
				n++
			}
		}
	}
	return n
}

func TestNewGridMineCountAndAdjacency(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		g := NewGrid(Rows, Cols, NumMines, rand.New(rand.NewSource(seed)))

		mines := 0
		for r := 0; r < g.Rows; r++ {
			for c := 0; c < g.Cols; c++ {
				cell := g.Cells[r][c]
				assert.Equal(t, r, cell.Row)
				assert.Equal(t, c, cell.Col)
				if cell.Mine {
					mines++
					continue
				}
				expected := 0
				for dr := -1; dr <= 1; dr++ {
					for dc := -1; dc <= 1; dc++ {
						nr, nc := r+dr, c+dc
						if (dr != 0 || dc != 0) && nr >= 0 && nr < g.Rows && nc >= 0 && nc < g.Cols && g.Cells[nr][nc].Mine {
							expected++
						}
					}
				}
				assert.Equal(t, expected, cell.AdjacentMines, "seed %d cell (%d,%d)", seed, r, c)
			}
		}
		require.Equal(t, NumMines, mines, "seed %d", seed)
		assert.Equal(t, NumMines, g.Mines)
	}
}

func TestNewGridClampsMines(t *testing.T) {
	g := NewGrid(3, 3, 20, rand.New(rand.NewSource(1)))
	assert.Equal(t, 9, g.Mines)
	assert.True(t, g.Cleared())
}

func TestAdjacencyClippedAtEdges(t *testing.T) {
	g := gridFrom(t,
		"*..",
		"...",
		"..*",
	)
	assert.Equal(t, 1, g.Cells[0][1].AdjacentMines)
	assert.Equal(t, 2, g.Cells[1][1].AdjacentMines)
	assert.Equal(t, 0, g.Cells[0][2].AdjacentMines)
	assert.Equal(t, 0, g.Cells[2][0].AdjacentMines)
}

func TestRevealNumberedCellDoesNotCascade(t *testing.T) {
	g := gridFrom(t,
		"*...",
		"....",
		"....",
	)
	count, outcome := g.Reveal(1, 1)
	assert.Equal(t, Revealed, outcome)
	assert.Equal(t, 1, count)
	assert.Equal(t, 1, revealedCount(g))
}

func TestRevealCascadesThroughZeroRegion(t *testing.T) {
	g := gridFrom(t,
		"....*",
		"....*",
		"*****",
		".....",
	)
	count, outcome := g.Reveal(0, 0)
	require.Equal(t, Revealed, outcome)

	// (0,0)-(0,2) are zero; row 1 and (0,3) are numbered and stop the cascade.
	for r := 0; r < 2; r++ {
		for c := 0; c < 4; c++ {
			assert.True(t, g.Cells[r][c].Revealed, "(%d,%d)", r, c)
		}
	}
	for c := 0; c < 5; c++ {
		assert.False(t, g.Cells[2][c].Revealed)
		assert.False(t, g.Cells[3][c].Revealed)
	}
	assert.False(t, g.Cells[0][4].Revealed)
	assert.Equal(t, 8, count)
	assert.Equal(t, 8, revealedCount(g))
}

func TestRevealFullyZeroBoardTerminates(t *testing.T) {
	g := NewGrid(Rows, Cols, 0, rand.New(rand.NewSource(3)))
	count, outcome := g.Reveal(4, 7)
	assert.Equal(t, Revealed, outcome)
	assert.Equal(t, Rows*Cols, count)
	assert.True(t, g.Cleared())
}

func TestRevealIsIdempotent(t *testing.T) {
	g := gridFrom(t,
		"*..",
		"...",
		"...",
	)
	first, _ := g.Reveal(2, 2)
	before := revealedCount(g)
	count, outcome := g.Reveal(2, 2)
	assert.Equal(t, Ignored, outcome)
	assert.Zero(t, count)
	assert.Equal(t, before, revealedCount(g))
	assert.Equal(t, first, before)
}

func TestRevealIgnoresFlaggedAndOutOfRange(t *testing.T) {
	g := gridFrom(t,
		"*..",
		"...",
		"...",
	)
	_, ok := g.ToggleFlag(2, 2)
	require.True(t, ok)

	count, outcome := g.Reveal(2, 2)
	assert.Equal(t, Ignored, outcome)
	assert.Zero(t, count)

	for _, p := range [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 3}} {
		count, outcome = g.Reveal(p[0], p[1])
		assert.Equal(t, Ignored, outcome)
		assert.Zero(t, count)
	}
	assert.Zero(t, revealedCount(g))
}

func TestCascadeSkipsFlaggedNeighbours(t *testing.T) {
	g := gridFrom(t,
		"....",
		"....",
		"...*",
	)
	g.ToggleFlag(0, 3)
	g.Reveal(0, 0)
	assert.False(t, g.Cells[0][3].Revealed)
	assert.True(t, g.Cells[0][3].Flagged)
	assert.True(t, g.Cells[0][2].Revealed)
}

func TestRevealMine(t *testing.T) {
	g := gridFrom(t,
		"*..",
		"...",
		"..*",
	)
	count, outcome := g.Reveal(0, 0)
	assert.Equal(t, Detonated, outcome)
	assert.Equal(t, 1, count)
	assert.False(t, g.Cells[2][2].Revealed)

	g.RevealMines()
	assert.True(t, g.Cells[2][2].Revealed)
}

func TestToggleFlag(t *testing.T) {
	g := gridFrom(t,
		"*..",
		"...",
	)
	flagged, ok := g.ToggleFlag(0, 0)
	assert.True(t, ok)
	assert.True(t, flagged)

	flagged, ok = g.ToggleFlag(0, 0)
	assert.True(t, ok)
	assert.False(t, flagged)

	g.Reveal(1, 2)
	_, ok = g.ToggleFlag(1, 2)
	assert.False(t, ok)

	_, ok = g.ToggleFlag(5, 5)
	assert.False(t, ok)
}

func TestClearedIgnoresMineState(t *testing.T) {
	g := gridFrom(t,
		"*.",
		".*",
	)
	assert.False(t, g.Cleared())
	g.Cells[0][1].Revealed = true
	g.Cells[1][0].Revealed = true
	assert.True(t, g.Cleared())

	g.ToggleFlag(0, 0)
	assert.True(t, g.Cleared())
	g.RevealMines()
	assert.True(t, g.Cleared())
}
