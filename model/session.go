package model

import (
	"fmt"
	"math/rand"
	"time"

	log "github.com/sirupsen/logrus"
)

type Action int

const (
	MoveUp Action = iota + 1
	MoveDown
	MoveLeft
	MoveRight
	Reveal
	Flag
	Reset
)

func (a Action) Name() string {
	switch a {
	case MoveUp:
		return "UP"
	case MoveDown:
		return "DOWN"
	case MoveLeft:
		return "LEFT"
	case MoveRight:
		return "RIGHT"
	case Reveal:
		return "REVEAL"
	case Flag:
		return "FLAG"
	case Reset:
		return "RESET"
	default:
		return fmt.Sprintf("N/A(%d)", a)
	}
}

// Session is the whole mutable game state. The frame loop is its only mutator.
type Session struct {
	State          GameState
	Grid           *Grid
	Cursor         Cursor
	MinesRemaining int
	Elapsed        time.Duration
	Npc            *Npc

	rows, cols, mines int
	started           time.Time
	rnd               *rand.Rand
	now               func() time.Time
}

func NewSession(rows, cols, mines int, rnd *rand.Rand, now func() time.Time) *Session {
	s := &Session{
		rows:  rows,
		cols:  cols,
		mines: mines,
		rnd:   rnd,
		now:   now,
		Npc:   NewNpc(),
	}
	s.newGame()
	return s
}

func (s *Session) newGame() {
	s.Grid = NewGrid(s.rows, s.cols, s.mines, s.rnd)
	s.State = PLAYING
	s.Cursor = Cursor{}
	s.MinesRemaining = s.Grid.Mines
	s.started = s.now()
	s.Elapsed = 0
}

func (s *Session) Apply(a Action) {
	if a == Reset {
		s.Reset()
		return
	}
	if s.State != PLAYING {
		return
	}
	switch a {
	case MoveUp:
		s.move(-1, 0)
	case MoveDown:
		s.move(1, 0)
	case MoveLeft:
		s.move(0, -1)
	case MoveRight:
		s.move(0, 1)
	case Reveal:
		s.reveal()
	case Flag:
		s.flag()
	}
}

func (s *Session) Reset() {
	s.newGame()
	s.Npc.Say(msgRescan...)
	log.WithFields(log.Fields{"mines": s.Grid.Mines}).Info("sector re-scanned")
}

func (s *Session) move(dRow, dCol int) {
	s.Cursor.Row = clamp(s.Cursor.Row+dRow, 0, s.Grid.Rows-1)
	s.Cursor.Col = clamp(s.Cursor.Col+dCol, 0, s.Grid.Cols-1)
}

func (s *Session) reveal() {
	row, col := s.Cursor.Row, s.Cursor.Col
	count, outcome := s.Grid.Reveal(row, col)
	log.WithFields(log.Fields{
		"row":     row,
		"col":     col,
		"count":   count,
		"outcome": outcome.Name(),
	}).Debug("reveal")
	switch outcome {
	case Detonated:
		s.Grid.RevealMines()
		s.Npc.Say(msgDetonate...)
		s.setState(LOST)
	case Revealed:
		s.Npc.scanned(s.Grid.Cells[row][col], count, s.rnd)
	}
}

func (s *Session) flag() {
	flagged, ok := s.Grid.ToggleFlag(s.Cursor.Row, s.Cursor.Col)
	if !ok {
		return
	}
	if flagged {
		s.MinesRemaining--
		s.Npc.Say(msgPlaced...)
	} else {
		s.MinesRemaining++
		s.Npc.Say(msgRemoved...)
	}
}

// Tick advances the timer and checks for a win. Called once per frame.
func (s *Session) Tick() {
	if s.State != PLAYING {
		return
	}
	if s.Grid.Cleared() {
		s.Npc.Say(msgWon...)
		s.setState(WON)
		return
	}
	s.Elapsed = s.now().Sub(s.started).Truncate(time.Second)
}

func (s *Session) setState(state GameState) {
	log.WithFields(log.Fields{
		"from":    s.State.Name(),
		"to":      state.Name(),
		"elapsed": s.Elapsed,
	}).Info("game state")
	s.State = state
}

// Clock renders the elapsed time as MM:SS.
func (s *Session) Clock() string {
	secs := int(s.Elapsed / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

// Counter renders the remaining-mine counter, which may be negative.
func (s *Session) Counter() string {
	return fmt.Sprintf("%03d", s.MinesRemaining)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
