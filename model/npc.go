package model

import (
	"fmt"
	"math/rand"
)

const NpcName = "Zylar"

var Instructions = []string{
	"ARROWS: Move Cursor",
	"ENTER: Scan Cell",
	"SPACE: Place/Remove Beacon",
	"R: Rescan Sector",
	"ESC: Abort Mission",
}

var (
	msgWelcome  = []string{"Welcome Xeno-Miner!"}
	msgRescan   = []string{"Sector re-scanned."}
	msgDetonate = []string{"XENO-POD DETONATED!", "MISSION FAILURE!"}
	msgWon      = []string{"ALL CLEAR!", "SECTOR SECURED!"}
	msgPlaced   = []string{"BEACON PLACED."}
	msgRemoved  = []string{"BEACON REMOVED."}
)

// Npc holds the side panel dialogue. It never influences game logic.
type Npc struct {
	Name     string
	Dialogue []string
}

func NewNpc() *Npc {
	n := &Npc{Name: NpcName}
	n.Say(msgWelcome...)
	return n
}

// Say replaces the dialogue with a copy of lines.
func (n *Npc) Say(lines ...string) {
	n.Dialogue = append([]string(nil), lines...)
}

// scanned picks the line for a successful reveal of cell that uncovered count cells.
func (n *Npc) scanned(cell *Cell, count int, rnd *rand.Rand) {
	if cell.AdjacentMines > 0 {
		n.Say(fmt.Sprintf("PROXIMITY: %d", cell.AdjacentMines), "Volatile pods nearby!")
		return
	}
	var lines []string
	if rnd.Float64() < 0.3 {
		lines = []string{"Area clear.", "Scanning adjacent zones..."}
	} else {
		lines = []string{"All clear here."}
	}
	if count > 1 {
		lines = append(lines, fmt.Sprintf("%d cells scanned.", count))
	}
	n.Say(lines...)
}
