package engine

import (
	"math"

	"termflip/types"
)

// CellChange is one write to the board: put Cell at Loc.
type CellChange struct {
	Loc  types.Location
	Cell types.Cell
}

// Movement is one full move as an ordered list of cell changes: the
// placement first, then each capture in scan order. A movement with no
// changes is invalid and does nothing when played.
type Movement struct {
	changes []CellChange
}

// NewMovement builds the movement for placing cell at loc. The result is
// invalid if loc is off the board or occupied, cell is not a player, or
// the placement captures nothing.
func NewMovement(b *Board, loc types.Location, cell types.Cell) Movement {
	if !cell.IsPlayer() || !b.Contains(loc) {
		return Movement{}
	}
	flips := b.findFlippableAround(loc, cell)
	if len(flips) == 0 {
		return Movement{}
	}

	changes := make([]CellChange, 0, len(flips)+1)
	changes = append(changes, CellChange{Loc: loc, Cell: cell})
	for _, f := range flips {
		changes = append(changes, CellChange{Loc: f, Cell: cell})
	}
	return Movement{changes: changes}
}

// IsValid returns true while the movement still has changes to play.
func (m Movement) IsValid() bool {
	return len(m.changes) > 0
}

// Len returns the number of changes left to play.
func (m Movement) Len() int {
	return len(m.changes)
}

// Changes returns a copy of the remaining changes.
func (m Movement) Changes() []CellChange {
	return append([]CellChange(nil), m.changes...)
}

// Placement returns the first pending change. For a freshly built movement
// this is the disc being placed.
func (m Movement) Placement() (CellChange, bool) {
	if !m.IsValid() {
		return CellChange{}, false
	}
	return m.changes[0], true
}

// Captures returns how many opponent discs the movement flips, counting
// only changes that have not been played yet.
func (m Movement) Captures() int {
	if !m.IsValid() {
		return 0
	}
	return len(m.changes) - 1
}

// PlayOne applies the next change to b and drops it from the movement.
// It returns false if nothing was left to play.
func (m *Movement) PlayOne(b *Board) bool {
	if !m.IsValid() {
		return false
	}
	b.Apply(m.changes[0])
	m.changes = m.changes[1:]
	return true
}

// PlayAll drains the movement in one go.
func (m *Movement) PlayAll(b *Board) {
	for m.PlayOne(b) {
	}
}

// Score ranks a movement for the computer player: captures plus 100,
// another 100 for a corner, minus 100 for any other edge square. Invalid
// movements score math.MinInt so they always sort last.
func (m Movement) Score(b *Board) int {
	if !m.IsValid() {
		return math.MinInt
	}

	score := m.Captures() + 100
	loc := m.changes[0].Loc
	xEdge := loc.X == 0 || loc.X == b.Width()-1
	yEdge := loc.Y == 0 || loc.Y == b.Height()-1

	if xEdge && yEdge {
		score += 100
	} else if xEdge || yEdge {
		score -= 100
	}

	return score
}
