package engine

import (
	"errors"
	"fmt"
	"sort"

	"termflip/types"
)

// ErrBoardSize is returned by NewBoard for boards too small to hold the
// starting pattern.
var ErrBoardSize = errors.New("board must be at least 2x2")

// directions are scanned in this order; captures keep it.
var directions = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// BoardView is the read-only surface of a board handed to the presentation layer.
type BoardView interface {
	Width() int
	Height() int
	CellAt(loc types.Location) types.Cell
	Count(cell types.Cell) int
	IsTerminal() bool
	IsLegalMove(loc types.Location, cell types.Cell) bool
	OffsetWithin(loc types.Location, dx, dy int) (types.Location, bool)
	Outcome() Outcome
}

// Board is a rectangular grid of cells, stored row-major.
// Counts and the terminal flag are recomputed after every change.
type Board struct {
	width    int
	height   int
	cells    []types.Cell
	counts   map[types.Cell]int
	gameOver bool
}

// NewBoard creates a board with the usual four center discs: Black on one
// diagonal, White on the other, pivoting on (width/2, height/2).
func NewBoard(width, height int) (*Board, error) {
	if width < 2 || height < 2 {
		return nil, fmt.Errorf("new board %dx%d: %w", width, height, ErrBoardSize)
	}

	b := &Board{
		width:  width,
		height: height,
		cells:  make([]types.Cell, width*height),
	}

	cx, cy := width/2, height/2
	b.set(types.Loc(cx, cy), types.Black)
	b.set(types.Loc(cx-1, cy-1), types.Black)
	b.set(types.Loc(cx, cy-1), types.White)
	b.set(types.Loc(cx-1, cy), types.White)
	b.refresh()

	return b, nil
}

// Width returns the number of columns.
func (b *Board) Width() int {
	return b.width
}

// Height returns the number of rows.
func (b *Board) Height() int {
	return b.height
}

// Contains reports whether loc is on the board.
func (b *Board) Contains(loc types.Location) bool {
	return loc.Within(b.width, b.height)
}

// CellAt returns the cell at loc. It panics if loc is off the board.
func (b *Board) CellAt(loc types.Location) types.Cell {
	return b.cells[b.index(loc)]
}

// Count returns how many squares hold cell.
func (b *Board) Count(cell types.Cell) int {
	return b.counts[cell]
}

// IsTerminal is true when neither player has a legal move.
func (b *Board) IsTerminal() bool {
	return b.gameOver
}

// Outcome compares the counts once the board is terminal.
func (b *Board) Outcome() Outcome {
	if !b.gameOver {
		return InProgress
	}
	black, white := b.Count(types.Black), b.Count(types.White)
	switch {
	case black > white:
		return BlackWins
	case white > black:
		return WhiteWins
	default:
		return Draw
	}
}

// OffsetWithin moves loc by (dx, dy), failing if the result leaves the board.
func (b *Board) OffsetWithin(loc types.Location, dx, dy int) (types.Location, bool) {
	return loc.Offset(dx, dy, b.width, b.height)
}

// Locations lists every square, left to right then top to bottom.
func (b *Board) Locations() []types.Location {
	locs := make([]types.Location, 0, len(b.cells))
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			locs = append(locs, types.Loc(x, y))
		}
	}
	return locs
}

// LegalMoves returns every valid movement for cell, best score first.
// Ties keep board scan order. The list is empty once the game is over.
func (b *Board) LegalMoves(cell types.Cell) []Movement {
	if b.gameOver {
		return nil
	}
	return b.findLegalMoves(cell)
}

// IsLegalMove reports whether cell may be placed at loc.
func (b *Board) IsLegalMove(loc types.Location, cell types.Cell) bool {
	return NewMovement(b, loc, cell).IsValid()
}

// Apply writes a single cell change. It returns false if the square already
// held that value. Legality is not checked here; that is Movement's job.
func (b *Board) Apply(change CellChange) bool {
	if b.CellAt(change.Loc) == change.Cell {
		return false
	}
	b.set(change.Loc, change.Cell)
	b.refresh()
	return true
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	clone := &Board{
		width:    b.width,
		height:   b.height,
		cells:    make([]types.Cell, len(b.cells)),
		counts:   make(map[types.Cell]int, len(b.counts)),
		gameOver: b.gameOver,
	}
	copy(clone.cells, b.cells)
	for k, v := range b.counts {
		clone.counts[k] = v
	}
	return clone
}

// String renders the board one row per line, for logs and test failures.
func (b *Board) String() string {
	out := make([]byte, 0, (b.width+1)*b.height)
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			switch b.CellAt(types.Loc(x, y)) {
			case types.Black:
				out = append(out, 'X')
			case types.White:
				out = append(out, 'O')
			default:
				out = append(out, '.')
			}
		}
		out = append(out, '\n')
	}
	return string(out)
}

func (b *Board) findLegalMoves(cell types.Cell) []Movement {
	var valid []Movement
	for _, loc := range b.Locations() {
		if mv := NewMovement(b, loc, cell); mv.IsValid() {
			valid = append(valid, mv)
		}
	}
	sort.SliceStable(valid, func(i, j int) bool {
		return valid[i].Score(b) > valid[j].Score(b)
	})
	return valid
}

// findFlippableAround collects the captures for placing cell at start, in
// direction order. It is empty if start is occupied.
func (b *Board) findFlippableAround(start types.Location, cell types.Cell) []types.Location {
	if b.CellAt(start) != types.Empty {
		return nil
	}
	var buffer []types.Location
	for _, d := range directions {
		buffer = append(buffer, b.findFlippable(start, cell, d[0], d[1])...)
	}
	return buffer
}

// findFlippable walks from start (exclusive) while it sees the opponent's
// cells. The run counts only if a cell of the mover's own color closes it.
func (b *Board) findFlippable(start types.Location, cell types.Cell, dx, dy int) []types.Location {
	var run []types.Location
	opponent := cell.Opposite()
	here := start
	for {
		next, ok := b.OffsetWithin(here, dx, dy)
		if !ok {
			return nil
		}
		here = next
		switch b.CellAt(here) {
		case cell:
			return run
		case opponent:
			run = append(run, here)
		default:
			return nil
		}
	}
}

// refresh recomputes the counts and the terminal flag from the grid.
func (b *Board) refresh() {
	counts := make(map[types.Cell]int, 3)
	for _, c := range b.cells {
		counts[c]++
	}
	b.counts = counts
	b.gameOver = len(b.findLegalMoves(types.Black)) == 0 &&
		len(b.findLegalMoves(types.White)) == 0
}

func (b *Board) set(loc types.Location, cell types.Cell) {
	b.cells[b.index(loc)] = cell
}

func (b *Board) index(loc types.Location) int {
	if !b.Contains(loc) {
		panic(fmt.Sprintf("location %v outside %dx%d board", loc, b.width, b.height))
	}
	return loc.Y*b.width + loc.X
}
