// Package types contains shared data structures for termflip.
package types

// Cell is the content of one board square.
type Cell int

const (
	Empty Cell = iota
	Black      // moves first
	White
)

// Opposite returns the other player's color. Empty stays Empty.
func (c Cell) Opposite() Cell {
	switch c {
	case Black:
		return White
	case White:
		return Black
	default:
		return Empty
	}
}

// IsPlayer returns true for Black and White.
func (c Cell) IsPlayer() bool {
	return c == Black || c == White
}

// Symbol returns the single-character rendering used in logs and tests.
func (c Cell) Symbol() string {
	switch c {
	case Black:
		return "X"
	case White:
		return "O"
	default:
		return " "
	}
}

func (c Cell) String() string {
	switch c {
	case Black:
		return "Black"
	case White:
		return "White"
	default:
		return "Empty"
	}
}

// CellFromColor maps the config color convention (1=black, 2=white) to a Cell.
func CellFromColor(color int) Cell {
	switch color {
	case 1:
		return Black
	case 2:
		return White
	default:
		return Empty
	}
}
