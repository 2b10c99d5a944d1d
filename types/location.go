package types

import "fmt"

// Location is a 0-based board coordinate; X runs left to right, Y top to bottom.
type Location struct {
	X int
	Y int
}

// Loc is shorthand for Location{X: x, Y: y}.
func Loc(x, y int) Location {
	return Location{X: x, Y: y}
}

// Within returns true if the location lies inside a width x height grid.
func (l Location) Within(width, height int) bool {
	return l.X >= 0 && l.Y >= 0 && l.X < width && l.Y < height
}

// Offset adds a delta to the location. It returns false, and the zero
// Location, when either coordinate would become negative or reach its bound.
// Results are never clamped or wrapped; ray scans stop on the false.
func (l Location) Offset(dx, dy, width, height int) (Location, bool) {
	next := Location{X: l.X + dx, Y: l.Y + dy}
	if !next.Within(width, height) {
		return Location{}, false
	}
	return next, true
}

func (l Location) String() string {
	return fmt.Sprintf("(%d, %d)", l.X, l.Y)
}
