// Package record keeps the move transcript of a game and converts board
// locations to and from the usual Othello notation.
package record

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"termflip/types"
)

// Notation:
// - Columns: a, b, c, ... from the left (so at most 26 columns)
// - Rows: 1, 2, 3, ... from the top
// - Example: (0, 0) -> a1, (5, 4) -> f5

// MaxBoardSize is the largest dimension the notation can express.
const MaxBoardSize = 26

// ErrNotation is wrapped by every parse failure.
var ErrNotation = errors.New("invalid move notation")

// FormatLocation converts a board location to notation, e.g. (5, 4) -> "f5".
func FormatLocation(loc types.Location) string {
	return fmt.Sprintf("%c%d", 'a'+rune(loc.X), loc.Y+1)
}

// ParseLocation converts notation like "f5" or "F5" to a board location,
// checking it against the board dimensions.
func ParseLocation(s string, width, height int) (types.Location, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if len(s) < 2 {
		return types.Location{}, fmt.Errorf("%q: %w", s, ErrNotation)
	}

	col := int(s[0]) - 'a'
	if col < 0 || col >= MaxBoardSize {
		return types.Location{}, fmt.Errorf("%q: bad column: %w", s, ErrNotation)
	}

	row, err := strconv.Atoi(s[1:])
	if err != nil {
		return types.Location{}, fmt.Errorf("%q: bad row: %w", s, ErrNotation)
	}

	loc := types.Loc(col, row-1)
	if !loc.Within(width, height) {
		return types.Location{}, fmt.Errorf("%q: outside %dx%d board: %w", s, width, height, ErrNotation)
	}
	return loc, nil
}

// SplitMoves tokenizes a move list. Moves may be run together ("f5d6c3")
// or separated by spaces or commas ("f5 d6, c3").
func SplitMoves(s string) ([]string, error) {
	var moves []string
	var current strings.Builder

	flush := func() error {
		if current.Len() == 0 {
			return nil
		}
		tok := current.String()
		current.Reset()
		if len(tok) < 2 {
			return fmt.Errorf("%q: missing row: %w", tok, ErrNotation)
		}
		moves = append(moves, tok)
		return nil
	}

	for _, r := range s {
		switch {
		case unicode.IsLetter(r):
			if err := flush(); err != nil {
				return nil, err
			}
			current.WriteRune(unicode.ToLower(r))
		case unicode.IsDigit(r):
			if current.Len() == 0 {
				return nil, fmt.Errorf("row %q without column: %w", r, ErrNotation)
			}
			current.WriteRune(r)
		case unicode.IsSpace(r) || r == ',':
			if err := flush(); err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("unexpected %q: %w", r, ErrNotation)
		}
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return moves, nil
}
