package record

import (
	"errors"
	"fmt"
	"strings"

	"termflip/engine"
	"termflip/types"
)

// ErrIllegalMove is returned by Replay when a move cannot be played.
var ErrIllegalMove = errors.New("illegal move")

// Entry is one played move.
type Entry struct {
	Player   types.Cell
	Loc      types.Location
	Captures int
}

// Notation returns the entry's location in move notation.
func (e Entry) Notation() string {
	return FormatLocation(e.Loc)
}

// Transcript is the in-memory list of moves played in a game.
type Transcript struct {
	entries []Entry
}

// NewTranscript creates an empty transcript.
func NewTranscript() *Transcript {
	return &Transcript{}
}

// Add appends an entry.
func (t *Transcript) Add(e Entry) {
	t.entries = append(t.entries, e)
}

// Record appends a move event; it has the signature Game.OnMove expects.
func (t *Transcript) Record(e engine.MoveEvent) {
	t.Add(Entry{Player: e.Player, Loc: e.Loc, Captures: e.Captures})
}

// Entries returns a copy of the recorded moves.
func (t *Transcript) Entries() []Entry {
	return append([]Entry(nil), t.entries...)
}

// Len returns the number of recorded moves.
func (t *Transcript) Len() int {
	return len(t.entries)
}

// String renders the moves space-separated, e.g. "f5 d6 c3".
func (t *Transcript) String() string {
	moves := make([]string, len(t.entries))
	for i, e := range t.entries {
		moves[i] = e.Notation()
	}
	return strings.Join(moves, " ")
}

// Replay plays a move list on g in one go, each move for whoever's turn it
// is. It stops at the first move that cannot be parsed or played; moves
// before it stay on the board.
func Replay(g *engine.Game, moves string) error {
	tokens, err := SplitMoves(moves)
	if err != nil {
		return err
	}

	board := g.Board()
	for i, tok := range tokens {
		loc, err := ParseLocation(tok, board.Width(), board.Height())
		if err != nil {
			return fmt.Errorf("move %d: %w", i+1, err)
		}
		if !g.PlayMovement(g.PlayerMovement(loc)) {
			return fmt.Errorf("move %d %q: %w", i+1, tok, ErrIllegalMove)
		}
	}
	return nil
}
