package engine

import (
	"time"

	"github.com/google/uuid"

	"termflip/types"
)

// Game sequences turns over one board. A movement may be played at once or
// animated, one change per step interval; while one is in flight it is
// nobody's turn.
type Game struct {
	id       string
	board    *Board
	turn     types.Cell
	ongoing  Movement
	nextStep time.Time
	onMove   func(MoveEvent)

	GameOptions
}

// NewGame starts a game on board with Black to move. If Black has no move
// White starts, and on a terminal board nobody does.
func NewGame(board *Board, opts ...GameOption) *Game {
	options := defaultGameOptions()
	for _, opt := range opts {
		opt(&options)
	}

	g := &Game{
		id:          uuid.NewString(),
		board:       board,
		turn:        types.Black,
		GameOptions: options,
	}
	g.nextStep = g.clock.Now()
	g.logger = g.logger.With("game_id", g.id)

	switch {
	case board.IsTerminal():
		g.turn = types.Empty
	case len(board.LegalMoves(types.Black)) == 0:
		g.turn = types.White
	}

	g.logger.Info("game started", "width", board.Width(), "height", board.Height(), "turn", g.turn)
	return g
}

// ID returns the unique id of this game.
func (g *Game) ID() string {
	return g.id
}

// Board returns a read-only view of the board.
func (g *Game) Board() BoardView {
	return g.board
}

// Center returns the pivot of the starting pattern, a natural cursor origin.
func (g *Game) Center() types.Location {
	return types.Loc(g.board.Width()/2, g.board.Height()/2)
}

// Outcome returns the result once the board is terminal.
func (g *Game) Outcome() Outcome {
	return g.board.Outcome()
}

// IsAnimating returns true while a movement is in flight.
func (g *Game) IsAnimating() bool {
	return g.ongoing.IsValid()
}

// Turn reports whose move it is without advancing playback.
// It is Empty while a movement is in flight or the game is over.
func (g *Game) Turn() types.Cell {
	if g.ongoing.IsValid() {
		return types.Empty
	}
	return g.turn
}

// OnMove registers a callback for each movement as it begins.
func (g *Game) OnMove(callback func(MoveEvent)) {
	g.onMove = callback
}

// CheckMove plays any steps of the ongoing movement that are due and
// returns the player whose move it now is. A call that comes late plays
// every step it missed. While a movement remains in flight this returns
// Empty: nobody can move until it clears.
func (g *Game) CheckMove() types.Cell {
	if g.ongoing.IsValid() {
		now := g.clock.Now()
		for g.ongoing.IsValid() && !now.Before(g.nextStep) {
			g.nextStep = g.nextStep.Add(g.stepInterval)
			g.ongoing.PlayOne(g.board)

			if !g.ongoing.IsValid() {
				g.advanceTurn()
			}
		}
	}

	return g.Turn()
}

// PlayerMovement builds the movement for the current player at loc. It is
// invalid if it is nobody's turn or the placement is illegal.
func (g *Game) PlayerMovement(loc types.Location) Movement {
	if g.Turn() == types.Empty {
		return Movement{}
	}
	return NewMovement(g.board, loc, g.turn)
}

// AIMovement picks the best scoring legal movement for the current player.
// It is invalid if it is nobody's turn or the player has no moves.
func (g *Game) AIMovement() Movement {
	if g.Turn() == types.Empty {
		return Movement{}
	}
	moves := g.board.LegalMoves(g.turn)
	if len(moves) == 0 {
		return Movement{}
	}
	return moves[0]
}

// BeginMovement starts playing mv over time; the turn passes only once it
// has finished. The first step comes one interval from now. It returns
// false, and starts nothing, if mv is invalid or another movement is still
// playing.
func (g *Game) BeginMovement(mv Movement) bool {
	if !g.canBegin(mv) {
		return false
	}
	now := g.clock.Now()
	if !g.nextStep.After(now) {
		g.nextStep = now.Add(g.stepInterval)
	}
	g.begin(mv, true)
	return true
}

// BeginImmediateMovement is BeginMovement without the initial delay: the
// next CheckMove plays the first step at once.
func (g *Game) BeginImmediateMovement(mv Movement) bool {
	if !g.canBegin(mv) {
		return false
	}
	g.nextStep = g.clock.Now()
	g.begin(mv, true)
	return true
}

// PlayMovement applies mv in one go and passes the turn. It has the same
// acceptance rules as BeginMovement.
func (g *Game) PlayMovement(mv Movement) bool {
	if !g.canBegin(mv) {
		return false
	}
	g.notify(mv, false)
	mv.PlayAll(g.board)
	g.advanceTurn()
	return true
}

func (g *Game) canBegin(mv Movement) bool {
	return !g.ongoing.IsValid() && mv.IsValid()
}

func (g *Game) begin(mv Movement, animated bool) {
	g.notify(mv, animated)
	g.ongoing = mv
}

func (g *Game) notify(mv Movement, animated bool) {
	placement, _ := mv.Placement()
	event := MoveEvent{
		Player:   placement.Cell,
		Loc:      placement.Loc,
		Captures: mv.Captures(),
		Animated: animated,
	}

	g.metrics.movePlayed(event.Player.String(), event.Captures)
	g.logger.Debug("movement begun",
		"player", event.Player,
		"x", event.Loc.X,
		"y", event.Loc.Y,
		"captures", event.Captures,
		"animated", animated)

	if g.onMove != nil {
		g.onMove(event)
	}
}

// advanceTurn hands the move to the opponent if they can play. Otherwise
// the same player goes again, or nobody does once the board is terminal.
func (g *Game) advanceTurn() {
	if g.board.IsTerminal() {
		outcome := g.board.Outcome()
		g.turn = types.Empty
		g.metrics.gameFinished(outcome)
		g.logger.Info("game over",
			"outcome", outcome,
			"black", g.board.Count(types.Black),
			"white", g.board.Count(types.White))
		return
	}

	next := g.turn.Opposite()
	if len(g.board.LegalMoves(next)) > 0 {
		g.turn = next
		return
	}
	g.logger.Debug("no legal move, turn stays", "player", g.turn, "skipped", next)
}
