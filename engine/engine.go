// Package engine implements the Othello rules: the board, move discovery,
// movements and the turn sequencer that plays them back.
//
// Nothing in this package is safe for concurrent use. The owner of a Game
// must call it from a single goroutine; the terminal UI does this by only
// touching the game from tview's event loop.
package engine

import (
	"io"
	"log/slog"
	"time"

	"termflip/types"
)

// MoveEvent describes a movement as it begins playing.
type MoveEvent struct {
	Player   types.Cell
	Loc      types.Location
	Captures int
	Animated bool
}

// GameOptions holds the collaborators of a Game.
type GameOptions struct {
	clock        Clock
	logger       *slog.Logger
	metrics      *Metrics
	stepInterval time.Duration
}

// GameOption configures a Game.
type GameOption func(*GameOptions)

// WithClock sets the time source for animated playback.
func WithClock(clock Clock) GameOption {
	return func(o *GameOptions) {
		o.clock = clock
	}
}

// WithLogger sets the logger. Games log nothing by default.
func WithLogger(logger *slog.Logger) GameOption {
	return func(o *GameOptions) {
		o.logger = logger
	}
}

// WithMetrics records moves and finished games to m.
func WithMetrics(m *Metrics) GameOption {
	return func(o *GameOptions) {
		o.metrics = m
	}
}

// WithStepInterval changes the playback cadence. Non-positive values are ignored.
func WithStepInterval(d time.Duration) GameOption {
	return func(o *GameOptions) {
		if d > 0 {
			o.stepInterval = d
		}
	}
}

func defaultGameOptions() GameOptions {
	return GameOptions{
		clock:        SystemClock{},
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		stepInterval: DefaultStepInterval,
	}
}
