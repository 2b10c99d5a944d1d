// Package ui specifies custom controls for tview to play Othello in the terminal.
package ui

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"termflip/config"
	"termflip/engine"
	"termflip/record"
	"termflip/types"
)

// Style indices into BoardView.styles.
const (
	styleBoard = iota
	styleBoardAlt
	styleBlack
	styleWhite
	styleLine
	styleHint
	styleCursorLegal
	styleCursorIllegal
)

// BoardView draws the board and tracks the cursor the human plays with.
// All of its methods, the draw func included, must run on the tview event
// goroutine; that goroutine is the only one touching the game.
type BoardView struct {
	Box        *tview.Box
	hint       *tview.TextView
	infoPanel  *InfoPanel
	cfg        *config.Config
	gameCfg    config.GameConfig
	game       *engine.Game
	transcript *record.Transcript
	human      types.Cell
	cursor     types.Location
	styles     []tcell.Color
	logger     *slog.Logger
	focusMode  bool
}

func NewBoardView(c *config.Config, hint *tview.TextView, logger *slog.Logger) *BoardView {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	bv := &BoardView{
		Box:    tview.NewBox(),
		hint:   hint,
		logger: logger,
	}
	bv.SetConfig(c)
	bv.Box.SetDrawFunc(bv.draw)
	return bv
}

// SetGame attaches a new game. The transcript receives every move.
func (bv *BoardView) SetGame(g *engine.Game, gameCfg config.GameConfig, transcript *record.Transcript) {
	bv.game = g
	bv.gameCfg = gameCfg
	bv.transcript = transcript
	bv.human = types.CellFromColor(gameCfg.PlayerColor)
	bv.cursor = g.Center()
	if bv.infoPanel != nil {
		bv.infoPanel.SetGame(g, transcript, bv.human)
	}
	bv.logger.Info("game attached", "game_id", g.ID(), "human", bv.human)
	bv.refreshHint()
}

// Game returns the attached game, or nil.
func (bv *BoardView) Game() *engine.Game {
	return bv.game
}

// Cursor returns the cursor location.
func (bv *BoardView) Cursor() types.Location {
	return bv.cursor
}

// MoveCursor shifts the cursor; at the board edge it stays where it is.
func (bv *BoardView) MoveCursor(dx, dy int) bool {
	if bv.game == nil {
		return false
	}
	loc, ok := bv.game.Board().OffsetWithin(bv.cursor, dx, dy)
	if !ok {
		return false
	}
	bv.cursor = loc
	return true
}

// PlaceAtCursor plays the human's move at the cursor if it is their turn
// and the move is legal. It reports whether a move was started.
func (bv *BoardView) PlaceAtCursor() bool {
	if bv.game == nil || bv.human == types.Empty {
		return false
	}
	if bv.game.CheckMove() != bv.human {
		return false
	}

	mv := bv.game.PlayerMovement(bv.cursor)
	var started bool
	if bv.gameCfg.Animate {
		started = bv.game.BeginImmediateMovement(mv)
	} else {
		started = bv.game.PlayMovement(mv)
	}
	if !started {
		bv.logger.Debug("illegal move", "game_id", bv.game.ID(), "at", record.FormatLocation(bv.cursor))
	}
	bv.refresh()
	return started
}

// Tick advances playback and lets the computer move when it is its turn.
func (bv *BoardView) Tick() {
	if bv.game == nil {
		return
	}

	turn := bv.game.CheckMove()
	if turn != types.Empty && turn != bv.human {
		mv := bv.game.AIMovement()
		if bv.gameCfg.Animate {
			bv.game.BeginMovement(mv)
		} else {
			bv.game.PlayMovement(mv)
		}
	}
	bv.refresh()
}

// ToggleFocusMode toggles focus mode and returns the new state.
func (bv *BoardView) ToggleFocusMode() bool {
	bv.focusMode = !bv.focusMode
	bv.refreshHint()
	return bv.focusMode
}

func (bv *BoardView) SetConfig(c *config.Config) {
	bv.styles = []tcell.Color{
		tcell.PaletteColor(c.Theme.Colors.BoardColor),         // styleBoard
		tcell.PaletteColor(c.Theme.Colors.BoardColorAlt),      // styleBoardAlt
		tcell.PaletteColor(c.Theme.Colors.BlackColor),         // styleBlack
		tcell.PaletteColor(c.Theme.Colors.WhiteColor),         // styleWhite
		tcell.PaletteColor(c.Theme.Colors.LineColor),          // styleLine
		tcell.PaletteColor(c.Theme.Colors.HintColor),          // styleHint
		tcell.PaletteColor(c.Theme.Colors.CursorLegalColor),   // styleCursorLegal
		tcell.PaletteColor(c.Theme.Colors.CursorIllegalColor), // styleCursorIllegal
	}
	bv.cfg = c
}

func (bv *BoardView) refresh() {
	if bv.infoPanel != nil {
		bv.infoPanel.Refresh()
	}
	bv.refreshHint()
}

func (bv *BoardView) refreshHint() {
	if bv.hint == nil {
		return
	}
	if bv.focusMode {
		bv.hint.SetText("  f to toggle")
		return
	}
	if bv.game == nil {
		bv.hint.SetText("")
		return
	}

	board := bv.game.Board()
	var turnLine, controlsLine string

	switch turn := bv.game.Turn(); {
	case board.IsTerminal():
		turnLine = fmt.Sprintf("  Game over: %s\n", board.Outcome())
		controlsLine = "  n · new game   q · return to menu"
	case turn == types.Empty:
		turnLine = "  ◌ Flipping...\n"
	case turn == bv.human:
		turnLine = fmt.Sprintf("  %s Your move (%s)\n", discGlyph(turn), turn)
	default:
		turnLine = "  ◌ Thinking...\n"
	}

	if controlsLine == "" {
		controlsLine = "  hjkl/↑↓←→ move   space/⏎ play   f focus   q quit"
	}
	bv.hint.SetText(turnLine + controlsLine)
}

// draw renders the board: two characters per square, coordinates on the
// left and bottom. It only reads the game.
func (bv *BoardView) draw(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	if bv.game == nil {
		return x, y, width, height
	}

	board := bv.game.Board()
	over := board.IsTerminal()
	showCursor := !over && bv.human != types.Empty
	cursorLegal := board.IsLegalMove(bv.cursor, bv.human)
	hintFor := types.Empty
	if bv.gameCfg.ShowHints && bv.game.Turn() == bv.human {
		hintFor = bv.human
	}

	left, top := x+4, y
	for by := 0; by < board.Height(); by++ {
		for bx := 0; bx < board.Width(); bx++ {
			loc := types.Loc(bx, by)
			cell := board.CellAt(loc)

			bg := bv.styles[styleBoard]
			if (bx+by)%2 == 1 {
				bg = bv.styles[styleBoardAlt]
			}
			if showCursor && loc == bv.cursor {
				if cursorLegal {
					bg = bv.styles[styleCursorLegal]
				} else {
					bg = bv.styles[styleCursorIllegal]
				}
			}

			r, fg := bv.cfg.Theme.Symbols.Empty, bv.styles[styleLine]
			switch cell {
			case types.Black:
				r, fg = bv.cfg.Theme.Symbols.BlackDisc, bv.styles[styleBlack]
			case types.White:
				r, fg = bv.cfg.Theme.Symbols.WhiteDisc, bv.styles[styleWhite]
			default:
				if hintFor != types.Empty && board.IsLegalMove(loc, hintFor) {
					r, fg = bv.cfg.Theme.Symbols.Hint, bv.styles[styleHint]
				} else if bv.cfg.Theme.UseGridLines {
					r = getGridRune(bx, by, board.Width(), board.Height())
				}
			}

			drawCell(screen, tcell.StyleDefault.Background(bg).Foreground(fg), r, bx, by, left, top)
		}
	}

	bv.drawCoordinates(screen, x, y, board)
	return x, y, board.Width()*2 + 4, board.Height() + 1
}

// drawCell draws a square (2 characters wide).
func drawCell(s tcell.Screen, c tcell.Style, r rune, x, y, l, t int) {
	s.SetContent(l+x*2, t+y, r, nil, c)
	s.SetContent(l+x*2+1, t+y, ' ', nil, c)
}

// getGridRune returns the box-drawing character for an empty square.
func getGridRune(x, y, width, height int) rune {
	isTop := y == 0
	isBottom := y == height-1
	isLeft := x == 0
	isRight := x == width-1

	switch {
	case isTop && isLeft:
		return '┌'
	case isTop && isRight:
		return '┐'
	case isBottom && isLeft:
		return '└'
	case isBottom && isRight:
		return '┘'
	case isTop:
		return '┬'
	case isBottom:
		return '┴'
	case isLeft:
		return '├'
	case isRight:
		return '┤'
	default:
		return '┼'
	}
}

func (bv *BoardView) drawCoordinates(s tcell.Screen, x, y int, board engine.BoardView) {
	w, h := board.Width(), board.Height()
	style := tcell.StyleDefault
	highlight := tcell.StyleDefault.Background(bv.styles[styleCursorLegal]).Foreground(tcell.ColorBlack)

	for ix := 0; ix < w; ix++ {
		_style := style
		if ix == bv.cursor.X {
			_style = highlight
		}
		s.SetContent(x+4+(ix*2), y+h, rune('a'+ix), nil, _style)
		s.SetContent(x+4+(ix*2)+1, y+h, ' ', nil, _style)
	}

	for iy := 0; iy < h; iy++ {
		_style := style
		if iy == bv.cursor.Y {
			_style = highlight
		}
		label := fmt.Sprintf("%2d", iy+1)
		s.SetContent(1, y+iy, rune(label[0]), nil, _style)
		s.SetContent(2, y+iy, rune(label[1]), nil, _style)
	}
}

func discGlyph(c types.Cell) string {
	switch c {
	case types.Black:
		return "●"
	case types.White:
		return "○"
	default:
		return "◌"
	}
}
