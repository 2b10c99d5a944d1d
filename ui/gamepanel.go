package ui

import (
	"fmt"
	"strings"

	"github.com/rivo/tview"

	"termflip/engine"
	"termflip/record"
	"termflip/types"
)

// InfoPanel displays the score, whose turn it is and the move history
// alongside the board.
type InfoPanel struct {
	box        *tview.TextView
	game       *engine.Game
	transcript *record.Transcript
	human      types.Cell
}

// NewInfoPanel creates a new info panel.
func NewInfoPanel() *InfoPanel {
	panel := &InfoPanel{
		box: tview.NewTextView(),
	}

	panel.box.SetDynamicColors(true)
	panel.box.SetBorder(false)
	panel.box.SetTextAlign(tview.AlignLeft)

	return panel
}

// Box returns the underlying tview component.
func (p *InfoPanel) Box() *tview.TextView {
	return p.box
}

// SetGame points the panel at a game and its transcript.
func (p *InfoPanel) SetGame(g *engine.Game, transcript *record.Transcript, human types.Cell) {
	p.game = g
	p.transcript = transcript
	p.human = human
	p.Refresh()
}

// Refresh redraws the panel text from the game.
func (p *InfoPanel) Refresh() {
	p.box.SetText(p.render())
}

func (p *InfoPanel) render() string {
	if p.game == nil {
		return ""
	}
	board := p.game.Board()

	var sb strings.Builder

	sb.WriteString("[white::b]Score[-:-:-]\n")
	sb.WriteString("[dimgray]──────────────────────[-:-:-]\n")
	sb.WriteString(fmt.Sprintf("[white]● Black:[-:-:-] %2d%s\n", board.Count(types.Black), p.youMarker(types.Black)))
	sb.WriteString(fmt.Sprintf("[white]○ White:[-:-:-] %2d%s\n", board.Count(types.White), p.youMarker(types.White)))

	sb.WriteString("\n")
	switch outcome := board.Outcome(); outcome {
	case engine.BlackWins:
		sb.WriteString("[yellow::b]GAME OVER[-:-:-]\n● WINS\n")
	case engine.WhiteWins:
		sb.WriteString("[yellow::b]GAME OVER[-:-:-]\n○ WINS\n")
	case engine.Draw:
		sb.WriteString("[yellow::b]GAME OVER[-:-:-]\nDRAW\n")
	default:
		turn := p.game.Turn()
		if turn == types.Empty {
			sb.WriteString("[dimgray]Flipping...[-]\n")
		} else {
			sb.WriteString(fmt.Sprintf("[white]Turn:[-:-:-] %s %s\n", discGlyph(turn), turn))
		}
	}

	id := p.game.ID()
	if len(id) > 8 {
		id = id[:8]
	}
	sb.WriteString(fmt.Sprintf("[dimgray]Game %s[-]\n", id))

	if p.transcript != nil && p.transcript.Len() > 0 {
		sb.WriteString("\n[white::b]Moves[-:-:-]\n")
		sb.WriteString("[dimgray]──────────────────────[-:-:-]\n")
		sb.WriteString(renderMoves(p.transcript.Entries(), 12))
	}

	return sb.String()
}

func (p *InfoPanel) youMarker(c types.Cell) string {
	if p.human == c {
		return " [dimgray](you)[-]"
	}
	return ""
}

// renderMoves lists the last maxVisible moves, newest marked.
func renderMoves(moves []record.Entry, maxVisible int) string {
	var sb strings.Builder
	start := 0
	if len(moves) > maxVisible {
		start = len(moves) - maxVisible
	}

	for i := start; i < len(moves); i++ {
		m := moves[i]

		colorStr := "[white]●[-]"
		if m.Player == types.White {
			colorStr = "[dimgray]○[-]"
		}

		marker := " "
		if i == len(moves)-1 {
			marker = "[white]>[-]"
		}

		sb.WriteString(fmt.Sprintf("%s[dimgray]%3d.[-] %s %-3s [dimgray]+%d[-]\n", marker, i+1, colorStr, m.Notation(), m.Captures))
	}

	if start > 0 {
		sb.WriteString(fmt.Sprintf("[dimgray]  ··· %d earlier[-]\n", start))
	}
	return sb.String()
}

// CreateGameLayout creates the main game layout with board and side panel.
func CreateGameLayout(board *BoardView, hint *tview.TextView) *tview.Flex {
	gameFrame := tview.NewFlex()
	RebuildNormalLayout(gameFrame, board, hint)
	return gameFrame
}

// CreateCenteredForm creates a centered form container for the setup screen.
func CreateCenteredForm(form *tview.Flex, maxWidth int) *tview.Flex {
	centered := tview.NewFlex().SetDirection(tview.FlexColumn)
	centered.AddItem(nil, 0, 1, false)
	centered.AddItem(form, maxWidth, 0, true)
	centered.AddItem(nil, 0, 1, false)

	return centered
}

// RebuildNormalLayout restores the normal game layout with board, info panel, and hint.
func RebuildNormalLayout(gameFrame *tview.Flex, board *BoardView, hint *tview.TextView) {
	gameFrame.Clear()

	if board.infoPanel == nil {
		board.infoPanel = NewInfoPanel()
	}
	if board.game != nil {
		board.infoPanel.SetGame(board.game, board.transcript, board.human)
	}

	boardRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	boardRow.AddItem(board.Box, 0, 1, true)
	boardRow.AddItem(board.infoPanel.Box(), 26, 0, false)

	gameFrame.SetDirection(tview.FlexRow)
	gameFrame.AddItem(boardRow, 0, 1, true)
	gameFrame.AddItem(hint, 4, 0, false)
}

// BuildFocusLayout builds the focus mode layout with just the centered board.
func BuildFocusLayout(gameFrame *tview.Flex, board *BoardView) {
	gameFrame.Clear()

	boardWidth, boardHeight := 20, 9 // 8x8 plus coordinates
	if board.game != nil {
		boardWidth = board.game.Board().Width()*2 + 4
		boardHeight = board.game.Board().Height() + 1
	}

	gameFrame.SetDirection(tview.FlexRow)
	gameFrame.AddItem(nil, 0, 1, false)

	centerRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	centerRow.AddItem(nil, 0, 1, false)
	centerRow.AddItem(board.Box, boardWidth, 0, true)
	centerRow.AddItem(nil, 0, 1, false)

	gameFrame.AddItem(centerRow, boardHeight, 0, true)
	gameFrame.AddItem(nil, 0, 1, false)
}
