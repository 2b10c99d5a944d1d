package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"termflip/config"
)

// ColorConfigUI lets the user pick the board felt colors with a live preview.
type ColorConfigUI struct {
	flex      *tview.Flex
	colorList *tview.List
	preview   *tview.Box
	cfg       *config.Config
	onDone    func()

	selectedBoard int
	selectedAlt   int
	editingAlt    bool // true = editing the alternate square color
	saveErr       error
}

type paletteEntry struct {
	code int
	name string
}

// Felt colors for the board squares.
var feltColors = []paletteEntry{
	{28, "Green"},
	{22, "Dark Green"},
	{29, "Sea Green"},
	{23, "Teal"},
	{34, "Bright Green"},
	{64, "Olive"},
	{58, "Dark Olive"},
	{24, "Dark Cyan"},
	{18, "Navy"},
	{94, "Brown"},
	{130, "Rust"},
	{236, "Charcoal"},
	{240, "Slate"},
}

// previewRows is the position shown in the preview, one string per row.
var previewRows = []string{
	"......",
	"..X...",
	"..XXO.",
	".OXO..",
	"...O..",
	"......",
}

// NewColorConfig creates a new color configuration screen. Confirming the
// alternate color saves the theme and calls onDone.
func NewColorConfig(cfg *config.Config, onDone func()) *ColorConfigUI {
	cc := &ColorConfigUI{
		cfg:           cfg,
		onDone:        onDone,
		selectedBoard: cfg.Theme.Colors.BoardColor,
		selectedAlt:   cfg.Theme.Colors.BoardColorAlt,
	}

	cc.colorList = tview.NewList()
	cc.colorList.SetBorder(true)
	cc.colorList.ShowSecondaryText(false)
	cc.populateColorList()

	cc.colorList.SetChangedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		cc.pick(index)
	})

	cc.colorList.SetSelectedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		cc.pick(index)
		if !cc.editingAlt {
			cc.editingAlt = true
			cc.populateColorList()
			return
		}
		cc.saveErr = cc.apply()
		cc.editingAlt = false
		cc.populateColorList()
		onDone()
	})

	cc.preview = tview.NewBox()
	cc.preview.SetBorder(true)
	cc.preview.SetTitle(" Board Preview ")
	cc.preview.SetDrawFunc(cc.drawPreview)

	cc.flex = tview.NewFlex().
		AddItem(cc.colorList, 30, 0, true).
		AddItem(cc.preview, 0, 1, false)

	return cc
}

func (cc *ColorConfigUI) pick(index int) {
	if index < 0 || index >= len(feltColors) {
		return
	}
	if cc.editingAlt {
		cc.selectedAlt = feltColors[index].code
	} else {
		cc.selectedBoard = feltColors[index].code
	}
}

// apply stores the selection in the config and saves it.
func (cc *ColorConfigUI) apply() error {
	cc.cfg.Theme.Colors.BoardColor = cc.selectedBoard
	cc.cfg.Theme.Colors.BoardColorAlt = cc.selectedAlt
	return cc.cfg.Save()
}

func (cc *ColorConfigUI) populateColorList() {
	cc.colorList.Clear()

	current := cc.selectedBoard
	if cc.editingAlt {
		cc.colorList.SetTitle(" Alternate Squares (Tab: switch) ")
		current = cc.selectedAlt
	} else {
		cc.colorList.SetTitle(" Board Color (Tab: switch) ")
	}

	for i, c := range feltColors {
		cc.colorList.AddItem(fmt.Sprintf("[#%06x]████[-] %s (%d)",
			tcell.PaletteColor(c.code).Hex(), c.name, c.code),
			"", rune('a'+i), nil)
	}
	for i, c := range feltColors {
		if c.code == current {
			cc.colorList.SetCurrentItem(i)
			break
		}
	}
}

func (cc *ColorConfigUI) drawPreview(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	size := len(previewRows)
	if width < size*2+4 || height < size+4 {
		return x, y, width, height
	}

	board := tcell.PaletteColor(cc.selectedBoard)
	alt := tcell.PaletteColor(cc.selectedAlt)
	black := tcell.PaletteColor(cc.cfg.Theme.Colors.BlackColor)
	white := tcell.PaletteColor(cc.cfg.Theme.Colors.WhiteColor)
	symbols := cc.cfg.Theme.Symbols

	left, top := x+2, y+1
	for row, line := range previewRows {
		for col, ch := range line {
			bg := board
			if (row+col)%2 == 1 {
				bg = alt
			}
			style := tcell.StyleDefault.Background(bg)
			r := symbols.Empty
			switch ch {
			case 'X':
				r, style = symbols.BlackDisc, style.Foreground(black)
			case 'O':
				r, style = symbols.WhiteDisc, style.Foreground(white)
			}
			drawCell(screen, style, r, col, row, left, top)
		}
	}

	info := fmt.Sprintf("Board: %d  Alternate: %d", cc.selectedBoard, cc.selectedAlt)
	if cc.saveErr != nil {
		info = "Not saved: " + cc.saveErr.Error()
	}
	for i, ch := range info {
		if left+i < x+width-1 {
			screen.SetContent(left+i, top+size+1, ch, nil, tcell.StyleDefault)
		}
	}

	return x, y, width, height
}

// Flex returns the flex container for this UI.
func (cc *ColorConfigUI) Flex() *tview.Flex {
	return cc.flex
}

// SetInputCapture sets the input capture for the color list.
func (cc *ColorConfigUI) SetInputCapture(capture func(event *tcell.EventKey) *tcell.EventKey) {
	cc.colorList.SetInputCapture(capture)
}

// ToggleMode switches between the board and alternate square colors.
func (cc *ColorConfigUI) ToggleMode() {
	cc.editingAlt = !cc.editingAlt
	cc.populateColorList()
}
