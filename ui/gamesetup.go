package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"termflip/config"
)

// Board sizes offered by the setup form.
var setupBoardSizes = []int{4, 6, 8, 10, 12}

// GameSetupUI provides a form for configuring a new game.
type GameSetupUI struct {
	form     *tview.Form
	flex     *tview.Flex
	onStart  func(config.GameConfig)
	onCancel func()
	onColors func()

	gameCfg config.GameConfig
}

// NewGameSetup creates a new game setup form, preselecting defaults.
func NewGameSetup(defaults config.GameConfig, onStart func(config.GameConfig), onCancel func(), onColors func()) *GameSetupUI {
	setup := &GameSetupUI{
		onStart:  onStart,
		onCancel: onCancel,
		onColors: onColors,
		gameCfg:  defaults,
	}

	sizeLabels := make([]string, len(setupBoardSizes))
	sizeIndex := 0
	for i, n := range setupBoardSizes {
		sizeLabels[i] = fmt.Sprintf("%dx%d", n, n)
		if n == defaults.BoardWidth && n == defaults.BoardHeight {
			sizeIndex = i
		}
	}
	if defaults.BoardWidth != defaults.BoardHeight || setupBoardSizes[sizeIndex] != defaults.BoardWidth {
		sizeLabels = append(sizeLabels, fmt.Sprintf("%dx%d (config)", defaults.BoardWidth, defaults.BoardHeight))
		sizeIndex = len(sizeLabels) - 1
	}

	colors := []string{"Watch the computer", "Black (play first)", "White (play second)"}

	form := tview.NewForm()

	form.AddDropDown("Board Size", sizeLabels, sizeIndex, func(option string, index int) {
		if index < len(setupBoardSizes) {
			setup.gameCfg.BoardWidth = setupBoardSizes[index]
			setup.gameCfg.BoardHeight = setupBoardSizes[index]
		} else {
			setup.gameCfg.BoardWidth = defaults.BoardWidth
			setup.gameCfg.BoardHeight = defaults.BoardHeight
		}
	})

	form.AddDropDown("Your Color", colors, defaults.PlayerColor, func(option string, index int) {
		setup.gameCfg.PlayerColor = index // 0=computer, 1=black, 2=white
	})

	form.AddCheckbox("Animate flips", defaults.Animate, func(checked bool) {
		setup.gameCfg.Animate = checked
	})

	form.AddCheckbox("Show legal moves", defaults.ShowHints, func(checked bool) {
		setup.gameCfg.ShowHints = checked
	})

	form.AddButton("Start Game", func() {
		onStart(setup.gameCfg)
	})

	form.AddButton("Board Color", func() {
		if onColors != nil {
			onColors()
		}
	})

	form.AddButton("Quit", func() {
		onCancel()
	})

	form.SetBorder(true)
	form.SetTitle(" New Game ")
	form.SetTitleAlign(tview.AlignCenter)
	form.SetBorderColor(MenuColors.Border)
	form.SetTitleColor(MenuColors.Title)
	form.SetLabelColor(MenuColors.Label)
	form.SetFieldBackgroundColor(MenuColors.CardBG)
	form.SetButtonBackgroundColor(MenuColors.ButtonBG)
	form.SetButtonTextColor(MenuColors.ButtonText)

	helpText := tview.NewTextView().
		SetText("Tab/Shift+Tab: navigate fields  |  Arrow keys: change dropdown  |  Enter: confirm").
		SetTextAlign(tview.AlignCenter)
	helpText.SetTextColor(MenuColors.Hint)

	flex := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(form, 0, 1, true).
		AddItem(helpText, 1, 0, false)

	setup.form = form
	setup.flex = flex
	return setup
}

// Form returns the flex container with form and help text.
func (s *GameSetupUI) Form() *tview.Flex {
	return s.flex
}

// GameConfig returns the settings currently selected in the form.
func (s *GameSetupUI) GameConfig() config.GameConfig {
	return s.gameCfg
}

// SetInputCapture sets the input capture function for the form.
func (s *GameSetupUI) SetInputCapture(capture func(event *tcell.EventKey) *tcell.EventKey) {
	s.form.SetInputCapture(capture)
}
