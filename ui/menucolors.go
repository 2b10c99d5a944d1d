package ui

import "github.com/gdamore/tcell/v2"

// MenuColors is the palette for the setup screen.
var MenuColors = struct {
	Border     tcell.Color
	CardBG     tcell.Color
	Title      tcell.Color
	Label      tcell.Color
	Hint       tcell.Color
	ButtonBG   tcell.Color
	ButtonText tcell.Color
}{
	Border:     tcell.PaletteColor(65),  // Muted green
	CardBG:     tcell.PaletteColor(236), // Dark gray
	Title:      tcell.PaletteColor(255),
	Label:      tcell.PaletteColor(250),
	Hint:       tcell.PaletteColor(245),
	ButtonBG:   tcell.PaletteColor(28), // Board green
	ButtonText: tcell.PaletteColor(255),
}
