package config

var DefaultConfig Config
var DefaultTheme Theme

func init() {
	DefaultTheme = Theme{
		UseGridLines: true,
		Colors: ConfigColors{
			BoardColor:         28,
			BoardColorAlt:      22,
			BlackColor:         232,
			WhiteColor:         255,
			LineColor:          22,
			HintColor:          114,
			CursorLegalColor:   255,
			CursorIllegalColor: 160,
		},
		Symbols: ConfigSymbols{
			BlackDisc: '●',
			WhiteDisc: '●',
			Empty:     ' ',
			Hint:      '·',
		},
	}

	DefaultConfig = Config{
		Theme: DefaultTheme,
		Game: GameConfig{
			BoardWidth:  8,
			BoardHeight: 8,
			PlayerColor: 1,
			Animate:     true,
			StepMillis:  100,
			ShowHints:   false,
		},
	}
}
