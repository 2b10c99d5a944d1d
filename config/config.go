package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"

	"github.com/adrg/xdg"
)

var (
	cfgFile = "termflip/config.json"
	logFile = "termflip/debug.log"
)

// Board dimension limits; the upper bound is what move notation can name.
const (
	MinBoardSize = 4
	MaxBoardSize = 26
)

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("Config error: %s", e.err)
}

type ConfigColors struct {
	BoardColor         int `json:"board"`
	BoardColorAlt      int `json:"board_alt"`
	BlackColor         int `json:"black"`
	WhiteColor         int `json:"white"`
	LineColor          int `json:"line"`
	HintColor          int `json:"hint"`
	CursorLegalColor   int `json:"cursor_legal"`
	CursorIllegalColor int `json:"cursor_illegal"`
}

type ConfigSymbols struct {
	BlackDisc rune `json:"black"`
	WhiteDisc rune `json:"white"`
	Empty     rune `json:"empty"`
	Hint      rune `json:"hint"`
}

type Theme struct {
	UseGridLines bool          `json:"use_grid_lines"`
	Colors       ConfigColors  `json:"colors"`
	Symbols      ConfigSymbols `json:"symbols"`
}

// GameConfig holds the settings for starting a new game.
type GameConfig struct {
	BoardWidth  int  `json:"board_width"`
	BoardHeight int  `json:"board_height"`
	PlayerColor int  `json:"player_color"` // 1=black, 2=white, 0=computer plays both
	Animate     bool `json:"animate"`
	StepMillis  int  `json:"step_ms"`
	ShowHints   bool `json:"show_hints"`
}

type Config struct {
	Theme Theme      `json:"theme"`
	Game  GameConfig `json:"game"`
}

func InitConfig() (*Config, error) {
	config := DefaultConfig
	absPath, err := xdg.SearchConfigFile(cfgFile)
	if err == nil {
		if err := readCfgFile(absPath, &config); err != nil {
			return nil, err
		}
	}
	if err = config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) Validate() error {
	for _, r := range []rune{c.Theme.Symbols.BlackDisc, c.Theme.Symbols.WhiteDisc, c.Theme.Symbols.Empty, c.Theme.Symbols.Hint} {
		if r < 32 || (r >= 127 && r <= 159) {
			return &InvalidConfig{"Unicode characters 1-31 and 127-159 are not allowed"}
		}
	}
	return c.Game.Validate()
}

func (g *GameConfig) Validate() error {
	if g.BoardWidth < MinBoardSize || g.BoardWidth > MaxBoardSize ||
		g.BoardHeight < MinBoardSize || g.BoardHeight > MaxBoardSize {
		return &InvalidConfig{fmt.Sprintf("board must be between %dx%d and %dx%d, got %dx%d",
			MinBoardSize, MinBoardSize, MaxBoardSize, MaxBoardSize, g.BoardWidth, g.BoardHeight)}
	}
	if g.PlayerColor < 0 || g.PlayerColor > 2 {
		return &InvalidConfig{fmt.Sprintf("player color must be 0, 1 or 2, got %d", g.PlayerColor)}
	}
	if g.StepMillis <= 0 {
		return &InvalidConfig{fmt.Sprintf("animation step must be positive, got %dms", g.StepMillis)}
	}
	return nil
}

func (c *Config) Save() error {
	absPath, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		return fmt.Errorf("resolve config path: %w", err)
	}
	return saveCfgFile(absPath, c, 0664)
}

// LogFilePath returns the debug log location under the XDG state directory,
// creating parent directories as needed.
func LogFilePath() (string, error) {
	return xdg.StateFile(logFile)
}

func saveCfgFile(filePath string, a interface{}, perm fs.FileMode) error {
	jsonData, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(filePath, jsonData, perm); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func readCfgFile(filePath string, a interface{}) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil
	}
	if err := json.Unmarshal(data, a); err != nil {
		return &InvalidConfig{fmt.Sprintf("%s: %v", filePath, err)}
	}
	return nil
}
