// termflip is a terminal application to play Othello against the computer.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rivo/tview"

	"termflip/config"
	"termflip/engine"
	"termflip/record"
	"termflip/ui"
)

// Version is set at build time via ldflags
var Version = "dev"

// Command-line flags
var (
	flagWidth       = flag.Int("width", 0, "Board width (4-26)")
	flagHeight      = flag.Int("height", 0, "Board height (4-26)")
	flagColor       = flag.String("color", "", "Player color (black, white or none to watch)")
	flagAnimate     = flag.Bool("animate", true, "Animate flips one disc at a time")
	flagHints       = flag.Bool("hints", false, "Mark legal moves on the board")
	flagStep        = flag.Duration("step", 0, "Animation step interval (e.g. 100ms)")
	flagQuickStart  = flag.Bool("play", false, "Start game immediately with defaults")
	flagMoves       = flag.String("moves", "", "Opening moves to play before the game starts, e.g. \"f5 d6 c3\"")
	flagFocus       = flag.Bool("focus", false, "Start in focus mode (board only)")
	flagLogLevel    = flag.String("log-level", "info", "Log level (trace, debug, info, warning, error)")
	flagMetricsAddr = flag.String("metrics-addr", "", "Serve Prometheus metrics on this address, e.g. :9090")
	flagVersion     = flag.Bool("version", false, "Print version and exit")
)

var app *tview.Application
var rootPage *tview.Pages
var gameBoard *ui.BoardView
var gameFrame *tview.Flex
var gameHint *tview.TextView
var cfg *config.Config
var logger *slog.Logger
var metrics *engine.Metrics

func main() {
	flag.Parse()

	if *flagVersion {
		fmt.Printf("termflip %s\n", Version)
		return
	}

	var err error
	cfg, err = config.InitConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	var closeLog func()
	logger, closeLog = newLogger(*flagLogLevel)
	defer closeLog()

	registry := prometheus.NewRegistry()
	metrics = engine.NewMetrics(registry)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if *flagMetricsAddr != "" {
		go serveMetrics(ctx, *flagMetricsAddr, registry, logger)
	}

	quickStart := *flagQuickStart || *flagWidth > 0 || *flagHeight > 0 || *flagColor != "" || *flagMoves != "" || *flagFocus

	app = tview.NewApplication()
	rootPage = tview.NewPages()
	rootPage.SetBorder(true).SetTitle(" ● termflip ○ ")

	gameHint = tview.NewTextView()
	gameHint.SetBorder(true)
	gameHint.SetBorderPadding(0, 0, 1, 1)
	gameHint.SetTitle(" Status ")
	gameHint.SetTitleAlign(tview.AlignLeft)
	gameBoard = ui.NewBoardView(cfg, gameHint, logger)

	gameFrame = ui.CreateGameLayout(gameBoard, gameHint)

	var lastGameCfg config.GameConfig

	gameBoard.Box.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyUp:
			gameBoard.MoveCursor(0, -1)
		case tcell.KeyDown:
			gameBoard.MoveCursor(0, 1)
		case tcell.KeyLeft:
			gameBoard.MoveCursor(-1, 0)
		case tcell.KeyRight:
			gameBoard.MoveCursor(1, 0)
		case tcell.KeyEnter:
			gameBoard.PlaceAtCursor()
		case tcell.KeyRune:
			switch event.Rune() {
			case 'q':
				rootPage.SwitchToPage("setup")
				return nil
			case 'h':
				gameBoard.MoveCursor(-1, 0)
			case 'j':
				gameBoard.MoveCursor(0, 1)
			case 'k':
				gameBoard.MoveCursor(0, -1)
			case 'l':
				gameBoard.MoveCursor(1, 0)
			case ' ':
				gameBoard.PlaceAtCursor()
			case 'n':
				startGame(lastGameCfg, "")
			case 'f':
				if gameBoard.ToggleFocusMode() {
					ui.BuildFocusLayout(gameFrame, gameBoard)
				} else {
					ui.RebuildNormalLayout(gameFrame, gameBoard, gameHint)
				}
			}
		}
		return event
	})

	setupUI := ui.NewGameSetup(
		cfg.Game,
		func(gameCfg config.GameConfig) {
			lastGameCfg = gameCfg
			startGame(gameCfg, "")
		},
		func() {
			app.Stop()
		},
		func() {
			rootPage.SwitchToPage("colors")
		},
	)

	colorConfig := ui.NewColorConfig(cfg, func() {
		gameBoard.SetConfig(cfg)
		rootPage.SwitchToPage("setup")
	})
	colorConfig.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEsc || (event.Key() == tcell.KeyRune && event.Rune() == 'q') {
			rootPage.SwitchToPage("setup")
			return nil
		}
		if event.Key() == tcell.KeyTab {
			colorConfig.ToggleMode()
			return nil
		}
		return event
	})

	rootPage.AddPage("setup", ui.CreateCenteredForm(setupUI.Form(), 60), true, !quickStart)
	rootPage.AddPage("gameview", gameFrame, true, quickStart)
	rootPage.AddPage("colors", colorConfig.Flex(), true, false)

	if quickStart {
		lastGameCfg = buildGameConfigFromFlags()
		startGame(lastGameCfg, *flagMoves)
		if *flagFocus {
			gameBoard.ToggleFocusMode()
			ui.BuildFocusLayout(gameFrame, gameBoard)
		}
	}

	go tick(ctx)

	if err := app.SetRoot(rootPage, true).Run(); err != nil {
		logger.Error("application stopped", "error", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// startGame starts a game with the given configuration, optionally playing
// an opening move list first.
func startGame(gameCfg config.GameConfig, moves string) {
	if err := gameCfg.Validate(); err != nil {
		showError(err)
		return
	}

	board, err := engine.NewBoard(gameCfg.BoardWidth, gameCfg.BoardHeight)
	if err != nil {
		showError(err)
		return
	}

	g := engine.NewGame(board,
		engine.WithLogger(logger),
		engine.WithMetrics(metrics),
		engine.WithStepInterval(time.Duration(gameCfg.StepMillis)*time.Millisecond),
	)
	transcript := record.NewTranscript()
	g.OnMove(transcript.Record)

	var replayErr error
	if moves != "" {
		if replayErr = record.Replay(g, moves); replayErr != nil {
			logger.Warn("opening moves rejected", "game_id", g.ID(), "moves", moves, "error", replayErr)
		}
	}

	gameBoard.SetGame(g, gameCfg, transcript)
	rootPage.SwitchToPage("gameview")
	if replayErr != nil {
		showError(fmt.Errorf("opening moves: %w", replayErr))
	}
}

// tick drives playback and the computer player from the tview event
// goroutine until ctx is done.
func tick(ctx context.Context) {
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			app.QueueUpdateDraw(func() {
				if name, _ := rootPage.GetFrontPage(); name == "gameview" {
					gameBoard.Tick()
				}
			})
		}
	}
}

func showError(err error) {
	modal := tview.NewModal().
		SetText(err.Error()).
		AddButtons([]string{"OK"}).
		SetDoneFunc(func(buttonIndex int, buttonLabel string) {
			rootPage.RemovePage("error")
		})
	rootPage.AddPage("error", modal, true, true)
}

// buildGameConfigFromFlags creates a GameConfig from the config file
// overridden by command-line flags.
func buildGameConfigFromFlags() config.GameConfig {
	gameCfg := cfg.Game

	if *flagWidth > 0 {
		gameCfg.BoardWidth = *flagWidth
	}
	if *flagHeight > 0 {
		gameCfg.BoardHeight = *flagHeight
	}

	switch *flagColor {
	case "black", "b":
		gameCfg.PlayerColor = 1
	case "white", "w":
		gameCfg.PlayerColor = 2
	case "none", "watch":
		gameCfg.PlayerColor = 0
	}

	if *flagStep > 0 {
		gameCfg.StepMillis = int(*flagStep / time.Millisecond)
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "animate":
			gameCfg.Animate = *flagAnimate
		case "hints":
			gameCfg.ShowHints = *flagHints
		}
	})

	return gameCfg
}
