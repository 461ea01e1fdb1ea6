package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-dodge/internal/core"
	"github.com/vovakirdan/tui-dodge/internal/games/dodge"
	"github.com/vovakirdan/tui-dodge/internal/platform/tui"
)

var flagAutopilot bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start a run in the current terminal.

Controls:
  Left/A/H     - Slide left
  Right/D/L    - Slide right
  Mouse drag   - Swipe left or right
  ?            - Toggle full key legend
  Ctrl+S       - Save a screenshot to ~/.dodge/screenshots
  Q/Ctrl+C     - Quit

After a crash any key starts a new run.

Examples:
  dodge play
  dodge play --seed 42
  dodge play --autopilot --log-file dodge.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagAutopilot, "autopilot", false, "Let the bot steer")
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// The alt screen owns stdout, so logs only go to --log-file
	logger, closeLog, err := newLogger("dodge", io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	opts := []dodge.Option{dodge.WithLogger(logger)}
	if flagAutopilot {
		opts = append(opts, dodge.WithAutopilot(dodge.DefaultAutopilot()))
	}
	game := dodge.New(cfg, opts...)

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	return tui.Run(game, runtime,
		tui.WithModelLogger(logger),
		tui.WithSwipeThreshold(cfg.Input.SwipeThreshold),
	)
}
