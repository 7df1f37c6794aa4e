package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/hophop/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start playing in the terminal. Each cell shows two pixels, so a
larger terminal gives a sharper picture.

Controls:
  Enter        - Start
  Space/Up/W   - Hop (mouse click works too)
  R            - Retry after game over
  M            - Back to the title screen after game over
  Esc/Q        - Exit
  Ctrl+S       - Save a screenshot to ~/.hophop/screenshots
  ?            - Show all keys

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  hophop play
  hophop play --difficulty easy
  hophop play --config ./my-hophop.yaml
  hophop play --seed 42 --fps 30`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, closeLog := newLogger("hophop", true)
	defer closeLog()

	cfg, err := loadGameConfig(logger)
	if err != nil {
		return err
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	sound, closeAudio := newAudio(logger)
	defer closeAudio()

	width, height := terminalSize()
	rt := runtimeConfig("tui", width, height)

	_, err = tui.Run(cfg, rt, tui.Services{
		Store:  store,
		Assets: newAssets(logger),
		Audio:  sound,
		Logger: logger,
	})
	return err
}
