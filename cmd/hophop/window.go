package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/hophop/internal/platform/window"
)

var (
	flagWidth  int
	flagHeight int
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a resizable desktop window and play there. Layout follows the
window size.

Controls:
  Enter        - Start
  Space/Up/W   - Hop (left click or touch works too)
  R            - Retry after game over
  M            - Back to the title screen after game over
  Esc          - Exit

Examples:
  hophop window
  hophop window --width 720 --height 960
  hophop window --difficulty hard --mute`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().IntVar(&flagWidth, "width", 480, "Initial window width in pixels")
	windowCmd.Flags().IntVar(&flagHeight, "height", 640, "Initial window height in pixels")
}

func runWindow(_ *cobra.Command, _ []string) error {
	logger, closeLog := newLogger("hophop", false)
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

	return window.Run(cfg, window.Options{
		Runtime: runtimeConfig("window", flagWidth, flagHeight),
		Store:   store,
		Assets:  newAssets(logger),
		Audio:   sound,
		Logger:  logger,
	})
}
