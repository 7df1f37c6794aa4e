package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hophop/internal/config"
	"github.com/vovakirdan/hophop/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the launcher menu",
	Long: `Start the game in interactive menu mode.

Pick a difficulty, look at the high scores, or play. After a game you
return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Left/Right   - Change difficulty
  Enter/Space  - Select
  Tab          - High scores
  Q            - Quit

Examples:
  hophop menu
  hophop menu --fps 30
  hophop menu --db ./runs.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog := newLogger("hophop", true)
	defer closeLog()

	base, err := loadGameConfig(logger)
	if err != nil {
		return err
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	sound, closeAudio := newAudio(logger)
	defer closeAudio()

	lib := newAssets(logger)
	width, height := terminalSize()
	rt := runtimeConfig("tui", width, height)
	preset := config.ParsePreset(flagDifficulty)
	best := 0

	for {
		res, err := tui.RunMenu(store, rt, preset)
		if err != nil {
			return fmt.Errorf("menu: %w", err)
		}
		rt = res.Config
		preset = res.Preset

		if res.WantsScoreboard {
			goBack, err := tui.RunScoreboard(store, rt.ScreenW, rt.ScreenH)
			if err != nil {
				return fmt.Errorf("scoreboard: %w", err)
			}
			if goBack {
				continue
			}
			return nil
		}

		if !res.Play {
			return nil
		}

		cfg := base
		config.ApplyPreset(&cfg, preset)
		logger.Info("starting game", "difficulty", preset)
		best, err = tui.Run(cfg, rt, tui.Services{
			Store:  store,
			Assets: lib,
			Audio:  sound,
			Logger: logger,
			Best:   best,
		})
		if err != nil {
			return fmt.Errorf("game: %w", err)
		}
		if rt.Seed != 0 {
			rt.Seed++
		}
	}
}
