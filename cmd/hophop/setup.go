package main

import (
	"fmt"
	"io"
	"os"
	"os/user"
	"path/filepath"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/hophop/internal/assets"
	"github.com/vovakirdan/hophop/internal/audio"
	"github.com/vovakirdan/hophop/internal/config"
	"github.com/vovakirdan/hophop/internal/core"
	"github.com/vovakirdan/hophop/internal/game"
	"github.com/vovakirdan/hophop/internal/storage"
)

// loadGameConfig loads the YAML configuration and applies --difficulty.
func loadGameConfig(logger *log.Logger) (config.Config, error) {
	cfg, source, err := loadGameConfigSource()
	if err != nil {
		return cfg, err
	}
	logger.Debug("configuration loaded", "source", source, "difficulty", flagDifficulty)
	return cfg, nil
}

// loadGameConfigSource is loadGameConfig that also reports where the file
// came from.
func loadGameConfigSource() (config.Config, string, error) {
	preset := config.ParsePreset(flagDifficulty)
	if flagDifficulty != "" && preset == "" {
		return config.Config{}, "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}

	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return cfg, "", err
	}
	config.ApplyPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return cfg, "", fmt.Errorf("%s: %w", source, err)
	}
	return cfg, source, nil
}

// newLogger creates the process logger. Terminal frontends log to
// ~/.hophop/hophop.log since stderr would corrupt the alternate screen.
// The returned function closes the log file.
func newLogger(prefix string, toFile bool) (*log.Logger, func()) {
	var w io.Writer = os.Stderr
	closer := func() {}
	if toFile {
		w = io.Discard
		if home, err := os.UserHomeDir(); err == nil {
			dir := filepath.Join(home, ".hophop")
			if err := os.MkdirAll(dir, 0o755); err == nil {
				f, err := os.OpenFile(filepath.Join(dir, "hophop.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
				if err == nil {
					w = f
					closer = func() { f.Close() }
				}
			}
		}
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		level = log.InfoLevel
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
	}
	logger.SetLevel(level)
	return logger, closer
}

// openStore opens the run history. A missing database is not fatal.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open run database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// newAudio opens the speaker. Without a device the game plays silently.
func newAudio(logger *log.Logger) (game.Audio, func()) {
	if flagMute {
		return game.NopAudio{}, func() {}
	}
	sm := audio.NewSoundManager(logger)
	if err := sm.Initialize(); err != nil {
		logger.Warn("audio unavailable, playing silently", "error", err)
		return game.NopAudio{}, func() {}
	}
	return sm, sm.Cleanup
}

// runtimeConfig builds the platform settings for a frontend.
func runtimeConfig(frontend string, width, height int) core.RuntimeConfig {
	rt := core.DefaultConfig()
	if width > 0 && height > 0 {
		rt.ScreenW, rt.ScreenH = width, height
	}
	if flagFPS > 0 {
		rt.TickRate = flagFPS
	}
	rt.Seed = flagSeed
	rt.Player = playerName()
	rt.Frontend = frontend
	return rt
}

// terminalSize returns the size of the controlling terminal in cells.
func terminalSize() (int, int) {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}

// playerName is the local user recorded with each run.
func playerName() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return "local"
}

func newAssets(logger *log.Logger) *assets.Library {
	return assets.NewLibrary(flagAssets, logger)
}
