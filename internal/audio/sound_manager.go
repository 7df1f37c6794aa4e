// Package audio plays the game's synthesized sound effects.
package audio

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/hophop/internal/game"
)

const (
	sampleRate = beep.SampleRate(48000)
)

// voices builds a fresh streamer for each sound name.
var voices = map[string]func(seed int64) beep.Streamer{
	game.SoundFlap: func(int64) beep.Streamer {
		return NewSweepGenerator(sampleRate, 420, 880, 0.25, sampleRate.N(90*time.Millisecond))
	},
	game.SoundScore: func(int64) beep.Streamer {
		return beep.Seq(
			NewSweepGenerator(sampleRate, 988, 988, 0.2, sampleRate.N(70*time.Millisecond)),
			NewSweepGenerator(sampleRate, 1319, 1319, 0.2, sampleRate.N(120*time.Millisecond)),
		)
	},
	game.SoundHit: func(seed int64) beep.Streamer {
		return NewThudGenerator(sampleRate, sampleRate.N(300*time.Millisecond), seed)
	},
	game.SoundClick: func(int64) beep.Streamer {
		return NewSweepGenerator(sampleRate, 1200, 1000, 0.15, sampleRate.N(30*time.Millisecond))
	},
	game.SoundStart: func(int64) beep.Streamer {
		return NewSweepGenerator(sampleRate, 330, 660, 0.2, sampleRate.N(200*time.Millisecond))
	},
}

// Sounds lists every sound name the manager can play.
func Sounds() []string {
	names := make([]string, 0, len(voices))
	for name := range voices {
		names = append(names, name)
	}
	return names
}

// SoundManager mixes fire-and-forget sound effects onto the speaker.
// It implements game.Audio; every method is safe before Initialize and after
// Cleanup, so the game runs unchanged without an audio device.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	logger      *log.Logger
	initialized bool
	muted       bool
	plays       int64
}

// NewSoundManager creates a new sound manager. logger may be nil.
func NewSoundManager(logger *log.Logger) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		logger: logger,
	}
}

// Initialize opens the speaker.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*50))
	if err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences everything. The speaker itself stays open.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// SetMuted turns playback off or on.
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = muted
}

// Play starts the named sound. Unknown names are ignored.
func (sm *SoundManager) Play(name string) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}
	voice, ok := voices[name]
	if !ok {
		if sm.logger != nil {
			sm.logger.Debug("unknown sound", "name", name)
		}
		return
	}

	sm.plays++
	streamer := voice(sm.plays)
	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
}
