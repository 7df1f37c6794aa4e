package core

// RuntimeConfig contains configuration passed from the platform layer at startup.
// The simulation uses it for deterministic seeding; frontends use it for sizing.
type RuntimeConfig struct {
	ScreenW  int    // Viewport width in pixels (terminal: columns)
	ScreenH  int    // Viewport height in pixels (terminal: rows * 2)
	TickRate int    // Frames per second requested from the frontend loop (default 60)
	Seed     int64  // RNG seed for deterministic gameplay
	Player   string // Who is playing, recorded with finished runs
	Frontend string // "tui", "window" or "ssh"
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  48,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
		Player:   "local",
		Frontend: "tui",
	}
}

// Viewport returns the screen size as a vector.
func (c RuntimeConfig) Viewport() Vec2 {
	return V(float64(c.ScreenW), float64(c.ScreenH))
}
