package game

// Sound identifiers passed to Audio.Play.
const (
	SoundFlap  = "flap"
	SoundScore = "score"
	SoundHit   = "hit"
	SoundClick = "click"
	SoundStart = "start"
)

// Audio plays short sounds. Play must not block the frame loop.
type Audio interface {
	Play(name string)
}

// Titler mirrors text into the window or terminal title. Best effort.
type Titler interface {
	SetTitle(title string)
}

// NopAudio discards every sound.
type NopAudio struct{}

// Play does nothing.
func (NopAudio) Play(string) {}

// NopTitler discards every title.
type NopTitler struct{}

// SetTitle does nothing.
func (NopTitler) SetTitle(string) {}
