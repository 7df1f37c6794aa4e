package game

import "github.com/vovakirdan/hophop/internal/config"

// Actor is the player-controlled character. Only its vertical motion is
// simulated; its horizontal position is fixed by configuration.
type Actor struct {
	Y         float64
	VelocityY float64
	Radius    float64 // Collision half-size
	Flapped   bool    // Set by the first impulse; gravity is ignored until then
}

// NewActor creates an actor at rest.
func NewActor(radius, restY float64) Actor {
	return Actor{Y: restY, Radius: radius}
}

// Reset puts the actor back at its rest pose, waiting for a first impulse.
func (a *Actor) Reset(restY float64) {
	a.Y = restY
	a.VelocityY = 0
	a.Flapped = false
}

// Top returns the upper edge of the hitbox.
func (a Actor) Top() float64 {
	return a.Y + a.Radius
}

// Bottom returns the lower edge of the hitbox.
func (a Actor) Bottom() float64 {
	return a.Y - a.Radius
}

// ApplyImpulse replaces the vertical velocity; it never adds to it.
func (a *Actor) ApplyImpulse(strength float64) {
	a.VelocityY = strength
	a.Flapped = true
}

// Integrate advances the actor by dt seconds. Position moves with the
// velocity held at the start of the step, then gravity updates velocity.
// Before the first impulse the actor hovers in place.
func (a *Actor) Integrate(dt, gravity float64) {
	if !a.Flapped {
		return
	}
	a.Y += a.VelocityY * dt
	a.VelocityY += gravity * dt
}

// ClampToWorld keeps the actor inside the world. The ceiling stops the actor
// and is harmless; crossing the floor clamps the actor onto it and reports death.
func (a *Actor) ClampToWorld(w config.World) (dead bool) {
	if a.Top() > w.Top {
		a.Y = w.Top - a.Radius
		a.VelocityY = 0
	}
	if a.Bottom() < w.Bottom {
		a.Y = w.Bottom + a.Radius
		return true
	}
	return false
}
