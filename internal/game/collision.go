package game

// HalfWidth returns the actor's horizontal half-extent in world units.
// With aspect correction the hitbox is narrowed by viewport height/width so
// it stays circular on screen instead of in normalized coordinates.
func HalfWidth(radius, aspect float64, correct bool) float64 {
	if !correct || aspect <= 0 {
		return radius
	}
	return radius * aspect
}

// Collides reports whether the actor, centered at actorX with the given
// horizontal half-extent, hits the obstacle. The actor is safe while it does
// not overlap the obstacle horizontally or while its vertical extent lies
// strictly inside the gap.
func Collides(a Actor, actorX, halfWidth float64, o Obstacle) bool {
	if actorX+halfWidth <= o.Leading() || actorX-halfWidth >= o.Trailing() {
		return false
	}
	inGap := a.Top() < o.GapTop() && a.Bottom() > o.GapBottom()
	return !inGap
}

// FirstCollision returns the index of the first obstacle the actor hits.
func FirstCollision(a Actor, actorX, halfWidth float64, obstacles []Obstacle) (int, bool) {
	for i, o := range obstacles {
		if Collides(a, actorX, halfWidth, o) {
			return i, true
		}
	}
	return -1, false
}
