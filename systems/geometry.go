package systems

import (
	"math"

	"github.com/automoto/dungeon-escape/components"
)

// Rect is an axis-aligned rectangle in pixels.
type Rect struct {
	X, Y, W, H float64
}

// CenteredRect returns a size x size square centered on (cx, cy).
func CenteredRect(cx, cy, size float64) Rect {
	return Rect{X: cx - size/2, Y: cy - size/2, W: size, H: size}
}

// Overlaps reports whether r and o share any area. Touching edges do not count.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W &&
		r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// Hitbox returns the collision square of a character.
func Hitbox(c *components.CharacterData) Rect {
	return CenteredRect(c.X, c.Y, c.HitboxSize)
}

// Distance returns the Euclidean distance between two points.
func Distance(a, b components.Vector) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// directionTo returns the unit vector from a to b. ok is false when the
// points coincide.
func directionTo(a, b components.Vector) (dir components.Vector, ok bool) {
	dist := Distance(a, b)
	if dist == 0 {
		return components.Vector{}, false
	}
	return components.Vector{X: (b.X - a.X) / dist, Y: (b.Y - a.Y) / dist}, true
}
