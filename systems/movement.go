package systems

import (
	"math"

	"github.com/automoto/dungeon-escape/components"
	cfg "github.com/automoto/dungeon-escape/config"
	"github.com/automoto/dungeon-escape/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// moveEpsilon is the per-axis intent below which a character is idle.
const moveEpsilon = 0.01

// Normalize scales v to unit length. The zero vector is returned unchanged.
func Normalize(v components.Vector) components.Vector {
	mag := math.Hypot(v.X, v.Y)
	if mag == 0 {
		return v
	}
	return components.Vector{X: v.X / mag, Y: v.Y / mag}
}

// Move applies one frame of a character's Direction. A candidate position
// whose hitbox overlaps any wall is rejected as a whole; there is no sliding.
// Accepted positions are clamped to the play area above the HUD.
func Move(w donburi.World, e *donburi.Entry, dt float64) {
	char := components.Character.Get(e)

	if math.Abs(char.Direction.X) > moveEpsilon || math.Abs(char.Direction.Y) > moveEpsilon {
		char.State = cfg.Move
	} else {
		char.State = cfg.Idle
	}

	char.Direction = Normalize(char.Direction)

	newX := char.X + char.Direction.X*char.Speed*dt
	newY := char.Y + char.Direction.Y*char.Speed*dt

	if hitsWall(w, CenteredRect(newX, newY, char.HitboxSize)) {
		return
	}

	half := char.HitboxSize / 2
	char.X = clamp(newX, half, float64(cfg.C.Width)-half)
	char.Y = clamp(newY, half, float64(cfg.C.PlayAreaHeight())-half)

	if e.HasComponent(components.Object) {
		obj := components.Object.Get(e)
		obj.X = char.X - half
		obj.Y = char.Y - half
		obj.Update()
	}
}

// hitsWall reports whether r overlaps a solid object. The space cells under r
// serve as the broad phase.
func hitsWall(w donburi.World, r Rect) bool {
	spaceEntry, ok := components.Space.First(w)
	if !ok {
		return false
	}
	space := components.Space.Get(spaceEntry)

	// Grow by a pixel so fractional edges never miss a neighboring cell.
	minX, minY := space.WorldToSpace(r.X-1, r.Y-1)
	maxX, maxY := space.WorldToSpace(r.X+r.W+1, r.Y+r.H+1)

	for cy := minY; cy <= maxY; cy++ {
		for cx := minX; cx <= maxX; cx++ {
			cell := space.Cell(cx, cy)
			if cell == nil {
				continue
			}
			for _, obj := range cell.Objects {
				if obj.HasTags(tags.ResolvSolid) && r.Overlaps(objectRect(obj)) {
					return true
				}
			}
		}
	}
	return false
}

func objectRect(obj *resolv.Object) Rect {
	return Rect{X: obj.X, Y: obj.Y, W: obj.W, H: obj.H}
}

// animate advances the animation that matches the character state.
func animate(e *donburi.Entry, dt float64) {
	if !e.HasComponent(components.Animation) {
		return
	}
	anim := components.Animation.Get(e)
	anim.SetAnimation(components.Character.Get(e).State)
	if anim.CurrentAnimation != nil {
		anim.CurrentAnimation.Update(dt)
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
