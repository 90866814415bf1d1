package systems

import (
	"math"
	"testing"

	"github.com/automoto/dungeon-escape/components"
	cfg "github.com/automoto/dungeon-escape/config"
	"github.com/automoto/dungeon-escape/systems/factory"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   components.Vector
	}{
		{"right", components.Vector{X: 1}},
		{"diagonal", components.Vector{X: 1, Y: 1}},
		{"up-left", components.Vector{X: -1, Y: -1}},
		{"uneven", components.Vector{X: 0.7, Y: -0.3}},
		{"tiny", components.Vector{X: -0.001, Y: 0.002}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in)
			if mag := math.Hypot(got.X, got.Y); math.Abs(mag-1) > 1e-9 {
				t.Errorf("expected magnitude 1, got %f", mag)
			}
			if math.Signbit(got.X) != math.Signbit(tt.in.X) || math.Signbit(got.Y) != math.Signbit(tt.in.Y) {
				t.Errorf("expected signs of %+v to be kept, got %+v", tt.in, got)
			}
		})
	}

	if got := Normalize(components.Vector{}); got != (components.Vector{}) {
		t.Errorf("expected zero vector to stay zero, got %+v", got)
	}
}

func TestMoveDiagonalIsNotFaster(t *testing.T) {
	w := newEmptyRoom()
	e := factory.CreateEnemy(w, cfg.SlimeNormal, 400, 280)
	char := components.Character.Get(e)
	char.Direction = components.Vector{X: 1, Y: 1}

	Move(w, e, 1)

	moved := math.Hypot(char.X-400, char.Y-280)
	if math.Abs(moved-char.Speed) > 1e-9 {
		t.Errorf("expected to move %f px, got %f", char.Speed, moved)
	}
	if char.State != cfg.Move {
		t.Errorf("expected state move, got %s", char.State)
	}
}

func TestMoveRejectedByWall(t *testing.T) {
	w := newEmptyRoom()
	factory.CreateWall(w, 200, 160, 40)

	// Hitbox 22 centered at 185 ends at 196, four pixels short of the wall.
	e := factory.CreatePlayer(w, 185, 180)
	char := components.Character.Get(e)
	obj := components.Object.Get(e)
	startObjX := obj.X

	for i := 0; i < 2; i++ {
		char.Direction = components.Vector{X: 1}
		Move(w, e, 0.1) // 15 px would cross into the wall

		if char.X != 185 || char.Y != 180 {
			t.Fatalf("expected position to stay at (185, 180), got (%f, %f)", char.X, char.Y)
		}
		if obj.X != startObjX {
			t.Fatalf("expected hitbox to stay at x=%f, got %f", startObjX, obj.X)
		}
	}

	// Moving away is still allowed.
	char.Direction = components.Vector{X: -1}
	Move(w, e, 0.1)
	if char.X >= 185 {
		t.Errorf("expected to move left, got x=%f", char.X)
	}
}

func TestMoveTouchingWallIsAllowed(t *testing.T) {
	w := newEmptyRoom()
	factory.CreateWall(w, 200, 160, 40)

	e := factory.CreatePlayer(w, 179.625, 180)
	char := components.Character.Get(e)
	char.Direction = components.Vector{X: 1}

	// 150 px/s for 1/16 s brings the hitbox edge exactly onto the wall edge.
	Move(w, e, 0.0625)

	if char.X != 189 {
		t.Errorf("expected x=189, got %f", char.X)
	}
}

func TestMoveClampsToPlayArea(t *testing.T) {
	w := newEmptyRoom()
	e := factory.CreatePlayer(w, 790, 555)
	char := components.Character.Get(e)
	char.Direction = components.Vector{X: 1, Y: 1}

	Move(w, e, 1)

	half := char.HitboxSize / 2
	if char.X != float64(cfg.C.Width)-half {
		t.Errorf("expected x clamped to %f, got %f", float64(cfg.C.Width)-half, char.X)
	}
	if char.Y != float64(cfg.C.PlayAreaHeight())-half {
		t.Errorf("expected y clamped to %f, got %f", float64(cfg.C.PlayAreaHeight())-half, char.Y)
	}

	obj := components.Object.Get(e)
	if obj.X != char.X-half || obj.Y != char.Y-half {
		t.Errorf("expected hitbox recentered, got (%f, %f)", obj.X, obj.Y)
	}
}

func TestMoveIdleBelowEpsilon(t *testing.T) {
	w := newEmptyRoom()
	e := factory.CreatePlayer(w, 400, 280)
	char := components.Character.Get(e)
	char.State = cfg.Move
	char.Direction = components.Vector{X: 0.005, Y: -0.005}

	Move(w, e, 0.016)

	if char.State != cfg.Idle {
		t.Errorf("expected idle, got %s", char.State)
	}
}
