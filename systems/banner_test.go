package systems

import (
	"testing"

	"github.com/automoto/dungeon-escape/components"
	"github.com/automoto/dungeon-escape/systems/factory"
	"github.com/automoto/dungeon-escape/tags"
	"github.com/yohamta/donburi"
)

func TestBannerFadesOut(t *testing.T) {
	w := donburi.NewWorld()
	ShowBanner(w, 3)

	banner := GetOrCreateBanner(w)
	if banner.Text != "Level 3" {
		t.Errorf("Expected banner text Level 3, got %q", banner.Text)
	}
	if banner.Alpha != 1 {
		t.Errorf("Expected full alpha, got %f", banner.Alpha)
	}

	UpdateTweens(w, 0.75)
	if banner.Alpha <= 0 || banner.Alpha >= 1 {
		t.Errorf("Expected partial alpha halfway through, got %f", banner.Alpha)
	}

	UpdateTweens(w, 1.0)
	if banner.Alpha != 0 {
		t.Errorf("Expected banner faded out, got %f", banner.Alpha)
	}
	if banner.Tween != nil {
		t.Error("Expected finished tween to be dropped")
	}
}

func TestOpenDoorPulses(t *testing.T) {
	w := donburi.NewWorld()
	factory.CreateDoor(w, 100, 100)
	openDoor(w)

	doorEntry, _ := tags.Door.First(w)
	pulse := components.DoorPulse.Get(doorEntry)
	if !components.Door.Get(doorEntry).Open {
		t.Fatal("Expected door to be open")
	}

	sawGlow := false
	for i := 0; i < 120; i++ {
		UpdateTweens(w, 1.0/60)
		if pulse.Glow < 0 || pulse.Glow > 1 {
			t.Fatalf("Glow out of range: %f", pulse.Glow)
		}
		if pulse.Glow > 0.5 {
			sawGlow = true
		}
	}
	if !sawGlow {
		t.Error("Expected the glow to brighten")
	}
}

func TestClosedDoorDoesNotPulse(t *testing.T) {
	w := donburi.NewWorld()
	factory.CreateDoor(w, 100, 100)

	UpdateTweens(w, 0.5)

	doorEntry, _ := tags.Door.First(w)
	if glow := components.DoorPulse.Get(doorEntry).Glow; glow != 0 {
		t.Errorf("Expected no glow on a closed door, got %f", glow)
	}
}
