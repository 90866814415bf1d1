package config

import "image/color"

// Config holds general game configuration
type Config struct {
	Width  int
	Height int

	// Grid
	TileSize   int
	GridWidth  int
	GridHeight int

	// HUDHeight is the strip at the bottom of the window reserved for the HUD.
	// Characters are clamped above it.
	HUDHeight int

	BackgroundColor color.RGBA
	FloorSprite     string
	WallSprite      string
	SpriteSize      int // characters, pickups and HUD icons
}

// PlayAreaHeight is the height of the walkable area above the HUD.
func (c *Config) PlayAreaHeight() int {
	return c.Height - c.HUDHeight
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement (pixels per second)
	Speed float64

	// Combat
	Health        int
	InvulnSeconds float64

	// Dimensions
	HitboxSize int

	// Sprites
	IdleFrames []string
	MoveFrames []string
}

// EnemyTypeConfig contains configuration for specific enemy types
type EnemyTypeConfig struct {
	Name        string
	Speed       float64 // pixels per second
	DetectRange float64 // distance at which the slime switches to its pursuit state
	HitboxSize  int

	// Visual
	TintColor  color.RGBA // body color of the generated placeholder sprite
	IdleFrames []string
	MoveFrames []string
}

// EnemyConfig contains enemy system configuration
type EnemyConfig struct {
	Types map[EnemyKind]EnemyTypeConfig

	// SlimeNormal wandering
	WanderDirections [][2]float64
	WanderMinSeconds float64
	WanderJitter     float64 // random extra seconds added on top of WanderMinSeconds

	// SlimeFire patrol
	PatrolSteps   []float64
	PatrolSeconds float64

	// SlimeBlock patrol between two points
	PatrolOffset   float64
	ArriveDistance float64

	// SlimeSpike erratic movement
	ErraticSteps      []float64
	ErraticMinSeconds float64
	ErraticJitter     float64
}

// AnimationConfig contains animation-related configuration values
type AnimationConfig struct {
	IdleFPS float64
	MoveFPS float64
}

// PickupConfig contains the trigger regions of the key and the door
type PickupConfig struct {
	KeySize  float64
	DoorSize float64

	KeySprite        string
	DoorClosedSprite string
	DoorOpenSprite   string
}

// HUDConfig contains the bottom bar layout
type HUDConfig struct {
	BackgroundColor color.RGBA
	TextColor       color.RGBA
	IconSize        int
	HeartX          float64
	HeartSpacing    float64
	KeyIconOffset   float64 // distance of the key icon from the right edge
	HeartSprite     string
	HeartEmpty      string
}

// MenuConfig contains main menu configuration values
type MenuConfig struct {
	BackgroundColor color.RGBA
	TitleColor      color.RGBA
	StatusColor     color.RGBA
	Title           string
	TitleY          float64
	StatusY         float64

	ButtonWidth     int
	ButtonHeight    int
	ButtonSpacing   int
	ButtonIdle      color.RGBA
	ButtonHover     color.RGBA
	ButtonPressed   color.RGBA
	ButtonTextColor color.RGBA
	MenuStartY      int
}

// PauseConfig contains pause menu configuration values
type PauseConfig struct {
	PanelColor   color.RGBA
	BorderColor  color.RGBA
	TitleColor   color.RGBA
	PanelWidth   float64
	PanelHeight  float64
	Title        string
	ButtonWidth  int
	ButtonHeight int
}

// EndScreenConfig contains the game over and victory screen configuration
type EndScreenConfig struct {
	BackgroundColor color.RGBA
	TitleColor      color.RGBA
	TextColor       color.RGBA
	HintColor       color.RGBA
	Title           string
	Hint            string
}

// BannerConfig contains the "Level N" banner shown when a level starts
type BannerConfig struct {
	Duration float64 // seconds
	Color    color.RGBA
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu bool   // Skip menu and go directly to game
	Hitboxes bool   // Outline every collision object
	Seed     uint64 // Fixed dungeon seed, 0 = random

	HitboxColors map[string]color.RGBA // keyed by resolv tag
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Enemy EnemyConfig
var Animation AnimationConfig
var Pickup PickupConfig
var HUD HUDConfig
var Menu MenuConfig
var Pause PauseConfig
var GameOver EndScreenConfig
var Victory EndScreenConfig
var Banner BannerConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	LightGray    = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	Gray         = color.RGBA{R: 180, G: 180, B: 180, A: 255}
	Yellow       = color.RGBA{R: 255, G: 215, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	LightRed     = color.RGBA{R: 255, G: 100, B: 100, A: 255}
	LightGreen   = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	SlimeGreen   = color.RGBA{R: 90, G: 200, B: 90, A: 255}
	SlimeRed     = color.RGBA{R: 230, G: 90, B: 40, A: 255}
	SlimeBlue    = color.RGBA{R: 80, G: 130, B: 220, A: 255}
	SlimePurple  = color.RGBA{R: 170, G: 80, B: 200, A: 255}
	Beige        = color.RGBA{R: 230, G: 200, B: 160, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 140}
)

func init() {
	C = &Config{
		Width:      800,
		Height:     600,
		TileSize:   40,
		GridWidth:  20,
		GridHeight: 14,
		HUDHeight:  40,

		BackgroundColor: color.RGBA{R: 30, G: 25, B: 35, A: 255},
		FloorSprite:     "floor",
		WallSprite:      "wall",
		SpriteSize:      32,
	}

	Player = PlayerConfig{
		Speed:         150,
		Health:        3,
		InvulnSeconds: 1.5,
		HitboxSize:    22, // sprite is 32x32
		IdleFrames:    []string{"characters/character_beige_idle", "characters/character_beige_idle"},
		MoveFrames:    []string{"characters/character_beige_walk_a", "characters/character_beige_walk_b"},
	}

	Enemy = EnemyConfig{
		Types: map[EnemyKind]EnemyTypeConfig{
			SlimeNormal: {
				Name:        "SlimeNormal",
				Speed:       50,
				DetectRange: 120,
				HitboxSize:  20,
				TintColor:   SlimeGreen,
				IdleFrames:  []string{"enemies/slime_normal_rest", "enemies/slime_normal_rest"},
				MoveFrames:  []string{"enemies/slime_normal_walk_a", "enemies/slime_normal_walk_b"},
			},
			SlimeFire: {
				Name:        "SlimeFire",
				Speed:       80,
				DetectRange: 200,
				HitboxSize:  20,
				TintColor:   SlimeRed,
				IdleFrames:  []string{"enemies/slime_fire_rest", "enemies/slime_fire_rest"},
				MoveFrames:  []string{"enemies/slime_fire_walk_a", "enemies/slime_fire_walk_b"},
			},
			SlimeBlock: {
				Name:        "SlimeBlock",
				Speed:       60,
				DetectRange: 100,
				HitboxSize:  20,
				TintColor:   SlimeBlue,
				IdleFrames:  []string{"enemies/slime_block_rest", "enemies/slime_block_rest"},
				MoveFrames:  []string{"enemies/slime_block_walk_a", "enemies/slime_block_walk_b"},
			},
			SlimeSpike: {
				Name:        "SlimeSpike",
				Speed:       70,
				DetectRange: 150,
				HitboxSize:  20,
				TintColor:   SlimePurple,
				IdleFrames:  []string{"enemies/slime_spike_rest", "enemies/slime_spike_rest"},
				MoveFrames:  []string{"enemies/slime_spike_walk_a", "enemies/slime_spike_walk_b"},
			},
		},

		WanderDirections: [][2]float64{
			{1, 0}, {-1, 0}, {0, 1}, {0, -1}, {0.7, 0.7}, {-0.7, 0.7},
		},
		WanderMinSeconds: 1.0,
		WanderJitter:     1.0,

		PatrolSteps:   []float64{-1, 0, 1},
		PatrolSeconds: 2.0,

		PatrolOffset:   80,
		ArriveDistance: 10,

		ErraticSteps:      []float64{-1, -0.7, 0, 0.7, 1},
		ErraticMinSeconds: 0.5,
		ErraticJitter:     1.0,
	}

	Animation = AnimationConfig{
		IdleFPS: 6,
		MoveFPS: 8,
	}

	Pickup = PickupConfig{
		KeySize:          24, // sprite is 32x32
		DoorSize:         40, // one tile
		KeySprite:        "key_yellow",
		DoorClosedSprite: "door_closed",
		DoorOpenSprite:   "door_open",
	}

	HUD = HUDConfig{
		BackgroundColor: color.RGBA{R: 40, G: 40, B: 50, A: 255},
		TextColor:       White,
		IconSize:        32,
		HeartX:          20,
		HeartSpacing:    35,
		KeyIconOffset:   100,
		HeartSprite:     "hud_heart",
		HeartEmpty:      "hud_heart_empty",
	}

	Menu = MenuConfig{
		BackgroundColor: color.RGBA{R: 20, G: 20, B: 30, A: 255},
		TitleColor:      White,
		StatusColor:     LightGray,
		Title:           "DUNGEON ESCAPE",
		TitleY:          100,
		StatusY:         150,
		ButtonWidth:     200,
		ButtonHeight:    50,
		ButtonSpacing:   20,
		ButtonIdle:      color.RGBA{R: 60, G: 60, B: 80, A: 255},
		ButtonHover:     color.RGBA{R: 100, G: 100, B: 120, A: 255},
		ButtonPressed:   color.RGBA{R: 40, G: 40, B: 60, A: 255},
		ButtonTextColor: White,
		MenuStartY:      225,
	}

	Pause = PauseConfig{
		PanelColor:   color.RGBA{R: 20, G: 20, B: 25, A: 255},
		BorderColor:  color.RGBA{R: 200, G: 200, B: 220, A: 255},
		TitleColor:   White,
		PanelWidth:   460,
		PanelHeight:  220,
		Title:        "PAUSED",
		ButtonWidth:  260,
		ButtonHeight: 50,
	}

	GameOver = EndScreenConfig{
		BackgroundColor: color.RGBA{R: 40, G: 20, B: 20, A: 255},
		TitleColor:      LightRed,
		TextColor:       LightGray,
		HintColor:       Gray,
		Title:           "GAME OVER",
		Hint:            "Press SPACE to return to the menu",
	}

	Victory = EndScreenConfig{
		BackgroundColor: color.RGBA{R: 20, G: 40, B: 20, A: 255},
		TitleColor:      LightGreen,
		TextColor:       LightGray,
		HintColor:       Gray,
		Title:           "VICTORY!",
		Hint:            "Press SPACE to return to the menu",
	}

	Banner = BannerConfig{
		Duration: 1.5,
		Color:    Yellow,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		SkipMenu: false,
		Hitboxes: false,
		HitboxColors: map[string]color.RGBA{
			"solid":  {R: 100, G: 100, B: 100, A: 255},
			"Player": {R: 0, G: 0, B: 255, A: 255},
			"Enemy":  {R: 255, G: 0, B: 0, A: 255},
		},
	}
}
