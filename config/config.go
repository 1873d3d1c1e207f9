package config

import "image/color"

// WorldConfig describes the arena and the simulation clock.
type WorldConfig struct {
	Title    string
	Width    int
	Height   int
	CellSize int     // resolv space cell size
	Gravity  float64 // px/s^2, applied to bodies with gravity enabled
	TPS      int     // fixed ticks per second
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Spawn (sprite centre)
	StartX float64
	StartY float64

	// Movement (px/s)
	RunSpeed  float64
	JumpSpeed float64

	// Physics
	Bounce float64

	// Dimensions
	Width       float64
	Height      float64
	FrameWidth  int
	FrameHeight int
	FrameCount  int

	// Visual
	HitTint color.RGBA
}

// StarConfig contains the collectible batch layout and scoring.
type StarConfig struct {
	Count     int
	StartX    float64 // centre x of the first star
	StepX     float64
	StartY    float64
	BounceMin float64
	BounceMax float64
	Points    int
	Width     float64
	Height    float64
}

// BombConfig contains hazard spawn rules.
type BombConfig struct {
	SpawnY    float64
	MinX      int // leftmost spawn x
	SplitX    int // players left of this line get bombs on the right
	MaxX      int // rightmost spawn x
	Bounce    float64
	MinSpeedX int
	MaxSpeedX int
	SpeedY    float64
	Size      float64
	MaxCount  int // 0 = unbounded
}

// PlatformSpec places one static platform by its centre.
type PlatformSpec struct {
	X, Y  float64
	Scale float64
}

// PlatformConfig contains the static terrain.
type PlatformConfig struct {
	Width  float64 // unscaled
	Height float64 // unscaled
	Layout []PlatformSpec
}

// ScoreConfig contains score text placement and formatting.
type ScoreConfig struct {
	X, Y        float64
	FontSize    float64
	InitialText string
	Format      string
	Color       color.RGBA
	PopScale    float32 // text scale right after a collection
	PopDuration float32 // seconds to ease back to 1
}

// GameOverConfig contains game over overlay configuration values
type GameOverConfig struct {
	OverlayColor color.RGBA
	TitleColor   color.RGBA
	HintColor    color.RGBA
	Title        string
	Hint         string
	TitleY       float64
	HintY        float64
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Seed       int64 // 0 = seed from the clock
	ShowBodies bool  // outline every collision body
}

// Config holds general window configuration
type Config struct {
	Width  int
	Height int
	Scale  float64
}

// Global configuration instances
var C *Config
var World WorldConfig
var Player PlayerConfig
var Star StarConfig
var Bomb BombConfig
var Platforms PlatformConfig
var Score ScoreConfig
var GameOver GameOverConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 140}
	SkyBlue      = color.RGBA{R: 100, G: 170, B: 235, A: 255}
	Grass        = color.RGBA{R: 70, G: 160, B: 60, A: 255}
	Dirt         = color.RGBA{R: 120, G: 80, B: 40, A: 255}
	Gold         = color.RGBA{R: 255, G: 210, B: 40, A: 255}
	Charcoal     = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	Purple       = color.RGBA{R: 128, G: 0, B: 255, A: 255}
)

func init() {
	World = WorldConfig{
		Title:    "starcatch",
		Width:    800,
		Height:   600,
		CellSize: 16,
		Gravity:  300,
		TPS:      60,
	}

	C = &Config{
		Width:  World.Width,
		Height: World.Height,
		Scale:  1,
	}

	Player = PlayerConfig{
		StartX: 100,
		StartY: 450,

		RunSpeed:  160,
		JumpSpeed: 330,

		Bounce: 0.2,

		Width:       32,
		Height:      48,
		FrameWidth:  32,
		FrameHeight: 48,
		FrameCount:  9,

		HitTint: Red, // 0xff0000
	}

	Star = StarConfig{
		Count:     12,
		StartX:    12,
		StepX:     70,
		StartY:    0,
		BounceMin: 0.4,
		BounceMax: 0.8,
		Points:    10,
		Width:     24,
		Height:    22,
	}

	Bomb = BombConfig{
		SpawnY:    16,
		MinX:      0,
		SplitX:    400,
		MaxX:      800,
		Bounce:    1,
		MinSpeedX: -200,
		MaxSpeedX: 200,
		SpeedY:    20,
		Size:      14,
		MaxCount:  0,
	}

	Platforms = PlatformConfig{
		Width:  400,
		Height: 32,
		Layout: []PlatformSpec{
			{X: 400, Y: 568, Scale: 2}, // ground, spans the whole arena
			{X: 600, Y: 400, Scale: 1},
			{X: 50, Y: 250, Scale: 1},
			{X: 750, Y: 220, Scale: 1},
		},
	}

	// InitialText is lowercase and Format is capitalised; both are shown as is.
	Score = ScoreConfig{
		X:           16,
		Y:           16,
		FontSize:    32,
		InitialText: "score: 0",
		Format:      "Score: %d",
		Color:       Black,
		PopScale:    1.25,
		PopDuration: 0.25,
	}

	GameOver = GameOverConfig{
		OverlayColor: BlackOverlay,
		TitleColor:   LightRed,
		HintColor:    White,
		Title:        "GAME OVER",
		Hint:         "Press ENTER to play again",
		TitleY:       280,
		HintY:        330,
	}

	// Debug Config (defaults, can be overridden by CLI flags or the config file)
	Debug = DebugConfig{
		Seed:       0,
		ShowBodies: false,
	}
}
