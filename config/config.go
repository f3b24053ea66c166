package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer used by the game.
const Default ecs.LayerID = 0

// TicksPerSecond is the fixed update rate of every scene.
const TicksPerSecond = 50

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	Speed float64 // pixels per tick per held direction key

	// Spawn (center of the collision box)
	SpawnX float64
	SpawnY float64

	// Lives
	StartingLives int

	// Expressions
	JoyFrames int // frames the joy face is shown after a kill

	// Dimensions
	Width  float64
	Height float64
}

// BeamConfig contains player projectile configuration
type BeamConfig struct {
	Speed  float64
	Length float64 // sprite length along the travel direction
	Girth  float64 // sprite thickness across the travel direction
}

// BombConfig contains configuration for a bomb variant
type BombConfig struct {
	Speed     float64
	MinRadius int
	MaxRadius int
	Palette   []color.RGBA
}

// FlyingEnemyConfig contains configuration for the flying bomber
type FlyingEnemyConfig struct {
	Width  float64
	Height float64

	// Spawn area (center X range, center Y)
	SpawnMinX float64
	SpawnMaxX float64
	SpawnY    float64

	HorizontalSpeed float64 // sign is chosen at spawn
	DescentSpeed    float64

	// Target altitude range for the descent (center Y)
	MinAltitude float64
	MaxAltitude float64

	// Bomb drop interval range in ticks
	MinBombInterval int
	MaxBombInterval int

	// Spawner
	SpawnCadence int // ticks between spawn attempts
	MaxAlive     int
}

// BossConfig contains boss configuration
type BossConfig struct {
	Width  float64
	Height float64

	// Spawn (center of the collision box)
	SpawnX float64
	SpawnY float64

	HP int

	// Descend phase velocity
	EntrySpeedX float64
	EntrySpeedY float64

	// Moving phase velocity, applied once the descent ends
	MoveSpeedX float64
	MoveSpeedY float64

	PhaseFrames  int // ticks spent in each of moving/attacking
	BombCadence  int // one bomb every N ticks while attacking
	HitFlashTime int // frames the boss flashes after a beam hit
}

// PatrolEnemyConfig contains ground patrol enemy configuration
type PatrolEnemyConfig struct {
	Width  float64
	Height float64
	Speed  float64
}

// ExplosionConfig contains explosion effect configuration
type ExplosionConfig struct {
	Width          float64
	Height         float64
	EnemyLifetime  int // ticks for a destroyed flying enemy
	BombLifetime   int // ticks for an intercepted bomb
	FrameTicks     int // ticks per flicker frame
	FrameCount     int
	PrimaryColor   color.RGBA
	SecondaryColor color.RGBA
}

// HUDConfig contains in-battle overlay configuration
type HUDConfig struct {
	LifeCenterX float64
	LifeCenterY float64
	LifeColor   color.RGBA
	BossBarY    float64
	BossBarW    float64
	BossBarH    float64
}

// ResultConfig contains game over / game clear screen configuration
type ResultConfig struct {
	OverlayAlpha  float32 // final alpha of the black overlay (0-1)
	FadeSeconds   float32
	DisplayFrames int // frames before returning to the title screen
	InputDelay    int // frames before confirm is accepted
	TitleColor    color.RGBA
	HintColor     color.RGBA
	TitleY        float64
	FaceY         float64
	FaceOffsetX   float64
}

// TitleConfig contains title screen configuration
type TitleConfig struct {
	BackgroundColor color.RGBA
	TextColor       color.RGBA
	HintBlinkSecs   float32
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipTitle  bool  // Skip the title screen and start a battle immediately
	DrawBoxes  bool  // Draw collision boxes over every object
	Seed       int64 // 0 = seed from the clock
	Fullscreen bool
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Beam BeamConfig
var Bomb BombConfig
var BossBomb BombConfig
var FlyingEnemy FlyingEnemyConfig
var Boss BossConfig
var PatrolEnemy PatrolEnemyConfig
var Explosion ExplosionConfig
var HUD HUDConfig
var Result ResultConfig
var Title TitleConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Blue         = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	Magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	Cyan         = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	Aqua         = color.RGBA{R: 100, G: 255, B: 255, A: 255}
	Brown        = color.RGBA{R: 140, G: 90, B: 40, A: 255}
	DarkGray     = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	SkyBlue      = color.RGBA{R: 70, G: 110, B: 160, A: 255}
)

func init() {
	C = &Config{
		Width:  1100,
		Height: 650,
	}

	Player = PlayerConfig{
		Speed:         10,
		SpawnX:        550,
		SpawnY:        300,
		StartingLives: 10,
		JoyFrames:     50,
		Width:         60,
		Height:        60,
	}

	Beam = BeamConfig{
		Speed:  10,
		Length: 40,
		Girth:  12,
	}

	Bomb = BombConfig{
		Speed:     6,
		MinRadius: 10,
		MaxRadius: 50,
		Palette:   []color.RGBA{Red, Green, Blue, Yellow, Magenta, Cyan},
	}

	// Red to yellow heat ramp
	heat := make([]color.RGBA, 0, 9)
	for i := 0; i < 9; i++ {
		g := min(i*32, 255)
		heat = append(heat, color.RGBA{R: 255, G: uint8(g), B: 0, A: 255})
	}
	BossBomb = BombConfig{
		Speed:     8,
		MinRadius: 20,
		MaxRadius: 20,
		Palette:   heat,
	}

	FlyingEnemy = FlyingEnemyConfig{
		Width:           70,
		Height:          50,
		SpawnMinX:       100,
		SpawnMaxX:       float64(C.Width - 100),
		SpawnY:          0,
		HorizontalSpeed: 4,
		DescentSpeed:    6,
		MinAltitude:     50,
		MaxAltitude:     float64(C.Height / 2),
		MinBombInterval: 200,
		MaxBombInterval: 300,
		SpawnCadence:    350,
		MaxAlive:        3,
	}

	Boss = BossConfig{
		Width:        200,
		Height:       160,
		SpawnX:       float64(C.Width / 2),
		SpawnY:       -100,
		HP:           20,
		EntrySpeedX:  5,
		EntrySpeedY:  5,
		MoveSpeedX:   -8,
		MoveSpeedY:   7,
		PhaseFrames:  100,
		BombCadence:  2,
		HitFlashTime: 4,
	}

	PatrolEnemy = PatrolEnemyConfig{
		Width:  60,
		Height: 70,
		Speed:  2,
	}

	Explosion = ExplosionConfig{
		Width:          80,
		Height:         80,
		EnemyLifetime:  100,
		BombLifetime:   50,
		FrameTicks:     10,
		FrameCount:     2,
		PrimaryColor:   Orange,
		SecondaryColor: Yellow,
	}

	HUD = HUDConfig{
		LifeCenterX: 100,
		LifeCenterY: float64(C.Height - 50),
		LifeColor:   Aqua,
		BossBarY:    10,
		BossBarW:    300,
		BossBarH:    12,
	}

	Result = ResultConfig{
		OverlayAlpha:  0.5, // 128/255
		FadeSeconds:   0.4,
		DisplayFrames: 5 * TicksPerSecond,
		InputDelay:    TicksPerSecond / 2,
		TitleColor:    White,
		HintColor:     White,
		TitleY:        float64(C.Height / 2),
		FaceY:         float64(C.Height / 2),
		FaceOffsetX:   240,
	}

	Title = TitleConfig{
		BackgroundColor: SkyBlue,
		TextColor:       White,
		HintBlinkSecs:   0.6,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		SkipTitle: false,
	}
}
