package components

import (
	cfg "github.com/automoto/kokaton/config"
	"github.com/yohamta/donburi"
)

// VelocityData is the per-tick displacement of a moving enemy.
type VelocityData struct {
	SpeedX float64
	SpeedY float64
}

var Velocity = donburi.NewComponentType[VelocityData]()

// FlyingEnemyData drives the descending -> patrolling bomber.
type FlyingEnemyData struct {
	State          cfg.StateID
	TargetAltitude float64 // center Y at which the descent stops
	BombTimer      int
	BombInterval   int
}

var FlyingEnemy = donburi.NewComponentType[FlyingEnemyData]()

// BossData drives the descending -> moving <-> attacking state machine.
// Hit points live in the Health component.
type BossData struct {
	State cfg.StateID
	Timer int // frames spent in the current moving/attacking phase
}

var Boss = donburi.NewComponentType[BossData]()

// PatrolData bounds a ground enemy to the horizontal extent of its platform.
type PatrolData struct {
	MinX float64
	MaxX float64
}

var Patrol = donburi.NewComponentType[PatrolData]()
