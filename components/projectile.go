package components

import (
	"image/color"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// BeamData is a player projectile. Direction is frozen at fire time.
type BeamData struct {
	Direction math.Vec2
	Speed     float64
}

var Beam = donburi.NewComponentType[BeamData]()

// BombData is an enemy projectile aimed once at the player's position on release.
type BombData struct {
	Direction math.Vec2
	Speed     float64
	Radius    float64
	Color     color.RGBA
}

var Bomb = donburi.NewComponentType[BombData]()
