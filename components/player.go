package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// Expression is the face the player bird is currently showing.
type Expression int

const (
	ExpressionNormal Expression = iota
	ExpressionJoy
	ExpressionSad
)

type PlayerData struct {
	// Facing is the sign-only sum of the last non-zero movement input.
	Facing math.Vec2

	Expression      Expression
	ExpressionTimer int // frames left before the expression resets
}

var Player = donburi.NewComponentType[PlayerData]()
