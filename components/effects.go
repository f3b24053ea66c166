package components

import "github.com/yohamta/donburi"

// ExplosionData is a transient flicker left where something was destroyed.
// The entity is removed once Lifetime drops below zero.
type ExplosionData struct {
	Lifetime int
}

// Frame returns which of the two flicker frames to show.
func (e *ExplosionData) Frame() int {
	return (e.Lifetime / 10) % 2
}

var Explosion = donburi.NewComponentType[ExplosionData]()

// FlashData tracks sprite flash effect (boss hit flash)
type FlashData struct {
	Duration int // frames remaining
}

var Flash = donburi.NewComponentType[FlashData]()
