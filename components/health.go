package components

import "github.com/yohamta/donburi"

// HealthData holds the boss hit points.
type HealthData struct {
	Current int
	Max     int
}

var Health = donburi.NewComponentType[HealthData]()

// LivesData is the player's life counter shown in the HUD.
type LivesData struct {
	Lives    int
	MaxLives int
}

var Lives = donburi.NewComponentType[LivesData]()
