package tags

import "github.com/yohamta/donburi"

var (
	Player      = donburi.NewTag().SetName("Player")
	Beam        = donburi.NewTag().SetName("Beam")
	Bomb        = donburi.NewTag().SetName("Bomb")
	BossBomb    = donburi.NewTag().SetName("BossBomb")
	Explosion   = donburi.NewTag().SetName("Explosion")
	Terrain     = donburi.NewTag().SetName("Terrain")
	PatrolEnemy = donburi.NewTag().SetName("PatrolEnemy")
	FlyingEnemy = donburi.NewTag().SetName("FlyingEnemy")
	Boss        = donburi.NewTag().SetName("Boss")
)

// Resolv tags for collision classes
const (
	ResolvPlayer  = "Player"
	ResolvBeam    = "Beam"
	ResolvBomb    = "Bomb" // regular and boss bombs
	ResolvTerrain = "solid"
	ResolvPatrol  = "Patrol"
	ResolvFlying  = "Flying"
	ResolvBoss    = "Boss"
	ResolvEffect  = "effect"
)
