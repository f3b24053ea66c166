package factory

import (
	"github.com/automoto/kokaton/assets"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel populates the world with a level's terrain, patrol enemies,
// player and boss. Terrain is created first and in map order.
func CreateLevel(ecs *ecs.ECS, level assets.Level) {
	for _, t := range level.Terrain {
		CreateTerrain(ecs, t)
	}
	for _, p := range level.PatrolEnemies {
		CreatePatrolEnemy(ecs, p)
	}
	CreatePlayer(ecs, level.PlayerSpawn.X, level.PlayerSpawn.Y)
	CreateBoss(ecs, level.BossSpawn.X, level.BossSpawn.Y)
}
