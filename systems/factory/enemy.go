package factory

import (
	"math/rand"

	"github.com/automoto/kokaton/archetypes"
	"github.com/automoto/kokaton/assets"
	"github.com/automoto/kokaton/components"
	cfg "github.com/automoto/kokaton/config"
	"github.com/automoto/kokaton/gamemath"
	"github.com/automoto/kokaton/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePatrolEnemy spawns a ground enemy walking right from its top-left spawn.
func CreatePatrolEnemy(ecs *ecs.ECS, p assets.PatrolSpawn) *donburi.Entry {
	enemy := archetypes.PatrolEnemy.Spawn(ecs)

	obj := resolv.NewObject(p.X, p.Y, cfg.PatrolEnemy.Width, cfg.PatrolEnemy.Height, tags.ResolvPatrol)
	obj.SetShape(resolv.NewRectangle(0, 0, cfg.PatrolEnemy.Width, cfg.PatrolEnemy.Height))
	attach(ecs, enemy, obj)

	components.Patrol.SetValue(enemy, components.PatrolData{MinX: p.MinX, MaxX: p.MaxX})
	components.Velocity.SetValue(enemy, components.VelocityData{SpeedX: cfg.PatrolEnemy.Speed})
	// The sprite looks left; walking right starts mirrored.
	components.Sprite.SetValue(enemy, components.SpriteData{FlipX: true})
	return enemy
}

// CreateFlyingEnemy spawns a bomber at a random x along the top edge with
// random heading, target altitude and bomb interval.
func CreateFlyingEnemy(ecs *ecs.ECS, rng *rand.Rand) *donburi.Entry {
	fe := cfg.FlyingEnemy
	cx := fe.SpawnMinX + float64(rng.Intn(int(fe.SpawnMaxX-fe.SpawnMinX)+1))
	vx := fe.HorizontalSpeed
	if rng.Intn(2) == 0 {
		vx = -vx
	}
	target := fe.MinAltitude + float64(rng.Intn(int(fe.MaxAltitude-fe.MinAltitude)+1))
	interval := fe.MinBombInterval + rng.Intn(fe.MaxBombInterval-fe.MinBombInterval+1)
	return CreateFlyingEnemyAt(ecs, cx, vx, target, interval)
}

// CreateFlyingEnemyAt spawns a descending bomber centered at (cx, SpawnY).
func CreateFlyingEnemyAt(ecs *ecs.ECS, cx, vx, targetAltitude float64, bombInterval int) *donburi.Entry {
	enemy := archetypes.FlyingEnemy.Spawn(ecs)

	obj := resolv.NewObject(0, 0, cfg.FlyingEnemy.Width, cfg.FlyingEnemy.Height, tags.ResolvFlying)
	obj.SetShape(resolv.NewRectangle(0, 0, cfg.FlyingEnemy.Width, cfg.FlyingEnemy.Height))
	gamemath.SetCenter(obj, cx, cfg.FlyingEnemy.SpawnY)
	attach(ecs, enemy, obj)

	components.FlyingEnemy.SetValue(enemy, components.FlyingEnemyData{
		State:          cfg.StateDescending,
		TargetAltitude: targetAltitude,
		BombInterval:   bombInterval,
	})
	components.Velocity.SetValue(enemy, components.VelocityData{
		SpeedX: vx,
		SpeedY: cfg.FlyingEnemy.DescentSpeed,
	})
	return enemy
}

// CreateBoss spawns the boss centered on (cx, cy) at the start of its descent.
func CreateBoss(ecs *ecs.ECS, cx, cy float64) *donburi.Entry {
	boss := archetypes.Boss.Spawn(ecs)

	obj := resolv.NewObject(0, 0, cfg.Boss.Width, cfg.Boss.Height, tags.ResolvBoss)
	obj.SetShape(resolv.NewRectangle(0, 0, cfg.Boss.Width, cfg.Boss.Height))
	gamemath.SetCenter(obj, cx, cy)
	attach(ecs, boss, obj)

	components.Boss.SetValue(boss, components.BossData{State: cfg.StateDescending})
	components.Velocity.SetValue(boss, components.VelocityData{
		SpeedX: cfg.Boss.EntrySpeedX,
		SpeedY: cfg.Boss.EntrySpeedY,
	})
	components.Health.SetValue(boss, components.HealthData{
		Current: cfg.Boss.HP,
		Max:     cfg.Boss.HP,
	})
	components.Flash.SetValue(boss, components.FlashData{})
	return boss
}
