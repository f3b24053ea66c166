package systems

import (
	"github.com/automoto/kokaton/components"
	cfg "github.com/automoto/kokaton/config"
	"github.com/automoto/kokaton/gamemath"
	"github.com/automoto/kokaton/systems/factory"
	"github.com/automoto/kokaton/tags"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePatrolEnemies walks ground enemies back and forth between their
// bounds, mirroring the sprite on every turn.
func UpdatePatrolEnemies(ecs *ecs.ECS) {
	tags.PatrolEnemy.Each(ecs.World, func(e *donburi.Entry) {
		patrol := components.Patrol.Get(e)
		vel := components.Velocity.Get(e)
		obj := components.Object.Get(e).Object

		obj.X += vel.SpeedX
		if obj.X <= patrol.MinX || obj.X+obj.W >= patrol.MaxX {
			vel.SpeedX = -vel.SpeedX
			sprite := components.Sprite.Get(e)
			sprite.FlipX = !sprite.FlipX
		}
		obj.Update()
	})
}

// UpdateFlyingEnemySpawns launches a new bomber on the spawn cadence while
// fewer than the cap are alive, then releases a bomb from every bomber whose
// drop timer has reached its interval.
func UpdateFlyingEnemySpawns(ecs *ecs.ECS) {
	session := getSession(ecs)

	if session.Tick%cfg.FlyingEnemy.SpawnCadence == 0 {
		alive := 0
		tags.FlyingEnemy.Each(ecs.World, func(*donburi.Entry) { alive++ })
		if alive < cfg.FlyingEnemy.MaxAlive {
			e := factory.CreateFlyingEnemy(ecs, session.Rand)
			fe := components.FlyingEnemy.Get(e)
			log.Debug().
				Int("tick", session.Tick).
				Float64("target", fe.TargetAltitude).
				Int("interval", fe.BombInterval).
				Msg("flying enemy spawned")
		}
	}

	player, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	for _, e := range collect(ecs, tags.FlyingEnemy.Each) {
		fe := components.FlyingEnemy.Get(e)
		if fe.BombTimer >= fe.BombInterval {
			factory.CreateBomb(ecs, e, player, session.Rand)
			fe.BombTimer = 0
		}
	}
}

// UpdateFlyingEnemies moves bombers. A descending bomber levels off once its
// center reaches the target altitude; in either state it turns at the
// screen edges.
func UpdateFlyingEnemies(ecs *ecs.ECS) {
	width := float64(cfg.C.Width)

	tags.FlyingEnemy.Each(ecs.World, func(e *donburi.Entry) {
		fe := components.FlyingEnemy.Get(e)
		vel := components.Velocity.Get(e)
		obj := components.Object.Get(e).Object

		switch fe.State {
		case cfg.StateDescending:
			obj.X += vel.SpeedX
			obj.Y += vel.SpeedY
			if gamemath.Center(obj).Y >= fe.TargetAltitude {
				vel.SpeedY = 0
				fe.State = cfg.StatePatrolling
			}
		case cfg.StatePatrolling:
			obj.X += vel.SpeedX
		}

		if obj.X <= 0 || obj.X+obj.W >= width {
			vel.SpeedX = -vel.SpeedX
		}
		obj.Update()

		fe.BombTimer++
	})
}
