package systems

import (
	"github.com/automoto/kokaton/components"
	cfg "github.com/automoto/kokaton/config"
	"github.com/automoto/kokaton/systems/factory"
	"github.com/automoto/kokaton/tags"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBoss steps the boss state machine and, while it is attacking,
// releases a boss bomb at the player every BombCadence ticks.
func UpdateBoss(ecs *ecs.ECS) {
	session := getSession(ecs)
	player, hasPlayer := tags.Player.First(ecs.World)

	tags.Boss.Each(ecs.World, func(e *donburi.Entry) {
		boss := components.Boss.Get(e)
		prev := boss.State
		stepBoss(boss, components.Velocity.Get(e), e)

		if boss.State != prev {
			log.Debug().
				Int("tick", session.Tick).
				Stringer("from", prev).
				Stringer("to", boss.State).
				Msg("boss state")
		}

		if flash := components.Flash.Get(e); flash.Duration > 0 {
			flash.Duration--
		}

		if boss.State == cfg.StateAttacking && hasPlayer && session.Tick%cfg.Boss.BombCadence == 0 {
			factory.CreateBossBomb(ecs, e, player, session.Rand)
		}
	})
}

func stepBoss(boss *components.BossData, vel *components.VelocityData, e *donburi.Entry) {
	obj := components.Object.Get(e).Object
	width, height := float64(cfg.C.Width), float64(cfg.C.Height)

	switch boss.State {
	case cfg.StateDescending:
		obj.Y += vel.SpeedY
		if obj.Y >= 0 {
			obj.X += vel.SpeedX
			vel.SpeedY = 0
			if obj.X+obj.W >= width {
				vel.SpeedX = cfg.Boss.MoveSpeedX
				vel.SpeedY = cfg.Boss.MoveSpeedY
				boss.State = cfg.StateMoving
			}
		}

	case cfg.StateMoving:
		obj.X += vel.SpeedX
		obj.Y += vel.SpeedY
		if obj.X+obj.W >= width {
			vel.SpeedX = -vel.SpeedX
		} else if obj.X <= 0 {
			vel.SpeedX = -vel.SpeedX
		}
		if obj.Y+obj.H >= height {
			vel.SpeedY = -vel.SpeedY
		} else if obj.Y <= 0 {
			vel.SpeedY = -vel.SpeedY
		}

		boss.Timer++
		if boss.Timer >= cfg.Boss.PhaseFrames {
			boss.Timer = 0
			boss.State = cfg.StateAttacking
		}

	case cfg.StateAttacking:
		// holds position
		boss.Timer++
		if boss.Timer >= cfg.Boss.PhaseFrames {
			boss.Timer = 0
			boss.State = cfg.StateMoving
		}
	}

	obj.Update()
}
