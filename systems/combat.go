package systems

import (
	"github.com/automoto/kokaton/components"
	cfg "github.com/automoto/kokaton/config"
	"github.com/automoto/kokaton/systems/factory"
	"github.com/automoto/kokaton/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCombat resolves the collision pairs of a tick in a fixed order:
// beam/flying enemy, bomb/player, patrol enemy/player, beam/bomb, beam/boss.
// It stops as soon as one of them ends the session.
func UpdateCombat(e *ecs.ECS) {
	steps := []func(*ecs.ECS){
		beamsVsFlyingEnemies,
		bombsVsPlayer,
		patrolVsPlayer,
		beamsVsBombs,
		beamsVsBoss,
	}
	for _, step := range steps {
		if getSession(e).Over() {
			return
		}
		step(e)
	}
}

// destroyAll removes every entry returned by Overlapping. It reports whether
// anything was removed.
func destroyAll(ecs *ecs.ECS, hits []*donburi.Entry) bool {
	for _, h := range hits {
		destroy(ecs, h)
	}
	return len(hits) > 0
}

// beamsVsFlyingEnemies: the bomber and every beam touching it are destroyed,
// leaving a long explosion and a cheering bird.
func beamsVsFlyingEnemies(ecs *ecs.ECS) {
	for _, e := range collect(ecs, tags.FlyingEnemy.Each) {
		obj := components.Object.Get(e).Object
		if !destroyAll(ecs, Overlapping(obj, tags.ResolvBeam)) {
			continue
		}
		factory.CreateExplosion(ecs, obj, cfg.Explosion.EnemyLifetime)
		destroy(ecs, e)
		cheer(ecs)
	}
}

func bombsVsPlayer(ecs *ecs.ECS) {
	player, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	Collide(components.Object.Get(player).Object, tags.ResolvBomb, func(bomb *donburi.Entry) bool {
		destroy(ecs, bomb)
		EndSession(ecs, cfg.OutcomePlayerDied, "hit by bomb")
		return false
	})
}

func patrolVsPlayer(ecs *ecs.ECS) {
	player, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	Collide(components.Object.Get(player).Object, tags.ResolvPatrol, func(*donburi.Entry) bool {
		EndSession(ecs, cfg.OutcomePlayerDied, "touched patrol enemy")
		return false
	})
}

// beamsVsBombs: intercepted bombs of either variant explode briefly and take
// the beams with them.
func beamsVsBombs(ecs *ecs.ECS) {
	for _, e := range collect(ecs, components.Bomb.Each) {
		obj := components.Object.Get(e).Object
		if !destroyAll(ecs, Overlapping(obj, tags.ResolvBeam)) {
			continue
		}
		factory.CreateExplosion(ecs, obj, cfg.Explosion.BombLifetime)
		destroy(ecs, e)
	}
}

// beamsVsBoss: every beam touching the boss is consumed and costs it one hit
// point. The session is won on the hit that empties its health.
func beamsVsBoss(ecs *ecs.ECS) {
	boss, ok := tags.Boss.First(ecs.World)
	if !ok {
		return
	}
	obj := components.Object.Get(boss).Object
	health := components.Health.Get(boss)

	Collide(obj, tags.ResolvBeam, func(beam *donburi.Entry) bool {
		destroy(ecs, beam)
		health.Current--
		components.Flash.Get(boss).Duration = cfg.Boss.HitFlashTime
		if health.Current > 0 {
			return true
		}
		health.Current = 0
		EndSession(ecs, cfg.OutcomeBossDefeated, "boss destroyed")
		factory.CreateExplosion(ecs, obj, cfg.Explosion.EnemyLifetime)
		destroy(ecs, boss)
		return false
	})
}
