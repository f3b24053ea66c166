package archetypes

import (
	"github.com/automoto/kokaton/components"
	cfg "github.com/automoto/kokaton/config"
	"github.com/automoto/kokaton/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Space = newArchetype(
		components.Space,
		components.SpaceOrder,
	)
	Session = newArchetype(
		components.Session,
	)
	Terrain = newArchetype(
		tags.Terrain,
		components.Terrain,
		components.Object,
	)
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Lives,
	)
	Beam = newArchetype(
		tags.Beam,
		components.Beam,
		components.Object,
		components.Sprite,
	)
	Bomb = newArchetype(
		tags.Bomb,
		components.Bomb,
		components.Object,
	)
	BossBomb = newArchetype(
		tags.BossBomb,
		components.Bomb,
		components.Object,
	)
	Explosion = newArchetype(
		tags.Explosion,
		components.Explosion,
		components.Object,
	)
	PatrolEnemy = newArchetype(
		tags.PatrolEnemy,
		components.Patrol,
		components.Velocity,
		components.Object,
		components.Sprite,
	)
	FlyingEnemy = newArchetype(
		tags.FlyingEnemy,
		components.FlyingEnemy,
		components.Velocity,
		components.Object,
	)
	Boss = newArchetype(
		tags.Boss,
		components.Boss,
		components.Velocity,
		components.Health,
		components.Object,
		components.Flash,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
