package factory

import (
	"github.com/automoto/kokaton/archetypes"
	"github.com/automoto/kokaton/components"
	cfg "github.com/automoto/kokaton/config"
	"github.com/automoto/kokaton/gamemath"
	"github.com/automoto/kokaton/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateExplosion leaves an explosion centered where at was, lasting lifetime ticks.
func CreateExplosion(ecs *ecs.ECS, at *resolv.Object, lifetime int) *donburi.Entry {
	explosion := archetypes.Explosion.Spawn(ecs)

	// Effects never collide; the tag keeps them out of every scan.
	obj := resolv.NewObject(0, 0, cfg.Explosion.Width, cfg.Explosion.Height, tags.ResolvEffect)
	c := gamemath.Center(at)
	gamemath.SetCenter(obj, c.X, c.Y)
	attach(ecs, explosion, obj)

	components.Explosion.SetValue(explosion, components.ExplosionData{Lifetime: lifetime})
	return explosion
}
