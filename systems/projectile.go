package systems

import (
	"github.com/automoto/kokaton/components"
	cfg "github.com/automoto/kokaton/config"
	"github.com/automoto/kokaton/gamemath"
	"github.com/automoto/kokaton/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBeams advances beams along their frozen direction and removes any
// that are no longer fully on screen.
func UpdateBeams(ecs *ecs.ECS) {
	for _, e := range collect(ecs, tags.Beam.Each) {
		beam := components.Beam.Get(e)
		obj := components.Object.Get(e).Object

		obj.X += beam.Direction.X * beam.Speed
		obj.Y += beam.Direction.Y * beam.Speed
		if !gamemath.FullyOnScreen(obj, float64(cfg.C.Width), float64(cfg.C.Height)) {
			destroy(ecs, e)
			continue
		}
		obj.Update()
	}
}

// UpdateBombs advances both bomb variants in a straight line and removes
// any that are not fully on screen. Bombs are never re-aimed after release.
func UpdateBombs(ecs *ecs.ECS) {
	for _, e := range collect(ecs, components.Bomb.Each) {
		bomb := components.Bomb.Get(e)
		obj := components.Object.Get(e).Object

		obj.X += bomb.Direction.X * bomb.Speed
		obj.Y += bomb.Direction.Y * bomb.Speed
		if !gamemath.FullyOnScreen(obj, float64(cfg.C.Width), float64(cfg.C.Height)) {
			destroy(ecs, e)
			continue
		}
		obj.Update()
	}
}

// UpdateExplosions burns down explosion lifetimes; an explosion created with
// lifetime L is removed on its (L+1)th update.
func UpdateExplosions(ecs *ecs.ECS) {
	var expired []*donburi.Entry
	tags.Explosion.Each(ecs.World, func(e *donburi.Entry) {
		exp := components.Explosion.Get(e)
		exp.Lifetime--
		if exp.Lifetime < 0 {
			expired = append(expired, e)
		}
	})
	for _, e := range expired {
		destroy(ecs, e)
	}
}
