package systems

import (
	"github.com/automoto/kokaton/components"
	"github.com/automoto/kokaton/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTerrain stands the player on any floor or platform it overlaps.
// Segments are checked in level order and a later overlap wins.
func UpdateTerrain(ecs *ecs.ECS) {
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e).Object
		// Overlaps are taken before the first push; every segment in that
		// list still lifts the player even if an earlier push cleared it.
		Collide(obj, tags.ResolvTerrain, func(t *donburi.Entry) bool {
			ground := components.Object.Get(t).Object
			obj.Y = ground.Y - obj.H
			obj.Update()
			return true
		})
	})
}
