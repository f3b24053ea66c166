package systems

import (
	"github.com/automoto/kokaton/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// destroy removes an entity and its collision object from the space.
// Already-removed entries are ignored.
func destroy(ecs *ecs.ECS, e *donburi.Entry) {
	if e == nil || !e.Valid() {
		return
	}
	if e.HasComponent(components.Object) {
		obj := components.Object.Get(e).Object
		if obj != nil && obj.Space != nil {
			obj.Space.Remove(obj)
		}
	}
	ecs.World.Remove(e.Entity())
}

// collect snapshots a query so callers can remove entities while iterating.
func collect(ecs *ecs.ECS, each func(w donburi.World, fn func(*donburi.Entry))) []*donburi.Entry {
	var out []*donburi.Entry
	each(ecs.World, func(e *donburi.Entry) {
		out = append(out, e)
	})
	return out
}
