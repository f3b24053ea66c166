package factory

import (
	"github.com/automoto/kokaton/archetypes"
	"github.com/automoto/kokaton/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SpaceCellSize is the resolv broad-phase cell edge in pixels.
const SpaceCellSize = 20

// CreateSpace creates the world's collision space singleton.
func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}

// attach binds obj to entry and registers it with the world's space.
func attach(ecs *ecs.ECS, entry *donburi.Entry, obj *resolv.Object) {
	obj.Data = entry
	space := components.Space.MustFirst(ecs.World)
	order := components.SpaceOrder.Get(space)
	order.Next++
	components.Object.SetValue(entry, components.ObjectData{Object: obj, Seq: order.Next})
	components.Space.Get(space).Add(obj)
}
