package factory

import (
	"github.com/automoto/kokaton/archetypes"
	"github.com/automoto/kokaton/assets"
	"github.com/automoto/kokaton/components"
	"github.com/automoto/kokaton/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateTerrain(ecs *ecs.ECS, t assets.TerrainSpawn) *donburi.Entry {
	terrain := archetypes.Terrain.Spawn(ecs)

	obj := resolv.NewObject(t.X, t.Y, t.Width, t.Height, tags.ResolvTerrain)
	obj.SetShape(resolv.NewRectangle(0, 0, t.Width, t.Height))
	attach(ecs, terrain, obj)

	components.Terrain.SetValue(terrain, components.TerrainData{
		Name:  t.Name,
		Floor: t.Floor,
	})
	return terrain
}
