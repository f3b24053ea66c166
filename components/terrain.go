package components

import "github.com/yohamta/donburi"

type TerrainData struct {
	Name  string
	Floor bool
}

var Terrain = donburi.NewComponentType[TerrainData]()
