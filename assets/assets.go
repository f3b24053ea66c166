package assets

import (
	"embed"
	"fmt"

	"github.com/lafriks/go-tiled"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi/features/math"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

// VillageLevel is the path of the only battle stage.
const VillageLevel = "levels/village.tmx"

// TerrainSpawn is a solid floor or platform rectangle.
type TerrainSpawn struct {
	Name                string
	X, Y, Width, Height float64
	Floor               bool
}

// PatrolSpawn is a ground enemy, top-left anchored, with its patrol range.
type PatrolSpawn struct {
	Name       string
	X, Y       float64
	MinX, MaxX float64
}

type Level struct {
	Name   string
	Title  string
	Width  int
	Height int

	// Terrain keeps map order; collision resolution depends on it.
	Terrain       []TerrainSpawn
	PatrolEnemies []PatrolSpawn
	PlayerSpawn   math.Vec2 // center
	BossSpawn     math.Vec2 // center
}

type LevelLoader struct{}

func NewLevelLoader() *LevelLoader {
	return &LevelLoader{}
}

// LoadLevel parses a TMX map from the embedded level directory.
func (l *LevelLoader) LoadLevel(levelPath string) (Level, error) {
	levelMap, err := tiled.LoadFile(levelPath, tiled.WithFileSystem(assetFS))
	if err != nil {
		return Level{}, fmt.Errorf("load level %s: %w", levelPath, err)
	}

	level := Level{
		Name:          levelPath,
		Title:         levelMap.Properties.GetString("title"),
		Width:         levelMap.Width * levelMap.TileWidth,
		Height:        levelMap.Height * levelMap.TileHeight,
		Terrain:       []TerrainSpawn{},
		PatrolEnemies: []PatrolSpawn{},
	}

	var havePlayer, haveBoss bool
	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "Terrain":
			for _, o := range og.Objects {
				level.Terrain = append(level.Terrain, TerrainSpawn{
					Name:   o.Name,
					X:      o.X,
					Y:      o.Y,
					Width:  o.Width,
					Height: o.Height,
					Floor:  o.Properties.GetBool("floor"),
				})
			}
		case "PatrolEnemy":
			for _, o := range og.Objects {
				level.PatrolEnemies = append(level.PatrolEnemies, PatrolSpawn{
					Name: o.Name,
					X:    o.X,
					Y:    o.Y,
					MinX: o.Properties.GetFloat("minX"),
					MaxX: o.Properties.GetFloat("maxX"),
				})
			}
		case "PlayerSpawn":
			for _, o := range og.Objects {
				level.PlayerSpawn = math.NewVec2(o.X, o.Y)
				havePlayer = true
			}
		case "BossSpawn":
			for _, o := range og.Objects {
				level.BossSpawn = math.NewVec2(o.X, o.Y)
				haveBoss = true
			}
		}
	}

	if len(level.Terrain) == 0 {
		return Level{}, fmt.Errorf("level %s: no terrain objects", levelPath)
	}
	if !havePlayer || !haveBoss {
		return Level{}, fmt.Errorf("level %s: missing player or boss spawn", levelPath)
	}
	for _, p := range level.PatrolEnemies {
		if p.MaxX <= p.MinX {
			return Level{}, fmt.Errorf("level %s: patrol enemy %q has empty range [%v,%v]", levelPath, p.Name, p.MinX, p.MaxX)
		}
	}

	log.Debug().
		Str("level", levelPath).
		Int("terrain", len(level.Terrain)).
		Int("patrol", len(level.PatrolEnemies)).
		Msg("level loaded")

	return level, nil
}

func (l *LevelLoader) MustLoadLevel(levelPath string) Level {
	level, err := l.LoadLevel(levelPath)
	if err != nil {
		panic(err)
	}
	return level
}

var village *Level

// Village returns the parsed battle stage, loading it on first use.
func Village() Level {
	if village == nil {
		lv := NewLevelLoader().MustLoadLevel(VillageLevel)
		village = &lv
	}
	return *village
}
