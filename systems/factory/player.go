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
	"github.com/yohamta/donburi/features/math"
)

// CreatePlayer spawns the player bird centered on (cx, cy), facing right.
func CreatePlayer(ecs *ecs.ECS, cx, cy float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	obj := resolv.NewObject(0, 0, cfg.Player.Width, cfg.Player.Height, tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, cfg.Player.Width, cfg.Player.Height))
	gamemath.SetCenter(obj, cx, cy)
	attach(ecs, player, obj)

	components.Player.SetValue(player, components.PlayerData{
		Facing:     math.NewVec2(1, 0),
		Expression: components.ExpressionNormal,
	})
	components.Lives.SetValue(player, components.LivesData{
		Lives:    cfg.Player.StartingLives,
		MaxLives: cfg.Player.StartingLives,
	})

	return player
}
