package systems

import (
	"github.com/automoto/kokaton/components"
	cfg "github.com/automoto/kokaton/config"
	"github.com/automoto/kokaton/gamemath"
	"github.com/automoto/kokaton/systems/factory"
	"github.com/automoto/kokaton/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// moveDeltas maps each movement action to its cardinal unit delta.
var moveDeltas = []struct {
	action cfg.ActionID
	dx, dy float64
}{
	{cfg.ActionMoveUp, 0, -1},
	{cfg.ActionMoveDown, 0, 1},
	{cfg.ActionMoveLeft, -1, 0},
	{cfg.ActionMoveRight, 1, 0},
}

// UpdatePlayer moves the bird by the sum of held direction keys. A move that
// would leave the screen is undone in full.
func UpdatePlayer(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		obj := components.Object.Get(e).Object

		var sum math.Vec2
		for _, m := range moveDeltas {
			if input.Current[m.action] {
				sum.X += m.dx
				sum.Y += m.dy
			}
		}

		dx, dy := cfg.Player.Speed*sum.X, cfg.Player.Speed*sum.Y
		obj.X += dx
		obj.Y += dy
		if !gamemath.FullyOnScreen(obj, float64(cfg.C.Width), float64(cfg.C.Height)) {
			obj.X -= dx
			obj.Y -= dy
		}
		obj.Update()

		if sum.X != 0 || sum.Y != 0 {
			player.Facing = math.NewVec2(gamemath.Sign(sum.X), gamemath.Sign(sum.Y))
		}
	})
}

// UpdateFire spawns a beam on the fire trigger.
func UpdateFire(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	if !GetAction(input, cfg.ActionFire).JustPressed {
		return
	}
	if player, ok := tags.Player.First(ecs.World); ok {
		factory.CreateBeam(ecs, player)
	}
}

// UpdateExpression counts down a temporary face back to normal.
func UpdateExpression(ecs *ecs.ECS) {
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		if player.ExpressionTimer <= 0 {
			return
		}
		player.ExpressionTimer--
		if player.ExpressionTimer == 0 {
			player.Expression = components.ExpressionNormal
		}
	})
}

func cheer(ecs *ecs.ECS) {
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		player.Expression = components.ExpressionJoy
		player.ExpressionTimer = cfg.Player.JoyFrames
	})
}
