package factory

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/automoto/kokaton/archetypes"
	"github.com/automoto/kokaton/components"
	cfg "github.com/automoto/kokaton/config"
	"github.com/automoto/kokaton/gamemath"
	"github.com/automoto/kokaton/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// CreateBeam fires a beam from the player's edge along its current facing.
func CreateBeam(ecs *ecs.ECS, player *donburi.Entry) *donburi.Entry {
	pObj := components.Object.Get(player).Object
	facing := components.Player.Get(player).Facing

	dir := facing
	if n := math.Hypot(dir.X, dir.Y); n > 0 {
		dir = dmath.NewVec2(dir.X/n, dir.Y/n)
	} else {
		dir = dmath.NewVec2(1, 0)
	}
	angle := math.Atan2(dir.Y, dir.X)

	beam := archetypes.Beam.Spawn(ecs)

	w, h := gamemath.RotatedBounds(cfg.Beam.Length, cfg.Beam.Girth, angle)
	obj := resolv.NewObject(0, 0, w, h, tags.ResolvBeam)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	c := gamemath.Center(pObj)
	gamemath.SetCenter(obj, c.X+pObj.W*dir.X/2, c.Y+pObj.H*dir.Y/2)
	attach(ecs, beam, obj)

	components.Beam.SetValue(beam, components.BeamData{
		Direction: dir,
		Speed:     cfg.Beam.Speed,
	})
	components.Sprite.SetValue(beam, components.SpriteData{Rotation: angle})
	return beam
}

// CreateBomb releases a regular bomb from the bottom center of spawner,
// aimed once at target.
func CreateBomb(ecs *ecs.ECS, spawner, target *donburi.Entry, rng *rand.Rand) *donburi.Entry {
	sObj := components.Object.Get(spawner).Object
	radius := float64(cfg.Bomb.MinRadius + rng.Intn(cfg.Bomb.MaxRadius-cfg.Bomb.MinRadius+1))
	clr := cfg.Bomb.Palette[rng.Intn(len(cfg.Bomb.Palette))]

	bomb := archetypes.Bomb.Spawn(ecs)
	obj := bombObject(radius)
	obj.X = sObj.X + sObj.W/2 - radius
	obj.Y = sObj.Y + sObj.H - radius
	return finishBomb(ecs, bomb, obj, sObj, target, cfg.Bomb.Speed, radius, clr)
}

// CreateBossBomb releases a boss bomb from the boss center, aimed once at target.
func CreateBossBomb(ecs *ecs.ECS, boss, target *donburi.Entry, rng *rand.Rand) *donburi.Entry {
	bObj := components.Object.Get(boss).Object
	radius := float64(cfg.BossBomb.MinRadius)
	clr := cfg.BossBomb.Palette[rng.Intn(len(cfg.BossBomb.Palette))]

	bomb := archetypes.BossBomb.Spawn(ecs)
	obj := bombObject(radius)
	c := gamemath.Center(bObj)
	gamemath.SetCenter(obj, c.X, c.Y)
	return finishBomb(ecs, bomb, obj, bObj, target, cfg.BossBomb.Speed, radius, clr)
}

// CreateBombAt places a regular-variant bomb centered on (cx, cy), aimed
// from that point.
func CreateBombAt(ecs *ecs.ECS, cx, cy, radius float64, target *donburi.Entry) *donburi.Entry {
	bomb := archetypes.Bomb.Spawn(ecs)
	obj := bombObject(radius)
	gamemath.SetCenter(obj, cx, cy)
	return finishBomb(ecs, bomb, obj, obj, target, cfg.Bomb.Speed, radius, cfg.Bomb.Palette[0])
}

func bombObject(radius float64) *resolv.Object {
	obj := resolv.NewObject(0, 0, 2*radius, 2*radius, tags.ResolvBomb)
	obj.SetShape(resolv.NewRectangle(0, 0, 2*radius, 2*radius))
	return obj
}

// finishBomb registers the bomb aimed from the centre of from toward target.
func finishBomb(ecs *ecs.ECS, bomb *donburi.Entry, obj, from *resolv.Object, target *donburi.Entry, speed, radius float64, clr color.RGBA) *donburi.Entry {
	dir := gamemath.DirectionTo(from, components.Object.Get(target).Object)
	attach(ecs, bomb, obj)
	components.Bomb.SetValue(bomb, components.BombData{
		Direction: dir,
		Speed:     speed,
		Radius:    radius,
		Color:     clr,
	})
	return bomb
}
