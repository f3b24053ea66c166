package systems

import (
	"github.com/automoto/kokaton/assets"
	"github.com/automoto/kokaton/components"
	cfg "github.com/automoto/kokaton/config"
	"github.com/automoto/kokaton/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp       = &ebiten.DrawImageOptions{}
	shaderDrawOp = &ebiten.DrawRectShaderOptions{}
)

var (
	skyTop     = cfg.SkyBlue
	hillColor  = cfg.Green
	grassColor = cfg.Green
	soilColor  = cfg.Brown
)

func init() {
	hillColor.R, hillColor.G, hillColor.B = 60, 130, 80
	grassColor.R, grassColor.G, grassColor.B = 70, 170, 70
}

// drawAt blits img with its top-left at (x, y), optionally mirrored.
func drawAt(screen, img *ebiten.Image, x, y float64, flipX bool) {
	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	if flipX {
		drawOp.GeoM.Scale(-1, 1)
		drawOp.GeoM.Translate(float64(img.Bounds().Dx()), 0)
	}
	drawOp.GeoM.Translate(x, y)
	screen.DrawImage(img, drawOp)
}

// drawCentered blits img rotated by angle around (cx, cy).
func drawCentered(screen, img *ebiten.Image, cx, cy, angle float64) {
	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.GeoM.Translate(-float64(img.Bounds().Dx())/2, -float64(img.Bounds().Dy())/2)
	drawOp.GeoM.Rotate(angle)
	drawOp.GeoM.Translate(cx, cy)
	screen.DrawImage(img, drawOp)
}

// DrawBackground paints the village sky and hills.
func DrawBackground(ecs *ecs.ECS, screen *ebiten.Image) {
	w, h := float32(cfg.C.Width), float32(cfg.C.Height)
	screen.Fill(skyTop)
	vector.FillCircle(screen, w*0.2, h*0.95, h*0.45, hillColor, true)
	vector.FillCircle(screen, w*0.75, h, h*0.55, hillColor, true)
}

func DrawBoss(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.Boss.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		img := assets.Boss(int(o.W), int(o.H))

		flash := components.Flash.Get(e)
		if flash.Duration > 0 && assets.FlashShader != nil {
			shaderDrawOp.GeoM.Reset()
			shaderDrawOp.GeoM.Translate(o.X, o.Y)
			shaderDrawOp.Images[0] = img
			shaderDrawOp.Uniforms = map[string]any{
				"Amount": float32(flash.Duration) / float32(cfg.Boss.HitFlashTime),
			}
			b := img.Bounds()
			screen.DrawRectShader(b.Dx(), b.Dy(), assets.FlashShader, shaderDrawOp)
			return
		}
		drawAt(screen, img, o.X, o.Y, false)
	})
}

func drawBombs(ecs *ecs.ECS, screen *ebiten.Image, each func(donburi.World, func(*donburi.Entry))) {
	each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		bomb := components.Bomb.Get(e)
		drawAt(screen, assets.Bomb(int(bomb.Radius), bomb.Color), o.X, o.Y, false)
	})
}

// DrawBossBombs renders the enemy (boss) bombs.
func DrawBossBombs(ecs *ecs.ECS, screen *ebiten.Image) {
	drawBombs(ecs, screen, tags.BossBomb.Each)
}

// DrawBombs renders the flying enemies' bombs.
func DrawBombs(ecs *ecs.ECS, screen *ebiten.Image) {
	drawBombs(ecs, screen, tags.Bomb.Each)
}

func DrawBeams(ecs *ecs.ECS, screen *ebiten.Image) {
	img := assets.Beam(cfg.Beam.Length, cfg.Beam.Girth)
	tags.Beam.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		sprite := components.Sprite.Get(e)
		drawCentered(screen, img, o.X+o.W/2, o.Y+o.H/2, sprite.Rotation)
	})
}

func DrawExplosions(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.Explosion.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		exp := components.Explosion.Get(e)
		drawAt(screen, assets.Explosion(exp.Frame(), int(o.W), int(o.H)), o.X, o.Y, false)
	})
}

func DrawTerrain(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.Terrain.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		vector.FillRect(screen, float32(o.X), float32(o.Y), float32(o.W), float32(o.H), soilColor, false)
		vector.FillRect(screen, float32(o.X), float32(o.Y), float32(o.W), 6, grassColor, false)
	})
}

func DrawPatrolEnemies(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.PatrolEnemy.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		sprite := components.Sprite.Get(e)
		drawAt(screen, assets.DeathBird(int(o.W), int(o.H)), o.X, o.Y, sprite.FlipX)
	})
}

func DrawPlayer(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		player := components.Player.Get(e)
		img := assets.Bird(int(player.Facing.X), int(player.Facing.Y), faceOf(player.Expression))
		drawAt(screen, img, o.X, o.Y, false)
	})
}

func DrawFlyingEnemies(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.FlyingEnemy.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		drawAt(screen, assets.Saucer(int(o.W), int(o.H)), o.X, o.Y, false)
	})
}

func faceOf(x components.Expression) assets.Face {
	switch x {
	case components.ExpressionJoy:
		return assets.FaceJoy
	case components.ExpressionSad:
		return assets.FaceSad
	}
	return assets.FaceNormal
}
