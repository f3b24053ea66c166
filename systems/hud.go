package systems

import (
	"fmt"

	"github.com/automoto/kokaton/assets"
	"github.com/automoto/kokaton/components"
	cfg "github.com/automoto/kokaton/config"
	"github.com/automoto/kokaton/fonts"
	"github.com/automoto/kokaton/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawLife renders the remaining-life counter centered bottom-left.
func DrawLife(ecs *ecs.ECS, screen *ebiten.Image) {
	player, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	lives := components.Lives.Get(player)

	face := fonts.HUD.Get()
	label := fmt.Sprintf(assets.Text().HUD.Life, lives.Lives)
	b := text.BoundString(face, label)
	x := int(cfg.HUD.LifeCenterX) - b.Dx()/2
	y := int(cfg.HUD.LifeCenterY) + b.Dy()/2
	text.Draw(screen, label, face, x, y, cfg.HUD.LifeColor)
}

// DrawBossHealth renders the boss hit point bar along the top edge.
func DrawBossHealth(ecs *ecs.ECS, screen *ebiten.Image) {
	boss, ok := tags.Boss.First(ecs.World)
	if !ok {
		return
	}
	hp := components.Health.Get(boss)

	barX := (float32(cfg.C.Width) - float32(cfg.HUD.BossBarW)) / 2
	barY := float32(cfg.HUD.BossBarY)
	vector.FillRect(screen, barX, barY, float32(cfg.HUD.BossBarW), float32(cfg.HUD.BossBarH), cfg.DarkGray, false)

	ratio := float32(hp.Current) / float32(hp.Max)
	vector.FillRect(screen, barX, barY, float32(cfg.HUD.BossBarW)*ratio, float32(cfg.HUD.BossBarH), cfg.LightRed, false)
	vector.StrokeRect(screen, barX, barY, float32(cfg.HUD.BossBarW), float32(cfg.HUD.BossBarH), 1, cfg.White, false)

	label := assets.Text().HUD.Boss
	text.Draw(screen, label, fonts.Body.Get(), int(barX)-60, int(barY)+int(cfg.HUD.BossBarH), cfg.White)
}
