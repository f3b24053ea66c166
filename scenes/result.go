package scenes

import (
	"sync"

	cfg "github.com/automoto/kokaton/config"
	"github.com/automoto/kokaton/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ResultScene displays "Game Over" or "Game Clear" over the frozen battle
type ResultScene struct {
	ecs          *ecs.ECS
	battle       *ecs.ECS
	outcome      cfg.Outcome
	sceneChanger SceneChanger
	once         sync.Once
}

// NewResultScene creates a result scene. battle may be nil, in which case
// only the overlay is drawn.
func NewResultScene(sc SceneChanger, outcome cfg.Outcome, battle *ecs.ECS) *ResultScene {
	return &ResultScene{sceneChanger: sc, outcome: outcome, battle: battle}
}

func (rs *ResultScene) Phase() cfg.Phase { return cfg.PhaseOver }

func (rs *ResultScene) Update() {
	rs.once.Do(rs.configure)
	rs.ecs.Update()
}

func (rs *ResultScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Black)

	if rs.battle != nil {
		rs.battle.Draw(screen)
	}
	if rs.ecs == nil {
		return
	}
	rs.ecs.Draw(screen)
}

func (rs *ResultScene) configure() {
	rs.ecs = ecs.NewECS(donburi.NewWorld())

	createTitleScene := func() interface{} {
		return NewTitleScene(rs.sceneChanger)
	}

	rs.ecs.AddSystem(systems.UpdateInput)
	rs.ecs.AddSystem(systems.NewUpdateResult(rs.sceneChanger, rs.outcome, createTitleScene))

	rs.ecs.AddRenderer(cfg.Default, systems.DrawResult)
}
