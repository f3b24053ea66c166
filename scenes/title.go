package scenes

import (
	"sync"

	cfg "github.com/automoto/kokaton/config"
	"github.com/automoto/kokaton/systems"
	"github.com/automoto/kokaton/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// TitleScene shows the instructions and waits for ESC or the Start button
type TitleScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	titleUI      *ui.TitleUI
	once         sync.Once

	startRequested bool
}

// NewTitleScene creates a new title scene
func NewTitleScene(sc SceneChanger) *TitleScene {
	return &TitleScene{sceneChanger: sc}
}

func (ts *TitleScene) Phase() cfg.Phase { return cfg.PhaseTitle }

func (ts *TitleScene) Update() {
	ts.once.Do(ts.configure)

	ts.ecs.Update()
	ts.titleUI.SetFullscreen(cfg.Settings.Fullscreen)
	ts.titleUI.Update()

	if ts.startRequested {
		ts.startRequested = false
		ts.sceneChanger.ChangeScene(ts.createBattleScene())
	}
}

func (ts *TitleScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Title.BackgroundColor)

	if ts.ecs == nil {
		return
	}
	ts.ecs.Draw(screen)
	ts.titleUI.UI.Draw(screen)
}

func (ts *TitleScene) createBattleScene() interface{} {
	return NewBattleScene(ts.sceneChanger, NewSeed())
}

func (ts *TitleScene) configure() {
	ts.ecs = ecs.NewECS(donburi.NewWorld())

	ts.titleUI = ui.NewTitleUI(
		func() { ts.startRequested = true },
		ts.sceneChanger.Quit,
	)

	ts.ecs.AddSystem(systems.UpdateInput)
	ts.ecs.AddSystem(systems.NewUpdateTitle(ts.sceneChanger, ts.createBattleScene))

	ts.ecs.AddRenderer(cfg.Default, systems.DrawTitleBackground)
}
