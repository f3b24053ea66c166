package systems

import (
	"github.com/automoto/kokaton/assets"
	"github.com/automoto/kokaton/components"
	cfg "github.com/automoto/kokaton/config"
	"github.com/automoto/kokaton/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateTitle creates the title screen system. ESC starts a battle and F
// toggles fullscreen.
func NewUpdateTitle(sceneChanger SceneChanger, createBattleScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		title := GetOrCreateTitle(e)
		input := getOrCreateInput(e)

		stepHintBlink(title)

		if GetAction(input, cfg.ActionToggleFullscreen).JustPressed {
			ToggleFullscreen()
		}
		if GetAction(input, cfg.ActionStart).JustPressed {
			sceneChanger.ChangeScene(createBattleScene())
		}
	}
}

func stepHintBlink(title *components.TitleData) {
	a, done := title.Blink.Update(1 / float32(cfg.TicksPerSecond))
	title.HintAlpha = a
	if !done {
		return
	}
	title.Fading = !title.Fading
	title.Blink = newBlink(title.Fading)
}

func newBlink(fading bool) *gween.Tween {
	if fading {
		return gween.New(1, 0.2, cfg.Title.HintBlinkSecs, ease.InOutSine)
	}
	return gween.New(0.2, 1, cfg.Title.HintBlinkSecs, ease.InOutSine)
}

// DrawTitleBackground fills the screen and draws the blinking start hint.
// Widgets are drawn on top by the scene's UI.
func DrawTitleBackground(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Title.BackgroundColor)

	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	bird := assets.Bird(1, 0, assets.FaceNormal)
	drawAt(screen, bird, float64(w)/2-float64(bird.Bounds().Dx())/2, 60, false)

	title := GetOrCreateTitle(e)
	hint := assets.Text().Title.Hint
	face := fonts.Body.Get()
	b := text.BoundString(face, hint)

	clr := cfg.Title.TextColor
	clr.A = uint8(title.HintAlpha * 255)
	clr.R = uint8(float32(clr.R) * title.HintAlpha)
	clr.G = uint8(float32(clr.G) * title.HintAlpha)
	clr.B = uint8(float32(clr.B) * title.HintAlpha)
	text.Draw(screen, hint, face, (w-b.Dx())/2, h-60, clr)
}

// GetOrCreateTitle returns the singleton Title component, creating if needed
func GetOrCreateTitle(e *ecs.ECS) *components.TitleData {
	if _, ok := components.Title.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.Title))
		components.Title.SetValue(ent, components.TitleData{
			Blink:     newBlink(true),
			Fading:    true,
			HintAlpha: 1,
		})
	}

	ent, _ := components.Title.First(e.World)
	return components.Title.Get(ent)
}
