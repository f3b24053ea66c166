package systems

import (
	"github.com/automoto/kokaton/assets"
	"github.com/automoto/kokaton/components"
	cfg "github.com/automoto/kokaton/config"
	"github.com/automoto/kokaton/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateResult creates the result screen system. The screen returns to the
// title after DisplayFrames or when the player confirms.
func NewUpdateResult(sceneChanger SceneChanger, outcome cfg.Outcome, createTitleScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		result := GetOrCreateResult(e, outcome)
		input := getOrCreateInput(e)

		if a, done := result.Fade.Update(1 / float32(cfg.TicksPerSecond)); done {
			result.Alpha = cfg.Result.OverlayAlpha
		} else {
			result.Alpha = a
		}

		result.Frames++
		confirmed := result.Frames > cfg.Result.InputDelay && GetAction(input, cfg.ActionMenuSelect).JustPressed
		if result.Frames >= cfg.Result.DisplayFrames || confirmed {
			sceneChanger.ChangeScene(createTitleScene())
		}
	}
}

// DrawResult renders the dimmed overlay, the outcome message and a bird on
// each side of it.
func DrawResult(e *ecs.ECS, screen *ebiten.Image) {
	result, ok := components.Result.First(e.World)
	if !ok {
		return
	}
	data := components.Result.Get(result)

	width := float32(screen.Bounds().Dx())
	height := float32(screen.Bounds().Dy())
	overlay := cfg.Black
	overlay.A = uint8(data.Alpha * 255)
	overlay.R, overlay.G, overlay.B = 0, 0, 0
	vector.FillRect(screen, 0, 0, width, height, overlay, false)

	strs := assets.Text().Result
	title, face := strs.GameOver, assets.FaceSad
	if data.Outcome == cfg.OutcomeBossDefeated {
		title, face = strs.GameClear, assets.FaceJoy
	}

	titleFont := fonts.Result.Get()
	b := text.BoundString(titleFont, title)
	x := (int(width) - b.Dx()) / 2
	text.Draw(screen, title, titleFont, x, int(cfg.Result.TitleY)+b.Dy()/2, cfg.Result.TitleColor)

	cx := float64(width) / 2
	for _, side := range []float64{-1, 1} {
		img := assets.Bird(int(-side), 0, face)
		fx := cx + side*cfg.Result.FaceOffsetX - float64(img.Bounds().Dx())/2
		fy := cfg.Result.FaceY - float64(img.Bounds().Dy())/2
		drawAt(screen, img, fx, fy, false)
	}

	if strs.Hint != "" {
		hintFont := fonts.Body.Get()
		hb := text.BoundString(hintFont, strs.Hint)
		text.Draw(screen, strs.Hint, hintFont, (int(width)-hb.Dx())/2, int(height)-60, cfg.Result.HintColor)
	}
}

// GetOrCreateResult returns the singleton Result component, creating if needed
func GetOrCreateResult(e *ecs.ECS, outcome cfg.Outcome) *components.ResultData {
	if _, ok := components.Result.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.Result))
		components.Result.SetValue(ent, components.ResultData{
			Outcome: outcome,
			Fade:    gween.New(0, cfg.Result.OverlayAlpha, cfg.Result.FadeSeconds, ease.OutQuad),
		})
	}

	ent, _ := components.Result.First(e.World)
	return components.Result.Get(ent)
}
