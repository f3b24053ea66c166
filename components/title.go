package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// TitleData drives the blinking start hint on the title screen
type TitleData struct {
	Blink     *gween.Tween
	Fading    bool // true while the hint fades out
	HintAlpha float32
}

var Title = donburi.NewComponentType[TitleData]()
