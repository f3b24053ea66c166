package components

import (
	cfg "github.com/automoto/kokaton/config"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// ResultData stores the state of the game over / game clear screen
type ResultData struct {
	Outcome cfg.Outcome
	Frames  int // frames the screen has been shown

	Fade  *gween.Tween
	Alpha float32 // current overlay alpha (0-1)
}

// Result is the component type for the result screen state
var Result = donburi.NewComponentType[ResultData]()
