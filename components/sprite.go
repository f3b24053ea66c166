package components

import "github.com/yohamta/donburi"

// SpriteData holds per-entity draw hints. Images themselves are generated
// and cached by the assets package.
type SpriteData struct {
	Rotation float64 // radians, applied around the sprite center
	FlipX    bool
}

var Sprite = donburi.NewComponentType[SpriteData]()
