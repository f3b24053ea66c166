package scenes

import (
	cfg "github.com/automoto/kokaton/config"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
	Quit()
}

// Phased is implemented by every scene so the game loop can report which
// phase of the session it is in.
type Phased interface {
	Phase() cfg.Phase
}
