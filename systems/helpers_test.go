package systems

import (
	"testing"

	"github.com/automoto/kokaton/assets"
	"github.com/automoto/kokaton/components"
	cfg "github.com/automoto/kokaton/config"
	"github.com/automoto/kokaton/systems/factory"
	"github.com/solarlune/resolv"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const testSeed = 12345

// newTestECS returns an empty battle world with a space and a session.
func newTestECS(t *testing.T) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e, cfg.C.Width, cfg.C.Height, factory.SpaceCellSize, factory.SpaceCellSize)
	factory.CreateSession(e, testSeed)
	return e
}

// press advances the input buffers one frame with exactly the given actions held.
func press(e *ecs.ECS, actions ...cfg.ActionID) {
	input := getOrCreateInput(e)
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	for _, a := range actions {
		input.Current[a] = true
	}
}

func objectOf(t *testing.T, e *donburi.Entry) *resolv.Object {
	t.Helper()
	require.True(t, e.Valid(), "entity was removed")
	return components.Object.Get(e).Object
}

func count(e *ecs.ECS, each func(donburi.World, func(*donburi.Entry))) int {
	return len(collect(e, each))
}

func terrainAt(x, y, w, h float64) assets.TerrainSpawn {
	return assets.TerrainSpawn{X: x, Y: y, Width: w, Height: h}
}

type recordingChanger struct {
	scenes []interface{}
}

func (r *recordingChanger) ChangeScene(scene interface{}) {
	r.scenes = append(r.scenes, scene)
}

func patrolAt(x, y float64) assets.PatrolSpawn {
	return assets.PatrolSpawn{X: x, Y: y, MinX: 0, MaxX: 1100}
}
