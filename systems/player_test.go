package systems

import (
	"math/rand"
	"testing"

	"github.com/automoto/kokaton/components"
	cfg "github.com/automoto/kokaton/config"
	"github.com/automoto/kokaton/gamemath"
	"github.com/automoto/kokaton/systems/factory"
	"github.com/automoto/kokaton/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdatePlayer_SumsHeldDirections(t *testing.T) {
	e := newTestECS(t)
	player := factory.CreatePlayer(e, 550, 300)

	press(e, cfg.ActionMoveRight, cfg.ActionMoveDown)
	UpdatePlayer(e)

	c := gamemath.Center(objectOf(t, player))
	assert.Equal(t, 560.0, c.X)
	assert.Equal(t, 310.0, c.Y)

	facing := components.Player.Get(player).Facing
	assert.Equal(t, 1.0, facing.X)
	assert.Equal(t, 1.0, facing.Y)
}

func TestUpdatePlayer_OpposingKeysCancel(t *testing.T) {
	e := newTestECS(t)
	player := factory.CreatePlayer(e, 550, 300)

	press(e, cfg.ActionMoveLeft, cfg.ActionMoveRight)
	UpdatePlayer(e)

	c := gamemath.Center(objectOf(t, player))
	assert.Equal(t, 550.0, c.X)
	assert.Equal(t, 300.0, c.Y)

	// No net movement, so the initial facing is kept.
	facing := components.Player.Get(player).Facing
	assert.Equal(t, 1.0, facing.X)
	assert.Equal(t, 0.0, facing.Y)
}

func TestUpdatePlayer_RollsBackWholeMove(t *testing.T) {
	e := newTestECS(t)
	player := factory.CreatePlayer(e, 35, 300) // left edge at x=5
	obj := objectOf(t, player)

	press(e, cfg.ActionMoveLeft, cfg.ActionMoveDown)
	UpdatePlayer(e)

	// Not clamped to x=0 and the vertical half of the move is undone too.
	assert.Equal(t, 5.0, obj.X)
	assert.Equal(t, 270.0, obj.Y)

	facing := components.Player.Get(player).Facing
	assert.Equal(t, -1.0, facing.X)
	assert.Equal(t, 1.0, facing.Y)
}

func TestUpdatePlayer_NeverLeavesScreen(t *testing.T) {
	e := newTestECS(t)
	player := factory.CreatePlayer(e, 550, 300)
	obj := objectOf(t, player)

	dirs := []cfg.ActionID{cfg.ActionMoveUp, cfg.ActionMoveDown, cfg.ActionMoveLeft, cfg.ActionMoveRight}
	rng := rand.New(rand.NewSource(testSeed))
	for i := 0; i < 2000; i++ {
		var held []cfg.ActionID
		for _, d := range dirs {
			// Bias toward one direction at a time so the bird reaches the edges.
			if rng.Intn(3) == 0 {
				held = append(held, d)
			}
		}
		press(e, held...)
		UpdatePlayer(e)

		require.True(t, gamemath.FullyOnScreen(obj, float64(cfg.C.Width), float64(cfg.C.Height)),
			"tick %d: player at (%v, %v)", i, obj.X, obj.Y)
	}
}

func TestUpdateFire_OnlyOnPress(t *testing.T) {
	e := newTestECS(t)
	factory.CreatePlayer(e, 550, 300)

	press(e, cfg.ActionFire)
	UpdateFire(e)
	assert.Equal(t, 1, count(e, tags.Beam.Each))

	// Still held: no new beam.
	press(e, cfg.ActionFire)
	UpdateFire(e)
	assert.Equal(t, 1, count(e, tags.Beam.Each))

	press(e)
	press(e, cfg.ActionFire)
	UpdateFire(e)
	assert.Equal(t, 2, count(e, tags.Beam.Each))
}

func TestUpdateExpression_JoyWearsOff(t *testing.T) {
	e := newTestECS(t)
	player := factory.CreatePlayer(e, 550, 300)

	cheer(e)
	data := components.Player.Get(player)
	require.Equal(t, components.ExpressionJoy, data.Expression)

	for i := 0; i < cfg.Player.JoyFrames-1; i++ {
		UpdateExpression(e)
	}
	assert.Equal(t, components.ExpressionJoy, data.Expression)

	UpdateExpression(e)
	assert.Equal(t, components.ExpressionNormal, data.Expression)
}
