package systems

import (
	"testing"

	"github.com/automoto/kokaton/components"
	cfg "github.com/automoto/kokaton/config"
	"github.com/automoto/kokaton/systems/factory"
	"github.com/automoto/kokaton/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoss_StateSequence(t *testing.T) {
	e := newTestECS(t)
	boss := factory.CreateBoss(e, cfg.Boss.SpawnX, cfg.Boss.SpawnY)
	data := components.Boss.Get(boss)

	seq := []cfg.StateID{data.State}
	for i := 0; i < 1500; i++ {
		UpdateBoss(e)
		getSession(e).Tick++
		if data.State != seq[len(seq)-1] {
			seq = append(seq, data.State)
		}
	}

	require.GreaterOrEqual(t, len(seq), 5)
	assert.Equal(t, cfg.StateDescending, seq[0])
	for i, s := range seq[1:] {
		want := cfg.StateMoving
		if i%2 == 1 {
			want = cfg.StateAttacking
		}
		assert.Equal(t, want, s, "transition %d", i+1)
	}
}

func TestBoss_DescentEndsAtRightEdge(t *testing.T) {
	e := newTestECS(t)
	boss := factory.CreateBoss(e, cfg.Boss.SpawnX, cfg.Boss.SpawnY)
	data := components.Boss.Get(boss)
	vel := components.Velocity.Get(boss)
	obj := objectOf(t, boss)

	for data.State == cfg.StateDescending {
		UpdateBoss(e)
		require.LessOrEqual(t, obj.Y, 5.0, "keeps descending past the top edge")
	}

	assert.GreaterOrEqual(t, obj.Y, 0.0)
	assert.GreaterOrEqual(t, obj.X+obj.W, float64(cfg.C.Width))
	assert.Equal(t, cfg.Boss.MoveSpeedX, vel.SpeedX)
	assert.Equal(t, cfg.Boss.MoveSpeedY, vel.SpeedY)
}

func TestBoss_MovingBouncesOffEdges(t *testing.T) {
	e := newTestECS(t)
	boss := factory.CreateBoss(e, 550, 300)
	data := components.Boss.Get(boss)
	data.State = cfg.StateMoving
	vel := components.Velocity.Get(boss)
	obj := objectOf(t, boss)

	// Bottom-left corner, heading further out on both axes.
	obj.X, obj.Y = 4, float64(cfg.C.Height)-obj.H-3
	vel.SpeedX, vel.SpeedY = -8, 7

	UpdateBoss(e)
	assert.Equal(t, 8.0, vel.SpeedX)
	assert.Equal(t, -7.0, vel.SpeedY)
}

func TestBoss_AttackingHoldsPositionAndBombs(t *testing.T) {
	e := newTestECS(t)
	factory.CreatePlayer(e, 550, 600)
	boss := factory.CreateBoss(e, 550, 200)
	data := components.Boss.Get(boss)
	data.State = cfg.StateAttacking
	obj := objectOf(t, boss)
	x, y := obj.X, obj.Y

	for i := 0; i < 10; i++ {
		UpdateBoss(e)
		getSession(e).Tick++
	}

	assert.Equal(t, x, obj.X)
	assert.Equal(t, y, obj.Y)
	assert.Equal(t, 10/cfg.Boss.BombCadence, count(e, tags.BossBomb.Each))
	assert.Equal(t, 0, count(e, tags.Bomb.Each))

	bomb, _ := tags.BossBomb.First(e.World)
	assert.Equal(t, float64(cfg.BossBomb.MinRadius), components.Bomb.Get(bomb).Radius)
}

func TestBoss_FlashFadesAfterHit(t *testing.T) {
	e := newTestECS(t)
	boss := factory.CreateBoss(e, 550, 200)
	flash := components.Flash.Get(boss)
	flash.Duration = cfg.Boss.HitFlashTime

	for i := 0; i < cfg.Boss.HitFlashTime; i++ {
		UpdateBoss(e)
	}
	assert.Equal(t, 0, flash.Duration)

	UpdateBoss(e)
	assert.Equal(t, 0, flash.Duration)
}
