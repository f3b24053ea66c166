package systems

import (
	"testing"

	"github.com/automoto/kokaton/components"
	cfg "github.com/automoto/kokaton/config"
	"github.com/automoto/kokaton/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi/ecs"
)

func TestEndSession_FirstOutcomeWins(t *testing.T) {
	e := newTestECS(t)
	factory.CreatePlayer(e, 550, 300)

	EndSession(e, cfg.OutcomeBossDefeated, "first")
	EndSession(e, cfg.OutcomePlayerDied, "second")

	assert.Equal(t, cfg.OutcomeBossDefeated, SessionOutcome(e))
}

func TestWithGameplayChecks_SkipsAfterOutcome(t *testing.T) {
	e := newTestECS(t)
	calls := 0
	wrapped := WithGameplayChecks(func(*ecs.ECS) { calls++ })

	wrapped(e)
	EndSession(e, cfg.OutcomePlayerDied, "test")
	wrapped(e)

	assert.Equal(t, 1, calls)
}

func TestUpdateDebugTriggers_LoseLives(t *testing.T) {
	e := newTestECS(t)
	player := factory.CreatePlayer(e, 550, 300)
	lives := components.Lives.Get(player)

	for i := 1; i < cfg.Player.StartingLives; i++ {
		press(e, cfg.ActionDebugLoseLife)
		UpdateDebugTriggers(e)
		press(e)
		require.Equal(t, cfg.Player.StartingLives-i, lives.Lives)
		require.Equal(t, cfg.OutcomeNone, SessionOutcome(e))
	}

	press(e, cfg.ActionDebugLoseLife)
	UpdateDebugTriggers(e)
	assert.Equal(t, 0, lives.Lives)
	assert.Equal(t, cfg.OutcomePlayerDied, SessionOutcome(e))
}

func TestUpdateDebugTriggers_ForceOutcome(t *testing.T) {
	tests := []struct {
		name   string
		action cfg.ActionID
		want   cfg.Outcome
	}{
		{"win", cfg.ActionDebugWin, cfg.OutcomeBossDefeated},
		{"lose", cfg.ActionDebugLose, cfg.OutcomePlayerDied},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestECS(t)
			factory.CreatePlayer(e, 550, 300)

			press(e, tt.action)
			UpdateDebugTriggers(e)
			assert.Equal(t, tt.want, SessionOutcome(e))
		})
	}
}

func TestUpdateTick(t *testing.T) {
	e := newTestECS(t)
	for i := 0; i < 7; i++ {
		UpdateTick(e)
	}
	assert.Equal(t, 7, getSession(e).Tick)
}
