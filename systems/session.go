package systems

import (
	"github.com/automoto/kokaton/components"
	cfg "github.com/automoto/kokaton/config"
	"github.com/automoto/kokaton/tags"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows systems to trigger scene transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

func getSession(ecs *ecs.ECS) *components.SessionData {
	return components.Session.Get(components.Session.MustFirst(ecs.World))
}

// SessionOutcome returns the battle's outcome, OutcomeNone while it is running.
func SessionOutcome(ecs *ecs.ECS) cfg.Outcome {
	entry, ok := components.Session.First(ecs.World)
	if !ok {
		return cfg.OutcomeNone
	}
	return components.Session.Get(entry).Outcome
}

// WithGameplayChecks wraps a system so it is skipped once the session has
// reached an outcome.
func WithGameplayChecks(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if getSession(e).Over() {
			return
		}
		system(e)
	}
}

// EndSession records a terminal outcome and logs it once.
func EndSession(ecs *ecs.ECS, outcome cfg.Outcome, reason string) {
	session := getSession(ecs)
	if session.Over() {
		return
	}
	session.End(outcome)

	ev := log.Info().
		Str("outcome", outcome.String()).
		Str("reason", reason).
		Int("tick", session.Tick).
		Int64("seed", session.Seed)
	if boss, ok := tags.Boss.First(ecs.World); ok {
		ev = ev.Int("boss_hp", components.Health.Get(boss).Current)
	}
	if player, ok := tags.Player.First(ecs.World); ok {
		ev = ev.Int("lives", components.Lives.Get(player).Lives)
	}
	ev.Msg("session ended")

	if outcome == cfg.OutcomePlayerDied {
		tags.Player.Each(ecs.World, func(e *donburi.Entry) {
			components.Player.Get(e).Expression = components.ExpressionSad
		})
	}
}

// UpdateDebugTriggers handles the developer keys: lose a life, force a win,
// force a loss.
func UpdateDebugTriggers(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	if GetAction(input, cfg.ActionDebugLoseLife).JustPressed {
		if player, ok := tags.Player.First(ecs.World); ok {
			lives := components.Lives.Get(player)
			lives.Lives--
			if lives.Lives <= 0 {
				lives.Lives = 0
				EndSession(ecs, cfg.OutcomePlayerDied, "out of lives")
				return
			}
		}
	}
	if GetAction(input, cfg.ActionDebugWin).JustPressed {
		EndSession(ecs, cfg.OutcomeBossDefeated, "debug win")
		return
	}
	if GetAction(input, cfg.ActionDebugLose).JustPressed {
		EndSession(ecs, cfg.OutcomePlayerDied, "debug loss")
	}
}

// UpdateTick advances the session clock. It runs last in the tick.
func UpdateTick(ecs *ecs.ECS) {
	getSession(ecs).Tick++
}
