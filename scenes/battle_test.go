package scenes

import (
	"testing"

	"github.com/automoto/kokaton/components"
	cfg "github.com/automoto/kokaton/config"
	"github.com/automoto/kokaton/systems"
	"github.com/automoto/kokaton/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// noInput stands in for keyboard polling; the player never moves or fires.
func noInput(*ecs.ECS) {}

func countOf(e *ecs.ECS, each func(donburi.World, func(*donburi.Entry))) int {
	n := 0
	each(e.World, func(*donburi.Entry) { n++ })
	return n
}

func runUntilOutcome(t *testing.T, e *ecs.ECS, maxTicks int) (cfg.Outcome, int) {
	t.Helper()
	for i := 0; i < maxTicks; i++ {
		e.Update()
		if o := systems.SessionOutcome(e); o != cfg.OutcomeNone {
			session := components.Session.Get(components.Session.MustFirst(e.World))
			return o, session.Tick
		}
	}
	t.Fatalf("no outcome after %d ticks", maxTicks)
	return cfg.OutcomeNone, 0
}

func TestBattle_PopulatesVillage(t *testing.T) {
	e := newBattleECS(1, noInput)

	assert.Equal(t, 6, countOf(e, tags.Terrain.Each))
	assert.Equal(t, 3, countOf(e, tags.PatrolEnemy.Each))
	assert.Equal(t, 1, countOf(e, tags.Player.Each))
	assert.Equal(t, 1, countOf(e, tags.Boss.Each))

	e.Update()

	// The first tick spawns a bomber and stands the bird on the center platform.
	assert.Equal(t, 1, countOf(e, tags.FlyingEnemy.Each))
	player, ok := tags.Player.First(e.World)
	require.True(t, ok)
	obj := components.Object.Get(player).Object
	assert.Equal(t, 300.0, obj.Y+obj.H)
}

func TestBattle_IdlePlayerIsEventuallyHit(t *testing.T) {
	e := newBattleECS(7, noInput)

	outcome, _ := runUntilOutcome(t, e, 5000)
	assert.Equal(t, cfg.OutcomePlayerDied, outcome)
}

func TestBattle_SameSeedSameSession(t *testing.T) {
	o1, tick1 := runUntilOutcome(t, newBattleECS(99, noInput), 5000)
	o2, tick2 := runUntilOutcome(t, newBattleECS(99, noInput), 5000)

	assert.Equal(t, o1, o2)
	assert.Equal(t, tick1, tick2)
}

func TestBattle_FreezesOnOutcome(t *testing.T) {
	e := newBattleECS(3, noInput)
	e.Update()

	systems.EndSession(e, cfg.OutcomeBossDefeated, "test")
	session := components.Session.Get(components.Session.MustFirst(e.World))
	tick := session.Tick
	boss, _ := tags.Boss.First(e.World)
	bossObj := components.Object.Get(boss).Object
	y := bossObj.Y

	for i := 0; i < 10; i++ {
		e.Update()
	}
	assert.Equal(t, tick, session.Tick)
	assert.Equal(t, y, bossObj.Y)
}
