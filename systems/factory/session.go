package factory

import (
	"math/rand"

	"github.com/automoto/kokaton/archetypes"
	"github.com/automoto/kokaton/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSession creates the battle bookkeeping singleton with a seeded RNG.
func CreateSession(ecs *ecs.ECS, seed int64) *donburi.Entry {
	session := archetypes.Session.Spawn(ecs)
	components.Session.SetValue(session, components.SessionData{
		Seed: seed,
		Rand: rand.New(rand.NewSource(seed)),
	})
	return session
}
