package systems

import (
	"testing"

	"github.com/automoto/kokaton/components"
	"github.com/automoto/kokaton/systems/factory"
	"github.com/automoto/kokaton/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func TestAttach_SequencePerWorld(t *testing.T) {
	a := newTestECS(t)
	factory.CreateTerrain(a, terrainAt(0, 400, 300, 20))
	factory.CreateTerrain(a, terrainAt(0, 200, 300, 20))

	b := newTestECS(t)
	first := factory.CreateTerrain(b, terrainAt(0, 400, 300, 20))
	second := factory.CreateTerrain(b, terrainAt(0, 200, 300, 20))

	assert.Equal(t, 1, components.Object.Get(first).Seq)
	assert.Equal(t, 2, components.Object.Get(second).Seq)
}

func TestOverlapping_SpaceOrderAndTagFilter(t *testing.T) {
	e := newTestECS(t)
	first := factory.CreateTerrain(e, terrainAt(0, 400, 300, 20))
	second := factory.CreateTerrain(e, terrainAt(0, 410, 300, 20))
	factory.CreateTerrain(e, terrainAt(600, 400, 300, 20)) // far away
	player := factory.CreatePlayer(e, 100, 420)
	factory.CreatePatrolEnemy(e, patrolAt(80, 400))

	hits := Overlapping(objectOf(t, player), tags.ResolvTerrain)
	require.Len(t, hits, 2)
	assert.Equal(t, first.Entity(), hits[0].Entity())
	assert.Equal(t, second.Entity(), hits[1].Entity())
}

func TestCollide_StopsWhenResolverSaysSo(t *testing.T) {
	e := newTestECS(t)
	factory.CreateTerrain(e, terrainAt(0, 400, 300, 20))
	factory.CreateTerrain(e, terrainAt(0, 410, 300, 20))
	player := factory.CreatePlayer(e, 100, 420)

	seen := 0
	Collide(objectOf(t, player), tags.ResolvTerrain, func(*donburi.Entry) bool {
		seen++
		return false
	})
	assert.Equal(t, 1, seen)
}

func TestCollide_SkipsEntitiesRemovedMidScan(t *testing.T) {
	e := newTestECS(t)
	a := factory.CreateTerrain(e, terrainAt(0, 400, 300, 20))
	b := factory.CreateTerrain(e, terrainAt(0, 410, 300, 20))
	player := factory.CreatePlayer(e, 100, 420)

	var seen []donburi.Entity
	Collide(objectOf(t, player), tags.ResolvTerrain, func(other *donburi.Entry) bool {
		seen = append(seen, other.Entity())
		if other.Entity() == a.Entity() {
			destroy(e, b)
		}
		return true
	})
	assert.Equal(t, []donburi.Entity{a.Entity()}, seen)
	assert.Equal(t, 1, count(e, components.Terrain.Each))
}
